// Package store persists customers, products and orders as delimited
// text files under a single data directory. Entity files are append-only
// except for the product catalog and the order aggregate, which are
// mutated by whole-file rewrite. The package assumes a single process
// and a single writer; there is no file locking.
package store

import (
	"log/slog"
	"path/filepath"

	"github.com/safar/go-csv-store/internal/config"
	"github.com/safar/go-csv-store/internal/idgen"
	"github.com/safar/go-csv-store/internal/storage"
)

const (
	customersFile  = "customers.csv"
	productsFile   = "products.csv"
	ordersFile     = "orders.csv"
	orderItemsFile = "order_items.csv"

	customerIDsFile = "customer_ids.csv"
	productIDsFile  = "product_ids.csv"
	orderIDsFile    = "order_ids.csv"

	customersHeader  = "id,email,name,phone,created_at"
	productsHeader   = "id,name,description,price,category,seller_name"
	ordersHeader     = "id,customer_id,customer_name,status,delivery_fee,payment_method,created_at,cancellation_reason,delivery_address"
	orderItemsHeader = "order_id,product_id,product_name,quantity,unit_price,observations"
)

type Store struct {
	dir string
	log *slog.Logger

	customerIDs *idgen.Sequence
	productIDs  *idgen.Sequence
	orderIDs    *idgen.Sequence
}

// Open prepares the data directory, seeds the id sequences from their
// sidecar files and, when configured, writes the default product
// catalog on first run.
func Open(cfg *config.StorageConfig, log *slog.Logger) (*Store, error) {
	if err := storage.EnsureDir(cfg.Dir); err != nil {
		return nil, err
	}

	s := &Store{
		dir:         cfg.Dir,
		log:         log,
		customerIDs: idgen.NewSequence(filepath.Join(cfg.Dir, customerIDsFile), log),
		productIDs:  idgen.NewSequence(filepath.Join(cfg.Dir, productIDsFile), log),
		orderIDs:    idgen.NewSequence(filepath.Join(cfg.Dir, orderIDsFile), log),
	}

	if cfg.SeedDefaultProducts {
		if err := s.SeedDefaultProducts(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *Store) GenerateCustomerID() (uint64, error) {
	return s.customerIDs.Next()
}

func (s *Store) GenerateProductID() (uint64, error) {
	return s.productIDs.Next()
}

func (s *Store) GenerateOrderID() (uint64, error) {
	return s.orderIDs.Next()
}
