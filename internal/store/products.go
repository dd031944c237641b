package store

import (
	"fmt"
	"os"
	"strconv"

	"github.com/safar/go-csv-store/internal/codec"
	"github.com/safar/go-csv-store/internal/models"
	"github.com/safar/go-csv-store/internal/storage"
	"github.com/shopspring/decimal"
)

// SaveProducts persists the full catalog as a snapshot, atomically
// replacing whatever was on disk. There is no per-product update path.
func (s *Store) SaveProducts(products []models.Product) error {
	lines := make([]string, 0, len(products))
	for _, product := range products {
		lines = append(lines, encodeProduct(product))
	}

	if err := storage.Replace(s.path(productsFile), productsHeader, lines); err != nil {
		return fmt.Errorf("save products: %w", err)
	}

	s.log.Debug("product catalog saved", "count", len(products))
	return nil
}

// LoadProducts returns the catalog in file order. Rows missing
// required fields are skipped with a warning.
func (s *Store) LoadProducts() ([]models.Product, error) {
	lines, err := storage.ReadDataLines(s.path(productsFile))
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	var products []models.Product
	for i, line := range lines {
		product, err := decodeProduct(codec.ParseLine(line))
		if err != nil {
			s.log.Warn("skipping malformed product row", "file", productsFile, "row", i+1, "error", err)
			continue
		}
		products = append(products, product)
	}
	return products, nil
}

func (s *Store) FindProductByID(id uint64) (*models.Product, error) {
	products, err := s.LoadProducts()
	if err != nil {
		return nil, err
	}
	for _, product := range products {
		if product.ID == id {
			return &product, nil
		}
	}
	return nil, storage.ErrProductNotFound
}

// SeedDefaultProducts writes the initial catalog on first run. It is
// a no-op when products.csv already exists.
func (s *Store) SeedDefaultProducts() error {
	if _, err := os.Stat(s.path(productsFile)); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", productsFile, err)
	}

	defaults := []struct {
		name, description, price, category, seller string
	}{
		{"X-Burger Artesanal", "Artisanal burger with cheddar cheese, lettuce and tomato", "25.90", "SNACKS", "Maria's Snack Bar"},
		{"Pizza Margherita", "Traditional pizza with tomato sauce, mozzarella and basil", "35.00", "SNACKS", "João's Pizza Shop"},
		{"Cola Soda", "Cola flavored soda 350ml", "5.50", "BEVERAGES", "Maria's Snack Bar"},
		{"Milk Pudding", "Homemade condensed milk pudding", "8.00", "DESSERTS", "Ana's Bakery"},
	}

	products := make([]models.Product, 0, len(defaults))
	for _, d := range defaults {
		id, err := s.GenerateProductID()
		if err != nil {
			return fmt.Errorf("seed default products: %w", err)
		}
		products = append(products, models.Product{
			ID:          id,
			Name:        d.name,
			Description: d.description,
			Price:       decimal.RequireFromString(d.price),
			Category:    d.category,
			SellerName:  d.seller,
		})
	}

	s.log.Info("seeding default product catalog", "count", len(products))
	return s.SaveProducts(products)
}

func encodeProduct(product models.Product) string {
	return codec.EncodeLine([]string{
		strconv.FormatUint(product.ID, 10),
		product.Name,
		product.Description,
		codec.FormatDecimal(product.Price),
		product.Category,
		product.SellerName,
	})
}

func decodeProduct(fields []string) (models.Product, error) {
	if len(fields) < 6 {
		return models.Product{}, fmt.Errorf("expected 6 fields, got %d", len(fields))
	}
	if fields[0] == "" {
		return models.Product{}, fmt.Errorf("empty id")
	}
	id, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return models.Product{}, fmt.Errorf("parse id %q: %w", fields[0], err)
	}

	return models.Product{
		ID:          id,
		Name:        fields[1],
		Description: fields[2],
		Price:       codec.ParseDecimal(fields[3]),
		Category:    fields[4],
		SellerName:  fields[5],
	}, nil
}
