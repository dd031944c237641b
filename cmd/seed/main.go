// Seed prepares a data directory: it creates the entity files, the id
// counter files and, on first run, the default product catalog.
package main

import (
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/safar/go-csv-store/internal/config"
	"github.com/safar/go-csv-store/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.Log.Level),
	}))

	s, err := store.Open(&cfg.Storage, logger)
	if err != nil {
		log.Fatalf("Open store: %v", err)
	}

	customers, err := s.LoadCustomers()
	if err != nil {
		log.Fatalf("Load customers: %v", err)
	}
	products, err := s.LoadProducts()
	if err != nil {
		log.Fatalf("Load products: %v", err)
	}
	orders, err := s.LoadOrders()
	if err != nil {
		log.Fatalf("Load orders: %v", err)
	}

	logger.Info("data directory ready",
		"dir", cfg.Storage.Dir,
		"customers", len(customers),
		"products", len(products),
		"orders", len(orders),
	)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
