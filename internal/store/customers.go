package store

import (
	"fmt"
	"strconv"

	"github.com/safar/go-csv-store/internal/codec"
	"github.com/safar/go-csv-store/internal/models"
	"github.com/safar/go-csv-store/internal/storage"
)

// SaveCustomer appends one customer row. Customers are never updated
// or deleted by this layer.
func (s *Store) SaveCustomer(customer models.Customer) error {
	line := codec.EncodeLine([]string{
		strconv.FormatUint(customer.ID, 10),
		customer.Email,
		customer.Name,
		customer.Phone,
		codec.FormatTime(customer.CreatedAt),
	})

	if err := storage.AppendLine(s.path(customersFile), customersHeader, line); err != nil {
		return fmt.Errorf("save customer: %w", err)
	}

	s.log.Debug("customer saved", "id", customer.ID, "email", customer.Email)
	return nil
}

// LoadCustomers returns every stored customer in insertion order.
// Rows missing required fields are skipped with a warning.
func (s *Store) LoadCustomers() ([]models.Customer, error) {
	lines, err := storage.ReadDataLines(s.path(customersFile))
	if err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}

	var customers []models.Customer
	for i, line := range lines {
		customer, err := decodeCustomer(codec.ParseLine(line))
		if err != nil {
			s.log.Warn("skipping malformed customer row", "file", customersFile, "row", i+1, "error", err)
			continue
		}
		customers = append(customers, customer)
	}
	return customers, nil
}

func (s *Store) FindCustomerByID(id uint64) (*models.Customer, error) {
	customers, err := s.LoadCustomers()
	if err != nil {
		return nil, err
	}
	for _, customer := range customers {
		if customer.ID == id {
			return &customer, nil
		}
	}
	return nil, storage.ErrCustomerNotFound
}

func (s *Store) FindCustomerByEmail(email string) (*models.Customer, error) {
	customers, err := s.LoadCustomers()
	if err != nil {
		return nil, err
	}
	for _, customer := range customers {
		if customer.Email == email {
			return &customer, nil
		}
	}
	return nil, storage.ErrCustomerNotFound
}

func decodeCustomer(fields []string) (models.Customer, error) {
	if len(fields) < 5 {
		return models.Customer{}, fmt.Errorf("expected 5 fields, got %d", len(fields))
	}
	if fields[0] == "" {
		return models.Customer{}, fmt.Errorf("empty id")
	}
	id, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return models.Customer{}, fmt.Errorf("parse id %q: %w", fields[0], err)
	}

	return models.Customer{
		ID:        id,
		Email:     fields[1],
		Name:      fields[2],
		Phone:     fields[3],
		CreatedAt: codec.ParseTime(fields[4]),
	}, nil
}
