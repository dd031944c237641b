package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/safar/go-csv-store/internal/models"
	"github.com/safar/go-csv-store/internal/storage"
)

func TestSaveAndLoadCustomers(t *testing.T) {
	s, _ := newTestStore(t)

	created := time.Date(2024, 3, 15, 18, 30, 5, 0, time.UTC)

	id, err := s.GenerateCustomerID()
	if err != nil {
		t.Fatalf("Generate customer id: %v", err)
	}
	alice := models.Customer{ID: id, Email: "alice@example.com", Name: "Alice", Phone: "555-0100", CreatedAt: created}
	if err := s.SaveCustomer(alice); err != nil {
		t.Fatalf("Save customer: %v", err)
	}

	id, err = s.GenerateCustomerID()
	if err != nil {
		t.Fatalf("Generate customer id: %v", err)
	}
	bob := models.Customer{ID: id, Email: "bob@example.com", Name: "Bob", Phone: "555-0101", CreatedAt: created.Add(time.Hour)}
	if err := s.SaveCustomer(bob); err != nil {
		t.Fatalf("Save customer: %v", err)
	}

	customers, err := s.LoadCustomers()
	if err != nil {
		t.Fatalf("Load customers: %v", err)
	}
	if len(customers) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(customers))
	}

	got := customers[0]
	if got.ID != alice.ID || got.Email != alice.Email || got.Name != alice.Name || got.Phone != alice.Phone {
		t.Errorf("first customer = %+v, want %+v", got, alice)
	}
	if !got.CreatedAt.Equal(alice.CreatedAt) {
		t.Errorf("first customer created_at = %v, want %v", got.CreatedAt, alice.CreatedAt)
	}
	if customers[1].Email != bob.Email {
		t.Errorf("second customer email = %q, want %q", customers[1].Email, bob.Email)
	}
}

func TestFindCustomerByEmail(t *testing.T) {
	s, _ := newTestStore(t)

	customer := models.Customer{ID: 1, Email: "alice@example.com", Name: "Alice", CreatedAt: time.Now()}
	if err := s.SaveCustomer(customer); err != nil {
		t.Fatalf("Save customer: %v", err)
	}

	found, err := s.FindCustomerByEmail("alice@example.com")
	if err != nil {
		t.Fatalf("Find customer by email: %v", err)
	}
	if found.ID != 1 || found.Name != "Alice" {
		t.Errorf("found = %+v", found)
	}

	_, err = s.FindCustomerByEmail("nobody@example.com")
	if !errors.Is(err, storage.ErrCustomerNotFound) {
		t.Errorf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestFindCustomerByID(t *testing.T) {
	s, _ := newTestStore(t)

	if err := s.SaveCustomer(models.Customer{ID: 7, Email: "c@example.com", Name: "Carol", CreatedAt: time.Now()}); err != nil {
		t.Fatalf("Save customer: %v", err)
	}

	found, err := s.FindCustomerByID(7)
	if err != nil {
		t.Fatalf("Find customer by id: %v", err)
	}
	if found.Name != "Carol" {
		t.Errorf("found name = %q, want Carol", found.Name)
	}

	_, err = s.FindCustomerByID(99)
	if !errors.Is(err, storage.ErrCustomerNotFound) {
		t.Errorf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestLoadCustomersMissingFile(t *testing.T) {
	s, _ := newTestStore(t)

	customers, err := s.LoadCustomers()
	if err != nil {
		t.Fatalf("Load customers: %v", err)
	}
	if len(customers) != 0 {
		t.Errorf("expected empty result, got %d customers", len(customers))
	}
}

func TestLoadCustomersSkipsMalformedRows(t *testing.T) {
	s, dir := newTestStore(t)

	content := "id,email,name,phone,created_at\n" +
		"1,alice@example.com,Alice,555-0100,2024-03-15 18:30:05\n" +
		",ghost@example.com,Ghost,555-0199,2024-03-15 18:30:05\n" +
		"too,few\n" +
		"\n"
	if err := os.WriteFile(filepath.Join(dir, "customers.csv"), []byte(content), 0o644); err != nil {
		t.Fatalf("write customers file: %v", err)
	}

	customers, err := s.LoadCustomers()
	if err != nil {
		t.Fatalf("Load customers: %v", err)
	}
	if len(customers) != 1 {
		t.Fatalf("expected 1 customer, got %d", len(customers))
	}
	if customers[0].Email != "alice@example.com" {
		t.Errorf("kept customer = %+v", customers[0])
	}
}
