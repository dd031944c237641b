package store

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/safar/go-csv-store/internal/codec"
	"github.com/safar/go-csv-store/internal/models"
	"github.com/safar/go-csv-store/internal/storage"
)

// SaveOrder appends the order row, then one row per line item. An
// order with no items is valid and persists with no item rows. A
// failed append leaves whatever the write left behind; callers must
// treat the error as fatal to the operation that triggered it.
func (s *Store) SaveOrder(order models.Order) error {
	if err := storage.AppendLine(s.path(ordersFile), ordersHeader, encodeOrder(order)); err != nil {
		return fmt.Errorf("save order: %w", err)
	}

	for _, item := range order.Items {
		line := encodeOrderItem(order.ID, item)
		if err := storage.AppendLine(s.path(orderItemsFile), orderItemsHeader, line); err != nil {
			return fmt.Errorf("save order %d items: %w", order.ID, err)
		}
	}

	s.log.Debug("order saved", "id", order.ID, "items", len(order.Items))
	return nil
}

// LoadOrders returns every stored order with its items attached, in
// file order. Item rows carry the product name and unit price
// snapshotted at add-time; they are read back as stored, never
// re-joined to the current catalog.
func (s *Store) LoadOrders() ([]models.Order, error) {
	lines, err := storage.ReadDataLines(s.path(ordersFile))
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	itemsByOrder, err := s.loadItemsByOrder()
	if err != nil {
		return nil, err
	}

	var orders []models.Order
	for i, line := range lines {
		order, err := decodeOrder(codec.ParseLine(line))
		if err != nil {
			s.log.Warn("skipping malformed order row", "file", ordersFile, "row", i+1, "error", err)
			continue
		}
		order.Items = itemsByOrder[order.ID]
		orders = append(orders, order)
	}
	return orders, nil
}

func (s *Store) FindOrderByID(id uint64) (*models.Order, error) {
	orders, err := s.LoadOrders()
	if err != nil {
		return nil, err
	}
	for _, order := range orders {
		if order.ID == id {
			return &order, nil
		}
	}
	return nil, storage.ErrOrderNotFound
}

// FindOrdersByCustomerID returns the customer's orders in ascending
// creation-time order. Orders created at the same instant keep their
// file order.
func (s *Store) FindOrdersByCustomerID(customerID uint64) ([]models.Order, error) {
	orders, err := s.LoadOrders()
	if err != nil {
		return nil, err
	}

	var matched []models.Order
	for _, order := range orders {
		if order.CustomerID == customerID {
			matched = append(matched, order)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})
	return matched, nil
}

// UpdateOrder replaces the stored version of the order with the given
// one by rewriting both the order file and the item file from the
// full in-memory collection. Each file is swapped in atomically via a
// temp-file rename; the two renames together are not atomic, so a
// crash between them can pair new orders with old items. The old
// delete-then-rewrite window that could lose every order is gone.
func (s *Store) UpdateOrder(order models.Order) error {
	orders, err := s.LoadOrders()
	if err != nil {
		return fmt.Errorf("update order %d: %w", order.ID, err)
	}

	kept := orders[:0]
	for _, existing := range orders {
		if existing.ID != order.ID {
			kept = append(kept, existing)
		}
	}
	orders = append(kept, order)

	orderLines := make([]string, 0, len(orders))
	var itemLines []string
	for _, o := range orders {
		orderLines = append(orderLines, encodeOrder(o))
		for _, item := range o.Items {
			itemLines = append(itemLines, encodeOrderItem(o.ID, item))
		}
	}

	if err := storage.Replace(s.path(ordersFile), ordersHeader, orderLines); err != nil {
		return fmt.Errorf("update order %d: %w", order.ID, err)
	}
	if err := storage.Replace(s.path(orderItemsFile), orderItemsHeader, itemLines); err != nil {
		return fmt.Errorf("update order %d items: %w", order.ID, err)
	}

	s.log.Debug("order updated", "id", order.ID, "status", order.Status)
	return nil
}

func (s *Store) loadItemsByOrder() (map[uint64][]models.OrderItem, error) {
	lines, err := storage.ReadDataLines(s.path(orderItemsFile))
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}

	itemsByOrder := make(map[uint64][]models.OrderItem)
	for i, line := range lines {
		item, err := decodeOrderItem(codec.ParseLine(line))
		if err != nil {
			s.log.Warn("skipping malformed order item row", "file", orderItemsFile, "row", i+1, "error", err)
			continue
		}
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}
	return itemsByOrder, nil
}

func encodeOrder(order models.Order) string {
	return codec.EncodeLine([]string{
		strconv.FormatUint(order.ID, 10),
		strconv.FormatUint(order.CustomerID, 10),
		order.CustomerName,
		order.Status,
		codec.FormatDecimal(order.DeliveryFee),
		order.PaymentMethod,
		codec.FormatTime(order.CreatedAt),
		order.CancellationReason,
		codec.FormatAddress(order.DeliveryAddress),
	})
}

func decodeOrder(fields []string) (models.Order, error) {
	if len(fields) < 9 {
		return models.Order{}, fmt.Errorf("expected 9 fields, got %d", len(fields))
	}
	if fields[0] == "" || fields[1] == "" {
		return models.Order{}, fmt.Errorf("empty required field")
	}
	id, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return models.Order{}, fmt.Errorf("parse id %q: %w", fields[0], err)
	}
	customerID, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return models.Order{}, fmt.Errorf("parse customer id %q: %w", fields[1], err)
	}

	return models.Order{
		ID:                 id,
		CustomerID:         customerID,
		CustomerName:       fields[2],
		Status:             fields[3],
		DeliveryFee:        codec.ParseDecimal(fields[4]),
		PaymentMethod:      fields[5],
		CreatedAt:          codec.ParseTime(fields[6]),
		CancellationReason: fields[7],
		DeliveryAddress:    codec.ParseAddress(fields[8]),
	}, nil
}

func encodeOrderItem(orderID uint64, item models.OrderItem) string {
	return codec.EncodeLine([]string{
		strconv.FormatUint(orderID, 10),
		strconv.FormatUint(item.ProductID, 10),
		item.ProductName,
		strconv.Itoa(item.Quantity),
		codec.FormatDecimal(item.UnitPrice),
		item.Observations,
	})
}

func decodeOrderItem(fields []string) (models.OrderItem, error) {
	if len(fields) < 6 {
		return models.OrderItem{}, fmt.Errorf("expected 6 fields, got %d", len(fields))
	}
	if fields[0] == "" || fields[1] == "" || fields[3] == "" {
		return models.OrderItem{}, fmt.Errorf("empty required field")
	}
	orderID, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return models.OrderItem{}, fmt.Errorf("parse order id %q: %w", fields[0], err)
	}
	productID, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return models.OrderItem{}, fmt.Errorf("parse product id %q: %w", fields[1], err)
	}
	quantity, err := strconv.Atoi(fields[3])
	if err != nil {
		return models.OrderItem{}, fmt.Errorf("parse quantity %q: %w", fields[3], err)
	}

	return models.OrderItem{
		OrderID:      orderID,
		ProductID:    productID,
		ProductName:  fields[2],
		Quantity:     quantity,
		UnitPrice:    codec.ParseDecimal(fields[4]),
		Observations: fields[5],
	}, nil
}
