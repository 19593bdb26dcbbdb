package repository

import (
	"errors"

	"storefront/internal/domain"
)

// ErrNotFound is returned when an order id does not exist in the store.
var ErrNotFound = errors.New("order not found")

type OrderRepository interface {
	// Create assigns a unique, monotonically increasing id, sets the status
	// to Pending, persists, and returns the stored order.
	Create(draft domain.OrderDraft) (domain.Order, error)
	// Get returns the order with the given id or ErrNotFound.
	Get(id int64) (domain.Order, error)
	// List returns every stored order. The store imposes no ordering.
	List() ([]domain.Order, error)
	// Patch merges the provided fields over the stored order and persists.
	// The id itself is never altered. Returns ErrNotFound for unknown ids.
	Patch(id int64, patch domain.OrderPatch) (domain.Order, error)
}
