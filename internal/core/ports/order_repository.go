package ports

import (
	"context"

	"cafe/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists an unsaved order and returns it with its store-assigned id.
	// Ids strictly increase in the order Add calls are committed.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Update persists the ready timestamp of an existing order.
	// Returns errs.ErrObjectNotFound when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id.
	// Returns errs.ErrObjectNotFound when no such order exists.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// List returns every order, most recent (highest id) first.
	List(ctx context.Context) ([]*order.Order, error)

	// ListPending returns orders not yet marked ready, oldest first.
	ListPending(ctx context.Context) ([]*order.Order, error)
}
