// Package ports defines the persistence contracts of the cafe core.
// These interfaces establish contracts between the application layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"cafe/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for menu items.
type MenuRepository interface {
	// Add persists a new item. Returns an error wrapping menu.ErrDuplicateID
	// or menu.ErrDuplicateName when the id or the name is already taken.
	Add(ctx context.Context, item menu.Item) error

	// Remove deletes the item with the given id and returns what was removed.
	// Existing orders referencing the id are left untouched.
	// Returns errs.ErrObjectNotFound when no such item exists.
	Remove(ctx context.Context, id int64) (menu.Item, error)

	// Get retrieves an item by id.
	// Returns errs.ErrObjectNotFound when no such item exists.
	Get(ctx context.Context, id int64) (menu.Item, error)

	// List returns every item ordered by id ascending.
	List(ctx context.Context) ([]menu.Item, error)
}
