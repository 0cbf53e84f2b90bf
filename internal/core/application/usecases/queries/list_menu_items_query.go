package queries

import (
	"errors"

	"cafe/internal/pkg/guard"
)

var ErrListMenuItemsQueryIsNotConstructed = errors.New(
	"ListMenuItemsQuery must be created via NewListMenuItemsQuery constructor",
)

// ListMenuItemsQuery lists the menu in id order.
type ListMenuItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewListMenuItemsQuery creates the parameterless menu listing query.
func NewListMenuItemsQuery() ListMenuItemsQuery {
	return ListMenuItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrListMenuItemsQueryIsNotConstructed)
}

// MenuItemResponse is one menu entry.
type MenuItemResponse struct {
	ID   int64
	Name string
}
