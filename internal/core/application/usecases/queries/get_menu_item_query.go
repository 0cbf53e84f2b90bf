package queries

import (
	"errors"

	"cafe/internal/pkg/errs"
	"cafe/internal/pkg/guard"
)

var ErrGetMenuItemQueryIsNotConstructed = errors.New(
	"GetMenuItemQuery must be created via NewGetMenuItemQuery constructor",
)

// GetMenuItemQuery looks up one menu item by id.
type GetMenuItemQuery struct {
	itemID int64

	guard guard.ConstructorGuard
}

// NewGetMenuItemQuery requires a positive item id.
func NewGetMenuItemQuery(itemID int64) (GetMenuItemQuery, error) {
	if itemID <= 0 {
		return GetMenuItemQuery{}, errs.NewValueIsInvalidError("menu item id")
	}

	return GetMenuItemQuery{itemID: itemID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuItemQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemQueryIsNotConstructed)
}

// ItemID returns the requested id.
func (q GetMenuItemQuery) ItemID() int64 {
	return q.itemID
}
