package commands

import (
	"errors"

	"cafe/internal/pkg/errs"
	"cafe/internal/pkg/guard"
)

var ErrRemoveMenuItemCommandIsNotConstructed = errors.New(
	"RemoveMenuItemCommand must be created via NewRemoveMenuItemCommand constructor",
)

// RemoveMenuItemCommand takes an item off the menu. Orders that reference
// the item keep their lines.
type RemoveMenuItemCommand struct {
	itemID int64

	guard guard.ConstructorGuard
}

// NewRemoveMenuItemCommand requires a positive item id.
func NewRemoveMenuItemCommand(itemID int64) (RemoveMenuItemCommand, error) {
	if itemID <= 0 {
		return RemoveMenuItemCommand{}, errs.NewValueIsInvalidError("menu item id")
	}

	return RemoveMenuItemCommand{
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveMenuItemCommandIsNotConstructed)
}

// ItemID returns the id of the item to remove.
func (c RemoveMenuItemCommand) ItemID() int64 {
	return c.itemID
}
