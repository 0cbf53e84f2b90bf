package commands

import (
	"errors"

	"cafe/internal/core/domain/model/menu"
	"cafe/internal/pkg/guard"
)

var ErrAddMenuItemCommandIsNotConstructed = errors.New(
	"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
)

// AddMenuItemCommand represents a request to put a new item on the menu.
//
// Example:
//
//	cmd, err := NewAddMenuItemCommand(14, "Iced Matcha")
//	if err != nil {
//	    return fmt.Errorf("invalid menu item: %w", err)
//	}
//
//	handler := NewAddMenuItemCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err // menu.ErrDuplicateID or menu.ErrDuplicateName on conflicts
//	}
type AddMenuItemCommand struct {
	item menu.Item

	guard guard.ConstructorGuard
}

// NewAddMenuItemCommand validates id and name the same way menu.NewItem does.
func NewAddMenuItemCommand(id int64, name string) (AddMenuItemCommand, error) {
	item, err := menu.NewItem(id, name)
	if err != nil {
		return AddMenuItemCommand{}, err
	}

	return AddMenuItemCommand{
		item:  item,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

// Item returns the item to add.
func (c AddMenuItemCommand) Item() menu.Item {
	return c.item
}
