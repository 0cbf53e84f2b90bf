package commands

import (
	"context"

	"cafe/internal/core/domain/model/menu"
)

// RemoveMenuItemCommandHandler removes menu items.
type RemoveMenuItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewRemoveMenuItemCommandHandler creates a handler for menu removals.
func NewRemoveMenuItemCommandHandler(uowFactory UoWFactory) RemoveMenuItemCommandHandler {
	return RemoveMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the item and returns it, or errs.ErrObjectNotFound.
func (h *RemoveMenuItemCommandHandler) Handle(ctx context.Context, cmd RemoveMenuItemCommand) (menu.Item, error) {
	if err := cmd.Validate(); err != nil {
		return menu.Item{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return menu.Item{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.MenuRepository().Remove(ctx, cmd.ItemID())
	if err != nil {
		return menu.Item{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return menu.Item{}, err
	}

	return removed, nil
}
