package commands

import (
	"context"
)

// AddMenuItemCommandHandler stores new menu items.
type AddMenuItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddMenuItemCommandHandler creates a handler for menu additions.
func NewAddMenuItemCommandHandler(uowFactory UoWFactory) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle adds the item. The id and name checks and the insert run in one
// unit of work, so two sessions can never add the same id or name.
func (h *AddMenuItemCommandHandler) Handle(ctx context.Context, cmd AddMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.MenuRepository().Add(ctx, cmd.Item()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
