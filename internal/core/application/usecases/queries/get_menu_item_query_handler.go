package queries

import (
	"context"

	"cafe/internal/core/domain/model/menu"
	"cafe/internal/core/ports"
)

// GetMenuItemQueryHandler resolves menu item ids.
type GetMenuItemQueryHandler struct {
	viewer ports.Viewer
}

// NewGetMenuItemQueryHandler creates a handler reading through viewer.
func NewGetMenuItemQueryHandler(viewer ports.Viewer) GetMenuItemQueryHandler {
	return GetMenuItemQueryHandler{viewer: viewer}
}

// Handle returns the item or errs.ErrObjectNotFound.
func (h GetMenuItemQueryHandler) Handle(ctx context.Context, query GetMenuItemQuery) (MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return MenuItemResponse{}, err
	}

	var item menu.Item
	err := h.viewer.View(ctx, func(view ports.ReadView) error {
		var getErr error
		item, getErr = view.MenuRepository().Get(ctx, query.ItemID())
		return getErr
	})
	if err != nil {
		return MenuItemResponse{}, err
	}

	return MenuItemResponse{ID: item.ID(), Name: item.Name()}, nil
}
