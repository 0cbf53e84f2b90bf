package queries

import (
	"context"

	"cafe/internal/core/domain/model/menu"
	"cafe/internal/core/ports"
)

// ListMenuItemsQueryHandler reads the menu.
//
// Example:
//
//	handler := NewListMenuItemsQueryHandler(broker)
//	items, err := handler.Handle(ctx, NewListMenuItemsQuery())
//	if err != nil {
//	    return err
//	}
//	for _, item := range items {
//	    fmt.Printf("%2d. %s\n", item.ID, item.Name)
//	}
type ListMenuItemsQueryHandler struct {
	viewer ports.Viewer
}

// NewListMenuItemsQueryHandler creates a handler reading through viewer.
func NewListMenuItemsQueryHandler(viewer ports.Viewer) ListMenuItemsQueryHandler {
	return ListMenuItemsQueryHandler{viewer: viewer}
}

// Handle returns the menu ordered by id ascending.
func (h ListMenuItemsQueryHandler) Handle(ctx context.Context, query ListMenuItemsQuery) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var items []menu.Item
	err := h.viewer.View(ctx, func(view ports.ReadView) error {
		var listErr error
		items, listErr = view.MenuRepository().List(ctx)
		return listErr
	})
	if err != nil {
		return nil, err
	}

	response := make([]MenuItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, MenuItemResponse{ID: item.ID(), Name: item.Name()})
	}
	return response, nil
}
