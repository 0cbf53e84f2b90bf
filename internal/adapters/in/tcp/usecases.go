package tcp

import (
	"cafe/internal/core/application/usecases/commands"
	"cafe/internal/core/application/usecases/queries"
	"cafe/internal/core/ports"
)

// UseCases bundles the command and query handlers every session shares.
// There is one UseCases per store, built once at startup.
type UseCases struct {
	AddMenuItem    commands.AddMenuItemCommandHandler
	RemoveMenuItem commands.RemoveMenuItemCommandHandler
	PlaceOrder     commands.PlaceOrderCommandHandler
	MarkOrderReady commands.MarkOrderReadyCommandHandler

	ListMenuItems queries.ListMenuItemsQueryHandler
	GetMenuItem   queries.GetMenuItemQueryHandler
	GetOrder      queries.GetOrderQueryHandler
	ListOrders    queries.ListOrdersQueryHandler
}

// NewUseCases builds the handlers over one store.
func NewUseCases(uowFactory ports.UnitOfWorkFactory, viewer ports.Viewer, clock ports.Clock) *UseCases {
	return &UseCases{
		AddMenuItem:    commands.NewAddMenuItemCommandHandler(uowFactory),
		RemoveMenuItem: commands.NewRemoveMenuItemCommandHandler(uowFactory),
		PlaceOrder:     commands.NewPlaceOrderCommandHandler(uowFactory, clock),
		MarkOrderReady: commands.NewMarkOrderReadyCommandHandler(uowFactory, clock),

		ListMenuItems: queries.NewListMenuItemsQueryHandler(viewer),
		GetMenuItem:   queries.NewGetMenuItemQueryHandler(viewer),
		GetOrder:      queries.NewGetOrderQueryHandler(viewer, clock),
		ListOrders:    queries.NewListOrdersQueryHandler(viewer, clock),
	}
}

// namesByID maps menu item ids to names.
func namesByID(items []queries.MenuItemResponse) map[int64]string {
	names := make(map[int64]string, len(items))
	for _, item := range items {
		names[item.ID] = item.Name
	}
	return names
}
