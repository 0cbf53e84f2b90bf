// Package queries contains read-only operations over the cafe store.
// Handlers run inside a ports.Viewer view, so they never wait on each other
// and never see a half-written record.
package queries

import (
	"context"
	"time"

	"cafe/internal/core/domain/model/order"
	"cafe/internal/core/ports"
)

// OrderLineResponse is one order line with the item name resolved against
// the current menu.
type OrderLineResponse struct {
	ItemID   int64
	Name     string
	Quantity int
}

// OrderResponse is an order snapshot together with its derived status.
//
// Example:
//
//	response := OrderResponse{
//	    ID:       3,
//	    Lines:    []OrderLineResponse{{ItemID: 1, Name: "Black (Hot)", Quantity: 1}},
//	    PlacedAt: placedAt,
//	    Status:   order.Received,
//	    Summary:  "Black (Hot) x1",
//	}
type OrderResponse struct {
	ID       int64
	Lines    []OrderLineResponse
	PlacedAt time.Time
	ReadyAt  *time.Time
	Status   order.Status
	Summary  string
}

// menuNames maps every current menu item id to its name.
func menuNames(ctx context.Context, view ports.ReadView) (map[int64]string, error) {
	items, err := view.MenuRepository().List(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(items))
	for _, item := range items {
		names[item.ID()] = item.Name()
	}
	return names, nil
}

func newOrderResponse(o *order.Order, names map[int64]string, now time.Time) OrderResponse {
	lines := o.Lines()
	lineResponses := make([]OrderLineResponse, 0, len(lines))
	for _, line := range lines {
		lineResponses = append(lineResponses, OrderLineResponse{
			ItemID:   line.ItemID(),
			Name:     order.ItemName(line.ItemID(), names),
			Quantity: line.Quantity(),
		})
	}

	return OrderResponse{
		ID:       o.ID(),
		Lines:    lineResponses,
		PlacedAt: o.PlacedAt(),
		ReadyAt:  o.ReadyAt(),
		Status:   o.Status(now),
		Summary:  order.Summarize(lines, names),
	}
}
