package queries

import (
	"context"

	"cafe/internal/core/ports"
)

// ListOrdersQueryHandler reads all orders with their derived status.
type ListOrdersQueryHandler struct {
	viewer ports.Viewer
	clock  ports.Clock
}

// NewListOrdersQueryHandler creates a handler reading through viewer.
func NewListOrdersQueryHandler(viewer ports.Viewer, clock ports.Clock) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{viewer: viewer, clock: clock}
}

// Handle returns all orders ordered by id descending. Every status is
// derived at the same instant.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	response := make([]OrderResponse, 0)
	err := h.viewer.View(ctx, func(view ports.ReadView) error {
		orders, err := view.OrderRepository().List(ctx)
		if err != nil {
			return err
		}

		names, err := menuNames(ctx, view)
		if err != nil {
			return err
		}

		now := h.clock.Now()
		for _, o := range orders {
			response = append(response, newOrderResponse(o, names, now))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return response, nil
}
