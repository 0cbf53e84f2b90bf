package queries

import (
	"context"

	"cafe/internal/core/ports"
)

// GetOrderQueryHandler reads single orders and derives their status at the
// clock's current time.
type GetOrderQueryHandler struct {
	viewer ports.Viewer
	clock  ports.Clock
}

// NewGetOrderQueryHandler creates a handler reading through viewer.
func NewGetOrderQueryHandler(viewer ports.Viewer, clock ports.Clock) GetOrderQueryHandler {
	return GetOrderQueryHandler{viewer: viewer, clock: clock}
}

// Handle returns the order or errs.ErrObjectNotFound.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var response OrderResponse
	err := h.viewer.View(ctx, func(view ports.ReadView) error {
		found, err := view.OrderRepository().Get(ctx, query.OrderID())
		if err != nil {
			return err
		}

		names, err := menuNames(ctx, view)
		if err != nil {
			return err
		}

		response = newOrderResponse(found, names, h.clock.Now())
		return nil
	})

	return response, err
}
