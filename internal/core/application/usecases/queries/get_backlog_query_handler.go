package queries

import (
	"context"

	"cafe/internal/core/domain/model/order"
	"cafe/internal/core/ports"
)

// GetBacklogQueryHandler reports the pending workload for the backlog job
// and the ops API.
type GetBacklogQueryHandler struct {
	viewer ports.Viewer
	clock  ports.Clock
}

// NewGetBacklogQueryHandler creates a handler reading through viewer.
func NewGetBacklogQueryHandler(viewer ports.Viewer, clock ports.Clock) GetBacklogQueryHandler {
	return GetBacklogQueryHandler{viewer: viewer, clock: clock}
}

// Handle counts orders without a ready time.
func (h GetBacklogQueryHandler) Handle(ctx context.Context, query GetBacklogQuery) (GetBacklogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBacklogQueryResponse{}, err
	}

	var pending []*order.Order
	err := h.viewer.View(ctx, func(view ports.ReadView) error {
		var listErr error
		pending, listErr = view.OrderRepository().ListPending(ctx)
		return listErr
	})
	if err != nil {
		return GetBacklogQueryResponse{}, err
	}

	now := h.clock.Now()
	response := GetBacklogQueryResponse{Pending: len(pending)}
	for i, o := range pending {
		switch o.Status(now) {
		case order.Received:
			response.Received++
		case order.Preparing:
			response.Preparing++
		case order.AlmostReady:
			response.AlmostReady++
		case order.Unknown, order.Ready:
		}

		// pending orders come oldest first
		if i == 0 {
			response.OldestID = o.ID()
			response.OldestAge = now.Sub(o.PlacedAt())
		}
	}

	return response, nil
}
