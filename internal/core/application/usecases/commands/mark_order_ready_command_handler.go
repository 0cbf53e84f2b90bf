package commands

import (
	"context"

	"cafe/internal/core/domain/model/order"
	"cafe/internal/core/ports"
)

// MarkOrderReadyCommandHandler sets the ready time of orders.
type MarkOrderReadyCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

// NewMarkOrderReadyCommandHandler creates a handler that stamps ready times with clock.
func NewMarkOrderReadyCommandHandler(uowFactory UoWFactory, clock ports.Clock) MarkOrderReadyCommandHandler {
	return MarkOrderReadyCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle marks the order ready and returns the updated order, or
// errs.ErrObjectNotFound. The stored ready time never moves backward.
func (h *MarkOrderReadyCommandHandler) Handle(ctx context.Context, cmd MarkOrderReadyCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	existing.MarkReady(h.clock.Now())
	if err = orderRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
