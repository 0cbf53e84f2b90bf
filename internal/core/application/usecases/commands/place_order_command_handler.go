package commands

import (
	"context"

	"cafe/internal/core/domain/model/order"
	"cafe/internal/core/ports"
)

// PlaceOrderCommandHandler creates orders. Ids come from the store and are
// assigned while the unit of work holds the write lock, so concurrent
// sessions always get distinct, increasing ids.
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

// NewPlaceOrderCommandHandler creates a handler that stamps orders with clock.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory, clock ports.Clock) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle places the order and returns it with its assigned id.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
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

	// placed_at is taken inside the lock so it follows id order
	newOrder, err := order.NewOrder(cmd.Lines(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	placed, err := uow.OrderRepository().Add(ctx, newOrder)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
