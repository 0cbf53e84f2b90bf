package commands

import (
	"errors"
	"slices"

	"cafe/internal/core/domain/model/order"
	"cafe/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand turns a cart snapshot into an order.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(cart.Lines())
//	if errors.Is(err, order.ErrEmptyCart) {
//	    return "Your cart is empty."
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, ports.SystemClock)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	cart.Clear()
//	fmt.Printf("Order ID: %d\n", placed.ID())
type PlaceOrderCommand struct {
	lines []order.Line

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand copies lines. It returns order.ErrEmptyCart when
// there are none.
func NewPlaceOrderCommand(lines []order.Line) (PlaceOrderCommand, error) {
	if len(lines) == 0 {
		return PlaceOrderCommand{}, order.ErrEmptyCart
	}

	var errList []error
	for _, line := range lines {
		errList = append(errList, line.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return PlaceOrderCommand{}, err
	}

	return PlaceOrderCommand{
		lines: slices.Clone(lines),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Lines returns the order lines in cart order.
func (c PlaceOrderCommand) Lines() []order.Line {
	return slices.Clone(c.lines)
}
