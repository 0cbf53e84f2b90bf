package commands

import (
	"errors"

	"cafe/internal/pkg/errs"
	"cafe/internal/pkg/guard"
)

var ErrMarkOrderReadyCommandIsNotConstructed = errors.New(
	"MarkOrderReadyCommand must be created via NewMarkOrderReadyCommand constructor",
)

// MarkOrderReadyCommand stamps an order as ready for pickup. Repeating it
// refreshes the ready time.
type MarkOrderReadyCommand struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewMarkOrderReadyCommand requires a positive order id.
func NewMarkOrderReadyCommand(orderID int64) (MarkOrderReadyCommand, error) {
	if orderID <= 0 {
		return MarkOrderReadyCommand{}, errs.NewValueIsInvalidError("order id")
	}

	return MarkOrderReadyCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderReadyCommandIsNotConstructed)
}

// OrderID returns the id of the order to mark.
func (c MarkOrderReadyCommand) OrderID() int64 {
	return c.orderID
}
