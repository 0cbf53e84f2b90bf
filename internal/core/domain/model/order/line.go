package order

import (
	"errors"
	"fmt"

	"cafe/internal/pkg/errs"
	"cafe/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when a Line was not created through NewLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one entry of an order: a menu item id and how many of it.
type Line struct {
	itemID   int64
	quantity int

	guard guard.ConstructorGuard
}

// NewLine validates and creates an order line.
// The item id must be positive and the quantity at least 1.
func NewLine(itemID int64, quantity int) (Line, error) {
	line := Line{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		line.setItemID(itemID),
		line.setQuantity(quantity),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate ensures the line was created through NewLine.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ItemID returns the referenced menu item id.
func (l Line) ItemID() int64 {
	return l.itemID
}

// Quantity returns how many units of the item were ordered.
func (l Line) Quantity() int {
	return l.quantity
}

func (l *Line) setItemID(itemID int64) error {
	if itemID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("menu item id", fmt.Errorf("%d is not greater than 0", itemID))
	}
	l.itemID = itemID
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}
