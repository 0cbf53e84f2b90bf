package order

import (
	"errors"
	"fmt"
	"time"

	"cafe/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrEmptyCart is returned when an order is placed without any lines.
	ErrEmptyCart = errors.New("cart is empty")
)

// Order represents a placed cafe order. It is the aggregate root of the
// order lifecycle: created from a cart snapshot, later marked ready by staff.
//
// Order follows these invariants:
//   - Has at least one valid line
//   - placedAt never changes after creation
//   - readyAt is absent until the first MarkReady and never cleared afterwards
//   - readyAt never moves backward in time
//   - Id is zero until the order store assigns one
type Order struct {
	// id is assigned by the order store, zero for unsaved orders
	id int64

	// lines holds the ordered (item id, quantity) pairs
	lines []Line

	// placedAt is when the customer placed the order
	placedAt time.Time

	// readyAt is when staff marked the order ready (nil if not yet ready)
	readyAt *time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an unsaved order from a snapshot of cart lines.
//
// Parameters:
//   - lines: Ordered item lines; must not be empty
//   - placedAt: Placement timestamp
//
// Returns ErrEmptyCart when lines is empty, or a validation error when a
// line was not built through NewLine.
//
// Example:
//
//	line, _ := order.NewLine(5, 2)
//	o, err := order.NewOrder([]order.Line{line}, clock.Now())
func NewOrder(lines []Line, placedAt time.Time) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setLines(lines),
		o.setPlacedAt(placedAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds a persisted order. It applies the same validation
// as NewOrder and additionally requires a positive id.
func RestoreOrder(id int64, lines []Line, placedAt time.Time, readyAt *time.Time) (*Order, error) {
	o, err := NewOrder(lines, placedAt)
	if err != nil {
		return nil, err
	}

	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id

	if readyAt != nil {
		ready := *readyAt
		o.readyAt = &ready
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// ID returns the store-assigned identifier, zero for unsaved orders.
func (o *Order) ID() int64 {
	return o.id
}

// Lines returns a copy of the order's item lines in placement order.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// PlacedAt returns when the order was placed.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// ReadyAt returns when the order was marked ready, or nil.
func (o *Order) ReadyAt() *time.Time {
	if o.readyAt == nil {
		return nil
	}
	ready := *o.readyAt
	return &ready
}

// IsReady reports whether staff marked the order ready.
func (o *Order) IsReady() bool {
	return o.readyAt != nil
}

// Status derives the customer-facing status at the given instant.
func (o *Order) Status(now time.Time) Status {
	return DeriveStatus(o.placedAt, o.readyAt, now)
}

// MarkReady records that the order is ready for pickup at now.
//
// Calling MarkReady on an order that is already ready refreshes readyAt,
// except that readyAt never moves backward: if now is earlier than the
// stored value (for example after a clock adjustment) the stored value wins.
func (o *Order) MarkReady(now time.Time) {
	if o.readyAt != nil && now.Before(*o.readyAt) {
		return
	}
	ready := now
	o.readyAt = &ready
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrEmptyCart
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

func (o *Order) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("placed at")
	}
	o.placedAt = placedAt
	return nil
}
