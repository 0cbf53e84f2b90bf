package queries

import (
	"errors"

	"cafe/internal/pkg/errs"
	"cafe/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery looks up one order by id.
//
// Example:
//
//	query, err := NewGetOrderQuery(3)
//	if err != nil {
//	    return err
//	}
//	found, err := NewGetOrderQueryHandler(broker, ports.SystemClock).Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return "Order not found."
//	}
//	fmt.Printf("%d: %s\n", found.ID, found.Status)
type GetOrderQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery requires a positive order id.
func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, errs.NewValueIsInvalidError("order id")
	}

	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested id.
func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}
