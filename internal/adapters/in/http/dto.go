package http

import (
	"time"

	"cafe/internal/core/application/usecases/queries"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MenuItem is one menu entry.
type MenuItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// OrderItem is one order line. Name is "Item N" when the item is no longer
// on the menu.
type OrderItem struct {
	ItemID   int64  `json:"item_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	Items []OrderItemRequest `json:"items"`
}

// OrderItemRequest asks for quantity units of one menu item.
type OrderItemRequest struct {
	ItemID   int64 `json:"item_id"`
	Quantity int   `json:"quantity"`
}

// Order is an order with its derived status label.
type Order struct {
	ID       int64       `json:"id"`
	Items    []OrderItem `json:"items"`
	PlacedAt time.Time   `json:"placed_at"`
	ReadyAt  *time.Time  `json:"ready_at,omitempty"`
	Status   string      `json:"status"`
	Ready    bool        `json:"ready"`
}

// Backlog summarizes orders that are not ready.
type Backlog struct {
	Pending          int     `json:"pending"`
	Received         int     `json:"received"`
	Preparing        int     `json:"preparing"`
	AlmostReady      int     `json:"almost_ready"`
	OldestOrderID    int64   `json:"oldest_order_id,omitempty"`
	OldestAgeSeconds float64 `json:"oldest_age_seconds"`
}

func toOrder(o queries.OrderResponse) Order {
	items := make([]OrderItem, len(o.Lines))
	for i, line := range o.Lines {
		items[i] = OrderItem{ItemID: line.ItemID, Name: line.Name, Quantity: line.Quantity}
	}

	return Order{
		ID:       o.ID,
		Items:    items,
		PlacedAt: o.PlacedAt.UTC(),
		ReadyAt:  o.ReadyAt,
		Status:   o.Status.String(),
		Ready:    o.Status.IsReady(),
	}
}
