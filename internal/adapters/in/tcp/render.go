package tcp

import (
	"fmt"
	"strings"
	"time"

	"cafe/internal/core/application/usecases/queries"
)

const timestampLayout = "2006-01-02 15:04:05"

var rule = strings.Repeat("=", 48)

// MsgInternalError is shown for failures the user cannot act on, such as
// storage errors. The cause is logged.
const MsgInternalError = "Something went wrong, please try again."

// MsgLineTooLong answers a command line longer than maxLineLength.
const MsgLineTooLong = "Line too long."

func formatTimestamp(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format(timestampLayout)
}

func renderMenu(items []queries.MenuItemResponse) []string {
	lines := []string{"", rule, "            CAFE CURSOR MENU", rule}
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("  %2d. %s", item.ID, item.Name))
	}
	return append(lines, "", "Use `add <item #>` to place things in your cart.", rule)
}

func renderMenuList(items []queries.MenuItemResponse) []string {
	if len(items) == 0 {
		return []string{"No menu items found."}
	}

	lines := []string{"Menu Items:"}
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("  %2d. %s", item.ID, item.Name))
	}
	return lines
}

func renderCart(entries []string) []string {
	if len(entries) == 0 {
		return []string{"Cart is empty. Use `add <item #>` to begin."}
	}

	lines := append([]string{"--- Cart ---"}, entries...)
	return append(lines, "------------")
}

func renderOrderConfirmed(orderID int64) []string {
	return []string{
		"",
		rule,
		"ORDER CONFIRMED",
		fmt.Sprintf("Order ID: %d", orderID),
		fmt.Sprintf("Use `status %d` anytime to check progress.", orderID),
		rule,
	}
}

func renderOrderList(orders []queries.OrderResponse) []string {
	if len(orders) == 0 {
		return []string{"No orders found."}
	}

	lines := []string{"Current Orders:"}
	for _, o := range orders {
		placedAt := o.PlacedAt
		lines = append(lines,
			fmt.Sprintf("#%04d [%s] placed %s ready %s", o.ID, o.Status.Stage(), formatTimestamp(&placedAt), formatTimestamp(o.ReadyAt)),
			"    "+o.Summary,
		)
	}
	return lines
}

func renderOrderDetail(o queries.OrderResponse) []string {
	placedAt := o.PlacedAt
	return []string{
		fmt.Sprintf("Order %d: %s", o.ID, o.Status),
		"  Placed: " + formatTimestamp(&placedAt),
		"  Ready:  " + formatTimestamp(o.ReadyAt),
		"  Items:  " + o.Summary,
	}
}

var customerHelp = []string{
	"Commands:",
	"  menu                    Show Cafe Cursor offerings",
	"  add <item #> [qty]      Add menu item to cart",
	"  cart                    Review current cart",
	"  order                   Place the current cart",
	"  status <order id>       Check order status",
	"  help                    Show this message",
	"  exit                    Quit the app",
}

var staffHelp = []string{
	"Backend Commands:",
	"  list                    Show all orders and status",
	"  status <order id>       Show details for one order",
	"  ready <order id>        Mark order as ready",
	"  menu-list               Show all menu items",
	"  menu-add <id> <name>    Add a new menu item",
	"  menu-remove <id>        Remove a menu item",
	"  help                    Show this message",
	"  exit                    Quit the console",
}
