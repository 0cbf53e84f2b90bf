package tcp

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cafe/internal/core/application/usecases/commands"
	"cafe/internal/core/application/usecases/queries"
	"cafe/internal/core/domain/model/cart"
	"cafe/internal/core/domain/model/order"
	"cafe/internal/pkg/errs"
)

// customerCommand is the closed set of customer commands. Each command
// dispatches to its own customerHandler method, so a new command does not
// compile until the handler supports it.
type customerCommand interface {
	dispatchCustomer(ctx context.Context, h customerHandler) (reply, error)
}

type customerHandler interface {
	showMenu(ctx context.Context) (reply, error)
	addToCart(ctx context.Context, cmd addCommand) (reply, error)
	showCart(ctx context.Context) (reply, error)
	placeOrder(ctx context.Context) (reply, error)
	orderStatus(ctx context.Context, cmd statusCommand) (reply, error)
	help() reply
	exit() reply
}

type (
	menuCommand struct{}

	addCommand struct {
		itemID   int64
		quantity int
	}

	cartCommand struct{}

	orderCommand struct{}

	// statusCommand is shared by both roles; staff get the detailed view.
	statusCommand struct {
		orderID int64
	}
)

func (menuCommand) dispatchCustomer(ctx context.Context, h customerHandler) (reply, error) {
	return h.showMenu(ctx)
}

func (c addCommand) dispatchCustomer(ctx context.Context, h customerHandler) (reply, error) {
	return h.addToCart(ctx, c)
}

func (cartCommand) dispatchCustomer(ctx context.Context, h customerHandler) (reply, error) {
	return h.showCart(ctx)
}

func (orderCommand) dispatchCustomer(ctx context.Context, h customerHandler) (reply, error) {
	return h.placeOrder(ctx)
}

func (c statusCommand) dispatchCustomer(ctx context.Context, h customerHandler) (reply, error) {
	return h.orderStatus(ctx, c)
}

func (helpCommand) dispatchCustomer(_ context.Context, h customerHandler) (reply, error) {
	return h.help(), nil
}

func (exitCommand) dispatchCustomer(_ context.Context, h customerHandler) (reply, error) {
	return h.exit(), nil
}

func parseCustomerCommand(line string) (customerCommand, error) {
	name, rest := splitCommand(line)
	args := strings.Fields(rest)

	switch name {
	case "menu":
		return menuCommand{}, nil
	case "add":
		return parseAddCommand(args)
	case "cart":
		return cartCommand{}, nil
	case "order":
		return orderCommand{}, nil
	case "status":
		return parseStatusCommand(args)
	case "help", "?":
		return helpCommand{}, nil
	case "exit", "quit":
		return exitCommand{}, nil
	default:
		return nil, newUserError("Unknown command. Type `help` for options.")
	}
}

func parseAddCommand(args []string) (addCommand, error) {
	if len(args) == 0 || len(args) > 2 {
		return addCommand{}, newUserError("Usage: add <item #> [quantity]")
	}

	itemID, err := parsePositiveID(args[0], "Item number")
	if err != nil {
		return addCommand{}, err
	}

	quantity := 1
	if len(args) == 2 {
		quantity, err = strconv.Atoi(args[1])
		if err != nil || quantity <= 0 {
			return addCommand{}, newUserError("Quantity must be a positive integer.")
		}
	}

	return addCommand{itemID: itemID, quantity: quantity}, nil
}

func parseStatusCommand(args []string) (statusCommand, error) {
	if len(args) != 1 {
		return statusCommand{}, newUserError("Usage: status <order id>")
	}

	orderID, err := parsePositiveID(args[0], "Order id")
	if err != nil {
		return statusCommand{}, err
	}
	return statusCommand{orderID: orderID}, nil
}

// customerDialect serves the customer protocol. It owns the session's cart.
type customerDialect struct {
	useCases *UseCases
	cart     *cart.Cart
}

var _ customerHandler = (*customerDialect)(nil)

func newCustomerDialect(useCases *UseCases) *customerDialect {
	return &customerDialect{
		useCases: useCases,
		cart:     cart.New(),
	}
}

func (d *customerDialect) greeting() []string {
	return append([]string{"", "Welcome to Cafe Cursor!", ""}, customerHelp...)
}

func (d *customerDialect) prompt() string {
	return "cmd> "
}

func (d *customerDialect) execute(ctx context.Context, line string) (reply, error) {
	cmd, err := parseCustomerCommand(line)
	if err != nil {
		return reply{}, err
	}
	return cmd.dispatchCustomer(ctx, d)
}

func (d *customerDialect) showMenu(ctx context.Context) (reply, error) {
	items, err := d.useCases.ListMenuItems.Handle(ctx, queries.NewListMenuItemsQuery())
	if err != nil {
		return reply{}, err
	}
	return say(renderMenu(items)...), nil
}

func (d *customerDialect) addToCart(ctx context.Context, cmd addCommand) (reply, error) {
	query, err := queries.NewGetMenuItemQuery(cmd.itemID)
	if err != nil {
		return reply{}, err
	}

	item, err := d.useCases.GetMenuItem.Handle(ctx, query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return reply{}, newUserError(fmt.Sprintf("Item #%d is not on the menu.", cmd.itemID))
	}
	if err != nil {
		return reply{}, err
	}

	if err = d.cart.Add(item.ID, cmd.quantity); err != nil {
		if errors.Is(err, errs.ErrValueIsOutOfRange) {
			return reply{}, newUserError(fmt.Sprintf("You can order at most %d of one item.", cart.MaxQuantity))
		}
		return reply{}, newUserError("Quantity must be a positive integer.")
	}

	return say(fmt.Sprintf("Added %d %s to cart.", cmd.quantity, item.Name)), nil
}

func (d *customerDialect) showCart(ctx context.Context) (reply, error) {
	if d.cart.IsEmpty() {
		return say(renderCart(nil)...), nil
	}

	items, err := d.useCases.ListMenuItems.Handle(ctx, queries.NewListMenuItemsQuery())
	if err != nil {
		return reply{}, err
	}
	names := namesByID(items)

	lines := d.cart.Lines()
	entries := make([]string, 0, len(lines))
	for _, line := range lines {
		entries = append(entries, fmt.Sprintf("%s x%d", order.ItemName(line.ItemID(), names), line.Quantity()))
	}
	return say(renderCart(entries)...), nil
}

func (d *customerDialect) placeOrder(ctx context.Context) (reply, error) {
	cmd, err := commands.NewPlaceOrderCommand(d.cart.Lines())
	if errors.Is(err, order.ErrEmptyCart) {
		return reply{}, newUserError("Cart is empty. Add items first via `add <item #>`.")
	}
	if err != nil {
		return reply{}, err
	}

	placed, err := d.useCases.PlaceOrder.Handle(ctx, cmd)
	if err != nil {
		return reply{}, err
	}

	d.cart.Clear()
	return say(renderOrderConfirmed(placed.ID())...), nil
}

func (d *customerDialect) orderStatus(ctx context.Context, cmd statusCommand) (reply, error) {
	found, err := getOrder(ctx, d.useCases, cmd.orderID)
	if err != nil {
		return reply{}, err
	}
	return say(fmt.Sprintf("%d: %s", found.ID, found.Status)), nil
}

func (d *customerDialect) help() reply {
	return say(customerHelp...)
}

func (d *customerDialect) exit() reply {
	return reply{lines: []string{goodbye}, close: true}
}

// getOrder loads an order for either role, turning an unknown id into a
// user-facing message.
func getOrder(ctx context.Context, useCases *UseCases, orderID int64) (queries.OrderResponse, error) {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return queries.OrderResponse{}, err
	}

	found, err := useCases.GetOrder.Handle(ctx, query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return queries.OrderResponse{}, newUserError(fmt.Sprintf("No order found with id %d.", orderID))
	}
	return found, err
}
