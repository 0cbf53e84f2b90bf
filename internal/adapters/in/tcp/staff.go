package tcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"cafe/internal/core/application/usecases/commands"
	"cafe/internal/core/application/usecases/queries"
	"cafe/internal/core/domain/model/menu"
	"cafe/internal/pkg/errs"
)

// staffCommand is the closed set of staff commands, dispatched the same way
// as customerCommand.
type staffCommand interface {
	dispatchStaff(ctx context.Context, h staffHandler) (reply, error)
}

type staffHandler interface {
	listOrders(ctx context.Context) (reply, error)
	orderDetail(ctx context.Context, cmd statusCommand) (reply, error)
	markReady(ctx context.Context, cmd readyCommand) (reply, error)
	listMenu(ctx context.Context) (reply, error)
	addMenuItem(ctx context.Context, cmd menuAddCommand) (reply, error)
	removeMenuItem(ctx context.Context, cmd menuRemoveCommand) (reply, error)
	help() reply
	exit() reply
}

type (
	listCommand struct{}

	readyCommand struct {
		orderID int64
	}

	menuListCommand struct{}

	menuAddCommand struct {
		itemID int64
		name   string
	}

	menuRemoveCommand struct {
		itemID int64
	}
)

func (listCommand) dispatchStaff(ctx context.Context, h staffHandler) (reply, error) {
	return h.listOrders(ctx)
}

func (c statusCommand) dispatchStaff(ctx context.Context, h staffHandler) (reply, error) {
	return h.orderDetail(ctx, c)
}

func (c readyCommand) dispatchStaff(ctx context.Context, h staffHandler) (reply, error) {
	return h.markReady(ctx, c)
}

func (menuListCommand) dispatchStaff(ctx context.Context, h staffHandler) (reply, error) {
	return h.listMenu(ctx)
}

func (c menuAddCommand) dispatchStaff(ctx context.Context, h staffHandler) (reply, error) {
	return h.addMenuItem(ctx, c)
}

func (c menuRemoveCommand) dispatchStaff(ctx context.Context, h staffHandler) (reply, error) {
	return h.removeMenuItem(ctx, c)
}

func (helpCommand) dispatchStaff(_ context.Context, h staffHandler) (reply, error) {
	return h.help(), nil
}

func (exitCommand) dispatchStaff(_ context.Context, h staffHandler) (reply, error) {
	return h.exit(), nil
}

func parseStaffCommand(line string) (staffCommand, error) {
	name, rest := splitCommand(line)
	args := strings.Fields(rest)

	switch name {
	case "list":
		return listCommand{}, nil
	case "status":
		return parseStatusCommand(args)
	case "ready":
		if len(args) != 1 {
			return nil, newUserError("Usage: ready <order id>")
		}
		orderID, err := parsePositiveID(args[0], "Order id")
		if err != nil {
			return nil, err
		}
		return readyCommand{orderID: orderID}, nil
	case "menu-list":
		return menuListCommand{}, nil
	case "menu-add":
		return parseMenuAddCommand(rest)
	case "menu-remove":
		if len(args) != 1 {
			return nil, newUserError("Usage: menu-remove <item id>")
		}
		itemID, err := parsePositiveID(args[0], "Item id")
		if err != nil {
			return nil, err
		}
		return menuRemoveCommand{itemID: itemID}, nil
	case "help", "?":
		return helpCommand{}, nil
	case "exit", "quit":
		return exitCommand{}, nil
	default:
		return nil, newUserError("Unknown backend command. Type `help` for options.")
	}
}

// parseMenuAddCommand reads `<id> <name>`. The name is the rest of the
// line, so it may contain spaces, and one pair of surrounding quotes is
// dropped.
func parseMenuAddCommand(rest string) (menuAddCommand, error) {
	usage := newUserError("Usage: menu-add <item id> \"<name>\"")

	i := strings.IndexFunc(rest, unicode.IsSpace)
	if i < 0 {
		return menuAddCommand{}, usage
	}

	itemID, err := parsePositiveID(rest[:i], "Item id")
	if err != nil {
		return menuAddCommand{}, err
	}

	name := unquote(strings.TrimSpace(rest[i:]))
	if strings.TrimSpace(name) == "" {
		return menuAddCommand{}, usage
	}

	return menuAddCommand{itemID: itemID, name: name}, nil
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// staffDialect serves the staff protocol.
type staffDialect struct {
	useCases *UseCases
}

var _ staffHandler = (*staffDialect)(nil)

func newStaffDialect(useCases *UseCases) *staffDialect {
	return &staffDialect{useCases: useCases}
}

func (d *staffDialect) greeting() []string {
	return append([]string{"", "Cafe Cursor Backend Console", ""}, staffHelp...)
}

func (d *staffDialect) prompt() string {
	return "bknd> "
}

func (d *staffDialect) execute(ctx context.Context, line string) (reply, error) {
	cmd, err := parseStaffCommand(line)
	if err != nil {
		return reply{}, err
	}
	return cmd.dispatchStaff(ctx, d)
}

func (d *staffDialect) listOrders(ctx context.Context) (reply, error) {
	orders, err := d.useCases.ListOrders.Handle(ctx, queries.NewListOrdersQuery())
	if err != nil {
		return reply{}, err
	}
	return say(renderOrderList(orders)...), nil
}

func (d *staffDialect) orderDetail(ctx context.Context, cmd statusCommand) (reply, error) {
	found, err := getOrder(ctx, d.useCases, cmd.orderID)
	if err != nil {
		return reply{}, err
	}
	return say(renderOrderDetail(found)...), nil
}

func (d *staffDialect) markReady(ctx context.Context, cmd readyCommand) (reply, error) {
	markCmd, err := commands.NewMarkOrderReadyCommand(cmd.orderID)
	if err != nil {
		return reply{}, err
	}

	updated, err := d.useCases.MarkOrderReady.Handle(ctx, markCmd)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return reply{}, newUserError(fmt.Sprintf("No order found with id %d.", cmd.orderID))
	}
	if err != nil {
		return reply{}, err
	}

	return say(fmt.Sprintf("Order %d marked ready at %s.", updated.ID(), formatTimestamp(updated.ReadyAt()))), nil
}

func (d *staffDialect) listMenu(ctx context.Context) (reply, error) {
	items, err := d.useCases.ListMenuItems.Handle(ctx, queries.NewListMenuItemsQuery())
	if err != nil {
		return reply{}, err
	}
	return say(renderMenuList(items)...), nil
}

func (d *staffDialect) addMenuItem(ctx context.Context, cmd menuAddCommand) (reply, error) {
	addCmd, err := commands.NewAddMenuItemCommand(cmd.itemID, cmd.name)
	if errors.Is(err, errs.ErrValueIsOutOfRange) {
		return reply{}, newUserError(fmt.Sprintf("Item name must be at most %d characters.", menu.MaxNameLength))
	}
	if err != nil {
		return reply{}, err
	}

	err = d.useCases.AddMenuItem.Handle(ctx, addCmd)
	switch {
	case errors.Is(err, menu.ErrDuplicateID):
		return reply{}, newUserError(fmt.Sprintf("Menu item id %d already exists.", cmd.itemID))
	case errors.Is(err, menu.ErrDuplicateName):
		return reply{}, newUserError(fmt.Sprintf("A menu item named '%s' already exists.", addCmd.Item().Name()))
	case err != nil:
		return reply{}, err
	}

	return say(fmt.Sprintf("Menu item %d '%s' added.", cmd.itemID, addCmd.Item().Name())), nil
}

func (d *staffDialect) removeMenuItem(ctx context.Context, cmd menuRemoveCommand) (reply, error) {
	removeCmd, err := commands.NewRemoveMenuItemCommand(cmd.itemID)
	if err != nil {
		return reply{}, err
	}

	removed, err := d.useCases.RemoveMenuItem.Handle(ctx, removeCmd)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return reply{}, newUserError(fmt.Sprintf("Menu item %d not found.", cmd.itemID))
	}
	if err != nil {
		return reply{}, err
	}

	return say(fmt.Sprintf("Menu item %d '%s' removed.", removed.ID(), removed.Name())), nil
}

func (d *staffDialect) help() reply {
	return say(staffHelp...)
}

func (d *staffDialect) exit() reply {
	return reply{lines: []string{goodbye}, close: true}
}
