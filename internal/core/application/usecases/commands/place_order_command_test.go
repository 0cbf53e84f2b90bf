package commands_test

import (
	"testing"

	"cafe/internal/core/application/usecases/commands"
	"cafe/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLine(t *testing.T, itemID int64, qty int) order.Line {
	t.Helper()
	line, err := order.NewLine(itemID, qty)
	require.NoError(t, err)
	return line
}

func TestNewPlaceOrderCommand_ValidInput(t *testing.T) {
	lines := []order.Line{mustLine(t, 1, 1), mustLine(t, 5, 2)}

	cmd, err := commands.NewPlaceOrderCommand(lines)
	require.NoError(t, err)
	assert.Equal(t, lines, cmd.Lines())

	lines[0] = mustLine(t, 9, 9)
	assert.Equal(t, int64(1), cmd.Lines()[0].ItemID(), "command keeps its own copy")
}

func TestNewPlaceOrderCommand_EmptyCart(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(nil)
	require.ErrorIs(t, err, order.ErrEmptyCart)
}

func TestNewPlaceOrderCommand_UnconstructedLine(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand([]order.Line{{}})
	require.ErrorIs(t, err, order.ErrLineIsNotConstructed)
}
