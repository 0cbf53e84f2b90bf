package commands_test

import (
	"testing"

	"cafe/internal/core/application/usecases/commands"
	"cafe/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRemoveMenuItemCommand(t *testing.T) {
	cmd, err := commands.NewRemoveMenuItemCommand(5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), cmd.ItemID())

	_, err = commands.NewRemoveMenuItemCommand(-1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
