package menu_test

import (
	"strings"
	"testing"

	"cafe/internal/core/domain/model/menu"
	"cafe/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("valid item", func(t *testing.T) {
		item, err := menu.NewItem(14, "Iced Matcha")

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, int64(14), item.ID())
		assert.Equal(t, "Iced Matcha", item.Name())
	})

	t.Run("name is trimmed but keeps its case", func(t *testing.T) {
		item, err := menu.NewItem(3, "  iced MATCHA ")

		require.NoError(t, err)
		assert.Equal(t, "iced MATCHA", item.Name())
	})

	tests := []struct {
		name     string
		id       int64
		itemName string
		want     error
	}{
		{"zero id", 0, "Latte", errs.ErrValueIsInvalid},
		{"negative id", -4, "Latte", errs.ErrValueIsInvalid},
		{"blank name", 5, "   ", errs.ErrValueIsRequired},
		{"too long name", 5, strings.Repeat("x", menu.MaxNameLength+1), errs.ErrValueIsOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := menu.NewItem(tt.id, tt.itemName)
			require.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("collects every violation", func(t *testing.T) {
		_, err := menu.NewItem(0, "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestItem_ZeroValueIsNotConstructed(t *testing.T) {
	var item menu.Item
	require.ErrorIs(t, item.Validate(), menu.ErrItemIsNotConstructed)
}

func TestDefaultItems(t *testing.T) {
	items := menu.DefaultItems()

	require.Len(t, items, 13)
	assert.Equal(t, "Black (Hot)", items[0].Name())
	assert.Equal(t, "Strawberry Cookies", items[12].Name())

	seen := make(map[string]bool)
	for i, item := range items {
		assert.Equal(t, int64(i+1), item.ID())
		assert.False(t, seen[item.Name()], "duplicate default name %q", item.Name())
		seen[item.Name()] = true
	}
}
