package guard_test

import (
	"errors"
	"testing"

	"cafe/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errTicketNotConstructed := errors.New("Ticket must be created via NewTicket")

	t.Run("constructed guard passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errTicketNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero value returns the supplied error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errTicketNotConstructed)

		assert.Equal(t, errTicketNotConstructed, err)
	})

	t.Run("zero value falls back to the default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type ticket struct {
		orderID int64
		guard   guard.ConstructorGuard
	}
	errTicketNotConstructed := errors.New("ticket must be created via newTicket")

	newTicket := func(orderID int64) (ticket, error) {
		if orderID <= 0 {
			return ticket{}, errors.New("order id must be positive")
		}
		return ticket{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
	}

	built, err := newTicket(12)
	require.NoError(t, err)
	require.NoError(t, built.guard.Validate(errTicketNotConstructed))

	copied := built
	require.NoError(t, copied.guard.Validate(errTicketNotConstructed))

	_, err = newTicket(0)
	require.Error(t, err)

	var zero ticket
	require.ErrorIs(t, zero.guard.Validate(errTicketNotConstructed), errTicketNotConstructed)
}
