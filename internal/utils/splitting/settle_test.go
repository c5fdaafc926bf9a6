package splitting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/trip_planner_app/internal/utils/splitting"
)

func balance(id, name, net string) splitting.Balance {
	return splitting.Balance{TravelerID: id, Name: name, Net: decimal.RequireFromString(net)}
}

func TestSettle_TwoTravelers(t *testing.T) {
	// A paid 500 against a 250 share, B paid nothing against a 250 share.
	transfers := splitting.Settle([]splitting.Balance{
		balance("a", "Alice", "250.00"),
		balance("b", "Bob", "-250.00"),
	})

	require.Len(t, transfers, 1)
	assert.Equal(t, "b", transfers[0].FromTravelerID)
	assert.Equal(t, "a", transfers[0].ToTravelerID)
	assert.True(t, transfers[0].Amount.Equal(decimal.RequireFromString("250.00")))
}

func TestSettle_LargestDebtorPaysLargestCreditor(t *testing.T) {
	transfers := splitting.Settle([]splitting.Balance{
		balance("a", "Alice", "300.00"),
		balance("b", "Bob", "100.00"),
		balance("c", "Carol", "-250.00"),
		balance("d", "Dave", "-150.00"),
	})

	require.Len(t, transfers, 3)

	// Carol owes the most and Alice is owed the most, so they match first.
	assert.Equal(t, "c", transfers[0].FromTravelerID)
	assert.Equal(t, "a", transfers[0].ToTravelerID)
	assert.True(t, transfers[0].Amount.Equal(decimal.RequireFromString("250.00")))

	// Dave then covers the rest of Alice before paying Bob.
	assert.Equal(t, "d", transfers[1].FromTravelerID)
	assert.Equal(t, "a", transfers[1].ToTravelerID)
	assert.True(t, transfers[1].Amount.Equal(decimal.RequireFromString("50.00")))

	assert.Equal(t, "d", transfers[2].FromTravelerID)
	assert.Equal(t, "b", transfers[2].ToTravelerID)
	assert.True(t, transfers[2].Amount.Equal(decimal.RequireFromString("100.00")))
}

func TestSettle_TieBrokenByTravelerID(t *testing.T) {
	transfers := splitting.Settle([]splitting.Balance{
		balance("b", "Bob", "100.00"),
		balance("a", "Alice", "100.00"),
		balance("c", "Carol", "-200.00"),
	})

	require.Len(t, transfers, 2)
	assert.Equal(t, "a", transfers[0].ToTravelerID)
	assert.Equal(t, "b", transfers[1].ToTravelerID)
}

func TestSettle_BalancesWithinEpsilonIgnored(t *testing.T) {
	transfers := splitting.Settle([]splitting.Balance{
		balance("a", "Alice", "0.01"),
		balance("b", "Bob", "-0.01"),
	})
	assert.Empty(t, transfers)
}

func TestSettle_NoBalances(t *testing.T) {
	assert.Empty(t, splitting.Settle(nil))
}

func TestSettle_UnbalancedInputTerminates(t *testing.T) {
	// Paid totals that drift from owed totals must not loop forever.
	transfers := splitting.Settle([]splitting.Balance{
		balance("a", "Alice", "100.00"),
		balance("b", "Bob", "-40.00"),
	})

	require.Len(t, transfers, 1)
	assert.True(t, transfers[0].Amount.Equal(decimal.RequireFromString("40.00")))
}
