package splitting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/trip_planner_app/internal/utils/splitting"
)

func TestSplitEven_ExactDivision(t *testing.T) {
	shares, err := splitting.SplitEven(decimal.RequireFromString("1500.00"), 2)
	require.NoError(t, err)
	require.Len(t, shares, 2)
	assert.True(t, shares[0].Equal(decimal.RequireFromString("750.00")), "got %s", shares[0])
	assert.True(t, shares[1].Equal(decimal.RequireFromString("750.00")), "got %s", shares[1])
}

func TestSplitEven_RemainderGoesToFirstShare(t *testing.T) {
	shares, err := splitting.SplitEven(decimal.RequireFromString("100.00"), 3)
	require.NoError(t, err)
	require.Len(t, shares, 3)

	// 100 / 3 rounds to 33.33; the first share absorbs the extra cent.
	assert.True(t, shares[0].Equal(decimal.RequireFromString("33.34")), "got %s", shares[0])
	assert.True(t, shares[1].Equal(decimal.RequireFromString("33.33")), "got %s", shares[1])
	assert.True(t, shares[2].Equal(decimal.RequireFromString("33.33")), "got %s", shares[2])

	sum := decimal.Zero
	for _, s := range shares {
		sum = sum.Add(s)
	}
	assert.True(t, sum.Equal(decimal.RequireFromString("100.00")))
}

func TestSplitEven_NegativeRemainder(t *testing.T) {
	// 100.01 / 3 = 33.336... which rounds to 33.34; three of those overshoot
	// by a cent, so the first share gives it back.
	shares, err := splitting.SplitEven(decimal.RequireFromString("100.01"), 3)
	require.NoError(t, err)

	sum := decimal.Zero
	for _, s := range shares {
		sum = sum.Add(s)
	}
	assert.True(t, sum.Equal(decimal.RequireFromString("100.01")), "shares must sum to the total, got %s", sum)
}

func TestSplitEven_SingleSharer(t *testing.T) {
	shares, err := splitting.SplitEven(decimal.RequireFromString("42.99"), 1)
	require.NoError(t, err)
	require.Len(t, shares, 1)
	assert.True(t, shares[0].Equal(decimal.RequireFromString("42.99")))
}

func TestSplitEven_ZeroTotal(t *testing.T) {
	shares, err := splitting.SplitEven(decimal.Zero, 4)
	require.NoError(t, err)
	for _, s := range shares {
		assert.True(t, s.IsZero())
	}
}

func TestSplitEven_NoSharers(t *testing.T) {
	_, err := splitting.SplitEven(decimal.RequireFromString("10.00"), 0)
	assert.ErrorIs(t, err, splitting.ErrNoSharers)
}

func TestSplitEven_NegativeTotal(t *testing.T) {
	_, err := splitting.SplitEven(decimal.RequireFromString("-5.00"), 2)
	assert.ErrorIs(t, err, splitting.ErrNegativeAmount)
}
