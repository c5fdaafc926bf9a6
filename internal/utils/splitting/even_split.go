package splitting

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNoSharers is returned when a split is requested with zero participants.
var ErrNoSharers = errors.New("no cost sharers to split across")

// ErrNegativeAmount is returned when the amount to split is negative.
var ErrNegativeAmount = errors.New("amount to split must not be negative")

// two is the display precision of every share amount.
const two = 2

// SplitEven divides total into n share amounts rounded to two fraction
// digits. The shares always sum exactly to the rounded total: any remainder
// left by rounding is added to the first share, so callers decide who absorbs
// the odd cent by ordering the participants.
func SplitEven(total decimal.Decimal, n int) ([]decimal.Decimal, error) {
	if n <= 0 {
		return nil, ErrNoSharers
	}
	if total.IsNegative() {
		return nil, ErrNegativeAmount
	}

	rounded := total.Round(two)
	base := rounded.Div(decimal.NewFromInt(int64(n))).Round(two)

	shares := make([]decimal.Decimal, n)
	for i := range shares {
		shares[i] = base
	}

	remainder := rounded.Sub(base.Mul(decimal.NewFromInt(int64(n))))
	if !remainder.IsZero() {
		shares[0] = shares[0].Add(remainder)
	}
	return shares, nil
}
