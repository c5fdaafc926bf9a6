package splitting

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Epsilon is the tolerance under which a balance counts as settled.
var Epsilon = decimal.RequireFromString("0.01")

// Balance is one traveler's net position: positive means the group owes them
// (creditor), negative means they owe the group (debtor).
type Balance struct {
	TravelerID string
	Name       string
	Net        decimal.Decimal
}

// Transfer is a single debtor-to-creditor payment produced by Settle.
type Transfer struct {
	FromTravelerID string
	FromName       string
	ToTravelerID   string
	ToName         string
	Amount         decimal.Decimal
}

// Settle matches the largest debtor against the largest creditor until one
// side is exhausted or every balance is within Epsilon of zero. Equal
// magnitudes are broken by traveler ID ascending so the output is
// deterministic. When total paid drifts from total owed the loop still
// terminates: iterations are capped at the number of balances.
func Settle(balances []Balance) []Transfer {
	var debtors, creditors []Balance
	for _, b := range balances {
		switch {
		case b.Net.LessThan(Epsilon.Neg()):
			debtors = append(debtors, Balance{TravelerID: b.TravelerID, Name: b.Name, Net: b.Net.Neg()})
		case b.Net.GreaterThan(Epsilon):
			creditors = append(creditors, b)
		}
	}

	byMagnitude := func(s []Balance) {
		sort.Slice(s, func(i, j int) bool {
			if !s[i].Net.Equal(s[j].Net) {
				return s[i].Net.GreaterThan(s[j].Net)
			}
			return s[i].TravelerID < s[j].TravelerID
		})
	}

	transfers := []Transfer{}
	for iter := 0; iter < len(balances) && len(debtors) > 0 && len(creditors) > 0; iter++ {
		byMagnitude(debtors)
		byMagnitude(creditors)

		debtor := &debtors[0]
		creditor := &creditors[0]

		amount := decimal.Min(debtor.Net, creditor.Net).Round(2)
		if amount.LessThanOrEqual(decimal.Zero) {
			break
		}

		transfers = append(transfers, Transfer{
			FromTravelerID: debtor.TravelerID,
			FromName:       debtor.Name,
			ToTravelerID:   creditor.TravelerID,
			ToName:         creditor.Name,
			Amount:         amount,
		})

		debtor.Net = debtor.Net.Sub(amount)
		creditor.Net = creditor.Net.Sub(amount)

		if debtor.Net.LessThanOrEqual(Epsilon) {
			debtors = debtors[1:]
		}
		if creditor.Net.LessThanOrEqual(Epsilon) {
			creditors = creditors[1:]
		}
	}
	return transfers
}
