package money

import (
	"fmt"

	gomoney "github.com/Rhymond/go-money"
	"github.com/cespare/xxhash/v2"
	"github.com/shopspring/decimal"
)

// usd carries the ISO code and minor-unit digits used for display.
var usd = gomoney.GetCurrency(gomoney.USD)

// Dollars is an exact USD amount. Values are immutable; arithmetic returns new values.
type Dollars struct {
	amount decimal.Decimal
}

// Zero returns the additive identity.
func Zero() Dollars {
	return Dollars{amount: decimal.Zero}
}

// Amount wraps a decimal amount.
func Amount(amount decimal.Decimal) Dollars {
	return Dollars{amount: amount}
}

// AmountFromInt returns a whole-dollar amount.
func AmountFromInt(amount int64) Dollars {
	return Dollars{amount: decimal.NewFromInt(amount)}
}

// AmountFromFloat converts a float using the shortest decimal that round-trips.
func AmountFromFloat(amount float64) Dollars {
	return Dollars{amount: decimal.NewFromFloat(amount)}
}

// Parse reads a plain decimal string such as "12.50" or "-3".
func Parse(s string) (Dollars, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Dollars{}, fmt.Errorf("parsing dollars %q: %w", s, err)
	}
	return Dollars{amount: d}, nil
}

// Decimal returns the stored amount, unrounded.
func (d Dollars) Decimal() decimal.Decimal { return d.amount }

// IsZero reports whether the amount is zero.
func (d Dollars) IsZero() bool { return d.amount.IsZero() }

// Add returns d + o.
func (d Dollars) Add(o Dollars) Dollars { return Dollars{amount: d.amount.Add(o.amount)} }

// Sub returns d - o.
func (d Dollars) Sub(o Dollars) Dollars { return Dollars{amount: d.amount.Sub(o.amount)} }

// Equal reports whether v is a Dollars (or *Dollars) holding the same amount.
// Any other type is unequal.
func (d Dollars) Equal(v any) bool {
	switch o := v.(type) {
	case Dollars:
		return d.amount.Equal(o.amount)
	case *Dollars:
		return o != nil && d.amount.Equal(o.amount)
	default:
		return false
	}
}

// Hash is consistent with Equal: 2, 2.0 and 2.00 hash alike.
func (d Dollars) Hash() uint64 {
	// String trims trailing zeros, so it is canonical for equal amounts.
	return xxhash.Sum64String(usd.Code + ":" + d.amount.String())
}

// String formats the amount with two fractional digits followed by the
// currency code, e.g. "2.00 USD". Halves round away from zero; the stored
// amount is not changed.
func (d Dollars) String() string {
	return d.amount.StringFixed(int32(usd.Fraction)) + " " + usd.Code
}
