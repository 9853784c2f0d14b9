package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cleared-dev/ledgersum/internal/money"
)

func TestActivityTotals(t *testing.T) {
	tests := []struct {
		name  string
		total money.Dollars
	}{
		{"zero", money.Zero()},
		{"ten", money.AmountFromInt(10)},
		{"fractional", money.AmountFromFloat(7.85)},
	}
	for _, tt := range tests {
		assert.True(t, ExpenseOf(tt.total).TotalOf().Equal(tt.total), "expense %s", tt.name)
		assert.True(t, IncomeOf(tt.total).TotalOf().Equal(tt.total), "income %s", tt.name)
	}
}

func TestActivitySameKindAndAmountAreInterchangeable(t *testing.T) {
	a := ExpenseOf(money.AmountFromInt(3))
	b := ExpenseOf(money.AmountFromInt(3))
	assert.True(t, a.Total.Equal(b.Total))
}
