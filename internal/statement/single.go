package statement

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SingleAmountColumn reads one signed column: positive amounts are expenses,
// negative amounts are incomes (reported as their absolute value), and zero
// is neither.
type SingleAmountColumn struct {
	Column string
}

// ForColumn returns a SingleAmountColumn reading the named column.
func ForColumn(column string) *SingleAmountColumn {
	return &SingleAmountColumn{Column: column}
}

// ExpenseAmount returns the amount when it is positive.
func (s *SingleAmountColumn) ExpenseAmount(header, record []string) (decimal.Decimal, bool, error) {
	d, ok, err := amountAt(header, record, s.Column)
	if err != nil || !ok || !d.IsPositive() {
		return decimal.Zero, false, err
	}
	return d, true, nil
}

// IncomeAmount returns the absolute amount when it is negative.
func (s *SingleAmountColumn) IncomeAmount(header, record []string) (decimal.Decimal, bool, error) {
	d, ok, err := amountAt(header, record, s.Column)
	if err != nil || !ok || !d.IsNegative() {
		return decimal.Zero, false, err
	}
	return d.Abs(), true, nil
}

func (s *SingleAmountColumn) String() string {
	return fmt.Sprintf("single(%s)", s.Column)
}
