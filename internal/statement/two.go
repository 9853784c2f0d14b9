package statement

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TwoAmountColumn reads expenses and incomes from separate columns. Any
// non-empty value is taken as is, sign included.
type TwoAmountColumn struct {
	ExpenseColumn string
	IncomeColumn  string
}

// ForColumns returns a TwoAmountColumn reading the named columns.
func ForColumns(expenseColumn, incomeColumn string) *TwoAmountColumn {
	return &TwoAmountColumn{ExpenseColumn: expenseColumn, IncomeColumn: incomeColumn}
}

// ExpenseAmount returns the value in the expense column, if any.
func (s *TwoAmountColumn) ExpenseAmount(header, record []string) (decimal.Decimal, bool, error) {
	return amountAt(header, record, s.ExpenseColumn)
}

// IncomeAmount returns the value in the income column, if any.
func (s *TwoAmountColumn) IncomeAmount(header, record []string) (decimal.Decimal, bool, error) {
	return amountAt(header, record, s.IncomeColumn)
}

func (s *TwoAmountColumn) String() string {
	return fmt.Sprintf("two(%s,%s)", s.ExpenseColumn, s.IncomeColumn)
}
