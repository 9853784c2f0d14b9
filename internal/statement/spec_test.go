package statement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var debitCreditHeader = []string{"Date", "Description", "Debit", "Credit"}

func TestTwoAmountColumn_Expense(t *testing.T) {
	spec := ForColumns("Debit", "Credit")
	rec := []string{"09-27-2024", "PurchaseA", "2.00", ""}

	d, ok, err := spec.ExpenseAmount(debitCreditHeader, rec)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "2", d.String())

	_, ok, err = spec.IncomeAmount(debitCreditHeader, rec)
	require.NoError(t, err)
	assert.False(t, ok, "empty credit is absent, not zero")
}

func TestTwoAmountColumn_Income(t *testing.T) {
	spec := ForColumns("Debit", "Credit")
	rec := []string{"09-30-2024", "IncomeA", "", "7.85"}

	_, ok, err := spec.ExpenseAmount(debitCreditHeader, rec)
	require.NoError(t, err)
	assert.False(t, ok)

	d, ok, err := spec.IncomeAmount(debitCreditHeader, rec)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, d.Equal(decimal.RequireFromString("7.85")))
}

func TestTwoAmountColumn_KeepsSign(t *testing.T) {
	spec := ForColumns("Debit", "Credit")
	d, ok, err := spec.ExpenseAmount(debitCreditHeader, []string{"", "refund", "-4.00", ""})
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, d.Equal(decimal.NewFromInt(-4)))
}

func TestTwoAmountColumn_ExplicitZeroIsPresent(t *testing.T) {
	spec := ForColumns("Debit", "Credit")
	d, ok, err := spec.ExpenseAmount(debitCreditHeader, []string{"", "", "0", ""})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, d.IsZero())
}

func TestTwoAmountColumn_ShortRecordIsAbsent(t *testing.T) {
	spec := ForColumns("Debit", "Credit")
	_, ok, err := spec.IncomeAmount(debitCreditHeader, []string{"09-30-2024", "x", "1.00"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTwoAmountColumn_MissingColumn(t *testing.T) {
	spec := ForColumns("Withdrawal", "Deposit")
	_, _, err := spec.ExpenseAmount(debitCreditHeader, []string{"", "", "1", ""})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrColumnNotFound)
	assert.Contains(t, err.Error(), "Withdrawal")
}

func TestTwoAmountColumn_InvalidAmount(t *testing.T) {
	spec := ForColumns("Debit", "Credit")
	_, _, err := spec.ExpenseAmount(debitCreditHeader, []string{"", "", "NOTANUMBER", ""})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Contains(t, err.Error(), "NOTANUMBER")
}

func TestSingleAmountColumn(t *testing.T) {
	header := []string{"Date", "Description", "Amount"}
	spec := ForColumn("Amount")

	tests := []struct {
		amount      string
		wantExpense string
		wantIncome  string
	}{
		{"12.50", "12.5", ""},
		{"-3.25", "", "3.25"},
		{"0", "", ""},
		{"0.00", "", ""},
		{"", "", ""},
	}
	for _, tt := range tests {
		rec := []string{"01/03/2025", "desc", tt.amount}

		d, ok, err := spec.ExpenseAmount(header, rec)
		require.NoError(t, err)
		if tt.wantExpense == "" {
			assert.False(t, ok, "expense for %q", tt.amount)
		} else {
			require.True(t, ok, "expense for %q", tt.amount)
			assert.Equal(t, tt.wantExpense, d.String())
		}

		d, ok, err = spec.IncomeAmount(header, rec)
		require.NoError(t, err)
		if tt.wantIncome == "" {
			assert.False(t, ok, "income for %q", tt.amount)
		} else {
			require.True(t, ok, "income for %q", tt.amount)
			assert.Equal(t, tt.wantIncome, d.String())
		}
	}
}

func TestSingleAmountColumn_MissingColumn(t *testing.T) {
	spec := ForColumn("Amount")
	_, _, err := spec.IncomeAmount(debitCreditHeader, []string{"", "", "1", ""})
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestSingleAmountColumn_InvalidAmount(t *testing.T) {
	spec := ForColumn("Amount")
	_, _, err := spec.ExpenseAmount([]string{"Amount"}, []string{"1,000.00"})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestColumnLookup_IgnoresByteOrderMark(t *testing.T) {
	spec := ForColumn("Amount")
	d, ok, err := spec.ExpenseAmount([]string{"\ufeffAmount"}, []string{"5"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "5", d.String())
}

func TestSpecsSatisfyInterface(t *testing.T) {
	specs := []ColumnSpec{ForColumn("Amount"), ForColumns("Debit", "Credit")}
	assert.Len(t, specs, 2)
	assert.Equal(t, "single(Amount)", ForColumn("Amount").String())
	assert.Equal(t, "two(Debit,Credit)", ForColumns("Debit", "Credit").String())
}
