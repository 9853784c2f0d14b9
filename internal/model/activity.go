package model

import "github.com/cleared-dev/ledgersum/internal/money"

// Expense is one outgoing entry from a statement.
type Expense struct {
	Total money.Dollars
}

// Income is one incoming entry from a statement.
type Income struct {
	Total money.Dollars
}

// ExpenseOf returns an Expense with the given total.
func ExpenseOf(total money.Dollars) Expense { return Expense{Total: total} }

// IncomeOf returns an Income with the given total.
func IncomeOf(total money.Dollars) Income { return Income{Total: total} }

// TotalOf returns the expense total. Usable as a method value in sums.
func (e Expense) TotalOf() money.Dollars { return e.Total }

// TotalOf returns the income total.
func (i Income) TotalOf() money.Dollars { return i.Total }
