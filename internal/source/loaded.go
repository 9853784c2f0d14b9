package source

import (
	"slices"

	"github.com/cleared-dev/ledgersum/internal/model"
)

// Loaded is a Source whose activity is already in memory.
type Loaded struct {
	expenses []model.Expense
	incomes  []model.Income
}

// NewLoaded returns an empty Loaded source.
func NewLoaded() *Loaded { return &Loaded{} }

// AddExpense appends an expense.
func (l *Loaded) AddExpense(e model.Expense) { l.expenses = append(l.expenses, e) }

// AddIncome appends an income.
func (l *Loaded) AddIncome(i model.Income) { l.incomes = append(l.incomes, i) }

// Expenses returns the expenses in insertion order.
func (l *Loaded) Expenses() ([]model.Expense, error) { return slices.Clone(l.expenses), nil }

// Incomes returns the incomes in insertion order.
func (l *Loaded) Incomes() ([]model.Income, error) { return slices.Clone(l.incomes), nil }
