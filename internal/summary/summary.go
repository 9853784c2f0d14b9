// Package summary totals expenses and incomes across statement sources.
package summary

import (
	"fmt"

	"github.com/cleared-dev/ledgersum/internal/model"
	"github.com/cleared-dev/ledgersum/internal/money"
)

//go:generate mockgen -source=summary.go -destination=mocks/mock_source.go -package=mocks

// Source supplies activity records. FileSource and in-memory sources both
// satisfy it.
type Source interface {
	Expenses() ([]model.Expense, error)
	Incomes() ([]model.Income, error)
}

// Summary aggregates totals over an ordered set of sources.
type Summary struct {
	sources []Source
}

// Report holds every total of a Summary.
type Report struct {
	Expenses money.Dollars
	Income   money.Dollars
	Net      money.Dollars
	Sources  int
}

// FromSources creates a Summary. With no sources every total is zero.
func FromSources(sources ...Source) *Summary {
	return &Summary{sources: sources}
}

// TotalExpenses sums every expense of every source.
func (s *Summary) TotalExpenses() (money.Dollars, error) {
	total := money.Zero()
	for i, src := range s.sources {
		expenses, err := src.Expenses()
		if err != nil {
			return money.Dollars{}, fmt.Errorf("source %d expenses: %w", i+1, err)
		}
		total = total.Add(sum(expenses, model.Expense.TotalOf))
	}
	return total, nil
}

// TotalIncome sums every income of every source.
func (s *Summary) TotalIncome() (money.Dollars, error) {
	total := money.Zero()
	for i, src := range s.sources {
		incomes, err := src.Incomes()
		if err != nil {
			return money.Dollars{}, fmt.Errorf("source %d incomes: %w", i+1, err)
		}
		total = total.Add(sum(incomes, model.Income.TotalOf))
	}
	return total, nil
}

// Net returns total income minus total expenses.
func (s *Summary) Net() (money.Dollars, error) {
	r, err := s.Report()
	if err != nil {
		return money.Dollars{}, err
	}
	return r.Net, nil
}

// Report computes all totals, visiting each source once per record kind.
func (s *Summary) Report() (Report, error) {
	expenses, err := s.TotalExpenses()
	if err != nil {
		return Report{}, err
	}
	income, err := s.TotalIncome()
	if err != nil {
		return Report{}, err
	}
	return Report{
		Expenses: expenses,
		Income:   income,
		Net:      income.Sub(expenses),
		Sources:  len(s.sources),
	}, nil
}

func sum[T any](items []T, total func(T) money.Dollars) money.Dollars {
	acc := money.Zero()
	for _, item := range items {
		acc = acc.Add(total(item))
	}
	return acc
}
