package source

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/cleared-dev/ledgersum/internal/model"
	"github.com/cleared-dev/ledgersum/internal/money"
	"github.com/cleared-dev/ledgersum/internal/statement"
)

// LineParser splits one raw line into fields.
type LineParser interface {
	Parse(line string) []string
}

// FileSource reads a statement once, on first access, and keeps the
// resulting expenses and incomes. The first line is the header.
type FileSource struct {
	name        string
	lines       LineReader
	spec        statement.ColumnSpec
	parser      LineParser
	logger      zerolog.Logger
	skipInvalid bool

	mu       sync.Mutex
	loaded   bool
	expenses []model.Expense
	incomes  []model.Income
}

// Option configures a FileSource.
type Option func(*FileSource)

// WithName labels the source in log output and errors.
func WithName(name string) Option {
	return func(s *FileSource) { s.name = name }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *FileSource) { s.logger = logger }
}

// WithSkipInvalid skips lines with unparseable amounts instead of failing.
// A missing column still fails the load.
func WithSkipInvalid() Option {
	return func(s *FileSource) { s.skipInvalid = true }
}

// NewFileSource creates a FileSource. Nothing is read until Expenses or
// Incomes is called.
func NewFileSource(lines LineReader, spec statement.ColumnSpec, parser LineParser, opts ...Option) *FileSource {
	s := &FileSource{
		lines:  lines,
		spec:   spec,
		parser: parser,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the label given with WithName.
func (s *FileSource) Name() string { return s.name }

// Expenses returns the expenses in file order, loading the file if needed.
func (s *FileSource) Expenses() ([]model.Expense, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	return slices.Clone(s.expenses), nil
}

// Incomes returns the incomes in file order, loading the file if needed.
func (s *FileSource) Incomes() ([]model.Income, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	return slices.Clone(s.incomes), nil
}

// ensureLoaded runs the load at most once successfully. A failed load is
// not cached.
func (s *FileSource) ensureLoaded() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return nil
	}
	expenses, incomes, err := s.load()
	if err != nil {
		if s.name != "" {
			return fmt.Errorf("loading %s: %w", s.name, err)
		}
		return err
	}
	s.expenses, s.incomes, s.loaded = expenses, incomes, true
	return nil
}

func (s *FileSource) load() ([]model.Expense, []model.Income, error) {
	lines, err := s.lines.ReadLines()
	if err != nil {
		return nil, nil, err
	}
	if len(lines) == 0 {
		s.logger.Debug().Str("source", s.name).Msg("empty statement")
		return nil, nil, nil
	}

	header := s.parser.Parse(lines[0])

	var expenses []model.Expense
	var incomes []model.Income
	skipped := 0
	for i, line := range lines[1:] {
		lineNo := i + 2
		if strings.TrimSpace(line) == "" {
			continue
		}
		record := s.parser.Parse(line)

		expense, income, err := s.activity(header, record)
		if err == nil {
			if expense != nil {
				expenses = append(expenses, *expense)
			}
			if income != nil {
				incomes = append(incomes, *income)
			}
			continue
		}

		if s.skipInvalid && errors.Is(err, statement.ErrInvalidAmount) {
			skipped++
			s.logger.Warn().Str("source", s.name).Int("line", lineNo).Err(err).Msg("skipping line")
			continue
		}
		return nil, nil, fmt.Errorf("line %d: %w", lineNo, err)
	}

	s.logger.Debug().
		Str("source", s.name).
		Int("expenses", len(expenses)).
		Int("incomes", len(incomes)).
		Int("skipped", skipped).
		Msg("statement loaded")
	return expenses, incomes, nil
}

// activity asks the spec about one record. Either result may be nil.
func (s *FileSource) activity(header, record []string) (*model.Expense, *model.Income, error) {
	var expense *model.Expense
	var income *model.Income

	amount, ok, err := s.spec.ExpenseAmount(header, record)
	if err != nil {
		return nil, nil, err
	}
	if ok {
		e := model.ExpenseOf(money.Amount(amount))
		expense = &e
	}

	amount, ok, err = s.spec.IncomeAmount(header, record)
	if err != nil {
		return nil, nil, err
	}
	if ok {
		in := model.IncomeOf(money.Amount(amount))
		income = &in
	}
	return expense, income, nil
}
