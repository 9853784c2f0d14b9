package statement

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrColumnNotFound means the header lacks a column the spec needs.
	ErrColumnNotFound = errors.New("column not found")
	// ErrInvalidAmount means a non-empty amount field is not a number.
	ErrInvalidAmount = errors.New("invalid amount")
)

// ColumnSpec decides, for one parsed line, which amount is an expense and
// which is an income. The bool result is false when the line carries no
// activity of that kind.
type ColumnSpec interface {
	ExpenseAmount(header, record []string) (decimal.Decimal, bool, error)
	IncomeAmount(header, record []string) (decimal.Decimal, bool, error)
}

// byteOrderMark is sometimes left on the first header field by bank exports.
const byteOrderMark = "\ufeff"

func columnIndex(header []string, name string) (int, error) {
	for i, h := range header {
		if strings.TrimPrefix(h, byteOrderMark) == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
}

// amountAt returns the amount in the named column. A field that is empty or
// beyond the end of the record is absent.
func amountAt(header, record []string, name string) (decimal.Decimal, bool, error) {
	i, err := columnIndex(header, name)
	if err != nil {
		return decimal.Zero, false, err
	}
	if i >= len(record) || record[i] == "" {
		return decimal.Zero, false, nil
	}
	d, err := decimal.NewFromString(record[i])
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("%w in column %q: %q", ErrInvalidAmount, name, record[i])
	}
	return d, true, nil
}
