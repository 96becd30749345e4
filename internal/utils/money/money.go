// Package money parses localized monetary input and partitions contract
// totals into installment schedules using integer-cent arithmetic.
package money

import (
	"fmt"
	"strings"
	"time"

	"github.com/lexfin/lexfin_backend/internal/core/periods"
	"github.com/shopspring/decimal"
)

// ParseAmount converts user-entered pt-BR monetary text into a decimal.
// "1.234,56" parses to 1234.56; currency symbols and whitespace are stripped;
// empty or unparsable input yields zero. It never returns an error: form
// input is validated for positivity at the service layer, not here.
func ParseAmount(text string) decimal.Decimal {
	var b strings.Builder
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9', r == ',', r == '.', r == '-':
			b.WriteRune(r)
		}
	}
	normalized := strings.ReplaceAll(b.String(), ".", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")
	if normalized == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// SplitIntoInstallments partitions total into count amounts that sum back to
// total exactly. The math runs on integer cents: base = floor(cents/count),
// and the remainder cents go to the first installments one by one.
func SplitIntoInstallments(total decimal.Decimal, count int) ([]decimal.Decimal, error) {
	if count < 1 {
		return nil, fmt.Errorf("installment count must be at least 1, got %d", count)
	}
	if total.IsNegative() {
		return nil, fmt.Errorf("total must not be negative, got %s", total.String())
	}

	totalCents := total.Round(2).Shift(2).IntPart()
	base := totalCents / int64(count)
	remainder := totalCents - base*int64(count)

	amounts := make([]decimal.Decimal, count)
	for i := 0; i < count; i++ {
		cents := base
		if int64(i) < remainder {
			cents++
		}
		amounts[i] = decimal.NewFromInt(cents).Shift(-2)
	}
	return amounts, nil
}

// Occurrence is one scheduled row of a recurring expense.
type Occurrence struct {
	DueDate time.Time
	Amount  decimal.Decimal
}

// RecurringSchedule produces count occurrences one calendar month apart
// starting at firstDue. Unlike installment splitting, every occurrence
// carries the FULL amount: a recurring expense repeats, it is not partitioned.
func RecurringSchedule(amount decimal.Decimal, firstDue time.Time, count int) ([]Occurrence, error) {
	if count < 1 {
		return nil, fmt.Errorf("recurrence count must be at least 1, got %d", count)
	}
	occurrences := make([]Occurrence, count)
	for i := 0; i < count; i++ {
		occurrences[i] = Occurrence{
			DueDate: periods.AddMonths(firstDue, i),
			Amount:  amount,
		}
	}
	return occurrences, nil
}
