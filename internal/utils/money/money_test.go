package money_test

import (
	"testing"
	"time"

	"github.com/lexfin/lexfin_backend/internal/utils/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1.234,56", "1234.56"},
		{"R$ 1.234,56", "1234.56"},
		{"1234,56", "1234.56"},
		{"500", "500"},
		{"0,99", "0.99"},
		{"", "0"},
		{"abc", "0"},
		{"R$ ", "0"},
		{"-150,00", "-150"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := money.ParseAmount(tt.input)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"ParseAmount(%q) = %s, want %s", tt.input, got, tt.want)
		})
	}
}

func TestSplitIntoInstallments(t *testing.T) {
	t.Run("remainder goes to the first installments", func(t *testing.T) {
		amounts, err := money.SplitIntoInstallments(decimal.RequireFromString("100.00"), 3)
		require.NoError(t, err)
		require.Len(t, amounts, 3)
		assert.Equal(t, "33.34", amounts[0].StringFixed(2))
		assert.Equal(t, "33.33", amounts[1].StringFixed(2))
		assert.Equal(t, "33.33", amounts[2].StringFixed(2))
	})

	t.Run("sum is exact across totals and counts", func(t *testing.T) {
		totals := []string{"1000.00", "999.99", "0.01", "0.00", "123.45", "7777.77"}
		counts := []int{1, 2, 3, 7, 12, 48}
		for _, total := range totals {
			for _, count := range counts {
				d := decimal.RequireFromString(total)
				amounts, err := money.SplitIntoInstallments(d, count)
				require.NoError(t, err)
				require.Len(t, amounts, count)
				sum := decimal.Zero
				for _, a := range amounts {
					assert.False(t, a.IsNegative())
					sum = sum.Add(a)
				}
				assert.True(t, sum.Equal(d), "split of %s into %d sums to %s", total, count, sum)
			}
		}
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		_, err := money.SplitIntoInstallments(decimal.NewFromInt(100), 0)
		assert.Error(t, err)
		_, err = money.SplitIntoInstallments(decimal.NewFromInt(-1), 2)
		assert.Error(t, err)
	})
}

func TestRecurringSchedule(t *testing.T) {
	amount := decimal.RequireFromString("200.00")
	firstDue := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)

	occurrences, err := money.RecurringSchedule(amount, firstDue, 3)
	require.NoError(t, err)
	require.Len(t, occurrences, 3)

	assert.Equal(t, time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), occurrences[0].DueDate)
	assert.Equal(t, time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC), occurrences[1].DueDate)
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), occurrences[2].DueDate)

	// Full amount on every occurrence, no splitting.
	for _, occ := range occurrences {
		assert.True(t, occ.Amount.Equal(amount))
	}

	t.Run("end-of-month start clamps instead of rolling over", func(t *testing.T) {
		occs, err := money.RecurringSchedule(amount, time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC), 3)
		require.NoError(t, err)
		assert.Equal(t, 29, occs[1].DueDate.Day()) // feb 2024 is a leap month
		assert.Equal(t, time.March, occs[2].DueDate.Month())
		assert.Equal(t, 31, occs[2].DueDate.Day())
	})

	t.Run("rejects non-positive count", func(t *testing.T) {
		_, err := money.RecurringSchedule(amount, firstDue, 0)
		assert.Error(t, err)
	})
}
