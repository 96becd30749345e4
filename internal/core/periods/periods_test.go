package periods_test

import (
	"testing"
	"time"

	"github.com/lexfin/lexfin_backend/internal/core/periods"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2024-01", periods.MonthKey(date(2024, time.January, 15)))
	assert.Equal(t, "2024-12", periods.MonthKey(date(2024, time.December, 31)))
	// Same key iff same calendar year and month.
	assert.Equal(t,
		periods.MonthKey(date(2024, time.March, 1)),
		periods.MonthKey(date(2024, time.March, 31)))
	assert.NotEqual(t,
		periods.MonthKey(date(2023, time.March, 1)),
		periods.MonthKey(date(2024, time.March, 1)))
}

func TestMonthLabels(t *testing.T) {
	assert.Equal(t, "jan/24", periods.MonthLabel(date(2024, time.January, 15)))
	assert.Equal(t, "dez/99", periods.MonthLabel(date(1999, time.December, 1)))
	assert.Equal(t, "janeiro 2024", periods.MonthLongLabel(date(2024, time.January, 15)))
}

func TestAddMonths(t *testing.T) {
	// Plain month step preserves the day.
	assert.Equal(t, date(2024, time.February, 15), periods.AddMonths(date(2024, time.January, 15), 1))
	// Year rollover.
	assert.Equal(t, date(2025, time.January, 10), periods.AddMonths(date(2024, time.December, 10), 1))
	assert.Equal(t, date(2023, time.December, 10), periods.AddMonths(date(2024, time.January, 10), -1))
	// Day 31 into a shorter month clamps to the last valid day.
	assert.Equal(t, date(2024, time.February, 29), periods.AddMonths(date(2024, time.January, 31), 1))
	assert.Equal(t, date(2023, time.February, 28), periods.AddMonths(date(2023, time.January, 31), 1))
	assert.Equal(t, date(2024, time.April, 30), periods.AddMonths(date(2024, time.March, 31), 1))
	// Large deltas.
	assert.Equal(t, date(2026, time.March, 5), periods.AddMonths(date(2024, time.March, 5), 24))
}

func TestMonthRange(t *testing.T) {
	now := date(2024, time.June, 10)

	t.Run("empty input yields current month", func(t *testing.T) {
		buckets := periods.MonthRange(nil, now)
		require.Len(t, buckets, 1)
		assert.Equal(t, "2024-06", buckets[0].Key)
	})

	t.Run("gap-free from min to max inclusive", func(t *testing.T) {
		dates := []time.Time{
			date(2024, time.April, 20),
			date(2024, time.January, 3),
			{}, // zero values are skipped
		}
		buckets := periods.MonthRange(dates, now)
		require.Len(t, buckets, 4)
		keys := []string{buckets[0].Key, buckets[1].Key, buckets[2].Key, buckets[3].Key}
		assert.Equal(t, []string{"2024-01", "2024-02", "2024-03", "2024-04"}, keys)
	})

	t.Run("length equals months spanned", func(t *testing.T) {
		dates := []time.Time{date(2023, time.November, 1), date(2024, time.February, 28)}
		buckets := periods.MonthRange(dates, now)
		require.Len(t, buckets, 4) // nov, dez, jan, fev
		assert.Equal(t, "2023-11", buckets[0].Key)
		assert.Equal(t, "2024-02", buckets[3].Key)
		for i := 1; i < len(buckets); i++ {
			assert.True(t, buckets[i].Date.After(buckets[i-1].Date), "buckets must be strictly increasing")
		}
	})
}

func TestLastNMonths(t *testing.T) {
	buckets := periods.LastNMonths(6, date(2024, time.March, 15))
	require.Len(t, buckets, 6)
	assert.Equal(t, "2023-10", buckets[0].Key)
	assert.Equal(t, "2024-03", buckets[5].Key)
}

func TestSameMonth(t *testing.T) {
	assert.True(t, periods.SameMonth(date(2024, time.May, 1), date(2024, time.May, 31)))
	assert.False(t, periods.SameMonth(date(2024, time.May, 1), date(2024, time.June, 1)))
	assert.False(t, periods.SameMonth(date(2023, time.May, 1), date(2024, time.May, 1)))
}

func TestPeriodBuckets(t *testing.T) {
	now := date(2024, time.June, 10)

	all := periods.AllMonths().Buckets([]time.Time{date(2024, time.January, 5), date(2024, time.March, 5)}, now)
	require.Len(t, all, 3)

	window := periods.FixedWindow(3, now).Buckets(nil, now)
	require.Len(t, window, 3)
	assert.Equal(t, "2024-04", window[0].Key)
	assert.Equal(t, "2024-06", window[2].Key)

	single := periods.SingleMonth(date(2024, time.February, 20)).Buckets(nil, now)
	require.Len(t, single, 1)
	assert.Equal(t, "2024-02", single[0].Key)
}

func TestPeriodContains(t *testing.T) {
	ref := date(2024, time.June, 1)

	assert.True(t, periods.AllMonths().Contains(date(1990, time.January, 1)))
	assert.False(t, periods.AllMonths().Contains(time.Time{}))

	single := periods.SingleMonth(ref)
	assert.True(t, single.Contains(date(2024, time.June, 30)))
	assert.False(t, single.Contains(date(2024, time.July, 1)))

	window := periods.FixedWindow(3, ref)
	assert.True(t, window.Contains(date(2024, time.April, 1)))
	assert.True(t, window.Contains(date(2024, time.June, 30)))
	assert.False(t, window.Contains(date(2024, time.March, 31)))
	assert.False(t, window.Contains(date(2024, time.July, 1)))
}
