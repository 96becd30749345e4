// Package periods provides calendar-month bucketing for the aggregation
// engine and the month filter dropdowns. All functions are pure; callers pass
// the reference time explicitly so behavior is deterministic under test.
package periods

import (
	"fmt"
	"time"
)

var shortMonthLabels = [12]string{
	"jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}

var longMonthNames = [12]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// Bucket is one calendar month used as an aggregation/grouping unit.
// Date is always the first day of the month at midnight UTC.
type Bucket struct {
	Key   string    // canonical YYYY-MM identifier
	Date  time.Time // first day of the month
	Label string    // short pt-BR label, e.g. "jan/24"
}

// MonthKey returns the canonical YYYY-MM identifier of t's calendar month.
// Two dates map to the same key iff they share year and month.
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// MonthLabel returns the short pt-BR label of t's month, e.g. "jan/24".
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s/%02d", shortMonthLabels[t.Month()-1], t.Year()%100)
}

// MonthLongLabel returns the long pt-BR label of t's month, e.g. "janeiro 2024".
func MonthLongLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", longMonthNames[t.Month()-1], t.Year())
}

// SameMonth reports whether a and b fall in the same calendar year and month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// StartOfMonth returns the first day of t's month at midnight UTC.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths performs calendar month arithmetic. The day of month is preserved
// when it exists in the target month; otherwise the result is clamped to the
// last valid day (Jan 31 + 1 month = Feb 28/29, never Mar 2/3). This keeps
// generated installment and recurrence dates inside the intended month.
func AddMonths(t time.Time, delta int) time.Time {
	y, m := t.Year(), int(t.Month())-1+delta
	y += m / 12
	m = m % 12
	if m < 0 {
		m += 12
		y--
	}
	month := time.Month(m + 1)
	day := t.Day()
	if last := daysIn(y, month); day > last {
		day = last
	}
	return time.Date(y, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func newBucket(t time.Time) Bucket {
	d := StartOfMonth(t)
	return Bucket{Key: MonthKey(d), Date: d, Label: MonthLabel(d)}
}

// MonthRange returns every month between the earliest and latest sample date,
// inclusive, in chronological order with no gaps. Zero-valued sample dates are
// ignored. When no valid samples remain, it returns a single bucket for now's
// month, so filter dropdowns always have at least one option.
func MonthRange(dates []time.Time, now time.Time) []Bucket {
	var min, max time.Time
	for _, d := range dates {
		if d.IsZero() {
			continue
		}
		if min.IsZero() || d.Before(min) {
			min = d
		}
		if max.IsZero() || d.After(max) {
			max = d
		}
	}
	if min.IsZero() {
		return []Bucket{newBucket(now)}
	}

	buckets := []Bucket{}
	cursor := StartOfMonth(min)
	end := StartOfMonth(max)
	for !cursor.After(end) {
		buckets = append(buckets, newBucket(cursor))
		cursor = AddMonths(cursor, 1)
	}
	return buckets
}

// LastNMonths returns n buckets ending at ref's month, chronological order.
func LastNMonths(n int, ref time.Time) []Bucket {
	if n < 1 {
		n = 1
	}
	base := StartOfMonth(ref)
	buckets := make([]Bucket, n)
	for i := 0; i < n; i++ {
		buckets[i] = newBucket(AddMonths(base, -(n - 1 - i)))
	}
	return buckets
}

// PeriodKind selects how the aggregation window is derived.
type PeriodKind int

const (
	// KindAllMonths spans every month that has at least one record.
	KindAllMonths PeriodKind = iota
	// KindFixedWindow spans the N months ending at the reference month.
	KindFixedWindow
	// KindSingleMonth covers exactly the reference month.
	KindSingleMonth
)

// Period is the period specification consumed by the aggregation engine.
type Period struct {
	Kind      PeriodKind
	Months    int       // window length for KindFixedWindow
	Reference time.Time // reference month for KindFixedWindow / KindSingleMonth
}

// AllMonths selects every month covered by the dataset.
func AllMonths() Period {
	return Period{Kind: KindAllMonths}
}

// FixedWindow selects the n months ending at ref's month.
func FixedWindow(n int, ref time.Time) Period {
	return Period{Kind: KindFixedWindow, Months: n, Reference: ref}
}

// SingleMonth selects exactly ref's month.
func SingleMonth(ref time.Time) Period {
	return Period{Kind: KindSingleMonth, Reference: ref}
}

// Buckets resolves the period specification against the dataset's sample
// dates. For AllMonths the buckets come from MonthRange over sampleDates; the
// other kinds ignore sampleDates.
func (p Period) Buckets(sampleDates []time.Time, now time.Time) []Bucket {
	switch p.Kind {
	case KindFixedWindow:
		return LastNMonths(p.Months, p.Reference)
	case KindSingleMonth:
		return []Bucket{newBucket(p.Reference)}
	default:
		return MonthRange(sampleDates, now)
	}
}

// Contains reports whether t falls inside the period. AllMonths contains
// every non-zero date.
func (p Period) Contains(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	switch p.Kind {
	case KindSingleMonth:
		return SameMonth(t, p.Reference)
	case KindFixedWindow:
		start := AddMonths(StartOfMonth(p.Reference), -(p.Months - 1))
		end := AddMonths(StartOfMonth(p.Reference), 1)
		m := StartOfMonth(t)
		return !m.Before(start) && m.Before(end)
	default:
		return true
	}
}
