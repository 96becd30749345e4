// Package aggregation is the period-based financial aggregation engine. It is
// the single source of truth for every figure the dashboard, cash-flow,
// expense and report views display: one pure function of already-fetched,
// already-organization-filtered collections plus a period specification and an
// explicit "now". It performs no I/O and holds no state, so concurrent calls
// over the same dataset need no locking.
package aggregation

import (
	"time"

	"github.com/lexfin/lexfin_backend/internal/core/domain"
	"github.com/lexfin/lexfin_backend/internal/core/periods"
	"github.com/shopspring/decimal"
)

// Dataset carries the raw collections one aggregation call consumes.
// Installments arrive joined with their contract summary; taxonomy slices are
// used only to resolve labels.
type Dataset struct {
	Contracts    []domain.Contract
	Installments []domain.InstallmentWithContract
	Receipts     []domain.ManualReceipt
	Expenses     []domain.Expense
	Areas        []domain.LawArea
	Subareas     []domain.LawSubarea
	Origins      []domain.LookupItem
}

// Donut palettes, assigned round-robin in first-appearance order.
var (
	areaPalette       = []string{"#1c3fa8", "#2d58c8", "#4e78dd", "#7aa0f1", "#9fbaf7"}
	subareaPalette    = []string{"#0f2e7a", "#1c3fa8", "#2f66e0", "#6e95ef"}
	honorariumPalette = []string{"#1c3fa8", "#4572d9", "#88a9f0"}
	originPalette     = []string{"#1c3fa8", "#2d58c8", "#4e78dd", "#7aa0f1"}
)

const (
	placeholderColor = "#d0d7e6"
	// LabelNoData is the synthetic segment returned when a breakdown has no
	// contributing records, so chart rendering never receives an empty set.
	LabelNoData = "Sem dados"
	// LabelOther buckets records whose taxonomy reference no longer resolves.
	LabelOther = "Outros"
)

// Aggregate derives the full financial report for the given period selection.
// now drives both overdue detection and the fallback bucket for empty
// datasets; callers pass it explicitly so results are deterministic.
func Aggregate(ds Dataset, p periods.Period, now time.Time) domain.FinancialReport {
	buckets := p.Buckets(ds.sampleDates(), now)
	index := make(map[string]int, len(buckets))
	for i, b := range buckets {
		index[b.Key] = i
	}

	revenueByBucket := make([]decimal.Decimal, len(buckets))
	expenseByBucket := make([]decimal.Decimal, len(buckets))
	addToBucket := func(series []decimal.Decimal, date time.Time, amount decimal.Decimal) {
		if date.IsZero() {
			return
		}
		if i, ok := index[periods.MonthKey(date)]; ok {
			series[i] = series[i].Add(amount)
		}
	}

	var overdue []domain.InstallmentWithContract
	overdueContracts := make(map[string]struct{})
	futureReceivables := decimal.Zero

	for _, inst := range ds.Installments {
		switch EffectiveStatus(inst.ContractInstallment, now) {
		case StatusPaid:
			addToBucket(revenueByBucket, inst.DueDate, inst.Amount)
		case StatusOverdue:
			overdue = append(overdue, inst)
			overdueContracts[inst.ContractID] = struct{}{}
			futureReceivables = futureReceivables.Add(inst.Amount)
		default:
			futureReceivables = futureReceivables.Add(inst.Amount)
		}
	}
	for _, r := range ds.Receipts {
		addToBucket(revenueByBucket, r.ReceivedDate, r.Amount)
	}
	for _, e := range ds.Expenses {
		addToBucket(expenseByBucket, e.DueDate, e.Amount)
	}

	revenue := decimal.Zero
	expenses := decimal.Zero
	revenueSeries := make([]domain.SeriesPoint, len(buckets))
	expenseSeries := make([]domain.SeriesPoint, len(buckets))
	resultSeries := make([]domain.SeriesPoint, len(buckets))
	for i, b := range buckets {
		revenue = revenue.Add(revenueByBucket[i])
		expenses = expenses.Add(expenseByBucket[i])
		revenueSeries[i] = domain.SeriesPoint{Key: b.Key, Label: b.Label, Value: revenueByBucket[i]}
		expenseSeries[i] = domain.SeriesPoint{Key: b.Key, Label: b.Label, Value: expenseByBucket[i]}
		resultSeries[i] = domain.SeriesPoint{Key: b.Key, Label: b.Label, Value: revenueByBucket[i].Sub(expenseByBucket[i])}
	}

	return domain.FinancialReport{
		RevenueSeries:       revenueSeries,
		ExpenseSeries:       expenseSeries,
		ResultSeries:        resultSeries,
		Revenue:             revenue,
		Expenses:            expenses,
		NetResult:           revenue.Sub(expenses),
		FutureReceivables:   futureReceivables,
		OverdueContracts:    len(overdueContracts),
		OverdueInstallments: len(overdue),
		AverageTicket:       ds.averageTicket(p),
		AreaSegments:        ds.areaSegments(p, now),
		SubareaSegments:     ds.subareaSegments(p, now),
		HonorariumSegments:  ds.honorariumSegments(p, now),
		OriginSegments:      ds.originSegments(p, now),
		OverdueList:         overdueWorklist(overdue),
	}
}

// sampleDates feeds MonthRange for the AllMonths period: every installment
// due date, receipt date and expense due date in the dataset.
func (ds Dataset) sampleDates() []time.Time {
	dates := make([]time.Time, 0, len(ds.Installments)+len(ds.Receipts)+len(ds.Expenses))
	for _, inst := range ds.Installments {
		dates = append(dates, inst.DueDate)
	}
	for _, r := range ds.Receipts {
		dates = append(dates, r.ReceivedDate)
	}
	for _, e := range ds.Expenses {
		dates = append(dates, e.DueDate)
	}
	return dates
}

// averageTicket is sum(totalValue)/count over contracts in scope: every
// contract for AllMonths, contracts whose start date falls inside the window
// otherwise. Zero when no contract is in scope.
func (ds Dataset) averageTicket(p periods.Period) decimal.Decimal {
	total := decimal.Zero
	count := 0
	for _, c := range ds.Contracts {
		if p.Kind != periods.KindAllMonths && !p.Contains(c.StartDate) {
			continue
		}
		total = total.Add(c.TotalValue)
		count++
	}
	if count == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(count)))
}

// segmentBuilder accumulates label totals preserving first-appearance order,
// so palette assignment is stable for a given input order.
type segmentBuilder struct {
	order  []string
	totals map[string]decimal.Decimal
}

func newSegmentBuilder() *segmentBuilder {
	return &segmentBuilder{totals: make(map[string]decimal.Decimal)}
}

func (b *segmentBuilder) add(label string, amount decimal.Decimal) {
	if _, seen := b.totals[label]; !seen {
		b.order = append(b.order, label)
	}
	b.totals[label] = b.totals[label].Add(amount)
}

func (b *segmentBuilder) build(palette []string) []domain.Segment {
	if len(b.order) == 0 {
		return []domain.Segment{{Label: LabelNoData, Value: decimal.NewFromInt(1), Color: placeholderColor}}
	}
	segments := make([]domain.Segment, len(b.order))
	for i, label := range b.order {
		segments[i] = domain.Segment{
			Label: label,
			Value: b.totals[label],
			Color: palette[i%len(palette)],
		}
	}
	return segments
}

func (ds Dataset) areaNames() map[string]string {
	m := make(map[string]string, len(ds.Areas))
	for _, a := range ds.Areas {
		m[a.AreaID] = a.Name
	}
	return m
}

// areaSegments sums realized revenue (paid installments plus receipts) per
// law area within the period scope. Records without an area stay out of the
// breakdown but still count toward the revenue total.
func (ds Dataset) areaSegments(p periods.Period, now time.Time) []domain.Segment {
	names := ds.areaNames()
	b := newSegmentBuilder()
	for _, inst := range ds.Installments {
		if EffectiveStatus(inst.ContractInstallment, now) != StatusPaid || !p.Contains(inst.DueDate) {
			continue
		}
		if inst.AreaID == "" {
			continue
		}
		b.add(labelOr(names[inst.AreaID]), inst.Amount)
	}
	for _, r := range ds.Receipts {
		if !p.Contains(r.ReceivedDate) || r.AreaID == nil {
			continue
		}
		b.add(labelOr(names[*r.AreaID]), r.Amount)
	}
	return b.build(areaPalette)
}

// subareaSegments behaves like areaSegments but at the subarea level. A
// subarea reference that no longer belongs to the record's area is treated as
// "no subarea" rather than failing or mislabeling.
func (ds Dataset) subareaSegments(p periods.Period, now time.Time) []domain.Segment {
	type subarea struct {
		name   string
		areaID string
	}
	subareas := make(map[string]subarea, len(ds.Subareas))
	for _, s := range ds.Subareas {
		subareas[s.SubareaID] = subarea{name: s.Name, areaID: s.AreaID}
	}

	resolve := func(subareaID *string, areaID string) (string, bool) {
		if subareaID == nil || *subareaID == "" {
			return "", false
		}
		s, ok := subareas[*subareaID]
		if !ok {
			return LabelOther, true
		}
		if areaID != "" && s.areaID != areaID {
			// Stale reference left behind by an area change.
			return "", false
		}
		return s.name, true
	}

	b := newSegmentBuilder()
	for _, inst := range ds.Installments {
		if EffectiveStatus(inst.ContractInstallment, now) != StatusPaid || !p.Contains(inst.DueDate) {
			continue
		}
		if label, ok := resolve(inst.SubareaID, inst.AreaID); ok {
			b.add(label, inst.Amount)
		}
	}
	for _, r := range ds.Receipts {
		if !p.Contains(r.ReceivedDate) {
			continue
		}
		areaID := ""
		if r.AreaID != nil {
			areaID = *r.AreaID
		}
		if label, ok := resolve(r.SubareaID, areaID); ok {
			b.add(label, r.Amount)
		}
	}
	return b.build(subareaPalette)
}

// honorariumSegments sums paid-installment revenue per honorarium type within
// the period scope. Manual receipts carry no honorarium type and stay out.
func (ds Dataset) honorariumSegments(p periods.Period, now time.Time) []domain.Segment {
	b := newSegmentBuilder()
	for _, inst := range ds.Installments {
		if EffectiveStatus(inst.ContractInstallment, now) != StatusPaid || !p.Contains(inst.DueDate) {
			continue
		}
		b.add(labelOr(inst.HonorariumTypeName), inst.Amount)
	}
	return b.build(honorariumPalette)
}

// originSegments sums paid-installment revenue per client origin within the
// period scope. Installments without an origin reference stay out.
func (ds Dataset) originSegments(p periods.Period, now time.Time) []domain.Segment {
	names := make(map[string]string, len(ds.Origins))
	for _, o := range ds.Origins {
		names[o.ItemID] = o.Name
	}
	b := newSegmentBuilder()
	for _, inst := range ds.Installments {
		if EffectiveStatus(inst.ContractInstallment, now) != StatusPaid || !p.Contains(inst.DueDate) {
			continue
		}
		if inst.OriginID == nil || *inst.OriginID == "" {
			continue
		}
		b.add(labelOr(names[*inst.OriginID]), inst.Amount)
	}
	return b.build(originPalette)
}

func labelOr(name string) string {
	if name == "" {
		return LabelOther
	}
	return name
}

const overdueWorklistSize = 4

// overdueWorklist keeps the first entries in input order. This is a display
// convenience, not a severity ranking; the order matches whatever stable
// order the installments were supplied in.
func overdueWorklist(overdue []domain.InstallmentWithContract) []domain.OverdueItem {
	n := len(overdue)
	if n > overdueWorklistSize {
		n = overdueWorklistSize
	}
	items := make([]domain.OverdueItem, n)
	for i := 0; i < n; i++ {
		inst := overdue[i]
		items[i] = domain.OverdueItem{
			InstallmentID: inst.InstallmentID,
			ContractID:    inst.ContractID,
			ClientName:    inst.ClientName,
			DueDate:       inst.DueDate.Format("2006-01-02"),
			Amount:        inst.Amount,
		}
	}
	return items
}

// Cashflow summarizes the installment/receipt ledger for the period: the
// predicted total covers every installment due in scope, received adds paid
// installments and receipts, open/overdue follow effective status.
func Cashflow(installments []domain.InstallmentWithContract, receipts []domain.ManualReceipt, p periods.Period, now time.Time) domain.CashflowTotals {
	var t domain.CashflowTotals
	t.Predicted = decimal.Zero
	t.Received = decimal.Zero
	t.Open = decimal.Zero
	t.Overdue = decimal.Zero

	for _, inst := range installments {
		if !p.Contains(inst.DueDate) {
			continue
		}
		t.InstallmentCount++
		t.Predicted = t.Predicted.Add(inst.Amount)
		switch EffectiveStatus(inst.ContractInstallment, now) {
		case StatusPaid:
			t.PaidCount++
			t.Received = t.Received.Add(inst.Amount)
		case StatusOverdue:
			t.OverdueCount++
			t.Overdue = t.Overdue.Add(inst.Amount)
		default:
			t.OpenCount++
			t.Open = t.Open.Add(inst.Amount)
		}
	}
	for _, r := range receipts {
		if !p.Contains(r.ReceivedDate) {
			continue
		}
		t.ReceiptCount++
		t.Received = t.Received.Add(r.Amount)
	}
	return t
}

// ExpenseLedger totals the expenses due in scope, split by paid flag.
func ExpenseLedger(expenses []domain.Expense, p periods.Period) domain.ExpenseTotals {
	t := domain.ExpenseTotals{Total: decimal.Zero, Paid: decimal.Zero, Pending: decimal.Zero}
	for _, e := range expenses {
		if !p.Contains(e.DueDate) {
			continue
		}
		t.Total = t.Total.Add(e.Amount)
		if e.Paid {
			t.Paid = t.Paid.Add(e.Amount)
		}
	}
	t.Pending = t.Total.Sub(t.Paid)
	return t
}
