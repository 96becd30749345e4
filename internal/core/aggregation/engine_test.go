package aggregation_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/lexfin/lexfin_backend/internal/core/aggregation"
	"github.com/lexfin/lexfin_backend/internal/core/domain"
	"github.com/lexfin/lexfin_backend/internal/core/periods"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func paidInst(id, contractID string, due time.Time, amount, areaID string) domain.InstallmentWithContract {
	paidAt := due
	return domain.InstallmentWithContract{
		ContractInstallment: domain.ContractInstallment{
			InstallmentID: id,
			ContractID:    contractID,
			DueDate:       due,
			Amount:        dec(amount),
			Status:        domain.InstallmentPaid,
			PaidAt:        &paidAt,
		},
		AreaID: areaID,
	}
}

func openInst(id, contractID string, due time.Time, amount, areaID string) domain.InstallmentWithContract {
	return domain.InstallmentWithContract{
		ContractInstallment: domain.ContractInstallment{
			InstallmentID: id,
			ContractID:    contractID,
			DueDate:       due,
			Amount:        dec(amount),
			Status:        domain.InstallmentOpen,
		},
		AreaID: areaID,
	}
}

// threeInstallmentDataset mirrors a 1000.00 contract split into three monthly
// installments (333.34 + 333.33 + 333.33), the first two paid, plus one
// manual receipt and two expenses.
func threeInstallmentDataset() aggregation.Dataset {
	return aggregation.Dataset{
		Contracts: []domain.Contract{{
			ContractID: "c1",
			ClientName: "Acme",
			AreaID:     "area-civil",
			TotalValue: dec("1000.00"),
			StartDate:  day(2024, time.January, 15),
			Status:     domain.ContractActive,
		}},
		Installments: []domain.InstallmentWithContract{
			paidInst("i1", "c1", day(2024, time.January, 15), "333.34", "area-civil"),
			paidInst("i2", "c1", day(2024, time.February, 15), "333.33", "area-civil"),
			openInst("i3", "c1", day(2024, time.March, 15), "333.33", "area-civil"),
		},
		Receipts: []domain.ManualReceipt{{
			ReceiptID:    "r1",
			Description:  "consulting fee",
			Amount:       dec("150.00"),
			ReceivedDate: day(2024, time.February, 3),
		}},
		Expenses: []domain.Expense{
			{ExpenseID: "e1", Amount: dec("80.00"), DueDate: day(2024, time.January, 20), Paid: true},
			{ExpenseID: "e2", Amount: dec("120.00"), DueDate: day(2024, time.March, 2)},
		},
		Areas: []domain.LawArea{{AreaID: "area-civil", Name: "Civil"}},
	}
}

func TestAggregateAllMonths(t *testing.T) {
	now := day(2024, time.June, 10)
	report := aggregation.Aggregate(threeInstallmentDataset(), periods.AllMonths(), now)

	// Buckets span jan..mar, gap-free.
	require.Len(t, report.RevenueSeries, 3)
	assert.Equal(t, "2024-01", report.RevenueSeries[0].Key)
	assert.Equal(t, "2024-03", report.RevenueSeries[2].Key)

	// Revenue is realized only: two paid installments plus the receipt. The
	// open installment sits in future receivables, not revenue.
	assert.True(t, report.Revenue.Equal(dec("816.67")), "revenue = %s", report.Revenue)
	assert.True(t, report.RevenueSeries[0].Value.Equal(dec("333.34")))
	assert.True(t, report.RevenueSeries[1].Value.Equal(dec("483.33")))
	assert.True(t, report.RevenueSeries[2].Value.Equal(decimal.Zero))

	assert.True(t, report.Expenses.Equal(dec("200.00")))
	assert.True(t, report.NetResult.Equal(dec("616.67")))
	assert.True(t, report.ResultSeries[0].Value.Equal(dec("253.34")))

	// The open march installment is overdue by june.
	assert.True(t, report.FutureReceivables.Equal(dec("333.33")))
	assert.Equal(t, 1, report.OverdueInstallments)
	assert.Equal(t, 1, report.OverdueContracts)
	require.Len(t, report.OverdueList, 1)
	assert.Equal(t, "i3", report.OverdueList[0].InstallmentID)
	assert.Equal(t, "2024-03-15", report.OverdueList[0].DueDate)

	assert.True(t, report.AverageTicket.Equal(dec("1000.00")))
}

func TestAggregateRevenueAdditivity(t *testing.T) {
	// Total revenue over all months equals the sum of each month queried alone.
	now := day(2024, time.June, 10)
	ds := threeInstallmentDataset()

	all := aggregation.Aggregate(ds, periods.AllMonths(), now)
	sum := decimal.Zero
	for _, ref := range []time.Time{day(2024, time.January, 1), day(2024, time.February, 1), day(2024, time.March, 1)} {
		sum = sum.Add(aggregation.Aggregate(ds, periods.SingleMonth(ref), now).Revenue)
	}
	assert.True(t, all.Revenue.Equal(sum), "all-months %s vs per-month sum %s", all.Revenue, sum)
}

func TestAggregateFixedWindowScoping(t *testing.T) {
	now := day(2024, time.March, 10)
	report := aggregation.Aggregate(threeInstallmentDataset(), periods.FixedWindow(2, now), now)

	// Window is feb..mar: the january installment and expense fall out of
	// both the series and the window KPIs.
	require.Len(t, report.RevenueSeries, 2)
	assert.Equal(t, "2024-02", report.RevenueSeries[0].Key)
	assert.True(t, report.Revenue.Equal(dec("483.33")))
	assert.True(t, report.Expenses.Equal(dec("120.00")))

	// All-time figures ignore the window. By march 10 nothing is overdue yet.
	assert.True(t, report.FutureReceivables.Equal(dec("333.33")))
	assert.Equal(t, 0, report.OverdueInstallments)
}

func TestAggregateEmptyDataset(t *testing.T) {
	now := day(2024, time.June, 10)
	report := aggregation.Aggregate(aggregation.Dataset{}, periods.AllMonths(), now)

	require.Len(t, report.RevenueSeries, 1)
	assert.Equal(t, "2024-06", report.RevenueSeries[0].Key)
	assert.True(t, report.Revenue.IsZero())
	assert.True(t, report.AverageTicket.IsZero())
	assert.Empty(t, report.OverdueList)

	for _, segments := range [][]domain.Segment{
		report.AreaSegments, report.SubareaSegments, report.HonorariumSegments, report.OriginSegments,
	} {
		require.Len(t, segments, 1)
		assert.Equal(t, aggregation.LabelNoData, segments[0].Label)
		assert.True(t, segments[0].Value.Equal(decimal.NewFromInt(1)))
		assert.Equal(t, "#d0d7e6", segments[0].Color)
	}
}

func TestAreaSegments(t *testing.T) {
	now := day(2024, time.June, 10)
	ds := aggregation.Dataset{
		Installments: []domain.InstallmentWithContract{
			paidInst("i1", "c1", day(2024, time.January, 5), "100.00", "area-civil"),
			paidInst("i2", "c2", day(2024, time.January, 6), "50.00", "area-labor"),
			paidInst("i3", "c1", day(2024, time.February, 5), "25.00", "area-civil"),
			paidInst("i4", "c3", day(2024, time.February, 6), "10.00", "area-gone"),
			openInst("i5", "c1", day(2024, time.December, 5), "999.00", "area-civil"),
		},
		Areas: []domain.LawArea{
			{AreaID: "area-civil", Name: "Civil"},
			{AreaID: "area-labor", Name: "Trabalhista"},
		},
	}

	segments := aggregation.Aggregate(ds, periods.AllMonths(), now).AreaSegments
	require.Len(t, segments, 3)

	// First-appearance order with round-robin colors.
	assert.Equal(t, "Civil", segments[0].Label)
	assert.True(t, segments[0].Value.Equal(dec("125.00")))
	assert.Equal(t, "#1c3fa8", segments[0].Color)

	assert.Equal(t, "Trabalhista", segments[1].Label)
	assert.Equal(t, "#2d58c8", segments[1].Color)

	// A reference to a deleted area lands in the fallback bucket.
	assert.Equal(t, aggregation.LabelOther, segments[2].Label)
	assert.True(t, segments[2].Value.Equal(dec("10.00")))

	// Segment sum covers exactly the realized revenue of records with areas.
	sum := decimal.Zero
	for _, s := range segments {
		sum = sum.Add(s.Value)
	}
	assert.True(t, sum.Equal(dec("185.00")))
}

func TestSubareaSegmentsStaleReference(t *testing.T) {
	now := day(2024, time.June, 10)
	goodSub := "sub-1"
	staleSub := "sub-2"
	ds := aggregation.Dataset{
		Installments: []domain.InstallmentWithContract{
			{
				ContractInstallment: domain.ContractInstallment{
					InstallmentID: "i1", ContractID: "c1",
					DueDate: day(2024, time.January, 5), Amount: dec("100.00"),
					Status: domain.InstallmentPaid,
				},
				AreaID: "area-civil", SubareaID: &goodSub,
			},
			{
				// Subarea belongs to another area: counted as having no subarea.
				ContractInstallment: domain.ContractInstallment{
					InstallmentID: "i2", ContractID: "c2",
					DueDate: day(2024, time.January, 6), Amount: dec("40.00"),
					Status: domain.InstallmentPaid,
				},
				AreaID: "area-civil", SubareaID: &staleSub,
			},
		},
		Subareas: []domain.LawSubarea{
			{SubareaID: "sub-1", AreaID: "area-civil", Name: "Contratos"},
			{SubareaID: "sub-2", AreaID: "area-labor", Name: "Sindical"},
		},
	}

	segments := aggregation.Aggregate(ds, periods.AllMonths(), now).SubareaSegments
	require.Len(t, segments, 1)
	assert.Equal(t, "Contratos", segments[0].Label)
	assert.True(t, segments[0].Value.Equal(dec("100.00")))
}

func TestHonorariumAndOriginSegments(t *testing.T) {
	now := day(2024, time.June, 10)
	origin := "org-referral"
	ds := aggregation.Dataset{
		Installments: []domain.InstallmentWithContract{
			func() domain.InstallmentWithContract {
				i := paidInst("i1", "c1", day(2024, time.January, 5), "300.00", "a1")
				i.HonorariumTypeName = "Fixo"
				i.OriginID = &origin
				return i
			}(),
			func() domain.InstallmentWithContract {
				i := paidInst("i2", "c2", day(2024, time.January, 6), "200.00", "a1")
				i.HonorariumTypeName = "Êxito"
				return i
			}(),
		},
		Origins: []domain.LookupItem{{ItemID: "org-referral", Name: "Indicação"}},
	}

	report := aggregation.Aggregate(ds, periods.AllMonths(), now)

	require.Len(t, report.HonorariumSegments, 2)
	assert.Equal(t, "Fixo", report.HonorariumSegments[0].Label)
	assert.Equal(t, "#1c3fa8", report.HonorariumSegments[0].Color)
	assert.Equal(t, "Êxito", report.HonorariumSegments[1].Label)
	assert.Equal(t, "#4572d9", report.HonorariumSegments[1].Color)

	// Only i1 carries an origin.
	require.Len(t, report.OriginSegments, 1)
	assert.Equal(t, "Indicação", report.OriginSegments[0].Label)
	assert.True(t, report.OriginSegments[0].Value.Equal(dec("300.00")))
}

func TestOverdueWorklistCapsAtFour(t *testing.T) {
	now := day(2024, time.June, 10)
	var insts []domain.InstallmentWithContract
	for i := 0; i < 6; i++ {
		insts = append(insts, openInst(
			fmt.Sprintf("i%d", i), fmt.Sprintf("c%d", i),
			day(2024, time.January, i+1), "10.00", "a1"))
	}
	report := aggregation.Aggregate(aggregation.Dataset{Installments: insts}, periods.AllMonths(), now)

	assert.Equal(t, 6, report.OverdueInstallments)
	require.Len(t, report.OverdueList, 4)
	for i, item := range report.OverdueList {
		assert.Equal(t, fmt.Sprintf("i%d", i), item.InstallmentID, "worklist keeps input order")
	}
}

func TestAverageTicketScoping(t *testing.T) {
	ds := aggregation.Dataset{Contracts: []domain.Contract{
		{ContractID: "c1", TotalValue: dec("1000.00"), StartDate: day(2024, time.January, 10)},
		{ContractID: "c2", TotalValue: dec("500.00"), StartDate: day(2024, time.March, 10)},
	}}
	now := day(2024, time.March, 20)

	all := aggregation.Aggregate(ds, periods.AllMonths(), now)
	assert.True(t, all.AverageTicket.Equal(dec("750.00")))

	march := aggregation.Aggregate(ds, periods.SingleMonth(day(2024, time.March, 1)), now)
	assert.True(t, march.AverageTicket.Equal(dec("500.00")))

	february := aggregation.Aggregate(ds, periods.SingleMonth(day(2024, time.February, 1)), now)
	assert.True(t, february.AverageTicket.IsZero())
}

func TestCashflow(t *testing.T) {
	now := day(2024, time.June, 10)
	insts := []domain.InstallmentWithContract{
		paidInst("i1", "c1", day(2024, time.May, 5), "100.00", "a1"),
		openInst("i2", "c1", day(2024, time.May, 20), "50.00", "a1"),   // overdue by june 10
		openInst("i3", "c1", day(2024, time.June, 25), "75.00", "a1"),  // still open
		openInst("i4", "c1", day(2023, time.June, 25), "999.00", "a1"), // out of scope
	}
	receipts := []domain.ManualReceipt{
		{ReceiptID: "r1", Amount: dec("30.00"), ReceivedDate: day(2024, time.June, 2)},
	}

	totals := aggregation.Cashflow(insts, receipts, periods.FixedWindow(2, now), now)

	assert.True(t, totals.Predicted.Equal(dec("225.00")))
	assert.True(t, totals.Received.Equal(dec("130.00")))
	assert.True(t, totals.Open.Equal(dec("75.00")))
	assert.True(t, totals.Overdue.Equal(dec("50.00")))
	assert.Equal(t, 3, totals.InstallmentCount)
	assert.Equal(t, 1, totals.ReceiptCount)
	assert.Equal(t, 1, totals.PaidCount)
	assert.Equal(t, 1, totals.OpenCount)
	assert.Equal(t, 1, totals.OverdueCount)
}

func TestExpenseLedger(t *testing.T) {
	expenses := []domain.Expense{
		{ExpenseID: "e1", Amount: dec("100.00"), DueDate: day(2024, time.June, 5), Paid: true},
		{ExpenseID: "e2", Amount: dec("40.00"), DueDate: day(2024, time.June, 20)},
		{ExpenseID: "e3", Amount: dec("999.00"), DueDate: day(2024, time.July, 1)},
	}

	totals := aggregation.ExpenseLedger(expenses, periods.SingleMonth(day(2024, time.June, 1)))

	assert.True(t, totals.Total.Equal(dec("140.00")))
	assert.True(t, totals.Paid.Equal(dec("100.00")))
	assert.True(t, totals.Pending.Equal(dec("40.00")))
}
