package dto

import (
	"time"

	"github.com/lexfin/lexfin_backend/internal/core/domain"
	"github.com/lexfin/lexfin_backend/internal/core/periods"
	"github.com/shopspring/decimal"
)

// PeriodQuery selects the aggregation window of a reporting endpoint.
// Accepted values: "all", a fixed window ("3m", "6m", "12m") or a single
// month ("2024-05").
type PeriodQuery struct {
	Period string `form:"period,default=all"`
}

// SeriesPointResponse is one month of a chart series.
type SeriesPointResponse struct {
	Key   string          `json:"key"`
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// SegmentResponse is one slice of a donut breakdown.
type SegmentResponse struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
	Color string          `json:"color"`
}

// OverdueItemResponse is one row of the dashboard overdue worklist.
type OverdueItemResponse struct {
	InstallmentID string          `json:"installmentID"`
	ContractID    string          `json:"contractID"`
	ClientName    string          `json:"clientName"`
	DueDate       string          `json:"dueDate"`
	Amount        decimal.Decimal `json:"amount"`
}

// FinancialReportResponse is the payload of the dashboard and report endpoints.
type FinancialReportResponse struct {
	RevenueSeries []SeriesPointResponse `json:"revenueSeries"`
	ExpenseSeries []SeriesPointResponse `json:"expenseSeries"`
	ResultSeries  []SeriesPointResponse `json:"resultSeries"`

	Revenue   decimal.Decimal `json:"revenue"`
	Expenses  decimal.Decimal `json:"expenses"`
	NetResult decimal.Decimal `json:"netResult"`

	FutureReceivables   decimal.Decimal `json:"futureReceivables"`
	OverdueContracts    int             `json:"overdueContracts"`
	OverdueInstallments int             `json:"overdueInstallments"`
	AverageTicket       decimal.Decimal `json:"averageTicket"`

	AreaSegments       []SegmentResponse `json:"areaSegments"`
	SubareaSegments    []SegmentResponse `json:"subareaSegments"`
	HonorariumSegments []SegmentResponse `json:"honorariumSegments"`
	OriginSegments     []SegmentResponse `json:"originSegments"`

	OverdueList []OverdueItemResponse `json:"overdueList"`
}

func toSeries(points []domain.SeriesPoint) []SeriesPointResponse {
	out := make([]SeriesPointResponse, len(points))
	for i, p := range points {
		out[i] = SeriesPointResponse{Key: p.Key, Label: p.Label, Value: p.Value}
	}
	return out
}

func toSegments(segments []domain.Segment) []SegmentResponse {
	out := make([]SegmentResponse, len(segments))
	for i, s := range segments {
		out[i] = SegmentResponse{Label: s.Label, Value: s.Value, Color: s.Color}
	}
	return out
}

// ToFinancialReportResponse converts domain.FinancialReport to DTO.
func ToFinancialReportResponse(r *domain.FinancialReport) FinancialReportResponse {
	overdue := make([]OverdueItemResponse, len(r.OverdueList))
	for i, item := range r.OverdueList {
		overdue[i] = OverdueItemResponse{
			InstallmentID: item.InstallmentID,
			ContractID:    item.ContractID,
			ClientName:    item.ClientName,
			DueDate:       item.DueDate,
			Amount:        item.Amount,
		}
	}
	return FinancialReportResponse{
		RevenueSeries:       toSeries(r.RevenueSeries),
		ExpenseSeries:       toSeries(r.ExpenseSeries),
		ResultSeries:        toSeries(r.ResultSeries),
		Revenue:             r.Revenue,
		Expenses:            r.Expenses,
		NetResult:           r.NetResult,
		FutureReceivables:   r.FutureReceivables,
		OverdueContracts:    r.OverdueContracts,
		OverdueInstallments: r.OverdueInstallments,
		AverageTicket:       r.AverageTicket,
		AreaSegments:        toSegments(r.AreaSegments),
		SubareaSegments:     toSegments(r.SubareaSegments),
		HonorariumSegments:  toSegments(r.HonorariumSegments),
		OriginSegments:      toSegments(r.OriginSegments),
		OverdueList:         overdue,
	}
}

// CashflowEntryResponse is one row of the cash-flow table.
type CashflowEntryResponse struct {
	EntryID     string                   `json:"entryID"`
	Kind        domain.CashflowEntryKind `json:"kind"`
	Description string                   `json:"description"`
	Date        time.Time                `json:"date"`
	Amount      decimal.Decimal          `json:"amount"`
	Status      string                   `json:"status"`
	ContractID  *string                  `json:"contractID,omitempty"`
}

// CashflowViewResponse is the payload of the cash-flow endpoint.
type CashflowViewResponse struct {
	Predicted decimal.Decimal `json:"predicted"`
	Received  decimal.Decimal `json:"received"`
	Open      decimal.Decimal `json:"open"`
	Overdue   decimal.Decimal `json:"overdue"`

	Entries []CashflowEntryResponse `json:"entries"`
}

// ToCashflowViewResponse converts domain.CashflowView to DTO.
func ToCashflowViewResponse(v *domain.CashflowView) CashflowViewResponse {
	entries := make([]CashflowEntryResponse, len(v.Entries))
	for i, e := range v.Entries {
		entries[i] = CashflowEntryResponse{
			EntryID:     e.EntryID,
			Kind:        e.Kind,
			Description: e.Description,
			Date:        e.Date,
			Amount:      e.Amount,
			Status:      e.Status,
			ContractID:  e.ContractID,
		}
	}
	return CashflowViewResponse{
		Predicted: v.Totals.Predicted,
		Received:  v.Totals.Received,
		Open:      v.Totals.Open,
		Overdue:   v.Totals.Overdue,
		Entries:   entries,
	}
}

// ExpenseViewResponse is the payload of the expense ledger endpoint.
type ExpenseViewResponse struct {
	Total   decimal.Decimal `json:"total"`
	Paid    decimal.Decimal `json:"paid"`
	Pending decimal.Decimal `json:"pending"`

	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseViewResponse converts domain.ExpenseView to DTO.
func ToExpenseViewResponse(v *domain.ExpenseView) ExpenseViewResponse {
	return ExpenseViewResponse{
		Total:    v.Totals.Total,
		Paid:     v.Totals.Paid,
		Pending:  v.Totals.Pending,
		Expenses: ToListExpensesResponse(v.Expenses).Expenses,
	}
}

// MonthOptionResponse is one selectable month of the report filter.
type MonthOptionResponse struct {
	Key   string `json:"key"`   // YYYY-MM
	Label string `json:"label"` // long label, e.g. "janeiro 2024"
}

// ListMonthOptionsResponse wraps the selectable months.
type ListMonthOptionsResponse struct {
	Months []MonthOptionResponse `json:"months"`
}

// ToListMonthOptionsResponse converts period buckets to the month filter DTO.
func ToListMonthOptionsResponse(buckets []periods.Bucket) ListMonthOptionsResponse {
	months := make([]MonthOptionResponse, len(buckets))
	for i, b := range buckets {
		months[i] = MonthOptionResponse{Key: b.Key, Label: periods.MonthLongLabel(b.Date)}
	}
	return ListMonthOptionsResponse{Months: months}
}
