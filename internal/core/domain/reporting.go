package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SeriesPoint is one month of a time series, in chronological order.
type SeriesPoint struct {
	Key   string          `json:"key"`   // YYYY-MM bucket key
	Label string          `json:"label"` // short month label, e.g. "jan/24"
	Value decimal.Decimal `json:"value"`
}

// Segment is one category's aggregated value plus its assigned display color,
// used for the donut breakdowns.
type Segment struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
	Color string          `json:"color"`
}

// OverdueItem is one row of the short overdue worklist shown on the dashboard.
type OverdueItem struct {
	InstallmentID string          `json:"installmentID"`
	ContractID    string          `json:"contractID"`
	ClientName    string          `json:"clientName"`
	DueDate       string          `json:"dueDate"` // ISO date
	Amount        decimal.Decimal `json:"amount"`
}

// FinancialReport is the full output of the aggregation engine for one period
// selection. Scalar KPIs are plain amounts in the base currency unit; display
// formatting is a caller concern.
type FinancialReport struct {
	RevenueSeries []SeriesPoint `json:"revenueSeries"`
	ExpenseSeries []SeriesPoint `json:"expenseSeries"`
	ResultSeries  []SeriesPoint `json:"resultSeries"`

	Revenue   decimal.Decimal `json:"revenue"`
	Expenses  decimal.Decimal `json:"expenses"`
	NetResult decimal.Decimal `json:"netResult"`

	// All-time figures, independent of the period selection.
	FutureReceivables   decimal.Decimal `json:"futureReceivables"`
	OverdueContracts    int             `json:"overdueContracts"`
	OverdueInstallments int             `json:"overdueInstallments"`

	AverageTicket decimal.Decimal `json:"averageTicket"`

	AreaSegments       []Segment `json:"areaSegments"`
	SubareaSegments    []Segment `json:"subareaSegments"`
	HonorariumSegments []Segment `json:"honorariumSegments"`
	OriginSegments     []Segment `json:"originSegments"`

	OverdueList []OverdueItem `json:"overdueList"`
}

// CashflowTotals summarizes the installment/receipt ledger for one period
// selection.
type CashflowTotals struct {
	Predicted decimal.Decimal `json:"predicted"`
	Received  decimal.Decimal `json:"received"`
	Open      decimal.Decimal `json:"open"`
	Overdue   decimal.Decimal `json:"overdue"`

	InstallmentCount int `json:"installmentCount"`
	ReceiptCount     int `json:"receiptCount"`
	OpenCount        int `json:"openCount"`
	PaidCount        int `json:"paidCount"`
	OverdueCount     int `json:"overdueCount"`
}

// CashflowEntryKind distinguishes the two row sources of the cash-flow table.
type CashflowEntryKind string

const (
	EntryInstallment CashflowEntryKind = "installment"
	EntryReceipt     CashflowEntryKind = "receipt"
)

// CashflowEntry is one row of the cash-flow table, either a contract
// installment or a manual receipt. Status carries the overdue-aware effective
// state for installments and "received" for receipts.
type CashflowEntry struct {
	EntryID     string            `json:"entryID"`
	Kind        CashflowEntryKind `json:"kind"`
	Description string            `json:"description"`
	Date        time.Time         `json:"date"`
	Amount      decimal.Decimal   `json:"amount"`
	Status      string            `json:"status"`
	ContractID  *string           `json:"contractID,omitempty"`
}

// CashflowView is the full cash-flow screen payload for one period selection.
type CashflowView struct {
	Totals  CashflowTotals  `json:"totals"`
	Entries []CashflowEntry `json:"entries"`
}

// ExpenseView is the full expense screen payload for one period selection.
type ExpenseView struct {
	Totals   ExpenseTotals `json:"totals"`
	Expenses []Expense     `json:"expenses"`
}

// ExpenseTotals summarizes the expense ledger for one period selection.
type ExpenseTotals struct {
	Total   decimal.Decimal `json:"total"`
	Paid    decimal.Decimal `json:"paid"`
	Pending decimal.Decimal `json:"pending"`
}
