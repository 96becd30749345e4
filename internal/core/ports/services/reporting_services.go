package services

import (
	"context"
	"time"

	"github.com/lexfin/lexfin_backend/internal/core/domain"
	"github.com/lexfin/lexfin_backend/internal/core/periods"
)

// ReportingSvcFacade defines the read-only view adapters over the aggregation
// engine. Every method takes an explicit now so results are deterministic and
// testable; callers pass time.Now().UTC().
type ReportingSvcFacade interface {
	// Dashboard aggregates the full financial report for the dashboard view.
	Dashboard(ctx context.Context, organizationID string, period periods.Period, now time.Time, requestingUserID string) (*domain.FinancialReport, error)

	// Report aggregates the same report for the reports view, typically with
	// a single-month or all-months period.
	Report(ctx context.Context, organizationID string, period periods.Period, now time.Time, requestingUserID string) (*domain.FinancialReport, error)

	// Cashflow builds the cash-flow table and its totals.
	Cashflow(ctx context.Context, organizationID string, period periods.Period, now time.Time, requestingUserID string) (*domain.CashflowView, error)

	// ExpenseLedger builds the expense table and its totals.
	ExpenseLedger(ctx context.Context, organizationID string, period periods.Period, now time.Time, requestingUserID string) (*domain.ExpenseView, error)

	// MonthOptions lists the selectable months of the period filter, derived
	// from the organization's record dates.
	MonthOptions(ctx context.Context, organizationID string, now time.Time, requestingUserID string) ([]periods.Bucket, error)
}
