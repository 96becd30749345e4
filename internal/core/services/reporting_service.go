package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/lexfin/lexfin_backend/internal/core/aggregation"
	"github.com/lexfin/lexfin_backend/internal/core/domain"
	portsrepo "github.com/lexfin/lexfin_backend/internal/core/ports/repositories"
	portssvc "github.com/lexfin/lexfin_backend/internal/core/ports/services"
	"github.com/lexfin/lexfin_backend/internal/core/periods"
	"golang.org/x/sync/errgroup"
)

// reportingService implements the ReportingSvcFacade. It loads the
// organization's records and hands them to the aggregation engine; all the
// financial arithmetic lives there, this service only fetches and authorizes.
type reportingService struct {
	BaseService
	contractRepo portsrepo.ContractRepositoryFacade
	receiptRepo  portsrepo.ReceiptRepositoryFacade
	expenseRepo  portsrepo.ExpenseRepositoryFacade
	taxonomyRepo portsrepo.TaxonomyRepositoryFacade
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingOrganizationAuthorizer sets the organization authorizer for the reporting service.
func WithReportingOrganizationAuthorizer(authorizer portssvc.OrganizationAuthorizerSvc) ReportingServiceOption {
	return func(s *reportingService) {
		s.OrganizationAuthorizer = authorizer
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(
	contractRepo portsrepo.ContractRepositoryFacade,
	receiptRepo portsrepo.ReceiptRepositoryFacade,
	expenseRepo portsrepo.ExpenseRepositoryFacade,
	taxonomyRepo portsrepo.TaxonomyRepositoryFacade,
	options ...ReportingServiceOption,
) portssvc.ReportingSvcFacade {
	svc := &reportingService{
		contractRepo: contractRepo,
		receiptRepo:  receiptRepo,
		expenseRepo:  expenseRepo,
		taxonomyRepo: taxonomyRepo,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// loadDataset fetches every record family of the organization concurrently.
func (s *reportingService) loadDataset(ctx context.Context, organizationID string) (aggregation.Dataset, error) {
	var ds aggregation.Dataset

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		contracts, err := s.contractRepo.ListContracts(gctx, organizationID)
		if err != nil {
			return fmt.Errorf("failed to load contracts: %w", err)
		}
		ds.Contracts = contracts
		return nil
	})
	g.Go(func() error {
		installments, err := s.contractRepo.ListInstallmentsWithContract(gctx, organizationID)
		if err != nil {
			return fmt.Errorf("failed to load installments: %w", err)
		}
		ds.Installments = installments
		return nil
	})
	g.Go(func() error {
		receipts, err := s.receiptRepo.ListReceipts(gctx, organizationID)
		if err != nil {
			return fmt.Errorf("failed to load receipts: %w", err)
		}
		ds.Receipts = receipts
		return nil
	})
	g.Go(func() error {
		expenses, err := s.expenseRepo.ListExpenses(gctx, organizationID)
		if err != nil {
			return fmt.Errorf("failed to load expenses: %w", err)
		}
		ds.Expenses = expenses
		return nil
	})
	g.Go(func() error {
		areas, err := s.taxonomyRepo.ListAreas(gctx, organizationID)
		if err != nil {
			return fmt.Errorf("failed to load areas: %w", err)
		}
		ds.Areas = areas
		return nil
	})
	g.Go(func() error {
		subareas, err := s.taxonomyRepo.ListSubareas(gctx, organizationID)
		if err != nil {
			return fmt.Errorf("failed to load subareas: %w", err)
		}
		ds.Subareas = subareas
		return nil
	})
	g.Go(func() error {
		origins, err := s.taxonomyRepo.ListLookupItems(gctx, organizationID, domain.LookupClientOrigin)
		if err != nil {
			return fmt.Errorf("failed to load client origins: %w", err)
		}
		ds.Origins = origins
		return nil
	})

	if err := g.Wait(); err != nil {
		return aggregation.Dataset{}, err
	}
	return ds, nil
}

// Dashboard aggregates the full financial report for the dashboard view.
func (s *reportingService) Dashboard(ctx context.Context, organizationID string, period periods.Period, now time.Time, requestingUserID string) (*domain.FinancialReport, error) {
	return s.aggregate(ctx, organizationID, period, now, requestingUserID)
}

// Report aggregates the full financial report for the reports view.
func (s *reportingService) Report(ctx context.Context, organizationID string, period periods.Period, now time.Time, requestingUserID string) (*domain.FinancialReport, error) {
	return s.aggregate(ctx, organizationID, period, now, requestingUserID)
}

func (s *reportingService) aggregate(ctx context.Context, organizationID string, period periods.Period, now time.Time, requestingUserID string) (*domain.FinancialReport, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleReadOnly); err != nil {
		s.LogError(ctx, err, "User not authorized to view financial report",
			slog.String("user_id", requestingUserID),
			slog.String("organization_id", organizationID))
		return nil, err
	}

	ds, err := s.loadDataset(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load reporting dataset", slog.String("organization_id", organizationID))
		return nil, err
	}

	report := aggregation.Aggregate(ds, period, now)
	return &report, nil
}

// Cashflow builds the cash-flow table and its totals for one period selection.
// Entries mix installments and manual receipts in date order.
func (s *reportingService) Cashflow(ctx context.Context, organizationID string, period periods.Period, now time.Time, requestingUserID string) (*domain.CashflowView, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	var installments []domain.InstallmentWithContract
	var receipts []domain.ManualReceipt

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.contractRepo.ListInstallmentsWithContract(gctx, organizationID)
		if err != nil {
			return fmt.Errorf("failed to load installments: %w", err)
		}
		installments = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.receiptRepo.ListReceipts(gctx, organizationID)
		if err != nil {
			return fmt.Errorf("failed to load receipts: %w", err)
		}
		receipts = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load cashflow dataset", slog.String("organization_id", organizationID))
		return nil, err
	}

	totals := aggregation.Cashflow(installments, receipts, period, now)

	entries := make([]domain.CashflowEntry, 0, len(installments)+len(receipts))
	for i := range installments {
		inst := &installments[i]
		if !period.Contains(inst.DueDate) {
			continue
		}
		contractID := inst.ContractID
		entries = append(entries, domain.CashflowEntry{
			EntryID:     inst.InstallmentID,
			Kind:        domain.EntryInstallment,
			Description: inst.ClientName,
			Date:        inst.DueDate,
			Amount:      inst.Amount,
			Status:      string(aggregation.EffectiveStatus(inst.ContractInstallment, now)),
			ContractID:  &contractID,
		})
	}
	for i := range receipts {
		r := &receipts[i]
		if !period.Contains(r.ReceivedDate) {
			continue
		}
		entries = append(entries, domain.CashflowEntry{
			EntryID:     r.ReceiptID,
			Kind:        domain.EntryReceipt,
			Description: r.Description,
			Date:        r.ReceivedDate,
			Amount:      r.Amount,
			Status:      "received",
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	return &domain.CashflowView{Totals: totals, Entries: entries}, nil
}

// ExpenseLedger builds the expense table and its totals for one period selection.
func (s *reportingService) ExpenseLedger(ctx context.Context, organizationID string, period periods.Period, now time.Time, requestingUserID string) (*domain.ExpenseView, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.ListExpenses(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load expenses", slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	totals := aggregation.ExpenseLedger(expenses, period)

	scoped := make([]domain.Expense, 0, len(expenses))
	for _, e := range expenses {
		if period.Contains(e.DueDate) {
			scoped = append(scoped, e)
		}
	}

	return &domain.ExpenseView{Totals: totals, Expenses: scoped}, nil
}

// MonthOptions lists the selectable months of the period filter, spanning the
// earliest to the latest record date of the organization.
func (s *reportingService) MonthOptions(ctx context.Context, organizationID string, now time.Time, requestingUserID string) ([]periods.Bucket, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	ds, err := s.loadDataset(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load dataset for month options", slog.String("organization_id", organizationID))
		return nil, err
	}

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

	return periods.MonthRange(dates, now), nil
}
