package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lexfin/lexfin_backend/internal/apperrors"
	"github.com/lexfin/lexfin_backend/internal/core/domain"
	portsrepo "github.com/lexfin/lexfin_backend/internal/core/ports/repositories"
	portssvc "github.com/lexfin/lexfin_backend/internal/core/ports/services"
	"github.com/lexfin/lexfin_backend/internal/core/periods"
	"github.com/lexfin/lexfin_backend/internal/dto"
	"github.com/lexfin/lexfin_backend/internal/utils/money"
	"github.com/google/uuid"
)

// ContractService handles contract creation, installment schedule generation
// and the open/paid toggle.
type ContractService struct {
	BaseService
	contractRepo portsrepo.ContractRepositoryFacade
	taxonomyRepo portsrepo.TaxonomyRepositoryFacade
}

// NewContractService creates a new ContractService.
func NewContractService(cr portsrepo.ContractRepositoryFacade, tr portsrepo.TaxonomyRepositoryFacade, authorizer portssvc.OrganizationAuthorizerSvc) portssvc.ContractSvcFacade {
	return &ContractService{
		BaseService:  BaseService{OrganizationAuthorizer: authorizer},
		contractRepo: cr,
		taxonomyRepo: tr,
	}
}

var _ portssvc.ContractSvcFacade = (*ContractService)(nil)

// GetContractByID retrieves a contract and its installment schedule.
func (s *ContractService) GetContractByID(ctx context.Context, organizationID, contractID, requestingUserID string) (*domain.Contract, []domain.ContractInstallment, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, nil, err
	}

	contract, err := s.contractRepo.FindContractByID(ctx, organizationID, contractID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find contract by ID", slog.String("contract_id", contractID))
		}
		return nil, nil, err
	}

	installments, err := s.contractRepo.ListInstallmentsByContract(ctx, organizationID, contractID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list installments for contract", slog.String("contract_id", contractID))
		return nil, nil, fmt.Errorf("failed to list installments for contract %s: %w", contractID, err)
	}

	return contract, installments, nil
}

// ListContracts retrieves all contracts of an organization, newest first.
func (s *ContractService) ListContracts(ctx context.Context, organizationID, requestingUserID string) ([]domain.Contract, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	contracts, err := s.contractRepo.ListContracts(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list contracts", slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	if contracts == nil {
		return []domain.Contract{}, nil
	}
	return contracts, nil
}

// CreateContract persists a contract and generates its installment schedule.
// The total is parsed from localized input, split into cent-exact installment
// amounts and scheduled one calendar month apart starting at the first due
// date. A contract signed today can start billing months later.
func (s *ContractService) CreateContract(ctx context.Context, organizationID string, req dto.CreateContractRequest, creatorUserID string) (*domain.Contract, []domain.ContractInstallment, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, organizationID, domain.RoleMember); err != nil {
		return nil, nil, err
	}

	totalValue := money.ParseAmount(req.TotalValue)
	if !totalValue.IsPositive() {
		return nil, nil, fmt.Errorf("%w: total value must be positive", apperrors.ErrValidation)
	}

	if err := s.validateReferences(ctx, organizationID, req.HonorariumTypeID, req.PaymentMethodID, req.OriginID, req.AreaID, req.SubareaID); err != nil {
		return nil, nil, err
	}

	amounts, err := money.SplitIntoInstallments(totalValue, req.InstallmentCount)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	firstDueDate := req.StartDate
	if req.FirstDueDate != nil {
		firstDueDate = *req.FirstDueDate
	}

	now := time.Now().UTC()
	contractID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	contract := domain.Contract{
		ContractID:       contractID,
		OrganizationID:   organizationID,
		ClientName:       req.ClientName,
		HonorariumTypeID: req.HonorariumTypeID,
		AreaID:           req.AreaID,
		SubareaID:        req.SubareaID,
		OriginID:         req.OriginID,
		PaymentMethodID:  req.PaymentMethodID,
		TotalValue:       totalValue,
		StartDate:        req.StartDate,
		Status:           domain.ContractActive,
		Responsible:      req.Responsible,
		Notes:            req.Notes,
		AuditFields:      audit,
	}

	installments := make([]domain.ContractInstallment, len(amounts))
	for i, amount := range amounts {
		installments[i] = domain.ContractInstallment{
			InstallmentID:  uuid.NewString(),
			OrganizationID: organizationID,
			ContractID:     contractID,
			DueDate:        periods.AddMonths(firstDueDate, i),
			Amount:         amount,
			Status:         domain.InstallmentOpen,
			AuditFields:    audit,
		}
	}

	if err := s.contractRepo.SaveContract(ctx, contract); err != nil {
		s.LogError(ctx, err, "Failed to save contract", slog.String("organization_id", organizationID))
		return nil, nil, fmt.Errorf("failed to create contract: %w", err)
	}

	if err := s.contractRepo.SaveInstallments(ctx, installments); err != nil {
		// The contract row exists but its schedule does not. Surface this as a
		// partial failure so the caller knows a retry of the batch is needed.
		s.LogError(ctx, err, "Contract saved but installment batch failed", slog.String("contract_id", contractID))
		return nil, nil, fmt.Errorf("%w: contract %s created without installments: %v", apperrors.ErrPartialBatch, contractID, err)
	}

	s.LogInfo(ctx, "Contract created successfully",
		slog.String("contract_id", contractID),
		slog.Int("installment_count", len(installments)))
	return &contract, installments, nil
}

// UpdateContract updates the mutable fields of a contract. TotalValue and
// StartDate are immutable; changing them would invalidate the generated schedule.
func (s *ContractService) UpdateContract(ctx context.Context, organizationID, contractID string, req dto.UpdateContractRequest, requestingUserID string) (*domain.Contract, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleMember); err != nil {
		return nil, err
	}

	contract, err := s.contractRepo.FindContractByID(ctx, organizationID, contractID)
	if err != nil {
		return nil, err
	}

	if req.ClientName != nil {
		contract.ClientName = *req.ClientName
	}
	if req.HonorariumTypeID != nil {
		contract.HonorariumTypeID = *req.HonorariumTypeID
	}
	if req.AreaID != nil {
		contract.AreaID = *req.AreaID
	}
	if req.SubareaID != nil {
		contract.SubareaID = req.SubareaID
	}
	if req.OriginID != nil {
		contract.OriginID = req.OriginID
	}
	if req.PaymentMethodID != nil {
		contract.PaymentMethodID = *req.PaymentMethodID
	}
	if req.Status != nil {
		contract.Status = *req.Status
	}
	if req.Responsible != nil {
		contract.Responsible = req.Responsible
	}
	if req.Notes != nil {
		contract.Notes = req.Notes
	}

	if err := s.validateReferences(ctx, organizationID, contract.HonorariumTypeID, contract.PaymentMethodID, contract.OriginID, contract.AreaID, contract.SubareaID); err != nil {
		return nil, err
	}

	contract.LastUpdatedAt = time.Now().UTC()
	contract.LastUpdatedBy = requestingUserID

	if err := s.contractRepo.UpdateContract(ctx, *contract); err != nil {
		s.LogError(ctx, err, "Failed to update contract", slog.String("contract_id", contractID))
		return nil, fmt.Errorf("failed to update contract %s: %w", contractID, err)
	}

	return contract, nil
}

// DeleteContract removes a contract and its installments, installments first.
func (s *ContractService) DeleteContract(ctx context.Context, organizationID, contractID, requestingUserID string) error {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleMember); err != nil {
		return err
	}

	if _, err := s.contractRepo.FindContractByID(ctx, organizationID, contractID); err != nil {
		return err
	}

	if err := s.contractRepo.DeleteInstallmentsByContract(ctx, organizationID, contractID); err != nil {
		s.LogError(ctx, err, "Failed to delete installments for contract", slog.String("contract_id", contractID))
		return fmt.Errorf("failed to delete installments for contract %s: %w", contractID, err)
	}
	if err := s.contractRepo.DeleteContract(ctx, organizationID, contractID); err != nil {
		s.LogError(ctx, err, "Failed to delete contract", slog.String("contract_id", contractID))
		return fmt.Errorf("failed to delete contract %s: %w", contractID, err)
	}

	s.LogInfo(ctx, "Contract deleted", slog.String("contract_id", contractID))
	return nil
}

// ToggleInstallmentPaid flips an installment between open and paid. Marking
// paid stamps PaidAt; marking open clears it. Overdue is never stored, so the
// toggle only ever writes "open" or "paid".
func (s *ContractService) ToggleInstallmentPaid(ctx context.Context, organizationID, installmentID string, paid bool, requestingUserID string) (*domain.ContractInstallment, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleMember); err != nil {
		return nil, err
	}

	installment, err := s.contractRepo.FindInstallmentByID(ctx, organizationID, installmentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find installment", slog.String("installment_id", installmentID))
		}
		return nil, err
	}

	now := time.Now().UTC()
	if paid {
		installment.Status = domain.InstallmentPaid
		installment.PaidAt = &now
	} else {
		installment.Status = domain.InstallmentOpen
		installment.PaidAt = nil
	}
	installment.LastUpdatedAt = now
	installment.LastUpdatedBy = requestingUserID

	if err := s.contractRepo.UpdateInstallment(ctx, *installment); err != nil {
		s.LogError(ctx, err, "Failed to update installment", slog.String("installment_id", installmentID))
		return nil, fmt.Errorf("failed to update installment %s: %w", installmentID, err)
	}

	s.LogInfo(ctx, "Installment status toggled",
		slog.String("installment_id", installmentID),
		slog.Bool("paid", paid))
	return installment, nil
}

// validateReferences checks that every taxonomy and lookup reference of a
// contract resolves within the organization, and that the subarea (when set)
// belongs to the referenced area.
func (s *ContractService) validateReferences(ctx context.Context, organizationID, honorariumTypeID, paymentMethodID string, originID *string, areaID string, subareaID *string) error {
	if _, err := s.taxonomyRepo.FindLookupItemByID(ctx, organizationID, honorariumTypeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: honorarium type %s not found", apperrors.ErrValidation, honorariumTypeID)
		}
		return fmt.Errorf("failed to validate honorarium type: %w", err)
	}
	if _, err := s.taxonomyRepo.FindLookupItemByID(ctx, organizationID, paymentMethodID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: payment method %s not found", apperrors.ErrValidation, paymentMethodID)
		}
		return fmt.Errorf("failed to validate payment method: %w", err)
	}
	if originID != nil && *originID != "" {
		if _, err := s.taxonomyRepo.FindLookupItemByID(ctx, organizationID, *originID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: client origin %s not found", apperrors.ErrValidation, *originID)
			}
			return fmt.Errorf("failed to validate client origin: %w", err)
		}
	}

	if _, err := s.taxonomyRepo.FindAreaByID(ctx, organizationID, areaID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: law area %s not found", apperrors.ErrValidation, areaID)
		}
		return fmt.Errorf("failed to validate law area: %w", err)
	}
	if subareaID != nil && *subareaID != "" {
		subarea, err := s.taxonomyRepo.FindSubareaByID(ctx, organizationID, *subareaID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: law subarea %s not found", apperrors.ErrValidation, *subareaID)
			}
			return fmt.Errorf("failed to validate law subarea: %w", err)
		}
		if subarea.AreaID != areaID {
			return fmt.Errorf("%w: subarea %s does not belong to area %s", apperrors.ErrValidation, *subareaID, areaID)
		}
	}
	return nil
}
