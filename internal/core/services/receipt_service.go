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
	"github.com/lexfin/lexfin_backend/internal/dto"
	"github.com/lexfin/lexfin_backend/internal/utils/money"
	"github.com/google/uuid"
)

// ReceiptService handles manual receipt records.
type ReceiptService struct {
	BaseService
	receiptRepo  portsrepo.ReceiptRepositoryFacade
	taxonomyRepo portsrepo.TaxonomyRepositoryFacade
}

// NewReceiptService creates a new ReceiptService.
func NewReceiptService(rr portsrepo.ReceiptRepositoryFacade, tr portsrepo.TaxonomyRepositoryFacade, authorizer portssvc.OrganizationAuthorizerSvc) portssvc.ReceiptSvcFacade {
	return &ReceiptService{
		BaseService:  BaseService{OrganizationAuthorizer: authorizer},
		receiptRepo:  rr,
		taxonomyRepo: tr,
	}
}

var _ portssvc.ReceiptSvcFacade = (*ReceiptService)(nil)

// GetReceiptByID retrieves a receipt by its ID.
func (s *ReceiptService) GetReceiptByID(ctx context.Context, organizationID, receiptID, requestingUserID string) (*domain.ManualReceipt, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	receipt, err := s.receiptRepo.FindReceiptByID(ctx, organizationID, receiptID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find receipt by ID", slog.String("receipt_id", receiptID))
		}
		return nil, err
	}
	return receipt, nil
}

// ListReceipts retrieves all receipts of an organization, newest first.
func (s *ReceiptService) ListReceipts(ctx context.Context, organizationID, requestingUserID string) ([]domain.ManualReceipt, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	receipts, err := s.receiptRepo.ListReceipts(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list receipts", slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	if receipts == nil {
		return []domain.ManualReceipt{}, nil
	}
	return receipts, nil
}

// CreateReceipt records a manual receipt.
func (s *ReceiptService) CreateReceipt(ctx context.Context, organizationID string, req dto.CreateReceiptRequest, creatorUserID string) (*domain.ManualReceipt, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, organizationID, domain.RoleMember); err != nil {
		return nil, err
	}

	amount := money.ParseAmount(req.Amount)
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if err := s.validateTaxonomy(ctx, organizationID, req.AreaID, req.SubareaID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	receipt := domain.ManualReceipt{
		ReceiptID:      uuid.NewString(),
		OrganizationID: organizationID,
		Description:    req.Description,
		Amount:         amount,
		ReceivedDate:   req.ReceivedDate,
		CategoryID:     req.CategoryID,
		AreaID:         req.AreaID,
		SubareaID:      req.SubareaID,
		Responsible:    req.Responsible,
		Notes:          req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.receiptRepo.SaveReceipt(ctx, receipt); err != nil {
		s.LogError(ctx, err, "Failed to save receipt", slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to create receipt: %w", err)
	}

	s.LogInfo(ctx, "Receipt created successfully", slog.String("receipt_id", receipt.ReceiptID))
	return &receipt, nil
}

// UpdateReceipt updates the mutable fields of a receipt.
func (s *ReceiptService) UpdateReceipt(ctx context.Context, organizationID, receiptID string, req dto.UpdateReceiptRequest, requestingUserID string) (*domain.ManualReceipt, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleMember); err != nil {
		return nil, err
	}

	receipt, err := s.receiptRepo.FindReceiptByID(ctx, organizationID, receiptID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		receipt.Description = *req.Description
	}
	if req.Amount != nil {
		amount := money.ParseAmount(*req.Amount)
		if !amount.IsPositive() {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		receipt.Amount = amount
	}
	if req.ReceivedDate != nil {
		receipt.ReceivedDate = *req.ReceivedDate
	}
	if req.CategoryID != nil {
		receipt.CategoryID = *req.CategoryID
	}
	if req.AreaID != nil {
		receipt.AreaID = req.AreaID
	}
	if req.SubareaID != nil {
		receipt.SubareaID = req.SubareaID
	}
	if req.Responsible != nil {
		receipt.Responsible = req.Responsible
	}
	if req.Notes != nil {
		receipt.Notes = req.Notes
	}

	if err := s.validateTaxonomy(ctx, organizationID, receipt.AreaID, receipt.SubareaID); err != nil {
		return nil, err
	}

	receipt.LastUpdatedAt = time.Now().UTC()
	receipt.LastUpdatedBy = requestingUserID

	if err := s.receiptRepo.UpdateReceipt(ctx, *receipt); err != nil {
		s.LogError(ctx, err, "Failed to update receipt", slog.String("receipt_id", receiptID))
		return nil, fmt.Errorf("failed to update receipt %s: %w", receiptID, err)
	}

	return receipt, nil
}

// DeleteReceipt removes a receipt.
func (s *ReceiptService) DeleteReceipt(ctx context.Context, organizationID, receiptID, requestingUserID string) error {
	if err := s.AuthorizeUser(ctx, requestingUserID, organizationID, domain.RoleMember); err != nil {
		return err
	}

	if err := s.receiptRepo.DeleteReceipt(ctx, organizationID, receiptID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete receipt", slog.String("receipt_id", receiptID))
		}
		return err
	}

	s.LogInfo(ctx, "Receipt deleted", slog.String("receipt_id", receiptID))
	return nil
}

// validateTaxonomy checks the optional area/subarea references of a receipt.
func (s *ReceiptService) validateTaxonomy(ctx context.Context, organizationID string, areaID, subareaID *string) error {
	if areaID != nil && *areaID != "" {
		if _, err := s.taxonomyRepo.FindAreaByID(ctx, organizationID, *areaID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: law area %s not found", apperrors.ErrValidation, *areaID)
			}
			return fmt.Errorf("failed to validate law area: %w", err)
		}
	}
	if subareaID != nil && *subareaID != "" {
		subarea, err := s.taxonomyRepo.FindSubareaByID(ctx, organizationID, *subareaID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: law subarea %s not found", apperrors.ErrValidation, *subareaID)
			}
			return fmt.Errorf("failed to validate law subarea: %w", err)
		}
		if areaID == nil || subarea.AreaID != *areaID {
			return fmt.Errorf("%w: subarea %s does not belong to the given area", apperrors.ErrValidation, *subareaID)
		}
	}
	return nil
}
