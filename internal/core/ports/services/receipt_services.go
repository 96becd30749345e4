package services

import (
	"context"

	"github.com/lexfin/lexfin_backend/internal/core/domain"
	"github.com/lexfin/lexfin_backend/internal/dto"
)

// ReceiptReaderSvc defines read operations for manual receipts
type ReceiptReaderSvc interface {
	// GetReceiptByID retrieves a receipt by its ID.
	GetReceiptByID(ctx context.Context, organizationID, receiptID, requestingUserID string) (*domain.ManualReceipt, error)

	// ListReceipts retrieves all receipts of an organization, newest first.
	ListReceipts(ctx context.Context, organizationID, requestingUserID string) ([]domain.ManualReceipt, error)
}

// ReceiptWriterSvc defines write operations for manual receipts
type ReceiptWriterSvc interface {
	// CreateReceipt records a manual receipt.
	CreateReceipt(ctx context.Context, organizationID string, req dto.CreateReceiptRequest, creatorUserID string) (*domain.ManualReceipt, error)

	// UpdateReceipt updates the mutable fields of a receipt.
	UpdateReceipt(ctx context.Context, organizationID, receiptID string, req dto.UpdateReceiptRequest, requestingUserID string) (*domain.ManualReceipt, error)

	// DeleteReceipt removes a receipt.
	DeleteReceipt(ctx context.Context, organizationID, receiptID, requestingUserID string) error
}

// ReceiptSvcFacade combines all receipt-related service interfaces
type ReceiptSvcFacade interface {
	ReceiptReaderSvc
	ReceiptWriterSvc
}
