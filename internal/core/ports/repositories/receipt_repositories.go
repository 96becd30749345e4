package repositories

import (
	"context"

	"github.com/lexfin/lexfin_backend/internal/core/domain"
)

// ReceiptReader defines read operations for manual receipts
type ReceiptReader interface {
	// FindReceiptByID retrieves a specific receipt by its ID.
	FindReceiptByID(ctx context.Context, organizationID, receiptID string) (*domain.ManualReceipt, error)

	// ListReceipts retrieves all receipts of an organization, newest first.
	ListReceipts(ctx context.Context, organizationID string) ([]domain.ManualReceipt, error)
}

// ReceiptWriter defines write operations for manual receipts
type ReceiptWriter interface {
	// SaveReceipt persists a new receipt.
	SaveReceipt(ctx context.Context, receipt domain.ManualReceipt) error

	// UpdateReceipt persists changes to an existing receipt.
	UpdateReceipt(ctx context.Context, receipt domain.ManualReceipt) error

	// DeleteReceipt removes a receipt.
	DeleteReceipt(ctx context.Context, organizationID, receiptID string) error
}

// ReceiptRepositoryFacade combines all receipt-related repository interfaces
type ReceiptRepositoryFacade interface {
	ReceiptReader
	ReceiptWriter
}
