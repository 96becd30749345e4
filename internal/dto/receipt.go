package dto

import (
	"time"

	"github.com/lexfin/lexfin_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateReceiptRequest defines data for recording a manual receipt. Amount
// accepts localized input ("1.234,56") and is parsed server-side.
type CreateReceiptRequest struct {
	Description  string    `json:"description" binding:"required,max=200"`
	Amount       string    `json:"amount" binding:"required"`
	ReceivedDate time.Time `json:"receivedDate" binding:"required" time_format:"2006-01-02"`
	CategoryID   string    `json:"categoryID" binding:"required"`
	AreaID       *string   `json:"areaID"`
	SubareaID    *string   `json:"subareaID"`
	Responsible  *string   `json:"responsible"`
	Notes        *string   `json:"notes"`
}

// UpdateReceiptRequest defines the mutable receipt fields.
type UpdateReceiptRequest struct {
	Description  *string    `json:"description"`
	Amount       *string    `json:"amount"`
	ReceivedDate *time.Time `json:"receivedDate" time_format:"2006-01-02"`
	CategoryID   *string    `json:"categoryID"`
	AreaID       *string    `json:"areaID"`
	SubareaID    *string    `json:"subareaID"`
	Responsible  *string    `json:"responsible"`
	Notes        *string    `json:"notes"`
}

// ReceiptResponse defines data returned for a manual receipt.
type ReceiptResponse struct {
	ReceiptID    string          `json:"receiptID"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	ReceivedDate time.Time       `json:"receivedDate"`
	CategoryID   string          `json:"categoryID"`
	AreaID       *string         `json:"areaID,omitempty"`
	SubareaID    *string         `json:"subareaID,omitempty"`
	Responsible  *string         `json:"responsible,omitempty"`
	Notes        *string         `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToReceiptResponse converts domain.ManualReceipt to DTO.
func ToReceiptResponse(r *domain.ManualReceipt) ReceiptResponse {
	return ReceiptResponse{
		ReceiptID:    r.ReceiptID,
		Description:  r.Description,
		Amount:       r.Amount,
		ReceivedDate: r.ReceivedDate,
		CategoryID:   r.CategoryID,
		AreaID:       r.AreaID,
		SubareaID:    r.SubareaID,
		Responsible:  r.Responsible,
		Notes:        r.Notes,
		CreatedAt:    r.CreatedAt,
	}
}

// ListReceiptsResponse wraps a list of receipts.
type ListReceiptsResponse struct {
	Receipts []ReceiptResponse `json:"receipts"`
}

// ToListReceiptsResponse converts a slice of domain.ManualReceipt to DTO.
func ToListReceiptsResponse(rs []domain.ManualReceipt) ListReceiptsResponse {
	list := make([]ReceiptResponse, len(rs))
	for i := range rs {
		list[i] = ToReceiptResponse(&rs[i])
	}
	return ListReceiptsResponse{Receipts: list}
}
