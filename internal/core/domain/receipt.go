package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ManualReceipt is a one-shot cash inflow not tied to a contract's
// installment schedule.
type ManualReceipt struct {
	ReceiptID      string          `json:"receiptID"` // Primary key (UUID)
	OrganizationID string          `json:"organizationID"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	ReceivedDate   time.Time       `json:"receivedDate"`
	CategoryID     string          `json:"categoryID"`
	AreaID         *string         `json:"areaID,omitempty"`
	SubareaID      *string         `json:"subareaID,omitempty"`
	Responsible    *string         `json:"responsible,omitempty"`
	Notes          *string         `json:"notes,omitempty"`
	AuditFields
}
