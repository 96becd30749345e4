package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ManualReceipt is a cash inflow row not tied to a contract schedule.
type ManualReceipt struct {
	ReceiptID      string          `db:"receipt_id"`
	OrganizationID string          `db:"organization_id"`
	Description    string          `db:"description"`
	Amount         decimal.Decimal `db:"amount"`
	ReceivedDate   time.Time       `db:"received_date"`
	CategoryID     string          `db:"category_id"`
	AreaID         *string         `db:"area_id"`
	SubareaID      *string         `db:"subarea_id"`
	Responsible    *string         `db:"responsible"`
	Notes          *string         `db:"notes"`
	AuditFields
}
