package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContractStatus indicates the commercial state of a contract.
type ContractStatus string

const (
	ContractActive ContractStatus = "active"
	ContractPaused ContractStatus = "paused"
	ContractClosed ContractStatus = "closed"
)

// InstallmentStatus is the STORED state of an installment. "overdue" is never
// stored; it is derived at read time from the due date (see aggregation.EffectiveStatus).
type InstallmentStatus string

const (
	InstallmentOpen InstallmentStatus = "open"
	InstallmentPaid InstallmentStatus = "paid"
)

// Contract represents a client engagement billed through generated installments.
// TotalValue and StartDate are immutable after creation; the installment
// schedule is generated once, when the contract is created.
type Contract struct {
	ContractID       string          `json:"contractID"` // Primary key (UUID)
	OrganizationID   string          `json:"organizationID"`
	ClientName       string          `json:"clientName"`
	HonorariumTypeID string          `json:"honorariumTypeID"`
	AreaID           string          `json:"areaID"`
	SubareaID        *string         `json:"subareaID,omitempty"`
	OriginID         *string         `json:"originID,omitempty"`
	PaymentMethodID  string          `json:"paymentMethodID"`
	TotalValue       decimal.Decimal `json:"totalValue"`
	StartDate        time.Time       `json:"startDate"`
	Status           ContractStatus  `json:"status"`
	Responsible      *string         `json:"responsible,omitempty"`
	Notes            *string         `json:"notes,omitempty"`
	AuditFields
}

// ContractInstallment is one scheduled payment obligation of a contract.
// The only stored mutation is toggling open<->paid (with PaidAt set/cleared).
type ContractInstallment struct {
	InstallmentID  string            `json:"installmentID"` // Primary key (UUID)
	OrganizationID string            `json:"organizationID"`
	ContractID     string            `json:"contractID"`
	DueDate        time.Time         `json:"dueDate"`
	Amount         decimal.Decimal   `json:"amount"`
	Status         InstallmentStatus `json:"status"`
	PaidAt         *time.Time        `json:"paidAt,omitempty"`
	AuditFields
}

// InstallmentWithContract is an installment joined with the contract summary
// fields the aggregation engine and the ledgers need (read contract only; the
// joined fields are never written through this shape).
type InstallmentWithContract struct {
	ContractInstallment
	ClientName         string  `json:"clientName"`
	AreaID             string  `json:"areaID"`
	SubareaID          *string `json:"subareaID,omitempty"`
	OriginID           *string `json:"originID,omitempty"`
	HonorariumTypeName string  `json:"honorariumTypeName"`
}
