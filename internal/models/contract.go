package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contract is a client engagement row. total_value and start_date never
// change after insert.
type Contract struct {
	ContractID       string          `db:"contract_id"`
	OrganizationID   string          `db:"organization_id"`
	ClientName       string          `db:"client_name"`
	HonorariumTypeID string          `db:"honorarium_type_id"`
	AreaID           string          `db:"area_id"`
	SubareaID        *string         `db:"subarea_id"`
	OriginID         *string         `db:"origin_id"`
	PaymentMethodID  string          `db:"payment_method_id"`
	TotalValue       decimal.Decimal `db:"total_value"`
	StartDate        time.Time       `db:"start_date"`
	Status           string          `db:"status"`
	Responsible      *string         `db:"responsible"`
	Notes            *string         `db:"notes"`
	AuditFields
}

// ContractInstallment is one scheduled payment row of a contract.
type ContractInstallment struct {
	InstallmentID  string          `db:"installment_id"`
	OrganizationID string          `db:"organization_id"`
	ContractID     string          `db:"contract_id"`
	DueDate        time.Time       `db:"due_date"`
	Amount         decimal.Decimal `db:"amount"`
	Status         string          `db:"status"`
	PaidAt         *time.Time      `db:"paid_at"`
	AuditFields
}

// InstallmentWithContract is the joined row the aggregation queries read:
// an installment plus the contract summary columns.
type InstallmentWithContract struct {
	ContractInstallment
	ClientName         string  `db:"client_name"`
	AreaID             string  `db:"area_id"`
	SubareaID          *string `db:"subarea_id"`
	OriginID           *string `db:"origin_id"`
	HonorariumTypeName string  `db:"honorarium_type_name"`
}
