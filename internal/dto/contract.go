package dto

import (
	"time"

	"github.com/lexfin/lexfin_backend/internal/core/aggregation"
	"github.com/lexfin/lexfin_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateContractRequest defines data for creating a contract. TotalValue
// accepts localized input ("1.234,56") and is parsed server-side. The
// installment schedule is generated once from TotalValue and InstallmentCount,
// based at FirstDueDate; when FirstDueDate is absent billing starts at
// StartDate.
type CreateContractRequest struct {
	ClientName       string     `json:"clientName" binding:"required,max=200"`
	HonorariumTypeID string     `json:"honorariumTypeID" binding:"required"`
	AreaID           string     `json:"areaID" binding:"required"`
	SubareaID        *string    `json:"subareaID"`
	OriginID         *string    `json:"originID"`
	PaymentMethodID  string     `json:"paymentMethodID" binding:"required"`
	TotalValue       string     `json:"totalValue" binding:"required"`
	StartDate        time.Time  `json:"startDate" binding:"required" time_format:"2006-01-02"`
	FirstDueDate     *time.Time `json:"firstDueDate" time_format:"2006-01-02"`
	InstallmentCount int        `json:"installmentCount" binding:"required,min=1,max=120"`
	Responsible      *string    `json:"responsible"`
	Notes            *string    `json:"notes"`
}

// UpdateContractRequest defines the mutable contract fields. TotalValue and
// StartDate are immutable after creation and deliberately absent here.
type UpdateContractRequest struct {
	ClientName       *string                `json:"clientName"`
	HonorariumTypeID *string                `json:"honorariumTypeID"`
	AreaID           *string                `json:"areaID"`
	SubareaID        *string                `json:"subareaID"`
	OriginID         *string                `json:"originID"`
	PaymentMethodID  *string                `json:"paymentMethodID"`
	Status           *domain.ContractStatus `json:"status" binding:"omitempty,oneof=active paused closed"`
	Responsible      *string                `json:"responsible"`
	Notes            *string                `json:"notes"`
}

// ToggleInstallmentRequest flips an installment between open and paid.
type ToggleInstallmentRequest struct {
	Paid bool `json:"paid"`
}

// InstallmentResponse defines data returned for one installment. Status is
// the overdue-aware effective state, never the stored one.
type InstallmentResponse struct {
	InstallmentID string          `json:"installmentID"`
	ContractID    string          `json:"contractID"`
	DueDate       time.Time       `json:"dueDate"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	PaidAt        *time.Time      `json:"paidAt,omitempty"`
}

// ToInstallmentResponse converts domain.ContractInstallment to DTO, deriving
// the effective status against now.
func ToInstallmentResponse(inst *domain.ContractInstallment, now time.Time) InstallmentResponse {
	return InstallmentResponse{
		InstallmentID: inst.InstallmentID,
		ContractID:    inst.ContractID,
		DueDate:       inst.DueDate,
		Amount:        inst.Amount,
		Status:        string(aggregation.EffectiveStatus(*inst, now)),
		PaidAt:        inst.PaidAt,
	}
}

// ContractResponse defines data returned for a contract, optionally with its
// installment schedule.
type ContractResponse struct {
	ContractID       string                `json:"contractID"`
	ClientName       string                `json:"clientName"`
	HonorariumTypeID string                `json:"honorariumTypeID"`
	AreaID           string                `json:"areaID"`
	SubareaID        *string               `json:"subareaID,omitempty"`
	OriginID         *string               `json:"originID,omitempty"`
	PaymentMethodID  string                `json:"paymentMethodID"`
	TotalValue       decimal.Decimal       `json:"totalValue"`
	StartDate        time.Time             `json:"startDate"`
	Status           domain.ContractStatus `json:"status"`
	Responsible      *string               `json:"responsible,omitempty"`
	Notes            *string               `json:"notes,omitempty"`
	CreatedAt        time.Time             `json:"createdAt"`
	Installments     []InstallmentResponse `json:"installments,omitempty"`
}

// ToContractResponse converts domain.Contract to DTO.
func ToContractResponse(c *domain.Contract, installments []domain.ContractInstallment, now time.Time) ContractResponse {
	resp := ContractResponse{
		ContractID:       c.ContractID,
		ClientName:       c.ClientName,
		HonorariumTypeID: c.HonorariumTypeID,
		AreaID:           c.AreaID,
		SubareaID:        c.SubareaID,
		OriginID:         c.OriginID,
		PaymentMethodID:  c.PaymentMethodID,
		TotalValue:       c.TotalValue,
		StartDate:        c.StartDate,
		Status:           c.Status,
		Responsible:      c.Responsible,
		Notes:            c.Notes,
		CreatedAt:        c.CreatedAt,
	}
	if len(installments) > 0 {
		resp.Installments = make([]InstallmentResponse, len(installments))
		for i := range installments {
			resp.Installments[i] = ToInstallmentResponse(&installments[i], now)
		}
	}
	return resp
}

// ListContractsResponse wraps a list of contracts.
type ListContractsResponse struct {
	Contracts []ContractResponse `json:"contracts"`
}

// ToListContractsResponse converts a slice of domain.Contract to DTO.
func ToListContractsResponse(cs []domain.Contract) ListContractsResponse {
	list := make([]ContractResponse, len(cs))
	for i := range cs {
		list[i] = ToContractResponse(&cs[i], nil, time.Time{})
	}
	return ListContractsResponse{Contracts: list}
}
