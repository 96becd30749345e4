package mapping

import (
	"github.com/lexfin/lexfin_backend/internal/core/domain"
	"github.com/lexfin/lexfin_backend/internal/models"
)

// ToModelContract converts a domain Contract to a model Contract
func ToModelContract(d domain.Contract) models.Contract {
	return models.Contract{
		ContractID:       d.ContractID,
		OrganizationID:   d.OrganizationID,
		ClientName:       d.ClientName,
		HonorariumTypeID: d.HonorariumTypeID,
		AreaID:           d.AreaID,
		SubareaID:        d.SubareaID,
		OriginID:         d.OriginID,
		PaymentMethodID:  d.PaymentMethodID,
		TotalValue:       d.TotalValue,
		StartDate:        d.StartDate,
		Status:           string(d.Status),
		Responsible:      d.Responsible,
		Notes:            d.Notes,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainContract converts a model Contract to a domain Contract
func ToDomainContract(m models.Contract) domain.Contract {
	return domain.Contract{
		ContractID:       m.ContractID,
		OrganizationID:   m.OrganizationID,
		ClientName:       m.ClientName,
		HonorariumTypeID: m.HonorariumTypeID,
		AreaID:           m.AreaID,
		SubareaID:        m.SubareaID,
		OriginID:         m.OriginID,
		PaymentMethodID:  m.PaymentMethodID,
		TotalValue:       m.TotalValue,
		StartDate:        m.StartDate,
		Status:           domain.ContractStatus(m.Status),
		Responsible:      m.Responsible,
		Notes:            m.Notes,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelInstallment converts a domain installment to a model installment
func ToModelInstallment(d domain.ContractInstallment) models.ContractInstallment {
	return models.ContractInstallment{
		InstallmentID:  d.InstallmentID,
		OrganizationID: d.OrganizationID,
		ContractID:     d.ContractID,
		DueDate:        d.DueDate,
		Amount:         d.Amount,
		Status:         string(d.Status),
		PaidAt:         d.PaidAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInstallment converts a model installment to a domain installment
func ToDomainInstallment(m models.ContractInstallment) domain.ContractInstallment {
	return domain.ContractInstallment{
		InstallmentID:  m.InstallmentID,
		OrganizationID: m.OrganizationID,
		ContractID:     m.ContractID,
		DueDate:        m.DueDate,
		Amount:         m.Amount,
		Status:         domain.InstallmentStatus(m.Status),
		PaidAt:         m.PaidAt,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInstallmentSlice converts a slice of model installments
func ToDomainInstallmentSlice(ms []models.ContractInstallment) []domain.ContractInstallment {
	ds := make([]domain.ContractInstallment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInstallment(m)
	}
	return ds
}

// ToDomainInstallmentWithContract converts the joined installment row
func ToDomainInstallmentWithContract(m models.InstallmentWithContract) domain.InstallmentWithContract {
	return domain.InstallmentWithContract{
		ContractInstallment: ToDomainInstallment(m.ContractInstallment),
		ClientName:          m.ClientName,
		AreaID:              m.AreaID,
		SubareaID:           m.SubareaID,
		OriginID:            m.OriginID,
		HonorariumTypeName:  m.HonorariumTypeName,
	}
}
