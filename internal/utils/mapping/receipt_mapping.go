package mapping

import (
	"github.com/lexfin/lexfin_backend/internal/core/domain"
	"github.com/lexfin/lexfin_backend/internal/models"
)

// ToModelReceipt converts a domain ManualReceipt to a model ManualReceipt
func ToModelReceipt(d domain.ManualReceipt) models.ManualReceipt {
	return models.ManualReceipt{
		ReceiptID:      d.ReceiptID,
		OrganizationID: d.OrganizationID,
		Description:    d.Description,
		Amount:         d.Amount,
		ReceivedDate:   d.ReceivedDate,
		CategoryID:     d.CategoryID,
		AreaID:         d.AreaID,
		SubareaID:      d.SubareaID,
		Responsible:    d.Responsible,
		Notes:          d.Notes,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainReceipt converts a model ManualReceipt to a domain ManualReceipt
func ToDomainReceipt(m models.ManualReceipt) domain.ManualReceipt {
	return domain.ManualReceipt{
		ReceiptID:      m.ReceiptID,
		OrganizationID: m.OrganizationID,
		Description:    m.Description,
		Amount:         m.Amount,
		ReceivedDate:   m.ReceivedDate,
		CategoryID:     m.CategoryID,
		AreaID:         m.AreaID,
		SubareaID:      m.SubareaID,
		Responsible:    m.Responsible,
		Notes:          m.Notes,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
