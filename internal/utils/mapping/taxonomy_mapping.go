package mapping

import (
	"github.com/lexfin/lexfin_backend/internal/core/domain"
	"github.com/lexfin/lexfin_backend/internal/models"
)

// ToModelLawArea converts a domain LawArea to a model LawArea
func ToModelLawArea(d domain.LawArea) models.LawArea {
	return models.LawArea{
		AreaID:         d.AreaID,
		OrganizationID: d.OrganizationID,
		Name:           d.Name,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLawArea converts a model LawArea to a domain LawArea
func ToDomainLawArea(m models.LawArea) domain.LawArea {
	return domain.LawArea{
		AreaID:         m.AreaID,
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelLawSubarea converts a domain LawSubarea to a model LawSubarea
func ToModelLawSubarea(d domain.LawSubarea) models.LawSubarea {
	return models.LawSubarea{
		SubareaID:      d.SubareaID,
		OrganizationID: d.OrganizationID,
		AreaID:         d.AreaID,
		Name:           d.Name,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLawSubarea converts a model LawSubarea to a domain LawSubarea
func ToDomainLawSubarea(m models.LawSubarea) domain.LawSubarea {
	return domain.LawSubarea{
		SubareaID:      m.SubareaID,
		OrganizationID: m.OrganizationID,
		AreaID:         m.AreaID,
		Name:           m.Name,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelLookupItem converts a domain LookupItem to a model LookupItem
func ToModelLookupItem(d domain.LookupItem) models.LookupItem {
	return models.LookupItem{
		ItemID:         d.ItemID,
		OrganizationID: d.OrganizationID,
		Kind:           string(d.Kind),
		Name:           d.Name,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLookupItem converts a model LookupItem to a domain LookupItem
func ToDomainLookupItem(m models.LookupItem) domain.LookupItem {
	return domain.LookupItem{
		ItemID:         m.ItemID,
		OrganizationID: m.OrganizationID,
		Kind:           domain.LookupKind(m.Kind),
		Name:           m.Name,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
