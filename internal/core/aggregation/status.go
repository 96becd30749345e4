package aggregation

import (
	"time"

	"github.com/lexfin/lexfin_backend/internal/core/domain"
)

// EffectiveInstallmentStatus is the overdue-aware state of an installment,
// computed at read time. "overdue" exists only here; it is never stored.
type EffectiveInstallmentStatus string

const (
	StatusOpen    EffectiveInstallmentStatus = "open"
	StatusPaid    EffectiveInstallmentStatus = "paid"
	StatusOverdue EffectiveInstallmentStatus = "overdue"
)

// EffectiveStatus derives the lifecycle state of an installment: paid wins
// unconditionally; otherwise the installment is overdue when its due date is
// strictly before today's calendar date. The comparison is date-only, so an
// installment due today stays open until midnight.
func EffectiveStatus(inst domain.ContractInstallment, today time.Time) EffectiveInstallmentStatus {
	if inst.Status == domain.InstallmentPaid {
		return StatusPaid
	}
	if inst.DueDate.IsZero() {
		return StatusOpen
	}
	due := dateOnly(inst.DueDate)
	if due.Before(dateOnly(today)) {
		return StatusOverdue
	}
	return StatusOpen
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
