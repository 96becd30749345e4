package aggregation_test

import (
	"testing"
	"time"

	"github.com/lexfin/lexfin_backend/internal/core/aggregation"
	"github.com/lexfin/lexfin_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestEffectiveStatus(t *testing.T) {
	today := time.Date(2024, time.June, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		status domain.InstallmentStatus
		due    time.Time
		want   aggregation.EffectiveInstallmentStatus
	}{
		{"paid wins even when long overdue", domain.InstallmentPaid, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), aggregation.StatusPaid},
		{"due yesterday is overdue", domain.InstallmentOpen, time.Date(2024, time.June, 9, 0, 0, 0, 0, time.UTC), aggregation.StatusOverdue},
		{"due today stays open until midnight", domain.InstallmentOpen, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), aggregation.StatusOpen},
		{"due tomorrow is open", domain.InstallmentOpen, time.Date(2024, time.June, 11, 0, 0, 0, 0, time.UTC), aggregation.StatusOpen},
		{"missing due date is open", domain.InstallmentOpen, time.Time{}, aggregation.StatusOpen},
		{"earlier clock time on the due day does not matter", domain.InstallmentOpen, time.Date(2024, time.June, 10, 23, 59, 0, 0, time.UTC), aggregation.StatusOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst := domain.ContractInstallment{Status: tt.status, DueDate: tt.due}
			assert.Equal(t, tt.want, aggregation.EffectiveStatus(inst, today))
		})
	}
}
