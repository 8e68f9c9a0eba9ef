package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	grademodel "miescuela_backend/internals/features/school/grades/model"
)

func TestPeriodBounds(t *testing.T) {
	tests := []struct {
		period   string
		wantFrom string
		wantTo   string
	}{
		{grademodel.PeriodPrimerSemestre, "2025-03-01", "2025-07-15"},
		{grademodel.PeriodSegundoSemestre, "2025-07-16", "2025-12-31"},
		{grademodel.PeriodAnual, "2025-01-01", "2025-12-31"},
		{"", "2025-01-01", "2025-12-31"},
	}
	for _, tt := range tests {
		from, to := periodBounds(tt.period, 2025)
		assert.Equal(t, tt.wantFrom, from.Format("2006-01-02"), "period %q", tt.period)
		assert.Equal(t, tt.wantTo, to.Format("2006-01-02"), "period %q", tt.period)
		assert.True(t, from.Before(to))
	}
}

func TestPeriodBoundsSemestersCoverTheSchoolYear(t *testing.T) {
	_, firstEnd := periodBounds(grademodel.PeriodPrimerSemestre, 2025)
	secondStart, _ := periodBounds(grademodel.PeriodSegundoSemestre, 2025)
	assert.Equal(t, firstEnd.Add(24*time.Hour), secondStart)
}
