package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dverbeek/calltrack/models"
)

// TestCalculateStatus verifies the threshold classification, in particular
// that both thresholds are inclusive lower bounds.
func TestCalculateStatus(t *testing.T) {
	config := &models.ThresholdConfig{
		FullDayMinutes: 171,
		HalfDayMinutes: 121,
	}

	tests := []struct {
		name     string
		minutes  int
		expected models.AttendanceStatus
	}{
		{"zero minutes", 0, models.StatusAbsent},
		{"just below half day", 120, models.StatusAbsent},
		{"exactly half day threshold", 121, models.StatusHalfDay},
		{"between thresholds", 150, models.StatusHalfDay},
		{"just below full day", 170, models.StatusHalfDay},
		{"exactly full day threshold", 171, models.StatusPresent},
		{"well above full day", 480, models.StatusPresent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateStatus(tt.minutes, config))
		})
	}
}

// TestCalculateStatusCustomThresholds verifies the calculator follows
// whatever configuration it is handed rather than hard-coded defaults.
func TestCalculateStatusCustomThresholds(t *testing.T) {
	config := &models.ThresholdConfig{
		FullDayMinutes: 300,
		HalfDayMinutes: 60,
	}

	assert.Equal(t, models.StatusAbsent, CalculateStatus(59, config))
	assert.Equal(t, models.StatusHalfDay, CalculateStatus(60, config))
	assert.Equal(t, models.StatusHalfDay, CalculateStatus(299, config))
	assert.Equal(t, models.StatusPresent, CalculateStatus(300, config))
}
