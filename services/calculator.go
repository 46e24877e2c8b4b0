package services

import (
	"github.com/dverbeek/calltrack/models"
)

// CalculateStatus maps total call minutes for an employee-day to an
// attendance status. Both thresholds are inclusive lower bounds:
// minutes >= full day is PRESENT, minutes >= half day is HALF_DAY,
// anything below is ABSENT.
func CalculateStatus(minutes int, config *models.ThresholdConfig) models.AttendanceStatus {
	if minutes >= config.FullDayMinutes {
		return models.StatusPresent
	}
	if minutes >= config.HalfDayMinutes {
		return models.StatusHalfDay
	}
	return models.StatusAbsent
}
