package scheduling

import (
	"fmt"

	"github.com/medagenda/scheduler-api/internal/httperr"
	"github.com/medagenda/scheduler-api/internal/models"
	"github.com/medagenda/scheduler-api/internal/timeutil"
)

// Pure decision logic: every function here operates only on its arguments,
// so the same checks serve interactive requests and the maintenance worker.

// ValidateTiming checks time ordering and that date is not before today.
// today is passed in so callers control the clock.
func ValidateTiming(date, startTime, endTime, today string) error {
	if !timeutil.IsDate(date) {
		return httperr.Validation("Invalid date format, expected YYYY-MM-DD")
	}
	if !timeutil.IsHHMM(startTime) || !timeutil.IsHHMM(endTime) {
		return httperr.Validation("Invalid time format, expected HH:MM")
	}
	if startTime >= endTime {
		return httperr.Validation("Start time must be before end time")
	}
	if date < today {
		return httperr.Validation("Appointment date must be in the future")
	}
	return nil
}

// ValidateDuration enforces the min_appointment_duration rule when one is
// configured. minMinutes <= 0 means no rule.
func ValidateDuration(startTime, endTime string, minMinutes int) error {
	if minMinutes <= 0 {
		return nil
	}
	if minutesBetween(startTime, endTime) < minMinutes {
		return httperr.Validation(fmt.Sprintf("Appointment must be at least %d minutes long", minMinutes))
	}
	return nil
}

// ValidateDailyCap enforces max_appointments_per_day. maxPerDay <= 0 means
// no cap (open policy). Cancelled appointments free their slot and do not
// count.
func ValidateDailyCap(professionalID uint, date string, existing []models.Appointment, maxPerDay int) error {
	if maxPerDay <= 0 {
		return nil
	}

	count := 0
	for _, ap := range existing {
		if ap.ProfessionalID != professionalID || ap.Date != date {
			continue
		}
		if Status(ap.Status) == StatusCancelled {
			continue
		}
		count++
	}

	if count >= maxPerDay {
		return httperr.Validation(fmt.Sprintf("Professional already has %d appointments on this date", maxPerDay))
	}
	return nil
}

// FindOverlaps returns every candidate that collides with the proposed slot.
// A candidate collides when professional and date match and the proposed
// start or end falls within the candidate's [start, end] with both bounds
// inclusive. The inclusive boundary is intentional: back-to-back slots
// sharing an endpoint are treated as colliding, and callers depend on that.
// excludeID skips an appointment's own row when it is being moved.
func FindOverlaps(professionalID uint, date, startTime, endTime string, candidates []models.Appointment, excludeID uint) []models.Appointment {
	var overlaps []models.Appointment
	for _, ap := range candidates {
		if excludeID != 0 && ap.ID == excludeID {
			continue
		}
		if ap.ProfessionalID != professionalID || ap.Date != date {
			continue
		}
		if Status(ap.Status) == StatusCancelled {
			continue
		}
		if between(startTime, ap.StartTime, ap.EndTime) || between(endTime, ap.StartTime, ap.EndTime) {
			overlaps = append(overlaps, ap)
		}
	}
	return overlaps
}

func between(t, lo, hi string) bool {
	return t >= lo && t <= hi
}

func minutesBetween(start, end string) int {
	return toMinutes(end) - toMinutes(start)
}

func toMinutes(hhmm string) int {
	if len(hhmm) != 5 {
		return 0
	}
	h := int(hhmm[0]-'0')*10 + int(hhmm[1]-'0')
	m := int(hhmm[3]-'0')*10 + int(hhmm[4]-'0')
	return h*60 + m
}
