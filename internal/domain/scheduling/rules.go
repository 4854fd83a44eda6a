package scheduling

import (
	"encoding/json"
	"math"

	"github.com/medagenda/scheduler-api/internal/httperr"
	"github.com/medagenda/scheduler-api/internal/timeutil"
)

const (
	RuleMaxAppointmentsPerDay  = "max_appointments_per_day"
	RuleMinAppointmentDuration = "min_appointment_duration"
	RuleWorkingHours           = "working_hours"
)

// ValidateRuleValue checks a raw rule payload against the fixed schema for
// its name. Each rule name has exactly one expected shape; anything else is
// rejected.
func ValidateRuleValue(name string, value json.RawMessage) error {
	var fields map[string]any
	if err := json.Unmarshal(value, &fields); err != nil {
		return httperr.Validation("Rule value must be a JSON object")
	}

	switch name {
	case RuleMaxAppointmentsPerDay:
		if !isPositiveInt(fields["max_appointments_per_day"]) {
			return httperr.Validation("max_appointments_per_day must be a positive integer")
		}
	case RuleMinAppointmentDuration:
		if !isPositiveInt(fields["min_duration_minutes"]) {
			return httperr.Validation("min_duration_minutes must be a positive integer")
		}
	case RuleWorkingHours:
		start, okStart := fields["start_time"].(string)
		end, okEnd := fields["end_time"].(string)
		if !okStart || !okEnd || !timeutil.IsHHMM(start) || !timeutil.IsHHMM(end) {
			return httperr.Validation("Invalid working hours format")
		}
	default:
		return httperr.Validation("Unknown rule type")
	}
	return nil
}

// MaxPerDay extracts the configured daily cap from a raw rule value.
// Returns 0 (no cap) if the value does not parse.
func MaxPerDay(value string) int {
	return intField(value, "max_appointments_per_day")
}

// MinDurationMinutes extracts the minimum appointment duration in minutes.
func MinDurationMinutes(value string) int {
	return intField(value, "min_duration_minutes")
}

func intField(value, field string) int {
	var fields map[string]any
	if err := json.Unmarshal([]byte(value), &fields); err != nil {
		return 0
	}
	if !isPositiveInt(fields[field]) {
		return 0
	}
	return int(fields[field].(float64))
}

// JSON numbers decode as float64; a positive integer is a whole positive
// float64.
func isPositiveInt(v any) bool {
	f, ok := v.(float64)
	return ok && f > 0 && f == math.Trunc(f)
}
