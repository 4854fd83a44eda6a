package availability

import (
	"context"
	"fmt"
	"sort"

	"github.com/medagenda/scheduler-api/internal/domain/scheduling"
	"github.com/medagenda/scheduler-api/internal/httperr"
	"github.com/medagenda/scheduler-api/internal/models"
	"github.com/medagenda/scheduler-api/internal/timeutil"
)

type WindowInput struct {
	Weekday     int    `json:"weekday"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
	IsRecurring bool   `json:"is_recurring"`
}

type PutAvailability struct {
	store scheduling.AvailabilityStore
}

func NewPutAvailability(store scheduling.AvailabilityStore) *PutAvailability {
	return &PutAvailability{store: store}
}

// Execute replaces a professional's weekly schedule. Windows on the same
// weekday must not overlap each other.
func (uc *PutAvailability) Execute(
	ctx context.Context,
	professionalID uint,
	inputs []WindowInput,
) ([]models.Availability, error) {

	windows := make([]models.Availability, 0, len(inputs))
	for _, in := range inputs {
		if in.Weekday < 0 || in.Weekday > 6 {
			return nil, httperr.Validation("Weekday must be between 0 and 6")
		}
		if !timeutil.IsHHMM(in.StartTime) || !timeutil.IsHHMM(in.EndTime) {
			return nil, httperr.Validation("Invalid time format, expected HH:MM")
		}
		if in.StartTime >= in.EndTime {
			return nil, httperr.Validation("Start time must be before end time")
		}
		windows = append(windows, models.Availability{
			ProfessionalID: professionalID,
			Weekday:        in.Weekday,
			StartTime:      in.StartTime,
			EndTime:        in.EndTime,
			IsAvailable:    in.IsAvailable,
			IsRecurring:    in.IsRecurring,
		})
	}

	if err := rejectOverlapping(windows); err != nil {
		return nil, err
	}

	if err := uc.store.ReplaceForProfessional(ctx, professionalID, windows); err != nil {
		return nil, err
	}

	return uc.store.ListForProfessional(ctx, professionalID)
}

func rejectOverlapping(windows []models.Availability) error {
	byDay := make(map[int][]models.Availability)
	for _, w := range windows {
		byDay[w.Weekday] = append(byDay[w.Weekday], w)
	}

	for day, ws := range byDay {
		sort.Slice(ws, func(i, j int) bool { return ws[i].StartTime < ws[j].StartTime })
		for i := 1; i < len(ws); i++ {
			if ws[i].StartTime < ws[i-1].EndTime {
				return httperr.Validation(fmt.Sprintf(
					"Availability windows overlap on weekday %d: %s-%s and %s-%s",
					day,
					ws[i-1].StartTime, ws[i-1].EndTime,
					ws[i].StartTime, ws[i].EndTime,
				))
			}
		}
	}
	return nil
}
