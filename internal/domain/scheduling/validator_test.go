package scheduling

import (
	"testing"

	"github.com/medagenda/scheduler-api/internal/httperr"
	"github.com/medagenda/scheduler-api/internal/models"
)

const today = "2026-09-01"

func TestValidateTiming(t *testing.T) {
	cases := []struct {
		name    string
		date    string
		start   string
		end     string
		wantErr bool
	}{
		{"valid tomorrow", "2026-09-02", "09:00", "10:00", false},
		{"valid today", "2026-09-01", "09:00", "10:00", false},
		{"yesterday", "2026-08-31", "09:00", "10:00", true},
		{"start equals end", "2026-09-02", "09:00", "09:00", true},
		{"start after end", "2026-09-02", "10:00", "09:00", true},
		{"bad date", "02-09-2026", "09:00", "10:00", true},
		{"bad time", "2026-09-02", "9:00", "10:00", true},
		{"out of range hour", "2026-09-02", "24:00", "25:00", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTiming(tc.date, tc.start, tc.end, today)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.wantErr && !httperr.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestValidateTiming_OrderingBeatsOtherFields(t *testing.T) {
	// start >= end must fail regardless of the date being fine
	if err := ValidateTiming("2099-01-01", "15:00", "15:00", today); err == nil {
		t.Fatal("expected error for start == end")
	}
}

func TestFindOverlaps_InclusiveBoundaries(t *testing.T) {
	existing := []models.Appointment{
		{ID: 1, ProfessionalID: 7, Date: "2026-09-02", StartTime: "09:00", EndTime: "10:00", Status: "pending"},
	}

	cases := []struct {
		name        string
		start, end  string
		wantOverlap bool
	}{
		{"inside", "09:30", "09:45", true},
		{"start on existing end", "10:00", "11:00", true}, // inclusive bound
		{"end on existing start", "08:00", "09:00", true}, // inclusive bound
		{"straddles start", "08:30", "09:30", true},
		{"straddles end", "09:45", "10:30", true},
		{"before", "07:00", "08:30", false},
		{"after", "10:30", "11:00", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FindOverlaps(7, "2026-09-02", tc.start, tc.end, existing, 0)
			if (len(got) > 0) != tc.wantOverlap {
				t.Fatalf("overlap = %v, want %v", len(got) > 0, tc.wantOverlap)
			}
		})
	}
}

func TestFindOverlaps_CancelledFreesTheSlot(t *testing.T) {
	existing := []models.Appointment{
		{ID: 1, ProfessionalID: 7, Date: "2026-09-02", StartTime: "09:00", EndTime: "10:00", Status: "cancelled"},
	}

	if got := FindOverlaps(7, "2026-09-02", "09:30", "10:00", existing, 0); len(got) != 0 {
		t.Fatalf("cancelled appointment should not block the slot, got %d overlaps", len(got))
	}
}

func TestFindOverlaps_OtherProfessionalOrDateIgnored(t *testing.T) {
	existing := []models.Appointment{
		{ID: 1, ProfessionalID: 8, Date: "2026-09-02", StartTime: "09:00", EndTime: "10:00", Status: "pending"},
		{ID: 2, ProfessionalID: 7, Date: "2026-09-03", StartTime: "09:00", EndTime: "10:00", Status: "pending"},
	}

	if got := FindOverlaps(7, "2026-09-02", "09:00", "10:00", existing, 0); len(got) != 0 {
		t.Fatalf("expected no overlaps, got %d", len(got))
	}
}

func TestFindOverlaps_ExcludeOwnID(t *testing.T) {
	existing := []models.Appointment{
		{ID: 5, ProfessionalID: 7, Date: "2026-09-02", StartTime: "09:00", EndTime: "10:00", Status: "confirmed"},
	}

	// moving appointment 5 within its own window must not conflict with itself
	if got := FindOverlaps(7, "2026-09-02", "09:15", "10:00", existing, 5); len(got) != 0 {
		t.Fatalf("expected own row to be excluded, got %d overlaps", len(got))
	}
}

func TestValidateDailyCap(t *testing.T) {
	day := func(status string) models.Appointment {
		return models.Appointment{ProfessionalID: 7, Date: "2026-09-02", Status: status}
	}

	existing := []models.Appointment{day("pending"), day("confirmed")}

	if err := ValidateDailyCap(7, "2026-09-02", existing, 2); !httperr.IsValidation(err) {
		t.Fatalf("expected cap violation, got %v", err)
	}

	// different date is a fresh count
	if err := ValidateDailyCap(7, "2026-09-03", existing, 2); err != nil {
		t.Fatalf("unexpected error on other date: %v", err)
	}

	// cancelled appointments do not count toward the cap
	withCancelled := []models.Appointment{day("pending"), day("cancelled")}
	if err := ValidateDailyCap(7, "2026-09-02", withCancelled, 2); err != nil {
		t.Fatalf("unexpected error with cancelled row: %v", err)
	}

	// no rule configured: open policy
	if err := ValidateDailyCap(7, "2026-09-02", existing, 0); err != nil {
		t.Fatalf("unexpected error without cap: %v", err)
	}
}

func TestValidateDuration(t *testing.T) {
	if err := ValidateDuration("09:00", "09:20", 30); !httperr.IsValidation(err) {
		t.Fatalf("expected duration violation, got %v", err)
	}
	if err := ValidateDuration("09:00", "09:30", 30); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateDuration("09:00", "09:05", 0); err != nil {
		t.Fatalf("no rule should mean no check, got %v", err)
	}
}
