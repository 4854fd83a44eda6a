package timeutil

import "testing"

func TestIsHHMM(t *testing.T) {
	valid := []string{"00:00", "09:30", "19:59", "23:59"}
	for _, v := range valid {
		if !IsHHMM(v) {
			t.Errorf("IsHHMM(%q) = false, want true", v)
		}
	}

	invalid := []string{"24:00", "9:30", "09:60", "0930", "09:3", "", "9am", "08:00121"}
	for _, v := range invalid {
		if IsHHMM(v) {
			t.Errorf("IsHHMM(%q) = true, want false", v)
		}
	}
}

func TestIsDate(t *testing.T) {
	valid := []string{"2026-09-01", "2024-02-29", "1999-12-31"}
	for _, v := range valid {
		if !IsDate(v) {
			t.Errorf("IsDate(%q) = false, want true", v)
		}
	}

	invalid := []string{"2026-13-01", "2026-9-1", "01-09-2026", "2026-02-30", "tomorrow", ""}
	for _, v := range invalid {
		if IsDate(v) {
			t.Errorf("IsDate(%q) = true, want false", v)
		}
	}
}
