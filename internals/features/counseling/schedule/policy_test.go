package schedule

import (
	"testing"
	"time"
)

func manila(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Manila")
	if err != nil {
		t.Fatalf("load Asia/Manila: %v", err)
	}
	return loc
}

func TestValidateSlot_NotOnHour(t *testing.T) {
	loc := manila(t)
	p := Policy{Location: loc}

	for _, minute := range []int{1, 15, 30, 59} {
		// Tuesday
		candidate := time.Date(2026, 9, 1, 10, minute, 0, 0, loc)
		if err := p.ValidateSlot(candidate); err != ErrNotOnHour {
			t.Errorf("minute=%d: got %v, want ErrNotOnHour", minute, err)
		}
	}
}

func TestValidateSlot_Weekend(t *testing.T) {
	loc := manila(t)
	p := Policy{Location: loc}

	saturday := time.Date(2026, 9, 5, 10, 0, 0, 0, loc)
	sunday := time.Date(2026, 9, 6, 14, 0, 0, 0, loc)

	if err := p.ValidateSlot(saturday); err != ErrWeekend {
		t.Errorf("saturday: got %v, want ErrWeekend", err)
	}
	if err := p.ValidateSlot(sunday); err != ErrWeekend {
		t.Errorf("sunday: got %v, want ErrWeekend", err)
	}
}

func TestValidateSlot_WorkingHours(t *testing.T) {
	loc := manila(t)
	p := Policy{Location: loc}

	tests := []struct {
		hour int
		want error
	}{
		{7, ErrOutsideWorkingHours},
		{8, nil},
		{9, nil},
		{10, nil},
		{11, nil},
		{12, ErrOutsideWorkingHours}, // lunch break
		{13, nil},
		{14, nil},
		{15, nil},
		{16, nil},
		{17, nil},
		{18, nil},
		{19, ErrOutsideWorkingHours}, // evening break
		{20, nil},                    // last bookable start
		{21, ErrOutsideWorkingHours}, // unified rule: hour 21 excluded
		{22, ErrOutsideWorkingHours},
	}

	for _, tt := range tests {
		// Tuesday 2026-09-01
		candidate := time.Date(2026, 9, 1, tt.hour, 0, 0, 0, loc)
		if err := p.ValidateSlot(candidate); err != tt.want {
			t.Errorf("hour=%d: got %v, want %v", tt.hour, err, tt.want)
		}
	}
}

func TestValidateSlot_EvaluatesInLocalTime(t *testing.T) {
	loc := manila(t)
	p := Policy{Location: loc}

	// 02:00 UTC == 10:00 Manila on a Wednesday: bookable even though
	// the UTC hour is outside every band.
	candidate := time.Date(2026, 9, 2, 2, 0, 0, 0, time.UTC)
	if err := p.ValidateSlot(candidate); err != nil {
		t.Errorf("got %v, want nil", err)
	}

	// 23:00 UTC Friday == 07:00 Manila Saturday: weekend in local time.
	candidate = time.Date(2026, 9, 4, 23, 0, 0, 0, time.UTC)
	if err := p.ValidateSlot(candidate); err != ErrWeekend {
		t.Errorf("got %v, want ErrWeekend", err)
	}
}

func TestNewPolicy_UnknownTimezoneFallsBack(t *testing.T) {
	p := NewPolicy("Not/AZone")
	if p.Location != time.UTC {
		t.Errorf("got %v, want UTC", p.Location)
	}
}

func TestStaleCutoff(t *testing.T) {
	loc := manila(t)
	now := time.Date(2026, 9, 1, 15, 30, 0, 0, loc)

	cutoff := StaleCutoff(now)
	if !cutoff.Equal(now.Add(-time.Hour)) {
		t.Errorf("got %v, want %v", cutoff, now.Add(-time.Hour))
	}

	// a 14:00 pending appointment is stale at 15:30, a 15:00 one is not
	slotStale := time.Date(2026, 9, 1, 14, 0, 0, 0, loc)
	slotFresh := time.Date(2026, 9, 1, 15, 0, 0, 0, loc)
	if !slotStale.Before(cutoff) && !slotStale.Equal(cutoff) {
		t.Errorf("14:00 should be at or before cutoff %v", cutoff)
	}
	if !slotFresh.After(cutoff) {
		t.Errorf("15:00 should be after cutoff %v", cutoff)
	}
}
