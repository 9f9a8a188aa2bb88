package core

import "testing"

func TestClock(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{90, "01:30"},
		{200, "03:20"},
		{3599, "59:59"},
		{-3, "00:00"},
		{61.9, "01:01"},
	}

	for _, tt := range tests {
		if got := Clock(tt.seconds); got != tt.want {
			t.Errorf("Clock(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestStatusHasProgress(t *testing.T) {
	var missing *Status
	if missing.HasProgress() {
		t.Error("HasProgress() = true for nil status, want false")
	}

	if (&Status{}).HasProgress() {
		t.Error("HasProgress() = true for zero status, want false")
	}

	s := &Status{Percent: 45, Position: 90, Duration: 200}
	if !s.HasProgress() {
		t.Error("HasProgress() = false, want true")
	}
}
