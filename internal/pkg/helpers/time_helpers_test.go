package helpers

import (
	"testing"
	"time"
)

func TestParseDatePtr(t *testing.T) {
	got, err := ParseDatePtr(nil)
	if err != nil || got != nil {
		t.Errorf("nil input should map to nil, got %v (%v)", got, err)
	}

	s := "2026-09-01"
	got, err = ParseDatePtr(&s)
	if err != nil {
		t.Fatalf("ParseDatePtr returned error: %v", err)
	}
	if got.Year() != 2026 || got.Month() != time.September || got.Day() != 1 {
		t.Errorf("unexpected date: %v", got)
	}

	bad := "01/09/2026"
	if _, err := ParseDatePtr(&bad); err == nil {
		t.Error("expected an error for a non-ISO date")
	}
}

func TestParseDurationFallback(t *testing.T) {
	if d := ParseDuration("90m", time.Hour); d != 90*time.Minute {
		t.Errorf("expected 90m, got %v", d)
	}
	if d := ParseDuration("not-a-duration", time.Hour); d != time.Hour {
		t.Errorf("expected the fallback, got %v", d)
	}
}
