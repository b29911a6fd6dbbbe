package core

import (
	"testing"
	"time"
)

func TestSystemClock(t *testing.T) {
	got := SystemClock()
	now := time.Now()

	diff := now.Sub(got)
	if diff < 0 {
		diff = -diff
	}
	if diff > time.Second {
		t.Errorf("SystemClock() drifted %v from time.Now()", diff)
	}
	if got.Location() != time.Local {
		t.Errorf("SystemClock() location = %v, want Local", got.Location())
	}
}

func TestFixedClock(t *testing.T) {
	want := time.Date(2026, 10, 19, 8, 30, 15, 0, time.UTC)
	clock := FixedClock(want)

	for i := 0; i < 3; i++ {
		if got := clock(); !got.Equal(want) {
			t.Errorf("FixedClock() = %v, want %v", got, want)
		}
	}
}
