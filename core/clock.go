package core

import "time"

// Clock returns the moment used to stamp entries and banners
type Clock func() time.Time

// SystemClock reads the wall clock in the local time zone
func SystemClock() time.Time {
	return time.Now().Local()
}

// FixedClock returns a Clock that always reports t
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}
