package main

import "time"

// Clock supplies the current instant and the host's UTC offset. The arithmetic
// in calendar.go never reads the wall clock; everything that needs "now" takes
// a Clock so tests can pin it.
type Clock interface {
	Now() (millis int64, offsetMinutes int)
}

// systemClock reads the OS wall clock and local zone offset.
type systemClock struct{}

func (systemClock) Now() (int64, int) {
	now := time.Now()
	_, offsetSeconds := now.Zone()
	return now.UnixMilli(), offsetSeconds / 60
}

// SystemClock is the default Clock. Tests replace it with a fixed instant.
var SystemClock Clock = systemClock{}

// fixedClock is a Clock pinned to one instant, for tests.
type fixedClock struct {
	millis int64
	offset int
}

func (c fixedClock) Now() (int64, int) { return c.millis, c.offset }
