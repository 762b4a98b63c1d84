package main

import "fmt"

// ComputeCalVer computes a CalVer version in the format YYYY.DDD.HHMM
// where:
//   - YYYY = year (e.g., 2026)
//   - DDD  = day of year (1-366)
//   - HHMM = hour and minute in UTC (0000-2359)
//
// This produces valid semver: all three components are non-negative integers.
// Versions sort correctly both lexically and numerically.
func ComputeCalVer() string {
	millis, _ := SystemClock.Now()
	return ComputeCalVerAt(millis)
}

// ComputeCalVerAt computes CalVer for a specific UTC instant (for testing)
func ComputeCalVerAt(millis int64) string {
	year, _, _ := civilFromMillis(millis)
	dayOfYear := DayOfYear(UTC, millis)
	// HHMM as a single integer: hour*100 + minute
	// 08:30 -> 830, 14:15 -> 1415, 00:00 -> 0
	msOfDay := floorMod(millis, msPerDay)
	hhmm := int(msOfDay/msPerHour)*100 + int(msOfDay%msPerHour/msPerMinute)

	// No leading zeros on components (valid semver)
	return fmt.Sprintf("%d.%d.%d", year, dayOfYear, hhmm)
}
