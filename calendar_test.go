package main

import "testing"

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2000, true},
		{2012, true},
		{2019, false},
		{1900, false},
		{2400, true},
		{2100, false},
	}

	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestDaysInYear(t *testing.T) {
	if got := DaysInYear(2020); got != 366 {
		t.Errorf("DaysInYear(2020) = %d, want 366", got)
	}
	if got := DaysInYear(2019); got != 365 {
		t.Errorf("DaysInYear(2019) = %d, want 365", got)
	}
}

func TestCivilDateToTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		month Month
		day   int
		year  int
		want  int64
	}{
		{"unix epoch", January, 1, 1970, 0},
		{"new year 2020", January, 1, 2020, 1577836800000},
		{"leap day 2020", February, 29, 2020, 1582934400000},
		{"day after leap day", March, 1, 2020, 1583020800000},
		{"pre-epoch", December, 31, 1969, -86400000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CivilDateToTimestamp(tt.month, tt.day, tt.year)
			if got != tt.want {
				t.Errorf("CivilDateToTimestamp(%v, %d, %d) = %d, want %d",
					tt.month, tt.day, tt.year, got, tt.want)
			}
		})
	}
}

func TestGetDayOfWeek(t *testing.T) {
	tests := []struct {
		name  string
		month Month
		day   int
		year  int
		want  int
	}{
		{"Jan 1 2020 is Wednesday", January, 1, 2020, 3},
		{"Jun 29 2020 is Monday", June, 29, 2020, 1},
		{"Feb 29 2020 is Saturday", February, 29, 2020, 6},
		{"Jan 1 1970 is Thursday", January, 1, 1970, 4},
		{"Dec 31 2021 is Friday", December, 31, 2021, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetDayOfWeek(tt.month, tt.day, tt.year)
			if got != tt.want {
				t.Errorf("GetDayOfWeek(%v, %d, %d) = %d, want %d",
					tt.month, tt.day, tt.year, got, tt.want)
			}
		})
	}
}

func TestDayOfYearUTC(t *testing.T) {
	tests := []struct {
		name string
		ts   int64
		want int
	}{
		{"2020-01-01 midnight", CivilDateToTimestamp(January, 1, 2020), 1},
		{"2020-06-29 midnight", CivilDateToTimestamp(June, 29, 2020), 181},
		{"2020-12-31 midnight", CivilDateToTimestamp(December, 31, 2020), 366},
		{"2019-12-31 midnight", CivilDateToTimestamp(December, 31, 2019), 365},
		{"mid-afternoon stays same day", CivilDateToTimestamp(June, 29, 2020) + 15*msPerHour, 181},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayOfYear(UTC, tt.ts); got != tt.want {
				t.Errorf("DayOfYear(UTC, %d) = %d, want %d", tt.ts, got, tt.want)
			}
		})
	}
}

func TestDayOfYearWithZoneOffset(t *testing.T) {
	est := Zone(-300) // UTC-5
	pk := Zone(300)   // UTC+5

	tests := []struct {
		name string
		zone Zone
		ts   int64
		want int
	}{
		{
			name: "negative offset, same local day",
			zone: est,
			ts:   CivilDateToTimestamp(May, 27, 2020) + 23*msPerHour + 58*60000 + 13000,
			want: 148,
		},
		{
			name: "negative offset across month boundary",
			zone: est,
			ts:   CivilDateToTimestamp(February, 1, 2020),
			want: 31, // locally still Jan 31
		},
		{
			name: "negative offset across year boundary",
			zone: est,
			ts:   CivilDateToTimestamp(January, 1, 2020),
			want: 365, // locally Dec 31 2019
		},
		{
			name: "negative offset across leap year boundary",
			zone: est,
			ts:   CivilDateToTimestamp(January, 1, 2021),
			want: 366, // locally Dec 31 2020
		},
		{
			name: "positive offset crossing forward",
			zone: pk,
			ts:   CivilDateToTimestamp(March, 31, 2020) + 23*msPerHour,
			want: 92, // locally Apr 1 04:00
		},
		{
			name: "positive offset into next year",
			zone: pk,
			ts:   CivilDateToTimestamp(December, 31, 2020) + 23*msPerHour,
			want: 1, // locally Jan 1 2021
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayOfYear(tt.zone, tt.ts); got != tt.want {
				t.Errorf("DayOfYear(%d, %d) = %d, want %d", tt.zone, tt.ts, got, tt.want)
			}
		})
	}
}

func TestDayOfYearRoundTrip(t *testing.T) {
	for _, year := range []int{1969, 1970, 2000, 2019, 2020, 2021, 2100} {
		for doy := 1; doy <= DaysInYear(year); doy++ {
			ts := DayOfYearToTimestamp(year, doy)
			got := DayOfYear(UTC, ts)
			if got != doy {
				t.Fatalf("DayOfYear(UTC, DayOfYearToTimestamp(%d, %d)) = %d, want %d",
					year, doy, got, doy)
			}
			if back := DayOfYearToTimestamp(year, got); back != ts {
				t.Fatalf("DayOfYearToTimestamp(%d, %d) = %d, want %d", year, got, back, ts)
			}
		}
	}
}

func TestCivilFromMillisRoundTrip(t *testing.T) {
	for _, year := range []int{1960, 1970, 1999, 2000, 2020, 2023} {
		for m := January; m <= December; m++ {
			ts := CivilDateToTimestamp(m, 15, year)
			y, gm, d := civilFromMillis(ts)
			if y != year || gm != m || d != 15 {
				t.Fatalf("civilFromMillis(%d) = %d-%v-%d, want %d-%v-15", ts, y, gm, d, year, m)
			}
		}
	}
}

func TestFirstNDigits(t *testing.T) {
	tests := []struct {
		n, num, want int
	}{
		{2, 2020, 20},
		{2, 1999, 19},
		{1, 987, 9},
		{3, 12345, 123},
		{4, 42, 42}, // fewer digits than requested
	}

	for _, tt := range tests {
		if got := FirstNDigits(tt.n, tt.num); got != tt.want {
			t.Errorf("FirstNDigits(%d, %d) = %d, want %d", tt.n, tt.num, got, tt.want)
		}
	}
}

func TestTwoDigitString(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "01"},
		{5, "05"},
		{12, "12"},
		{0, "00"},
		{123, "23"}, // only the last two digits survive
	}

	for _, tt := range tests {
		if got := TwoDigitString(tt.n); got != tt.want {
			t.Errorf("TwoDigitString(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	ts := CivilDateToTimestamp(June, 29, 2020) + 3*msPerHour

	if got := FormatDate(UTC, ts); got != "06/29/2020" {
		t.Errorf("FormatDate(UTC) = %q, want %q", got, "06/29/2020")
	}
	// UTC-5 pulls 03:00 back to the previous local day
	if got := FormatDate(Zone(-300), ts); got != "06/28/2020" {
		t.Errorf("FormatDate(UTC-5) = %q, want %q", got, "06/28/2020")
	}
}

func TestFormatTime(t *testing.T) {
	ts := CivilDateToTimestamp(June, 29, 2020) + 9*msPerHour + 5*60000

	if got := FormatTime(UTC, ts); got != "09:05" {
		t.Errorf("FormatTime(UTC) = %q, want %q", got, "09:05")
	}
	if got := FormatTime(Zone(90), ts); got != "10:35" {
		t.Errorf("FormatTime(UTC+1:30) = %q, want %q", got, "10:35")
	}
	if got := FormatTime(Zone(-300), CivilDateToTimestamp(January, 1, 2020)); got != "19:00" {
		t.Errorf("FormatTime(UTC-5, midnight) = %q, want %q", got, "19:00")
	}
}

func TestMonthMappings(t *testing.T) {
	if January.String() != "January" || December.String() != "December" {
		t.Error("Month.String() mismatch")
	}
	if June.Abbrev() != "Jun" || September.Abbrev() != "Sep" {
		t.Error("Month.Abbrev() mismatch")
	}
	if February.Ordinal() != 2 || MonthFromOrdinal(11) != November {
		t.Error("month ordinal mapping mismatch")
	}
	if Sunday.Int() != 0 || Saturday.Int() != 6 || Wednesday.String() != "Wednesday" {
		t.Error("weekday mapping mismatch")
	}
}
