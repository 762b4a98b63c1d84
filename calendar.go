package main

import "fmt"

// Millisecond spans used throughout the date arithmetic.
const (
	msPerMinute int64 = 60 * 1000
	msPerHour   int64 = 60 * msPerMinute
	msPerDay    int64 = 24 * msPerHour
)

// Zone is a fixed UTC offset in minutes east of UTC. There are no DST rules
// and no named-zone database; 0 means UTC, -300 means UTC-5.
type Zone int

// UTC is the zero offset zone.
const UTC Zone = 0

// Month is a calendar month, January = 1 through December = 12.
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func (m Month) String() string { return monthNames[m-1] }

// Abbrev returns the three-letter month name ("Jan".."Dec").
func (m Month) Abbrev() string { return monthNames[m-1][:3] }

// Ordinal returns the 1-based month number (January = 1).
func (m Month) Ordinal() int { return int(m) }

// MonthFromOrdinal maps a 1-based month number back to its Month.
func MonthFromOrdinal(n int) Month { return Month(n) }

// Weekday numbering follows the Sunday-first convention used by the grid.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

func (d Weekday) String() string { return weekdayNames[d] }

// Int returns the 0-based weekday number (Sunday = 0).
func (d Weekday) Int() int { return int(d) }

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 366 for leap years, 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// CivilDateToTimestamp converts a proleptic-Gregorian civil date, taken as
// UTC midnight, to milliseconds since the Unix epoch. The days-from-civil
// algorithm shifts Jan/Feb to the end of the previous year so every leap day
// lands at the end of the internal year, then counts days within 400-year
// eras (146097 days each). 719468 is the day number of 1970-01-01 relative
// to era day 0 (0000-03-01). The day is not validated against the month.
func CivilDateToTimestamp(m Month, day, year int) int64 {
	y := int64(year)
	if m <= February {
		y--
	}
	var era int64
	if y >= 0 {
		era = y / 400
	} else {
		era = (y - 399) / 400
	}
	yoe := y - era*400 // 0..399
	mp := int64(m)
	var doy int64
	if mp > 2 {
		doy = (153*(mp-3)+2)/5 + int64(day) - 1
	} else {
		doy = (153*(mp+9)+2)/5 + int64(day) - 1
	}
	doe := yoe*365 + yoe/4 - yoe/100 + doy // 0..146096
	return (era*146097 + doe - 719468) * msPerDay
}

// civilFromMillis is the inverse of CivilDateToTimestamp: the civil date
// containing the given UTC instant.
func civilFromMillis(ms int64) (year int, m Month, day int) {
	z := floorDiv(ms, msPerDay) + 719468
	var era int64
	if z >= 0 {
		era = z / 146097
	} else {
		era = (z - 146096) / 146097
	}
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d := doy - (153*mp+2)/5 + 1
	mm := mp + 3
	if mp >= 10 {
		mm = mp - 9
	}
	if mm <= 2 {
		y++
	}
	return int(y), Month(mm), int(d)
}

// civilInZone renders an absolute instant as a civil date in the given zone.
func civilInZone(zone Zone, ts int64) (year int, m Month, day int) {
	return civilFromMillis(ts + int64(zone)*msPerMinute)
}

// DayOfYear returns the 1-based ordinal day within the civil year as the
// instant appears in zone. The anchor sits one millisecond before the year's
// UTC midnight on Jan 1 so that exact-midnight timestamps round up into the
// day they begin rather than the day before. The offset term accounts for
// the zone's local calendar day having crossed midnight relative to UTC;
// when the naive day-of-month subtraction spans a month boundary its sign
// flips, so it is clamped and negated back into {-1, 0, 1}.
func DayOfYear(zone Zone, ts int64) int {
	year, _, _ := civilInZone(zone, ts)
	anchor := CivilDateToTimestamp(January, 1, year) - 1

	_, _, utcDay := civilFromMillis(ts)
	_, _, zoneDay := civilInZone(zone, ts)
	offset := utcDay - zoneDay
	if offset > 1 || offset < -1 {
		offset = -clampDay(offset)
	}

	return int(ceilDiv(ts-anchor, msPerDay)) - offset
}

// DayOfYearToTimestamp returns the UTC midnight of the given day of year.
// Unlike DayOfYear it is deliberately not zone-aware: callers rely on the
// UTC-anchored timestamp as the canonical identity of a day cell.
func DayOfYearToTimestamp(year, dayOfYear int) int64 {
	return CivilDateToTimestamp(January, 1, year) + int64(dayOfYear-1)*msPerDay
}

// GetDayOfWeek returns the weekday of a civil date, 0 = Sunday through
// 6 = Saturday, by Sakamoto/Zeller congruence. Months are remapped so March
// is month 1 and Jan/Feb count as months 11 and 12 of the previous year.
func GetDayOfWeek(m Month, day, year int) int {
	century := FirstNDigits(2, year)
	monthVal := int(m) - 2
	yearVal := year % 100
	if m <= February {
		monthVal = int(m) + 10
		yearVal = (year - 1) % 100
	}
	// (13m - 1) / 5 == floor(2.6m - 0.2) for positive m
	sum := day + (13*monthVal-1)/5 - 2*century + yearVal + yearVal/4 + century/4
	return ((sum % 7) + 7) % 7
}

// FirstNDigits returns the leading n digits of a positive integer. Inputs
// that are zero or negative are outside the contract.
func FirstNDigits(n, num int) int {
	digits := 0
	for v := num; v > 0; v /= 10 {
		digits++
	}
	for ; digits > n; digits-- {
		num /= 10
	}
	return num
}

// TwoDigitString zero-pads a non-negative integer below 100 to two digits.
// Inputs of 100 or more keep only their last two digits.
func TwoDigitString(n int) string {
	return fmt.Sprintf("%02d", n%100)
}

// FormatDate renders an instant as "MM/DD/YYYY" in the given zone.
func FormatDate(zone Zone, ts int64) string {
	year, m, day := civilInZone(zone, ts)
	return fmt.Sprintf("%s/%s/%d", TwoDigitString(m.Ordinal()), TwoDigitString(day), year)
}

// FormatTime renders an instant as "HH:MM" in the given zone.
func FormatTime(zone Zone, ts int64) string {
	msOfDay := floorMod(ts+int64(zone)*msPerMinute, msPerDay)
	return fmt.Sprintf("%s:%s", TwoDigitString(int(msOfDay/msPerHour)), TwoDigitString(int(msOfDay%msPerHour/msPerMinute)))
}

func clampDay(n int) int {
	if n > 1 {
		return 1
	}
	if n < -1 {
		return -1
	}
	return n
}

// floorDiv divides rounding toward negative infinity; b must be positive.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

// ceilDiv divides rounding toward positive infinity; b must be positive.
func ceilDiv(a, b int64) int64 {
	q := a / b
	if a%b > 0 {
		q++
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
