package main

const daysPerWeek = 7

// Cell is one day of the displayed year.
type Cell struct {
	DayOfYear int
	Timestamp int64 // UTC midnight of the day, the cell's canonical identity
	Contribs  []Contribution
}

// Points sums the cell's contribution points.
func (c *Cell) Points() int {
	total := 0
	for _, contrib := range c.Contribs {
		total += contrib.Points
	}
	return total
}

// Level buckets the cell's points into intensity 0..4 relative to the
// year's busiest day. Any activity is at least level 1.
func (c *Cell) Level(maxPoints int) int {
	return levelFor(c.Points(), maxPoints)
}

func levelFor(points, maxPoints int) int {
	if points <= 0 {
		return 0
	}
	if maxPoints <= 0 {
		return 1
	}
	level := (4*points + maxPoints - 1) / maxPoints
	if level > 4 {
		level = 4
	}
	return level
}

// YearGrid is the 7-row week-column layout of one year: Lead blank cells
// open week 0 (one per weekday before Jan 1), then one cell per day.
type YearGrid struct {
	Year  int
	Zone  Zone
	Lead  int // weekday of Jan 1, 0=Sunday
	Days  int
	Weeks int

	cells []Cell // indexed by day-of-year - 1
}

// MonthLabel marks the week column where a month begins.
type MonthLabel struct {
	Col   int
	Month Month
}

// BuildYearGrid lays out one year and buckets contributions into day cells
// by their day-of-year as observed in zone. Records falling outside the
// year (in zone) are ignored.
func BuildYearGrid(year int, zone Zone, contribs []Contribution) *YearGrid {
	g := &YearGrid{
		Year: year,
		Zone: zone,
		Lead: GetDayOfWeek(January, 1, year),
		Days: DaysInYear(year),
	}
	g.Weeks = (g.Lead + g.Days + daysPerWeek - 1) / daysPerWeek

	g.cells = make([]Cell, g.Days)
	for i := range g.cells {
		g.cells[i] = Cell{
			DayOfYear: i + 1,
			Timestamp: DayOfYearToTimestamp(year, i+1),
		}
	}

	for _, c := range contribs {
		y, _, _ := civilInZone(zone, c.Timestamp)
		if y != year {
			continue
		}
		doy := DayOfYear(zone, c.Timestamp)
		cell := &g.cells[doy-1]
		cell.Contribs = append(cell.Contribs, c)
	}

	return g
}

// DayCell returns the cell for a 1-based day of year, or nil out of range.
func (g *YearGrid) DayCell(doy int) *Cell {
	if doy < 1 || doy > g.Days {
		return nil
	}
	return &g.cells[doy-1]
}

// Cell returns the cell at a week column and weekday row, or nil for the
// blank positions before Jan 1 and after Dec 31.
func (g *YearGrid) Cell(week, weekday int) *Cell {
	idx := week*daysPerWeek + weekday - g.Lead
	if idx < 0 || idx >= g.Days {
		return nil
	}
	return &g.cells[idx]
}

// MaxPoints returns the highest single-day point total of the year.
func (g *YearGrid) MaxPoints() int {
	max := 0
	for i := range g.cells {
		if p := g.cells[i].Points(); p > max {
			max = p
		}
	}
	return max
}

// TotalPoints sums every contribution point in the year.
func (g *YearGrid) TotalPoints() int {
	total := 0
	for i := range g.cells {
		total += g.cells[i].Points()
	}
	return total
}

// ActiveDays counts days with at least one contribution.
func (g *YearGrid) ActiveDays() int {
	n := 0
	for i := range g.cells {
		if len(g.cells[i].Contribs) > 0 {
			n++
		}
	}
	return n
}

// MonthLabels returns, for each month, the week column holding its first day.
func (g *YearGrid) MonthLabels() []MonthLabel {
	labels := make([]MonthLabel, 0, 12)
	doy := 1
	for m := January; m <= December; m++ {
		labels = append(labels, MonthLabel{
			Col:   (g.Lead + doy - 1) / daysPerWeek,
			Month: m,
		})
		doy += daysInMonth(m, g.Year)
	}
	return labels
}

func daysInMonth(m Month, year int) int {
	switch m {
	case February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case April, June, September, November:
		return 30
	default:
		return 31
	}
}
