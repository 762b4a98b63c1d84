package main

import "testing"

func TestBuildYearGridLayout(t *testing.T) {
	tests := []struct {
		year      int
		wantLead  int
		wantDays  int
		wantWeeks int
	}{
		{2020, 3, 366, 53}, // Jan 1 2020 is a Wednesday
		{2021, 5, 365, 53}, // Friday
		{2017, 0, 365, 53}, // Sunday
		{2028, 6, 366, 54}, // Saturday start plus leap day spills into a 54th week
	}

	for _, tt := range tests {
		g := BuildYearGrid(tt.year, UTC, nil)
		if g.Lead != tt.wantLead || g.Days != tt.wantDays || g.Weeks != tt.wantWeeks {
			t.Errorf("BuildYearGrid(%d): lead=%d days=%d weeks=%d, want %d/%d/%d",
				tt.year, g.Lead, g.Days, g.Weeks, tt.wantLead, tt.wantDays, tt.wantWeeks)
		}
	}
}

func TestGridCellAddressing(t *testing.T) {
	g := BuildYearGrid(2020, UTC, nil) // lead 3: week 0 holds Wed..Sat = days 1..4

	if c := g.Cell(0, 2); c != nil {
		t.Errorf("Cell(0,2) should be blank before Jan 1, got day %d", c.DayOfYear)
	}
	if c := g.Cell(0, 3); c == nil || c.DayOfYear != 1 {
		t.Errorf("Cell(0,3) should be Jan 1")
	}
	if c := g.Cell(1, 0); c == nil || c.DayOfYear != 5 {
		t.Errorf("Cell(1,0) should be day 5")
	}
	// Dec 31 2020 is a Thursday: week 52, row 4
	if c := g.Cell(52, 4); c == nil || c.DayOfYear != 366 {
		t.Errorf("Cell(52,4) should be day 366")
	}
	if c := g.Cell(52, 5); c != nil {
		t.Errorf("Cell(52,5) should be blank after Dec 31, got day %d", c.DayOfYear)
	}
	if g.DayCell(0) != nil || g.DayCell(367) != nil {
		t.Error("DayCell should reject out-of-range days")
	}
}

func TestGridBucketsSingleContribution(t *testing.T) {
	contribs := []Contribution{
		{Title: "merge day", Points: 3, Timestamp: CivilDateToTimestamp(June, 29, 2020)},
	}
	g := BuildYearGrid(2020, UTC, contribs)

	for doy := 1; doy <= g.Days; doy++ {
		cell := g.DayCell(doy)
		if doy == 181 {
			if len(cell.Contribs) != 1 || cell.Contribs[0].Title != "merge day" {
				t.Fatalf("day 181 should hold exactly the one contribution, got %v", cell.Contribs)
			}
			continue
		}
		if len(cell.Contribs) != 0 {
			t.Fatalf("day %d should be empty, got %v", doy, cell.Contribs)
		}
	}
	if g.TotalPoints() != 3 || g.ActiveDays() != 1 || g.MaxPoints() != 3 {
		t.Errorf("totals: points=%d active=%d max=%d, want 3/1/3",
			g.TotalPoints(), g.ActiveDays(), g.MaxPoints())
	}
}

func TestGridZoneBucketing(t *testing.T) {
	est := Zone(-300)
	// 23:58 UTC on May 27 is still May 27 locally; 02:00 UTC on Jan 1 2021
	// is Dec 31 2020 locally and so belongs to the 2020 grid.
	contribs := []Contribution{
		{Title: "late push", Points: 1, Timestamp: CivilDateToTimestamp(May, 27, 2020) + 23*msPerHour + 58*msPerMinute},
		{Title: "new year eve", Points: 2, Timestamp: CivilDateToTimestamp(January, 1, 2021) + 2*msPerHour},
	}
	g := BuildYearGrid(2020, est, contribs)

	if c := g.DayCell(148); len(c.Contribs) != 1 || c.Contribs[0].Title != "late push" {
		t.Errorf("day 148 should hold the late push, got %v", c.Contribs)
	}
	if c := g.DayCell(366); len(c.Contribs) != 1 || c.Contribs[0].Title != "new year eve" {
		t.Errorf("day 366 should hold the new year eve record, got %v", c.Contribs)
	}

	// The same records viewed in UTC land in different cells.
	gUTC := BuildYearGrid(2021, UTC, contribs)
	if c := gUTC.DayCell(1); len(c.Contribs) != 1 {
		t.Errorf("UTC grid for 2021 should hold the Jan 1 record, got %v", c.Contribs)
	}
}

func TestCellLevel(t *testing.T) {
	tests := []struct {
		points, max, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{3, 10, 2},
		{5, 10, 2},
		{6, 10, 3},
		{10, 10, 4},
		{2, 0, 1}, // degenerate max still shows activity
	}

	for _, tt := range tests {
		c := &Cell{Contribs: []Contribution{{Points: tt.points}}}
		if got := c.Level(tt.max); got != tt.want {
			t.Errorf("Level(points=%d, max=%d) = %d, want %d", tt.points, tt.max, got, tt.want)
		}
	}
}

func TestMonthLabels(t *testing.T) {
	g := BuildYearGrid(2020, UTC, nil)
	labels := g.MonthLabels()

	if len(labels) != 12 {
		t.Fatalf("expected 12 month labels, got %d", len(labels))
	}
	if labels[0].Col != 0 || labels[0].Month != January {
		t.Errorf("January should start at column 0, got %d", labels[0].Col)
	}
	// Feb 1 2020 is day 32: (3 + 31) / 7 = week 4
	if labels[1].Col != 4 {
		t.Errorf("February should start at column 4, got %d", labels[1].Col)
	}
	if labels[11].Col >= g.Weeks {
		t.Errorf("December column %d out of range (%d weeks)", labels[11].Col, g.Weeks)
	}
}
