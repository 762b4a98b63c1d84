package main

import (
	"fmt"
	"io"
)

// SVG layout geometry, in pixels.
const (
	svgCellSize    = 12
	svgCellPad     = 2
	svgLeftGutter  = 30 // weekday labels
	svgTopGutter   = 20 // month labels
	svgFontSize    = 10
	svgFontFamily  = "sans-serif"
	svgCellCorner  = 2
	svgLabelBaseline = 9 // nudge weekday labels toward row centers
)

// WriteSVG writes the year grid as an SVG heatmap. Output is deterministic:
// one <rect> per real day cell in day-of-year order, carrying data-date and
// data-points attributes, with month labels across the top and Mon/Wed/Fri
// labels down the left. Blank grid positions produce no rect.
func WriteSVG(w io.Writer, g *YearGrid, palette []string) error {
	step := svgCellSize + svgCellPad
	width := svgLeftGutter + g.Weeks*step
	height := svgTopGutter + daysPerWeek*step
	maxPoints := g.MaxPoints()

	if _, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" font-family="%s" font-size="%d">`+"\n",
		width, height, svgFontFamily, svgFontSize); err != nil {
		return err
	}

	for _, l := range g.MonthLabels() {
		x := svgLeftGutter + l.Col*step
		if _, err := fmt.Fprintf(w, `<text x="%d" y="%d">%s</text>`+"\n",
			x, svgTopGutter-6, l.Month.Abbrev()); err != nil {
			return err
		}
	}

	for _, row := range []Weekday{Monday, Wednesday, Friday} {
		y := svgTopGutter + row.Int()*step + svgLabelBaseline
		if _, err := fmt.Fprintf(w, `<text x="0" y="%d">%s</text>`+"\n",
			y, row.String()[:3]); err != nil {
			return err
		}
	}

	for doy := 1; doy <= g.Days; doy++ {
		cell := g.DayCell(doy)
		pos := g.Lead + doy - 1
		week, weekday := pos/daysPerWeek, pos%daysPerWeek
		x := svgLeftGutter + week*step
		y := svgTopGutter + weekday*step
		if _, err := fmt.Fprintf(w,
			`<rect x="%d" y="%d" width="%d" height="%d" rx="%d" fill="%s" data-date="%s" data-points="%d"/>`+"\n",
			x, y, svgCellSize, svgCellSize, svgCellCorner,
			palette[cell.Level(maxPoints)], isoDate(cell.Timestamp), cell.Points()); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</svg>\n")
	return err
}

// isoDate renders a UTC instant as "YYYY-MM-DD".
func isoDate(ts int64) string {
	year, m, day := civilFromMillis(ts)
	return fmt.Sprintf("%04d-%s-%s", year, TwoDigitString(m.Ordinal()), TwoDigitString(day))
}
