package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const (
	cellGlyph  = "■"
	blankGlyph = " "
	rowLabelW  = 4 // "Mon " gutter
)

// terminalWidth reports the width of the attached terminal, or 0 when stdout
// is not a terminal.
var terminalWidth = func() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}

// levelStyles builds one lipgloss style per intensity level 0..4.
func levelStyles(palette []string) [5]lipgloss.Style {
	var styles [5]lipgloss.Style
	for i, hex := range palette {
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}
	return styles
}

// RenderGraph renders the year grid as an ANSI heatmap: a month header row,
// seven weekday rows of two-column cells, a legend, and a summary line.
// width caps the rendered width in terminal columns; 0 means auto-detect,
// falling back to the full grid when stdout is not a terminal. Grids wider
// than the cap are compressed by grouping week columns and keeping each
// weekday's maximum point total.
func RenderGraph(g *YearGrid, palette []string, width int) string {
	if width <= 0 {
		width = terminalWidth()
	}
	cols := g.Weeks
	if width > 0 {
		if avail := (width - rowLabelW) / 2; avail > 0 && avail < cols {
			cols = avail
		}
	}

	points, maxPoints := compressPoints(g, cols)
	styles := levelStyles(palette)

	var b strings.Builder
	writeMonthHeader(&b, g, cols)

	rowLabels := [daysPerWeek]string{"", "Mon", "", "Wed", "", "Fri", ""}
	for row := 0; row < daysPerWeek; row++ {
		b.WriteString(padRight(rowLabels[row], rowLabelW))
		for col := 0; col < cols; col++ {
			p := points[row][col]
			if p < 0 {
				b.WriteString(blankGlyph + " ")
				continue
			}
			b.WriteString(styles[levelFor(p, maxPoints)].Render(cellGlyph) + " ")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + padRight("", rowLabelW) + "Less ")
	for level := 0; level < 5; level++ {
		b.WriteString(styles[level].Render(cellGlyph) + " ")
	}
	b.WriteString("More\n")

	summary := lipgloss.NewStyle().Faint(true).Render(summaryLine(g))
	b.WriteString(summary + "\n")
	return b.String()
}

func summaryLine(g *YearGrid) string {
	return fmt.Sprintf("%s%d points on %d days in %d",
		padRight("", rowLabelW), g.TotalPoints(), g.ActiveDays(), g.Year)
}

// compressPoints folds the grid into [7][cols] point totals. A value of -1
// marks a blank position (before Jan 1 or after Dec 31). When cols equals
// the week count the mapping is the identity; otherwise weeks are spread
// evenly and each target column keeps the per-weekday maximum.
func compressPoints(g *YearGrid, cols int) ([][]int, int) {
	points := make([][]int, daysPerWeek)
	for row := range points {
		points[row] = make([]int, cols)
		for col := range points[row] {
			points[row][col] = -1
		}
	}

	maxPoints := 0
	for week := 0; week < g.Weeks; week++ {
		col := week * cols / g.Weeks
		for row := 0; row < daysPerWeek; row++ {
			cell := g.Cell(week, row)
			if cell == nil {
				continue
			}
			p := cell.Points()
			if p > points[row][col] {
				points[row][col] = p
			}
			if p > maxPoints {
				maxPoints = p
			}
		}
	}
	return points, maxPoints
}

// writeMonthHeader lays month abbreviations over the week columns where each
// month begins, scaled down when the grid is compressed.
func writeMonthHeader(b *strings.Builder, g *YearGrid, cols int) {
	header := make([]byte, rowLabelW+cols*2)
	for i := range header {
		header[i] = ' '
	}
	for _, l := range g.MonthLabels() {
		col := l.Col * cols / g.Weeks
		pos := rowLabelW + col*2
		label := l.Month.Abbrev()
		if pos+len(label) > len(header) {
			continue
		}
		// Skip a label that would overprint the previous one.
		if header[pos] != ' ' || (pos > rowLabelW && header[pos-1] != ' ') {
			continue
		}
		copy(header[pos:], label)
	}
	b.Write(header)
	b.WriteString("\n")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
