package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Theme collects the lipgloss styles used by the browser.
type Theme struct {
	Title    lipgloss.Style
	Help     lipgloss.Style
	Selected lipgloss.Style
	Detail   lipgloss.Style
	Levels   [5]lipgloss.Style
}

func NewTheme(palette []string) Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Selected: lipgloss.NewStyle().Reverse(true),
		Detail: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()),
		Levels: levelStyles(palette),
	}
}

// browseModel is the bubbletea model for the interactive graph browser.
// The selection is a (week, weekday) grid position; movement onto blank
// positions (before Jan 1, after Dec 31) is refused rather than clamped.
type browseModel struct {
	contribs []Contribution
	zone     Zone
	theme    Theme

	years   []int
	yearIdx int
	grid    *YearGrid

	week int
	row  int
}

func newBrowseModel(contribs []Contribution, resolved *ResolvedConfig, clock Clock) browseModel {
	m := browseModel{
		contribs: contribs,
		zone:     resolved.Zone,
		theme:    NewTheme(resolved.Palette),
		years:    Years(contribs, resolved.Zone),
	}
	if len(m.years) == 0 {
		m.years = []int{DefaultYear(contribs, resolved.Zone, clock)}
	}
	m.yearIdx = len(m.years) - 1
	m.setYear(m.years[m.yearIdx])
	return m
}

// setYear rebuilds the grid and parks the selection on Jan 1.
func (m *browseModel) setYear(year int) {
	m.grid = BuildYearGrid(year, m.zone, m.contribs)
	m.week = 0
	m.row = m.grid.Lead
}

func (m browseModel) selected() *Cell {
	return m.grid.Cell(m.week, m.row)
}

func (m browseModel) Init() tea.Cmd { return nil }

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		m.move(-1, 0)
	case "right", "l":
		m.move(1, 0)
	case "up", "k":
		m.move(0, -1)
	case "down", "j":
		m.move(0, 1)
	case "home", "g":
		m.week, m.row = 0, m.grid.Lead
	case "end", "G":
		last := m.grid.Lead + m.grid.Days - 1
		m.week, m.row = last/daysPerWeek, last%daysPerWeek
	case "[":
		if m.yearIdx > 0 {
			m.yearIdx--
			m.setYear(m.years[m.yearIdx])
		}
	case "]":
		if m.yearIdx < len(m.years)-1 {
			m.yearIdx++
			m.setYear(m.years[m.yearIdx])
		}
	}
	return m, nil
}

func (m *browseModel) move(dWeek, dRow int) {
	week, row := m.week+dWeek, m.row+dRow
	if row < 0 || row >= daysPerWeek {
		return
	}
	if m.grid.Cell(week, row) == nil {
		return
	}
	m.week, m.row = week, row
}

func (m browseModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Contributions · %d", m.grid.Year)
	b.WriteString(m.theme.Title.Render(title) + "\n\n")

	writeMonthHeader(&b, m.grid, m.grid.Weeks)
	maxPoints := m.grid.MaxPoints()
	rowLabels := [daysPerWeek]string{"", "Mon", "", "Wed", "", "Fri", ""}
	for row := 0; row < daysPerWeek; row++ {
		b.WriteString(padRight(rowLabels[row], rowLabelW))
		for week := 0; week < m.grid.Weeks; week++ {
			cell := m.grid.Cell(week, row)
			if cell == nil {
				b.WriteString(blankGlyph + " ")
				continue
			}
			style := m.theme.Levels[cell.Level(maxPoints)]
			if week == m.week && row == m.row {
				style = m.theme.Selected
			}
			b.WriteString(style.Render(cellGlyph) + " ")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + m.detailView() + "\n")
	b.WriteString(m.theme.Help.Render("←↓↑→/hjkl move · [/] year · g/G first/last day · q quit"))
	return b.String()
}

// detailView describes the selected day and lists its contributions.
func (m browseModel) detailView() string {
	cell := m.selected()
	if cell == nil {
		return m.theme.Detail.Render("no day selected")
	}

	year, month, day := civilFromMillis(cell.Timestamp)
	weekday := Weekday(GetDayOfWeek(month, day, year))
	header := fmt.Sprintf("%s %s · day %d of %d",
		weekday, FormatDate(UTC, cell.Timestamp), cell.DayOfYear, m.grid.Days)

	lines := []string{header}
	if len(cell.Contribs) == 0 {
		lines = append(lines, "no contributions")
	}
	for _, c := range cell.Contribs {
		when := "all day"
		if c.Timestamp != cell.Timestamp {
			when = FormatTime(m.zone, c.Timestamp)
		}
		lines = append(lines, fmt.Sprintf("%s  %s (%d pts)", when, c.Title, c.Points))
	}
	return m.theme.Detail.Render(strings.Join(lines, "\n"))
}

// StartBrowse runs the interactive browser until the user quits.
func StartBrowse(contribs []Contribution, resolved *ResolvedConfig, clock Clock) error {
	p := tea.NewProgram(newBrowseModel(contribs, resolved, clock), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
