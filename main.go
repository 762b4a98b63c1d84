package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
)

// CLI defines the command-line interface structure
type CLI struct {
	Graph   GraphCmd   `cmd:"" default:"1" help:"Render the contribution graph for a year"`
	Day     DayCmd     `cmd:"" help:"Show one day's contributions"`
	Years   YearsCmd   `cmd:"" help:"List years that have contributions"`
	Svg     SvgCmd     `cmd:"" help:"Export the graph as SVG"`
	Ics     IcsCmd     `cmd:"" help:"Export one day's contributions as iCalendar"`
	Browse  BrowseCmd  `cmd:"" help:"Browse the graph interactively"`
	Init    InitCmd    `cmd:"" help:"Create starter contributions and config files"`
	Version VersionCmd `cmd:"" help:"Print computed CalVer tag"`
}

// InitCmd scaffolds the config directory
type InitCmd struct{}

func (c *InitCmd) Run() error {
	return ScaffoldData()
}

// DataFlags carries the shared data-source and zone selection flags.
type DataFlags struct {
	Data string `long:"data" help:"Contributions file (default: ~/.config/streak/contributions.yml)"`
	Zone *int   `long:"zone" help:"Display zone as minutes east of UTC (default: config file or UTC)"`
}

// load resolves configuration and reads the contributions file. A missing
// data file is an empty contribution list, not an error, so the year
// fallback in DefaultYear can apply.
func (f DataFlags) load() ([]Contribution, *ResolvedConfig, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	resolved, err := ResolveConfig(cfg, f.Zone, f.Data)
	if err != nil {
		return nil, nil, err
	}
	contribs, err := LoadContributions(resolved.Data)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, resolved, nil
		}
		return nil, nil, err
	}
	return contribs, resolved, nil
}

// yearOrDefault picks the explicit year when given, else the data default.
func yearOrDefault(year int, contribs []Contribution, zone Zone) int {
	if year != 0 {
		return year
	}
	return DefaultYear(contribs, zone, SystemClock)
}

// GraphCmd renders the contribution graph
type GraphCmd struct {
	Year      int `long:"year" help:"Year to display (default: latest year with data)"`
	Width     int `long:"width" help:"Cap output width in columns (default: terminal width)"`
	DataFlags `embed:""`
}

func (c *GraphCmd) Run() error {
	contribs, resolved, err := c.load()
	if err != nil {
		return err
	}
	year := yearOrDefault(c.Year, contribs, resolved.Zone)
	g := BuildYearGrid(year, resolved.Zone, contribs)
	fmt.Print(RenderGraph(g, resolved.Palette, c.Width))
	return nil
}

// DayCmd prints one day's contributions
type DayCmd struct {
	Date      string `arg:"" help:"Day as MM/DD/YYYY, or a 1-based day-of-year number"`
	Year      int    `long:"year" help:"Year for day-of-year input (default: latest year with data)"`
	DataFlags `embed:""`
}

func (c *DayCmd) Run() error {
	contribs, resolved, err := c.load()
	if err != nil {
		return err
	}

	cell, days, err := resolveDayCell(c.Date, c.Year, contribs, resolved.Zone)
	if err != nil {
		return err
	}

	year, month, day := civilFromMillis(cell.Timestamp)
	weekday := Weekday(GetDayOfWeek(month, day, year))
	fmt.Printf("%s %s (day %d of %d)\n", weekday, FormatDate(UTC, cell.Timestamp), cell.DayOfYear, days)

	if len(cell.Contribs) == 0 {
		fmt.Println("no contributions")
		return nil
	}
	for _, contrib := range cell.Contribs {
		when := "all day"
		if contrib.Timestamp != cell.Timestamp {
			when = FormatTime(resolved.Zone, contrib.Timestamp)
		}
		fmt.Printf("%s  %s (%d pts)\n", when, contrib.Title, contrib.Points)
	}
	fmt.Printf("total: %d points\n", cell.Points())
	return nil
}

// resolveDayCell locates the grid cell for a date argument, which is either
// "MM/DD/YYYY" or a plain day-of-year number resolved against year (0 means
// the default display year). Returns the cell and the length of its year.
func resolveDayCell(arg string, year int, contribs []Contribution, zone Zone) (*Cell, int, error) {
	var doy int
	if strings.Contains(arg, "/") {
		month, day, y, err := parseUSDate(arg)
		if err != nil {
			return nil, 0, err
		}
		year = y
		doy = DayOfYear(UTC, CivilDateToTimestamp(month, day, year))
	} else {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid day %q: want MM/DD/YYYY or a day-of-year number", arg)
		}
		year = yearOrDefault(year, contribs, zone)
		doy = n
	}

	g := BuildYearGrid(year, zone, contribs)
	cell := g.DayCell(doy)
	if cell == nil {
		return nil, 0, fmt.Errorf("day %d out of range for %d (1..%d)", doy, year, g.Days)
	}
	return cell, g.Days, nil
}

// parseUSDate parses "MM/DD/YYYY".
func parseUSDate(s string) (Month, int, int, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid date %q: want MM/DD/YYYY", s)
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, 0, fmt.Errorf("invalid month in %q", s)
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil || day < 1 || day > 31 {
		return 0, 0, 0, fmt.Errorf("invalid day in %q", s)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid year in %q", s)
	}
	return MonthFromOrdinal(month), day, year, nil
}

// YearsCmd lists years that have contributions
type YearsCmd struct {
	DataFlags `embed:""`
}

func (c *YearsCmd) Run() error {
	contribs, resolved, err := c.load()
	if err != nil {
		return err
	}
	for _, year := range Years(contribs, resolved.Zone) {
		g := BuildYearGrid(year, resolved.Zone, contribs)
		fmt.Printf("%d  %d points on %d days\n", year, g.TotalPoints(), g.ActiveDays())
	}
	return nil
}

// SvgCmd writes the graph as an SVG document
type SvgCmd struct {
	Year      int    `long:"year" help:"Year to export (default: latest year with data)"`
	Out       string `long:"out" help:"Output file (default: stdout)"`
	DataFlags `embed:""`
}

func (c *SvgCmd) Run() error {
	contribs, resolved, err := c.load()
	if err != nil {
		return err
	}
	year := yearOrDefault(c.Year, contribs, resolved.Zone)
	g := BuildYearGrid(year, resolved.Zone, contribs)

	if c.Out == "" {
		return WriteSVG(os.Stdout, g, resolved.Palette)
	}
	out, err := os.Create(c.Out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", c.Out, err)
	}
	if err := WriteSVG(out, g, resolved.Palette); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// IcsCmd exports one day's contributions as iCalendar events
type IcsCmd struct {
	Date      string `arg:"" help:"Day as MM/DD/YYYY, or a 1-based day-of-year number"`
	Year      int    `long:"year" help:"Year for day-of-year input (default: latest year with data)"`
	Out       string `long:"out" help:"Output file (default: stdout)"`
	DataFlags `embed:""`
}

func (c *IcsCmd) Run() error {
	contribs, resolved, err := c.load()
	if err != nil {
		return err
	}

	cell, _, err := resolveDayCell(c.Date, c.Year, contribs, resolved.Zone)
	if err != nil {
		return err
	}

	doc, err := BuildDayICS(cell, SystemClock)
	if err != nil {
		return err
	}

	if c.Out == "" {
		fmt.Print(doc)
		return nil
	}
	if err := os.WriteFile(c.Out, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", c.Out, err)
	}
	return nil
}

// BrowseCmd starts the interactive browser
type BrowseCmd struct {
	DataFlags `embed:""`
}

func (c *BrowseCmd) Run() error {
	contribs, resolved, err := c.load()
	if err != nil {
		return err
	}
	return StartBrowse(contribs, resolved, SystemClock)
}

// VersionCmd prints the computed CalVer tag
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	version := ComputeCalVer()
	println(version)
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("streak"),
		kong.Description("Contribution graph for your terminal - render, inspect, export"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
