package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Contribution is one timestamped, titled, point-valued record.
type Contribution struct {
	Title     string
	Points    int
	Timestamp int64 // ms since the Unix epoch, UTC
}

// contributionYAML is the on-disk shape of one record in contributions.yml.
// The date (and optional time of day) are interpreted as UTC.
type contributionYAML struct {
	Date   string `yaml:"date"`
	Time   string `yaml:"time,omitempty"`
	Title  string `yaml:"title"`
	Points int    `yaml:"points"`
}

// DefaultContributionsPath returns the path of the contributions data file.
var DefaultContributionsPath = defaultContributionsPath

func defaultContributionsPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("determining config directory: %w", err)
	}
	return filepath.Join(configDir, "streak", "contributions.yml"), nil
}

// LoadContributions reads and parses a contributions YAML file.
func LoadContributions(path string) ([]Contribution, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseContributions(data)
}

// ParseContributions parses contributions YAML and resolves each record's
// date and time into a UTC timestamp.
func ParseContributions(data []byte) ([]Contribution, error) {
	var raw []contributionYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing contributions: %w", err)
	}

	contribs := make([]Contribution, 0, len(raw))
	for i, r := range raw {
		ts, err := parseDateMillis(r.Date)
		if err != nil {
			return nil, fmt.Errorf("contribution %d: %w", i+1, err)
		}
		if r.Time != "" {
			dayMS, err := parseTimeMillis(r.Time)
			if err != nil {
				return nil, fmt.Errorf("contribution %d: %w", i+1, err)
			}
			ts += dayMS
		}
		contribs = append(contribs, Contribution{
			Title:     r.Title,
			Points:    r.Points,
			Timestamp: ts,
		})
	}

	sort.Slice(contribs, func(i, j int) bool {
		return contribs[i].Timestamp < contribs[j].Timestamp
	})
	return contribs, nil
}

// parseDateMillis converts "YYYY-MM-DD" to UTC midnight milliseconds.
func parseDateMillis(s string) (int64, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", s, err)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, fmt.Errorf("invalid month in date %q", s)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil || day < 1 || day > 31 {
		return 0, fmt.Errorf("invalid day in date %q", s)
	}
	return CivilDateToTimestamp(MonthFromOrdinal(month), day, year), nil
}

// parseTimeMillis converts "HH:MM" to milliseconds past midnight.
func parseTimeMillis(s string) (int64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in time %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in time %q", s)
	}
	return int64(hour)*msPerHour + int64(minute)*msPerMinute, nil
}

// Years returns the sorted distinct years, as observed in zone, that have at
// least one contribution.
func Years(contribs []Contribution, zone Zone) []int {
	seen := make(map[int]bool)
	for _, c := range contribs {
		y, _, _ := civilInZone(zone, c.Timestamp)
		seen[y] = true
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// DefaultYear picks the year to display: the most recent year containing a
// contribution, or the clock's current year when the list is empty.
func DefaultYear(contribs []Contribution, zone Zone, clock Clock) int {
	years := Years(contribs, zone)
	if len(years) > 0 {
		return years[len(years)-1]
	}
	millis, offset := clock.Now()
	y, _, _ := civilInZone(Zone(offset), millis)
	return y
}
