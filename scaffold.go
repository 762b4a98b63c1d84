package main

import (
	"fmt"
	"os"
	"path/filepath"
)

const starterContributions = `# streak contributions
# One entry per record; date is required, time is optional (UTC).
# - date: "2026-08-31"
#   time: "14:03"
#   title: what you did
#   points: 3
[]
`

const starterConfig = `# streak configuration
# zone_offset_minutes: -300   # display zone, minutes east of UTC
# data: /path/to/contributions.yml
# colors: ["#ebedf0", "#9be9a8", "#40c463", "#30a14e", "#216e39"]
`

// ScaffoldData creates the config directory with placeholder files
func ScaffoldData() error {
	dataPath, err := DefaultContributionsPath()
	if err != nil {
		return err
	}
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}

	// Refuse to clobber an existing data file
	if _, err := os.Stat(dataPath); err == nil {
		return fmt.Errorf("contributions file already exists at %s", dataPath)
	}

	if err := os.MkdirAll(filepath.Dir(dataPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(dataPath, []byte(starterContributions), 0644); err != nil {
		return fmt.Errorf("creating contributions file: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := os.WriteFile(configPath, []byte(starterConfig), 0644); err != nil {
			return fmt.Errorf("creating config file: %w", err)
		}
	}

	fmt.Printf("Created %s\n", dataPath)
	fmt.Println("Files created:")
	fmt.Println("  contributions.yml - Contribution records (date, time, title, points)")
	fmt.Println("  config.yml        - Settings (zone offset, data path, colors)")

	return nil
}
