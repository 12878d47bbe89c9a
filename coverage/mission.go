// Package coverage propagates satellites with SGP4 and rasterises their
// ground tracks onto the hexagonal grid: which cells did a pass cover, at
// what resolution, over what window.
package coverage

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/signalsfoundry/hexsphere/hexgrid"
)

// ErrInvalidMission marks mission descriptions that fail validation.
var ErrInvalidMission = errors.New("invalid mission")

// Mission describes a ground-track coverage run: the satellite's orbital
// elements, the observation window, and the grid resolution to cover at.
type Mission struct {
	Name     string
	TLELine1 string
	TLELine2 string
	Start    time.Time
	Duration time.Duration
	Step     time.Duration
	// Resolution is the grid resolution the track is indexed at.
	Resolution int
	// SwathK pads every sample with its k-disk to approximate the sensor
	// swath on the ground. Zero keeps only the subsatellite cells.
	SwathK int
}

// missionFile is the YAML wire form. Durations are strings for
// time.ParseDuration and the start time is RFC 3339.
type missionFile struct {
	Name string `yaml:"name"`
	TLE  struct {
		Line1 string `yaml:"line1"`
		Line2 string `yaml:"line2"`
	} `yaml:"tle"`
	Start      string `yaml:"start"`
	Duration   string `yaml:"duration"`
	Step       string `yaml:"step"`
	Resolution int    `yaml:"resolution"`
	SwathK     int    `yaml:"swath_k"`
}

// LoadMission reads a mission description from a YAML file.
func LoadMission(path string) (*Mission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mission file: %w", err)
	}

	var mf missionFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("failed to parse mission file: %w", err)
	}

	m := &Mission{
		Name:       mf.Name,
		TLELine1:   mf.TLE.Line1,
		TLELine2:   mf.TLE.Line2,
		Resolution: mf.Resolution,
		SwathK:     mf.SwathK,
	}

	// Defaults: start now, sample one orbit at one-minute steps.
	m.Start = time.Now().UTC()
	if mf.Start != "" {
		start, err := time.Parse(time.RFC3339, mf.Start)
		if err != nil {
			return nil, fmt.Errorf("failed to parse mission start: %w", err)
		}
		m.Start = start.UTC()
	}
	m.Duration = 90 * time.Minute
	if mf.Duration != "" {
		d, err := time.ParseDuration(mf.Duration)
		if err != nil {
			return nil, fmt.Errorf("failed to parse mission duration: %w", err)
		}
		m.Duration = d
	}
	m.Step = time.Minute
	if mf.Step != "" {
		d, err := time.ParseDuration(mf.Step)
		if err != nil {
			return nil, fmt.Errorf("failed to parse mission step: %w", err)
		}
		m.Step = d
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks the mission is runnable.
func (m *Mission) Validate() error {
	if err := validateTLE(m.TLELine1, m.TLELine2); err != nil {
		return err
	}
	if m.Resolution < 0 || m.Resolution > hexgrid.MaxResolution {
		return fmt.Errorf("%w: resolution %d out of range", ErrInvalidMission, m.Resolution)
	}
	if m.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidMission)
	}
	if m.Step <= 0 {
		return fmt.Errorf("%w: step must be positive", ErrInvalidMission)
	}
	if m.Step > m.Duration {
		return fmt.Errorf("%w: step exceeds duration", ErrInvalidMission)
	}
	if m.SwathK < 0 {
		return fmt.Errorf("%w: swath_k must not be negative", ErrInvalidMission)
	}
	return nil
}

// validateTLE rejects element sets the SGP4 parser would misread. Lines are
// fixed-width, 69 columns, tagged with their line number in column one.
func validateTLE(line1, line2 string) error {
	if line1 == "" || line2 == "" {
		return fmt.Errorf("%w: both TLE lines are required", ErrInvalidMission)
	}
	if len(line1) < 69 || len(line2) < 69 {
		return fmt.Errorf("%w: TLE lines must be at least 69 characters", ErrInvalidMission)
	}
	if line1[0] != '1' || line2[0] != '2' {
		return fmt.Errorf("%w: TLE lines must start with their line numbers", ErrInvalidMission)
	}
	return nil
}
