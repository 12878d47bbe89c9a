package coverage

import (
	"context"
	"fmt"
	"sort"
	"time"

	satellite "github.com/joshuaferrara/go-satellite"

	"github.com/signalsfoundry/hexsphere/hexgrid"
)

// Tracker propagates one satellite with SGP4 and indexes its subsatellite
// points on the grid.
type Tracker struct {
	sat satellite.Satellite
}

// NewTracker constructs a tracker from TLE lines.
func NewTracker(line1, line2 string) (*Tracker, error) {
	if err := validateTLE(line1, line2); err != nil {
		return nil, err
	}
	sat := satellite.TLEToSat(line1, line2, satellite.GravityWGS72)
	return &Tracker{sat: sat}, nil
}

// Point is one propagation sample of the ground track.
type Point struct {
	Time       time.Time
	Position   hexgrid.LatLng
	AltitudeKm float64
	Cell       hexgrid.Cell
}

// PositionAt propagates the satellite to the given instant and returns the
// subsatellite point in degrees plus the altitude in kilometres.
func (t *Tracker) PositionAt(at time.Time) (hexgrid.LatLng, float64) {
	at = at.UTC()
	year, month, day := at.Date()
	hour, min, sec := at.Clock()

	posECI, _ := satellite.Propagate(t.sat, year, int(month), day, hour, min, sec)
	jd := satellite.JDay(year, int(month), day, hour, min, sec)
	gmst := satellite.ThetaG_JD(jd)
	altKm, _, radLL := satellite.ECIToLLA(posECI, gmst)
	ll := satellite.LatLongDeg(radLL)

	return hexgrid.LatLng{Lat: ll.Latitude, Lng: ll.Longitude}, altKm
}

// GroundTrack samples the subsatellite point from start for the given
// duration at the given step and indexes every sample at res. Both endpoints
// of the window are included.
func (t *Tracker) GroundTrack(ctx context.Context, start time.Time, duration, step time.Duration, res int) ([]Point, error) {
	if step <= 0 {
		return nil, fmt.Errorf("%w: step must be positive", ErrInvalidMission)
	}

	var points []Point
	end := start.Add(duration)
	for at := start; !at.After(end); at = at.Add(step) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ll, altKm := t.PositionAt(at)
		cell, err := hexgrid.LatLngToCell(ll, res)
		if err != nil {
			return nil, err
		}
		points = append(points, Point{Time: at, Position: ll, AltitudeKm: altKm, Cell: cell})
	}
	return points, nil
}

// Report summarises the cells a mission's ground track covered.
type Report struct {
	Mission string
	Start   time.Time
	End     time.Time
	Points  []Point
	// Cells is the covered set, unique and sorted.
	Cells []hexgrid.Cell
	// Compacted is the same set expressed with coarser ancestors where a
	// subtree was fully covered.
	Compacted []hexgrid.Cell
	AreaKm2   float64
}

// Run executes a mission: propagate the track, pad each sample with its swath
// disk, and compact the covered set.
func Run(ctx context.Context, m *Mission) (*Report, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil mission", ErrInvalidMission)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	tracker, err := NewTracker(m.TLELine1, m.TLELine2)
	if err != nil {
		return nil, err
	}

	points, err := tracker.GroundTrack(ctx, m.Start, m.Duration, m.Step, m.Resolution)
	if err != nil {
		return nil, err
	}

	seen := make(map[hexgrid.Cell]bool)
	var cells []hexgrid.Cell
	add := func(c hexgrid.Cell) {
		if !seen[c] {
			seen[c] = true
			cells = append(cells, c)
		}
	}
	for _, p := range points {
		if m.SwathK == 0 {
			add(p.Cell)
			continue
		}
		disk, err := hexgrid.GridDisk(p.Cell, m.SwathK)
		if err != nil {
			return nil, err
		}
		for _, c := range disk {
			add(c)
		}
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i] < cells[j] })

	var area float64
	for _, c := range cells {
		km2, err := hexgrid.CellAreaKm2(c)
		if err != nil {
			return nil, err
		}
		area += km2
	}

	compacted, err := hexgrid.CompactCells(cells)
	if err != nil {
		return nil, err
	}

	return &Report{
		Mission:   m.Name,
		Start:     m.Start,
		End:       m.Start.Add(m.Duration),
		Points:    points,
		Cells:     cells,
		Compacted: compacted,
		AreaKm2:   area,
	}, nil
}
