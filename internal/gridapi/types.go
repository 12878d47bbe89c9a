package gridapi

import (
	"fmt"

	"github.com/signalsfoundry/hexsphere/hexgrid"
)

// point is the wire form of a geographic coordinate in degrees.
type point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func toPoint(ll hexgrid.LatLng) point {
	return point{Lat: ll.Lat, Lng: ll.Lng}
}

func toPoints(lls []hexgrid.LatLng) []point {
	pts := make([]point, len(lls))
	for i, ll := range lls {
		pts[i] = toPoint(ll)
	}
	return pts
}

func (p point) latLng() hexgrid.LatLng {
	return hexgrid.LatLng{Lat: p.Lat, Lng: p.Lng}
}

// cellInfo describes a single cell.
type cellInfo struct {
	Cell       string  `json:"cell"`
	Resolution int     `json:"resolution"`
	BaseCell   int     `json:"base_cell"`
	Pentagon   bool    `json:"pentagon"`
	ClassIII   bool    `json:"class_iii"`
	Center     point   `json:"center"`
	AreaKm2    float64 `json:"area_km2"`
}

type cellResponse struct {
	Cell string `json:"cell"`
}

type cellsResponse struct {
	Cells []string `json:"cells"`
	Count int      `json:"count"`
}

type boundaryResponse struct {
	Cell     string  `json:"cell"`
	Boundary []point `json:"boundary"`
}

type diskResponse struct {
	Origin string   `json:"origin"`
	K      int      `json:"k"`
	Cells  []string `json:"cells"`
	Count  int      `json:"count"`
}

type ringsResponse struct {
	Origin string     `json:"origin"`
	K      int        `json:"k"`
	Rings  [][]string `json:"rings"`
}

type distanceResponse struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Distance int    `json:"distance"`
}

type pathResponse struct {
	From  string   `json:"from"`
	To    string   `json:"to"`
	Cells []string `json:"cells"`
	Count int      `json:"count"`
}

type localIJResponse struct {
	Origin string `json:"origin"`
	Cell   string `json:"cell"`
	I      int    `json:"i"`
	J      int    `json:"j"`
}

type edgeBoundaryResponse struct {
	Edge     string  `json:"edge"`
	Boundary []point `json:"boundary"`
}

type edgeInfo struct {
	Edge        string  `json:"edge"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	LengthKm    float64 `json:"length_km"`
}

type edgesResponse struct {
	Cell  string     `json:"cell"`
	Edges []edgeInfo `json:"edges"`
}

type edgeRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

type fillRequest struct {
	Exterior   []point   `json:"exterior"`
	Holes      [][]point `json:"holes,omitempty"`
	Resolution int       `json:"resolution"`
}

type fillResponse struct {
	Resolution int      `json:"resolution"`
	Cells      []string `json:"cells"`
	Count      int      `json:"count"`
}

type compactRequest struct {
	Cells []string `json:"cells"`
}

type uncompactRequest struct {
	Cells      []string `json:"cells"`
	Resolution int      `json:"resolution"`
}

type resStats struct {
	Resolution      int     `json:"resolution"`
	Cells           int64   `json:"cells"`
	Pentagons       int     `json:"pentagons"`
	HexAreaAvgKm2   float64 `json:"hex_area_avg_km2"`
	HexAreaAvgM2    float64 `json:"hex_area_avg_m2"`
	EdgeLengthAvgKm float64 `json:"edge_length_avg_km"`
	EdgeLengthAvgM  float64 `json:"edge_length_avg_m"`
	ClassIII        bool    `json:"class_iii"`
}

func cellsToStrings(cells []hexgrid.Cell) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.String()
	}
	return out
}

func parseCells(raw []string) ([]hexgrid.Cell, error) {
	cells := make([]hexgrid.Cell, len(raw))
	for i, s := range raw {
		c, err := hexgrid.ParseCell(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", hexgrid.ErrInvalidCell, s)
		}
		cells[i] = c
	}
	return cells, nil
}

func (r fillRequest) polygon() hexgrid.Polygon {
	p := hexgrid.Polygon{Exterior: loopFromPoints(r.Exterior)}
	for _, hole := range r.Holes {
		p.Holes = append(p.Holes, loopFromPoints(hole))
	}
	return p
}

func loopFromPoints(pts []point) hexgrid.Loop {
	loop := make(hexgrid.Loop, len(pts))
	for i, pt := range pts {
		loop[i] = pt.latLng()
	}
	return loop
}
