// Package geojson converts grid cells and directed edges to and from GeoJSON
// geometries backed by the orb library. GeoJSON positions are ordered
// longitude first; the engine's LatLng is latitude first. The conversions here
// are the only place that swap happens.
package geojson

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb"
	orbjson "github.com/paulmach/orb/geojson"

	"github.com/signalsfoundry/hexsphere/hexgrid"
)

// CellPolygon returns the closed polygon tracing a cell's boundary.
func CellPolygon(c hexgrid.Cell) (orb.Polygon, error) {
	boundary, err := hexgrid.CellToBoundary(c)
	if err != nil {
		return nil, err
	}

	ring := make(orb.Ring, 0, len(boundary)+1)
	for _, vertex := range boundary {
		ring = append(ring, orb.Point{vertex.Lng, vertex.Lat})
	}
	if !ringClosed(ring) {
		ring = append(ring, ring[0])
	}

	return orb.Polygon{ring}, nil
}

// CellFeature wraps a cell's polygon in a feature carrying the cell
// identifier, resolution, and pentagon flag as properties.
func CellFeature(c hexgrid.Cell) (*orbjson.Feature, error) {
	poly, err := CellPolygon(c)
	if err != nil {
		return nil, err
	}

	f := orbjson.NewFeature(poly)
	f.ID = c.String()
	f.Properties = orbjson.Properties{
		"cell":       c.String(),
		"resolution": c.Resolution(),
		"pentagon":   c.IsPentagon(),
	}
	return f, nil
}

// CellCollection builds a feature collection from a set of cells.
func CellCollection(cells []hexgrid.Cell) (*orbjson.FeatureCollection, error) {
	fc := orbjson.NewFeatureCollection()
	for _, c := range cells {
		f, err := CellFeature(c)
		if err != nil {
			return nil, err
		}
		fc.Append(f)
	}
	return fc, nil
}

// EdgeFeature returns the directed edge's portion of the shared cell boundary
// as a line string feature.
func EdgeFeature(e hexgrid.DirectedEdge) (*orbjson.Feature, error) {
	boundary, err := e.Boundary()
	if err != nil {
		return nil, err
	}
	origin, err := e.Origin()
	if err != nil {
		return nil, err
	}
	destination, err := e.Destination()
	if err != nil {
		return nil, err
	}
	lengthKm, err := hexgrid.EdgeLengthKm(e)
	if err != nil {
		return nil, err
	}

	ls := make(orb.LineString, len(boundary))
	for i, vertex := range boundary {
		ls[i] = orb.Point{vertex.Lng, vertex.Lat}
	}

	f := orbjson.NewFeature(ls)
	f.ID = e.String()
	f.Properties = orbjson.Properties{
		"edge":        e.String(),
		"origin":      origin.String(),
		"destination": destination.String(),
		"length_km":   lengthKm,
	}
	return f, nil
}

// LoopFromRing converts an orb ring into an engine loop, dropping the closing
// vertex when present.
func LoopFromRing(r orb.Ring) hexgrid.Loop {
	n := len(r)
	if n > 1 && r[0] == r[n-1] {
		n--
	}
	loop := make(hexgrid.Loop, n)
	for i := 0; i < n; i++ {
		loop[i] = hexgrid.LatLng{Lat: r[i].Lat(), Lng: r[i].Lon()}
	}
	return loop
}

// PolygonToHex converts an orb polygon into the engine's polygon form, with
// the first ring as exterior and the rest as holes.
func PolygonToHex(p orb.Polygon) hexgrid.Polygon {
	var out hexgrid.Polygon
	if len(p) > 0 {
		out.Exterior = LoopFromRing(p[0])
	}
	for _, hole := range p[1:] {
		out.Holes = append(out.Holes, LoopFromRing(hole))
	}
	return out
}

// FillGeometry rasterises a polygonal geometry into the cells whose centers it
// contains at the given resolution. Multi-polygons are filled per part and
// merged; other geometry types are rejected.
func FillGeometry(g orb.Geometry, res int) ([]hexgrid.Cell, error) {
	switch geom := g.(type) {
	case orb.Polygon:
		return hexgrid.PolygonToCells(PolygonToHex(geom), res)
	case orb.MultiPolygon:
		seen := make(map[hexgrid.Cell]bool)
		var out []hexgrid.Cell
		for _, poly := range geom {
			cells, err := hexgrid.PolygonToCells(PolygonToHex(poly), res)
			if err != nil {
				return nil, err
			}
			for _, c := range cells {
				if !seen[c] {
					seen[c] = true
					out = append(out, c)
				}
			}
		}
		sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
		return out, nil
	default:
		return nil, fmt.Errorf("%w: unsupported geometry type %s", hexgrid.ErrInvalidPolygon, g.GeoJSONType())
	}
}

// GeometryFromJSON decodes raw GeoJSON into a geometry, accepting either a
// Feature or a bare geometry object.
func GeometryFromJSON(data []byte) (orb.Geometry, error) {
	if f, err := orbjson.UnmarshalFeature(data); err == nil && f.Geometry != nil {
		return f.Geometry, nil
	}
	g, err := orbjson.UnmarshalGeometry(data)
	if err != nil {
		return nil, fmt.Errorf("%w: body is not a GeoJSON feature or geometry", hexgrid.ErrInvalidPolygon)
	}
	return g.Geometry(), nil
}

// VertexCount returns the total number of ring vertices in a polygonal
// geometry. Non-polygonal geometries count as zero.
func VertexCount(g orb.Geometry) int {
	switch geom := g.(type) {
	case orb.Polygon:
		n := 0
		for _, ring := range geom {
			n += len(ring)
		}
		return n
	case orb.MultiPolygon:
		n := 0
		for _, poly := range geom {
			n += VertexCount(poly)
		}
		return n
	default:
		return 0
	}
}

func ringClosed(ring orb.Ring) bool {
	if len(ring) < 2 {
		return false
	}
	first := ring[0]
	last := ring[len(ring)-1]
	return first[0] == last[0] && first[1] == last[1]
}
