package geojson_test

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"

	"github.com/signalsfoundry/hexsphere/geojson"
	"github.com/signalsfoundry/hexsphere/hexgrid"
)

func mustCell(t *testing.T, s string) hexgrid.Cell {
	t.Helper()
	c, err := hexgrid.ParseCell(s)
	if err != nil {
		t.Fatalf("ParseCell(%q): %v", s, err)
	}
	return c
}

func TestCellPolygon(t *testing.T) {
	c := mustCell(t, "8928308280fffff")
	poly, err := geojson.CellPolygon(c)
	if err != nil {
		t.Fatal(err)
	}
	if len(poly) != 1 {
		t.Fatalf("polygon has %d rings", len(poly))
	}

	ring := poly[0]
	if len(ring) != 7 {
		t.Fatalf("hexagon ring has %d positions, want 7", len(ring))
	}
	if ring[0] != ring[6] {
		t.Error("ring is not closed")
	}

	// Positions are longitude first.
	boundary, err := hexgrid.CellToBoundary(c)
	if err != nil {
		t.Fatal(err)
	}
	for i, vertex := range boundary {
		if ring[i][0] != vertex.Lng || ring[i][1] != vertex.Lat {
			t.Fatalf("position %d = %v, want [%v %v]", i, ring[i], vertex.Lng, vertex.Lat)
		}
	}
}

func TestCellFeature(t *testing.T) {
	c := mustCell(t, "8928308280fffff")
	f, err := geojson.CellFeature(c)
	if err != nil {
		t.Fatal(err)
	}
	if f.ID != c.String() {
		t.Errorf("feature ID = %v", f.ID)
	}
	if f.Properties["cell"] != c.String() {
		t.Errorf("properties.cell = %v", f.Properties["cell"])
	}
	if f.Properties["resolution"] != 9 {
		t.Errorf("properties.resolution = %v", f.Properties["resolution"])
	}
	if f.Properties["pentagon"] != false {
		t.Errorf("properties.pentagon = %v", f.Properties["pentagon"])
	}
	if _, ok := f.Geometry.(orb.Polygon); !ok {
		t.Errorf("geometry type = %T", f.Geometry)
	}
}

func TestCellCollection(t *testing.T) {
	origin := mustCell(t, "8928308280fffff")
	cells, err := hexgrid.GridDisk(origin, 1)
	if err != nil {
		t.Fatal(err)
	}

	fc, err := geojson.CellCollection(cells)
	if err != nil {
		t.Fatal(err)
	}
	if len(fc.Features) != len(cells) {
		t.Fatalf("collection has %d features, want %d", len(fc.Features), len(cells))
	}
	for i, f := range fc.Features {
		if f.ID != cells[i].String() {
			t.Errorf("feature %d ID = %v, want %s", i, f.ID, cells[i])
		}
	}
}

func TestEdgeFeature(t *testing.T) {
	origin := mustCell(t, "8928308280fffff")
	edges, err := origin.DirectedEdges()
	if err != nil {
		t.Fatal(err)
	}

	f, err := geojson.EdgeFeature(edges[0])
	if err != nil {
		t.Fatal(err)
	}
	ls, ok := f.Geometry.(orb.LineString)
	if !ok {
		t.Fatalf("geometry type = %T", f.Geometry)
	}
	if len(ls) < 2 {
		t.Errorf("line string has %d positions", len(ls))
	}
	if f.Properties["origin"] != origin.String() {
		t.Errorf("properties.origin = %v", f.Properties["origin"])
	}
	if km, ok := f.Properties["length_km"].(float64); !ok || km <= 0 {
		t.Errorf("properties.length_km = %v", f.Properties["length_km"])
	}
}

func TestLoopFromRingDropsClosingVertex(t *testing.T) {
	c := mustCell(t, "8928308280fffff")
	poly, err := geojson.CellPolygon(c)
	if err != nil {
		t.Fatal(err)
	}

	loop := geojson.LoopFromRing(poly[0])
	boundary, err := hexgrid.CellToBoundary(c)
	if err != nil {
		t.Fatal(err)
	}
	if len(loop) != len(boundary) {
		t.Fatalf("loop has %d vertices, want %d", len(loop), len(boundary))
	}
	for i := range loop {
		if loop[i] != boundary[i] {
			t.Errorf("vertex %d = %v, want %v", i, loop[i], boundary[i])
		}
	}

	// An open ring passes through unchanged.
	open := orb.Ring{{0, 0}, {1, 0}, {1, 1}}
	if got := geojson.LoopFromRing(open); len(got) != 3 {
		t.Errorf("open ring loop has %d vertices", len(got))
	}
}

func TestPolygonToHex(t *testing.T) {
	p := orb.Polygon{
		{{-122.43, 37.80}, {-122.40, 37.80}, {-122.40, 37.77}, {-122.43, 37.77}, {-122.43, 37.80}},
		{{-122.42, 37.79}, {-122.41, 37.79}, {-122.41, 37.78}, {-122.42, 37.78}, {-122.42, 37.79}},
	}
	hexPoly := geojson.PolygonToHex(p)
	if len(hexPoly.Exterior) != 4 {
		t.Errorf("exterior has %d vertices", len(hexPoly.Exterior))
	}
	if len(hexPoly.Holes) != 1 || len(hexPoly.Holes[0]) != 4 {
		t.Fatalf("holes = %v", hexPoly.Holes)
	}
	if hexPoly.Exterior[0] != (hexgrid.LatLng{Lat: 37.80, Lng: -122.43}) {
		t.Errorf("first exterior vertex = %v", hexPoly.Exterior[0])
	}
}

func TestFillGeometryPolygon(t *testing.T) {
	p := orb.Polygon{
		{{-122.425, 37.790}, {-122.405, 37.790}, {-122.415, 37.775}, {-122.425, 37.790}},
	}
	got, err := geojson.FillGeometry(p, 9)
	if err != nil {
		t.Fatal(err)
	}
	want, err := hexgrid.PolygonToCells(geojson.PolygonToHex(p), 9)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(want) {
		t.Fatalf("fill produced %d cells, engine produced %d", len(got), len(want))
	}
}

func TestFillGeometryMultiPolygon(t *testing.T) {
	west := orb.Polygon{
		{{-122.425, 37.790}, {-122.415, 37.790}, {-122.420, 37.783}, {-122.425, 37.790}},
	}
	east := orb.Polygon{
		{{-122.405, 37.790}, {-122.395, 37.790}, {-122.400, 37.783}, {-122.405, 37.790}},
	}
	mp := orb.MultiPolygon{west, east}

	got, err := geojson.FillGeometry(mp, 9)
	if err != nil {
		t.Fatal(err)
	}
	wc, err := geojson.FillGeometry(west, 9)
	if err != nil {
		t.Fatal(err)
	}
	ec, err := geojson.FillGeometry(east, 9)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) > len(wc)+len(ec) {
		t.Errorf("merged fill has %d cells, parts have %d and %d", len(got), len(wc), len(ec))
	}

	seen := make(map[hexgrid.Cell]bool)
	for i, c := range got {
		if seen[c] {
			t.Fatalf("duplicate cell %v in merged fill", c)
		}
		seen[c] = true
		if i > 0 && got[i-1] >= c {
			t.Fatal("merged fill is not sorted")
		}
	}
}

func TestFillGeometryRejectsUnsupported(t *testing.T) {
	_, err := geojson.FillGeometry(orb.Point{-122.4, 37.8}, 9)
	if !errors.Is(err, hexgrid.ErrInvalidPolygon) {
		t.Errorf("err = %v, want ErrInvalidPolygon", err)
	}
	_, err = geojson.FillGeometry(orb.LineString{{0, 0}, {1, 1}}, 9)
	if !errors.Is(err, hexgrid.ErrInvalidPolygon) {
		t.Errorf("err = %v, want ErrInvalidPolygon", err)
	}
}

func TestGeometryFromJSON(t *testing.T) {
	feature := []byte(`{
		"type": "Feature",
		"geometry": {
			"type": "Polygon",
			"coordinates": [[[-122.425, 37.790], [-122.405, 37.790], [-122.415, 37.775], [-122.425, 37.790]]]
		},
		"properties": {}
	}`)
	g, err := geojson.GeometryFromJSON(feature)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := g.(orb.Polygon); !ok {
		t.Errorf("feature geometry type = %T", g)
	}

	bare := []byte(`{"type": "Polygon", "coordinates": [[[-122.425, 37.790], [-122.405, 37.790], [-122.415, 37.775], [-122.425, 37.790]]]}`)
	g, err = geojson.GeometryFromJSON(bare)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := g.(orb.Polygon); !ok {
		t.Errorf("bare geometry type = %T", g)
	}

	if _, err := geojson.GeometryFromJSON([]byte(`not json`)); !errors.Is(err, hexgrid.ErrInvalidPolygon) {
		t.Errorf("garbage err = %v, want ErrInvalidPolygon", err)
	}
}

func TestVertexCount(t *testing.T) {
	poly := orb.Polygon{
		{{0, 0}, {1, 0}, {1, 1}, {0, 0}},
		{{0.2, 0.2}, {0.4, 0.2}, {0.3, 0.3}, {0.2, 0.2}},
	}
	if got := geojson.VertexCount(poly); got != 8 {
		t.Errorf("polygon vertex count = %d, want 8", got)
	}
	if got := geojson.VertexCount(orb.MultiPolygon{poly, poly}); got != 16 {
		t.Errorf("multipolygon vertex count = %d, want 16", got)
	}
	if got := geojson.VertexCount(orb.Point{0, 0}); got != 0 {
		t.Errorf("point vertex count = %d, want 0", got)
	}
}
