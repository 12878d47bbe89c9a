package hexgrid

import (
	"errors"
	"math"
	"testing"
)

// loopFromRads builds a degree loop from radian vertex pairs.
func loopFromRads(verts [][2]float64) Loop {
	loop := make(Loop, len(verts))
	for i, v := range verts {
		loop[i] = LatLng{Lat: v[0] * 180 / math.Pi, Lng: v[1] * 180 / math.Pi}
	}
	return loop
}

func sfLoop() Loop {
	return loopFromRads([][2]float64{
		{0.659966917655, -2.1364398519396},
		{0.6595011102219, -2.1359434279405},
		{0.6583348114025, -2.1354884206045},
		{0.6581220034068, -2.1382437718946},
		{0.6594479998527, -2.1384597563896},
		{0.6599990002976, -2.1376771158464},
	})
}

func sfHoleLoop() Loop {
	return loopFromRads([][2]float64{
		{0.6595072188743, -2.1371053983433},
		{0.6591482046471, -2.1373141048153},
		{0.6592295020837, -2.1365222838402},
	})
}

func TestPolygonToCells(t *testing.T) {
	cells, err := PolygonToCells(Polygon{Exterior: sfLoop()}, 9)
	if err != nil {
		t.Fatal(err)
	}
	if len(cells) != 1253 {
		t.Errorf("cell count = %d, want 1253", len(cells))
	}
	seen := map[Cell]bool{}
	for i, c := range cells {
		if !c.IsValid() {
			t.Fatalf("invalid cell %v in fill", c)
		}
		if c.Resolution() != 9 {
			t.Errorf("cell %v resolution = %d", c, c.Resolution())
		}
		if seen[c] {
			t.Errorf("duplicate cell %v", c)
		}
		seen[c] = true
		if i > 0 && cells[i-1] >= c {
			t.Errorf("cells not in ascending order at %d", i)
		}
	}
}

func TestPolygonToCellsHole(t *testing.T) {
	full, err := PolygonToCells(Polygon{Exterior: sfLoop()}, 9)
	if err != nil {
		t.Fatal(err)
	}
	holed, err := PolygonToCells(Polygon{Exterior: sfLoop(), Holes: []Loop{sfHoleLoop()}}, 9)
	if err != nil {
		t.Fatal(err)
	}
	if len(holed) != 1214 {
		t.Errorf("holed cell count = %d, want 1214", len(holed))
	}

	// The hole as its own polygon claims exactly the difference.
	holeOnly, err := PolygonToCells(Polygon{Exterior: sfHoleLoop()}, 9)
	if err != nil {
		t.Fatal(err)
	}
	if len(holed)+len(holeOnly) != len(full) {
		t.Errorf("partition mismatch: %d + %d != %d", len(holed), len(holeOnly), len(full))
	}
	fullSet := cellSet(full)
	holedSet := cellSet(holed)
	for _, c := range holed {
		if !fullSet[c] {
			t.Errorf("holed cell %v missing from full fill", c)
		}
	}
	for _, c := range holeOnly {
		if !fullSet[c] {
			t.Errorf("hole cell %v missing from full fill", c)
		}
		if holedSet[c] {
			t.Errorf("cell %v claimed by both hole and holed polygon", c)
		}
	}
}

func TestPolygonToCellsExactCell(t *testing.T) {
	origin, err := LatLngToCell(LatLng{Lat: 1 * 180 / math.Pi, Lng: 2 * 180 / math.Pi}, 9)
	if err != nil {
		t.Fatal(err)
	}
	boundary, err := CellToBoundary(origin)
	if err != nil {
		t.Fatal(err)
	}
	cells, err := PolygonToCells(Polygon{Exterior: Loop(boundary)}, 9)
	if err != nil {
		t.Fatal(err)
	}
	if len(cells) != 1 || cells[0] != origin {
		t.Errorf("fill of own boundary = %v, want [%v]", cells, origin)
	}
}

func TestPolygonToCellsPentagon(t *testing.T) {
	pent := mustPentagonChild(t, 24, 9)
	center, err := CellToLatLng(pent)
	if err != nil {
		t.Fatal(err)
	}
	half := 0.001
	loop := Loop{
		{Lat: center.Lat - half, Lng: center.Lng - half},
		{Lat: center.Lat - half, Lng: center.Lng + half},
		{Lat: center.Lat + half, Lng: center.Lng + half},
		{Lat: center.Lat + half, Lng: center.Lng - half},
	}
	cells, err := PolygonToCells(Polygon{Exterior: loop}, 9)
	if err != nil {
		t.Fatal(err)
	}
	if len(cells) != 1 || cells[0] != pent {
		t.Errorf("pentagon fill = %v, want [%v]", cells, pent)
	}
}

func TestPolygonToCellsTransmeridian(t *testing.T) {
	prime := loopFromRads([][2]float64{
		{0.01, 0.01}, {0.01, -0.01}, {-0.01, -0.01}, {-0.01, 0.01},
	})
	trans := loopFromRads([][2]float64{
		{0.01, -math.Pi + 0.01}, {0.01, math.Pi - 0.01},
		{-0.01, math.Pi - 0.01}, {-0.01, -math.Pi + 0.01},
	})

	primeCells, err := PolygonToCells(Polygon{Exterior: prime}, 7)
	if err != nil {
		t.Fatal(err)
	}
	if len(primeCells) != 4228 {
		t.Errorf("prime meridian count = %d, want 4228", len(primeCells))
	}

	transCells, err := PolygonToCells(Polygon{Exterior: trans}, 7)
	if err != nil {
		t.Fatal(err)
	}
	if len(transCells) != 4238 {
		t.Errorf("transmeridian count = %d, want 4238", len(transCells))
	}
	for _, c := range transCells {
		center, err := CellToLatLng(c)
		if err != nil {
			t.Fatal(err)
		}
		if center.Lng < 170 && center.Lng > -170 {
			t.Errorf("cell %v center lng %v far from antimeridian", c, center.Lng)
		}
	}
}

func TestPolygonToCellsDegenerate(t *testing.T) {
	cells, err := PolygonToCells(Polygon{}, 9)
	if err != nil {
		t.Fatalf("empty polygon error = %v", err)
	}
	if len(cells) != 0 {
		t.Errorf("empty polygon cells = %v", cells)
	}

	if _, err := PolygonToCells(Polygon{Exterior: sfLoop()}, 16); !errors.Is(err, ErrInvalidResolution) {
		t.Errorf("bad resolution error = %v", err)
	}
	bad := Loop{{Lat: math.NaN(), Lng: 0}, {Lat: 1, Lng: 1}, {Lat: 0, Lng: 1}}
	if _, err := PolygonToCells(Polygon{Exterior: bad}, 5); !errors.Is(err, ErrInvalidPolygon) {
		t.Errorf("non-finite vertex error = %v", err)
	}
}

func TestBBoxFromGeoLoop(t *testing.T) {
	loop, err := sfLoop().toGeoLoop()
	if err != nil {
		t.Fatal(err)
	}
	box := bboxFromGeoLoop(loop)
	if box.isTransmeridian() {
		t.Error("San Francisco box marked transmeridian")
	}
	for _, v := range loop {
		if !box.contains(v) {
			t.Errorf("box excludes its own vertex %+v", v)
		}
	}

	trans, err := loopFromRads([][2]float64{
		{0.01, -math.Pi + 0.01}, {0.01, math.Pi - 0.01},
		{-0.01, math.Pi - 0.01}, {-0.01, -math.Pi + 0.01},
	}).toGeoLoop()
	if err != nil {
		t.Fatal(err)
	}
	tbox := bboxFromGeoLoop(trans)
	if !tbox.isTransmeridian() {
		t.Error("antimeridian box not marked transmeridian")
	}
	if !tbox.contains(geoCoord{lat: 0, lng: math.Pi - 0.001}) {
		t.Error("box excludes point east of antimeridian")
	}
	if !tbox.contains(geoCoord{lat: 0, lng: -math.Pi + 0.001}) {
		t.Error("box excludes point west of antimeridian")
	}
	if tbox.contains(geoCoord{lat: 0, lng: 0}) {
		t.Error("box includes prime meridian point")
	}
}

func TestPointInsideGeoLoop(t *testing.T) {
	square := geoLoop{
		{lat: -0.1, lng: -0.1},
		{lat: -0.1, lng: 0.1},
		{lat: 0.1, lng: 0.1},
		{lat: 0.1, lng: -0.1},
	}
	box := bboxFromGeoLoop(square)

	inside := []geoCoord{{0, 0}, {0.05, -0.05}, {-0.099, 0.099}}
	for _, g := range inside {
		if !pointInsideGeoLoop(square, box, g) {
			t.Errorf("point %+v not inside", g)
		}
	}
	outside := []geoCoord{{0.2, 0}, {0, 0.2}, {-0.2, -0.2}}
	for _, g := range outside {
		if pointInsideGeoLoop(square, box, g) {
			t.Errorf("point %+v inside", g)
		}
	}

	// Two squares sharing an edge claim a point on it exactly once.
	east := geoLoop{
		{lat: -0.1, lng: 0.1},
		{lat: -0.1, lng: 0.3},
		{lat: 0.1, lng: 0.3},
		{lat: 0.1, lng: 0.1},
	}
	eastBox := bboxFromGeoLoop(east)
	onEdge := geoCoord{lat: 0.0123, lng: 0.1}
	inWest := pointInsideGeoLoop(square, box, onEdge)
	inEast := pointInsideGeoLoop(east, eastBox, onEdge)
	if inWest == inEast {
		t.Errorf("shared edge point: west %v, east %v", inWest, inEast)
	}
}
