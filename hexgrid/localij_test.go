package hexgrid

import (
	"errors"
	"testing"
)

func TestLocalIJRoundTrip(t *testing.T) {
	origin, err := LatLngToCell(LatLng{Lat: 37.77, Lng: -122.41}, 9)
	if err != nil {
		t.Fatal(err)
	}
	disk, err := GridDisk(origin, 3)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range disk {
		ij, err := CellToLocalIJ(origin, c)
		if err != nil {
			t.Fatalf("CellToLocalIJ(%v, %v): %v", origin, c, err)
		}
		back, err := LocalIJToCell(origin, ij)
		if err != nil {
			t.Fatalf("LocalIJToCell(%v, %+v): %v", origin, ij, err)
		}
		if back != c {
			t.Errorf("round trip %v -> %+v -> %v", c, ij, back)
		}
	}
}

func TestLocalIJUnitOffsets(t *testing.T) {
	origin, _ := LatLngToCell(LatLng{Lat: 48.86, Lng: 2.35}, 8)
	ij0, err := CellToLocalIJ(origin, origin)
	if err != nil {
		t.Fatal(err)
	}

	// The six unit ij offsets address exactly the six neighbors.
	offsets := []CoordIJ{{1, 0}, {0, 1}, {1, 1}, {-1, 0}, {0, -1}, {-1, -1}}
	for _, off := range offsets {
		n, err := LocalIJToCell(origin, CoordIJ{I: ij0.I + off.I, J: ij0.J + off.J})
		if err != nil {
			t.Fatalf("offset %+v: %v", off, err)
		}
		d, err := GridDistance(origin, n)
		if err != nil {
			t.Fatal(err)
		}
		if d != 1 {
			t.Errorf("offset %+v: distance %d, want 1", off, d)
		}
	}
}

func TestGridDistanceMatchesRings(t *testing.T) {
	origin, _ := LatLngToCell(LatLng{Lat: 37.77, Lng: -122.41}, 9)
	rings, err := GridDiskDistances(origin, 3)
	if err != nil {
		t.Fatal(err)
	}
	for d, ring := range rings {
		for _, c := range ring {
			got, err := GridDistance(origin, c)
			if err != nil {
				t.Fatalf("GridDistance(%v, %v): %v", origin, c, err)
			}
			if got != d {
				t.Errorf("GridDistance(%v, %v) = %d, want %d", origin, c, got, d)
			}
			rev, err := GridDistance(c, origin)
			if err != nil {
				t.Fatal(err)
			}
			if rev != d {
				t.Errorf("reverse distance = %d, want %d", rev, d)
			}
		}
	}
}

func TestGridDistanceErrors(t *testing.T) {
	a, _ := LatLngToCell(LatLng{Lat: 37.77, Lng: -122.41}, 9)
	b, _ := a.Parent(8)
	if _, err := GridDistance(a, b); !errors.Is(err, ErrResolutionMismatch) {
		t.Errorf("cross resolution error = %v", err)
	}

	// Opposite sides of the globe cannot share a local frame.
	if _, err := GridDistance(res0Cell(0), res0Cell(117)); !errors.Is(err, ErrCellsTooFar) {
		t.Errorf("far cells error = %v", err)
	}

	if _, err := GridDistance(Cell(0), a); !errors.Is(err, ErrInvalidCell) {
		t.Errorf("invalid cell error = %v", err)
	}
}

func TestGridDistancePentagonNeighbors(t *testing.T) {
	pent := mustPentagonChild(t, 14, 2)
	ring, err := GridRing(pent, 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range ring {
		d, err := GridDistance(pent, n)
		if err != nil {
			t.Fatalf("GridDistance(pentagon, %v): %v", n, err)
		}
		if d != 1 {
			t.Errorf("pentagon to neighbor distance = %d", d)
		}
		rev, err := GridDistance(n, pent)
		if err != nil {
			t.Fatal(err)
		}
		if rev != 1 {
			t.Errorf("neighbor to pentagon distance = %d", rev)
		}
	}
}

func TestLocalIJPentagonDistortion(t *testing.T) {
	// An off-center cell on a pentagon base cell cannot address cells
	// across specific warped directions.
	pentKids, err := res0Cell(4).Children(1)
	if err != nil {
		t.Fatal(err)
	}
	origin := pentKids[1] // leading digit j
	if origin.digit(1) != jAxesDigit {
		t.Fatalf("expected j child, got digit %d", origin.digit(1))
	}
	target, err := res0Cell(3).CenterChild(1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := CellToLocalIJ(origin, target); !errors.Is(err, ErrPentagonDistortion) {
		t.Errorf("warped direction error = %v", err)
	}

	// From the pentagon's center child every neighborhood cell resolves
	// and round trips.
	center := mustPentagonChild(t, 4, 1)
	disk, err := GridDisk(center, 2)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range disk {
		ij, err := CellToLocalIJ(center, c)
		if err != nil {
			t.Fatalf("CellToLocalIJ(pentagon, %v): %v", c, err)
		}
		back, err := LocalIJToCell(center, ij)
		if err != nil || back != c {
			t.Errorf("round trip %v -> %+v -> %v, %v", c, ij, back, err)
		}
	}
}

func TestGridPath(t *testing.T) {
	start, _ := LatLngToCell(LatLng{Lat: 37.77, Lng: -122.41}, 7)
	endLL := LatLng{Lat: 37.9, Lng: -122.2}
	end, _ := LatLngToCell(endLL, 7)

	path, err := GridPath(start, end)
	if err != nil {
		t.Fatal(err)
	}
	distance, err := GridDistance(start, end)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != distance+1 {
		t.Fatalf("path length %d, distance %d", len(path), distance)
	}
	if path[0] != start || path[len(path)-1] != end {
		t.Errorf("path endpoints %v..%v", path[0], path[len(path)-1])
	}
	for i := 1; i < len(path); i++ {
		ok, err := AreNeighbors(path[i-1], path[i])
		if err != nil || !ok {
			t.Errorf("path break between %v and %v: %v", path[i-1], path[i], err)
		}
	}
}

func TestGridPathIdentity(t *testing.T) {
	c, _ := LatLngToCell(LatLng{Lat: -33.87, Lng: 151.21}, 6)
	path, err := GridPath(c, c)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 1 || path[0] != c {
		t.Errorf("self path = %v", path)
	}
}
