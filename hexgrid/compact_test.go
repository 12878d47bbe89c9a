package hexgrid

import (
	"errors"
	"testing"
)

func TestCompactCellsMergesFullSet(t *testing.T) {
	parent, err := LatLngToCell(LatLng{Lat: 37.77, Lng: -122.41}, 4)
	if err != nil {
		t.Fatal(err)
	}
	for _, childRes := range []int{5, 6} {
		children, err := parent.Children(childRes)
		if err != nil {
			t.Fatal(err)
		}
		compacted, err := CompactCells(children)
		if err != nil {
			t.Fatal(err)
		}
		if len(compacted) != 1 || compacted[0] != parent {
			t.Errorf("compact of res %d children = %v, want [%v]", childRes, compacted, parent)
		}
	}
}

func TestCompactCellsPartialSet(t *testing.T) {
	parent, _ := LatLngToCell(LatLng{Lat: 37.77, Lng: -122.41}, 4)
	children, err := parent.Children(5)
	if err != nil {
		t.Fatal(err)
	}
	partial := children[1:]
	compacted, err := CompactCells(partial)
	if err != nil {
		t.Fatal(err)
	}
	if len(compacted) != len(partial) {
		t.Fatalf("compact of partial set = %d cells, want %d", len(compacted), len(partial))
	}
	want := cellSet(partial)
	for _, c := range compacted {
		if !want[c] {
			t.Errorf("unexpected cell %v in compact output", c)
		}
	}
}

func TestCompactCellsPentagon(t *testing.T) {
	pent := mustPentagonChild(t, 38, 3)
	children, err := pent.Children(4)
	if err != nil {
		t.Fatal(err)
	}
	if len(children) != 6 {
		t.Fatalf("pentagon child count = %d", len(children))
	}
	compacted, err := CompactCells(children)
	if err != nil {
		t.Fatal(err)
	}
	if len(compacted) != 1 || compacted[0] != pent {
		t.Errorf("pentagon compact = %v, want [%v]", compacted, pent)
	}
}

func TestCompactCellsCascades(t *testing.T) {
	parent, _ := LatLngToCell(LatLng{Lat: 37.77, Lng: -122.41}, 4)
	children, err := parent.Children(5)
	if err != nil {
		t.Fatal(err)
	}

	// Replace one child with its own children; the merge has to cascade
	// through two resolutions.
	mixed := make([]Cell, 0, 6+7)
	mixed = append(mixed, children[:6]...)
	grandchildren, err := children[6].Children(6)
	if err != nil {
		t.Fatal(err)
	}
	mixed = append(mixed, grandchildren...)

	compacted, err := CompactCells(mixed)
	if err != nil {
		t.Fatal(err)
	}
	if len(compacted) != 1 || compacted[0] != parent {
		t.Errorf("cascaded compact = %v, want [%v]", compacted, parent)
	}
}

func TestCompactCellsRejectsDuplicates(t *testing.T) {
	c, _ := LatLngToCell(LatLng{Lat: 37.77, Lng: -122.41}, 6)
	if _, err := CompactCells([]Cell{c, c}); !errors.Is(err, ErrDuplicateCell) {
		t.Errorf("duplicate error = %v", err)
	}

	// A cell plus its ancestor covers the same area twice.
	parent, _ := c.Parent(3)
	if _, err := CompactCells([]Cell{c, parent}); !errors.Is(err, ErrDuplicateCell) {
		t.Errorf("overlap error = %v", err)
	}
	if _, err := CompactCells([]Cell{parent, c}); !errors.Is(err, ErrDuplicateCell) {
		t.Errorf("overlap error, coarse first = %v", err)
	}
}

func TestCompactCellsEdgeInputs(t *testing.T) {
	out, err := CompactCells(nil)
	if err != nil || len(out) != 0 {
		t.Errorf("empty input = %v, %v", out, err)
	}
	if _, err := CompactCells([]Cell{0}); !errors.Is(err, ErrInvalidCell) {
		t.Errorf("invalid cell error = %v", err)
	}

	// Base cells have no parent to merge into.
	res0 := []Cell{res0Cell(3), res0Cell(1), res0Cell(2)}
	out, err = CompactCells(res0)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 || out[0] != res0Cell(1) || out[1] != res0Cell(2) || out[2] != res0Cell(3) {
		t.Errorf("res 0 compact = %v", out)
	}
}

func TestUncompactCells(t *testing.T) {
	parent, _ := LatLngToCell(LatLng{Lat: 48.86, Lng: 2.35}, 5)
	children, err := parent.Children(7)
	if err != nil {
		t.Fatal(err)
	}
	out, err := UncompactCells([]Cell{parent}, 7)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(children) {
		t.Fatalf("uncompact size = %d, want %d", len(out), len(children))
	}
	want := cellSet(children)
	for _, c := range out {
		if !want[c] {
			t.Errorf("unexpected cell %v", c)
		}
	}

	// Same resolution passes through.
	same, err := UncompactCells([]Cell{parent}, 5)
	if err != nil || len(same) != 1 || same[0] != parent {
		t.Errorf("pass through = %v, %v", same, err)
	}

	if _, err := UncompactCells([]Cell{parent}, 4); !errors.Is(err, ErrResolutionMismatch) {
		t.Errorf("finer than target error = %v", err)
	}
	if _, err := UncompactCells([]Cell{parent}, 16); !errors.Is(err, ErrInvalidResolution) {
		t.Errorf("bad resolution error = %v", err)
	}
	if _, err := UncompactCells([]Cell{0}, 7); !errors.Is(err, ErrInvalidCell) {
		t.Errorf("invalid cell error = %v", err)
	}
}

func TestUncompactCellsPentagonCount(t *testing.T) {
	pent := mustPentagonChild(t, 117, 2)
	out, err := UncompactCells([]Cell{pent}, 4)
	if err != nil {
		t.Fatal(err)
	}
	size, err := pent.ChildrenSize(4)
	if err != nil {
		t.Fatal(err)
	}
	if int64(len(out)) != size {
		t.Errorf("pentagon uncompact size = %d, want %d", len(out), size)
	}
}

func TestCompactUncompactRoundTrip(t *testing.T) {
	origin, _ := LatLngToCell(LatLng{Lat: -33.87, Lng: 151.21}, 5)
	region, err := GridDisk(origin, 4)
	if err != nil {
		t.Fatal(err)
	}
	compacted, err := CompactCells(region)
	if err != nil {
		t.Fatal(err)
	}
	if len(compacted) >= len(region) {
		t.Errorf("compaction did not shrink: %d -> %d", len(region), len(compacted))
	}
	expanded, err := UncompactCells(compacted, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(expanded) != len(region) {
		t.Fatalf("round trip size = %d, want %d", len(expanded), len(region))
	}
	want := cellSet(region)
	for _, c := range expanded {
		if !want[c] {
			t.Errorf("round trip gained cell %v", c)
		}
	}
}
