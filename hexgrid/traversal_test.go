package hexgrid

import "testing"

func cellSet(cells []Cell) map[Cell]bool {
	set := make(map[Cell]bool, len(cells))
	for _, c := range cells {
		set[c] = true
	}
	return set
}

func TestGridDiskHexagon(t *testing.T) {
	origin, err := LatLngToCell(LatLng{Lat: 37.77, Lng: -122.41}, 9)
	if err != nil {
		t.Fatal(err)
	}

	for k := 0; k <= 3; k++ {
		disk, err := GridDisk(origin, k)
		if err != nil {
			t.Fatalf("GridDisk(k=%d): %v", k, err)
		}
		if len(disk) != maxGridDiskSize(k) {
			t.Errorf("k=%d: %d cells, want %d", k, len(disk), maxGridDiskSize(k))
		}
		set := cellSet(disk)
		if len(set) != len(disk) {
			t.Errorf("k=%d: duplicates in disk", k)
		}
		if !set[origin] {
			t.Errorf("k=%d: origin missing", k)
		}
		for _, c := range disk {
			if !c.IsValid() || c.Resolution() != 9 {
				t.Errorf("k=%d: bad member %v", k, c)
			}
		}
	}
}

func TestGridDiskDistancesRings(t *testing.T) {
	origin, _ := LatLngToCell(LatLng{Lat: 37.77, Lng: -122.41}, 9)

	rings, err := GridDiskDistances(origin, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(rings) != 4 {
		t.Fatalf("ring count = %d", len(rings))
	}
	for d, want := range []int{1, 6, 12, 18} {
		if len(rings[d]) != want {
			t.Errorf("ring %d has %d cells, want %d", d, len(rings[d]), want)
		}
	}
	if rings[0][0] != origin {
		t.Errorf("ring 0 = %v", rings[0])
	}

	// Rings partition the disk.
	seen := make(map[Cell]int)
	for d, ring := range rings {
		for _, c := range ring {
			if prev, dup := seen[c]; dup {
				t.Errorf("%v in rings %d and %d", c, prev, d)
			}
			seen[c] = d
		}
	}

	// Every ring member touches the previous ring.
	for d := 1; d < len(rings); d++ {
		prev := cellSet(rings[d-1])
		for _, c := range rings[d] {
			touches := false
			neighbors, err := GridDisk(c, 1)
			if err != nil {
				t.Fatal(err)
			}
			for _, n := range neighbors {
				if prev[n] {
					touches = true
					break
				}
			}
			if !touches {
				t.Errorf("ring %d cell %v does not touch ring %d", d, c, d-1)
			}
		}
	}
}

func TestGridDiskPentagon(t *testing.T) {
	pent := mustPentagonChild(t, 4, 2)

	for k, want := range map[int]int{0: 1, 1: 6, 2: 16, 3: 31} {
		disk, err := GridDisk(pent, k)
		if err != nil {
			t.Fatalf("GridDisk(pentagon, %d): %v", k, err)
		}
		if len(disk) != want {
			t.Errorf("pentagon disk k=%d: %d cells, want %d", k, len(disk), want)
		}
		set := cellSet(disk)
		if len(set) != len(disk) || !set[pent] {
			t.Errorf("pentagon disk k=%d malformed", k)
		}
	}
}

func TestGridDiskNextToPentagon(t *testing.T) {
	pent := mustPentagonChild(t, 14, 2)
	ring1, err := GridRing(pent, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(ring1) != 5 {
		t.Fatalf("pentagon has %d neighbors", len(ring1))
	}
	neighbor := ring1[0]

	// The disk of a pentagon neighbor loses one cell once it covers the
	// pentagon: the deleted subsequence removes a distance 2 cell.
	disk1, err := GridDisk(neighbor, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(disk1) != 7 {
		t.Errorf("k=1 disk: %d cells, want 7", len(disk1))
	}
	disk2, err := GridDisk(neighbor, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(disk2) != 18 {
		t.Errorf("k=2 disk: %d cells, want 18", len(disk2))
	}
	if !cellSet(disk2)[pent] {
		t.Errorf("pentagon missing from neighbor's k=2 disk")
	}
}

func TestGridRingMatchesDisk(t *testing.T) {
	origins := []Cell{
		mustCell(t, LatLngToCell(LatLng{Lat: 37.77, Lng: -122.41}, 9)),
		mustCell(t, LatLngToCell(LatLng{Lat: -41.3, Lng: 174.8}, 5)),
		mustPentagonChild(t, 38, 3),
	}
	for _, origin := range origins {
		for k := 0; k <= 3; k++ {
			ring, err := GridRing(origin, k)
			if err != nil {
				t.Fatalf("GridRing(%v, %d): %v", origin, k, err)
			}
			rings, err := GridDiskDistances(origin, k)
			if err != nil {
				t.Fatal(err)
			}
			want := cellSet(rings[k])
			got := cellSet(ring)
			if len(got) != len(ring) {
				t.Errorf("GridRing(%v, %d) has duplicates", origin, k)
			}
			if len(got) != len(want) {
				t.Errorf("GridRing(%v, %d) = %d cells, disk ring has %d",
					origin, k, len(got), len(want))
				continue
			}
			for c := range want {
				if !got[c] {
					t.Errorf("GridRing(%v, %d) missing %v", origin, k, c)
				}
			}
		}
	}
}

func TestGridRingBasics(t *testing.T) {
	origin, _ := LatLngToCell(LatLng{Lat: 51.5, Lng: -0.13}, 7)

	ring0, err := GridRing(origin, 0)
	if err != nil || len(ring0) != 1 || ring0[0] != origin {
		t.Errorf("GridRing(k=0) = %v, %v", ring0, err)
	}

	ring1, err := GridRing(origin, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(ring1) != 6 {
		t.Errorf("GridRing(k=1) has %d cells", len(ring1))
	}
	for _, c := range ring1 {
		if c == origin {
			t.Errorf("origin inside hollow ring")
		}
		ok, err := AreNeighbors(origin, c)
		if err != nil || !ok {
			t.Errorf("ring 1 member %v not a neighbor: %v", c, err)
		}
	}

	ring2, err := GridRing(origin, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(ring2) != 12 {
		t.Errorf("GridRing(k=2) has %d cells", len(ring2))
	}

	if _, err := GridRing(origin, -1); err != ErrInvalidK {
		t.Errorf("negative k error = %v", err)
	}
	if _, err := GridRing(Cell(0), 1); err != ErrInvalidCell {
		t.Errorf("invalid origin error = %v", err)
	}
}

func TestGridRingOnPentagon(t *testing.T) {
	pent := mustPentagonChild(t, 117, 4)
	for k, want := range map[int]int{1: 5, 2: 10, 3: 15} {
		ring, err := GridRing(pent, k)
		if err != nil {
			t.Fatalf("GridRing(pentagon, %d): %v", k, err)
		}
		if len(ring) != want {
			t.Errorf("pentagon ring k=%d: %d cells, want %d", k, len(ring), want)
		}
	}
}

func TestNeighborRotationsCenter(t *testing.T) {
	c, _ := LatLngToCell(LatLng{Lat: 37.77, Lng: -122.41}, 6)
	got, rot, err := neighborRotations(c, centerDigit, 0)
	if err != nil || got != c || rot != 0 {
		t.Errorf("center step = %v rot %d err %v, want identity", got, rot, err)
	}
}

func TestNeighborRotationsPentagonK(t *testing.T) {
	// From a pentagon, stepping toward the deleted subsequence fails at
	// finer resolutions and resolves to the ik neighbor at resolution 0.
	pent := mustPentagonChild(t, 4, 1)
	if _, _, err := neighborRotations(pent, kAxesDigit, 0); err != ErrPentagonDistortion {
		t.Errorf("pentagon k step error = %v", err)
	}

	res0 := res0Cell(4)
	got, _, err := neighborRotations(res0, kAxesDigit, 0)
	if err != nil {
		t.Fatal(err)
	}
	ik, _, err := neighborRotations(res0, ikAxesDigit, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != ik {
		t.Errorf("deleted k edge resolves to %v, ik neighbor is %v", got, ik)
	}
}

func TestAreNeighbors(t *testing.T) {
	origin, _ := LatLngToCell(LatLng{Lat: 37.77, Lng: -122.41}, 9)

	ring1, err := GridRing(origin, 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range ring1 {
		ok, err := AreNeighbors(origin, c)
		if err != nil || !ok {
			t.Errorf("AreNeighbors(origin, ring1 %v) = %v, %v", c, ok, err)
		}
		ok, err = AreNeighbors(c, origin)
		if err != nil || !ok {
			t.Errorf("AreNeighbors(ring1 %v, origin) = %v, %v", c, ok, err)
		}
	}

	ring2, err := GridRing(origin, 2)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range ring2 {
		ok, err := AreNeighbors(origin, c)
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Errorf("ring 2 cell %v reported as neighbor", c)
		}
	}

	if ok, err := AreNeighbors(origin, origin); err != nil || ok {
		t.Errorf("self neighbor = %v, %v", ok, err)
	}

	parent, _ := origin.Parent(8)
	if _, err := AreNeighbors(origin, parent); err != ErrResolutionMismatch {
		t.Errorf("cross resolution error = %v", err)
	}
	if _, err := AreNeighbors(origin, Cell(0)); err != ErrInvalidCell {
		t.Errorf("invalid cell error = %v", err)
	}

	// Siblings: the center child neighbors every sibling; two outer
	// siblings are adjacent only when their digits are rotational
	// neighbors.
	kids, err := parent.Children(9)
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range kids[1:] {
		ok, err := AreNeighbors(kids[0], k)
		if err != nil || !ok {
			t.Errorf("center child not neighbor of sibling %v: %v", k, err)
		}
	}
}
