package hexgrid

import "testing"

var wantPentagons = [numPentagons]int{4, 14, 24, 38, 49, 58, 63, 72, 83, 97, 107, 117}

func TestBaseCellTable(t *testing.T) {
	seen := map[faceIJK]int{}
	pentagons := 0
	for bc, data := range baseCellTable {
		if data.home.face < 0 || data.home.face >= numIcosaFaces {
			t.Fatalf("base cell %d: home face %d out of range", bc, data.home.face)
		}
		c := data.home.coord
		if c != c.normalize() || c.i > maxFaceCoord || c.j > maxFaceCoord || c.k > maxFaceCoord {
			t.Fatalf("base cell %d: home coord %+v not canonical", bc, c)
		}
		if prev, dup := seen[data.home]; dup {
			t.Fatalf("base cells %d and %d share home %+v", prev, bc, data.home)
		}
		seen[data.home] = bc
		if data.pentagon {
			pentagons++
			if c != (coordIJK{2, 0, 0}) {
				t.Errorf("pentagon %d: home coord %+v, want {2 0 0}", bc, c)
			}
		}
	}
	if pentagons != numPentagons {
		t.Fatalf("pentagon count = %d, want %d", pentagons, numPentagons)
	}
	for _, bc := range wantPentagons {
		if !isBaseCellPentagon(bc) {
			t.Errorf("isBaseCellPentagon(%d) = false, want true", bc)
		}
	}
	if !isBaseCellPolarPentagon(4) || !isBaseCellPolarPentagon(117) {
		t.Error("4 and 117 should be polar pentagons")
	}
	if isBaseCellPolarPentagon(83) {
		t.Error("83 should not be a polar pentagon")
	}
}

func TestFaceLayoutComplete(t *testing.T) {
	covered := map[int]bool{}
	for f := 0; f < numIcosaFaces; f++ {
		for i := 0; i <= maxFaceCoord; i++ {
			for j := 0; j <= maxFaceCoord; j++ {
				for k := 0; k <= maxFaceCoord; k++ {
					e := faceIjkBaseCells[f][i][j][k]
					if e.baseCell < 0 || e.baseCell >= numBaseCells {
						t.Fatalf("face %d [%d][%d][%d]: base cell %d out of range",
							f, i, j, k, e.baseCell)
					}
					if e.ccwRot60 < 0 || e.ccwRot60 > 5 {
						t.Fatalf("face %d [%d][%d][%d]: rotation %d out of range",
							f, i, j, k, e.ccwRot60)
					}
					covered[e.baseCell] = true

					c := coordIJK{i, j, k}
					if n := c.normalize(); n != c {
						want := faceIjkBaseCells[f][n.i][n.j][n.k]
						if e != want {
							t.Errorf("face %d: slot %+v = %+v, want %+v from %+v",
								f, c, e, want, n)
						}
					}
				}
			}
		}
	}
	if len(covered) != numBaseCells {
		t.Fatalf("face layout covers %d base cells, want %d", len(covered), numBaseCells)
	}
}

func TestFaceLayoutHomes(t *testing.T) {
	for bc := range baseCellTable {
		home := baseCellTable[bc].home
		if got := faceIjkToBaseCell(home); got != bc {
			t.Errorf("faceIjkToBaseCell(home of %d) = %d", bc, got)
		}
		if rot := faceIjkToBaseCellCCWrot60(home); rot != 0 {
			t.Errorf("base cell %d: home rotation = %d, want 0", bc, rot)
		}
		if got := baseCellToFaceIjk(bc); got != home {
			t.Errorf("baseCellToFaceIjk(%d) = %+v, want %+v", bc, got, home)
		}
	}
}

func TestBaseCellNeighborsStructure(t *testing.T) {
	for bc := 0; bc < numBaseCells; bc++ {
		if baseCellNeighbors[bc][centerDigit] != bc {
			t.Fatalf("base cell %d: center neighbor = %d", bc, baseCellNeighbors[bc][centerDigit])
		}
		seen := map[int]bool{}
		for dir := kAxesDigit; dir < numDigits; dir++ {
			nb := baseCellNeighbors[bc][dir]
			if isBaseCellPentagon(bc) && dir == pentagonSkippedDigit {
				if nb != invalidBaseCell {
					t.Fatalf("pentagon %d: K neighbor = %d, want invalid", bc, nb)
				}
				continue
			}
			if nb < 0 || nb >= numBaseCells {
				t.Fatalf("base cell %d dir %d: neighbor %d out of range", bc, dir, nb)
			}
			if nb == bc {
				t.Fatalf("base cell %d dir %d: neighbor is itself", bc, dir)
			}
			if seen[nb] {
				t.Fatalf("base cell %d: neighbor %d repeated", bc, nb)
			}
			seen[nb] = true

			rot := baseCellNeighbor60CCWRots[bc][dir]
			if rot < 0 || rot > 5 {
				t.Fatalf("base cell %d dir %d: rotation %d out of range", bc, dir, rot)
			}

			// Adjacency is mutual.
			back := false
			for d := kAxesDigit; d < numDigits; d++ {
				if baseCellNeighbors[nb][d] == bc {
					back = true
					break
				}
			}
			if !back {
				t.Fatalf("base cell %d lists %d as neighbor but not vice versa", bc, nb)
			}
		}
		want := 6
		if isBaseCellPentagon(bc) {
			want = 5
		}
		if len(seen) != want {
			t.Fatalf("base cell %d: %d distinct neighbors, want %d", bc, len(seen), want)
		}
	}
}

func TestBaseCellNeighborsKnown(t *testing.T) {
	cases := []struct {
		bc        int
		neighbors [numDigits]int
		rots      [numDigits]int
	}{
		{0,
			[numDigits]int{0, 1, 5, 2, 4, 3, 8},
			[numDigits]int{0, 5, 0, 0, 1, 5, 1}},
		{4,
			[numDigits]int{4, invalidBaseCell, 15, 8, 3, 0, 12},
			[numDigits]int{0, invalidRotations, 1, 0, 3, 4, 2}},
		{14,
			[numDigits]int{14, invalidBaseCell, 17, 27, 9, 20, 6},
			[numDigits]int{0, invalidRotations, 3, 0, 5, 2, 0}},
	}
	for _, tc := range cases {
		if baseCellNeighbors[tc.bc] != tc.neighbors {
			t.Errorf("baseCellNeighbors[%d] = %v, want %v",
				tc.bc, baseCellNeighbors[tc.bc], tc.neighbors)
		}
		if baseCellNeighbor60CCWRots[tc.bc] != tc.rots {
			t.Errorf("baseCellNeighbor60CCWRots[%d] = %v, want %v",
				tc.bc, baseCellNeighbor60CCWRots[tc.bc], tc.rots)
		}
	}
}

func TestBaseCellDirection(t *testing.T) {
	if dir := baseCellDirection(0, 8); dir != ijAxesDigit {
		t.Errorf("baseCellDirection(0, 8) = %d, want %d", dir, ijAxesDigit)
	}
	if dir := baseCellDirection(0, 0); dir != centerDigit {
		t.Errorf("baseCellDirection(0, 0) = %d, want %d", dir, centerDigit)
	}
	if dir := baseCellDirection(0, 117); dir != invalidDigit {
		t.Errorf("baseCellDirection(0, 117) = %d, want invalid", dir)
	}
}

func TestBaseCellCwOffset(t *testing.T) {
	if !baseCellIsCwOffset(83, 10) || !baseCellIsCwOffset(83, 19) {
		t.Error("pentagon 83 should be cw offset on faces 10 and 19")
	}
	if baseCellIsCwOffset(83, 5) {
		t.Error("pentagon 83 should not be cw offset on its home face")
	}
	if rot := baseCellToCCWrot60(4, 2); rot != 2 {
		t.Errorf("baseCellToCCWrot60(4, 2) = %d, want 2", rot)
	}
	if rot := baseCellToCCWrot60(4, 10); rot != invalidRotations {
		t.Errorf("baseCellToCCWrot60(4, 10) = %d, want invalid", rot)
	}
}
