package hexgrid

const (
	// numBaseCells is the number of resolution 0 cells: 110 hexagons plus
	// 12 pentagons, one per icosahedron vertex.
	numBaseCells = 122

	numPentagons = 12

	invalidBaseCell = 127

	invalidRotations = -1
)

// baseCellDatum fixes a base cell to its home face and coordinate. The two
// cwOffsetPent faces of a pentagon are the faces on which its grid is
// rotated clockwise relative to its home orientation; {-1, -1} for the two
// polar pentagons, which need no adjustment.
type baseCellDatum struct {
	home         faceIJK
	pentagon     bool
	cwOffsetPent [2]int
}

var baseCellTable = [numBaseCells]baseCellDatum{
	{faceIJK{1, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},     // base cell   0
	{faceIJK{2, coordIJK{1, 1, 0}}, false, [2]int{0, 0}},     // base cell   1
	{faceIJK{1, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},     // base cell   2
	{faceIJK{2, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},     // base cell   3
	{faceIJK{0, coordIJK{2, 0, 0}}, true, [2]int{-1, -1}},    // base cell   4 (pentagon)
	{faceIJK{1, coordIJK{1, 1, 0}}, false, [2]int{0, 0}},     // base cell   5
	{faceIJK{1, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},     // base cell   6
	{faceIJK{2, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},     // base cell   7
	{faceIJK{0, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},     // base cell   8
	{faceIJK{2, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},     // base cell   9
	{faceIJK{1, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},     // base cell  10
	{faceIJK{1, coordIJK{0, 1, 1}}, false, [2]int{0, 0}},     // base cell  11
	{faceIJK{3, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},     // base cell  12
	{faceIJK{3, coordIJK{1, 1, 0}}, false, [2]int{0, 0}},     // base cell  13
	{faceIJK{11, coordIJK{2, 0, 0}}, true, [2]int{2, 6}},     // base cell  14 (pentagon)
	{faceIJK{4, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},     // base cell  15
	{faceIJK{0, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},     // base cell  16
	{faceIJK{6, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},     // base cell  17
	{faceIJK{0, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},     // base cell  18
	{faceIJK{2, coordIJK{0, 1, 1}}, false, [2]int{0, 0}},     // base cell  19
	{faceIJK{7, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},     // base cell  20
	{faceIJK{2, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},     // base cell  21
	{faceIJK{0, coordIJK{1, 1, 0}}, false, [2]int{0, 0}},     // base cell  22
	{faceIJK{6, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},     // base cell  23
	{faceIJK{10, coordIJK{2, 0, 0}}, true, [2]int{1, 5}},     // base cell  24 (pentagon)
	{faceIJK{6, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},     // base cell  25
	{faceIJK{3, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},     // base cell  26
	{faceIJK{11, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},    // base cell  27
	{faceIJK{4, coordIJK{1, 1, 0}}, false, [2]int{0, 0}},     // base cell  28
	{faceIJK{3, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},     // base cell  29
	{faceIJK{0, coordIJK{0, 1, 1}}, false, [2]int{0, 0}},     // base cell  30
	{faceIJK{4, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},     // base cell  31
	{faceIJK{5, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},     // base cell  32
	{faceIJK{0, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},     // base cell  33
	{faceIJK{7, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},     // base cell  34
	{faceIJK{11, coordIJK{1, 1, 0}}, false, [2]int{0, 0}},    // base cell  35
	{faceIJK{7, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},     // base cell  36
	{faceIJK{10, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},    // base cell  37
	{faceIJK{12, coordIJK{2, 0, 0}}, true, [2]int{3, 7}},     // base cell  38 (pentagon)
	{faceIJK{6, coordIJK{1, 0, 1}}, false, [2]int{0, 0}},     // base cell  39
	{faceIJK{7, coordIJK{1, 0, 1}}, false, [2]int{0, 0}},     // base cell  40
	{faceIJK{4, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},     // base cell  41
	{faceIJK{3, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},     // base cell  42
	{faceIJK{3, coordIJK{0, 1, 1}}, false, [2]int{0, 0}},     // base cell  43
	{faceIJK{4, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},     // base cell  44
	{faceIJK{6, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},     // base cell  45
	{faceIJK{11, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},    // base cell  46
	{faceIJK{8, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},     // base cell  47
	{faceIJK{5, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},     // base cell  48
	{faceIJK{14, coordIJK{2, 0, 0}}, true, [2]int{0, 9}},     // base cell  49 (pentagon)
	{faceIJK{5, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},     // base cell  50
	{faceIJK{12, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},    // base cell  51
	{faceIJK{10, coordIJK{1, 1, 0}}, false, [2]int{0, 0}},    // base cell  52
	{faceIJK{4, coordIJK{0, 1, 1}}, false, [2]int{0, 0}},     // base cell  53
	{faceIJK{12, coordIJK{1, 1, 0}}, false, [2]int{0, 0}},    // base cell  54
	{faceIJK{7, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},     // base cell  55
	{faceIJK{11, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},    // base cell  56
	{faceIJK{10, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},    // base cell  57
	{faceIJK{13, coordIJK{2, 0, 0}}, true, [2]int{4, 8}},     // base cell  58 (pentagon)
	{faceIJK{10, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},    // base cell  59
	{faceIJK{11, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},    // base cell  60
	{faceIJK{9, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},     // base cell  61
	{faceIJK{8, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},     // base cell  62
	{faceIJK{6, coordIJK{2, 0, 0}}, true, [2]int{11, 15}},    // base cell  63 (pentagon)
	{faceIJK{8, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},     // base cell  64
	{faceIJK{9, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},     // base cell  65
	{faceIJK{14, coordIJK{1, 1, 0}}, false, [2]int{0, 0}},    // base cell  66
	{faceIJK{5, coordIJK{1, 0, 1}}, false, [2]int{0, 0}},     // base cell  67
	{faceIJK{16, coordIJK{0, 1, 1}}, false, [2]int{0, 0}},    // base cell  68
	{faceIJK{8, coordIJK{1, 0, 1}}, false, [2]int{0, 0}},     // base cell  69
	{faceIJK{5, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},     // base cell  70
	{faceIJK{12, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},    // base cell  71
	{faceIJK{7, coordIJK{2, 0, 0}}, true, [2]int{12, 16}},    // base cell  72 (pentagon)
	{faceIJK{12, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},    // base cell  73
	{faceIJK{10, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},    // base cell  74
	{faceIJK{9, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},     // base cell  75
	{faceIJK{13, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},    // base cell  76
	{faceIJK{16, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},    // base cell  77
	{faceIJK{15, coordIJK{0, 1, 1}}, false, [2]int{0, 0}},    // base cell  78
	{faceIJK{15, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},    // base cell  79
	{faceIJK{16, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},    // base cell  80
	{faceIJK{14, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},    // base cell  81
	{faceIJK{13, coordIJK{1, 1, 0}}, false, [2]int{0, 0}},    // base cell  82
	{faceIJK{5, coordIJK{2, 0, 0}}, true, [2]int{10, 19}},    // base cell  83 (pentagon)
	{faceIJK{8, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},     // base cell  84
	{faceIJK{14, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},    // base cell  85
	{faceIJK{9, coordIJK{1, 0, 1}}, false, [2]int{0, 0}},     // base cell  86
	{faceIJK{14, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},    // base cell  87
	{faceIJK{17, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},    // base cell  88
	{faceIJK{12, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},    // base cell  89
	{faceIJK{16, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},    // base cell  90
	{faceIJK{17, coordIJK{0, 1, 1}}, false, [2]int{0, 0}},    // base cell  91
	{faceIJK{15, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},    // base cell  92
	{faceIJK{16, coordIJK{1, 0, 1}}, false, [2]int{0, 0}},    // base cell  93
	{faceIJK{9, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},     // base cell  94
	{faceIJK{15, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},    // base cell  95
	{faceIJK{13, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},    // base cell  96
	{faceIJK{8, coordIJK{2, 0, 0}}, true, [2]int{13, 17}},    // base cell  97 (pentagon)
	{faceIJK{13, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},    // base cell  98
	{faceIJK{17, coordIJK{1, 0, 1}}, false, [2]int{0, 0}},    // base cell  99
	{faceIJK{19, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},    // base cell 100
	{faceIJK{14, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},    // base cell 101
	{faceIJK{19, coordIJK{0, 1, 1}}, false, [2]int{0, 0}},    // base cell 102
	{faceIJK{17, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},    // base cell 103
	{faceIJK{13, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},    // base cell 104
	{faceIJK{17, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},    // base cell 105
	{faceIJK{16, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},    // base cell 106
	{faceIJK{9, coordIJK{2, 0, 0}}, true, [2]int{14, 18}},    // base cell 107 (pentagon)
	{faceIJK{15, coordIJK{1, 0, 1}}, false, [2]int{0, 0}},    // base cell 108
	{faceIJK{15, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},    // base cell 109
	{faceIJK{18, coordIJK{0, 1, 1}}, false, [2]int{0, 0}},    // base cell 110
	{faceIJK{18, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},    // base cell 111
	{faceIJK{19, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},    // base cell 112
	{faceIJK{17, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},    // base cell 113
	{faceIJK{19, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},    // base cell 114
	{faceIJK{18, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},    // base cell 115
	{faceIJK{18, coordIJK{1, 0, 1}}, false, [2]int{0, 0}},    // base cell 116
	{faceIJK{19, coordIJK{2, 0, 0}}, true, [2]int{-1, -1}},   // base cell 117 (pentagon)
	{faceIJK{19, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},    // base cell 118
	{faceIJK{18, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},    // base cell 119
	{faceIJK{19, coordIJK{1, 0, 1}}, false, [2]int{0, 0}},    // base cell 120
	{faceIJK{18, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},    // base cell 121
}

// pentagonFaceRotations fixes, for each pentagonal base cell, the ccw
// rotation of its grid as seen from each of the five faces meeting at its
// icosahedron vertex. The home face always carries rotation 0. These
// orientations are the one piece of the per-face layout that folding alone
// cannot reproduce: around a vertex the fold rotations are path dependent,
// and these values pin the canonical choice.
var pentagonFaceRotations = [numPentagons]struct {
	baseCell int
	rots     [5][2]int // {face, ccwRot60} pairs
}{
	{4, [5][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}}},
	{14, [5][2]int{{11, 0}, {1, 0}, {2, 1}, {6, 3}, {7, 3}}},
	{24, [5][2]int{{10, 0}, {0, 0}, {1, 1}, {5, 3}, {6, 3}}},
	{38, [5][2]int{{12, 0}, {2, 0}, {3, 1}, {7, 3}, {8, 3}}},
	{49, [5][2]int{{14, 0}, {4, 0}, {0, 1}, {9, 3}, {5, 3}}},
	{58, [5][2]int{{13, 0}, {3, 0}, {4, 1}, {8, 3}, {9, 3}}},
	{63, [5][2]int{{6, 0}, {16, 0}, {15, 1}, {10, 3}, {11, 3}}},
	{72, [5][2]int{{7, 0}, {17, 0}, {16, 1}, {11, 3}, {12, 3}}},
	{83, [5][2]int{{5, 0}, {15, 0}, {19, 1}, {14, 3}, {10, 3}}},
	{97, [5][2]int{{8, 0}, {18, 0}, {17, 1}, {12, 3}, {13, 3}}},
	{107, [5][2]int{{9, 0}, {19, 0}, {18, 1}, {13, 3}, {14, 3}}},
	{117, [5][2]int{{19, 0}, {18, 1}, {17, 2}, {16, 3}, {15, 4}}},
}

// baseCellRotation is one slot of the per-face base cell layout: the base
// cell at a coordinate, and the ccw rotation of that base cell's grid
// relative to the face's grid.
type baseCellRotation struct {
	baseCell int
	ccwRot60 int
}

// res0Fold folds a resolution 0 coordinate that leaks off its face onto
// the adjacent face, returning the new location and the ccw rotation the
// fold applied. pentAdjust rotates a pentagonal base cell's coordinate out
// of its missing K subsequence first; it applies only to the KI quadrant.
func res0Fold(h faceIJK, pentAdjust bool) (faceIJK, int) {
	rot := 0
	var orient faceOrientIJK
	switch {
	case h.coord.k > 0 && h.coord.j > 0:
		orient = faceNeighbors[h.face][jkFaceIdx]
	case h.coord.k > 0:
		orient = faceNeighbors[h.face][kiFaceIdx]
		if pentAdjust {
			origin := coordIJK{i: maxFaceCoord}
			h.coord = h.coord.sub(origin).rotate60cw().add(origin)
			rot += 5
		}
	default:
		orient = faceNeighbors[h.face][ijFaceIdx]
	}

	c := h.coord
	for i := 0; i < orient.ccwRot60; i++ {
		c = c.rotate60ccw()
	}
	c = c.add(orient.translate).normalize()

	return faceIJK{face: orient.face, coord: c}, rot + orient.ccwRot60
}

// faceIjkBaseCells is the per-face base cell layout: for each face and each
// resolution 0 coordinate with components in 0..2, the base cell there and
// its grid rotation. Built at init from the home table: home slots
// directly, pentagon corners from pentagonFaceRotations, the remaining
// slots by folding onto the face that owns them. Coordinates that
// normalize to the same cell share the normalized slot's value.
var faceIjkBaseCells = buildFaceIjkBaseCells()

func buildFaceIjkBaseCells() [numIcosaFaces][3][3][3]baseCellRotation {
	var table [numIcosaFaces][3][3][3]baseCellRotation
	for f := range table {
		for i := range table[f] {
			for j := range table[f][i] {
				for k := range table[f][i][j] {
					table[f][i][j][k] = baseCellRotation{invalidBaseCell, invalidRotations}
				}
			}
		}
	}

	set := func(f int, c coordIJK, e baseCellRotation) {
		table[f][c.i][c.j][c.k] = e
	}
	at := func(f int, c coordIJK) baseCellRotation {
		return table[f][c.i][c.j][c.k]
	}

	// Home slots.
	for bc := range baseCellTable {
		home := baseCellTable[bc].home
		set(home.face, home.coord, baseCellRotation{bc, 0})
	}

	// Pentagon corners. A face corner is an icosahedron vertex, so it
	// carries the pentagon whose center sits on that vertex. Match by
	// chord distance; longitude is unusable at the two polar vertices.
	corners := [3]coordIJK{{2, 0, 0}, {0, 2, 0}, {0, 0, 2}}
	for _, p := range pentagonFaceRotations {
		homeVec := baseCellTable[p.baseCell].home.toGeo(0).toVec3d()
		for _, fr := range p.rots {
			face, rot := fr[0], fr[1]
			for _, c := range corners {
				cornerVec := faceIJK{face: face, coord: c}.toGeo(0).toVec3d()
				if cornerVec.squareDistanceTo(homeVec) < 1.0e-12 {
					set(face, c, baseCellRotation{p.baseCell, rot})
				}
			}
		}
	}

	// Shared edge midpoints: home on one of the two faces; the other face
	// reaches it with a single fold.
	midedges := [3]coordIJK{{1, 1, 0}, {1, 0, 1}, {0, 1, 1}}
	for f := 0; f < numIcosaFaces; f++ {
		for _, c := range midedges {
			if at(f, c).baseCell != invalidBaseCell {
				continue
			}
			folded, rot := res0Fold(faceIJK{face: f, coord: c}, false)
			owner := at(folded.face, folded.coord)
			set(f, c, baseCellRotation{owner.baseCell, (rot + owner.ccwRot60) % 6})
		}
	}

	// Off-face slots: fold onto the neighboring face and combine with the
	// owning slot's rotation.
	for f := 0; f < numIcosaFaces; f++ {
		for i := 0; i <= maxFaceCoord; i++ {
			for j := 0; j <= maxFaceCoord; j++ {
				for k := 0; k <= maxFaceCoord; k++ {
					c := coordIJK{i, j, k}
					if c.normalize() != c || i+j+k <= maxFaceCoord {
						continue
					}
					folded, rot := res0Fold(faceIJK{face: f, coord: c}, false)
					owner := at(folded.face, folded.coord)
					set(f, c, baseCellRotation{owner.baseCell, (rot + owner.ccwRot60) % 6})
				}
			}
		}
	}

	// Non-canonical coordinates mirror their normalized slot.
	for f := 0; f < numIcosaFaces; f++ {
		for i := 0; i <= maxFaceCoord; i++ {
			for j := 0; j <= maxFaceCoord; j++ {
				for k := 0; k <= maxFaceCoord; k++ {
					c := coordIJK{i, j, k}
					if n := c.normalize(); n != c {
						set(f, c, at(f, n))
					}
				}
			}
		}
	}

	return table
}

// baseCellNeighbors and baseCellNeighbor60CCWRots give, for each base cell
// and direction digit, the adjacent base cell and the ccw rotation between
// the two cells' grids. Built at init by stepping one unit off the home
// coordinate and folding. Pentagons have no K neighbor.
var baseCellNeighbors, baseCellNeighbor60CCWRots = buildBaseCellNeighbors()

func buildBaseCellNeighbors() ([numBaseCells][numDigits]int, [numBaseCells][numDigits]int) {
	var neighbors, rotations [numBaseCells][numDigits]int

	for bc := range baseCellTable {
		data := baseCellTable[bc]
		for dir := centerDigit; dir < numDigits; dir++ {
			if dir == centerDigit {
				neighbors[bc][dir] = bc
				rotations[bc][dir] = 0
				continue
			}
			if data.pentagon && dir == pentagonSkippedDigit {
				neighbors[bc][dir] = invalidBaseCell
				rotations[bc][dir] = invalidRotations
				continue
			}

			fijk := faceIJK{face: data.home.face, coord: data.home.coord.neighbor(dir)}
			rot := 0
			pentAdjust := data.pentagon
			for fijk.coord.i > maxFaceCoord || fijk.coord.j > maxFaceCoord ||
				fijk.coord.k > maxFaceCoord {
				var r int
				fijk, r = res0Fold(fijk, pentAdjust)
				rot += r
				pentAdjust = false
			}

			entry := faceIjkBaseCells[fijk.face][fijk.coord.i][fijk.coord.j][fijk.coord.k]
			neighbors[bc][dir] = entry.baseCell
			rotations[bc][dir] = (rot + entry.ccwRot60) % 6
		}
	}

	return neighbors, rotations
}

func isBaseCellPentagon(bc int) bool {
	if bc < 0 || bc >= numBaseCells {
		return false
	}
	return baseCellTable[bc].pentagon
}

// isBaseCellPolarPentagon reports whether the base cell is one of the two
// pentagons centered on the poles, which carry all five i-axis neighbors.
func isBaseCellPolarPentagon(bc int) bool {
	return bc == 4 || bc == 117
}

// baseCellIsCwOffset reports whether the pentagonal base cell's grid is
// clockwise offset on the given face.
func baseCellIsCwOffset(bc, face int) bool {
	return baseCellTable[bc].cwOffsetPent[0] == face ||
		baseCellTable[bc].cwOffsetPent[1] == face
}

func faceIjkToBaseCell(h faceIJK) int {
	return faceIjkBaseCells[h.face][h.coord.i][h.coord.j][h.coord.k].baseCell
}

func faceIjkToBaseCellCCWrot60(h faceIJK) int {
	return faceIjkBaseCells[h.face][h.coord.i][h.coord.j][h.coord.k].ccwRot60
}

func baseCellToFaceIjk(bc int) faceIJK {
	return baseCellTable[bc].home
}

// baseCellToCCWrot60 returns the grid rotation of the base cell as seen
// from the given face, or invalidRotations if the cell does not appear on
// that face.
func baseCellToCCWrot60(bc, face int) int {
	if face < 0 || face >= numIcosaFaces {
		return invalidRotations
	}
	for i := 0; i <= maxFaceCoord; i++ {
		for j := 0; j <= maxFaceCoord; j++ {
			for k := 0; k <= maxFaceCoord; k++ {
				e := faceIjkBaseCells[face][i][j][k]
				if e.baseCell == bc {
					return e.ccwRot60
				}
			}
		}
	}
	return invalidRotations
}

// baseCellDirection returns the direction digit from one base cell to a
// neighboring base cell, or invalidDigit if they are not adjacent.
func baseCellDirection(origin, neighbor int) direction {
	for dir := centerDigit; dir < numDigits; dir++ {
		if baseCellNeighbors[origin][dir] == neighbor {
			return dir
		}
	}
	return invalidDigit
}
