package hexgrid

import "strconv"

// DirectedEdge is a 64-bit directed edge index. It reuses the cell bit
// layout with mode 2 and the neighbor direction digit in the reserved
// field, so an edge is its origin cell plus which of the origin's sides
// it crosses.
type DirectedEdge uint64

// String formats the edge as lowercase hexadecimal, the canonical string
// form of an index.
func (e DirectedEdge) String() string {
	return strconv.FormatUint(uint64(e), 16)
}

// ParseDirectedEdge parses the canonical hexadecimal string form of a
// directed edge index.
func ParseDirectedEdge(s string) (DirectedEdge, error) {
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, ErrInvalidEdge
	}
	return NewDirectedEdge(v)
}

// NewDirectedEdge validates a raw 64-bit value as a directed edge index.
func NewDirectedEdge(v uint64) (DirectedEdge, error) {
	e := DirectedEdge(v)
	if !e.IsValid() {
		return 0, ErrInvalidEdge
	}
	return e, nil
}

func (e DirectedEdge) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *DirectedEdge) UnmarshalText(b []byte) error {
	parsed, err := ParseDirectedEdge(string(b))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// direction returns the digit identifying which side of the origin the
// edge crosses.
func (e DirectedEdge) direction() direction {
	return direction(Cell(e).reservedBits())
}

// originCell strips the edge fields without validating.
func (e DirectedEdge) originCell() Cell {
	return Cell(e).setMode(cellMode).setReservedBits(0)
}

// IsValid reports whether the index is a well-formed directed edge: edge
// mode, a direction the origin actually has a neighbor in, and a valid
// origin cell.
func (e DirectedEdge) IsValid() bool {
	if uint64(e)&highBitMask != 0 {
		return false
	}
	if Cell(e).mode() != edgeMode {
		return false
	}
	d := e.direction()
	if d < kAxesDigit || d > ijAxesDigit {
		return false
	}
	origin := e.originCell()
	if origin.IsPentagon() && d == pentagonSkippedDigit {
		return false
	}
	return origin.IsValid()
}

// Origin returns the cell the edge leads out of.
func (e DirectedEdge) Origin() (Cell, error) {
	if !e.IsValid() {
		return 0, ErrInvalidEdge
	}
	return e.originCell(), nil
}

// Destination returns the cell the edge leads into.
func (e DirectedEdge) Destination() (Cell, error) {
	if !e.IsValid() {
		return 0, ErrInvalidEdge
	}
	rotations := 0
	destination, _, err := neighborRotations(e.originCell(), e.direction(), rotations)
	if err != nil {
		return 0, err
	}
	return destination, nil
}

// Cells returns the edge's origin and destination.
func (e DirectedEdge) Cells() ([2]Cell, error) {
	var cells [2]Cell
	origin, err := e.Origin()
	if err != nil {
		return cells, err
	}
	destination, err := e.Destination()
	if err != nil {
		return cells, err
	}
	cells[0], cells[1] = origin, destination
	return cells, nil
}

// CellsToDirectedEdge returns the edge from origin to one of its
// neighbors.
func CellsToDirectedEdge(origin, destination Cell) (DirectedEdge, error) {
	if !origin.IsValid() || !destination.IsValid() {
		return 0, ErrInvalidCell
	}
	if origin.Resolution() != destination.Resolution() {
		return 0, ErrResolutionMismatch
	}
	d := directionForNeighbor(origin, destination)
	if d == invalidDigit {
		return 0, ErrNotNeighbors
	}
	return DirectedEdge(origin.setMode(edgeMode).setReservedBits(int(d))), nil
}

// directionForNeighbor finds the direction digit from origin to
// destination by checking each neighbor in turn, or invalidDigit when the
// cells do not share an edge.
func directionForNeighbor(origin, destination Cell) direction {
	first := kAxesDigit
	if origin.IsPentagon() {
		first = jAxesDigit
	}
	for d := first; d < numDigits; d++ {
		neighbor, _, err := neighborRotations(origin, d, 0)
		if err != nil {
			continue
		}
		if neighbor == destination {
			return d
		}
	}
	return invalidDigit
}

// DirectedEdges returns the edges leading out of the cell, one per
// neighbor: six for hexagons, five for pentagons.
func (c Cell) DirectedEdges() ([]DirectedEdge, error) {
	if !c.IsValid() {
		return nil, ErrInvalidCell
	}
	first := kAxesDigit
	if c.IsPentagon() {
		first = jAxesDigit
	}
	edges := make([]DirectedEdge, 0, numHexVerts)
	for d := first; d < numDigits; d++ {
		edges = append(edges, DirectedEdge(c.setMode(edgeMode).setReservedBits(int(d))))
	}
	return edges, nil
}

// Boundary returns the edge's two endpoint vertices, plus an extra
// distortion vertex when the edge crosses an icosahedron edge.
func (e DirectedEdge) Boundary() ([]LatLng, error) {
	verts, err := e.boundaryRads()
	if err != nil {
		return nil, err
	}
	out := make([]LatLng, len(verts))
	for i, v := range verts {
		out[i] = v.toLatLng()
	}
	return out, nil
}

// boundaryRads is Boundary in internal radian coordinates.
func (e DirectedEdge) boundaryRads() ([]geoCoord, error) {
	if !e.IsValid() {
		return nil, ErrInvalidEdge
	}
	origin := e.originCell()
	start := vertexNumForDirection(origin, e.direction())
	if start == invalidVertexNum {
		return nil, ErrInvalidEdge
	}
	fijk, err := cellToFaceIjk(origin)
	if err != nil {
		return nil, err
	}
	res := origin.Resolution()
	// Two topological vertices; the projection inserts the icosahedron
	// edge crossing when the segment spans two faces.
	if origin.IsPentagon() {
		return fijk.pentToBoundary(res, start, 2), nil
	}
	return fijk.toBoundary(res, start, 2), nil
}

// EdgeLengthRads returns the length of the edge in radians of arc,
// summed over its boundary segments.
func EdgeLengthRads(e DirectedEdge) (float64, error) {
	verts, err := e.boundaryRads()
	if err != nil {
		return 0, err
	}
	length := 0.0
	for i := 1; i < len(verts); i++ {
		length += greatCircleDistanceRads(verts[i-1], verts[i])
	}
	return length, nil
}

// EdgeLengthKm returns the length of the edge in kilometers.
func EdgeLengthKm(e DirectedEdge) (float64, error) {
	rads, err := EdgeLengthRads(e)
	if err != nil {
		return 0, err
	}
	return rads * EarthRadiusKm, nil
}

// EdgeLengthM returns the length of the edge in meters.
func EdgeLengthM(e DirectedEdge) (float64, error) {
	rads, err := EdgeLengthRads(e)
	if err != nil {
		return 0, err
	}
	return rads * EarthRadiusM, nil
}

const invalidVertexNum = -1

// directionToVertexNumHex gives, for each neighbor direction of a hexagon
// in home orientation, the vertex number where the shared edge starts.
var directionToVertexNumHex = [numDigits]int{
	invalidVertexNum, 3, 1, 2, 5, 4, 0,
}

// directionToVertexNumPent is the pentagon equivalent; the K direction
// has no edge.
var directionToVertexNumPent = [numDigits]int{
	invalidVertexNum, invalidVertexNum, 1, 2, 4, 3, 0,
}

// pentagonDirectionFaces maps each pentagonal base cell to the
// icosahedron face its grid continues onto in each direction J through
// IJ. Derived at init by probing a fine center child's neighbors, which
// land just across the vertex on the surrounding faces.
var pentagonDirectionFaces = buildPentagonDirectionFaces()

func buildPentagonDirectionFaces() map[int][5]int {
	const probeRes = 2
	out := make(map[int][5]int, numPentagons)
	for bc := 0; bc < numBaseCells; bc++ {
		if !isBaseCellPentagon(bc) {
			continue
		}
		pent := Cell(blankCell).setMode(cellMode).setResolution(probeRes).setBaseCell(bc)
		for r := 1; r <= probeRes; r++ {
			pent = pent.setDigit(r, centerDigit)
		}
		var faces [5]int
		for d := jAxesDigit; d < numDigits; d++ {
			neighbor, _, err := neighborRotations(pent, d, 0)
			if err != nil {
				continue
			}
			fijk, err := cellToFaceIjk(neighbor)
			if err != nil {
				continue
			}
			faces[d-jAxesDigit] = fijk.face
		}
		out[bc] = faces
	}
	return out
}

// vertexRotations counts the ccw rotations between the cell's canonical
// vertex numbering and the grid of the face it currently sits on.
func vertexRotations(c Cell) (int, error) {
	fijk, err := cellToFaceIjk(c)
	if err != nil {
		return 0, err
	}
	bc := c.BaseCellNumber()
	rot := baseCellToCCWrot60(bc, fijk.face)
	if rot == invalidRotations {
		return 0, ErrInvalidCell
	}

	if isBaseCellPentagon(bc) {
		faces := pentagonDirectionFaces[bc]
		ikFace := faces[ikAxesDigit-jAxesDigit]
		jkFace := faces[jkAxesDigit-jAxesDigit]

		if fijk.face != baseCellTable[bc].home.face &&
			(isBaseCellPolarPentagon(bc) || fijk.face == ikFace) {
			rot = (rot + 1) % 6
		}

		// Descendants that lean across the deleted K subsequence carry
		// an extra rotation relative to the face they land on.
		switch c.leadingNonZeroDigit() {
		case jkAxesDigit:
			if fijk.face == ikFace {
				rot = (rot + 5) % 6
			}
		case ikAxesDigit:
			if fijk.face == jkFace {
				rot = (rot + 1) % 6
			}
		}
	}
	return rot, nil
}

// vertexNumForDirection returns the vertex number where the edge toward
// the given neighbor direction starts, or invalidVertexNum when the cell
// has no such edge.
func vertexNumForDirection(origin Cell, d direction) int {
	isPent := origin.IsPentagon()
	if d == centerDigit || d >= invalidDigit || (isPent && d == pentagonSkippedDigit) {
		return invalidVertexNum
	}
	rot, err := vertexRotations(origin)
	if err != nil {
		return invalidVertexNum
	}
	if isPent {
		return (directionToVertexNumPent[d] + numPentVerts - rot) % numPentVerts
	}
	return (directionToVertexNumHex[d] + numHexVerts - rot) % numHexVerts
}
