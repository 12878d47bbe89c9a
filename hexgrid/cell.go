// Package hexgrid implements a hierarchical hexagonal grid on the sphere.
//
// The grid projects the sphere onto the twenty faces of an icosahedron and
// tiles each face with hexagons at sixteen resolutions, every cell at one
// resolution splitting into seven finer cells at the next. Twelve pentagons
// per resolution, one on each icosahedron vertex, absorb the curvature.
// Cells are identified by 64-bit indexes encoding the resolution, one of
// 122 base cells and the digit path down from it, so hierarchy and
// neighbor queries are integer arithmetic rather than spherical geometry.
package hexgrid

import "strconv"

// Cell is a 64-bit cell index.
//
// Bit layout, from the high bit down:
//
//	bit  63     always 0
//	bits 59-62  index mode: 1 for cells, 2 for directed edges
//	bits 56-58  reserved, 0 for cells; directed edges store the edge
//	            direction digit here
//	bits 52-55  resolution, 0-15
//	bits 45-51  base cell, 0-121
//	bits 0-44   one 3-bit direction digit per resolution 1..15, the digit
//	            for resolution r at bit offset (15-r)*3; digits beyond the
//	            cell's resolution hold 7
type Cell uint64

// MaxResolution is the finest grid resolution.
const MaxResolution = 15

const (
	cellMode = 1
	edgeMode = 2
)

const (
	modeOffset     = 59
	reservedOffset = 56
	resOffset      = 52
	baseCellOffset = 45
	perDigitOffset = 3

	highBitMask  = uint64(1) << 63
	modeMask     = uint64(0xf) << modeOffset
	reservedMask = uint64(0x7) << reservedOffset
	resMask      = uint64(0xf) << resOffset
	baseCellMask = uint64(0x7f) << baseCellOffset
	digitMask    = uint64(0x7)

	// blankCell has mode, resolution and base cell zero and every digit
	// unused; encoders start from it.
	blankCell = uint64(1)<<(MaxResolution*perDigitOffset) - 1
)

func (c Cell) mode() int {
	return int((uint64(c) & modeMask) >> modeOffset)
}

func (c Cell) setMode(m int) Cell {
	return Cell(uint64(c)&^modeMask | uint64(m)<<modeOffset)
}

func (c Cell) reservedBits() int {
	return int((uint64(c) & reservedMask) >> reservedOffset)
}

func (c Cell) setReservedBits(v int) Cell {
	return Cell(uint64(c)&^reservedMask | uint64(v)<<reservedOffset)
}

// Resolution returns the cell's resolution, 0 through MaxResolution.
func (c Cell) Resolution() int {
	return int((uint64(c) & resMask) >> resOffset)
}

func (c Cell) setResolution(res int) Cell {
	return Cell(uint64(c)&^resMask | uint64(res)<<resOffset)
}

// BaseCellNumber returns the resolution 0 ancestor's number, 0 through 121.
func (c Cell) BaseCellNumber() int {
	return int((uint64(c) & baseCellMask) >> baseCellOffset)
}

func (c Cell) setBaseCell(bc int) Cell {
	return Cell(uint64(c)&^baseCellMask | uint64(bc)<<baseCellOffset)
}

func (c Cell) digit(r int) direction {
	shift := uint((MaxResolution - r) * perDigitOffset)
	return direction((uint64(c) >> shift) & digitMask)
}

func (c Cell) setDigit(r int, d direction) Cell {
	shift := uint((MaxResolution - r) * perDigitOffset)
	return Cell(uint64(c)&^(digitMask<<shift) | uint64(d)<<shift)
}

// String formats the cell as lowercase hexadecimal, the canonical string
// form of an index.
func (c Cell) String() string {
	return strconv.FormatUint(uint64(c), 16)
}

// ParseCell parses the canonical hexadecimal string form of a cell index.
func ParseCell(s string) (Cell, error) {
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, ErrInvalidCell
	}
	return NewCell(v)
}

// NewCell validates a raw 64-bit value as a cell index.
func NewCell(v uint64) (Cell, error) {
	c := Cell(v)
	if !c.IsValid() {
		return 0, ErrInvalidCell
	}
	return c, nil
}

func (c Cell) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Cell) UnmarshalText(b []byte) error {
	parsed, err := ParseCell(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// IsValid reports whether the index is a well-formed cell: cell mode,
// reserved bits clear, base cell in range, used digits valid for the base
// cell and unused digits blank.
func (c Cell) IsValid() bool {
	if uint64(c)&highBitMask != 0 {
		return false
	}
	if c.mode() != cellMode || c.reservedBits() != 0 {
		return false
	}
	bc := c.BaseCellNumber()
	if bc >= numBaseCells {
		return false
	}

	res := c.Resolution()
	foundFirstNonZero := false
	for r := 1; r <= res; r++ {
		d := c.digit(r)
		if d >= invalidDigit {
			return false
		}
		if !foundFirstNonZero && d != centerDigit {
			foundFirstNonZero = true
			// The pentagonal subsequence in the K direction is deleted.
			if isBaseCellPentagon(bc) && d == pentagonSkippedDigit {
				return false
			}
		}
	}
	for r := res + 1; r <= MaxResolution; r++ {
		if c.digit(r) != invalidDigit {
			return false
		}
	}
	return true
}

// IsPentagon reports whether the cell is one of the twelve pentagons at
// its resolution.
func (c Cell) IsPentagon() bool {
	return isBaseCellPentagon(c.BaseCellNumber()) && c.leadingNonZeroDigit() == centerDigit
}

// IsResClassIII reports whether the cell's resolution has a grid rotated
// relative to the even resolutions.
func (c Cell) IsResClassIII() bool {
	return isClassIII(c.Resolution())
}

// leadingNonZeroDigit returns the coarsest non-center digit, or
// centerDigit if all digits are center.
func (c Cell) leadingNonZeroDigit() direction {
	for r, res := 1, c.Resolution(); r <= res; r++ {
		if d := c.digit(r); d != centerDigit {
			return d
		}
	}
	return centerDigit
}

func (c Cell) rotate60ccw() Cell {
	for r, res := 1, c.Resolution(); r <= res; r++ {
		c = c.setDigit(r, c.digit(r).rotate60ccw())
	}
	return c
}

func (c Cell) rotate60cw() Cell {
	for r, res := 1, c.Resolution(); r <= res; r++ {
		c = c.setDigit(r, c.digit(r).rotate60cw())
	}
	return c
}

// rotatePent60ccw rotates a pentagon-rooted index ccw, skipping over the
// deleted K subsequence.
func (c Cell) rotatePent60ccw() Cell {
	foundFirstNonZero := false
	for r, res := 1, c.Resolution(); r <= res; r++ {
		c = c.setDigit(r, c.digit(r).rotate60ccw())
		if !foundFirstNonZero && c.digit(r) != centerDigit {
			foundFirstNonZero = true
			if c.leadingNonZeroDigit() == pentagonSkippedDigit {
				c = c.rotate60ccw()
			}
		}
	}
	return c
}

func (c Cell) rotatePent60cw() Cell {
	foundFirstNonZero := false
	for r, res := 1, c.Resolution(); r <= res; r++ {
		c = c.setDigit(r, c.digit(r).rotate60cw())
		if !foundFirstNonZero && c.digit(r) != centerDigit {
			foundFirstNonZero = true
			if c.leadingNonZeroDigit() == pentagonSkippedDigit {
				c = c.rotate60cw()
			}
		}
	}
	return c
}

// LatLngToCell indexes a point to the cell containing it at the given
// resolution.
func LatLngToCell(ll LatLng, res int) (Cell, error) {
	if res < 0 || res > MaxResolution {
		return 0, ErrInvalidResolution
	}
	if !ll.finite() {
		return 0, ErrInvalidCoordinate
	}
	return faceIjkToCell(geoToFaceIJK(ll.toCoord(), res), res)
}

// CellToLatLng returns the center point of a cell.
func CellToLatLng(c Cell) (LatLng, error) {
	if !c.IsValid() {
		return LatLng{}, ErrInvalidCell
	}
	fijk, err := cellToFaceIjk(c)
	if err != nil {
		return LatLng{}, err
	}
	return fijk.toGeo(c.Resolution()).toLatLng(), nil
}

// CellToBoundary returns the cell's vertices in ccw order. Hexagons have
// six; pentagons five plus up to five extra distortion vertices where
// their edges cross icosahedron edges.
func CellToBoundary(c Cell) ([]LatLng, error) {
	verts, err := cellBoundaryRads(c)
	if err != nil {
		return nil, err
	}
	out := make([]LatLng, len(verts))
	for i, v := range verts {
		out[i] = v.toLatLng()
	}
	return out, nil
}

// cellBoundaryRads is CellToBoundary in internal radian coordinates.
func cellBoundaryRads(c Cell) ([]geoCoord, error) {
	if !c.IsValid() {
		return nil, ErrInvalidCell
	}
	fijk, err := cellToFaceIjk(c)
	if err != nil {
		return nil, err
	}
	res := c.Resolution()
	if c.IsPentagon() {
		return fijk.pentToBoundary(res, 0, numPentVerts), nil
	}
	return fijk.toBoundary(res, 0, numHexVerts), nil
}

// faceIjkToCell encodes a face location as a cell index, building the
// digit path from the finest resolution up and rotating into the base
// cell's canonical orientation.
func faceIjkToCell(fijk faceIJK, res int) (Cell, error) {
	c := Cell(blankCell).setMode(cellMode).setResolution(res)

	if res == 0 {
		if fijk.coord.i > maxFaceCoord || fijk.coord.j > maxFaceCoord ||
			fijk.coord.k > maxFaceCoord {
			return 0, ErrInvalidCoordinate
		}
		return c.setBaseCell(faceIjkToBaseCell(fijk)), nil
	}

	ijk := fijk.coord
	for r := res - 1; r >= 0; r-- {
		last := ijk
		var lastCenter coordIJK
		if isClassIII(r + 1) {
			ijk = ijk.upAp7()
			lastCenter = ijk.downAp7()
		} else {
			ijk = ijk.upAp7r()
			lastCenter = ijk.downAp7r()
		}
		c = c.setDigit(r+1, last.sub(lastCenter).normalize().unitDigit())
	}

	if ijk.i > maxFaceCoord || ijk.j > maxFaceCoord || ijk.k > maxFaceCoord {
		return 0, ErrInvalidCoordinate
	}

	fijkBC := faceIJK{face: fijk.face, coord: ijk}
	bc := faceIjkToBaseCell(fijkBC)
	c = c.setBaseCell(bc)

	numRots := faceIjkToBaseCellCCWrot60(fijkBC)
	if isBaseCellPentagon(bc) {
		// Force rotation out of the missing K subsequence.
		if c.leadingNonZeroDigit() == pentagonSkippedDigit {
			if baseCellIsCwOffset(bc, fijkBC.face) {
				c = c.rotate60cw()
			} else {
				c = c.rotate60ccw()
			}
		}
		for i := 0; i < numRots; i++ {
			c = c.rotatePent60ccw()
		}
	} else {
		for i := 0; i < numRots; i++ {
			c = c.rotate60ccw()
		}
	}

	return c, nil
}

// cellToFaceIjk decodes a cell to its face location, folding onto the
// proper face when the digit path walks off the base cell's home face.
func cellToFaceIjk(c Cell) (faceIJK, error) {
	bc := c.BaseCellNumber()
	if bc >= numBaseCells {
		return faceIJK{}, ErrInvalidCell
	}

	// The missing K subsequence pushes the whole IK subsequence over.
	if isBaseCellPentagon(bc) && c.leadingNonZeroDigit() == ikAxesDigit {
		c = c.rotate60cw()
	}

	fijk, possibleOverage := cellToFaceIjkWithInitialized(c, baseCellToFaceIjk(bc))
	if !possibleOverage {
		return fijk, nil
	}

	origIJK := fijk.coord
	res := c.Resolution()
	adjRes := res
	if isClassIII(res) {
		fijk.coord = fijk.coord.downAp7r()
		adjRes++
	}

	pentLeading4 := isBaseCellPentagon(bc) && c.leadingNonZeroDigit() == iAxesDigit
	var ov overage
	fijk, ov = adjustOverageClassII(fijk, adjRes, pentLeading4, false)
	if ov != noOverage {
		// Pentagon base cells can overage across several faces.
		if isBaseCellPentagon(bc) {
			for {
				fijk, ov = adjustOverageClassII(fijk, adjRes, false, false)
				if ov == noOverage {
					break
				}
			}
		}
		if adjRes != res {
			fijk.coord = fijk.coord.upAp7r()
		}
	} else if adjRes != res {
		fijk.coord = origIJK
	}
	return fijk, nil
}

// cellToFaceIjkWithInitialized walks the digit path down from the given
// base cell location, in that base cell's home face coordinate system. The
// second return reports whether the result could lie off the home face.
func cellToFaceIjkWithInitialized(c Cell, fijk faceIJK) (faceIJK, bool) {
	res := c.Resolution()
	ijk := fijk.coord

	possibleOverage := true
	if !isBaseCellPentagon(c.BaseCellNumber()) &&
		(res == 0 || (ijk.i == 0 && ijk.j == 0 && ijk.k == 0)) {
		possibleOverage = false
	}

	for r := 1; r <= res; r++ {
		if isClassIII(r) {
			ijk = ijk.downAp7()
		} else {
			ijk = ijk.downAp7r()
		}
		ijk = ijk.neighbor(c.digit(r))
	}

	return faceIJK{face: fijk.face, coord: ijk}, possibleOverage
}
