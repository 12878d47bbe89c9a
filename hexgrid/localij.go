package hexgrid

// CoordIJ is a two-axis local grid coordinate anchored at an origin cell.
// Unlike the internal three-axis form it is not normalized, so components
// may be negative.
type CoordIJ struct {
	I int
	J int
}

func (ij CoordIJ) toIJK() coordIJK {
	return coordIJK{i: ij.I, j: ij.J}.normalize()
}

func ijkToIJ(c coordIJK) CoordIJ {
	return CoordIJ{I: c.i - c.k, J: c.j - c.k}
}

// Local coordinates live in the unfolded frame of the origin's base cell.
// Unfolding a pentagon's neighborhood warps some direction pairs beyond
// repair; those pairs fail rather than produce misplaced coordinates.
// Rows are the pentagon's leading digit, columns the traversal direction.
var failedDirections = [numDigits][numDigits]bool{
	{false, false, false, false, false, false, false},
	{false, false, false, false, false, false, false},
	{false, false, false, false, true, true, false},
	{false, false, false, false, true, false, true},
	{false, false, true, true, false, false, false},
	{false, false, true, false, false, false, true},
	{false, false, false, true, false, true, false},
}

// pentagonRotations gives the cw rotations unfolding a cell out of a
// pentagon's warped coordinate space, indexed by the pentagon's leading
// digit and the direction of travel. -1 marks the deleted K axis.
var pentagonRotations = [numDigits][numDigits]int{
	{0, -1, 0, 0, 0, 0, 0},
	{-1, -1, -1, -1, -1, -1, -1},
	{0, -1, 0, 0, 0, 1, 0},
	{0, -1, 0, 0, 1, 1, 0},
	{0, -1, 0, 5, 0, 0, 0},
	{0, -1, 5, 5, 0, 0, 0},
	{0, -1, 0, 0, 0, 0, 0},
}

// The reverse tables fold a local coordinate back into pentagon space: the
// plain table for the origin side, and the polar/nonpolar variants for a
// destination pentagon, which warps differently at the poles.
var pentagonRotationsReverse = [numDigits][numDigits]int{
	{0, 0, 0, 0, 0, 0, 0},
	{-1, -1, -1, -1, -1, -1, -1},
	{0, 1, 0, 0, 0, 0, 0},
	{0, 1, 0, 0, 0, 1, 0},
	{0, 5, 0, 0, 0, 0, 0},
	{0, 5, 0, 5, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0},
}

var pentagonRotationsReverseNonpolar = [numDigits][numDigits]int{
	{0, 0, 0, 0, 0, 0, 0},
	{-1, -1, -1, -1, -1, -1, -1},
	{0, 1, 0, 0, 0, 0, 0},
	{0, 1, 0, 0, 0, 1, 0},
	{0, 5, 0, 0, 0, 0, 0},
	{0, 1, 0, 5, 1, 1, 0},
	{0, 0, 0, 0, 0, 0, 0},
}

var pentagonRotationsReversePolar = [numDigits][numDigits]int{
	{0, 0, 0, 0, 0, 0, 0},
	{-1, -1, -1, -1, -1, -1, -1},
	{0, 1, 1, 1, 1, 1, 1},
	{0, 1, 0, 0, 0, 1, 0},
	{0, 1, 0, 0, 1, 1, 0},
	{0, 1, 0, 5, 1, 1, 0},
	{0, 1, 1, 0, 1, 1, 0},
}

// cellToLocalIjk expresses a cell in the local frame of origin's base cell.
// Both cells must have the same resolution and be in the same or a
// neighboring base cell.
func cellToLocalIjk(origin, h Cell) (coordIJK, error) {
	res := origin.Resolution()
	if res != h.Resolution() {
		return coordIJK{}, ErrResolutionMismatch
	}

	originBaseCell := origin.BaseCellNumber()
	baseCell := h.BaseCellNumber()
	if originBaseCell >= numBaseCells || baseCell >= numBaseCells {
		return coordIJK{}, ErrInvalidCell
	}

	dir := centerDigit
	revDir := centerDigit
	if originBaseCell != baseCell {
		dir = baseCellDirection(originBaseCell, baseCell)
		if dir == invalidDigit {
			return coordIJK{}, ErrCellsTooFar
		}
		revDir = baseCellDirection(baseCell, originBaseCell)
	}

	originOnPent := isBaseCellPentagon(originBaseCell)
	indexOnPent := isBaseCellPentagon(baseCell)

	if dir != centerDigit {
		// Undo the rotation the index picked up crossing into its base
		// cell, bringing it into the origin's orientation.
		baseCellRotations := baseCellNeighbor60CCWRots[originBaseCell][dir]
		if indexOnPent {
			for i := 0; i < baseCellRotations; i++ {
				h = h.rotatePent60cw()
				revDir = revDir.rotate60cw()
				if revDir == kAxesDigit {
					revDir = revDir.rotate60cw()
				}
			}
		} else {
			for i := 0; i < baseCellRotations; i++ {
				h = h.rotate60cw()
				revDir = revDir.rotate60cw()
			}
		}
	}

	// Coordinates relative to the index's own base cell center.
	indexFijk, _ := cellToFaceIjkWithInitialized(h, faceIJK{})
	coord := indexFijk.coord

	if dir != centerDigit {
		pentRotations := 0
		dirRotations := 0
		if originOnPent {
			originLeadingDigit := origin.leadingNonZeroDigit()
			if failedDirections[originLeadingDigit][dir] {
				return coordIJK{}, ErrPentagonDistortion
			}
			dirRotations = pentagonRotations[originLeadingDigit][dir]
			pentRotations = dirRotations
		} else if indexOnPent {
			indexLeadingDigit := h.leadingNonZeroDigit()
			if failedDirections[indexLeadingDigit][revDir] {
				return coordIJK{}, ErrPentagonDistortion
			}
			pentRotations = pentagonRotations[revDir][indexLeadingDigit]
		}
		if pentRotations < 0 || dirRotations < 0 {
			return coordIJK{}, ErrInvalidCell
		}

		for i := 0; i < pentRotations; i++ {
			coord = coord.rotate60cw()
		}

		// Offset between the two base cell centers, scaled to res.
		offset := coordIJK{}.neighbor(dir)
		for r := res - 1; r >= 0; r-- {
			if isClassIII(r + 1) {
				offset = offset.downAp7()
			} else {
				offset = offset.downAp7r()
			}
		}
		for i := 0; i < dirRotations; i++ {
			offset = offset.rotate60cw()
		}

		coord = coord.add(offset).normalize()
	} else if originOnPent && indexOnPent {
		// Same pentagon base cell: the relative warp depends only on the
		// two leading digits.
		originLeadingDigit := origin.leadingNonZeroDigit()
		indexLeadingDigit := h.leadingNonZeroDigit()
		if failedDirections[originLeadingDigit][indexLeadingDigit] {
			return coordIJK{}, ErrPentagonDistortion
		}
		rotations := pentagonRotations[originLeadingDigit][indexLeadingDigit]
		if rotations < 0 {
			return coordIJK{}, ErrInvalidCell
		}
		for i := 0; i < rotations; i++ {
			coord = coord.rotate60cw()
		}
	}

	return coord, nil
}

// localIjkToCell recovers the cell at a local coordinate in origin's frame,
// inverting cellToLocalIjk.
func localIjkToCell(origin Cell, coord coordIJK) (Cell, error) {
	res := origin.Resolution()
	originBaseCell := origin.BaseCellNumber()
	if originBaseCell >= numBaseCells {
		return 0, ErrInvalidCell
	}
	originOnPent := isBaseCellPentagon(originBaseCell)

	h := Cell(blankCell).setMode(cellMode).setResolution(res)

	if res == 0 {
		if coord.i > 1 || coord.j > 1 || coord.k > 1 {
			return 0, ErrCellsTooFar
		}
		dir := coord.unitDigit()
		if dir == invalidDigit {
			return 0, ErrCellsTooFar
		}
		baseCell := baseCellNeighbors[originBaseCell][dir]
		if baseCell == invalidBaseCell {
			return 0, ErrPentagonDistortion
		}
		return h.setBaseCell(baseCell), nil
	}

	// Build the digit path from the finest resolution up; what remains is
	// the base cell offset in the origin's frame.
	ijk := coord
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
		h = h.setDigit(r+1, last.sub(lastCenter).normalize().unitDigit())
	}

	if ijk.i > 1 || ijk.j > 1 || ijk.k > 1 {
		return 0, ErrCellsTooFar
	}
	dir := ijk.unitDigit()
	if dir == invalidDigit {
		return 0, ErrCellsTooFar
	}
	baseCell := baseCellNeighbors[originBaseCell][dir]
	indexOnPent := baseCell != invalidBaseCell && isBaseCellPentagon(baseCell)

	if dir != centerDigit {
		pentRotations := 0
		if originOnPent {
			originLeadingDigit := origin.leadingNonZeroDigit()
			pentRotations = pentagonRotationsReverse[originLeadingDigit][dir]
			if pentRotations < 0 {
				return 0, ErrInvalidCell
			}
			for i := 0; i < pentRotations; i++ {
				dir = dir.rotate60ccw()
			}
			// Rotations land on K only when the coordinate points into the
			// deleted subsequence; no cell exists there.
			if dir == kAxesDigit {
				return 0, ErrPentagonDistortion
			}
			baseCell = baseCellNeighbors[originBaseCell][dir]
			indexOnPent = isBaseCellPentagon(baseCell)
		}

		baseCellRotations := baseCellNeighbor60CCWRots[originBaseCell][dir]
		if indexOnPent {
			revDir := baseCellDirection(baseCell, originBaseCell)
			if revDir == invalidDigit {
				return 0, ErrCellsTooFar
			}

			for i := 0; i < baseCellRotations; i++ {
				h = h.rotate60ccw()
			}

			indexLeadingDigit := h.leadingNonZeroDigit()
			if isBaseCellPolarPentagon(baseCell) {
				pentRotations = pentagonRotationsReversePolar[revDir][indexLeadingDigit]
			} else {
				pentRotations = pentagonRotationsReverseNonpolar[revDir][indexLeadingDigit]
			}
			if pentRotations < 0 {
				return 0, ErrInvalidCell
			}
			for i := 0; i < pentRotations; i++ {
				h = h.rotatePent60ccw()
			}
		} else {
			for i := 0; i < pentRotations; i++ {
				h = h.rotate60ccw()
			}
			for i := 0; i < baseCellRotations; i++ {
				h = h.rotate60ccw()
			}
		}
	} else if originOnPent && indexOnPent {
		originLeadingDigit := origin.leadingNonZeroDigit()
		indexLeadingDigit := h.leadingNonZeroDigit()
		rotations := pentagonRotationsReverse[originLeadingDigit][indexLeadingDigit]
		if rotations < 0 {
			return 0, ErrInvalidCell
		}
		for i := 0; i < rotations; i++ {
			h = h.rotate60ccw()
		}
	}

	if indexOnPent && h.leadingNonZeroDigit() == kAxesDigit {
		return 0, ErrPentagonDistortion
	}

	return h.setBaseCell(baseCell), nil
}

// CellToLocalIJ expresses a cell as a two-axis coordinate in the local
// frame anchored at origin. The frame covers origin's base cell and its
// neighbors; cells beyond that report ErrCellsTooFar. Coordinates are
// comparable only when produced by the same origin.
func CellToLocalIJ(origin, c Cell) (CoordIJ, error) {
	if !origin.IsValid() || !c.IsValid() {
		return CoordIJ{}, ErrInvalidCell
	}
	ijk, err := cellToLocalIjk(origin, c)
	if err != nil {
		return CoordIJ{}, err
	}
	return ijkToIJ(ijk), nil
}

// LocalIJToCell recovers the cell at a local two-axis coordinate anchored
// at origin, inverting CellToLocalIJ.
func LocalIJToCell(origin Cell, ij CoordIJ) (Cell, error) {
	if !origin.IsValid() {
		return 0, ErrInvalidCell
	}
	return localIjkToCell(origin, ij.toIJK())
}

// GridDistance returns the minimum number of grid steps between two cells
// of the same resolution. It is computed in origin's local frame and
// reports an error rather than a wrong count when the cells cannot share
// one.
func GridDistance(origin, c Cell) (int, error) {
	if !origin.IsValid() || !c.IsValid() {
		return 0, ErrInvalidCell
	}
	originIjk, err := cellToLocalIjk(origin, origin)
	if err != nil {
		return 0, err
	}
	cIjk, err := cellToLocalIjk(origin, c)
	if err != nil {
		return 0, err
	}
	return originIjk.distanceTo(cIjk), nil
}

// GridPath returns a minimal contiguous path of cells from origin to c,
// both endpoints included. The path is drawn by rounding the straight line
// between the two local coordinates and is not guaranteed to stay minimal
// in every metric, only contiguous and of length GridDistance+1.
func GridPath(origin, c Cell) ([]Cell, error) {
	distance, err := GridDistance(origin, c)
	if err != nil {
		return nil, err
	}

	startIjk, err := cellToLocalIjk(origin, origin)
	if err != nil {
		return nil, err
	}
	endIjk, err := cellToLocalIjk(origin, c)
	if err != nil {
		return nil, err
	}

	start := startIjk.toCube()
	end := endIjk.toCube()

	var iStep, jStep, kStep float64
	if distance > 0 {
		iStep = float64(end.i-start.i) / float64(distance)
		jStep = float64(end.j-start.j) / float64(distance)
		kStep = float64(end.k-start.k) / float64(distance)
	}

	out := make([]Cell, distance+1)
	for n := 0; n <= distance; n++ {
		rounded := cubeRound(
			float64(start.i)+iStep*float64(n),
			float64(start.j)+jStep*float64(n),
			float64(start.k)+kStep*float64(n))
		cell, err := localIjkToCell(origin, fromCube(rounded))
		if err != nil {
			return nil, err
		}
		out[n] = cell
	}
	return out, nil
}
