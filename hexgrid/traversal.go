package hexgrid

import "sort"

// Digit transition tables for single-step traversal. Moving a cell one unit
// in a direction rewrites the digit at each resolution and may propagate an
// adjusted direction to the next coarser resolution; propagation stops at
// the first resolution whose adjustment is the center digit. The II tables
// apply when the finer resolution is Class III and vice versa, because the
// rewrite happens in the coarser, opposite-class grid.
var newDigitII = [numDigits][numDigits]direction{
	{0, 1, 2, 3, 4, 5, 6},
	{1, 4, 3, 6, 5, 2, 0},
	{2, 3, 1, 4, 6, 0, 5},
	{3, 6, 4, 5, 0, 1, 2},
	{4, 5, 6, 0, 2, 3, 1},
	{5, 2, 0, 1, 3, 6, 4},
	{6, 0, 5, 2, 1, 4, 3},
}

var newAdjustmentII = [numDigits][numDigits]direction{
	{0, 0, 0, 0, 0, 0, 0},
	{0, 1, 0, 1, 0, 5, 0},
	{0, 0, 2, 3, 0, 0, 2},
	{0, 1, 3, 3, 0, 0, 0},
	{0, 0, 0, 0, 4, 4, 6},
	{0, 5, 0, 0, 4, 5, 0},
	{0, 0, 2, 0, 6, 0, 6},
}

var newDigitIII = [numDigits][numDigits]direction{
	{0, 1, 2, 3, 4, 5, 6},
	{1, 2, 3, 4, 5, 6, 0},
	{2, 3, 4, 5, 6, 0, 1},
	{3, 4, 5, 6, 0, 1, 2},
	{4, 5, 6, 0, 1, 2, 3},
	{5, 6, 0, 1, 2, 3, 4},
	{6, 0, 1, 2, 3, 4, 5},
}

var newAdjustmentIII = [numDigits][numDigits]direction{
	{0, 0, 0, 0, 0, 0, 0},
	{0, 1, 0, 3, 0, 1, 0},
	{0, 0, 2, 2, 0, 0, 6},
	{0, 3, 2, 3, 0, 0, 0},
	{0, 0, 0, 0, 4, 5, 4},
	{0, 1, 0, 0, 5, 5, 0},
	{0, 0, 6, 0, 4, 0, 6},
}

// ringDirections is the walk order around a ring, one direction per ring
// side. A ring is entered by first stepping outward along the i axis.
var ringDirections = [6]direction{
	jAxesDigit, jkAxesDigit, kAxesDigit, ikAxesDigit, iAxesDigit, ijAxesDigit,
}

const nextRingDirection = iAxesDigit

// maxGridDiskSize is the disk cardinality with no pentagon involved.
func maxGridDiskSize(k int) int {
	return 3*k*(k+1) + 1
}

// neighborRotations returns the neighbor of origin in the given direction.
// rotations counts the accumulated ccw rotations of the caller's direction
// frame; the updated count is returned so that a walk can keep its bearing
// across icosahedron edges and pentagon distortions. Stepping from a
// pentagon into its deleted subsequence is reported as
// ErrPentagonDistortion.
func neighborRotations(origin Cell, dir direction, rotations int) (Cell, int, error) {
	if dir < centerDigit || dir >= invalidDigit {
		return 0, rotations, ErrInvalidCell
	}
	current := origin
	for i := 0; i < rotations; i++ {
		dir = dir.rotate60ccw()
	}

	newRotations := 0
	oldBaseCell := current.BaseCellNumber()
	if oldBaseCell < 0 || oldBaseCell >= numBaseCells {
		return 0, rotations, ErrInvalidCell
	}
	oldLeadingDigit := current.leadingNonZeroDigit()

	// Rewrite the digit path from the finest resolution up until an
	// adjustment settles, possibly crossing into a neighboring base cell.
	r := current.Resolution() - 1
	for {
		if r == -1 {
			nextBaseCell := baseCellNeighbors[oldBaseCell][dir]
			newRotations = baseCellNeighbor60CCWRots[oldBaseCell][dir]
			if nextBaseCell == invalidBaseCell {
				// The deleted K neighbor of a pentagon: this edge actually
				// borders the IK neighbor, one rotation over.
				nextBaseCell = baseCellNeighbors[oldBaseCell][ikAxesDigit]
				newRotations = baseCellNeighbor60CCWRots[oldBaseCell][ikAxesDigit]
				current = current.rotate60ccw()
				rotations++
			}
			current = current.setBaseCell(nextBaseCell)
			break
		}

		oldDigit := current.digit(r + 1)
		var nextDir direction
		switch {
		case oldDigit == invalidDigit:
			return 0, rotations, ErrInvalidCell
		case isClassIII(r + 1):
			current = current.setDigit(r+1, newDigitII[oldDigit][dir])
			nextDir = newAdjustmentII[oldDigit][dir]
		default:
			current = current.setDigit(r+1, newDigitIII[oldDigit][dir])
			nextDir = newAdjustmentIII[oldDigit][dir]
		}

		if nextDir == centerDigit {
			break
		}
		dir = nextDir
		r--
	}

	newBaseCell := current.BaseCellNumber()
	if isBaseCellPentagon(newBaseCell) {
		alreadyAdjustedKSubsequence := false

		if current.leadingNonZeroDigit() == pentagonSkippedDigit {
			if oldBaseCell != newBaseCell {
				// Entered the deleted subsequence from outside: rotate out
				// of it, direction depending on which face we came across.
				if baseCellIsCwOffset(newBaseCell, baseCellTable[oldBaseCell].home.face) {
					current = current.rotate60cw()
				} else {
					current = current.rotate60ccw()
				}
				alreadyAdjustedKSubsequence = true
			} else {
				switch oldLeadingDigit {
				case centerDigit:
					// The K direction is deleted from the pentagon itself.
					return 0, rotations, ErrPentagonDistortion
				case jkAxesDigit:
					current = current.rotate60ccw()
					rotations++
				case ikAxesDigit:
					current = current.rotate60cw()
					rotations += 5
				default:
					return 0, rotations, ErrInvalidCell
				}
			}
		}

		for i := 0; i < newRotations; i++ {
			current = current.rotatePent60ccw()
		}

		if oldBaseCell != newBaseCell {
			if isBaseCellPolarPentagon(newBaseCell) {
				// Polar pentagons have all-i neighbors, so every approach
				// except from base cells 8 and 118 twists the frame.
				if oldBaseCell != 118 && oldBaseCell != 8 &&
					current.leadingNonZeroDigit() != jkAxesDigit {
					rotations++
				}
			} else if current.leadingNonZeroDigit() == ikAxesDigit && !alreadyAdjustedKSubsequence {
				rotations++
			}
		}
	} else {
		for i := 0; i < newRotations; i++ {
			current = current.rotate60ccw()
		}
	}

	return current, (rotations + newRotations) % 6, nil
}

// gridDiskDistancesUnsafe walks concentric rings outward. It is fast but
// aborts with ErrPentagonDistortion as soon as a pentagon appears anywhere
// in the disk.
func gridDiskDistancesUnsafe(origin Cell, k int) ([][]Cell, error) {
	rings := make([][]Cell, k+1)
	rings[0] = []Cell{origin}
	if origin.IsPentagon() {
		return nil, ErrPentagonDistortion
	}

	current := origin
	rotations := 0
	for ring := 1; ring <= k; ring++ {
		var err error
		current, rotations, err = neighborRotations(current, nextRingDirection, rotations)
		if err != nil {
			return nil, err
		}
		if current.IsPentagon() {
			return nil, ErrPentagonDistortion
		}

		// Six sides of ring steps each traverse every ring cell once,
		// closing back on the corner the outward step landed on.
		rings[ring] = make([]Cell, 0, 6*ring)
		for _, dir := range ringDirections {
			for pos := 0; pos < ring; pos++ {
				current, rotations, err = neighborRotations(current, dir, rotations)
				if err != nil {
					return nil, err
				}
				rings[ring] = append(rings[ring], current)
				if current.IsPentagon() {
					return nil, ErrPentagonDistortion
				}
			}
		}
	}
	return rings, nil
}

// gridDiskDistancesSafe visits the disk by recursive neighbor expansion,
// keeping the minimum distance seen per cell. Slower than the ring walk but
// correct in pentagon neighborhoods, where some cells are reachable only by
// detour.
func gridDiskDistancesSafe(origin Cell, k int) (map[Cell]int, error) {
	found := make(map[Cell]int, maxGridDiskSize(k))
	var visit func(c Cell, d int) error
	visit = func(c Cell, d int) error {
		if prev, ok := found[c]; ok && prev <= d {
			return nil
		}
		found[c] = d
		if d >= k {
			return nil
		}
		for _, dir := range ringDirections {
			n, _, err := neighborRotations(c, dir, 0)
			if err == ErrPentagonDistortion {
				// Expected when expanding off a pentagon itself.
				continue
			}
			if err != nil {
				return err
			}
			if err := visit(n, d+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := visit(origin, 0); err != nil {
		return nil, err
	}
	return found, nil
}

// GridDiskDistances returns the cells within grid distance k of origin,
// grouped by distance: element d holds the cells exactly d steps away.
// Element 0 is always just the origin.
func GridDiskDistances(origin Cell, k int) ([][]Cell, error) {
	if k < 0 {
		return nil, ErrInvalidK
	}
	if !origin.IsValid() {
		return nil, ErrInvalidCell
	}

	rings, err := gridDiskDistancesUnsafe(origin, k)
	if err == nil {
		return rings, nil
	}
	if err != ErrPentagonDistortion {
		return nil, err
	}

	found, err := gridDiskDistancesSafe(origin, k)
	if err != nil {
		return nil, err
	}
	rings = make([][]Cell, k+1)
	for c, d := range found {
		rings[d] = append(rings[d], c)
	}
	for _, ring := range rings {
		sort.Slice(ring, func(i, j int) bool { return ring[i] < ring[j] })
	}
	return rings, nil
}

// GridDisk returns all cells within grid distance k of origin, the origin
// included. Cardinality is 3k²+3k+1 unless the disk touches a pentagon.
func GridDisk(origin Cell, k int) ([]Cell, error) {
	rings, err := GridDiskDistances(origin, k)
	if err != nil {
		return nil, err
	}
	out := make([]Cell, 0, maxGridDiskSize(k))
	for _, ring := range rings {
		out = append(out, ring...)
	}
	return out, nil
}

// gridRingUnsafe walks the hollow ring at exact distance k. Like the fast
// disk walk it aborts on any pentagon, including distortion detected only
// by the closing step landing away from the start.
func gridRingUnsafe(origin Cell, k int) ([]Cell, error) {
	if origin.IsPentagon() {
		return nil, ErrPentagonDistortion
	}

	current := origin
	rotations := 0
	for ring := 0; ring < k; ring++ {
		var err error
		current, rotations, err = neighborRotations(current, nextRingDirection, rotations)
		if err != nil {
			return nil, err
		}
		if current.IsPentagon() {
			return nil, ErrPentagonDistortion
		}
	}

	out := make([]Cell, 0, 6*k)
	out = append(out, current)
	first := current
	for _, dir := range ringDirections {
		for pos := 0; pos < k; pos++ {
			var err error
			current, rotations, err = neighborRotations(current, dir, rotations)
			if err != nil {
				return nil, err
			}
			// The closing step only verifies the walk returns to its
			// start; the cell is already in the output.
			if dir != ringDirections[5] || pos != k-1 {
				out = append(out, current)
				if current.IsPentagon() {
					return nil, ErrPentagonDistortion
				}
			}
		}
	}
	if current != first {
		return nil, ErrPentagonDistortion
	}
	return out, nil
}

// GridRing returns the hollow ring of cells at exactly grid distance k from
// origin. It never fails on pentagon distortion: when the fast walk cannot
// complete, the ring is extracted from a safe disk instead, so the result
// is correct (if unordered) even at and around pentagons.
func GridRing(origin Cell, k int) ([]Cell, error) {
	if k < 0 {
		return nil, ErrInvalidK
	}
	if !origin.IsValid() {
		return nil, ErrInvalidCell
	}
	if k == 0 {
		return []Cell{origin}, nil
	}

	out, err := gridRingUnsafe(origin, k)
	if err == nil {
		return out, nil
	}
	if err != ErrPentagonDistortion {
		return nil, err
	}

	found, err := gridDiskDistancesSafe(origin, k)
	if err != nil {
		return nil, err
	}
	out = out[:0]
	for c, d := range found {
		if d == k {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// neighborSetClockwise and neighborSetCounterclockwise give, per digit, the
// digit of the sibling adjacent in that rotational direction. Two siblings
// are neighbors iff one is the center or one appears in the other's row.
var (
	neighborSetClockwise = [numDigits]direction{
		centerDigit, jkAxesDigit, ijAxesDigit, jAxesDigit,
		ikAxesDigit, kAxesDigit, iAxesDigit,
	}
	neighborSetCounterclockwise = [numDigits]direction{
		centerDigit, ikAxesDigit, jkAxesDigit, kAxesDigit,
		ijAxesDigit, iAxesDigit, jAxesDigit,
	}
)

// AreNeighbors reports whether two cells share an edge. Cells at different
// resolutions are never comparable and report ErrResolutionMismatch. A cell
// is not its own neighbor.
func AreNeighbors(origin, destination Cell) (bool, error) {
	if !origin.IsValid() || !destination.IsValid() {
		return false, ErrInvalidCell
	}
	if origin.Resolution() != destination.Resolution() {
		return false, ErrResolutionMismatch
	}
	if origin == destination {
		return false, nil
	}

	// Siblings under one parent can be settled from their final digits
	// alone: the center child touches all its siblings, and any other pair
	// is adjacent iff one digit is the other's rotational neighbor.
	res := origin.Resolution()
	if res > 1 {
		parentRes := res - 1
		po, _ := origin.Parent(parentRes)
		pd, _ := destination.Parent(parentRes)
		if po == pd {
			originDigit := origin.digit(res)
			destinationDigit := destination.digit(res)
			if originDigit == centerDigit || destinationDigit == centerDigit {
				return true, nil
			}
			if originDigit == neighborSetClockwise[destinationDigit] ||
				originDigit == neighborSetCounterclockwise[destinationDigit] {
				return true, nil
			}
			return false, nil
		}
	}

	// Different parents: consult the actual neighbor set.
	disk, err := GridDisk(origin, 1)
	if err != nil {
		return false, err
	}
	for _, c := range disk {
		if c == destination {
			return true, nil
		}
	}
	return false, nil
}
