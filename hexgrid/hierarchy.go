package hexgrid

// ipow is integer exponentiation by squaring.
func ipow(base, exp int64) int64 {
	result := int64(1)
	for exp != 0 {
		if exp&1 != 0 {
			result *= base
		}
		exp >>= 1
		base *= base
	}
	return result
}

// Parent returns the ancestor of the cell at parentRes. A cell is its own
// parent at its own resolution.
func (c Cell) Parent(parentRes int) (Cell, error) {
	if !c.IsValid() {
		return 0, ErrInvalidCell
	}
	if parentRes < 0 || parentRes > MaxResolution {
		return 0, ErrInvalidResolution
	}
	res := c.Resolution()
	if parentRes > res {
		return 0, ErrResolutionMismatch
	}
	if parentRes == res {
		return c, nil
	}
	p := c.setResolution(parentRes)
	for r := parentRes + 1; r <= res; r++ {
		p = p.setDigit(r, invalidDigit)
	}
	return p, nil
}

// makeDirectChild builds the child one resolution finer selected by digit.
// The caller is responsible for skipping the K digit beneath pentagons.
func (c Cell) makeDirectChild(digit direction) Cell {
	childRes := c.Resolution() + 1
	return c.setResolution(childRes).setDigit(childRes, digit)
}

// CenterChild returns the descendant at childRes reached by taking the
// center digit at every step. It exists for every cell, pentagons included.
func (c Cell) CenterChild(childRes int) (Cell, error) {
	if !c.IsValid() {
		return 0, ErrInvalidCell
	}
	if childRes < 0 || childRes > MaxResolution {
		return 0, ErrInvalidResolution
	}
	res := c.Resolution()
	if childRes < res {
		return 0, ErrResolutionMismatch
	}
	if childRes == res {
		return c, nil
	}
	child := c.setResolution(childRes)
	for r := res + 1; r <= childRes; r++ {
		child = child.setDigit(r, centerDigit)
	}
	return child, nil
}

// ChildrenSize returns the number of descendants the cell has at childRes.
// A pentagon subtree is smaller than a hexagon subtree: one of the seven
// branches is missing beneath the pentagon at every level.
func (c Cell) ChildrenSize(childRes int) (int64, error) {
	if !c.IsValid() {
		return 0, ErrInvalidCell
	}
	if childRes < 0 || childRes > MaxResolution {
		return 0, ErrInvalidResolution
	}
	res := c.Resolution()
	if childRes < res {
		return 0, ErrResolutionMismatch
	}
	n := int64(childRes - res)
	if c.IsPentagon() {
		return 1 + 5*(ipow(7, n)-1)/6, nil
	}
	return ipow(7, n), nil
}

// Children returns all descendants of the cell at childRes, in depth-first
// digit order 0..6 with the K branch pruned beneath pentagons. The center
// child is always first.
func (c Cell) Children(childRes int) ([]Cell, error) {
	size, err := c.ChildrenSize(childRes)
	if err != nil {
		return nil, err
	}
	out := make([]Cell, 0, size)
	var walk func(Cell)
	walk = func(h Cell) {
		if h.Resolution() == childRes {
			out = append(out, h)
			return
		}
		pentagon := h.IsPentagon()
		for d := centerDigit; d < numDigits; d++ {
			if pentagon && d == pentagonSkippedDigit {
				continue
			}
			walk(h.makeDirectChild(d))
		}
	}
	walk(c)
	return out, nil
}
