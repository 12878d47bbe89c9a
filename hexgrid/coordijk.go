package hexgrid

import "math"

// direction is one of the seven aperture-7 digits: the center plus the six
// neighbor axes of the hexagonal grid.
type direction int

const (
	centerDigit direction = iota
	kAxesDigit
	jAxesDigit
	jkAxesDigit
	iAxesDigit
	ikAxesDigit
	ijAxesDigit
	numDigits
)

// invalidDigit fills the unused fine-resolution digits of an identifier.
const invalidDigit = numDigits

// pentagonSkippedDigit is the axis removed beneath every pentagon: no cell
// lies in the K subsequence of a pentagonal parent.
const pentagonSkippedDigit = kAxesDigit

// rotate60ccw rotates the digit 60 degrees counter-clockwise.
func (d direction) rotate60ccw() direction {
	switch d {
	case kAxesDigit:
		return ikAxesDigit
	case ikAxesDigit:
		return iAxesDigit
	case iAxesDigit:
		return ijAxesDigit
	case ijAxesDigit:
		return jAxesDigit
	case jAxesDigit:
		return jkAxesDigit
	case jkAxesDigit:
		return kAxesDigit
	default:
		return d
	}
}

// rotate60cw rotates the digit 60 degrees clockwise.
func (d direction) rotate60cw() direction {
	switch d {
	case kAxesDigit:
		return jkAxesDigit
	case jkAxesDigit:
		return jAxesDigit
	case jAxesDigit:
		return ijAxesDigit
	case ijAxesDigit:
		return iAxesDigit
	case iAxesDigit:
		return ikAxesDigit
	case ikAxesDigit:
		return kAxesDigit
	default:
		return d
	}
}

// coordIJK locates a cell on the three-axis hexagonal grid of one face.
// The canonical form produced by normalize has all components >= 0 and at
// least one component equal to 0.
type coordIJK struct {
	i, j, k int
}

// unitVecs maps each direction digit to its unit IJK offset. The digit is
// the bit pattern i<<2|j<<1|k of the offset.
var unitVecs = [numDigits]coordIJK{
	{0, 0, 0}, // center
	{0, 0, 1}, // K
	{0, 1, 0}, // J
	{0, 1, 1}, // JK
	{1, 0, 0}, // I
	{1, 0, 1}, // IK
	{1, 1, 0}, // IJ
}

func (c coordIJK) add(o coordIJK) coordIJK {
	return coordIJK{c.i + o.i, c.j + o.j, c.k + o.k}
}

func (c coordIJK) sub(o coordIJK) coordIJK {
	return coordIJK{c.i - o.i, c.j - o.j, c.k - o.k}
}

func (c coordIJK) scale(f int) coordIJK {
	return coordIJK{c.i * f, c.j * f, c.k * f}
}

// normalize brings the coordinate to canonical form: no negative components
// and a zero minimum component.
func (c coordIJK) normalize() coordIJK {
	if c.i < 0 {
		c.j -= c.i
		c.k -= c.i
		c.i = 0
	}
	if c.j < 0 {
		c.i -= c.j
		c.k -= c.j
		c.j = 0
	}
	if c.k < 0 {
		c.i -= c.k
		c.j -= c.k
		c.k = 0
	}

	min := c.i
	if c.j < min {
		min = c.j
	}
	if c.k < min {
		min = c.k
	}
	if min > 0 {
		c.i -= min
		c.j -= min
		c.k -= min
	}
	return c
}

// unitDigit interprets a normalized unit offset as a direction digit.
// Returns invalidDigit for anything that is not a unit vector.
func (c coordIJK) unitDigit() direction {
	c = c.normalize()
	for d := centerDigit; d < numDigits; d++ {
		if c == unitVecs[d] {
			return d
		}
	}
	return invalidDigit
}

// neighbor moves one cell in the given direction.
func (c coordIJK) neighbor(d direction) coordIJK {
	if d <= centerDigit || d >= numDigits {
		return c
	}
	return c.add(unitVecs[d]).normalize()
}

// rotate60ccw rotates the coordinate 60 degrees counter-clockwise around
// the grid origin.
func (c coordIJK) rotate60ccw() coordIJK {
	iVec := coordIJK{1, 1, 0}.scale(c.i)
	jVec := coordIJK{0, 1, 1}.scale(c.j)
	kVec := coordIJK{1, 0, 1}.scale(c.k)
	return iVec.add(jVec).add(kVec).normalize()
}

// rotate60cw rotates the coordinate 60 degrees clockwise around the grid
// origin.
func (c coordIJK) rotate60cw() coordIJK {
	iVec := coordIJK{1, 0, 1}.scale(c.i)
	jVec := coordIJK{1, 1, 0}.scale(c.j)
	kVec := coordIJK{0, 1, 1}.scale(c.k)
	return iVec.add(jVec).add(kVec).normalize()
}

// upAp7 finds the coordinate of the containing cell one aperture-7
// counter-clockwise resolution coarser.
func (c coordIJK) upAp7() coordIJK {
	i := c.i - c.k
	j := c.j - c.k
	return coordIJK{
		i: int(math.Round(float64(3*i-j) / 7.0)),
		j: int(math.Round(float64(i+2*j) / 7.0)),
		k: 0,
	}.normalize()
}

// upAp7r is the clockwise counterpart of upAp7.
func (c coordIJK) upAp7r() coordIJK {
	i := c.i - c.k
	j := c.j - c.k
	return coordIJK{
		i: int(math.Round(float64(2*i+j) / 7.0)),
		j: int(math.Round(float64(3*j-i) / 7.0)),
		k: 0,
	}.normalize()
}

// downAp7 finds the center of this cell one aperture-7 counter-clockwise
// resolution finer.
func (c coordIJK) downAp7() coordIJK {
	iVec := coordIJK{3, 0, 1}.scale(c.i)
	jVec := coordIJK{1, 3, 0}.scale(c.j)
	kVec := coordIJK{0, 1, 3}.scale(c.k)
	return iVec.add(jVec).add(kVec).normalize()
}

// downAp7r is the clockwise counterpart of downAp7.
func (c coordIJK) downAp7r() coordIJK {
	iVec := coordIJK{3, 1, 0}.scale(c.i)
	jVec := coordIJK{0, 3, 1}.scale(c.j)
	kVec := coordIJK{1, 0, 3}.scale(c.k)
	return iVec.add(jVec).add(kVec).normalize()
}

// downAp3 finds the center of this cell one aperture-3 counter-clockwise
// resolution finer. Used only for the substrate grids that carry cell
// vertices.
func (c coordIJK) downAp3() coordIJK {
	iVec := coordIJK{2, 0, 1}.scale(c.i)
	jVec := coordIJK{1, 2, 0}.scale(c.j)
	kVec := coordIJK{0, 1, 2}.scale(c.k)
	return iVec.add(jVec).add(kVec).normalize()
}

// downAp3r is the clockwise counterpart of downAp3.
func (c coordIJK) downAp3r() coordIJK {
	iVec := coordIJK{2, 1, 0}.scale(c.i)
	jVec := coordIJK{0, 2, 1}.scale(c.j)
	kVec := coordIJK{1, 0, 2}.scale(c.k)
	return iVec.add(jVec).add(kVec).normalize()
}

// distanceTo returns the grid distance to another coordinate.
func (c coordIJK) distanceTo(o coordIJK) int {
	diff := c.sub(o).normalize()
	return max(abs(diff.i), abs(diff.j), abs(diff.k))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// toCube converts to cube coordinates (i + j + k = 0).
func (c coordIJK) toCube() coordIJK {
	i := -c.i + c.k
	j := c.j - c.k
	return coordIJK{i: i, j: j, k: -i - j}
}

// fromCube converts cube coordinates back to normalized IJK form.
func fromCube(c coordIJK) coordIJK {
	return coordIJK{i: -c.i, j: c.j, k: 0}.normalize()
}

// cubeRound rounds fractional cube coordinates to the nearest cell,
// re-deriving the axis with the largest rounding error so the components
// still sum to zero.
func cubeRound(i, j, k float64) coordIJK {
	ri := int(math.Round(i))
	rj := int(math.Round(j))
	rk := int(math.Round(k))

	iDiff := math.Abs(float64(ri) - i)
	jDiff := math.Abs(float64(rj) - j)
	kDiff := math.Abs(float64(rk) - k)

	if iDiff > jDiff && iDiff > kDiff {
		ri = -rj - rk
	} else if jDiff > kDiff {
		rj = -ri - rk
	} else {
		rk = -ri - rj
	}
	return coordIJK{i: ri, j: rj, k: rk}
}

// sqrt3_2 is sin(60 degrees), the row spacing of the hex grid.
const sqrt3_2 = 0.8660254037844386467637231707529361834714

// hex2d projects the coordinate onto the face plane, with x along the
// i-axis.
func (c coordIJK) hex2d() vec2d {
	i := c.i - c.k
	j := c.j - c.k
	return vec2d{
		x: float64(i) - 0.5*float64(j),
		y: float64(j) * sqrt3_2,
	}
}

// hex2dToCoordIJK rounds a planar face point to the containing cell of the
// unit hex grid.
func hex2dToCoordIJK(v vec2d) coordIJK {
	var h coordIJK

	a1 := math.Abs(v.x)
	a2 := math.Abs(v.y)

	// Reverse the skewed projection, then round to the nearest center.
	x2 := a2 / sqrt3_2
	x1 := a1 + x2/2.0

	m1 := int(x1)
	m2 := int(x2)

	r1 := x1 - float64(m1)
	r2 := x2 - float64(m2)

	if r1 < 0.5 {
		if r1 < 1.0/3.0 {
			if r2 < (1.0+r1)/2.0 {
				h.i = m1
				h.j = m2
			} else {
				h.i = m1
				h.j = m2 + 1
			}
		} else {
			if r2 < 1.0-r1 {
				h.j = m2
			} else {
				h.j = m2 + 1
			}
			if 1.0-r1 <= r2 && r2 < 2.0*r1 {
				h.i = m1 + 1
			} else {
				h.i = m1
			}
		}
	} else {
		if r1 < 2.0/3.0 {
			if r2 < 1.0-r1 {
				h.j = m2
			} else {
				h.j = m2 + 1
			}
			if 2.0*r1-1.0 < r2 && r2 < 1.0-r1 {
				h.i = m1
			} else {
				h.i = m1 + 1
			}
		} else {
			if r2 < r1/2.0 {
				h.i = m1 + 1
				h.j = m2
			} else {
				h.i = m1 + 1
				h.j = m2 + 1
			}
		}
	}

	// Fold across the axes when the input was in a mirrored quadrant.
	if v.x < 0.0 {
		if h.j%2 == 0 {
			axisI := h.j / 2
			diff := h.i - axisI
			h.i = h.i - 2*diff
		} else {
			axisI := (h.j + 1) / 2
			diff := h.i - axisI
			h.i = h.i - (2*diff + 1)
		}
	}
	if v.y < 0.0 {
		h.i = h.i - (2*h.j+1)/2
		h.j = -h.j
	}

	return h.normalize()
}
