package hexgrid

import "math"

// avgHexAreaKm2 is the mean hexagon area per resolution in square
// kilometres. Pentagon cells are smaller and drag the true global mean
// slightly below these values.
var avgHexAreaKm2 = [MaxResolution + 1]float64{
	4250546.848, 607220.9782, 86745.85403, 12392.26486,
	1770.323552, 252.9033645, 36.1290521, 5.1612932,
	0.7373276, 0.1053325, 0.0150475, 0.0021496,
	0.0003071, 0.0000439, 0.0000063, 0.0000009,
}

// avgHexEdgeLenKm is the mean hexagon edge length per resolution in
// kilometres.
var avgHexEdgeLenKm = [MaxResolution + 1]float64{
	1107.712591, 418.6760055, 158.2446558, 59.81085794,
	22.6063794, 8.544408276, 3.229482772, 1.220629759,
	0.461354684, 0.174375668, 0.065907807, 0.024910561,
	0.009415526, 0.003559893, 0.001348575, 0.000509713,
}

// NumCells returns the total number of cells at a resolution: 110
// hexagonal base cells and 12 pentagonal ones, each hexagon splitting
// seven ways per level and each pentagon six.
func NumCells(res int) (int64, error) {
	if res < 0 || res > MaxResolution {
		return 0, ErrInvalidResolution
	}
	// 122*7^res minus the pruned pentagon subtrees: 2 + 120*7^res.
	return 2 + 120*ipow(7, int64(res)), nil
}

// Res0Cells returns all 122 resolution 0 cells, ordered by base cell
// number.
func Res0Cells() []Cell {
	out := make([]Cell, numBaseCells)
	for bc := range out {
		out[bc] = Cell(blankCell).setMode(cellMode).setBaseCell(bc)
	}
	return out
}

// Pentagons returns the twelve pentagon cells at a resolution, ordered by
// base cell number.
func Pentagons(res int) ([]Cell, error) {
	if res < 0 || res > MaxResolution {
		return nil, ErrInvalidResolution
	}
	out := make([]Cell, 0, numPentagons)
	for bc, datum := range baseCellTable {
		if !datum.pentagon {
			continue
		}
		pent := Cell(blankCell).setMode(cellMode).setResolution(res).setBaseCell(bc)
		for r := 1; r <= res; r++ {
			pent = pent.setDigit(r, centerDigit)
		}
		out = append(out, pent)
	}
	return out, nil
}

// HexagonAreaAvgKm2 returns the average hexagon area at a resolution in
// square kilometres.
func HexagonAreaAvgKm2(res int) (float64, error) {
	if res < 0 || res > MaxResolution {
		return 0, ErrInvalidResolution
	}
	return avgHexAreaKm2[res], nil
}

// HexagonAreaAvgM2 returns the average hexagon area at a resolution in
// square metres.
func HexagonAreaAvgM2(res int) (float64, error) {
	km2, err := HexagonAreaAvgKm2(res)
	if err != nil {
		return 0, err
	}
	return km2 * 1e6, nil
}

// HexagonEdgeLengthAvgKm returns the average hexagon edge length at a
// resolution in kilometres.
func HexagonEdgeLengthAvgKm(res int) (float64, error) {
	if res < 0 || res > MaxResolution {
		return 0, ErrInvalidResolution
	}
	return avgHexEdgeLenKm[res], nil
}

// HexagonEdgeLengthAvgM returns the average hexagon edge length at a
// resolution in metres.
func HexagonEdgeLengthAvgM(res int) (float64, error) {
	km, err := HexagonEdgeLengthAvgKm(res)
	if err != nil {
		return 0, err
	}
	return km * 1000.0, nil
}

// triangleEdgeLengthsToArea computes the spherical excess of a triangle
// from its great-circle side lengths, by l'Huilier's theorem.
func triangleEdgeLengthsToArea(a, b, c float64) float64 {
	s := (a + b + c) / 2

	a = (s - a) / 2
	b = (s - b) / 2
	c = (s - c) / 2
	s = s / 2

	return 4 * math.Atan(math.Sqrt(math.Tan(s)*math.Tan(a)*math.Tan(b)*math.Tan(c)))
}

// triangleArea is the spherical area of the triangle spanning three
// points, in steradians.
func triangleArea(a, b, c geoCoord) float64 {
	return triangleEdgeLengthsToArea(
		greatCircleDistanceRads(a, b),
		greatCircleDistanceRads(b, c),
		greatCircleDistanceRads(c, a))
}

// CellAreaRads2 returns the exact spherical area of a cell in steradians,
// summed from the triangles its boundary spans with its center.
func CellAreaRads2(c Cell) (float64, error) {
	verts, err := cellBoundaryRads(c)
	if err != nil {
		return 0, err
	}
	fijk, err := cellToFaceIjk(c)
	if err != nil {
		return 0, err
	}
	center := fijk.toGeo(c.Resolution())

	area := 0.0
	for i := range verts {
		j := (i + 1) % len(verts)
		area += triangleArea(verts[i], verts[j], center)
	}
	return area, nil
}

// CellAreaKm2 returns the exact area of a cell in square kilometres.
func CellAreaKm2(c Cell) (float64, error) {
	rads2, err := CellAreaRads2(c)
	if err != nil {
		return 0, err
	}
	return rads2 * EarthRadiusKm * EarthRadiusKm, nil
}

// CellAreaM2 returns the exact area of a cell in square metres.
func CellAreaM2(c Cell) (float64, error) {
	rads2, err := CellAreaRads2(c)
	if err != nil {
		return 0, err
	}
	return rads2 * EarthRadiusM * EarthRadiusM, nil
}
