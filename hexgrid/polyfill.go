package hexgrid

import (
	"math"
	"sort"
)

// Loop is a closed ring of vertices in degrees. The last vertex connects
// back to the first; either winding order is accepted.
type Loop []LatLng

// Polygon is the region bounded by an exterior loop minus any holes.
type Polygon struct {
	Exterior Loop
	Holes    []Loop
}

// geoLoop is a loop in internal radian coordinates.
type geoLoop []geoCoord

// dblEpsilon is the difference between 1.0 and the next float64, used to
// nudge ray casts off exact vertex hits.
const dblEpsilon = 2.220446049250313e-16

// bbox is a latitude/longitude rectangle in radians. east < west marks a
// box spanning the antimeridian.
type bbox struct {
	north, south, east, west float64
}

func (b bbox) isTransmeridian() bool {
	return b.east < b.west
}

func (b bbox) contains(g geoCoord) bool {
	if g.lat < b.south || g.lat > b.north {
		return false
	}
	if b.isTransmeridian() {
		return g.lng >= b.west || g.lng <= b.east
	}
	return g.lng >= b.west && g.lng <= b.east
}

// bboxFromGeoLoop computes the loop's bounding box. A loop with an arc
// spanning more than half the sphere in longitude is taken to cross the
// antimeridian, and its east/west bounds swap to mark that.
func bboxFromGeoLoop(loop geoLoop) bbox {
	if len(loop) == 0 {
		return bbox{}
	}
	b := bbox{
		north: -math.MaxFloat64,
		south: math.MaxFloat64,
		east:  -math.MaxFloat64,
		west:  math.MaxFloat64,
	}
	isTransmeridian := false
	for i, v := range loop {
		next := loop[(i+1)%len(loop)]
		if v.lat < b.south {
			b.south = v.lat
		}
		if v.lat > b.north {
			b.north = v.lat
		}
		if v.lng < b.west {
			b.west = v.lng
		}
		if v.lng > b.east {
			b.east = v.lng
		}
		if math.Abs(v.lng-next.lng) > math.Pi {
			isTransmeridian = true
		}
	}
	if isTransmeridian {
		b.east, b.west = b.west, b.east
	}
	return b
}

// normalizeLng shifts western longitudes east of the antimeridian when the
// containing loop crosses it, keeping the ray cast on one contiguous
// range.
func normalizeLng(lng float64, isTransmeridian bool) float64 {
	if isTransmeridian && lng < 0 {
		return lng + 2*math.Pi
	}
	return lng
}

// pointInsideGeoLoop runs an even-odd ray cast westward from the point.
// Exact hits on a vertex latitude or longitude are nudged off by one ulp
// so that two loops sharing an edge claim any point on it exactly once.
func pointInsideGeoLoop(loop geoLoop, box bbox, g geoCoord) bool {
	if !box.contains(g) {
		return false
	}
	isTransmeridian := box.isTransmeridian()
	contains := false

	lat := g.lat
	lng := normalizeLng(g.lng, isTransmeridian)

	for i := range loop {
		a := loop[i]
		b := loop[(i+1)%len(loop)]

		// The cast wants the segment south to north.
		if a.lat > b.lat {
			a, b = b, a
		}

		// A ray through a vertex would intersect both adjoining segments;
		// nudge north so it passes through at most one.
		if lat == a.lat || lat == b.lat {
			lat += dblEpsilon
		}

		if lat < a.lat || lat > b.lat {
			continue
		}

		aLng := normalizeLng(a.lng, isTransmeridian)
		bLng := normalizeLng(b.lng, isTransmeridian)

		// Ties on longitude break westerly.
		if aLng == lng || bLng == lng {
			lng -= dblEpsilon
		}

		ratio := (lat - a.lat) / (b.lat - a.lat)
		testLng := normalizeLng(aLng+ratio*(bLng-aLng), isTransmeridian)
		if testLng < lng {
			contains = !contains
		}
	}
	return contains
}

// preparedPolygon caches a polygon's radian loops and bounding boxes for
// repeated containment tests.
type preparedPolygon struct {
	exterior    geoLoop
	exteriorBox bbox
	holes       []geoLoop
	holeBoxes   []bbox
}

func (l Loop) toGeoLoop() (geoLoop, error) {
	out := make(geoLoop, len(l))
	for i, v := range l {
		if !v.finite() {
			return nil, ErrInvalidPolygon
		}
		out[i] = v.toCoord()
	}
	return out, nil
}

func preparePolygon(p Polygon) (*preparedPolygon, error) {
	exterior, err := p.Exterior.toGeoLoop()
	if err != nil {
		return nil, err
	}
	pp := &preparedPolygon{
		exterior:    exterior,
		exteriorBox: bboxFromGeoLoop(exterior),
		holes:       make([]geoLoop, len(p.Holes)),
		holeBoxes:   make([]bbox, len(p.Holes)),
	}
	for i, hole := range p.Holes {
		h, err := hole.toGeoLoop()
		if err != nil {
			return nil, err
		}
		pp.holes[i] = h
		pp.holeBoxes[i] = bboxFromGeoLoop(h)
	}
	return pp, nil
}

// contains reports whether the point is inside the exterior and outside
// every hole.
func (pp *preparedPolygon) contains(g geoCoord) bool {
	if !pointInsideGeoLoop(pp.exterior, pp.exteriorBox, g) {
		return false
	}
	for i, hole := range pp.holes {
		if pointInsideGeoLoop(hole, pp.holeBoxes[i], g) {
			return false
		}
	}
	return true
}

// pentagonRadiusKm returns a pentagon's center to vertex distance at the
// given resolution. Pentagons are the smallest cells at any resolution,
// so this bounds the sampling step that cannot skip over a cell.
func pentagonRadiusKm(res int) (float64, error) {
	pents, err := Pentagons(res)
	if err != nil {
		return 0, err
	}
	center, err := CellToLatLng(pents[0])
	if err != nil {
		return 0, err
	}
	boundary, err := CellToBoundary(pents[0])
	if err != nil {
		return 0, err
	}
	return GreatCircleDistanceKm(center, boundary[0]), nil
}

// lineHexEstimate returns how many samples along the segment are needed
// for every crossed cell to receive at least one.
func lineHexEstimate(origin, destination LatLng, radiusKm float64) int {
	dist := GreatCircleDistanceKm(origin, destination)
	estimate := int(math.Ceil(dist / (2 * radiusKm)))
	if estimate == 0 {
		return 1
	}
	return estimate
}

// traceSeeds indexes sample points along every loop of the polygon,
// giving the flood fill a starting cell on each stretch of boundary.
func traceSeeds(p Polygon, res int) ([]Cell, error) {
	radiusKm, err := pentagonRadiusKm(res)
	if err != nil {
		return nil, err
	}
	loops := make([]Loop, 0, len(p.Holes)+1)
	loops = append(loops, p.Exterior)
	loops = append(loops, p.Holes...)

	var seeds []Cell
	for _, loop := range loops {
		for i := range loop {
			origin := loop[i]
			destination := loop[(i+1)%len(loop)]
			n := lineHexEstimate(origin, destination, radiusKm)
			for j := 0; j < n; j++ {
				sample := LatLng{
					Lat: origin.Lat*float64(n-j)/float64(n) + destination.Lat*float64(j)/float64(n),
					Lng: origin.Lng*float64(n-j)/float64(n) + destination.Lng*float64(j)/float64(n),
				}
				c, err := LatLngToCell(sample, res)
				if err != nil {
					return nil, err
				}
				seeds = append(seeds, c)
			}
		}
	}
	return seeds, nil
}

// PolygonToCells returns the cells at the given resolution whose centers
// the polygon contains, in ascending index order. The fill traces every
// loop for seed cells and floods inward from them, so each disjoint
// stretch of the region is reached through its own boundary. A polygon
// too small to contain any cell center yields an empty result.
func PolygonToCells(p Polygon, res int) ([]Cell, error) {
	if res < 0 || res > MaxResolution {
		return nil, ErrInvalidResolution
	}
	if len(p.Exterior) == 0 {
		return nil, nil
	}
	pp, err := preparePolygon(p)
	if err != nil {
		return nil, err
	}
	seeds, err := traceSeeds(p, res)
	if err != nil {
		return nil, err
	}

	visited := make(map[Cell]bool, len(seeds))
	queue := make([]Cell, 0, len(seeds))
	for _, s := range seeds {
		if !visited[s] {
			visited[s] = true
			queue = append(queue, s)
		}
	}

	var out []Cell
	for head := 0; head < len(queue); head++ {
		c := queue[head]
		center, err := CellToLatLng(c)
		if err != nil {
			return nil, err
		}
		if !pp.contains(center.toCoord()) {
			continue
		}
		out = append(out, c)

		disk, err := GridDisk(c, 1)
		if err != nil {
			return nil, err
		}
		for _, n := range disk {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}
