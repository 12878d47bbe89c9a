package hexgrid

import "math"

// vec2d is a point in the planar coordinate system of a single icosahedron
// face.
type vec2d struct {
	x, y float64
}

func (v vec2d) mag() float64 {
	return math.Sqrt(v.x*v.x + v.y*v.y)
}

func (v vec2d) almostEquals(w vec2d) bool {
	return math.Abs(v.x-w.x) < epsilon && math.Abs(v.y-w.y) < epsilon
}

// v2dIntersect finds the intersection of the line through p0, p1 with the
// line through p2, p3. Callers guarantee the lines are not parallel.
func v2dIntersect(p0, p1, p2, p3 vec2d) vec2d {
	s1 := vec2d{x: p1.x - p0.x, y: p1.y - p0.y}
	s2 := vec2d{x: p3.x - p2.x, y: p3.y - p2.y}

	t := (s2.x*(p0.y-p2.y) - s2.y*(p0.x-p2.x)) / (-s2.x*s1.y + s1.x*s2.y)

	return vec2d{x: p0.x + t*s1.x, y: p0.y + t*s1.y}
}

// vec3d is a point on (or near) the unit sphere.
type vec3d struct {
	x, y, z float64
}

// squareDistanceTo returns the squared straight-line distance between two
// points. Squared form is enough for nearest-face selection and saves the
// square root.
func (v vec3d) squareDistanceTo(w vec3d) float64 {
	dx := v.x - w.x
	dy := v.y - w.y
	dz := v.z - w.z
	return dx*dx + dy*dy + dz*dz
}

// toVec3d projects a spherical coordinate onto the unit sphere.
func (g geoCoord) toVec3d() vec3d {
	r := math.Cos(g.lat)
	return vec3d{
		x: math.Cos(g.lng) * r,
		y: math.Sin(g.lng) * r,
		z: math.Sin(g.lat),
	}
}
