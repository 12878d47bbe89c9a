package hexgrid

import "math"

// faceIJK locates a cell by icosahedron face and IJK coordinate on that
// face's grid.
type faceIJK struct {
	face  int
	coord coordIJK
}

const (
	numIcosaFaces = 20
	invalidFace   = -1

	// maxFaceCoord is the highest IJK component of a base cell on its home
	// face.
	maxFaceCoord = 2
)

const (
	numHexVerts  = 6
	numPentVerts = 5
)

const (
	// sqrt7 is the grid-length scale factor between adjacent resolutions.
	sqrt7 = 2.6457513110645905905016157536392604257102

	// res0UnitScale converts a resolution 0 unit grid length to gnomonic
	// unit length on the face plane.
	res0UnitScale    = 0.38196601125010500003
	invRes0UnitScale = 2.61803398874989588842

	// ap7RotationRads is the rotation between adjacent resolution axes:
	// asin(sqrt(3/28)), about 19.1 degrees.
	ap7RotationRads = 0.333473172251832115336090755351601070065900389
)

// isClassIII reports whether a resolution's grid axes are rotated relative
// to the icosahedron edges. Odd resolutions are Class III.
func isClassIII(res int) bool {
	return res%2 == 1
}

// faceCenterGeo holds the spherical centers of the 20 icosahedron faces.
// The orientation places the twelve vertices in ocean: faces pair up
// antipodally (0-17, 1-18, 2-19, 3-15, 4-16, 5-12, 6-13, 7-14, 8-10, 9-11).
var faceCenterGeo = [numIcosaFaces]geoCoord{
	{0.803582649718989942, 1.248397419617396099},    // face  0
	{1.307747883455638156, 2.536945009877921159},    // face  1
	{1.054751253523952054, -1.347517358900396623},   // face  2
	{0.600191595538186799, -0.450603909469755746},   // face  3
	{0.491715428198773866, 0.401988202911306943},    // face  4
	{0.172745327415618701, 1.678146885280433686},    // face  5
	{0.605929321571350690, 2.953923329812411617},    // face  6
	{0.427370518328979641, -1.888876200336285401},   // face  7
	{-0.079066118549212831, -0.733429513380867741},  // face  8
	{-0.230961644455383637, 0.506495587332349035},   // face  9
	{0.079066118549212831, 2.408163140208925497},    // face 10
	{0.230961644455383637, -2.635097066257444203},   // face 11
	{-0.172745327415618701, -1.463445768309359553},  // face 12
	{-0.605929321571350690, -0.187669323777381622},  // face 13
	{-0.427370518328979641, 1.252716453253507838},   // face 14
	{-0.600191595538186799, 2.690988744120037492},   // face 15
	{-0.491715428198773866, -2.739604450678486295},  // face 16
	{-0.803582649718989942, -1.893195233972397139},  // face 17
	{-1.307747883455638156, -0.604647643711872080},  // face 18
	{-1.054751253523952054, 1.794075294689396615},   // face 19
}

// faceCenterPoint is derived from faceCenterGeo at init: the face centers
// as unit 3D vectors, used for nearest-face selection.
var faceCenterPoint = func() [numIcosaFaces]vec3d {
	var pts [numIcosaFaces]vec3d
	for f, g := range faceCenterGeo {
		pts[f] = g.toVec3d()
	}
	return pts
}()

// faceAxesAzRadsCII holds, per face, the azimuth from the face center to
// each of the Class II i, j and k grid axes. The three values of a row are
// 120 degrees apart.
var faceAxesAzRadsCII = [numIcosaFaces][3]float64{
	{5.619958268523939882, 3.525563166130744542, 1.431168063737548730}, // face  0
	{5.760339081714187279, 3.665943979320991689, 1.571548876927796127}, // face  1
	{0.780213654393430055, 4.969003859179821079, 2.874608756786625717}, // face  2
	{0.430469363979999913, 4.619259568766391033, 2.524864466373195467}, // face  3
	{6.130269123335111400, 4.035874020941915804, 1.941478918548720291}, // face  4
	{2.692877706530642877, 0.598482604137447119, 4.787272808923838195}, // face  5
	{2.982963003477243874, 0.888567901084048369, 5.077358105870439581}, // face  6
	{3.532912002790141181, 1.438516900396945656, 5.627307105183336758}, // face  7
	{3.494305004259568154, 1.399909901866372864, 5.588700106652763840}, // face  8
	{3.003214169499538391, 0.908819067106342928, 5.097609271892733906}, // face  9
	{5.930472956509811562, 3.836077854116615875, 1.741682751723420374}, // face 10
	{0.138378484090254847, 4.327168688876645809, 2.232773586483450311}, // face 11
	{0.448714947059150361, 4.637505151845541521, 2.543110049452346120}, // face 12
	{0.158629650112549365, 4.347419854898940135, 2.253024752505744596}, // face 13
	{5.891865957979238535, 3.797470855586042958, 1.703075753192847583}, // face 14
	{2.711123289609793325, 0.616728187216597771, 4.805518392002988683}, // face 15
	{3.294508837434268316, 1.200113735041072948, 5.388903939827463911}, // face 16
	{3.804819692245439833, 1.710424589852244509, 5.899214794638635174}, // face 17
	{3.664438879055192436, 1.570043776661997111, 5.758834981448388221}, // face 18
	{2.361378999196363184, 0.266983896803167583, 4.455774101589558636}, // face 19
}

// Indexes into a faceNeighbors row: the face itself plus its neighbor
// across each edge, named by the pair of axes whose quadrant the edge
// bounds.
const (
	centralFace = 0
	ijFaceIdx   = 1
	kiFaceIdx   = 2
	jkFaceIdx   = 3
)

// faceOrientIJK describes a neighboring face and the transformation from
// this face's grid into the neighbor's: counter-clockwise 60 degree
// rotations followed by a translation (in resolution 0 units).
type faceOrientIJK struct {
	face      int
	translate coordIJK
	ccwRot60  int
}

// faceNeighbors gives, for each face, its orientation relative to each
// adjacent face.
var faceNeighbors = [numIcosaFaces][4]faceOrientIJK{
	{ // face 0
		{0, coordIJK{0, 0, 0}, 0},
		{4, coordIJK{2, 0, 2}, 1},
		{1, coordIJK{2, 2, 0}, 5},
		{5, coordIJK{0, 2, 2}, 3},
	},
	{ // face 1
		{1, coordIJK{0, 0, 0}, 0},
		{0, coordIJK{2, 0, 2}, 1},
		{2, coordIJK{2, 2, 0}, 5},
		{6, coordIJK{0, 2, 2}, 3},
	},
	{ // face 2
		{2, coordIJK{0, 0, 0}, 0},
		{1, coordIJK{2, 0, 2}, 1},
		{3, coordIJK{2, 2, 0}, 5},
		{7, coordIJK{0, 2, 2}, 3},
	},
	{ // face 3
		{3, coordIJK{0, 0, 0}, 0},
		{2, coordIJK{2, 0, 2}, 1},
		{4, coordIJK{2, 2, 0}, 5},
		{8, coordIJK{0, 2, 2}, 3},
	},
	{ // face 4
		{4, coordIJK{0, 0, 0}, 0},
		{3, coordIJK{2, 0, 2}, 1},
		{0, coordIJK{2, 2, 0}, 5},
		{9, coordIJK{0, 2, 2}, 3},
	},
	{ // face 5
		{5, coordIJK{0, 0, 0}, 0},
		{10, coordIJK{2, 2, 0}, 3},
		{14, coordIJK{2, 0, 2}, 3},
		{0, coordIJK{0, 2, 2}, 3},
	},
	{ // face 6
		{6, coordIJK{0, 0, 0}, 0},
		{11, coordIJK{2, 2, 0}, 3},
		{10, coordIJK{2, 0, 2}, 3},
		{1, coordIJK{0, 2, 2}, 3},
	},
	{ // face 7
		{7, coordIJK{0, 0, 0}, 0},
		{12, coordIJK{2, 2, 0}, 3},
		{11, coordIJK{2, 0, 2}, 3},
		{2, coordIJK{0, 2, 2}, 3},
	},
	{ // face 8
		{8, coordIJK{0, 0, 0}, 0},
		{13, coordIJK{2, 2, 0}, 3},
		{12, coordIJK{2, 0, 2}, 3},
		{3, coordIJK{0, 2, 2}, 3},
	},
	{ // face 9
		{9, coordIJK{0, 0, 0}, 0},
		{14, coordIJK{2, 2, 0}, 3},
		{13, coordIJK{2, 0, 2}, 3},
		{4, coordIJK{0, 2, 2}, 3},
	},
	{ // face 10
		{10, coordIJK{0, 0, 0}, 0},
		{5, coordIJK{2, 2, 0}, 3},
		{6, coordIJK{2, 0, 2}, 3},
		{15, coordIJK{0, 2, 2}, 3},
	},
	{ // face 11
		{11, coordIJK{0, 0, 0}, 0},
		{6, coordIJK{2, 2, 0}, 3},
		{7, coordIJK{2, 0, 2}, 3},
		{16, coordIJK{0, 2, 2}, 3},
	},
	{ // face 12
		{12, coordIJK{0, 0, 0}, 0},
		{7, coordIJK{2, 2, 0}, 3},
		{8, coordIJK{2, 0, 2}, 3},
		{17, coordIJK{0, 2, 2}, 3},
	},
	{ // face 13
		{13, coordIJK{0, 0, 0}, 0},
		{8, coordIJK{2, 2, 0}, 3},
		{9, coordIJK{2, 0, 2}, 3},
		{18, coordIJK{0, 2, 2}, 3},
	},
	{ // face 14
		{14, coordIJK{0, 0, 0}, 0},
		{9, coordIJK{2, 2, 0}, 3},
		{5, coordIJK{2, 0, 2}, 3},
		{19, coordIJK{0, 2, 2}, 3},
	},
	{ // face 15
		{15, coordIJK{0, 0, 0}, 0},
		{16, coordIJK{2, 0, 2}, 1},
		{19, coordIJK{2, 2, 0}, 5},
		{10, coordIJK{0, 2, 2}, 3},
	},
	{ // face 16
		{16, coordIJK{0, 0, 0}, 0},
		{17, coordIJK{2, 0, 2}, 1},
		{15, coordIJK{2, 2, 0}, 5},
		{11, coordIJK{0, 2, 2}, 3},
	},
	{ // face 17
		{17, coordIJK{0, 0, 0}, 0},
		{18, coordIJK{2, 0, 2}, 1},
		{16, coordIJK{2, 2, 0}, 5},
		{12, coordIJK{0, 2, 2}, 3},
	},
	{ // face 18
		{18, coordIJK{0, 0, 0}, 0},
		{19, coordIJK{2, 0, 2}, 1},
		{17, coordIJK{2, 2, 0}, 5},
		{13, coordIJK{0, 2, 2}, 3},
	},
	{ // face 19
		{19, coordIJK{0, 0, 0}, 0},
		{15, coordIJK{2, 0, 2}, 1},
		{18, coordIJK{2, 2, 0}, 5},
		{14, coordIJK{0, 2, 2}, 3},
	},
}

// adjacentFaceDir is derived from faceNeighbors at init: for a pair of
// adjacent faces, the quadrant index (ijFaceIdx, kiFaceIdx or jkFaceIdx) of
// the shared edge as seen from the first face; invalidFace for non-adjacent
// pairs.
var adjacentFaceDir = func() [numIcosaFaces][numIcosaFaces]int {
	var dirs [numIcosaFaces][numIcosaFaces]int
	for i := range dirs {
		for j := range dirs[i] {
			dirs[i][j] = invalidFace
		}
	}
	for f := range faceNeighbors {
		for quadrant := ijFaceIdx; quadrant <= jkFaceIdx; quadrant++ {
			dirs[f][faceNeighbors[f][quadrant].face] = quadrant
		}
	}
	return dirs
}()

// maxDimByCIIres and unitScaleByCIIres hold, for substrate work indexed by
// Class II resolution (adjusted resolution, 0..16), the maximum IJK
// dimension of a face and the grid scale in resolution 0 units. Odd
// entries are unused and left at -1.
var maxDimByCIIres, unitScaleByCIIres = func() ([17]int, [17]int) {
	var maxDim, unitScale [17]int
	for r := range maxDim {
		maxDim[r] = -1
		unitScale[r] = -1
	}
	scale := 1
	for r := 0; r <= 16; r += 2 {
		unitScale[r] = scale
		maxDim[r] = 2 * scale
		scale *= 7
	}
	return maxDim, unitScale
}()

// geoToClosestFace finds the icosahedron face whose center is nearest the
// point, returning the face and the squared 3D distance to its center.
// Ties go to the lowest face index.
func geoToClosestFace(g geoCoord) (int, float64) {
	v := g.toVec3d()
	face := 0
	// The two farthest points on the unit sphere are 2 apart, so any
	// squared distance is at most 4.
	sqd := 5.0
	for f := 0; f < numIcosaFaces; f++ {
		if d := faceCenterPoint[f].squareDistanceTo(v); d < sqd {
			face = f
			sqd = d
		}
	}
	return face, sqd
}

// geoToHex2d projects a point onto its nearest face plane, scaled for the
// given resolution.
func geoToHex2d(g geoCoord, res int) (int, vec2d) {
	face, sqd := geoToClosestFace(g)

	// cos(r) = 1 - 2*sin^2(r/2) = 1 - sqd/2
	r := math.Acos(1 - sqd/2)
	if r < epsilon {
		return face, vec2d{}
	}

	// Angle from the Class II i-axis, counter-clockwise.
	theta := posAngleRads(faceAxesAzRadsCII[face][0] -
		posAngleRads(azimuthRads(faceCenterGeo[face], g)))
	if isClassIII(res) {
		theta = posAngleRads(theta - ap7RotationRads)
	}

	// Gnomonic scaling, then scale to the unit length of the resolution.
	r = math.Tan(r)
	r /= res0UnitScale
	for i := 0; i < res; i++ {
		r *= sqrt7
	}

	return face, vec2d{x: r * math.Cos(theta), y: r * math.Sin(theta)}
}

// geoToFaceIJK finds the containing cell of a point at the given
// resolution, in face coordinates.
func geoToFaceIJK(g geoCoord, res int) faceIJK {
	face, v := geoToHex2d(g, res)
	return faceIJK{face: face, coord: hex2dToCoordIJK(v)}
}

// hex2dToGeo converts a planar face point back to a spherical coordinate.
// substrate marks coordinates on the aperture 3/3r vertex grid, which carry
// an extra scale factor.
func hex2dToGeo(v vec2d, face, res int, substrate bool) geoCoord {
	r := v.mag()
	if r < epsilon {
		return faceCenterGeo[face]
	}

	theta := math.Atan2(v.y, v.x)

	for i := 0; i < res; i++ {
		r /= sqrt7
	}
	if substrate {
		r /= 3.0
		if isClassIII(res) {
			r /= sqrt7
		}
	}

	r *= res0UnitScale
	r = math.Atan(r)

	// A substrate grid has already been rotated into Class II.
	if !substrate && isClassIII(res) {
		theta = posAngleRads(theta + ap7RotationRads)
	}
	theta = posAngleRads(faceAxesAzRadsCII[face][0] - theta)

	return azDistancePoint(faceCenterGeo[face], theta, r)
}

// toGeo converts face coordinates to the spherical center of the cell.
func (h faceIJK) toGeo(res int) geoCoord {
	return hex2dToGeo(h.coord.hex2d(), h.face, res, false)
}

// overage classifies how far a face coordinate leaks off its face.
type overage int

const (
	noOverage overage = iota
	faceEdge
	newFace
)

// adjustOverageClassII folds a coordinate that leaks off its face onto the
// adjacent face. res must be a Class II resolution. pentLeading4 adjusts
// for the rotated IK quadrant of a pentagon with leading digit 4;
// substrate marks vertex-grid coordinates.
func adjustOverageClassII(h faceIJK, res int, pentLeading4, substrate bool) (faceIJK, overage) {
	maxDim := maxDimByCIIres[res]
	if substrate {
		maxDim *= 3
	}

	sum := h.coord.i + h.coord.j + h.coord.k
	if substrate && sum == maxDim {
		return h, faceEdge
	}
	if sum <= maxDim {
		return h, noOverage
	}

	var orient faceOrientIJK
	switch {
	case h.coord.k > 0 && h.coord.j > 0:
		orient = faceNeighbors[h.face][jkFaceIdx]
	case h.coord.k > 0:
		orient = faceNeighbors[h.face][kiFaceIdx]
		if pentLeading4 {
			// Rotate the coordinate out of the missing K subsequence,
			// pivoting on the pentagon center.
			origin := coordIJK{i: maxDim}
			h.coord = h.coord.sub(origin).rotate60cw().add(origin)
		}
	default:
		orient = faceNeighbors[h.face][ijFaceIdx]
	}

	h.face = orient.face
	for i := 0; i < orient.ccwRot60; i++ {
		h.coord = h.coord.rotate60ccw()
	}

	unitScale := unitScaleByCIIres[res]
	if substrate {
		unitScale *= 3
	}
	h.coord = h.coord.add(orient.translate.scale(unitScale)).normalize()

	// Overage points on pentagon boundaries can end up on edges.
	if substrate && h.coord.i+h.coord.j+h.coord.k == maxDim {
		return h, faceEdge
	}
	return h, newFace
}

// adjustPentVertOverage folds a pentagon vertex-grid coordinate until it
// settles on a face.
func adjustPentVertOverage(h faceIJK, res int) faceIJK {
	for {
		var ov overage
		h, ov = adjustOverageClassII(h, res, false, true)
		if ov != newFace {
			return h
		}
	}
}

// Cell vertex offsets on the substrate grid, counter-clockwise from the
// i-axis, for even (Class II) and odd (Class III) resolutions.
var (
	hexVertsCII = [numHexVerts]coordIJK{
		{2, 1, 0}, {1, 2, 0}, {0, 2, 1}, {0, 1, 2}, {1, 0, 2}, {2, 0, 1},
	}
	hexVertsCIII = [numHexVerts]coordIJK{
		{5, 4, 0}, {1, 5, 0}, {0, 5, 4}, {0, 1, 5}, {4, 0, 5}, {5, 0, 1},
	}
	pentVertsCII = [numPentVerts]coordIJK{
		{2, 1, 0}, {1, 2, 0}, {0, 2, 1}, {0, 1, 2}, {1, 0, 2},
	}
	pentVertsCIII = [numPentVerts]coordIJK{
		{5, 4, 0}, {1, 5, 0}, {0, 5, 4}, {0, 1, 5}, {4, 0, 5},
	}
)

// toVerts moves the cell center onto the aperture 3/3r substrate grid and
// returns the cell's vertices on that grid, plus the adjusted (Class II)
// resolution the vertices live at.
func (h faceIJK) toVerts(res int) ([numHexVerts]faceIJK, int) {
	verts := hexVertsCII
	if isClassIII(res) {
		verts = hexVertsCIII
	}

	// Two aperture 3 steps get us to the substrate; one more aperture 7r
	// returns odd resolutions to Class II.
	h.coord = h.coord.downAp3().downAp3r()
	if isClassIII(res) {
		h.coord = h.coord.downAp7r()
		res++
	}

	var out [numHexVerts]faceIJK
	for v := 0; v < numHexVerts; v++ {
		out[v] = faceIJK{
			face:  h.face,
			coord: h.coord.add(verts[v]).normalize(),
		}
	}
	return out, res
}

// pentToVerts is the pentagon analog of toVerts.
func (h faceIJK) pentToVerts(res int) ([numPentVerts]faceIJK, int) {
	verts := pentVertsCII
	if isClassIII(res) {
		verts = pentVertsCIII
	}

	h.coord = h.coord.downAp3().downAp3r()
	if isClassIII(res) {
		h.coord = h.coord.downAp7r()
		res++
	}

	var out [numPentVerts]faceIJK
	for v := 0; v < numPentVerts; v++ {
		out[v] = faceIJK{
			face:  h.face,
			coord: h.coord.add(verts[v]).normalize(),
		}
	}
	return out, res
}

// icosaEdgeVerts returns the planar corners of a face triangle at the
// substrate scale, for locating projection-plane crossings.
func icosaEdgeVerts(adjRes int) (v0, v1, v2 vec2d) {
	maxDim := float64(maxDimByCIIres[adjRes])
	v0 = vec2d{x: 3.0 * maxDim}
	v1 = vec2d{x: -1.5 * maxDim, y: 3.0 * sqrt3_2 * maxDim}
	v2 = vec2d{x: -1.5 * maxDim, y: -3.0 * sqrt3_2 * maxDim}
	return v0, v1, v2
}

// faceEdgeSegment selects the face-triangle edge bounding the given
// quadrant.
func faceEdgeSegment(quadrant int, v0, v1, v2 vec2d) (vec2d, vec2d) {
	switch quadrant {
	case ijFaceIdx:
		return v0, v1
	case jkFaceIdx:
		return v1, v2
	default: // KI
		return v2, v0
	}
}

// toBoundary computes length cell boundary vertices starting at vertex
// start, splitting any edge that crosses between projection planes. A full
// hexagon loop can produce up to 10 vertices at Class III resolutions.
func (h faceIJK) toBoundary(res, start, length int) []geoCoord {
	centerIJK := h
	fijkVerts, adjRes := centerIJK.toVerts(res)

	boundary := make([]geoCoord, 0, 10)

	// A full loop needs one extra iteration to test the closing edge for a
	// distortion vertex.
	additionalIteration := 0
	if length == numHexVerts {
		additionalIteration = 1
	}

	lastFace := invalidFace
	lastOverage := noOverage
	for vert := start; vert < start+length+additionalIteration; vert++ {
		v := vert % numHexVerts

		fijk, ov := adjustOverageClassII(fijkVerts[v], adjRes, false, true)

		// Every icosahedron face is its own projection plane: an edge that
		// crosses between faces needs a vertex at the crossing. Class II
		// edges land their endpoints on the fold itself, so only Class III
		// resolutions split.
		if isClassIII(res) && vert > start && fijk.face != lastFace && lastOverage != faceEdge {
			lastV := (v + 5) % numHexVerts
			orig2d0 := fijkVerts[lastV].coord.hex2d()
			orig2d1 := fijkVerts[v].coord.hex2d()

			v0, v1, v2 := icosaEdgeVerts(adjRes)

			face2 := lastFace
			if lastFace == centerIJK.face {
				face2 = fijk.face
			}
			edge0, edge1 := faceEdgeSegment(adjacentFaceDir[centerIJK.face][face2], v0, v1, v2)

			inter := v2dIntersect(orig2d0, orig2d1, edge0, edge1)
			// A crossing exactly at a cell vertex needs no extra point:
			// both halves of the edge live on a single face.
			if !orig2d0.almostEquals(inter) && !orig2d1.almostEquals(inter) {
				boundary = append(boundary, hex2dToGeo(inter, centerIJK.face, adjRes, true))
			}
		}

		if vert < start+length {
			boundary = append(boundary, hex2dToGeo(fijk.coord.hex2d(), fijk.face, adjRes, true))
		}

		lastFace = fijk.face
		lastOverage = ov
	}
	return boundary
}

// pentToBoundary is the pentagon analog of toBoundary. Pentagon cells
// always straddle faces, so every vertex pair is checked for a crossing.
func (h faceIJK) pentToBoundary(res, start, length int) []geoCoord {
	centerIJK := h
	fijkVerts, adjRes := centerIJK.pentToVerts(res)

	boundary := make([]geoCoord, 0, 10)

	additionalIteration := 0
	if length == numPentVerts {
		additionalIteration = 1
	}

	var lastFijk faceIJK
	for vert := start; vert < start+length+additionalIteration; vert++ {
		v := vert % numPentVerts

		fijk := adjustPentVertOverage(fijkVerts[v], adjRes)

		// All Class III pentagon edges cross icosahedron edges; Class II
		// pentagons land vertices on the edges instead.
		if isClassIII(res) && vert > start {
			tmpFijk := fijk

			orig2d0 := lastFijk.coord.hex2d()

			currentToLastDir := adjacentFaceDir[tmpFijk.face][lastFijk.face]
			orient := faceNeighbors[tmpFijk.face][currentToLastDir]

			tmpFijk.face = orient.face
			ijk := tmpFijk.coord
			for i := 0; i < orient.ccwRot60; i++ {
				ijk = ijk.rotate60ccw()
			}
			ijk = ijk.add(orient.translate.scale(unitScaleByCIIres[adjRes] * 3)).normalize()
			tmpFijk.coord = ijk

			orig2d1 := ijk.hex2d()

			v0, v1, v2 := icosaEdgeVerts(adjRes)
			edge0, edge1 := faceEdgeSegment(adjacentFaceDir[tmpFijk.face][fijk.face], v0, v1, v2)

			inter := v2dIntersect(orig2d0, orig2d1, edge0, edge1)
			boundary = append(boundary, hex2dToGeo(inter, tmpFijk.face, adjRes, true))
		}

		if vert < start+length {
			boundary = append(boundary, hex2dToGeo(fijk.coord.hex2d(), fijk.face, adjRes, true))
		}

		lastFijk = fijk
	}
	return boundary
}
