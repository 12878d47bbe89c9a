package hexgrid

import (
	"errors"
	"math"
)

const (
	// EarthRadiusKm is the authalic Earth radius in kilometres: the radius
	// of the sphere with the same surface area as the WGS84 ellipsoid. All
	// published areas and distances use it.
	EarthRadiusKm = 6371.007180918475

	// EarthRadiusM is the authalic Earth radius in metres.
	EarthRadiusM = EarthRadiusKm * 1000.0
)

const (
	degsPerRad = 180.0 / math.Pi
	radsPerDeg = math.Pi / 180.0

	twoPi = 2.0 * math.Pi

	// Margin under which two angles or planar coordinates are treated as
	// identical.
	epsilon = 1.0e-16

	epsilonDeg = 1.0e-9
	epsilonRad = epsilonDeg * radsPerDeg
)

// Sentinel errors reported by the engine. Callers branch with errors.Is;
// wrapped messages carry the offending value.
var (
	ErrInvalidResolution  = errors.New("resolution out of range")
	ErrInvalidCell        = errors.New("invalid cell identifier")
	ErrInvalidEdge        = errors.New("invalid directed edge identifier")
	ErrInvalidCoordinate  = errors.New("coordinate is not finite")
	ErrResolutionMismatch = errors.New("cells have different resolutions")
	ErrNotNeighbors       = errors.New("cells are not neighbors")
	ErrPentagonDistortion = errors.New("pentagon distortion prevents operation")
	ErrInvalidPolygon     = errors.New("invalid polygon")
	ErrDuplicateCell      = errors.New("duplicate cell in input set")
	ErrInvalidK           = errors.New("grid radius out of range")
	ErrCellsTooFar        = errors.New("cells are too far apart for a shared local frame")
)

// LatLng is a geographic coordinate in degrees. Degrees are the unit at
// every public boundary of this package; all internal spherical math runs
// on radians.
type LatLng struct {
	Lat float64
	Lng float64
}

// geoCoord is the internal radian form: lat in [-pi/2, pi/2], lng in
// (-pi, pi] once normalized.
type geoCoord struct {
	lat float64
	lng float64
}

func (ll LatLng) toCoord() geoCoord {
	lat := ll.Lat * radsPerDeg
	if lat > math.Pi/2 {
		lat = math.Pi / 2
	} else if lat < -math.Pi/2 {
		lat = -math.Pi / 2
	}
	return geoCoord{lat: lat, lng: constrainLng(ll.Lng * radsPerDeg)}
}

func (g geoCoord) toLatLng() LatLng {
	return LatLng{Lat: g.lat * degsPerRad, Lng: constrainLng(g.lng) * degsPerRad}
}

func (ll LatLng) finite() bool {
	return !math.IsNaN(ll.Lat) && !math.IsInf(ll.Lat, 0) &&
		!math.IsNaN(ll.Lng) && !math.IsInf(ll.Lng, 0)
}

// posAngleRads normalizes an angle to [0, 2pi).
func posAngleRads(rads float64) float64 {
	if rads < 0.0 {
		rads += twoPi
	}
	if rads >= twoPi {
		rads -= twoPi
	}
	return rads
}

// constrainLng wraps a longitude to (-pi, pi].
func constrainLng(lng float64) float64 {
	for lng > math.Pi {
		lng -= twoPi
	}
	for lng < -math.Pi {
		lng += twoPi
	}
	return lng
}

func geoAlmostEqual(a, b geoCoord) bool {
	return math.Abs(a.lat-b.lat) < epsilonRad && math.Abs(a.lng-b.lng) < epsilonRad
}

// azimuthRads returns the azimuth from p1 to p2 in radians, measured from
// north, positive eastward.
func azimuthRads(p1, p2 geoCoord) float64 {
	return math.Atan2(
		math.Cos(p2.lat)*math.Sin(p2.lng-p1.lng),
		math.Cos(p1.lat)*math.Sin(p2.lat)-
			math.Sin(p1.lat)*math.Cos(p2.lat)*math.Cos(p2.lng-p1.lng))
}

// azDistancePoint computes the point at the given azimuth and great-circle
// distance (radians) from p1. Poles collapse to lng 0 so the result stays
// canonical.
func azDistancePoint(p1 geoCoord, az, distance float64) geoCoord {
	if distance < epsilon {
		return p1
	}

	var p2 geoCoord
	az = posAngleRads(az)

	if az < epsilon || math.Abs(az-math.Pi) < epsilon {
		// Due north or south.
		if az < epsilon {
			p2.lat = p1.lat + distance
		} else {
			p2.lat = p1.lat - distance
		}
		switch {
		case math.Abs(p2.lat-math.Pi/2) < epsilon:
			p2.lat = math.Pi / 2
			p2.lng = 0.0
		case math.Abs(p2.lat+math.Pi/2) < epsilon:
			p2.lat = -math.Pi / 2
			p2.lng = 0.0
		default:
			p2.lng = constrainLng(p1.lng)
		}
		return p2
	}

	sinLat := math.Sin(p1.lat)*math.Cos(distance) +
		math.Cos(p1.lat)*math.Sin(distance)*math.Cos(az)
	if sinLat > 1.0 {
		sinLat = 1.0
	}
	if sinLat < -1.0 {
		sinLat = -1.0
	}
	p2.lat = math.Asin(sinLat)

	switch {
	case math.Abs(p2.lat-math.Pi/2) < epsilon:
		p2.lat = math.Pi / 2
		p2.lng = 0.0
	case math.Abs(p2.lat+math.Pi/2) < epsilon:
		p2.lat = -math.Pi / 2
		p2.lng = 0.0
	default:
		sinLng := math.Sin(az) * math.Sin(distance) / math.Cos(p2.lat)
		cosLng := (math.Cos(distance) - math.Sin(p1.lat)*math.Sin(p2.lat)) /
			math.Cos(p1.lat) / math.Cos(p2.lat)
		if sinLng > 1.0 {
			sinLng = 1.0
		}
		if sinLng < -1.0 {
			sinLng = -1.0
		}
		if cosLng > 1.0 {
			cosLng = 1.0
		}
		if cosLng < -1.0 {
			cosLng = -1.0
		}
		p2.lng = constrainLng(p1.lng + math.Atan2(sinLng, cosLng))
	}
	return p2
}

// greatCircleDistanceRads returns the haversine distance between two points
// as an angle in radians.
func greatCircleDistanceRads(a, b geoCoord) float64 {
	sinLat := math.Sin((b.lat - a.lat) / 2.0)
	sinLng := math.Sin((b.lng - a.lng) / 2.0)
	h := sinLat*sinLat + math.Cos(a.lat)*math.Cos(b.lat)*sinLng*sinLng
	return 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// GreatCircleDistanceRads returns the great-circle distance between two
// coordinates as an angle in radians.
func GreatCircleDistanceRads(a, b LatLng) float64 {
	return greatCircleDistanceRads(a.toCoord(), b.toCoord())
}

// GreatCircleDistanceKm returns the great-circle distance between two
// coordinates in kilometres.
func GreatCircleDistanceKm(a, b LatLng) float64 {
	return GreatCircleDistanceRads(a, b) * EarthRadiusKm
}

// GreatCircleDistanceM returns the great-circle distance between two
// coordinates in metres.
func GreatCircleDistanceM(a, b LatLng) float64 {
	return GreatCircleDistanceRads(a, b) * EarthRadiusM
}
