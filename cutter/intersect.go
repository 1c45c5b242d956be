package cutter

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"github.com/tegeta/ol3-cut/graticule"
)

func normalizeLon(lon float64) float64 {
	return graticule.NormalizeLongitude(lon)
}

func radians(deg float64) float64 {
	return (s1.Angle(deg) * s1.Degree).Radians()
}

func degrees(rad float64) float64 {
	return s1.Angle(rad).Degrees()
}

func pointOnSphere(p []float64) s2.Point {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(p[1], p[0]))
}

// hasIntersect reports whether the segment from a to b crosses the cut
// line. For the antimeridian the short-arc convention makes the test a
// longitude gap check. Pole parallels use proximity: points moved off the
// pole by move sit eps away only up to rounding, so the trigger threshold
// is half the perturbation to keep them from re-triggering.
func hasIntersect(a, b []float64, line CutLine, eps float64) bool {
	switch line.Kind {
	case Meridian:
		if line.Value == 180 || line.Value == -180 {
			return math.Abs(a[0]-b[0]) > 180
		}
		if math.Abs(a[0]-b[0]) > 180 {
			// Short arc wraps the antimeridian, not this meridian.
			return false
		}
		return (a[0]-line.Value)*(b[0]-line.Value) < 0
	case Parallel:
		if line.isPole() {
			return (math.Abs(a[1]-line.Value) < eps/2) != (math.Abs(b[1]-line.Value) < eps/2)
		}
		return (a[1]-line.Value)*(b[1]-line.Value) < 0
	}
	panic("cutter: unvalidated cut line kind")
}

// intersect returns the point where the great circle through a and b meets
// the cut line. The caller has established via hasIntersect that the
// crossing exists; numeric degeneracies fall back to an endpoint.
func intersect(a, b []float64, line CutLine) []float64 {
	switch line.Kind {
	case Meridian:
		return crossMeridian(a, b, line.Value)
	case Parallel:
		return crossParallel(a, b, line)
	}
	panic("cutter: unvalidated cut line kind")
}

func crossMeridian(a, b []float64, lon float64) []float64 {
	if normalizeLon(a[0]-lon) == 0 || a[1] == 90 || a[1] == -90 {
		return []float64{normalizeLon(lon), a[1]}
	}
	if normalizeLon(b[0]-lon) == 0 || b[1] == 90 || b[1] == -90 {
		return []float64{normalizeLon(lon), b[1]}
	}

	n := pointOnSphere(a).PointCross(pointOnSphere(b))
	lr := radians(lon)
	m := r3.Vector{X: -math.Sin(lr), Y: math.Cos(lr), Z: 0}
	d := n.Vector.Cross(m)
	if d.Norm() == 0 {
		// Segment lies on the meridian plane.
		return []float64{normalizeLon(lon), a[1]}
	}
	lat := degrees(math.Atan2(d.Z, math.Hypot(d.X, d.Y)))
	if math.Abs(normalizeLon(degrees(math.Atan2(d.Y, d.X))-lon)) > 90 {
		// The plane intersection on the far hemisphere; take the antipode.
		lat = -lat
	}
	return []float64{normalizeLon(lon), lat}
}

func crossParallel(a, b []float64, line CutLine) []float64 {
	lat := line.Value
	if line.isPole() {
		// One endpoint sits near the pole; return it snapped to the rim.
		if math.Abs(a[1]-lat) < math.Abs(b[1]-lat) {
			return []float64{a[0], a[1]}
		}
		return []float64{b[0], b[1]}
	}
	if a[1] == lat {
		return []float64{a[0], lat}
	}
	if b[1] == lat {
		return []float64{b[0], lat}
	}
	if a[1] == b[1] || a[1] == 90 || a[1] == -90 {
		return []float64{a[0], a[1]}
	}

	n := pointOnSphere(a).PointCross(pointOnSphere(b))
	r := math.Hypot(n.X, n.Y)
	if r == 0 {
		// Great circle is the equator or a pole-point degeneracy.
		return []float64{a[0], a[1]}
	}
	k := -n.Z * math.Tan(radians(lat)) / r
	if k < -1 || k > 1 {
		return []float64{a[0], a[1]}
	}
	alpha := math.Atan2(n.Y, n.X)
	c := math.Acos(k)
	lon1 := normalizeLon(degrees(alpha + c))
	lon2 := normalizeLon(degrees(alpha - c))
	if shortArcContains(a[0], b[0], lon1) {
		return []float64{lon1, lat}
	}
	return []float64{lon2, lat}
}

// shortArcContains reports whether longitude c lies on the short arc from
// a to b.
func shortArcContains(a, b, c float64) bool {
	d := normalizeLon(b - a)
	dc := normalizeLon(c - a)
	if d >= 0 {
		return dc >= 0 && dc <= d
	}
	return dc <= 0 && dc >= d
}

// intersectBetween reports whether the crossing point lies within the cut
// line's interval on the orthogonal axis, bounds included.
func intersectBetween(p []float64, line CutLine) bool {
	switch line.Kind {
	case Meridian:
		return p[1] >= line.From && p[1] <= line.To
	default:
		return p[0] >= line.From && p[0] <= line.To
	}
}

// sideOf classifies a point relative to the cut line: +1 on the high side,
// -1 on the low side. Points exactly on a meridian count as low side; for
// parallels the on-line convention pushes away from the nearer pole.
func sideOf(p []float64, line CutLine) int {
	if line.Kind == Meridian {
		if normalizeLon(p[0]-line.Value) > 0 {
			return 1
		}
		return -1
	}
	d := p[1] - line.Value
	if d > 0 {
		return 1
	}
	if d < 0 {
		return -1
	}
	if line.Value > 0 {
		return -1
	}
	return 1
}

// move nudges a point lying within eps of the cut line to exactly eps off
// it, on the side given by the on-line convention of sideOf. Points outside
// the line's interval or already clear of it are returned unchanged.
func move(p []float64, line CutLine, eps float64) []float64 {
	if line.Kind == Meridian {
		if p[1] < line.From || p[1] > line.To {
			return p
		}
		d := normalizeLon(p[0] - line.Value)
		if math.Abs(d) >= eps {
			return p
		}
		side := 1
		if d <= 0 {
			side = -1
		}
		return []float64{normalizeLon(line.Value + float64(side)*eps), p[1]}
	}
	if p[0] < line.From || p[0] > line.To {
		return p
	}
	d := p[1] - line.Value
	if math.Abs(d) >= eps {
		return p
	}
	side := sideOf(p, line)
	return []float64{p[0], line.Value + float64(side)*eps}
}

// moveIntersection places a crossing point eps off the cut line on the same
// side as its fragment neighbor, so both cut ends stay strictly clear of
// the line.
func moveIntersection(p, neighbor []float64, line CutLine, eps float64) []float64 {
	side := float64(sideOf(neighbor, line))
	if line.Kind == Meridian {
		return []float64{normalizeLon(line.Value + side*eps), p[1]}
	}
	return []float64{p[0], line.Value + side*eps}
}
