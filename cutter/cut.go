package cutter

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"

	"github.com/tegeta/ol3-cut/graticule"
)

// DefaultEpsilon is the perturbation distance, in degrees, applied to
// points lying on a cut line.
const DefaultEpsilon = 1e-6

// A Cutter rotates geometry into a projection's oblique aspect and splits
// it along the projection's cut lines. The zero value cuts at the
// antimeridian with no rotation.
//
// Cut never fails on numeric degeneracy: geometry that collapses comes back
// as a placeholder with a Diagnostic attached. Polygon rings are reordered
// and reversed in place.
type Cutter struct {
	// Rotation moves the projection's metapole; the zero value applies no
	// rotation.
	Rotation graticule.Rotation

	// Lines are the projection specific cut segments, applied in order
	// after the implicit outer cut.
	Lines []CutLine

	// Azimuthal selects the pole parallel at -90 as the outer cut instead
	// of the antimeridian.
	Azimuthal bool

	// Epsilon overrides DefaultEpsilon when positive.
	Epsilon float64
}

func (c *Cutter) epsilon() float64 {
	if c.Epsilon > 0 {
		return c.Epsilon
	}
	return DefaultEpsilon
}

func (c *Cutter) rotation() graticule.Rotation {
	if (c.Rotation == graticule.Rotation{}) {
		return graticule.Identity()
	}
	return c.Rotation
}

func (c *Cutter) cutLines() []CutLine {
	outer := Antimeridian()
	if c.Azimuthal {
		outer = PoleParallel(-90)
	}
	return append([]CutLine{outer}, c.Lines...)
}

// Cut rotates and splits a geometry. The returned diagnostics report
// recoverable conditions; the error is non-nil only for invalid cut lines
// or an unknown geometry type.
func (c *Cutter) Cut(g *geojson.Geometry) (*geojson.Geometry, []Diagnostic, error) {
	if g == nil {
		return nil, nil, fmt.Errorf("cut: nil geometry")
	}
	for i, l := range c.Lines {
		if err := l.validate(); err != nil {
			return nil, nil, fmt.Errorf("cut line %d: %w", i, err)
		}
	}
	return c.cutGeometry(g)
}

func (c *Cutter) cutGeometry(g *geojson.Geometry) (*geojson.Geometry, []Diagnostic, error) {
	rot := c.rotation()
	eps := c.epsilon()
	lines := c.cutLines()

	switch g.Type {
	case geojson.GeometryPoint:
		return geojson.NewPointGeometry(rotatePoint(rot, g.Point)), nil, nil

	case geojson.GeometryMultiPoint:
		pts := make([][]float64, len(g.MultiPoint))
		for i, p := range g.MultiPoint {
			pts[i] = rotatePoint(rot, p)
		}
		return geojson.NewMultiPointGeometry(pts...), nil, nil

	case geojson.GeometryLineString:
		pieces := cutStrings([][][]float64{rotateLine(rot, g.LineString)}, lines, eps)
		if len(pieces) == 1 {
			return geojson.NewLineStringGeometry(pieces[0]), nil, nil
		}
		return geojson.NewMultiLineStringGeometry(pieces...), nil, nil

	case geojson.GeometryMultiLineString:
		in := make([][][]float64, len(g.MultiLineString))
		for i, ls := range g.MultiLineString {
			in[i] = rotateLine(rot, ls)
		}
		return geojson.NewMultiLineStringGeometry(cutStrings(in, lines, eps)...), nil, nil

	case geojson.GeometryPolygon:
		polys, diags := c.cutPolygons([][][][]float64{rotatePoly(rot, Clockwise(g.Polygon))}, lines, eps)
		if len(polys) == 1 {
			return geojson.NewPolygonGeometry(polys[0]), diags, nil
		}
		return geojson.NewMultiPolygonGeometry(polys...), diags, nil

	case geojson.GeometryMultiPolygon:
		in := make([][][][]float64, len(g.MultiPolygon))
		for i, p := range g.MultiPolygon {
			in[i] = rotatePoly(rot, Clockwise(p))
		}
		polys, diags := c.cutPolygons(in, lines, eps)
		return geojson.NewMultiPolygonGeometry(polys...), diags, nil

	case geojson.GeometryCollection:
		out := make([]*geojson.Geometry, len(g.Geometries))
		var diags []Diagnostic
		for i, sub := range g.Geometries {
			cut, d, err := c.cutGeometry(sub)
			if err != nil {
				return nil, nil, fmt.Errorf("geometry %d: %w", i, err)
			}
			out[i] = cut
			diags = append(diags, d...)
		}
		return geojson.NewCollectionGeometry(out...), diags, nil
	}
	return nil, nil, fmt.Errorf("unknown geometry type: %v", g.Type)
}

// cutStrings runs every line string through each cut line in turn,
// accumulating fragments.
func cutStrings(in [][][]float64, lines []CutLine, eps float64) [][][]float64 {
	pieces := in
	for _, line := range lines {
		next := make([][][]float64, 0, len(pieces))
		for _, p := range pieces {
			next = append(next, cutLineString(p, line, eps)...)
		}
		pieces = next
	}
	return pieces
}

func (c *Cutter) cutPolygons(in [][][][]float64, lines []CutLine, eps float64) ([][][][]float64, []Diagnostic) {
	polys := in
	var diags []Diagnostic
	for _, line := range lines {
		next := make([][][][]float64, 0, len(polys))
		for _, p := range polys {
			cut, d := cutPolygon(p, line, eps)
			next = append(next, cut...)
			diags = append(diags, d...)
		}
		polys = next
	}
	return polys, diags
}

// cutPolygon splits one polygon at one cut line. Rings the line does not
// touch pass through; cut ring fragments are reassembled into new
// exteriors and the untouched interior rings redistributed among them.
// Input rings are already normalized clockwise-exterior, and the seam walk
// preserves that winding, so the output needs no renormalization.
func cutPolygon(poly [][][]float64, line CutLine, eps float64) ([][][][]float64, []Diagnostic) {
	if line.isPole() {
		poly = handlePole(poly, line, eps)
	}

	var frags [][][]float64
	var untouched [][][]float64
	wasCut := false
	for _, ring := range poly {
		fs := cutRing(ring, line, eps)
		if len(fs) == 1 {
			untouched = append(untouched, fs[0])
			continue
		}
		wasCut = true
		frags = append(frags, fs...)
	}
	if !wasCut {
		return [][][][]float64{untouched}, nil
	}
	return assembleCut(frags, untouched, line, eps)
}

func rotatePoint(rot graticule.Rotation, p []float64) []float64 {
	if rot.IsIdentity() {
		return p
	}
	lon, lat := rot.Forward(p[0], p[1])
	return []float64{lon, lat}
}

func rotateLine(rot graticule.Rotation, ls [][]float64) [][]float64 {
	if rot.IsIdentity() {
		return ls
	}
	out := make([][]float64, len(ls))
	for i, p := range ls {
		out[i] = rotatePoint(rot, p)
	}
	return out
}

func rotatePoly(rot graticule.Rotation, poly [][][]float64) [][][]float64 {
	if rot.IsIdentity() {
		return poly
	}
	out := make([][][]float64, len(poly))
	for i, r := range poly {
		out[i] = rotateLine(rot, r)
	}
	return out
}
