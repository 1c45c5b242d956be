package cutter

import (
	"testing"

	"github.com/cheekybits/is"
)

func TestPoleWinding(t *testing.T) {
	is := is.New(t)

	// Clockwise around the north pole: westward travel.
	cw := [][]float64{{0, 85}, {-90, 85}, {180, 85}, {90, 85}, {0, 85}}
	is.Equal(poleWinding(cw), 1)

	ccw := [][]float64{{0, 85}, {90, 85}, {180, 85}, {-90, 85}, {0, 85}}
	is.Equal(poleWinding(ccw), -1)

	plain := [][]float64{{10, 0}, {20, 0}, {20, 10}, {10, 10}, {10, 0}}
	is.Equal(poleWinding(plain), 0)
}

func TestHandlePoleAddsRim(t *testing.T) {
	is := is.New(t)

	line := PoleParallel(90)
	poly := [][][]float64{
		{{0, 85}, {-90, 85}, {180, 85}, {90, 85}, {0, 85}},
	}
	out := handlePole(poly, line, DefaultEpsilon)
	is.Equal(len(out), 2)

	rim := out[0]
	is.Equal(len(rim), int(360/walkStep)+1)
	is.Equal(rim[0], []float64{0, 90 - DefaultEpsilon})
	is.Equal(poleWinding(rim), 1)
	is.Equal(out[1], poly[0])
}

func TestHandlePoleLeavesDisagreeingRing(t *testing.T) {
	is := is.New(t)

	// Encloses the north pole, cut at the south pole: nothing to do.
	poly := [][][]float64{
		{{0, 85}, {-90, 85}, {180, 85}, {90, 85}, {0, 85}},
	}
	out := handlePole(poly, PoleParallel(-90), DefaultEpsilon)
	is.Equal(out, poly)

	flat := [][][]float64{
		{{10, 0}, {20, 0}, {20, 10}, {10, 10}, {10, 0}},
	}
	is.Equal(handlePole(flat, PoleParallel(90), DefaultEpsilon), flat)
}

func TestHandlePolePromotesAnnulusHole(t *testing.T) {
	is := is.New(t)

	// A polar annulus: exterior winds the pole one way, the hole the
	// other. The hole is the boundary nearest the pole and becomes the
	// exterior.
	exterior := [][]float64{{0, 70}, {-90, 70}, {180, 70}, {90, 70}, {0, 70}}
	hole := [][]float64{{0, 80}, {90, 80}, {180, 80}, {-90, 80}, {0, 80}}
	poly := [][][]float64{exterior, hole}

	out := handlePole(poly, PoleParallel(90), DefaultEpsilon)
	is.Equal(len(out), 2)
	is.Equal(out[0], hole)
	is.Equal(out[1], exterior)
}

func TestCutPolygonAtPole(t *testing.T) {
	is := is.New(t)

	line := PoleParallel(90)
	poly := [][][]float64{
		{{0, 89}, {-90, 89}, {180, 89}, {90, 89}, {0, 89}},
	}
	polys, diags := cutPolygon(poly, line, DefaultEpsilon)
	is.Equal(len(diags), 0)
	is.Equal(len(polys), 1)
	is.Equal(len(polys[0]), 2)
	is.Equal(len(polys[0][0]), int(360/walkStep)+1)
}
