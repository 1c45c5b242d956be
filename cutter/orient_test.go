package cutter

import (
	"math"
	"reflect"
	"testing"

	"github.com/cheekybits/is"
)

func TestRingAreaSign(t *testing.T) {
	is := is.New(t)

	ccw := [][]float64{{-10, -10}, {10, -10}, {10, 10}, {-10, 10}, {-10, -10}}
	a := ringArea(ccw)
	is.True(a > 0)

	cw := [][]float64{{-10, -10}, {-10, 10}, {10, 10}, {10, -10}, {-10, -10}}
	is.True(ringArea(cw) < 0)
	is.True(math.Abs(ringArea(cw)+a) < 1e-12)

	is.Equal(ringArea([][]float64{{0, 0}, {1, 1}}), 0.0)
}

func TestRingAreaPolarCap(t *testing.T) {
	is := is.New(t)

	// Counterclockwise rim around the north pole encloses the cap. True
	// cap area above lat 80 is 2*pi*(1-sin(80°)) ≈ 0.0955 sr.
	var rim [][]float64
	for lon := -180.0; lon <= 180; lon += 5 {
		rim = append(rim, []float64{normalizeLon(lon), 80})
	}
	a := ringArea(rim)
	want := 2 * math.Pi * (1 - math.Sin(radians(80)))
	is.True(math.Abs(a-want) < 1e-9)

	reverseRing(rim)
	is.True(math.Abs(ringArea(rim)+want) < 1e-9)
}

func TestClockwise(t *testing.T) {
	is := is.New(t)

	ccwBig := [][]float64{{-10, -10}, {10, -10}, {10, 10}, {-10, 10}, {-10, -10}}
	cwSmall := [][]float64{{-2, -2}, {-2, 2}, {2, 2}, {2, -2}, {-2, -2}}

	out := Clockwise([][][]float64{ccwBig, cwSmall})
	is.Equal(len(out), 2)
	is.True(ringArea(out[0]) < 0) // exterior clockwise
	is.True(ringArea(out[1]) > 0) // hole counterclockwise
	is.Equal(out[0][0], []float64{-10, -10})
}

func TestClockwisePicksLargestExterior(t *testing.T) {
	is := is.New(t)

	small := [][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}
	big := [][]float64{{30, 30}, {50, 30}, {50, 50}, {30, 50}, {30, 30}}

	out := Clockwise([][][]float64{small, big})
	is.Equal(len(out), 2)
	is.Equal(out[0][0], []float64{30, 30})
	is.True(ringArea(out[0]) < 0)
}

func TestClockwiseIdempotent(t *testing.T) {
	is := is.New(t)

	in := [][][]float64{
		{{-10, -10}, {10, -10}, {10, 10}, {-10, 10}, {-10, -10}},
		{{-2, -2}, {-2, 2}, {2, 2}, {2, -2}, {-2, -2}},
	}
	once := Clockwise(in)
	snapshot := make([][][]float64, len(once))
	for i, r := range once {
		snapshot[i] = append([][]float64(nil), r...)
	}
	twice := Clockwise(once)
	is.True(reflect.DeepEqual(twice, snapshot))
}

func TestClockwiseDiscardsSlivers(t *testing.T) {
	is := is.New(t)

	sliver := [][]float64{
		{0, 0}, {1e-8, 0}, {1e-8, 1e-8}, {0, 0},
	}
	out := Clockwise([][][]float64{sliver})
	is.Equal(len(out), 1)
	is.Equal(len(out[0]), 0)
}
