package cutter

import (
	"math"
	"sort"
)

// silverArea is the spherical area, in steradians, below which a ring is
// treated as a numeric artifact of cutting and dropped.
const silverArea = 1e-12

// ringArea approximates the signed spherical area of a ring in steradians.
// Counterclockwise rings come out positive. Rings that wind a pole are
// corrected by a full sphere when the raw sum lands on the wrong sheet.
func ringArea(ring [][]float64) float64 {
	if len(ring) < 3 {
		return 0
	}
	area := 0.0
	travel := 0.0
	for i := 1; i < len(ring); i++ {
		d := normalizeLon(ring[i][0] - ring[i-1][0])
		mid := (ring[i][1] + ring[i-1][1]) / 2
		area += radians(d) * (1 - math.Sin(radians(mid)))
		travel += d
	}
	if math.Abs(travel) > 180 {
		if area > 2*math.Pi {
			area -= 4 * math.Pi
		} else if area < -2*math.Pi {
			area += 4 * math.Pi
		}
	}
	return area
}

func reverseRing(ring [][]float64) {
	for i, j := 0, len(ring)-1; i < j; i, j = i+1, j-1 {
		ring[i], ring[j] = ring[j], ring[i]
	}
}

// Clockwise normalizes a polygon's winding: the largest ring becomes the
// clockwise exterior at index zero, remaining rings become counterclockwise
// holes. Rings below the sliver threshold are discarded; a polygon that
// loses every ring keeps a single empty one.
func Clockwise(poly [][][]float64) [][][]float64 {
	type measured struct {
		ring [][]float64
		area float64
	}
	kept := make([]measured, 0, len(poly))
	for _, r := range poly {
		a := ringArea(r)
		if math.Abs(a) < silverArea {
			continue
		}
		kept = append(kept, measured{ring: r, area: a})
	}
	if len(kept) == 0 {
		return [][][]float64{placeholderRing()}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return math.Abs(kept[i].area) > math.Abs(kept[j].area)
	})

	out := make([][][]float64, len(kept))
	for i, k := range kept {
		flip := k.area < 0 // holes stay counterclockwise
		if i == 0 {
			flip = k.area > 0 // exterior turns clockwise
		}
		if flip {
			reverseRing(k.ring)
		}
		out[i] = k.ring
	}
	return out
}
