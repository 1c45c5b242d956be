package cutter

import (
	"fmt"
	"sort"

	"github.com/golang/geo/s2"
)

const (
	// walkStep is the interpolation step, in degrees, for points synthesized
	// while walking along a cut line between fragment endpoints.
	walkStep = 0.5

	// foldBase folds the two sides of a cut line onto one ordering scale:
	// low-side endpoints keep their coordinate, high-side endpoints map to
	// foldBase minus it. The constant only has to clear the coordinate
	// range so the two sides never interleave.
	foldBase = 400
)

// An endpoint is the first or last point of an open fragment, projected
// onto the cut line ordering scale.
type endpoint struct {
	frag  int
	side  int
	coord float64
	key   float64
}

func orthoCoord(p []float64, line CutLine) float64 {
	if line.Kind == Meridian {
		return p[1]
	}
	return p[0]
}

func makeEndpoint(frag int, p []float64, line CutLine) endpoint {
	e := endpoint{frag: frag, side: sideOf(p, line), coord: orthoCoord(p, line)}
	if e.side < 0 {
		e.key = e.coord
	} else {
		e.key = foldBase - e.coord
	}
	return e
}

// reassembleRings stitches open ring fragments back into closed rings.
// Fragment ends and starts are ordered along the folded cut line scale;
// walking that scale clockwise, each fragment end connects to the next
// fragment start, with interpolated points filling the gap along the line.
// Fragments shorter than three points are degenerate slivers and dropped.
func reassembleRings(frags [][][]float64, line CutLine, eps float64) [][][]float64 {
	open := make([][][]float64, 0, len(frags))
	for _, f := range frags {
		if len(f) >= 3 {
			open = append(open, f)
		}
	}
	if len(open) == 0 {
		return nil
	}

	starts := make([]endpoint, len(open))
	ends := make([]endpoint, len(open))
	for i, f := range open {
		starts[i] = makeEndpoint(i, f[0], line)
		ends[i] = makeEndpoint(i, f[len(f)-1], line)
	}
	sort.SliceStable(starts, func(i, j int) bool { return starts[i].key > starts[j].key })
	sort.SliceStable(ends, func(i, j int) bool { return ends[i].key > ends[j].key })

	// Each end connects forward to the start just below it on the scale.
	// Starts above the first end wrap around, shifting the pairing.
	rot := 0
	for rot < len(starts) && starts[rot].key > ends[0].key {
		rot++
	}

	owner := make([]int, len(open))
	for i := range owner {
		owner[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if owner[i] != i {
			owner[i] = find(owner[i])
		}
		return owner[i]
	}

	var rings [][][]float64
	for i, e := range ends {
		s := starts[(i+rot)%len(starts)]
		re := find(e.frag)
		rs := find(s.frag)
		walk := walkAlong(line, e, s, eps)
		if re == rs {
			ring := append(open[re], walk...)
			ring = append(ring, ring[0])
			rings = append(rings, ring)
			continue
		}
		open[re] = append(open[re], walk...)
		open[re] = append(open[re], open[rs]...)
		owner[rs] = re
	}
	return rings
}

// walkAlong synthesizes the points joining fragment end `from` to fragment
// start `to` along the cut line, stepping in walkStep increments and
// rounding the line's interval bounds when the walk has to switch sides.
func walkAlong(line CutLine, from, to endpoint, eps float64) [][]float64 {
	var out [][]float64
	side := from.side
	coord := from.coord
	for {
		// Clockwise along the folded scale means descending coordinates on
		// the low side and ascending on the high side.
		if side == to.side && ((side < 0 && to.coord <= coord) || (side > 0 && to.coord >= coord)) {
			out = append(out, stepPoints(line, side, coord, to.coord, eps)...)
			return out
		}
		bound := line.From
		if side > 0 {
			bound = line.To
		}
		out = append(out, stepPoints(line, side, coord, bound, eps)...)
		out = append(out, boundPoint(line, bound))
		side = -side
		coord = bound
	}
}

// stepPoints emits interpolated points strictly between from and to,
// walkStep apart, on the given side of the line.
func stepPoints(line CutLine, side int, from, to float64, eps float64) [][]float64 {
	dir := -1.0
	if side > 0 {
		dir = 1.0
	}
	var out [][]float64
	for c := from + dir*walkStep; (to-c)*dir > 0; c += dir * walkStep {
		out = append(out, sidePoint(line, side, c, eps))
	}
	return out
}

func sidePoint(line CutLine, side int, coord, eps float64) []float64 {
	if line.Kind == Meridian {
		return []float64{normalizeLon(line.Value + float64(side)*eps), coord}
	}
	return []float64{normalizeLon(coord), line.Value + float64(side)*eps}
}

// boundPoint is the corner point at an interval bound, exactly on the line.
func boundPoint(line CutLine, bound float64) []float64 {
	if line.Kind == Meridian {
		return []float64{normalizeLon(line.Value), bound}
	}
	return []float64{normalizeLon(bound), line.Value}
}

func boundRect(ring [][]float64) s2.Rect {
	r := s2.EmptyRect()
	for _, p := range ring {
		r = r.AddPoint(s2.LatLngFromDegrees(p[1], p[0]))
	}
	return r
}

// assembleCut turns the cut fragments of a polygon's exterior plus its
// untouched interior rings into complete polygons, assigning each untouched
// hole to the reassembled exterior whose bounding rectangle contains it.
func assembleCut(frags [][][]float64, untouched [][][]float64, line CutLine, eps float64) ([][][][]float64, []Diagnostic) {
	var diags []Diagnostic
	rings := reassembleRings(frags, line, eps)
	if len(rings) == 0 {
		diags = append(diags, Diagnostic{
			Code:    DiagDegenerate,
			Message: fmt.Sprintf("polygon collapsed while cutting at %s %v", line.Kind, line.Value),
		})
		if len(untouched) > 0 {
			return [][][][]float64{untouched}, diags
		}
		return [][][][]float64{{placeholderRing()}}, diags
	}

	polys := make([][][][]float64, len(rings))
	rects := make([]s2.Rect, len(rings))
	for i, r := range rings {
		polys[i] = [][][]float64{r}
		rects[i] = boundRect(r)
	}
	for _, hole := range untouched {
		hr := boundRect(hole)
		target := -1
		for i, r := range rects {
			if r.Contains(hr) {
				target = i
				break
			}
		}
		if target < 0 {
			target = 0
			diags = append(diags, Diagnostic{
				Code:    DiagUnresolvedHole,
				Message: "interior ring fits no exterior, attached to the first",
			})
		}
		polys[target] = append(polys[target], hole)
	}
	return polys, diags
}

// placeholderRing stands in for geometry that degenerated to nothing: an
// empty ring keeps the containing polygon structurally valid.
func placeholderRing() [][]float64 {
	return [][]float64{}
}
