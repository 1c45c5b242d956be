package cutter

// cutLineString splits an open coordinate sequence at every crossing of
// the cut line, returning the fragments in traversal order. Every input
// point is first nudged clear of the line, so no output point lies within
// eps of it.
func cutLineString(points [][]float64, line CutLine, eps float64) [][][]float64 {
	if len(points) == 0 {
		return nil
	}
	if len(points) == 1 {
		// A lone point cannot cross anything and passes through as-is.
		return [][][]float64{points}
	}

	var out [][][]float64
	prev := move(points[0], line, eps)
	cur := [][]float64{prev}
	for _, p := range points[1:] {
		q := move(p, line, eps)
		if hasIntersect(prev, q, line, eps) {
			if x := intersect(prev, q, line); intersectBetween(x, line) {
				cur = append(cur, moveIntersection(x, prev, line, eps))
				if len(cur) > 1 {
					out = append(out, cur)
				}
				cur = [][]float64{moveIntersection(x, q, line, eps)}
			}
		}
		cur = append(cur, q)
		prev = q
	}
	if len(cur) > 1 {
		out = append(out, cur)
	}
	return out
}

// cutRing splits a closed ring at the cut line. A ring's first and last
// points coincide, so when the ring is cut the leading and trailing
// fragments belong to the same piece and are stitched back together.
func cutRing(ring [][]float64, line CutLine, eps float64) [][][]float64 {
	if len(ring) < 2 {
		return [][][]float64{ring}
	}
	frags := cutLineString(ring, line, eps)
	if len(frags) <= 1 {
		return frags
	}
	last := frags[len(frags)-1]
	merged := append(last, frags[0][1:]...)
	out := [][][]float64{merged}
	return append(out, frags[1:len(frags)-1]...)
}
