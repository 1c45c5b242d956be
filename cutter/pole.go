package cutter

// poleWinding counts how often a ring wraps around the poles: +1 per
// westward antimeridian crossing, -1 per eastward one. A ring that does not
// enclose a pole sums to zero.
func poleWinding(ring [][]float64) int {
	t := 0
	for i := 1; i < len(ring); i++ {
		d := ring[i][0] - ring[i-1][0]
		if d > 180 {
			t++
		} else if d < -180 {
			t--
		}
	}
	return t
}

// handlePole prepares a polygon for a full pole-parallel cut. A polygon
// whose exterior winds around the cut pole has no boundary there, so a rim
// ring just short of the pole is synthesized as the new exterior. When an
// interior ring already winds the opposite way it is the true exterior and
// gets promoted instead.
func handlePole(poly [][][]float64, line CutLine, eps float64) [][][]float64 {
	if len(poly) == 0 || len(poly[0]) == 0 {
		return poly
	}
	pole := 1
	if line.Value < 0 {
		pole = -1
	}
	w := poleWinding(poly[0])
	if w == 0 || (w > 0) != (pole > 0) {
		return poly
	}
	for i := 1; i < len(poly); i++ {
		h := poleWinding(poly[i])
		if h != 0 && (h > 0) == (pole < 0) {
			// Annulus around the pole: the hole bounds the region there.
			promoted := append([][][]float64{poly[i]}, poly[0:i]...)
			promoted = append(promoted, poly[i+1:]...)
			return handlePole(promoted, line, eps)
		}
	}
	return append([][][]float64{poleRim(line, pole, eps)}, poly...)
}

// poleRim is a closed ring circling the pole at eps inside the cut
// parallel, traversed so the enclosed pole stays on its left.
func poleRim(line CutLine, pole int, eps float64) [][]float64 {
	lat := line.Value - float64(pole)*eps
	n := int(360 / walkStep)
	ring := make([][]float64, 0, n+1)
	for k := 0; k <= n; k++ {
		ring = append(ring, []float64{normalizeLon(-float64(pole) * walkStep * float64(k)), lat})
	}
	return ring
}
