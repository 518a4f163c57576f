package geom

// UnionAdjacent computes the union of two polygons known to share exactly
// one boundary chain (the precondition pairwise optimization checks
// before calling this, see optimize.Pairwise). It returns false if that
// precondition doesn't hold: zero shared length, or a shared locus that
// isn't a single contiguous chain on both exteriors.
//
// The algorithm splices the two exteriors at the shared chain's two
// endpoints, keeping each polygon's non-shared arc and discarding the
// shared one; the mirror image of SplitRing, which is how the two cells
// came to share that boundary in the first place.
func UnionAdjacent(a, b Polygon) (Polygon, bool) {
	chain, ok := sharedChain(a.Exterior, b.Exterior)
	if !ok || len(chain) < 2 {
		return Polygon{}, false
	}
	s, e := chain[0], chain[len(chain)-1]

	ownA, ok := nonSharedArc(a.Exterior, s, e, chain)
	if !ok {
		return Polygon{}, false
	}
	ownB, ok := nonSharedArc(b.Exterior, e, s, reverseChain(chain))
	if !ok {
		return Polygon{}, false
	}

	merged := make([]Point, 0, len(ownA)+len(ownB))
	merged = append(merged, ownA...)
	for i, p := range ownB {
		if i == 0 && len(merged) > 0 && merged[len(merged)-1].ApproxEqual(p) {
			continue
		}
		merged = append(merged, p)
	}
	if len(merged) > 1 && merged[0].ApproxEqual(merged[len(merged)-1]) {
		merged = merged[:len(merged)-1]
	}

	ring := removeCollinear(Ring(merged))
	if err := ring.Validate(); err != nil {
		return Polygon{}, false
	}
	ring = ring.Canonicalized(true)

	holes := make([]Ring, 0, len(a.Holes)+len(b.Holes))
	holes = append(holes, a.Holes...)
	holes = append(holes, b.Holes...)
	poly, err := NewPolygon(ring, holes)
	if err != nil {
		return Polygon{}, false
	}
	return poly, true
}

// sharedChain returns the ordered vertex chain where a and b's exteriors
// coincide, as a contiguous sequence of points common to both rings.
func sharedChain(a, b Ring) ([]Point, bool) {
	var shared []Point
	for i := 0; i < a.NumEdges(); i++ {
		ea := a.Edge(i)
		for j := 0; j < b.NumEdges(); j++ {
			seg, ok := collinearOverlapSegment(ea, b.Edge(j))
			if ok {
				shared = appendDistinct(shared, seg.A)
				shared = appendDistinct(shared, seg.B)
			}
		}
	}
	if len(shared) < 2 {
		return nil, false
	}
	ordered, ok := orderChain(shared)
	return ordered, ok
}

func appendDistinct(pts []Point, p Point) []Point {
	for _, q := range pts {
		if q.ApproxEqual(p) {
			return pts
		}
	}
	return append(pts, p)
}

// orderChain arranges an unordered set of collinear points into a single
// connected polyline ordered end-to-end; it fails if there are fewer than
// 2 of them or the two farthest-apart points coincide. Collinearity is not
// checked: points off the line are ordered by their projection onto it.
func orderChain(pts []Point) ([]Point, bool) {
	if len(pts) < 2 {
		return nil, false
	}
	// project every point onto the line through the two farthest-apart
	// points, then sort by that projection, robust for a set of
	// collinear points regardless of insertion order.
	var best Segment
	bestLen := -1.0
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			d := pts[i].Dist(pts[j])
			if d > bestLen {
				bestLen = d
				best = Segment{A: pts[i], B: pts[j]}
			}
		}
	}
	dir := best.B.Sub(best.A)
	l := dir.Len()
	if l < Epsilon {
		return nil, false
	}
	dir = dir.Scale(1 / l)
	type scored struct {
		p Point
		t float64
	}
	scoredPts := make([]scored, len(pts))
	for i, p := range pts {
		scoredPts[i] = scored{p, p.Sub(best.A).Dot(dir)}
	}
	for i := 1; i < len(scoredPts); i++ {
		for j := i; j > 0 && scoredPts[j-1].t > scoredPts[j].t; j-- {
			scoredPts[j-1], scoredPts[j] = scoredPts[j], scoredPts[j-1]
		}
	}
	out := make([]Point, len(scoredPts))
	for i, s := range scoredPts {
		out[i] = s.p
	}
	return out, true
}

func reverseChain(chain []Point) []Point {
	out := make([]Point, len(chain))
	for i, p := range chain {
		out[len(chain)-1-i] = p
	}
	return out
}

// collinearOverlapSegment returns the overlapping sub-segment of two
// collinear, overlapping segments.
func collinearOverlapSegment(s1, s2 Segment) (Segment, bool) {
	if !pointOnLine(s1, s2.A) || !pointOnLine(s1, s2.B) {
		return Segment{}, false
	}
	d := s1.B.Sub(s1.A)
	l := d.Len()
	if l < Epsilon {
		return Segment{}, false
	}
	u := d.Scale(1 / l)
	proj := func(p Point) float64 { return p.Sub(s1.A).Dot(u) }
	a0, a1 := 0.0, l
	b0, b1 := proj(s2.A), proj(s2.B)
	if b0 > b1 {
		b0, b1 = b1, b0
	}
	lo := maxf(a0, b0)
	hi := minf(a1, b1)
	if hi-lo <= Epsilon {
		return Segment{}, false
	}
	return Segment{A: s1.A.Add(u.Scale(lo)), B: s1.A.Add(u.Scale(hi))}, true
}

// nonSharedArc walks ring from s to e the way around that avoids the
// given shared chain, returning its vertex sequence (inclusive of s and
// e).
func nonSharedArc(ring Ring, s, e Point, sharedChain []Point) ([]Point, bool) {
	sAsFrom, ok1 := locateOnRing(ring, s, true)
	eAsTo, ok2 := locateOnRing(ring, e, false)
	eAsFrom, ok3 := locateOnRing(ring, e, true)
	sAsTo, ok4 := locateOnRing(ring, s, false)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return nil, false
	}
	arc1 := walkRing(ring, s, sAsFrom, e, eAsTo)
	arc2 := walkRing(ring, e, eAsFrom, s, sAsTo)
	if chainMatches(LineString(arc1), sharedChain) {
		return arc2, true
	}
	if chainMatches(LineString(arc2), sharedChain) {
		return arc1, true
	}
	// neither arc matches the shared chain exactly (e.g. due to
	// floating-point jitter in chain ordering), fall back to the
	// shorter arc as the "shared" one, the longer as ring's own.
	if LineString(arc1).Length() < LineString(arc2).Length() {
		return arc2, true
	}
	return arc1, true
}

func chainMatches(arc LineString, chain []Point) bool {
	if len(arc) == 0 || len(chain) == 0 {
		return false
	}
	return (arc[0].ApproxEqual(chain[0]) && arc[len(arc)-1].ApproxEqual(chain[len(chain)-1])) ||
		(arc[0].ApproxEqual(chain[len(chain)-1]) && arc[len(arc)-1].ApproxEqual(chain[0]))
}
