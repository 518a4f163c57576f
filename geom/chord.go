package geom

// LineString is an open, ordered chain of points (as opposed to Ring,
// which is implicitly closed).
type LineString []Point

// Length returns the length of the chain.
func (l LineString) Length() float64 {
	var total float64
	for i := 0; i+1 < len(l); i++ {
		total += l[i].Dist(l[i+1])
	}
	return total
}

// chordHit records where a chord crosses one edge of a ring.
type chordHit struct {
	edge int
	at   Point
}

// IntersectRing returns every distinct point at which chord meets an edge
// of ring, whether it crosses the edge or only touches it (for instance
// at a chord endpoint or a ring vertex). collinearOverlap is true if the
// chord runs collinear with, and overlapping, any edge, which the caller
// must treat as a rejection.
func IntersectRing(ring Ring, chord Segment) (hits []Point, collinearOverlap bool) {
	seen := make([]Point, 0, 2)
	for i := 0; i < ring.NumEdges(); i++ {
		pt, ok, overlap := segIntersect(ring.Edge(i), chord)
		if overlap {
			return nil, true
		}
		if !ok {
			continue
		}
		dup := false
		for _, s := range seen {
			if s.ApproxEqual(pt) {
				dup = true
				break
			}
		}
		if !dup {
			seen = append(seen, pt)
		}
	}
	return seen, false
}

// SplitRing cuts ring into exactly two open arcs using the two points at
// which chord crosses it. It returns false if chord does not cross the
// ring at exactly two distinct points.
//
// The cut walks the ring's vertex cycle starting at whichever crossing
// point comes first in vertex order, collecting vertices up to the
// second crossing point (arc1), then continues from the second crossing
// point back around to the first (arc2). This always yields exactly two
// arcs directly, unlike libraries that difference a LineString against
// a LinearRing and can additionally split at the ring's implicit seam
// (vertex 0), requiring a defensive re-splice of a spurious third arc.
func SplitRing(ring Ring, chord Segment) (arc1, arc2 LineString, ok bool) {
	hits, overlap := IntersectRing(ring, chord)
	if overlap || len(hits) != 2 {
		return nil, nil, false
	}

	fromEdge1, ok1 := locateOnRing(ring, hits[0], true)
	toEdge1, ok2 := locateOnRing(ring, hits[1], false)
	fromEdge2, ok3 := locateOnRing(ring, hits[1], true)
	toEdge2, ok4 := locateOnRing(ring, hits[0], false)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return nil, nil, false
	}

	arc1 = walkRing(ring, hits[0], fromEdge1, hits[1], toEdge1)
	arc2 = walkRing(ring, hits[1], fromEdge2, hits[0], toEdge2)
	if len(arc1) < 3 || len(arc2) < 3 {
		return nil, nil, false
	}
	return arc1, arc2, true
}

// locateOnRing returns the index of the edge of ring on which pt lies.
// When pt falls strictly inside an edge, only one edge qualifies and
// atStart is irrelevant. When pt coincides exactly with a ring vertex,
// two edges meet there; atStart picks the edge starting at pt (for a
// walk leaving pt) versus the edge ending at pt (for a walk arriving at
// pt), so that walkRing never re-emits the shared vertex on both sides
// of a chord endpoint that lands exactly on the ring.
func locateOnRing(ring Ring, pt Point, atStart bool) (int, bool) {
	n := ring.NumEdges()
	for i := 0; i < n; i++ {
		edge := ring.Edge(i)
		if edge.A.ApproxEqual(pt) {
			if atStart {
				return i, true
			}
			return (i - 1 + n) % n, true
		}
		if edge.B.ApproxEqual(pt) {
			if !atStart {
				return i, true
			}
			return (i + 1) % n, true
		}
		if edge.DistToPoint(pt) <= Epsilon {
			return i, true
		}
	}
	return 0, false
}

// walkRing builds the open chain starting at `from` (on edge fromEdge),
// following ring vertices forward, and ending at `to` (on edge toEdge).
func walkRing(ring Ring, from Point, fromEdge int, to Point, toEdge int) LineString {
	chain := LineString{from}
	n := len(ring)
	i := fromEdge
	for {
		next := ring[(i+1)%n]
		if i == toEdge {
			chain = append(chain, to)
			return chain
		}
		chain = append(chain, next)
		i = (i + 1) % n
		if i == fromEdge {
			// walked all the way around without reaching toEdge again;
			// guard against infinite loop on malformed input.
			chain = append(chain, to)
			return chain
		}
	}
}
