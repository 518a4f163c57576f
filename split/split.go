package split

import (
	"log"

	"github.com/arl/covpartition/geom"
)

// Split cuts p along chord into two simple polygons. It returns
// ok == false, never an error, for every one of the rejection
// conditions in the polygon-split contract: the chord doesn't cross the
// exterior ring at exactly two points, it isn't one of those two points
// at each of its own endpoints, it strays outside p, it touches a hole,
// or either resulting half fails validation. Rejections are logged, not
// propagated, so callers (the pairwise optimizer) can try the next
// candidate cut without special-casing failure.
func Split(p geom.Polygon, chord geom.Segment) (p1, p2 geom.Polygon, ok bool) {
	hits, overlap := geom.IntersectRing(p.Exterior, chord)
	if overlap {
		log.Printf("split: chord runs along an existing edge, rejecting")
		return geom.Polygon{}, geom.Polygon{}, false
	}
	if len(hits) != 2 {
		log.Printf("split: chord crosses the exterior ring %d times, want 2", len(hits))
		return geom.Polygon{}, geom.Polygon{}, false
	}
	if !endpointsMatch(chord, hits) {
		log.Printf("split: chord endpoints are not the two boundary crossings")
		return geom.Polygon{}, geom.Polygon{}, false
	}
	mid := chord.PointAt(0.5)
	if !p.Exterior.StrictlyInside(mid) {
		log.Printf("split: chord does not lie within the polygon")
		return geom.Polygon{}, geom.Polygon{}, false
	}
	for _, h := range p.Holes {
		holeHits, holeOverlap := geom.IntersectRing(h, chord)
		if holeOverlap || len(holeHits) > 0 {
			log.Printf("split: chord crosses a hole, rejecting")
			return geom.Polygon{}, geom.Polygon{}, false
		}
	}

	arc1, arc2, ok := geom.SplitRing(p.Exterior, chord)
	if !ok {
		log.Printf("split: exterior ring did not partition into two arcs")
		return geom.Polygon{}, geom.Polygon{}, false
	}

	first, err := geom.AssignHoles(geom.Ring(arc1), p)
	if err != nil {
		log.Printf("split: first half invalid: %v", err)
		return geom.Polygon{}, geom.Polygon{}, false
	}
	second, err := geom.AssignHoles(geom.Ring(arc2), p)
	if err != nil {
		log.Printf("split: second half invalid: %v", err)
		return geom.Polygon{}, geom.Polygon{}, false
	}
	if first.Area() < geom.Epsilon || second.Area() < geom.Epsilon {
		log.Printf("split: one half has zero area, rejecting")
		return geom.Polygon{}, geom.Polygon{}, false
	}
	return first, second, true
}

func endpointsMatch(chord geom.Segment, hits []geom.Point) bool {
	a, b := chord.A, chord.B
	return (a.ApproxEqual(hits[0]) && b.ApproxEqual(hits[1])) ||
		(a.ApproxEqual(hits[1]) && b.ApproxEqual(hits[0]))
}
