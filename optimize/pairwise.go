package optimize

import (
	"log"

	"github.com/arl/covpartition/chi"
	"github.com/arl/covpartition/decomp"
	"github.com/arl/covpartition/geom"
	"github.com/arl/covpartition/split"
)

// Pairwise searches for a re-cut of two adjacent cells that reduces the
// worse of their two χ costs (component F). It unions a and b into a
// single polygon, samples its exterior at even arc-length intervals, and
// brute-force searches every ordered pair of samples as a candidate
// chord, keeping the best strict improvement found. ok is false if the
// cells can't be unioned, no candidate chord survives split.Split, or no
// candidate strictly improves on the current worst-of-the-pair cost.
//
// For each surviving candidate split both site assignments are tried
// (site a keeping either half) and whichever minimizes the pair's max
// cost is kept. split.Split's arc order is a geometric artifact, not
// site-aware, so trying both assignments is required to actually reduce
// the max.
func Pairwise(a, b decomp.Cell, cfg chi.Config, samples int) (polyA, polyB geom.Polygon, ok bool) {
	union, ok := geom.UnionAdjacent(a.Polygon, b.Polygon)
	if !ok {
		log.Printf("optimize: cells %d and %d do not share a single boundary chain, skipping", a.ID, b.ID)
		return geom.Polygon{}, geom.Polygon{}, false
	}

	initMax := maxf(chi.Value(a.Polygon, a.Site, cfg), chi.Value(b.Polygon, b.Site, cfg))

	pts := geom.SampleArcLength(union.Exterior, samples)
	bestFound := false
	var bestA, bestB geom.Polygon
	bestMax := initMax

	for i := range pts {
		for j := range pts {
			if i == j {
				continue
			}
			chord := geom.Segment{A: pts[i], B: pts[j]}
			p1, p2, ok := split.Split(union, chord)
			if !ok {
				continue
			}

			maxKeepOrder := maxf(chi.Value(p1, a.Site, cfg), chi.Value(p2, b.Site, cfg))
			maxSwapOrder := maxf(chi.Value(p1, b.Site, cfg), chi.Value(p2, a.Site, cfg))

			candA, candB, candMax := p1, p2, maxKeepOrder
			if maxSwapOrder < maxKeepOrder {
				candA, candB, candMax = p2, p1, maxSwapOrder
			}

			if candMax < bestMax {
				bestFound = true
				bestMax = candMax
				bestA, bestB = candA, candB
			}
		}
	}

	if !bestFound {
		return geom.Polygon{}, geom.Polygon{}, false
	}
	return bestA, bestB, true
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
