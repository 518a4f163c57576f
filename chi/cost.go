package chi

import "github.com/arl/covpartition/geom"

// Cost holds χ's three components alongside the combined scalar, mainly
// useful for tests and tracing; only Chi is consumed by the optimizer.
type Cost struct {
	F1, F2, F3 float64
	Chi        float64
}

// Compute evaluates χ for cell p and robot site q under cfg: χ = α·(F1 +
// F2) + β·F3, where F1 is twice the access distance, F2 is the area
// divided by the footprint radius (a proxy for boustrophedon sweep
// length), and F3 is 360° times the nested-contour count (a proxy for
// total turning).
//
// Compute is a pure function of its arguments: calling it twice with the
// same cell, site, and config yields bit-identical results.
func Compute(p geom.Polygon, q geom.Point, cfg Config) Cost {
	f1 := 2 * p.Distance(q)
	var f2, f3 float64
	if p.Area() >= geom.Epsilon {
		f2 = p.Area() / cfg.Radius
		f3 = 360 * float64(contourCount(p, cfg.Radius))
	}
	return Cost{
		F1:  f1,
		F2:  f2,
		F3:  f3,
		Chi: cfg.LinearPenalty*(f1+f2) + cfg.AngularPenalty*f3,
	}
}

// Value is shorthand for Compute(p, q, cfg).Chi.
func Value(p geom.Polygon, q geom.Point, cfg Config) float64 {
	return Compute(p, q, cfg).Chi
}

// contourCount counts nested contours of p produced by iterated inward
// buffering at stripe spacing r.
//
// Schedule: level 0 is p itself and counts as one contour. Each further
// level erodes the previous level's result, first by r/2 and then by
// (2k+1)·r/2 for k = 0, 1, 2, ..., so the r/2 step is applied twice
// before the distances grow, matching the reference implementation.
// Every non-empty level adds its number of connected components; counting
// stops at the first empty level.
func contourCount(p geom.Polygon, r float64) int {
	if r <= 0 || p.Area() < geom.Epsilon {
		return 0
	}
	count := 1
	cur := erodeAll([]geom.Polygon{p}, r/2)
	for level := 0; len(cur) > 0; level++ {
		count += len(cur)
		delta := (2*float64(level) + 1) * r / 2
		cur = erodeAll(cur, delta)
	}
	return count
}

// erodeAll applies geom.InwardBuffer by delta to every polygon in polys
// and flattens the (possibly multi-component) results. Erosion failures
// (degenerate input) are treated as "eroded away", i.e. contribute
// nothing, matching the buffer contract's "possibly empty" result.
func erodeAll(polys []geom.Polygon, delta float64) []geom.Polygon {
	var out []geom.Polygon
	for _, p := range polys {
		eroded, err := geom.InwardBuffer(p, delta)
		if err != nil {
			continue
		}
		out = append(out, eroded...)
	}
	return out
}
