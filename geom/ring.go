package geom

import "math"

// Ring is an ordered sequence of points describing a closed simple
// polygonal chain. The closing vertex is implicit: Ring[len-1] connects
// back to Ring[0]. Canonical orientation is counter-clockwise for
// exterior rings and clockwise for hole rings, but Ring itself does not
// enforce orientation; Validate only checks simplicity and vertex count.
type Ring []Point

// Edge returns the i-th edge of the ring, wrapping around at the end.
func (r Ring) Edge(i int) Segment {
	return Segment{A: r[i], B: r[(i+1)%len(r)]}
}

// NumEdges returns the number of edges in the ring (equal to len(r)).
func (r Ring) NumEdges() int { return len(r) }

// SignedArea returns the signed area of the ring via the shoelace
// formula. Positive for counter-clockwise rings, negative for clockwise.
func (r Ring) SignedArea() float64 {
	if len(r) < 3 {
		return 0
	}
	var sum float64
	for i := range r {
		j := (i + 1) % len(r)
		sum += r[i].X*r[j].Y - r[j].X*r[i].Y
	}
	return sum / 2
}

// Area returns the unsigned area enclosed by the ring.
func (r Ring) Area() float64 { return math.Abs(r.SignedArea()) }

// IsCCW reports whether the ring is wound counter-clockwise.
func (r Ring) IsCCW() bool { return r.SignedArea() > 0 }

// Reversed returns a copy of the ring with its vertex order reversed.
func (r Ring) Reversed() Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[len(r)-1-i] = p
	}
	return out
}

// Canonicalized returns r wound counter-clockwise if ccw is true,
// clockwise otherwise, leaving an already-correctly-wound ring untouched.
func (r Ring) Canonicalized(ccw bool) Ring {
	if r.IsCCW() == ccw {
		return r
	}
	return r.Reversed()
}

// Length returns the perimeter of the ring.
func (r Ring) Length() float64 {
	var total float64
	for i := 0; i < len(r); i++ {
		total += r.Edge(i).Len()
	}
	return total
}

// InterpolateAtArcLength returns the point exactly d units along the ring
// from its first vertex, walking edges in order. d is clamped to
// [0, Length()].
func (r Ring) InterpolateAtArcLength(d float64) Point {
	if len(r) == 0 {
		return Point{}
	}
	if d <= 0 {
		return r[0]
	}
	remaining := d
	for i := 0; i < len(r); i++ {
		e := r.Edge(i)
		l := e.Len()
		if remaining <= l || i == len(r)-1 {
			if l < Epsilon {
				return e.A
			}
			t := remaining / l
			if t > 1 {
				t = 1
			}
			return e.PointAt(t)
		}
		remaining -= l
	}
	return r[len(r)-1]
}

// SampleArcLength returns n points equally spaced by arc length around
// the ring, starting at distance 0.
func SampleArcLength(r Ring, n int) []Point {
	if n <= 0 {
		return nil
	}
	perimeter := r.Length()
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		d := perimeter * float64(i) / float64(n)
		pts[i] = r.InterpolateAtArcLength(d)
	}
	return pts
}

// removeCollinear drops vertices that sit exactly between their two
// neighbors (collinear triples), which the split operator can produce at
// chord endpoints that land on an existing edge.
func removeCollinear(r Ring) Ring {
	if len(r) < 3 {
		return r
	}
	out := make(Ring, 0, len(r))
	n := len(r)
	for i := 0; i < n; i++ {
		prev := r[(i-1+n)%n]
		cur := r[i]
		next := r[(i+1)%n]
		if orient(prev, cur, next) == collinear && pointBetween(prev, cur, next) {
			continue
		}
		out = append(out, cur)
	}
	if len(out) < 3 {
		return r
	}
	return out
}

func pointBetween(a, b, c Point) bool {
	return onSegment(Segment{A: a, B: c}, b)
}

// dedupClosing drops a final vertex that duplicates the first (some
// sources carry a repeated closing vertex; canonical form does not).
func dedupClosing(pts []Point) []Point {
	if len(pts) > 1 && pts[0].ApproxEqual(pts[len(pts)-1]) {
		return pts[:len(pts)-1]
	}
	return pts
}

// selfIntersects reports whether the ring's non-adjacent edges cross.
func (r Ring) selfIntersects() bool {
	n := len(r)
	if n < 4 {
		return false
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if j == i || (j+1)%n == i || (i+1)%n == j {
				continue // adjacent edges share a vertex, not an intersection
			}
			_, ok, overlap := segIntersect(r.Edge(i), r.Edge(j))
			if ok || overlap {
				return true
			}
		}
	}
	return false
}

// Validate checks the ring invariants required by the data model: at
// least 3 distinct vertices and no self-intersection.
func (r Ring) Validate() error {
	if len(r) < 3 {
		return ErrTooFewVertices
	}
	for i := 0; i < len(r); i++ {
		for j := i + 1; j < len(r); j++ {
			if r[i].ApproxEqual(r[j]) {
				return ErrTooFewVertices
			}
		}
	}
	if r.selfIntersects() {
		return ErrSelfIntersecting
	}
	return nil
}

// ContainsPoint reports whether p lies inside the ring using the even-odd
// (ray casting) rule. Points on the boundary count as contained.
func (r Ring) ContainsPoint(p Point) bool {
	if r.onBoundary(p) {
		return true
	}
	inside := false
	n := len(r)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := r[i], r[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xIntersect := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < xIntersect {
				inside = !inside
			}
		}
	}
	return inside
}

func (r Ring) onBoundary(p Point) bool {
	for i := 0; i < len(r); i++ {
		if r.Edge(i).DistToPoint(p) <= Epsilon {
			return true
		}
	}
	return false
}

// StrictlyInside reports whether p lies inside the ring and not on its
// boundary.
func (r Ring) StrictlyInside(p Point) bool {
	return !r.onBoundary(p) && r.ContainsPoint(p)
}

// Centroid returns a point guaranteed to lie strictly inside a simple
// ring of positive area, not the true area centroid in general, but a
// cheap interior representative point, obtained by averaging vertices.
// If that average is not strictly inside (it lies on the boundary, or
// outside a non-convex ring), the midpoint of the first edge is nudged
// along the edge normal instead; if no nudge lands strictly inside, the
// vertex average is returned.
func (r Ring) Centroid() Point {
	var sx, sy float64
	for _, p := range r {
		sx += p.X
		sy += p.Y
	}
	c := Point{sx / float64(len(r)), sy / float64(len(r))}
	if r.StrictlyInside(c) {
		return c
	}
	// fall back: midpoint of the first edge nudged along its inward normal
	e := r.Edge(0)
	mid := e.A.Lerp(e.B, 0.5)
	d := e.B.Sub(e.A)
	normal := Point{-d.Y, d.X}
	nl := normal.Len()
	if nl < Epsilon {
		return mid
	}
	normal = normal.Scale(1 / nl)
	for _, sign := range []float64{1, -1} {
		for _, step := range []float64{1e-6, 1e-4, 1e-2, 1e-1} {
			cand := mid.Add(normal.Scale(sign * step))
			if r.StrictlyInside(cand) {
				return cand
			}
		}
	}
	return c
}
