package geom

import "math"

// Epsilon is the absolute tolerance used throughout geom for comparisons
// on unit-scale inputs, per the coverage-partitioner's floating-point
// tolerance budget.
const Epsilon = 1e-9

// Point is a pair of finite real coordinates.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the z-component of the 3-D cross product of p and q,
// treated as vectors from the origin.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Len returns the Euclidean length of p treated as a vector.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return p.Sub(q).Len() }

// ApproxEqual reports whether p and q are equal within Epsilon.
func (p Point) ApproxEqual(q Point) bool {
	return math.Abs(p.X-q.X) <= Epsilon && math.Abs(p.Y-q.Y) <= Epsilon
}

// Lerp returns the point a fraction t of the way from p to q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// Segment is a straight line segment between two points.
type Segment struct {
	A, B Point
}

// Len returns the length of the segment.
func (s Segment) Len() float64 { return s.A.Dist(s.B) }

// PointAt returns the point at parameter t in [0, 1] along the segment.
func (s Segment) PointAt(t float64) Point { return s.A.Lerp(s.B, t) }

// DistToPoint returns the shortest distance from p to the closed segment s.
func (s Segment) DistToPoint(p Point) float64 {
	d := s.B.Sub(s.A)
	lenSqr := d.Dot(d)
	if lenSqr < Epsilon*Epsilon {
		return s.A.Dist(p)
	}
	t := p.Sub(s.A).Dot(d) / lenSqr
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return s.PointAt(t).Dist(p)
}

// orientation classifies the turn from a->b->c.
type orientation int

const (
	collinear orientation = iota
	clockwise
	counterClockwise
)

func orient(a, b, c Point) orientation {
	cross := b.Sub(a).Cross(c.Sub(a))
	switch {
	case cross > Epsilon:
		return counterClockwise
	case cross < -Epsilon:
		return clockwise
	default:
		return collinear
	}
}

// onSegment reports whether p, known to be collinear with s, lies within
// the closed bounding box of s (i.e. on the segment itself).
func onSegment(s Segment, p Point) bool {
	minX, maxX := math.Min(s.A.X, s.B.X), math.Max(s.A.X, s.B.X)
	minY, maxY := math.Min(s.A.Y, s.B.Y), math.Max(s.A.Y, s.B.Y)
	return p.X >= minX-Epsilon && p.X <= maxX+Epsilon &&
		p.Y >= minY-Epsilon && p.Y <= maxY+Epsilon
}

// segIntersect reports whether two segments properly or improperly
// intersect, and if they intersect at a single point (not collinear
// overlap), returns that point.
//
// collinearOverlap is set when the segments are collinear and share more
// than a single point; callers must treat this as a degenerate,
// non-transversal intersection.
func segIntersect(s1, s2 Segment) (pt Point, ok bool, collinearOverlap bool) {
	o1 := orient(s1.A, s1.B, s2.A)
	o2 := orient(s1.A, s1.B, s2.B)
	o3 := orient(s2.A, s2.B, s1.A)
	o4 := orient(s2.A, s2.B, s1.B)

	if o1 != o2 && o3 != o4 {
		// proper transversal crossing: solve for the intersection point.
		d1 := s1.B.Sub(s1.A)
		d2 := s2.B.Sub(s2.A)
		denom := d1.Cross(d2)
		if math.Abs(denom) < Epsilon {
			// nearly parallel but orientation tests disagreed; treat as
			// no clean intersection.
			return Point{}, false, false
		}
		t := s2.A.Sub(s1.A).Cross(d2) / denom
		return s1.PointAt(t), true, false
	}

	// collinear special cases.
	if o1 == collinear && onSegment(s1, s2.A) {
		return handleCollinearTouch(s1, s2, s2.A)
	}
	if o2 == collinear && onSegment(s1, s2.B) {
		return handleCollinearTouch(s1, s2, s2.B)
	}
	if o3 == collinear && onSegment(s2, s1.A) {
		return handleCollinearTouch(s1, s2, s1.A)
	}
	if o4 == collinear && onSegment(s2, s1.B) {
		return handleCollinearTouch(s1, s2, s1.B)
	}
	return Point{}, false, false
}

// handleCollinearTouch decides whether a collinear touch at candidate is
// an isolated endpoint touch (ok=true, collinearOverlap=false) or part of
// a genuine overlapping sub-segment (collinearOverlap=true).
func handleCollinearTouch(s1, s2 Segment, candidate Point) (Point, bool, bool) {
	// Collect the distinct endpoints that lie on both segments; more than
	// one such shared point means the segments overlap along a sub-segment
	// rather than touching at a single point.
	var shared []Point
	for _, p := range []Point{s1.A, s1.B} {
		if onSegment(s2, p) && pointOnLine(s2, p) {
			shared = appendDistinct(shared, p)
		}
	}
	for _, p := range []Point{s2.A, s2.B} {
		if onSegment(s1, p) && pointOnLine(s1, p) {
			shared = appendDistinct(shared, p)
		}
	}
	if len(shared) > 1 {
		return Point{}, false, true
	}
	return candidate, true, false
}

func pointOnLine(s Segment, p Point) bool {
	return math.Abs(s.B.Sub(s.A).Cross(p.Sub(s.A))) < Epsilon
}
