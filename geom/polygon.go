package geom

// Polygon is one exterior ring plus zero or more hole rings. By
// construction (see NewPolygon) the exterior is wound counter-clockwise
// and holes are wound clockwise, holes lie strictly inside the exterior,
// and holes are pairwise disjoint.
type Polygon struct {
	Exterior Ring
	Holes    []Ring
}

// NewPolygon validates and canonicalizes ext and holes into a Polygon.
// Ring winding is normalized (CCW exterior, CW holes); validation is
// performed on the canonicalized rings.
func NewPolygon(ext Ring, holes []Ring) (Polygon, error) {
	ext = removeCollinear(dedupClosing(ext)).Canonicalized(true)
	if err := ext.Validate(); err != nil {
		return Polygon{}, err
	}
	normHoles := make([]Ring, len(holes))
	for i, h := range holes {
		h = removeCollinear(dedupClosing(h)).Canonicalized(false)
		if err := h.Validate(); err != nil {
			return Polygon{}, err
		}
		for _, p := range h {
			if !ext.StrictlyInside(p) {
				return Polygon{}, ErrHoleOutsideExterior
			}
		}
		normHoles[i] = h
	}
	for i := 0; i < len(normHoles); i++ {
		for j := i + 1; j < len(normHoles); j++ {
			if ringsOverlap(normHoles[i], normHoles[j]) {
				return Polygon{}, ErrHolesOverlap
			}
		}
	}
	return Polygon{Exterior: ext, Holes: normHoles}, nil
}

func ringsOverlap(a, b Ring) bool {
	for i := 0; i < a.NumEdges(); i++ {
		for j := 0; j < b.NumEdges(); j++ {
			_, ok, overlap := segIntersect(a.Edge(i), b.Edge(j))
			if ok || overlap {
				return true
			}
		}
	}
	// no boundary crossing: overlap iff one contains a vertex of the other
	if len(b) > 0 && a.ContainsPoint(b[0]) {
		return true
	}
	if len(a) > 0 && b.ContainsPoint(a[0]) {
		return true
	}
	return false
}

// Area returns the polygon's area: exterior area minus the area of its
// holes.
func (p Polygon) Area() float64 {
	area := p.Exterior.Area()
	for _, h := range p.Holes {
		area -= h.Area()
	}
	if area < 0 {
		return 0
	}
	return area
}

// ContainsPoint reports whether pt lies within the polygon: inside the
// exterior ring and not strictly inside any hole.
func (p Polygon) ContainsPoint(pt Point) bool {
	if !p.Exterior.ContainsPoint(pt) {
		return false
	}
	for _, h := range p.Holes {
		if h.StrictlyInside(pt) {
			return false
		}
	}
	return true
}

// boundaryRings returns every ring (exterior and holes) making up the
// polygon's boundary.
func (p Polygon) boundaryRings() []Ring {
	rings := make([]Ring, 0, 1+len(p.Holes))
	rings = append(rings, p.Exterior)
	rings = append(rings, p.Holes...)
	return rings
}

// Distance returns the Euclidean distance from pt to the polygon: 0 if
// pt is contained, otherwise the distance to the nearest boundary edge
// (exterior or hole).
func (p Polygon) Distance(pt Point) float64 {
	if p.ContainsPoint(pt) {
		return 0
	}
	best := -1.0
	for _, r := range p.boundaryRings() {
		for i := 0; i < r.NumEdges(); i++ {
			d := r.Edge(i).DistToPoint(pt)
			if best < 0 || d < best {
				best = d
			}
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

// boundarySegments flattens every edge of every ring of p into one slice,
// for use by boundary-relation predicates.
func (p Polygon) boundarySegments() []Segment {
	var segs []Segment
	for _, r := range p.boundaryRings() {
		for i := 0; i < r.NumEdges(); i++ {
			segs = append(segs, r.Edge(i))
		}
	}
	return segs
}

// BoundaryOverlapLength returns the total length over which the
// boundaries of p and q coincide (collinear overlapping sub-segments),
// used by the adjacency predicate (two cells are adjacent iff this is
// positive).
func BoundaryOverlapLength(p, q Polygon) float64 {
	var total float64
	for _, s1 := range p.boundarySegments() {
		for _, s2 := range q.boundarySegments() {
			total += overlapLength(s1, s2)
		}
	}
	return total
}

// overlapLength returns the length of the collinear overlap between two
// segments, or 0 if they are not collinear or don't overlap.
func overlapLength(s1, s2 Segment) float64 {
	if !pointOnLine(s1, s2.A) || !pointOnLine(s1, s2.B) {
		return 0
	}
	d := s1.B.Sub(s1.A)
	l := d.Len()
	if l < Epsilon {
		return 0
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
		return 0
	}
	return hi - lo
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Touches reports whether p and q's boundaries meet (intersect) while
// their interiors remain disjoint.
func (p Polygon) Touches(q Polygon) bool {
	if p.interiorsOverlap(q) {
		return false
	}
	return p.Intersects(q)
}

// Intersects reports whether p and q share any point at all (boundary or
// interior).
func (p Polygon) Intersects(q Polygon) bool {
	for _, s1 := range p.boundarySegments() {
		for _, s2 := range q.boundarySegments() {
			_, ok, overlap := segIntersect(s1, s2)
			if ok || overlap {
				return true
			}
		}
	}
	return p.interiorsOverlap(q)
}

func (p Polygon) interiorsOverlap(q Polygon) bool {
	return p.ContainsPoint(q.Exterior.Centroid()) || q.ContainsPoint(p.Exterior.Centroid())
}

// Within reports whether p lies entirely within q.
func (p Polygon) Within(q Polygon) bool {
	for _, v := range p.Exterior {
		if !q.ContainsPoint(v) {
			return false
		}
	}
	return !p.crossesBoundary(q)
}

func (p Polygon) crossesBoundary(q Polygon) bool {
	for _, s1 := range p.boundarySegments() {
		for _, s2 := range q.boundarySegments() {
			_, ok, _ := segIntersect(s1, s2)
			if ok {
				return true
			}
		}
	}
	return false
}

// AssignHoles returns a polygon whose exterior is ring (assumed already
// simple and correctly wound) carrying whichever of original's holes lie
// strictly inside it. Used by the split operator (component B) to
// reattach hole ownership after cutting only the exterior ring: since a
// valid cut never crosses a hole, every original hole lies entirely on
// one side or the other.
func AssignHoles(ring Ring, original Polygon) (Polygon, error) {
	var mine []Ring
	for _, h := range original.Holes {
		if len(h) == 0 {
			continue
		}
		if ring.StrictlyInside(h[0]) {
			mine = append(mine, h)
		}
	}
	return NewPolygon(ring, mine)
}
