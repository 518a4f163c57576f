package geom

import (
	"math"
	"testing"
)

func unitSquare() Ring {
	return Ring{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

func TestRing_AreaAndOrientation(t *testing.T) {
	r := unitSquare()
	if got := r.Area(); math.Abs(got-1) > 1e-9 {
		t.Errorf("Area() = %v, want 1", got)
	}
	if !r.IsCCW() {
		t.Error("expected unit square vertex order to be CCW")
	}
	rev := r.Reversed()
	if rev.IsCCW() {
		t.Error("expected reversed ring to be CW")
	}
	if math.Abs(rev.Area()-1) > 1e-9 {
		t.Errorf("Reversed().Area() = %v, want 1", rev.Area())
	}
}

func TestRing_Canonicalized(t *testing.T) {
	r := unitSquare()
	cw := r.Canonicalized(false)
	if cw.IsCCW() {
		t.Error("Canonicalized(false) should be clockwise")
	}
	ccw := cw.Canonicalized(true)
	if !ccw.IsCCW() {
		t.Error("Canonicalized(true) should be counter-clockwise")
	}
}

func TestRing_ContainsPoint(t *testing.T) {
	r := unitSquare()
	cases := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Point{0.5, 0.5}, true},
		{"outside", Point{2, 2}, false},
		{"on boundary", Point{0, 0.5}, true},
		{"vertex", Point{0, 0}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.ContainsPoint(tc.p); got != tc.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestRing_StrictlyInside(t *testing.T) {
	r := unitSquare()
	if !r.StrictlyInside(Point{0.5, 0.5}) {
		t.Error("center should be strictly inside")
	}
	if r.StrictlyInside(Point{0, 0.5}) {
		t.Error("boundary point should not be strictly inside")
	}
}

func TestRing_Validate(t *testing.T) {
	if err := unitSquare().Validate(); err != nil {
		t.Errorf("unit square should validate, got %v", err)
	}
	if err := (Ring{{0, 0}, {1, 0}}).Validate(); err != ErrTooFewVertices {
		t.Errorf("2-vertex ring: got %v, want ErrTooFewVertices", err)
	}
	// a bowtie: edges (0,0)-(1,1) and (1,0)-(0,1) cross.
	bowtie := Ring{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	if err := bowtie.Validate(); err != ErrSelfIntersecting {
		t.Errorf("bowtie ring: got %v, want ErrSelfIntersecting", err)
	}
}

func TestRing_SampleArcLength(t *testing.T) {
	r := unitSquare()
	pts := SampleArcLength(r, 4)
	if len(pts) != 4 {
		t.Fatalf("got %d points, want 4", len(pts))
	}
	if !pts[0].ApproxEqual(Point{0, 0}) {
		t.Errorf("first sample = %v, want {0 0}", pts[0])
	}
}

func TestRing_Length(t *testing.T) {
	if got := unitSquare().Length(); math.Abs(got-4) > 1e-9 {
		t.Errorf("Length() = %v, want 4", got)
	}
}

func TestRing_Centroid(t *testing.T) {
	c := unitSquare().Centroid()
	if !unitSquare().StrictlyInside(c) {
		t.Errorf("Centroid() = %v is not strictly inside the ring", c)
	}
}
