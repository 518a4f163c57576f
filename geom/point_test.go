package geom

import (
	"math"
	"testing"
)

func TestPointVectorOps(t *testing.T) {
	a := Point{X: 1, Y: 2}
	b := Point{X: 3, Y: -1}

	if got := a.Add(b); got != (Point{X: 4, Y: 1}) {
		t.Errorf("Add = %v, want {4 1}", got)
	}
	if got := a.Sub(b); got != (Point{X: -2, Y: 3}) {
		t.Errorf("Sub = %v, want {-2 3}", got)
	}
	if got := a.Dot(b); got != 1 {
		t.Errorf("Dot = %v, want 1", got)
	}
	if got := a.Cross(b); got != -7 {
		t.Errorf("Cross = %v, want -7", got)
	}
}

func TestPointApproxEqual(t *testing.T) {
	a := Point{X: 1, Y: 1}
	b := Point{X: 1 + Epsilon/2, Y: 1}
	c := Point{X: 1.1, Y: 1}

	if !a.ApproxEqual(b) {
		t.Errorf("expected %v ~= %v", a, b)
	}
	if a.ApproxEqual(c) {
		t.Errorf("expected %v != %v", a, c)
	}
}

func TestSegmentDistToPoint(t *testing.T) {
	cases := []struct {
		name string
		s    Segment
		p    Point
		want float64
	}{
		{"on segment", Segment{A: Point{0, 0}, B: Point{10, 0}}, Point{5, 0}, 0},
		{"perpendicular", Segment{A: Point{0, 0}, B: Point{10, 0}}, Point{5, 3}, 3},
		{"beyond endpoint A", Segment{A: Point{0, 0}, B: Point{10, 0}}, Point{-4, 0}, 4},
		{"beyond endpoint B", Segment{A: Point{0, 0}, B: Point{10, 0}}, Point{14, 3}, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.s.DistToPoint(tc.p); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("DistToPoint(%v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestSegIntersect_ProperCrossing(t *testing.T) {
	s1 := Segment{A: Point{0, 0}, B: Point{2, 2}}
	s2 := Segment{A: Point{0, 2}, B: Point{2, 0}}
	pt, ok, overlap := segIntersect(s1, s2)
	if !ok || overlap {
		t.Fatalf("expected a clean crossing, got ok=%v overlap=%v", ok, overlap)
	}
	if !pt.ApproxEqual(Point{1, 1}) {
		t.Errorf("intersection = %v, want {1 1}", pt)
	}
}

func TestSegIntersect_CollinearOverlap(t *testing.T) {
	s1 := Segment{A: Point{0, 0}, B: Point{4, 0}}
	s2 := Segment{A: Point{2, 0}, B: Point{6, 0}}
	_, ok, overlap := segIntersect(s1, s2)
	if ok || !overlap {
		t.Fatalf("expected collinearOverlap=true, got ok=%v overlap=%v", ok, overlap)
	}
}

func TestSegIntersect_NoIntersection(t *testing.T) {
	s1 := Segment{A: Point{0, 0}, B: Point{1, 0}}
	s2 := Segment{A: Point{0, 1}, B: Point{1, 1}}
	_, ok, overlap := segIntersect(s1, s2)
	if ok || overlap {
		t.Fatalf("expected no intersection, got ok=%v overlap=%v", ok, overlap)
	}
}

func TestSegIntersect_EndpointTouch(t *testing.T) {
	s1 := Segment{A: Point{0, 0}, B: Point{2, 0}}
	s2 := Segment{A: Point{2, 0}, B: Point{2, 2}}
	pt, ok, overlap := segIntersect(s1, s2)
	if !ok || overlap {
		t.Fatalf("expected an endpoint touch, got ok=%v overlap=%v", ok, overlap)
	}
	if !pt.ApproxEqual(Point{2, 0}) {
		t.Errorf("touch point = %v, want {2 0}", pt)
	}
}
