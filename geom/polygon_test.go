package geom

import (
	"math"
	"testing"
)

func square(x0, y0, x1, y1 float64) Polygon {
	p, err := NewPolygon(Ring{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}, nil)
	if err != nil {
		panic(err)
	}
	return p
}

func TestNewPolygon_HoleOutsideExterior(t *testing.T) {
	ext := Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	hole := Ring{{2, 2}, {2, 3}, {3, 3}, {3, 2}}
	_, err := NewPolygon(ext, []Ring{hole})
	if err != ErrHoleOutsideExterior {
		t.Errorf("got %v, want ErrHoleOutsideExterior", err)
	}
}

func TestNewPolygon_HolesOverlap(t *testing.T) {
	ext := Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	h1 := Ring{{1, 1}, {4, 1}, {4, 4}, {1, 4}}
	h2 := Ring{{3, 3}, {6, 3}, {6, 6}, {3, 6}}
	_, err := NewPolygon(ext, []Ring{h1, h2})
	if err != ErrHolesOverlap {
		t.Errorf("got %v, want ErrHolesOverlap", err)
	}
}

func TestPolygon_AreaWithHole(t *testing.T) {
	ext := Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	hole := Ring{{2, 2}, {8, 2}, {8, 8}, {2, 8}}
	p, err := NewPolygon(ext, []Ring{hole})
	if err != nil {
		t.Fatal(err)
	}
	want := 100.0 - 36.0
	if got := p.Area(); math.Abs(got-want) > 1e-9 {
		t.Errorf("Area() = %v, want %v", got, want)
	}
}

func TestPolygon_ContainsPoint_ExcludesHole(t *testing.T) {
	ext := Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	hole := Ring{{2, 2}, {8, 2}, {8, 8}, {2, 8}}
	p, err := NewPolygon(ext, []Ring{hole})
	if err != nil {
		t.Fatal(err)
	}
	if p.ContainsPoint(Point{5, 5}) {
		t.Error("point inside hole should not be contained")
	}
	if !p.ContainsPoint(Point{1, 1}) {
		t.Error("point in the annulus should be contained")
	}
}

func TestBoundaryOverlapLength_AdjacentStrips(t *testing.T) {
	a := square(0, 0, 1, 1)
	b := square(1, 0, 2, 1)
	c := square(5, 5, 6, 6)

	if got := BoundaryOverlapLength(a, b); math.Abs(got-1) > 1e-9 {
		t.Errorf("adjacent strips overlap length = %v, want 1", got)
	}
	if got := BoundaryOverlapLength(a, c); got != 0 {
		t.Errorf("disjoint strips overlap length = %v, want 0", got)
	}
}

func TestPolygon_Touches(t *testing.T) {
	a := square(0, 0, 1, 1)
	b := square(1, 0, 2, 1)
	if !a.Touches(b) {
		t.Error("adjacent strips should touch")
	}
	overlapping := square(0.5, 0, 1.5, 1)
	if a.Touches(overlapping) {
		t.Error("overlapping polygons should not be reported as merely touching")
	}
}

func TestPolygon_Within(t *testing.T) {
	outer := square(0, 0, 10, 10)
	inner := square(2, 2, 8, 8)
	if !inner.Within(outer) {
		t.Error("inner square should be within outer")
	}
	if outer.Within(inner) {
		t.Error("outer square should not be within inner")
	}
}

func TestAssignHoles(t *testing.T) {
	ext := Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	hole := Ring{{1, 1}, {3, 1}, {3, 3}, {1, 3}}
	p, err := NewPolygon(ext, []Ring{hole})
	if err != nil {
		t.Fatal(err)
	}
	left := Ring{{0, 0}, {5, 0}, {5, 10}, {0, 10}}
	right := Ring{{5, 0}, {10, 0}, {10, 10}, {5, 10}}

	leftPoly, err := AssignHoles(left, p)
	if err != nil {
		t.Fatal(err)
	}
	if len(leftPoly.Holes) != 1 {
		t.Errorf("left half should inherit the hole, got %d holes", len(leftPoly.Holes))
	}
	rightPoly, err := AssignHoles(right, p)
	if err != nil {
		t.Fatal(err)
	}
	if len(rightPoly.Holes) != 0 {
		t.Errorf("right half should have no holes, got %d", len(rightPoly.Holes))
	}
}
