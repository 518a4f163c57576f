package chi

import (
	"math"
	"testing"

	"github.com/arl/covpartition/geom"
)

func unitSquare() geom.Polygon {
	p, err := geom.NewPolygon(geom.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, nil)
	if err != nil {
		panic(err)
	}
	return p
}

// TestCompute_Scenario6_Baseline: a unit square with a site at (-1, 0)
// and footprint radius 1 yields F1=2, F2=1, F3=360.
func TestCompute_Scenario6_Baseline(t *testing.T) {
	p := unitSquare()
	q := geom.Point{X: -1, Y: 0}
	cfg := Config{Radius: 1, LinearPenalty: 1, AngularPenalty: 1}

	c := Compute(p, q, cfg)
	if math.Abs(c.F1-2) > 1e-6 {
		t.Errorf("F1 = %v, want 2", c.F1)
	}
	if math.Abs(c.F2-1) > 1e-6 {
		t.Errorf("F2 = %v, want 1", c.F2)
	}
	if math.Abs(c.F3-360) > 1e-6 {
		t.Errorf("F3 = %v, want 360", c.F3)
	}
}

// TestCompute_Scenario6_SmallerRadius follows up with r=0.5: shrinking the
// footprint radius must strictly increase the swept-length term F2, and
// must never decrease the turn-count term F3.
func TestCompute_Scenario6_SmallerRadius(t *testing.T) {
	p := unitSquare()
	q := geom.Point{X: -1, Y: 0}

	base := Compute(p, q, Config{Radius: 1, LinearPenalty: 1, AngularPenalty: 1})
	smaller := Compute(p, q, Config{Radius: 0.5, LinearPenalty: 1, AngularPenalty: 1})

	if smaller.F2 <= base.F2 {
		t.Errorf("F2 with r=0.5 (%v) should exceed F2 with r=1 (%v)", smaller.F2, base.F2)
	}
	if smaller.F3 < base.F3 {
		t.Errorf("F3 with r=0.5 (%v) should not be smaller than F3 with r=1 (%v)", smaller.F3, base.F3)
	}
}

func TestValue_MatchesComputeChi(t *testing.T) {
	p := unitSquare()
	q := geom.Point{X: 2, Y: 2}
	cfg := DefaultConfig()
	if got, want := Value(p, q, cfg), Compute(p, q, cfg).Chi; got != want {
		t.Errorf("Value() = %v, want Compute().Chi = %v", got, want)
	}
}

func TestCompute_NonNegative(t *testing.T) {
	p := unitSquare()
	sites := []geom.Point{{X: 0.5, Y: 0.5}, {X: -5, Y: -5}, {X: 100, Y: 0}}
	cfg := DefaultConfig()
	for _, q := range sites {
		if c := Value(p, q, cfg); c < 0 {
			t.Errorf("Value(%v) = %v, want >= 0", q, c)
		}
	}
}

func TestCompute_ZeroAreaPolygonHasZeroAreaTerms(t *testing.T) {
	degenerate, err := geom.NewPolygon(geom.Ring{{0, 0}, {1, 0}, {2, 0}}, nil)
	if err != nil {
		// a collinear ring may be rejected outright by validation, which
		// is an equally acceptable way of excluding the zero-area case.
		return
	}
	c := Compute(degenerate, geom.Point{X: 0, Y: 0}, DefaultConfig())
	if c.F2 != 0 || c.F3 != 0 {
		t.Errorf("degenerate polygon should contribute zero F2/F3, got F2=%v F3=%v", c.F2, c.F3)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	p := unitSquare()
	q := geom.Point{X: 3, Y: -2}
	cfg := DefaultConfig()
	a := Compute(p, q, cfg)
	b := Compute(p, q, cfg)
	if a != b {
		t.Errorf("repeated Compute calls diverged: %+v vs %+v", a, b)
	}
}

func TestContourCount_LargerSquareHasAtLeastAsManyContours(t *testing.T) {
	small, err := geom.NewPolygon(geom.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	big, err := geom.NewPolygon(geom.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	r := 0.2
	if got, want := contourCount(big, r), contourCount(small, r); got < want {
		t.Errorf("contourCount(big) = %d, should be >= contourCount(small) = %d", got, want)
	}
}

func TestContourCount_ZeroForNonPositiveRadius(t *testing.T) {
	p := unitSquare()
	if got := contourCount(p, 0); got != 0 {
		t.Errorf("contourCount with r=0 = %d, want 0", got)
	}
	if got := contourCount(p, -1); got != 0 {
		t.Errorf("contourCount with r<0 = %d, want 0", got)
	}
}
