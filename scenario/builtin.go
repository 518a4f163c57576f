package scenario

import (
	"fmt"

	"github.com/arl/covpartition/decomp"
	"github.com/arl/covpartition/geom"
)

// Builtin constructs one of a small set of hard-coded demo decompositions
// by id, for the CLI's "pick a preconfigured polygon" entry point. The
// core library itself never loads polygons from disk or a catalog; that
// is the CLI's concern alone.
func Builtin(id int) (*decomp.Decomposition, error) {
	switch id {
	case 0:
		return fourStrips()
	case 1:
		return squareWithHoleHalves()
	default:
		return nil, fmt.Errorf("scenario: no builtin polygon with id %d", id)
	}
}

// fourStrips is a 10x1 workspace cut into four equal vertical strips,
// strip i taking the i-th workspace corner of (0,0), (10,0), (10,1),
// (0,1) as its site. Only strip 0 contains its site; the other strips'
// sites lie 5, 2.5 and 7.5 units away, producing a strongly asymmetric
// initial cost vector.
func fourStrips() (*decomp.Decomposition, error) {
	workspace, err := rect(0, 0, 10, 1)
	if err != nil {
		return nil, err
	}
	cells := make([]geom.Polygon, 4)
	sites := make([]geom.Point, 4)
	corners := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 1}, {X: 0, Y: 1}}
	for i := 0; i < 4; i++ {
		x0 := float64(i) * 2.5
		x1 := x0 + 2.5
		p, err := rect(x0, 0, x1, 1)
		if err != nil {
			return nil, err
		}
		cells[i] = p
		sites[i] = corners[i]
	}
	return decomp.New(workspace, cells, sites)
}

// squareWithHoleHalves is a two-robot decomposition of the unit square
// around an obstacle hole confined to the right half, split vertically
// at x=0.5. The hole (x in [0.6, 0.9]) lies entirely within the right
// cell with clearance on every side, so the cut never crosses it.
func squareWithHoleHalves() (*decomp.Decomposition, error) {
	hole := geom.Ring{{X: 0.6, Y: 0.3}, {X: 0.6, Y: 0.7}, {X: 0.9, Y: 0.7}, {X: 0.9, Y: 0.3}}

	workspace, err := geom.NewPolygon(
		geom.Ring{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
		[]geom.Ring{hole},
	)
	if err != nil {
		return nil, err
	}
	left, err := rect(0, 0, 0.5, 1)
	if err != nil {
		return nil, err
	}
	right, err := geom.NewPolygon(
		geom.Ring{{X: 0.5, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0.5, Y: 1}},
		[]geom.Ring{hole},
	)
	if err != nil {
		return nil, err
	}
	sites := []geom.Point{{X: 0.1, Y: 0.5}, {X: 0.95, Y: 0.5}}
	return decomp.New(workspace, []geom.Polygon{left, right}, sites)
}

func rect(x0, y0, x1, y1 float64) (geom.Polygon, error) {
	return geom.NewPolygon(geom.Ring{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}, nil)
}
