package geom

import (
	clipper "github.com/go-clipper/clipper2"
)

// bufferScale converts between this package's float64 unit-scale
// coordinates and the fixed-point int64 coordinates ClipperOffset
// operates on. 1e6 gives micro-unit resolution, comfortably finer than
// the coverage radii (~0.1-1 unit) the partitioner buffers by; exact
// 1e-9 geometry tolerance (Epsilon) is not needed here since the inward
// buffer only feeds chi's contour *count*, not a boundary used in later
// area-conservation checks.
const bufferScale = 1e6

// InwardBuffer eROdes polygon p by distance r (Minkowski erosion),
// returning the resulting polygon(s), possibly empty, possibly more than
// one if erosion disconnects p. Join style is round, matching the
// teacher's round-cornered offsetting default and giving a reproducible,
// schedule-independent shape for chi's contour count.
func InwardBuffer(p Polygon, r float64) ([]Polygon, error) {
	if r <= 0 {
		return nil, ErrDegenerateBuffer
	}
	if p.Area() < Epsilon {
		return nil, nil
	}

	co := clipper.NewClipperOffset(2.0, 0.25)
	co.AddPath(ringToPath64(p.Exterior), clipper.JoinRound, clipper.EndPolygon)
	for _, h := range p.Holes {
		co.AddPath(ringToPath64(h), clipper.JoinRound, clipper.EndPolygon)
	}

	result, err := co.Execute(-r * bufferScale)
	if err != nil {
		return nil, err
	}
	return pathsToPolygons(result)
}

func ringToPath64(r Ring) clipper.Path64 {
	path := make(clipper.Path64, len(r))
	for i, p := range r {
		path[i] = clipper.Point64{
			X: int64(p.X * bufferScale),
			Y: int64(p.Y * bufferScale),
		}
	}
	return path
}

func path64ToRing(path clipper.Path64) Ring {
	r := make(Ring, len(path))
	for i, p := range path {
		r[i] = Point{X: float64(p.X) / bufferScale, Y: float64(p.Y) / bufferScale}
	}
	return r
}

// pathsToPolygons groups Clipper2's flat list of output paths into
// polygons, treating CCW paths as exteriors and CW paths as holes of the
// most recently seen exterior; the orientation convention Clipper2
// itself produces for polygon results.
func pathsToPolygons(paths clipper.Paths64) ([]Polygon, error) {
	var polys []Polygon
	var cur *Ring
	var curHoles []Ring
	flush := func() error {
		if cur == nil {
			return nil
		}
		poly, err := NewPolygon(*cur, curHoles)
		if err != nil {
			return err
		}
		polys = append(polys, poly)
		cur = nil
		curHoles = nil
		return nil
	}
	for _, path := range paths {
		if len(path) < 3 {
			continue
		}
		r := path64ToRing(path)
		if r.IsCCW() {
			if err := flush(); err != nil {
				return nil, err
			}
			ring := r
			cur = &ring
		} else {
			curHoles = append(curHoles, r)
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return polys, nil
}
