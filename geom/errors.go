package geom

import "errors"

var (
	// ErrTooFewVertices indicates a ring has fewer than 3 distinct vertices.
	ErrTooFewVertices = errors.New("geom: ring has fewer than 3 distinct vertices")
	// ErrSelfIntersecting indicates a ring's edges cross themselves.
	ErrSelfIntersecting = errors.New("geom: ring is self-intersecting")
	// ErrHoleOutsideExterior indicates a hole ring is not strictly inside the exterior.
	ErrHoleOutsideExterior = errors.New("geom: hole lies outside the exterior ring")
	// ErrHolesOverlap indicates two hole rings of the same polygon are not disjoint.
	ErrHolesOverlap = errors.New("geom: holes overlap")
	// ErrDegenerateBuffer indicates a buffer operation was requested with a non-positive radius.
	ErrDegenerateBuffer = errors.New("geom: buffer radius must be positive")
)
