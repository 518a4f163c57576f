// Package geom implements the planar geometry primitives the coverage
// partitioner is built on: points, rings, and polygons-with-holes, plus
// the predicates and operations the higher-level packages need:
// validity, area, containment, boundary relations, chord/ring
// intersection, arclength interpolation, and inward (Minkowski-erosion)
// buffering.
//
// Coordinates are float64. Comparisons that would otherwise be exact
// equality tolerate Epsilon of floating-point noise, which is enough for
// the unit-scale workspaces this package targets.
package geom
