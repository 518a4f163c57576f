// Package split implements the polygon-split operator: cutting one
// simple polygon (possibly with holes) into two simple polygons along a
// straight chord. Every way a chord can fail to produce a clean split is
// a rejection, not an error; see Split.
package split
