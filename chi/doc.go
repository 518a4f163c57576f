// Package chi implements the coverage-cost functional χ: a scalar score
// for a (cell, robot-site) pair approximating the length of a
// boustrophedon coverage path inside the cell, combining access distance
// (F1), swept path length (F2), and turn count (F3).
package chi
