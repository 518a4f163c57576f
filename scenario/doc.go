// Package scenario provides the built-in demo decompositions the CLI
// selects by id (Builtin), loads a workspace and its initial
// decomposition from an on-disk JSON document (Load), and writes a
// decomp.Decomposition's cells to JSON for output (Save, used by the
// CLI's --out flag). Save writes no workspace polygon, so its output is
// not a document Load accepts. It is the boundary between the filesystem
// and the pure geom/decomp/optimize packages.
package scenario
