// Package decomp holds the mutable state the optimizer operates on: the
// Decomposition (component E, a cell-id -> (polygon, site) mapping with
// an atomic two-cell replace operation) and the Adjacency builder
// (component C, the symmetric "shares a positive-length boundary" graph
// over cells). Both are snapshot/rebuild-on-demand: Decomposition is the
// single owner mutated only by the optimizer driver, and Adjacency is
// recomputed from scratch after every successful mutation rather than
// patched incrementally, simpler and fast enough at the cell counts
// this system targets (robot counts, not general-purpose graphs).
package decomp
