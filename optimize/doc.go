// Package optimize drives the pairwise re-optimization search that
// iteratively improves a decomp.Decomposition: component F (Pairwise)
// finds a candidate chord re-cutting two adjacent cells that reduces the
// worse of their two costs, component G (the DFS driver) walks the
// adjacency graph outward from the worst cell looking for a pair worth
// re-cutting, and component H (Run) repeats that search for a fixed
// number of rounds, returning the cost vector before and after.
package optimize
