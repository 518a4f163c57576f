package decomp

import "github.com/arl/covpartition/geom"

// CellID uniquely identifies a cell within a Decomposition. It doubles
// as a gonum graph node ID in Adjacency.
type CellID int64

// Cell is a polygon bound to a robot site, addressed by a stable id.
type Cell struct {
	ID      CellID
	Polygon geom.Polygon
	Site    geom.Point
}

// CellCost is one entry of a cost vector: a cell id and its χ value.
type CellCost struct {
	ID  CellID
	Chi float64
}

// SortCostVectorDescending sorts costs by Chi descending, breaking ties
// by cell id ascending, the deterministic ordering callers need
// so that "pick the worst cell" is reproducible.
func SortCostVectorDescending(costs []CellCost) {
	insertionSort(costs, func(a, b CellCost) bool {
		if a.Chi != b.Chi {
			return a.Chi > b.Chi
		}
		return a.ID < b.ID
	})
}

// insertionSort is a tiny stable sort sufficient for the small cost
// vectors (one entry per robot) this system deals with; avoids pulling
// in sort.Slice's reflection-based comparator for a handful of elements.
func insertionSort(cs []CellCost, less func(a, b CellCost) bool) {
	for i := 1; i < len(cs); i++ {
		for j := i; j > 0 && less(cs[j], cs[j-1]); j-- {
			cs[j-1], cs[j] = cs[j], cs[j-1]
		}
	}
}
