package optimize

import (
	"sort"

	"github.com/arl/covpartition/chi"
	"github.com/arl/covpartition/decomp"
)

// Reoptimize searches outward from the cell identified by startID for a
// pair worth re-cutting (component G). It visits startID's neighbors in
// ascending cost order, attempts Pairwise on the first one cheaper than
// startID's own cost, and on failure recurses into that neighbor's own
// neighborhood rather than giving up, mirroring the reference system's
// breadth-first retry, expressed here as bounded recursion since each
// cell is visited at most once per call.
//
// depth is capped at params.MaxRecursionDepth (or the decomposition's
// cell count, if that field is left at 0) so a decomposition with no
// improving cut anywhere terminates rather than recursing forever.
// Reoptimize commits at most one pair replacement and reports whether it
// did.
func Reoptimize(d *decomp.Decomposition, adj *decomp.Adjacency, startID decomp.CellID, cfg chi.Config, params Params) bool {
	maxDepth := params.MaxRecursionDepth
	if maxDepth <= 0 {
		maxDepth = d.Len()
	}
	visited := make(map[decomp.CellID]bool, d.Len())
	return reoptimizeFrom(d, adj, startID, cfg, params, visited, 0, maxDepth)
}

func reoptimizeFrom(d *decomp.Decomposition, adj *decomp.Adjacency, vMaxID decomp.CellID, cfg chi.Config, params Params, visited map[decomp.CellID]bool, depth, maxDepth int) bool {
	if depth >= maxDepth || visited[vMaxID] {
		return false
	}
	visited[vMaxID] = true

	vMax, ok := d.Cell(vMaxID)
	if !ok {
		return false
	}
	vMaxCost := chi.Value(vMax.Polygon, vMax.Site, cfg)

	neighbors := adj.Neighbors(vMaxID)
	sort.Slice(neighbors, func(i, j int) bool {
		ci, _ := d.Cell(neighbors[i])
		cj, _ := d.Cell(neighbors[j])
		costI := chi.Value(ci.Polygon, ci.Site, cfg)
		costJ := chi.Value(cj.Polygon, cj.Site, cfg)
		if costI != costJ {
			return costI < costJ
		}
		return neighbors[i] < neighbors[j]
	})

	for _, nid := range neighbors {
		if visited[nid] {
			continue
		}
		n, ok := d.Cell(nid)
		if !ok {
			continue
		}
		nCost := chi.Value(n.Polygon, n.Site, cfg)
		if nCost >= vMaxCost {
			continue
		}

		polyA, polyB, ok := Pairwise(vMax, n, cfg, params.Samples)
		if ok {
			_ = d.ReplaceCells(vMaxID, polyA, nid, polyB)
			return true
		}

		if reoptimizeFrom(d, adj, nid, cfg, params, visited, depth+1, maxDepth) {
			return true
		}
	}
	return false
}
