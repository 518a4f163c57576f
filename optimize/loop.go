package optimize

import (
	"log"

	"github.com/arl/covpartition/chi"
	"github.com/arl/covpartition/decomp"
)

// Trace is called once per iteration of Run with the 1-based iteration
// number and that iteration's cost vector (worst first), before any
// re-cut attempted that round is applied. A nil Trace disables this
// debug-level hook.
type Trace func(iteration int, costs []decomp.CellCost)

// Result captures the cost vector before the first iteration and after
// the last, letting callers report the overall improvement.
type Result struct {
	Before []decomp.CellCost
	After  []decomp.CellCost
}

// Run performs params.Iterations rounds of re-optimization on d
// (component H): each round rebuilds the adjacency graph, computes the
// current cost vector, and hands the worst cell to Reoptimize. A round
// that finds no improving cut anywhere is logged and skipped; it does
// not stop the loop, since a later round may find an opening a previous
// round's recursion didn't reach.
func Run(d *decomp.Decomposition, cfg chi.Config, params Params, trace Trace) Result {
	before := costVector(d, cfg)

	for i := 0; i < params.Iterations; i++ {
		costs := costVector(d, cfg)
		if trace != nil {
			trace(i+1, costs)
		}
		if len(costs) == 0 {
			continue
		}

		adj := decomp.Build(d.Items())
		worst := costs[0].ID
		if !Reoptimize(d, adj, worst, cfg, params) {
			log.Printf("optimize: iteration %d/%d found no improving cut", i+1, params.Iterations)
		}
	}

	return Result{Before: before, After: costVector(d, cfg)}
}

func costVector(d *decomp.Decomposition, cfg chi.Config) []decomp.CellCost {
	items := d.Items()
	costs := make([]decomp.CellCost, len(items))
	for i, c := range items {
		costs[i] = decomp.CellCost{ID: c.ID, Chi: chi.Value(c.Polygon, c.Site, cfg)}
	}
	decomp.SortCostVectorDescending(costs)
	return costs
}
