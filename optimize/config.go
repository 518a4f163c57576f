package optimize

import "github.com/arl/covpartition/chi"

// Params bundles the χ configuration with the optimizer's own knobs.
// Populated with DefaultParams and optionally overridden from YAML by the
// CLI, mirroring chi.Config's shape.
type Params struct {
	Chi chi.Config `yaml:"chi"`
	// Samples is the number of arc-length samples taken around a unioned
	// pair's exterior when searching for a re-cut chord; the search
	// considers every ordered pair of samples, so cost is O(Samples^2)
	// per pairwise attempt.
	Samples int `yaml:"samples"`
	// Iterations is the number of re-optimization rounds Run performs.
	Iterations int `yaml:"iterations"`
	// MaxRecursionDepth caps the DFS driver's descent into the adjacency
	// graph per iteration; defaults to the cell count, which is always
	// enough to visit every cell once and guarantees termination.
	MaxRecursionDepth int `yaml:"max_recursion_depth"`
}

// DefaultParams returns the optimizer defaults: χ defaults, 100 samples
// per pairwise search (matching the reference search density), 10
// iterations, and no recursion cap override (Reoptimize fills it in from
// the cell count when left at 0).
func DefaultParams() Params {
	return Params{
		Chi:        chi.DefaultConfig(),
		Samples:    100,
		Iterations: 10,
	}
}
