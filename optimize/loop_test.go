package optimize_test

import (
	"testing"

	"github.com/arl/covpartition/chi"
	"github.com/arl/covpartition/decomp"
	"github.com/arl/covpartition/geom"
	"github.com/arl/covpartition/optimize"
	"github.com/stretchr/testify/require"
)

func fourStrips(t *testing.T) *decomp.Decomposition {
	t.Helper()
	workspace := rect(0, 0, 4, 1)
	cells := []geom.Polygon{
		rect(0, 0, 0.3, 1),
		rect(0.3, 0, 2, 1),
		rect(2, 0, 3.8, 1),
		rect(3.8, 0, 4, 1),
	}
	sites := []geom.Point{
		{X: 0.15, Y: 0.5},
		{X: 1.15, Y: 0.5},
		{X: 2.9, Y: 0.5},
		{X: 3.9, Y: 0.5},
	}
	d, err := decomp.New(workspace, cells, sites)
	require.NoError(t, err)
	return d
}

func TestRun_DoesNotIncreaseWorstCaseCostOverUnevenStrips(t *testing.T) {
	d := fourStrips(t)
	cfg := chi.DefaultConfig()
	params := optimize.DefaultParams()
	params.Samples = 30
	params.Iterations = 6

	result := optimize.Run(d, cfg, params, nil)

	require.NotEmpty(t, result.Before)
	require.NotEmpty(t, result.After)
	require.LessOrEqual(t, result.After[0].Chi, result.Before[0].Chi)
	require.InDelta(t, 4.0, d.TotalArea(), 1e-6)
}

func TestRun_PreservesDecompositionInvariantsAcrossIterations(t *testing.T) {
	d := fourStrips(t)
	cfg := chi.DefaultConfig()
	params := optimize.DefaultParams()
	params.Samples = 20
	params.Iterations = 3

	var seenIterations []int
	trace := func(iteration int, costs []decomp.CellCost) {
		seenIterations = append(seenIterations, iteration)
		require.Len(t, costs, 4)
	}
	optimize.Run(d, cfg, params, trace)

	require.Equal(t, []int{1, 2, 3}, seenIterations)
	require.Equal(t, 4, d.Len())
}

func TestRun_ZeroIterationsReturnsIdenticalBeforeAndAfter(t *testing.T) {
	d := fourStrips(t)
	cfg := chi.DefaultConfig()
	params := optimize.DefaultParams()
	params.Iterations = 0

	result := optimize.Run(d, cfg, params, nil)
	require.Equal(t, result.Before, result.After)
}
