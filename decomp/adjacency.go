package decomp

import (
	"sort"

	"github.com/arl/covpartition/geom"
	"gonum.org/v1/gonum/graph/simple"
)

// Adjacency is the symmetric "shares a positive-length boundary" relation
// over a Decomposition's cells, represented as an undirected gonum graph
// with CellID values serving directly as node IDs.
type Adjacency struct {
	g    *simple.UndirectedGraph
	ids  []CellID // cell ids present, ascending
	hasV map[CellID]bool
}

// Build constructs an Adjacency from cells by testing every pair with
// geom.BoundaryOverlapLength: two cells are adjacent iff their boundaries
// overlap by more than geom.Epsilon. Rebuilt from scratch after every
// accepted mutation rather than patched incrementally (component C).
func Build(cells []Cell) *Adjacency {
	g := simple.NewUndirectedGraph()
	a := &Adjacency{g: g, hasV: make(map[CellID]bool, len(cells))}
	for _, c := range cells {
		g.AddNode(simple.Node(c.ID))
		a.ids = append(a.ids, c.ID)
		a.hasV[c.ID] = true
	}
	sort.Slice(a.ids, func(i, j int) bool { return a.ids[i] < a.ids[j] })

	for i := 0; i < len(cells); i++ {
		for j := i + 1; j < len(cells); j++ {
			ci, cj := cells[i], cells[j]
			if geom.BoundaryOverlapLength(ci.Polygon, cj.Polygon) > geom.Epsilon {
				g.SetEdge(g.NewEdge(simple.Node(ci.ID), simple.Node(cj.ID)))
			}
		}
	}
	return a
}

// Neighbors returns id's adjacent cell ids in ascending order, or nil if
// id is unknown to the graph.
func (a *Adjacency) Neighbors(id CellID) []CellID {
	if !a.hasV[id] {
		return nil
	}
	it := a.g.From(int64(id))
	var out []CellID
	for it.Next() {
		out = append(out, CellID(it.Node().ID()))
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// AreAdjacent reports whether x and y share a positive-length boundary.
func (a *Adjacency) AreAdjacent(x, y CellID) bool {
	return a.g.HasEdgeBetween(int64(x), int64(y))
}

// IDs returns every cell id known to the graph, ascending.
func (a *Adjacency) IDs() []CellID {
	out := make([]CellID, len(a.ids))
	copy(out, a.ids)
	return out
}

// Matrix returns the symmetric adjacency relation as a dense boolean
// matrix indexed by position in IDs(), mirroring the dense-matrix view
// the original system exposes for small robot counts.
func (a *Adjacency) Matrix() [][]bool {
	n := len(a.ids)
	m := make([][]bool, n)
	for i := range m {
		m[i] = make([]bool, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if a.g.HasEdgeBetween(int64(a.ids[i]), int64(a.ids[j])) {
				m[i][j] = true
				m[j][i] = true
			}
		}
	}
	return m
}
