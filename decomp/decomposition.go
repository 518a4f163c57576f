package decomp

import (
	assert "github.com/arl/assertgo"
	"github.com/arl/covpartition/geom"
)

// Decomposition is the indexed cell -> (polygon, site) mapping the
// optimizer mutates in place. It is the exclusive owner of its cells;
// every other component (Adjacency, cost vectors) consumes a read-only
// snapshot via Items.
type Decomposition struct {
	cells  map[CellID]Cell
	order  []CellID // insertion order, for deterministic iteration
	nextID CellID
}

// New validates workspace, cells and sites against the external-interface
// invariants and builds a Decomposition: cell count equals
// len(cells) == len(sites), sites are pairwise distinct, and the cells'
// total area matches the workspace area to the tolerance
// names (1e-6 relative).
func New(workspace geom.Polygon, cells []geom.Polygon, sites []geom.Point) (*Decomposition, error) {
	if len(cells) != len(sites) {
		return nil, ErrSiteCountMismatch
	}
	for i := range sites {
		for j := i + 1; j < len(sites); j++ {
			if sites[i].ApproxEqual(sites[j]) {
				return nil, ErrDuplicateSite
			}
		}
	}
	var total float64
	for _, c := range cells {
		total += c.Area()
	}
	wsArea := workspace.Area()
	tol := 1e-6 * wsArea
	if tol < geom.Epsilon {
		tol = geom.Epsilon
	}
	if abs(total-wsArea) > tol {
		return nil, ErrAreaMismatch
	}
	for i := range cells {
		for j := i + 1; j < len(cells); j++ {
			if cells[i].Intersects(cells[j]) && !cells[i].Touches(cells[j]) {
				return nil, ErrOverlappingCells
			}
		}
	}

	d := &Decomposition{cells: make(map[CellID]Cell, len(cells))}
	for i, p := range cells {
		id := d.nextID
		d.nextID++
		d.cells[id] = Cell{ID: id, Polygon: p, Site: sites[i]}
		d.order = append(d.order, id)
	}
	return d, nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// AddCell appends a new, site-less cell and returns its id. Used only at
// construction time in the source system; the optimizer driver never
// grows the decomposition: cell count never increases.
func (d *Decomposition) AddCell(p geom.Polygon) CellID {
	id := d.nextID
	d.nextID++
	d.cells[id] = Cell{ID: id, Polygon: p}
	d.order = append(d.order, id)
	return id
}

// AddSite binds a site to an existing cell. Returns false if the cell
// doesn't exist.
func (d *Decomposition) AddSite(id CellID, site geom.Point) bool {
	c, ok := d.cells[id]
	if !ok {
		return false
	}
	c.Site = site
	d.cells[id] = c
	return true
}

// Cell returns the cell bound to id.
func (d *Decomposition) Cell(id CellID) (Cell, bool) {
	c, ok := d.cells[id]
	return c, ok
}

// Len returns the number of cells, constant for the life of the
// Decomposition after construction.
func (d *Decomposition) Len() int { return len(d.cells) }

// Items returns every cell in a stable, deterministic order (insertion
// order at construction time).
func (d *Decomposition) Items() []Cell {
	out := make([]Cell, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.cells[id])
	}
	return out
}

// ReplaceCells atomically swaps the polygons of two existing cells,
// keeping their ids and sites bound as before. Both replacement polygons
// must be non-empty and valid; cell count is unaffected. This is the
// optimizer driver's only mutation entry point (single
// writer, commits on the driver thread).
func (d *Decomposition) ReplaceCells(idA CellID, polyA geom.Polygon, idB CellID, polyB geom.Polygon) error {
	ca, ok := d.cells[idA]
	if !ok {
		return ErrUnknownCell
	}
	cb, ok := d.cells[idB]
	if !ok {
		return ErrUnknownCell
	}
	if polyA.Area() < geom.Epsilon || polyB.Area() < geom.Epsilon {
		return ErrInvalidCell
	}
	if _, err := geom.NewPolygon(polyA.Exterior, polyA.Holes); err != nil {
		return ErrInvalidCell
	}
	if _, err := geom.NewPolygon(polyB.Exterior, polyB.Holes); err != nil {
		return ErrInvalidCell
	}
	before := ca.Polygon.Area() + cb.Polygon.Area()
	ca.Polygon = polyA
	cb.Polygon = polyB
	d.cells[idA] = ca
	d.cells[idB] = cb
	assert.True(absNear(before, polyA.Area()+polyB.Area()),
		"ReplaceCells must preserve the pair's total area: before=%v after=%v", before, polyA.Area()+polyB.Area())
	return nil
}

func absNear(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	tol := 1e-6 * a
	if tol < geom.Epsilon {
		tol = geom.Epsilon
	}
	return d <= tol
}

// TotalArea returns the sum of every cell's area, used by callers to
// re-check the area-conservation invariant after a round of mutation.
func (d *Decomposition) TotalArea() float64 {
	var total float64
	for _, c := range d.cells {
		total += c.Polygon.Area()
	}
	return total
}

// CanonicalRing is the wire form of a ring: a plain coordinate-pair list,
// CCW for exteriors and CW for holes, no repeated closing vertex.
type CanonicalRing [][2]float64

// CanonicalPolygon is the wire form of a polygon.
type CanonicalPolygon struct {
	Exterior CanonicalRing
	Holes    []CanonicalRing
}

// CanonicalCell is the wire form of one decomposition entry.
type CanonicalCell struct {
	ID      CellID
	Polygon CanonicalPolygon
	Site    [2]float64
}

// CanonicalView serializes the decomposition to the canonical vertex-list
// form external consumers (plotting, tests, the CLI) expect, normalizing
// ring orientation along the way; mirrors polygon_split.py's
// convert_to_canonical, which fixes winding on the way out rather than
// assuming callers already produced canonical rings.
func (d *Decomposition) CanonicalView() []CanonicalCell {
	out := make([]CanonicalCell, 0, len(d.order))
	for _, id := range d.order {
		c := d.cells[id]
		out = append(out, CanonicalCell{
			ID:      id,
			Polygon: canonicalizePolygon(c.Polygon),
			Site:    [2]float64{c.Site.X, c.Site.Y},
		})
	}
	return out
}

func canonicalizePolygon(p geom.Polygon) CanonicalPolygon {
	cp := CanonicalPolygon{Exterior: ringToCanonical(p.Exterior.Canonicalized(true))}
	for _, h := range p.Holes {
		cp.Holes = append(cp.Holes, ringToCanonical(h.Canonicalized(false)))
	}
	return cp
}

func ringToCanonical(r geom.Ring) CanonicalRing {
	out := make(CanonicalRing, len(r))
	for i, p := range r {
		out[i] = [2]float64{p.X, p.Y}
	}
	return out
}
