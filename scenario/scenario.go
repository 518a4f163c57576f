package scenario

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/arl/covpartition/decomp"
	"github.com/arl/covpartition/geom"
)

// ringJSON is the on-disk form of a ring: a flat list of [x, y] pairs, no
// repeated closing vertex, orientation not assumed.
type ringJSON [][2]float64

func (r ringJSON) toRing() geom.Ring {
	out := make(geom.Ring, len(r))
	for i, v := range r {
		out[i] = geom.Point{X: v[0], Y: v[1]}
	}
	return out
}

type polygonJSON struct {
	Exterior ringJSON   `json:"exterior"`
	Holes    []ringJSON `json:"holes,omitempty"`
}

func (p polygonJSON) toPolygon() (geom.Polygon, error) {
	holes := make([]geom.Ring, len(p.Holes))
	for i, h := range p.Holes {
		holes[i] = h.toRing()
	}
	return geom.NewPolygon(p.Exterior.toRing(), holes)
}

// cellJSON is one entry of a scenario's initial decomposition.
type cellJSON struct {
	Polygon polygonJSON `json:"polygon"`
	Site    [2]float64  `json:"site"`
}

// document is the on-disk scenario format: a workspace polygon and its
// initial cell-per-robot decomposition.
type document struct {
	Workspace polygonJSON `json:"workspace"`
	Cells     []cellJSON  `json:"cells"`
}

// Load reads a scenario file and builds the Decomposition it describes.
func Load(path string) (*decomp.Decomposition, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	var doc document
	if err := json.Unmarshal(buf, &doc); err != nil {
		return nil, fmt.Errorf("scenario: parsing %s: %w", path, err)
	}

	workspace, err := doc.Workspace.toPolygon()
	if err != nil {
		return nil, fmt.Errorf("scenario: invalid workspace polygon: %w", err)
	}

	cells := make([]geom.Polygon, len(doc.Cells))
	sites := make([]geom.Point, len(doc.Cells))
	for i, c := range doc.Cells {
		p, err := c.Polygon.toPolygon()
		if err != nil {
			return nil, fmt.Errorf("scenario: invalid cell %d polygon: %w", i, err)
		}
		cells[i] = p
		sites[i] = geom.Point{X: c.Site[0], Y: c.Site[1]}
	}

	return decomp.New(workspace, cells, sites)
}

// Save serializes d's canonical view to path as indented JSON: a "cells"
// list only, with no workspace polygon, so Load does not accept the
// result.
func Save(path string, d *decomp.Decomposition) error {
	view := d.CanonicalView()
	out := make([]cellJSON, len(view))
	for i, c := range view {
		out[i] = cellJSON{
			Polygon: polygonJSON{
				Exterior: ringJSON(c.Polygon.Exterior),
				Holes:    holesToJSON(c.Polygon.Holes),
			},
			Site: c.Site,
		}
	}
	buf, err := json.MarshalIndent(struct {
		Cells []cellJSON `json:"cells"`
	}{out}, "", "  ")
	if err != nil {
		return fmt.Errorf("scenario: %w", err)
	}
	return os.WriteFile(path, buf, 0o644)
}

func holesToJSON(holes []decomp.CanonicalRing) []ringJSON {
	out := make([]ringJSON, len(holes))
	for i, h := range holes {
		out[i] = ringJSON(h)
	}
	return out
}
