// Package voronoi adapts the Fortune's-algorithm diagram from
// github.com/pzsz/voronoi into per-site clipped cell polygons. The
// triangulation math itself lives entirely in that library; this wrapper
// only fixes the bounding box, restores input ordering, and normalizes
// degenerate cells to nil.
package voronoi

import (
	fortune "github.com/pzsz/voronoi"

	"github.com/talgya/realmgen/internal/geom"
)

// Partitioner computes rectangle-bounded Voronoi partitions. It satisfies
// mapgen.Partitioner.
type Partitioner struct{}

// Partition returns, for each site by input index, its Voronoi cell clipped
// to [0,width] x [0,height]. Vertices arrive in the diagram's winding order
// without a duplicated closing point. A site the diagram could not produce
// a cell for (duplicate or otherwise degenerate) gets a nil polygon.
func (Partitioner) Partition(sites []geom.Point, width, height float64) []geom.Polygon {
	cells := make([]geom.Polygon, len(sites))
	if len(sites) == 0 {
		return cells
	}

	verts := make([]fortune.Vertex, len(sites))
	// The diagram does not preserve input order, but it passes site
	// coordinates through unmodified, so exact equality maps a cell back
	// to its site index. Duplicated sites keep only the first index.
	index := make(map[fortune.Vertex]int, len(sites))
	for i, p := range sites {
		v := fortune.Vertex{X: p.X, Y: p.Y}
		verts[i] = v
		if _, dup := index[v]; !dup {
			index[v] = i
		}
	}

	bbox := fortune.NewBBox(0, width, 0, height)
	diagram := fortune.ComputeDiagram(verts, bbox, true)

	for _, cell := range diagram.Cells {
		i, ok := index[cell.Site]
		if !ok {
			continue
		}
		poly := make(geom.Polygon, 0, len(cell.Halfedges))
		for _, he := range cell.Halfedges {
			start := he.GetStartpoint()
			poly = append(poly, geom.Point{X: start.X, Y: start.Y})
		}
		if len(poly) >= 3 {
			cells[i] = poly
		}
	}
	return cells
}
