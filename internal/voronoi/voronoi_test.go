package voronoi

import (
	"math"
	"testing"

	"github.com/talgya/realmgen/internal/geom"
)

// Four symmetric sites in a 10x10 box partition it into four quarter
// cells.
func TestPartitionSymmetricQuarters(t *testing.T) {
	sites := []geom.Point{
		{X: 2.5, Y: 2.5},
		{X: 7.5, Y: 2.5},
		{X: 2.5, Y: 7.5},
		{X: 7.5, Y: 7.5},
	}

	cells := Partitioner{}.Partition(sites, 10, 10)
	if len(cells) != len(sites) {
		t.Fatalf("got %d cells for %d sites", len(cells), len(sites))
	}

	total := 0.0
	for i, cell := range cells {
		if len(cell) < 3 {
			t.Fatalf("site %d: degenerate cell with %d vertices", i, len(cell))
		}
		area := cell.Area()
		if math.Abs(area-25) > 1e-6 {
			t.Errorf("site %d: area %v, want 25", i, area)
		}
		total += area
	}
	if math.Abs(total-100) > 1e-6 {
		t.Errorf("cells cover %v, want 100", total)
	}
}

// Each returned cell must contain its own site: cells come back in input
// order, not diagram order.
func TestPartitionPreservesInputOrder(t *testing.T) {
	sites := []geom.Point{
		{X: 1, Y: 1},
		{X: 8, Y: 2},
		{X: 4, Y: 7},
		{X: 9, Y: 9},
		{X: 2, Y: 5},
	}

	cells := Partitioner{}.Partition(sites, 10, 10)
	for i, cell := range cells {
		if len(cell) < 3 {
			t.Fatalf("site %d: degenerate cell", i)
		}
		// The cell is convex and contains its site's nearest region, so
		// the centroid must sit closer to its own site than to any other.
		c := cell.Centroid()
		own := geom.Dist(c, sites[i])
		for j, other := range sites {
			if j == i {
				continue
			}
			if geom.Dist(c, other) < own-1e-9 {
				t.Fatalf("cell %d centroid %v is closer to site %d", i, c, j)
			}
		}
	}
}

func TestPartitionEmpty(t *testing.T) {
	cells := Partitioner{}.Partition(nil, 10, 10)
	if len(cells) != 0 {
		t.Fatalf("got %d cells for zero sites", len(cells))
	}
}
