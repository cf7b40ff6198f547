package mapgen

import (
	"github.com/talgya/realmgen/internal/geom"
	"github.com/talgya/realmgen/internal/rng"
)

// samplePoints spreads count points uniformly over the rectangle, inset by
// margin on every side so no site starts on an edge.
func samplePoints(src *rng.Source, count int, width, height, margin float64) []geom.Point {
	pts := make([]geom.Point, count)
	for i := range pts {
		pts[i] = geom.Point{
			X: margin + src.Next()*(width-2*margin),
			Y: margin + src.Next()*(height-2*margin),
		}
	}
	return pts
}

// relax runs Lloyd iterations: each pass partitions the rectangle and
// moves every point to the centroid of its cell, evening out the spacing.
// A point whose cell comes back degenerate keeps its position for that
// iteration. Convergence is approximate; cells never become equal-area.
func relax(part Partitioner, pts []geom.Point, width, height float64, iterations int) []geom.Point {
	for it := 0; it < iterations; it++ {
		cells := part.Partition(pts, width, height)
		next := make([]geom.Point, len(pts))
		for i := range pts {
			if i < len(cells) && len(cells[i]) > 0 {
				next[i] = cells[i].Centroid()
			} else {
				next[i] = pts[i]
			}
		}
		pts = next
	}
	return pts
}
