// Package geom provides the planar geometry the generator needs: polygon
// area and centroids, plus the rectangle distance measures the terrain
// classifier works from.
package geom

import "math"

// Point is a position in map space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Polygon is an ordered ring of vertices. The ring is implicitly closed:
// the last vertex connects back to the first and is never duplicated.
type Polygon []Point

// Area returns the absolute polygon area via the shoelace formula.
// Polygons with fewer than three vertices have zero area.
func (p Polygon) Area() float64 {
	if len(p) < 3 {
		return 0
	}
	sum := 0.0
	for i, a := range p {
		b := p[(i+1)%len(p)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(sum) / 2
}

// Centroid returns the vertex mean of the polygon. For the near-regular
// cells a relaxed Voronoi diagram produces this is close enough to the
// true center of mass, and it is what Lloyd relaxation iterates on.
func (p Polygon) Centroid() Point {
	if len(p) == 0 {
		return Point{}
	}
	var c Point
	for _, v := range p {
		c.X += v.X
		c.Y += v.Y
	}
	c.X /= float64(len(p))
	c.Y /= float64(len(p))
	return c
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// EdgeDist returns the distance from p to the nearest edge of the
// rectangle [0,w] x [0,h].
func EdgeDist(p Point, w, h float64) float64 {
	return math.Min(math.Min(p.X, w-p.X), math.Min(p.Y, h-p.Y))
}
