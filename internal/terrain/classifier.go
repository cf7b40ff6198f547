package terrain

import (
	"math"

	"github.com/talgya/realmgen/internal/geom"
	"github.com/talgya/realmgen/internal/rng"
)

// rule is one entry in the classification chain. The chain is ordered:
// the first rule whose predicate passes decides the terrain, later rules
// are never consulted.
type rule struct {
	terrain Terrain
	matches func(centerDist, edgeDist, r float64) bool
}

// Mountains ring the map edge, coastal bands sit just inside them, hills
// fill the outer third, plains dominate the middle. Forest and desert
// catch what remains. The literal thresholds are the whole of terrain
// placement; no other signal feeds the decision.
var rules = []rule{
	{Mountains, func(c, e, r float64) bool { return e < 0.15 && r < 0.6 }},
	{Coastal, func(c, e, r float64) bool { return e < 0.20 && c < 0.70 && r < 0.7 }},
	{Hills, func(c, e, r float64) bool { return e < 0.30 && r < 0.5 }},
	{Plains, func(c, e, r float64) bool { return c < 0.50 && r < 0.6 }},
	{Forest, func(c, e, r float64) bool { return r < 0.25 }},
	{Desert, func(c, e, r float64) bool { return c > 0.60 && r < 0.3 }},
}

// Classify assigns a terrain to a point inside the [0,w] x [0,h] rectangle
// using where the point sits and a single draw from a source seeded with
// seed. Equal inputs always classify identically.
func Classify(p geom.Point, width, height float64, seed int64) Terrain {
	center := geom.Point{X: width / 2, Y: height / 2}
	halfDiagonal := math.Hypot(width, height) / 2
	centerDist := geom.Dist(p, center) / halfDiagonal
	edgeDist := geom.EdgeDist(p, width, height) / math.Min(width, height)
	r := rng.New(seed).Next()
	return classify(centerDist, edgeDist, r)
}

func classify(centerDist, edgeDist, r float64) Terrain {
	for _, rule := range rules {
		if rule.matches(centerDist, edgeDist, r) {
			return rule.terrain
		}
	}
	return Plains
}
