package territory

import (
	"math"

	"github.com/talgya/realmgen/internal/rng"
	"github.com/talgya/realmgen/internal/terrain"
)

// span holds inclusive draw bounds for a single roll.
type span struct {
	lo, hi int
}

// profile collects a terrain's roll tables: mountains are gold-rich and
// sparse, plains feed large populations, coastal land gets trade gold and
// the biggest towns.
type profile struct {
	food, gold, military span
	population           span
}

var profiles = map[terrain.Terrain]profile{
	terrain.Plains:    {span{70, 95}, span{40, 60}, span{50, 70}, span{8000, 15000}},
	terrain.Forest:    {span{60, 80}, span{30, 50}, span{40, 60}, span{5000, 10000}},
	terrain.Mountains: {span{20, 40}, span{70, 95}, span{60, 85}, span{2000, 5000}},
	terrain.Desert:    {span{15, 35}, span{50, 80}, span{30, 50}, span{1000, 4000}},
	terrain.Hills:     {span{50, 70}, span{55, 75}, span{55, 75}, span{6000, 12000}},
	terrain.Coastal:   {span{65, 85}, span{60, 85}, span{45, 65}, span{10000, 18000}},
}

// Cultures is the fixed pool a territory's culture is drawn from.
var Cultures = [12]string{
	"Valdorian", "Keshite", "Thornish", "Maravi", "Oskarn", "Lysian",
	"Drevani", "Calphite", "Norvind", "Ashkari", "Veldrun", "Tirassi",
}

// assumedTerritories normalizes population scaling by area. It is a fixed
// constant, not the requested territory count: changing it would change
// every generated population.
const assumedTerritories = 30

// DeriveAttributes rolls resources, base population, and culture for a
// territory from a source seeded with seed, then scales population by cell
// area and computes the development score. The draws happen in a fixed
// order (food, gold, military, population, culture); reordering them would
// silently change every generated map.
func DeriveAttributes(t terrain.Terrain, area, width, height float64, seed int64) Metadata {
	src := rng.New(seed)

	res := Resources{Food: 50, Gold: 50, Military: 50}
	basePop := 5000
	if p, ok := profiles[t]; ok {
		res = Resources{
			Food:     src.Between(p.food.lo, p.food.hi),
			Gold:     src.Between(p.gold.lo, p.gold.hi),
			Military: src.Between(p.military.lo, p.military.hi),
		}
		basePop = src.Between(p.population.lo, p.population.hi)
	}

	averageArea := (width * height) / assumedTerritories
	scale := math.Sqrt(area / averageArea)
	population := int(math.Round(float64(basePop) * scale))
	if population < 1 {
		// A sliver cell can scale the base below one inhabitant.
		population = 1
	}

	culture := Cultures[src.Between(0, len(Cultures)-1)]

	return Metadata{
		Population:  population,
		Terrain:     t,
		Resources:   res,
		Culture:     culture,
		Development: Development(res),
	}
}

// Development summarizes a resource profile into a [0,100] score. It is
// always derived from the resource rolls, never rolled independently.
func Development(r Resources) int {
	return int(math.Round(float64(r.Gold)*0.4 + float64(r.Food)*0.3 + float64(r.Military)*0.3))
}
