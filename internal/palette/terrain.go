package palette

import "github.com/talgya/realmgen/internal/terrain"

// TerrainColor returns the display color for a territory. Each terrain
// keeps its own hue family (greens for plains, blues for coast, grays for
// mountains) while the territory index and map seed vary the exact shade,
// so neighboring cells of the same terrain stay distinguishable.
func TerrainColor(t terrain.Terrain, index int, seed int64) string {
	sd := int(seed)
	if sd < 0 {
		sd = -sd
	}

	var h, s, l int
	switch t {
	case terrain.Plains:
		h, s, l = 80+(index*15)%40, 45+sd%15, 50+(index*5)%15
	case terrain.Forest:
		h, s, l = 120+(index*10)%30, 40+sd%20, 30+(index*5)%15
	case terrain.Mountains:
		h, s, l = 0, 5+sd%10, 40+(index*5)%20
	case terrain.Desert:
		h, s, l = 40+(index*10)%30, 55+sd%20, 55+(index*5)%15
	case terrain.Hills:
		h, s, l = 25+(index*15)%35, 35+sd%15, 40+(index*5)%15
	case terrain.Coastal:
		h, s, l = 200+(index*10)%40, 50+sd%25, 45+(index*5)%15
	default:
		h, s, l = (index*50)%360, 50, 50
	}
	return HSLToHex(float64(h), float64(s), float64(l))
}
