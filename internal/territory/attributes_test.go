package territory

import (
	"math"
	"reflect"
	"testing"

	"github.com/talgya/realmgen/internal/terrain"
)

func TestResourceRangesPerTerrain(t *testing.T) {
	wants := map[terrain.Terrain]struct {
		food, gold, military [2]int
	}{
		terrain.Plains:    {[2]int{70, 95}, [2]int{40, 60}, [2]int{50, 70}},
		terrain.Forest:    {[2]int{60, 80}, [2]int{30, 50}, [2]int{40, 60}},
		terrain.Mountains: {[2]int{20, 40}, [2]int{70, 95}, [2]int{60, 85}},
		terrain.Desert:    {[2]int{15, 35}, [2]int{50, 80}, [2]int{30, 50}},
		terrain.Hills:     {[2]int{50, 70}, [2]int{55, 75}, [2]int{55, 75}},
		terrain.Coastal:   {[2]int{65, 85}, [2]int{60, 85}, [2]int{45, 65}},
	}

	for terr, want := range wants {
		for seed := int64(0); seed < 200; seed++ {
			m := DeriveAttributes(terr, 32000, 1200, 800, seed)
			r := m.Resources
			if r.Food < want.food[0] || r.Food > want.food[1] {
				t.Fatalf("%v seed %d: food %d outside [%d,%d]", terr, seed, r.Food, want.food[0], want.food[1])
			}
			if r.Gold < want.gold[0] || r.Gold > want.gold[1] {
				t.Fatalf("%v seed %d: gold %d outside [%d,%d]", terr, seed, r.Gold, want.gold[0], want.gold[1])
			}
			if r.Military < want.military[0] || r.Military > want.military[1] {
				t.Fatalf("%v seed %d: military %d outside [%d,%d]", terr, seed, r.Military, want.military[0], want.military[1])
			}
		}
	}
}

func TestPopulationScalesWithArea(t *testing.T) {
	const width, height = 1200.0, 800.0
	averageArea := width * height / 30

	// A territory of exactly average area keeps its base roll; a quarter
	// of that area halves it (sqrt scaling).
	big := DeriveAttributes(terrain.Plains, averageArea, width, height, 5)
	small := DeriveAttributes(terrain.Plains, averageArea/4, width, height, 5)

	wantSmall := int(math.Round(float64(big.Population) * 0.5))
	if diff := small.Population - wantSmall; diff < -1 || diff > 1 {
		t.Fatalf("quarter-area population %d, want about %d (full-area %d)",
			small.Population, wantSmall, big.Population)
	}

	if big.Population <= 0 || small.Population <= 0 {
		t.Fatal("population must stay positive")
	}
}

func TestPopulationNeverZero(t *testing.T) {
	m := DeriveAttributes(terrain.Desert, 0.0001, 1200, 800, 9)
	if m.Population < 1 {
		t.Fatalf("sliver territory population %d, want >= 1", m.Population)
	}
}

func TestDevelopmentDerived(t *testing.T) {
	for seed := int64(0); seed < 500; seed++ {
		m := DeriveAttributes(terrain.Hills, 32000, 1200, 800, seed)
		want := int(math.Round(float64(m.Resources.Gold)*0.4 +
			float64(m.Resources.Food)*0.3 +
			float64(m.Resources.Military)*0.3))
		if m.Development != want {
			t.Fatalf("seed %d: development %d, want %d from %+v", seed, m.Development, want, m.Resources)
		}
		if m.Development < 0 || m.Development > 100 {
			t.Fatalf("seed %d: development %d outside [0,100]", seed, m.Development)
		}
	}
}

func TestCultureFromFixedPool(t *testing.T) {
	pool := make(map[string]bool, len(Cultures))
	for _, c := range Cultures {
		pool[c] = true
	}
	for seed := int64(0); seed < 100; seed++ {
		m := DeriveAttributes(terrain.Coastal, 32000, 1200, 800, seed)
		if !pool[m.Culture] {
			t.Fatalf("seed %d: culture %q not in the fixed pool", seed, m.Culture)
		}
	}
}

func TestDeriveAttributesDeterministic(t *testing.T) {
	a := DeriveAttributes(terrain.Forest, 28000, 1200, 800, 1042)
	b := DeriveAttributes(terrain.Forest, 28000, 1200, 800, 1042)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same inputs produced different metadata:\n%+v\n%+v", a, b)
	}
}
