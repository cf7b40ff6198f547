// Package mapgen runs the territory generation pipeline: seeded point
// sampling, Voronoi partitioning with Lloyd relaxation, terrain
// classification, attribute rolls, naming, and coloring. The whole
// pipeline is a pure single-threaded computation over (config, seed);
// concurrent Generate calls share no state.
package mapgen

import (
	"fmt"
	"log/slog"

	"github.com/talgya/realmgen/internal/geom"
	"github.com/talgya/realmgen/internal/names"
	"github.com/talgya/realmgen/internal/palette"
	"github.com/talgya/realmgen/internal/rng"
	"github.com/talgya/realmgen/internal/terrain"
	"github.com/talgya/realmgen/internal/territory"
	"github.com/talgya/realmgen/internal/voronoi"
)

// Partitioner splits the rectangle among sites, returning each site's
// clipped cell polygon by input index, or a nil polygon when the site is
// degenerate.
type Partitioner interface {
	Partition(sites []geom.Point, width, height float64) []geom.Polygon
}

// Seed offsets for the per-subsystem generators. These are part of the
// output contract: the classifier, the attribute rolls, and the name walk
// each derive their own stream from the map seed, and changing any offset
// changes every generated map.
const (
	attributeSeedOffset = 1000
	nameSeedOffset      = 5000
)

// Generator runs the pipeline against a partitioner. Construct with New
// or NewWith; the zero value has no partitioner.
type Generator struct {
	part Partitioner
	log  *slog.Logger
}

// New returns a Generator backed by the Fortune's-algorithm partitioner.
func New() *Generator {
	return NewWith(voronoi.Partitioner{}, slog.Default())
}

// NewWith returns a Generator using the given partitioner and logger.
func NewWith(part Partitioner, log *slog.Logger) *Generator {
	if log == nil {
		log = slog.Default()
	}
	return &Generator{part: part, log: log}
}

// Generate produces the territory list for the config. The list is ordered
// by generation index and never mutated afterwards; generate again for a
// new map. A site whose final cell is degenerate is dropped rather than
// retried with a perturbed position, so the list can come up shorter than
// TerritoryCount.
func (g *Generator) Generate(cfg Config) ([]territory.Territory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	st := stageConfigured
	advance := func(next stage) {
		st = next
		g.log.Debug("generation stage", "stage", st.String())
	}

	src := rng.New(cfg.Seed)
	points := samplePoints(src, cfg.TerritoryCount, cfg.Width, cfg.Height, cfg.margin())
	points = relax(g.part, points, cfg.Width, cfg.Height, cfg.relaxations())
	advance(stagePointsSampled)

	cells := g.part.Partition(points, cfg.Width, cfg.Height)
	if len(cells) != len(points) {
		advance(stageFailed)
		return nil, fmt.Errorf("mapgen: partitioner returned %d cells for %d sites", len(cells), len(points))
	}
	advance(stagePartitionComputed)

	type draft struct {
		index  int
		center geom.Point
		border geom.Polygon
		area   float64
		meta   territory.Metadata
	}
	drafts := make([]draft, 0, len(points))
	for i, cell := range cells {
		if len(cell) < 3 {
			g.log.Warn("dropping territory with degenerate cell",
				"index", i, "x", points[i].X, "y", points[i].Y)
			continue
		}
		area := cell.Area()
		t := terrain.Classify(points[i], cfg.Width, cfg.Height, cfg.Seed+int64(i))
		meta := territory.DeriveAttributes(t, area, cfg.Width, cfg.Height,
			cfg.Seed+int64(i)+attributeSeedOffset)
		drafts = append(drafts, draft{index: i, center: points[i], border: cell, area: area, meta: meta})
	}
	advance(stageClassified)

	nameList, err := names.New().Batch(cfg.Seed+nameSeedOffset, len(drafts))
	if err != nil {
		advance(stageFailed)
		return nil, err
	}
	advance(stageNamed)

	colors := make([]string, len(drafts))
	for i, d := range drafts {
		colors[i] = palette.TerrainColor(d.meta.Terrain, d.index, cfg.Seed)
	}
	advance(stageColored)

	out := make([]territory.Territory, len(drafts))
	for i, d := range drafts {
		out[i] = territory.Territory{
			ID:           fmt.Sprintf("territory-%d", d.index),
			Name:         nameList[i],
			Color:        colors[i],
			Center:       d.center,
			BorderPoints: d.border,
			Area:         d.area,
			Metadata:     d.meta,
		}
	}
	advance(stageAssembled)

	g.log.Info("map generated",
		"territories", len(out),
		"requested", cfg.TerritoryCount,
		"seed", cfg.Seed)
	return out, nil
}
