// Command realmgen generates a territory map and writes it to JSON and,
// optionally, SVG.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/talgya/realmgen/internal/export"
	"github.com/talgya/realmgen/internal/mapgen"
	"github.com/talgya/realmgen/internal/render"
)

func main() {
	width := flag.Float64("width", 1200, "map width")
	height := flag.Float64("height", 800, "map height")
	count := flag.Int("count", 30, "number of territories")
	seed := flag.Int64("seed", 0, "generation seed (omit for a clock-based seed)")
	iterations := flag.Int("iterations", 0, "Lloyd relaxation iterations (0 = default)")
	out := flag.String("out", "map.json", "output JSON path")
	svgOut := flag.String("svg", "", "optional output SVG path")
	centers := flag.Bool("centers", false, "draw territory centers in the SVG")
	labels := flag.Bool("labels", false, "draw territory names in the SVG")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// The library requires an explicit seed; the clock fallback is a CLI
	// convenience only and is always reported so the run can be replayed.
	seedSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})
	if !seedSet {
		*seed = time.Now().UnixNano() % 1_000_000
		slog.Info("seed not supplied, using clock", "seed", *seed)
	}

	cfg := mapgen.Config{
		Width:          *width,
		Height:         *height,
		TerritoryCount: *count,
		Seed:           *seed,
		Relaxations:    *iterations,
	}

	list, err := mapgen.New().Generate(cfg)
	if err != nil {
		slog.Error("generation failed", "error", err)
		os.Exit(1)
	}

	byTerrain := make(map[string]int)
	totalArea := 0.0
	for _, t := range list {
		byTerrain[t.Metadata.Terrain.String()]++
		totalArea += t.Area
	}
	for terrainName, n := range byTerrain {
		slog.Info("terrain", "type", terrainName, "count", n)
	}
	slog.Info("map summary",
		"territories", len(list),
		"total_area", totalArea,
		"map_area", *width*(*height),
	)

	if err := export.WriteFile(*out, list); err != nil {
		slog.Error("failed to write map", "error", err)
		os.Exit(1)
	}
	slog.Info("map written", "path", *out)

	if *svgOut != "" {
		f, err := os.Create(*svgOut)
		if err != nil {
			slog.Error("failed to create SVG file", "error", err)
			os.Exit(1)
		}
		render.SVG(f, list, *width, *height, render.Options{
			ShowCenters: *centers,
			ShowNames:   *labels,
		})
		if err := f.Close(); err != nil {
			slog.Error("failed to close SVG file", "error", err)
			os.Exit(1)
		}
		slog.Info("svg written", "path", *svgOut)
	}
}
