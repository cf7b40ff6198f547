// Package api serves deterministic map generation over HTTP. Every
// endpoint is GET and read-only; a map request runs a fresh generation
// from the query parameters, so the service itself holds no map state.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/talgya/realmgen/internal/config"
	"github.com/talgya/realmgen/internal/mapgen"
	"github.com/talgya/realmgen/internal/palette"
	"github.com/talgya/realmgen/internal/render"
	"github.com/talgya/realmgen/internal/terrain"
)

// Server exposes the generation pipeline over HTTP.
type Server struct {
	Gen *mapgen.Generator
	Cfg config.Config

	started time.Time
}

// Handler builds the routed, rate-limited, CORS-wrapped handler.
func (s *Server) Handler() http.Handler {
	limiter := NewRateLimiter(s.Cfg.RateLimit.Requests,
		time.Duration(s.Cfg.RateLimit.WindowMinutes)*time.Minute)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/terrains", s.handleTerrains)
	mux.HandleFunc("/api/v1/map", RateLimitMiddleware(limiter, s.handleMap))
	mux.HandleFunc("/api/v1/map.svg", RateLimitMiddleware(limiter, s.handleMapSVG))

	return corsMiddleware(s.Cfg.CORSOrigins, mux)
}

// Start serves the API on the configured port. It blocks until the
// listener fails.
func (s *Server) Start() error {
	s.started = time.Now()
	addr := fmt.Sprintf(":%d", s.Cfg.Port)
	slog.Info("HTTP API starting", "addr", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// mapConfig parses and caps the generation parameters from the query
// string. The seed is required: the service never substitutes wall-clock
// time, so identical URLs always return identical maps.
func (s *Server) mapConfig(r *http.Request) (mapgen.Config, error) {
	q := r.URL.Query()

	seedStr := q.Get("seed")
	if seedStr == "" {
		return mapgen.Config{}, fmt.Errorf("seed parameter is required")
	}
	seed, err := strconv.ParseInt(seedStr, 10, 64)
	if err != nil {
		return mapgen.Config{}, fmt.Errorf("seed must be an integer: %v", err)
	}

	width, err := floatParam(q.Get("width"), 1200)
	if err != nil {
		return mapgen.Config{}, fmt.Errorf("width: %v", err)
	}
	height, err := floatParam(q.Get("height"), 800)
	if err != nil {
		return mapgen.Config{}, fmt.Errorf("height: %v", err)
	}
	count := 30
	if v := q.Get("count"); v != "" {
		count, err = strconv.Atoi(v)
		if err != nil {
			return mapgen.Config{}, fmt.Errorf("count must be an integer: %v", err)
		}
	}

	caps := s.Cfg.Generation
	if count > caps.MaxTerritories {
		return mapgen.Config{}, fmt.Errorf("count exceeds maximum of %d", caps.MaxTerritories)
	}
	if width > caps.MaxWidth || height > caps.MaxHeight {
		return mapgen.Config{}, fmt.Errorf("map size exceeds maximum of %gx%g", caps.MaxWidth, caps.MaxHeight)
	}

	return mapgen.Config{Width: width, Height: height, TerritoryCount: count, Seed: seed}, nil
}

func floatParam(v string, def float64) (float64, error) {
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("must be a number: %v", err)
	}
	return f, nil
}

// handleMap generates a map and returns the territory list as JSON.
func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.mapConfig(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	list, err := s.Gen.Generate(cfg)
	if err != nil {
		var cfgErr *mapgen.ConfigError
		if errors.As(err, &cfgErr) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		slog.Error("generation failed", "error", err, "seed", cfg.Seed)
		http.Error(w, "generation failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{
		"width":       cfg.Width,
		"height":      cfg.Height,
		"seed":        cfg.Seed,
		"territories": list,
	})
}

// handleMapSVG generates a map and renders it as an SVG document.
func (s *Server) handleMapSVG(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.mapConfig(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	list, err := s.Gen.Generate(cfg)
	if err != nil {
		var cfgErr *mapgen.ConfigError
		if errors.As(err, &cfgErr) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		slog.Error("generation failed", "error", err, "seed", cfg.Seed)
		http.Error(w, "generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	render.SVG(w, list, cfg.Width, cfg.Height, render.Options{
		ShowCenters: r.URL.Query().Get("centers") == "1",
		ShowNames:   r.URL.Query().Get("labels") == "1",
	})
}

// handleTerrains lists the closed terrain set with a palette swatch each,
// for renderer legends.
func (s *Server) handleTerrains(w http.ResponseWriter, r *http.Request) {
	type entry struct {
		Terrain string `json:"terrain"`
		Swatch  string `json:"swatch"`
	}
	out := make([]entry, 0, len(terrain.All()))
	for _, t := range terrain.All() {
		out = append(out, entry{Terrain: t.String(), Swatch: palette.TerrainColor(t, 0, 0)})
	}
	writeJSON(w, out)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"status": "ok",
		"uptime": time.Since(s.started).Round(time.Second).String(),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// corsMiddleware adds CORS headers for allowed frontend origins. Localhost
// dev servers are always allowed.
func corsMiddleware(origins []string, next http.Handler) http.Handler {
	allowed := map[string]bool{
		"http://localhost:5173": true,
		"http://localhost:3000": true,
	}
	for _, o := range origins {
		allowed[o] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
