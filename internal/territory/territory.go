// Package territory defines the generated map records and derives their
// gameplay attributes from terrain and cell geometry.
package territory

import (
	"github.com/talgya/realmgen/internal/geom"
	"github.com/talgya/realmgen/internal/terrain"
)

// Resources are a territory's yields, each in [1,100].
type Resources struct {
	Food     int `json:"food"`
	Gold     int `json:"gold"`
	Military int `json:"military"`
}

// Metadata carries the derived gameplay attributes of a territory.
type Metadata struct {
	Population  int             `json:"population"`
	Terrain     terrain.Terrain `json:"terrain"`
	Resources   Resources       `json:"resources"`
	Culture     string          `json:"culture"`
	Development int             `json:"development"`
}

// Territory is one polygonal region of the map. Records are immutable once
// generated; regeneration builds an entirely new list.
type Territory struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Color  string     `json:"color"`
	Center geom.Point `json:"center"`

	// BorderPoints is the clipped cell polygon: an ordered ring in the
	// partitioner's winding order, last vertex not repeating the first.
	BorderPoints geom.Polygon `json:"borderPoints"`

	Area     float64  `json:"area"`
	Metadata Metadata `json:"metadata"`
}
