// Package render draws a finished map to SVG. Like the interactive
// renderer it stands in for, it reads borders, colors, centers, and names
// and never touches the records.
package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/talgya/realmgen/internal/territory"
)

// Options toggle the optional SVG layers.
type Options struct {
	ShowCenters bool
	ShowNames   bool
}

const (
	backgroundStyle = "fill:rgb(24,24,32)"
	borderStyle     = "stroke:rgb(40,40,40);stroke-width:1"
	centerStyle     = "fill:rgb(250,250,250)"
	labelStyle      = "text-anchor:middle;font-size:11px;fill:rgb(20,20,20)"
)

// SVG writes the territory map as an SVG document sized to the map
// rectangle.
func SVG(w io.Writer, list []territory.Territory, width, height float64, opts Options) {
	canvas := svg.New(w)
	canvas.Start(int(width), int(height))
	canvas.Rect(0, 0, int(width), int(height), backgroundStyle)

	for _, t := range list {
		xs := make([]int, len(t.BorderPoints))
		ys := make([]int, len(t.BorderPoints))
		for i, p := range t.BorderPoints {
			xs[i] = int(math.Round(p.X))
			ys[i] = int(math.Round(p.Y))
		}
		canvas.Polygon(xs, ys, fmt.Sprintf("fill:%s;%s", t.Color, borderStyle))
	}

	if opts.ShowCenters {
		for _, t := range list {
			canvas.Circle(int(math.Round(t.Center.X)), int(math.Round(t.Center.Y)), 2, centerStyle)
		}
	}
	if opts.ShowNames {
		for _, t := range list {
			canvas.Text(int(math.Round(t.Center.X)), int(math.Round(t.Center.Y))-6, t.Name, labelStyle)
		}
	}

	canvas.End()
}
