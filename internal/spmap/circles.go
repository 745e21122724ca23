package spmap

import (
	"math"
	"swarm/internal/metadata"
)

// Circle is an S-P circle laid out on a panel. MinRadius and MaxRadius are
// NaN when the uncertainty bound is unknown; they are drawn dashed.
type Circle struct {
	Channel   string
	Center    Point
	Radius    float64
	MinRadius float64
	MaxRadius float64
}

// Bounds returns the bounding box of the outermost known circle.
func (c Circle) Bounds() Rect {
	r := c.Radius
	if !math.IsNaN(c.MaxRadius) && c.MaxRadius > r {
		r = c.MaxRadius
	}
	return Rect{X: c.Center.X - r, Y: c.Center.Y - r, W: 2 * r, H: 2 * r}
}

// Intersects reports whether two rectangles overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Layout places each S-P circle on the panel. Channels without metadata or
// without coordinates are skipped.
func Layout(panel Panel, sps []Sp, lookup metadata.Lookup) []Circle {
	if lookup == nil {
		return nil
	}
	var out []Circle
	for _, sp := range sps {
		md, ok := lookup.Get(sp.Channel)
		if !ok || !md.HasLonLat() {
			continue
		}
		c := Circle{
			Channel:   sp.Channel,
			Center:    panel.XY(*md.Longitude, *md.Latitude),
			Radius:    panel.RadiusPx(sp.Distance),
			MinRadius: math.NaN(),
			MaxRadius: math.NaN(),
		}
		if !math.IsNaN(sp.Min) {
			c.MinRadius = panel.RadiusPx(sp.Min)
		}
		if !math.IsNaN(sp.Max) {
			c.MaxRadius = panel.RadiusPx(sp.Max)
		}
		out = append(out, c)
	}
	return out
}

// Visible keeps the circles that reach into the panel's clip rectangle.
func Visible(panel Panel, circles []Circle) []Circle {
	clip := panel.Clip()
	var out []Circle
	for _, c := range circles {
		if c.Bounds().Intersects(clip) {
			out = append(out, c)
		}
	}
	return out
}
