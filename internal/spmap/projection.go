package spmap

import (
	"math"
	"swarm/internal/metadata"
)

// Range is a geographic extent in degrees.
type Range struct {
	West, East, South, North float64
}

// Center returns the middle of the range.
func (r Range) Center() (lon, lat float64) {
	return (r.West + r.East) / 2, (r.South + r.North) / 2
}

// Projection maps longitude/latitude to planar metres.
type Projection interface {
	Forward(lon, lat float64) (x, y float64)
}

// Equirectangular is a plate carrée projection scaled at a standard latitude.
type Equirectangular struct {
	StandardLat float64
}

// Forward implements Projection.
func (p Equirectangular) Forward(lon, lat float64) (float64, float64) {
	const r = metadata.EarthRadiusKm * 1000
	k := math.Cos(p.StandardLat * math.Pi / 180)
	return r * lon * math.Pi / 180 * k, r * lat * math.Pi / 180
}

// Extents returns the projected bounds of r as [minX, maxX, minY, maxY].
func (r Range) Extents(p Projection) [4]float64 {
	x0, y0 := p.Forward(r.West, r.South)
	x1, y1 := p.Forward(r.East, r.North)
	return [4]float64{math.Min(x0, x1), math.Max(x0, x1), math.Min(y0, y1), math.Max(y0, y1)}
}

// Point is a pixel position.
type Point struct {
	X, Y float64
}

// Rect is a pixel rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Panel is the map drawing area: a graph of WidthPx x HeightPx pixels offset
// by Inset on both axes.
type Panel struct {
	Range      Range
	Projection Projection
	WidthPx    int
	HeightPx   int
	Inset      int
}

// NewPanel returns a panel using an equirectangular projection centred on r.
func NewPanel(r Range, widthPx, heightPx, inset int) Panel {
	_, lat := r.Center()
	return Panel{Range: r, Projection: Equirectangular{StandardLat: lat}, WidthPx: widthPx, HeightPx: heightPx, Inset: inset}
}

// Clip is the rectangle drawing is confined to.
func (p Panel) Clip() Rect {
	return Rect{X: float64(p.Inset), Y: float64(p.Inset), W: float64(p.WidthPx), H: float64(p.HeightPx)}
}

// XY returns the pixel position of a coordinate.
func (p Panel) XY(lon, lat float64) Point {
	ext := p.Range.Extents(p.Projection)
	x, y := p.Projection.Forward(lon, lat)
	return Point{
		X: float64(p.Inset) + (x-ext[0])/(ext[1]-ext[0])*float64(p.WidthPx),
		Y: float64(p.Inset) + (ext[3]-y)/(ext[3]-ext[2])*float64(p.HeightPx),
	}
}

// RadiusPx converts a distance to pixels along the horizontal axis.
func (p Panel) RadiusPx(km float64) float64 {
	ext := p.Range.Extents(p.Projection)
	dx := ext[1] - ext[0]
	return float64(p.WidthPx) * 1000 * km / dx
}
