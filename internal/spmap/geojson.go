package spmap

import (
	"math"
	"swarm/internal/metadata"

	geojson "github.com/paulmach/go.geojson"
)

// Circle kinds written to the "kind" property.
const (
	KindStation = "station"
	KindSp      = "sp"
	KindSpMin   = "sp-min"
	KindSpMax   = "sp-max"
)

// Style controls GeoJSON output.
type Style struct {
	LineColor string
	Segments  int
}

// FeatureCollection renders S-P circles as geodesic polygons around each
// station, plus a point per station. Channels without coordinates are skipped.
func FeatureCollection(sps []Sp, lookup metadata.Lookup, style Style) *geojson.FeatureCollection {
	if style.Segments < 8 {
		style.Segments = 8
	}
	fc := geojson.NewFeatureCollection()
	if lookup == nil {
		return fc
	}
	for _, sp := range sps {
		md, ok := lookup.Get(sp.Channel)
		if !ok || !md.HasLonLat() {
			continue
		}
		lon, lat := *md.Longitude, *md.Latitude

		station := geojson.NewPointFeature([]float64{lon, lat})
		station.SetProperty("kind", KindStation)
		station.SetProperty("channel", sp.Channel)
		station.SetProperty("spKm", sp.Distance)
		fc.AddFeature(station)

		fc.AddFeature(ring(sp.Channel, KindSp, lon, lat, sp.Distance, false, style))
		if !math.IsNaN(sp.Min) {
			fc.AddFeature(ring(sp.Channel, KindSpMin, lon, lat, sp.Min, true, style))
		}
		if !math.IsNaN(sp.Max) {
			fc.AddFeature(ring(sp.Channel, KindSpMax, lon, lat, sp.Max, true, style))
		}
	}
	return fc
}

func ring(channel, kind string, lon, lat, km float64, dashed bool, style Style) *geojson.Feature {
	pts := make([][]float64, 0, style.Segments+1)
	for i := 0; i < style.Segments; i++ {
		bearing := 360 * float64(i) / float64(style.Segments)
		x, y := metadata.Destination(lon, lat, bearing, km)
		pts = append(pts, []float64{x, y})
	}
	pts = append(pts, pts[0])

	f := geojson.NewPolygonFeature([][][]float64{pts})
	f.SetProperty("kind", kind)
	f.SetProperty("channel", channel)
	f.SetProperty("radiusKm", km)
	f.SetProperty("dashed", dashed)
	if style.LineColor != "" {
		f.SetProperty("stroke", style.LineColor)
	}
	return f
}

// StationCount returns how many stations fc carries circles for.
func StationCount(fc *geojson.FeatureCollection) int {
	n := 0
	for _, f := range fc.Features {
		if f.Properties["kind"] == KindStation {
			n++
		}
	}
	return n
}
