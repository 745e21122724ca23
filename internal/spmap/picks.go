package spmap

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Pick is the phase pick state of one wave panel.
type Pick struct {
	Channel string `yaml:"channel"`
	// Plot is set when the pick should be shown on the map.
	Plot bool `yaml:"plot"`
	// P is the P arrival time; nil when no P pick was made.
	P *float64 `yaml:"p,omitempty"`
	// PChannel marks the panel the P pick was made on.
	PChannel bool `yaml:"pChannel"`
	// SpKm and its bounds are S-P distances in kilometres; nil means unknown.
	SpKm    *float64 `yaml:"spKm,omitempty"`
	SpMinKm *float64 `yaml:"spMinKm,omitempty"`
	SpMaxKm *float64 `yaml:"spMaxKm,omitempty"`
}

// PickSet is the pick state of the wave clipboard.
type PickSet struct {
	Enabled bool   `yaml:"picking"`
	Picks   []Pick `yaml:"picks"`
}

// LoadPicks reads a PickSet from a YAML file.
func LoadPicks(path string) (*PickSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read picks file %s: %w", path, err)
	}
	var set PickSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse picks file %s: %w", path, err)
	}
	return &set, nil
}

// Sp is one S-P circle. Min and Max are NaN when unknown.
type Sp struct {
	Channel  string
	Distance float64
	Min      float64
	Max      float64
}

func orNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

// Collect returns the circles to draw. Nothing is drawn while picking is
// disabled; otherwise a pick qualifies when it is plotted, has a P pick made
// on its own channel and a known S-P distance.
func Collect(set PickSet) []Sp {
	if !set.Enabled {
		return nil
	}
	var out []Sp
	for _, p := range set.Picks {
		if !p.Plot || p.P == nil || !p.PChannel {
			continue
		}
		d := orNaN(p.SpKm)
		if math.IsNaN(d) {
			continue
		}
		out = append(out, Sp{Channel: p.Channel, Distance: d, Min: orNaN(p.SpMinKm), Max: orNaN(p.SpMaxKm)})
	}
	return out
}
