package config

// SwarmConfig is the top-level configuration structure for swarm.
type SwarmConfig struct {
	GlobalSettings GlobalSettings           `yaml:"globalSettings"`
	Chooser        ChooserSettings          `yaml:"chooser"`
	Viewers        ViewerSettings           `yaml:"viewers,omitempty"`
	Map            MapSettings              `yaml:"map,omitempty"`
	Sources        []string                 `yaml:"sources,omitempty"`  // Data source config strings, e.g. "AVO;wws:pubavo1.wr.usgs.gov:16022"
	Metadata       map[string]MetadataEntry `yaml:"metadata,omitempty"` // Keyed by channel name
	Monitor        []string                 `yaml:"monitor,omitempty"`  // "source;channel" pairs under monitoring
}

// GlobalSettings holds process-wide preferences.
type GlobalSettings struct {
	LogLevel string `yaml:"logLevel,omitempty"` // debug, info, warn, error
}

// ChooserSettings tunes the data chooser.
type ChooserSettings struct {
	MaxChannelsAtOnce int `yaml:"maxChannelsAtOnce,omitempty"` // Selections above this size are refused
	NearestLimit      int `yaml:"nearestLimit,omitempty"`      // 0 shows every channel with coordinates
}

// ViewerSettings names external commands that open a selection.
// Each argument may contain the {source} and {channel} placeholders.
type ViewerSettings struct {
	Helicorder   []string `yaml:"helicorder,omitempty"`
	RealtimeWave []string `yaml:"realtimeWave,omitempty"`
	Monitor      []string `yaml:"monitor,omitempty"`
}

// MapSettings holds map overlay preferences.
type MapSettings struct {
	LineColor      string `yaml:"lineColor,omitempty"`      // Hex colour for S-P circles
	CircleSegments int    `yaml:"circleSegments,omitempty"` // Vertices per exported circle polygon
}

// MetadataEntry is the per-channel metadata record.
type MetadataEntry struct {
	Groups    []string `yaml:"groups,omitempty"`
	Longitude *float64 `yaml:"longitude,omitempty"`
	Latitude  *float64 `yaml:"latitude,omitempty"`
}
