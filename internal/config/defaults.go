package config

const (
	// DefaultMaxChannelsAtOnce is the selection size above which the chooser refuses to open channels.
	DefaultMaxChannelsAtOnce = 500
	DefaultLineColor         = "#aca899"
	DefaultCircleSegments    = 72
)

// GetDefaultConfig returns the built-in configuration: no sources, no metadata.
func GetDefaultConfig() SwarmConfig {
	return SwarmConfig{
		GlobalSettings: GlobalSettings{
			LogLevel: "info",
		},
		Chooser: ChooserSettings{
			MaxChannelsAtOnce: DefaultMaxChannelsAtOnce,
		},
		Map: MapSettings{
			LineColor:      DefaultLineColor,
			CircleSegments: DefaultCircleSegments,
		},
		Sources:  []string{},
		Metadata: map[string]MetadataEntry{},
	}
}
