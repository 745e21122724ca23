// Package config provides configuration management for swarm.
//
// Configuration is read from YAML files and merged in layers, later layers
// overriding earlier ones:
//
//  1. Default configuration (built in): no sources, 500 channels per selection.
//  2. User configuration (~/.config/swarm/config.yaml).
//  3. Project configuration (./.swarm/config.yaml).
//
// A single file can be used instead with LoadConfigFromPath.
//
// # Configuration Structure
//
//	globalSettings:
//	  logLevel: info
//	chooser:
//	  maxChannelsAtOnce: 500
//	  nearestLimit: 20
//	viewers:
//	  helicorder: ["heli-viewer", "--source", "{source}", "{channel}"]
//	sources:
//	  - "AVO;wws:pubavo1.wr.usgs.gov:16022:10000"
//	  - "IRIS;fdsnws:https://service.iris.edu|AV|*|*|BH?"
//	metadata:
//	  "AKV BHZ AV --":
//	    groups: ["Akutan"]
//	    longitude: -165.99
//	    latitude: 54.13
//
// Sources are merged by name (the text before ';'), metadata by channel name,
// and monitored channels are unioned.
//
// The chooser mutates the loaded SwarmConfig through its source registry and
// the result is written back to the user file with SaveConfig on shutdown.
package config
