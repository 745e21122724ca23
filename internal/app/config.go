package app

import (
	"swarm/internal/config"
	"swarm/pkg/logging"
)

// Config holds the application configuration
type Config struct {
	// UI mode
	NoTUI bool

	// Debug settings
	Debug bool

	// ConfigPath names a single configuration file. When empty the layered
	// user and project configuration is used and changes are saved to the
	// user file.
	ConfigPath string

	// Swarm configuration, filled in by NewApplication
	SwarmConfig *config.SwarmConfig

	// overlay is the project layer merged over the save target, if any.
	overlay     config.SwarmConfig
	overlayPath string
}

// NewConfig creates a new application configuration
func NewConfig(noTUI, debug bool, configPath string) *Config {
	return &Config{
		NoTUI:      noTUI,
		Debug:      debug,
		ConfigPath: configPath,
	}
}

// SavePath returns the file configuration changes are written to.
func (c *Config) SavePath() (string, error) {
	if c.ConfigPath != "" {
		return c.ConfigPath, nil
	}
	return config.UserConfigPath()
}

// Load reads the configuration named by c into c.SwarmConfig.
func (c *Config) Load() error {
	var (
		cfg config.SwarmConfig
		err error
	)
	if c.ConfigPath != "" {
		cfg, err = config.LoadConfigFromPath(c.ConfigPath)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return err
	}
	c.SwarmConfig = &cfg

	c.overlay, c.overlayPath = config.SwarmConfig{}, ""
	if c.ConfigPath == "" {
		if path, err := config.ProjectConfigPath(); err == nil {
			overlay, err := config.LoadFile(path)
			if err != nil {
				return err
			}
			c.overlay, c.overlayPath = overlay, path
		}
	}
	return nil
}

// LogLevel returns the level the application logs at.
func (c *Config) LogLevel() logging.LogLevel {
	if c.Debug {
		return logging.LevelDebug
	}
	if c.SwarmConfig != nil {
		return logging.ParseLevel(c.SwarmConfig.GlobalSettings.LogLevel)
	}
	return logging.LevelInfo
}
