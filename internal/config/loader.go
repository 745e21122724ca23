package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/swarm"
	projectConfigDir = ".swarm"
	configFileName   = "config.yaml"
)

// LoadConfig loads the swarm configuration by layering default, user, and project settings.
func LoadConfig() (SwarmConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// user config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
		userConfig, err := loadConfigFromFile(userConfigPath)
		if err != nil {
			return SwarmConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
		config = mergeConfigs(config, userConfig)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
		projectConfig, err := loadConfigFromFile(projectConfigPath)
		if err != nil {
			return SwarmConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
		config = mergeConfigs(config, projectConfig)
	}

	return config, nil
}

// LoadConfigFromPath loads the defaults overlaid with a single configuration file.
func LoadConfigFromPath(path string) (SwarmConfig, error) {
	fileConfig, err := loadConfigFromFile(path)
	if err != nil {
		return SwarmConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return mergeConfigs(GetDefaultConfig(), fileConfig), nil
}

// SaveConfig writes cfg to path, creating parent directories as needed.
func SaveConfig(cfg SwarmConfig, path string) error {
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config to %s: %w", path, err)
	}
	return nil
}

// LoadFile reads a single configuration file without defaults or other
// layers. A missing file yields an empty configuration.
func LoadFile(path string) (SwarmConfig, error) {
	cfg, err := loadConfigFromFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return SwarmConfig{}, nil
	}
	if err != nil {
		return SwarmConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return cfg, nil
}

// UpdateFile applies update to the configuration stored at path, read on its
// own, and writes the result back. Settings merged in from defaults or other
// files never end up in path.
func UpdateFile(path string, update func(*SwarmConfig)) error {
	cfg, err := LoadFile(path)
	if err != nil {
		return err
	}
	update(&cfg)
	return SaveConfig(cfg, path)
}

// SplitSources separates the current source list into the entries a file
// may own and the names of fixed sources it cannot change. fixed are the
// sources of a layer merged over that file; such a layer wins by name, so a
// fixed source that current dropped or edited is reported as overridden.
func SplitSources(current, fixed []string) (own, overridden []string) {
	fixedNames := make(map[string]bool, len(fixed))
	for _, f := range fixed {
		fixedNames[strings.ToLower(SourceName(f))] = true
	}
	present := make(map[string]bool, len(current))
	for _, c := range current {
		present[c] = true
		if !fixedNames[strings.ToLower(SourceName(c))] {
			own = append(own, c)
		}
	}
	for _, f := range fixed {
		if !present[f] {
			overridden = append(overridden, SourceName(f))
		}
	}
	return own, overridden
}

// SplitMonitor separates the current monitor list into entries a file may own
// and fixed entries it cannot remove.
func SplitMonitor(current, fixed []string) (own, overridden []string) {
	isFixed := make(map[string]bool, len(fixed))
	for _, f := range fixed {
		isFixed[f] = true
	}
	present := make(map[string]bool, len(current))
	for _, c := range current {
		present[c] = true
		if !isFixed[c] {
			own = append(own, c)
		}
	}
	for _, f := range fixed {
		if !present[f] {
			overridden = append(overridden, f)
		}
	}
	return own, overridden
}

// ProjectConfigPath returns the path of the project configuration file.
func ProjectConfigPath() (string, error) {
	return getProjectConfigPath()
}

// UserConfigPath returns the path of the per-user configuration file.
func UserConfigPath() (string, error) {
	return getUserConfigPath()
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a SwarmConfig from a YAML file.
func loadConfigFromFile(filePath string) (SwarmConfig, error) {
	var config SwarmConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return SwarmConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return SwarmConfig{}, err
	}
	return config, nil
}

// SourceName returns the name part of a source config string ("AVO;wws:..." -> "AVO").
func SourceName(sourceConfig string) string {
	if i := strings.Index(sourceConfig, ";"); i >= 0 {
		return strings.TrimSpace(sourceConfig[:i])
	}
	return strings.TrimSpace(sourceConfig)
}

// mergeConfigs merges 'overlay' config into 'base' config.
func mergeConfigs(base, overlay SwarmConfig) SwarmConfig {
	merged := base

	if overlay.GlobalSettings.LogLevel != "" {
		merged.GlobalSettings.LogLevel = overlay.GlobalSettings.LogLevel
	}

	if overlay.Chooser.MaxChannelsAtOnce != 0 {
		merged.Chooser.MaxChannelsAtOnce = overlay.Chooser.MaxChannelsAtOnce
	}
	if overlay.Chooser.NearestLimit != 0 {
		merged.Chooser.NearestLimit = overlay.Chooser.NearestLimit
	}

	if len(overlay.Viewers.Helicorder) > 0 {
		merged.Viewers.Helicorder = overlay.Viewers.Helicorder
	}
	if len(overlay.Viewers.RealtimeWave) > 0 {
		merged.Viewers.RealtimeWave = overlay.Viewers.RealtimeWave
	}
	if len(overlay.Viewers.Monitor) > 0 {
		merged.Viewers.Monitor = overlay.Viewers.Monitor
	}

	if overlay.Map.LineColor != "" {
		merged.Map.LineColor = overlay.Map.LineColor
	}
	if overlay.Map.CircleSegments != 0 {
		merged.Map.CircleSegments = overlay.Map.CircleSegments
	}

	// Sources are keyed by name; an overlay source replaces a base source of the same name in place.
	merged.Sources = append([]string(nil), base.Sources...)
	for _, src := range overlay.Sources {
		name := SourceName(src)
		replaced := false
		for i, existing := range merged.Sources {
			if strings.EqualFold(SourceName(existing), name) {
				merged.Sources[i] = src
				replaced = true
				break
			}
		}
		if !replaced {
			merged.Sources = append(merged.Sources, src)
		}
	}

	merged.Metadata = make(map[string]MetadataEntry, len(base.Metadata)+len(overlay.Metadata))
	for ch, md := range base.Metadata {
		merged.Metadata[ch] = md
	}
	for ch, md := range overlay.Metadata {
		merged.Metadata[ch] = md
	}

	merged.Monitor = append([]string(nil), base.Monitor...)
	seen := make(map[string]bool, len(merged.Monitor))
	for _, m := range merged.Monitor {
		seen[m] = true
	}
	for _, m := range overlay.Monitor {
		if !seen[m] {
			merged.Monitor = append(merged.Monitor, m)
			seen[m] = true
		}
	}

	return merged
}
