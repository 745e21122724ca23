package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Helper function to create a temporary config file
func createTempConfigFile(t *testing.T, dir string, filename string, content SwarmConfig) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	tempFilePath := filepath.Join(dir, filename)
	data, err := yaml.Marshal(&content)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(tempFilePath, data, 0644))
	return tempFilePath
}

// mockPaths points the user and project lookups at tempDir for the duration of the test.
func mockPaths(t *testing.T, tempDir string) {
	t.Helper()
	originalUser := getUserConfigPath
	originalProject := getProjectConfigPath
	t.Cleanup(func() {
		getUserConfigPath = originalUser
		getProjectConfigPath = originalProject
	})
	getUserConfigPath = func() (string, error) {
		return filepath.Join(tempDir, userConfigDir, configFileName), nil
	}
	getProjectConfigPath = func() (string, error) {
		return filepath.Join(tempDir, projectConfigDir, configFileName), nil
	}
}

func ptr(f float64) *float64 { return &f }

func TestLoadConfig_DefaultOnly(t *testing.T) {
	mockPaths(t, t.TempDir())

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultMaxChannelsAtOnce, loaded.Chooser.MaxChannelsAtOnce)
	assert.Equal(t, "info", loaded.GlobalSettings.LogLevel)
	assert.Empty(t, loaded.Sources)
	assert.Empty(t, loaded.Metadata)
}

func TestLoadConfig_UserOverride(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, userConfigDir), configFileName, SwarmConfig{
		GlobalSettings: GlobalSettings{LogLevel: "debug"},
		Chooser:        ChooserSettings{MaxChannelsAtOnce: 50},
		Sources:        []string{"AVO;wws:pubavo1.wr.usgs.gov:16022"},
		Metadata: map[string]MetadataEntry{
			"AKV BHZ AV --": {Groups: []string{"Akutan"}, Longitude: ptr(-165.99), Latitude: ptr(54.13)},
		},
	})

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", loaded.GlobalSettings.LogLevel)
	assert.Equal(t, 50, loaded.Chooser.MaxChannelsAtOnce)
	assert.Equal(t, []string{"AVO;wws:pubavo1.wr.usgs.gov:16022"}, loaded.Sources)
	require.Contains(t, loaded.Metadata, "AKV BHZ AV --")
	assert.Equal(t, []string{"Akutan"}, loaded.Metadata["AKV BHZ AV --"].Groups)
	assert.InDelta(t, 54.13, *loaded.Metadata["AKV BHZ AV --"].Latitude, 1e-9)
	// untouched defaults survive
	assert.Equal(t, DefaultLineColor, loaded.Map.LineColor)
}

func TestLoadConfig_ProjectOverridesUserSourceByName(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, userConfigDir), configFileName, SwarmConfig{
		Sources: []string{"AVO;wws:old.example.org:16022", "IRIS;fdsnws:https://service.iris.edu|AV|*|*|*"},
		Monitor: []string{"AVO;AKV BHZ AV --"},
	})
	createTempConfigFile(t, filepath.Join(tempDir, projectConfigDir), configFileName, SwarmConfig{
		Sources: []string{"avo;wws:new.example.org:16022", "Local;file:/tmp/channels.txt"},
		Monitor: []string{"AVO;AKV BHZ AV --", "AVO;OKID EHZ AV --"},
	})

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"avo;wws:new.example.org:16022",
		"IRIS;fdsnws:https://service.iris.edu|AV|*|*|*",
		"Local;file:/tmp/channels.txt",
	}, loaded.Sources)
	assert.Equal(t, []string{"AVO;AKV BHZ AV --", "AVO;OKID EHZ AV --"}, loaded.Monitor)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t, tempDir)

	dir := filepath.Join(tempDir, userConfigDir)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("sources: [unclosed"), 0644))

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := GetDefaultConfig()
	cfg.Sources = append(cfg.Sources, "AVO;wws:pubavo1.wr.usgs.gov:16022")
	cfg.Monitor = []string{"AVO;AKV BHZ AV --"}
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfigFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Sources, loaded.Sources)
	assert.Equal(t, cfg.Monitor, loaded.Monitor)
	assert.Equal(t, cfg.Chooser, loaded.Chooser)
}

func TestUpdateFile_KeepsOtherLayersOut(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t, tempDir)

	userPath := createTempConfigFile(t, filepath.Join(tempDir, userConfigDir), configFileName, SwarmConfig{
		Sources: []string{"AVO;wws:pubavo1.wr.usgs.gov:16022"},
	})
	createTempConfigFile(t, filepath.Join(tempDir, projectConfigDir), configFileName, SwarmConfig{
		Sources:  []string{"Lab;file:/data/lab.txt"},
		Metadata: map[string]MetadataEntry{"LAB EHZ XX --": {Groups: []string{"Lab"}}},
		Monitor:  []string{"Lab;LAB EHZ XX --"},
	})

	require.NoError(t, UpdateFile(userPath, func(cfg *SwarmConfig) {
		cfg.Sources = append(cfg.Sources, "HVO;wws:hvo:16022")
	}))

	user, err := LoadFile(userPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"AVO;wws:pubavo1.wr.usgs.gov:16022", "HVO;wws:hvo:16022"}, user.Sources)
	assert.Empty(t, user.Metadata)
	assert.Empty(t, user.Monitor)
	assert.Empty(t, user.Map.LineColor, "defaults are not written")

	merged, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"AVO;wws:pubavo1.wr.usgs.gov:16022", "HVO;wws:hvo:16022", "Lab;file:/data/lab.txt"}, merged.Sources)
}

func TestLoadFile_Missing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, SwarmConfig{}, cfg)
}

func TestSplitSources(t *testing.T) {
	fixed := []string{"Lab;file:/data/lab.txt", "Net;fdsnws:https://service.iris.edu"}

	own, overridden := SplitSources([]string{
		"AVO;wws:avo:16022",
		"Lab;file:/data/lab.txt",
		"Net;fdsnws:https://other.example",
	}, fixed)

	assert.Equal(t, []string{"AVO;wws:avo:16022"}, own)
	assert.Equal(t, []string{"Net"}, overridden)

	own, overridden = SplitSources([]string{"AVO;wws:avo:16022", "Lab;file:/data/lab.txt", "Net;fdsnws:https://service.iris.edu"}, fixed)
	assert.Equal(t, []string{"AVO;wws:avo:16022"}, own)
	assert.Empty(t, overridden)
}

func TestSplitMonitor(t *testing.T) {
	own, overridden := SplitMonitor([]string{"AVO;A", "Lab;L"}, []string{"Lab;L", "Lab;M"})
	assert.Equal(t, []string{"AVO;A"}, own)
	assert.Equal(t, []string{"Lab;M"}, overridden)
}

func TestSourceName(t *testing.T) {
	assert.Equal(t, "AVO", SourceName("AVO;wws:host:16022"))
	assert.Equal(t, "AVO Winston", SourceName(" AVO Winston ;wws:host"))
	assert.Equal(t, "bare", SourceName("bare"))
}
