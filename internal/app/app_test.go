package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"swarm/internal/chooser"
	"swarm/internal/config"
	"swarm/internal/source"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, dir string, cfg config.SwarmConfig) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	data, err := yaml.Marshal(&cfg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func writeList(t *testing.T, dir, name string, channels ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	var buf bytes.Buffer
	buf.WriteString("# channel list\n")
	for _, ch := range channels {
		buf.WriteString(ch + "\n")
	}
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func fp(v float64) *float64 { return &v }

func TestConfig_LogLevelAndSavePath(t *testing.T) {
	cfg := NewConfig(true, false, "/tmp/swarm.yaml")
	path, err := cfg.SavePath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/swarm.yaml", path)

	cfg.SwarmConfig = &config.SwarmConfig{GlobalSettings: config.GlobalSettings{LogLevel: "warn"}}
	assert.Equal(t, "WARN", cfg.LogLevel().String())

	cfg.Debug = true
	assert.Equal(t, "DEBUG", cfg.LogLevel().String())
}

func TestNewApplication_WiresChooser(t *testing.T) {
	dir := t.TempDir()
	list := writeList(t, dir, "avo.txt", "SSLN BHZ AV --", "SPCP BHZ AV --")
	path := writeConfig(t, dir, config.SwarmConfig{
		Chooser: config.ChooserSettings{MaxChannelsAtOnce: 7},
		Sources: []string{
			source.FileConfigString("AVO", list),
			"broken config string",
		},
		Metadata: map[string]config.MetadataEntry{
			"SSLN BHZ AV --": {Groups: []string{"Spurr"}, Longitude: fp(-152.2), Latitude: fp(61.3)},
		},
	})

	a, err := NewApplication(NewConfig(true, false, path))
	require.NoError(t, err)

	s := a.Services()
	assert.Equal(t, []string{"AVO"}, s.Registry.Names())
	assert.Equal(t, 1, s.Metadata.Len())
	assert.Equal(t, 7, s.Chooser.MaxChannels())
	require.Len(t, s.Chooser.Tree().Sources(), 1)
}

func TestRunCLIMode_PrintsTree(t *testing.T) {
	dir := t.TempDir()
	list := writeList(t, dir, "avo.txt", "SSLN BHZ AV --", "SPCP BHZ AV --")
	path := writeConfig(t, dir, config.SwarmConfig{
		Sources: []string{
			source.FileConfigString("AVO", list),
			source.FileConfigString("Gone", filepath.Join(dir, "missing.txt")),
		},
		Metadata: map[string]config.MetadataEntry{
			"SSLN BHZ AV --": {Groups: []string{"Spurr"}},
		},
	})
	a, err := NewApplication(NewConfig(true, false, path))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, runCLIMode(context.Background(), &out, a.Services()))

	text := out.String()
	assert.Contains(t, text, "Data Sources")
	assert.Contains(t, text, "AVO")
	assert.Contains(t, text, "All (2)")
	assert.Contains(t, text, "Spurr (1)")
	assert.Contains(t, text, "SPCP BHZ AV --")
	assert.Contains(t, text, "Gone (unreachable)")

	assert.Equal(t, chooser.Opened, a.Services().Chooser.Tree().SourceNode("AVO").State)
}

func TestServices_SaveSourcesAndMonitor(t *testing.T) {
	dir := t.TempDir()
	list := writeList(t, dir, "avo.txt", "A")
	path := writeConfig(t, dir, config.SwarmConfig{
		Sources: []string{source.FileConfigString("AVO", list)},
	})
	a, err := NewApplication(NewConfig(true, false, path))
	require.NoError(t, err)
	s := a.Services()

	src, err := source.New(source.FileConfigString("HVO", list))
	require.NoError(t, err)
	s.Chooser.AddSource(src)
	require.NoError(t, s.SaveSources())

	sel := []chooser.Selection{{Source: "AVO", Channel: "A"}}
	require.NoError(t, s.Sinks.Commit(context.Background(), chooser.ActionMonitor, sel))

	saved, err := config.LoadConfigFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, []string{source.FileConfigString("AVO", list), source.FileConfigString("HVO", list)}, saved.Sources)
	assert.Equal(t, []string{"AVO;A"}, saved.Monitor)
}

func TestServices_SaveKeepsProjectLayerOut(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(project)

	list := writeList(t, project, "lab.txt", "LAB EHZ XX --")
	userDir := filepath.Join(home, ".config", "swarm")
	require.NoError(t, os.MkdirAll(userDir, 0755))
	userPath := writeConfig(t, userDir, config.SwarmConfig{
		Sources: []string{source.FileConfigString("AVO", list), "not a source"},
	})
	projectDir := filepath.Join(project, ".swarm")
	require.NoError(t, os.MkdirAll(projectDir, 0755))
	writeConfig(t, projectDir, config.SwarmConfig{
		Sources:  []string{source.FileConfigString("Lab", list)},
		Metadata: map[string]config.MetadataEntry{"LAB EHZ XX --": {Groups: []string{"Lab"}}},
		Monitor:  []string{"Lab;LAB EHZ XX --"},
	})

	a, err := NewApplication(NewConfig(true, false, ""))
	require.NoError(t, err)
	s := a.Services()
	require.Equal(t, []string{"AVO", "Lab"}, s.Registry.Names())

	src, err := source.New(source.FileConfigString("HVO", list))
	require.NoError(t, err)
	s.Chooser.AddSource(src)
	require.NoError(t, s.SaveSources())

	sel := []chooser.Selection{{Source: "AVO", Channel: "LAB EHZ XX --"}}
	require.NoError(t, s.Sinks.Commit(context.Background(), chooser.ActionMonitor, sel))

	user, err := config.LoadFile(userPath)
	require.NoError(t, err)
	assert.Equal(t, []string{
		source.FileConfigString("AVO", list),
		source.FileConfigString("HVO", list),
		"not a source",
	}, user.Sources)
	assert.Empty(t, user.Metadata)
	assert.Equal(t, []string{"AVO;LAB EHZ XX --"}, user.Monitor)

	require.True(t, s.Chooser.RemoveSource("Lab"))
	err = s.SaveSources()
	assert.ErrorContains(t, err, "Lab")
	assert.ErrorContains(t, err, ".swarm")

	user, err = config.LoadFile(userPath)
	require.NoError(t, err)
	assert.NotContains(t, user.Sources, source.FileConfigString("Lab", list))
}

func TestInitializeServices_RequiresConfig(t *testing.T) {
	_, err := InitializeServices(NewConfig(true, false, ""))
	assert.Error(t, err)
}

func TestRenderTree_UnopenedSource(t *testing.T) {
	tree := chooser.NewTree()
	tree.InsertSource("AVO")

	out := RenderTree(tree)

	assert.Contains(t, out, "AVO (unopened)")
}
