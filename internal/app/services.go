package app

import (
	"fmt"
	"strings"
	"swarm/internal/chooser"
	"swarm/internal/config"
	"swarm/internal/metadata"
	"swarm/internal/sinks"
	"swarm/internal/source"
	"swarm/pkg/logging"
	"sync"
)

// Services holds the chooser and everything it is wired to.
type Services struct {
	Registry *source.Registry
	Metadata *metadata.Store
	Monitor  *sinks.MonitorSink
	Sinks    *sinks.Dispatcher
	Chooser  *chooser.Chooser

	cfg    *Config
	saveMu sync.Mutex
}

// InitializeServices builds the source registry, metadata store, sinks and
// chooser from cfg.SwarmConfig. Sources whose config string does not parse
// are skipped with a warning.
func InitializeServices(cfg *Config) (*Services, error) {
	if cfg.SwarmConfig == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	sc := cfg.SwarmConfig

	registry, errs := source.LoadRegistry(sc.Sources)
	for _, err := range errs {
		logging.Warn("Bootstrap", "Skipping source: %v", err)
	}

	store := metadata.NewStore(sc.Metadata)
	s := &Services{
		Registry: registry,
		Metadata: store,
		cfg:      cfg,
	}
	s.Monitor = sinks.NewMonitorSink(sc.Monitor, s.saveMonitor)
	s.Sinks = sinks.NewDefault(sc.Viewers, s.Monitor)
	s.Chooser = chooser.New(chooser.Options{
		Registry:    registry,
		Lookup:      store,
		Candidates:  store.Channels(),
		Committer:   s.Sinks,
		MaxChannels: sc.Chooser.MaxChannelsAtOnce,
	})

	logging.Info("Bootstrap", "Loaded %d source(s) and metadata for %d channel(s)", registry.Len(), store.Len())
	return s, nil
}

// SaveSources writes the current source list to the configuration file.
// Sources defined by the project layer stay there; changing or removing one
// is reported as an error once the rest is saved.
func (s *Services) SaveSources() error {
	current := s.Registry.ConfigStrings()
	own, overridden := config.SplitSources(current, s.cfg.overlay.Sources)
	if err := s.save(func(sc *config.SwarmConfig) {
		sc.Sources = append(own, unparsable(sc.Sources)...)
		s.cfg.SwarmConfig.Sources = current
	}); err != nil {
		return err
	}
	if len(overridden) > 0 {
		return fmt.Errorf("source(s) %s are defined in %s; edit that file to change them", strings.Join(overridden, ", "), s.cfg.overlayPath)
	}
	return nil
}

// unparsable returns the entries that were skipped at start-up so a save
// does not drop them from the file.
func unparsable(sources []string) []string {
	var out []string
	for _, raw := range sources {
		if _, err := source.New(raw); err != nil {
			out = append(out, raw)
		}
	}
	return out
}

func (s *Services) saveMonitor(entries []string) error {
	own, overridden := config.SplitMonitor(entries, s.cfg.overlay.Monitor)
	if err := s.save(func(sc *config.SwarmConfig) {
		sc.Monitor = own
		s.cfg.SwarmConfig.Monitor = append([]string(nil), entries...)
	}); err != nil {
		return err
	}
	if len(overridden) > 0 {
		return fmt.Errorf("monitored channel(s) %s are listed in %s; edit that file to remove them", strings.Join(overridden, ", "), s.cfg.overlayPath)
	}
	return nil
}

// save applies update to the save target alone, so defaults and the project
// layer are never copied into it.
func (s *Services) save(update func(*config.SwarmConfig)) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	path, err := s.cfg.SavePath()
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	if err := config.UpdateFile(path, update); err != nil {
		return err
	}
	logging.Debug("Bootstrap", "Saved configuration to %s", path)
	return nil
}
