package source

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry keeps sources ordered by case-insensitive name. Names are unique
// regardless of case.
type Registry struct {
	mu      sync.RWMutex
	sources []DataSource
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// LoadRegistry builds sources from config strings. Invalid entries are
// skipped and returned as errors alongside the registry.
func LoadRegistry(configs []string) (*Registry, []error) {
	r := NewRegistry()
	var errs []error
	for _, raw := range configs {
		src, err := New(raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		r.Add(src)
	}
	return r, errs
}

func (r *Registry) indexOf(name string) int {
	for i, s := range r.sources {
		if strings.EqualFold(s.Name(), name) {
			return i
		}
	}
	return -1
}

// Add inserts src in name order. A source with the same name is replaced and
// Add reports true.
func (r *Registry) Add(src DataSource) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	replaced := false
	if i := r.indexOf(src.Name()); i >= 0 {
		r.sources = append(r.sources[:i], r.sources[i+1:]...)
		replaced = true
	}
	key := strings.ToLower(src.Name())
	i := sort.Search(len(r.sources), func(i int) bool {
		return strings.ToLower(r.sources[i].Name()) >= key
	})
	r.sources = append(r.sources, nil)
	copy(r.sources[i+1:], r.sources[i:])
	r.sources[i] = src
	return replaced
}

// Remove drops the named source. It reports whether anything was removed.
func (r *Registry) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(name)
	if i < 0 {
		return false
	}
	r.sources = append(r.sources[:i], r.sources[i+1:]...)
	return true
}

// Replace swaps the source called oldName for src.
func (r *Registry) Replace(oldName string, src DataSource) error {
	r.mu.Lock()
	if r.indexOf(oldName) < 0 {
		r.mu.Unlock()
		return fmt.Errorf("source %q not found", oldName)
	}
	if !strings.EqualFold(oldName, src.Name()) && r.indexOf(src.Name()) >= 0 {
		r.mu.Unlock()
		return fmt.Errorf("source %q already exists", src.Name())
	}
	r.sources = append(r.sources[:r.indexOf(oldName)], r.sources[r.indexOf(oldName)+1:]...)
	r.mu.Unlock()

	r.Add(src)
	return nil
}

// Get returns the named source.
func (r *Registry) Get(name string) (DataSource, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(name); i >= 0 {
		return r.sources[i], true
	}
	return nil, false
}

// List returns the sources in order.
func (r *Registry) List() []DataSource {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]DataSource, len(r.sources))
	copy(out, r.sources)
	return out
}

// Names returns the source names in order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.sources))
	for i, s := range r.sources {
		out[i] = s.Name()
	}
	return out
}

// ConfigStrings returns the config strings for persistence.
func (r *Registry) ConfigStrings() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.sources))
	for i, s := range r.sources {
		out[i] = s.ConfigString()
	}
	return out
}

// Len returns the number of sources.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sources)
}
