package layout

import "fmt"

// registry holds named presets, mirroring the teacher's embedder
// registry (dungo/pkg/embedding/embedder.go's Register/Get/List) but
// keyed to a Config value instead of a factory function, since presets
// here are fixed parameter sets rather than pluggable implementations.
var registry = make(map[string]Config)

// Register adds a named preset. Panics on duplicate registration, same
// as the teacher's embedder registry — a duplicate name is a
// programming error caught at init time, not a runtime condition.
func Register(name string, cfg Config) {
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("layout: Register called twice for %q", name))
	}
	registry[name] = cfg
}

// Get retrieves a named preset.
func Get(name string) (Config, error) {
	cfg, exists := registry[name]
	if !exists {
		return Config{}, fmt.Errorf("layout: preset %q not registered", name)
	}
	return cfg, nil
}

// List returns the names of all registered presets.
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
