package widget

import "sync"

// Registration is the stylesheet and script bundled with a widget.
type Registration struct {
	// Name is the widget name, unique per registry.
	Name string

	// Style is SCSS source. It may use the variables and functions
	// declared by the asset compiler header.
	Style string

	// Script is plain JavaScript appended to app.js.
	Script string
}

// Registry collects widget registrations. It is populated during package
// initialization and sealed by the first read.
type Registry struct {
	mu      sync.Mutex
	entries []Registration
	index   map[string]int
	sealed  bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register adds r unless an entry with the same name exists or the
// registry is sealed. It reports whether r was added.
func (r *Registry) Register(reg Registration) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return false
	}
	if _, ok := r.index[reg.Name]; ok {
		return false
	}
	r.index[reg.Name] = len(r.entries)
	r.entries = append(r.entries, reg)
	return true
}

// Registrations seals the registry and returns its entries in
// registration order.
func (r *Registry) Registrations() []Registration {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sealed = true
	out := make([]Registration, len(r.entries))
	copy(out, r.entries)
	return out
}

// Lookup returns the registration for name.
func (r *Registry) Lookup(name string) (Registration, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[name]
	if !ok {
		return Registration{}, false
	}
	return r.entries[i], true
}

// Sealed reports whether the registry has been read.
func (r *Registry) Sealed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sealed
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry read by the asset
// compiler.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds a registration to the process-wide registry.
func Register(reg Registration) bool {
	return defaultRegistry.Register(reg)
}

// Registrations returns the process-wide registrations and seals the
// registry.
func Registrations() []Registration {
	return defaultRegistry.Registrations()
}
