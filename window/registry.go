package window

import (
	"errors"
	"sort"
	"sync"
)

// Factory creates a new Window with the given options.
type Factory func(opts Options) (Window, error)

// RegistryEntry represents a registered window driver.
type RegistryEntry struct {
	// Name is the unique identifier for this driver.
	Name string

	// Priority determines selection order (higher = preferred).
	// Standard priorities:
	//   - 100: real desktop toolkits (giowin)
	//   - 10: the headless in-memory driver
	Priority int

	// Factory creates window instances.
	Factory Factory

	// Available reports if the driver can open windows on this system.
	Available func() bool
}

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry manages registered window drivers. Toolkit drivers register
// themselves from an init function, so hosts select a toolkit by import
// alone.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry. Most code should use the
// global registry via Register and New.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// Register adds a driver to the global registry.
//
// If available is nil, the driver is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a driver from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered driver names sorted by priority (highest
// first).
func List() []string {
	return globalRegistry.List()
}

// Available returns names of all available drivers sorted by priority.
func Available() []string {
	return globalRegistry.Available()
}

// Get returns information about a specific driver.
func Get(name string) (*RegistryEntry, bool) {
	return globalRegistry.Get(name)
}

// New opens a window using the best available driver.
func New(opts Options) (Window, error) {
	return globalRegistry.New(opts)
}

// NewByName opens a window using a specific named driver.
func NewByName(name string, opts Options) (Window, error) {
	return globalRegistry.NewByName(name, opts)
}

// Register adds a driver to this registry.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}

	if available == nil {
		available = func() bool { return true }
	}

	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a driver from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered driver names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all available drivers sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns information about a specific driver.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}

	// Return a copy to prevent modification
	entryCopy := *entry
	return &entryCopy, true
}

// New opens a window using the best available driver.
func (r *Registry) New(opts Options) (Window, error) {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	if len(available) == 0 {
		return nil, ErrNoDriverAvailable
	}

	// Try each available driver in priority order
	var lastErr error
	for _, name := range available {
		w, err := r.NewByName(name, opts)
		if err == nil {
			return w, nil
		}
		lastErr = err
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrNoDriverAvailable
}

// NewByName opens a window using a specific driver.
func (r *Registry) NewByName(name string, opts Options) (Window, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &DriverNotFoundError{Name: name}
	}

	if !entry.Available() {
		return nil, &DriverUnavailableError{Name: name}
	}

	return entry.Factory(opts)
}

// sortedNames returns driver names sorted by priority (highest first).
// If onlyAvailable is true, filters to available drivers only.
// Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	type entry struct {
		name     string
		priority int
	}

	entries := make([]entry, 0, len(r.entries))
	for name, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, entry{name: name, priority: e.Priority})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].priority > entries[j].priority
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// Errors.
var (
	// ErrNoDriverAvailable is returned when no window drivers are
	// registered or available on the current system.
	ErrNoDriverAvailable = errors.New("window: no driver available")
)

// DriverNotFoundError indicates a named driver is not registered.
type DriverNotFoundError struct {
	Name string
}

func (e *DriverNotFoundError) Error() string {
	return "window: driver not found: " + e.Name
}

// DriverUnavailableError indicates a driver exists but is not available.
type DriverUnavailableError struct {
	Name string
}

func (e *DriverUnavailableError) Error() string {
	return "window: driver unavailable: " + e.Name
}

// init registers the built-in headless driver.
func init() {
	Register("headless", 10, func(opts Options) (Window, error) {
		return NewHeadless(opts), nil
	}, nil)
}
