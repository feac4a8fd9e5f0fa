package device

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"
)

// Logger defines the logging interface used by the Registry.
// This allows different logging implementations to be used.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// SortKey selects the ordering of List results.
type SortKey string

// SortKey constants. Sorting is stable, so devices that compare equal keep
// their insertion order.
const (
	SortNone     SortKey = "none"
	SortByKind   SortKey = "kind"
	SortByStatus SortKey = "status"
)

// Query selects a subset of devices in Filter. Zero-value fields match
// everything; Name matches as a case-insensitive substring.
type Query struct {
	Name   string
	Kind   Kind
	Brand  string
	Status Status
}

// matches reports whether the device satisfies every set field of the query.
func (q Query) matches(d *Device) bool {
	if q.Name != "" && !strings.Contains(strings.ToLower(d.Name), strings.ToLower(q.Name)) {
		return false
	}
	if q.Kind != "" && d.Kind != q.Kind {
		return false
	}
	if q.Brand != "" && d.Brand != q.Brand {
		return false
	}
	if q.Status != "" && d.Status != q.Status {
		return false
	}
	return true
}

// Registry holds the ordered in-memory device inventory and its persistence
// operations. Insertion order is preserved and meaningful: List without a
// sort key and Find both honour it, and duplicates are permitted (Find and
// the name-addressed operations act on the first match).
//
// All public methods are thread-safe.
type Registry struct {
	mu      sync.RWMutex
	devices []Device
	logger  Logger
}

// NewRegistry creates an empty device registry.
func NewRegistry() *Registry {
	return &Registry{logger: noopLogger{}}
}

// SetLogger sets the logger for the registry.
func (r *Registry) SetLogger(logger Logger) {
	r.logger = logger
}

// Add validates the device and appends it to the inventory.
// Duplicate names are allowed; no uniqueness constraint is enforced.
func (r *Registry) Add(d *Device) error {
	if err := Validate(d); err != nil {
		return err
	}

	r.mu.Lock()
	r.devices = append(r.devices, *d.DeepCopy())
	r.mu.Unlock()

	r.logger.Info("device added", "name", d.Name, "kind", d.Kind)
	return nil
}

// List returns a copy of the inventory ordered by the given key.
// SortNone returns insertion order; SortByKind and SortByStatus sort stably,
// so insertion order remains the tie-break.
func (r *Registry) List(key SortKey) []Device {
	r.mu.RLock()
	out := make([]Device, len(r.devices))
	copy(out, r.devices)
	r.mu.RUnlock()

	switch key {
	case SortByKind:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	case SortByStatus:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Status < out[j].Status })
	}

	return out
}

// Filter returns a copy of every device matching the query, in insertion
// order.
func (r *Registry) Filter(q Query) []Device {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Device
	for i := range r.devices {
		if q.matches(&r.devices[i]) {
			out = append(out, r.devices[i])
		}
	}
	return out
}

// Find returns a copy of the first device with the given name, by insertion
// order. Returns ErrNotFound if no device matches.
func (r *Registry) Find(name string) (*Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(name); i >= 0 {
		return r.devices[i].DeepCopy(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Connect sets the named device's status to connected.
// Returns ErrNotFound if no device matches.
func (r *Registry) Connect(name string) error {
	return r.setStatus(name, StatusConnected)
}

// Disconnect sets the named device's status to disconnected.
// Returns ErrNotFound if no device matches.
func (r *Registry) Disconnect(name string) error {
	return r.setStatus(name, StatusDisconnected)
}

func (r *Registry) setStatus(name string, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(name)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	r.devices[i].Status = status
	r.logger.Info("device status changed", "name", name, "status", status)
	return nil
}

// Update replaces the first device with the given name, preserving its
// position in the inventory and its current status. Returns ErrNotFound if
// no device matches, or a validation error if the replacement is invalid.
func (r *Registry) Update(name string, d *Device) error {
	if err := Validate(d); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(name)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	updated := *d.DeepCopy()
	updated.Status = r.devices[i].Status
	r.devices[i] = updated

	r.logger.Info("device updated", "name", name, "new_name", d.Name)
	return nil
}

// Remove deletes the first device with the given name.
// Returns ErrNotFound if no device matches.
func (r *Registry) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(name)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	r.devices = append(r.devices[:i], r.devices[i+1:]...)
	r.logger.Info("device removed", "name", name)
	return nil
}

// Count returns the number of devices in the inventory.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.devices)
}

// indexOf returns the index of the first device with the given name, or -1.
// Callers must hold at least a read lock.
func (r *Registry) indexOf(name string) int {
	for i := range r.devices {
		if r.devices[i].Name == name {
			return i
		}
	}
	return -1
}

// Save writes the full inventory to path, one line per device, overwriting
// the file. The file is only replaced once the new contents are fully
// written.
func (r *Registry) Save(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	devices := r.List(SortNone)
	if err := SaveFile(path, devices); err != nil {
		return err
	}

	r.logger.Info("inventory saved", "path", path, "count", len(devices))
	return nil
}

// Load replaces the inventory with the contents of the file at path.
//
// A missing file is not an error: the inventory becomes empty, matching the
// first-run case where nothing has been saved yet. Malformed lines are
// skipped and logged; the returned count says how many were skipped.
func (r *Registry) Load(ctx context.Context, path string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	devices, issues, err := LoadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.mu.Lock()
			r.devices = nil
			r.mu.Unlock()
			r.logger.Info("no inventory file, starting empty", "path", path)
			return 0, nil
		}
		return 0, err
	}

	for _, issue := range issues {
		r.logger.Warn("skipping malformed inventory line", "path", path, "line", issue.Line, "error", issue.Err)
	}

	r.mu.Lock()
	r.devices = devices
	r.mu.Unlock()

	r.logger.Info("inventory loaded", "path", path, "count", len(devices), "skipped", len(issues))
	return len(issues), nil
}

// Stats holds inventory totals for display and monitoring.
type Stats struct {
	Total     int
	Connected int
	ByKind    map[Kind]int
}

// GetStats returns current inventory statistics.
func (r *Registry) GetStats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := Stats{
		Total:  len(r.devices),
		ByKind: make(map[Kind]int),
	}
	for i := range r.devices {
		stats.ByKind[r.devices[i].Kind]++
		if r.devices[i].Status == StatusConnected {
			stats.Connected++
		}
	}
	return stats
}
