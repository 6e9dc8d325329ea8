package requirements

// =============================================================================
// Pin Types
// =============================================================================

// Constraint is the version requirement of a single dependency.
// A constraint with no extras and no source is a plain version string.
type Constraint struct {
	Extras  []string `toml:"extras,omitempty"`
	Version string   `toml:"version"`
	Source  string   `toml:"source,omitempty"`
}

// IsPlain reports whether the constraint is just a version string.
func (c Constraint) IsPlain() bool {
	return len(c.Extras) == 0 && c.Source == ""
}

// Pin is one parsed requirement line.
type Pin struct {
	Name       string
	Constraint Constraint
}

// =============================================================================
// Ordered Dependency Map
// =============================================================================

// Map is a dependency map that remembers insertion order.
// Setting an existing key replaces its value but keeps its position.
type Map struct {
	keys    []string
	entries map[string]Constraint
}

// NewMap creates an empty Map.
func NewMap() *Map {
	return &Map{entries: make(map[string]Constraint)}
}

// Set stores a constraint under name.
func (m *Map) Set(name string, c Constraint) {
	if _, ok := m.entries[name]; !ok {
		m.keys = append(m.keys, name)
	}
	m.entries[name] = c
}

// Get returns the constraint stored under name.
func (m *Map) Get(name string) (Constraint, bool) {
	c, ok := m.entries[name]
	return c, ok
}

// Has reports whether name is present.
func (m *Map) Has(name string) bool {
	_, ok := m.entries[name]
	return ok
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.keys)
}

// Keys returns the names in insertion order.
func (m *Map) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Pins returns the entries in insertion order.
func (m *Map) Pins() []Pin {
	pins := make([]Pin, 0, len(m.keys))
	for _, k := range m.keys {
		pins = append(pins, Pin{Name: k, Constraint: m.entries[k]})
	}
	return pins
}
