package defaultmap

// Map wraps a regular Go map with a fixed fallback value for absent
// keys: a lookup on a missing key returns the fallback and leaves the
// map untouched.
type Map[K comparable, V any] struct {
	entries      map[K]V
	defaultValue V
}

// New returns an empty Map falling back to defaultValue on misses.
func New[K comparable, V any](defaultValue V) *Map[K, V] {
	return &Map[K, V]{
		entries:      make(map[K]V),
		defaultValue: defaultValue,
	}
}

// Get returns the value stored under key, or the configured default if
// key is absent. A miss does not insert the key.
func (m *Map[K, V]) Get(key K) V {
	if value, exists := m.entries[key]; exists {
		return value
	}
	return m.defaultValue
}

// Set stores value under key, inserting or overwriting.
func (m *Map[K, V]) Set(key K, value V) {
	m.entries[key] = value
}

// Has reports whether key is stored, without inserting it.
func (m *Map[K, V]) Has(key K) bool {
	_, exists := m.entries[key]
	return exists
}

// Len returns the number of stored keys.
func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

// Keys returns the stored keys, in unspecified order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.entries))
	for key := range m.entries {
		keys = append(keys, key)
	}
	return keys
}

// DefaultValue returns the fallback configured at creation.
func (m *Map[K, V]) DefaultValue() V {
	return m.defaultValue
}
