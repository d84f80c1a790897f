package script

import "iter"

// Mapping is an insertion-ordered set of script bodies keyed by Key.
// Setting an existing key replaces its body in place; the key keeps the
// position of its first insertion.
type Mapping struct {
	keys   []Key
	values map[Key]string
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{values: make(map[Key]string)}
}

// Set stores content under key and reports whether an earlier body was
// replaced.
func (m *Mapping) Set(key Key, content string) bool {
	if m.values == nil {
		m.values = make(map[Key]string)
	}
	_, replaced := m.values[key]
	if !replaced {
		m.keys = append(m.keys, key)
	}
	m.values[key] = content
	return replaced
}

// Get returns the body stored under key.
func (m *Mapping) Get(key Key) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Mapping) Has(key Key) bool {
	_, ok := m.Get(key)
	return ok
}

// Len returns the number of distinct keys.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []Key {
	if m == nil {
		return nil
	}
	out := make([]Key, len(m.keys))
	copy(out, m.keys)
	return out
}

// All yields key/body pairs in insertion order.
func (m *Mapping) All() iter.Seq2[Key, string] {
	return func(yield func(Key, string) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Equal reports whether both mappings hold the same keys, in the same order,
// with the same bodies.
func (m *Mapping) Equal(other *Mapping) bool {
	if m.Len() != other.Len() {
		return false
	}
	for i, k := range m.Keys() {
		if other.keys[i] != k {
			return false
		}
		if m.values[k] != other.values[k] {
			return false
		}
	}
	return true
}
