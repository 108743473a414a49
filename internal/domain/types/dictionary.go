package types

import "sort"

// Mapping maps a cipher glyph to its decoded replacement.
type Mapping map[string]string

// Clone returns an independent copy of m. A nil mapping clones to an empty one.
func (m Mapping) Clone() Mapping {
	out := make(Mapping, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Entries returns the mapping as entries sorted by cipher.
func (m Mapping) Entries() []Entry {
	out := make([]Entry, 0, len(m))
	for k, v := range m {
		out = append(out, Entry{Cipher: k, Decoded: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Cipher < out[j].Cipher })
	return out
}

// Entry is a single cipher -> decoded pair.
type Entry struct {
	Cipher  string `json:"cipher"`
	Decoded string `json:"decoded"`
}

// State is the persisted part of the dictionary: the user layer and the
// suppressed base keys. It is always written as a whole.
type State struct {
	UserDict    Mapping  `json:"userDict"`
	DeletedKeys []string `json:"deletedKeys"`
}

// Layers is a snapshot of the three dictionary layers.
type Layers struct {
	Base       Mapping
	User       Mapping
	Suppressed map[string]struct{}
}

// SuppressedKeys returns the suppressed keys sorted.
func (l Layers) SuppressedKeys() []string {
	out := make([]string, 0, len(l.Suppressed))
	for k := range l.Suppressed {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
