package store

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rivo/uniseg"

	"decoder/internal/domain"
)

//go:embed dict.json
var bundledDict []byte

var errNotObject = errors.New("base dictionary is not a JSON object")

// EmbeddedBase serves the dictionary bundled with the binary.
type EmbeddedBase struct{}

// LoadBase parses the bundled dictionary.
func (EmbeddedBase) LoadBase() (domain.Mapping, error) {
	return ParseBase(bundledDict)
}

// FileBase serves a base dictionary from a file on disk.
type FileBase struct {
	Path string
}

// LoadBase reads and parses the file. A missing file is an error.
func (b FileBase) LoadBase() (domain.Mapping, error) {
	raw, err := os.ReadFile(b.Path)
	if err != nil {
		return nil, err
	}
	return ParseBase(raw)
}

// ParseBase decodes a base dictionary. Every key must be a single grapheme
// and every value a non-empty string.
func ParseBase(raw []byte) (domain.Mapping, error) {
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("parse base dictionary: %w", err)
	}
	if obj == nil {
		return nil, errNotObject
	}
	out := make(domain.Mapping, len(obj))
	for k, v := range obj {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("base entry %q: value is %T, want string", k, v)
		}
		if s == "" {
			return nil, fmt.Errorf("base entry %q: empty value", k)
		}
		if uniseg.GraphemeClusterCount(k) != 1 {
			return nil, fmt.Errorf("base entry %q: cipher must be a single character", k)
		}
		out[k] = s
	}
	return out, nil
}

var (
	_ domain.BaseSource = EmbeddedBase{}
	_ domain.BaseSource = FileBase{}
)
