package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCipher   = errors.New("cipher is empty")
	ErrEmptyDecoded  = errors.New("decoded value is empty")
	ErrNoTarget      = errors.New("no active target")
	ErrNotScriptable = errors.New("target is not scriptable")

	// ErrWrongPassphrase is returned when sealed state cannot be opened.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted state")
)

// Load sources reported by LoadError.
const (
	SourceBase    = "base"
	SourceStorage = "storage"
)

// LoadError reports an unreadable base resource or state store.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s dictionary: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ValidationError rejects an add or edit with an empty cipher or value.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return "invalid entry: " + e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

// ImportError reports an import payload that is not a JSON object.
type ImportError struct {
	Err error
}

func (e *ImportError) Error() string { return "import: " + e.Err.Error() }

func (e *ImportError) Unwrap() error { return e.Err }

// ApplyError reports a failed apply or restore. It is never fatal; callers
// downgrade it to a status message.
type ApplyError struct {
	Op     string // "apply" or "restore"
	Target string
	Err    error
}

func (e *ApplyError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
}

func (e *ApplyError) Unwrap() error { return e.Err }

// IsApplyError reports whether err carries an ApplyError.
func IsApplyError(err error) bool {
	var ae *ApplyError
	return errors.As(err, &ae)
}
