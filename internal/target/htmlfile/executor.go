// Package htmlfile runs programs against HTML documents on disk.
//
// A target is a file path. The first Execute on a file keeps a pristine copy
// next to it (<path>.orig); Reload puts that copy back, which is the file
// equivalent of reloading a page from its original source.
package htmlfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"decoder/internal/domain"
	"decoder/internal/store"
)

// PristineSuffix is appended to a target path to name its pristine copy.
const PristineSuffix = ".orig"

// Executor implements domain.Executor over local files.
type Executor struct {
	// Default is returned by ActiveTarget.
	Default string
	log     *zap.Logger
}

// New returns an executor whose active target is def.
func New(def string, log *zap.Logger) *Executor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Executor{Default: def, log: log}
}

// ActiveTarget returns the default file.
func (e *Executor) ActiveTarget(ctx context.Context) (string, error) {
	if e.Default == "" {
		return "", domain.ErrNoTarget
	}
	return e.Default, nil
}

// Execute parses target, runs the program's native form against it and
// writes the result back.
func (e *Executor) Execute(ctx context.Context, target string, p domain.Program, args ...any) error {
	if p.Native == nil {
		return fmt.Errorf("%s: %w", p.Name, domain.ErrNotScriptable)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	src, err := os.ReadFile(target)
	if err != nil {
		return err
	}
	info, err := os.Stat(target)
	if err != nil {
		return err
	}
	if err := keepPristine(target, src, info.Mode().Perm()); err != nil {
		return fmt.Errorf("keep pristine copy: %w", err)
	}

	doc, err := html.Parse(bytes.NewReader(src))
	if err != nil {
		return fmt.Errorf("parse %s: %w", target, err)
	}
	if err := p.Native(doc, args); err != nil {
		return err
	}

	var out bytes.Buffer
	if err := html.Render(&out, doc); err != nil {
		return fmt.Errorf("render %s: %w", target, err)
	}
	if bytes.Equal(out.Bytes(), src) {
		return nil
	}
	e.log.Debug("document rewritten", zap.String("target", target), zap.String("program", p.Name))
	return store.WriteFileAtomic(target, out.Bytes(), info.Mode().Perm())
}

// Reload restores target from its pristine copy. A file that was never
// executed against is already in its original state.
func (e *Executor) Reload(ctx context.Context, target string) error {
	pristine := target + PristineSuffix
	src, err := os.ReadFile(pristine)
	if errors.Is(err, os.ErrNotExist) {
		if _, statErr := os.Stat(target); statErr != nil {
			return statErr
		}
		return nil
	}
	if err != nil {
		return err
	}
	info, err := os.Stat(pristine)
	if err != nil {
		return err
	}
	if err := store.WriteFileAtomic(target, src, info.Mode().Perm()); err != nil {
		return err
	}
	return os.Remove(pristine)
}

// keepPristine saves src as the pristine copy unless one already exists.
func keepPristine(target string, src []byte, mode os.FileMode) error {
	pristine := target + PristineSuffix
	if _, err := os.Stat(pristine); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return store.WriteFileAtomic(pristine, src, mode)
}

// Compile-time assertion that Executor implements domain.Executor.
var _ domain.Executor = (*Executor)(nil)
