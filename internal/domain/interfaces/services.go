package interfaces

import (
	"context"
	"io"

	domaintypes "decoder/internal/domain/types"
)

// MergedView exposes the effective dictionary.
type MergedView interface {
	Merged() domaintypes.Mapping
}

// DictionaryService owns the three dictionary layers.
type DictionaryService interface {
	MergedView
	Layers() domaintypes.Layers
	SetEntry(ctx context.Context, cipher, decoded string) error
	RemoveEntry(ctx context.Context, cipher string) error
	ImportEntries(ctx context.Context, raw map[any]any) (int, error)
	Search(query string) []domaintypes.Entry
	Count() int
	Export(w io.Writer) error
}

// PageService applies the merged dictionary to a target and restores it.
type PageService interface {
	Apply(ctx context.Context, target string) error
	Restore(ctx context.Context, target string) error
}
