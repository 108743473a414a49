package interfaces

import (
	"context"

	domaintypes "decoder/internal/domain/types"
)

// StateStore persists the user layer and suppressed keys. A store that has
// never been written returns an empty State and no error.
type StateStore interface {
	LoadState(ctx context.Context) (domaintypes.State, error)
	SaveState(ctx context.Context, state domaintypes.State) error
}

// BaseSource yields the read-only base dictionary.
type BaseSource interface {
	LoadBase() (domaintypes.Mapping, error)
}
