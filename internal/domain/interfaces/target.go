package interfaces

import (
	"context"

	domaintypes "decoder/internal/domain/types"
)

// Executor runs programs against an external document and can reload it.
type Executor interface {
	// ActiveTarget resolves the target to use when the caller names none.
	ActiveTarget(ctx context.Context) (string, error)
	Execute(ctx context.Context, target string, program domaintypes.Program, args ...any) error
	Reload(ctx context.Context, target string) error
}
