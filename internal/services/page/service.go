package page

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"decoder/internal/domain"
	"decoder/internal/substitute"
)

// Status lines reported to the user.
const (
	StatusApplied       = "applied"
	StatusRestored      = "restored"
	StatusNotScriptable = "not a scriptable page"
)

const (
	opApply   = "apply"
	opRestore = "restore"
)

// Service runs substitutions through an Executor.
type Service struct {
	exec  domain.Executor
	dicts domain.MergedView
	log   *zap.Logger

	mu     sync.Mutex
	states map[string]domain.PageState
}

// New returns a page service. dicts is read on every Apply.
func New(exec domain.Executor, dicts domain.MergedView, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		exec:   exec,
		dicts:  dicts,
		log:    log,
		states: make(map[string]domain.PageState),
	}
}

// Apply substitutes the current merged dictionary into target. An empty
// target means the executor's active target.
func (s *Service) Apply(ctx context.Context, target string) error {
	return s.ApplyDict(ctx, target, s.dicts.Merged())
}

// ApplyDict substitutes dict into target. Re-applying overwrites the previous
// run; already-decoded text is left alone unless a value is itself a key.
func (s *Service) ApplyDict(ctx context.Context, target string, dict domain.Mapping) error {
	target, err := s.resolve(ctx, opApply, target)
	if err != nil {
		return err
	}
	if err := s.exec.Execute(ctx, target, substitute.Program(), dict); err != nil {
		s.log.Warn("apply failed", zap.String("target", target), zap.Error(err))
		return &domain.ApplyError{Op: opApply, Target: target, Err: err}
	}
	s.setState(target, domain.PageSubstituted)
	s.log.Info("dictionary applied", zap.String("target", target), zap.Int("entries", len(dict)))
	return nil
}

// Restore reloads target, discarding every substitution and any other
// in-page state.
func (s *Service) Restore(ctx context.Context, target string) error {
	target, err := s.resolve(ctx, opRestore, target)
	if err != nil {
		return err
	}
	if err := s.exec.Reload(ctx, target); err != nil {
		s.log.Warn("restore failed", zap.String("target", target), zap.Error(err))
		return &domain.ApplyError{Op: opRestore, Target: target, Err: err}
	}
	s.setState(target, domain.PageUnmodified)
	s.log.Info("page restored", zap.String("target", target))
	return nil
}

// State returns the last known state of target.
func (s *Service) State(target string) domain.PageState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[target]
}

// StatusFor turns the outcome of an apply or restore into a status line.
func StatusFor(restore bool, err error) string {
	switch {
	case err != nil:
		return StatusNotScriptable
	case restore:
		return StatusRestored
	default:
		return StatusApplied
	}
}

func (s *Service) resolve(ctx context.Context, op, target string) (string, error) {
	if target != "" {
		return target, nil
	}
	t, err := s.exec.ActiveTarget(ctx)
	if err != nil {
		s.log.Warn("no active target", zap.String("op", op), zap.Error(err))
		return "", &domain.ApplyError{Op: op, Err: err}
	}
	return t, nil
}

func (s *Service) setState(target string, st domain.PageState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[target] = st
}

// Compile-time assertion that Service implements domain.PageService.
var _ domain.PageService = (*Service)(nil)
