package dictionary

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"decoder/internal/domain"
)

// Service holds the base, user and suppressed layers.
//
// Mutations are copy-on-write: the next layers are persisted first and only
// then swapped in, so a failed write leaves the previous layers untouched.
type Service struct {
	state domain.StateStore
	log   *zap.Logger

	mu         sync.RWMutex
	base       domain.Mapping
	user       domain.Mapping
	suppressed map[string]struct{}
	degraded   error
}

// Load builds the service. A missing or malformed base dictionary is fatal.
// Unreadable storage degrades to empty user and suppressed layers; the cause
// is logged and kept in Degraded. Sealed storage opened with the wrong
// passphrase is fatal so the sealed record is never overwritten.
func Load(ctx context.Context, base domain.BaseSource, state domain.StateStore, log *zap.Logger) (*Service, error) {
	if log == nil {
		log = zap.NewNop()
	}

	b, err := base.LoadBase()
	if err != nil {
		return nil, &domain.LoadError{Source: domain.SourceBase, Err: err}
	}

	s := &Service{
		state:      state,
		log:        log,
		base:       b,
		user:       domain.Mapping{},
		suppressed: map[string]struct{}{},
	}

	st, err := state.LoadState(ctx)
	switch {
	case errors.Is(err, domain.ErrWrongPassphrase):
		return nil, &domain.LoadError{Source: domain.SourceStorage, Err: err}
	case err != nil:
		s.degraded = &domain.LoadError{Source: domain.SourceStorage, Err: err}
		log.Warn("state unreadable, starting with an empty user dictionary", zap.Error(err))
	default:
		s.user = st.UserDict.Clone()
		for _, k := range st.DeletedKeys {
			s.suppressed[k] = struct{}{}
		}
	}

	log.Debug("dictionary loaded",
		zap.Int("base", len(s.base)),
		zap.Int("user", len(s.user)),
		zap.Int("suppressed", len(s.suppressed)))
	return s, nil
}

// Degraded returns the storage LoadError recorded by Load, if any.
func (s *Service) Degraded() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.degraded
}

// Layers returns a copy of the current layers.
func (s *Service) Layers() domain.Layers {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Layers{
		Base:       s.base.Clone(),
		User:       s.user.Clone(),
		Suppressed: cloneSet(s.suppressed),
	}
}

// Merged returns the effective dictionary, computed at call time.
func (s *Service) Merged() domain.Mapping {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Merge(s.base, s.user, s.suppressed)
}

// Count returns the number of effective entries.
func (s *Service) Count() int {
	return len(s.Merged())
}

// Search returns effective entries whose cipher or decoded value contains
// query, sorted by cipher. An empty query matches everything.
func (s *Service) Search(query string) []domain.Entry {
	entries := s.Merged().Entries()
	if query == "" {
		return entries
	}
	out := entries[:0]
	for _, e := range entries {
		if strings.Contains(e.Cipher, query) || strings.Contains(e.Decoded, query) {
			out = append(out, e)
		}
	}
	return out
}

// SetEntry adds or edits a user entry. Both sides are trimmed and must be
// non-empty. Setting a suppressed base key lifts the suppression.
func (s *Service) SetEntry(ctx context.Context, cipher, decoded string) error {
	cipher = strings.TrimSpace(cipher)
	decoded = strings.TrimSpace(decoded)
	if cipher == "" {
		return &domain.ValidationError{Err: domain.ErrEmptyCipher}
	}
	if decoded == "" {
		return &domain.ValidationError{Err: domain.ErrEmptyDecoded}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.user.Clone()
	user[cipher] = decoded
	suppressed := cloneSet(s.suppressed)
	delete(suppressed, cipher)

	if err := s.commit(ctx, user, suppressed); err != nil {
		return err
	}
	s.log.Debug("entry set", zap.String("cipher", cipher), zap.String("decoded", decoded))
	return nil
}

// RemoveEntry drops cipher from the user layer and suppresses it in the base
// layer when present there. A key present in neither layer is a no-op.
func (s *Service) RemoveEntry(ctx context.Context, cipher string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, inUser := s.user[cipher]
	_, inBase := s.base[cipher]
	_, already := s.suppressed[cipher]
	if !inUser && (!inBase || already) {
		return nil
	}

	user := s.user.Clone()
	delete(user, cipher)
	suppressed := cloneSet(s.suppressed)
	if inBase {
		suppressed[cipher] = struct{}{}
	}

	if err := s.commit(ctx, user, suppressed); err != nil {
		return err
	}
	s.log.Debug("entry removed",
		zap.String("cipher", cipher),
		zap.Bool("user", inUser),
		zap.Bool("suppressed", inBase))
	return nil
}

// ImportEntries upserts every pair whose key and value are non-empty strings
// into the user layer and returns how many were accepted. Other pairs are
// skipped. Suppressed keys are left as they are.
func (s *Service) ImportEntries(ctx context.Context, raw map[any]any) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.user.Clone()
	count := 0
	for k, v := range raw {
		ks, ok := k.(string)
		if !ok || ks == "" {
			continue
		}
		vs, ok := v.(string)
		if !ok || vs == "" {
			continue
		}
		user[ks] = vs
		count++
	}

	if err := s.commit(ctx, user, s.suppressed); err != nil {
		return 0, err
	}
	s.log.Info("entries imported", zap.Int("accepted", count), zap.Int("offered", len(raw)))
	return count, nil
}

// commit persists the next layers and swaps them in. Caller must hold mu.
func (s *Service) commit(ctx context.Context, user domain.Mapping, suppressed map[string]struct{}) error {
	keys := make([]string, 0, len(suppressed))
	for k := range suppressed {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if err := s.state.SaveState(ctx, domain.State{UserDict: user, DeletedKeys: keys}); err != nil {
		return fmt.Errorf("persist dictionary: %w", err)
	}
	s.user = user
	s.suppressed = suppressed
	return nil
}

func cloneSet(in map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(in))
	for k := range in {
		out[k] = struct{}{}
	}
	return out
}

// Compile-time assertion that Service implements domain.DictionaryService.
var _ domain.DictionaryService = (*Service)(nil)
