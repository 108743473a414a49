package store_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"decoder/internal/domain"
	"decoder/internal/store"
)

func TestFileState_MissingFileIsEmpty(t *testing.T) {
	s := store.NewFileStateStore(filepath.Join(t.TempDir(), store.StateFilename))

	st, err := s.LoadState(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if st.UserDict == nil || len(st.UserDict) != 0 {
		t.Fatalf("want empty user dict, got %v", st.UserDict)
	}
	if st.DeletedKeys == nil || len(st.DeletedKeys) != 0 {
		t.Fatalf("want empty deleted keys, got %v", st.DeletedKeys)
	}
}

func TestFileState_SaveLoad_OK(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", store.StateFilename)
	var s domain.StateStore = store.NewFileStateStore(path)

	want := domain.State{
		UserDict:    domain.Mapping{"亜": "a", "<": "&"},
		DeletedKeys: []string{"⼈"},
	}
	if err := s.SaveState(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.LoadState(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(raw), `"userDict"`) || !strings.Contains(string(raw), `"deletedKeys"`) {
		t.Fatalf("unexpected record names in %s", raw)
	}
	if strings.Contains(string(raw), `<`) {
		t.Fatalf("html characters should not be escaped: %s", raw)
	}
}

func TestFileState_CorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), store.StateFilename)
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := store.NewFileStateStore(path).LoadState(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestSealedFileState_SaveLoad_OK(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), store.SealedStateFilename)
	s := store.NewSealedFileStateStore(path, "correct horse")

	want := domain.State{UserDict: domain.Mapping{"亜": "A"}, DeletedKeys: []string{}}
	if err := s.SaveState(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.Contains(string(raw), "亜") {
		t.Fatal("sealed file leaks plaintext")
	}

	got, err := s.LoadState(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}
}

func TestSealedFileState_WrongPassphrase_Fails(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), store.SealedStateFilename)

	if err := store.NewSealedFileStateStore(path, "correct").SaveState(ctx, domain.State{}); err != nil {
		t.Fatalf("save: %v", err)
	}
	_, err := store.NewSealedFileStateStore(path, "wrong").LoadState(ctx)
	if !errors.Is(err, domain.ErrWrongPassphrase) {
		t.Fatalf("want ErrWrongPassphrase, got %v", err)
	}
}
