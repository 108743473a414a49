package store_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"

	"decoder/internal/domain"
	"decoder/internal/store"
)

func newRedisStore(t *testing.T) (*store.RedisStateStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return store.NewRedisStateStore(client, "decoder:"), mr
}

func TestRedisState_AbsentKeysAreEmpty(t *testing.T) {
	s, _ := newRedisStore(t)

	st, err := s.LoadState(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(st.UserDict) != 0 || len(st.DeletedKeys) != 0 {
		t.Fatalf("want empty state, got %+v", st)
	}
}

func TestRedisState_SaveLoad_OK(t *testing.T) {
	ctx := context.Background()
	s, mr := newRedisStore(t)

	want := domain.State{
		UserDict:    domain.Mapping{"亜": "a"},
		DeletedKeys: []string{"⼀", "⼈"},
	}
	if err := s.SaveState(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !mr.Exists("decoder:userDict") || !mr.Exists("decoder:deletedKeys") {
		t.Fatalf("expected both keys, have %v", mr.Keys())
	}

	got, err := s.LoadState(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}
}

func TestRedisState_CorruptValueFails(t *testing.T) {
	s, mr := newRedisStore(t)
	if err := mr.Set("decoder:userDict", "[1,2"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := s.LoadState(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}
