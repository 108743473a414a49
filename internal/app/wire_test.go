package app_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"decoder/internal/app"
	"decoder/internal/target/htmlfile"
)

func TestNewWire_FileBackendWithPageFile(t *testing.T) {
	home := t.TempDir()
	pagePath := filepath.Join(home, "page.html")
	if err := os.WriteFile(pagePath, []byte("<html><body><p>⼈</p></body></html>"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := app.DefaultConfig(home)
	cfg.PageFile = pagePath

	ctx := context.Background()
	w, err := app.NewWire(ctx, cfg, nil)
	if err != nil {
		t.Fatalf("wire: %v", err)
	}
	defer w.Close()

	if _, ok := w.Exec.(*htmlfile.Executor); !ok {
		t.Fatalf("expected html file executor, got %T", w.Exec)
	}
	if w.Dict.Count() == 0 {
		t.Fatal("expected embedded base entries")
	}
	if err := w.Dict.SetEntry(ctx, "⽊", "wood"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := os.Stat(cfg.StatePath()); err != nil {
		t.Fatalf("state not persisted: %v", err)
	}
	if err := w.Page.Apply(ctx, ""); err != nil {
		t.Fatalf("apply: %v", err)
	}
	b, _ := os.ReadFile(pagePath)
	if !strings.Contains(string(b), "<p>人</p>") {
		t.Fatalf("page not substituted: %s", b)
	}
}

func TestNewWire_RedisBackend(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := app.DefaultConfig(t.TempDir())
	cfg.Storage.Backend = app.BackendRedis
	cfg.Storage.RedisAddr = mr.Addr()
	cfg.PageFile = filepath.Join(cfg.Home, "none.html")

	ctx := context.Background()
	w, err := app.NewWire(ctx, cfg, nil)
	if err != nil {
		t.Fatalf("wire: %v", err)
	}
	defer w.Close()

	if err := w.Dict.SetEntry(ctx, "x", "y"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !mr.Exists(cfg.Storage.RedisPrefix + "userDict") {
		t.Fatal("user dict not written to redis")
	}
}

func TestNewLogger(t *testing.T) {
	if _, err := app.NewLogger("debug", "json"); err != nil {
		t.Fatalf("json logger: %v", err)
	}
	if _, err := app.NewLogger("loud", "console"); err == nil {
		t.Fatal("expected bad level error")
	}
}
