package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"decoder/internal/domain"
	"decoder/internal/services/dictionary"
	"decoder/internal/services/page"
	"decoder/internal/source"
	"decoder/internal/store"
	"decoder/internal/target/browser"
	"decoder/internal/target/htmlfile"
)

// Wire bundles stores, services, and the executor for the CLI and panel.
type Wire struct {
	Config Config
	Log    *zap.Logger
	State  domain.StateStore
	Dict   *dictionary.Service
	Page   *page.Service
	Exec   domain.Executor
	Source *source.Reader
	HTTP   *http.Client

	closers []func() error
}

// NewWire constructs the dependency graph from cfg.
func NewWire(ctx context.Context, cfg Config, log *zap.Logger) (*Wire, error) {
	if log == nil {
		log = zap.NewNop()
	}
	w := &Wire{Config: cfg, Log: log, HTTP: http.DefaultClient}
	w.Source = source.New(w.HTTP)

	st, err := w.stateStore()
	if err != nil {
		return nil, err
	}
	w.State = st

	var base domain.BaseSource = store.EmbeddedBase{}
	if cfg.BaseDict != "" {
		base = store.FileBase{Path: cfg.BaseDict}
	}

	dict, err := dictionary.Load(ctx, base, st, log.Named("dictionary"))
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	w.Dict = dict

	if cfg.PageFile != "" {
		w.Exec = htmlfile.New(cfg.PageFile, log.Named("htmlfile"))
	} else {
		b := browser.New(browser.Config{
			DebuggerURL: cfg.Browser.DebuggerURL,
			Bin:         cfg.Browser.Bin,
			Headless:    cfg.Browser.Headless,
			Timeout:     cfg.Browser.Timeout,
		}, log.Named("browser"))
		w.Exec = b
		w.closers = append(w.closers, b.Close)
	}
	w.Page = page.New(w.Exec, dict, log.Named("page"))
	return w, nil
}

func (w *Wire) stateStore() (domain.StateStore, error) {
	cfg := w.Config
	switch cfg.Storage.Backend {
	case BackendRedis:
		rc := redis.NewClient(&redis.Options{
			Addr: cfg.Storage.RedisAddr,
			DB:   cfg.Storage.RedisDB,
		})
		w.closers = append(w.closers, rc.Close)
		return store.NewRedisStateStore(rc, cfg.Storage.RedisPrefix), nil
	case BackendFile, "":
		if cfg.Storage.Passphrase != "" {
			return store.NewSealedFileStateStore(cfg.StatePath(), cfg.Storage.Passphrase), nil
		}
		return store.NewFileStateStore(cfg.StatePath()), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// Close releases connections opened by NewWire.
func (w *Wire) Close() error {
	var errs []error
	for i := len(w.closers) - 1; i >= 0; i-- {
		if err := w.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	w.closers = nil
	return errors.Join(errs...)
}
