// Package browser runs programs inside pages of a Chrome instance reached
// over the DevTools protocol.
//
// Targets are DevTools target IDs. The executor either attaches to an
// already running browser (DebuggerURL) or launches one on first use.
// Internal pages such as chrome:// or devtools:// are never scripted.
package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"

	"decoder/internal/domain"
)

var errNotConnected = errors.New("browser not connected")

// Config holds browser connection options.
type Config struct {
	DebuggerURL string        // existing DevTools websocket URL; empty launches a browser
	Bin         string        // browser binary for launching; empty lets rod pick one
	Headless    bool          // launch headless
	Timeout     time.Duration // per-call timeout; zero means none
}

// Executor implements domain.Executor over go-rod.
type Executor struct {
	cfg Config
	log *zap.Logger

	mu       sync.Mutex
	browser  *rod.Browser
	launched *launcher.Launcher
}

// New returns an executor; the browser connection is made lazily.
func New(cfg Config, log *zap.Logger) *Executor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Executor{cfg: cfg, log: log}
}

// ActiveTarget returns the first visible page, or the first page when none
// reports itself visible.
func (e *Executor) ActiveTarget(ctx context.Context) (string, error) {
	b, err := e.connect(ctx)
	if err != nil {
		return "", err
	}
	pages, err := b.Context(ctx).Pages()
	if err != nil {
		return "", fmt.Errorf("list pages: %w", err)
	}

	var fallback string
	for _, p := range pages {
		info, err := p.Info()
		if err != nil || string(info.Type) != "page" {
			continue
		}
		if fallback == "" {
			fallback = string(p.TargetID)
		}
		res, err := p.Context(ctx).Evaluate(&rod.EvalOptions{
			JS:      `() => document.visibilityState`,
			ByValue: true,
		})
		if err == nil && res != nil && res.Value.String() == "visible" {
			return string(p.TargetID), nil
		}
	}
	if fallback == "" {
		return "", domain.ErrNoTarget
	}
	return fallback, nil
}

// Execute runs the program's JS form in target with args passed by value.
func (e *Executor) Execute(ctx context.Context, target string, p domain.Program, args ...any) error {
	if p.JS == "" {
		return fmt.Errorf("%s: %w", p.Name, domain.ErrNotScriptable)
	}
	page, err := e.scriptablePage(ctx, target)
	if err != nil {
		return err
	}

	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	res, err := page.Context(ctx).Evaluate(&rod.EvalOptions{
		JS:           p.JS,
		JSArgs:       args,
		ByValue:      true,
		AwaitPromise: true,
	})
	if err != nil {
		return fmt.Errorf("evaluate %s: %w", p.Name, err)
	}
	if res != nil {
		e.log.Debug("program evaluated",
			zap.String("target", target),
			zap.String("program", p.Name),
			zap.Int("changed", res.Value.Int()))
	}
	return nil
}

// Reload reloads target from its original source.
func (e *Executor) Reload(ctx context.Context, target string) error {
	page, err := e.scriptablePage(ctx, target)
	if err != nil {
		return err
	}

	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	if err := page.Context(ctx).Reload(); err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	return nil
}

// Close disconnects, and shuts down the browser if this executor launched it.
func (e *Executor) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	var err error
	if e.browser != nil {
		err = e.browser.Close()
		e.browser = nil
	}
	if e.launched != nil {
		e.launched.Cleanup()
		e.launched = nil
	}
	return err
}

// IsPrivilegedURL reports whether url belongs to a page that cannot be scripted.
func IsPrivilegedURL(url string) bool {
	for _, prefix := range []string{
		"chrome://",
		"chrome-extension://",
		"chrome-search://",
		"chrome-untrusted://",
		"devtools://",
		"edge://",
		"view-source:",
		"about:",
		"data:",
		"blob:",
	} {
		if strings.HasPrefix(url, prefix) {
			return true
		}
	}
	return false
}

// Page returns the rod page behind target without the privileged URL check.
func (e *Executor) Page(ctx context.Context, target string) (*rod.Page, error) {
	b, err := e.connect(ctx)
	if err != nil {
		return nil, err
	}
	page, err := b.PageFromTarget(proto.TargetTargetID(target))
	if err != nil {
		return nil, fmt.Errorf("attach to target %s: %w", target, err)
	}
	return page, nil
}

func (e *Executor) scriptablePage(ctx context.Context, target string) (*rod.Page, error) {
	page, err := e.Page(ctx, target)
	if err != nil {
		return nil, err
	}
	info, err := page.Info()
	if err != nil {
		return nil, fmt.Errorf("target info %s: %w", target, err)
	}
	if IsPrivilegedURL(info.URL) {
		return nil, fmt.Errorf("%s: %w", info.URL, domain.ErrNotScriptable)
	}
	return page, nil
}

func (e *Executor) connect(ctx context.Context) (*rod.Browser, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.browser != nil {
		if _, err := e.browser.Version(); err == nil {
			return e.browser, nil
		}
		e.log.Warn("stale browser connection, reconnecting")
		_ = e.browser.Close()
		e.browser = nil
	}

	controlURL := e.cfg.DebuggerURL
	if controlURL == "" {
		l := launcher.New().Headless(e.cfg.Headless)
		if e.cfg.Bin != "" {
			l = l.Bin(e.cfg.Bin)
		}
		u, err := l.Context(ctx).Launch()
		if err != nil {
			return nil, fmt.Errorf("launch browser: %w", err)
		}
		controlURL = u
		e.launched = l
		e.log.Info("browser launched", zap.String("control_url", u))
	}

	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("%w: %v", errNotConnected, err)
	}
	e.browser = b
	return b, nil
}

func (e *Executor) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, e.cfg.Timeout)
}

// Compile-time assertion that Executor implements domain.Executor.
var _ domain.Executor = (*Executor)(nil)
