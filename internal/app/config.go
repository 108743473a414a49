package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"decoder/internal/store"
)

// ConfigFilename is the config file looked up inside Home.
const ConfigFilename = "config.yaml"

const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home      string `yaml:"-" env:"DECODER_HOME"`                  // config directory, e.g. $HOME/.decoder
	LogLevel  string `yaml:"log_level" env:"DECODER_LOG_LEVEL"`     // debug, info, warn, error
	LogFormat string `yaml:"log_format" env:"DECODER_LOG_FORMAT"`   // json or console
	BaseDict  string `yaml:"base_dict" env:"DECODER_BASE_DICT"`     // optional base dictionary override file
	ExportDir string `yaml:"export_dir" env:"DECODER_EXPORT_DIR"`   // where export writes when no path is given
	PageFile  string `yaml:"page_file" env:"DECODER_PAGE_FILE"`     // HTML file target; set selects the file executor

	Storage StorageConfig `yaml:"storage"`
	Browser BrowserConfig `yaml:"browser"`
	Panel   PanelConfig   `yaml:"panel"`
}

// StorageConfig selects and configures the persisted state backend.
type StorageConfig struct {
	Backend     string `yaml:"backend" env:"DECODER_STORAGE"`           // file or redis
	StateFile   string `yaml:"state_file" env:"DECODER_STATE_FILE"`     // relative to Home unless absolute
	Passphrase  string `yaml:"-" env:"DECODER_PASSPHRASE"`              // seals the state file when set
	RedisAddr   string `yaml:"redis_addr" env:"DECODER_REDIS_ADDR"`
	RedisDB     int    `yaml:"redis_db" env:"DECODER_REDIS_DB"`
	RedisPrefix string `yaml:"redis_prefix" env:"DECODER_REDIS_PREFIX"`
}

// BrowserConfig configures the DevTools executor.
type BrowserConfig struct {
	DebuggerURL string        `yaml:"debugger_url" env:"DECODER_DEBUGGER_URL"`
	Bin         string        `yaml:"bin" env:"DECODER_BROWSER_BIN"`
	Headless    bool          `yaml:"headless" env:"DECODER_HEADLESS"`
	Timeout     time.Duration `yaml:"timeout" env:"DECODER_BROWSER_TIMEOUT"`
}

// PanelConfig configures the panel daemon.
type PanelConfig struct {
	Listen      string   `yaml:"listen" env:"DECODER_PANEL_LISTEN"`
	CORSOrigins []string `yaml:"cors_origins" env:"DECODER_PANEL_CORS_ORIGINS" envSeparator:","`
}

// DefaultConfig returns the configuration used when no file or env overrides exist.
func DefaultConfig(home string) Config {
	return Config{
		Home:      home,
		LogLevel:  "info",
		LogFormat: "console",
		Storage: StorageConfig{
			Backend:     BackendFile,
			StateFile:   store.StateFilename,
			RedisAddr:   "127.0.0.1:6379",
			RedisPrefix: "decoder:",
		},
		Browser: BrowserConfig{
			Headless: true,
			Timeout:  30 * time.Second,
		},
		Panel: PanelConfig{
			Listen: "127.0.0.1:8740",
		},
	}
}

// DefaultHome returns ~/.decoder.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".decoder"), nil
}

// LoadConfig reads path (or Home/config.yaml when path is empty) over the
// defaults, then applies DECODER_* environment overrides. A missing file is
// not an error.
func LoadConfig(home, path string) (Config, error) {
	cfg := DefaultConfig(home)
	if path == "" && home != "" {
		path = filepath.Join(home, ConfigFilename)
	}
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config env: %w", err)
	}
	if cfg.Home == "" {
		h, err := DefaultHome()
		if err != nil {
			return Config{}, err
		}
		cfg.Home = h
	}
	return cfg, cfg.Validate()
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendRedis:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

// StatePath resolves the state file against Home and picks the sealed name
// when a passphrase is configured and the default name is in use.
func (c Config) StatePath() string {
	name := c.Storage.StateFile
	if name == "" || (name == store.StateFilename && c.Storage.Passphrase != "") {
		name = store.StateFilename
		if c.Storage.Passphrase != "" {
			name = store.SealedStateFilename
		}
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Home, name)
}
