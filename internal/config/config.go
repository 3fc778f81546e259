package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"searchbox/internal/eventbus"
)

// Default timings. The debounce wait is the quiet period after the last
// keystroke before a fetch is issued; the blur grace is how long a blur
// waits before hiding the dropdown so a click on a result can land.
const (
	DefaultDebounce  = 300 * time.Millisecond
	DefaultBlurGrace = 150 * time.Millisecond
	DefaultSearchURL = "https://dummyjson.com/products/search"
)

// Config represents the application configuration
type Config struct {
	Version     int        `toml:"version"`
	SearchURL   string     `toml:"search_url"`
	DebounceMs  int        `toml:"debounce_ms"`
	BlurGraceMs int        `toml:"blur_grace_ms"`
	MaxResults  int        `toml:"max_results"` // 0 means let the endpoint decide
	UISettings  UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowPrices     bool `toml:"show_prices"`
	ShowThumbnails bool `toml:"show_thumbnails"` // render thumbnail URLs next to titles
}

// Debounce returns the configured debounce wait as a duration.
func (c *Config) Debounce() time.Duration {
	if c.DebounceMs <= 0 {
		return DefaultDebounce
	}
	return time.Duration(c.DebounceMs) * time.Millisecond
}

// BlurGrace returns the configured blur grace delay as a duration.
func (c *Config) BlurGrace() time.Duration {
	if c.BlurGraceMs <= 0 {
		return DefaultBlurGrace
	}
	return time.Duration(c.BlurGraceMs) * time.Millisecond
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	appDir := filepath.Join(configDir, "searchbox")
	os.MkdirAll(appDir, 0755)

	return &configService{
		filePath: filepath.Join(appDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the default path, falling back to
// defaults when no file exists
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.publishLoaded(cfg)
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}
	cs.publishLoaded(cfg)
	return cfg, nil
}

// Save saves the configuration to the default path
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.SearchURL == "" {
		cfg.SearchURL = DefaultSearchURL
	}

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (cs *configService) publishLoaded(cfg *Config) {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{SearchURL: cfg.SearchURL})
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:     1,
		SearchURL:   DefaultSearchURL,
		DebounceMs:  int(DefaultDebounce / time.Millisecond),
		BlurGraceMs: int(DefaultBlurGrace / time.Millisecond),
		MaxResults:  10,
		UISettings: UISettings{
			ShowPrices:     true,
			ShowThumbnails: false,
		},
	}
}
