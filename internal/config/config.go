package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"wordlist/internal/eventbus"
	"wordlist/internal/locale"
	"wordlist/internal/words"
)

// EnvPrefix is the prefix for environment overrides, e.g. WORDLIST_LOCALE
const EnvPrefix = "WORDLIST"

// Config represents the application configuration
type Config struct {
	Version    int        `toml:"version" mapstructure:"version"`
	Locale     string     `toml:"locale" mapstructure:"locale"`
	SeedWords  []string   `toml:"seed_words,omitempty" mapstructure:"seed_words"` // overrides the locale's seed
	UISettings UISettings `toml:"ui" mapstructure:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	LongPressMs    int  `toml:"long_press_ms" mapstructure:"long_press_ms"`
	NotificationMs int  `toml:"notification_ms" mapstructure:"notification_ms"`
	Mouse          bool `toml:"mouse" mapstructure:"mouse"`
	AltScreen      bool `toml:"alt_screen" mapstructure:"alt_screen"`
}

// LongPress is how long the "go to start" button must be held to ask for clear-all
func (u UISettings) LongPress() time.Duration {
	return time.Duration(u.LongPressMs) * time.Millisecond
}

// NotificationDuration is how long a transient notification stays visible
func (u UISettings) NotificationDuration() time.Duration {
	return time.Duration(u.NotificationMs) * time.Millisecond
}

// Validate checks values a hand-edited file could get wrong
func (c *Config) Validate() error {
	if _, err := locale.Lookup(c.Locale); err != nil {
		return err
	}
	if c.UISettings.LongPressMs <= 0 {
		return fmt.Errorf("ui.long_press_ms must be positive, got %d", c.UISettings.LongPressMs)
	}
	if c.UISettings.NotificationMs <= 0 {
		return fmt.Errorf("ui.notification_ms must be positive, got %d", c.UISettings.NotificationMs)
	}
	var seen []string
	for _, w := range c.SeedWords {
		word, err := words.Validate(w, seen)
		if err != nil {
			return fmt.Errorf("seed_words: %w", err)
		}
		seen = append(seen, word)
	}
	return nil
}

// Catalog resolves the configured locale, applying the seed override
func (c *Config) Catalog() (locale.Catalog, error) {
	cat, err := locale.Lookup(c.Locale)
	if err != nil {
		return locale.Catalog{}, err
	}
	return cat.WithSeed(c.SeedWords), nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "wordlist", "config.toml")
}

// NewConfigService creates a config service for path, or DefaultPath when empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file.
// A missing file yields the defaults; environment overrides apply either way.
func (cs *configService) Load() (*Config, error) {
	cfg, err := read(cs.filePath, false)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath, Locale: cfg.Locale})
	}
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path, which must exist
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	return read(path, true)
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

	var buf bytes.Buffer
	buf.WriteString("# wordlist configuration\n")
	buf.WriteString("# locale: one of " + strings.Join(locale.Available(), ", ") + "\n\n")
	buf.Write(data)

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// read layers defaults, the TOML file at path and WORDLIST_* variables
func read(path string, requireFile bool) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault("version", def.Version)
	v.SetDefault("locale", def.Locale)
	v.SetDefault("seed_words", []string{})
	v.SetDefault("ui.long_press_ms", def.UISettings.LongPressMs)
	v.SetDefault("ui.notification_ms", def.UISettings.NotificationMs)
	v.SetDefault("ui.mouse", def.UISettings.Mouse)
	v.SetDefault("ui.alt_screen", def.UISettings.AltScreen)

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if requireFile {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Locale:  locale.Default,
		UISettings: UISettings{
			LongPressMs:    500,
			NotificationMs: 2000,
			Mouse:          true,
			AltScreen:      true,
		},
	}
}
