package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game   GameConfig   `mapstructure:"game"`
	Runner RunnerConfig `mapstructure:"runner"`
	UI     UIConfig     `mapstructure:"ui"`
}

// GameConfig holds simulation settings
type GameConfig struct {
	Size         int      `mapstructure:"size"`
	Width        int      `mapstructure:"width"`
	Height       int      `mapstructure:"height"`
	Nations      int      `mapstructure:"nations"`
	Seed         int64    `mapstructure:"seed"`
	MaxIdleTurns int      `mapstructure:"max_idle_turns"`
	TurnLimit    int      `mapstructure:"turn_limit"`
	Names        []string `mapstructure:"names"`
}

// RunnerConfig holds command line runner settings
type RunnerConfig struct {
	LogLevel      string `mapstructure:"log_level"`
	LogFormat     string `mapstructure:"log_format"`
	TurnDelayMs   int    `mapstructure:"turn_delay_ms"`
	SnapshotEvery int    `mapstructure:"snapshot_every"`
	Color         bool   `mapstructure:"color"`
	ReportFormat  string `mapstructure:"report_format"`
	ReportPath    string `mapstructure:"report_path"`
	LogEvents     bool   `mapstructure:"log_events"`
}

// UIConfig holds viewer configuration
type UIConfig struct {
	Window WindowConfig `mapstructure:"window"`
	Game   UIGameConfig `mapstructure:"game"`
}

// WindowConfig holds window settings
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// UIGameConfig holds viewer pacing settings
type UIGameConfig struct {
	TileSize     int `mapstructure:"tile_size"`
	TurnInterval int `mapstructure:"turn_interval"` // milliseconds between rounds
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
	mu  sync.RWMutex
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Game defaults
	v.SetDefault("game.size", 6)
	v.SetDefault("game.width", 0)
	v.SetDefault("game.height", 0)
	v.SetDefault("game.nations", 3)
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.max_idle_turns", 250)
	v.SetDefault("game.turn_limit", 0)
	v.SetDefault("game.names", []string{})

	// Runner defaults
	v.SetDefault("runner.log_level", "info")
	v.SetDefault("runner.log_format", "console")
	v.SetDefault("runner.turn_delay_ms", 0)
	v.SetDefault("runner.snapshot_every", 0)
	v.SetDefault("runner.color", false)
	v.SetDefault("runner.report_format", "text")
	v.SetDefault("runner.report_path", "")
	v.SetDefault("runner.log_events", false)

	// UI defaults
	v.SetDefault("ui.window.width", 800)
	v.SetDefault("ui.window.height", 600)
	v.SetDefault("ui.window.title", "Universalis")
	v.SetDefault("ui.game.tile_size", 48)
	v.SetDefault("ui.game.turn_interval", 250)
}

// Init initializes the configuration
func Init(configPath string) error {
	nv := viper.New()
	setViperDefaults(nv)

	if configPath != "" {
		nv.SetConfigFile(configPath)
	} else {
		// Default config locations
		nv.SetConfigName("config")
		nv.SetConfigType("yaml")
		nv.AddConfigPath(".")
		nv.AddConfigPath("./config")
		nv.AddConfigPath("/etc/universalis")
	}

	nv.SetEnvPrefix("UNIVERSALIS")
	nv.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	nv.AutomaticEnv()

	if err := nv.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case configPath != "" && isMissingFile(err):
			// Specific file requested but not found - use defaults
		case configPath == "" && errors.As(err, &notFound):
			// No config in the default locations - use defaults
		default:
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	c := &Config{}
	if err := nv.Unmarshal(c); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := Validate(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	mu.Lock()
	v, cfg = nv, c
	mu.Unlock()
	return nil
}

// Get returns the global config instance
func Get() *Config {
	mu.RLock()
	c := cfg
	mu.RUnlock()
	if c == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
		mu.RLock()
		c = cfg
		mu.RUnlock()
	}
	return c
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	mu.RLock()
	defer mu.RUnlock()
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// LoadEnvironmentConfig merges config.<env>.yaml from the working directory
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}
	envFile := fmt.Sprintf("config.%s.yaml", env)

	mu.Lock()
	defer mu.Unlock()
	v.SetConfigFile(envFile)
	if err := v.MergeInConfig(); err != nil && !isMissingFile(err) {
		return fmt.Errorf("error merging environment config %s: %w", envFile, err)
	}
	return reload()
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	mu.Lock()
	defer mu.Unlock()
	v.Set(key, value)
	_ = v.Unmarshal(cfg)
}

// GetString gets a string value from config
func GetString(key string) string {
	return GetViper().GetString(key)
}

// GetInt gets an int value from config
func GetInt(key string) int {
	return GetViper().GetInt(key)
}

// GetBool gets a bool value from config
func GetBool(key string) bool {
	return GetViper().GetBool(key)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return GetViper().ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file. onChange receives the
// reloaded config, or the validation error that caused the reload to be
// rejected.
func WatchConfig(onChange func(*Config, error)) {
	wv := GetViper()
	wv.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		mu.Lock()
		err := reload()
		c := cfg
		mu.Unlock()
		if onChange != nil {
			onChange(c, err)
		}
	})
	wv.WatchConfig()
}

// reload re-decodes viper into a fresh struct and swaps it in if valid.
// Callers hold mu.
func reload() error {
	next := &Config{}
	if err := v.Unmarshal(next); err != nil {
		return fmt.Errorf("unable to decode merged config into struct: %w", err)
	}
	if err := Validate(next); err != nil {
		return err
	}
	cfg = next
	return nil
}

func isMissingFile(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return true
	}
	return errors.Is(err, fs.ErrNotExist)
}

// Dimensions resolves the grid size, falling back to Size for unset axes
func (g GameConfig) Dimensions() (width, height int) {
	width, height = g.Width, g.Height
	if width == 0 {
		width = g.Size
	}
	if height == 0 {
		height = g.Size
	}
	return width, height
}

// IdleLimit converts max_idle_turns to the simulation's convention, where a
// negative limit disables stalemate detection and zero selects the default
func (g GameConfig) IdleLimit() int {
	if g.MaxIdleTurns == 0 {
		return -1
	}
	return g.MaxIdleTurns
}

// Validate validates the configuration values
func Validate(c *Config) error {
	w, h := c.Game.Dimensions()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("game grid dimensions must be positive, got %dx%d", w, h)
	}
	if c.Game.Nations <= 0 {
		return fmt.Errorf("game.nations must be positive")
	}
	if c.Game.Nations > w*h {
		return fmt.Errorf("game.nations (%d) exceeds the %d provinces of a %dx%d grid", c.Game.Nations, w*h, w, h)
	}
	if c.Game.MaxIdleTurns < 0 {
		return fmt.Errorf("game.max_idle_turns must be non-negative (0 disables stalemate detection)")
	}
	if c.Game.TurnLimit < 0 {
		return fmt.Errorf("game.turn_limit must be non-negative")
	}

	switch c.Runner.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("runner.log_format must be console or json, got %q", c.Runner.LogFormat)
	}
	switch c.Runner.ReportFormat {
	case "text", "yaml", "none":
	default:
		return fmt.Errorf("runner.report_format must be text, yaml or none, got %q", c.Runner.ReportFormat)
	}
	if c.Runner.TurnDelayMs < 0 {
		return fmt.Errorf("runner.turn_delay_ms must be non-negative")
	}
	if c.Runner.SnapshotEvery < 0 {
		return fmt.Errorf("runner.snapshot_every must be non-negative")
	}

	if c.UI.Window.Width <= 0 || c.UI.Window.Height <= 0 {
		return fmt.Errorf("ui.window dimensions must be positive")
	}
	if c.UI.Game.TileSize <= 0 {
		return fmt.Errorf("ui.game.tile_size must be positive")
	}
	if c.UI.Game.TurnInterval <= 0 {
		return fmt.Errorf("ui.game.turn_interval must be positive")
	}

	return nil
}
