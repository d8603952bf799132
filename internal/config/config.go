package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// ErrNotFound is returned when an explicitly requested config file is missing
var ErrNotFound = errors.New("config file not found")

// Config represents the application configuration
type Config struct {
	Version int    `toml:"version"`
	Deck    string `toml:"deck"` // empty means the built-in deck
	Timing  Timing `toml:"timing"`
	Input   Input  `toml:"input"`
	UI      UI     `toml:"ui"`
	Log     Log    `toml:"log"`
}

// Timing holds every duration, in milliseconds
type Timing struct {
	TransitionMS        int `toml:"transition_ms"`
	InitialAnimationMS  int `toml:"initial_animation_ms"`
	AutoAdvanceMS       int `toml:"auto_advance_ms"`
	NotificationMS      int `toml:"notification_ms"`
	NotificationEnterMS int `toml:"notification_enter_ms"`
	NotificationExitMS  int `toml:"notification_exit_ms"`
	WelcomeDelayMS      int `toml:"welcome_delay_ms"`
}

// Input tunes pointer handling
type Input struct {
	SwipeThreshold float64 `toml:"swipe_threshold"`
	SwipeMaxMS     int     `toml:"swipe_max_ms"`
	CellWidth      float64 `toml:"cell_width"`
	CellHeight     float64 `toml:"cell_height"`
}

// UI represents UI-related configuration
type UI struct {
	ShowWelcome     bool `toml:"show_welcome"`
	ShowHelpBar     bool `toml:"show_help_bar"`
	StartFullscreen bool `toml:"start_fullscreen"`
	TickMS          int  `toml:"tick_ms"`
}

// Log configures the log sink
type Log struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

func ms(v int) time.Duration { return time.Duration(v) * time.Millisecond }

func (t Timing) Transition() time.Duration        { return ms(t.TransitionMS) }
func (t Timing) InitialAnimation() time.Duration  { return ms(t.InitialAnimationMS) }
func (t Timing) AutoAdvance() time.Duration       { return ms(t.AutoAdvanceMS) }
func (t Timing) Notification() time.Duration      { return ms(t.NotificationMS) }
func (t Timing) NotificationEnter() time.Duration { return ms(t.NotificationEnterMS) }
func (t Timing) NotificationExit() time.Duration  { return ms(t.NotificationExitMS) }
func (t Timing) WelcomeDelay() time.Duration      { return ms(t.WelcomeDelayMS) }

func (i Input) SwipeMax() time.Duration { return ms(i.SwipeMaxMS) }

func (u UI) Tick() time.Duration { return ms(u.TickMS) }

// Validate rejects settings the presenter cannot run with
func (c *Config) Validate() error {
	durations := []struct {
		name  string
		value int
	}{
		{"timing.transition_ms", c.Timing.TransitionMS},
		{"timing.initial_animation_ms", c.Timing.InitialAnimationMS},
		{"timing.auto_advance_ms", c.Timing.AutoAdvanceMS},
		{"timing.notification_ms", c.Timing.NotificationMS},
		{"timing.notification_enter_ms", c.Timing.NotificationEnterMS},
		{"timing.notification_exit_ms", c.Timing.NotificationExitMS},
		{"timing.welcome_delay_ms", c.Timing.WelcomeDelayMS},
		{"input.swipe_max_ms", c.Input.SwipeMaxMS},
		{"ui.tick_ms", c.UI.TickMS},
	}
	for _, d := range durations {
		if d.value <= 0 {
			return fmt.Errorf("%s must be positive, got %d", d.name, d.value)
		}
	}
	if c.Input.SwipeThreshold <= 0 {
		return fmt.Errorf("input.swipe_threshold must be positive, got %v", c.Input.SwipeThreshold)
	}
	if c.Input.CellWidth <= 0 || c.Input.CellHeight <= 0 {
		return fmt.Errorf("input cell size must be positive, got %vx%v", c.Input.CellWidth, c.Input.CellHeight)
	}
	return nil
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
	filePath string
}

// DefaultPath returns $XDG_CONFIG_HOME/slidedeck/config.toml or its platform equivalent
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
	return filepath.Join(configDir, "slidedeck", "config.toml")
}

// NewConfigService creates a config service for the default path
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceAt creates a config service bound to path
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the bound file, returning defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, ErrNotFound) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Save saves the configuration to the bound file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
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

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Timing: Timing{
			TransitionMS:        600,
			InitialAnimationMS:  500,
			AutoAdvanceMS:       8000,
			NotificationMS:      4000,
			NotificationEnterMS: 100,
			NotificationExitMS:  400,
			WelcomeDelayMS:      2000,
		},
		Input: Input{
			SwipeThreshold: 50,
			SwipeMaxMS:     500,
			CellWidth:      8,
			CellHeight:     16,
		},
		UI: UI{
			ShowWelcome: true,
			ShowHelpBar: true,
			TickMS:      50,
		},
		Log: Log{
			Level: "info",
			File:  "slidedeck.log",
		},
	}
}
