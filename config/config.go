// ABOUTME: Configuration management for board layout and drag behaviour
// ABOUTME: Handles loading/saving TOML config files with fallback to defaults

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the tunable layout and drag settings
type Config struct {
	// Layout, in terminal cells
	ColumnWidth int `toml:"column_width"`
	ColumnGap   int `toml:"column_gap"`
	ItemGap     int `toml:"item_gap"`

	// Scrolling
	ScrollStep int  `toml:"scroll_step"` // lines per wheel notch
	JumpScroll bool `toml:"jump_scroll"` // keyboard drags freeze the impact while lists scroll

	// Drop animation
	DropFrames     int `toml:"drop_frames"`
	DropIntervalMS int `toml:"drop_interval_ms"`

	// Save the board after every completed drop
	AutoSave bool `toml:"auto_save"`
}

// DropInterval is the delay between drop animation frames
func (c Config) DropInterval() time.Duration {
	return time.Duration(c.DropIntervalMS) * time.Millisecond
}

// GetConfigPath returns the default config file path
// First tries current directory, then falls back to ~/.config/listdrag/config.toml
func GetConfigPath() string {
	if _, err := os.Stat("./listdrag.toml"); err == nil {
		return "./listdrag.toml"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "./listdrag.toml"
	}

	return filepath.Join(home, ".config", "listdrag", "config.toml")
}

// LoadConfig loads configuration from a TOML file
// If the file doesn't exist or fails to load, returns default config.
// Keys missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	return clampConfig(config), nil
}

// SaveConfig saves configuration to a TOML file
func SaveConfig(path string, config Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	config = clampConfig(config)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			fmt.Printf("Warning: failed to close config file: %v\n", err)
		}
	}()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		ColumnWidth:    28,
		ColumnGap:      2,
		ItemGap:        1,
		ScrollStep:     3,
		JumpScroll:     false,
		DropFrames:     8,
		DropIntervalMS: 25,
		AutoSave:       false,
	}
}

// clampConfig keeps values inside the ranges the layout can draw
func clampConfig(config Config) Config {
	atLeast := func(v, lower int) int {
		if v < lower {
			return lower
		}
		return v
	}

	config.ColumnWidth = atLeast(config.ColumnWidth, 8)
	config.ColumnGap = atLeast(config.ColumnGap, 0)
	config.ItemGap = atLeast(config.ItemGap, 0)
	config.ScrollStep = atLeast(config.ScrollStep, 1)
	config.DropFrames = atLeast(config.DropFrames, 1)
	config.DropIntervalMS = atLeast(config.DropIntervalMS, 1)

	return config
}

// SharedConfig wraps Config with a mutex for access from the UI loop and file watchers
type SharedConfig struct {
	mu     sync.RWMutex
	config Config
}

// NewSharedConfig creates a SharedConfig holding config
func NewSharedConfig(config Config) *SharedConfig {
	return &SharedConfig{config: config}
}

// Get returns a copy of the current config (thread-safe read)
func (sc *SharedConfig) Get() Config {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.config
}

// Update updates the config (thread-safe write)
func (sc *SharedConfig) Update(config Config) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.config = config
}
