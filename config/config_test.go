// ABOUTME: Tests for configuration load/save functionality
// ABOUTME: Validates TOML parsing, partial files, clamping and default fallback

package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ColumnWidth != 28 {
		t.Errorf("Expected ColumnWidth 28, got %d", cfg.ColumnWidth)
	}

	if got := cfg.DropInterval(); got != 25*time.Millisecond {
		t.Errorf("DropInterval() = %v, want 25ms", got)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "listdrag.toml")

	cfg := DefaultConfig()
	cfg.ColumnWidth = 40
	cfg.AutoSave = true
	cfg.JumpScroll = true

	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if loaded != cfg {
		t.Errorf("LoadConfig() = %+v, want %+v", loaded, cfg)
	}
}

func TestLoadPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listdrag.toml")
	if err := os.WriteFile(path, []byte("column_gap = 5\nscroll_step = 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.ColumnGap != 5 {
		t.Errorf("ColumnGap = %d, want 5", cfg.ColumnGap)
	}

	if cfg.ColumnWidth != DefaultConfig().ColumnWidth {
		t.Errorf("ColumnWidth = %d, want default %d", cfg.ColumnWidth, DefaultConfig().ColumnWidth)
	}

	if cfg.ScrollStep != 1 {
		t.Errorf("ScrollStep = %d, want clamped to 1", cfg.ScrollStep)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listdrag.toml")
	if err := os.WriteFile(path, []byte("column_width = \"wide\""), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err == nil {
		t.Error("Expected parse error")
	}

	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig() on error = %+v, want defaults", cfg)
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	// Loading non-existent file should return defaults without error
	cfg, err := LoadConfig("/nonexistent/path/config.toml")
	if err != nil {
		t.Errorf("Expected no error for non-existent file, got: %v", err)
	}

	if cfg != DefaultConfig() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestSharedConfig(t *testing.T) {
	sc := NewSharedConfig(DefaultConfig())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(width int) {
			defer wg.Done()
			cfg := sc.Get()
			cfg.ColumnWidth = width
			sc.Update(cfg)
		}(20 + i)
	}
	wg.Wait()

	if got := sc.Get().ColumnWidth; got < 20 || got > 29 {
		t.Errorf("ColumnWidth = %d, want one of the written values", got)
	}
}
