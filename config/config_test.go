package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	cfg := DefaultConfig()
	cfg.FontPath = "fonts/PTSans-Regular.ttf"
	cfg.MaxFontSize = 120
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *got != *cfg {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, cfg)
	}
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if cfg == nil || cfg.OutputPath != DefaultOutputPath {
		t.Fatalf("expected defaults alongside the error")
	}
}

func TestValidate_Clamps(t *testing.T) {
	cfg := &Config{MinFontSize: -3, MaxFontSize: 2, PollMillis: 0, MaxDisplayW: 5}
	_ = cfg.Validate()
	if cfg.MinFontSize != 5 || cfg.MaxFontSize != 300 {
		t.Fatalf("font bounds not clamped: %d..%d", cfg.MinFontSize, cfg.MaxFontSize)
	}
	if cfg.OutputPath != DefaultOutputPath || cfg.PollMillis != 15 || cfg.MaxDisplayW != 100 || cfg.MaxDisplayH != 100 {
		t.Fatalf("unexpected clamped config %+v", cfg)
	}
	big := &Config{MinFontSize: 10, MaxFontSize: 99999}
	_ = big.Validate()
	if big.MaxFontSize != 2000 {
		t.Fatalf("max font size not capped: %d", big.MaxFontSize)
	}
}

func TestParseArgs_AppliesOverrides(t *testing.T) {
	opts, err := ParseArgs([]string{"-f", "my.ttf", "--output", "out.jpg", "--min-size", "8", "--max-size", "64", "--debug", "payment.jpg"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opts.Args.Image != "payment.jpg" || opts.ConfigPath != DefaultConfigPath {
		t.Fatalf("unexpected options %+v", opts)
	}
	cfg := DefaultConfig()
	opts.Apply(cfg)
	if cfg.FontPath != "my.ttf" || cfg.OutputPath != "out.jpg" || cfg.MinFontSize != 8 || cfg.MaxFontSize != 64 || !cfg.Debug {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestParseArgs_RequiresSource(t *testing.T) {
	if _, err := ParseArgs(nil); err != ErrNoImage {
		t.Fatalf("expected ErrNoImage, got %v", err)
	}
	opts, err := ParseArgs([]string{"--screen"})
	if err != nil || !opts.Screen {
		t.Fatalf("--screen should be enough: %v", err)
	}
}

func TestParseArgs_SaveConfigWritesEffectiveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "retext.json")
	opts, err := ParseArgs([]string{"--save-config", "-c", path, "--max-size", "90"})
	if err != nil {
		t.Fatalf("--save-config should not need an image: %v", err)
	}
	if !opts.SaveConfig || opts.ConfigPath != path {
		t.Fatalf("unexpected options %+v", opts)
	}
	cfg := DefaultConfig()
	opts.Apply(cfg)
	if err := cfg.Save(opts.ConfigPath); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.MaxFontSize != 90 {
		t.Fatalf("saved config lost override: %+v", got)
	}
}
