package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded yaml = %+v, Default() = %+v", cfg, Default())
	}
}

func TestDefaultReleaseOutlastsRepeatDelay(t *testing.T) {
	// Common terminal auto-repeat delay before the first repeat.
	const repeatDelay = 500 * time.Millisecond

	if got := Default().Terminal.KeyReleaseAfter; got <= repeatDelay {
		t.Errorf("KeyReleaseAfter = %v, expected more than %v", got, repeatDelay)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("tick_rate: 30\nterminal:\n  key_release_after: 120ms\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", cfg.TickRate)
	}
	if cfg.Terminal.KeyReleaseAfter != 120*time.Millisecond {
		t.Errorf("KeyReleaseAfter = %v, expected 120ms", cfg.Terminal.KeyReleaseAfter)
	}
	if cfg.Canvas != Default().Canvas {
		t.Errorf("canvas should keep defaults, got %+v", cfg.Canvas)
	}

	rt := cfg.Runtime()
	if rt.CanvasW != 800 || rt.CanvasH != 400 || rt.TickRate != 30 {
		t.Errorf("Runtime() = %+v", rt)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"zero canvas", func(s *Settings) { s.Canvas.Width = 0 }},
		{"zero tick rate", func(s *Settings) { s.TickRate = 0 }},
		{"no key release", func(s *Settings) { s.Terminal.KeyReleaseAfter = 0 }},
		{"negative scale", func(s *Settings) { s.Window.Scale = -1 }},
		{"bad log level", func(s *Settings) { s.Log.Level = "loud" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := Default()
			tc.mutate(&s)
			if err := s.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() error = %v, expected ErrInvalid", err)
			}
		})
	}

	if err := Default().Validate(); err != nil {
		t.Errorf("Default() should be valid, got %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stomp.yaml")
	if err := os.WriteFile(path, []byte("canvas:\n  width: 640\n  height: 360\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Canvas.Width != 640 || cfg.Canvas.Height != 360 {
		t.Errorf("canvas = %+v, expected 640x360", cfg.Canvas)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("tick_rate: -5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() error = %v, expected ErrInvalid", err)
	}
}
