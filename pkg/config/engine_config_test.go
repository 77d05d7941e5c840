package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultEngineConfig(t *testing.T) {
	cfg := DefaultEngineConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.TPS != 60 {
		t.Errorf("expected tps = 60, got %d", cfg.TPS)
	}
	if c := cfg.Background.Color(); c.R != 21 || c.G != 21 || c.B != 21 || c.A != 255 {
		t.Errorf("unexpected background %v", c)
	}
	if cfg.Tilemap.Cols != 25 || cfg.Tilemap.Rows != 20 {
		t.Errorf("expected 25x20 tilemap, got %dx%d", cfg.Tilemap.Cols, cfg.Tilemap.Rows)
	}
}

func TestLoadEngineConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *EngineConfig)
	}{
		{
			name: "partial config keeps defaults",
			yamlContent: `
window:
  title: Test
tps: 30
`,
			validate: func(t *testing.T, cfg *EngineConfig) {
				if cfg.Window.Title != "Test" {
					t.Errorf("expected title Test, got %s", cfg.Window.Title)
				}
				// 未指定的字段保留默认值
				if cfg.Window.Width != 1280 {
					t.Errorf("expected default width 1280, got %d", cfg.Window.Width)
				}
				if cfg.TPS != 30 {
					t.Errorf("expected tps = 30, got %d", cfg.TPS)
				}
				if cfg.DeltaTime() != 1.0/30.0 {
					t.Errorf("unexpected delta time %v", cfg.DeltaTime())
				}
			},
		},
		{
			name: "full config",
			yamlContent: `
window: {title: Jungle, width: 800, height: 600}
tps: 120
background: {r: 1, g: 2, b: 3}
assets: other.yaml
verbose: true
tilemap: {path: "", tileSize: 16, tileScale: 2, cols: 4, rows: 3}
terminal: {cellWidth: 8, cellHeight: 16}
`,
			validate: func(t *testing.T, cfg *EngineConfig) {
				if cfg.Background != (RGB{1, 2, 3}) {
					t.Errorf("unexpected background %+v", cfg.Background)
				}
				if !cfg.Verbose || cfg.Assets != "other.yaml" {
					t.Errorf("unexpected verbose/assets: %v %s", cfg.Verbose, cfg.Assets)
				}
				if cfg.Tilemap.Path != "" || cfg.Tilemap.TileSize != 16 || cfg.Tilemap.Cols != 4 {
					t.Errorf("unexpected tilemap %+v", cfg.Tilemap)
				}
			},
		},
		{
			name:        "invalid tps",
			yamlContent: "tps: 0\n",
			wantErr:     true,
			errContains: "tps must be positive",
		},
		{
			name:        "invalid window",
			yamlContent: "window: {width: -1}\n",
			wantErr:     true,
			errContains: "window size",
		},
		{
			name:        "invalid yaml",
			yamlContent: "window: [",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "engine.yaml")
			if err := os.WriteFile(path, []byte(tt.yamlContent), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			cfg, err := LoadEngineConfig(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.validate(t, cfg)
		})
	}
}

func TestLoadEngineConfigMissingFile(t *testing.T) {
	cfg, err := LoadEngineConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file should fall back to defaults, got %v", err)
	}
	if *cfg != *DefaultEngineConfig() {
		t.Errorf("expected default config, got %+v", cfg)
	}
}
