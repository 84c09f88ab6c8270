package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	if cfg.Format != "png" {
		t.Errorf("default format = %q, want %q", cfg.Format, "png")
	}
	if cfg.DPI != 400 {
		t.Errorf("default dpi = %d, want 400", cfg.DPI)
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	cfg, err := loadConfigFile(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("missing config should not error: %v", err)
	}
	if cfg != defaultConfig() {
		t.Errorf("missing config = %+v, want defaults", cfg)
	}
}

func TestLoadConfigFile(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantFormat string
		wantDPI    int
	}{
		{
			name:       "FullConfig",
			content:    "format = \"tex\"\ndpi = 96\n",
			wantFormat: "tex",
			wantDPI:    96,
		},
		{
			name:       "PartialConfigFillsDefaults",
			content:    "dpi = 150\n",
			wantFormat: "png",
			wantDPI:    150,
		},
		{
			name:       "ZeroDPIFallsBack",
			content:    "format = \"gv\"\ndpi = 0\n",
			wantFormat: "gv",
			wantDPI:    400,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			cfg, err := loadConfigFile(path)
			if err != nil {
				t.Fatalf("loadConfigFile: %v", err)
			}
			if cfg.Format != tt.wantFormat {
				t.Errorf("format = %q, want %q", cfg.Format, tt.wantFormat)
			}
			if cfg.DPI != tt.wantDPI {
				t.Errorf("dpi = %d, want %d", cfg.DPI, tt.wantDPI)
			}
		})
	}
}

func TestLoadConfigFileBroken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not valid toml ["), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfigFile(path)
	if err == nil {
		t.Error("broken config should return an error")
	}
	if cfg != defaultConfig() {
		t.Errorf("broken config = %+v, want defaults", cfg)
	}
}

func TestConfigDirXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	dir, err := configDir()
	if err != nil {
		t.Fatalf("configDir: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg", appName) {
		t.Errorf("configDir = %q, want %q", dir, filepath.Join("/tmp/xdg", appName))
	}
}
