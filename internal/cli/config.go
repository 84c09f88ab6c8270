package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/treemendous/treemendous/pkg/render"
	"github.com/treemendous/treemendous/pkg/render/dot"
)

// =============================================================================
// Config
// =============================================================================

// Config holds user preferences read from the config file. Flags override
// config values; config values override the built-in defaults.
type Config struct {
	// Format is the default export format (treemendous, gv, png, tex).
	Format string `toml:"format"`
	// DPI is the raster resolution for PNG export.
	DPI int `toml:"dpi"`
}

// defaultConfig returns the built-in defaults.
func defaultConfig() Config {
	return Config{
		Format: string(render.FormatPNG),
		DPI:    dot.DefaultDPI,
	}
}

// configPath returns the config file location (~/.config/treemendous/config.toml).
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// loadConfigFile reads a config file, filling unset keys with defaults.
// A missing file is not an error; it yields the defaults.
func loadConfigFile(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return defaultConfig(), err
	}
	if cfg.Format == "" {
		cfg.Format = string(render.FormatPNG)
	}
	if cfg.DPI <= 0 {
		cfg.DPI = dot.DefaultDPI
	}
	return cfg, nil
}

// loadConfig reads the user's config file from the standard location.
// Errors degrade to defaults with a debug log; a broken config file should
// never make the CLI unusable.
func (c *CLI) loadConfig() Config {
	path, err := configPath()
	if err != nil {
		c.Logger.Debug("config dir unavailable", "err", err)
		return defaultConfig()
	}
	cfg, err := loadConfigFile(path)
	if err != nil {
		c.Logger.Debug("ignoring broken config", "path", path, "err", err)
	}
	return cfg
}
