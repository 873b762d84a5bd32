// Package config holds the startup settings of the paint window.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

const (
	DefaultWidth  = 1920
	DefaultHeight = 1080
)

type Config struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`

	BrushRadius  float64 `toml:"brush_radius"`
	RandomColors bool    `toml:"random_colors"`

	// EnablePersistence binds the save/load keys.
	EnablePersistence bool `toml:"enable_persistence"`
	// AutoDetectResolution sizes the window to the display, falling back to
	// Width x Height.
	AutoDetectResolution bool `toml:"auto_detect_resolution"`

	ImgDir   string `toml:"img_dir"`
	SavesDir string `toml:"saves_dir"`
}

func Default() Config {
	return Config{
		Title:                "PAINT",
		Width:                DefaultWidth,
		Height:               DefaultHeight,
		BrushRadius:          10,
		RandomColors:         true,
		EnablePersistence:    true,
		AutoDetectResolution: true,
		ImgDir:               "img",
		SavesDir:             "saves",
	}
}

// Load reads a TOML file over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config %s: unknown keys %v", path, undecoded)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d must be positive", c.Width, c.Height)
	}
	if c.BrushRadius <= 0 {
		return fmt.Errorf("config: brush_radius %v must be positive", c.BrushRadius)
	}
	if c.ImgDir == "" || c.SavesDir == "" {
		return fmt.Errorf("config: img_dir and saves_dir must be set")
	}
	return nil
}
