package easel

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config describes a Window. Zero fields take the defaults noted on each.
type Config struct {
	Title         string `toml:"title"`
	Width         int    `toml:"width"`          // default 640
	Height        int    `toml:"height"`         // default 480
	Background    Color  `toml:"background"`     // default White; a color name or hex string in TOML
	FPS           int    `toml:"fps"`            // frame rate Refresh paces to; default 60
	ShowFPS       bool   `toml:"show_fps"`       // draw a frame-rate readout in the top-left corner
	Debug         bool   `toml:"debug"`          // log per-frame stats to stderr
	ScreenshotDir string `toml:"screenshot_dir"` // default "screenshots"
}

const (
	defaultWidth         = 640
	defaultHeight        = 480
	defaultFPS           = 60
	defaultScreenshotDir = "screenshots"
)

// withDefaults returns c with zero fields filled in.
func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	if c.Background == (Color{}) {
		c.Background = White
	}
	if c.FPS <= 0 {
		c.FPS = defaultFPS
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = defaultScreenshotDir
	}
	return c
}

// LoadConfig parses a TOML window description. Missing keys keep their
// zero value and are defaulted when the Window is created.
//
//	title = "TELEGRAFF"
//	width = 300
//	height = 400
//	background = "white"
func LoadConfig(data []byte) (Config, error) {
	var c Config
	if _, err := toml.Decode(string(data), &c); err != nil {
		return Config{}, fmt.Errorf("easel: parse config: %w", err)
	}
	return c, nil
}

// UnmarshalText lets a Color be written as a name or hex string in
// configuration files.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
