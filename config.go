package textpath

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the editor settings. It can be loaded from a YAML file.
type Config struct {
	Width            float64       `yaml:"width"`
	Height           float64       `yaml:"height"`
	Padding          float64       `yaml:"padding"`
	PreviewSamples   int           `yaml:"preview_samples"`
	AnimationSamples int           `yaml:"animation_samples"`
	FrameInterval    time.Duration `yaml:"frame_interval"`
	HistoryCapacity  int           `yaml:"history_capacity"`
	FitOnLoad        bool          `yaml:"fit_on_load"`
	Text             TextParams    `yaml:"text"`
}

// DefaultConfig returns the default settings: an 800x600 canvas, 100 samples for the text preview and 200 for the animation, which advances every 50ms. Loaded paths are fit to the canvas.
func DefaultConfig() Config {
	return Config{
		Width:            800.0,
		Height:           600.0,
		Padding:          Padding,
		PreviewSamples:   100,
		AnimationSamples: 200,
		FrameInterval:    50 * time.Millisecond,
		HistoryCapacity:  HistoryCapacity,
		FitOnLoad:        true,
		Text:             DefaultTextParams,
	}
}

// LoadConfig reads a YAML config file. Settings missing from the file keep their default value, and a file that doesn't exist returns the default config.
func LoadConfig(filename string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		Logger().Debug("config file not found, using defaults", "path", filename)
		return cfg, nil
	} else if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks that the canvas leaves room inside the padding and that the sample counts and text parameters are valid.
func (cfg Config) Validate() error {
	if cfg.Width <= 2.0*cfg.Padding || cfg.Height <= 2.0*cfg.Padding {
		return fmt.Errorf("canvas %vx%v too small for padding %v", cfg.Width, cfg.Height, cfg.Padding)
	} else if cfg.Padding < 0.0 {
		return &InvalidParameterError{"padding", fmtFloat(cfg.Padding)}
	} else if cfg.PreviewSamples <= 0 {
		return &InvalidParameterError{"preview samples", fmt.Sprint(cfg.PreviewSamples)}
	} else if cfg.AnimationSamples <= 0 {
		return &InvalidParameterError{"animation samples", fmt.Sprint(cfg.AnimationSamples)}
	} else if cfg.FrameInterval <= 0 {
		return &InvalidParameterError{"frame interval", cfg.FrameInterval.String()}
	}
	return cfg.Text.Validate()
}
