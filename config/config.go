// Package config - Defaults and file loading for the iou command.
package config

import (
	"os"

	"github.com/nvr-ai/go-iou/evaluator"
	"github.com/nvr-ai/go-iou/formats"
	"github.com/nvr-ai/go-iou/images"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// RenderConfig controls the optional overlay image.
type RenderConfig struct {
	// Output is where the overlay is written. Empty disables rendering.
	Output string `json:"output" yaml:"output"`
	// MaxWidth downsizes wider overlays. Zero keeps the source size.
	MaxWidth uint `json:"max_width" yaml:"max_width"`
	// Thickness is the outline width in pixels.
	Thickness int `json:"thickness" yaml:"thickness"`
}

// Config is the iou command configuration. Every field can be overridden by
// a flag of the same name.
type Config struct {
	// Format preselects the box format; empty prompts for it.
	Format string `json:"format" yaml:"format"`
	// ImageSize is "<width> <height>"; empty falls back to Resolution, then Image.
	ImageSize string `json:"image_size" yaml:"image_size"`
	// Resolution is a named size such as "1080p".
	Resolution string `json:"resolution" yaml:"resolution"`
	// Image is an image file whose header supplies the size and which the
	// overlay is drawn on.
	Image string `json:"image" yaml:"image"`
	// Threshold is the IoU at or above which a prediction is a match.
	Threshold float64 `json:"threshold" yaml:"threshold"`
	// LogLevel is a logrus level name.
	LogLevel string       `json:"log_level" yaml:"log_level"`
	Render   RenderConfig `json:"render"    yaml:"render"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Threshold: evaluator.DefaultThreshold,
		LogLevel:  logrus.InfoLevel.String(),
		Render: RenderConfig{
			MaxWidth:  1280,
			Thickness: 2,
		},
	}
}

// Load reads a YAML or JSON configuration file on top of DefaultConfig.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", filename)
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	return nil
}

// Validate checks the fields that would otherwise fail late.
func (c *Config) Validate() error {
	if c.Format != "" {
		if _, err := formats.ParseFormat(c.Format); err != nil {
			return err
		}
	}
	if c.ImageSize != "" {
		if _, err := formats.ParseImageSize(c.ImageSize); err != nil {
			return errors.Wrap(err, "image_size")
		}
	}
	if c.Resolution != "" {
		if _, ok := images.LookupResolution(c.Resolution); !ok {
			return errors.Errorf("unknown resolution %q", c.Resolution)
		}
	}
	if c.Threshold <= 0 || c.Threshold > 1 {
		return errors.Errorf("threshold must be in (0, 1], got %v", c.Threshold)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	if c.Render.Thickness < 1 {
		return errors.Errorf("render thickness must be positive, got %d", c.Render.Thickness)
	}
	if c.Render.Output != "" && c.Image == "" {
		return errors.New("render output needs an image")
	}
	return nil
}

// Logger builds the logrus logger described by the configuration.
func (c *Config) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "log_level")
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(level)
	logger.SetOutput(os.Stderr)
	return logger, nil
}
