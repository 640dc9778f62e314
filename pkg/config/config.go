// Package config provides configuration loading and management for objmask.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"objmask/pkg/geometry"
	"objmask/pkg/interpolation"
	"objmask/pkg/labels"
	"objmask/pkg/scale"
	"objmask/pkg/spatial"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	// Scaling parameters of the collective scaling pipeline
	Scaling struct {
		// Interpolation names the interpolator for independently scaled objects
		Interpolation string `yaml:"interpolation"`

		// Factor is the scale factor along x, y and z
		Factor struct {
			X float64 `yaml:"x"`
			Y float64 `yaml:"y"`
			Z float64 `yaml:"z"`
		} `yaml:"factor"`

		// MaxLabels lowers the number of labels available in the raster
		MaxLabels int `yaml:"maxLabels"`

		// MinLabelVolume drops recovered labels with a smaller bounding box
		MinLabelVolume int `yaml:"minLabelVolume"`
	} `yaml:"scaling"`

	// Index holds the R-tree branching factors
	Index struct {
		MinChildren int `yaml:"minChildren"`
		MaxChildren int `yaml:"maxChildren"`
	} `yaml:"index"`

	// Scene describes the synthetic scene used by the bench command
	Scene struct {
		Width   int    `yaml:"width"`
		Height  int    `yaml:"height"`
		Depth   int    `yaml:"depth"`
		Objects int    `yaml:"objects"`
		MaxSide int    `yaml:"maxSide"`
		Seed    uint64 `yaml:"seed"`
	} `yaml:"scene"`

	// Logging parameters
	Logging struct {
		// Level is a logrus level name
		Level string `yaml:"level"`

		// JSON selects the JSON formatter instead of text
		JSON bool `yaml:"json"`
	} `yaml:"logging"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Scaling.Interpolation = "linear"
	cfg.Scaling.Factor.X = 2
	cfg.Scaling.Factor.Y = 2
	cfg.Scaling.Factor.Z = 1
	cfg.Scaling.MaxLabels = labels.MaxLabels
	cfg.Scaling.MinLabelVolume = 0

	defaults := spatial.DefaultOptions()
	cfg.Index.MinChildren = defaults.MinChildren
	cfg.Index.MaxChildren = defaults.MaxChildren

	cfg.Scene.Width = 128
	cfg.Scene.Height = 128
	cfg.Scene.Depth = 4
	cfg.Scene.Objects = 200
	cfg.Scene.MaxSide = 12
	cfg.Scene.Seed = 1

	cfg.Logging.Level = "info"
	cfg.Logging.JSON = false

	return cfg
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "error reading config file")
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "error parsing config file")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config file %s", configPath)
	}
	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "error creating config directory")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "error marshaling config")
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return errors.Wrap(err, "error writing config file")
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	cfg := DefaultConfig()
	return SaveConfig(cfg, configPath)
}

// Validate checks every section and reports the first problem found.
func (c *Config) Validate() error {
	if _, err := interpolation.FromName(c.Scaling.Interpolation); err != nil {
		return err
	}
	if !c.ScaleFactor().IsValid() {
		return errors.Errorf("scale factor %v must be positive along every axis", c.ScaleFactor())
	}
	if c.Scaling.MaxLabels < 0 || c.Scaling.MaxLabels > labels.MaxLabels {
		return errors.Errorf("maxLabels must lie in [0, %d], got %d", labels.MaxLabels, c.Scaling.MaxLabels)
	}
	if c.Scaling.MinLabelVolume < 0 {
		return errors.Errorf("minLabelVolume must be non-negative, got %d", c.Scaling.MinLabelVolume)
	}
	if c.Index.MinChildren < 1 || c.Index.MaxChildren < 2*c.Index.MinChildren {
		return errors.Errorf("index children must satisfy 1 <= min and 2*min <= max, got min %d max %d",
			c.Index.MinChildren, c.Index.MaxChildren)
	}
	if c.Scene.Width < 1 || c.Scene.Height < 1 || c.Scene.Depth < 1 || c.Scene.MaxSide < 1 || c.Scene.Objects < 0 {
		return errors.New("scene dimensions and maxSide must be positive and objects non-negative")
	}
	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return errors.Wrap(err, "logging level")
	}
	return nil
}

// ScaleFactor returns the configured scale factor.
func (c *Config) ScaleFactor() geometry.ScaleFactor {
	return geometry.ScaleFactor{X: c.Scaling.Factor.X, Y: c.Scaling.Factor.Y, Z: c.Scaling.Factor.Z}
}

// SceneExtent returns the extent of the synthetic scene.
func (c *Config) SceneExtent() geometry.Extent {
	return geometry.Extent{X: c.Scene.Width, Y: c.Scene.Height, Z: c.Scene.Depth}
}

// IndexOptions returns the R-tree options, logging to logger.
func (c *Config) IndexOptions(logger logrus.FieldLogger) spatial.Options {
	return spatial.Options{
		MinChildren: c.Index.MinChildren,
		MaxChildren: c.Index.MaxChildren,
		Logger:      logger,
	}
}

// ScaleOptions returns the collective scaling options, logging to logger.
func (c *Config) ScaleOptions(logger logrus.FieldLogger) (scale.Options, error) {
	interp, err := interpolation.FromName(c.Scaling.Interpolation)
	if err != nil {
		return scale.Options{}, err
	}
	return scale.Options{
		Interpolator:   interp,
		MaxLabels:      c.Scaling.MaxLabels,
		MinLabelVolume: c.Scaling.MinLabelVolume,
		Index:          c.IndexOptions(logger),
		Logger:         logger,
	}, nil
}

// NewLogger returns a logger with the configured level and formatter.
func (c *Config) NewLogger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Logging.Level)
	if err != nil {
		return nil, errors.Wrap(err, "logging level")
	}
	logger := logrus.New()
	logger.SetLevel(level)
	if c.Logging.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger, nil
}
