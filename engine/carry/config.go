package carry

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the motion tunables. Sub-step count and resolver iterations
// trade query cost against fidelity under fast controller motion, they are
// not correctness guarantees.
type Config struct {
	SubSteps          int     `yaml:"sub_steps"`
	ResolveIterations int     `yaml:"resolve_iterations"`
	SkinFraction      float32 `yaml:"skin_fraction"`
	SnapToSurface     bool    `yaml:"snap_to_surface"`
	SnapTolerance     float32 `yaml:"snap_tolerance"`
}

func DefaultConfig() Config {
	return Config{
		SubSteps:          4,
		ResolveIterations: 3,
		SkinFraction:      0.01,
		SnapToSurface:     false,
		SnapTolerance:     0.05,
	}
}

func LoadConfig(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, errors.Wrapf(err, "could not read config file '%s'", filename)
	}
	config := DefaultConfig()
	if err = yaml.Unmarshal(data, &config); err != nil {
		return Config{}, errors.Wrapf(err, "could not parse config file '%s'", filename)
	}
	if err = config.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "invalid config file '%s'", filename)
	}
	return config, nil
}

func (c Config) Validate() error {
	if c.SubSteps < 1 {
		return errors.New("sub_steps must be at least 1")
	}
	if c.ResolveIterations < 1 {
		return errors.New("resolve_iterations must be at least 1")
	}
	if c.SkinFraction < 0 {
		return errors.New("skin_fraction must not be negative")
	}
	if c.SnapToSurface && c.SnapTolerance <= 0 {
		return errors.New("snap_tolerance must be positive when snapping is on")
	}
	return nil
}

// Skin is the safety margin kept between surfaces, scaled by the probe
// radius and clamped to never go negative.
func (c Config) Skin(radius float32) float32 {
	skin := c.SkinFraction * radius
	if skin < 0 {
		return 0
	}
	return skin
}
