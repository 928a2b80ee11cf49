package ordering

import "fmt"

const (
	// DefaultStep is the spacing between two consecutive seeded keys.
	DefaultStep = 16384
	// DefaultThreshold is the smallest tolerated gap between a requested key and its neighbours.
	DefaultThreshold = 0.1
)

// Config holds the seeding and collision parameters of the engine.
type Config struct {
	// Step is the spacing unit used when assigning keys in bulk (seed or normalize).
	Step float64 `mapstructure:"step" default:"16384"`
	// Threshold is the minimum distance between a requested key and its neighbours
	// before a full normalization is forced.
	Threshold float64 `mapstructure:"threshold" default:"0.1"`
	// ItemsCount is the number of items created when a list is seeded or reset.
	ItemsCount int `mapstructure:"items_count" default:"5"`
}

// DefaultConfig returns the production parameters.
func DefaultConfig() Config {
	return Config{
		Step:       DefaultStep,
		Threshold:  DefaultThreshold,
		ItemsCount: len(DefaultPalette),
	}
}

// Validate checks that the parameters leave room for at least one midpoint
// insertion between two seeded keys.
func (c Config) Validate() error {
	if c.Step <= 0 {
		return fmt.Errorf("ordering: step must be positive, got %v", c.Step)
	}
	if c.Threshold < 0 {
		return fmt.Errorf("ordering: threshold must not be negative, got %v", c.Threshold)
	}
	if c.Threshold >= c.Step/2 {
		return fmt.Errorf("ordering: threshold %v leaves no usable gap for step %v", c.Threshold, c.Step)
	}
	if c.ItemsCount < 0 {
		return fmt.Errorf("ordering: items count must not be negative, got %d", c.ItemsCount)
	}
	return nil
}
