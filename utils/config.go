package utils

import (
	"encoding/json"
	"github.com/pkg/errors"
	"os"
	"time"
)

// Seed pattern names accepted by the config.
const (
	PatternHeart   = "heart"
	PatternGlider  = "glider"
	PatternBlinker = "blinker"
	PatternRandom  = "random"
)

// Pattern layouts: one pattern at the grid center, or one per quadrant.
const (
	LayoutCenter    = "center"
	LayoutQuadrants = "quadrants"
)

// Config holds the parameters of a simulation run
type Config struct {
	Rows          int           `json:"rows"`
	Cols          int           `json:"cols"`
	Steps         int           `json:"steps"`
	Seed          int64         `json:"seed"`
	RandomDensity float64       `json:"random_density"`
	Pattern       string        `json:"pattern"`
	PatternLayout string        `json:"pattern_layout"`
	SurvivalRules []int         `json:"survival_rules"`
	BirthRules    []int         `json:"birth_rules"`
	GrowthOnly    bool          `json:"growth_only"`
	FrameRate     time.Duration `json:"frame_rate"`
	UseMemoryPool bool          `json:"use_memory_pool"`
	Workers       int           `json:"workers"` // 0 means one worker per CPU
}

// DefaultConfig returns the parameters of the showcase animation: a heart
// growing at the center of a 40x40 torus under the widened survival band
func DefaultConfig() Config {
	return Config{
		Rows:          40,
		Cols:          40,
		Steps:         41,
		Seed:          1,
		RandomDensity: 0.15,
		Pattern:       PatternHeart,
		PatternLayout: LayoutCenter,
		SurvivalRules: []int{2, 3, 4, 5},
		BirthRules:    []int{3},
		GrowthOnly:    false,
		FrameRate:     100 * time.Millisecond,
		UseMemoryPool: true,
		Workers:       0,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}
