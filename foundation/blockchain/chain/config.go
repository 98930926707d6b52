package chain

import (
	"math"
	"time"
)

// Config represents the mining parameters for a chain. A block is accepted
// when the proof value of its hash is strictly less than the Ceiling, so a
// larger ceiling is easier to mine.
type Config struct {
	Ceiling int32
	Delay   time.Duration
}

// DefaultConfig returns a configuration that mines almost every attempt
// and paces blocks one second apart.
func DefaultConfig() Config {
	return Config{
		Ceiling: math.MaxInt32,
		Delay:   time.Second,
	}
}

// NewConfig constructs a configuration with the specified values.
func NewConfig(ceiling int32, delay time.Duration) Config {
	return Config{
		Ceiling: ceiling,
		Delay:   delay,
	}
}

// Difficulty describes the ceiling for display.
func (c Config) Difficulty() string {
	if c.Ceiling == math.MaxInt32 {
		return "almost always mines"
	}

	return "challenging"
}
