package tetris

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("tetris: invalid config")

const (
	DefaultDropInterval    = time.Second
	DefaultSpeedFactor     = 0.9
	DefaultMinDropInterval = 50 * time.Millisecond
	DefaultClearDelay      = 300 * time.Millisecond

	// PointsPerRow is awarded for every row removed by a clear.
	PointsPerRow = 100
	// PointsPerLevel is the score span of one level.
	PointsPerLevel = 500
)

// Config tunes the engine. Use DefaultConfig and override fields.
type Config struct {
	// DropInterval is the initial time between gravity ticks.
	DropInterval time.Duration
	// SpeedFactor multiplies the drop interval on each level-up. Must be in (0, 1).
	SpeedFactor float64
	// MinDropInterval bounds how fast gravity can get. Must be positive.
	MinDropInterval time.Duration
	// ClearDelay is how long completed rows stay marked before the driver
	// compacts the board.
	ClearDelay time.Duration

	// RotationSnapDown nudges a piece one row down after a successful rotation
	// when the row below is free.
	RotationSnapDown bool
	// MultiLevelUp lets a single clear raise the level past several 500 point
	// thresholds. When false a clear raises the level by at most one.
	MultiLevelUp bool
	// QueueDuringClear makes the driver hold player commands while rows are
	// marked for clearing and replay them after compaction.
	QueueDuringClear bool

	// Source picks spawned kinds. Nil means a UniformSource seeded from Seed.
	Source Source
	// Seed seeds the default source. Zero picks a random seed.
	Seed uint64

	// Logger receives lifecycle events at debug level. Nil disables logging.
	Logger *slog.Logger
}

// DefaultConfig returns the standard rules.
func DefaultConfig() Config {
	return Config{
		DropInterval:     DefaultDropInterval,
		SpeedFactor:      DefaultSpeedFactor,
		MinDropInterval:  DefaultMinDropInterval,
		ClearDelay:       DefaultClearDelay,
		RotationSnapDown: true,
	}
}

// Validate checks the timing parameters.
func (c Config) Validate() error {
	if c.DropInterval <= 0 {
		return fmt.Errorf("%w: drop interval must be positive, got %s", ErrInvalidConfig, c.DropInterval)
	}
	if c.SpeedFactor <= 0 || c.SpeedFactor >= 1 {
		return fmt.Errorf("%w: speed factor must be in (0, 1), got %g", ErrInvalidConfig, c.SpeedFactor)
	}
	if c.MinDropInterval <= 0 || c.MinDropInterval > c.DropInterval {
		return fmt.Errorf("%w: min drop interval %s outside (0, %s]", ErrInvalidConfig, c.MinDropInterval, c.DropInterval)
	}
	if c.ClearDelay < 0 {
		return fmt.Errorf("%w: clear delay must not be negative, got %s", ErrInvalidConfig, c.ClearDelay)
	}
	return nil
}

func (c Config) source() Source {
	if c.Source != nil {
		return c.Source
	}
	seed := c.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return NewUniformSource(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}
