// Package config builds game settings from an optional .env file and
// BLOCKFALL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/plus3/blockfall/tetris"
)

const (
	EnvDropInterval     = "BLOCKFALL_DROP_INTERVAL"
	EnvSpeedFactor      = "BLOCKFALL_SPEED_FACTOR"
	EnvMinDropInterval  = "BLOCKFALL_MIN_DROP_INTERVAL"
	EnvClearDelay       = "BLOCKFALL_CLEAR_DELAY"
	EnvSnapDown         = "BLOCKFALL_SNAP_DOWN"
	EnvMultiLevelUp     = "BLOCKFALL_MULTI_LEVEL_UP"
	EnvQueueDuringClear = "BLOCKFALL_QUEUE_DURING_CLEAR"
	EnvRandomizer       = "BLOCKFALL_RANDOMIZER"
	EnvSeed             = "BLOCKFALL_SEED"

	// EnvKeysPrefix is followed by an upper-case command name, for example
	// BLOCKFALL_KEYS_ROTATE=up,x.
	EnvKeysPrefix = "BLOCKFALL_KEYS_"
)

const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

// Settings is everything a presenter needs to start a game.
type Settings struct {
	Game       tetris.Config
	Randomizer string
	Keys       Keymap
}

// Defaults returns the standard rules with the uniform randomizer and the
// default key bindings.
func Defaults() Settings {
	return Settings{
		Game:       tetris.DefaultConfig(),
		Randomizer: RandomizerUniform,
		Keys:       DefaultKeymap(),
	}
}

// Load reads the given .env files, or ./.env when none are given, then
// builds settings from the environment. Missing files are not an error.
// Variables already set in the environment win over file values.
func Load(files ...string) (Settings, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("config: load env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds settings from BLOCKFALL_* variables on top of Defaults.
func FromEnv() (Settings, error) {
	s := Defaults()
	g := &s.Game

	var err error
	if g.DropInterval, err = envDuration(EnvDropInterval, g.DropInterval); err != nil {
		return Settings{}, err
	}
	if g.SpeedFactor, err = envFloat(EnvSpeedFactor, g.SpeedFactor); err != nil {
		return Settings{}, err
	}
	if g.MinDropInterval, err = envDuration(EnvMinDropInterval, g.MinDropInterval); err != nil {
		return Settings{}, err
	}
	if g.ClearDelay, err = envDuration(EnvClearDelay, g.ClearDelay); err != nil {
		return Settings{}, err
	}
	if g.RotationSnapDown, err = envBool(EnvSnapDown, g.RotationSnapDown); err != nil {
		return Settings{}, err
	}
	if g.MultiLevelUp, err = envBool(EnvMultiLevelUp, g.MultiLevelUp); err != nil {
		return Settings{}, err
	}
	if g.QueueDuringClear, err = envBool(EnvQueueDuringClear, g.QueueDuringClear); err != nil {
		return Settings{}, err
	}
	if v := os.Getenv(EnvSeed); v != "" {
		if g.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return Settings{}, fmt.Errorf("config: %s: %w", EnvSeed, err)
		}
	}
	if v := os.Getenv(EnvRandomizer); v != "" {
		s.Randomizer = strings.ToLower(strings.TrimSpace(v))
	}
	if err := s.Keys.applyEnv(); err != nil {
		return Settings{}, err
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the game rules and the randomizer name.
func (s Settings) Validate() error {
	if err := s.Game.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch s.Randomizer {
	case RandomizerUniform, RandomizerBag:
	default:
		return fmt.Errorf("config: %s: unknown randomizer %q, want %q or %q",
			EnvRandomizer, s.Randomizer, RandomizerUniform, RandomizerBag)
	}
	return nil
}

// EngineConfig returns the engine config with the piece source the settings
// ask for.
func (s Settings) EngineConfig() tetris.Config {
	cfg := s.Game
	if s.Randomizer == RandomizerBag && cfg.Source == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		cfg.Source = tetris.NewBagSource(rand.New(rand.NewPCG(seed, seed>>1)))
	}
	return cfg
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return f, nil
}

func envBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: %s: %w", key, err)
	}
	return b, nil
}
