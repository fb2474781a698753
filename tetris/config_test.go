package tetris_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*tetris.Config)
		valid  bool
	}{
		{"defaults", func(*tetris.Config) {}, true},
		{"zero drop interval", func(c *tetris.Config) { c.DropInterval = 0 }, false},
		{"speed factor of one", func(c *tetris.Config) { c.SpeedFactor = 1 }, false},
		{"speed factor zero", func(c *tetris.Config) { c.SpeedFactor = 0 }, false},
		{"zero floor", func(c *tetris.Config) { c.MinDropInterval = 0 }, false},
		{"floor above interval", func(c *tetris.Config) { c.MinDropInterval = 2 * time.Second }, false},
		{"floor equal to interval", func(c *tetris.Config) { c.MinDropInterval = c.DropInterval }, true},
		{"negative clear delay", func(c *tetris.Config) { c.ClearDelay = -time.Millisecond }, false},
		{"instant clears", func(c *tetris.Config) { c.ClearDelay = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tetris.DefaultConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tetris.ErrInvalidConfig)
			}
		})
	}
}

func TestSeededEnginesAgree(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.Seed = 42
	a, err := tetris.NewEngine(cfg)
	assert.NoError(t, err)
	b, err := tetris.NewEngine(cfg)
	assert.NoError(t, err)

	for range 20 {
		pa, _ := a.Spawn()
		pb, _ := b.Spawn()
		assert.Equal(t, pa.Kind, pb.Kind)
		a.Reset()
		b.Reset()
	}
}

func TestBagSourceDealsEveryKind(t *testing.T) {
	src := tetris.NewBagSource(rand.New(rand.NewPCG(7, 7)))

	for round := 0; round < 3; round++ {
		seen := make(map[tetris.Kind]int)
		for range tetris.KindCount {
			seen[src.Next()]++
		}
		assert.Len(t, seen, tetris.KindCount)
	}
}

func TestSequenceSourceWraps(t *testing.T) {
	src := tetris.NewSequenceSource(tetris.KindI, tetris.KindT)

	got := []tetris.Kind{src.Next(), src.Next(), src.Next()}

	assert.Equal(t, []tetris.Kind{tetris.KindI, tetris.KindT, tetris.KindI}, got)
	assert.Equal(t, tetris.KindO, tetris.NewSequenceSource().Next())
}
