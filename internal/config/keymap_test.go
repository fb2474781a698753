package config_test

import (
	"testing"

	"github.com/plus3/blockfall/internal/config"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeymap(t *testing.T) {
	k := config.DefaultKeymap()

	tests := []struct {
		key  string
		want tetris.Command
	}{
		{"left", tetris.CommandMoveLeft},
		{"H", tetris.CommandMoveLeft},
		{"ArrowRight", tetris.CommandMoveRight},
		{"j", tetris.CommandSoftDrop},
		{" ", tetris.CommandRotate},
		{"space", tetris.CommandRotate},
		{"r", tetris.CommandReset},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			cmd, ok := k.Lookup(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, cmd)
		})
	}

	_, ok := k.Lookup("q")
	assert.False(t, ok)
}

func TestKeymapEnvReplacesBindings(t *testing.T) {
	t.Setenv(config.EnvKeysPrefix+"ROTATE", "z, Up")

	s, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, []string{"up", "z"}, s.Keys.Keys(tetris.CommandRotate))
	_, ok := s.Keys.Lookup("x")
	assert.False(t, ok)
	cmd, _ := s.Keys.Lookup("h")
	assert.Equal(t, tetris.CommandMoveLeft, cmd)
}

func TestKeymapBindStealsKey(t *testing.T) {
	var k config.Keymap
	k.Bind(tetris.CommandRotate, "x")
	k.Bind(tetris.CommandReset, "x")

	cmd, ok := k.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, tetris.CommandReset, cmd)
	assert.Empty(t, k.Keys(tetris.CommandRotate))
}

func TestKeymapHelp(t *testing.T) {
	help := config.DefaultKeymap().Help()

	assert.Equal(t, []string{
		"left: a h left",
		"right: d l right",
		"down: down j s",
		"rotate: k space up w x",
		"reset: r",
	}, help)
}

func TestKeyRepeatFire(t *testing.T) {
	r := config.KeyRepeat{Delay: 10, Rate: 4}

	tests := []struct {
		name string
		cmd  tetris.Command
		held int
		want bool
	}{
		{"first frame", tetris.CommandRotate, 1, true},
		{"rotate held", tetris.CommandRotate, 10, false},
		{"move before delay", tetris.CommandMoveLeft, 9, false},
		{"move at delay", tetris.CommandMoveLeft, 10, true},
		{"move between repeats", tetris.CommandMoveRight, 11, false},
		{"move next repeat", tetris.CommandMoveRight, 14, true},
		{"soft drop repeats", tetris.CommandSoftDrop, 18, true},
		{"reset held", tetris.CommandReset, 14, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Fire(tt.cmd, tt.held))
		})
	}
}
