package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/plus3/blockfall/tetris"
)

// Keymap binds key names to player commands. Key names are lower case:
// single letters, "left", "right", "up", "down", "space", "enter".
type Keymap struct {
	bindings map[string]tetris.Command
}

var bindable = []tetris.Command{
	tetris.CommandMoveLeft,
	tetris.CommandMoveRight,
	tetris.CommandSoftDrop,
	tetris.CommandRotate,
	tetris.CommandReset,
}

// DefaultKeymap binds arrows, vi keys and WASD.
func DefaultKeymap() Keymap {
	k := Keymap{bindings: make(map[string]tetris.Command)}
	k.Bind(tetris.CommandMoveLeft, "left", "h", "a")
	k.Bind(tetris.CommandMoveRight, "right", "l", "d")
	k.Bind(tetris.CommandSoftDrop, "down", "j", "s")
	k.Bind(tetris.CommandRotate, "up", "k", "w", "x", "space")
	k.Bind(tetris.CommandReset, "r")
	return k
}

// NormalizeKey maps the spellings different input layers use onto keymap
// names.
func NormalizeKey(key string) string {
	key = strings.ToLower(key)
	switch key {
	case " ":
		return "space"
	case "arrowleft":
		return "left"
	case "arrowright":
		return "right"
	case "arrowup":
		return "up"
	case "arrowdown":
		return "down"
	}
	return key
}

// Bind maps keys to cmd, replacing any earlier binding of those keys.
func (k *Keymap) Bind(cmd tetris.Command, keys ...string) {
	if k.bindings == nil {
		k.bindings = make(map[string]tetris.Command)
	}
	for _, key := range keys {
		if key = NormalizeKey(strings.TrimSpace(key)); key != "" {
			k.bindings[key] = cmd
		}
	}
}

// Unbind removes every key bound to cmd.
func (k *Keymap) Unbind(cmd tetris.Command) {
	for key, c := range k.bindings {
		if c == cmd {
			delete(k.bindings, key)
		}
	}
}

// Lookup returns the command bound to key.
func (k Keymap) Lookup(key string) (tetris.Command, bool) {
	cmd, ok := k.bindings[NormalizeKey(key)]
	return cmd, ok
}

// Keys returns the keys bound to cmd in sorted order.
func (k Keymap) Keys(cmd tetris.Command) []string {
	var keys []string
	for key, c := range k.bindings {
		if c == cmd {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)
	return keys
}

// Help returns one "command: keys" line per bindable command.
func (k Keymap) Help() []string {
	lines := make([]string, 0, len(bindable))
	for _, cmd := range bindable {
		lines = append(lines, fmt.Sprintf("%s: %s", cmd, strings.Join(k.Keys(cmd), " ")))
	}
	return lines
}

// applyEnv replaces the bindings of every command that has a
// BLOCKFALL_KEYS_<COMMAND> variable set.
func (k *Keymap) applyEnv() error {
	for _, cmd := range bindable {
		key := EnvKeysPrefix + strings.ToUpper(cmd.String())
		v, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		keys := strings.Split(v, ",")
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("config: %s: no keys given", key)
		}
		k.Unbind(cmd)
		k.Bind(cmd, keys...)
	}
	return nil
}

// KeyRepeat decides when a held key fires again. Times are in frames.
type KeyRepeat struct {
	Delay int
	Rate  int
}

// DefaultKeyRepeat suits a 60 TPS game loop.
var DefaultKeyRepeat = KeyRepeat{Delay: 12, Rate: 3}

// Fire reports whether a key bound to cmd and held for held frames triggers
// this frame. Only horizontal moves and soft drop repeat.
func (r KeyRepeat) Fire(cmd tetris.Command, held int) bool {
	if held == 1 {
		return true
	}
	switch cmd {
	case tetris.CommandMoveLeft, tetris.CommandMoveRight, tetris.CommandSoftDrop:
		return held >= r.Delay && (held-r.Delay)%r.Rate == 0
	}
	return false
}
