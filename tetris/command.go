package tetris

import "strings"

// Command is a discrete instruction for the engine.
type Command int

const (
	CommandNone Command = iota
	CommandMoveLeft
	CommandMoveRight
	CommandSoftDrop
	CommandRotate
	CommandTick
	CommandReset
)

var commandNames = map[Command]string{
	CommandNone:      "none",
	CommandMoveLeft:  "left",
	CommandMoveRight: "right",
	CommandSoftDrop:  "down",
	CommandRotate:    "rotate",
	CommandTick:      "tick",
	CommandReset:     "reset",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseCommand returns the command with the given name, as produced by String.
func ParseCommand(name string) (Command, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for cmd, n := range commandNames {
		if n == name && cmd != CommandNone {
			return cmd, true
		}
	}
	return CommandNone, false
}

// CommandBuffer holds commands for later application, in arrival order.
type CommandBuffer struct {
	commands []Command
}

// Push queues a command.
func (b *CommandBuffer) Push(cmd Command) {
	b.commands = append(b.commands, cmd)
}

// Len returns the number of queued commands.
func (b *CommandBuffer) Len() int {
	return len(b.commands)
}

// Flush applies every queued command to the engine in order and empties the
// buffer. It returns how many commands changed the game.
func (b *CommandBuffer) Flush(e *Engine) int {
	return b.Drain(e.Apply)
}

// Drain passes every queued command to apply in order and empties the buffer.
// It returns how many calls reported true.
func (b *CommandBuffer) Drain(apply func(Command) bool) int {
	applied := 0
	for _, cmd := range b.commands {
		if apply(cmd) {
			applied++
		}
	}
	b.commands = b.commands[:0]
	return applied
}

// Pop removes and returns the oldest queued command.
func (b *CommandBuffer) Pop() (Command, bool) {
	if len(b.commands) == 0 {
		return CommandNone, false
	}
	cmd := b.commands[0]
	b.commands = b.commands[1:]
	return cmd, true
}

// Discard empties the buffer without applying anything.
func (b *CommandBuffer) Discard() {
	b.commands = b.commands[:0]
}
