package tetris

import (
	"context"
	"time"
)

// DriverStats counts what a Driver has done since it was created.
type DriverStats struct {
	Ticks       int64
	Commands    int64
	Rejected    int64
	Queued      int64
	Locks       int64
	Clears      int64
	RowsCleared int64
	LevelUps    int64
	GameOvers   int64
	// LastInterval is the drop interval the tick timer is running at.
	LastInterval time.Duration
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithUpdateFunc registers fn to receive a snapshot after every step that
// may have changed the game. Run calls fn on its own goroutine.
func WithUpdateFunc(fn func(Snapshot)) DriverOption {
	return func(d *Driver) {
		d.onUpdate = fn
	}
}

// WithInputBuffer sets the capacity of the channel behind Send.
func WithInputBuffer(size int) DriverOption {
	return func(d *Driver) {
		d.input = make(chan Command, size)
	}
}

// Driver is the clock around an Engine. It calls Tick at the current drop
// interval, restarting the cadence whenever the interval changes, resolves
// marked rows after Config.ClearDelay and forwards player commands.
//
// A Driver is used either frame-stepped, by calling Advance and Do from a game
// loop, or in real time, by calling Run and feeding it with Send.
type Driver struct {
	engine   *Engine
	input    chan Command
	queue    CommandBuffer
	onUpdate func(Snapshot)

	interval     time.Duration
	dropElapsed  time.Duration
	clearElapsed time.Duration
	clearing     bool
	restart      bool

	stats DriverStats
}

// NewDriver wraps engine. The engine must not be touched by anything else
// while Run is active.
func NewDriver(engine *Engine, opts ...DriverOption) *Driver {
	d := &Driver{
		engine:   engine,
		input:    make(chan Command, 64),
		interval: engine.DropInterval(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.stats.LastInterval = d.interval
	return d
}

// Engine returns the driven engine.
func (d *Driver) Engine() *Engine { return d.engine }

// Stats returns a copy of the counters.
func (d *Driver) Stats() DriverStats { return d.stats }

// Pending returns the number of commands held while rows are clearing.
func (d *Driver) Pending() int { return d.queue.Len() }

// Send hands a command to a running Run loop. It never blocks and reports
// false when the input buffer is full.
func (d *Driver) Send(cmd Command) bool {
	select {
	case d.input <- cmd:
		return true
	default:
		return false
	}
}

// Do applies a player command now. While rows are clearing and
// Config.QueueDuringClear is set, movement commands are held and replayed
// after the board is compacted; Reset always goes through and drops anything
// held.
func (d *Driver) Do(cmd Command) bool {
	if cmd == CommandReset {
		d.queue.Discard()
		d.engine.Reset()
		d.stats.Commands++
		d.sync()
		return true
	}
	if d.holding() {
		d.queue.Push(cmd)
		d.stats.Queued++
		return false
	}

	ok := d.apply(cmd)
	d.stats.Commands++
	if !ok {
		d.stats.Rejected++
	}
	d.sync()
	return ok
}

// Advance moves the clock forward by dt, running every tick and clear that
// falls due. It is meant to be called once per frame.
func (d *Driver) Advance(dt time.Duration) {
	d.ensurePiece()

	if d.clearing {
		d.clearElapsed += dt
		if d.clearElapsed >= d.engine.Config().ClearDelay {
			d.resolve()
		}
	}

	if d.holding() {
		d.sync()
		return
	}

	d.dropElapsed += dt
	for d.dropElapsed >= d.interval && !d.engine.GameOver() && !d.holding() {
		d.dropElapsed -= d.interval
		d.tick()
		if d.sync() {
			break
		}
	}
	if d.holding() {
		d.dropElapsed = 0
	}
	d.sync()
}

// Run drives the engine in real time until ctx is done, applying commands
// received through Send. It returns ctx.Err().
func (d *Driver) Run(ctx context.Context) error {
	d.ensurePiece()
	d.publish()

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	var clearTimer *time.Timer
	var clearC <-chan time.Time
	defer func() {
		if clearTimer != nil {
			clearTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !d.holding() {
				d.tick()
			}
		case cmd := <-d.input:
			d.Do(cmd)
		case <-clearC:
			clearC = nil
			d.resolve()
		}

		d.sync()
		if d.restart {
			d.restart = false
			ticker.Reset(d.interval)
		}
		if clearC != nil && !d.clearing {
			clearTimer.Stop()
			clearC = nil
		}
		if clearC == nil && d.clearing {
			clearTimer = time.NewTimer(d.engine.Config().ClearDelay)
			clearC = clearTimer.C
		}
		d.ensurePiece()
		d.publish()
	}
}

func (d *Driver) holding() bool {
	return d.engine.Config().QueueDuringClear && d.engine.Clearing()
}

func (d *Driver) tick() {
	d.apply(CommandTick)
	d.stats.Ticks++
}

// apply runs cmd and records the side effects visible on the engine.
func (d *Driver) apply(cmd Command) bool {
	e := d.engine
	pieces, level, over := e.Pieces(), e.Level(), e.GameOver()

	ok := e.Apply(cmd)

	d.stats.Locks += int64(e.Pieces() - pieces)
	d.stats.LevelUps += int64(max(e.Level()-level, 0))
	if e.GameOver() && !over {
		d.stats.GameOvers++
	}
	return ok
}

func (d *Driver) resolve() {
	e := d.engine
	level := e.Level()
	if n := e.ResolveLineClear(); n > 0 {
		d.stats.Clears++
		d.stats.RowsCleared += int64(n)
	}
	d.stats.LevelUps += int64(max(e.Level()-level, 0))
	d.clearElapsed = 0
	d.clearing = e.Clearing()

	// Replay stops when a replayed command starts another clear; the rest
	// waits for that one.
	for !d.holding() {
		cmd, ok := d.queue.Pop()
		if !ok {
			break
		}
		d.stats.Commands++
		if !d.apply(cmd) {
			d.stats.Rejected++
		}
	}
}

// sync picks up interval and clearing changes after the engine was touched.
// It reports whether the drop interval changed, in which case the tick
// cadence restarts.
func (d *Driver) sync() bool {
	if c := d.engine.Clearing(); c != d.clearing {
		d.clearing = c
		d.clearElapsed = 0
	}
	if d.engine.DropInterval() == d.interval {
		return false
	}
	d.interval = d.engine.DropInterval()
	d.dropElapsed = 0
	d.restart = true
	d.stats.LastInterval = d.interval
	return true
}

func (d *Driver) ensurePiece() {
	e := d.engine
	if _, ok := e.Active(); ok || e.GameOver() {
		return
	}
	e.Spawn()
	if e.GameOver() {
		d.stats.GameOvers++
	}
}

func (d *Driver) publish() {
	if d.onUpdate != nil {
		d.onUpdate(d.engine.Snapshot())
	}
}
