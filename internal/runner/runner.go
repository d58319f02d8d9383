// Package runner drives the fetch, decode and execute cycle of the
// CHIP-8 core and gates the timer decrement to a fixed 60 Hz rate.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/chip8emu/internal/trace"
	"github.com/retroenv/retrogolib/log"
)

const (
	// timerPeriod is the fixed real-time rate at which the delay and
	// sound timers decrement, independent of instruction throughput.
	// Expressed as a duration so the period cannot truncate to zero.
	timerPeriod = time.Second / 60

	// frameDuration is the length of one controller frame. Each frame
	// polls input, executes an instruction batch and renders once.
	frameDuration = time.Second / 60
)

// Frontend is the display and input collaborator driven by the runner.
// It is polled and rendered once per frame and accessed from within
// instruction execution for key tests and pixel writes. A single shared
// resource, never accessed concurrently.
type Frontend interface {
	chip8.Display
	chip8.Input

	// Poll processes pending events and updates key and quit state.
	Poll()

	// Render draws the current framebuffer.
	Render() error

	// SetSoundPlaying enables audio output while the sound timer is
	// nonzero.
	SetSoundPlaying(playing bool)

	// ShouldQuit reports whether a quit was requested.
	ShouldQuit() bool
}

// Runner owns the machine state for the lifetime of a session and runs
// the two independent rates of the cycle: the unbounded instruction rate,
// approximated by a configurable instructions-per-frame batch, and the
// fixed 60 Hz timer rate.
type Runner struct {
	logger   *log.Logger
	state    *chip8.State
	executor *chip8.Executor
	frontend Frontend

	instructionsPerFrame int
	traceExecution       bool

	clock func() time.Time
}

// New returns a runner executing the given state against the frontend.
func New(logger *log.Logger, state *chip8.State, frontend Frontend, opts options.Emulator) *Runner {
	return &Runner{
		logger:   logger,
		state:    state,
		executor: chip8.NewExecutor(frontend, frontend),
		frontend: frontend,

		instructionsPerFrame: opts.InstructionsPerFrame,
		traceExecution:       opts.TraceExecution,

		clock: time.Now,
	}
}

// Run executes the session until the frontend requests a quit, the
// context is cancelled or a fatal error occurs. Decode and execution
// errors abort the run, there is no retry or instruction skipping.
func (r *Runner) Run(ctx context.Context) error {
	r.state.LastTimerTick = r.clock()

	ticker := time.NewTicker(frameDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		r.frontend.Poll()
		if r.frontend.ShouldQuit() {
			r.logger.Debug("quit requested")
			return nil
		}

		for i := 0; i < r.instructionsPerFrame; i++ {
			if err := r.step(); err != nil {
				return err
			}
		}

		r.updateTimers()
		r.frontend.SetSoundPlaying(r.state.SoundTimer > 0)

		if err := r.frontend.Render(); err != nil {
			return fmt.Errorf("rendering frame: %w", err)
		}
	}
}

// step runs a single fetch, decode and execute cycle. The program counter
// is advanced past the instruction before execution, so jumps overwrite
// it and the blocking key wait can step it back.
func (r *Runner) step() error {
	pc := r.state.PC
	opcode := r.state.FetchOpcode()
	r.state.PC += chip8.InstructionSize

	ins, err := chip8.Decode(opcode)
	if err != nil {
		return fmt.Errorf("decoding opcode at $%04X: %w", pc, err)
	}

	if r.traceExecution {
		r.logger.Debug("executing",
			log.Hex("pc", pc),
			log.String("instruction", trace.Format(opcode)),
		)
	}

	if err := r.executor.Execute(r.state, ins); err != nil {
		return fmt.Errorf("executing opcode $%04X at $%04X: %w", opcode, pc, err)
	}
	return nil
}

// updateTimers decrements both timers by one when at least one timer
// period has elapsed since the last decrement. At most one decrement is
// applied per check, even if multiple periods elapsed, to avoid runaway
// timer drops under scheduling jitter.
func (r *Runner) updateTimers() {
	now := r.clock()
	if now.Sub(r.state.LastTimerTick) < timerPeriod {
		return
	}

	if r.state.DelayTimer > 0 {
		r.state.DelayTimer--
	}
	if r.state.SoundTimer > 0 {
		r.state.SoundTimer--
	}
	r.state.LastTimerTick = now
}
