// Package runner paces a CHIP-8 machine: it feeds it keypad state, runs a
// batch of instructions per frame, ticks the timers and hands the screen and
// sound state to the front end.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/logger"
)

// Display shows the screen buffer and supplies the hex keypad.
type Display interface {
	Closed() bool
	Keys() [16]bool
	Draw(screen []bool)
}

// Speaker plays the tone while the sound timer is running.
type Speaker interface {
	SetPlaying(on bool)
}

// Config sets the two clocks of the machine.
type Config struct {
	// instructions per second
	Clock int
	// timer decrements (and frames) per second, normally 60
	Refresh int
}

type Runner struct {
	emu     *cpu.EMU
	display Display
	speaker Speaker

	refresh       int
	cyclesPerTick int
	frame         int
	playing       bool
}

func New(emu *cpu.EMU, display Display, speaker Speaker, cfg Config) (*Runner, error) {
	if cfg.Clock <= 0 {
		return nil, fmt.Errorf("clock must be positive, got %d", cfg.Clock)
	}
	if cfg.Refresh <= 0 {
		return nil, fmt.Errorf("refresh rate must be positive, got %d", cfg.Refresh)
	}

	cycles := cfg.Clock / cfg.Refresh
	if cycles < 1 {
		cycles = 1
	}

	return &Runner{
		emu:           emu,
		display:       display,
		speaker:       speaker,
		refresh:       cfg.Refresh,
		cyclesPerTick: cycles,
	}, nil
}

// Frame advances the machine by one timer period.
func (r *Runner) Frame() error {
	r.frame++

	keys := r.display.Keys()
	for k, pressed := range keys {
		r.emu.SetKey(uint8(k), pressed)
	}

	for i := 0; i < r.cyclesPerTick; i++ {
		if err := r.emu.Tick(); err != nil {
			return fmt.Errorf("frame %d: %w", r.frame, err)
		}
	}

	r.emu.TickTimers()

	sounding := r.emu.Sounding()
	if sounding != r.playing {
		r.playing = sounding
		r.speaker.SetPlaying(sounding)
	}

	r.display.Draw(r.emu.Screen())
	return nil
}

// Run calls Frame at the refresh rate until the display is closed, the
// context is cancelled or the machine faults.
func (r *Runner) Run(ctx context.Context) error {
	logger.Debugf("runner", "%d instructions per frame at %dHz", r.cyclesPerTick, r.refresh)

	ticker := time.NewTicker(time.Second / time.Duration(r.refresh))
	defer ticker.Stop()
	defer r.silence()

	for !r.display.Closed() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		if err := r.Frame(); err != nil {
			return err
		}
	}

	logger.Debugf("runner", "display closed after %d frames", r.frame)
	return nil
}

func (r *Runner) silence() {
	if r.playing {
		r.playing = false
		r.speaker.SetPlaying(false)
	}
}
