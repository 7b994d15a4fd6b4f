package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"os/signal"
	"syscall"

	"github.com/faiface/pixel/pixelgl"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/beanboi7/chyp8/emu/audio"
	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/emu/runner"
	"github.com/beanboi7/chyp8/emu/screen"
	"github.com/beanboi7/chyp8/emu/terminal"
	"github.com/beanboi7/chyp8/logger"
)

var startCmd = &cobra.Command{
	Use:          "start `path/ROM`",
	Short:        "load and start the Emulator",
	Args:         cobra.ExactArgs(1),
	RunE:         Start,
	SilenceUsage: true,
}

// chyp8 start 'path/to/ROM' -c 700 -r 60
func Start(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(viper.GetViper())
	if err != nil {
		return err
	}

	romPath := args[0]
	rom, err := ioutil.ReadFile(romPath)
	if err != nil {
		return err
	}

	emu := cpu.NewEMU()
	if s.seed != 0 {
		emu.SetSeed(s.seed)
	}
	if err := emu.LoadROM(rom); err != nil {
		return err
	}
	logger.Logf("start", "loaded %s (%d bytes)", romPath, len(rom))

	spk, closeSpeaker, err := newSpeaker(s)
	if err != nil {
		return err
	}
	defer closeSpeaker()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch s.display {
	case displayTerminal:
		err = runTerminal(ctx, emu, spk, s)
	default:
		// pixelgl owns the main thread while the window is open
		pixelgl.Run(func() {
			err = runWindow(ctx, emu, spk, s)
		})
	}

	return haltError(err)
}

// haltError turns the end of a run into Start's result. Interrupts are a
// normal exit; Execute reports anything else.
func haltError(err error) error {
	if err == nil || errors.Is(err, context.Canceled) {
		return nil
	}
	return fmt.Errorf("error running the Emulator: %w", err)
}

func newSpeaker(s settings) (runner.Speaker, func(), error) {
	if s.mute {
		return audio.Mute{}, func() {}, nil
	}

	spk, err := audio.New(audio.Config{Tone: s.tone, Volume: s.volume, File: s.sound})
	if err != nil {
		// a machine without a sound device can still run
		logger.Errorf("audio", "%v, continuing without sound", err)
		return audio.Mute{}, func() {}, nil
	}
	return spk, func() {
		if err := spk.Close(); err != nil {
			logger.Errorf("audio", "%v", err)
		}
	}, nil
}

func runWindow(ctx context.Context, emu *cpu.EMU, spk runner.Speaker, s settings) error {
	km, err := screen.ParseKeyMap(s.keymap)
	if err != nil {
		return err
	}
	win, err := screen.NewWindow(screen.Config{
		Scale:      s.scale,
		Foreground: s.foreground,
		Background: s.background,
		KeyMap:     km,
	})
	if err != nil {
		return err
	}
	defer win.Destroy()

	r, err := runner.New(emu, win, spk, runner.Config{Clock: s.clock, Refresh: s.refresh})
	if err != nil {
		return err
	}
	return r.Run(ctx)
}

func runTerminal(ctx context.Context, emu *cpu.EMU, spk runner.Speaker, s settings) error {
	keys, err := terminal.ParseKeys(s.termKeys)
	if err != nil {
		return err
	}
	t, err := terminal.Open(s.tty, s.keyHold, keys)
	if err != nil {
		return err
	}
	defer func() {
		if err := t.Close(); err != nil {
			logger.Errorf("terminal", "%v", err)
		}
	}()

	r, err := runner.New(emu, t, spk, runner.Config{Clock: s.clock, Refresh: s.refresh})
	if err != nil {
		return err
	}
	return r.Run(ctx)
}

func init() {
	setDefaults(viper.GetViper())

	flags := startCmd.Flags()
	flags.IntP("clock", "c", 700, "instructions executed per second")
	flags.IntP("refresh", "r", 60, "sets the refresh rate of the display and timers in Hz")
	flags.StringP("display", "d", displayWindow, "window or terminal")
	flags.Float64P("scale", "s", 10, "window pixels per Chip-8 pixel")
	flags.Int64("seed", 0, "seed for the RND instruction, 0 picks one from the clock")
	flags.Bool("mute", false, "disable sound")
	flags.Float64("tone", 440, "frequency of the beep in Hz")
	flags.String("sound", "", "mp3 or wav file to loop in place of the beep")

	for key, flag := range map[string]string{
		"clock":      "clock",
		"refresh":    "refresh",
		"display":    "display",
		"scale":      "scale",
		"seed":       "seed",
		"audio.mute": "mute",
		"audio.tone": "tone",
		"audio.file": "sound",
	} {
		cobra.CheckErr(viper.BindPFlag(key, flags.Lookup(flag)))
	}
}
