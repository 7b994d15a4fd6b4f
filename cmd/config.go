package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	displayWindow   = "window"
	displayTerminal = "terminal"
)

// settings is everything start needs, resolved from flags, environment and
// the config file.
type settings struct {
	clock   int
	refresh int
	seed    int64

	display    string
	scale      float64
	foreground string
	background string
	keymap     map[string]string
	tty        string
	termKeys   map[string]string
	keyHold    time.Duration

	mute   bool
	tone   float64
	volume float64
	sound  string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("clock", 700)
	v.SetDefault("refresh", 60)
	v.SetDefault("seed", 0)
	v.SetDefault("display", displayWindow)
	v.SetDefault("scale", 10.0)
	v.SetDefault("foreground", "white")
	v.SetDefault("background", "black")
	v.SetDefault("terminal.tty", "/dev/tty")
	v.SetDefault("terminal.keyhold", "200ms")
	v.SetDefault("audio.mute", false)
	v.SetDefault("audio.tone", 440.0)
	v.SetDefault("audio.volume", 0.0)
	v.SetDefault("audio.file", "")
}

func loadSettings(v *viper.Viper) (settings, error) {
	s := settings{
		clock:      v.GetInt("clock"),
		refresh:    v.GetInt("refresh"),
		seed:       v.GetInt64("seed"),
		display:    strings.ToLower(v.GetString("display")),
		scale:      v.GetFloat64("scale"),
		foreground: v.GetString("foreground"),
		background: v.GetString("background"),
		keymap:     v.GetStringMapString("keymap"),
		tty:        v.GetString("terminal.tty"),
		termKeys:   v.GetStringMapString("terminal.keymap"),
		keyHold:    v.GetDuration("terminal.keyhold"),
		mute:       v.GetBool("audio.mute"),
		tone:       v.GetFloat64("audio.tone"),
		volume:     v.GetFloat64("audio.volume"),
		sound:      v.GetString("audio.file"),
	}

	switch s.display {
	case displayWindow, displayTerminal:
	default:
		return s, fmt.Errorf("unknown display %q, expected %q or %q", s.display, displayWindow, displayTerminal)
	}
	if s.clock <= 0 || s.refresh <= 0 {
		return s, fmt.Errorf("clock and refresh must be positive, got %d and %d", s.clock, s.refresh)
	}
	return s, nil
}

// loadDotEnv exports the variables in a .env file. Variables already in the
// environment win.
func loadDotEnv(path string) error {
	env := viper.New()
	env.SetConfigFile(path)
	env.SetConfigType("env")
	if err := env.ReadInConfig(); err != nil {
		return err
	}

	for k, val := range env.AllSettings() {
		name := strings.ToUpper(k)
		if _, set := os.LookupEnv(name); set {
			continue
		}
		if err := os.Setenv(name, fmt.Sprint(val)); err != nil {
			return err
		}
	}
	return nil
}
