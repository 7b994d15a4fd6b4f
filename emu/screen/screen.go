// Package screen is the windowed front end: it draws the CHIP-8 display with
// pixel and reads the hex keypad from the keyboard. NewWindow must be called
// from inside pixelgl.Run.
package screen

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"

	"github.com/beanboi7/chyp8/emu/cpu"
)

type Config struct {
	// window pixels per CHIP-8 pixel
	Scale float64
	// colornames, e.g. "white", "limegreen"
	Foreground string
	Background string
	KeyMap     KeyMap
}

type Window struct {
	*pixelgl.Window
	KeyMap KeyMap

	scale  float64
	fg, bg color.Color
	imd    *imdraw.IMDraw
}

func NewWindow(cfg Config) (*Window, error) {
	if cfg.Scale <= 0 {
		return nil, fmt.Errorf("scale must be positive, got %v", cfg.Scale)
	}
	fg, err := parseColor(cfg.Foreground)
	if err != nil {
		return nil, err
	}
	bg, err := parseColor(cfg.Background)
	if err != nil {
		return nil, err
	}

	wcfg := pixelgl.WindowConfig{
		Title:  "Chyp8",
		Bounds: pixel.R(0, 0, cpu.ScreenWidth*cfg.Scale, cpu.ScreenHeight*cfg.Scale),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(wcfg)
	if err != nil {
		return nil, fmt.Errorf("screen: %w", err)
	}

	return &Window{
		Window: win,
		KeyMap: cfg.KeyMap,
		scale:  cfg.Scale,
		fg:     fg,
		bg:     bg,
		imd:    imdraw.New(nil),
	}, nil
}

// Closed is true once the window is closed or Escape is pressed.
func (w *Window) Closed() bool {
	if w.Pressed(pixelgl.KeyEscape) {
		w.SetClosed(true)
	}
	return w.Window.Closed()
}

func (w *Window) Keys() [16]bool {
	var keys [16]bool
	for k, b := range w.KeyMap {
		keys[k] = w.Pressed(b)
	}
	return keys
}

// Draw renders the buffer and polls window events. Row 0 is the top row.
func (w *Window) Draw(screen []bool) {
	w.Clear(w.bg)
	w.imd.Clear()
	w.imd.Color = w.fg
	for i, lit := range screen {
		if !lit {
			continue
		}
		col := float64(i % cpu.ScreenWidth)
		row := float64(cpu.ScreenHeight - 1 - i/cpu.ScreenWidth)
		w.imd.Push(pixel.V(col*w.scale, row*w.scale), pixel.V((col+1)*w.scale, (row+1)*w.scale))
		w.imd.Rectangle(0)
	}
	w.imd.Draw(w)
	w.Update()
}

func parseColor(name string) (color.Color, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}
