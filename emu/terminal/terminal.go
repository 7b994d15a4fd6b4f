// Package terminal is a front end for machines without a window system. The
// display is drawn with half-block characters, two CHIP-8 rows per line, and
// the keypad is read from the tty in raw mode.
package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/term"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/logger"
)

// DefaultKeyHold is how long a key stays down after the terminal last sent it.
// Terminals report presses and autorepeat but never releases.
const DefaultKeyHold = time.Second / 5

const (
	ctrlC = 0x03
	esc   = 0x1B
)

// DefaultKeys maps typed characters to hex keys, in the same layout as the
// windowed front end.
var DefaultKeys = map[byte]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// ParseKeys applies overrides to DefaultKeys. Keys are hex digits, values are
// the single character that presses them. The character previously bound to
// an overridden key is unbound.
func ParseKeys(overrides map[string]string) (map[byte]uint8, error) {
	keys := make(map[byte]uint8, len(DefaultKeys))
	for c, k := range DefaultKeys {
		keys[c] = k
	}
	for k, chars := range overrides {
		key, err := strconv.ParseUint(k, 16, 8)
		if err != nil || key > 0xF {
			return nil, fmt.Errorf("terminal keys: %q is not a hex key", k)
		}
		if len(chars) != 1 || chars[0] == ctrlC || chars[0] == esc {
			return nil, fmt.Errorf("terminal keys: %q is not a single character for key %X", chars, key)
		}
		for c, bound := range keys {
			if bound == uint8(key) {
				delete(keys, c)
			}
		}
		keys[lower(chars[0])] = uint8(key)
	}
	return keys, nil
}

type Terminal struct {
	tty     *term.Term
	out     io.Writer
	keyHold time.Duration
	keys    map[byte]uint8

	mu       sync.Mutex
	lastSeen [16]time.Time
	closed   bool

	now func() time.Time
}

// Open puts the tty at path into raw mode and starts reading keys from it.
// A nil keys uses DefaultKeys.
func Open(path string, keyHold time.Duration, keys map[byte]uint8) (*Terminal, error) {
	tty, err := term.Open(path, term.RawMode)
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}

	t := newTerminal(tty, keyHold, keys)
	t.tty = tty

	// clear screen, hide cursor
	if _, err := tty.Write([]byte("\x1b[2J\x1b[?25l")); err != nil {
		tty.Restore()
		tty.Close()
		return nil, fmt.Errorf("terminal: %w", err)
	}

	go t.readKeys()
	return t, nil
}

func newTerminal(out io.Writer, keyHold time.Duration, keys map[byte]uint8) *Terminal {
	if keyHold <= 0 {
		keyHold = DefaultKeyHold
	}
	if keys == nil {
		keys = DefaultKeys
	}
	return &Terminal{
		out:     out,
		keyHold: keyHold,
		keys:    keys,
		now:     time.Now,
	}
}

func (t *Terminal) readKeys() {
	buf := make([]byte, 16)
	for {
		n, err := t.tty.Read(buf)
		if err != nil {
			t.mu.Lock()
			t.closed = true
			t.mu.Unlock()
			return
		}
		t.input(buf[:n])
	}
}

func (t *Terminal) input(b []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	for _, c := range b {
		switch c {
		case ctrlC, esc:
			t.closed = true
			continue
		}
		if k, ok := t.keys[lower(c)]; ok {
			t.lastSeen[k] = now
		}
	}
}

func (t *Terminal) Closed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}

func (t *Terminal) Keys() [16]bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	var keys [16]bool
	now := t.now()
	for k, seen := range t.lastSeen {
		keys[k] = !seen.IsZero() && now.Sub(seen) < t.keyHold
	}
	return keys
}

// Draw writes the frame. A failed write closes the display.
func (t *Terminal) Draw(screen []bool) {
	if _, err := io.WriteString(t.out, "\x1b[H"+Frame(screen)); err != nil {
		logger.Errorf("terminal", "draw: %v", err)
		t.mu.Lock()
		t.closed = true
		t.mu.Unlock()
	}
}

// Close shows the cursor again and restores the tty's original mode.
func (t *Terminal) Close() error {
	_, werr := io.WriteString(t.out, "\x1b[?25h\r\n")
	if err := t.tty.Restore(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := t.tty.Close(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if werr != nil {
		return fmt.Errorf("terminal: %w", werr)
	}
	return nil
}

// Frame renders a 64x32 buffer as 16 lines of half blocks. Lines end in CRLF
// since the tty is raw.
func Frame(screen []bool) string {
	var s strings.Builder
	for row := 0; row < cpu.ScreenHeight; row += 2 {
		for col := 0; col < cpu.ScreenWidth; col++ {
			top := screen[row*cpu.ScreenWidth+col]
			bottom := screen[(row+1)*cpu.ScreenWidth+col]
			switch {
			case top && bottom:
				s.WriteString("█")
			case top:
				s.WriteString("▀")
			case bottom:
				s.WriteString("▄")
			default:
				s.WriteByte(' ')
			}
		}
		s.WriteString("\r\n")
	}
	return s.String()
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
