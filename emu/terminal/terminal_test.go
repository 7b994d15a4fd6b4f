package terminal

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/logger"
)

func TestFrame(t *testing.T) {
	screen := make([]bool, cpu.ScreenWidth*cpu.ScreenHeight)
	screen[0] = true                 // row 0, col 0
	screen[cpu.ScreenWidth+1] = true // row 1, col 1
	screen[2] = true                 // rows 0 and 1, col 2
	screen[cpu.ScreenWidth+2] = true

	lines := strings.Split(Frame(screen), "\r\n")
	assert.Equal(t, cpu.ScreenHeight/2+1, len(lines))
	assert.Equal(t, "", lines[len(lines)-1])

	first := []rune(lines[0])
	assert.Equal(t, cpu.ScreenWidth, len(first))
	assert.Equal(t, "▀▄█ ", string(first[:4]))
	assert.Equal(t, "", strings.TrimSpace(lines[1]))
}

func TestKeyHold(t *testing.T) {
	term := newTerminal(&bytes.Buffer{}, 100*time.Millisecond, nil)
	now := time.Unix(1000, 0)
	term.now = func() time.Time { return now }

	term.input([]byte("Qv"))
	keys := term.Keys()
	assert.True(t, keys[0x4])
	assert.True(t, keys[0xF])
	assert.False(t, keys[0x0])

	now = now.Add(99 * time.Millisecond)
	assert.True(t, term.Keys()[0x4])
	now = now.Add(time.Millisecond)
	assert.False(t, term.Keys()[0x4])
}

func TestCloseKeys(t *testing.T) {
	term := newTerminal(&bytes.Buffer{}, 0, nil)
	assert.Equal(t, DefaultKeyHold, term.keyHold)
	assert.False(t, term.Closed())

	term.input([]byte{'1', ctrlC})
	assert.True(t, term.Closed())
}

func TestDraw(t *testing.T) {
	var out bytes.Buffer
	term := newTerminal(&out, 0, nil)
	term.Draw(make([]bool, cpu.ScreenWidth*cpu.ScreenHeight))
	assert.True(t, strings.HasPrefix(out.String(), "\x1b[H"))
	assert.False(t, term.Closed())
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("input/output error")
}

func TestDrawWriteFailure(t *testing.T) {
	var log bytes.Buffer
	logger.SetOutput(&log)
	defer logger.SetOutput(os.Stderr)

	term := newTerminal(brokenWriter{}, 0, nil)
	term.Draw(make([]bool, cpu.ScreenWidth*cpu.ScreenHeight))

	assert.True(t, term.Closed())
	assert.True(t, strings.Contains(log.String(), "input/output error"))
}

func TestParseKeys(t *testing.T) {
	keys, err := ParseKeys(map[string]string{"5": "I", "0": "m"})
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x5), keys['i'])
	assert.Equal(t, uint8(0x0), keys['m'])

	// the old bindings are gone, the rest are untouched
	_, ok := keys['w']
	assert.False(t, ok)
	_, ok = keys['x']
	assert.False(t, ok)
	assert.Equal(t, uint8(0x1), keys['1'])
	assert.Equal(t, len(DefaultKeys), len(keys))

	tests := []struct {
		name      string
		overrides map[string]string
	}{
		{"key out of range", map[string]string{"10": "q"}},
		{"key not hex", map[string]string{"g": "q"}},
		{"more than one character", map[string]string{"1": "qq"}},
		{"escape", map[string]string{"1": "\x1b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseKeys(tt.overrides)
			assert.True(t, err != nil)
		})
	}
}

func TestCustomKeys(t *testing.T) {
	term := newTerminal(&bytes.Buffer{}, time.Second, map[byte]uint8{'j': 0x3})
	term.input([]byte("j1"))
	keys := term.Keys()
	assert.True(t, keys[0x3])
	assert.False(t, keys[0x1])
}
