package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetLevel(Info)

	SetLevel(Info)
	Debugf("cpu", "hidden")
	Logf("cpu", "pc %03X", 0x200)
	Errorf("runner", "fault\nat %d", 3)

	out := buf.String()
	assert.False(t, strings.Contains(out, "hidden"))
	assert.True(t, strings.Contains(out, "pc 200"))
	assert.True(t, strings.Contains(out, "fault at 3"))
	assert.True(t, strings.Contains(out, "runner"))

	buf.Reset()
	SetLevel(Debug)
	Debugf("cpu", "shown")
	assert.True(t, strings.Contains(buf.String(), "shown"))

	buf.Reset()
	SetLevel(Off)
	Errorf("cpu", "nothing")
	assert.Equal(t, 0, buf.Len())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		err  bool
	}{
		{"debug", Debug, false},
		{" INFO ", Info, false},
		{"error", Error, false},
		{"off", Off, false},
		{"verbose", Info, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			l, err := ParseLevel(tt.in)
			if tt.err {
				assert.True(t, err != nil)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, l)
		})
	}
}
