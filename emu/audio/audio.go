// Package audio plays the CHIP-8 tone through beep's speaker.
package audio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

const SampleRate = beep.SampleRate(44100)

// amplitude of the generated square wave
const level = 0.25

type Config struct {
	// frequency of the generated tone in Hz; ignored when File is set
	Tone float64
	// relative volume, 0 is unchanged, each step of 1 doubles or halves it
	Volume float64
	// mp3 or wav file looped in place of the generated tone
	File string
}

type Speaker struct {
	ctrl   *beep.Ctrl
	closer io.Closer
}

func New(cfg Config) (*Speaker, error) {
	var src beep.Streamer
	var closer io.Closer

	if cfg.File != "" {
		s, err := decodeFile(cfg.File)
		if err != nil {
			return nil, err
		}
		src, closer = s, s
	} else {
		if cfg.Tone <= 0 {
			return nil, fmt.Errorf("audio: tone must be positive, got %v", cfg.Tone)
		}
		src = Square(cfg.Tone, SampleRate)
	}

	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, fmt.Errorf("audio: %w", err)
	}

	ctrl := &beep.Ctrl{
		Streamer: &effects.Volume{Streamer: src, Base: 2, Volume: cfg.Volume},
		Paused:   true,
	}
	speaker.Play(ctrl)

	return &Speaker{ctrl: ctrl, closer: closer}, nil
}

func (s *Speaker) SetPlaying(on bool) {
	speaker.Lock()
	s.ctrl.Paused = !on
	speaker.Unlock()
}

// Close pauses the tone and releases the sound file, if any.
func (s *Speaker) Close() error {
	s.SetPlaying(false)
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

// Mute is the speaker for --mute.
type Mute struct{}

func (Mute) SetPlaying(bool) {}

// Square is an endless square wave.
func Square(freq float64, sr beep.SampleRate) beep.Streamer {
	period := float64(sr) / freq
	var pos float64
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := level
			if pos >= period/2 {
				v = -level
			}
			samples[i][0], samples[i][1] = v, v
			pos++
			if pos >= period {
				pos -= period
			}
		}
		return len(samples), true
	})
}

type loopedFile struct {
	beep.Streamer
	file beep.StreamSeekCloser
}

func (l *loopedFile) Close() error {
	return l.file.Close()
}

func decodeFile(path string) (*loopedFile, error) {
	var decode func(io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		decode = mp3.Decode
	case ".wav":
		decode = func(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
			return wav.Decode(rc)
		}
	default:
		return nil, fmt.Errorf("audio: %s: not an mp3 or wav file", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	s, format, err := decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: %s: %w", path, err)
	}

	var looped beep.Streamer = beep.Loop(-1, s)
	if format.SampleRate != SampleRate {
		looped = beep.Resample(4, format.SampleRate, SampleRate, looped)
	}
	return &loopedFile{Streamer: looped, file: s}, nil
}
