package cue

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/balkashynov/zentime/internal/logfields"
)

//go:embed chime.wav
var chimeWAV []byte

// Player plays the completion cue.
type Player interface {
	Play() error
}

// Sound plays the embedded chime through the system speaker.
type Sound struct {
	buffer *beep.Buffer
}

var (
	speakerOnce sync.Once
	speakerErr  error
)

// initSpeaker opens the audio device once per process.
var initSpeaker = func(format beep.Format) error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10))
	})
	return speakerErr
}

// NewSound decodes the chime and opens the speaker.
func NewSound() (*Sound, error) {
	buffer, err := decodeChime()
	if err != nil {
		return nil, err
	}
	if err := initSpeaker(buffer.Format()); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Sound{buffer: buffer}, nil
}

// Play starts the chime and returns at once.
func (s *Sound) Play() error {
	if s == nil || s.buffer == nil {
		return ErrNoOutput
	}
	speaker.Play(s.buffer.Streamer(0, s.buffer.Len()))
	return nil
}

// Open returns the speaker-backed Sound, or a Bell ringing on fallback when
// no audio device is available.
func Open(fallback io.Writer, logger *slog.Logger) Player {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	sound, err := NewSound()
	if err != nil {
		logger.Warn("Audio unavailable, using terminal bell", logfields.Error(err))
		return NewBell(fallback)
	}
	return sound
}

func decodeChime() (*beep.Buffer, error) {
	streamer, format, err := wav.Decode(bytes.NewReader(chimeWAV))
	if err != nil {
		return nil, fmt.Errorf("decode chime: %w", err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	return buffer, nil
}
