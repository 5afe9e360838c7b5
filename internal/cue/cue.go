package cue

import (
	"errors"
	"fmt"
	"io"
)

// ErrNoOutput is returned when the bell has nowhere to ring.
var ErrNoOutput = errors.New("cue output not configured")

// bel is the ASCII bell; terminals turn it into their configured alert sound.
const bel = "\a"

// Bell plays the completion cue by ringing the terminal bell on Out.
type Bell struct {
	Out io.Writer
}

// NewBell creates a bell writing to out.
func NewBell(out io.Writer) *Bell {
	return &Bell{Out: out}
}

// Play rings the bell once.
func (b *Bell) Play() error {
	if b == nil || b.Out == nil {
		return ErrNoOutput
	}
	if _, err := io.WriteString(b.Out, bel); err != nil {
		return fmt.Errorf("ring bell: %w", err)
	}
	return nil
}
