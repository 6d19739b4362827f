package io

import (
	"errors"
	"fmt"
	"io"
)

// Console collects the character stream of the output devices.
// Output and Log each receive a copy of the stream when set.
type Console struct {
	Output io.Writer // Host terminal.
	Log    io.Writer // UART log file.
}

func (con *Console) write(text []byte) (err error) {
	for _, w := range []io.Writer{con.Output, con.Log} {
		if w == nil {
			continue
		}
		_, werr := w.Write(text)
		if werr != nil {
			err = errors.Join(err, ErrConsoleWrite, werr)
		}
	}

	return
}

// SevenSegment shows the low 24 bits of value as six hex digits.
func (con *Console) SevenSegment(value uint32) error {
	return con.write(fmt.Appendf(nil, "7-Segment = %06x\n", value&0xffffff))
}

// Leds shows the low 10 bits of value.
func (con *Console) Leds(value uint32) error {
	return con.write(fmt.Appendf(nil, "LEDs = %x\n", value&0x3ff))
}

// Transmit sends a single character.
func (con *Console) Transmit(ch byte) error {
	return con.write([]byte{ch})
}
