package io

import (
	"fmt"
	"io"
	"log"
)

// BlitOp is a blitter command, written to REG_BLIT_CMD.
type BlitOp uint32

//go:generate go tool stringer -linecomment -type=BlitOp
const (
	BLIT_OP_SET_DEST          = BlitOp(0x01) // dest
	BLIT_OP_SET_SRC           = BlitOp(0x02) // src
	BLIT_OP_FILL_RECT         = BlitOp(0x03) // fill
	BLIT_OP_COPY_RECT         = BlitOp(0x04) // copy
	BLIT_OP_COPY_RECT_REVERSE = BlitOp(0x05) // copyrev
	BLIT_OP_SET_CLIP_RECT     = BlitOp(0x06) // clip
	BLIT_OP_SET_TRANS_COLOR   = BlitOp(0x07) // trans
	BLIT_OP_SET_FONT          = BlitOp(0x08) // font
	BLIT_OP_DRAW_CHAR         = BlitOp(0x09) // char
	BLIT_OP_DRAW_LINE         = BlitOp(0x0A) // line
)

// ArgX is the low 16 bits of a blitter argument.
func ArgX(arg uint32) uint16 {
	return uint16(arg & 0xffff)
}

// ArgY is the high 16 bits of a blitter argument.
func ArgY(arg uint32) uint16 {
	return uint16((arg >> 16) & 0xffff)
}

// MakeArg packs an X/Y pair into a blitter argument.
func MakeArg(x, y uint16) uint32 {
	return uint32(x) | (uint32(y) << 16)
}

// Surface is a blitter source or destination bitmap.
type Surface struct {
	Addr   uint32
	Stride uint16 // Bytes per row.
}

// Font describes the bitmap font used by BLIT_OP_DRAW_CHAR.
type Font struct {
	Addr      uint32
	Width     uint16
	Height    uint16
	Stride    uint16 // Bytes per row.
	CharBytes uint16 // Bytes per character.
}

// Blitter records the commands written to the blitter registers.
// No pixels are drawn; each command appends one BlitEvent.
type Blitter struct {
	Verbose bool
	Log     io.Writer // If set, receives one line per command.

	Arg        [3]uint32 // Argument latches.
	Dest       Surface
	Src        Surface
	Font       Font
	Clip       [4]uint16 // x1, y1, x2, y2
	TransColor uint16

	Events []BlitEvent
}

// Reset clears the latches, surfaces and recorded events.
func (blit *Blitter) Reset() {
	clear(blit.Arg[:])
	blit.Dest = Surface{}
	blit.Src = Surface{}
	blit.Font = Font{}
	blit.Clip = [4]uint16{}
	blit.TransColor = 0
	blit.Events = nil
}

// Latch updates the bits of an argument register selected by mask.
func (blit *Blitter) Latch(index int, value uint32, mask uint32) {
	blit.Arg[index] = (blit.Arg[index] & ^mask) | (value & mask)
}

// Dispatch executes a command using the latched arguments.
func (blit *Blitter) Dispatch(op BlitOp) (event BlitEvent) {
	a1, a2, a3 := blit.Arg[0], blit.Arg[1], blit.Arg[2]

	event.Op = op
	switch op {
	case BLIT_OP_SET_DEST:
		blit.Dest = Surface{Addr: a1, Stride: ArgX(a2)}
		event.Addr = blit.Dest.Addr
		event.Stride = blit.Dest.Stride
	case BLIT_OP_SET_SRC:
		blit.Src = Surface{Addr: a1, Stride: ArgX(a2)}
		event.Addr = blit.Src.Addr
		event.Stride = blit.Src.Stride
	case BLIT_OP_FILL_RECT:
		event.Width, event.Height = ArgX(a1), ArgY(a1)
		event.X, event.Y = ArgX(a2), ArgY(a2)
		event.Color = ArgX(a3)
	case BLIT_OP_COPY_RECT, BLIT_OP_COPY_RECT_REVERSE:
		event.Width, event.Height = ArgX(a1), ArgY(a1)
		event.X, event.Y = ArgX(a2), ArgY(a2)
		event.SrcX, event.SrcY = ArgX(a3), ArgY(a3)
		event.From = blit.Src.Addr
		event.To = blit.Dest.Addr
	case BLIT_OP_SET_CLIP_RECT:
		event.X, event.Y = ArgX(a1), ArgY(a1)
		event.X2, event.Y2 = ArgX(a2), ArgY(a2)
		blit.Clip = [4]uint16{event.X, event.Y, event.X2, event.Y2}
	case BLIT_OP_SET_TRANS_COLOR:
		event.Color = ArgX(a3)
		blit.TransColor = event.Color
	case BLIT_OP_SET_FONT:
		blit.Font = Font{
			Addr:      a1,
			Width:     ArgX(a2),
			Height:    ArgY(a2),
			Stride:    ArgX(a3),
			CharBytes: ArgY(a3),
		}
		event.Addr = blit.Font.Addr
		event.Width, event.Height = blit.Font.Width, blit.Font.Height
		event.Stride = blit.Font.Stride
		event.CharBytes = blit.Font.CharBytes
	case BLIT_OP_DRAW_CHAR:
		event.X = ArgX(a1)
		event.Y, event.Char = ArgX(a2), ArgY(a2)
		event.Color, event.BgColor = ArgX(a3), ArgY(a3)
	case BLIT_OP_DRAW_LINE:
		event.X, event.Y = ArgX(a1), ArgY(a1)
		event.X2, event.Y2 = ArgX(a2), ArgY(a2)
		event.Color = ArgX(a3)
	}

	blit.Events = append(blit.Events, event)

	if blit.Verbose {
		log.Printf("io: blit %v", event)
	}

	if blit.Log != nil {
		_, err := fmt.Fprintln(blit.Log, event.String())
		if err != nil {
			log.Printf("io: blit log: %v", err)
		}
	}

	return
}
