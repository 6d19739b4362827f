package io

import (
	"fmt"
)

// BlitEvent is the record of a single blitter command.
// Fields not used by Op are zero.
type BlitEvent struct {
	Op BlitOp

	X, Y          uint16 // Rectangle origin, destination, character cell or line start.
	X2, Y2        uint16 // Clip rectangle or line end.
	Width, Height uint16
	SrcX, SrcY    uint16
	Color         uint16
	BgColor       uint16
	Char          uint16

	Addr      uint32 // Surface or font address.
	Stride    uint16 // Surface or font bytes per row.
	CharBytes uint16 // Font bytes per character.

	From uint32 // Source surface address of a copy.
	To   uint32 // Destination surface address of a copy.
}

// String formats the event as a blit log line.
func (ev BlitEvent) String() string {
	switch ev.Op {
	case BLIT_OP_SET_DEST:
		return fmt.Sprintf("blit dest %x %d", ev.Addr, ev.Stride)
	case BLIT_OP_SET_SRC:
		return fmt.Sprintf("blit src %x %d", ev.Addr, ev.Stride)
	case BLIT_OP_FILL_RECT:
		return fmt.Sprintf("fill rect X=%d Y=%d WIDTH=%d HEIGHT=%d COLOR=%d",
			ev.X, ev.Y, ev.Width, ev.Height, ev.Color)
	case BLIT_OP_COPY_RECT:
		return fmt.Sprintf("copy rect WIDTH=%d HEIGHT=%d DESTX=%d DESTY=%d SRCX=%d SRCY=%d FROM=%x TO=%x",
			ev.Width, ev.Height, ev.X, ev.Y, ev.SrcX, ev.SrcY, ev.From, ev.To)
	case BLIT_OP_COPY_RECT_REVERSE:
		return fmt.Sprintf("copy rev  WIDTH=%d HEIGHT=%d DESTX=%d DESTY=%d SRCX=%d SRCY=%d FROM=%x TO=%x",
			ev.Width, ev.Height, ev.X, ev.Y, ev.SrcX, ev.SrcY, ev.From, ev.To)
	case BLIT_OP_SET_CLIP_RECT:
		return fmt.Sprintf("clip rect X1=%d Y1=%d X2=%d Y2=%d", ev.X, ev.Y, ev.X2, ev.Y2)
	case BLIT_OP_SET_TRANS_COLOR:
		return fmt.Sprintf("trans color %d", ev.Color)
	case BLIT_OP_SET_FONT:
		return fmt.Sprintf("font %x %d %d %d %d", ev.Addr, ev.Width, ev.Height, ev.Stride, ev.CharBytes)
	case BLIT_OP_DRAW_CHAR:
		return fmt.Sprintf("draw char X=%d Y=%d CHAR=%d COLOR=%d BGCOL=%d",
			ev.X, ev.Y, ev.Char, ev.Color, ev.BgColor)
	case BLIT_OP_DRAW_LINE:
		return fmt.Sprintf("draw line X1=%d Y1=%d X2=%d Y2=%d COLOR=%d",
			ev.X, ev.Y, ev.X2, ev.Y2, ev.Color)
	default:
		return fmt.Sprintf("unknown blit op %d", uint32(ev.Op))
	}
}
