package io

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlitter_Args(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint16(0x5678), ArgX(0x12345678))
	assert.Equal(uint16(0x1234), ArgY(0x12345678))
	assert.Equal(uint32(0x12345678), MakeArg(0x5678, 0x1234))
}

func TestBlitter_Commands(t *testing.T) {
	assert := assert.New(t)

	blit := &Blitter{}

	blit.Arg = [3]uint32{0x10000, MakeArg(640, 0), 0}
	blit.Dispatch(BLIT_OP_SET_DEST)
	blit.Arg = [3]uint32{0x20000, MakeArg(320, 0), 0}
	blit.Dispatch(BLIT_OP_SET_SRC)

	assert.Equal(Surface{Addr: 0x10000, Stride: 640}, blit.Dest)
	assert.Equal(Surface{Addr: 0x20000, Stride: 320}, blit.Src)

	table := []struct {
		op   BlitOp
		args [3]uint32
		line string
	}{
		{BLIT_OP_SET_DEST, [3]uint32{0x10000, MakeArg(640, 0), 0},
			"blit dest 10000 640"},
		{BLIT_OP_COPY_RECT, [3]uint32{MakeArg(8, 16), MakeArg(1, 2), MakeArg(3, 4)},
			"copy rect WIDTH=8 HEIGHT=16 DESTX=1 DESTY=2 SRCX=3 SRCY=4 FROM=20000 TO=10000"},
		{BLIT_OP_COPY_RECT_REVERSE, [3]uint32{MakeArg(8, 16), MakeArg(1, 2), MakeArg(3, 4)},
			"copy rev  WIDTH=8 HEIGHT=16 DESTX=1 DESTY=2 SRCX=3 SRCY=4 FROM=20000 TO=10000"},
		{BLIT_OP_SET_CLIP_RECT, [3]uint32{MakeArg(0, 0), MakeArg(639, 479), 0},
			"clip rect X1=0 Y1=0 X2=639 Y2=479"},
		{BLIT_OP_SET_TRANS_COLOR, [3]uint32{0, 0, MakeArg(5, 9)},
			"trans color 5"},
		{BLIT_OP_SET_FONT, [3]uint32{0x3000, MakeArg(8, 12), MakeArg(1, 12)},
			"font 3000 8 12 1 12"},
		{BLIT_OP_DRAW_CHAR, [3]uint32{MakeArg(100, 7), MakeArg(50, 'A'), MakeArg(15, 1)},
			"draw char X=100 Y=50 CHAR=65 COLOR=15 BGCOL=1"},
		{BLIT_OP_DRAW_LINE, [3]uint32{MakeArg(1, 2), MakeArg(3, 4), MakeArg(6, 0)},
			"draw line X1=1 Y1=2 X2=3 Y2=4 COLOR=6"},
		{BlitOp(0x42), [3]uint32{}, "unknown blit op 66"},
	}

	for _, entry := range table {
		blit.Arg = entry.args
		count := len(blit.Events)
		ev := blit.Dispatch(entry.op)
		assert.Equal(count+1, len(blit.Events), entry.op.String())
		assert.Equal(entry.line, ev.String(), entry.op.String())
	}

	assert.Equal([4]uint16{0, 0, 639, 479}, blit.Clip)
	assert.Equal(uint16(5), blit.TransColor)
	assert.Equal(Font{Addr: 0x3000, Width: 8, Height: 12, Stride: 1, CharBytes: 12}, blit.Font)

	blit.Reset()
	assert.Empty(blit.Events)
	assert.Equal(Surface{}, blit.Dest)
}

func TestBlitOp_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("fill", BLIT_OP_FILL_RECT.String())
	assert.Equal("line", BLIT_OP_DRAW_LINE.String())
	assert.Equal("BlitOp(0)", BlitOp(0).String())
	assert.Equal("BlitOp(11)", BlitOp(11).String())
}
