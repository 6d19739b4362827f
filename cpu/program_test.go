package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testProgram(t *testing.T) (prog *Program) {
	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join([]string{
		"start: ld r1, 0x12345678",
		"b: a: nop",
		"  halt",
	}, "\n")))
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	return
}

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram(t)

	dbg := prog.Debug(progBase + 4)
	if assert.NotNil(dbg.Opcode) {
		assert.Equal(1, dbg.LineNo)
		assert.Equal(1, dbg.Index)
	}

	dbg = prog.Debug(progBase + 16)
	assert.Nil(dbg.Opcode)

	assert.Equal(1, prog.LineNo(progBase))
	assert.Equal(2, prog.LineNo(progBase+8))
	assert.Equal(3, prog.LineNo(progBase+12))
	assert.Equal(0, prog.LineNo(0))
}

func TestProgram_Label(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram(t)

	assert.Equal("start", prog.Label(progBase))
	assert.Equal("a", prog.Label(progBase+8))
	assert.Equal("", prog.Label(progBase+12))
}

func TestProgram_Binary(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram(t)

	assert.Equal([]uint32{
		uint32(MakeCodeLoadUpper(1, 0x2468a)),
		uint32(MakeCodeAluImm(ALU_OP_OR, 1, 1, 0x678)),
		uint32(MakeCodeAlu(ALU_OP_AND, 0, 0, 0)),
		uint32(MakeCodeJumpReg(REG_ZERO, REG_ZERO, 0)),
	}, prog.Binary())

	// Gaps are zero filled.
	gap := &Program{Opcodes: []Opcode{
		{Addr: progBase + 8, Codes: []Code{7}},
	}}
	assert.Equal([]uint32{0, 0, 7}, gap.Binary())
}

func TestProgram_Codes(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram(t)

	var addrs []uint32
	for addr := range prog.Codes() {
		addrs = append(addrs, addr)
		if len(addrs) == 3 {
			break
		}
	}

	assert.Equal([]uint32{progBase, progBase + 4, progBase + 8}, addrs)
}
