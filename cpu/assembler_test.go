package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const progBase = uint32(0xffff0000)

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Opcodes))

	assert.Equal("0", asm.Equate["LINENO"])
}

func opEqual(t *testing.T, expected, opcodes []Opcode) {
	assert := assert.New(t)

	assert.Equal(len(expected), len(opcodes))
	if len(expected) == len(opcodes) {
		for n := range len(expected) {
			assert.Equal(expected[n], opcodes[n])
		}
	}
}

func TestAssemblerInstructions(t *testing.T) {
	assert := assert.New(t)

	table := [...]struct {
		line  string
		codes []Code
	}{
		{"add r3, r1, r2", []Code{MakeCodeAlu(ALU_OP_ADD, 3, 1, 2)}},
		{"ADD R3, R1, R2", []Code{MakeCodeAlu(ALU_OP_ADD, 3, 1, 2)}},
		{"sub sp, sp, 4", []Code{MakeCodeAluImm(ALU_OP_SUB, REG_SP, REG_SP, 4)}},
		{"xor r1, r2, 0xffffffff", []Code{MakeCodeAluImm(ALU_OP_XOR, 1, 2, -1)}},
		{"clt r1, r2, r3", []Code{MakeCodeAlu(ALU_OP_CLT, 1, 2, 3)}},
		{"cltu r1, r2, 4095", []Code{MakeCodeAluImm(ALU_OP_CLTU, 1, 2, 4095)}},
		{"add r5, r0, 'A'", []Code{MakeCodeAluImm(ALU_OP_ADD, 5, 0, 65)}},
		{"add r5, r0, '\\n'", []Code{MakeCodeAluImm(ALU_OP_ADD, 5, 0, 10)}},
		{"lsl r1, r2, 3", []Code{MakeCodeShiftImm(SHIFT_LSL, 1, 2, 3)}},
		{"asr r1, r2, r3", []Code{MakeCodeShift(SHIFT_ASR, 1, 2, 3)}},
		{"lsr r1, r2, 31", []Code{MakeCodeShiftImm(SHIFT_LSR, 1, 2, 31)}},
		{"mul r1, r2, r3", []Code{MakeCodeMul(MUL_OP_MUL, 1, 2, 3)}},
		{"divu r1, r2, 7", []Code{MakeCodeMulImm(MUL_OP_DIVU, 1, 2, 7)}},
		{"div r1, r2, r3", []Code{MakeCodeMul(MUL_OP_DIVS, 1, 2, 3)}},
		{"mod r1, r2, r3", []Code{MakeCodeMul(MUL_OP_MODS, 1, 2, 3)}},
		{"modu r1, r2, -2", []Code{MakeCodeMulImm(MUL_OP_MODU, 1, 2, -2)}},
		{"ldb r1, r2[-1]", []Code{MakeCodeLoad(SIZE_BYTE, 1, 2, -1)}},
		{"ldh r1, r2[2]", []Code{MakeCodeLoad(SIZE_HALF, 1, 2, 2)}},
		{"ldw r30, SP[0]", []Code{MakeCodeLoad(SIZE_WORD, REG_LINK, REG_SP, 0)}},
		{"stb r1, r2", []Code{MakeCodeStore(SIZE_BYTE, 1, 2, 0)}},
		{"sth r1, sp[6]", []Code{MakeCodeStore(SIZE_HALF, 1, REG_SP, 6)}},
		{"stw lr, sp[-4]", []Code{MakeCodeStore(SIZE_WORD, REG_LINK, REG_SP, -4)}},
		{"idx4 r1, r2, r3", []Code{MakeCodeIdx(IDX_OP_4, 1, 2, 3)}},
		{"idx1 r1, r2, r3", []Code{MakeCodeIdx(IDX_OP_1, 1, 2, 3)}},
		{"nop", []Code{MakeCodeAlu(ALU_OP_AND, 0, 0, 0)}},
		{"ld r1, r2", []Code{MakeCodeAlu(ALU_OP_OR, 1, 2, REG_ZERO)}},
		{"mov r3, r4", []Code{MakeCodeAlu(ALU_OP_OR, 3, 4, REG_ZERO)}},
		{"ld r1, -5", []Code{MakeCodeAluImm(ALU_OP_OR, 1, REG_ZERO, -5)}},
		{"ld r1, 0x12345678", []Code{
			MakeCodeLoadUpper(1, 0x2468a),
			MakeCodeAluImm(ALU_OP_OR, 1, 1, 0x678),
		}},
		{"ldu r1, 0xE0000000", []Code{MakeCodeLoadUpper(1, int32(0xE000_0000>>11))}},
		{"jmp r5", []Code{MakeCodeJumpReg(REG_ZERO, 5, 0)}},
		{"jsr r5[2]", []Code{MakeCodeJumpReg(REG_LINK, 5, 2)}},
		{"jal r7, r5", []Code{MakeCodeJumpReg(7, 5, 0)}},
		{"ret", []Code{MakeCodeJumpReg(REG_ZERO, REG_LINK, 0)}},
		{"halt", []Code{MakeCodeJumpReg(REG_ZERO, REG_ZERO, 0)}},
		{"jmp 0", []Code{MakeCodeJump(REG_ZERO, 0x3fff)}},
		{"jsr 0xffff0100", []Code{MakeCodeJump(REG_LINK, 0x3f)}},
		{"ble r1, r2, 0xffff0000", []Code{MakeCodeBranch(BRANCH_OP_GE, 2, 1, -1)}},
		{"bgt r1, r2, 0xffff0008", []Code{MakeCodeBranch(BRANCH_OP_LT, 2, 1, 1)}},
		{"bgeu r1, r2, 0xffff0004", []Code{MakeCodeBranch(BRANCH_OP_GEU, 1, 2, 0)}},
		{"cfgr r1, epc", []Code{MakeCodeCfg(CFG_OP_READ, 1, 0, int32(CFG_REG_EPC))}},
		{"cfgr r1, 11", []Code{MakeCodeCfg(CFG_OP_READ, 1, 0, int32(CFG_REG_TIMER))}},
		{"cfgw r1, dmpu3, r2", []Code{MakeCodeCfg(CFG_OP_SWAP, 1, 2, int32(CFG_REG_DMPU3))}},
		{"cfgw intvec, r2", []Code{MakeCodeCfg(CFG_OP_SWAP, 0, 2, int32(CFG_REG_INTVEC))}},
		{"rte", []Code{MakeCodeCfg(CFG_OP_RETURN, 0, 0, 0)}},
		{"rti", []Code{MakeCodeCfg(CFG_OP_RETURN, 0, 0, 1)}},
		{"sys 42", []Code{MakeCodeCfg(CFG_OP_SYSTEM, 0, 0, 42)}},
		{".word 1, 2", []Code{1, 2}},
		{".word 0xdeadbeef", []Code{0xdeadbeef}},
		{"add r1, r1, 1 ; comment", []Code{MakeCodeAluImm(ALU_OP_ADD, 1, 1, 1)}},
		{"add r1, r1, 1 # comment", []Code{MakeCodeAluImm(ALU_OP_ADD, 1, 1, 1)}},
	}

	for _, entry := range table {
		asm := &Assembler{}
		prog, err := asm.Parse(strings.NewReader(entry.line))
		if !assert.NoError(err, entry.line) {
			continue
		}
		if assert.Equal(1, len(prog.Opcodes), entry.line) {
			assert.Equal(entry.codes, prog.Opcodes[0].Codes, entry.line)
			assert.Equal(progBase, prog.Opcodes[0].Addr, entry.line)
		}
	}
}

func TestAssemblerEqu(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := []string{
		".equ TEN 10",
		"add r1, r0, TEN",
		"add r2, r0, $(TEN * 3)",
		"add r3, r0, $(LINENO)",
		".equ BASE $(0x100 + TEN)",
		"ldw r4, r0[BASE]",
		".equ TMP r9",
		"ld TMP, r1",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(errors.Unwrap(err))
	}

	expected := []Opcode{
		{2, progBase + 0, []string{"add", "r1", "r0", "10"}, []Code{MakeCodeAluImm(ALU_OP_ADD, 1, 0, 10)}, ""},
		{3, progBase + 4, []string{"add", "r2", "r0", "0x1e"}, []Code{MakeCodeAluImm(ALU_OP_ADD, 2, 0, 30)}, ""},
		{4, progBase + 8, []string{"add", "r3", "r0", "0x4"}, []Code{MakeCodeAluImm(ALU_OP_ADD, 3, 0, 4)}, ""},
		{6, progBase + 12, []string{"ldw", "r4", "r0[BASE]"}, []Code{MakeCodeLoad(SIZE_WORD, 4, 0, 0x10a)}, ""},
		{8, progBase + 16, []string{"ld", "r9", "r1"}, []Code{MakeCodeAlu(ALU_OP_OR, 9, 1, 0)}, ""},
	}

	opEqual(t, expected, prog.Opcodes)
}

func TestAssemblerPredefine(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("UART", "0xe0000010")
	asm.Predefine("UART", "0xe0000014")

	prog, err := asm.Parse(strings.NewReader("ld r1, UART"))
	assert.NoError(err)
	assert.Equal([]Code{
		MakeCodeLoadUpper(1, int32(0xe0000014>>11)),
		MakeCodeAluImm(ALU_OP_OR, 1, 1, 0x14),
	}, prog.Opcodes[0].Codes)

	// Predefines survive a second parse.
	prog, err = asm.Parse(strings.NewReader("add r1, r0, $(UART & 0xff)"))
	assert.NoError(err)
	assert.Equal([]Code{MakeCodeAluImm(ALU_OP_ADD, 1, 0, 0x14)}, prog.Opcodes[0].Codes)
}

func TestAssemblerMacro(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := []string{
		".macro PUSH reg",
		"sub sp, sp, 4",
		"stw reg, sp[0]",
		".endm",
		".macro POP reg",
		"ldw reg, sp[0]",
		"add sp, sp, 4",
		".endm",
		"PUSH r1",
		"POP r2",
		".macro LOOP count",
		"ld r3, count",
		"@top: sub r3, r3, 1",
		"bne r3, r0, @top",
		".endm",
		"LOOP 5",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	expected := []Opcode{
		{2, progBase + 0, []string{"sub", "sp", "sp", "4"}, []Code{MakeCodeAluImm(ALU_OP_SUB, REG_SP, REG_SP, 4)}, ""},
		{3, progBase + 4, []string{"stw", "r1", "sp[0]"}, []Code{MakeCodeStore(SIZE_WORD, 1, REG_SP, 0)}, ""},
		{6, progBase + 8, []string{"ldw", "r2", "sp[0]"}, []Code{MakeCodeLoad(SIZE_WORD, 2, REG_SP, 0)}, ""},
		{7, progBase + 12, []string{"add", "sp", "sp", "4"}, []Code{MakeCodeAluImm(ALU_OP_ADD, REG_SP, REG_SP, 4)}, ""},
		{12, progBase + 16, []string{"ld", "r3", "5"}, []Code{MakeCodeAluImm(ALU_OP_OR, 3, 0, 5)}, ""},
		{13, progBase + 20, []string{"sub", "r3", "r3", "1"}, []Code{MakeCodeAluImm(ALU_OP_SUB, 3, 3, 1)}, ""},
		{14, progBase + 24, []string{"bne", "r3", "r0", "LOOP_16_top"}, []Code{MakeCodeBranch(BRANCH_OP_NE, 3, 0, -2)}, "LOOP_16_top"},
	}

	opEqual(t, expected, prog.Opcodes)
	assert.Equal(progBase+20, prog.Labels["LOOP_16_top"])
}

func TestAssemblerLabel(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := []string{
		"start:",
		"  beq r1, r2, done",
		"  jsr func",
		"  jmp start",
		"done: ALSO: halt",
		"func: ret",
		"table: .word func",
		"  lea r4, table",
		"  ld r5, /fred(Int,Int)",
		"/fred(Int,Int):",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	expected := []Opcode{
		{2, progBase + 0x00, []string{"beq", "r1", "r2", "done"}, []Code{MakeCodeBranch(BRANCH_OP_EQ, 1, 2, 2)}, "done"},
		{3, progBase + 0x04, []string{"jsr", "func"}, []Code{MakeCodeJump(REG_LINK, 2)}, "func"},
		{4, progBase + 0x08, []string{"jmp", "start"}, []Code{MakeCodeJump(REG_ZERO, -3)}, "start"},
		{5, progBase + 0x0c, []string{"halt"}, []Code{MakeCodeJumpReg(REG_ZERO, REG_ZERO, 0)}, ""},
		{6, progBase + 0x10, []string{"ret"}, []Code{MakeCodeJumpReg(REG_ZERO, REG_LINK, 0)}, ""},
		{7, progBase + 0x14, []string{".word", "func"}, []Code{Code(progBase + 0x10)}, "func"},
		{8, progBase + 0x18, []string{"lea", "r4", "table"}, []Code{MakeCodeLoadPc(4, -2)}, "table"},
		{9, progBase + 0x1c, []string{"ld", "r5", "/fred(Int,Int)"}, []Code{MakeCodeLoadPc(5, 0)}, "/fred(Int,Int)"},
	}

	opEqual(t, expected, prog.Opcodes)

	assert.Equal(map[string]uint32{
		"start":          progBase,
		"done":           progBase + 0x0c,
		"ALSO":           progBase + 0x0c,
		"func":           progBase + 0x10,
		"table":          progBase + 0x14,
		"/fred(Int,Int)": progBase + 0x20,
	}, prog.Labels)
}

func TestAssemblerErrSyntax(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	// Various syntax errors
	table := [](struct {
		prog string
		line int
		err  error
	}){
		{"DUP:\nDUP:\n", 2, ErrLabelDuplicate},
		{"add r1, r2", 1, ErrOpcodeMissing},
		{"add r1, r2, r3, r4", 1, ErrOpcodeExtraArgs},
		{"add r1, r2, 5000", 1, ErrImmediateRange},
		{"add r99, r1, r2", 1, ErrRegisterInvalid},
		{"add r1, r2, nothing", 1, nil},
		{"lsl r1, r2, 32", 1, ErrImmediateRange},
		{"ldw r1, r2[4", 1, ErrAddressInvalid},
		{"ldw r1, bad[4]", 1, ErrRegisterInvalid},
		{"stw r1", 1, ErrOpcodeMissing},
		{"nop\nnop\nbeq r1, r2, nowhere", 3, nil},
		{"nop\nbeq r1, r2, 0", 2, ErrTargetRange},
		{"jmp 0xffff0002", 1, ErrAddressInvalid},
		{"frob r1", 1, ErrInstructionInvalid},
		{"nop bad", 1, ErrInstructionInvalid},
		{".equ", 1, ErrEquateSyntax},
		{".equ A", 1, ErrEquateSyntax},
		{".equ A 1\n.equ A 2\n", 2, ErrEquateDuplicate},
		{"add r1, r0, $(\"aaa\")", 1, nil},
		{"add r1, r0, $(more(1))", 1, nil},
		{"add r1, r0, $(0x10000000000000000)", 1, nil},
		{".macro A B C\n.endm\nA 1\n", 3, ErrMacroSyntax},
		{".macro A B\n.macro C\n.endm\n.endm", 2, ErrMacroNesting},
		{".macro A B\n.endm\n.macro A\n.endm\n", 3, ErrMacroDuplicate},
		{".macro A B\n.endm\n.endm\n", 3, ErrMacroLonelyEndm},
		{".macro A\nnop\n", 2, ErrMacroLonely},
		{".macro A\nfrob\n.endm\nnop\nA\n", 5, ErrInstructionInvalid},
		{".word 1, label", 1, ErrWordSyntax},
		{".word", 1, ErrWordSyntax},
		{"cfgr r1, bogus", 1, nil},
		{"sys", 1, ErrOpcodeMissing},
		{"rte 1", 1, ErrOpcodeExtraArgs},
		{"ld r1", 1, ErrOpcodeMissing},
		{"ldu r1, label", 1, nil},
		{"jal", 1, ErrOpcodeMissing},
	}

	for _, entry := range table {
		_, err := asm.Parse(strings.NewReader(entry.prog))
		var se *ErrSyntax
		assert.NotNil(err, entry.prog)
		if err != nil {
			assert.True(errors.As(err, &se), entry.prog)
			assert.Equal(entry.line, se.LineNo, entry.prog)
			if entry.err != nil {
				assert.ErrorIs(err, entry.err, entry.prog)
			}
		}
	}
}
