package cpu

import (
	"fmt"
)

// CodeKind is the instruction class, in bits 31..26 of the instruction word.
type CodeKind int

//go:generate go tool stringer -linecomment -type=CodeKind
const (
	KIND_ALU  = CodeKind(0x10) // alu
	KIND_ALUI = CodeKind(0x11) // alui
	KIND_BRA  = CodeKind(0x12) // bra
	KIND_LD   = CodeKind(0x13) // ld
	KIND_ST   = CodeKind(0x14) // st
	KIND_JMP  = CodeKind(0x15) // jmp
	KIND_JMPR = CodeKind(0x16) // jmpr
	KIND_LDU  = CodeKind(0x17) // ldu
	KIND_LDPC = CodeKind(0x18) // ldpc
	KIND_MUL  = CodeKind(0x19) // mul
	KIND_MULI = CodeKind(0x1A) // muli
	KIND_CFG  = CodeKind(0x1B) // cfg
	KIND_IDX  = CodeKind(0x1C) // idx
)

// CodeAluOp is an ALU operation.
type CodeAluOp int

//go:generate go tool stringer -linecomment -type=CodeAluOp
const (
	ALU_OP_AND   = CodeAluOp(0) // and
	ALU_OP_OR    = CodeAluOp(1) // or
	ALU_OP_XOR   = CodeAluOp(2) // xor
	ALU_OP_SHIFT = CodeAluOp(3) // shift
	ALU_OP_ADD   = CodeAluOp(4) // add
	ALU_OP_SUB   = CodeAluOp(5) // sub
	ALU_OP_CLT   = CodeAluOp(6) // clt
	ALU_OP_CLTU  = CodeAluOp(7) // cltu
)

// CodeShift selects the shift performed by ALU_OP_SHIFT.
type CodeShift int

//go:generate go tool stringer -linecomment -type=CodeShift
const (
	SHIFT_LSL  = CodeShift(0) // lsl
	SHIFT_NONE = CodeShift(1) // shz
	SHIFT_LSR  = CodeShift(2) // lsr
	SHIFT_ASR  = CodeShift(3) // asr
)

// CodeMulOp is a multiply/divide operation.
type CodeMulOp int

//go:generate go tool stringer -linecomment -type=CodeMulOp
const (
	MUL_OP_MUL  = CodeMulOp(0) // mul
	MUL_OP_1    = CodeMulOp(1) // mul1
	MUL_OP_2    = CodeMulOp(2) // mul2
	MUL_OP_3    = CodeMulOp(3) // mul3
	MUL_OP_DIVU = CodeMulOp(4) // divu
	MUL_OP_DIVS = CodeMulOp(5) // divs
	MUL_OP_MODU = CodeMulOp(6) // modu
	MUL_OP_MODS = CodeMulOp(7) // mods
)

// CodeBranchOp is a branch predicate.
type CodeBranchOp int

//go:generate go tool stringer -linecomment -type=CodeBranchOp
const (
	BRANCH_OP_EQ  = CodeBranchOp(0) // beq
	BRANCH_OP_NE  = CodeBranchOp(1) // bne
	BRANCH_OP_LT  = CodeBranchOp(2) // blt
	BRANCH_OP_GE  = CodeBranchOp(3) // bge
	BRANCH_OP_LTU = CodeBranchOp(4) // bltu
	BRANCH_OP_GEU = CodeBranchOp(5) // bgeu
	BRANCH_OP_6   = CodeBranchOp(6) // bra6
	BRANCH_OP_7   = CodeBranchOp(7) // bra
)

// CodeCfgOp is a system register operation.
type CodeCfgOp int

//go:generate go tool stringer -linecomment -type=CodeCfgOp
const (
	CFG_OP_READ   = CodeCfgOp(0) // cfgr
	CFG_OP_SWAP   = CodeCfgOp(1) // cfgw
	CFG_OP_RETURN = CodeCfgOp(2) // rte
	CFG_OP_SYSTEM = CodeCfgOp(3) // sys
)

// CodeIdxOp is the element stride of an index-bound check.
type CodeIdxOp int

//go:generate go tool stringer -linecomment -type=CodeIdxOp
const (
	IDX_OP_1 = CodeIdxOp(0) // idx1
	IDX_OP_2 = CodeIdxOp(1) // idx2
	IDX_OP_4 = CodeIdxOp(2) // idx4
)

// Size of a load or store, held in the op field.
const (
	SIZE_BYTE = 0
	SIZE_HALF = 1
	SIZE_WORD = 2
)

// Conventional register assignments.
const (
	REG_ZERO = 0
	REG_LINK = 30
	REG_SP   = 31
)

// Code is a single F32 instruction word.
//
//	31    26 25 23 22  18 17  13 12     5 4   0
//	[ kind ][ op ][  d  ][  a  ][   c    ][  b ]
type Code uint32

// MakeCode builds an instruction word from its fields.
func MakeCode(kind CodeKind, op int, d, a int, c int32, b int) Code {
	return Code((uint32(kind)&0x3f)<<26 |
		(uint32(op)&0x7)<<23 |
		(uint32(d)&0x1f)<<18 |
		(uint32(a)&0x1f)<<13 |
		(uint32(c)&0xff)<<5 |
		(uint32(b)&0x1f)<<0)
}

// makeN13 encodes a 13-bit immediate into the c and b fields.
func makeN13(kind CodeKind, op int, d, a int, n13 int32) Code {
	return MakeCode(kind, op, d, a, n13>>5, int(n13&0x1f))
}

// makeN13S encodes a 13-bit immediate into the c and d fields.
func makeN13S(kind CodeKind, op int, a, b int, n13 int32) Code {
	return MakeCode(kind, op, int(n13&0x1f), a, n13>>5, b)
}

// makeN21 encodes a 21-bit immediate into the c, op, a and b fields.
func makeN21(kind CodeKind, d int, n21 int32) Code {
	return MakeCode(kind, int((n21>>10)&0x7), d, int((n21>>5)&0x1f), n21>>13, int(n21&0x1f))
}

// MakeCodeAlu creates a register-register ALU instruction.
func MakeCodeAlu(op CodeAluOp, d, a, b int) Code {
	return MakeCode(KIND_ALU, int(op), d, a, 0, b)
}

// MakeCodeAluImm creates a register-immediate ALU instruction.
func MakeCodeAluImm(op CodeAluOp, d, a int, imm int32) Code {
	return makeN13(KIND_ALUI, int(op), d, a, imm)
}

// MakeCodeShift creates a register-register shift instruction.
func MakeCodeShift(shift CodeShift, d, a, b int) Code {
	return MakeCode(KIND_ALU, int(ALU_OP_SHIFT), d, a, int32(shift), b)
}

// MakeCodeShiftImm creates a shift by a constant amount.
func MakeCodeShiftImm(shift CodeShift, d, a int, amount int) Code {
	return makeN13(KIND_ALUI, int(ALU_OP_SHIFT), d, a, int32(shift)<<5|int32(amount&0x1f))
}

// MakeCodeMul creates a register-register multiply/divide instruction.
func MakeCodeMul(op CodeMulOp, d, a, b int) Code {
	return MakeCode(KIND_MUL, int(op), d, a, 0, b)
}

// MakeCodeMulImm creates a register-immediate multiply/divide instruction.
func MakeCodeMulImm(op CodeMulOp, d, a int, imm int32) Code {
	return makeN13(KIND_MULI, int(op), d, a, imm)
}

// MakeCodeBranch creates a conditional branch, offset in words from the next instruction.
func MakeCodeBranch(op CodeBranchOp, a, b int, offset int32) Code {
	return makeN13S(KIND_BRA, int(op), a, b, offset)
}

// MakeCodeLoad creates a sized load of d from a+offset.
func MakeCodeLoad(size int, d, a int, offset int32) Code {
	return makeN13(KIND_LD, size, d, a, offset)
}

// MakeCodeStore creates a sized store of b to a+offset.
func MakeCodeStore(size int, b, a int, offset int32) Code {
	return makeN13S(KIND_ST, size, a, b, offset)
}

// MakeCodeJump creates a relative jump, linking the return address into d.
func MakeCodeJump(d int, offset int32) Code {
	return makeN21(KIND_JMP, d, offset)
}

// MakeCodeJumpReg creates a jump to a+offset*4, linking the return address into d.
func MakeCodeJumpReg(d, a int, offset int32) Code {
	return makeN13(KIND_JMPR, 0, d, a, offset)
}

// MakeCodeLoadUpper creates a load of the upper 21 bits of d.
func MakeCodeLoadUpper(d int, upper int32) Code {
	return makeN21(KIND_LDU, d, upper)
}

// MakeCodeLoadPc creates a load of a PC relative address, offset in words.
func MakeCodeLoadPc(d int, offset int32) Code {
	return makeN21(KIND_LDPC, d, offset)
}

// MakeCodeCfg creates a system register instruction.
func MakeCodeCfg(op CodeCfgOp, d, a int, index int32) Code {
	return makeN13(KIND_CFG, int(op), d, a, index)
}

// MakeCodeIdx creates an index-bound check of a against b.
func MakeCodeIdx(op CodeIdxOp, d, a, b int) Code {
	return MakeCode(KIND_IDX, int(op), d, a, 0, b)
}

// Kind returns the instruction class.
func (code Code) Kind() CodeKind {
	return CodeKind((code >> 26) & 0x3f)
}

// Op returns the 3-bit sub-operation.
func (code Code) Op() int {
	return int((code >> 23) & 0x7)
}

// D returns the destination register.
func (code Code) D() int {
	return int((code >> 18) & 0x1f)
}

// A returns the first source register.
func (code Code) A() int {
	return int((code >> 13) & 0x1f)
}

// C returns the sign-extended 8-bit immediate.
func (code Code) C() int32 {
	return int32(int8(code >> 5))
}

// B returns the second source register.
func (code Code) B() int {
	return int(code & 0x1f)
}

// N13 returns the 13-bit signed immediate used by loads and ALU immediates.
func (code Code) N13() int32 {
	return code.C()<<5 | int32(code.B())
}

// N13S returns the 13-bit signed immediate used by stores and branches.
func (code Code) N13S() int32 {
	return code.C()<<5 | int32(code.D())
}

// N21 returns the 21-bit signed immediate used by jumps and upper loads.
func (code Code) N21() int32 {
	return code.C()<<13 | int32(code.Op())<<10 | int32(code.A())<<5 | int32(code.B())
}

// regName is the assembly name of a register.
func regName(reg int) string {
	switch reg {
	case REG_SP:
		return "sp"
	default:
		return fmt.Sprintf("r%d", reg)
	}
}

var sizeSuffix = [...]string{"b", "h", "w", "?", "?", "?", "?", "?"}

// String disassembles the instruction.
func (code Code) String() string {
	return code.Disassemble(0, nil)
}

// Disassemble formats the instruction located so that next is the address
// of the following instruction. If label is not nil, it names targets.
func (code Code) Disassemble(next uint32, label func(addr uint32) string) (text string) {
	target := func(offset int32) string {
		addr := next + uint32(offset*4)
		if label != nil {
			if name := label(addr); name != "" {
				return name
			}
		}
		return fmt.Sprintf("%08x", addr)
	}

	d, a, b := regName(code.D()), regName(code.A()), regName(code.B())

	switch code.Kind() {
	case KIND_ALU:
		op := CodeAluOp(code.Op())
		if op == ALU_OP_SHIFT {
			return fmt.Sprintf("%v %v, %v, %v", CodeShift(code.C()&3), d, a, b)
		}
		return fmt.Sprintf("%v %v, %v, %v", op, d, a, b)
	case KIND_ALUI:
		op := CodeAluOp(code.Op())
		if op == ALU_OP_SHIFT {
			return fmt.Sprintf("%v %v, %v, %d", CodeShift(code.C()&3), d, a, code.B())
		}
		return fmt.Sprintf("%v %v, %v, %d", op, d, a, code.N13())
	case KIND_BRA:
		return fmt.Sprintf("%v %v, %v, %v", CodeBranchOp(code.Op()), a, b, target(code.N13S()))
	case KIND_LD:
		return fmt.Sprintf("ld%v %v, %v[%d]", sizeSuffix[code.Op()], d, a, code.N13())
	case KIND_ST:
		return fmt.Sprintf("st%v %v, %v[%d]", sizeSuffix[code.Op()], b, a, code.N13S())
	case KIND_JMP:
		switch code.D() {
		case REG_ZERO:
			return fmt.Sprintf("jmp %v", target(code.N21()))
		case REG_LINK:
			return fmt.Sprintf("jsr %v", target(code.N21()))
		}
		return fmt.Sprintf("jal %v, %v", d, target(code.N21()))
	case KIND_JMPR:
		switch {
		case code.D() == REG_ZERO && code.A() == REG_ZERO && code.N13() == 0:
			return "halt"
		case code.D() == REG_ZERO && code.A() == REG_LINK && code.N13() == 0:
			return "ret"
		case code.D() == REG_ZERO:
			return fmt.Sprintf("jmp %v[%d]", a, code.N13())
		case code.D() == REG_LINK:
			return fmt.Sprintf("jsr %v[%d]", a, code.N13())
		}
		return fmt.Sprintf("jal %v, %v[%d]", d, a, code.N13())
	case KIND_LDU:
		return fmt.Sprintf("ldu %v, 0x%x", d, uint32(code.N21())<<11)
	case KIND_LDPC:
		return fmt.Sprintf("lea %v, %v", d, target(code.N21()))
	case KIND_MUL:
		return fmt.Sprintf("%v %v, %v, %v", CodeMulOp(code.Op()), d, a, b)
	case KIND_MULI:
		return fmt.Sprintf("%v %v, %v, %d", CodeMulOp(code.Op()), d, a, code.N13())
	case KIND_CFG:
		switch CodeCfgOp(code.Op()) {
		case CFG_OP_READ:
			return fmt.Sprintf("cfgr %v, %v", d, CfgReg(code.N13()))
		case CFG_OP_SWAP:
			return fmt.Sprintf("cfgw %v, %v, %v", d, CfgReg(code.N13()), a)
		case CFG_OP_RETURN:
			if code.N13()&1 != 0 {
				return "rti"
			}
			return "rte"
		case CFG_OP_SYSTEM:
			return fmt.Sprintf("sys %d", code.N13())
		}
		return fmt.Sprintf("cfg%d %v, %v, %d", code.Op(), d, a, code.N13())
	case KIND_IDX:
		return fmt.Sprintf("%v %v, %v, %v", CodeIdxOp(code.Op()), d, a, b)
	}

	return fmt.Sprintf(".word 0x%08x", uint32(code))
}
