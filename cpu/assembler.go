// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/f32sim/memory"
)

// Macro represents a macro definition in the assembly language.
type Macro struct {
	LineNo int      // Line number of the macro definition.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Assembler is a single pass macro assembler for the F32 processor.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string   // Predefines
	Label     map[string]uint32   // Map of jump labels to addresses.
	Equate    map[string]string   // Map of equates.
	Macro     map[string](*Macro) // Map of macros.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// lookup replaces a word by its equate, if it has one.
func (asm *Assembler) lookup(word string) string {
	equate, ok := asm.Equate[word]
	if ok {
		return equate
	}
	return word
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value uint32, err error) {
	if len(word) == 0 {
		err = ErrParseNumber(word)
		return
	}

	invert := false
	if word[0] == '~' {
		invert = true
		word = word[1:]
	}
	if len(word) > 0 && word[0] == '\'' {
		// Character quotes should have been expanded into
		// values in parseLine()
		err = ErrParseCharacter(strings.Trim(word, "'"))
		return
	}
	v64, err := strconv.ParseInt(word, 0, 64)
	if err != nil || v64 > 0xffffffff || v64 < -int64(0x80000000) {
		err = ErrParseNumber(word)
		return
	}

	value = uint32(v64)

	if invert {
		value = ^value
	}

	return
}

// fits reports whether value is representable as a signed bits wide field.
func fits(value int32, bits uint) bool {
	limit := int32(1) << (bits - 1)
	return value >= -limit && value < limit
}

// immediate returns the value of a word as a signed bits wide immediate.
func (asm *Assembler) immediate(word string, bits uint) (value int32, err error) {
	v32, err := asm.valueOf(asm.lookup(word))
	if err != nil {
		return
	}

	value = int32(v32)
	if !fits(value, bits) {
		err = ErrImmediateRange
		return
	}

	return
}

// register returns the register number of a word.
func (asm *Assembler) register(word string) (reg int, err error) {
	word = asm.lookup(word)

	switch strings.ToLower(word) {
	case "sp":
		reg = REG_SP
		return
	case "lr":
		reg = REG_LINK
		return
	}

	if len(word) >= 2 && (word[0] == 'r' || word[0] == 'R') {
		n, perr := strconv.Atoi(word[1:])
		if perr == nil && n >= 0 && n < 32 {
			reg = n
			return
		}
	}

	err = ErrRegisterInvalid
	return
}

// isRegister reports whether a word names a register.
func (asm *Assembler) isRegister(word string) bool {
	_, err := asm.register(word)
	return err == nil
}

// address parses a 'base[offset]' memory operand. A bare register has offset 0.
func (asm *Assembler) address(word string) (base int, offset int32, err error) {
	word = asm.lookup(word)

	open := strings.IndexByte(word, '[')
	if open < 0 {
		base, err = asm.register(word)
		return
	}

	if !strings.HasSuffix(word, "]") {
		err = ErrAddressInvalid
		return
	}

	base, err = asm.register(word[:open])
	if err != nil {
		return
	}

	offset, err = asm.immediate(word[open+1:len(word)-1], 13)
	return
}

// target parses a branch or jump target, either an address or a label.
func (asm *Assembler) target(word string) (addr uint32, label string) {
	word = asm.lookup(word)
	addr, err := asm.valueOf(word)
	if err != nil {
		label = word
	}

	return
}

// cfgMap maps configuration register names to indices.
var cfgMap = map[string]CfgReg{}

func init() {
	for index := CFG_REG_EPC; index <= CFG_REG_DMPU7; index++ {
		name := index.String()
		if !strings.HasPrefix(name, "CfgReg(") {
			cfgMap[name] = index
		}
	}
}

// cfgIndex parses a configuration register name or index.
func (asm *Assembler) cfgIndex(word string) (index int32, err error) {
	cfg, ok := cfgMap[strings.ToLower(asm.lookup(word))]
	if ok {
		index = int32(cfg)
		return
	}

	index, err = asm.immediate(word, 13)
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value uint32, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value32 uint32
		value32, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt64(int64(value32))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = uint32(st_int64)
	return
}

// stripComment removes a trailing ';' or '#' comment.
func stripComment(text string) string {
	cut := strings.IndexAny(text, ";#")
	if cut >= 0 {
		text = text[:cut]
	}
	return strings.TrimSpace(text)
}

// splitWords splits a line on white space, dropping operand separating commas.
func splitWords(line string) (words []string) {
	for _, word := range strings.Fields(line) {
		word = strings.TrimSuffix(word, ",")
		if len(word) > 0 {
			words = append(words, word)
		}
	}
	return
}

var (
	reCharacter  = regexp.MustCompile(`'\\?[^']'`)
	reExpression = regexp.MustCompile(`\$\([^\$]*\)`)
)

// parseLine parses a single line as an opcode.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do 'x' evaluations
	line = reCharacter.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "t":
				str = "\t"
			case "0":
				str = "\000"
			case "e":
				str = "\033"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations
	line = reExpression.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#v", value)
	})
	if err != nil {
		return
	}

	words = splitWords(line)

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		if asm.Label == nil {
			asm.Label = make(map[string]uint32, 16)
		}
		asm.Label[label] = asm.currentAddr()
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	// .macro processing
	macro, ok := asm.Macro[words[0]]
	if ok {
		name := words[0]

		args := words[1:]
		if len(args) != len(macro.Args) {
			err = ErrMacroSyntax
			return
		}
		// Turn args into equs
		old_equate := maps.Clone(asm.Equate)
		for n, arg := range macro.Args {
			asm.Equate[arg] = words[1+n]
		}
		defer func() { asm.Equate = old_equate }()

		// '@' makes names local to this expansion.
		local := fmt.Sprintf("%v_%v_", name, lineno)
		for n, line := range macro.Lines {
			lineno := macro.LineNo + n

			line = strings.ReplaceAll(line, "@", local)
			words, err = asm.parseLine(line, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}

			err = asm.parseWords(words, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}
		}
		words = nil
		return
	}

	return
}

// currentAddr gets the address of the next code to be generated.
func (asm *Assembler) currentAddr() uint32 {
	if len(asm.Opcode) == 0 {
		return memory.PROGRAM_BASE
	}

	last := asm.Opcode[len(asm.Opcode)-1]

	return last.Addr + uint32(len(last.Codes))*4
}

// Parse parses an input stream into a Program containing opcodes.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {

	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	clear(asm.Label)
	asm.Opcode = asm.Opcode[:0]
	if asm.Macro == nil {
		asm.Macro = make(map[string](*Macro))
	}
	clear(asm.Macro)
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line = stripComment(text)
		words := strings.Fields(line)

		// .macro NAME arg...
		if len(words) > 0 && words[0] == ".macro" {
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			if len(words) < 2 {
				err = ErrMacroSyntax
				return
			}
			_, ok := asm.Macro[words[1]]
			if ok {
				err = ErrMacroDuplicate
				return
			}
			macro = &Macro{
				LineNo: lineno + 1,
			}
			if len(words) > 2 {
				macro.Args = splitWords(strings.Join(words[2:], " "))
			}
			asm.Macro[words[1]] = macro
			continue
		}

		if len(words) > 0 && words[0] == ".endm" {
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			macro = nil
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			continue
		}

		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	// Final linking of jump labels.
	for n := range asm.Opcode {
		op := &asm.Opcode[n]

		if len(op.LinkLabel) == 0 {
			continue
		}

		lineno = op.LineNo
		line = strings.Join(op.Words, " ")

		label := op.LinkLabel
		addr, ok := asm.Label[label]
		if !ok {
			err = ErrLabelMissing(label)
			return
		}

		err = op.link(addr)
		if err != nil {
			return
		}
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
		Labels:  maps.Clone(asm.Label),
	}

	return
}

// link resolves the target of the last code of the opcode.
func (op *Opcode) link(target uint32) (err error) {
	index := len(op.Codes) - 1
	linked := &op.Codes[index]

	if strings.EqualFold(op.Words[0], ".word") {
		*linked = Code(target)
		return
	}

	next := op.Addr + uint32(len(op.Codes))*4
	*linked, err = linkCode(*linked, next, target)

	return
}

// linkCode re-encodes a control transfer code to reach target.
func linkCode(code Code, next uint32, target uint32) (linked Code, err error) {
	delta := int32(target - next)
	if delta&3 != 0 {
		err = ErrAddressInvalid
		return
	}
	offset := delta >> 2

	bits := uint(21)
	if code.Kind() == KIND_BRA {
		bits = 13
	}
	if !fits(offset, bits) {
		err = ErrTargetRange
		return
	}

	switch code.Kind() {
	case KIND_BRA:
		linked = MakeCodeBranch(CodeBranchOp(code.Op()), code.A(), code.B(), offset)
	case KIND_JMP:
		linked = MakeCodeJump(code.D(), offset)
	case KIND_LDPC:
		linked = MakeCodeLoadPc(code.D(), offset)
	default:
		err = ErrInstructionInvalid
	}

	return
}

// aluMap maps ALU opcode names.
var aluMap = map[string]CodeAluOp{
	"and":  ALU_OP_AND,
	"or":   ALU_OP_OR,
	"xor":  ALU_OP_XOR,
	"add":  ALU_OP_ADD,
	"sub":  ALU_OP_SUB,
	"clt":  ALU_OP_CLT,
	"cltu": ALU_OP_CLTU,
}

// shiftMap maps shift opcode names.
var shiftMap = map[string]CodeShift{
	"lsl": SHIFT_LSL,
	"lsr": SHIFT_LSR,
	"asr": SHIFT_ASR,
}

// mulMap maps multiply and divide opcode names.
var mulMap = map[string]CodeMulOp{
	"mul":  MUL_OP_MUL,
	"divu": MUL_OP_DIVU,
	"divs": MUL_OP_DIVS,
	"div":  MUL_OP_DIVS,
	"modu": MUL_OP_MODU,
	"mods": MUL_OP_MODS,
	"mod":  MUL_OP_MODS,
}

// branchMap maps branch opcode names.
var branchMap = map[string]CodeBranchOp{
	"beq":  BRANCH_OP_EQ,
	"bne":  BRANCH_OP_NE,
	"blt":  BRANCH_OP_LT,
	"bge":  BRANCH_OP_GE,
	"bltu": BRANCH_OP_LTU,
	"bgeu": BRANCH_OP_GEU,
}

// sizeMap maps load and store suffixes to access sizes.
var sizeMap = map[byte]int{
	'b': SIZE_BYTE,
	'h': SIZE_HALF,
	'w': SIZE_WORD,
}

// idxMap maps index-bound opcode names.
var idxMap = map[string]CodeIdxOp{
	"idx1": IDX_OP_1,
	"idx2": IDX_OP_2,
	"idx4": IDX_OP_4,
}

// argCount verifies the number of operands.
func argCount(args []string, count int) (err error) {
	switch {
	case len(args) < count:
		err = ErrOpcodeMissing
	case len(args) > count:
		err = ErrOpcodeExtraArgs
	}
	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	var codes []Code
	var label string

	// no-op
	if len(words) == 0 {
		return
	}

	initial_words := words

	defer func() {
		if len(codes) == 0 {
			return
		}
		opcode := Opcode{LineNo: lineno, Addr: asm.currentAddr(), Words: initial_words, Codes: codes, LinkLabel: label}
		asm.Opcode = append(asm.Opcode, opcode)
	}()

	mnemonic := strings.ToLower(words[0])
	args := words[1:]

	// Alternate syntax substitutions
	switch {
	case mnemonic == "ble" && len(args) == 3:
		// ble A, B, T => bge B, A, T
		mnemonic = "bge"
		args = []string{args[1], args[0], args[2]}
	case mnemonic == "bgt" && len(args) == 3:
		// bgt A, B, T => blt B, A, T
		mnemonic = "blt"
		args = []string{args[1], args[0], args[2]}
	case mnemonic == "bleu" && len(args) == 3:
		mnemonic = "bgeu"
		args = []string{args[1], args[0], args[2]}
	case mnemonic == "bgtu" && len(args) == 3:
		mnemonic = "bltu"
		args = []string{args[1], args[0], args[2]}
	case mnemonic == "nop" && len(args) == 0:
		// nop => and r0, r0, r0
		mnemonic = "and"
		args = []string{"r0", "r0", "r0"}
	case mnemonic == "mov" && len(args) == 2:
		mnemonic = "ld"
	default:
		// unchanged
	}

	// targeted finishes a control transfer, linking now when the target is numeric.
	targeted := func(code Code, word string) (err error) {
		addr, name := asm.target(word)
		if len(name) > 0 {
			label = name
			codes = append(codes, code)
			return
		}
		next := asm.currentAddr() + uint32(len(codes)+1)*4
		code, err = linkCode(code, next, addr)
		if err != nil {
			return
		}
		codes = append(codes, code)
		return
	}

	if alu, ok := aluMap[mnemonic]; ok {
		err = argCount(args, 3)
		if err != nil {
			return
		}
		var d, a, b int
		if d, err = asm.register(args[0]); err != nil {
			return
		}
		if a, err = asm.register(args[1]); err != nil {
			return
		}
		if asm.isRegister(args[2]) {
			b, _ = asm.register(args[2])
			codes = append(codes, MakeCodeAlu(alu, d, a, b))
			return
		}
		var imm int32
		imm, err = asm.immediate(args[2], 13)
		if err != nil {
			return
		}
		codes = append(codes, MakeCodeAluImm(alu, d, a, imm))
		return
	}

	if shift, ok := shiftMap[mnemonic]; ok {
		err = argCount(args, 3)
		if err != nil {
			return
		}
		var d, a, b int
		if d, err = asm.register(args[0]); err != nil {
			return
		}
		if a, err = asm.register(args[1]); err != nil {
			return
		}
		if asm.isRegister(args[2]) {
			b, _ = asm.register(args[2])
			codes = append(codes, MakeCodeShift(shift, d, a, b))
			return
		}
		var amount int32
		amount, err = asm.immediate(args[2], 13)
		if err != nil {
			return
		}
		if amount < 0 || amount > 31 {
			err = ErrImmediateRange
			return
		}
		codes = append(codes, MakeCodeShiftImm(shift, d, a, int(amount)))
		return
	}

	if mul, ok := mulMap[mnemonic]; ok {
		err = argCount(args, 3)
		if err != nil {
			return
		}
		var d, a, b int
		if d, err = asm.register(args[0]); err != nil {
			return
		}
		if a, err = asm.register(args[1]); err != nil {
			return
		}
		if asm.isRegister(args[2]) {
			b, _ = asm.register(args[2])
			codes = append(codes, MakeCodeMul(mul, d, a, b))
			return
		}
		var imm int32
		imm, err = asm.immediate(args[2], 13)
		if err != nil {
			return
		}
		codes = append(codes, MakeCodeMulImm(mul, d, a, imm))
		return
	}

	if branch, ok := branchMap[mnemonic]; ok {
		err = argCount(args, 3)
		if err != nil {
			return
		}
		var a, b int
		if a, err = asm.register(args[0]); err != nil {
			return
		}
		if b, err = asm.register(args[1]); err != nil {
			return
		}
		err = targeted(MakeCodeBranch(branch, a, b, 0), args[2])
		return
	}

	if op, ok := idxMap[mnemonic]; ok {
		err = argCount(args, 3)
		if err != nil {
			return
		}
		var d, a, b int
		if d, err = asm.register(args[0]); err != nil {
			return
		}
		if a, err = asm.register(args[1]); err != nil {
			return
		}
		if b, err = asm.register(args[2]); err != nil {
			return
		}
		codes = append(codes, MakeCodeIdx(op, d, a, b))
		return
	}

	if len(mnemonic) == 3 && (strings.HasPrefix(mnemonic, "ld") || strings.HasPrefix(mnemonic, "st")) {
		if size, ok := sizeMap[mnemonic[2]]; ok {
			err = argCount(args, 2)
			if err != nil {
				return
			}
			var reg, base int
			var offset int32
			if reg, err = asm.register(args[0]); err != nil {
				return
			}
			if base, offset, err = asm.address(args[1]); err != nil {
				return
			}
			if mnemonic[0] == 'l' {
				codes = append(codes, MakeCodeLoad(size, reg, base, offset))
			} else {
				codes = append(codes, MakeCodeStore(size, reg, base, offset))
			}
			return
		}
	}

	switch mnemonic {
	case ".word":
		if len(args) == 0 {
			err = ErrWordSyntax
			return
		}
		for _, arg := range args {
			addr, name := asm.target(arg)
			if len(name) > 0 {
				if len(args) != 1 {
					err = ErrWordSyntax
					return
				}
				label = name
			}
			codes = append(codes, Code(addr))
		}
	case "ld":
		err = argCount(args, 2)
		if err != nil {
			return
		}
		var d int
		if d, err = asm.register(args[0]); err != nil {
			return
		}
		if asm.isRegister(args[1]) {
			a, _ := asm.register(args[1])
			codes = append(codes, MakeCodeAlu(ALU_OP_OR, d, a, REG_ZERO))
			return
		}
		value, name := asm.target(args[1])
		switch {
		case len(name) > 0:
			err = targeted(MakeCodeLoadPc(d, 0), args[1])
		case fits(int32(value), 13):
			codes = append(codes, MakeCodeAluImm(ALU_OP_OR, d, REG_ZERO, int32(value)))
		default:
			codes = append(codes,
				MakeCodeLoadUpper(d, int32(value>>11)),
				MakeCodeAluImm(ALU_OP_OR, d, d, int32(value&0x7ff)),
			)
		}
	case "lea":
		err = argCount(args, 2)
		if err != nil {
			return
		}
		var d int
		if d, err = asm.register(args[0]); err != nil {
			return
		}
		err = targeted(MakeCodeLoadPc(d, 0), args[1])
	case "ldu":
		err = argCount(args, 2)
		if err != nil {
			return
		}
		var d int
		if d, err = asm.register(args[0]); err != nil {
			return
		}
		var value uint32
		value, err = asm.valueOf(asm.lookup(args[1]))
		if err != nil {
			return
		}
		codes = append(codes, MakeCodeLoadUpper(d, int32(value>>11)))
	case "jmp", "jsr", "jal":
		d := REG_ZERO
		switch mnemonic {
		case "jsr":
			d = REG_LINK
		case "jal":
			// jal LINK, TARGET
			if len(args) > 0 {
				if d, err = asm.register(args[0]); err != nil {
					return
				}
				args = args[1:]
			}
		}
		err = argCount(args, 1)
		if err != nil {
			return
		}
		word := asm.lookup(args[0])
		if asm.isRegister(word) || strings.HasSuffix(word, "]") {
			var a int
			var offset int32
			a, offset, err = asm.address(word)
			if err != nil {
				return
			}
			codes = append(codes, MakeCodeJumpReg(d, a, offset))
			return
		}
		err = targeted(MakeCodeJump(d, 0), word)
	case "ret":
		err = argCount(args, 0)
		if err != nil {
			return
		}
		codes = append(codes, MakeCodeJumpReg(REG_ZERO, REG_LINK, 0))
	case "halt":
		err = argCount(args, 0)
		if err != nil {
			return
		}
		codes = append(codes, MakeCodeJumpReg(REG_ZERO, REG_ZERO, 0))
	case "cfgr":
		err = argCount(args, 2)
		if err != nil {
			return
		}
		var d int
		var index int32
		if d, err = asm.register(args[0]); err != nil {
			return
		}
		if index, err = asm.cfgIndex(args[1]); err != nil {
			return
		}
		codes = append(codes, MakeCodeCfg(CFG_OP_READ, d, REG_ZERO, index))
	case "cfgw":
		// cfgw [OLD,] CFG, SRC
		if len(args) == 2 {
			args = append([]string{"r0"}, args...)
		}
		err = argCount(args, 3)
		if err != nil {
			return
		}
		var d, a int
		var index int32
		if d, err = asm.register(args[0]); err != nil {
			return
		}
		if index, err = asm.cfgIndex(args[1]); err != nil {
			return
		}
		if a, err = asm.register(args[2]); err != nil {
			return
		}
		codes = append(codes, MakeCodeCfg(CFG_OP_SWAP, d, a, index))
	case "rte", "rti":
		err = argCount(args, 0)
		if err != nil {
			return
		}
		var index int32
		if mnemonic == "rti" {
			index = 1
		}
		codes = append(codes, MakeCodeCfg(CFG_OP_RETURN, REG_ZERO, REG_ZERO, index))
	case "sys":
		err = argCount(args, 1)
		if err != nil {
			return
		}
		var number int32
		number, err = asm.immediate(args[0], 13)
		if err != nil {
			return
		}
		codes = append(codes, MakeCodeCfg(CFG_OP_SYSTEM, REG_ZERO, REG_ZERO, number))
	default:
		err = ErrInstructionInvalid
		return
	}

	return
}
