package cpu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ezrec/f32sim/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrTimeout = errors.New(f("timeout"))
	ErrBusy    = errors.New(f("cpu busy"))
	ErrMemory  = errors.New(f("no memory attached"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrMacroSyntax        = errors.New(f(".macro syntax"))
	ErrMacroNesting       = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate     = errors.New(f(".macro duplicated"))
	ErrMacroLonely        = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm    = errors.New(f(".endm without .macro"))
	ErrWordSyntax         = errors.New(f(".word syntax"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeMissing      = errors.New(f("operand missing"))
	ErrRegisterInvalid    = errors.New(f("register invalid"))
	ErrAddressInvalid     = errors.New(f("address invalid"))
	ErrTargetRange        = errors.New(f("target out of range"))
	ErrImmediateRange     = errors.New(f("immediate out of range"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

// Fault is an architectural exception raised by an instruction.
type Fault struct {
	Cause Cause  // Exception cause.
	Data  uint32 // Faulting address, index or instruction word.
}

func (err Fault) Error() string {
	return f("%v (data 0x%08x)", err.Cause, err.Data)
}

// ErrAbort is returned when an exception is raised with AbortOnException set.
type ErrAbort struct {
	Fault
	Pc       uint32     // Address of the faulting instruction.
	Register [32]uint32 // Register file at the time of the fault.
}

// Dump formats the fault and the register file for the console.
func (err ErrAbort) Dump() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "EXCEPTION %s: pc=%08x: data=%08x\n", err.Cause, err.Pc, err.Data)
	for n := 1; n < len(err.Register); n++ {
		fmt.Fprintf(&sb, "$%2d=%08x ", n, err.Register[n])
		if n%6 == 0 {
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n")

	return sb.String()
}

func (err ErrAbort) Error() string {
	return f("abort at pc 0x%08x: %v", err.Pc, err.Fault)
}

func (err ErrAbort) Unwrap() error {
	return err.Fault
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseCharacter string

func (err ErrParseCharacter) Error() string {
	return f("'%v' is not a character", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}
