// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator binds the F32 processor, its memory and its devices
// to an assembled program.
package emulator

import (
	"errors"
	"fmt"
	stdio "io"
	"iter"
	"maps"
	"strings"

	"github.com/ezrec/f32sim/cpu"
	"github.com/ezrec/f32sim/internal"
	"github.com/ezrec/f32sim/io"
	"github.com/ezrec/f32sim/memory"
)

var _emulator_defines = map[string]string{
	"DATA_BASE":     fmt.Sprintf("%#x", memory.DATA_BASE),
	"DATA_LIMIT":    fmt.Sprintf("%#x", memory.DATA_LIMIT),
	"DEVICE_BASE":   fmt.Sprintf("%#x", memory.DEVICE_BASE),
	"PROGRAM_BASE":  fmt.Sprintf("%#x", memory.PROGRAM_BASE),
	"REG_SEVEN_SEG": fmt.Sprintf("%#x", io.REG_SEVEN_SEG),
	"REG_LEDS":      fmt.Sprintf("%#x", io.REG_LEDS),
	"REG_UART_TX":   fmt.Sprintf("%#x", io.REG_UART_TX),
	"REG_UART_RX":   fmt.Sprintf("%#x", io.REG_UART_RX),
	"REG_VGA_Y":     fmt.Sprintf("%#x", io.REG_VGA_Y),
	"REG_SIMULATED": fmt.Sprintf("%#x", io.REG_SIMULATED),
	"REG_BLIT_CMD":  fmt.Sprintf("%#x", io.REG_BLIT_CMD),
	"REG_BLIT_ARG1": fmt.Sprintf("%#x", io.REG_BLIT_ARG1),
	"REG_BLIT_ARG2": fmt.Sprintf("%#x", io.REG_BLIT_ARG2),
	"REG_BLIT_ARG3": fmt.Sprintf("%#x", io.REG_BLIT_ARG3),
}

func init() {
	for op := io.BLIT_OP_SET_DEST; op <= io.BLIT_OP_DRAW_LINE; op++ {
		name := "BLIT_OP_" + strings.ToUpper(op.String())
		_emulator_defines[name] = fmt.Sprintf("%d", uint32(op))
	}
}

// Emulator state. CPU + memory + device registers.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Devices io.Registers // Memory mapped device registers.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program: &cpu.Program{},
	}

	mem := &memory.Memory{Device: &emu.Devices}
	emu.Cpu = cpu.NewCpu(mem)

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.Concat2(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Assemble parses source, with the emulator defines available as equates,
// and loads the result.
func (emu *Emulator) Assemble(source stdio.Reader) (err error) {
	asm := &cpu.Assembler{Verbose: emu.Verbose}
	for name, value := range emu.Defines() {
		asm.Predefine(name, value)
	}

	prog, err := asm.Parse(source)
	if err != nil {
		return
	}

	err = emu.LoadProgram(prog)
	return
}

// LoadProgram loads an assembled program into program memory.
func (emu *Emulator) LoadProgram(prog *cpu.Program) (err error) {
	err = emu.Load(prog.Binary())
	if err != nil {
		return
	}

	emu.Program = prog
	return
}

// Load loads a raw image into program memory. No source listing is
// available for it.
func (emu *Emulator) Load(words []uint32) (err error) {
	emu.Cpu.Memory.Reset()
	err = emu.Cpu.Memory.LoadProgram(words)
	if err != nil {
		return
	}

	emu.Program = &cpu.Program{}
	return
}

// Trace attaches the execution logs. Either writer may be nil.
func (emu *Emulator) Trace(trace stdio.Writer, registers stdio.Writer) {
	var tracers cpu.Tracers
	if trace != nil {
		tracers = append(tracers, &cpu.TraceLog{
			Writer: trace,
			Label:  func(addr uint32) string { return emu.Program.Label(addr) },
		})
	}
	if registers != nil {
		tracers = append(tracers, &cpu.RegisterLog{Writer: registers})
	}

	switch len(tracers) {
	case 0:
		emu.Cpu.Tracer = nil
	case 1:
		emu.Cpu.Tracer = tracers[0]
	default:
		emu.Cpu.Tracer = tracers
	}
}

// Reset the processor and the devices.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Devices.Verbose = emu.Verbose
	emu.Devices.Blitter.Verbose = emu.Verbose

	emu.Devices.Reset()
	emu.Cpu.Reset()
}

// LineNo returns the source line of the next instruction.
func (emu *Emulator) LineNo() int {
	return emu.Program.LineNo(emu.Cpu.Pc)
}

// Code returns the next instruction code.
func (emu *Emulator) Code() cpu.Code {
	return cpu.Code(emu.Cpu.Memory.Read(emu.Cpu.Pc))
}

// Step executes a single instruction.
func (emu *Emulator) Step() (err error) {
	pc := emu.Cpu.Pc
	err = emu.Cpu.Step()
	if err != nil {
		err = emu.runtimeError(pc, err)
	}

	return
}

// Run executes until the program halts, or budget instructions have run.
func (emu *Emulator) Run(budget int) (err error) {
	err = emu.Cpu.Run(budget)
	if err != nil {
		err = emu.runtimeError(emu.Cpu.Pc, err)
	}

	return
}

// runtimeError locates err in the program listing.
func (emu *Emulator) runtimeError(pc uint32, err error) error {
	var abort cpu.ErrAbort
	if errors.As(err, &abort) {
		pc = abort.Pc
	}

	return &ErrRuntime{LineNo: emu.Program.LineNo(pc), Err: err}
}
