package cpu

import (
	"fmt"
	"io"
)

// Tracer observes execution. The Cpu calls it synchronously from Step.
type Tracer interface {
	Fetch(pc uint32, code Code)         // Instruction fetched at pc, before execution.
	Register(reg int, value uint32)     // Register written.
	Store(addr uint32, value uint32)    // Data or device memory written.
	Jump(target uint32)                 // Control transfer taken.
	Exception(cause Cause, data uint32) // Exception entered.
	Interrupt(cause InterruptCause)     // Interrupt entered.
	Retire()                            // Instruction complete.
}

// NopTracer ignores all events.
type NopTracer struct{}

func (NopTracer) Fetch(pc uint32, code Code)         {}
func (NopTracer) Register(reg int, value uint32)     {}
func (NopTracer) Store(addr uint32, value uint32)    {}
func (NopTracer) Jump(target uint32)                 {}
func (NopTracer) Exception(cause Cause, data uint32) {}
func (NopTracer) Interrupt(cause InterruptCause)     {}
func (NopTracer) Retire()                            {}

// RegisterLog writes one line per register write.
type RegisterLog struct {
	NopTracer
	Writer io.Writer
}

func (rl *RegisterLog) Register(reg int, value uint32) {
	fmt.Fprintf(rl.Writer, "$%2d = %08x\n", reg, value)
}

// TraceLog writes one line per instruction, with its effects.
type TraceLog struct {
	Writer io.Writer
	Label  func(addr uint32) string // Optional symbol lookup for targets.
}

func (tl *TraceLog) label(addr uint32) string {
	if tl.Label != nil {
		if name := tl.Label(addr); name != "" {
			return name
		}
	}
	return fmt.Sprintf("%08x", addr)
}

func (tl *TraceLog) Fetch(pc uint32, code Code) {
	fmt.Fprintf(tl.Writer, "%08x: %-40s", pc, code.Disassemble(pc+4, tl.Label))
}

func (tl *TraceLog) Register(reg int, value uint32) {
	fmt.Fprintf(tl.Writer, "$%2d = %08x", reg, value)
}

func (tl *TraceLog) Store(addr uint32, value uint32) {
	fmt.Fprintf(tl.Writer, "[%08x] = %08x", addr, value)
}

func (tl *TraceLog) Jump(target uint32) {
	fmt.Fprintf(tl.Writer, "-> %s", tl.label(target))
}

func (tl *TraceLog) Exception(cause Cause, data uint32) {
	fmt.Fprintf(tl.Writer, "EXCEPTION: %d %x\n", int(cause), data)
}

func (tl *TraceLog) Interrupt(cause InterruptCause) {
	fmt.Fprintf(tl.Writer, "INTERRUPT: %d\n", int(cause))
}

func (tl *TraceLog) Retire() {
	fmt.Fprintln(tl.Writer)
}

// Tracers fans events out to each of its members in order.
type Tracers []Tracer

func (ts Tracers) Fetch(pc uint32, code Code) {
	for _, t := range ts {
		t.Fetch(pc, code)
	}
}

func (ts Tracers) Register(reg int, value uint32) {
	for _, t := range ts {
		t.Register(reg, value)
	}
}

func (ts Tracers) Store(addr uint32, value uint32) {
	for _, t := range ts {
		t.Store(addr, value)
	}
}

func (ts Tracers) Jump(target uint32) {
	for _, t := range ts {
		t.Jump(target)
	}
}

func (ts Tracers) Exception(cause Cause, data uint32) {
	for _, t := range ts {
		t.Exception(cause, data)
	}
}

func (ts Tracers) Interrupt(cause InterruptCause) {
	for _, t := range ts {
		t.Interrupt(cause)
	}
}

func (ts Tracers) Retire() {
	for _, t := range ts {
		t.Retire()
	}
}
