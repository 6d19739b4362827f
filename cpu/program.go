package cpu

import (
	"iter"

	"github.com/ezrec/f32sim/memory"
)

// Opcode is a single assembled source line.
type Opcode struct {
	LineNo    int      // Source line number.
	Addr      uint32   // Address of the first code.
	Words     []string // Source words, after label removal.
	Codes     []Code   // Generated instruction words.
	LinkLabel string   // Label the last code refers to, if any.
}

// Program is an assembled program image.
type Program struct {
	Opcodes []Opcode
	Labels  map[string]uint32 // Label addresses.
}

// Debug locates the code at an address within its source line.
type Debug struct {
	*Opcode
	Index int
}

// Debug finds the source line that generated the code at addr.
func (prog *Program) Debug(addr uint32) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if addr >= op.Addr && addr < op.Addr+uint32(len(op.Codes))*4 {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  int(addr-op.Addr) / 4,
			}
			break
		}
	}

	return
}

// LineNo returns the source line of the code at addr, or 0 if unknown.
func (prog *Program) LineNo(addr uint32) (lineno int) {
	dbg := prog.Debug(addr)
	if dbg.Opcode != nil {
		lineno = dbg.LineNo
	}

	return
}

// Label returns the name of a label at addr, or "" if there is none.
// When several labels share an address the lowest sorting name is returned.
func (prog *Program) Label(addr uint32) (label string) {
	for name, value := range prog.Labels {
		if value == addr && (label == "" || name < label) {
			label = name
		}
	}

	return
}

// Binary returns the program memory image, starting at memory.PROGRAM_BASE.
func (prog *Program) Binary() (bins []uint32) {
	for addr, code := range prog.Codes() {
		index := int(addr-memory.PROGRAM_BASE) / 4
		for len(bins) <= index {
			bins = append(bins, 0)
		}
		bins[index] = uint32(code)
	}

	return
}

// Codes iterates over the address and value of every instruction word.
func (prog *Program) Codes() iter.Seq2[uint32, Code] {
	return func(yield func(addr uint32, code Code) bool) {
		for _, op := range prog.Opcodes {
			for n, code := range op.Codes {
				if !yield(op.Addr+uint32(n)*4, code) {
					return
				}
			}
		}
	}
}
