package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"strings"
	"sync/atomic"

	"github.com/ezrec/f32sim/memory"
)

// DEFAULT_BUDGET is the conventional number of steps for a run.
const DEFAULT_BUDGET = 10000

var _cpu_defines = map[string]string{
	"STATUS_SUPERVISOR": fmt.Sprintf("%#x", STATUS_SUPERVISOR),
	"STATUS_INTERRUPT":  fmt.Sprintf("%#x", STATUS_INTERRUPT),
	"VECTOR_RESET":      fmt.Sprintf("%#x", VECTOR_RESET),
	"VECTOR_EXCEPTION":  fmt.Sprintf("%#x", VECTOR_EXCEPTION),
	"STACK_TOP":         fmt.Sprintf("%#x", memory.DATA_LIMIT),
}

func init() {
	for cause := CAUSE_INSTRUCTION_ACCESS_FAULT; cause <= CAUSE_INDEX_OVERFLOW; cause++ {
		name := "CAUSE_" + strings.ToUpper(strings.ReplaceAll(cause.String(), " ", "_"))
		_cpu_defines[name] = fmt.Sprintf("%d", int(cause))
	}
}

// Exception is the context saved on exception entry.
type Exception struct {
	Epc      uint32 // Address of the faulting instruction.
	Ecause   uint32 // Cause of the exception.
	Edata    uint32 // Faulting address, index or instruction word.
	Estatus  uint32 // Status before entry.
	Escratch uint32 // Scratch register for the handler.
}

// Interrupt is the context saved on interrupt entry, and the timer.
type Interrupt struct {
	Ipc     uint32 // Address of the next instruction at entry.
	Icause  uint32 // Cause of the interrupt.
	Istatus uint32 // Status before entry.
	Intvec  uint32 // Interrupt handler address.
	Timer   int32  // One shot countdown, fires on reaching zero.
}

// Cpu is the simulation context for the F32 processor.
//
// Run and Step refuse to overlap each other with ErrBusy. The other
// methods and the exported fields are unguarded, and must not be used
// while a Run or Step is active.
type Cpu struct {
	Verbose          bool   // Set to enable verbose logging.
	AbortOnException bool   // Set to stop with ErrAbort on any exception.
	Tracer           Tracer // Execution observer, if not nil.

	Memory *memory.Memory // Address space.
	Mpu    memory.Mpu     // User mode protection regions.

	Register  [32]uint32 // Register file. Register 0 always reads zero.
	Pc        uint32     // Address of the next instruction.
	Status    uint32     // Status register.
	Exception Exception  // Exception context.
	Interrupt Interrupt  // Interrupt context.

	Ticks int // Instructions executed since reset.

	running atomic.Bool
}

// NewCpu creates a CPU attached to mem, in the reset state.
func NewCpu(mem *memory.Memory) (cpu *Cpu) {
	cpu = &Cpu{
		Memory: mem,
	}
	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
// - Poisons data memory.
// - Clears the registers, trap contexts and protection regions.
// - Sets the stack pointer to the top of data memory.
// - Enters supervisor mode at the reset vector.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.Register[REG_SP] = memory.DATA_LIMIT
	cpu.Pc = VECTOR_RESET
	cpu.Status = STATUS_SUPERVISOR
	cpu.Exception = Exception{}
	cpu.Interrupt = Interrupt{}
	cpu.Mpu.Reset()
	cpu.Ticks = 0

	if cpu.Memory != nil {
		cpu.Memory.Poison()
	}
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "    pc: %08x\n", cpu.Pc)
	fmt.Fprintf(&sb, "status: %08x\n", cpu.Status)
	for n, value := range cpu.Register {
		fmt.Fprintf(&sb, "%6s: %08x\n", regName(n), value)
	}

	text = sb.String()
	return
}

// Supervisor reports whether the CPU is in supervisor mode.
func (cpu *Cpu) Supervisor() bool {
	return cpu.Status&STATUS_SUPERVISOR != 0
}

func (cpu *Cpu) tracer() Tracer {
	if cpu.Tracer == nil {
		return NopTracer{}
	}
	return cpu.Tracer
}

// setReg writes a register. Writes to register 0 are discarded.
func (cpu *Cpu) setReg(reg int, value uint32) {
	if reg == REG_ZERO {
		return
	}

	cpu.Register[reg] = value
	cpu.tracer().Register(reg, value)
}

// jump transfers control to target.
func (cpu *Cpu) jump(target uint32) {
	cpu.Pc = target
	cpu.tracer().Jump(target)
}

// load performs a protection checked, sized load.
// The value read is returned even when the load faults.
func (cpu *Cpu) load(addr uint32, size memory.Size) (value uint32, err error) {
	value, err = cpu.Memory.Load(addr, size)
	if errors.Is(err, memory.ErrMisaligned) {
		err = Fault{Cause: CAUSE_LOAD_MISALIGNED, Data: addr}
	}

	if !cpu.Supervisor() && !cpu.Mpu.Allows(memory.ACCESS_READ, addr) {
		err = Fault{Cause: CAUSE_LOAD_ACCESS_FAULT, Data: addr}
	}

	return
}

// store performs a protection checked, sized store.
func (cpu *Cpu) store(addr uint32, value uint32, size memory.Size) (err error) {
	if !cpu.Supervisor() && !cpu.Mpu.Allows(memory.ACCESS_WRITE, addr) {
		err = Fault{Cause: CAUSE_STORE_ACCESS_FAULT, Data: addr}
		return
	}

	err = cpu.Memory.Store(addr, value, size)
	if errors.Is(err, memory.ErrMisaligned) {
		err = Fault{Cause: CAUSE_STORE_MISALIGNED, Data: addr}
		return
	}

	switch memory.RegionOf(addr) {
	case memory.REGION_DATA:
		cpu.tracer().Store(addr, cpu.Memory.Read(addr&^3))
	case memory.REGION_DEVICE:
		cpu.tracer().Store(addr, memory.Lane(addr, value, size))
	}

	return
}

// Step executes a single instruction cycle: timer, fetch, and execute.
// Returns ErrBusy if a Run is active.
func (cpu *Cpu) Step() (err error) {
	if !cpu.running.CompareAndSwap(false, true) {
		err = ErrBusy
		return
	}
	defer cpu.running.Store(false)

	err = cpu.step()
	return
}

func (cpu *Cpu) step() (err error) {
	if cpu.Memory == nil {
		err = ErrMemory
		return
	}

	tracer := cpu.tracer()

	cpu.Ticks++
	cpu.Interrupt.Timer--
	if cpu.Interrupt.Timer == 0 {
		cpu.RaiseInterrupt(ICAUSE_TIMER)
	}

	code := Code(cpu.Memory.Read(cpu.Pc))
	tracer.Fetch(cpu.Pc, code)
	cpu.Pc += 4

	err = cpu.Execute(code)

	tracer.Retire()

	return
}

// Run steps the CPU until it halts by jumping to address 0, or budget
// steps have executed, in which case ErrTimeout is returned.
// Returns ErrBusy if another Run or Step is active.
func (cpu *Cpu) Run(budget int) (err error) {
	if !cpu.running.CompareAndSwap(false, true) {
		err = ErrBusy
		return
	}
	defer cpu.running.Store(false)

	for steps := 0; cpu.Pc != 0; steps++ {
		if steps >= budget {
			err = ErrTimeout
			return
		}

		err = cpu.step()
		if err != nil {
			return
		}
	}

	if cpu.Verbose {
		log.Printf("cpu: halt after %d ticks", cpu.Ticks)
	}

	return
}

// Execute executes a single decoded instruction. A faulting load still
// writes the value it read to its destination; any other faulting
// instruction has no effect other than entering the exception handler.
func (cpu *Cpu) Execute(code Code) (err error) {
	if cpu.Verbose {
		log.Printf("cpu: %08x: %v", cpu.Pc-4, code)
	}

	err = cpu.execute(code)

	var fault Fault
	if errors.As(err, &fault) {
		err = cpu.RaiseException(fault.Cause, fault.Data)
	}

	return
}

func (cpu *Cpu) execute(code Code) (err error) {
	reg := &cpu.Register
	d, a, b := code.D(), code.A(), code.B()

	switch code.Kind() {
	case KIND_ALU:
		cpu.setReg(d, doAlu(CodeAluOp(code.Op()), reg[a], reg[b], code.C()))
	case KIND_ALUI:
		cpu.setReg(d, doAlu(CodeAluOp(code.Op()), reg[a], uint32(code.N13()), code.C()))
	case KIND_BRA:
		if doBranch(CodeBranchOp(code.Op()), reg[a], reg[b]) {
			cpu.jump(cpu.Pc + uint32(code.N13S()*4))
		}
	case KIND_LD:
		var value uint32
		value, err = cpu.load(reg[a]+uint32(code.N13()), memory.Size(code.Op()))
		if err != nil && cpu.AbortOnException {
			// Abort reports the registers before the load.
			return
		}
		cpu.setReg(d, value)
	case KIND_ST:
		err = cpu.store(reg[a]+uint32(code.N13S()), reg[b], memory.Size(code.Op()))
	case KIND_JMP:
		cpu.setReg(d, cpu.Pc)
		cpu.jump(cpu.Pc + uint32(code.N21()*4))
	case KIND_JMPR:
		link := cpu.Pc
		target := reg[a] + uint32(code.N13()*4)
		cpu.setReg(d, link)
		cpu.jump(target)
	case KIND_LDU:
		cpu.setReg(d, uint32(code.N21())<<11)
	case KIND_LDPC:
		cpu.setReg(d, cpu.Pc+uint32(code.N21()*4))
	case KIND_MUL:
		cpu.setReg(d, doMul(CodeMulOp(code.Op()), reg[a], reg[b]))
	case KIND_MULI:
		cpu.setReg(d, doMul(CodeMulOp(code.Op()), reg[a], uint32(code.N13())))
	case KIND_CFG:
		index := CfgReg(code.N13())
		switch CodeCfgOp(code.Op()) {
		case CFG_OP_READ:
			cpu.setReg(d, cpu.ReadCfg(index))
		case CFG_OP_SWAP:
			old := cpu.ReadCfg(index)
			cpu.WriteCfg(index, reg[a])
			cpu.setReg(d, old)
		case CFG_OP_RETURN:
			cpu.Return(code.N13()&1 != 0)
		case CFG_OP_SYSTEM:
			err = Fault{Cause: CAUSE_SYSTEM_CALL, Data: uint32(code.N13())}
		}
	case KIND_IDX:
		var value uint32
		value, err = doIdx(CodeIdxOp(code.Op()), reg[a], reg[b])
		if err != nil {
			return
		}
		cpu.setReg(d, value)
	default:
		err = Fault{Cause: CAUSE_ILLEGAL_INSTRUCTION, Data: uint32(code)}
	}

	return
}
