package cpu

import (
	"log"
)

// RaiseException enters the exception handler at VECTOR_EXCEPTION,
// saving the status and the address of the faulting instruction.
//
// With AbortOnException set, the machine state is left untouched and an
// ErrAbort is returned instead.
func (cpu *Cpu) RaiseException(cause Cause, data uint32) (err error) {
	if cpu.AbortOnException {
		err = ErrAbort{
			Fault:    Fault{Cause: cause, Data: data},
			Pc:       cpu.Pc - 4,
			Register: cpu.Register,
		}
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: exception %v: pc=%08x data=%08x", cause, cpu.Pc-4, data)
	}

	cpu.Exception.Estatus = cpu.Status
	cpu.Exception.Ecause = uint32(cause)
	cpu.Exception.Edata = data
	cpu.Exception.Epc = cpu.Pc - 4
	cpu.Pc = VECTOR_EXCEPTION
	cpu.Status |= STATUS_SUPERVISOR

	cpu.tracer().Exception(cause, data)

	return
}

// RaiseInterrupt enters the interrupt handler at intvec, saving the status
// and the address of the next instruction.
func (cpu *Cpu) RaiseInterrupt(cause InterruptCause) {
	if cpu.Verbose {
		log.Printf("cpu: interrupt %v: pc=%08x", cause, cpu.Pc)
	}

	cpu.Interrupt.Istatus = cpu.Status
	cpu.Interrupt.Icause = uint32(cause)
	cpu.Interrupt.Ipc = cpu.Pc
	cpu.Pc = cpu.Interrupt.Intvec
	cpu.Status |= STATUS_SUPERVISOR | STATUS_INTERRUPT

	cpu.tracer().Interrupt(cause)
}

// Return leaves a trap handler, restoring the interrupt context if
// interrupt is set, or the exception context otherwise.
func (cpu *Cpu) Return(interrupt bool) {
	if interrupt {
		cpu.Status = cpu.Interrupt.Istatus
		cpu.jump(cpu.Interrupt.Ipc)
	} else {
		cpu.Status = cpu.Exception.Estatus
		cpu.jump(cpu.Exception.Epc)
	}
}
