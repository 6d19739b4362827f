package cpu

// Cause is the reason code recorded in ecause when an exception is taken.
type Cause int

//go:generate go tool stringer -linecomment -type=Cause
const (
	CAUSE_INSTRUCTION_ACCESS_FAULT = Cause(1) // Instruction Access Fault
	CAUSE_ILLEGAL_INSTRUCTION      = Cause(2) // Illegal Instruction
	CAUSE_BREAKPOINT               = Cause(3) // Breakpoint
	CAUSE_LOAD_MISALIGNED          = Cause(4) // Load Address Misaligned
	CAUSE_LOAD_ACCESS_FAULT        = Cause(5) // Load Access Fault
	CAUSE_STORE_MISALIGNED         = Cause(6) // Store Address Misaligned
	CAUSE_STORE_ACCESS_FAULT       = Cause(7) // Store Access Fault
	CAUSE_SYSTEM_CALL              = Cause(8) // System Call
	CAUSE_INDEX_OVERFLOW           = Cause(9) // Index out of range
)

// InterruptCause is the reason code recorded in icause when an interrupt is taken.
type InterruptCause int

//go:generate go tool stringer -linecomment -type=InterruptCause
const (
	ICAUSE_TIMER = InterruptCause(1) // timer
)

// Status register bits.
const (
	STATUS_SUPERVISOR = 0x1 // Privileged mode, memory protection disabled.
	STATUS_INTERRUPT  = 0x2 // Inside an interrupt handler.
)

// Fixed trap vector addresses.
const (
	VECTOR_RESET     = 0xFFFF_0000
	VECTOR_EXCEPTION = 0xFFFF_0004
)
