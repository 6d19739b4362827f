// Package cpu implements the F32 processor and its assembler.
//
// The F32 is a 32-bit RISC with 32 general-purpose registers ($0 reads as
// zero), a program counter, a supervisor/user status register, a timer
// interrupt and an eight region memory protection unit that applies to user
// mode loads and stores. Instructions are single 32-bit words.
//
// The assembler accepts the F32 assembly dialect, with labels, equates,
// macros and compile-time $(...) expressions.
package cpu
