// Package io implements the memory mapped devices of the F32 system.
//
// The device window holds a 7-segment display, a LED bar, a UART and the
// blitter command interface. Output devices echo to a Console, and blitter
// commands are recorded as BlitEvent values instead of being rendered.
package io

import (
	"log"
)

// Device register addresses.
const (
	REG_SEVEN_SEG = 0xE000_0000 // 7-segment display, low 24 bits.
	REG_LEDS      = 0xE000_0004 // LED bar, low 10 bits.
	REG_UART_TX   = 0xE000_0010 // UART transmit; reads the free FIFO space.
	REG_UART_RX   = 0xE000_0014 // UART receive; always empty.
	REG_VGA_Y     = 0xE000_0028 // Current VGA scan line.
	REG_SIMULATED = 0xE000_0030 // Reads 1 in simulation, 0 on hardware.
	REG_BLIT_CMD  = 0xE000_0080 // Blitter command trigger; reads the free queue space.
	REG_BLIT_ARG1 = 0xE000_0084 // Blitter argument 1.
	REG_BLIT_ARG2 = 0xE000_0088 // Blitter argument 2.
	REG_BLIT_ARG3 = 0xE000_008C // Blitter argument 3.
)

// Fixed device register read values.
const (
	UART_TX_SPACE   = 0x3ff
	UART_RX_EMPTY   = 0xffff_ffff
	VGA_Y_POSITION  = 480
	SIMULATED       = 1
	BLIT_QUEUE_FREE = 255
	UNMAPPED        = 0xdead_beef
)

// Registers is the device register file, mapped into the device window.
type Registers struct {
	Verbose bool // Set to log every register access.

	Console Console
	Blitter Blitter
}

// Reset clears the device state.
func (regs *Registers) Reset() {
	regs.Blitter.Reset()
}

// Read returns the value of the register containing addr.
func (regs *Registers) Read(addr uint32) (value uint32) {
	switch addr & 0xffff_fffc {
	case REG_UART_TX:
		value = UART_TX_SPACE
	case REG_UART_RX:
		value = UART_RX_EMPTY
	case REG_SIMULATED:
		value = SIMULATED
	case REG_VGA_Y:
		value = VGA_Y_POSITION
	case REG_BLIT_CMD:
		value = BLIT_QUEUE_FREE
	case REG_BLIT_ARG1:
		value = regs.Blitter.Arg[0]
	case REG_BLIT_ARG2:
		value = regs.Blitter.Arg[1]
	case REG_BLIT_ARG3:
		value = regs.Blitter.Arg[2]
	default:
		log.Printf("io: %v", ErrUnmapped{Addr: addr})
		value = UNMAPPED
	}

	if regs.Verbose {
		log.Printf("io: read %08x = %08x", addr, value)
	}

	return
}

// Write updates the register containing addr.
// Only the blitter argument latches honor the byte lane mask; the other
// registers act on the full value.
func (regs *Registers) Write(addr uint32, value uint32, mask uint32) {
	if regs.Verbose {
		log.Printf("io: write %08x = %08x/%08x", addr, value, mask)
	}

	var err error
	switch addr & 0xffff_fffc {
	case REG_SEVEN_SEG:
		err = regs.Console.SevenSegment(value)
	case REG_LEDS:
		err = regs.Console.Leds(value)
	case REG_UART_TX:
		err = regs.Console.Transmit(byte(value))
	case REG_BLIT_CMD:
		regs.Blitter.Dispatch(BlitOp(value))
	case REG_BLIT_ARG1:
		regs.Blitter.Latch(0, value, mask)
	case REG_BLIT_ARG2:
		regs.Blitter.Latch(1, value, mask)
	case REG_BLIT_ARG3:
		regs.Blitter.Latch(2, value, mask)
	default:
		log.Printf("io: %v", ErrUnmapped{Addr: addr, Value: value, Write: true})
	}

	if err != nil {
		log.Printf("io: %v", err)
	}
}
