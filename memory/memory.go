// Package memory implements the F32 address space.
//
// The address space is split into three exclusive windows: data memory,
// the device register window and program memory. Accesses outside of all
// three read back as a poison pattern and writes are dropped.
package memory

const (
	DATA_BASE  = 0x0000_0000 // Start of data memory.
	DATA_LIMIT = 0x0400_0000 // End (exclusive) of data memory.

	DEVICE_BASE  = 0xE000_0000 // Start of the device register window.
	DEVICE_LIMIT = 0xE000_1000 // End (exclusive) of the device register window.

	PROGRAM_BASE  = 0xFFFF_0000 // Start of program memory, and the reset address.
	PROGRAM_WORDS = 0x1_0000 / 4

	POISON = 0xBAAD_F00D // Unwritten data memory, and unmapped addresses.

	PAGE_SHIFT = 12
	PAGE_WORDS = (1 << PAGE_SHIFT) / 4
	DATA_PAGES = DATA_LIMIT >> PAGE_SHIFT
)

// Region identifies which window of the address space owns an address.
type Region int

//go:generate go tool stringer -linecomment -type=Region
const (
	REGION_NONE    = Region(0) // none
	REGION_DATA    = Region(1) // data
	REGION_DEVICE  = Region(2) // device
	REGION_PROGRAM = Region(3) // program
)

// RegionOf routes an address to its owning window.
func RegionOf(addr uint32) Region {
	switch {
	case addr < DATA_LIMIT:
		return REGION_DATA
	case addr >= DEVICE_BASE && addr < DEVICE_LIMIT:
		return REGION_DEVICE
	case addr >= PROGRAM_BASE:
		return REGION_PROGRAM
	default:
		return REGION_NONE
	}
}

// Device is the memory mapped register file reached through the device window.
type Device interface {
	// Read returns the register at addr.
	Read(addr uint32) uint32
	// Write updates the register at addr with the bits of value selected by mask.
	Write(addr uint32, value uint32, mask uint32)
}

type page [PAGE_WORDS]uint32

// Memory is the word addressed F32 address space.
type Memory struct {
	Device Device // Device register window handler.

	data    [DATA_PAGES]*page
	program [PROGRAM_WORDS]uint32
}

// Reset poisons all of data memory and clears program memory.
func (mem *Memory) Reset() {
	clear(mem.data[:])
	clear(mem.program[:])
}

// Poison discards all data memory, so it reads back as POISON.
func (mem *Memory) Poison() {
	clear(mem.data[:])
}

// LoadProgram copies words into program memory, starting at PROGRAM_BASE.
func (mem *Memory) LoadProgram(words []uint32) (err error) {
	if len(words) > len(mem.program) {
		err = ErrProgramSize
		return
	}

	copy(mem.program[:], words)

	return
}

// Read reads the word containing addr.
func (mem *Memory) Read(addr uint32) (value uint32) {
	switch RegionOf(addr) {
	case REGION_DATA:
		pg := mem.data[addr>>PAGE_SHIFT]
		if pg == nil {
			return POISON
		}
		value = pg[(addr>>2)%PAGE_WORDS]
	case REGION_DEVICE:
		if mem.Device == nil {
			return POISON
		}
		value = mem.Device.Read(addr)
	case REGION_PROGRAM:
		value = mem.program[(addr&0xffff)>>2]
	default:
		value = POISON
	}

	return
}

// Write replaces the bits selected by mask in the word containing addr.
func (mem *Memory) Write(addr uint32, value uint32, mask uint32) {
	switch RegionOf(addr) {
	case REGION_DATA:
		index := addr >> PAGE_SHIFT
		pg := mem.data[index]
		if pg == nil {
			pg = &page{}
			for n := range pg {
				pg[n] = POISON
			}
			mem.data[index] = pg
		}
		word := &pg[(addr>>2)%PAGE_WORDS]
		*word = (*word & ^mask) | (value & mask)
	case REGION_DEVICE:
		if mem.Device != nil {
			mem.Device.Write(addr, value, mask)
		}
	case REGION_PROGRAM:
		word := &mem.program[(addr&0xffff)>>2]
		*word = (*word & ^mask) | (value & mask)
	}
}
