package memory

import (
	"fmt"
)

// Size is the width of a load or store.
type Size int

//go:generate go tool stringer -linecomment -type=Size
const (
	SIZE_BYTE = Size(0) // byte
	SIZE_HALF = Size(1) // half
	SIZE_WORD = Size(2) // word
)

// access computes the word mask and bit shift of a sized access at addr.
// Sizes other than byte, half and word can only come from a broken decoder,
// and panic.
func access(addr uint32, size Size) (mask uint32, shift uint32, err error) {
	shift = (addr & 3) * 8
	switch size {
	case SIZE_BYTE:
		mask = 0xff << shift
	case SIZE_HALF:
		if addr&1 != 0 {
			err = ErrMisaligned
			return
		}
		mask = 0xffff << shift
	case SIZE_WORD:
		if addr&3 != 0 {
			err = ErrMisaligned
			return
		}
		mask = 0xffffffff
	default:
		panic(fmt.Sprintf("memory: invalid access size %d", int(size)))
	}

	return
}

// Load reads a sign-extended value of the given size at addr.
// Unaligned half and word loads return ErrMisaligned along with the value
// read from the containing word: the shifted lane for a half, the whole
// word for a word.
func (mem *Memory) Load(addr uint32, size Size) (value uint32, err error) {
	_, shift, err := access(addr, size)

	value = mem.Read(addr & 0xfffffffc)
	switch size {
	case SIZE_BYTE:
		value = uint32(int32(int8(value >> shift)))
	case SIZE_HALF:
		value = uint32(int32(int16(value >> shift)))
	}

	return
}

// Store writes the low bits of value at addr, leaving the rest of the
// containing word untouched.
// Returns ErrMisaligned, with no memory access, for unaligned half and word stores.
func (mem *Memory) Store(addr uint32, value uint32, size Size) (err error) {
	mask, shift, err := access(addr, size)
	if err != nil {
		return
	}

	mem.Write(addr, (value<<shift)&mask, mask)

	return
}

// Lane returns value as a store of size at addr places it within its word.
func Lane(addr uint32, value uint32, size Size) (lane uint32) {
	mask, shift, _ := access(addr, size)
	lane = (value << shift) & mask
	return
}
