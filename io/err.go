package io

import (
	"errors"

	"github.com/ezrec/f32sim/translate"
)

var f = translate.From

var (
	ErrConsoleWrite = errors.New(f("console write"))
)

// ErrUnmapped reports an access to an unassigned device register.
type ErrUnmapped struct {
	Addr  uint32
	Value uint32
	Write bool
}

func (err ErrUnmapped) Error() string {
	if err.Write {
		return f("write_hwregs(%08x, %08x)", err.Addr, err.Value)
	}
	return f("read_hwregs(%08x)", err.Addr)
}
