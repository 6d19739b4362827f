package memory

import (
	"errors"

	"github.com/ezrec/f32sim/translate"
)

var f = translate.From

var (
	ErrMisaligned  = errors.New(f("misaligned access"))
	ErrProgramSize = errors.New(f("program exceeds program memory"))
)
