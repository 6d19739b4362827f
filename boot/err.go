package boot

import (
	"errors"

	"github.com/ezrec/f32sim/translate"
)

var f = translate.From

var (
	ErrMarker   = errors.New(f("boot image: bad start marker"))
	ErrLength   = errors.New(f("boot image: bad payload length"))
	ErrChecksum = errors.New(f("boot image: checksum mismatch"))
	ErrShort    = errors.New(f("boot image: truncated"))
	ErrTooLarge = errors.New(f("boot image: payload exceeds program memory"))
)

// ErrHexLine reports an unparsable line of a hex word listing.
type ErrHexLine struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrHexLine) Error() string {
	return f("line %d: %q: %v", err.LineNo, err.Line, err.Err)
}

func (err ErrHexLine) Unwrap() error {
	return err.Err
}
