// Package boot handles the F32 boot image, as sent to the board's loader.
//
// An image is a stream of little-endian words:
//
//	MARKER  LENGTH  PAYLOAD...  CHECKSUM
//
// where LENGTH is the payload size in bytes, and CHECKSUM is the
// wrapping sum of the payload words.
package boot

import (
	"encoding/binary"
	"io"

	"github.com/ezrec/f32sim/memory"
)

const (
	MARKER = 0x010002B0 // Start of image marker.
)

// Checksum returns the additive checksum of words.
func Checksum(words []uint32) (sum uint32) {
	for _, word := range words {
		sum += word
	}
	return
}

// Encode writes words as a boot image.
func Encode(w io.Writer, words []uint32) (err error) {
	if len(words) > memory.PROGRAM_WORDS {
		err = ErrTooLarge
		return
	}

	image := make([]uint32, 0, len(words)+3)
	image = append(image, MARKER, uint32(len(words)*4))
	image = append(image, words...)
	image = append(image, Checksum(words))

	err = binary.Write(w, binary.LittleEndian, image)
	return
}

// Decode reads a boot image, returning its payload words.
func Decode(r io.Reader) (words []uint32, err error) {
	var header [2]uint32
	err = binary.Read(r, binary.LittleEndian, header[:])
	if err != nil {
		err = short(err)
		return
	}

	if header[0] != MARKER {
		err = ErrMarker
		return
	}

	length := header[1]
	if length%4 != 0 {
		err = ErrLength
		return
	}
	if length/4 > memory.PROGRAM_WORDS {
		err = ErrTooLarge
		return
	}

	payload := make([]uint32, length/4+1)
	err = binary.Read(r, binary.LittleEndian, payload)
	if err != nil {
		err = short(err)
		return
	}

	sum := payload[len(payload)-1]
	payload = payload[:len(payload)-1]
	if Checksum(payload) != sum {
		err = ErrChecksum
		return
	}

	words = payload
	return
}

// short maps an end of stream to ErrShort.
func short(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrShort
	}
	return err
}
