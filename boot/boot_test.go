package boot

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/f32sim/memory"
)

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	var buff bytes.Buffer
	err := Encode(&buff, []uint32{0x11223344, 2})
	assert.NoError(err)

	assert.Equal([]byte{
		0xb0, 0x02, 0x00, 0x01,
		0x08, 0x00, 0x00, 0x00,
		0x44, 0x33, 0x22, 0x11,
		0x02, 0x00, 0x00, 0x00,
		0x46, 0x33, 0x22, 0x11,
	}, buff.Bytes())

	words, err := Decode(&buff)
	assert.NoError(err)
	assert.Equal([]uint32{0x11223344, 2}, words)

	err = Encode(&buff, make([]uint32, memory.PROGRAM_WORDS+1))
	assert.ErrorIs(err, ErrTooLarge)
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	good := []byte{
		0xb0, 0x02, 0x00, 0x01,
		0x04, 0x00, 0x00, 0x00,
		0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff,
	}

	table := [...]struct {
		name  string
		image []byte
		words []uint32
		err   error
	}{
		{"good", good, []uint32{0xffffffff}, nil},
		{"empty", []byte{}, nil, ErrShort},
		{"header", good[:6], nil, ErrShort},
		{"payload", good[:12], nil, ErrShort},
		{"marker", append([]byte{0xb1}, good[1:]...), nil, ErrMarker},
		{"length", append(append([]byte{}, good[:4]...), append([]byte{0x03}, good[5:]...)...), nil, ErrLength},
		{"checksum", append(append([]byte{}, good[:15]...), 0xfe), nil, ErrChecksum},
		{"nothing", []byte{0xb0, 0x02, 0x00, 0x01, 0, 0, 0, 0, 0, 0, 0, 0}, []uint32{}, nil},
	}

	for _, entry := range table {
		words, err := Decode(bytes.NewReader(entry.image))
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.name)
			continue
		}
		assert.NoError(err, entry.name)
		assert.Equal(entry.words, words, entry.name)
	}
}

func TestHex(t *testing.T) {
	assert := assert.New(t)

	words, err := ReadHex(strings.NewReader("0000001f\n\n  DEADBEEF\n0x10\n"))
	assert.NoError(err)
	assert.Equal([]uint32{0x1f, 0xdeadbeef, 0x10}, words)

	var buff bytes.Buffer
	err = WriteHex(&buff, words)
	assert.NoError(err)
	assert.Equal("0000001f\ndeadbeef\n00000010\n", buff.String())

	_, err = ReadHex(strings.NewReader("00\nzz\n"))
	var hl *ErrHexLine
	if assert.True(errors.As(err, &hl)) {
		assert.Equal(2, hl.LineNo)
	}

	_, err = ReadHex(strings.NewReader("100000000\n"))
	assert.Error(err)
}
