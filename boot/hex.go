package boot

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadHex reads a listing of one hexadecimal word per line.
// Blank lines are ignored.
func ReadHex(r io.Reader) (words []uint32, err error) {
	scanner := bufio.NewScanner(r)

	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}

		var word uint64
		word, err = strconv.ParseUint(strings.TrimPrefix(line, "0x"), 16, 32)
		if err != nil {
			err = &ErrHexLine{LineNo: lineno, Line: line, Err: err}
			return
		}

		words = append(words, uint32(word))
	}

	err = scanner.Err()
	return
}

// WriteHex writes words as a listing of one 8 digit hexadecimal word per line.
func WriteHex(w io.Writer, words []uint32) (err error) {
	bw := bufio.NewWriter(w)
	for _, word := range words {
		_, err = fmt.Fprintf(bw, "%08x\n", word)
		if err != nil {
			return
		}
	}

	err = bw.Flush()
	return
}
