// Package seq reads and writes reference bit sequences in their text form:
// one bit per line or one bit per character, with blank lines, whitespace,
// and #-comments ignored. Files may be UTF-8 or UTF-16 (BOM-detected), since
// reference streams often come from Windows tooling.
package seq

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/lfsrkit/internal/mmfile"
)

const (
	// scannerInitialBufferSize is the initial buffer size for the sequence scanner
	scannerInitialBufferSize = 64 * 1024 // 64KB

	// scannerMaxLineSize is the maximum line size for the sequence scanner.
	// Emit writes a whole stream on one line, so this bounds the largest
	// single-line stream ReadFile can load back.
	scannerMaxLineSize = 64 * 1024 * 1024 // 64MB
)

// ParseReader decodes a bit sequence from r. The input is transcoded to
// UTF-8 first: a UTF-16 LE/BE byte-order mark switches the decoder, plain
// input passes through untouched.
func ParseReader(r io.Reader) ([]int, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	scanner := bufio.NewScanner(transform.NewReader(r, decoder))
	// Increase buffer size for long lines (Emit puts the whole stream on one)
	buf := make([]byte, 0, scannerInitialBufferSize)
	scanner.Buffer(buf, scannerMaxLineSize)

	var bits []int
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		for _, ch := range line {
			switch ch {
			case '0':
				bits = append(bits, 0)
			case '1':
				bits = append(bits, 1)
			case ' ', '\t', '\r', ',':
				// separators between bits are fine
			default:
				return nil, fmt.Errorf("line %d: unexpected character %q in bit sequence", lineNo, ch)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading bit sequence: %w", err)
	}
	return bits, nil
}

// Parse decodes a bit sequence from an in-memory buffer.
func Parse(data []byte) ([]int, error) {
	return ParseReader(bytes.NewReader(data))
}

// ReadFile loads a reference sequence from path. The file is memory-mapped
// so large reference streams are not copied into the heap before parsing.
func ReadFile(path string) ([]int, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("opening reference sequence %s: %w", path, err)
	}
	defer cleanup() //nolint:errcheck // read-only mapping, nothing to lose
	return Parse(data)
}

// Emit renders bits one character per bit on a single newline-terminated
// line, the densest of the accepted input forms.
func Emit(bits []int) []byte {
	out := make([]byte, 0, len(bits)+1)
	for _, b := range bits {
		if b == 0 {
			out = append(out, '0')
		} else {
			out = append(out, '1')
		}
	}
	return append(out, '\n')
}

// WriteFile writes bits to path in Emit's format.
func WriteFile(path string, bits []int) error {
	return os.WriteFile(path, Emit(bits), 0644)
}
