// Package source models parser input: single files, ordered collections of
// files addressed as one contiguous byte space, and caret diagnostics
// rendered against the original text.
package source

import (
	"fmt"
	"os"
)

// Input is the read surface cursors and parsers consume. Both *File and
// *Set satisfy it.
type Input interface {
	// Len returns the total number of addressable bytes.
	Len() int
	// ReadByteAt returns the byte at pos. The second result is false at or
	// past the end of input; that is an ordinary sentinel, not an error.
	ReadByteAt(pos int) (byte, bool)
	// ReadSpan returns the bytes in the half-open range [from, to).
	ReadSpan(from, to int) []byte
}

// File is one named, immutable input. Its content is held in memory, so
// reads never fail after Open succeeds.
type File struct {
	name string
	data []byte
}

// Open reads the file at path into a File. An unreadable path is an
// environment failure reported as an ordinary error.
func Open(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open source file: %w", err)
	}
	return &File{name: path, data: data}, nil
}

// FromBytes wraps an in-memory buffer as a File. The buffer must not be
// modified afterwards.
func FromBytes(name string, data []byte) *File {
	return &File{name: name, data: data}
}

// FromString wraps a string as a File.
func FromString(name, text string) *File {
	return &File{name: name, data: []byte(text)}
}

func (f *File) Name() string { return f.name }

func (f *File) Len() int { return len(f.data) }

func (f *File) ReadByteAt(pos int) (byte, bool) {
	if pos < 0 || pos >= len(f.data) {
		return 0, false
	}
	return f.data[pos], true
}

// ReadSpan returns the bytes in [from, to). from == to yields an empty
// slice. Ranges outside [0, Len()] or with from > to violate the caller's
// invariants and panic.
func (f *File) ReadSpan(from, to int) []byte {
	if from < 0 || to > len(f.data) || from > to {
		panic(fmt.Sprintf("source: span [%d,%d) outside file %q of length %d", from, to, f.name, len(f.data)))
	}
	return f.data[from:to]
}

// PosToLineCol translates a byte offset into 1-based line and column
// numbers. Columns count bytes since the last newline. The byte
// immediately following a '\n' is column 1 of the next line. pos == Len()
// is valid and names the position just past the final byte.
func (f *File) PosToLineCol(pos int) (line, col int) {
	if pos < 0 || pos > len(f.data) {
		panic(fmt.Sprintf("source: position %d outside file %q of length %d", pos, f.name, len(f.data)))
	}
	line, col = 1, 1
	for i := 0; i < pos; i++ {
		if f.data[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// LineColToPos is the inverse of PosToLineCol. An unreachable coordinate
// pair indicates a broken invariant in the caller and panics.
func (f *File) LineColToPos(line, col int) int {
	if line < 1 || col < 1 {
		panic(fmt.Sprintf("source: invalid coordinate %d:%d in file %q", line, col, f.name))
	}
	pos := 0
	for l := 1; l < line; l++ {
		for pos < len(f.data) && f.data[pos] != '\n' {
			pos++
		}
		if pos >= len(f.data) {
			panic(fmt.Sprintf("source: line %d past end of file %q", line, f.name))
		}
		pos++ // consume the '\n'
	}
	pos += col - 1
	if pos > len(f.data) {
		panic(fmt.Sprintf("source: column %d unreachable on line %d of file %q", col, line, f.name))
	}
	// The column must not run past the end of its own line.
	for i := pos - col + 1; i < pos; i++ {
		if f.data[i] == '\n' {
			panic(fmt.Sprintf("source: column %d unreachable on line %d of file %q", col, line, f.name))
		}
	}
	return pos
}

// LineExtent returns the byte offsets bounding the line containing pos.
// end excludes the trailing newline; for the last line it is Len().
func (f *File) LineExtent(pos int) (start, end int) {
	if pos < 0 || pos > len(f.data) {
		panic(fmt.Sprintf("source: position %d outside file %q of length %d", pos, f.name, len(f.data)))
	}
	start = pos
	for start > 0 && f.data[start-1] != '\n' {
		start--
	}
	end = pos
	for end < len(f.data) && f.data[end] != '\n' {
		end++
	}
	return start, end
}
