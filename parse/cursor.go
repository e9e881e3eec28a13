package parse

import "github.com/dhamidi/nibble/source"

// Cursor is the mutable read/seek head parsers consume input through. It
// does not own its input; it is a position into a source.Input (a lone
// File or a whole Set). One Cursor belongs to exactly one in-progress
// parse and must not be shared across concurrent parses.
//
// The position ranges over [0, Len()]: the final slot is one past the last
// byte, and reading there yields the end-of-input sentinel. The cursor
// does no bounds policing beyond that — reading past the end just keeps
// reporting end of input, and every parser must treat that as an ordinary
// non-matching value, never as an error by itself.
type Cursor struct {
	in  source.Input
	pos int
}

// NewCursor positions a fresh cursor at the start of in.
func NewCursor(in source.Input) *Cursor {
	return &Cursor{in: in}
}

// Input returns the input this cursor reads.
func (c *Cursor) Input() source.Input { return c.in }

// Pos returns the current position.
func (c *Cursor) Pos() int { return c.pos }

// SeekTo moves the cursor to pos.
func (c *Cursor) SeekTo(pos int) { c.pos = pos }

// Skip advances the cursor by n without reading.
func (c *Cursor) Skip(n int) { c.pos += n }

// Current returns the byte under the cursor; false at end of input.
func (c *Cursor) Current() (byte, bool) {
	return c.in.ReadByteAt(c.pos)
}

// Advance moves one byte forward.
func (c *Cursor) Advance() { c.pos++ }

// Retreat moves one byte back.
func (c *Cursor) Retreat() { c.pos-- }

// PeekNext returns the byte after the current one without moving.
func (c *Cursor) PeekNext() (byte, bool) {
	return c.in.ReadByteAt(c.pos + 1)
}

// PeekPrev returns the byte before the current one without moving.
func (c *Cursor) PeekPrev() (byte, bool) {
	return c.in.ReadByteAt(c.pos - 1)
}

// ReadAhead reads up to n bytes starting at the cursor and advances past
// what it read. Near the end of input the result is shorter than n; the
// cursor still only advances by what was actually read. This is the one
// operation that both reads and moves, used for fixed-width tokens.
func (c *Cursor) ReadAhead(n int) []byte {
	end := c.pos + n
	if end > c.in.Len() {
		end = c.in.Len()
	}
	if end <= c.pos {
		return nil
	}
	data := c.in.ReadSpan(c.pos, end)
	c.pos = end
	return data
}
