package parse

import (
	"bytes"

	"github.com/dhamidi/nibble/source"
)

// Parser consumes input through a Cursor and either yields a T or fails
// with an *Error. A Parser is immutable after construction and holds only
// what was captured when it was built, so one parser value is safe to run
// any number of times, including concurrently, as long as each run gets
// its own Cursor. Combinators build new parsers; they never modify the
// ones they are given.
type Parser[T any] struct {
	run func(*Cursor) (T, *Error)
}

// From wraps a run function as a Parser.
func From[T any](run func(*Cursor) (T, *Error)) Parser[T] {
	return Parser[T]{run: run}
}

// Run executes the parser against the cursor. The cursor is left wherever
// parsing stopped; see Attempt for restoring it on failure.
func (p Parser[T]) Run(c *Cursor) (T, *Error) {
	return p.run(c)
}

// ParseInput runs the parser over a fresh cursor at the start of in.
func (p Parser[T]) ParseInput(in source.Input) (T, *Error) {
	return p.run(NewCursor(in))
}

// Parse runs the parser over an in-memory string. Convenience for tests
// and embedded grammars.
func (p Parser[T]) Parse(input string) (T, *Error) {
	return p.ParseInput(source.FromString("<input>", input))
}

// Return builds a parser that consumes nothing and yields v.
func Return[T any](v T) Parser[T] {
	return From(func(*Cursor) (T, *Error) {
		return v, nil
	})
}

// Fail builds a parser that consumes nothing and fails with a free-text
// message.
func Fail[T any](msg string) Parser[T] {
	return From(func(c *Cursor) (T, *Error) {
		var zero T
		return zero, NewError(c.Pos(), Text{Text: msg})
	})
}

// Literal matches s exactly. On a mismatch the cursor is restored to
// where it started — primitives are atomic — and the error is anchored
// there, carrying what was actually read followed by what was expected.
func Literal(s string) Parser[string] {
	return From(func(c *Cursor) (string, *Error) {
		start := c.Pos()
		read := c.ReadAhead(len(s))
		if string(read) != s {
			c.SeekTo(start)
			return "", NewError(start, Unexpected{Text: string(read)}, Expected{Text: s})
		}
		return s, nil
	})
}

// LiteralFold matches s ignoring ASCII case and yields the bytes as they
// appeared in the input. Atomic like Literal.
func LiteralFold(s string) Parser[string] {
	return From(func(c *Cursor) (string, *Error) {
		start := c.Pos()
		read := c.ReadAhead(len(s))
		if !bytes.EqualFold(read, []byte(s)) {
			c.SeekTo(start)
			return "", NewError(start, UnexpectedFold{Text: string(read)}, ExpectedFold{Text: s})
		}
		return string(read), nil
	})
}

// Byte matches a single byte satisfying pred. desc names the class of
// byte for error messages ("letter", "digit"). Atomic.
func Byte(desc string, pred func(byte) bool) Parser[byte] {
	return From(func(c *Cursor) (byte, *Error) {
		b, ok := c.Current()
		if !ok {
			return 0, NewError(c.Pos(), Text{Text: "unexpected end of input, expected " + desc})
		}
		if !pred(b) {
			return 0, NewError(c.Pos(), UnexpectedLit{Byte: b}, Text{Text: "expected " + desc})
		}
		c.Advance()
		return b, nil
	})
}

// TakeWhile greedily consumes bytes while pred holds. It always succeeds,
// possibly with an empty result; "at least one" is the caller's job.
func TakeWhile(pred func(byte) bool) Parser[string] {
	return From(func(c *Cursor) (string, *Error) {
		var buf []byte
		for {
			b, ok := c.Current()
			if !ok || !pred(b) {
				break
			}
			buf = append(buf, b)
			c.Advance()
		}
		return string(buf), nil
	})
}

// Whitespace consumes a possibly empty run of spaces, tabs, carriage
// returns and newlines.
func Whitespace() Parser[string] {
	return TakeWhile(func(b byte) bool {
		return b == ' ' || b == '\t' || b == '\r' || b == '\n'
	})
}

// UntilLineEnd consumes everything up to, and excluding, the next '\n' or
// the end of input. Always succeeds.
func UntilLineEnd() Parser[string] {
	return TakeWhile(func(b byte) bool { return b != '\n' })
}

// End succeeds only at end of input.
func End() Parser[struct{}] {
	return From(func(c *Cursor) (struct{}, *Error) {
		if b, ok := c.Current(); ok {
			return struct{}{}, NewError(c.Pos(), UnexpectedLit{Byte: b}, Text{Text: "expected end of input"})
		}
		return struct{}{}, nil
	})
}

// Strings matches the first of the given literals, in order. At least one
// literal is required.
func Strings(ss ...string) Parser[string] {
	if len(ss) == 0 {
		panic("parse: Strings needs at least one alternative")
	}
	p := Literal(ss[0])
	for _, s := range ss[1:] {
		p = Or(p, Literal(s))
	}
	return p
}
