package parse

import (
	"fmt"
	"strings"
)

// Message is one fragment of a parse failure. The set of kinds is closed:
// every implementation lives in this file, so rendering can switch
// exhaustively and a new kind that misses a case is caught here rather
// than silently skipped.
type Message interface {
	message()
}

// ExpectedLit reports a single byte the input should have contained.
type ExpectedLit struct{ Byte byte }

// Expected reports a string the input should have contained.
type Expected struct{ Text string }

// ExpectedFold is Expected under ASCII case folding.
type ExpectedFold struct{ Text string }

// UnexpectedLit reports the single byte actually found.
type UnexpectedLit struct{ Byte byte }

// Unexpected reports the string actually found.
type Unexpected struct{ Text string }

// UnexpectedFold is Unexpected under ASCII case folding.
type UnexpectedFold struct{ Text string }

// Text is a free-form fragment.
type Text struct{ Text string }

// Nested carries the failure of an alternative that was also tried,
// preserving the full branch trace of Or chains.
type Nested struct{ Err *Error }

func (ExpectedLit) message()    {}
func (Expected) message()       {}
func (ExpectedFold) message()   {}
func (UnexpectedLit) message()  {}
func (Unexpected) message()     {}
func (UnexpectedFold) message() {}
func (Text) message()           {}
func (Nested) message()         {}

// Error is a structured, recoverable parse failure: the deepest relevant
// position plus an ordered sequence of message fragments. It is always
// returned as a value from Parser.Run, never signalled any other way.
type Error struct {
	Pos      int
	Messages []Message
}

// NewError builds an Error anchored at pos.
func NewError(pos int, messages ...Message) *Error {
	return &Error{Pos: pos, Messages: messages}
}

// Errorf builds an Error with a single free-text fragment.
func Errorf(pos int, format string, args ...any) *Error {
	return NewError(pos, Text{Text: fmt.Sprintf(format, args...)})
}

// Nest returns a copy of e with other's failure appended as a trailing
// nested fragment. The anchor position stays e's.
func (e *Error) Nest(other *Error) *Error {
	messages := make([]Message, 0, len(e.Messages)+1)
	messages = append(messages, e.Messages...)
	messages = append(messages, Nested{Err: other})
	return &Error{Pos: e.Pos, Messages: messages}
}

func (e *Error) Error() string {
	var b strings.Builder
	e.render(&b)
	return b.String()
}

func (e *Error) render(b *strings.Builder) {
	for i, m := range e.Messages {
		if i > 0 {
			b.WriteString(", ")
		}
		renderMessage(b, m)
	}
	if len(e.Messages) == 0 {
		b.WriteString("parse failed")
	}
}

func renderMessage(b *strings.Builder, m Message) {
	switch m := m.(type) {
	case ExpectedLit:
		fmt.Fprintf(b, "expected %q", m.Byte)
	case Expected:
		fmt.Fprintf(b, "expected %q", m.Text)
	case ExpectedFold:
		fmt.Fprintf(b, "expected %q (ignoring case)", m.Text)
	case UnexpectedLit:
		fmt.Fprintf(b, "unexpected %q", m.Byte)
	case Unexpected:
		if m.Text == "" {
			b.WriteString("unexpected end of input")
			return
		}
		fmt.Fprintf(b, "unexpected %q", m.Text)
	case UnexpectedFold:
		fmt.Fprintf(b, "unexpected %q (ignoring case)", m.Text)
	case Text:
		b.WriteString(m.Text)
	case Nested:
		b.WriteString("(also tried: ")
		m.Err.render(b)
		b.WriteString(")")
	default:
		panic(fmt.Sprintf("parse: unknown message kind %T", m))
	}
}
