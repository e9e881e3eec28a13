// Package parse is a parser-combinator engine for small textual formats.
//
// # Overview
//
// Grammars are built by composing Parser values instead of writing
// recursive-descent functions by hand. A Parser[T] reads bytes through a
// Cursor and either yields a T or fails with a structured *Error that
// records where and why. Failures resolve through the source package into
// file:line:col diagnostics with caret-underlined excerpts.
//
// # Architecture
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│ source.File │────▶│   Cursor    │────▶│  Parser[T]  │
//	│ source.Set  │     │ (position)  │     │  (grammar)  │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	       │                                       │
//	       ▼                                       ▼
//	┌─────────────┐                         ┌─────────────┐
//	│ Diagnostic  │◀────────────────────────│   *Error    │
//	│ Rendering   │                         │ (position + │
//	└─────────────┘                         │  fragments) │
//	                                        └─────────────┘
//
// # Building grammars
//
// Primitives match bytes directly:
//
//	colon := parse.Literal(":")
//	letter := parse.Byte("letter", isLetter)
//	rest := parse.UntilLineEnd()
//
// Combinators compose them:
//
//	entry := parse.Map4(ident, colon, parse.Whitespace(), rest,
//		func(key, _, _, value string) Entry {
//			return Entry{Key: key, Value: value}
//		})
//
// Parser values are immutable: build a grammar once, keep it in a
// package-level variable, and reuse it across any number of parses. Each
// parse gets its own Cursor; a Cursor must never be shared between
// concurrent parses.
//
// # Backtracking
//
// No combinator rewinds the cursor implicitly. When a parser fails
// partway through, the cursor stays at the failure point, which keeps the
// deepest position reached available for error reporting. Attempt is the
// single opt-in rewind point:
//
//	parse.Or(parse.Attempt(longForm), shortForm)
//
// Primitives themselves are atomic — a failed Literal puts the cursor
// back where it started — so single-token alternatives compose under Or
// without Attempt.
//
// # Failure values
//
// An *Error carries a byte position and an ordered list of Message
// fragments. Or chains attach the losing branch's error as a Nested
// fragment, so "tried A, also tried B" survives into the final message.
// The Message kinds form a closed set; rendering switches over all of
// them exhaustively.
package parse
