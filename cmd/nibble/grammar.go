package main

import "github.com/dhamidi/nibble/parse"

// Entry is one "key: value" line.
type Entry struct {
	Key   string
	Value string
}

// The grammar is assembled once at startup and shared by every parse.
var entriesParser = buildEntriesParser()

func buildEntriesParser() parse.Parser[[]Entry] {
	isLetter := func(b byte) bool {
		return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b == '_'
	}
	isLetterOrDigit := func(b byte) bool {
		return isLetter(b) || b >= '0' && b <= '9'
	}

	first := parse.Map(parse.Byte("letter", isLetter), byteString)
	rest := parse.ManyString(parse.Map(parse.Byte("letter or digit", isLetterOrDigit), byteString))
	ident := parse.Map2(first, rest, func(a, b string) string { return a + b })

	entry := parse.Map4(ident, parse.Literal(":"), parse.Whitespace(), parse.UntilLineEnd(),
		func(key, _, _, value string) Entry {
			return Entry{Key: key, Value: value}
		})
	line := parse.Before(entry, parse.OrReturn(parse.Literal("\n"), ""))

	// End forces the whole file to be consumed, so leftover garbage
	// surfaces as an error at the first unparseable line.
	return parse.Before(parse.Many(parse.Attempt(line)), parse.End())
}

func byteString(b byte) string { return string(b) }
