package source

import (
	"fmt"
	"io"
	"strings"
)

// Span is a half-open [Start, End) byte range, global when used with a
// Set and file-local when used with a File.
type Span struct {
	Start int
	End   int
}

// RenderDiagnostic writes a three-line excerpt for msg anchored at span:
//
//	main.cfg:2:5 - 2:8: expected "yes"
//	mode nop
//	     ^^^
//
// The header carries both ends of the span as 1-based line:column pairs.
// The second line is the source line containing span.Start, and the caret
// line underlines the span within it. A span reaching past the first line
// is underlined to the end of that line. Advisory output only; rendering
// problems surface as write errors.
func (s *Set) RenderDiagnostic(w io.Writer, msg string, span Span) error {
	f, local := s.ToLocal(span.Start)
	if span.End < span.Start || span.End > s.Len() {
		panic(fmt.Sprintf("source: diagnostic span [%d,%d) outside set of length %d", span.Start, span.End, s.Len()))
	}
	endLocal := span.End - s.ToGlobal(f, 0)
	if endLocal > f.Len() {
		endLocal = f.Len()
	}
	return renderDiagnostic(w, f, msg, local, endLocal)
}

// RenderDiagnostic is the single-file form of Set.RenderDiagnostic.
func (f *File) RenderDiagnostic(w io.Writer, msg string, span Span) error {
	if span.End < span.Start || span.End > f.Len() {
		panic(fmt.Sprintf("source: diagnostic span [%d,%d) outside file %q of length %d", span.Start, span.End, f.Name(), f.Len()))
	}
	return renderDiagnostic(w, f, msg, span.Start, span.End)
}

func renderDiagnostic(w io.Writer, f *File, msg string, start, end int) error {
	startLine, startCol := f.PosToLineCol(start)
	endLine, endCol := f.PosToLineCol(end)

	lineStart, lineEnd := f.LineExtent(start)
	text := string(f.ReadSpan(lineStart, lineEnd))

	width := endCol - startCol
	if endLine != startLine {
		width = lineEnd - start
	}
	if width < 1 {
		width = 1
	}

	_, err := fmt.Fprintf(w, "%s:%d:%d - %d:%d: %s\n%s\n%s%s\n",
		f.Name(), startLine, startCol, endLine, endCol, msg,
		text,
		strings.Repeat(" ", startCol-1), strings.Repeat("^", width))
	return err
}
