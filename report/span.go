package report

import "fmt"

// TextSpan represents a range of bytes in the source text.  Spans are
// half-open: Start is the offset of the first byte of the construct and End is
// one past its last byte.  Every AST node carries a span so that later stages
// can produce positioned diagnostics without re-reading the source.
type TextSpan struct {
	Start int
	End   int
}

// NewSpan creates a new text span over the given byte range.
func NewSpan(start, end int) *TextSpan {
	return &TextSpan{Start: start, End: end}
}

// SpanOver computes the span covering two spans: from the start of the first
// to the end of the second.
func SpanOver(start, end *TextSpan) *TextSpan {
	return &TextSpan{Start: start.Start, End: end.End}
}

func (ts *TextSpan) String() string {
	return fmt.Sprintf("%d..%d", ts.Start, ts.End)
}
