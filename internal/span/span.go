// Package span defines the source-location value type shared by every stage
// of the Mini-PL pipeline: the lexer stamps it on tokens, the parser unions
// it across AST nodes, and the diagnostic taxonomy carries it back out to
// whatever renders errors against the original source text.
package span

import "fmt"

// Span is a half-open byte range (start, end) into a single source file,
// start inclusive and end exclusive. A single-character lexeme at offset i
// has Span{i, i + 1}; EOF has Span{len(src), len(src)}.
type Span struct {
	Start int
	End   int
}

// New constructs a Span from two byte offsets.
func New(start, end int) Span {
	return Span{Start: start, End: end}
}

// At returns the single-byte span covering offset i.
func At(i int) Span {
	return Span{Start: i, End: i + 1}
}

// Len reports the number of bytes the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// Union returns the smallest span covering both s and other. Composite AST
// nodes use this to derive their span from their leftmost and rightmost
// children: the parent's span always contains every child's span.
func (s Span) Union(other Span) Span {
	start := s.Start
	if other.Start < start {
		start = other.Start
	}
	end := s.End
	if other.End > end {
		end = other.End
	}
	return Span{Start: start, End: end}
}

// Slice extracts the lexeme the span covers from src. Callers must ensure
// the span was produced against this exact source text.
func (s Span) Slice(src string) string {
	return src[s.Start:s.End]
}

// StartLen converts the (start, end) representation into the (start,
// length) representation most diagnostic-rendering libraries expect.
func (s Span) StartLen() (start, length int) {
	return s.Start, s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}
