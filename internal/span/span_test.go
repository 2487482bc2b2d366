package span

import "testing"

func TestUnionCoversBothSpans(t *testing.T) {
	a := New(4, 10)
	b := New(0, 6)
	u := a.Union(b)
	if u.Start != 0 || u.End != 10 {
		t.Fatalf("got %v", u)
	}
}

func TestAtIsSingleByte(t *testing.T) {
	s := At(5)
	if s.Start != 5 || s.End != 6 || s.Len() != 1 {
		t.Fatalf("got %v", s)
	}
}

func TestSliceExtractsLexeme(t *testing.T) {
	src := "var x"
	s := New(0, 3)
	if got := s.Slice(src); got != "var" {
		t.Fatalf("got %q", got)
	}
}

func TestStartLen(t *testing.T) {
	s := New(3, 8)
	start, length := s.StartLen()
	if start != 3 || length != 5 {
		t.Fatalf("got start=%d length=%d", start, length)
	}
}
