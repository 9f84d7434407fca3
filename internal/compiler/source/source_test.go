package source

import "testing"

func TestNextAdvancesLineAndColumn(t *testing.T) {
	s := FromString("ab\ncd")

	want := []struct {
		ch        int
		line, col int
	}{
		{'a', 1, 1},
		{'b', 1, 2},
		{'\n', 1, 3},
		{'c', 2, 1},
		{'d', 2, 2},
		{EOF, 2, 2},
	}

	for i, w := range want {
		ch := s.Next()
		if ch != w.ch {
			t.Fatalf("step %d: Next() = %q, want %q", i, ch, w.ch)
		}
		if s.Line() != w.line || s.Column() != w.col {
			t.Fatalf("step %d: position = (%d,%d), want (%d,%d)", i, s.Line(), s.Column(), w.line, w.col)
		}
	}
}

func TestPutBackIsConsumedBeforeStream(t *testing.T) {
	s := FromString("xy")

	first := s.Next() // 'x'
	s.PutBack(first)

	if got := s.Next(); got != first {
		t.Fatalf("Next() after PutBack = %q, want %q", got, first)
	}
	if got := s.Next(); got != 'y' {
		t.Fatalf("Next() after pushback drained = %q, want 'y'", got)
	}
}

func TestPutBackTwiceInARowPanics(t *testing.T) {
	s := FromString("z")

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on a second consecutive PutBack")
		}
	}()

	s.PutBack('a')
	s.PutBack('b')
}

func TestCloseOnEOF(t *testing.T) {
	s := FromString("")

	if !s.IsOpen() {
		t.Fatal("source should start open")
	}
	if ch := s.Next(); ch != EOF {
		t.Fatalf("Next() on empty source = %q, want EOF", ch)
	}
	if s.IsOpen() {
		t.Fatal("source should close itself on first EOF")
	}
	if ch := s.Next(); ch != EOF {
		t.Fatalf("Next() after close = %q, want EOF", ch)
	}
}
