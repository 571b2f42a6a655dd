package source

import "testing"

func TestSpan_EmptyAndLen(t *testing.T) {
	s := Span{File: 0, Start: 3, End: 3}
	if !s.Empty() {
		t.Error("zero-length span must be empty")
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}

	s.End = 7
	if s.Empty() {
		t.Error("non-empty span reported empty")
	}
	if s.Len() != 4 {
		t.Errorf("Len = %d, want 4", s.Len())
	}
}

func TestSpan_Cover(t *testing.T) {
	a := Span{File: 1, Start: 5, End: 10}
	b := Span{File: 1, Start: 2, End: 7}

	got := a.Cover(b)
	if got.Start != 2 || got.End != 10 {
		t.Errorf("Cover = %d-%d, want 2-10", got.Start, got.End)
	}

	// покрытие внутри исходного span'а не меняет границы
	inner := Span{File: 1, Start: 6, End: 8}
	got = a.Cover(inner)
	if got != a {
		t.Errorf("Cover(inner) = %v, want %v", got, a)
	}

	// другой файл игнорируется
	other := Span{File: 2, Start: 0, End: 100}
	if a.Cover(other) != a {
		t.Error("Cover across files must be a no-op")
	}
}
