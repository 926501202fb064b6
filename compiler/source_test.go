package compiler

import "testing"

func TestSourceCursor(t *testing.T) {
	src := NewSource("", "ab")

	if src.Finished() {
		t.Fatal("fresh source reports finished")
	}
	if r, ok := src.Peek(); !ok || r != 'a' {
		t.Errorf("Peek() = %q, %v, want 'a', true", r, ok)
	}
	if src.Offset() != 0 {
		t.Errorf("Peek moved the cursor to %d", src.Offset())
	}

	if r, ok := src.Advance(); !ok || r != 'a' {
		t.Errorf("Advance() = %q, %v, want 'a', true", r, ok)
	}
	if r, ok := src.Advance(); !ok || r != 'b' {
		t.Errorf("Advance() = %q, %v, want 'b', true", r, ok)
	}

	if !src.Finished() {
		t.Error("source not finished after consuming all input")
	}
	if _, ok := src.Advance(); ok {
		t.Error("Advance past end reported ok")
	}
	if src.Offset() != 2 {
		t.Errorf("Advance past end moved the cursor to %d", src.Offset())
	}
}

func TestSourceSkipWhitespace(t *testing.T) {
	src := NewSource("", " \t\n\r  x")
	src.SkipWhitespace()
	if r, ok := src.Peek(); !ok || r != 'x' {
		t.Errorf("after SkipWhitespace: Peek() = %q, %v, want 'x', true", r, ok)
	}

	// No-op when already at a non-whitespace rune or at the end.
	src.SkipWhitespace()
	if src.Offset() != 6 {
		t.Errorf("SkipWhitespace moved past 'x' to offset %d", src.Offset())
	}
}

func TestSourcePositionOf(t *testing.T) {
	src := NewSource("", "ab\ncd\n\nef")

	tests := []struct {
		offset int
		want   Position
	}{
		{0, Position{1, 1}},
		{1, Position{1, 2}},
		{2, Position{1, 3}}, // the newline itself
		{3, Position{2, 1}},
		{4, Position{2, 2}},
		{6, Position{3, 1}}, // empty line
		{7, Position{4, 1}},
		{8, Position{4, 2}},
	}

	for _, tc := range tests {
		if got := src.PositionOf(tc.offset); got != tc.want {
			t.Errorf("PositionOf(%d) = %v, want %v", tc.offset, got, tc.want)
		}
	}
}

func TestSourceLineText(t *testing.T) {
	src := NewSource("", "ab\ncd\n\nef")

	tests := []struct {
		line int
		want string
	}{
		{1, "ab"},
		{2, "cd"},
		{3, ""},
		{4, "ef"},
		{0, ""},
		{5, ""},
		{99, ""},
	}

	for _, tc := range tests {
		if got := src.LineText(tc.line); got != tc.want {
			t.Errorf("LineText(%d) = %q, want %q", tc.line, got, tc.want)
		}
	}
}

func TestSourceLineTextTrailingNewline(t *testing.T) {
	src := NewSource("", "ab\n")
	if got := src.LineText(1); got != "ab" {
		t.Errorf("LineText(1) = %q, want %q", got, "ab")
	}
	if got := src.LineText(2); got != "" {
		t.Errorf("LineText(2) = %q, want empty", got)
	}
}
