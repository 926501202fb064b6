package compiler

import "sort"

// ---------------------------------------------------------------------------
// Source: random-access character buffer with position lookup
// ---------------------------------------------------------------------------

// Position represents a 1-based source location.
type Position struct {
	Line   int
	Column int
}

// Source holds program text as an indexable rune sequence plus a cursor.
// Offsets handed out by the cursor are rune offsets into the buffer.
type Source struct {
	name  string
	src   []rune
	off   int
	lines []int // rune offsets of line starts, always begins with 0
}

// NewSource creates a source buffer for the given text. The name is used
// in diagnostics; it may be empty.
func NewSource(name, text string) *Source {
	src := []rune(text)
	lines := []int{0}
	for i, r := range src {
		if r == '\n' {
			lines = append(lines, i+1)
		}
	}
	return &Source{name: name, src: src, lines: lines}
}

// Name returns the name the buffer was created with.
func (s *Source) Name() string { return s.name }

// Len returns the buffer length in runes.
func (s *Source) Len() int { return len(s.src) }

// Offset returns the current cursor offset.
func (s *Source) Offset() int { return s.off }

// Finished reports whether the cursor has reached the end of the buffer.
func (s *Source) Finished() bool { return s.off >= len(s.src) }

// Peek returns the rune at the cursor without consuming it.
func (s *Source) Peek() (rune, bool) {
	if s.Finished() {
		return 0, false
	}
	return s.src[s.off], true
}

// Advance returns the rune at the cursor and moves the cursor forward.
// Past the end of the buffer it reports false and does not move.
func (s *Source) Advance() (rune, bool) {
	if s.Finished() {
		return 0, false
	}
	r := s.src[s.off]
	s.off++
	return r, true
}

// SkipWhitespace advances past a maximal run of whitespace.
func (s *Source) SkipWhitespace() {
	for {
		r, ok := s.Peek()
		if !ok || !isWhitespace(r) {
			return
		}
		s.off++
	}
}

// Slice returns the text between two rune offsets.
func (s *Source) Slice(begin, end int) string {
	return string(s.src[begin:end])
}

// PositionOf computes the 1-based (line, column) of a rune offset. The
// line is the number of newlines strictly before the offset plus one; the
// column counts runes since the last newline. Line starts are indexed
// once at construction, so the lookup is a binary search.
func (s *Source) PositionOf(offset int) Position {
	i := sort.Search(len(s.lines), func(i int) bool { return s.lines[i] > offset }) - 1
	return Position{Line: i + 1, Column: offset - s.lines[i] + 1}
}

// LineText returns the full text of a 1-based line, excluding its
// terminating newline. It returns "" if the line does not exist.
func (s *Source) LineText(line int) string {
	if line < 1 || line > len(s.lines) {
		return ""
	}
	start := s.lines[line-1]
	end := len(s.src)
	if line < len(s.lines) {
		end = s.lines[line] - 1
	}
	return string(s.src[start:end])
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
