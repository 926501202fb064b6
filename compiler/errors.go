package compiler

import "fmt"

// ---------------------------------------------------------------------------
// Error types for the compilation pipeline
// ---------------------------------------------------------------------------

// LexErrorKind discriminates lexer failures.
type LexErrorKind int

const (
	LexUnexpectedChar LexErrorKind = iota
	LexUnexpectedEOF
	LexNumberJoinsLetter
	LexNumberOverflow
)

// LexError is a lexer failure anchored to a source span. The source line
// text is captured when the error is built so the error renders a full
// diagnostic on its own.
type LexError struct {
	Kind LexErrorKind
	At   int  // rune offset of the offending span
	Len  int  // span length in runes
	Char rune // offending character, set for LexUnexpectedChar
	Pos  Position
	Line string // text of the offending line
	File string
}

func (e *LexError) message() string {
	switch e.Kind {
	case LexUnexpectedChar:
		return fmt.Sprintf("unexpected character: %c", e.Char)
	case LexUnexpectedEOF:
		return "unexpected end of file"
	case LexNumberJoinsLetter:
		return "numbers must be separated from letters"
	case LexNumberOverflow:
		return "integer literal overflows 64 bits"
	}
	return "lex error"
}

func (e *LexError) Error() string {
	d := Diagnostic{
		File:    e.File,
		Pos:     e.Pos,
		Message: e.message(),
		Excerpt: e.Line,
		Width:   e.Len,
	}
	return d.String()
}

// ParseError is a parser failure: either the token sequence ended where
// more input was required, or the next token was not the expected kind.
// Expected names a single representative kind even where the grammar
// allows several alternatives.
type ParseError struct {
	EOF      bool
	Got      Token
	Expected TokenType
}

func (e *ParseError) Error() string {
	if e.EOF {
		return fmt.Sprintf("unexpected end of file, expected %s", e.Expected)
	}
	return fmt.Sprintf("unexpected token: got %s, expected %s", e.Got, e.Expected)
}

// UndefinedVariableError reports a reference to a name with no preceding
// declaration. It is always wrapped in a GenError.
type UndefinedVariableError struct {
	Name string
	At   int // rune offset of the reference
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable: %s", e.Name)
}

// GenError is a code-generation failure. Stage names the IR operation
// that failed; Err is the underlying cause, propagated unchanged from
// the backend or the variable environment.
type GenError struct {
	Stage string
	Err   error
}

func (e *GenError) Error() string {
	return fmt.Sprintf("code generation failed at %s: %v", e.Stage, e.Err)
}

func (e *GenError) Unwrap() error { return e.Err }
