package compiler

import (
	"strconv"
	"unicode"
)

// ---------------------------------------------------------------------------
// Lexer: tokenizer for tack source
// ---------------------------------------------------------------------------

// Lexer tokenizes a source buffer.
type Lexer struct {
	src *Source
}

// Lex tokenizes the whole buffer and returns the ordered token sequence,
// or the first error encountered. The lexer does not recover.
func Lex(src *Source) ([]Token, error) {
	l := &Lexer{src: src}
	var tokens []Token

	for {
		l.src.SkipWhitespace()
		ch, ok := l.src.Peek()
		if !ok {
			break
		}

		switch {
		case isDigit(ch):
			tok, err := l.lexNumber()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)

		case isLetter(ch) || ch == '_':
			tokens = append(tokens, l.lexIdentOrKeyword())

		default:
			typ, ok := singleCharTokens[ch]
			if !ok {
				return nil, l.lexError(LexUnexpectedChar, l.src.Offset(), 1, ch)
			}
			at := l.src.Offset()
			l.src.Advance()
			tokens = append(tokens, Token{Type: typ, Literal: string(ch), At: at, Len: 1})
		}
	}

	return tokens, nil
}

var singleCharTokens = map[rune]TokenType{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenStar,
	'(': TokenLParen,
	')': TokenRParen,
	'{': TokenLBrace,
	'}': TokenRBrace,
	'=': TokenAssign,
	';': TokenSemicolon,
}

// lexNumber scans a maximal digit run. A run immediately followed by an
// ASCII letter is an error covering the whole run; a run that does not
// fit in a uint64 is an overflow error.
func (l *Lexer) lexNumber() (Token, error) {
	begin := l.src.Offset()

	for {
		ch, ok := l.src.Peek()
		if !ok || !isDigit(ch) {
			break
		}
		l.src.Advance()
	}

	length := l.src.Offset() - begin
	if ch, ok := l.src.Peek(); ok && isASCIILetter(ch) {
		return Token{}, l.lexError(LexNumberJoinsLetter, begin, length, ch)
	}

	text := l.src.Slice(begin, l.src.Offset())
	value, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return Token{}, l.lexError(LexNumberOverflow, begin, length, 0)
	}

	return Token{Type: TokenNumber, Literal: text, Value: value, At: begin, Len: length}, nil
}

// lexIdentOrKeyword scans a maximal run of alphanumerics and underscores.
func (l *Lexer) lexIdentOrKeyword() Token {
	begin := l.src.Offset()
	l.src.Advance()

	for {
		ch, ok := l.src.Peek()
		if !ok || !(isLetter(ch) || isDigit(ch) || ch == '_') {
			break
		}
		l.src.Advance()
	}

	text := l.src.Slice(begin, l.src.Offset())
	typ := TokenIdent
	if kw, ok := keywords[text]; ok {
		typ = kw
	}
	return Token{Type: typ, Literal: text, At: begin, Len: l.src.Offset() - begin}
}

// lexError resolves the offset to a position and captures the offending
// line so the error renders a complete diagnostic.
func (l *Lexer) lexError(kind LexErrorKind, at, length int, ch rune) *LexError {
	pos := l.src.PositionOf(at)
	return &LexError{
		Kind: kind,
		At:   at,
		Len:  length,
		Char: ch,
		Pos:  pos,
		Line: l.src.LineText(pos.Line),
		File: l.src.Name(),
	}
}

func isLetter(r rune) bool {
	return unicode.IsLetter(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
