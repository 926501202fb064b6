package compiler

import "fmt"

// ---------------------------------------------------------------------------
// Token types for the tack lexer
// ---------------------------------------------------------------------------

// TokenType represents the type of a token.
type TokenType int

const (
	// Literals and names
	TokenNumber TokenType = iota // 42
	TokenIdent                   // foo, _tmp

	// Operators
	TokenPlus  // +
	TokenMinus // -
	TokenStar  // *

	// Delimiters
	TokenLParen    // (
	TokenRParen    // )
	TokenLBrace    // { (lexed but not used by the current grammar)
	TokenRBrace    // }
	TokenAssign    // =
	TokenSemicolon // ;

	// Keywords
	TokenReturn
	TokenVar
)

var tokenNames = map[TokenType]string{
	TokenNumber:    "NUMBER",
	TokenIdent:     "IDENTIFIER",
	TokenPlus:      "+",
	TokenMinus:     "-",
	TokenStar:      "*",
	TokenLParen:    "(",
	TokenRParen:    ")",
	TokenLBrace:    "{",
	TokenRBrace:    "}",
	TokenAssign:    "=",
	TokenSemicolon: ";",
	TokenReturn:    "return",
	TokenVar:       "var",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Token(%d)", t)
}

// Token represents a lexical token. At is the rune offset in the source
// where the token begins; Len is its length in runes.
type Token struct {
	Type    TokenType
	Literal string // the raw text
	Value   uint64 // parsed value, set for TokenNumber
	At      int
	Len     int
}

// String returns the canonical textual form of the token: lexing the
// result yields a token of the same type again.
func (t Token) String() string {
	return t.Literal
}

// Keywords mapped to their token types.
var keywords = map[string]TokenType{
	"return": TokenReturn,
	"var":    TokenVar,
}
