package compiler

// ---------------------------------------------------------------------------
// Parser: recursive descent over the token sequence
// ---------------------------------------------------------------------------
//
// program    := statement*
// statement  := 'return' expr ';'
//             | 'var' IDENT '=' expr ';'
// expr       := term (('+' | '-') term)*
// term       := primary ('*' primary)*
// primary    := NUMBER | IDENT | '(' expr ')'
//
// Binary operators are left-associative; '*' binds tighter than '+'/'-'.

// Parser parses a token sequence into statements.
type Parser struct {
	tokens []Token
	pos    int
}

// Parse consumes the whole token sequence and returns the statement
// list, or the first error encountered. An empty sequence parses to an
// empty program.
func Parse(tokens []Token) ([]Stmt, error) {
	p := &Parser{tokens: tokens}
	var stmts []Stmt

	for !p.done() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	return stmts, nil
}

func (p *Parser) done() bool {
	return p.pos >= len(p.tokens)
}

// cur returns the current token without consuming it.
func (p *Parser) cur() (Token, bool) {
	if p.done() {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *Parser) advance() {
	p.pos++
}

// expect consumes the current token if it has the given type, otherwise
// returns a parse error naming that type.
func (p *Parser) expect(t TokenType) (Token, error) {
	tok, ok := p.cur()
	if !ok {
		return Token{}, &ParseError{EOF: true, Expected: t}
	}
	if tok.Type != t {
		return Token{}, &ParseError{Got: tok, Expected: t}
	}
	p.advance()
	return tok, nil
}

func (p *Parser) parseStatement() (Stmt, error) {
	tok, ok := p.cur()
	if !ok {
		return nil, &ParseError{EOF: true, Expected: TokenReturn}
	}

	switch tok.Type {
	case TokenReturn:
		p.advance()
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenSemicolon); err != nil {
			return nil, err
		}
		return &ReturnStmt{Offset: tok.At, Value: value}, nil

	case TokenVar:
		p.advance()
		name, err := p.expect(TokenIdent)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenAssign); err != nil {
			return nil, err
		}
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenSemicolon); err != nil {
			return nil, err
		}
		return &VarDecl{Offset: tok.At, Name: name.Literal, Value: value}, nil

	default:
		return nil, &ParseError{Got: tok, Expected: TokenReturn}
	}
}

// parseExpr parses additive expressions (lowest precedence).
func (p *Parser) parseExpr() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for {
		tok, ok := p.cur()
		if !ok || (tok.Type != TokenPlus && tok.Type != TokenMinus) {
			return left, nil
		}
		p.advance()

		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Left: left, Op: tok, Right: right}
	}
}

// parseTerm parses multiplicative expressions.
func (p *Parser) parseTerm() (Expr, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		tok, ok := p.cur()
		if !ok || tok.Type != TokenStar {
			return left, nil
		}
		p.advance()

		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Left: left, Op: tok, Right: right}
	}
}

// parsePrimary parses literals, variable references, and parenthesized
// sub-expressions.
func (p *Parser) parsePrimary() (Expr, error) {
	tok, ok := p.cur()
	if !ok {
		return nil, &ParseError{EOF: true, Expected: TokenNumber}
	}

	switch tok.Type {
	case TokenNumber:
		p.advance()
		return &NumberLit{Value: tok.Value, Offset: tok.At, Len: tok.Len}, nil

	case TokenIdent:
		p.advance()
		return &VarRef{Name: tok.Literal, Offset: tok.At}, nil

	case TokenLParen:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		return inner, nil

	default:
		return nil, &ParseError{Got: tok, Expected: TokenNumber}
	}
}
