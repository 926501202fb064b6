package compiler

import (
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------------
// Printing: debug rendering of tokens and parsed statements
// ---------------------------------------------------------------------------

// FormatTokens renders a token stream one token per line with offsets,
// for the --tokens debug flag.
func FormatTokens(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		fmt.Fprintf(&b, "%4d  %-10s %q\n", tok.At, tok.Type, tok.Literal)
	}
	return b.String()
}

// FormatProgram renders statements in a compact prefix form, one per
// line. Two programs render identically exactly when they are
// structurally identical.
func FormatProgram(program []Stmt) string {
	var b strings.Builder
	for _, stmt := range program {
		b.WriteString(formatStmt(stmt))
		b.WriteByte('\n')
	}
	return b.String()
}

func formatStmt(stmt Stmt) string {
	switch s := stmt.(type) {
	case *ReturnStmt:
		return fmt.Sprintf("(return %s)", formatExpr(s.Value))
	case *VarDecl:
		return fmt.Sprintf("(var %s %s)", s.Name, formatExpr(s.Value))
	}
	return fmt.Sprintf("(unknown %T)", stmt)
}

func formatExpr(expr Expr) string {
	switch e := expr.(type) {
	case *NumberLit:
		return fmt.Sprintf("%d", e.Value)
	case *VarRef:
		return e.Name
	case *BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", e.Op.Type, formatExpr(e.Left), formatExpr(e.Right))
	}
	return fmt.Sprintf("(unknown %T)", expr)
}
