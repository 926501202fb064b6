package compiler

// ---------------------------------------------------------------------------
// AST: expression and statement nodes
// ---------------------------------------------------------------------------

// Expr is the interface for expression nodes.
type Expr interface {
	At() int // rune offset where the expression begins
	expr()   // marker method
}

// NumberLit represents an unsigned integer literal.
type NumberLit struct {
	Value  uint64
	Offset int
	Len    int
}

func (n *NumberLit) At() int { return n.Offset }
func (n *NumberLit) expr()   {}

// VarRef represents a reference to a declared variable.
type VarRef struct {
	Name   string
	Offset int
}

func (n *VarRef) At() int { return n.Offset }
func (n *VarRef) expr()   {}

// BinaryExpr represents a binary operation. Left and Right are owned by
// this node; the tree has no sharing and no cycles.
type BinaryExpr struct {
	Left  Expr
	Op    Token // TokenPlus, TokenMinus, or TokenStar
	Right Expr
}

func (n *BinaryExpr) At() int { return n.Left.At() }
func (n *BinaryExpr) expr()   {}

// Stmt is the interface for statement nodes. A program is an ordered
// statement sequence; order is translation order.
type Stmt interface {
	At() int
	stmt() // marker method
}

// ReturnStmt terminates the program with the value of its expression.
type ReturnStmt struct {
	Offset int
	Value  Expr
}

func (n *ReturnStmt) At() int { return n.Offset }
func (n *ReturnStmt) stmt()   {}

// VarDecl declares a variable and initializes it. Redeclaring a name
// replaces the earlier declaration (last write wins).
type VarDecl struct {
	Offset int
	Name   string
	Value  Expr
}

func (n *VarDecl) At() int { return n.Offset }
func (n *VarDecl) stmt()   {}
