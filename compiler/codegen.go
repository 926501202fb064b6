package compiler

import "fmt"

// ---------------------------------------------------------------------------
// Codegen: translate statements into backend IR-construction calls
// ---------------------------------------------------------------------------

// Value is an opaque IR value produced by a Backend. It is only
// meaningful to the backend that created it.
type Value any

// Slot is an opaque storage handle for a declared variable.
type Slot any

// Backend is the external code-generation interface the generator
// drives. Calls arrive in a strict single-threaded sequence:
// BeginModule, BeginFunction, construction calls in statement order,
// then Verify.
type Backend interface {
	BeginModule(name string)
	// BeginFunction opens a function returning a 64-bit integer with no
	// parameters and positions emission at its entry block.
	BeginFunction(name string)
	Alloc(name string) (Slot, error)
	Load(slot Slot, name string) (Value, error)
	Store(v Value, slot Slot) error
	ConstInt(v uint64) Value
	Add(a, b Value) (Value, error)
	Sub(a, b Value) (Value, error)
	Mul(a, b Value) (Value, error)
	Return(v Value) error
	// Verify checks the constructed module is well-formed, in particular
	// that the function terminates. A program without a return statement
	// fails here.
	Verify() error
}

// Generator walks statements in order and drives a Backend. The variable
// environment is per-generator; a Generator compiles one unit.
type Generator struct {
	backend Backend
	vars    map[string]Slot
}

// NewGenerator creates a generator emitting through the given backend.
func NewGenerator(b Backend) *Generator {
	return &Generator{
		backend: b,
		vars:    make(map[string]Slot),
	}
}

// Generate translates the program into a module with a single main
// function and verifies it. The first failure aborts generation.
func (g *Generator) Generate(name string, program []Stmt) error {
	g.backend.BeginModule(name)
	g.backend.BeginFunction("main")

	for _, stmt := range program {
		if err := g.genStmt(stmt); err != nil {
			return err
		}
	}

	if err := g.backend.Verify(); err != nil {
		return &GenError{Stage: "verify", Err: err}
	}
	return nil
}

func (g *Generator) genStmt(stmt Stmt) error {
	switch s := stmt.(type) {
	case *ReturnStmt:
		value, err := g.genExpr(s.Value)
		if err != nil {
			return err
		}
		if err := g.backend.Return(value); err != nil {
			return &GenError{Stage: "return", Err: err}
		}
		return nil

	case *VarDecl:
		value, err := g.genExpr(s.Value)
		if err != nil {
			return err
		}
		slot, err := g.backend.Alloc(s.Name)
		if err != nil {
			return &GenError{Stage: "alloc", Err: err}
		}
		if err := g.backend.Store(value, slot); err != nil {
			return &GenError{Stage: "store", Err: err}
		}
		// Redeclaration replaces the mapping; later references load from
		// the new slot.
		g.vars[s.Name] = slot
		return nil

	default:
		return &GenError{Stage: "statement", Err: fmt.Errorf("unknown statement type: %T", stmt)}
	}
}

// genExpr evaluates an expression to an IR value. Binary operands are
// evaluated left before right.
func (g *Generator) genExpr(expr Expr) (Value, error) {
	switch e := expr.(type) {
	case *NumberLit:
		return g.backend.ConstInt(e.Value), nil

	case *VarRef:
		slot, ok := g.vars[e.Name]
		if !ok {
			return nil, &GenError{
				Stage: "load",
				Err:   &UndefinedVariableError{Name: e.Name, At: e.Offset},
			}
		}
		value, err := g.backend.Load(slot, e.Name)
		if err != nil {
			return nil, &GenError{Stage: "load", Err: err}
		}
		return value, nil

	case *BinaryExpr:
		left, err := g.genExpr(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := g.genExpr(e.Right)
		if err != nil {
			return nil, err
		}

		var value Value
		switch e.Op.Type {
		case TokenPlus:
			value, err = g.backend.Add(left, right)
		case TokenMinus:
			value, err = g.backend.Sub(left, right)
		case TokenStar:
			value, err = g.backend.Mul(left, right)
		default:
			return nil, &GenError{Stage: "operator", Err: fmt.Errorf("unsupported operator: %s", e.Op.Type)}
		}
		if err != nil {
			return nil, &GenError{Stage: "operator", Err: err}
		}
		return value, nil

	default:
		return nil, &GenError{Stage: "expression", Err: fmt.Errorf("unknown expression type: %T", expr)}
	}
}
