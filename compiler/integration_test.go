package compiler

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// Integration tests: run whole programs through lex → parse → codegen
// against the recording backend.

func compileProgram(t *testing.T, name, text string) (*fakeBackend, error) {
	t.Helper()
	tokens, err := Lex(NewSource(name, text))
	if err != nil {
		t.Fatalf("lexing failed: %v", err)
	}
	program, err := Parse(tokens)
	if err != nil {
		t.Fatalf("parsing failed: %v", err)
	}
	be := &fakeBackend{}
	return be, NewGenerator(be).Generate("main", program)
}

func TestIntegrationProgram(t *testing.T) {
	source := "var a = 2;\n" +
		"var b = a + 3;\n" +
		"return a * b;\n"

	be, err := compileProgram(t, "prog.tk", source)
	if err != nil {
		t.Fatalf("compilation failed: %v", err)
	}

	want := []string{
		"module main",
		"func main",
		"alloca a#1",
		"store 2 -> a#1",
		"load a#1",
		"add a#1 3",
		"alloca b#2",
		"store (a#1 + 3) -> b#2",
		"load a#1",
		"load b#2",
		"mul a#1 b#2",
		"ret (a#1 * b#2)",
	}
	if !reflect.DeepEqual(be.ops, want) {
		t.Errorf("ops = %q, want %q", be.ops, want)
	}
}

func TestIntegrationPrecedenceProgram(t *testing.T) {
	source := "var a = 2 + 3 * 4;\n" +
		"var b = (2 + 3) * 4;\n" +
		"return b - a;\n"

	be, err := compileProgram(t, "prog.tk", source)
	if err != nil {
		t.Fatalf("compilation failed: %v", err)
	}

	// a = 2 + (3*4) = 14, b = (2+3)*4 = 20; the recorded value strings
	// carry the grouping.
	joined := strings.Join(be.ops, "\n")
	if !strings.Contains(joined, "store (2 + (3 * 4)) -> a#1") {
		t.Errorf("a was not stored with * bound tighter:\n%s", joined)
	}
	if !strings.Contains(joined, "store ((2 + 3) * 4) -> b#2") {
		t.Errorf("b was not stored with parens grouping +:\n%s", joined)
	}
}

func TestIntegrationUndefinedVariable(t *testing.T) {
	_, err := compileProgram(t, "prog.tk", "return missing;\n")
	if err == nil {
		t.Fatal("compilation succeeded with an undefined variable")
	}

	var undef *UndefinedVariableError
	if !errors.As(err, &undef) {
		t.Fatalf("error %v is not an *UndefinedVariableError", err)
	}
	if undef.Name != "missing" {
		t.Errorf("Name = %q, want %q", undef.Name, "missing")
	}
}

func TestIntegrationNoReturn(t *testing.T) {
	_, err := compileProgram(t, "prog.tk", "var a = 1;\nvar b = a;\n")
	var genErr *GenError
	if !errors.As(err, &genErr) || genErr.Stage != "verify" {
		t.Errorf("err = %v, want a verify GenError", err)
	}
}
