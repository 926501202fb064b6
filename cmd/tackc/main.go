// tackc - the tack compiler driver: lex, parse, generate, link.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"tack/backend"
	"tack/compiler"
	"tack/manifest"
)

var log = commonlog.GetLogger("tackc")

var cli struct {
	File     string `arg:"" help:"Source file to compile." type:"existingfile"`
	Output   string `short:"o" help:"Executable output name (default from tack.toml, else \"main\")."`
	Triple   string `help:"Target triple (default: host)."`
	Opt      int    `short:"O" default:"-1" help:"Optimization level 0-3 (default from tack.toml, else 0)."`
	CC       string `help:"C compiler used for linking (default from tack.toml, else \"cc\")."`
	EmitLLVM bool   `name:"emit-llvm" help:"Print the generated LLVM IR to stdout."`
	Tokens   bool   `help:"Print the token stream and stop."`
	AST      bool   `name:"ast" help:"Print the parsed statements and stop."`
	Verbose  int    `short:"v" type:"counter" help:"Increase log verbosity."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("tackc"),
		kong.Description("Compiler for the tack language."))
	commonlog.Configure(cli.Verbose, nil)

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	text, err := os.ReadFile(cli.File)
	if err != nil {
		return err
	}
	m, err := manifest.Load(filepath.Dir(cli.File))
	if err != nil {
		return err
	}

	output := m.Build.Output
	if cli.Output != "" {
		output = cli.Output
	}
	triple := m.Build.Triple
	if cli.Triple != "" {
		triple = cli.Triple
	}
	opt := m.Build.Opt
	if cli.Opt >= 0 {
		opt = cli.Opt
	}
	cc := m.Build.CC
	if cli.CC != "" {
		cc = cli.CC
	}

	src := compiler.NewSource(filepath.Base(cli.File), string(text))

	start := time.Now()
	tokens, err := compiler.Lex(src)
	if err != nil {
		return phaseError("Lexer failed", err)
	}
	log.Infof("lexing took %s", time.Since(start))
	if cli.Tokens {
		fmt.Print(compiler.FormatTokens(tokens))
		return nil
	}

	start = time.Now()
	program, err := compiler.Parse(tokens)
	if err != nil {
		return phaseError("Ast parsing failed", err)
	}
	log.Infof("parsing took %s", time.Since(start))
	if cli.AST {
		fmt.Print(compiler.FormatProgram(program))
		return nil
	}

	start = time.Now()
	be := backend.NewLLVM()
	defer be.Dispose()

	gen := compiler.NewGenerator(be)
	if err := gen.Generate(output, program); err != nil {
		return phaseError("Codegen failure", err)
	}
	if cli.EmitLLVM {
		fmt.Print(be.IR())
	}

	object, err := be.EmitObject(triple, opt)
	if err != nil {
		return phaseError("Codegen failure", err)
	}
	log.Infof("code generation took %s", time.Since(start))

	start = time.Now()
	if err := backend.Link(object, output, cc); err != nil {
		return phaseError("Linking failed", err)
	}
	log.Infof("linking took %s", time.Since(start))

	fmt.Printf("Executable compiled. Available at: ./%s\n", output)
	return nil
}

func phaseError(label string, err error) error {
	return fmt.Errorf("%s\n%v", color.RedString(label), err)
}
