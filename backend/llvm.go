// Package backend lowers compiler.Backend calls onto LLVM and emits
// native object code.
package backend

import (
	"fmt"

	"tinygo.org/x/go-llvm"

	"tack/compiler"
)

// LLVM implements compiler.Backend on top of an LLVM context, module,
// and builder. One LLVM value compiles one module; Dispose releases the
// C-side objects.
type LLVM struct {
	ctx     llvm.Context
	module  llvm.Module
	builder llvm.Builder
	i64     llvm.Type
}

var _ compiler.Backend = (*LLVM)(nil)

// NewLLVM creates a backend with a fresh LLVM context.
func NewLLVM() *LLVM {
	ctx := llvm.NewContext()
	return &LLVM{
		ctx:     ctx,
		builder: ctx.NewBuilder(),
		i64:     ctx.Int64Type(),
	}
}

func (b *LLVM) BeginModule(name string) {
	b.module = b.ctx.NewModule(name)
}

func (b *LLVM) BeginFunction(name string) {
	fnType := llvm.FunctionType(b.i64, nil, false)
	fn := llvm.AddFunction(b.module, name, fnType)
	entry := b.ctx.AddBasicBlock(fn, "entry")
	b.builder.SetInsertPointAtEnd(entry)
}

func (b *LLVM) Alloc(name string) (compiler.Slot, error) {
	return b.builder.CreateAlloca(b.i64, name), nil
}

func (b *LLVM) Load(slot compiler.Slot, name string) (compiler.Value, error) {
	ptr, err := asValue(slot)
	if err != nil {
		return nil, err
	}
	return b.builder.CreateLoad(b.i64, ptr, name), nil
}

func (b *LLVM) Store(v compiler.Value, slot compiler.Slot) error {
	value, err := asValue(v)
	if err != nil {
		return err
	}
	ptr, err := asValue(slot)
	if err != nil {
		return err
	}
	b.builder.CreateStore(value, ptr)
	return nil
}

func (b *LLVM) ConstInt(v uint64) compiler.Value {
	return llvm.ConstInt(b.i64, v, false)
}

func (b *LLVM) Add(x, y compiler.Value) (compiler.Value, error) {
	xv, yv, err := asValues(x, y)
	if err != nil {
		return nil, err
	}
	return b.builder.CreateAdd(xv, yv, "add"), nil
}

func (b *LLVM) Sub(x, y compiler.Value) (compiler.Value, error) {
	xv, yv, err := asValues(x, y)
	if err != nil {
		return nil, err
	}
	return b.builder.CreateSub(xv, yv, "sub"), nil
}

func (b *LLVM) Mul(x, y compiler.Value) (compiler.Value, error) {
	xv, yv, err := asValues(x, y)
	if err != nil {
		return nil, err
	}
	return b.builder.CreateMul(xv, yv, "mul"), nil
}

func (b *LLVM) Return(v compiler.Value) error {
	value, err := asValue(v)
	if err != nil {
		return err
	}
	b.builder.CreateRet(value)
	return nil
}

func (b *LLVM) Verify() error {
	return llvm.VerifyModule(b.module, llvm.ReturnStatusAction)
}

// IR returns the textual LLVM IR of the module, for --emit-llvm.
func (b *LLVM) IR() string {
	return b.module.String()
}

// EmitObject lowers the verified module to a native object for the given
// triple ("" means the host) at the given optimization level (0-3).
func (b *LLVM) EmitObject(triple string, opt int) ([]byte, error) {
	if err := llvm.InitializeNativeTarget(); err != nil {
		return nil, fmt.Errorf("initializing native target: %w", err)
	}
	if err := llvm.InitializeNativeAsmPrinter(); err != nil {
		return nil, fmt.Errorf("initializing native asm printer: %w", err)
	}

	if triple == "" {
		triple = llvm.DefaultTargetTriple()
	}
	target, err := llvm.GetTargetFromTriple(triple)
	if err != nil {
		return nil, fmt.Errorf("looking up target %q: %w", triple, err)
	}

	machine := target.CreateTargetMachine(triple, "generic", "",
		codegenLevel(opt), llvm.RelocDefault, llvm.CodeModelDefault)
	defer machine.Dispose()

	b.module.SetTarget(triple)
	buf, err := machine.EmitToMemoryBuffer(b.module, llvm.ObjectFile)
	if err != nil {
		return nil, fmt.Errorf("emitting object code: %w", err)
	}
	defer buf.Dispose()

	// The buffer's bytes are freed with it; copy them out.
	object := make([]byte, len(buf.Bytes()))
	copy(object, buf.Bytes())
	return object, nil
}

// Dispose releases the builder and context. The module is owned by the
// context.
func (b *LLVM) Dispose() {
	b.builder.Dispose()
	b.ctx.Dispose()
}

func codegenLevel(opt int) llvm.CodeGenOptLevel {
	switch {
	case opt <= 0:
		return llvm.CodeGenLevelNone
	case opt == 1:
		return llvm.CodeGenLevelLess
	case opt == 2:
		return llvm.CodeGenLevelDefault
	default:
		return llvm.CodeGenLevelAggressive
	}
}

func asValue(v any) (llvm.Value, error) {
	value, ok := v.(llvm.Value)
	if !ok {
		return llvm.Value{}, fmt.Errorf("value %T does not belong to the llvm backend", v)
	}
	return value, nil
}

func asValues(x, y any) (llvm.Value, llvm.Value, error) {
	xv, err := asValue(x)
	if err != nil {
		return llvm.Value{}, llvm.Value{}, err
	}
	yv, err := asValue(y)
	if err != nil {
		return llvm.Value{}, llvm.Value{}, err
	}
	return xv, yv, nil
}
