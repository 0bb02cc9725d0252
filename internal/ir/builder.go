package ir

import (
	"fmt"
	"strings"

	"github.com/gracepriest/BasicLangvb-sub002/internal/ast"
	"github.com/gracepriest/BasicLangvb-sub002/internal/semantic"
	"github.com/gracepriest/BasicLangvb-sub002/internal/types"
)

// Builder lowers an analyzed AST into a Module. It assumes the tree
// already passed semantic analysis; a malformed tree here is a contract
// violation between stages and is allowed to panic.
type Builder struct {
	analysis *semantic.Result
	catalog  *types.Catalog

	module *Module
	fn     *Function
	block  *BasicBlock

	nextID int

	// Per-name version stacks. Keys are lowercased; the Value keeps the
	// source spelling. Frames record which keys were pushed in the current
	// lexical scope so scope exit can pop them.
	versions map[string][]*Value
	counters map[string]int
	frames   [][]string

	labels map[string]int
	exits  map[ast.ExitKind][]*BasicBlock
}

// Build lowers one file. The analysis result and the catalog must come
// from the analyzer run that validated this same tree.
func Build(file *ast.File, analysis *semantic.Result, catalog *types.Catalog) *Module {
	b := &Builder{
		analysis: analysis,
		catalog:  catalog,
		module: &Module{
			Name:    file.Name,
			Globals: make(map[string]*Value),
		},
	}
	b.collect(file.Decls, "")
	return b.module
}

// collect walks declarations, registering globals and lowering every
// routine body. Namespace and module names qualify the routines inside.
func (b *Builder) collect(decls []ast.Decl, prefix string) {
	for _, decl := range decls {
		switch d := decl.(type) {
		case *ast.NamespaceDecl:
			b.collect(d.Decls, prefix+d.Name.Value+".")
		case *ast.ModuleDecl:
			b.collect(d.Decls, prefix)
		case *ast.FunctionDecl:
			b.module.Functions = append(b.module.Functions, b.lowerRoutine(d, prefix+d.Name.Value))
		case *ast.ClassDecl:
			b.module.Classes = append(b.module.Classes, b.lowerClass(d.Name.Value, d.Members, prefix))
		case *ast.StructureDecl:
			b.module.Classes = append(b.module.Classes, b.lowerClass(d.Name.Value, d.Members, prefix))
		case *ast.DimDecl:
			b.defineGlobal(d.Name.Value, decl)
		case *ast.ConstDecl:
			b.defineGlobal(d.Name.Value, decl)
		}
	}
}

func (b *Builder) defineGlobal(name string, decl ast.Decl) {
	var t *types.TypeInfo
	if sym := b.analysis.SymbolOf(decl); sym != nil {
		t = sym.Type
	}
	b.module.Globals[name] = &Value{ID: b.nextInstID(), Name: name, Type: t}
}

func (b *Builder) lowerClass(name string, members []ast.Decl, prefix string) *Class {
	class := &Class{Name: prefix + name}
	info := b.catalog.Get(name)
	if info != nil {
		for _, m := range info.Members {
			if m.Kind == types.FieldMember {
				class.Fields = append(class.Fields, &Value{
					ID:   b.nextInstID(),
					Name: m.Name,
					Type: m.Type,
				})
			}
		}
	}
	for _, member := range members {
		if fn, ok := member.(*ast.FunctionDecl); ok && fn.Body != nil {
			class.Methods = append(class.Methods, b.lowerRoutine(fn, class.Name+"."+fn.Name.Value))
		}
	}
	return class
}

// lowerRoutine creates the function, binds parameters as version-0
// variables, lowers the body, and closes any fall-through block with a
// synthesized return.
func (b *Builder) lowerRoutine(decl *ast.FunctionDecl, name string) *Function {
	fn := &Function{Name: name}

	sym := b.analysis.SymbolOf(decl)
	if sym != nil {
		fn.ReturnType = sym.Result
	} else {
		fn.ReturnType = b.catalog.Void()
	}

	b.fn = fn
	b.versions = make(map[string][]*Value)
	b.counters = make(map[string]int)
	b.frames = nil
	b.labels = make(map[string]int)
	b.exits = make(map[ast.ExitKind][]*BasicBlock)

	b.pushFrame()
	for i, p := range decl.Params {
		var pt *types.TypeInfo
		if sym != nil && i < len(sym.Params) {
			pt = sym.Params[i]
		}
		param := &Value{
			ID:      b.nextInstID(),
			Name:    p.Name.Value,
			Version: b.nextVersion(p.Name.Value),
			Type:    pt,
		}
		b.pushVersion(p.Name.Value, param)
		fn.Params = append(fn.Params, param)
	}

	b.startBlock(b.newBlock("entry"))
	if decl.Body != nil {
		b.lowerBlock(decl.Body)
	}
	b.popFrame()

	// Every block must end in a terminator; fall-through paths get the
	// routine's default return.
	for _, blk := range fn.Blocks {
		if blk.Terminator == nil {
			blk.Terminator = b.defaultReturn()
		}
	}
	return fn
}

func (b *Builder) defaultReturn() *ReturnInstruction {
	ret := &ReturnInstruction{ID: b.nextInstID()}
	if b.fn.ReturnType != nil && b.fn.ReturnType.Kind != types.KindVoid {
		ret.Value = b.defaultValue(b.fn.ReturnType)
	}
	return ret
}

func (b *Builder) defaultValue(t *types.TypeInfo) *Value {
	literal := "Nothing"
	switch {
	case t == b.catalog.Integer() || t == b.catalog.Long():
		literal = "0"
	case t == b.catalog.Single() || t == b.catalog.Double():
		literal = "0.0"
	case t == b.catalog.StringType():
		literal = `""`
	case t == b.catalog.Boolean():
		literal = "False"
	}
	return b.constValue(literal, t)
}

// Block and value plumbing.

func (b *Builder) nextInstID() int {
	b.nextID++
	return b.nextID
}

// newBlock creates an unattached block; startBlock appends it to the
// function in emission order.
func (b *Builder) newBlock(prefix string) *BasicBlock {
	n := b.labels[prefix]
	b.labels[prefix]++
	label := prefix
	if n > 0 {
		label = fmt.Sprintf("%s.%d", prefix, n)
	}
	return &BasicBlock{Label: label}
}

func (b *Builder) startBlock(blk *BasicBlock) {
	b.fn.Blocks = append(b.fn.Blocks, blk)
	b.block = blk
}

func (b *Builder) emit(inst Instruction) {
	if b.block.Terminator != nil {
		// Statements after a Return in the same source block are
		// unreachable; give them a block of their own so the terminator
		// invariant holds.
		b.startBlock(b.newBlock("unreachable"))
	}
	b.block.Instructions = append(b.block.Instructions, inst)
}

func (b *Builder) terminate(t Terminator) {
	if b.block.Terminator == nil {
		b.block.Terminator = t
	}
}

func (b *Builder) jump(target *BasicBlock) {
	b.terminate(&JumpInstruction{ID: b.nextInstID(), Target: target})
}

func (b *Builder) branch(cond *Value, ifTrue, ifFalse *BasicBlock) {
	b.terminate(&BranchInstruction{ID: b.nextInstID(), Cond: cond, True: ifTrue, False: ifFalse})
}

func (b *Builder) tempValue(t *types.TypeInfo) *Value {
	return &Value{ID: b.nextInstID(), Type: t}
}

func (b *Builder) constValue(literal string, t *types.TypeInfo) *Value {
	return &Value{ID: b.nextInstID(), Literal: literal, Type: t, IsConst: true}
}

// Versioning.

func (b *Builder) pushFrame() {
	b.frames = append(b.frames, nil)
}

func (b *Builder) popFrame() {
	top := len(b.frames) - 1
	for _, key := range b.frames[top] {
		stack := b.versions[key]
		b.versions[key] = stack[:len(stack)-1]
	}
	b.frames = b.frames[:top]
}

func (b *Builder) pushVersion(name string, v *Value) {
	key := strings.ToLower(name)
	b.versions[key] = append(b.versions[key], v)
	top := len(b.frames) - 1
	b.frames[top] = append(b.frames[top], key)
}

func (b *Builder) nextVersion(name string) int {
	key := strings.ToLower(name)
	n := b.counters[key]
	b.counters[key] = n + 1
	return n
}

// readVariable returns the active version of a name, minting a fresh
// version 0 on first read.
func (b *Builder) readVariable(name string, t *types.TypeInfo) *Value {
	key := strings.ToLower(name)
	if stack := b.versions[key]; len(stack) > 0 {
		return stack[len(stack)-1]
	}
	if global, ok := b.module.Globals[name]; ok {
		return global
	}
	v := &Value{ID: b.nextInstID(), Name: name, Version: b.nextVersion(name), Type: t}
	b.pushVersion(name, v)
	return v
}

// bindVariable makes a value the active version of a name. An unnamed
// instruction result is renamed in place rather than copied; a constant
// is materialized with a const instruction; an already named value is
// aliased directly.
func (b *Builder) bindVariable(name string, v *Value) *Value {
	if v.IsConst {
		named := &Value{ID: b.nextInstID(), Name: name, Version: b.nextVersion(name), Type: v.Type}
		b.emit(&ConstInstruction{ID: b.nextInstID(), Result: named, Value: v})
		b.pushVersion(name, named)
		return named
	}
	if v.Name == "" {
		v.Name = name
		v.Version = b.nextVersion(name)
		b.pushVersion(name, v)
		return v
	}
	b.pushVersion(name, v)
	return v
}

func (b *Builder) pushExit(kind ast.ExitKind, target *BasicBlock) {
	b.exits[kind] = append(b.exits[kind], target)
}

func (b *Builder) popExit(kind ast.ExitKind) {
	stack := b.exits[kind]
	b.exits[kind] = stack[:len(stack)-1]
}

func (b *Builder) exitTarget(kind ast.ExitKind) *BasicBlock {
	stack := b.exits[kind]
	if len(stack) == 0 {
		return nil
	}
	return stack[len(stack)-1]
}

func (b *Builder) typeOf(expr ast.Expr) *types.TypeInfo {
	if t := b.analysis.TypeOf(expr); t != nil {
		return t
	}
	return b.catalog.Integer()
}
