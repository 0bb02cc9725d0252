package ir

import (
	"fmt"
	"strings"

	"github.com/gracepriest/BasicLangvb-sub002/internal/types"
)

// The IR is a control-flow graph per routine: basic blocks holding
// straight-line instructions, each block closed by exactly one terminator.
// Variables carry monotonically increasing version numbers in the SSA
// style; versioning is per-name-stack, without phi nodes at joins.

// Module is the unit the builder produces for one source file. It is
// created once by Build and never mutated afterwards.
type Module struct {
	Name      string
	Functions []*Function
	Globals   map[string]*Value
	Classes   []*Class
}

// Class groups the lowered form of a class or structure declaration:
// its field layout and its methods.
type Class struct {
	Name    string
	Fields  []*Value
	Methods []*Function
}

// Function is one lowered Sub or Function. ReturnType is Void for Subs.
// Entry is always Blocks[0].
type Function struct {
	Name       string
	ReturnType *types.TypeInfo
	Params     []*Value
	Blocks     []*BasicBlock
}

func (f *Function) Entry() *BasicBlock {
	if len(f.Blocks) == 0 {
		return nil
	}
	return f.Blocks[0]
}

// BasicBlock is a straight-line instruction sequence. The terminator is
// held apart from the body so the one-terminator invariant is structural
// rather than positional.
type BasicBlock struct {
	Label        string
	Instructions []Instruction
	Terminator   Terminator
}

// Successors returns the blocks this block can branch to.
func (b *BasicBlock) Successors() []*BasicBlock {
	if b.Terminator == nil {
		return nil
	}
	return b.Terminator.GetSuccessors()
}

// Value is an SSA value: a constant, a versioned variable, or the named
// result of an instruction (Name empty, identified by ID).
type Value struct {
	ID      int
	Name    string
	Version int
	Type    *types.TypeInfo
	Literal string // set for constants
	IsConst bool
}

func (v *Value) String() string {
	if v == nil {
		return "<nil>"
	}
	if v.IsConst {
		return v.Literal
	}
	if v.Name == "" {
		return fmt.Sprintf("%%t%d", v.ID)
	}
	return fmt.Sprintf("%s.%d", v.Name, v.Version)
}

// Instruction is implemented by every IR instruction.
type Instruction interface {
	GetID() int
	GetResult() *Value // nil for instructions that produce nothing
	GetOperands() []*Value
	IsTerminator() bool
	String() string
}

// Terminator closes a basic block and names its successors.
type Terminator interface {
	Instruction
	GetSuccessors() []*BasicBlock
}

// BinaryInstruction computes an arithmetic, concatenation, shift, or
// logical operation. Op is a mnemonic: add, sub, mul, div, idiv, mod,
// concat, shl, shr, and, or.
type BinaryInstruction struct {
	ID     int
	Result *Value
	Op     string
	Left   *Value
	Right  *Value
}

// UnaryInstruction computes a prefix operation. Op is neg or not.
type UnaryInstruction struct {
	ID      int
	Result  *Value
	Op      string
	Operand *Value
}

// CompareInstruction yields a Boolean. Op is eq, ne, lt, le, gt, or ge.
type CompareInstruction struct {
	ID     int
	Result *Value
	Op     string
	Left   *Value
	Right  *Value
}

// CallInstruction invokes a routine by name. Result is nil for Subs.
type CallInstruction struct {
	ID     int
	Result *Value
	Callee string
	Args   []*Value
}

// LoadInstruction reads through an address produced by GetElementPtr or
// a pointer-typed value.
type LoadInstruction struct {
	ID      int
	Result  *Value
	Address *Value
}

// StoreInstruction writes through an address.
type StoreInstruction struct {
	ID      int
	Address *Value
	Value   *Value
}

// GetElementPtrInstruction computes the address of an array element or
// a member field.
type GetElementPtrInstruction struct {
	ID      int
	Result  *Value
	Base    *Value
	Indexes []*Value
}

// CastInstruction converts a value; the target type is the result's type.
type CastInstruction struct {
	ID      int
	Result  *Value
	Operand *Value
}

// ConstInstruction materializes a constant into a named variable version.
// Emitted when a source assignment binds a name to a literal, so the
// printed IR stays self-contained.
type ConstInstruction struct {
	ID     int
	Result *Value
	Value  *Value
}

// JumpInstruction branches unconditionally.
type JumpInstruction struct {
	ID     int
	Target *BasicBlock
}

// BranchInstruction branches on a Boolean condition.
type BranchInstruction struct {
	ID    int
	Cond  *Value
	True  *BasicBlock
	False *BasicBlock
}

// SwitchCase pairs one candidate constant with its destination.
type SwitchCase struct {
	Value  *Value
	Target *BasicBlock
}

// SwitchInstruction dispatches on a value over a case table.
type SwitchInstruction struct {
	ID      int
	Value   *Value
	Cases   []SwitchCase
	Default *BasicBlock
}

// ReturnInstruction leaves the function, with or without a value.
type ReturnInstruction struct {
	ID    int
	Value *Value // nil for a bare return
}

func (i *BinaryInstruction) GetID() int            { return i.ID }
func (i *BinaryInstruction) GetResult() *Value     { return i.Result }
func (i *BinaryInstruction) GetOperands() []*Value { return []*Value{i.Left, i.Right} }
func (i *BinaryInstruction) IsTerminator() bool    { return false }
func (i *BinaryInstruction) String() string {
	return fmt.Sprintf("%s = %s %s, %s", i.Result, i.Op, i.Left, i.Right)
}

func (i *UnaryInstruction) GetID() int            { return i.ID }
func (i *UnaryInstruction) GetResult() *Value     { return i.Result }
func (i *UnaryInstruction) GetOperands() []*Value { return []*Value{i.Operand} }
func (i *UnaryInstruction) IsTerminator() bool    { return false }
func (i *UnaryInstruction) String() string {
	return fmt.Sprintf("%s = %s %s", i.Result, i.Op, i.Operand)
}

func (i *CompareInstruction) GetID() int            { return i.ID }
func (i *CompareInstruction) GetResult() *Value     { return i.Result }
func (i *CompareInstruction) GetOperands() []*Value { return []*Value{i.Left, i.Right} }
func (i *CompareInstruction) IsTerminator() bool    { return false }
func (i *CompareInstruction) String() string {
	return fmt.Sprintf("%s = cmp %s %s, %s", i.Result, i.Op, i.Left, i.Right)
}

func (i *CallInstruction) GetID() int            { return i.ID }
func (i *CallInstruction) GetResult() *Value     { return i.Result }
func (i *CallInstruction) GetOperands() []*Value { return i.Args }
func (i *CallInstruction) IsTerminator() bool    { return false }
func (i *CallInstruction) String() string {
	args := make([]string, len(i.Args))
	for n, a := range i.Args {
		args[n] = a.String()
	}
	call := fmt.Sprintf("call %s(%s)", i.Callee, strings.Join(args, ", "))
	if i.Result == nil {
		return call
	}
	return fmt.Sprintf("%s = %s", i.Result, call)
}

func (i *LoadInstruction) GetID() int            { return i.ID }
func (i *LoadInstruction) GetResult() *Value     { return i.Result }
func (i *LoadInstruction) GetOperands() []*Value { return []*Value{i.Address} }
func (i *LoadInstruction) IsTerminator() bool    { return false }
func (i *LoadInstruction) String() string {
	return fmt.Sprintf("%s = load %s", i.Result, i.Address)
}

func (i *StoreInstruction) GetID() int            { return i.ID }
func (i *StoreInstruction) GetResult() *Value     { return nil }
func (i *StoreInstruction) GetOperands() []*Value { return []*Value{i.Address, i.Value} }
func (i *StoreInstruction) IsTerminator() bool    { return false }
func (i *StoreInstruction) String() string {
	return fmt.Sprintf("store %s, %s", i.Address, i.Value)
}

func (i *GetElementPtrInstruction) GetID() int        { return i.ID }
func (i *GetElementPtrInstruction) GetResult() *Value { return i.Result }
func (i *GetElementPtrInstruction) GetOperands() []*Value {
	return append([]*Value{i.Base}, i.Indexes...)
}
func (i *GetElementPtrInstruction) IsTerminator() bool { return false }
func (i *GetElementPtrInstruction) String() string {
	parts := make([]string, len(i.Indexes))
	for n, idx := range i.Indexes {
		parts[n] = idx.String()
	}
	return fmt.Sprintf("%s = getelementptr %s, %s", i.Result, i.Base, strings.Join(parts, ", "))
}

func (i *CastInstruction) GetID() int            { return i.ID }
func (i *CastInstruction) GetResult() *Value     { return i.Result }
func (i *CastInstruction) GetOperands() []*Value { return []*Value{i.Operand} }
func (i *CastInstruction) IsTerminator() bool    { return false }
func (i *CastInstruction) String() string {
	return fmt.Sprintf("%s = cast %s to %s", i.Result, i.Operand, i.Result.Type)
}

func (i *ConstInstruction) GetID() int            { return i.ID }
func (i *ConstInstruction) GetResult() *Value     { return i.Result }
func (i *ConstInstruction) GetOperands() []*Value { return []*Value{i.Value} }
func (i *ConstInstruction) IsTerminator() bool    { return false }
func (i *ConstInstruction) String() string {
	return fmt.Sprintf("%s = const %s", i.Result, i.Value)
}

func (i *JumpInstruction) GetID() int                    { return i.ID }
func (i *JumpInstruction) GetResult() *Value             { return nil }
func (i *JumpInstruction) GetOperands() []*Value         { return nil }
func (i *JumpInstruction) IsTerminator() bool            { return true }
func (i *JumpInstruction) GetSuccessors() []*BasicBlock  { return []*BasicBlock{i.Target} }
func (i *JumpInstruction) String() string {
	return fmt.Sprintf("jmp %s", i.Target.Label)
}

func (i *BranchInstruction) GetID() int            { return i.ID }
func (i *BranchInstruction) GetResult() *Value     { return nil }
func (i *BranchInstruction) GetOperands() []*Value { return []*Value{i.Cond} }
func (i *BranchInstruction) IsTerminator() bool    { return true }
func (i *BranchInstruction) GetSuccessors() []*BasicBlock {
	return []*BasicBlock{i.True, i.False}
}
func (i *BranchInstruction) String() string {
	return fmt.Sprintf("br %s, %s, %s", i.Cond, i.True.Label, i.False.Label)
}

func (i *SwitchInstruction) GetID() int        { return i.ID }
func (i *SwitchInstruction) GetResult() *Value { return nil }
func (i *SwitchInstruction) GetOperands() []*Value {
	ops := []*Value{i.Value}
	for _, c := range i.Cases {
		ops = append(ops, c.Value)
	}
	return ops
}
func (i *SwitchInstruction) IsTerminator() bool { return true }
func (i *SwitchInstruction) GetSuccessors() []*BasicBlock {
	succs := make([]*BasicBlock, 0, len(i.Cases)+1)
	for _, c := range i.Cases {
		succs = append(succs, c.Target)
	}
	return append(succs, i.Default)
}
func (i *SwitchInstruction) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "switch %s [", i.Value)
	for n, c := range i.Cases {
		if n > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %s", c.Value, c.Target.Label)
	}
	fmt.Fprintf(&b, "], default %s", i.Default.Label)
	return b.String()
}

func (i *ReturnInstruction) GetID() int        { return i.ID }
func (i *ReturnInstruction) GetResult() *Value { return nil }
func (i *ReturnInstruction) GetOperands() []*Value {
	if i.Value == nil {
		return nil
	}
	return []*Value{i.Value}
}
func (i *ReturnInstruction) IsTerminator() bool           { return true }
func (i *ReturnInstruction) GetSuccessors() []*BasicBlock { return nil }
func (i *ReturnInstruction) String() string {
	if i.Value == nil {
		return "ret"
	}
	return fmt.Sprintf("ret %s", i.Value)
}
