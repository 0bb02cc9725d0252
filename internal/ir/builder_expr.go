package ir

import (
	"strconv"
	"strings"

	"github.com/gracepriest/BasicLangvb-sub002/internal/ast"
	"github.com/gracepriest/BasicLangvb-sub002/internal/semantic"
	"github.com/gracepriest/BasicLangvb-sub002/internal/types"
)

var binaryOps = map[string]string{
	"+":  "add",
	"-":  "sub",
	"*":  "mul",
	"/":  "div",
	"\\": "idiv",
	"&":  "concat",
	"<<": "shl",
	">>": "shr",
}

var compareOps = map[string]string{
	"=":  "eq",
	"<>": "ne",
	"<":  "lt",
	"<=": "le",
	">":  "gt",
	">=": "ge",
}

// lowerExpr lowers one expression and returns the value holding its
// result.
func (b *Builder) lowerExpr(expr ast.Expr) *Value {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return b.lowerLiteral(e)
	case *ast.IdentExpr:
		return b.readVariable(e.Name, b.typeOf(e))
	case *ast.BinaryExpr:
		return b.lowerBinary(e)
	case *ast.UnaryExpr:
		return b.lowerUnary(e)
	case *ast.MemberExpr:
		return b.lowerMember(e)
	case *ast.CallExpr:
		return b.lowerCall(e)
	case *ast.NewExpr:
		return b.lowerNew(e)
	case *ast.CastExpr:
		return b.lowerCast(e)
	case *ast.ArrayLiteralExpr:
		return b.constValue(e.String(), b.typeOf(e))
	case *ast.IncDecExpr:
		return b.lowerIncDec(e)
	case *ast.DerefExpr:
		ptr := b.lowerExpr(e.Target)
		result := b.tempValue(b.typeOf(e))
		b.emit(&LoadInstruction{ID: b.nextInstID(), Result: result, Address: ptr})
		return result
	case *ast.ParenExpr:
		return b.lowerExpr(e.Value)
	case *ast.InterpolatedStringExpr:
		return b.lowerInterpolated(e)
	default:
		panic("ir: unknown expression kind survived analysis")
	}
}

func (b *Builder) lowerLiteral(e *ast.LiteralExpr) *Value {
	switch e.Kind {
	case ast.StringLit:
		return b.constValue(strconv.Quote(e.Str), b.catalog.StringType())
	case ast.BooleanLit:
		if e.Bool {
			return b.constValue("True", b.catalog.Boolean())
		}
		return b.constValue("False", b.catalog.Boolean())
	default:
		return b.constValue(e.Text, b.typeOf(e))
	}
}

func (b *Builder) lowerBinary(e *ast.BinaryExpr) *Value {
	left := b.lowerExpr(e.Left)
	right := b.lowerExpr(e.Right)
	op := strings.ToLower(e.Op)

	if mnemonic, isCompare := compareOps[op]; isCompare {
		result := b.tempValue(b.catalog.Boolean())
		b.emit(&CompareInstruction{
			ID: b.nextInstID(), Result: result, Op: mnemonic, Left: left, Right: right,
		})
		return result
	}

	mnemonic, ok := binaryOps[op]
	if !ok {
		mnemonic = op // mod, and, or are their own mnemonics
	}
	result := b.tempValue(b.typeOf(e))
	b.emit(&BinaryInstruction{
		ID: b.nextInstID(), Result: result, Op: mnemonic, Left: left, Right: right,
	})
	return result
}

func (b *Builder) lowerUnary(e *ast.UnaryExpr) *Value {
	operand := b.lowerExpr(e.Value)
	op := strings.ToLower(e.Op)
	if op == "+" {
		return operand
	}
	mnemonic := "not"
	if op == "-" {
		mnemonic = "neg"
	}
	result := b.tempValue(b.typeOf(e))
	b.emit(&UnaryInstruction{ID: b.nextInstID(), Result: result, Op: mnemonic, Operand: operand})
	return result
}

func (b *Builder) lowerMember(e *ast.MemberExpr) *Value {
	// Enum constants lower to symbolic constants, not loads.
	if ident, ok := e.Target.(*ast.IdentExpr); ok {
		if sym := b.analysis.SymbolOf(ident); sym != nil && sym.Kind == semantic.TypeSymbol {
			return b.constValue(sym.Name+"."+e.Member, b.typeOf(e))
		}
	}
	addr := b.memberAddress(e)
	result := b.tempValue(b.typeOf(e))
	b.emit(&LoadInstruction{ID: b.nextInstID(), Result: result, Address: addr})
	return result
}

func (b *Builder) memberAddress(e *ast.MemberExpr) *Value {
	base := b.lowerExpr(e.Target)
	addr := b.tempValue(b.typeOf(e))
	b.emit(&GetElementPtrInstruction{
		ID: b.nextInstID(), Result: addr, Base: base,
		Indexes: []*Value{b.constValue(strconv.Quote(e.Member), b.catalog.StringType())},
	})
	return addr
}

func (b *Builder) lowerCall(e *ast.CallExpr) *Value {
	if b.analysis.IsArrayAccess(e) {
		addr := b.elementAddress(e)
		result := b.tempValue(b.typeOf(e))
		b.emit(&LoadInstruction{ID: b.nextInstID(), Result: result, Address: addr})
		return result
	}

	var callee string
	var args []*Value
	switch c := e.Callee.(type) {
	case *ast.IdentExpr:
		callee = c.Name
	case *ast.MemberExpr:
		// Method call: the receiver rides along as the first argument.
		receiver := b.lowerExpr(c.Target)
		args = append(args, receiver)
		callee = c.Member
		if rt := b.analysis.TypeOf(c.Target); rt != nil {
			callee = rt.String() + "." + c.Member
		}
	default:
		callee = e.Callee.String()
	}

	for _, arg := range e.Args {
		args = append(args, b.lowerExpr(arg))
	}

	call := &CallInstruction{ID: b.nextInstID(), Callee: callee, Args: args}
	if t := b.analysis.TypeOf(e); t != nil && t.Kind != types.KindVoid {
		call.Result = b.tempValue(t)
	}
	b.emit(call)
	return call.Result
}

// elementAddress computes the address of an array element for a call
// expression the analyzer marked as element access.
func (b *Builder) elementAddress(e *ast.CallExpr) *Value {
	base := b.lowerExpr(e.Callee)
	indexes := make([]*Value, 0, len(e.Args))
	for _, index := range e.Args {
		indexes = append(indexes, b.lowerExpr(index))
	}
	addr := b.tempValue(b.typeOf(e))
	b.emit(&GetElementPtrInstruction{
		ID: b.nextInstID(), Result: addr, Base: base, Indexes: indexes,
	})
	return addr
}

func (b *Builder) lowerNew(e *ast.NewExpr) *Value {
	args := make([]*Value, 0, len(e.Args))
	for _, arg := range e.Args {
		args = append(args, b.lowerExpr(arg))
	}
	result := b.tempValue(b.typeOf(e))
	b.emit(&CallInstruction{
		ID: b.nextInstID(), Result: result,
		Callee: e.Type.String() + ".New", Args: args,
	})
	return result
}

func (b *Builder) lowerCast(e *ast.CastExpr) *Value {
	operand := b.lowerExpr(e.Value)
	result := b.tempValue(b.typeOf(e))
	b.emit(&CastInstruction{ID: b.nextInstID(), Result: result, Operand: operand})
	return result
}

func (b *Builder) lowerIncDec(e *ast.IncDecExpr) *Value {
	current := b.lowerExpr(e.Target)
	op := "add"
	if e.Op == "--" {
		op = "sub"
	}
	next := b.tempValue(b.typeOf(e))
	b.emit(&BinaryInstruction{
		ID: b.nextInstID(), Result: next, Op: op,
		Left: current, Right: b.constValue("1", next.Type),
	})
	b.storeTo(e.Target, next)
	return next
}

// lowerInterpolated folds the string parts into a concat chain,
// stringifying non-string pieces through the runtime's Str.
func (b *Builder) lowerInterpolated(e *ast.InterpolatedStringExpr) *Value {
	stringType := b.catalog.StringType()
	var acc *Value

	for _, part := range e.Parts {
		var piece *Value
		if part.Expr == nil {
			piece = b.constValue(strconv.Quote(part.Text), stringType)
		} else {
			piece = b.lowerExpr(part.Expr)
			if piece.Type != stringType {
				converted := b.tempValue(stringType)
				b.emit(&CallInstruction{
					ID: b.nextInstID(), Result: converted,
					Callee: "Str", Args: []*Value{piece},
				})
				piece = converted
			}
		}
		if acc == nil {
			acc = piece
			continue
		}
		joined := b.tempValue(stringType)
		b.emit(&BinaryInstruction{
			ID: b.nextInstID(), Result: joined, Op: "concat", Left: acc, Right: piece,
		})
		acc = joined
	}

	if acc == nil {
		return b.constValue(`""`, stringType)
	}
	return acc
}
