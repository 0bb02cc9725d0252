package ir

import (
	"github.com/gracepriest/BasicLangvb-sub002/internal/ast"
	"github.com/gracepriest/BasicLangvb-sub002/internal/types"
)

func (b *Builder) lowerBlock(block *ast.BlockStmt) {
	b.pushFrame()
	for _, stmt := range block.Items {
		b.lowerStmt(stmt)
	}
	b.popFrame()
}

func (b *Builder) lowerStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.DimDecl:
		b.lowerDim(s)
	case *ast.ConstDecl:
		b.bindVariable(s.Name.Value, b.lowerExpr(s.Value))
	case *ast.AssignStmt:
		b.lowerAssign(s)
	case *ast.ExprStmt:
		b.lowerExpr(s.Expr)
	case *ast.IfStmt:
		b.lowerIf(s)
	case *ast.SelectStmt:
		b.lowerSelect(s)
	case *ast.ForStmt:
		b.lowerFor(s)
	case *ast.ForEachStmt:
		b.lowerForEach(s)
	case *ast.WhileStmt:
		b.lowerWhile(s)
	case *ast.DoStmt:
		b.lowerDo(s)
	case *ast.TryStmt:
		b.lowerTry(s)
	case *ast.ReturnStmt:
		b.lowerReturn(s)
	case *ast.ExitStmt:
		b.lowerExit(s)
	}
}

func (b *Builder) lowerDim(s *ast.DimDecl) {
	var init *Value
	if s.Init != nil {
		init = b.lowerExpr(s.Init)
	} else {
		var t *types.TypeInfo
		if sym := b.analysis.SymbolOf(s); sym != nil {
			t = sym.Type
		}
		init = b.defaultValue(t)
	}
	b.bindVariable(s.Name.Value, init)
}

var assignOps = map[ast.AssignOp]string{
	ast.PlusAssign:  "add",
	ast.MinusAssign: "sub",
	ast.StarAssign:  "mul",
	ast.SlashAssign: "div",
}

func (b *Builder) lowerAssign(s *ast.AssignStmt) {
	value := b.lowerExpr(s.Value)

	if op, compound := assignOps[s.Op]; compound {
		current := b.lowerExpr(s.Target)
		result := b.tempValue(b.typeOf(s.Target))
		b.emit(&BinaryInstruction{
			ID: b.nextInstID(), Result: result, Op: op, Left: current, Right: value,
		})
		value = result
	}

	b.storeTo(s.Target, value)
}

// storeTo writes a value into an assignment target: a rebinding for plain
// names, a store through an address for elements, members, and pointers.
func (b *Builder) storeTo(target ast.Expr, value *Value) {
	switch t := target.(type) {
	case *ast.IdentExpr:
		b.bindVariable(t.Name, value)
	case *ast.CallExpr:
		addr := b.elementAddress(t)
		b.emit(&StoreInstruction{ID: b.nextInstID(), Address: addr, Value: value})
	case *ast.MemberExpr:
		addr := b.memberAddress(t)
		b.emit(&StoreInstruction{ID: b.nextInstID(), Address: addr, Value: value})
	case *ast.DerefExpr:
		ptr := b.lowerExpr(t.Target)
		b.emit(&StoreInstruction{ID: b.nextInstID(), Address: ptr, Value: value})
	case *ast.ParenExpr:
		b.storeTo(t.Value, value)
	default:
		panic("ir: assignment target survived analysis but is not addressable")
	}
}

func (b *Builder) lowerIf(s *ast.IfStmt) {
	merge := b.newBlock("if.merge")

	conds := []ast.Expr{s.Cond}
	bodies := []*ast.BlockStmt{s.Then}
	for _, clause := range s.ElseIfs {
		conds = append(conds, clause.Cond)
		bodies = append(bodies, clause.Body)
	}

	for i := range conds {
		cond := b.lowerExpr(conds[i])
		then := b.newBlock("if.then")

		var miss *BasicBlock
		switch {
		case i+1 < len(conds):
			miss = b.newBlock("elseif.cond")
		case s.Else != nil:
			miss = b.newBlock("if.else")
		default:
			miss = merge
		}

		b.branch(cond, then, miss)
		b.startBlock(then)
		b.lowerBlock(bodies[i])
		b.jump(merge)
		b.startBlock(miss)
	}

	if s.Else != nil {
		b.lowerBlock(s.Else)
		b.jump(merge)
		b.startBlock(merge)
	}
}

func (b *Builder) lowerSelect(s *ast.SelectStmt) {
	subject := b.lowerExpr(s.Value)
	end := b.newBlock("select.end")
	b.pushExit(ast.ExitSelect, end)

	// Case values dispatch through comparison branches, not a jump table.
	for _, clause := range s.Cases {
		body := b.newBlock("case.body")
		miss := b.newBlock("case.next")
		for j, candidate := range clause.Values {
			value := b.lowerExpr(candidate)
			cmp := b.tempValue(b.catalog.Boolean())
			b.emit(&CompareInstruction{
				ID: b.nextInstID(), Result: cmp, Op: "eq", Left: subject, Right: value,
			})
			if j+1 < len(clause.Values) {
				again := b.newBlock("case.test")
				b.branch(cmp, body, again)
				b.startBlock(again)
			} else {
				b.branch(cmp, body, miss)
			}
		}
		b.startBlock(body)
		b.lowerBlock(clause.Body)
		b.jump(end)
		b.startBlock(miss)
	}

	if s.Else != nil {
		b.lowerBlock(s.Else)
	}
	b.jump(end)
	b.startBlock(end)
	b.popExit(ast.ExitSelect)
}

func (b *Builder) lowerFor(s *ast.ForStmt) {
	b.pushFrame()

	from := b.lowerExpr(s.From)
	loopVar := b.bindVariable(s.Var.Value, from)
	bound := b.lowerExpr(s.To)
	step := b.constValue("1", loopVar.Type)
	if s.Step != nil {
		step = b.lowerExpr(s.Step)
	}

	cond := b.newBlock("for.cond")
	body := b.newBlock("for.body")
	inc := b.newBlock("for.inc")
	end := b.newBlock("for.end")

	b.jump(cond)
	b.startBlock(cond)
	current := b.readVariable(s.Var.Value, loopVar.Type)
	cmp := b.tempValue(b.catalog.Boolean())
	b.emit(&CompareInstruction{
		ID: b.nextInstID(), Result: cmp, Op: "le", Left: current, Right: bound,
	})
	b.branch(cmp, body, end)

	b.startBlock(body)
	b.pushExit(ast.ExitFor, end)
	b.lowerBlock(s.Body)
	b.popExit(ast.ExitFor)
	b.jump(inc)

	b.startBlock(inc)
	current = b.readVariable(s.Var.Value, loopVar.Type)
	next := b.tempValue(loopVar.Type)
	b.emit(&BinaryInstruction{
		ID: b.nextInstID(), Result: next, Op: "add", Left: current, Right: step,
	})
	b.bindVariable(s.Var.Value, next)
	b.jump(cond)

	b.startBlock(end)
	b.popFrame()
}

// lowerForEach rewrites element iteration as an index-based loop: the
// collection's upper bound drives a counter, and the loop variable is
// reloaded from the element address at the top of each iteration.
func (b *Builder) lowerForEach(s *ast.ForEachStmt) {
	b.pushFrame()

	collection := b.lowerExpr(s.Collection)
	bound := b.tempValue(b.catalog.Integer())
	b.emit(&CallInstruction{
		ID: b.nextInstID(), Result: bound, Callee: "UBound", Args: []*Value{collection},
	})
	b.bindVariable("idx", b.constValue("0", b.catalog.Integer()))

	var elemType *types.TypeInfo
	if collection.Type != nil && collection.Type.Kind == types.KindArray {
		elemType = collection.Type.Element
	}

	cond := b.newBlock("foreach.cond")
	body := b.newBlock("foreach.body")
	inc := b.newBlock("foreach.inc")
	end := b.newBlock("foreach.end")

	b.jump(cond)
	b.startBlock(cond)
	idx := b.readVariable("idx", b.catalog.Integer())
	cmp := b.tempValue(b.catalog.Boolean())
	b.emit(&CompareInstruction{
		ID: b.nextInstID(), Result: cmp, Op: "le", Left: idx, Right: bound,
	})
	b.branch(cmp, body, end)

	b.startBlock(body)
	idx = b.readVariable("idx", b.catalog.Integer())
	addr := b.tempValue(elemType)
	b.emit(&GetElementPtrInstruction{
		ID: b.nextInstID(), Result: addr, Base: collection, Indexes: []*Value{idx},
	})
	element := b.tempValue(elemType)
	b.emit(&LoadInstruction{ID: b.nextInstID(), Result: element, Address: addr})
	b.bindVariable(s.Var.Value, element)

	b.pushExit(ast.ExitFor, end)
	b.lowerBlock(s.Body)
	b.popExit(ast.ExitFor)
	b.jump(inc)

	b.startBlock(inc)
	idx = b.readVariable("idx", b.catalog.Integer())
	next := b.tempValue(b.catalog.Integer())
	b.emit(&BinaryInstruction{
		ID: b.nextInstID(), Result: next, Op: "add",
		Left: idx, Right: b.constValue("1", b.catalog.Integer()),
	})
	b.bindVariable("idx", next)
	b.jump(cond)

	b.startBlock(end)
	b.popFrame()
}

func (b *Builder) lowerWhile(s *ast.WhileStmt) {
	cond := b.newBlock("while.cond")
	body := b.newBlock("while.body")
	end := b.newBlock("while.end")

	b.jump(cond)
	b.startBlock(cond)
	c := b.lowerExpr(s.Cond)
	b.branch(c, body, end)

	b.startBlock(body)
	b.pushExit(ast.ExitWhile, end)
	b.lowerBlock(s.Body)
	b.popExit(ast.ExitWhile)
	b.jump(cond)

	b.startBlock(end)
}

// lowerDo covers the four Do/Loop spellings. Until semantics invert the
// branch arms; post-tested placement runs the body before the condition.
func (b *Builder) lowerDo(s *ast.DoStmt) {
	cond := b.newBlock("do.cond")
	body := b.newBlock("do.body")
	end := b.newBlock("do.end")

	if s.PostTest {
		b.jump(body)
	} else {
		b.jump(cond)
		b.startBlock(cond)
		c := b.lowerExpr(s.Cond)
		if s.Until {
			b.branch(c, end, body)
		} else {
			b.branch(c, body, end)
		}
	}

	b.startBlock(body)
	b.pushExit(ast.ExitDo, end)
	b.lowerBlock(s.Body)
	b.popExit(ast.ExitDo)
	b.jump(cond)

	if s.PostTest {
		b.startBlock(cond)
		c := b.lowerExpr(s.Cond)
		if s.Until {
			b.branch(c, end, body)
		} else {
			b.branch(c, body, end)
		}
	}

	b.startBlock(end)
}

// lowerTry emits the protected body, handlers, and finalizer as plain
// sequential blocks. There is no unwinding; the shape is structural only.
func (b *Builder) lowerTry(s *ast.TryStmt) {
	body := b.newBlock("try.body")
	b.jump(body)
	b.startBlock(body)
	b.lowerBlock(s.Body)

	for _, clause := range s.Catches {
		handler := b.newBlock("catch")
		b.jump(handler)
		b.startBlock(handler)
		b.pushFrame()
		if clause.Var != nil {
			b.pushVersion(clause.Var.Value, &Value{
				ID:      b.nextInstID(),
				Name:    clause.Var.Value,
				Version: b.nextVersion(clause.Var.Value),
				Type:    b.catalog.ErrorClass(),
			})
		}
		b.lowerBlock(clause.Body)
		b.popFrame()
	}

	if s.Finally != nil {
		finalizer := b.newBlock("finally")
		b.jump(finalizer)
		b.startBlock(finalizer)
		b.lowerBlock(s.Finally)
	}

	end := b.newBlock("try.end")
	b.jump(end)
	b.startBlock(end)
}

func (b *Builder) lowerReturn(s *ast.ReturnStmt) {
	ret := &ReturnInstruction{ID: b.nextInstID()}
	if s.Value != nil {
		ret.Value = b.lowerExpr(s.Value)
	}
	b.terminate(ret)
}

func (b *Builder) lowerExit(s *ast.ExitStmt) {
	switch s.Kind {
	case ast.ExitSub:
		b.terminate(&ReturnInstruction{ID: b.nextInstID()})
	case ast.ExitFunction:
		b.terminate(b.defaultReturn())
	default:
		kind := s.Kind
		if kind == ast.ExitWhile || kind == ast.ExitDo || kind == ast.ExitSelect || kind == ast.ExitFor {
			if target := b.exitTarget(kind); target != nil {
				b.jump(target)
			}
		}
	}
}
