package ast

import "fmt"

// CheckDecorationTotality walks a fully checked Program and verifies that
// every decoration slot the Checker is responsible for filling in has in
// fact been filled in: every Expression and Vname's TypeSlot is set, and
// every applied Identifier/Operator occurrence's DeclSlot has left the
// Unresolved state. It mirrors Dump's traversal shape (one function per
// syntactic category) but asserts on decoration state instead of building
// JSON.
//
// A non-nil error means the Checker left some node's decoration slot
// untouched — a Checker bug, since Check is documented to decorate every
// node it visits (spec §5, §8.1), not a malformed input program.
func CheckDecorationTotality(p *Program) error {
	w := &totalityWalker{}
	w.walkCommand(p.Cmd)
	if len(w.violations) > 0 {
		return fmt.Errorf("ast: decoration totality violated: %s", w.violations[0])
	}
	return nil
}

type totalityWalker struct {
	violations []string
}

func (w *totalityWalker) fail(format string, args ...any) {
	w.violations = append(w.violations, fmt.Sprintf(format, args...))
}

func (w *totalityWalker) checkDeclSlot(what string, s *DeclSlot) {
	if s.State() == Unresolved {
		w.fail("%s: DeclSlot still Unresolved", what)
	}
}

func (w *totalityWalker) checkTypeSlot(what string, s *TypeSlot) {
	if !s.IsSet() {
		w.fail("%s: TypeSlot never set", what)
	}
}

func (w *totalityWalker) walkCommand(c Command) {
	switch n := c.(type) {
	case *EmptyCommand:

	case *AssignCommand:
		w.walkVname(n.Vname)
		w.walkExpression(n.Expr)

	case *CallCommand:
		w.checkDeclSlot(fmt.Sprintf("CallCommand %q", n.Id.Spelling), &n.Id.Decl)
		w.walkActualParameterSequence(n.Aps)

	case *SequentialCommand:
		w.walkCommand(n.First)
		w.walkCommand(n.Second)

	case *LetCommand:
		w.walkDeclaration(n.Decl)
		w.walkCommand(n.Cmd)

	case *IfCommand:
		w.walkExpression(n.Expr)
		w.walkCommand(n.Then)
		w.walkCommand(n.Else)

	case *WhileCommand:
		w.walkExpression(n.Expr)
		w.walkCommand(n.Cmd)

	default:
		w.fail("checkCommand: unhandled command %T", c)
	}
}

func (w *totalityWalker) walkExpression(e Expression) {
	w.checkTypeSlot(fmt.Sprintf("%T", e), e.Type())

	switch n := e.(type) {
	case *IntegerExpression, *CharacterExpression:

	case *VnameExpression:
		w.walkVname(n.Vname)

	case *CallExpression:
		w.checkDeclSlot(fmt.Sprintf("CallExpression %q", n.Id.Spelling), &n.Id.Decl)
		w.walkActualParameterSequence(n.Aps)

	case *IfExpression:
		w.walkExpression(n.Cond)
		w.walkExpression(n.Then)
		w.walkExpression(n.Else)

	case *LetExpression:
		w.walkDeclaration(n.Decl)
		w.walkExpression(n.Expr)

	case *UnaryExpression:
		w.checkDeclSlot(fmt.Sprintf("UnaryExpression %q", n.Op.Spelling), &n.Op.Decl)
		w.walkExpression(n.Expr)

	case *BinaryExpression:
		w.checkDeclSlot(fmt.Sprintf("BinaryExpression %q", n.Op.Spelling), &n.Op.Decl)
		w.walkExpression(n.Left)
		w.walkExpression(n.Right)

	case *ArrayExpression:
		w.walkArrayAggregate(n.Agg)

	case *RecordExpression:
		w.walkRecordAggregate(n.Agg)

	default:
		w.fail("checkExpression: unhandled expression %T", e)
	}
}

func (w *totalityWalker) walkVname(v Vname) {
	w.checkTypeSlot(fmt.Sprintf("%T", v), v.Type())

	switch n := v.(type) {
	case *SimpleVname:
		w.checkDeclSlot(fmt.Sprintf("SimpleVname %q", n.Name.Spelling), &n.Name.Decl)

	case *DotVname:
		w.walkVname(n.Base)

	case *SubscriptVname:
		w.walkVname(n.Base)
		w.walkExpression(n.Subscript)

	default:
		w.fail("checkVname: unhandled vname %T", v)
	}
}

func (w *totalityWalker) walkDeclaration(d Declaration) {
	switch n := d.(type) {
	case *ConstDeclaration:
		w.walkExpression(n.Expr)

	case *VarDeclaration:

	case *ProcDeclaration:
		w.walkFormalParameterSequence(n.Formals)
		w.walkCommand(n.Cmd)

	case *FuncDeclaration:
		w.walkFormalParameterSequence(n.Formals)
		w.walkExpression(n.Expr)

	case *TypeDeclaration:

	case *UnaryOperatorDeclaration, *BinaryOperatorDeclaration:

	case *SequentialDeclaration:
		w.walkDeclaration(n.First)
		w.walkDeclaration(n.Second)

	default:
		w.fail("checkDeclaration: unhandled declaration %T", d)
	}
}

func (w *totalityWalker) walkFormalParameterSequence(fs FormalParameterSequence) {
	for fs != nil {
		switch n := fs.(type) {
		case *EmptyFormalParameterSequence:
			return
		case *SingleFormalParameterSequence:
			w.walkFormalParameter(n.FP)
			return
		case *MultipleFormalParameterSequence:
			w.walkFormalParameter(n.FP)
			fs = n.Rest
		default:
			return
		}
	}
}

func (w *totalityWalker) walkFormalParameter(fp FormalParameter) {
	switch n := fp.(type) {
	case *ConstFormalParameter, *VarFormalParameter:
	case *ProcFormalParameter:
		w.walkFormalParameterSequence(n.Formals)
	case *FuncFormalParameter:
		w.walkFormalParameterSequence(n.Formals)
	}
}

func (w *totalityWalker) walkActualParameterSequence(as ActualParameterSequence) {
	for as != nil {
		switch n := as.(type) {
		case *EmptyActualParameterSequence:
			return
		case *SingleActualParameterSequence:
			w.walkActualParameter(n.AP)
			return
		case *MultipleActualParameterSequence:
			w.walkActualParameter(n.AP)
			as = n.Rest
		default:
			return
		}
	}
}

func (w *totalityWalker) walkActualParameter(ap ActualParameter) {
	switch n := ap.(type) {
	case *ConstActualParameter:
		w.walkExpression(n.Expr)
	case *VarActualParameter:
		w.walkVname(n.Vname)
	case *ProcActualParameter:
		w.checkDeclSlot(fmt.Sprintf("ProcActualParameter %q", n.Id.Spelling), &n.Id.Decl)
	case *FuncActualParameter:
		w.checkDeclSlot(fmt.Sprintf("FuncActualParameter %q", n.Id.Spelling), &n.Id.Decl)
	}
}

func (w *totalityWalker) walkArrayAggregate(a ArrayAggregate) {
	for a != nil {
		switch n := a.(type) {
		case *SingleArrayAggregate:
			w.walkExpression(n.Expr)
			return
		case *MultipleArrayAggregate:
			w.walkExpression(n.Expr)
			a = n.Rest
		default:
			return
		}
	}
}

func (w *totalityWalker) walkRecordAggregate(r RecordAggregate) {
	for r != nil {
		switch n := r.(type) {
		case *SingleRecordAggregate:
			w.walkExpression(n.Expr)
			return
		case *MultipleRecordAggregate:
			w.walkExpression(n.Expr)
			r = n.Rest
		default:
			return
		}
	}
}
