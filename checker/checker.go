// Package checker is Triangle's contextual analyzer: the single structural
// walk over the AST that resolves every identifier/operator occurrence to
// the declaration that introduced it and infers, checks, and decorates
// every expression and vname with its type (spec §4.5).
package checker

import (
	"github.com/willvillegas/triangle-go/ast"
	"github.com/willvillegas/triangle-go/diag"
	"github.com/willvillegas/triangle-go/idtable"
	"github.com/willvillegas/triangle-go/stdenv"
	"github.com/willvillegas/triangle-go/token"
)

// Checker carries the two pieces of context the traversal threads through
// every visit: the current environment (IdTable) and, implicitly via which
// method is called, the role a node is being visited in.
type Checker struct {
	table    *idtable.Table
	env      *stdenv.Environment
	reporter diag.Reporter
}

// New builds a Checker with a fresh Standard Environment entered into a
// fresh IdTable at level 0 (spec §4.4).
func New(reporter diag.Reporter) *Checker {
	c := &Checker{
		table:    idtable.New(),
		env:      stdenv.New(),
		reporter: reporter,
	}
	c.env.Populate(c.table)
	return c
}

// Check runs the contextual analysis over prog. Errors are reported to the
// Checker's Reporter; Check itself never returns an error value — the
// caller inspects reporter.HasErrors() afterward (spec §5: best-effort
// traversal, no cancellation).
func (c *Checker) Check(prog *ast.Program) {
	c.checkCommand(prog.Cmd)
}

// --- identifier / operator resolution -------------------------------------

func (c *Checker) resolveIdent(id *ast.Identifier) (any, bool) {
	v, ok := c.table.Retrieve(id.Spelling)
	if !ok {
		diag.Identification(c.reporter, id.Span(), "%q is not declared", id.Spelling)
		id.Decl.MarkUnresolvable()
		return nil, false
	}
	id.Decl.Resolve(v)
	return v, true
}

func (c *Checker) resolveOperator(op *ast.Operator) (any, bool) {
	v, ok := c.table.Retrieve(op.Spelling)
	if !ok {
		diag.Identification(c.reporter, op.Span(), "operator %q is not declared", op.Spelling)
		op.Decl.MarkUnresolvable()
		return nil, false
	}
	op.Decl.Resolve(v)
	return v, true
}

// --- declarations ----------------------------------------------------------

func (c *Checker) checkDeclaration(d ast.Declaration) {
	switch n := d.(type) {
	case *ast.ConstDeclaration:
		n.ExprType = c.checkExpression(n.Expr)
		c.table.Enter(n.Name.Spelling, n)

	case *ast.VarDeclaration:
		n.Type = c.checkTypeDenoter(n.Type)
		c.table.Enter(n.Name.Spelling, n)

	case *ast.TypeDeclaration:
		n.Type = c.checkTypeDenoter(n.Type)
		c.table.Enter(n.Name.Spelling, n)

	case *ast.ProcDeclaration:
		// Entered into the *outer* scope before the body is checked, so a
		// recursive call inside Cmd resolves to this same declaration
		// (spec §4.5.1).
		c.table.Enter(n.Name.Spelling, n)
		c.table.OpenScope()
		c.checkFormalParameterSequence(n.Formals)
		c.checkCommand(n.Cmd)
		c.table.CloseScope()

	case *ast.FuncDeclaration:
		c.table.Enter(n.Name.Spelling, n)
		c.table.OpenScope()
		c.checkFormalParameterSequence(n.Formals)
		n.ReturnType = c.checkTypeDenoter(n.ReturnType)
		bodyType := c.checkExpression(n.Expr)
		if !equivalent(bodyType, n.ReturnType) {
			diag.Type(c.reporter, n.Expr.Span(), "function %q's body does not match its declared return type", n.Name.Spelling)
		}
		c.table.CloseScope()

	case *ast.UnaryOperatorDeclaration:
		c.table.Enter(n.Op.Spelling, n)

	case *ast.BinaryOperatorDeclaration:
		c.table.Enter(n.Op.Spelling, n)

	case *ast.SequentialDeclaration:
		c.checkDeclaration(n.First)
		c.checkDeclaration(n.Second)

	default:
		diag.Internal(c.reporter, d.Span(), "checker: unhandled declaration %T", d)
	}
}

// checkFormalParameterSequence enters each formal into the (already open)
// current scope, resolving nested type denoters along the way.
func (c *Checker) checkFormalParameterSequence(fs ast.FormalParameterSequence) {
	for _, fp := range flattenFormals(fs) {
		switch f := fp.(type) {
		case *ast.ConstFormalParameter:
			f.Type = c.checkTypeDenoter(f.Type)
			c.table.Enter(f.Name.Spelling, f)
		case *ast.VarFormalParameter:
			f.Type = c.checkTypeDenoter(f.Type)
			c.table.Enter(f.Name.Spelling, f)
		case *ast.ProcFormalParameter:
			c.table.OpenScope()
			c.checkFormalParameterSequence(f.Formals)
			c.table.CloseScope()
			c.table.Enter(f.Name.Spelling, f)
		case *ast.FuncFormalParameter:
			c.table.OpenScope()
			c.checkFormalParameterSequence(f.Formals)
			c.table.CloseScope()
			f.Type = c.checkTypeDenoter(f.Type)
			c.table.Enter(f.Name.Spelling, f)
		}
	}
}

// --- type denoters -----------------------------------------------------------

func (c *Checker) checkTypeDenoter(t ast.TypeDenoter) ast.TypeDenoter {
	switch n := t.(type) {
	case *ast.SimpleTypeDenoter:
		v, ok := c.resolveIdent(n.Name)
		if !ok {
			return c.env.ErrorType
		}
		td, ok := v.(*ast.TypeDeclaration)
		if !ok {
			diag.Type(c.reporter, n.Span(), "%q does not denote a type", n.Name.Spelling)
			return c.env.ErrorType
		}
		n.Resolved = td.Type
		return td.Type
	case *ast.ArrayTypeDenoter:
		n.Member = c.checkTypeDenoter(n.Member)
		return n
	case *ast.RecordTypeDenoter:
		c.checkFieldTypeDenoter(n.Fields)
		return n
	default:
		// Any/Error/Bool/Char/Int are already resolved leaves.
		return t
	}
}

func (c *Checker) checkFieldTypeDenoter(f ast.FieldTypeDenoter) {
	switch n := f.(type) {
	case *ast.SingleFieldTypeDenoter:
		n.Type = c.checkTypeDenoter(n.Type)
	case *ast.MultipleFieldTypeDenoter:
		n.Type = c.checkTypeDenoter(n.Type)
		c.checkFieldTypeDenoter(n.Rest)
	}
}

// --- commands ----------------------------------------------------------------

func (c *Checker) checkCommand(cmd ast.Command) {
	switch n := cmd.(type) {
	case *ast.EmptyCommand:

	case *ast.AssignCommand:
		vt := c.checkVname(n.Vname)
		et := c.checkExpression(n.Expr)
		if _, isErr := vt.(*ast.ErrorTypeDenoter); !isErr && !variable(n.Vname) {
			diag.Type(c.reporter, n.Vname.Span(), "left side of assignment does not denote a variable")
		}
		if !equivalent(vt, et) {
			diag.Type(c.reporter, n.Span(), "cannot assign a value of this type to this variable")
		}

	case *ast.CallCommand:
		v, ok := c.resolveIdent(n.Id)
		if !ok {
			c.checkActualsLoose(n.Aps)
			return
		}
		formals, isProc := procFormals(v)
		if !isProc {
			diag.Type(c.reporter, n.Id.Span(), "%q does not denote a procedure", n.Id.Spelling)
			c.checkActualsLoose(n.Aps)
			return
		}
		c.checkActualParameterSequence(formals, n.Aps, n.Span())

	case *ast.SequentialCommand:
		c.checkCommand(n.First)
		c.checkCommand(n.Second)

	case *ast.LetCommand:
		c.table.OpenScope()
		c.checkDeclaration(n.Decl)
		c.checkCommand(n.Cmd)
		c.table.CloseScope()

	case *ast.IfCommand:
		t := c.checkExpression(n.Expr)
		if !equivalent(t, c.env.BoolType) {
			diag.Type(c.reporter, n.Expr.Span(), "if-condition must be Boolean")
		}
		c.checkCommand(n.Then)
		c.checkCommand(n.Else)

	case *ast.WhileCommand:
		t := c.checkExpression(n.Expr)
		if !equivalent(t, c.env.BoolType) {
			diag.Type(c.reporter, n.Expr.Span(), "while-condition must be Boolean")
		}
		c.checkCommand(n.Cmd)

	default:
		diag.Internal(c.reporter, cmd.Span(), "checker: unhandled command %T", cmd)
	}
}

// --- expressions ---------------------------------------------------------

func (c *Checker) checkExpression(e ast.Expression) ast.TypeDenoter {
	var t ast.TypeDenoter
	switch n := e.(type) {
	case *ast.IntegerExpression:
		t = c.env.IntType

	case *ast.CharacterExpression:
		t = c.env.CharType

	case *ast.VnameExpression:
		t = c.checkVname(n.Vname)

	case *ast.CallExpression:
		v, ok := c.resolveIdent(n.Id)
		if !ok {
			c.checkActualsLoose(n.Aps)
			t = c.env.ErrorType
			break
		}
		fd, isFunc := v.(*ast.FuncDeclaration)
		ff, isFuncFormal := v.(*ast.FuncFormalParameter)
		switch {
		case isFunc:
			c.checkActualParameterSequence(fd.Formals, n.Aps, n.Span())
			t = fd.ReturnType
		case isFuncFormal:
			c.checkActualParameterSequence(ff.Formals, n.Aps, n.Span())
			t = ff.Type
		default:
			diag.Type(c.reporter, n.Id.Span(), "%q does not denote a function", n.Id.Spelling)
			c.checkActualsLoose(n.Aps)
			t = c.env.ErrorType
		}

	case *ast.IfExpression:
		ct := c.checkExpression(n.Cond)
		if !equivalent(ct, c.env.BoolType) {
			diag.Type(c.reporter, n.Cond.Span(), "if-condition must be Boolean")
		}
		tt := c.checkExpression(n.Then)
		et := c.checkExpression(n.Else)
		if !equivalent(tt, et) {
			diag.Type(c.reporter, n.Span(), "if-branches must have the same type")
		}
		t = tt

	case *ast.LetExpression:
		c.table.OpenScope()
		c.checkDeclaration(n.Decl)
		t = c.checkExpression(n.Expr)
		c.table.CloseScope()

	case *ast.UnaryExpression:
		v, ok := c.resolveOperator(n.Op)
		argT := c.checkExpression(n.Expr)
		if !ok {
			t = c.env.ErrorType
			break
		}
		ud, isUnary := v.(*ast.UnaryOperatorDeclaration)
		if !isUnary {
			diag.Type(c.reporter, n.Op.Span(), "%q is not a unary operator", n.Op.Spelling)
			t = c.env.ErrorType
			break
		}
		if !equivalent(argT, ud.ArgType) {
			diag.Type(c.reporter, n.Expr.Span(), "operand type does not match operator %q", n.Op.Spelling)
		}
		t = ud.ResType

	case *ast.BinaryExpression:
		v, ok := c.resolveOperator(n.Op)
		lt := c.checkExpression(n.Left)
		rt := c.checkExpression(n.Right)
		if !ok {
			t = c.env.ErrorType
			break
		}
		bd, isBinary := v.(*ast.BinaryOperatorDeclaration)
		if !isBinary {
			diag.Type(c.reporter, n.Op.Span(), "%q is not a binary operator", n.Op.Spelling)
			t = c.env.ErrorType
			break
		}
		if isWildcard(bd.Arg1Type) && isWildcard(bd.Arg2Type) {
			// "=" and "\=": both operands must match each other, not just
			// the wildcard (spec §4.5.4).
			if !equivalent(lt, rt) {
				diag.Type(c.reporter, n.Span(), "operands of %q must have the same type", n.Op.Spelling)
			}
		} else {
			if !equivalent(lt, bd.Arg1Type) {
				diag.Type(c.reporter, n.Left.Span(), "left operand type does not match operator %q", n.Op.Spelling)
			}
			if !equivalent(rt, bd.Arg2Type) {
				diag.Type(c.reporter, n.Right.Span(), "right operand type does not match operator %q", n.Op.Spelling)
			}
		}
		t = bd.ResType

	case *ast.ArrayExpression:
		t = c.checkArrayAggregate(n.Agg, n.Span())

	case *ast.RecordExpression:
		t = c.checkRecordAggregate(n.Agg)

	default:
		diag.Internal(c.reporter, e.Span(), "checker: unhandled expression %T", e)
		t = c.env.ErrorType
	}
	e.Type().Set(t)
	return t
}

func (c *Checker) checkArrayAggregate(agg ast.ArrayAggregate, span token.Span) ast.TypeDenoter {
	var elemType ast.TypeDenoter
	count := 0
	for agg != nil {
		var expr ast.Expression
		var rest ast.ArrayAggregate
		switch n := agg.(type) {
		case *ast.SingleArrayAggregate:
			expr, rest = n.Expr, nil
		case *ast.MultipleArrayAggregate:
			expr, rest = n.Expr, n.Rest
		default:
			agg = nil
			continue
		}
		t := c.checkExpression(expr)
		count++
		if elemType == nil {
			elemType = t
		} else if !equivalent(elemType, t) {
			diag.Type(c.reporter, expr.Span(), "array elements must all share the same type")
		}
		agg = rest
	}
	if elemType == nil {
		elemType = c.env.ErrorType
	}
	return ast.NewArrayTypeDenoter(span, ast.NewIntegerLiteral(span, itoa(count)), elemType)
}

func (c *Checker) checkRecordAggregate(agg ast.RecordAggregate) ast.TypeDenoter {
	var fields ast.FieldTypeDenoter
	var names []string
	var types []ast.TypeDenoter
	var spans []token.Span
	for agg != nil {
		var name *ast.Identifier
		var expr ast.Expression
		var rest ast.RecordAggregate
		switch n := agg.(type) {
		case *ast.SingleRecordAggregate:
			name, expr, rest = n.Name, n.Expr, nil
		case *ast.MultipleRecordAggregate:
			name, expr, rest = n.Name, n.Expr, n.Rest
		default:
			agg = nil
			continue
		}
		t := c.checkExpression(expr)
		names = append(names, name.Spelling)
		types = append(types, t)
		spans = append(spans, name.Span())
		agg = rest
	}
	for i := len(names) - 1; i >= 0; i-- {
		if fields == nil {
			fields = ast.NewSingleFieldTypeDenoter(spans[i], ast.NewIdentifier(spans[i], names[i]), types[i])
		} else {
			fields = ast.NewMultipleFieldTypeDenoter(spans[i], ast.NewIdentifier(spans[i], names[i]), types[i], fields)
		}
	}
	return ast.NewRecordTypeDenoter(token.UnknownSpan, fields)
}

// --- vnames ----------------------------------------------------------------

func (c *Checker) checkVname(v ast.Vname) ast.TypeDenoter {
	var t ast.TypeDenoter
	switch n := v.(type) {
	case *ast.SimpleVname:
		val, ok := c.resolveIdent(n.Name)
		if !ok {
			t = c.env.ErrorType
			break
		}
		switch d := val.(type) {
		case *ast.VarDeclaration:
			t = d.Type
		case *ast.VarFormalParameter:
			t = d.Type
		case *ast.ConstDeclaration:
			t = d.ExprType
		case *ast.ConstFormalParameter:
			t = d.Type
		default:
			diag.Type(c.reporter, n.Name.Span(), "%q does not denote a variable or constant", n.Name.Spelling)
			t = c.env.ErrorType
		}

	case *ast.DotVname:
		bt := c.checkVname(n.Base)
		if _, isErr := bt.(*ast.ErrorTypeDenoter); isErr {
			t = c.env.ErrorType
			break
		}
		rt, ok := bt.(*ast.RecordTypeDenoter)
		if !ok {
			diag.Type(c.reporter, n.Span(), "%q is not a record, field selection is invalid", fieldOwnerName(n.Base))
			t = c.env.ErrorType
			break
		}
		ft, found := lookupField(rt.Fields, n.Field.Spelling)
		if !found {
			diag.Type(c.reporter, n.Field.Span(), "record has no field %q", n.Field.Spelling)
			t = c.env.ErrorType
			break
		}
		t = ft

	case *ast.SubscriptVname:
		bt := c.checkVname(n.Base)
		it := c.checkExpression(n.Subscript)
		if !equivalent(it, c.env.IntType) {
			diag.Type(c.reporter, n.Subscript.Span(), "array subscript must be Integer")
		}
		if _, isErr := bt.(*ast.ErrorTypeDenoter); isErr {
			t = c.env.ErrorType
			break
		}
		at, ok := bt.(*ast.ArrayTypeDenoter)
		if !ok {
			diag.Type(c.reporter, n.Span(), "subscripted value is not an array")
			t = c.env.ErrorType
			break
		}
		t = at.Member

	default:
		diag.Internal(c.reporter, v.Span(), "checker: unhandled vname %T", v)
		t = c.env.ErrorType
	}
	v.Type().Set(t)
	return t
}

func lookupField(f ast.FieldTypeDenoter, name string) (ast.TypeDenoter, bool) {
	for {
		n, t, rest, ok := nextField(f)
		if !ok {
			return nil, false
		}
		if n == name {
			return t, true
		}
		f = rest
	}
}

func fieldOwnerName(v ast.Vname) string {
	switch n := v.(type) {
	case *ast.SimpleVname:
		return n.Name.Spelling
	default:
		return "expression"
	}
}

// variable decides whether v is assignable / var-passable: its root
// identifier must resolve to a Var declaration or Var formal parameter;
// subscripting and field selection preserve that (spec §4.5.6).
func variable(v ast.Vname) bool {
	switch n := v.(type) {
	case *ast.SimpleVname:
		switch n.Name.Decl.Declaration().(type) {
		case *ast.VarDeclaration, *ast.VarFormalParameter:
			return true
		default:
			return false
		}
	case *ast.DotVname:
		return variable(n.Base)
	case *ast.SubscriptVname:
		return variable(n.Base)
	default:
		return false
	}
}
