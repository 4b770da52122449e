package checker

import (
	"strconv"

	"github.com/willvillegas/triangle-go/ast"
	"github.com/willvillegas/triangle-go/diag"
	"github.com/willvillegas/triangle-go/token"
)

func itoa(n int) string { return strconv.Itoa(n) }

// procFormals reports whether v (whatever an Identifier resolved to) names
// a procedure — either a ProcDeclaration or a Proc formal parameter — and
// if so returns its formal-parameter signature.
func procFormals(v any) (ast.FormalParameterSequence, bool) {
	switch d := v.(type) {
	case *ast.ProcDeclaration:
		return d.Formals, true
	case *ast.ProcFormalParameter:
		return d.Formals, true
	default:
		return nil, false
	}
}

// flattenFormals walks a FormalParameterSequence into a plain slice so
// formal/actual matching can be driven by ordinary index arithmetic instead
// of recursing the linked-list shape on both sides at once.
func flattenFormals(fs ast.FormalParameterSequence) []ast.FormalParameter {
	var out []ast.FormalParameter
	for {
		switch n := fs.(type) {
		case *ast.EmptyFormalParameterSequence:
			return out
		case *ast.SingleFormalParameterSequence:
			return append(out, n.FP)
		case *ast.MultipleFormalParameterSequence:
			out = append(out, n.FP)
			fs = n.Rest
		default:
			return out
		}
	}
}

func flattenActuals(as ast.ActualParameterSequence) []ast.ActualParameter {
	var out []ast.ActualParameter
	for {
		switch n := as.(type) {
		case *ast.EmptyActualParameterSequence:
			return out
		case *ast.SingleActualParameterSequence:
			return append(out, n.AP)
		case *ast.MultipleActualParameterSequence:
			out = append(out, n.AP)
			as = n.Rest
		default:
			return out
		}
	}
}

// formalSeqEquivalent decides whether two formal-parameter sequences are
// the same signature: same length, same kind and type at each position,
// recursing into nested Proc/Func formal signatures (spec §4.5.5, "signature
// equivalence for proc/func parameters recursively applies the same
// rules").
func formalSeqEquivalent(a, b ast.FormalParameterSequence) bool {
	af, bf := flattenFormals(a), flattenFormals(b)
	if len(af) != len(bf) {
		return false
	}
	for i := range af {
		if !formalEquivalent(af[i], bf[i]) {
			return false
		}
	}
	return true
}

// checkActualParameterSequence matches actuals against formals position by
// position: same length, same kind at each position, and (per kind) the
// value/variable/signature checks of spec §4.5.5. The role each Identifier
// is visited in — Const/Var expression vs. a bare Proc/Func name — is fixed
// by which ActualParameter variant the parser already produced it as, so no
// separate role-hint parameter is threaded through; the parameter's own
// type carries the hint.
func (c *Checker) checkActualParameterSequence(formals ast.FormalParameterSequence, actuals ast.ActualParameterSequence, span token.Span) {
	fs := flattenFormals(formals)
	as := flattenActuals(actuals)
	if len(fs) != len(as) {
		diag.Type(c.reporter, span, "expected %d argument(s), got %d", len(fs), len(as))
		c.checkActualsLoose(actuals)
		return
	}
	for i := range fs {
		c.checkActualParameter(fs[i], as[i])
	}
}

func (c *Checker) checkActualParameter(fp ast.FormalParameter, ap ast.ActualParameter) {
	switch f := fp.(type) {
	case *ast.ConstFormalParameter:
		a, ok := ap.(*ast.ConstActualParameter)
		if !ok {
			diag.Type(c.reporter, ap.Span(), "expected a value argument")
			return
		}
		t := c.checkExpression(a.Expr)
		if !equivalent(t, f.Type) {
			diag.Type(c.reporter, a.Expr.Span(), "argument type does not match parameter %q", f.Name.Spelling)
		}

	case *ast.VarFormalParameter:
		a, ok := ap.(*ast.VarActualParameter)
		if !ok {
			diag.Type(c.reporter, ap.Span(), "expected a var argument")
			return
		}
		t := c.checkVname(a.Vname)
		if _, isErr := t.(*ast.ErrorTypeDenoter); !isErr && !variable(a.Vname) {
			diag.Type(c.reporter, a.Vname.Span(), "var argument must denote a variable")
		}
		if !equivalent(t, f.Type) {
			diag.Type(c.reporter, a.Vname.Span(), "argument type does not match parameter %q", f.Name.Spelling)
		}

	case *ast.ProcFormalParameter:
		a, ok := ap.(*ast.ProcActualParameter)
		if !ok {
			diag.Type(c.reporter, ap.Span(), "expected a proc argument")
			return
		}
		v, ok := c.resolveIdent(a.Id)
		if !ok {
			return
		}
		sig, isProc := procFormals(v)
		if !isProc {
			diag.Type(c.reporter, a.Id.Span(), "%q does not denote a procedure", a.Id.Spelling)
			return
		}
		if !formalSeqEquivalent(sig, f.Formals) {
			diag.Type(c.reporter, a.Id.Span(), "procedure %q's signature does not match parameter %q", a.Id.Spelling, f.Name.Spelling)
		}

	case *ast.FuncFormalParameter:
		a, ok := ap.(*ast.FuncActualParameter)
		if !ok {
			diag.Type(c.reporter, ap.Span(), "expected a func argument")
			return
		}
		v, ok := c.resolveIdent(a.Id)
		if !ok {
			return
		}
		fd, isFunc := v.(*ast.FuncDeclaration)
		ff, isFuncFormal := v.(*ast.FuncFormalParameter)
		var sig ast.FormalParameterSequence
		var retType ast.TypeDenoter
		switch {
		case isFunc:
			sig, retType = fd.Formals, fd.ReturnType
		case isFuncFormal:
			sig, retType = ff.Formals, ff.Type
		default:
			diag.Type(c.reporter, a.Id.Span(), "%q does not denote a function", a.Id.Spelling)
			return
		}
		if !formalSeqEquivalent(sig, f.Formals) || !equivalent(retType, f.Type) {
			diag.Type(c.reporter, a.Id.Span(), "function %q's signature does not match parameter %q", a.Id.Spelling, f.Name.Spelling)
		}
	}
}

// checkActualsLoose still visits every actual's sub-expressions — so nested
// identifiers get decorated and any errors inside them are reported — but
// skips formal-matching, for call sites whose callee didn't resolve or
// whose arity already mismatched.
func (c *Checker) checkActualsLoose(actuals ast.ActualParameterSequence) {
	for _, a := range flattenActuals(actuals) {
		switch n := a.(type) {
		case *ast.ConstActualParameter:
			c.checkExpression(n.Expr)
		case *ast.VarActualParameter:
			c.checkVname(n.Vname)
		case *ast.ProcActualParameter:
			c.resolveIdent(n.Id)
		case *ast.FuncActualParameter:
			c.resolveIdent(n.Id)
		}
	}
}

func formalEquivalent(a, b ast.FormalParameter) bool {
	switch x := a.(type) {
	case *ast.ConstFormalParameter:
		y, ok := b.(*ast.ConstFormalParameter)
		return ok && equivalent(x.Type, y.Type)
	case *ast.VarFormalParameter:
		y, ok := b.(*ast.VarFormalParameter)
		return ok && equivalent(x.Type, y.Type)
	case *ast.ProcFormalParameter:
		y, ok := b.(*ast.ProcFormalParameter)
		return ok && formalSeqEquivalent(x.Formals, y.Formals)
	case *ast.FuncFormalParameter:
		y, ok := b.(*ast.FuncFormalParameter)
		return ok && formalSeqEquivalent(x.Formals, y.Formals) && equivalent(x.Type, y.Type)
	default:
		return false
	}
}
