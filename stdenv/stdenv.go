// Package stdenv builds the Standard Environment: the fixed set of
// Declarations for Triangle's built-in types, constants, operators,
// procedures and functions (spec §4.4). It is built once per Checker run
// and entered into the Identification Table at level 0 before the program
// is walked.
package stdenv

import (
	"github.com/willvillegas/triangle-go/ast"
	"github.com/willvillegas/triangle-go/idtable"
	"github.com/willvillegas/triangle-go/token"
)

// Environment holds every standard declaration as its own field, so the
// Checker can reference e.g. env.IntType directly instead of round-tripping
// through a name lookup for types it always needs.
type Environment struct {
	AnyType   ast.TypeDenoter
	ErrorType ast.TypeDenoter
	IntType   ast.TypeDenoter
	CharType  ast.TypeDenoter
	BoolType  ast.TypeDenoter

	IntDecl    *ast.TypeDeclaration
	CharDecl   *ast.TypeDeclaration
	BoolDecl   *ast.TypeDeclaration
	FalseDecl  *ast.ConstDeclaration
	TrueDecl   *ast.ConstDeclaration
	MaxintDecl *ast.ConstDeclaration

	NotDecl *ast.UnaryOperatorDeclaration
	NegDecl *ast.UnaryOperatorDeclaration

	AndDecl *ast.BinaryOperatorDeclaration
	OrDecl  *ast.BinaryOperatorDeclaration
	AddDecl *ast.BinaryOperatorDeclaration
	SubDecl *ast.BinaryOperatorDeclaration
	MulDecl *ast.BinaryOperatorDeclaration
	DivDecl *ast.BinaryOperatorDeclaration
	ModDecl *ast.BinaryOperatorDeclaration
	LtDecl  *ast.BinaryOperatorDeclaration
	LeDecl  *ast.BinaryOperatorDeclaration
	GtDecl  *ast.BinaryOperatorDeclaration
	GeDecl  *ast.BinaryOperatorDeclaration
	EqDecl  *ast.BinaryOperatorDeclaration
	NeDecl  *ast.BinaryOperatorDeclaration

	GetDecl     *ast.ProcDeclaration
	PutDecl     *ast.ProcDeclaration
	GetEolDecl  *ast.ProcDeclaration
	PutEolDecl  *ast.ProcDeclaration
	GetIntDecl  *ast.ProcDeclaration
	PutIntDecl  *ast.ProcDeclaration
	NewDecl     *ast.ProcDeclaration
	DisposeDecl *ast.ProcDeclaration

	EolDecl  *ast.FuncDeclaration
	EofDecl  *ast.FuncDeclaration
	ChrDecl  *ast.FuncDeclaration
	OrdDecl  *ast.FuncDeclaration
	SuccDecl *ast.FuncDeclaration
	PredDecl *ast.FuncDeclaration
	IdDecl   *ast.FuncDeclaration

	// All maps each spelling (identifier or operator) to its Declaration,
	// the shape Populate iterates to seed an idtable.Table.
	All map[string]ast.Declaration
}

func ident(name string) *ast.Identifier { return ast.NewIdentifier(token.UnknownSpan, name) }
func op(spelling string) *ast.Operator  { return ast.NewOperator(token.UnknownSpan, spelling) }

func constFormal(name string, typ ast.TypeDenoter) ast.FormalParameter {
	return ast.NewConstFormalParameter(token.UnknownSpan, ident(name), typ)
}
func varFormal(name string, typ ast.TypeDenoter) ast.FormalParameter {
	return ast.NewVarFormalParameter(token.UnknownSpan, ident(name), typ)
}

func formals(ps ...ast.FormalParameter) ast.FormalParameterSequence {
	if len(ps) == 0 {
		return ast.NewEmptyFormalParameterSequence(token.UnknownSpan)
	}
	var seq ast.FormalParameterSequence = ast.NewSingleFormalParameterSequence(token.UnknownSpan, ps[len(ps)-1])
	for i := len(ps) - 2; i >= 0; i-- {
		seq = ast.NewMultipleFormalParameterSequence(token.UnknownSpan, ps[i], seq)
	}
	return seq
}

// New builds a fresh Standard Environment. It is cheap enough to build per
// Checker run — there is no need for the process-wide singleton a map-based
// environment might tempt you into; each run gets its own decoration slots.
func New() *Environment {
	e := &Environment{
		AnyType:   ast.NewAnyTypeDenoter(token.UnknownSpan),
		ErrorType: ast.NewErrorTypeDenoter(token.UnknownSpan),
		IntType:   ast.NewIntTypeDenoter(token.UnknownSpan),
		CharType:  ast.NewCharTypeDenoter(token.UnknownSpan),
		BoolType:  ast.NewBoolTypeDenoter(token.UnknownSpan),
	}

	e.IntDecl = ast.NewTypeDeclaration(token.UnknownSpan, ident("Integer"), e.IntType)
	e.CharDecl = ast.NewTypeDeclaration(token.UnknownSpan, ident("Char"), e.CharType)
	e.BoolDecl = ast.NewTypeDeclaration(token.UnknownSpan, ident("Boolean"), e.BoolType)

	e.FalseDecl = ast.NewConstDeclaration(token.UnknownSpan, ident("false"),
		ast.NewIntegerExpression(token.UnknownSpan, ast.NewIntegerLiteral(token.UnknownSpan, "0")))
	e.FalseDecl.ExprType = e.BoolType
	e.TrueDecl = ast.NewConstDeclaration(token.UnknownSpan, ident("true"),
		ast.NewIntegerExpression(token.UnknownSpan, ast.NewIntegerLiteral(token.UnknownSpan, "1")))
	e.TrueDecl.ExprType = e.BoolType
	e.MaxintDecl = ast.NewConstDeclaration(token.UnknownSpan, ident("maxint"),
		ast.NewIntegerExpression(token.UnknownSpan, ast.NewIntegerLiteral(token.UnknownSpan, "2147483647")))
	e.MaxintDecl.ExprType = e.IntType

	e.NotDecl = ast.NewUnaryOperatorDeclaration(token.UnknownSpan, op("\\"), e.BoolType, e.BoolType)
	e.NegDecl = ast.NewUnaryOperatorDeclaration(token.UnknownSpan, op("neg"), e.IntType, e.IntType)

	e.AndDecl = ast.NewBinaryOperatorDeclaration(token.UnknownSpan, op("/\\"), e.BoolType, e.BoolType, e.BoolType)
	e.OrDecl = ast.NewBinaryOperatorDeclaration(token.UnknownSpan, op("\\/"), e.BoolType, e.BoolType, e.BoolType)
	e.AddDecl = ast.NewBinaryOperatorDeclaration(token.UnknownSpan, op("+"), e.IntType, e.IntType, e.IntType)
	e.SubDecl = ast.NewBinaryOperatorDeclaration(token.UnknownSpan, op("-"), e.IntType, e.IntType, e.IntType)
	e.MulDecl = ast.NewBinaryOperatorDeclaration(token.UnknownSpan, op("*"), e.IntType, e.IntType, e.IntType)
	e.DivDecl = ast.NewBinaryOperatorDeclaration(token.UnknownSpan, op("/"), e.IntType, e.IntType, e.IntType)
	e.ModDecl = ast.NewBinaryOperatorDeclaration(token.UnknownSpan, op("//"), e.IntType, e.IntType, e.IntType)
	e.LtDecl = ast.NewBinaryOperatorDeclaration(token.UnknownSpan, op("<"), e.IntType, e.IntType, e.BoolType)
	e.LeDecl = ast.NewBinaryOperatorDeclaration(token.UnknownSpan, op("<="), e.IntType, e.IntType, e.BoolType)
	e.GtDecl = ast.NewBinaryOperatorDeclaration(token.UnknownSpan, op(">"), e.IntType, e.IntType, e.BoolType)
	e.GeDecl = ast.NewBinaryOperatorDeclaration(token.UnknownSpan, op(">="), e.IntType, e.IntType, e.BoolType)
	e.EqDecl = ast.NewBinaryOperatorDeclaration(token.UnknownSpan, op("="), e.AnyType, e.AnyType, e.BoolType)
	e.NeDecl = ast.NewBinaryOperatorDeclaration(token.UnknownSpan, op("\\="), e.AnyType, e.AnyType, e.BoolType)

	e.GetDecl = ast.NewProcDeclaration(token.UnknownSpan, ident("get"), formals(varFormal("ch", e.CharType)), nil)
	e.PutDecl = ast.NewProcDeclaration(token.UnknownSpan, ident("put"), formals(constFormal("ch", e.CharType)), nil)
	e.GetEolDecl = ast.NewProcDeclaration(token.UnknownSpan, ident("geteol"), formals(), nil)
	e.PutEolDecl = ast.NewProcDeclaration(token.UnknownSpan, ident("puteol"), formals(), nil)
	e.GetIntDecl = ast.NewProcDeclaration(token.UnknownSpan, ident("getint"), formals(varFormal("n", e.IntType)), nil)
	e.PutIntDecl = ast.NewProcDeclaration(token.UnknownSpan, ident("putint"), formals(constFormal("n", e.IntType)), nil)
	e.NewDecl = ast.NewProcDeclaration(token.UnknownSpan, ident("new"), formals(varFormal("p", e.IntType)), nil)
	e.DisposeDecl = ast.NewProcDeclaration(token.UnknownSpan, ident("dispose"), formals(varFormal("p", e.IntType)), nil)

	e.EolDecl = ast.NewFuncDeclaration(token.UnknownSpan, ident("eol"), formals(), e.BoolType, nil)
	e.EofDecl = ast.NewFuncDeclaration(token.UnknownSpan, ident("eof"), formals(), e.BoolType, nil)
	e.ChrDecl = ast.NewFuncDeclaration(token.UnknownSpan, ident("chr"), formals(constFormal("n", e.IntType)), e.CharType, nil)
	e.OrdDecl = ast.NewFuncDeclaration(token.UnknownSpan, ident("ord"), formals(constFormal("ch", e.CharType)), e.IntType, nil)
	e.SuccDecl = ast.NewFuncDeclaration(token.UnknownSpan, ident("succ"), formals(constFormal("n", e.IntType)), e.IntType, nil)
	e.PredDecl = ast.NewFuncDeclaration(token.UnknownSpan, ident("pred"), formals(constFormal("n", e.IntType)), e.IntType, nil)
	e.IdDecl = ast.NewFuncDeclaration(token.UnknownSpan, ident("id"), formals(constFormal("x", e.AnyType)), e.AnyType, nil)

	e.All = map[string]ast.Declaration{
		"Integer": e.IntDecl, "Char": e.CharDecl, "Boolean": e.BoolDecl,
		"false": e.FalseDecl, "true": e.TrueDecl, "maxint": e.MaxintDecl,
		"\\": e.NotDecl, "neg": e.NegDecl,
		"/\\": e.AndDecl, "\\/": e.OrDecl,
		"+": e.AddDecl, "-": e.SubDecl, "*": e.MulDecl, "/": e.DivDecl, "//": e.ModDecl,
		"<": e.LtDecl, "<=": e.LeDecl, ">": e.GtDecl, ">=": e.GeDecl, "=": e.EqDecl, "\\=": e.NeDecl,
		"get": e.GetDecl, "put": e.PutDecl, "geteol": e.GetEolDecl, "puteol": e.PutEolDecl,
		"getint": e.GetIntDecl, "putint": e.PutIntDecl, "new": e.NewDecl, "dispose": e.DisposeDecl,
		"eol": e.EolDecl, "eof": e.EofDecl, "chr": e.ChrDecl, "ord": e.OrdDecl,
		"succ": e.SuccDecl, "pred": e.PredDecl, "id": e.IdDecl,
	}
	return e
}

// Populate enters every standard declaration into tbl at the table's
// current level — expected to be level 0, before the program is walked
// (spec §4.4: "every standard declaration is entered into the IdTable at
// level 0").
func (e *Environment) Populate(tbl *idtable.Table) {
	for name, decl := range e.All {
		tbl.Enter(name, decl)
	}
}
