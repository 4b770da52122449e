package ast

import "github.com/willvillegas/triangle-go/token"

// EntityKind tags what kind of run-time entity a Declaration introduces,
// independent of its syntactic variant (spec §4.5.1, expanded in
// SPEC_FULL.md §2.2 to cover routines and built-in operators uniformly).
type EntityKind int

const (
	KnownValue EntityKind = iota
	KnownAddress
	KnownRoutine
	KnownOperator
	TypeRepresentation
)

// ConstDeclaration is `const id ~ expr`.
type ConstDeclaration struct {
	span     token.Span
	Name     *Identifier
	Expr     Expression
	ExprType TypeDenoter
	Kind     EntityKind
}

func NewConstDeclaration(span token.Span, name *Identifier, expr Expression) *ConstDeclaration {
	return &ConstDeclaration{span: span, Name: name, Expr: expr, Kind: KnownValue}
}
func (d *ConstDeclaration) Span() token.Span { return d.span }
func (d *ConstDeclaration) declarationNode() {}

// VarDeclaration is `var id : typeDenoter`.
type VarDeclaration struct {
	span token.Span
	Name *Identifier
	Type TypeDenoter
	Kind EntityKind
}

func NewVarDeclaration(span token.Span, name *Identifier, typ TypeDenoter) *VarDeclaration {
	return &VarDeclaration{span: span, Name: name, Type: typ, Kind: KnownAddress}
}
func (d *VarDeclaration) Span() token.Span { return d.span }
func (d *VarDeclaration) declarationNode() {}

// ProcDeclaration is `proc id(formals) ~ command`.
type ProcDeclaration struct {
	span    token.Span
	Name    *Identifier
	Formals FormalParameterSequence
	Cmd     Command
	Kind    EntityKind
}

func NewProcDeclaration(span token.Span, name *Identifier, formals FormalParameterSequence, cmd Command) *ProcDeclaration {
	return &ProcDeclaration{span: span, Name: name, Formals: formals, Cmd: cmd, Kind: KnownRoutine}
}
func (d *ProcDeclaration) Span() token.Span { return d.span }
func (d *ProcDeclaration) declarationNode() {}

// FuncDeclaration is `func id(formals) : typeDenoter ~ expr`.
type FuncDeclaration struct {
	span       token.Span
	Name       *Identifier
	Formals    FormalParameterSequence
	ReturnType TypeDenoter
	Expr       Expression
	Kind       EntityKind
}

func NewFuncDeclaration(span token.Span, name *Identifier, formals FormalParameterSequence, returnType TypeDenoter, expr Expression) *FuncDeclaration {
	return &FuncDeclaration{span: span, Name: name, Formals: formals, ReturnType: returnType, Expr: expr, Kind: KnownRoutine}
}
func (d *FuncDeclaration) Span() token.Span { return d.span }
func (d *FuncDeclaration) declarationNode() {}

// TypeDeclaration is `type id ~ typeDenoter`.
type TypeDeclaration struct {
	span token.Span
	Name *Identifier
	Type TypeDenoter
	Kind EntityKind
}

func NewTypeDeclaration(span token.Span, name *Identifier, typ TypeDenoter) *TypeDeclaration {
	return &TypeDeclaration{span: span, Name: name, Type: typ, Kind: TypeRepresentation}
}
func (d *TypeDeclaration) Span() token.Span { return d.span }
func (d *TypeDeclaration) declarationNode() {}

// UnaryOperatorDeclaration is a standard-environment unary operator's
// signature: ArgType -> ResultType.
type UnaryOperatorDeclaration struct {
	span    token.Span
	Op      *Operator
	ArgType TypeDenoter
	ResType TypeDenoter
	Kind    EntityKind
}

func NewUnaryOperatorDeclaration(span token.Span, op *Operator, argType, resType TypeDenoter) *UnaryOperatorDeclaration {
	return &UnaryOperatorDeclaration{span: span, Op: op, ArgType: argType, ResType: resType, Kind: KnownOperator}
}
func (d *UnaryOperatorDeclaration) Span() token.Span { return d.span }
func (d *UnaryOperatorDeclaration) declarationNode() {}

// BinaryOperatorDeclaration is a standard-environment binary operator's
// signature: Arg1Type x Arg2Type -> ResultType.
type BinaryOperatorDeclaration struct {
	span     token.Span
	Op       *Operator
	Arg1Type TypeDenoter
	Arg2Type TypeDenoter
	ResType  TypeDenoter
	Kind     EntityKind
}

func NewBinaryOperatorDeclaration(span token.Span, op *Operator, arg1Type, arg2Type, resType TypeDenoter) *BinaryOperatorDeclaration {
	return &BinaryOperatorDeclaration{span: span, Op: op, Arg1Type: arg1Type, Arg2Type: arg2Type, ResType: resType, Kind: KnownOperator}
}
func (d *BinaryOperatorDeclaration) Span() token.Span { return d.span }
func (d *BinaryOperatorDeclaration) declarationNode() {}

// SequentialDeclaration is `d1 ; d2`; both contribute to the enclosing scope.
type SequentialDeclaration struct {
	span          token.Span
	First, Second Declaration
}

func NewSequentialDeclaration(span token.Span, first, second Declaration) *SequentialDeclaration {
	return &SequentialDeclaration{span: span, First: first, Second: second}
}
func (d *SequentialDeclaration) Span() token.Span { return d.span }
func (d *SequentialDeclaration) declarationNode() {}
