package ast

import "github.com/willvillegas/triangle-go/token"

// EmptyFormalParameterSequence is `()`.
type EmptyFormalParameterSequence struct{ span token.Span }

func NewEmptyFormalParameterSequence(span token.Span) *EmptyFormalParameterSequence {
	return &EmptyFormalParameterSequence{span: span}
}
func (f *EmptyFormalParameterSequence) Span() token.Span             { return f.span }
func (f *EmptyFormalParameterSequence) formalParameterSequenceNode() {}

type SingleFormalParameterSequence struct {
	span token.Span
	FP   FormalParameter
}

func NewSingleFormalParameterSequence(span token.Span, fp FormalParameter) *SingleFormalParameterSequence {
	return &SingleFormalParameterSequence{span: span, FP: fp}
}
func (f *SingleFormalParameterSequence) Span() token.Span             { return f.span }
func (f *SingleFormalParameterSequence) formalParameterSequenceNode() {}

type MultipleFormalParameterSequence struct {
	span token.Span
	FP   FormalParameter
	Rest FormalParameterSequence
}

func NewMultipleFormalParameterSequence(span token.Span, fp FormalParameter, rest FormalParameterSequence) *MultipleFormalParameterSequence {
	return &MultipleFormalParameterSequence{span: span, FP: fp, Rest: rest}
}
func (f *MultipleFormalParameterSequence) Span() token.Span             { return f.span }
func (f *MultipleFormalParameterSequence) formalParameterSequenceNode() {}

// ConstFormalParameter is `id : typeDenoter` (no keyword — value parameter).
type ConstFormalParameter struct {
	span token.Span
	Name *Identifier
	Type TypeDenoter
}

func NewConstFormalParameter(span token.Span, name *Identifier, typ TypeDenoter) *ConstFormalParameter {
	return &ConstFormalParameter{span: span, Name: name, Type: typ}
}
func (f *ConstFormalParameter) Span() token.Span     { return f.span }
func (f *ConstFormalParameter) formalParameterNode() {}

// VarFormalParameter is `var id : typeDenoter`.
type VarFormalParameter struct {
	span token.Span
	Name *Identifier
	Type TypeDenoter
}

func NewVarFormalParameter(span token.Span, name *Identifier, typ TypeDenoter) *VarFormalParameter {
	return &VarFormalParameter{span: span, Name: name, Type: typ}
}
func (f *VarFormalParameter) Span() token.Span     { return f.span }
func (f *VarFormalParameter) formalParameterNode() {}

// ProcFormalParameter is `proc id(formalSeq)`.
type ProcFormalParameter struct {
	span    token.Span
	Name    *Identifier
	Formals FormalParameterSequence
}

func NewProcFormalParameter(span token.Span, name *Identifier, formals FormalParameterSequence) *ProcFormalParameter {
	return &ProcFormalParameter{span: span, Name: name, Formals: formals}
}
func (f *ProcFormalParameter) Span() token.Span     { return f.span }
func (f *ProcFormalParameter) formalParameterNode() {}

// FuncFormalParameter is `func id(formalSeq) : typeDenoter`.
type FuncFormalParameter struct {
	span    token.Span
	Name    *Identifier
	Formals FormalParameterSequence
	Type    TypeDenoter
}

func NewFuncFormalParameter(span token.Span, name *Identifier, formals FormalParameterSequence, typ TypeDenoter) *FuncFormalParameter {
	return &FuncFormalParameter{span: span, Name: name, Formals: formals, Type: typ}
}
func (f *FuncFormalParameter) Span() token.Span     { return f.span }
func (f *FuncFormalParameter) formalParameterNode() {}

// EmptyActualParameterSequence is `()`.
type EmptyActualParameterSequence struct{ span token.Span }

func NewEmptyActualParameterSequence(span token.Span) *EmptyActualParameterSequence {
	return &EmptyActualParameterSequence{span: span}
}
func (a *EmptyActualParameterSequence) Span() token.Span             { return a.span }
func (a *EmptyActualParameterSequence) actualParameterSequenceNode() {}

type SingleActualParameterSequence struct {
	span token.Span
	AP   ActualParameter
}

func NewSingleActualParameterSequence(span token.Span, ap ActualParameter) *SingleActualParameterSequence {
	return &SingleActualParameterSequence{span: span, AP: ap}
}
func (a *SingleActualParameterSequence) Span() token.Span             { return a.span }
func (a *SingleActualParameterSequence) actualParameterSequenceNode() {}

type MultipleActualParameterSequence struct {
	span token.Span
	AP   ActualParameter
	Rest ActualParameterSequence
}

func NewMultipleActualParameterSequence(span token.Span, ap ActualParameter, rest ActualParameterSequence) *MultipleActualParameterSequence {
	return &MultipleActualParameterSequence{span: span, AP: ap, Rest: rest}
}
func (a *MultipleActualParameterSequence) Span() token.Span             { return a.span }
func (a *MultipleActualParameterSequence) actualParameterSequenceNode() {}

// ConstActualParameter is a plain expression argument.
type ConstActualParameter struct {
	span token.Span
	Expr Expression
}

func NewConstActualParameter(span token.Span, expr Expression) *ConstActualParameter {
	return &ConstActualParameter{span: span, Expr: expr}
}
func (a *ConstActualParameter) Span() token.Span     { return a.span }
func (a *ConstActualParameter) actualParameterNode() {}

// VarActualParameter is `var vname`.
type VarActualParameter struct {
	span  token.Span
	Vname Vname
}

func NewVarActualParameter(span token.Span, vname Vname) *VarActualParameter {
	return &VarActualParameter{span: span, Vname: vname}
}
func (a *VarActualParameter) Span() token.Span     { return a.span }
func (a *VarActualParameter) actualParameterNode() {}

// ProcActualParameter is `proc ident`, naming a procedure to pass along.
type ProcActualParameter struct {
	span token.Span
	Id   *Identifier
}

func NewProcActualParameter(span token.Span, id *Identifier) *ProcActualParameter {
	return &ProcActualParameter{span: span, Id: id}
}
func (a *ProcActualParameter) Span() token.Span     { return a.span }
func (a *ProcActualParameter) actualParameterNode() {}

// FuncActualParameter is `func ident`, naming a function to pass along.
type FuncActualParameter struct {
	span token.Span
	Id   *Identifier
}

func NewFuncActualParameter(span token.Span, id *Identifier) *FuncActualParameter {
	return &FuncActualParameter{span: span, Id: id}
}
func (a *FuncActualParameter) Span() token.Span     { return a.span }
func (a *FuncActualParameter) actualParameterNode() {}
