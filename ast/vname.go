package ast

import "github.com/willvillegas/triangle-go/token"

// SimpleVname is a bare identifier used as a variable reference.
type SimpleVname struct {
	span token.Span
	Name *Identifier
	typ  TypeSlot
}

func NewSimpleVname(span token.Span, name *Identifier) *SimpleVname {
	return &SimpleVname{span: span, Name: name}
}
func (v *SimpleVname) Span() token.Span { return v.span }
func (v *SimpleVname) vnameNode()       {}
func (v *SimpleVname) Type() *TypeSlot  { return &v.typ }

// DotVname is `vname.field`.
type DotVname struct {
	span  token.Span
	Base  Vname
	Field *Identifier
	typ   TypeSlot
}

func NewDotVname(span token.Span, base Vname, field *Identifier) *DotVname {
	return &DotVname{span: span, Base: base, Field: field}
}
func (v *DotVname) Span() token.Span { return v.span }
func (v *DotVname) vnameNode()       {}
func (v *DotVname) Type() *TypeSlot  { return &v.typ }

// SubscriptVname is `vname[expr]`.
type SubscriptVname struct {
	span      token.Span
	Base      Vname
	Subscript Expression
	typ       TypeSlot
}

func NewSubscriptVname(span token.Span, base Vname, subscript Expression) *SubscriptVname {
	return &SubscriptVname{span: span, Base: base, Subscript: subscript}
}
func (v *SubscriptVname) Span() token.Span { return v.span }
func (v *SubscriptVname) vnameNode()       {}
func (v *SubscriptVname) Type() *TypeSlot  { return &v.typ }
