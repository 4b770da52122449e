package ast

import "github.com/willvillegas/triangle-go/token"

// SingleArrayAggregate is the last (or only) element in an array literal.
type SingleArrayAggregate struct {
	span token.Span
	Expr Expression
}

func NewSingleArrayAggregate(span token.Span, expr Expression) *SingleArrayAggregate {
	return &SingleArrayAggregate{span: span, Expr: expr}
}
func (a *SingleArrayAggregate) Span() token.Span    { return a.span }
func (a *SingleArrayAggregate) arrayAggregateNode() {}

// MultipleArrayAggregate is a non-last element, linked to the rest.
type MultipleArrayAggregate struct {
	span token.Span
	Expr Expression
	Rest ArrayAggregate
}

func NewMultipleArrayAggregate(span token.Span, expr Expression, rest ArrayAggregate) *MultipleArrayAggregate {
	return &MultipleArrayAggregate{span: span, Expr: expr, Rest: rest}
}
func (a *MultipleArrayAggregate) Span() token.Span    { return a.span }
func (a *MultipleArrayAggregate) arrayAggregateNode() {}

// ElementCount walks an ArrayAggregate and counts its elements — the
// decoration the Checker attaches to the enclosing ArrayExpression (spec
// §3.4).
func ElementCount(agg ArrayAggregate) int {
	switch a := agg.(type) {
	case *SingleArrayAggregate:
		return 1
	case *MultipleArrayAggregate:
		return 1 + ElementCount(a.Rest)
	default:
		return 0
	}
}

// SingleRecordAggregate is the last (or only) field in a record literal.
type SingleRecordAggregate struct {
	span token.Span
	Name *Identifier
	Expr Expression
}

func NewSingleRecordAggregate(span token.Span, name *Identifier, expr Expression) *SingleRecordAggregate {
	return &SingleRecordAggregate{span: span, Name: name, Expr: expr}
}
func (a *SingleRecordAggregate) Span() token.Span     { return a.span }
func (a *SingleRecordAggregate) recordAggregateNode() {}

// MultipleRecordAggregate is a non-last field, linked to the rest.
type MultipleRecordAggregate struct {
	span token.Span
	Name *Identifier
	Expr Expression
	Rest RecordAggregate
}

func NewMultipleRecordAggregate(span token.Span, name *Identifier, expr Expression, rest RecordAggregate) *MultipleRecordAggregate {
	return &MultipleRecordAggregate{span: span, Name: name, Expr: expr, Rest: rest}
}
func (a *MultipleRecordAggregate) Span() token.Span     { return a.span }
func (a *MultipleRecordAggregate) recordAggregateNode() {}
