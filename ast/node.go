// Package ast is the heterogeneous, sum-typed syntax tree Triangle's parser
// builds and its checker decorates. Each syntactic category (Command,
// Expression, Vname, Declaration, TypeDenoter, ...) is a closed interface —
// sealed to this package by an unexported marker method — implemented by
// one struct per grammar variant, the way spec §9 asks for instead of a
// double-dispatch visitor: a single recursive function per phase matches on
// the concrete type with a type switch.
package ast

import "github.com/willvillegas/triangle-go/token"

// Node is implemented by every AST node; its Span is set exactly once, at
// construction, and never reassigned.
type Node interface {
	Span() token.Span
}

// Command is Program's body and every nested command (spec §3.3).
type Command interface {
	Node
	commandNode()
}

// Expression is any Triangle phrase that evaluates to a value. Type returns
// the node's decoration slot, filled in exactly once by the Checker.
type Expression interface {
	Node
	expressionNode()
	Type() *TypeSlot
}

// Vname is a variable-reference phrase: a name optionally followed by
// subscripts and field selectors. Type returns the node's decoration slot.
type Vname interface {
	Node
	vnameNode()
	Type() *TypeSlot
}

// Declaration introduces a name into scope.
type Declaration interface {
	Node
	declarationNode()
}

// TypeDenoter is a syntactic phrase denoting a type.
type TypeDenoter interface {
	Node
	typeDenoterNode()
}

// FieldTypeDenoter is one record-type field list, Single or Multiple.
type FieldTypeDenoter interface {
	Node
	fieldTypeDenoterNode()
}

// FormalParameterSequence is a Proc/Func's formal parameter list.
type FormalParameterSequence interface {
	Node
	formalParameterSequenceNode()
}

// FormalParameter is one parameter in a FormalParameterSequence.
type FormalParameter interface {
	Node
	formalParameterNode()
}

// ActualParameterSequence is a call site's argument list.
type ActualParameterSequence interface {
	Node
	actualParameterSequenceNode()
}

// ActualParameter is one argument in an ActualParameterSequence.
type ActualParameter interface {
	Node
	actualParameterNode()
}

// ArrayAggregate is an array-literal's element list.
type ArrayAggregate interface {
	Node
	arrayAggregateNode()
}

// RecordAggregate is a record-literal's field list.
type RecordAggregate interface {
	Node
	recordAggregateNode()
}
