package ast

import "github.com/willvillegas/triangle-go/token"

// Identifier is a name occurrence: either the defining occurrence inside a
// Declaration, or an applied occurrence elsewhere. Applied occurrences carry
// a DeclSlot the Checker resolves exactly once.
type Identifier struct {
	span     token.Span
	Spelling string
	Decl     DeclSlot
}

func NewIdentifier(span token.Span, spelling string) *Identifier {
	return &Identifier{span: span, Spelling: spelling}
}

func (i *Identifier) Span() token.Span { return i.span }

// Operator is an operator occurrence (e.g. "+", "\\="); like Identifier it
// carries a DeclSlot the Checker resolves to a UnaryOperatorDeclaration or
// BinaryOperatorDeclaration.
type Operator struct {
	span     token.Span
	Spelling string
	Decl     DeclSlot
}

func NewOperator(span token.Span, spelling string) *Operator {
	return &Operator{span: span, Spelling: spelling}
}

func (o *Operator) Span() token.Span { return o.span }

// IntegerLiteral is the spelling of a scanned integer literal.
type IntegerLiteral struct {
	span     token.Span
	Spelling string
}

func NewIntegerLiteral(span token.Span, spelling string) *IntegerLiteral {
	return &IntegerLiteral{span: span, Spelling: spelling}
}

func (l *IntegerLiteral) Span() token.Span { return l.span }

// CharacterLiteral is the spelling (a single source character) of a scanned
// character literal.
type CharacterLiteral struct {
	span     token.Span
	Spelling string
}

func NewCharacterLiteral(span token.Span, spelling string) *CharacterLiteral {
	return &CharacterLiteral{span: span, Spelling: spelling}
}

func (l *CharacterLiteral) Span() token.Span { return l.span }
