package ast

import "github.com/willvillegas/triangle-go/token"

// AnyTypeDenoter is the wildcard type used by polymorphic built-ins ("=",
// "\\="); it matches any TypeDenoter in equivalence checks (spec §4.5.3).
type AnyTypeDenoter struct{ span token.Span }

func NewAnyTypeDenoter(span token.Span) *AnyTypeDenoter { return &AnyTypeDenoter{span: span} }
func (t *AnyTypeDenoter) Span() token.Span                                   { return t.span }
func (t *AnyTypeDenoter) typeDenoterNode()                                                  {}

// ErrorTypeDenoter marks a sub-tree below an already-reported error; it is
// equivalent to every other TypeDenoter so that the Checker never cascades
// a second diagnostic from the same fault (spec §4.5.3, §7).
type ErrorTypeDenoter struct{ span token.Span }

func NewErrorTypeDenoter(span token.Span) *ErrorTypeDenoter { return &ErrorTypeDenoter{span: span} }
func (t *ErrorTypeDenoter) Span() token.Span                                       { return t.span }
func (t *ErrorTypeDenoter) typeDenoterNode()                                                      {}

type BoolTypeDenoter struct{ span token.Span }

func NewBoolTypeDenoter(span token.Span) *BoolTypeDenoter { return &BoolTypeDenoter{span: span} }
func (t *BoolTypeDenoter) Span() token.Span                                     { return t.span }
func (t *BoolTypeDenoter) typeDenoterNode()                                                    {}

type CharTypeDenoter struct{ span token.Span }

func NewCharTypeDenoter(span token.Span) *CharTypeDenoter { return &CharTypeDenoter{span: span} }
func (t *CharTypeDenoter) Span() token.Span                                     { return t.span }
func (t *CharTypeDenoter) typeDenoterNode()                                                    {}

type IntTypeDenoter struct{ span token.Span }

func NewIntTypeDenoter(span token.Span) *IntTypeDenoter { return &IntTypeDenoter{span: span} }
func (t *IntTypeDenoter) Span() token.Span                                   { return t.span }
func (t *IntTypeDenoter) typeDenoterNode()                                                  {}

// ArrayTypeDenoter is `array N of T`.
type ArrayTypeDenoter struct {
	span   token.Span
	Size   *IntegerLiteral
	Member TypeDenoter
}

func NewArrayTypeDenoter(span token.Span, size *IntegerLiteral, member TypeDenoter) *ArrayTypeDenoter {
	return &ArrayTypeDenoter{span: span, Size: size, Member: member}
}
func (t *ArrayTypeDenoter) Span() token.Span { return t.span }
func (t *ArrayTypeDenoter) typeDenoterNode() {}

// RecordTypeDenoter is `record fieldSeq end`.
type RecordTypeDenoter struct {
	span   token.Span
	Fields FieldTypeDenoter
}

func NewRecordTypeDenoter(span token.Span, fields FieldTypeDenoter) *RecordTypeDenoter {
	return &RecordTypeDenoter{span: span, Fields: fields}
}
func (t *RecordTypeDenoter) Span() token.Span { return t.span }
func (t *RecordTypeDenoter) typeDenoterNode() {}

// SimpleTypeDenoter is a yet-to-be-resolved type name; the Checker resolves
// it by looking Name up and, on a hit against a TypeDeclaration, records the
// resolved TypeDenoter in Resolved (spec §3.4 — "identifiers in array/record
// type denoters may resolve to Simple type-denoter references").
type SimpleTypeDenoter struct {
	span     token.Span
	Name     *Identifier
	Resolved TypeDenoter
}

func NewSimpleTypeDenoter(span token.Span, name *Identifier) *SimpleTypeDenoter {
	return &SimpleTypeDenoter{span: span, Name: name}
}
func (t *SimpleTypeDenoter) Span() token.Span { return t.span }
func (t *SimpleTypeDenoter) typeDenoterNode() {}

// SingleFieldTypeDenoter is the last field in a record type's field list.
type SingleFieldTypeDenoter struct {
	span token.Span
	Name *Identifier
	Type TypeDenoter
}

func NewSingleFieldTypeDenoter(span token.Span, name *Identifier, typ TypeDenoter) *SingleFieldTypeDenoter {
	return &SingleFieldTypeDenoter{span: span, Name: name, Type: typ}
}
func (f *SingleFieldTypeDenoter) Span() token.Span      { return f.span }
func (f *SingleFieldTypeDenoter) fieldTypeDenoterNode() {}

// MultipleFieldTypeDenoter is a non-last field, linked to the rest of the list.
type MultipleFieldTypeDenoter struct {
	span token.Span
	Name *Identifier
	Type TypeDenoter
	Rest FieldTypeDenoter
}

func NewMultipleFieldTypeDenoter(span token.Span, name *Identifier, typ TypeDenoter, rest FieldTypeDenoter) *MultipleFieldTypeDenoter {
	return &MultipleFieldTypeDenoter{span: span, Name: name, Type: typ, Rest: rest}
}
func (f *MultipleFieldTypeDenoter) Span() token.Span      { return f.span }
func (f *MultipleFieldTypeDenoter) fieldTypeDenoterNode() {}
