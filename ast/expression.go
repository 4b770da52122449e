package ast

import "github.com/willvillegas/triangle-go/token"

// IntegerExpression wraps an IntegerLiteral as an Expression.
type IntegerExpression struct {
	span    token.Span
	Literal *IntegerLiteral
	typ     TypeSlot
}

func NewIntegerExpression(span token.Span, lit *IntegerLiteral) *IntegerExpression {
	return &IntegerExpression{span: span, Literal: lit}
}
func (e *IntegerExpression) Span() token.Span { return e.span }
func (e *IntegerExpression) expressionNode()  {}
func (e *IntegerExpression) Type() *TypeSlot  { return &e.typ }

// CharacterExpression wraps a CharacterLiteral as an Expression.
type CharacterExpression struct {
	span    token.Span
	Literal *CharacterLiteral
	typ     TypeSlot
}

func NewCharacterExpression(span token.Span, lit *CharacterLiteral) *CharacterExpression {
	return &CharacterExpression{span: span, Literal: lit}
}
func (e *CharacterExpression) Span() token.Span { return e.span }
func (e *CharacterExpression) expressionNode()  {}
func (e *CharacterExpression) Type() *TypeSlot  { return &e.typ }

// VnameExpression is a Vname used in expression position.
type VnameExpression struct {
	span  token.Span
	Vname Vname
	typ   TypeSlot
}

func NewVnameExpression(span token.Span, vname Vname) *VnameExpression {
	return &VnameExpression{span: span, Vname: vname}
}
func (e *VnameExpression) Span() token.Span { return e.span }
func (e *VnameExpression) expressionNode()  {}
func (e *VnameExpression) Type() *TypeSlot  { return &e.typ }

// CallExpression is `ident(actualSeq)` used in expression position.
type CallExpression struct {
	span token.Span
	Id   *Identifier
	Aps  ActualParameterSequence
	typ  TypeSlot
}

func NewCallExpression(span token.Span, id *Identifier, aps ActualParameterSequence) *CallExpression {
	return &CallExpression{span: span, Id: id, Aps: aps}
}
func (e *CallExpression) Span() token.Span { return e.span }
func (e *CallExpression) expressionNode()  {}
func (e *CallExpression) Type() *TypeSlot  { return &e.typ }

// IfExpression is `if e1 then e2 else e3`.
type IfExpression struct {
	span             token.Span
	Cond, Then, Else Expression
	typ              TypeSlot
}

func NewIfExpression(span token.Span, cond, then, els Expression) *IfExpression {
	return &IfExpression{span: span, Cond: cond, Then: then, Else: els}
}
func (e *IfExpression) Span() token.Span { return e.span }
func (e *IfExpression) expressionNode()  {}
func (e *IfExpression) Type() *TypeSlot  { return &e.typ }

// LetExpression is `let decl in expr`.
type LetExpression struct {
	span token.Span
	Decl Declaration
	Expr Expression
	typ  TypeSlot
}

func NewLetExpression(span token.Span, decl Declaration, expr Expression) *LetExpression {
	return &LetExpression{span: span, Decl: decl, Expr: expr}
}
func (e *LetExpression) Span() token.Span { return e.span }
func (e *LetExpression) expressionNode()  {}
func (e *LetExpression) Type() *TypeSlot  { return &e.typ }

// UnaryExpression is `op expr`.
type UnaryExpression struct {
	span  token.Span
	Op    *Operator
	Expr  Expression
	typ   TypeSlot
}

func NewUnaryExpression(span token.Span, op *Operator, expr Expression) *UnaryExpression {
	return &UnaryExpression{span: span, Op: op, Expr: expr}
}
func (e *UnaryExpression) Span() token.Span { return e.span }
func (e *UnaryExpression) expressionNode()  {}
func (e *UnaryExpression) Type() *TypeSlot  { return &e.typ }

// BinaryExpression is `e1 op e2`.
type BinaryExpression struct {
	span        token.Span
	Left, Right Expression
	Op          *Operator
	typ         TypeSlot
}

func NewBinaryExpression(span token.Span, left Expression, op *Operator, right Expression) *BinaryExpression {
	return &BinaryExpression{span: span, Left: left, Op: op, Right: right}
}
func (e *BinaryExpression) Span() token.Span { return e.span }
func (e *BinaryExpression) expressionNode()  {}
func (e *BinaryExpression) Type() *TypeSlot  { return &e.typ }

// ArrayExpression is `[arrayAgg]`.
type ArrayExpression struct {
	span token.Span
	Agg  ArrayAggregate
	typ  TypeSlot
}

func NewArrayExpression(span token.Span, agg ArrayAggregate) *ArrayExpression {
	return &ArrayExpression{span: span, Agg: agg}
}
func (e *ArrayExpression) Span() token.Span { return e.span }
func (e *ArrayExpression) expressionNode()  {}
func (e *ArrayExpression) Type() *TypeSlot  { return &e.typ }

// RecordExpression is `{recordAgg}`.
type RecordExpression struct {
	span token.Span
	Agg  RecordAggregate
	typ  TypeSlot
}

func NewRecordExpression(span token.Span, agg RecordAggregate) *RecordExpression {
	return &RecordExpression{span: span, Agg: agg}
}
func (e *RecordExpression) Span() token.Span { return e.span }
func (e *RecordExpression) expressionNode()  {}
func (e *RecordExpression) Type() *TypeSlot  { return &e.typ }
