package ast

import "github.com/willvillegas/triangle-go/token"

// EmptyCommand is the command produced when no tokens are consumed because
// the lookahead is already a follow token (spec §4.2).
type EmptyCommand struct{ span token.Span }

func NewEmptyCommand(span token.Span) *EmptyCommand { return &EmptyCommand{span: span} }
func (c *EmptyCommand) Span() token.Span                               { return c.span }
func (c *EmptyCommand) commandNode()                                                  {}

// AssignCommand is `vname := expr`.
type AssignCommand struct {
	span  token.Span
	Vname Vname
	Expr  Expression
}

func NewAssignCommand(span token.Span, vname Vname, expr Expression) *AssignCommand {
	return &AssignCommand{span: span, Vname: vname, Expr: expr}
}
func (c *AssignCommand) Span() token.Span { return c.span }
func (c *AssignCommand) commandNode()     {}

// CallCommand is `ident(actualSeq)` used as a command.
type CallCommand struct {
	span token.Span
	Id   *Identifier
	Aps  ActualParameterSequence
}

func NewCallCommand(span token.Span, id *Identifier, aps ActualParameterSequence) *CallCommand {
	return &CallCommand{span: span, Id: id, Aps: aps}
}
func (c *CallCommand) Span() token.Span { return c.span }
func (c *CallCommand) commandNode()     {}

// SequentialCommand is `c1 ; c2`.
type SequentialCommand struct {
	span   token.Span
	First  Command
	Second Command
}

func NewSequentialCommand(span token.Span, first, second Command) *SequentialCommand {
	return &SequentialCommand{span: span, First: first, Second: second}
}
func (c *SequentialCommand) Span() token.Span { return c.span }
func (c *SequentialCommand) commandNode()     {}

// LetCommand is `let decl in command`.
type LetCommand struct {
	span token.Span
	Decl Declaration
	Cmd  Command
}

func NewLetCommand(span token.Span, decl Declaration, cmd Command) *LetCommand {
	return &LetCommand{span: span, Decl: decl, Cmd: cmd}
}
func (c *LetCommand) Span() token.Span { return c.span }
func (c *LetCommand) commandNode()     {}

// IfCommand is `if expr then c1 else c2`.
type IfCommand struct {
	span token.Span
	Expr Expression
	Then Command
	Else Command
}

func NewIfCommand(span token.Span, expr Expression, then, els Command) *IfCommand {
	return &IfCommand{span: span, Expr: expr, Then: then, Else: els}
}
func (c *IfCommand) Span() token.Span { return c.span }
func (c *IfCommand) commandNode()     {}

// WhileCommand is `while expr do command`.
type WhileCommand struct {
	span token.Span
	Expr Expression
	Cmd  Command
}

func NewWhileCommand(span token.Span, expr Expression, cmd Command) *WhileCommand {
	return &WhileCommand{span: span, Expr: expr, Cmd: cmd}
}
func (c *WhileCommand) Span() token.Span { return c.span }
func (c *WhileCommand) commandNode()     {}
