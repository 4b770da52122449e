package ast

import "github.com/willvillegas/triangle-go/token"

// Program is the root of every parse: a single command, run with the
// Standard Environment already in scope (spec §3.1).
type Program struct {
	Cmd Command
}

func NewProgram(cmd Command) *Program { return &Program{Cmd: cmd} }
func (p *Program) Span() token.Span   { return p.Cmd.Span() }
