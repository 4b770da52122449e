package tam

import (
	"fmt"

	"github.com/willvillegas/triangle-go/ast"
	"github.com/willvillegas/triangle-go/stdenv"
)

// Encoder receives a fully decorated Program and the Standard Environment
// it was checked against, and produces Bytecode for a TAM-compatible VM.
// This repository's scope ends at the contextual analyzer (spec §1); code
// generation is the next compiler stage and lives outside it. Encoder is
// the seam a real implementation plugs into.
type Encoder interface {
	Encode(prog *ast.Program, env *stdenv.Environment) (*Bytecode, error)
}

// StubEncoder satisfies Encoder without generating real TAM code. Before
// emitting anything it walks prog to confirm every node's decoration slot
// is set — exercising the Decoration Totality property the Checker is
// supposed to guarantee (spec §8.1) — then emits a single HALT instruction
// regardless of input, so callers that only want to exercise "checked
// program -> some bytecode" wiring (the `triangle check --emit` path) have
// something to hand a VM without depending on an unimplemented code
// generator.
type StubEncoder struct{}

func (StubEncoder) Encode(prog *ast.Program, env *stdenv.Environment) (*Bytecode, error) {
	if err := ast.CheckDecorationTotality(prog); err != nil {
		return nil, fmt.Errorf("tam: refusing to encode: %w", err)
	}
	return &Bytecode{
		Instructions:  Instructions(MakeInstruction(HALT)),
		ConstantsPool: nil,
	}, nil
}
