// Package tam models the Triangle Abstract Machine's instruction format —
// the hand-off point between this front-end and a code generator/VM, which
// are outside this repository's scope. It exists so SPEC_FULL's Encoder
// collaborator interface (§6.3) has a concrete type to receive, adapted
// from the teacher's bytecode encoding.
package tam

import (
	"fmt"
	"strings"
)

// Opcode is one TAM instruction class. TAM's real instruction set has 16
// opcodes (LOAD, LOADA, LOADI, LOADL, STORE, STOREI, CALL, CALLI, RETURN,
// PUSH, POP, JUMP, JUMPI, JUMPIF, HALT, ...); this subset covers what a
// straight-line, non-optimizing encoder needs for Triangle's command and
// expression forms.
type Opcode byte

const (
	LOAD Opcode = iota
	LOADL
	STORE
	CALL
	RETURN
	PUSH
	POP
	JUMP
	JUMPIF
	HALT
)

// Definition describes one opcode's operand shape: how many bytes each of
// its operands occupies, in encoding order.
type Definition struct {
	Name          string
	OperandWidths []int
}

var definitions = map[Opcode]*Definition{
	LOAD:   {Name: "LOAD", OperandWidths: []int{1, 2}},   // register, displacement
	LOADL:  {Name: "LOADL", OperandWidths: []int{2}},     // constant pool index
	STORE:  {Name: "STORE", OperandWidths: []int{1, 2}},  // register, displacement
	CALL:   {Name: "CALL", OperandWidths: []int{2}},      // routine address
	RETURN: {Name: "RETURN", OperandWidths: []int{2, 1}}, // result size, arg size
	PUSH:   {Name: "PUSH", OperandWidths: []int{2}},      // word count
	POP:    {Name: "POP", OperandWidths: []int{2}},       // word count
	JUMP:   {Name: "JUMP", OperandWidths: []int{2}},      // address
	JUMPIF: {Name: "JUMPIF", OperandWidths: []int{1, 2}}, // test value, address
	HALT:   {Name: "HALT", OperandWidths: []int{}},
}

// Lookup returns op's Definition, or an error if op is not a known opcode.
func Lookup(op Opcode) (*Definition, error) {
	def, ok := definitions[op]
	if !ok {
		return nil, fmt.Errorf("tam: opcode %d undefined", op)
	}
	return def, nil
}

// Instructions is a flat byte stream: consecutive [opcode, operand...]
// groups, each shaped by its opcode's Definition.
type Instructions []byte

// Bytecode is the unit an Encoder produces and a VM consumes: the
// instruction stream plus the pool of literal constants it indexes into.
type Bytecode struct {
	Instructions  Instructions
	ConstantsPool []any
}

// String renders the instruction stream as hex bytes and the constants
// pool, for --emit's plain-text output. It is a dump, not a disassembler:
// this package encodes instructions, it does not decode them.
func (bc *Bytecode) String() string {
	var hex strings.Builder
	for i, b := range bc.Instructions {
		if i > 0 {
			hex.WriteByte(' ')
		}
		fmt.Fprintf(&hex, "%02x", b)
	}
	return fmt.Sprintf("instructions: [%s]\nconstants: %v", hex.String(), bc.ConstantsPool)
}

// MakeInstruction encodes one instruction (opcode followed by its operands,
// each big-endian in its defined width) and returns its bytes as a new slice;
// an undefined opcode yields nil.
// An operand wider than its definition's width is truncated, matching a
// straight-line encoder that trusts its own opcode table.
func MakeInstruction(op Opcode, operands ...int) []byte {
	def, err := Lookup(op)
	if err != nil {
		return nil
	}

	length := 1
	for _, w := range def.OperandWidths {
		length += w
	}
	instr := make([]byte, length)
	instr[0] = byte(op)

	offset := 1
	for i, width := range def.OperandWidths {
		if i >= len(operands) {
			break
		}
		putBigEndian(instr[offset:offset+width], operands[i], width)
		offset += width
	}
	return instr
}

func putBigEndian(dst []byte, v int, width int) {
	for i := width - 1; i >= 0; i-- {
		dst[i] = byte(v & 0xff)
		v >>= 8
	}
}
