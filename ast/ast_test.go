package ast

import (
	"encoding/json"
	"testing"

	"github.com/willvillegas/triangle-go/token"
)

func span(startCol, endCol int) token.Span {
	start := token.Position{Line: 1, Column: startCol}
	finish := token.Position{Line: 1, Column: endCol}
	return token.Span{Start: start, Finish: finish}
}

// AST span containment (spec §8.1): a node's span must contain every
// child's span.
func TestAssignCommandSpanContainsChildren(t *testing.T) {
	vname := NewSimpleVname(span(1, 2), NewIdentifier(span(1, 2), "x"))
	expr := NewIntegerExpression(span(6, 8), NewIntegerLiteral(span(6, 8), "42"))
	cmd := NewAssignCommand(span(1, 8), vname, expr)

	if cmd.Span().Start.Column > vname.Span().Start.Column {
		t.Fatalf("command span should start at or before its vname's span")
	}
	if cmd.Span().Finish.Column < expr.Span().Finish.Column {
		t.Fatalf("command span should end at or after its expr's span")
	}
}

func TestDecorationSlotsAssignedExactlyOnce(t *testing.T) {
	id := NewIdentifier(token.UnknownSpan, "x")
	id.Decl.Resolve(42)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected a second Resolve to panic")
		}
	}()
	id.Decl.Resolve(43)
}

func TestTypeSlotAssignedExactlyOnce(t *testing.T) {
	e := NewIntegerExpression(token.UnknownSpan, NewIntegerLiteral(token.UnknownSpan, "1"))
	e.Type().Set(NewIntTypeDenoter(token.UnknownSpan))

	defer func() {
		if recover() == nil {
			t.Fatalf("expected a second Set to panic")
		}
	}()
	e.Type().Set(NewIntTypeDenoter(token.UnknownSpan))
}

func TestElementCountWalksArrayAggregate(t *testing.T) {
	agg := NewMultipleArrayAggregate(token.UnknownSpan,
		NewIntegerExpression(token.UnknownSpan, NewIntegerLiteral(token.UnknownSpan, "1")),
		NewMultipleArrayAggregate(token.UnknownSpan,
			NewIntegerExpression(token.UnknownSpan, NewIntegerLiteral(token.UnknownSpan, "2")),
			NewSingleArrayAggregate(token.UnknownSpan,
				NewIntegerExpression(token.UnknownSpan, NewIntegerLiteral(token.UnknownSpan, "3")))))

	if got := ElementCount(agg); got != 3 {
		t.Fatalf("expected 3 elements, got %d", got)
	}
}

func TestDumpProducesValidJSON(t *testing.T) {
	cmd := NewCallCommand(token.UnknownSpan, NewIdentifier(token.UnknownSpan, "putint"),
		NewSingleActualParameterSequence(token.UnknownSpan,
			NewConstActualParameter(token.UnknownSpan,
				NewIntegerExpression(token.UnknownSpan, NewIntegerLiteral(token.UnknownSpan, "42")))))
	prog := NewProgram(cmd)

	out, err := Dump(prog)
	if err != nil {
		t.Fatalf("Dump returned an error: %v", err)
	}
	var tree map[string]any
	if err := json.Unmarshal([]byte(out), &tree); err != nil {
		t.Fatalf("Dump output is not valid JSON: %v", err)
	}
	if tree["kind"] != "CallCommand" {
		t.Fatalf("expected root kind CallCommand, got %v", tree["kind"])
	}
}
