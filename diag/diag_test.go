package diag

import (
	"testing"

	"github.com/willvillegas/triangle-go/token"
)

func TestBagHasErrors(t *testing.T) {
	bag := NewBag()
	if bag.HasErrors() {
		t.Fatalf("fresh bag should report no errors")
	}

	bag.Report(Diagnostic{Kind: LexicalError, Severity: Warning, Message: "cosmetic"})
	if bag.HasErrors() {
		t.Fatalf("a Warning-severity diagnostic must not count as an error")
	}

	Syntax(bag, token.Span{}, "unexpected %s", "token")
	if !bag.HasErrors() {
		t.Fatalf("Syntax() should record an Error-severity diagnostic")
	}
	if len(bag.Diagnostics()) != 2 {
		t.Fatalf("got %d diagnostics, want 2", len(bag.Diagnostics()))
	}
}

func TestDiagnosticErrorFormatting(t *testing.T) {
	d := Diagnostic{
		Kind:    TypeError,
		Message: "expected Integer, found Char",
		Span:    token.Span{Start: token.Position{Line: 3, Column: 7}},
	}
	want := "💥 TypeError:\nline:3, column:7 - expected Integer, found Char"
	if d.Error() != want {
		t.Errorf("Error() = %q, want %q", d.Error(), want)
	}
}

func TestInternalErrorNeverCascadesFormat(t *testing.T) {
	d := Diagnostic{Kind: InternalError, Message: "unreachable state"}
	want := "🤖 InternalError: unreachable state"
	if d.Error() != want {
		t.Errorf("Error() = %q, want %q", d.Error(), want)
	}
}
