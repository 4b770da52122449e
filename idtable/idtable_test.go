package idtable

import (
	"testing"

	"github.com/willvillegas/triangle-go/ast"
	"github.com/willvillegas/triangle-go/token"
)

func decl(name string) *ast.ConstDeclaration {
	id := ast.NewIdentifier(token.UnknownSpan, name)
	return ast.NewConstDeclaration(token.UnknownSpan, id, nil)
}

func TestRetrieveMissingNameNotFound(t *testing.T) {
	tbl := New()
	if _, ok := tbl.Retrieve("x"); ok {
		t.Fatalf("expected not found")
	}
}

func TestEnterThenRetrieveSameLevel(t *testing.T) {
	tbl := New()
	d := decl("x")
	tbl.Enter("x", d)
	got, ok := tbl.Retrieve("x")
	if !ok || got != d {
		t.Fatalf("expected to retrieve the entered declaration")
	}
}

func TestCloseScopeDiscardsInnerEntries(t *testing.T) {
	tbl := New()
	outer := decl("x")
	tbl.Enter("x", outer)

	tbl.OpenScope()
	inner := decl("x")
	tbl.Enter("x", inner)
	got, _ := tbl.Retrieve("x")
	if got != inner {
		t.Fatalf("inner declaration should shadow outer")
	}
	tbl.CloseScope()

	got, ok := tbl.Retrieve("x")
	if !ok || got != outer {
		t.Fatalf("expected outer declaration to resurface after CloseScope, got %v ok=%v", got, ok)
	}
}

func TestDuplicateEntryAtSameLevelIsUnresolvable(t *testing.T) {
	tbl := New()
	first := decl("x")
	second := decl("x")
	tbl.Enter("x", first)
	tbl.Enter("x", second)

	if _, ok := tbl.Retrieve("x"); ok {
		t.Fatalf("expected duplicate entry to make the name unresolvable")
	}
}

func TestDuplicateAtInnerLevelDoesNotAffectOuter(t *testing.T) {
	tbl := New()
	outer := decl("x")
	tbl.Enter("x", outer)

	tbl.OpenScope()
	tbl.Enter("x", decl("x"))
	tbl.Enter("x", decl("x"))
	if _, ok := tbl.Retrieve("x"); ok {
		t.Fatalf("expected duplicate at inner level to be unresolvable")
	}
	tbl.CloseScope()

	got, ok := tbl.Retrieve("x")
	if !ok || got != outer {
		t.Fatalf("expected outer entry untouched by inner duplicate, got %v ok=%v", got, ok)
	}
}

func TestScopesBalance(t *testing.T) {
	tbl := New()
	if tbl.Level() != 0 {
		t.Fatalf("expected level 0 initially")
	}
	tbl.OpenScope()
	tbl.OpenScope()
	tbl.CloseScope()
	tbl.CloseScope()
	if tbl.Level() != 0 {
		t.Fatalf("expected level to return to 0 after balanced open/close, got %d", tbl.Level())
	}
}
