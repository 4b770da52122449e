package stdenv

import (
	"testing"

	"github.com/willvillegas/triangle-go/ast"
	"github.com/willvillegas/triangle-go/idtable"
)

func TestAllBuiltinsCovered(t *testing.T) {
	names := []string{
		"Integer", "Char", "Boolean", "false", "true", "maxint",
		"\\", "neg", "/\\", "\\/", "+", "-", "*", "/", "//",
		"<", "<=", ">", ">=", "=", "\\=",
		"get", "put", "geteol", "puteol", "getint", "putint",
		"eol", "eof", "chr", "ord", "succ", "pred", "new", "dispose", "id",
	}
	env := New()
	for _, n := range names {
		if _, ok := env.All[n]; !ok {
			t.Errorf("missing standard declaration for %q", n)
		}
	}
	if len(env.All) != len(names) {
		t.Errorf("expected exactly %d standard declarations, got %d", len(names), len(env.All))
	}
}

func TestPopulateEntersEveryNameAtCurrentLevel(t *testing.T) {
	env := New()
	tbl := idtable.New()
	env.Populate(tbl)

	for name := range env.All {
		if _, ok := tbl.Retrieve(name); !ok {
			t.Errorf("expected %q to be retrievable after Populate", name)
		}
	}
}

func TestEqAndNeAreAnyTyped(t *testing.T) {
	env := New()
	if env.EqDecl.Arg1Type != env.AnyType || env.EqDecl.Arg2Type != env.AnyType {
		t.Fatalf("= should take Any operands so it matches any equal pair")
	}
	if env.NeDecl.Arg1Type != env.AnyType || env.NeDecl.Arg2Type != env.AnyType {
		t.Fatalf("\\= should take Any operands so it matches any equal pair")
	}
}

func TestPutTakesAConstFormalNotVar(t *testing.T) {
	env := New()
	single, ok := env.PutDecl.Formals.(*ast.SingleFormalParameterSequence)
	if !ok {
		t.Fatalf("expected put's formal sequence to be a single parameter")
	}
	if _, ok := single.FP.(*ast.ConstFormalParameter); !ok {
		t.Fatalf("expected put's parameter to be const (by value), got %T", single.FP)
	}
}

func TestGetTakesAVarFormal(t *testing.T) {
	env := New()
	single, ok := env.GetDecl.Formals.(*ast.SingleFormalParameterSequence)
	if !ok {
		t.Fatalf("expected get's formal sequence to be a single parameter")
	}
	if _, ok := single.FP.(*ast.VarFormalParameter); !ok {
		t.Fatalf("expected get's parameter to be var (by reference), got %T", single.FP)
	}
}
