package checker

import (
	"fmt"
	"testing"

	"github.com/willvillegas/triangle-go/ast"
	"github.com/willvillegas/triangle-go/diag"
	"github.com/willvillegas/triangle-go/parser"
	"github.com/willvillegas/triangle-go/token"
)

func sp() token.Span { return token.UnknownSpan }

func ident(name string) *ast.Identifier { return ast.NewIdentifier(sp(), name) }
func opr(name string) *ast.Operator     { return ast.NewOperator(sp(), name) }

func intLit(spelling string) *ast.IntegerExpression {
	return ast.NewIntegerExpression(sp(), ast.NewIntegerLiteral(sp(), spelling))
}

func charLit(spelling string) *ast.CharacterExpression {
	return ast.NewCharacterExpression(sp(), ast.NewCharacterLiteral(sp(), spelling))
}

func run(t *testing.T, prog *ast.Program) *diag.Bag {
	t.Helper()
	bag := diag.NewBag()
	New(bag).Check(prog)
	return bag
}

// Scenario 1: empty program.
func TestEmptyProgram(t *testing.T) {
	prog := ast.NewProgram(ast.NewEmptyCommand(sp()))
	bag := run(t, prog)
	if bag.HasErrors() {
		t.Fatalf("expected no errors, got %v", bag.Diagnostics())
	}
}

// Scenario 2: putint(42).
func TestHelloPutint(t *testing.T) {
	aps := ast.NewSingleActualParameterSequence(sp(), ast.NewConstActualParameter(sp(), intLit("42")))
	cmd := ast.NewCallCommand(sp(), ident("putint"), aps)
	prog := ast.NewProgram(cmd)

	bag := run(t, prog)
	if bag.HasErrors() {
		t.Fatalf("expected no errors, got %v", bag.Diagnostics())
	}
	if cmd.Id.Decl.State() != ast.Resolved {
		t.Fatalf("expected putint to resolve")
	}
}

// Scenario 3: increment with procedure.
//
//	let var x: Integer;
//	    proc inc(var n: Integer) ~ n := n + 1
//	in begin getint(var x); inc(var x); putint(x) end
func TestIncrementWithProcedure(t *testing.T) {
	varX := ast.NewVarDeclaration(sp(), ident("x"), ast.NewSimpleTypeDenoter(sp(), ident("Integer")))

	nFormal := ast.NewVarFormalParameter(sp(), ident("n"), ast.NewSimpleTypeDenoter(sp(), ident("Integer")))
	formals := ast.NewSingleFormalParameterSequence(sp(), nFormal)

	nRef := ast.NewVnameExpression(sp(), ast.NewSimpleVname(sp(), ident("n")))
	incBody := ast.NewAssignCommand(sp(),
		ast.NewSimpleVname(sp(), ident("n")),
		ast.NewBinaryExpression(sp(), nRef, opr("+"), intLit("1")))
	procInc := ast.NewProcDeclaration(sp(), ident("inc"), formals, incBody)

	decl := ast.NewSequentialDeclaration(sp(), varX, procInc)

	getintCall := ast.NewCallCommand(sp(), ident("getint"),
		ast.NewSingleActualParameterSequence(sp(), ast.NewVarActualParameter(sp(), ast.NewSimpleVname(sp(), ident("x")))))
	incCall := ast.NewCallCommand(sp(), ident("inc"),
		ast.NewSingleActualParameterSequence(sp(), ast.NewVarActualParameter(sp(), ast.NewSimpleVname(sp(), ident("x")))))
	putintCall := ast.NewCallCommand(sp(), ident("putint"),
		ast.NewSingleActualParameterSequence(sp(), ast.NewConstActualParameter(sp(), ast.NewVnameExpression(sp(), ast.NewSimpleVname(sp(), ident("x"))))))

	body := ast.NewSequentialCommand(sp(), getintCall, ast.NewSequentialCommand(sp(), incCall, putintCall))
	letCmd := ast.NewLetCommand(sp(), decl, body)
	prog := ast.NewProgram(letCmd)

	bag := run(t, prog)
	if bag.HasErrors() {
		t.Fatalf("expected no errors, got %v", bag.Diagnostics())
	}
}

// Scenario 4: type error — let var x: Integer in x := 'a'.
func TestAssignTypeMismatchReportsTypeError(t *testing.T) {
	varX := ast.NewVarDeclaration(sp(), ident("x"), ast.NewSimpleTypeDenoter(sp(), ident("Integer")))
	assign := ast.NewAssignCommand(sp(), ast.NewSimpleVname(sp(), ident("x")), charLit("a"))
	letCmd := ast.NewLetCommand(sp(), varX, assign)
	prog := ast.NewProgram(letCmd)

	bag := run(t, prog)
	if !bag.HasErrors() {
		t.Fatalf("expected a type error")
	}
	found := false
	for _, d := range bag.Diagnostics() {
		if d.Kind == diag.TypeError {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a TypeError diagnostic, got %v", bag.Diagnostics())
	}
}

// Scenario 5: undeclared identifier — putint(y).
func TestUndeclaredIdentifierReportsIdentificationErrorOnly(t *testing.T) {
	aps := ast.NewSingleActualParameterSequence(sp(), ast.NewConstActualParameter(sp(),
		ast.NewVnameExpression(sp(), ast.NewSimpleVname(sp(), ident("y")))))
	cmd := ast.NewCallCommand(sp(), ident("putint"), aps)
	prog := ast.NewProgram(cmd)

	bag := run(t, prog)
	var idErrs, typeErrs int
	for _, d := range bag.Diagnostics() {
		switch d.Kind {
		case diag.IdentificationError:
			idErrs++
		case diag.TypeError:
			typeErrs++
		}
	}
	if idErrs != 1 {
		t.Fatalf("expected exactly one IdentificationError, got %d (%v)", idErrs, bag.Diagnostics())
	}
	if typeErrs != 0 {
		t.Fatalf("expected no cascaded TypeError, got %d (%v)", typeErrs, bag.Diagnostics())
	}
}

// Scenario 6: records.
//
//	let type Pt ~ record x: Integer, y: Integer end;
//	    var p: Pt
//	in p := {x ~ 1, y ~ 2}
func TestRecordAssignment(t *testing.T) {
	fields := ast.NewMultipleFieldTypeDenoter(sp(), ident("x"), ast.NewSimpleTypeDenoter(sp(), ident("Integer")),
		ast.NewSingleFieldTypeDenoter(sp(), ident("y"), ast.NewSimpleTypeDenoter(sp(), ident("Integer"))))
	typePt := ast.NewTypeDeclaration(sp(), ident("Pt"), ast.NewRecordTypeDenoter(sp(), fields))
	varP := ast.NewVarDeclaration(sp(), ident("p"), ast.NewSimpleTypeDenoter(sp(), ident("Pt")))
	decl := ast.NewSequentialDeclaration(sp(), typePt, varP)

	agg := ast.NewMultipleRecordAggregate(sp(), ident("x"), intLit("1"),
		ast.NewSingleRecordAggregate(sp(), ident("y"), intLit("2")))
	assign := ast.NewAssignCommand(sp(), ast.NewSimpleVname(sp(), ident("p")), ast.NewRecordExpression(sp(), agg))
	letCmd := ast.NewLetCommand(sp(), decl, assign)
	prog := ast.NewProgram(letCmd)

	bag := run(t, prog)
	if bag.HasErrors() {
		t.Fatalf("expected no errors, got %v", bag.Diagnostics())
	}
}

// Scope balance (spec §8.1): after a well-formed check, the table returns
// to its initial level.
func TestScopeBalance(t *testing.T) {
	varX := ast.NewVarDeclaration(sp(), ident("x"), ast.NewSimpleTypeDenoter(sp(), ident("Integer")))
	letCmd := ast.NewLetCommand(sp(), varX, ast.NewEmptyCommand(sp()))
	prog := ast.NewProgram(letCmd)

	bag := diag.NewBag()
	c := New(bag)
	startLevel := c.table.Level()
	c.Check(prog)
	if c.table.Level() != startLevel {
		t.Fatalf("expected table level to return to %d, got %d", startLevel, c.table.Level())
	}
}

// Resolution stability (spec §8.1): checking two independently parsed copies
// of the same source produces structurally identical decorations — the
// Checker is a pure function of AST shape plus the Standard Environment.
// Decoration slots can only be set once, so this parses the source twice
// rather than re-checking a single AST.
func TestResolutionIsStableAcrossIndependentParses(t *testing.T) {
	src := "putint(42)"

	bag1 := diag.NewBag()
	prog1 := parser.Parse(src, bag1)
	New(bag1).Check(prog1)

	bag2 := diag.NewBag()
	prog2 := parser.Parse(src, bag2)
	New(bag2).Check(prog2)

	if bag1.HasErrors() || bag2.HasErrors() {
		t.Fatalf("unexpected errors: %v / %v", bag1.Diagnostics(), bag2.Diagnostics())
	}

	cmd1 := prog1.Cmd.(*ast.CallCommand)
	cmd2 := prog2.Cmd.(*ast.CallCommand)

	if cmd1.Id.Decl.State() != ast.Resolved || cmd2.Id.Decl.State() != ast.Resolved {
		t.Fatalf("expected both occurrences of putint to resolve")
	}
	if fmt.Sprintf("%T", cmd1.Id.Decl.Declaration()) != fmt.Sprintf("%T", cmd2.Id.Decl.Declaration()) {
		t.Fatalf("expected both parses to resolve putint to the same declaration kind")
	}

	ap1 := cmd1.Aps.(*ast.SingleActualParameterSequence).AP.(*ast.ConstActualParameter)
	ap2 := cmd2.Aps.(*ast.SingleActualParameterSequence).AP.(*ast.ConstActualParameter)
	if fmt.Sprintf("%T", ap1.Expr.Type().Type()) != fmt.Sprintf("%T", ap2.Expr.Type().Type()) {
		t.Fatalf("expected both parses to infer the same literal type")
	}
}

// Decoration totality (spec §8.1): on a successful check, every identifier
// has a resolved declaration link and every typed node a non-Error type.
func TestDecorationTotalityOnSuccess(t *testing.T) {
	lit := intLit("42")
	aps := ast.NewSingleActualParameterSequence(sp(), ast.NewConstActualParameter(sp(), lit))
	cmd := ast.NewCallCommand(sp(), ident("putint"), aps)
	prog := ast.NewProgram(cmd)

	bag := run(t, prog)
	if bag.HasErrors() {
		t.Fatalf("expected no errors, got %v", bag.Diagnostics())
	}
	if cmd.Id.Decl.State() != ast.Resolved {
		t.Fatalf("expected putint identifier to be resolved")
	}
	if _, isErr := lit.Type().Type().(*ast.ErrorTypeDenoter); !lit.Type().IsSet() || isErr {
		t.Fatalf("expected the literal argument to carry a non-Error type")
	}
}
