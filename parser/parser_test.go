package parser

import (
	"testing"
	"time"

	"github.com/willvillegas/triangle-go/ast"
	"github.com/willvillegas/triangle-go/diag"
)

func parse(t *testing.T, text string) (*ast.Program, *diag.Bag) {
	t.Helper()
	bag := diag.NewBag()
	prog := Parse(text, bag)
	return prog, bag
}

// Scenario 1 (spec §8.2): empty program.
func TestEmptyProgramParsesToEmptyCommand(t *testing.T) {
	prog, bag := parse(t, "")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics())
	}
	if _, ok := prog.Cmd.(*ast.EmptyCommand); !ok {
		t.Fatalf("expected EmptyCommand, got %T", prog.Cmd)
	}
}

// Scenario 2 (spec §8.2): putint(42).
func TestHelloParsesToCallCommand(t *testing.T) {
	prog, bag := parse(t, "putint(42)")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics())
	}
	call, ok := prog.Cmd.(*ast.CallCommand)
	if !ok {
		t.Fatalf("expected CallCommand, got %T", prog.Cmd)
	}
	if call.Id.Spelling != "putint" {
		t.Fatalf("expected callee putint, got %s", call.Id.Spelling)
	}
	single, ok := call.Aps.(*ast.SingleActualParameterSequence)
	if !ok {
		t.Fatalf("expected a single actual parameter, got %T", call.Aps)
	}
	constAP, ok := single.AP.(*ast.ConstActualParameter)
	if !ok {
		t.Fatalf("expected a const actual, got %T", single.AP)
	}
	intExpr, ok := constAP.Expr.(*ast.IntegerExpression)
	if !ok {
		t.Fatalf("expected an integer literal, got %T", constAP.Expr)
	}
	if intExpr.Literal.Spelling != "42" {
		t.Fatalf("expected spelling 42, got %s", intExpr.Literal.Spelling)
	}
}

// Scenario 3 (spec §8.2): increment with procedure, checked structurally.
func TestIncrementWithProcedureParses(t *testing.T) {
	src := `
		let var x: Integer;
		    proc inc(var n: Integer) ~ n := n + 1
		in begin getint(var x); inc(var x); putint(x) end
	`
	prog, bag := parse(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics())
	}
	letCmd, ok := prog.Cmd.(*ast.LetCommand)
	if !ok {
		t.Fatalf("expected LetCommand, got %T", prog.Cmd)
	}
	seqDecl, ok := letCmd.Decl.(*ast.SequentialDeclaration)
	if !ok {
		t.Fatalf("expected SequentialDeclaration, got %T", letCmd.Decl)
	}
	if _, ok := seqDecl.First.(*ast.VarDeclaration); !ok {
		t.Fatalf("expected first declaration to be VarDeclaration, got %T", seqDecl.First)
	}
	proc, ok := seqDecl.Second.(*ast.ProcDeclaration)
	if !ok {
		t.Fatalf("expected second declaration to be ProcDeclaration, got %T", seqDecl.Second)
	}
	if proc.Name.Spelling != "inc" {
		t.Fatalf("expected proc name inc, got %s", proc.Name.Spelling)
	}
	if _, ok := proc.Cmd.(*ast.AssignCommand); !ok {
		t.Fatalf("expected proc body to be an AssignCommand, got %T", proc.Cmd)
	}
}

// Scenario 4 (spec §8.2): syntactically valid, checker rejects it — the
// parser itself must accept the source cleanly.
func TestAssignWithTypeMismatchStillParses(t *testing.T) {
	_, bag := parse(t, "let var x: Integer in x := 'a'")
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", bag.Diagnostics())
	}
}

// Scenario 6 (spec §8.2): records.
func TestRecordDeclarationAndAggregateParse(t *testing.T) {
	src := `
		let type Pt ~ record x: Integer, y: Integer end;
		    var p: Pt
		in p := {x ~ 1, y ~ 2}
	`
	prog, bag := parse(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics())
	}
	letCmd := prog.Cmd.(*ast.LetCommand)
	assign, ok := letCmd.Cmd.(*ast.AssignCommand)
	if !ok {
		t.Fatalf("expected AssignCommand, got %T", letCmd.Cmd)
	}
	recExpr, ok := assign.Expr.(*ast.RecordExpression)
	if !ok {
		t.Fatalf("expected RecordExpression, got %T", assign.Expr)
	}
	multi, ok := recExpr.Agg.(*ast.MultipleRecordAggregate)
	if !ok {
		t.Fatalf("expected MultipleRecordAggregate, got %T", recExpr.Agg)
	}
	if multi.Name.Spelling != "x" {
		t.Fatalf("expected first field x, got %s", multi.Name.Spelling)
	}
}

// Left-associativity (spec §8.3): `a + b + c` parses as Binary(Binary(a,b),c).
func TestBinaryExpressionsAreLeftAssociative(t *testing.T) {
	prog, bag := parse(t, "x := a + b + c")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics())
	}
	assign := prog.Cmd.(*ast.AssignCommand)
	outer, ok := assign.Expr.(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("expected BinaryExpression, got %T", assign.Expr)
	}
	inner, ok := outer.Left.(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("expected left-nested BinaryExpression, got %T", outer.Left)
	}
	leftName := inner.Left.(*ast.VnameExpression).Vname.(*ast.SimpleVname).Name.Spelling
	midName := inner.Right.(*ast.VnameExpression).Vname.(*ast.SimpleVname).Name.Spelling
	rightName := outer.Right.(*ast.VnameExpression).Vname.(*ast.SimpleVname).Name.Spelling
	if leftName != "a" || midName != "b" || rightName != "c" {
		t.Fatalf("expected ((a+b)+c) shape, got (%s ? %s) ? %s", leftName, midName, rightName)
	}
}

// All Triangle binary operators sit at one precedence level (spec §4.2): mixing
// spellings still folds left, uniformly.
func TestMixedOperatorsStillFoldLeft(t *testing.T) {
	prog, bag := parse(t, "x := a * b + c")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics())
	}
	assign := prog.Cmd.(*ast.AssignCommand)
	outer := assign.Expr.(*ast.BinaryExpression)
	if outer.Op.Spelling != "+" {
		t.Fatalf("expected outermost operator +, got %s", outer.Op.Spelling)
	}
	inner, ok := outer.Left.(*ast.BinaryExpression)
	if !ok || inner.Op.Spelling != "*" {
		t.Fatalf("expected (a*b) nested on the left, got %T", outer.Left)
	}
}

// Dangling else (spec §8.3): every if requires its own else in this grammar,
// so two nested ifs need two elses; the first must bind to the inner if, not
// the outer one.
func TestDanglingElseBindsToNearestIf(t *testing.T) {
	src := "if a then if b then c1 := 1 else c2 := 2 else c3 := 3"
	prog, bag := parse(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics())
	}
	outer, ok := prog.Cmd.(*ast.IfCommand)
	if !ok {
		t.Fatalf("expected outer IfCommand, got %T", prog.Cmd)
	}
	inner, ok := outer.Then.(*ast.IfCommand)
	if !ok {
		t.Fatalf("expected inner IfCommand nested in Then, got %T", outer.Then)
	}
	if _, ok := inner.Else.(*ast.AssignCommand); !ok {
		t.Fatalf("expected the first else to attach to the inner if, got %T", inner.Else)
	}
	if _, ok := outer.Else.(*ast.AssignCommand); !ok {
		t.Fatalf("expected the second else to attach to the outer if, got %T", outer.Else)
	}
}

// A leading operator parses as a UnaryExpression over the primary after it.
func TestUnaryOperatorBeforePrimary(t *testing.T) {
	prog, bag := parse(t, "x := \\ a")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics())
	}
	assign := prog.Cmd.(*ast.AssignCommand)
	un, ok := assign.Expr.(*ast.UnaryExpression)
	if !ok {
		t.Fatalf("expected UnaryExpression, got %T", assign.Expr)
	}
	if un.Op.Spelling != "\\" {
		t.Fatalf("expected unary operator \\, got %s", un.Op.Spelling)
	}
}

// Vname dot/subscript chains nest the base on the left.
func TestVnameChainsDotsAndSubscripts(t *testing.T) {
	prog, bag := parse(t, "x.y[1].z := 0")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics())
	}
	assign := prog.Cmd.(*ast.AssignCommand)
	dot, ok := assign.Vname.(*ast.DotVname)
	if !ok {
		t.Fatalf("expected outer DotVname, got %T", assign.Vname)
	}
	if dot.Field.Spelling != "z" {
		t.Fatalf("expected outer field z, got %s", dot.Field.Spelling)
	}
	sub, ok := dot.Base.(*ast.SubscriptVname)
	if !ok {
		t.Fatalf("expected SubscriptVname beneath it, got %T", dot.Base)
	}
	if _, ok := sub.Base.(*ast.DotVname); !ok {
		t.Fatalf("expected a DotVname as the subscript's base, got %T", sub.Base)
	}
}

// Array type denoters and aggregates.
func TestArrayTypeAndAggregateParse(t *testing.T) {
	src := "let var a: array 3 of Integer in a := [1, 2, 3]"
	prog, bag := parse(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics())
	}
	letCmd := prog.Cmd.(*ast.LetCommand)
	varDecl := letCmd.Decl.(*ast.VarDeclaration)
	arrType, ok := varDecl.Type.(*ast.ArrayTypeDenoter)
	if !ok {
		t.Fatalf("expected ArrayTypeDenoter, got %T", varDecl.Type)
	}
	if arrType.Size.Spelling != "3" {
		t.Fatalf("expected array size 3, got %s", arrType.Size.Spelling)
	}
	assign := letCmd.Cmd.(*ast.AssignCommand)
	arrExpr, ok := assign.Expr.(*ast.ArrayExpression)
	if !ok {
		t.Fatalf("expected ArrayExpression, got %T", assign.Expr)
	}
	if ast.ElementCount(arrExpr.Agg) != 3 {
		t.Fatalf("expected 3 elements, got %d", ast.ElementCount(arrExpr.Agg))
	}
}

// Function declarations with a const (keyword-less) formal parameter.
func TestFunctionDeclarationWithConstFormal(t *testing.T) {
	src := `
		let func addOne(n: Integer): Integer ~ n + 1
		in putint(addOne(41))
	`
	prog, bag := parse(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics())
	}
	letCmd := prog.Cmd.(*ast.LetCommand)
	fn, ok := letCmd.Decl.(*ast.FuncDeclaration)
	if !ok {
		t.Fatalf("expected FuncDeclaration, got %T", letCmd.Decl)
	}
	if fn.Name.Spelling != "addOne" {
		t.Fatalf("expected func name addOne, got %s", fn.Name.Spelling)
	}
	formals, ok := fn.Formals.(*ast.SingleFormalParameterSequence)
	if !ok {
		t.Fatalf("expected a single formal, got %T", fn.Formals)
	}
	if _, ok := formals.FP.(*ast.ConstFormalParameter); !ok {
		t.Fatalf("expected a const formal parameter, got %T", formals.FP)
	}
}

// Panic-mode recovery: a malformed declaration must not hang the parser, and
// parsing must still terminate at EndOfText. A deadline guards against a
// recovery bug turning this into an infinite loop rather than a failure.
func TestMalformedInputRecoversAndTerminates(t *testing.T) {
	result := make(chan *diag.Bag, 1)
	go func() {
		bag := diag.NewBag()
		Parse("let ; var x Integer in x := 1", bag)
		result <- bag
	}()
	select {
	case bag := <-result:
		if !bag.HasErrors() {
			t.Fatalf("expected at least one SyntaxError")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("parser did not terminate on malformed input")
	}
}
