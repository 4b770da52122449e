package fixtures

import (
	"testing"

	"github.com/willvillegas/triangle-go/checker"
	"github.com/willvillegas/triangle-go/diag"
	"github.com/willvillegas/triangle-go/parser"
)

// End-to-end: real source text through Scanner -> Parser -> Checker,
// exercising the full front-end the way the `triangle check` subcommand does.
func runFixture(t *testing.T, name string) *diag.Bag {
	t.Helper()
	src, err := Load(name)
	if err != nil {
		t.Fatalf("failed to load fixture %s: %v", name, err)
	}
	bag := diag.NewBag()
	prog := parser.Parse(src, bag)
	checker.New(bag).Check(prog)
	return bag
}

func TestHelloFixtureChecksClean(t *testing.T) {
	bag := runFixture(t, "hello.t")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics())
	}
}

func TestIncrementFixtureChecksClean(t *testing.T) {
	bag := runFixture(t, "increment.t")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics())
	}
}

func TestFactorialFixtureChecksClean(t *testing.T) {
	bag := runFixture(t, "factorial.t")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics())
	}
}

func TestRecordFixtureChecksClean(t *testing.T) {
	bag := runFixture(t, "record.t")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics())
	}
}

func TestArrayFixtureChecksClean(t *testing.T) {
	bag := runFixture(t, "array.t")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics())
	}
}

func TestBadTypeFixtureReportsExactlyOneTypeError(t *testing.T) {
	bag := runFixture(t, "badtype.t")
	var typeErrs int
	for _, d := range bag.Diagnostics() {
		if d.Kind == diag.TypeError {
			typeErrs++
		}
	}
	if typeErrs != 1 {
		t.Fatalf("expected exactly one TypeError, got %d (%v)", typeErrs, bag.Diagnostics())
	}
}
