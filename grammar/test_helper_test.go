package grammar

import (
	"errors"
	"testing"

	verr "github.com/nihei9/earley/error"
	"github.com/nihei9/earley/grammar/symbol"
)

type testRuleGenerator func(lhs byte, rhs string) Rule

func newTestRuleGenerator(t *testing.T) testRuleGenerator {
	return func(lhs byte, rhs string) Rule {
		t.Helper()

		sym := symbol.Symbol(lhs)
		if !sym.IsNonTerminal() && !sym.IsAugmentedStart() {
			t.Fatalf("the LHS of a rule must be a non-terminal: %c", lhs)
		}
		return NewRule(sym, rhs)
	}
}

func testSpecErrors(t *testing.T, err error, expected []error) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected errors didn't occur")
	}
	var specErrs verr.SpecErrors
	if !errors.As(err, &specErrs) {
		t.Fatalf("an error must be verr.SpecErrors: %T", err)
	}
	if len(specErrs) != len(expected) {
		t.Fatalf("unexpected error count; want: %v, got: %v\n%v", len(expected), len(specErrs), specErrs)
	}
	for i, e := range specErrs {
		if e.Cause != expected[i] {
			t.Fatalf("unexpected error; want: %v, got: %v", expected[i], e.Cause)
		}
	}
}
