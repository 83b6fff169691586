package driver

import (
	"strings"
	"testing"

	"github.com/nihei9/earley/grammar"
	"github.com/nihei9/earley/grammar/symbol"
)

// newTestGrammar makes a grammar from rules looking like `S -> aSb`. Every upper-case letter appearing in the
// rules is declared as a non-terminal and every other character as a terminal.
func newTestGrammar(t *testing.T, start symbol.Symbol, rules ...string) *grammar.Grammar {
	t.Helper()

	b := &grammar.GrammarBuilder{}
	declared := symbol.NewSymbolSet()
	declare := func(sym symbol.Symbol) {
		if !declared.Add(sym) {
			return
		}
		if sym.IsNonTerminal() {
			b.AddNonTerminal(sym)
		} else {
			b.AddTerminal(sym)
		}
	}
	declare(start)
	for _, r := range rules {
		lhs, rhs, ok := strings.Cut(r, " -> ")
		if !ok || len(lhs) != 1 {
			t.Fatalf("malformed test rule: %q", r)
		}
		declare(symbol.Symbol(lhs[0]))
		for i := 0; i < len(rhs); i++ {
			declare(symbol.Symbol(rhs[i]))
		}
		b.AddRule(symbol.Symbol(lhs[0]), rhs)
	}
	b.SetStart(start)

	g, err := b.Build()
	if err != nil {
		t.Fatalf("failed to build a grammar: %v", err)
	}
	return g
}

type testSituationGenerator func(rule string, origin, dot int) Situation

func newTestSituationGenerator(t *testing.T) testSituationGenerator {
	return func(rule string, origin, dot int) Situation {
		t.Helper()

		lhs, rhs, ok := strings.Cut(rule, " -> ")
		if !ok || len(lhs) != 1 {
			t.Fatalf("malformed test rule: %q", rule)
		}
		s, err := NewSituation(grammar.NewRule(symbol.Symbol(lhs[0]), rhs), origin, dot)
		if err != nil {
			t.Fatalf("failed to create a situation: %v", err)
		}
		return s
	}
}
