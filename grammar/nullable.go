package grammar

import "github.com/nihei9/earley/grammar/symbol"

// genNullableSet returns the non-terminals deriving the empty string.
func genNullableSet(g *Grammar) *symbol.SymbolSet {
	nullable := symbol.NewSymbolSet()
	for {
		more := false
		for _, r := range g.rules.getAllRules() {
			if nullable.Contains(r.lhs) {
				continue
			}
			if isNullableRHS(nullable, r) {
				nullable.Add(r.lhs)
				more = true
			}
		}
		if !more {
			break
		}
	}
	return nullable
}

func isNullableRHS(nullable *symbol.SymbolSet, r Rule) bool {
	for i := 0; i < r.Len(); i++ {
		if !nullable.Contains(r.At(i)) {
			return false
		}
	}
	return true
}

// Nullable returns the non-terminals deriving the empty string in ascending order.
func (g *Grammar) Nullable() []symbol.Symbol {
	return genNullableSet(g).Symbols()
}

// IsNullable reports whether sym derives the empty string.
func (g *Grammar) IsNullable(sym symbol.Symbol) bool {
	return genNullableSet(g).Contains(sym)
}
