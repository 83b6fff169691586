package driver

import (
	"fmt"
	"strings"

	"github.com/nihei9/earley/grammar"
	"github.com/nihei9/earley/grammar/symbol"
)

// Situation is an Earley item: a rule, the layer where the rule instance began, and how many symbols of the
// RHS are already matched.
//
// S → aSb
//
// Dot | Next Symbol | Situation
// ----+-------------+------------
// 0   | a           | S →・a S b
// 1   | S           | S → a・S b
// 2   | b           | S → a S・b
// 3   | Nil         | S → a S b・
//
// Situation is a comparable value. Advancing a situation makes a new one.
type Situation struct {
	rule   grammar.Rule
	origin int
	dot    int
}

func NewSituation(rule grammar.Rule, origin, dot int) (Situation, error) {
	if origin < 0 {
		return Situation{}, fmt.Errorf("origin must be greater than or equal to 0; origin: %v", origin)
	}
	if dot < 0 || dot > rule.Len() {
		return Situation{}, fmt.Errorf("dot must be between 0 and %v; dot: %v", rule.Len(), dot)
	}
	return newSituation(rule, origin, dot), nil
}

func newSituation(rule grammar.Rule, origin, dot int) Situation {
	return Situation{
		rule:   rule,
		origin: origin,
		dot:    dot,
	}
}

func (s Situation) Rule() grammar.Rule {
	return s.rule
}

func (s Situation) Origin() int {
	return s.origin
}

func (s Situation) Dot() int {
	return s.dot
}

// Complete reports whether the whole RHS is matched.
func (s Situation) Complete() bool {
	return s.dot == s.rule.Len()
}

// NextSymbol returns the symbol following the dot. When the situation is complete, it returns false.
func (s Situation) NextSymbol() (symbol.Symbol, bool) {
	if s.Complete() {
		return symbol.SymbolNil, false
	}
	return s.rule.At(s.dot), true
}

// Advance returns a situation whose dot moved over the next symbol. The situation must not be complete.
func (s Situation) Advance() Situation {
	return newSituation(s.rule, s.origin, s.dot+1)
}

func (s Situation) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v →", s.rule.LHS())
	for i, sym := range s.rule.RHS() {
		if i == s.dot {
			fmt.Fprintf(&b, " ・")
		}
		fmt.Fprintf(&b, " %v", sym)
	}
	if s.dot >= s.rule.Len() {
		fmt.Fprintf(&b, " ・")
	}
	fmt.Fprintf(&b, ", %v", s.origin)
	return b.String()
}
