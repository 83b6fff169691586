package grammar

import (
	"sort"
	"strings"

	"github.com/nihei9/earley/grammar/symbol"
)

// Rule is a production `LHS → RHS`. Rule is a comparable value, so two rules having the same LHS and RHS are
// the same rule and can be used as a map key.
type Rule struct {
	lhs symbol.Symbol
	rhs string
}

func NewRule(lhs symbol.Symbol, rhs string) Rule {
	return Rule{
		lhs: lhs,
		rhs: rhs,
	}
}

// NewAugmentedStartRule returns the rule `_ → start`.
func NewAugmentedStartRule(start symbol.Symbol) Rule {
	return NewRule(symbol.SymbolAugmentedStart, start.String())
}

func (r Rule) LHS() symbol.Symbol {
	return r.lhs
}

// RHS returns a copy of the symbols of the RHS.
func (r Rule) RHS() []symbol.Symbol {
	syms := make([]symbol.Symbol, len(r.rhs))
	for i := 0; i < len(r.rhs); i++ {
		syms[i] = symbol.Symbol(r.rhs[i])
	}
	return syms
}

// Product returns the RHS as a text.
func (r Rule) Product() string {
	return r.rhs
}

func (r Rule) Len() int {
	return len(r.rhs)
}

// At returns the i-th symbol of the RHS. i must be less than Len().
func (r Rule) At(i int) symbol.Symbol {
	return symbol.Symbol(r.rhs[i])
}

func (r Rule) IsEmpty() bool {
	return len(r.rhs) == 0
}

func (r Rule) String() string {
	if r.IsEmpty() {
		return r.lhs.String() + " → ε"
	}
	return r.lhs.String() + " → " + r.rhs
}

type ruleSet struct {
	lhs2Rules map[symbol.Symbol][]Rule
	rules     map[Rule]struct{}
}

func newRuleSet() *ruleSet {
	return &ruleSet{
		lhs2Rules: map[symbol.Symbol][]Rule{},
		rules:     map[Rule]struct{}{},
	}
}

// append reports whether the rule was not contained in the set. A duplicate rule collapses into the existing one.
func (rs *ruleSet) append(rule Rule) bool {
	if _, ok := rs.rules[rule]; ok {
		return false
	}
	rs.rules[rule] = struct{}{}
	rs.lhs2Rules[rule.lhs] = append(rs.lhs2Rules[rule.lhs], rule)
	return true
}

func (rs *ruleSet) contains(rule Rule) bool {
	_, ok := rs.rules[rule]
	return ok
}

func (rs *ruleSet) findByLHS(lhs symbol.Symbol) []Rule {
	return rs.lhs2Rules[lhs]
}

// getAllRules returns the rules ordered by LHS and then RHS.
func (rs *ruleSet) getAllRules() []Rule {
	rules := make([]Rule, 0, len(rs.rules))
	for r := range rs.rules {
		rules = append(rules, r)
	}
	sort.Slice(rules, func(i, j int) bool {
		if rules[i].lhs != rules[j].lhs {
			return rules[i].lhs < rules[j].lhs
		}
		return strings.Compare(rules[i].rhs, rules[j].rhs) < 0
	})
	return rules
}
