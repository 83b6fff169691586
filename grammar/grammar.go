package grammar

import (
	verr "github.com/nihei9/earley/error"
	"github.com/nihei9/earley/grammar/symbol"
	spec "github.com/nihei9/earley/spec/grammar"
	"github.com/nihei9/earley/spec/grammar/parser"
)

// Grammar is an immutable context-free grammar. A grammar can be shared by any number of recognitions.
type Grammar struct {
	start        symbol.Symbol
	nonTerminals *symbol.SymbolSet
	terminals    *symbol.SymbolSet
	rules        *ruleSet
}

// NewGrammar makes a grammar without validation. The caller must guarantee that the start symbol and every
// symbol of the rules are declared. Use GrammarBuilder to make a validated grammar.
func NewGrammar(start symbol.Symbol, nonTerms, terms []symbol.Symbol, rules []Rule) *Grammar {
	rs := newRuleSet()
	for _, r := range rules {
		rs.append(r)
	}
	return &Grammar{
		start:        start,
		nonTerminals: symbol.NewSymbolSet(nonTerms...),
		terminals:    symbol.NewSymbolSet(terms...),
		rules:        rs,
	}
}

func (g *Grammar) Start() symbol.Symbol {
	return g.start
}

func (g *Grammar) NonTerminals() []symbol.Symbol {
	return g.nonTerminals.Symbols()
}

func (g *Grammar) Terminals() []symbol.Symbol {
	return g.terminals.Symbols()
}

func (g *Grammar) IsNonTerminal(sym symbol.Symbol) bool {
	return g.nonTerminals.Contains(sym)
}

func (g *Grammar) IsTerminal(sym symbol.Symbol) bool {
	return g.terminals.Contains(sym)
}

// Rules returns all rules ordered by LHS and then RHS.
func (g *Grammar) Rules() []Rule {
	return g.rules.getAllRules()
}

// RulesByLHS returns the rules whose LHS is lhs in the order they were added.
func (g *Grammar) RulesByLHS(lhs symbol.Symbol) []Rule {
	rules := g.rules.findByLHS(lhs)
	if len(rules) == 0 {
		return nil
	}
	return append([]Rule(nil), rules...)
}

// ContainsRule reports whether the grammar has the rule. The augmented start rule isn't a member of the grammar.
func (g *Grammar) ContainsRule(rule Rule) bool {
	return g.rules.contains(rule)
}

func (g *Grammar) AugmentedStartSymbol() symbol.Symbol {
	return symbol.SymbolAugmentedStart
}

// AugmentedStartRule returns `_ → S` where S is the start symbol.
func (g *Grammar) AugmentedStartRule() Rule {
	return NewAugmentedStartRule(g.start)
}

// Describe makes a readable report of the grammar.
func (g *Grammar) Describe() *spec.Report {
	nullable := genNullableSet(g)

	report := &spec.Report{
		Start: g.start.String(),
	}
	for _, sym := range g.NonTerminals() {
		report.NonTerminals = append(report.NonTerminals, &spec.NonTerminal{
			Name:     sym.String(),
			Nullable: nullable.Contains(sym),
		})
	}
	for _, sym := range g.Terminals() {
		report.Terminals = append(report.Terminals, &spec.Terminal{
			Name: sym.String(),
		})
	}
	for i, r := range g.Rules() {
		report.Productions = append(report.Productions, &spec.Production{
			Number: i + 1,
			LHS:    r.lhs.String(),
			RHS:    r.rhs,
		})
	}
	return report
}

// GrammarBuilder validates a grammar source and freezes it into a Grammar. The source is either the AST
// parsed from a text or the symbols and rules added via the Add* methods, or both.
type GrammarBuilder struct {
	AST *parser.RootNode

	errs verr.SpecErrors
}

func (b *GrammarBuilder) root() *parser.RootNode {
	if b.AST == nil {
		b.AST = &parser.RootNode{}
	}
	return b.AST
}

func (b *GrammarBuilder) AddNonTerminal(sym symbol.Symbol) *GrammarBuilder {
	root := b.root()
	root.NonTerminals = append(root.NonTerminals, &parser.SymbolNode{
		Symbol: sym,
	})
	return b
}

func (b *GrammarBuilder) AddTerminal(sym symbol.Symbol) *GrammarBuilder {
	root := b.root()
	root.Terminals = append(root.Terminals, &parser.SymbolNode{
		Symbol: sym,
	})
	return b
}

func (b *GrammarBuilder) AddRule(lhs symbol.Symbol, rhs string) *GrammarBuilder {
	root := b.root()
	root.Rules = append(root.Rules, &parser.RuleNode{
		LHS: lhs,
		RHS: rhs,
	})
	return b
}

func (b *GrammarBuilder) SetStart(sym symbol.Symbol) *GrammarBuilder {
	b.root().Start = &parser.SymbolNode{
		Symbol: sym,
	}
	return b
}

// Build returns all semantic errors as verr.SpecErrors. When an error occurs, it never returns a grammar.
func (b *GrammarBuilder) Build() (*Grammar, error) {
	b.errs = nil
	root := b.root()

	nonTerms := symbol.NewSymbolSet()
	for _, n := range root.NonTerminals {
		if !n.Symbol.IsNonTerminal() {
			b.appendError(semErrInvalidNonTerminal, n.Symbol.String(), n.Pos)
			continue
		}
		nonTerms.Add(n.Symbol)
	}

	terms := symbol.NewSymbolSet()
	for _, n := range root.Terminals {
		if !n.Symbol.IsTerminal() {
			b.appendError(semErrInvalidTerminal, n.Symbol.String(), n.Pos)
			continue
		}
		terms.Add(n.Symbol)
	}

	rules := newRuleSet()
	for _, r := range root.Rules {
		ok := true
		if !nonTerms.Contains(r.LHS) {
			b.appendError(semErrUndefinedLHS, r.LHS.String(), r.Pos)
			ok = false
		}
		for i := 0; i < len(r.RHS); i++ {
			sym := symbol.Symbol(r.RHS[i])
			if nonTerms.Contains(sym) || terms.Contains(sym) {
				continue
			}
			pos := r.RHSPos
			if pos.Col != 0 {
				pos.Col += i
			}
			b.appendError(semErrUndefinedSym, sym.String(), pos)
			ok = false
		}
		if !ok {
			continue
		}
		rules.append(NewRule(r.LHS, r.RHS))
	}

	var start symbol.Symbol
	switch {
	case root.Start == nil:
		b.appendError(semErrNoStartSymbol, "", parser.Position{})
	case !nonTerms.Contains(root.Start.Symbol):
		b.appendError(semErrUndefinedStart, root.Start.Symbol.String(), root.Start.Pos)
	default:
		start = root.Start.Symbol
	}

	if len(b.errs) > 0 {
		return nil, b.errs
	}

	return &Grammar{
		start:        start,
		nonTerminals: nonTerms,
		terminals:    terms,
		rules:        rules,
	}, nil
}

func (b *GrammarBuilder) appendError(cause error, detail string, pos parser.Position) {
	b.errs = append(b.errs, &verr.SpecError{
		Cause:  cause,
		Detail: detail,
		Row:    pos.Row,
		Col:    pos.Col,
	})
}
