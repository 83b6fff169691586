package symbol

import (
	"sort"
	"strings"
)

type symbolKind string

const (
	symbolKindNonTerminal    = symbolKind("non-terminal")
	symbolKindTerminal       = symbolKind("terminal")
	symbolKindAugmentedStart = symbolKind("augmented start")
	symbolKindInvalid        = symbolKind("invalid")
)

func (t symbolKind) String() string {
	return string(t)
}

// Symbol is a single character of a grammar. Whether it is a terminal or a non-terminal is decided by the
// character itself.
type Symbol byte

const (
	SymbolNil = Symbol(0)

	// SymbolAugmentedStart is the LHS of the implicit production `_ → S` wrapping the start symbol S.
	// It is neither a terminal nor a non-terminal, so it never conflicts with user-defined symbols.
	SymbolAugmentedStart = Symbol('_')
)

func (s Symbol) String() string {
	if s.IsNil() {
		return "<nil>"
	}
	return string(rune(s))
}

func (s Symbol) IsNil() bool {
	return s == SymbolNil
}

func (s Symbol) IsAugmentedStart() bool {
	return s == SymbolAugmentedStart
}

func (s Symbol) IsNonTerminal() bool {
	return s.kind() == symbolKindNonTerminal
}

func (s Symbol) IsTerminal() bool {
	return s.kind() == symbolKindTerminal
}

// Kind returns a readable name of the symbol's classification.
func (s Symbol) Kind() string {
	return s.kind().String()
}

func (s Symbol) kind() symbolKind {
	switch {
	case s >= 'A' && s <= 'Z':
		return symbolKindNonTerminal
	case s >= 'a' && s <= 'z', s >= '0' && s <= '9':
		return symbolKindTerminal
	case s.IsAugmentedStart():
		return symbolKindAugmentedStart
	}
	switch s {
	case '+', '-', '*', '/', '(', ')', '[', ']', '{', '}':
		return symbolKindTerminal
	}
	return symbolKindInvalid
}

type SymbolSet struct {
	set map[Symbol]struct{}
}

func NewSymbolSet(syms ...Symbol) *SymbolSet {
	s := &SymbolSet{
		set: map[Symbol]struct{}{},
	}
	for _, sym := range syms {
		s.Add(sym)
	}
	return s
}

// Add reports whether sym was not contained in the set.
func (s *SymbolSet) Add(sym Symbol) bool {
	if _, ok := s.set[sym]; ok {
		return false
	}
	s.set[sym] = struct{}{}
	return true
}

func (s *SymbolSet) Contains(sym Symbol) bool {
	if s == nil {
		return false
	}
	_, ok := s.set[sym]
	return ok
}

func (s *SymbolSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.set)
}

// Symbols returns the symbols in ascending order.
func (s *SymbolSet) Symbols() []Symbol {
	if s == nil {
		return nil
	}
	syms := make([]Symbol, 0, len(s.set))
	for sym := range s.set {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool {
		return syms[i] < syms[j]
	})
	return syms
}

func (s *SymbolSet) Clone() *SymbolSet {
	return NewSymbolSet(s.Symbols()...)
}

func (s *SymbolSet) String() string {
	var b strings.Builder
	for i, sym := range s.Symbols() {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(sym.String())
	}
	return b.String()
}
