package symbol

import "testing"

func TestSymbol(t *testing.T) {
	tests := []struct {
		sym              Symbol
		isNil            bool
		isAugmentedStart bool
		isNonTerminal    bool
		isTerminal       bool
	}{
		{sym: 'S', isNonTerminal: true},
		{sym: 'A', isNonTerminal: true},
		{sym: 'Z', isNonTerminal: true},
		{sym: 'a', isTerminal: true},
		{sym: 'z', isTerminal: true},
		{sym: '0', isTerminal: true},
		{sym: '9', isTerminal: true},
		{sym: '+', isTerminal: true},
		{sym: '-', isTerminal: true},
		{sym: '*', isTerminal: true},
		{sym: '/', isTerminal: true},
		{sym: '(', isTerminal: true},
		{sym: ')', isTerminal: true},
		{sym: '[', isTerminal: true},
		{sym: ']', isTerminal: true},
		{sym: '{', isTerminal: true},
		{sym: '}', isTerminal: true},
		{sym: SymbolAugmentedStart, isAugmentedStart: true},
		{sym: SymbolNil, isNil: true},
		{sym: ' '},
		{sym: '>'},
		{sym: '='},
	}
	for _, tt := range tests {
		t.Run(tt.sym.String(), func(t *testing.T) {
			if tt.sym.IsNil() != tt.isNil {
				t.Fatalf("isNil property is mismatched; want: %v, got: %v", tt.isNil, tt.sym.IsNil())
			}
			if tt.sym.IsAugmentedStart() != tt.isAugmentedStart {
				t.Fatalf("isAugmentedStart property is mismatched; want: %v, got: %v", tt.isAugmentedStart, tt.sym.IsAugmentedStart())
			}
			if tt.sym.IsNonTerminal() != tt.isNonTerminal {
				t.Fatalf("isNonTerminal property is mismatched; want: %v, got: %v", tt.isNonTerminal, tt.sym.IsNonTerminal())
			}
			if tt.sym.IsTerminal() != tt.isTerminal {
				t.Fatalf("isTerminal property is mismatched; want: %v, got: %v", tt.isTerminal, tt.sym.IsTerminal())
			}
		})
	}
}

func TestSymbolSet(t *testing.T) {
	s := NewSymbolSet('b', 'a')
	if !s.Add('c') {
		t.Fatalf("a new symbol must be added")
	}
	if s.Add('a') {
		t.Fatalf("a duplicate symbol must not be added")
	}
	if s.Len() != 3 {
		t.Fatalf("unexpected length; want: 3, got: %v", s.Len())
	}
	if !s.Contains('b') || s.Contains('d') {
		t.Fatalf("unexpected membership: %v", s)
	}
	syms := s.Symbols()
	want := []Symbol{'a', 'b', 'c'}
	if len(syms) != len(want) {
		t.Fatalf("unexpected symbols; want: %v, got: %v", want, syms)
	}
	for i, sym := range want {
		if syms[i] != sym {
			t.Fatalf("unexpected symbols; want: %v, got: %v", want, syms)
		}
	}
	if s.String() != "a b c" {
		t.Fatalf("unexpected text; want: %q, got: %q", "a b c", s.String())
	}

	c := s.Clone()
	c.Add('x')
	if s.Contains('x') {
		t.Fatalf("a clone must not share its storage with the original set")
	}

	var nilSet *SymbolSet
	if nilSet.Len() != 0 || nilSet.Contains('a') || nilSet.Symbols() != nil {
		t.Fatalf("a nil set must behave as an empty set")
	}
}
