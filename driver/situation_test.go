package driver

import (
	"testing"

	"github.com/nihei9/earley/grammar"
)

func TestNewSituation(t *testing.T) {
	rule := grammar.NewRule('S', "aSb")

	tests := []struct {
		origin int
		dot    int
		err    bool
	}{
		{origin: 0, dot: 0},
		{origin: 0, dot: 3},
		{origin: 5, dot: 1},
		{origin: 0, dot: 4, err: true},
		{origin: 0, dot: -1, err: true},
		{origin: -1, dot: 0, err: true},
	}
	for _, tt := range tests {
		s, err := NewSituation(rule, tt.origin, tt.dot)
		if tt.err {
			if err == nil {
				t.Fatalf("an expected error didn't occur; origin: %v, dot: %v", tt.origin, tt.dot)
			}
			continue
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Rule() != rule || s.Origin() != tt.origin || s.Dot() != tt.dot {
			t.Fatalf("unexpected situation: %v", s)
		}
	}
}

func TestSituation(t *testing.T) {
	genSit := newTestSituationGenerator(t)

	tests := []struct {
		situation Situation
		complete  bool
		next      byte
		text      string
	}{
		{
			situation: genSit("S -> aSb", 0, 0),
			next:      'a',
			text:      "S → ・ a S b, 0",
		},
		{
			situation: genSit("S -> aSb", 0, 1),
			next:      'S',
			text:      "S → a ・ S b, 0",
		},
		{
			situation: genSit("S -> aSb", 2, 3),
			complete:  true,
			text:      "S → a S b ・, 2",
		},
		{
			situation: genSit("S -> ", 1, 0),
			complete:  true,
			text:      "S → ・, 1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			s := tt.situation
			if s.Complete() != tt.complete {
				t.Fatalf("unexpected completeness; want: %v, got: %v", tt.complete, s.Complete())
			}
			sym, ok := s.NextSymbol()
			if ok == tt.complete {
				t.Fatalf("a complete situation must not have the next symbol")
			}
			if ok && byte(sym) != tt.next {
				t.Fatalf("unexpected next symbol; want: %c, got: %v", tt.next, sym)
			}
			if s.String() != tt.text {
				t.Fatalf("unexpected text; want: %q, got: %q", tt.text, s.String())
			}
		})
	}
}

func TestSituation_Advance(t *testing.T) {
	genSit := newTestSituationGenerator(t)

	s := genSit("S -> aSb", 0, 1)
	next := s.Advance()
	if s.Dot() != 1 {
		t.Fatalf("advancing must not mutate the original situation")
	}
	if next != genSit("S -> aSb", 0, 2) {
		t.Fatalf("unexpected situation: %v", next)
	}

	// Situations are comparable values and work as map keys.
	m := map[Situation]struct{}{
		genSit("S -> aSb", 0, 2): {},
	}
	if _, ok := m[next]; !ok {
		t.Fatalf("equal situations must be the same key")
	}
	if _, ok := m[genSit("S -> aSb", 1, 2)]; ok {
		t.Fatalf("situations with different origins must be different keys")
	}
}

func TestLayer(t *testing.T) {
	genSit := newTestSituationGenerator(t)

	l := newLayer()
	if !l.add(genSit("S -> aS", 0, 0)) {
		t.Fatalf("a new situation must be added")
	}
	if !l.add(genSit("S -> aS", 0, 1)) {
		t.Fatalf("a new situation must be added")
	}
	if l.add(genSit("S -> aS", 0, 0)) {
		t.Fatalf("a duplicate situation must not be added")
	}
	if l.Len() != 2 {
		t.Fatalf("unexpected length; want: 2, got: %v", l.Len())
	}
	if len(l.waitingFor('a')) != 1 || len(l.waitingFor('S')) != 1 {
		t.Fatalf("situations must be indexed by their next symbols")
	}

	sits := l.Situations()
	sits[0] = genSit("S -> b", 0, 0)
	if l.Contains(genSit("S -> b", 0, 0)) || l.Situations()[0] != genSit("S -> aS", 0, 0) {
		t.Fatalf("Situations must return a copy")
	}
}
