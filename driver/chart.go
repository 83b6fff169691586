package driver

import (
	"fmt"
	"io"

	"github.com/nihei9/earley/grammar"
	"github.com/nihei9/earley/grammar/symbol"
	spec "github.com/nihei9/earley/spec/grammar"
)

// Layer is a deduplicating set of situations keeping the order of insertion.
type Layer struct {
	situations []Situation
	set        map[Situation]struct{}

	// waiting indexes incomplete situations by their next symbols.
	waiting map[symbol.Symbol][]Situation
}

func newLayer() *Layer {
	return &Layer{
		set:     map[Situation]struct{}{},
		waiting: map[symbol.Symbol][]Situation{},
	}
}

// add reports whether the situation was not contained in the layer. Adding a contained situation is a no-op.
func (l *Layer) add(s Situation) bool {
	if _, ok := l.set[s]; ok {
		return false
	}
	l.set[s] = struct{}{}
	l.situations = append(l.situations, s)
	if sym, ok := s.NextSymbol(); ok {
		l.waiting[sym] = append(l.waiting[sym], s)
	}
	return true
}

// waitingFor returns the situations whose next symbol is sym. The returned slice must not be modified.
func (l *Layer) waitingFor(sym symbol.Symbol) []Situation {
	return l.waiting[sym]
}

func (l *Layer) Contains(s Situation) bool {
	_, ok := l.set[s]
	return ok
}

func (l *Layer) Len() int {
	return len(l.situations)
}

// Situations returns a copy of the situations in the order they were added.
func (l *Layer) Situations() []Situation {
	return append([]Situation(nil), l.situations...)
}

// Chart has a layer per input position. The layer i holds the situations valid after consuming the first i
// symbols of the word.
type Chart struct {
	word      string
	layers    []*Layer
	accepting Situation
}

func newChart(word string, startRule grammar.Rule) *Chart {
	layers := make([]*Layer, len(word)+1)
	for i := range layers {
		layers[i] = newLayer()
	}
	return &Chart{
		word:      word,
		layers:    layers,
		accepting: newSituation(startRule, 0, 1),
	}
}

func (c *Chart) Word() string {
	return c.word
}

// Len returns the number of the layers, that is, the length of the word plus one.
func (c *Chart) Len() int {
	return len(c.layers)
}

func (c *Chart) Layer(i int) *Layer {
	return c.layers[i]
}

// Accepted reports whether the last layer contains `_ → S・, 0`.
func (c *Chart) Accepted() bool {
	return c.layers[len(c.layers)-1].Contains(c.accepting)
}

func (c *Chart) Report() *spec.ChartReport {
	report := &spec.ChartReport{
		Word:     c.word,
		Accepted: c.Accepted(),
	}
	for i, l := range c.layers {
		layer := &spec.Layer{
			Number: i,
		}
		if i > 0 {
			layer.Symbol = string(c.word[i-1])
		}
		for _, s := range l.situations {
			layer.Situations = append(layer.Situations, &spec.Situation{
				LHS:      s.rule.LHS().String(),
				RHS:      s.rule.Product(),
				Origin:   s.origin,
				Dot:      s.dot,
				Complete: s.Complete(),
			})
		}
		report.Layers = append(report.Layers, layer)
	}
	return report
}

func PrintChart(w io.Writer, c *Chart) {
	for i, l := range c.layers {
		if i == 0 {
			fmt.Fprintf(w, "# Layer 0\n")
		} else {
			fmt.Fprintf(w, "# Layer %v (%q)\n", i, c.word[i-1])
		}
		for _, s := range l.situations {
			fmt.Fprintf(w, "%v\n", s)
		}
		fmt.Fprintf(w, "\n")
	}
	if c.Accepted() {
		fmt.Fprintf(w, "accepted\n")
	} else {
		fmt.Fprintf(w, "rejected\n")
	}
}
