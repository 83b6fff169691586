package driver

import (
	"fmt"

	"github.com/nihei9/earley/grammar"
	"github.com/nihei9/earley/grammar/symbol"
	"github.com/tliron/commonlog"
)

type RecognizerOption func(r *Recognizer) error

// MaxPasses limits the number of predict/complete passes per layer. The fixpoint always terminates, so this is
// only a guard against runaway input. 0 means no limit.
func MaxPasses(n int) RecognizerOption {
	return func(r *Recognizer) error {
		if n < 0 {
			return fmt.Errorf("the number of passes must be greater than or equal to 0; passed: %v", n)
		}
		r.maxPasses = n
		return nil
	}
}

func Trace(t TraceActionSet) RecognizerOption {
	return func(r *Recognizer) error {
		r.trace = t
		return nil
	}
}

func Logger(log commonlog.Logger) RecognizerOption {
	return func(r *Recognizer) error {
		r.log = log
		return nil
	}
}

// Recognizer decides whether a word belongs to the language of a grammar using the Earley algorithm.
// The grammar is only read, and each recognition builds a new chart, so a recognizer can be used repeatedly.
type Recognizer struct {
	gram      *grammar.Grammar
	maxPasses int
	trace     TraceActionSet
	log       commonlog.Logger
}

func NewRecognizer(gram *grammar.Grammar, opts ...RecognizerOption) (*Recognizer, error) {
	if gram == nil {
		return nil, fmt.Errorf("a grammar must be non-nil")
	}

	r := &Recognizer{
		gram: gram,
		log:  commonlog.GetLogger("earley.driver"),
	}
	for _, opt := range opts {
		err := opt(r)
		if err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Recognize reports whether the grammar derives the word. It is a shorthand for a recognizer without options.
func Recognize(gram *grammar.Grammar, word string) bool {
	r := &Recognizer{
		gram: gram,
		log:  commonlog.GetLogger("earley.driver"),
	}
	c, _ := r.Parse(word)
	return c.Accepted()
}

func (r *Recognizer) Recognize(word string) (bool, error) {
	c, err := r.Parse(word)
	if err != nil {
		return false, err
	}
	return c.Accepted(), nil
}

// Parse builds the chart of the word. An error occurs only when the number of passes exceeds the limit.
func (r *Recognizer) Parse(word string) (*Chart, error) {
	startRule := r.gram.AugmentedStartRule()
	c := newChart(word, startRule)
	c.layers[0].add(newSituation(startRule, 0, 0))

	for i := 0; i < c.Len(); i++ {
		if i > 0 {
			r.scan(c, i)
		}

		passes := 0
		for {
			if r.maxPasses > 0 && passes >= r.maxPasses {
				return nil, fmt.Errorf("layer %v didn't reach the fixpoint within %v passes", i, r.maxPasses)
			}
			passes++

			predicted := r.predict(c, i)
			completed := r.complete(c, i)
			if !predicted && !completed {
				break
			}
		}

		r.log.Debugf("layer %v: %v situations, %v passes", i, c.layers[i].Len(), passes)
	}

	if r.trace != nil {
		r.trace.Finish(c)
	}

	return c, nil
}

// scan advances the situations of the layer i-1 expecting the i-th symbol of the word into the layer i.
func (r *Recognizer) scan(c *Chart, i int) bool {
	sym := symbol.Symbol(c.word[i-1])
	// A character that isn't a terminal never matches, even if it looks like a non-terminal.
	if !sym.IsTerminal() {
		return false
	}
	prev := c.layers[i-1]
	cur := c.layers[i]
	changed := false
	for _, s := range prev.waitingFor(sym) {
		next := s.Advance()
		if !cur.add(next) {
			continue
		}
		changed = true
		if r.trace != nil {
			r.trace.Scan(i, s, next)
		}
	}
	return changed
}

// predict adds `Y →・γ, i` for every situation expecting a non-terminal Y in the layer i.
func (r *Recognizer) predict(c *Chart, i int) bool {
	cur := c.layers[i]
	changed := false
	// The layer can grow while iterating. Newly added situations are also predicted in this pass.
	for j := 0; j < len(cur.situations); j++ {
		s := cur.situations[j]
		sym, ok := s.NextSymbol()
		if !ok {
			continue
		}
		for _, rule := range r.gram.RulesByLHS(sym) {
			predicted := newSituation(rule, i, 0)
			if !cur.add(predicted) {
				continue
			}
			changed = true
			if r.trace != nil {
				r.trace.Predict(i, s, predicted)
			}
		}
	}
	return changed
}

// complete advances the situations waiting for X in the layer j into the layer i for every `X → γ・, j`
// in the layer i.
func (r *Recognizer) complete(c *Chart, i int) bool {
	cur := c.layers[i]
	changed := false
	for k := 0; k < len(cur.situations); k++ {
		s := cur.situations[k]
		if !s.Complete() {
			continue
		}
		origin := c.layers[s.origin]
		// When the origin is the current layer, the waiting list can grow while iterating. Situations added
		// after this point are handled in the next pass.
		for _, w := range origin.waitingFor(s.rule.LHS()) {
			advanced := w.Advance()
			if !cur.add(advanced) {
				continue
			}
			changed = true
			if r.trace != nil {
				r.trace.Complete(i, s, w, advanced)
			}
		}
	}
	return changed
}
