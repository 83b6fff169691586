package driver

import (
	"fmt"
	"io"

	"github.com/tliron/commonlog"
)

// TraceActionSet observes the chart construction. Each function runs only when a situation is newly added to
// a layer.
type TraceActionSet interface {
	// Scan runs when the recognizer consumes an input symbol. `from` is a situation in the previous layer and
	// `to` is the advanced one added to `layer`.
	Scan(layer int, from, to Situation)

	// Predict runs when the recognizer expands the next symbol of `cause` into `predicted`.
	Predict(layer int, cause, predicted Situation)

	// Complete runs when `completed` advances `waiting` into `advanced`.
	Complete(layer int, completed, waiting, advanced Situation)

	// Finish runs when the recognizer has built all layers.
	Finish(chart *Chart)
}

var (
	_ TraceActionSet = &textTraceActionSet{}
	_ TraceActionSet = &logTraceActionSet{}
)

type textTraceActionSet struct {
	w io.Writer
}

// NewTextTraceActionSet returns a TraceActionSet writing one line per step to w.
func NewTextTraceActionSet(w io.Writer) *textTraceActionSet {
	return &textTraceActionSet{
		w: w,
	}
}

func (a *textTraceActionSet) Scan(layer int, from, to Situation) {
	fmt.Fprintf(a.w, "%v: scan     %v\n", layer, to)
}

func (a *textTraceActionSet) Predict(layer int, cause, predicted Situation) {
	fmt.Fprintf(a.w, "%v: predict  %v\n", layer, predicted)
}

func (a *textTraceActionSet) Complete(layer int, completed, waiting, advanced Situation) {
	fmt.Fprintf(a.w, "%v: complete %v (by %v)\n", layer, advanced, completed)
}

func (a *textTraceActionSet) Finish(chart *Chart) {
	if chart.Accepted() {
		fmt.Fprintf(a.w, "accepted %q\n", chart.Word())
	} else {
		fmt.Fprintf(a.w, "rejected %q\n", chart.Word())
	}
}

type logTraceActionSet struct {
	log commonlog.Logger
}

// NewLogTraceActionSet returns a TraceActionSet writing each step to a logger at the debug level.
func NewLogTraceActionSet(log commonlog.Logger) *logTraceActionSet {
	return &logTraceActionSet{
		log: log,
	}
}

func (a *logTraceActionSet) Scan(layer int, from, to Situation) {
	a.log.Debugf("layer %v: scan: %v", layer, to)
}

func (a *logTraceActionSet) Predict(layer int, cause, predicted Situation) {
	a.log.Debugf("layer %v: predict: %v", layer, predicted)
}

func (a *logTraceActionSet) Complete(layer int, completed, waiting, advanced Situation) {
	a.log.Debugf("layer %v: complete: %v (by %v)", layer, advanced, completed)
}

func (a *logTraceActionSet) Finish(chart *Chart) {
	a.log.Debugf("word %q: accepted: %v", chart.Word(), chart.Accepted())
}
