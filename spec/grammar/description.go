package grammar

type Terminal struct {
	Name string `json:"name"`
}

type NonTerminal struct {
	Name     string `json:"name"`
	Nullable bool   `json:"nullable"`
}

type Production struct {
	Number int    `json:"number"`
	LHS    string `json:"lhs"`
	RHS    string `json:"rhs"`
}

type Report struct {
	Start        string         `json:"start"`
	NonTerminals []*NonTerminal `json:"non_terminals"`
	Terminals    []*Terminal    `json:"terminals"`
	Productions  []*Production  `json:"productions"`
}

type Situation struct {
	LHS      string `json:"lhs"`
	RHS      string `json:"rhs"`
	Origin   int    `json:"origin"`
	Dot      int    `json:"dot"`
	Complete bool   `json:"complete"`
}

type Layer struct {
	Number int `json:"number"`

	// Symbol is the input symbol consumed to reach this layer. The layer 0 has no symbol.
	Symbol     string       `json:"symbol"`
	Situations []*Situation `json:"situations"`
}

// ChartReport is a snapshot of a chart built while recognizing a word.
type ChartReport struct {
	Word     string   `json:"word"`
	Accepted bool     `json:"accepted"`
	Layers   []*Layer `json:"layers"`
}
