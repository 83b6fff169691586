package main

import (
	"strings"
	"testing"

	"github.com/nihei9/earley/driver"
	"github.com/nihei9/earley/spec/grammar/parser"
	"github.com/tliron/commonlog"
)

func TestWriteVerdicts(t *testing.T) {
	tests := []struct {
		caption    string
		src        string
		extraWords []string
		output     string
	}{
		{
			caption: "verdicts follow the order of the words",
			src: `1 2 2
S
ab
S -> aSb
S -> ab
S
5
ab aabb aaabbb ba aab
`,
			output: "Yes\nYes\nYes\nNo\nNo\n",
		},
		{
			caption: "a nullable start symbol accepts the empty word",
			src: `2 2 3
S A
ab
S -> aSb
S -> A
A ->
S
2
ab abb
`,
			extraWords: []string{""},
			output:     "Yes\nNo\nYes\n",
		},
		{
			caption: "a word having a character out of the alphabet is rejected",
			src: `1 1 2
S
a
S -> aS
S -> a
S
4
aaa a>a aAa a_a
`,
			output: "Yes\nNo\nNo\nNo\n",
		},
		{
			caption: "a session without words prints nothing",
			src: `1 1 1
S
a
S -> a
S
`,
			output: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			gram, ast, err := buildGrammar(strings.NewReader(tt.src))
			if err != nil {
				t.Fatal(err)
			}
			words := ast.Words
			for _, w := range tt.extraWords {
				words = append(words, &parser.WordNode{
					Text: w,
				})
			}
			r, err := driver.NewRecognizer(gram)
			if err != nil {
				t.Fatal(err)
			}

			var b strings.Builder
			err = writeVerdicts(&b, r, words, commonlog.GetLogger("earley.test"))
			if err != nil {
				t.Fatal(err)
			}
			if b.String() != tt.output {
				t.Fatalf("unexpected output; want: %q, got: %q", tt.output, b.String())
			}
		})
	}
}

func TestWriteVerdicts_Error(t *testing.T) {
	src := `1 1 1
S
a
S -> a
S
1
a
`
	gram, ast, err := buildGrammar(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	r, err := driver.NewRecognizer(gram, driver.MaxPasses(1))
	if err != nil {
		t.Fatal(err)
	}

	var b strings.Builder
	err = writeVerdicts(&b, r, ast.Words, commonlog.GetLogger("earley.test"))
	if err == nil {
		t.Fatalf("an expected error didn't occur")
	}
	if b.String() != "" {
		t.Fatalf("no verdict must be printed for a word failing to be recognized: %q", b.String())
	}
}
