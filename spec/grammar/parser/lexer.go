package parser

import (
	"fmt"
	"io"
	"strings"
	"sync"

	mlcompiler "github.com/nihei9/maleeni/compiler"
	mldriver "github.com/nihei9/maleeni/driver"
	mlspec "github.com/nihei9/maleeni/spec"
)

type tokenKind string

const (
	tokenKindItem    = tokenKind("item")
	tokenKindArrow   = tokenKind("->")
	tokenKindNewline = tokenKind("newline")
	tokenKindEOF     = tokenKind("eof")
	tokenKindInvalid = tokenKind("invalid")
)

type Position struct {
	Row int
	Col int
}

func newPosition(row, col int) Position {
	return Position{
		Row: row,
		Col: col,
	}
}

type token struct {
	kind tokenKind
	text string
	pos  Position
}

func newItemToken(text string, pos Position) *token {
	return &token{
		kind: tokenKindItem,
		text: text,
		pos:  pos,
	}
}

func newSymbolToken(kind tokenKind, pos Position) *token {
	return &token{
		kind: kind,
		pos:  pos,
	}
}

func newEOFToken(pos Position) *token {
	return &token{
		kind: tokenKindEOF,
		pos:  pos,
	}
}

func newInvalidToken(text string, pos Position) *token {
	return &token{
		kind: tokenKindInvalid,
		text: text,
		pos:  pos,
	}
}

// An item is a run of any characters except white spaces and newlines. Whether an item is a count, a symbol list,
// or a word depends on where it appears, so the parser gives it a meaning.
var lexSpec = &mlspec.LexSpec{
	Name: "session",
	Entries: []*mlspec.LexEntry{
		{
			Kind:    mlspec.LexKindName("white_space"),
			Pattern: mlspec.LexPattern(`[\u{0009}\u{0020}]+`),
		},
		{
			Kind:    mlspec.LexKindName("newline"),
			Pattern: mlspec.LexPattern(`\u{000A}|\u{000D}\u{000A}`),
		},
		{
			Kind:    mlspec.LexKindName("arrow"),
			Pattern: mlspec.LexPattern(`\u{002D}\u{003E}`),
		},
		{
			Kind:    mlspec.LexKindName("item"),
			Pattern: mlspec.LexPattern(`[^\u{0009}\u{000A}\u{000D}\u{0020}]+`),
		},
	},
}

var (
	compiledLexSpec     *mlspec.CompiledLexSpec
	compiledLexSpecErr  error
	compiledLexSpecOnce sync.Once
)

func compileLexSpec() (*mlspec.CompiledLexSpec, error) {
	compiledLexSpecOnce.Do(func() {
		s, err, cErrs := mlcompiler.Compile(lexSpec, mlcompiler.CompressionLevel(mlcompiler.CompressionLevelMax))
		if err != nil {
			if len(cErrs) > 0 {
				var b strings.Builder
				fmt.Fprintf(&b, "%v: %v", cErrs[0].Kind, cErrs[0].Cause)
				for _, cErr := range cErrs[1:] {
					fmt.Fprintf(&b, "\n%v: %v", cErr.Kind, cErr.Cause)
				}
				compiledLexSpecErr = fmt.Errorf("failed to compile the lexical specification: %v", b.String())
				return
			}
			compiledLexSpecErr = err
			return
		}
		compiledLexSpec = s
	})
	return compiledLexSpec, compiledLexSpecErr
}

type lexer struct {
	s *mlspec.CompiledLexSpec
	d *mldriver.Lexer
}

func newLexer(src io.Reader) (*lexer, error) {
	s, err := compileLexSpec()
	if err != nil {
		return nil, err
	}
	d, err := mldriver.NewLexer(mldriver.NewLexSpec(s), src)
	if err != nil {
		return nil, err
	}
	return &lexer{
		s: s,
		d: d,
	}, nil
}

func (l *lexer) next() (*token, error) {
	var tok *mldriver.Token
	var kind string
	for {
		var err error
		tok, err = l.d.Next()
		if err != nil {
			return nil, err
		}
		if tok.Invalid {
			return newInvalidToken(string(tok.Lexeme), newPosition(tok.Row+1, tok.Col+1)), nil
		}
		if tok.EOF {
			return newEOFToken(newPosition(tok.Row+1, tok.Col+1)), nil
		}
		kind = string(l.s.KindNames[tok.KindID])
		if kind == "white_space" {
			continue
		}

		break
	}

	pos := newPosition(tok.Row+1, tok.Col+1)
	text := string(tok.Lexeme)
	switch kind {
	case "newline":
		return newSymbolToken(tokenKindNewline, pos), nil
	case "arrow":
		return newSymbolToken(tokenKindArrow, pos), nil
	case "item":
		// When both the arrow and the item match the same text, treat it as the arrow.
		if text == "->" {
			return newSymbolToken(tokenKindArrow, pos), nil
		}
		return newItemToken(text, pos), nil
	default:
		return newInvalidToken(text, pos), nil
	}
}
