package parser

import (
	"io"
	"strconv"

	verr "github.com/nihei9/earley/error"
	"github.com/nihei9/earley/grammar/symbol"
)

// RootNode is a grammar source and, optionally, the words to be recognized.
//
// The source looks like the following:
//
//	<#non-terminals> <#terminals> <#rules>
//	<non-terminals>
//	<terminals>
//	<rule>...
//	<start symbol>
//	<#words>
//	<word>...
//
// Each rule occupies its own line and looks like `S -> aSb`. The product can be empty (`S -> `).
// The word section is optional. When it is missing, Words is nil.
type RootNode struct {
	NonTerminals []*SymbolNode
	Terminals    []*SymbolNode
	Rules        []*RuleNode
	Start        *SymbolNode
	Words        []*WordNode
}

type SymbolNode struct {
	Symbol symbol.Symbol
	Pos    Position
}

type RuleNode struct {
	LHS    symbol.Symbol
	RHS    string
	Pos    Position
	RHSPos Position
}

type WordNode struct {
	Text string
	Pos  Position
}

func raiseSyntaxError(pos Position, synErr *SyntaxError) {
	panic(&verr.SpecError{
		Cause: synErr,
		Row:   pos.Row,
		Col:   pos.Col,
	})
}

func raiseSyntaxErrorWithDetail(pos Position, synErr *SyntaxError, detail string) {
	panic(&verr.SpecError{
		Cause:  synErr,
		Detail: detail,
		Row:    pos.Row,
		Col:    pos.Col,
	})
}

func Parse(src io.Reader) (*RootNode, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	return p.parse()
}

// symbolChar is a character of an item that is read as a symbol.
type symbolChar struct {
	sym symbol.Symbol
	pos Position
}

type parser struct {
	lex       *lexer
	peekedTok *token
	lastTok   *token

	// pendingChars holds the rest of an item partially read as a symbol list.
	pendingChars []symbolChar
}

func newParser(src io.Reader) (*parser, error) {
	lex, err := newLexer(src)
	if err != nil {
		return nil, err
	}
	return &parser{
		lex: lex,
	}, nil
}

func (p *parser) parse() (root *RootNode, retErr error) {
	defer func() {
		err := recover()
		if err != nil {
			specErr, ok := err.(*verr.SpecError)
			if !ok {
				panic(err)
			}
			retErr = specErr
		}
	}()

	return p.parseRoot(), nil
}

func (p *parser) parseRoot() *RootNode {
	nonTermNum := p.parseCount()
	termNum := p.parseCount()
	ruleNum := p.parseCount()

	nonTerms := p.parseSymbols(nonTermNum, synErrInvalidNonTerm, func(sym symbol.Symbol) bool {
		return sym.IsNonTerminal()
	})
	terms := p.parseSymbols(termNum, synErrInvalidTerm, func(sym symbol.Symbol) bool {
		return sym.IsTerminal()
	})
	if len(p.pendingChars) > 0 {
		raiseSyntaxErrorWithDetail(p.pendingChars[0].pos, synErrExtraSymbols, p.pendingChars[0].sym.String())
	}
	p.skipLineEnd(synErrExtraSymbols)

	rules := make([]*RuleNode, 0, ruleNum)
	for i := 0; i < ruleNum; i++ {
		rules = append(rules, p.parseRule())
	}

	start := p.parseStart()

	root := &RootNode{
		NonTerminals: nonTerms,
		Terminals:    terms,
		Rules:        rules,
		Start:        start,
	}

	p.skipNewlines()
	if p.consume(tokenKindEOF) {
		return root
	}
	root.Words = p.parseWords()

	return root
}

func (p *parser) parseCount() int {
	p.skipNewlines()
	if !p.consume(tokenKindItem) {
		p.raiseUnexpected(synErrInvalidNum)
	}
	n, err := strconv.Atoi(p.lastTok.text)
	if err != nil || n < 0 {
		raiseSyntaxErrorWithDetail(p.lastTok.pos, synErrInvalidNum, p.lastTok.text)
	}
	return n
}

// parseSymbols reads num characters as symbols. Symbols can be separated by white spaces or newlines, and
// several symbols can be written in one item, like `SAB`.
func (p *parser) parseSymbols(num int, synErr *SyntaxError, valid func(symbol.Symbol) bool) []*SymbolNode {
	syms := make([]*SymbolNode, 0, num)
	for len(syms) < num {
		if len(p.pendingChars) == 0 {
			p.skipNewlines()
			if !p.consume(tokenKindItem) {
				p.raiseUnexpected(synErr)
			}
			tok := p.lastTok
			for i := 0; i < len(tok.text); i++ {
				p.pendingChars = append(p.pendingChars, symbolChar{
					sym: symbol.Symbol(tok.text[i]),
					pos: newPosition(tok.pos.Row, tok.pos.Col+i),
				})
			}
		}

		c := p.pendingChars[0]
		p.pendingChars = p.pendingChars[1:]
		if !valid(c.sym) {
			raiseSyntaxErrorWithDetail(c.pos, synErr, c.sym.String())
		}
		syms = append(syms, &SymbolNode{
			Symbol: c.sym,
			Pos:    c.pos,
		})
	}
	return syms
}

func (p *parser) parseRule() *RuleNode {
	p.skipNewlines()
	if !p.consume(tokenKindItem) {
		p.raiseUnexpected(synErrMalformedRule)
	}
	lhsTok := p.lastTok
	if len(lhsTok.text) != 1 {
		raiseSyntaxErrorWithDetail(lhsTok.pos, synErrMalformedRule, lhsTok.text)
	}
	lhs := symbol.Symbol(lhsTok.text[0])
	if !lhs.IsNonTerminal() {
		raiseSyntaxErrorWithDetail(lhsTok.pos, synErrRuleInvalidLHS, lhsTok.text)
	}

	if !p.consume(tokenKindArrow) {
		p.raiseUnexpected(synErrMalformedRule)
	}
	rhsPos := p.lastTok.pos

	var rhs string
	if p.consume(tokenKindItem) {
		rhs = p.lastTok.text
		rhsPos = p.lastTok.pos
	}
	p.skipLineEnd(synErrMalformedRule)

	return &RuleNode{
		LHS:    lhs,
		RHS:    rhs,
		Pos:    lhsTok.pos,
		RHSPos: rhsPos,
	}
}

func (p *parser) parseStart() *SymbolNode {
	p.skipNewlines()
	if !p.consume(tokenKindItem) {
		p.raiseUnexpected(synErrInvalidStart)
	}
	tok := p.lastTok
	if len(tok.text) != 1 || !symbol.Symbol(tok.text[0]).IsNonTerminal() {
		raiseSyntaxErrorWithDetail(tok.pos, synErrInvalidStart, tok.text)
	}
	p.skipLineEnd(synErrStartNoNewline)
	return &SymbolNode{
		Symbol: symbol.Symbol(tok.text[0]),
		Pos:    tok.pos,
	}
}

func (p *parser) parseWords() []*WordNode {
	num := p.parseCount()
	words := make([]*WordNode, 0, num)
	for len(words) < num {
		p.skipNewlines()
		if !p.consume(tokenKindItem) {
			p.raiseUnexpected(synErrTooFewWords)
		}
		words = append(words, &WordNode{
			Text: p.lastTok.text,
			Pos:  p.lastTok.pos,
		})
	}
	p.skipNewlines()
	if !p.consume(tokenKindEOF) {
		p.raiseUnexpected(synErrUnexpectedContent)
	}
	return words
}

// skipLineEnd consumes a newline. The EOF also ends a line but remains unconsumed.
func (p *parser) skipLineEnd(synErr *SyntaxError) {
	if p.consume(tokenKindNewline) {
		return
	}
	if p.peek().kind == tokenKindEOF {
		return
	}
	p.raiseUnexpected(synErr)
}

func (p *parser) skipNewlines() {
	for p.consume(tokenKindNewline) {
	}
}

func (p *parser) raiseUnexpected(synErr *SyntaxError) {
	tok := p.peek()
	switch tok.kind {
	case tokenKindEOF:
		raiseSyntaxError(tok.pos, synErrUnexpectedEOF)
	case tokenKindItem:
		raiseSyntaxErrorWithDetail(tok.pos, synErr, tok.text)
	case tokenKindArrow:
		raiseSyntaxErrorWithDetail(tok.pos, synErr, "->")
	}
	raiseSyntaxError(tok.pos, synErr)
}

func (p *parser) peek() *token {
	if p.peekedTok == nil {
		tok, err := p.lex.next()
		if err != nil {
			panic(&verr.SpecError{
				Cause: err,
			})
		}
		p.peekedTok = tok
	}
	return p.peekedTok
}

func (p *parser) consume(expected tokenKind) bool {
	tok := p.peek()
	if tok.kind == tokenKindInvalid {
		raiseSyntaxErrorWithDetail(tok.pos, synErrInvalidToken, tok.text)
	}
	if tok.kind != expected {
		return false
	}
	p.peekedTok = nil
	p.lastTok = tok
	return true
}
