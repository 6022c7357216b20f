package spec

import (
	"io"
	"strings"

	verr "github.com/JIMMY62m24/grammar-processor-midterm/error"
)

type RootNode struct {
	Productions []*ProductionNode
}

type ProductionNode struct {
	LHS string
	RHS []*AlternativeNode
	Pos Position
}

type AlternativeNode struct {
	Symbols []string
}

// Parse reads a grammar definition and returns its AST. Each non-blank line
// has the form `LHS -> RHS | RHS | ...`, where the LHS is a single upper case
// letter and each RHS is a sequence of letters. The order of productions and
// alternatives is preserved.
func Parse(src io.Reader) (*RootNode, error) {
	text, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	p, err := newParser(string(text))
	if err != nil {
		return nil, err
	}
	root, err := p.parse()
	if err != nil {
		return nil, err
	}
	return root, nil
}

type parser struct {
	lex       *lexer
	lines     []string
	peekedTok *token
	lastTok   *token
}

func newParser(text string) (*parser, error) {
	lex, err := newLexer(strings.NewReader(text))
	if err != nil {
		return nil, err
	}
	return &parser{
		lex:   lex,
		lines: strings.Split(text, "\n"),
	}, nil
}

func (p *parser) parse() (root *RootNode, retErr error) {
	defer func() {
		v := recover()
		if v != nil {
			err, ok := v.(error)
			if !ok {
				panic(v)
			}
			retErr = err
			return
		}
	}()
	return p.parseRoot(), nil
}

func (p *parser) parseRoot() *RootNode {
	var prods []*ProductionNode
	for {
		prod := p.parseProduction()
		if prod == nil {
			break
		}
		prods = append(prods, prod)
	}
	if len(prods) == 0 {
		p.raiseSyntaxError(0, synErrNoProduction)
	}
	return &RootNode{
		Productions: prods,
	}
}

func (p *parser) parseProduction() *ProductionNode {
	for p.consume(tokenKindNewline) {
	}
	if p.consume(tokenKindEOF) {
		return nil
	}
	if !p.consume(tokenKindNonTerminal) {
		if p.peekKind() == tokenKindInvalid {
			p.raiseSyntaxErrorAt(synErrInvalidSymbol)
		}
		p.raiseSyntaxErrorAt(synErrNoLHS)
	}
	lhs := p.lastTok.text
	pos := p.lastTok.pos
	if !p.consume(tokenKindArrow) {
		p.raiseSyntaxError(pos.Row, synErrNoArrow)
	}
	alt := p.parseAlternative()
	rhs := []*AlternativeNode{alt}
	for {
		if !p.consume(tokenKindOr) {
			break
		}
		alt := p.parseAlternative()
		rhs = append(rhs, alt)
	}
	if !p.consume(tokenKindNewline) && !p.consume(tokenKindEOF) {
		if p.peekKind() == tokenKindInvalid {
			p.raiseSyntaxErrorAt(synErrInvalidSymbol)
		}
		p.raiseSyntaxError(pos.Row, synErrProdNoNewline)
	}
	return &ProductionNode{
		LHS: lhs,
		RHS: rhs,
		Pos: pos,
	}
}

func (p *parser) parseAlternative() *AlternativeNode {
	var syms []string
	for {
		if p.consume(tokenKindTerminal) || p.consume(tokenKindNonTerminal) {
			syms = append(syms, p.lastTok.text)
			continue
		}
		break
	}
	if len(syms) == 0 {
		if p.peekKind() == tokenKindInvalid {
			p.raiseSyntaxErrorAt(synErrInvalidSymbol)
		}
		p.raiseSyntaxErrorAt(synErrEmptyAlternative)
	}
	return &AlternativeNode{
		Symbols: syms,
	}
}

func (p *parser) consume(expected tokenKind) bool {
	var tok *token
	var err error
	if p.peekedTok != nil {
		tok = p.peekedTok
		p.peekedTok = nil
	} else {
		tok, err = p.lex.next()
		if err != nil {
			panic(err)
		}
	}
	p.lastTok = tok
	if tok.kind == expected {
		return true
	}
	p.peekedTok = tok
	p.lastTok = nil

	return false
}

func (p *parser) peekKind() tokenKind {
	if p.peekedTok == nil {
		return tokenKindEOF
	}
	return p.peekedTok.kind
}

func (p *parser) raiseSyntaxErrorAt(synErr *SyntaxError) {
	row := 0
	if p.peekedTok != nil {
		row = p.peekedTok.pos.Row
	}
	p.raiseSyntaxError(row, synErr)
}

func (p *parser) raiseSyntaxError(row int, synErr *SyntaxError) {
	line := ""
	if row >= 1 && row <= len(p.lines) {
		line = strings.TrimRight(p.lines[row-1], "\r")
	}
	panic(&verr.SpecError{
		Cause: synErr,
		Row:   row,
		Line:  line,
	})
}
