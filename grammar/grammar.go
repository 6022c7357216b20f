package grammar

import (
	"fmt"
	"sort"

	"github.com/JIMMY62m24/grammar-processor-midterm/spec"
)

// Grammar is the semantic model of a parsed grammar definition. It is built
// once and read-only afterward; the search algorithms share a Grammar value
// freely.
type Grammar struct {
	prods        *productionSet
	startSymbol  Symbol
	terminals    []Symbol
	nonTerminals []Symbol
}

type GrammarOption func(config *grammarConfig)

type grammarConfig struct {
	startSymbol Symbol
}

// StartSymbol overrides the default choice of start symbol, which is the LHS
// of the first production in the definition.
func StartSymbol(sym Symbol) GrammarOption {
	return func(config *grammarConfig) {
		config.startSymbol = sym
	}
}

// NewGrammar builds a Grammar from the AST the spec package produces.
// Duplicate alternatives of one LHS are dropped. A non-terminal that appears
// on an RHS but never as an LHS is legal; derivations through it simply never
// complete.
func NewGrammar(root *spec.RootNode, opts ...GrammarOption) (*Grammar, error) {
	config := &grammarConfig{}
	for _, opt := range opts {
		opt(config)
	}

	prods := newProductionSet()
	termSet := map[Symbol]struct{}{}
	nonTermSet := map[Symbol]struct{}{}
	var startSym Symbol
	for _, prodNode := range root.Productions {
		lhs, err := symbolFromText(prodNode.LHS)
		if err != nil {
			return nil, err
		}
		if startSym == 0 {
			startSym = lhs
		}
		nonTermSet[lhs] = struct{}{}
		for _, altNode := range prodNode.RHS {
			rhs := make([]Symbol, len(altNode.Symbols))
			for i, symText := range altNode.Symbols {
				sym, err := symbolFromText(symText)
				if err != nil {
					return nil, err
				}
				if sym.IsNonTerminal() {
					nonTermSet[sym] = struct{}{}
				} else {
					termSet[sym] = struct{}{}
				}
				rhs[i] = sym
			}
			prod, err := newProduction(lhs, rhs)
			if err != nil {
				return nil, err
			}
			prods.append(prod)
		}
	}
	if len(prods.lhsSymbols()) == 0 {
		return nil, fmt.Errorf("a grammar must have at least one production")
	}

	if config.startSymbol != 0 {
		if !config.startSymbol.IsNonTerminal() {
			return nil, fmt.Errorf("a start symbol must be a non-terminal symbol; passed: %v", config.startSymbol)
		}
		startSym = config.startSymbol
	}

	return &Grammar{
		prods:        prods,
		startSymbol:  startSym,
		terminals:    sortedSymbols(termSet),
		nonTerminals: sortedSymbols(nonTermSet),
	}, nil
}

func symbolFromText(text string) (Symbol, error) {
	if len(text) != 1 {
		return 0, fmt.Errorf("a symbol must be a single letter; passed: %#v", text)
	}
	sym := Symbol(text[0])
	if !sym.IsTerminal() && !sym.IsNonTerminal() {
		return 0, fmt.Errorf("a symbol must be a letter; passed: %#v", text)
	}
	return sym, nil
}

func sortedSymbols(set map[Symbol]struct{}) []Symbol {
	syms := make([]Symbol, 0, len(set))
	for sym := range set {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool {
		return syms[i] < syms[j]
	})
	return syms
}

func (g *Grammar) StartSymbol() Symbol {
	return g.startSymbol
}

// Terminals lists the terminal symbols of the grammar in lexical order.
func (g *Grammar) Terminals() []Symbol {
	return copySymbols(g.terminals)
}

// NonTerminals lists the non-terminal symbols of the grammar in lexical
// order. The list covers LHSes and every non-terminal referenced on an RHS.
func (g *Grammar) NonTerminals() []Symbol {
	return copySymbols(g.nonTerminals)
}

func (g *Grammar) isTerminalOfGrammar(sym Symbol) bool {
	for _, t := range g.terminals {
		if t == sym {
			return true
		}
	}
	return false
}

func copySymbols(syms []Symbol) []Symbol {
	c := make([]Symbol, len(syms))
	copy(c, syms)
	return c
}

// Production is a read-only view of one alternative, used for display.
type Production struct {
	LHS Symbol
	RHS []Symbol
}

// Productions lists all productions in definition order: LHSes in
// first-appearance order, and the alternatives of each LHS in declaration
// order.
func (g *Grammar) Productions() []Production {
	var prods []Production
	for _, lhs := range g.prods.lhsSymbols() {
		alts, _ := g.prods.findByLHS(lhs)
		for _, alt := range alts {
			prods = append(prods, Production{
				LHS: alt.lhs,
				RHS: copySymbols(alt.rhs),
			})
		}
	}
	return prods
}
