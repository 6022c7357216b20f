package grammar

import "fmt"

type productionKey string

func genProductionKey(lhs Symbol, rhs []Symbol) productionKey {
	seq := make([]byte, 0, len(rhs)+1)
	seq = append(seq, byte(lhs))
	for _, sym := range rhs {
		seq = append(seq, byte(sym))
	}
	return productionKey(seq)
}

type production struct {
	key    productionKey
	lhs    Symbol
	rhs    []Symbol
	rhsLen int
}

func newProduction(lhs Symbol, rhs []Symbol) (*production, error) {
	if !lhs.IsNonTerminal() {
		return nil, fmt.Errorf("LHS must be a non-terminal symbol; LHS: %v, RHS: %v", lhs, sententialForm(rhs))
	}
	if len(rhs) == 0 {
		return nil, fmt.Errorf("RHS must contain at least one symbol; LHS: %v", lhs)
	}
	for _, sym := range rhs {
		if !sym.IsTerminal() && !sym.IsNonTerminal() {
			return nil, fmt.Errorf("a symbol of RHS must be a terminal or a non-terminal symbol; LHS: %v, RHS: %v", lhs, sententialForm(rhs))
		}
	}

	return &production{
		key:    genProductionKey(lhs, rhs),
		lhs:    lhs,
		rhs:    rhs,
		rhsLen: len(rhs),
	}, nil
}

// productionSet keeps productions in the order they were appended, both
// across LHSes and among the alternatives of one LHS. Both search algorithms
// iterate productions in this order, which makes their output reproducible.
type productionSet struct {
	lhs2Prods map[Symbol][]*production
	key2Prod  map[productionKey]*production
	lhses     []Symbol
}

func newProductionSet() *productionSet {
	return &productionSet{
		lhs2Prods: map[Symbol][]*production{},
		key2Prod:  map[productionKey]*production{},
	}
}

func (ps *productionSet) append(prod *production) bool {
	if _, ok := ps.key2Prod[prod.key]; ok {
		return false
	}

	if prods, ok := ps.lhs2Prods[prod.lhs]; ok {
		ps.lhs2Prods[prod.lhs] = append(prods, prod)
	} else {
		ps.lhs2Prods[prod.lhs] = []*production{prod}
		ps.lhses = append(ps.lhses, prod.lhs)
	}
	ps.key2Prod[prod.key] = prod

	return true
}

func (ps *productionSet) findByLHS(lhs Symbol) ([]*production, bool) {
	prods, ok := ps.lhs2Prods[lhs]
	return prods, ok
}

// lhsSymbols lists the LHS symbols in first-appearance order.
func (ps *productionSet) lhsSymbols() []Symbol {
	return ps.lhses
}
