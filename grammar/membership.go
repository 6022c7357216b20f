package grammar

import "context"

// IsMember reports whether word is derivable from the grammar's start symbol.
// A word containing a character outside the grammar's terminal set is a
// non-member without any search; so is the empty word, since the rule
// notation cannot express an epsilon production. "Not a member" is a valid
// result, not an error.
//
// The search is the same breadth-first expansion Generate performs, bounded
// by the length of word: no sentential form may grow past len(word) symbols,
// and a form whose leading terminal run disagrees with the corresponding
// prefix of word is discarded. The context is checked once per queue pop.
func IsMember(ctx context.Context, g *Grammar, word string) (bool, error) {
	for i := 0; i < len(word); i++ {
		if !g.isTerminalOfGrammar(Symbol(word[i])) {
			return false, nil
		}
	}
	if len(word) == 0 {
		return false, nil
	}

	start := sententialForm{g.startSymbol}
	queue := []sententialForm{start}
	visited := map[string]struct{}{
		start.String(): {},
	}
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		form := queue[0]
		queue = queue[1:]

		if form.isTerminalOnly() {
			if form.String() == word {
				return true, nil
			}
			continue
		}

		i, _ := form.leftmostNonTerminal()
		prods, ok := g.prods.findByLHS(form[i])
		if !ok {
			continue
		}
		for _, prod := range prods {
			next := form.substitute(i, prod.rhs)
			if len(next) > len(word) {
				continue
			}
			if !agreesWithPrefix(next, word) {
				continue
			}
			key := next.String()
			if _, ok := visited[key]; ok {
				continue
			}
			visited[key] = struct{}{}
			queue = append(queue, next)
		}
	}
	return false, nil
}

// agreesWithPrefix reports whether the leading terminal run of form matches
// the corresponding prefix of word. Terminals placed left of the leftmost
// non-terminal never change again, so a mismatch there rules the whole
// subtree out.
func agreesWithPrefix(form sententialForm, word string) bool {
	for i, sym := range form {
		if !sym.IsTerminal() {
			return true
		}
		if byte(sym) != word[i] {
			return false
		}
	}
	return true
}
