package grammar

import (
	"context"
	"fmt"
)

// Generate enumerates words the grammar derives from its start symbol. It
// returns at most maxCount distinct words, each at most maxLength characters
// long, in the order a breadth-first search over sentential forms first
// reaches them: shorter derivations first, then declaration order of the
// productions. Identical inputs always yield the identical sequence.
//
// A grammar whose derivations never reach a terminal-only form within the
// bounds yields an empty sequence; that is a valid result, not an error.
//
// The visited set can grow to the number of distinct sentential forms that
// fit within maxLength, which is large for highly ambiguous grammars. The
// context is checked once per queue pop, so a caller can bound the search by
// a deadline as well.
func Generate(ctx context.Context, g *Grammar, maxLength, maxCount int) ([]string, error) {
	if maxLength <= 0 {
		return nil, fmt.Errorf("the maximum word length must be greater than or equal to 1; passed: %v", maxLength)
	}
	if maxCount <= 0 {
		return nil, fmt.Errorf("the maximum word count must be greater than or equal to 1; passed: %v", maxCount)
	}

	start := sententialForm{g.startSymbol}
	queue := []sententialForm{start}
	visited := map[string]struct{}{
		start.String(): {},
	}
	recorded := map[string]struct{}{}
	var words []string
	for len(queue) > 0 && len(words) < maxCount {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		form := queue[0]
		queue = queue[1:]

		if form.isTerminalOnly() {
			word := form.String()
			if _, ok := recorded[word]; !ok {
				recorded[word] = struct{}{}
				words = append(words, word)
			}
			continue
		}

		i, _ := form.leftmostNonTerminal()
		prods, ok := g.prods.findByLHS(form[i])
		if !ok {
			// A non-terminal without productions; this branch of the search
			// can never complete.
			continue
		}
		for _, prod := range prods {
			next := form.substitute(i, prod.rhs)
			// The notation has no epsilon productions, so a form never
			// shrinks; anything past maxLength can be dropped for good.
			if len(next) > maxLength {
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
	return words, nil
}
