package grammar

import (
	"io"
	"strings"
	"text/template"
)

// Description is a display-oriented view of a grammar, consumed by the CLI.
type Description struct {
	Productions  []string
	StartSymbol  string
	Terminals    string
	NonTerminals string
}

func DescribeGrammar(g *Grammar) *Description {
	var prods []string
	for _, lhs := range g.prods.lhsSymbols() {
		alts, _ := g.prods.findByLHS(lhs)
		rhses := make([]string, len(alts))
		for i, alt := range alts {
			rhses[i] = sententialForm(alt.rhs).String()
		}
		prods = append(prods, lhs.String()+" -> "+strings.Join(rhses, " | "))
	}
	return &Description{
		Productions:  prods,
		StartSymbol:  g.startSymbol.String(),
		Terminals:    describeSymbolSet(g.terminals),
		NonTerminals: describeSymbolSet(g.nonTerminals),
	}
}

func describeSymbolSet(syms []Symbol) string {
	texts := make([]string, len(syms))
	for i, sym := range syms {
		texts[i] = sym.String()
	}
	return "{" + strings.Join(texts, ", ") + "}"
}

const descriptionTemplate = `# Productions

{{ range .Productions -}}
{{ . }}
{{ end }}
# Start Symbol

{{ .StartSymbol }}

# Terminals

{{ .Terminals }}

# Non-Terminals

{{ .NonTerminals }}
`

func WriteDescription(w io.Writer, d *Description) error {
	tmpl, err := template.New("description").Parse(descriptionTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, d)
}
