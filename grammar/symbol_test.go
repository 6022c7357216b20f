package grammar

import "testing"

func TestSymbol(t *testing.T) {
	tests := []struct {
		sym           Symbol
		isTerminal    bool
		isNonTerminal bool
	}{
		{sym: Symbol('a'), isTerminal: true},
		{sym: Symbol('z'), isTerminal: true},
		{sym: Symbol('A'), isNonTerminal: true},
		{sym: Symbol('Z'), isNonTerminal: true},
		{sym: Symbol('1')},
		{sym: Symbol('-')},
	}
	for _, tt := range tests {
		if v := tt.sym.IsTerminal(); v != tt.isTerminal {
			t.Fatalf("unexpected IsTerminal for %v; want: %v, got: %v", tt.sym, tt.isTerminal, v)
		}
		if v := tt.sym.IsNonTerminal(); v != tt.isNonTerminal {
			t.Fatalf("unexpected IsNonTerminal for %v; want: %v, got: %v", tt.sym, tt.isNonTerminal, v)
		}
	}
}

func TestSententialForm_substitute(t *testing.T) {
	form := sententialForm{'a', 'S', 'b'}
	next := form.substitute(1, []Symbol{'a', 'B', 'B'})
	if next.String() != "aaBBb" {
		t.Fatalf("unexpected form; want: %v, got: %v", "aaBBb", next.String())
	}
	if form.String() != "aSb" {
		t.Fatalf("the receiver must be left untouched; got: %v", form.String())
	}
}

func TestSententialForm_leftmostNonTerminal(t *testing.T) {
	tests := []struct {
		form  string
		pos   int
		found bool
	}{
		{form: "S", pos: 0, found: true},
		{form: "abA", pos: 2, found: true},
		{form: "aBbA", pos: 1, found: true},
		{form: "ab", found: false},
	}
	for _, tt := range tests {
		form := sententialForm(tt.form)
		pos, found := form.leftmostNonTerminal()
		if found != tt.found || (found && pos != tt.pos) {
			t.Fatalf("unexpected result for %v; want: %v %v, got: %v %v", tt.form, tt.pos, tt.found, pos, found)
		}
	}
}
