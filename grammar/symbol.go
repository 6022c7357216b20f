package grammar

// Symbol is an atomic grammar element. A lower case letter is a terminal
// symbol and an upper case letter is a non-terminal symbol; the two classes
// are disjoint and cover the whole alphabet a grammar may use.
type Symbol byte

func (s Symbol) IsTerminal() bool {
	return s >= 'a' && s <= 'z'
}

func (s Symbol) IsNonTerminal() bool {
	return s >= 'A' && s <= 'Z'
}

func (s Symbol) String() string {
	return string(byte(s))
}

// sententialForm is an ordered mix of terminals and non-terminals reachable
// from the start symbol by zero or more expansions.
type sententialForm []Symbol

func (f sententialForm) String() string {
	b := make([]byte, len(f))
	for i, sym := range f {
		b[i] = byte(sym)
	}
	return string(b)
}

func (f sententialForm) isTerminalOnly() bool {
	for _, sym := range f {
		if !sym.IsTerminal() {
			return false
		}
	}
	return true
}

// leftmostNonTerminal returns the position of the leftmost non-terminal
// symbol, or false when the form consists of terminals only.
func (f sententialForm) leftmostNonTerminal() (int, bool) {
	for i, sym := range f {
		if sym.IsNonTerminal() {
			return i, true
		}
	}
	return 0, false
}

// substitute returns a new form with the symbol at position i replaced by rhs.
// The receiver is left untouched.
func (f sententialForm) substitute(i int, rhs []Symbol) sententialForm {
	next := make(sententialForm, 0, len(f)-1+len(rhs))
	next = append(next, f[:i]...)
	next = append(next, rhs...)
	next = append(next, f[i+1:]...)
	return next
}
