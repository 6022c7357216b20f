package spec

import (
	"fmt"
	"io"
	"sync"

	mlcompiler "github.com/nihei9/maleeni/compiler"
	mldriver "github.com/nihei9/maleeni/driver"
	mlspec "github.com/nihei9/maleeni/spec"
)

type tokenKind string

const (
	tokenKindNonTerminal = tokenKind("non-terminal")
	tokenKindTerminal    = tokenKind("terminal")
	tokenKindArrow       = tokenKind("->")
	tokenKindOr          = tokenKind("|")
	tokenKindNewline     = tokenKind("newline")
	tokenKindEOF         = tokenKind("eof")
	tokenKindInvalid     = tokenKind("invalid")
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

func newSymbolToken(kind tokenKind, pos Position) *token {
	return &token{
		kind: kind,
		pos:  pos,
	}
}

func newLetterToken(kind tokenKind, text string, pos Position) *token {
	return &token{
		kind: kind,
		text: text,
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

func newEOFToken() *token {
	return &token{
		kind: tokenKindEOF,
	}
}

// lexSpec describes the lexical elements of the rule notation. Symbols are
// single letters, so the lexer needs no identifier rule; every other token is
// punctuation.
var lexSpec = &mlspec.LexSpec{
	Name: "grammar",
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
			Pattern: mlspec.LexPattern(`->`),
		},
		{
			Kind:    mlspec.LexKindName("or"),
			Pattern: mlspec.LexPattern(`\|`),
		},
		{
			Kind:    mlspec.LexKindName("non_terminal"),
			Pattern: mlspec.LexPattern(`[A-Z]`),
		},
		{
			Kind:    mlspec.LexKindName("terminal"),
			Pattern: mlspec.LexPattern(`[a-z]`),
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSpec   *mlspec.CompiledLexSpec
	compileSpecErr error
)

func compiledLexSpec() (*mlspec.CompiledLexSpec, error) {
	compileOnce.Do(func() {
		clspec, err, cErrs := mlcompiler.Compile(lexSpec, mlcompiler.CompressionLevel(mlcompiler.CompressionLevelMax))
		if err != nil {
			if len(cErrs) > 0 {
				compileSpecErr = fmt.Errorf("invalid lexical specification: %v: %v", cErrs[0].Kind, cErrs[0].Cause)
				return
			}
			compileSpecErr = err
			return
		}
		compiledSpec = clspec
	})
	return compiledSpec, compileSpecErr
}

type lexer struct {
	clspec     *mlspec.CompiledLexSpec
	d          *mldriver.Lexer
	reachedEOF bool
}

func newLexer(src io.Reader) (*lexer, error) {
	clspec, err := compiledLexSpec()
	if err != nil {
		return nil, err
	}
	d, err := mldriver.NewLexer(mldriver.NewLexSpec(clspec), src)
	if err != nil {
		return nil, err
	}
	return &lexer{
		clspec: clspec,
		d:      d,
	}, nil
}

func (l *lexer) next() (*token, error) {
	if l.reachedEOF {
		return newEOFToken(), nil
	}
	for {
		tok, err := l.d.Next()
		if err != nil {
			return nil, err
		}
		if tok.Invalid {
			return newInvalidToken(string(tok.Lexeme), newPosition(tok.Row+1, tok.Col+1)), nil
		}
		if tok.EOF {
			l.reachedEOF = true
			return newEOFToken(), nil
		}
		pos := newPosition(tok.Row+1, tok.Col+1)
		switch l.clspec.KindNames[tok.KindID] {
		case "white_space":
			continue
		case "newline":
			return newSymbolToken(tokenKindNewline, pos), nil
		case "arrow":
			return newSymbolToken(tokenKindArrow, pos), nil
		case "or":
			return newSymbolToken(tokenKindOr, pos), nil
		case "non_terminal":
			return newLetterToken(tokenKindNonTerminal, string(tok.Lexeme), pos), nil
		case "terminal":
			return newLetterToken(tokenKindTerminal, string(tok.Lexeme), pos), nil
		default:
			return nil, fmt.Errorf("unknown lexical kind: %v", l.clspec.KindNames[tok.KindID])
		}
	}
}
