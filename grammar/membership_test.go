package grammar

import (
	"context"
	"testing"
)

func TestIsMember(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		word    string
		member  bool
	}{
		{
			caption: "a derivable word is a member",
			src:     balancedSrc,
			word:    "ab",
			member:  true,
		},
		{
			caption: "the mirrored word is derivable as well",
			src:     balancedSrc,
			word:    "ba",
			member:  true,
		},
		{
			caption: "a longer derivable word is a member",
			src:     balancedSrc,
			word:    "aabb",
			member:  true,
		},
		{
			caption: "an underivable word over the right alphabet is a non-member",
			src:     balancedSrc,
			word:    "a",
			member:  false,
		},
		{
			caption: "a word containing characters outside the terminal set is a non-member",
			src:     balancedSrc,
			word:    "xyz",
			member:  false,
		},
		{
			caption: "a valid lower case letter the grammar does not use is still a non-member",
			src:     balancedSrc,
			word:    "abc",
			member:  false,
		},
		{
			caption: "the empty word is a non-member because epsilon productions do not exist",
			src:     balancedSrc,
			word:    "",
			member:  false,
		},
		{
			caption: "a single-character word is matched against single-terminal derivations",
			src:     "S -> a | aS\n",
			word:    "a",
			member:  true,
		},
		{
			caption: "membership search stays within the length of the word",
			src:     "S -> aS | b\n",
			word:    "aaab",
			member:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			g := genGrammar(t, tt.src)
			member, err := IsMember(context.Background(), g, tt.word)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if member != tt.member {
				t.Fatalf("unexpected result; want: %v, got: %v", tt.member, member)
			}
		})
	}
}

// Every generated word must be accepted by the membership test.
func TestIsMember_acceptsGeneratedWords(t *testing.T) {
	g := genGrammar(t, balancedSrc)
	words, err := Generate(context.Background(), g, 6, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(words) == 0 {
		t.Fatalf("the grammar must generate at least one word")
	}
	for _, w := range words {
		member, err := IsMember(context.Background(), g, w)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !member {
			t.Fatalf("a generated word must be a member; word: %#v", w)
		}
	}
}

// Conversely, every member within the length bound must eventually be
// generated.
func TestGenerate_reachesAllMembersWithinBounds(t *testing.T) {
	g := genGrammar(t, "S -> aS | b\n")
	words, err := Generate(context.Background(), g, 5, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []string{"b", "ab", "aab", "aaab", "aaaab"}
	if len(words) != len(expected) {
		t.Fatalf("unexpected words; want: %v, got: %v", expected, words)
	}
	for i, w := range expected {
		if words[i] != w {
			t.Fatalf("unexpected words; want: %v, got: %v", expected, words)
		}
	}
}

func TestIsMember_pure(t *testing.T) {
	g := genGrammar(t, balancedSrc)
	for i := 0; i < 3; i++ {
		member, err := IsMember(context.Background(), g, "abab")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !member {
			t.Fatalf("identical inputs must yield identical results")
		}
	}
}

func TestIsMember_canceled(t *testing.T) {
	g := genGrammar(t, balancedSrc)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := IsMember(ctx, g, "abab"); err == nil {
		t.Fatalf("an error must occur when the context was canceled")
	}
}
