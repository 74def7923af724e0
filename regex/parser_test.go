package regex

import (
	"errors"
	"strings"
	"testing"
)

func postfixString(tokens []Token, alpha Alphabet) string {
	var b strings.Builder
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenKindSymbol:
			b.WriteRune(alpha[tok.Sym])
		case TokenKindConcat:
			b.WriteRune('·')
		default:
			b.WriteString(string(tok.Kind))
		}
	}
	return b.String()
}

func TestParse(t *testing.T) {
	tests := []struct {
		caption string
		pattern string
		alpha   string
		postfix string
	}{
		{
			caption: "a single literal is already postfix",
			pattern: "a",
			alpha:   "ab",
			postfix: "a",
		},
		{
			caption: "juxtaposed literals get an explicit concatenation",
			pattern: "ab",
			alpha:   "ab",
			postfix: "ab·",
		},
		{
			caption: "union binds loosest",
			pattern: "a|b",
			alpha:   "ab",
			postfix: "ab|",
		},
		{
			caption: "concatenation binds tighter than union",
			pattern: "ab|ba",
			alpha:   "ab",
			postfix: "ab·ba·|",
		},
		{
			caption: "a group bounds the union",
			pattern: "a(a|b)*a",
			alpha:   "ab",
			postfix: "aab|*·a·",
		},
		{
			caption: "anchors are stripped",
			pattern: "^a(a|b)*a$",
			alpha:   "ab",
			postfix: "aab|*·a·",
		},
		{
			caption: "a non-capturing group is a plain group",
			pattern: "(?:a|b)b",
			alpha:   "ab",
			postfix: "ab|b·",
		},
		{
			caption: "whitespace is formatting, not syntax",
			pattern: "a b\tb",
			alpha:   "ab",
			postfix: "ab·b·",
		},
		{
			caption: "stacked unary operators apply left to right",
			pattern: "a*?",
			alpha:   "ab",
			postfix: "a*?",
		},
		{
			caption: "unary operators bind tighter than concatenation",
			pattern: "ab+",
			alpha:   "ab",
			postfix: "ab+·",
		},
		{
			caption: "the alphabet is a parameter, not a constant",
			pattern: "0?1",
			alpha:   "01",
			postfix: "0?1·",
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			alpha, err := NewAlphabet(tt.alpha)
			if err != nil {
				t.Fatal(err)
			}
			tokens, err := Parse(tt.pattern, alpha)
			if err != nil {
				t.Fatal(err)
			}
			postfix := postfixString(tokens, alpha)
			if postfix != tt.postfix {
				t.Fatalf("unexpected postfix: want: %v, got: %v", tt.postfix, postfix)
			}
		})
	}
}

func TestParse_SyntaxErrors(t *testing.T) {
	tests := []struct {
		caption string
		pattern string
		cause   error
		detail  string
	}{
		{
			caption: "an unclosed group is rejected",
			pattern: "(a|",
			cause:   synErrMismatchedParen,
		},
		{
			caption: "a stray closing parenthesis is rejected",
			pattern: "a)",
			cause:   synErrMismatchedParen,
		},
		{
			caption: "a literal outside the alphabet names the offender",
			pattern: "acb",
			cause:   synErrAlphabetViolation,
			detail:  "c",
		},
		{
			caption: "a non-letter outside the grammar is unsupported",
			pattern: "a-b",
			cause:   synErrUnsupportedToken,
			detail:  "-",
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			alpha, err := NewAlphabet("ab")
			if err != nil {
				t.Fatal(err)
			}
			_, err = Parse(tt.pattern, alpha)
			if err == nil {
				t.Fatal("an error is expected")
			}
			if !errors.Is(err, tt.cause) {
				t.Fatalf("unexpected cause: want: %v, got: %v", tt.cause, err)
			}
			if tt.detail != "" && !strings.Contains(err.Error(), tt.detail) {
				t.Fatalf("the error must name the offender %q: got: %v", tt.detail, err)
			}
		})
	}
}

func TestNewAlphabet(t *testing.T) {
	if _, err := NewAlphabet("ab"); err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"", "a", "abc", "aa"} {
		if _, err := NewAlphabet(s); err == nil {
			t.Fatalf("an error is expected for %q", s)
		}
	}
}
