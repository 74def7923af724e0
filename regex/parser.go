package regex

import (
	"strings"
	"unicode"
)

// Parse converts a regex over alpha into a flat postfix token sequence ready
// for automaton construction. The pattern may be anchored with ^/$ and may
// use non-capturing groups (?:...); both are normalized away because all
// matching is whole-string and captures are never needed.
func Parse(pattern string, alpha Alphabet) ([]Token, error) {
	body, err := sanitize(pattern, alpha)
	if err != nil {
		return nil, err
	}
	tokens, err := tokenize(body, alpha)
	if err != nil {
		return nil, err
	}
	return toPostfix(tokens)
}

// sanitize strips anchors, rewrites non-capturing groups to plain groups,
// removes whitespace, and verifies that every letter belongs to the alphabet.
func sanitize(pattern string, alpha Alphabet) (string, error) {
	body := strings.TrimPrefix(pattern, "^")
	body = strings.TrimSuffix(body, "$")
	body = strings.ReplaceAll(body, "(?:", "(")

	var b strings.Builder
	for _, c := range body {
		if unicode.IsSpace(c) {
			continue
		}
		b.WriteRune(c)
	}
	body = b.String()

	var offending []rune
	seen := map[rune]struct{}{}
	for _, c := range body {
		if !unicode.IsLetter(c) || alpha.Contains(c) {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		offending = append(offending, c)
	}
	if len(offending) > 0 {
		return "", &ParseError{
			Cause:  synErrAlphabetViolation,
			Detail: "literals " + string(offending) + " are outside the alphabet " + alpha.String(),
		}
	}

	return body, nil
}

// tokenize scans the sanitized body left to right and inserts an explicit
// concatenation token wherever two value-producing tokens are juxtaposed.
func tokenize(body string, alpha Alphabet) ([]Token, error) {
	var raw []Token
	for _, c := range body {
		if sym, ok := alpha.Index(c); ok {
			raw = append(raw, newSymbolToken(sym))
			continue
		}
		switch c {
		case '|':
			raw = append(raw, newOperatorToken(TokenKindUnion))
		case '*':
			raw = append(raw, newOperatorToken(TokenKindStar))
		case '+':
			raw = append(raw, newOperatorToken(TokenKindPlus))
		case '?':
			raw = append(raw, newOperatorToken(TokenKindOption))
		case '(':
			raw = append(raw, newOperatorToken(TokenKindGroupOpen))
		case ')':
			raw = append(raw, newOperatorToken(TokenKindGroupClose))
		default:
			return nil, &ParseError{
				Cause:  synErrUnsupportedToken,
				Detail: string(c),
			}
		}
	}

	var tokens []Token
	for i, tok := range raw {
		if i > 0 && needsConcat(raw[i-1], tok) {
			tokens = append(tokens, newOperatorToken(TokenKindConcat))
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// needsConcat reports whether an implicit concatenation sits between left
// and right: left must produce a value (a literal, a closed group, or a
// unary operator applied to one) and right must begin one (a literal or an
// open group).
func needsConcat(left, right Token) bool {
	switch left.Kind {
	case TokenKindSymbol, TokenKindGroupClose, TokenKindStar, TokenKindPlus, TokenKindOption:
	default:
		return false
	}
	switch right.Kind {
	case TokenKindSymbol, TokenKindGroupOpen:
		return true
	}
	return false
}

// toPostfix runs the Shunting-Yard conversion. Unary postfix operators are
// flushed against each other immediately so they apply left to right;
// binary operators pop while the stack top binds at least as tightly.
func toPostfix(tokens []Token) ([]Token, error) {
	var out []Token
	var stack []Token

	top := func() Token {
		return stack[len(stack)-1]
	}
	pop := func() Token {
		tok := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return tok
	}

	for _, tok := range tokens {
		switch {
		case tok.Kind == TokenKindSymbol:
			out = append(out, tok)
		case isUnary(tok.Kind):
			for len(stack) > 0 && isUnary(top().Kind) && precedence(top().Kind) >= precedence(tok.Kind) {
				out = append(out, pop())
			}
			stack = append(stack, tok)
		case isBinary(tok.Kind):
			for len(stack) > 0 && top().Kind != TokenKindGroupOpen && precedence(top().Kind) >= precedence(tok.Kind) {
				out = append(out, pop())
			}
			stack = append(stack, tok)
		case tok.Kind == TokenKindGroupOpen:
			stack = append(stack, tok)
		case tok.Kind == TokenKindGroupClose:
			for len(stack) > 0 && top().Kind != TokenKindGroupOpen {
				out = append(out, pop())
			}
			if len(stack) == 0 {
				return nil, &ParseError{
					Cause:  synErrMismatchedParen,
					Detail: "unmatched )",
				}
			}
			pop()
		}
	}

	for len(stack) > 0 {
		tok := pop()
		if tok.Kind == TokenKindGroupOpen || tok.Kind == TokenKindGroupClose {
			return nil, &ParseError{
				Cause:  synErrMismatchedParen,
				Detail: "unmatched " + string(tok.Kind),
			}
		}
		out = append(out, tok)
	}

	return out, nil
}
