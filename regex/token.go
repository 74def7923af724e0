package regex

type TokenKind string

const (
	TokenKindSymbol     = TokenKind("symbol")
	TokenKindUnion      = TokenKind("|")
	TokenKindConcat     = TokenKind("concat")
	TokenKindStar       = TokenKind("*")
	TokenKindPlus       = TokenKind("+")
	TokenKindOption     = TokenKind("?")
	TokenKindGroupOpen  = TokenKind("(")
	TokenKindGroupClose = TokenKind(")")
)

// A Token is one element of a tokenized or postfix regex. Sym is the
// alphabet index of the literal and is meaningful only for TokenKindSymbol.
type Token struct {
	Kind TokenKind
	Sym  int
}

func newSymbolToken(sym int) Token {
	return Token{
		Kind: TokenKindSymbol,
		Sym:  sym,
	}
}

func newOperatorToken(kind TokenKind) Token {
	return Token{
		Kind: kind,
	}
}

// Operator precedence. Unary postfix operators bind tightest, concatenation
// next, union loosest.
func precedence(kind TokenKind) int {
	switch kind {
	case TokenKindStar, TokenKindPlus, TokenKindOption:
		return 3
	case TokenKindConcat:
		return 2
	case TokenKindUnion:
		return 1
	}
	return 0
}

func isUnary(kind TokenKind) bool {
	switch kind {
	case TokenKindStar, TokenKindPlus, TokenKindOption:
		return true
	}
	return false
}

func isBinary(kind TokenKind) bool {
	switch kind {
	case TokenKindUnion, TokenKindConcat:
		return true
	}
	return false
}
