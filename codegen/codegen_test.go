package codegen

import (
	"bytes"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/regexforge/minfa/automaton"
	"github.com/regexforge/minfa/regex"
)

func render(t *testing.T, pattern string, cfg Config) string {
	t.Helper()
	alpha, err := regex.NewAlphabet("ab")
	require.NoError(t, err)
	comp, err := automaton.Compile(pattern, alpha)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, comp.Min, cfg))
	return buf.String()
}

func TestRender(t *testing.T) {
	src := render(t, "^a(?:a|b)*a$", Config{Pattern: "^a(?:a|b)*a$"})

	require.Contains(t, src, "// Code generated by minfa. DO NOT EDIT.")
	require.Contains(t, src, "package matcher")
	require.Contains(t, src, `Recognizes ^a(?:a|b)*a$ over the alphabet "ab".`)
	require.Contains(t, src, "func Match(input string) bool")
	require.Contains(t, src, "case 'a':")
	require.Contains(t, src, "case 'b':")
	require.Contains(t, src, "return matchAccept[state]")
	require.NotContains(t, src, "import")
}

func TestRender_ProducesParseableGo(t *testing.T) {
	src := render(t, "^(?:a|b)*abb$", Config{
		Package: "abbmatch",
		Name:    "MatchABB",
		Pattern: "^(?:a|b)*abb$",
	})
	require.Contains(t, src, "package abbmatch")
	require.Contains(t, src, "func MatchABB(input string) bool")
	require.Contains(t, src, "matchABBNext")

	fset := token.NewFileSet()
	_, err := parser.ParseFile(fset, "generated.go", src, parser.AllErrors)
	require.NoError(t, err)
}

func TestRender_EmbedsWholeTable(t *testing.T) {
	src := render(t, "^a*$", Config{})

	// a* minimizes to an accepting loop state plus a dead state.
	require.Contains(t, src, "[2][2]int")
	require.Contains(t, src, "[2]bool")
	require.Equal(t, 2, strings.Count(src, "case "))
}
