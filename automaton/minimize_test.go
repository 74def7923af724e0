package automaton

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The completed minimal DFA for a* has exactly two states: an accepting
// start looping on a with an edge to a non-accepting sink on b, and the
// sink looping on both symbols.
func TestMinimize_StarCollapsesToTwoStates(t *testing.T) {
	alpha := testAlphabet(t)
	c, err := Compile("a*", alpha)
	require.NoError(t, err)

	min := c.Min
	require.Equal(t, 2, min.NumStates())
	require.Equal(t, 0, min.Start)
	require.True(t, min.IsAccept(0))
	require.False(t, min.IsAccept(1))

	symA, ok := alpha.Index('a')
	require.True(t, ok)
	symB, ok := alpha.Index('b')
	require.True(t, ok)

	require.Equal(t, 0, min.Next[0][symA])
	require.Equal(t, 1, min.Next[0][symB])
	require.Equal(t, 1, min.Next[1][symA])
	require.Equal(t, 1, min.Next[1][symB])
}

func TestMinimize_Idempotent(t *testing.T) {
	alpha := testAlphabet(t)
	for _, pattern := range oraclePatterns {
		t.Run(pattern, func(t *testing.T) {
			c, err := Compile(pattern, alpha)
			require.NoError(t, err)

			again := Minimize(c.Min)
			require.Equal(t, c.Min.NumStates(), again.NumStates())
			eq, _ := Equivalent(c.Min, again)
			require.True(t, eq)
		})
	}
}

func TestMinimize_NeverGrowsAndPreservesLanguage(t *testing.T) {
	alpha := testAlphabet(t)
	for _, pattern := range oraclePatterns {
		t.Run(pattern, func(t *testing.T) {
			c, err := Compile(pattern, alpha)
			require.NoError(t, err)

			// The raw DFA is partial; completion costs at most one sink.
			require.LessOrEqual(t, c.Min.NumStates(), c.DFA.NumStates()+1)

			eq, witness := Equivalent(c.DFA, c.Min)
			require.True(t, eq, "disagreement at %+v", witness)
		})
	}
}

func TestMinimize_TotalAndDeterministic(t *testing.T) {
	alpha := testAlphabet(t)
	for _, pattern := range oraclePatterns {
		t.Run(pattern, func(t *testing.T) {
			c, err := Compile(pattern, alpha)
			require.NoError(t, err)

			for s := 0; s < c.Min.NumStates(); s++ {
				for sym := 0; sym < alpha.Size(); sym++ {
					to := c.Min.Next[s][sym]
					require.NotEqual(t, NoTarget, to)
					require.GreaterOrEqual(t, to, 0)
					require.Less(t, to, c.Min.NumStates())
				}
			}
		})
	}
}

// Distinguishable states stay separate: the minimal DFA for the finite
// language {a, b} still needs distinct interior structure from a*.
func TestMinimize_KeepsDistinguishableStates(t *testing.T) {
	alpha := testAlphabet(t)
	c, err := Compile("a|b", alpha)
	require.NoError(t, err)

	// start, accept, sink
	require.Equal(t, 3, c.Min.NumStates())
	require.True(t, c.Min.Run("a"))
	require.True(t, c.Min.Run("b"))
	require.False(t, c.Min.Run(""))
	require.False(t, c.Min.Run("ab"))
}
