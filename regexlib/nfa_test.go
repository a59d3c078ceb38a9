package regexlib

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteralFragment(t *testing.T) {
	n := Literal('a')
	assert.Equal(t, 2, n.NumStates())
	assert.Equal(t, 0, n.Initial())
	assert.Equal(t, 1, n.Final())
	assert.Equal(t, []int{1}, n.Transitions(0, 'a'))
	assert.Empty(t, n.Transitions(0, 'b'))
}

func TestConcatRelabelsRightOperand(t *testing.T) {
	a, b := Literal('a'), Literal('b')
	c := Concat(a, b)

	assert.Equal(t, 4, c.NumStates())
	assert.Equal(t, 0, c.Initial())
	assert.Equal(t, 3, c.Final())
	assert.Equal(t, []int{1}, c.Transitions(0, 'a'))
	assert.Equal(t, []int{2}, c.Transitions(1, Epsilon))
	assert.Equal(t, []int{3}, c.Transitions(2, 'b'))

	// operands are untouched
	assert.Empty(t, a.Transitions(1, Epsilon))
	assert.Equal(t, []int{1}, b.Transitions(0, 'b'))
}

func TestUnionFragment(t *testing.T) {
	u := Union(Literal('a'), Literal('b'))

	assert.Equal(t, 6, u.NumStates())
	assert.Equal(t, 0, u.Initial())
	assert.Equal(t, 5, u.Final())
	assert.Equal(t, []int{1, 3}, u.Transitions(0, Epsilon))
	assert.Equal(t, []int{2}, u.Transitions(1, 'a'))
	assert.Equal(t, []int{4}, u.Transitions(3, 'b'))
	assert.Equal(t, []int{5}, u.Transitions(2, Epsilon))
	assert.Equal(t, []int{5}, u.Transitions(4, Epsilon))
}

func TestStarFragment(t *testing.T) {
	s := Star(Literal('a'))

	assert.Equal(t, 4, s.NumStates())
	assert.Equal(t, 0, s.Initial())
	assert.Equal(t, 3, s.Final())
	assert.Equal(t, []int{1, 3}, s.Transitions(0, Epsilon))
	assert.Equal(t, []int{2}, s.Transitions(1, 'a'))
	assert.Equal(t, []int{1, 3}, s.Transitions(2, Epsilon))
}

func TestTransitionsReturnsCopy(t *testing.T) {
	s := Star(Literal('a'))
	got := s.Transitions(0, Epsilon)
	got[0] = 99
	assert.Equal(t, []int{1, 3}, s.Transitions(0, Epsilon))
}

func TestEmptyOperandIsIdentity(t *testing.T) {
	a := Literal('a')
	assert.Same(t, a, Concat(NewNFA(), a))
	assert.Same(t, a, Concat(a, NewNFA()))
	assert.Same(t, a, Union(NewNFA(), a))
	assert.Same(t, a, Union(a, NewNFA()))
	assert.True(t, Star(NewNFA()).Empty())
}

func TestBuildEmpty(t *testing.T) {
	for _, regex := range []string{"", "()", "(())"} {
		n, err := CompileNFA(regex)
		require.NoError(t, err, regex)
		assert.True(t, n.Empty(), regex)
		assert.Equal(t, -1, n.Initial())
		assert.True(t, n.Accepts(""))
		assert.False(t, n.Accepts("a"))
	}
}

func TestBuildInvalidExpression(t *testing.T) {
	for _, regex := range []string{"*", "*a", "a|", "|", "|a", "a||b", "a()", "(|)", "(*)"} {
		t.Run(regex, func(t *testing.T) {
			_, err := CompileNFA(regex)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidRegex))
			assert.True(t, errors.Is(err, ErrInvalidExpression))

			var se *SyntaxError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, regex, se.Regex)
		})
	}
}

func TestBuildLeftoverOperands(t *testing.T) {
	_, err := Build([]Token{
		{Kind: TokLiteral, Sym: 'a'},
		{Kind: TokLiteral, Sym: 'b', Pos: 1},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidExpression))
}

func TestBuildRejectsParentheses(t *testing.T) {
	_, err := Build([]Token{{Kind: TokLParen}})
	assert.True(t, errors.Is(err, ErrInvalidExpression))
}

func TestBuildSingleInitialAndFinal(t *testing.T) {
	for _, regex := range []string{"a", "ab", "a|b", "a*", "(a|b)*abb", "a(b|c)*"} {
		n, err := CompileNFA(regex)
		require.NoError(t, err, regex)

		// the final state has no outgoing edges and the initial state has no
		// incoming ones
		for _, e := range n.edges() {
			assert.NotEqual(t, n.Final(), e.from, regex)
			for _, to := range n.trans[e] {
				assert.NotEqual(t, n.Initial(), to, regex)
			}
		}
	}
}

func TestNFAAccepts(t *testing.T) {
	n, err := CompileNFA("a(b|c)*")
	require.NoError(t, err)

	for _, in := range []string{"a", "ab", "acbcb"} {
		assert.True(t, n.Accepts(in), in)
	}
	for _, in := range []string{"", "b", "ba", "abd"} {
		assert.False(t, n.Accepts(in), in)
	}
}

func TestSymbols(t *testing.T) {
	n, err := CompileNFA("(c|a)*ba")
	require.NoError(t, err)
	assert.Equal(t, []Symbol{'a', 'b', 'c'}, n.Symbols())
	assert.Empty(t, NewNFA().Symbols())
}
