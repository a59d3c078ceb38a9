package regexlib

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexerTokens(t *testing.T) {
	l := newLexer(`a*(b|c)`)
	want := []TokenKind{
		TokLiteral, TokStar, TokLParen, TokLiteral, TokUnion, TokLiteral, TokRParen, TokEOF,
	}
	for i, kind := range want {
		tok := l.next()
		require.Equal(t, kind, tok.Kind, "token %d", i)
		if kind != TokEOF {
			assert.Equal(t, i, tok.Pos, "token %d", i)
		}
	}
}

func TestLexerMultibyteRunes(t *testing.T) {
	l := newLexer("жa")
	tok := l.next()
	assert.Equal(t, Token{Kind: TokLiteral, Sym: 'ж', Pos: 0}, tok)
	tok = l.next()
	assert.Equal(t, Token{Kind: TokLiteral, Sym: 'a', Pos: 1}, tok)
	assert.Equal(t, TokEOF, l.next().Kind)
}

func TestTokenizeUnbalanced(t *testing.T) {
	tests := []struct {
		regex string
		pos   int
	}{
		{"a|b(c", 3},
		{")a", 0},
		{"a)", 1},
		{"(()", 0},
		{"(a))(", 3},
	}
	for _, tt := range tests {
		t.Run(tt.regex, func(t *testing.T) {
			_, err := tokenize(tt.regex)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnbalancedParentheses))

			var se *SyntaxError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.pos, se.Pos)
		})
	}
}

func TestInsertConcat(t *testing.T) {
	tests := map[string]string{
		"":       "",
		"a":      "a",
		"ab":     "a·b",
		"a(b)":   "a·(b)",
		"a*b":    "a*·b",
		"(a)(b)": "(a)·(b)",
		"a|b":    "a|b",
		"ab*c":   "a·b*·c",
		"(a|b)*": "(a|b)*",
	}
	for in, want := range tests {
		tokens, err := tokenize(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, FormatPostfix(insertConcat(tokens)), in)
	}
}

func TestLiteralDotIsNotConcat(t *testing.T) {
	tokens, err := Parse("a·b")
	require.NoError(t, err)
	require.Len(t, tokens, 5)
	assert.Equal(t, TokLiteral, tokens[1].Kind)
	assert.Equal(t, Symbol('·'), tokens[1].Sym)
}
