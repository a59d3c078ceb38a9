package regexlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquivalentPairs(t *testing.T) {
	tests := []struct {
		left, right string
		want        bool
	}{
		{"a", "a", true},
		{"a", "(a)", true},
		{"a|b", "b|a", true},
		{"a*b*", "(a*)(b*)", true},
		{"a**", "a*", true},
		{"a(b|c)", "ab|ac", true},
		{"(a*b*)*", "(a|b)*", true},
		{"a(bc)", "abc", true},
		{"((a))", "a", true},
		{"", "()", true},
		{"(a|b)*abb", "(a|b)*abb|abb", true},
		{"a*b", "ab*", false},
		{"(a|b)c", "a|bc", false},
		{"a(b|c)*", "(ab|ac)*", false},
		{"a*", "", false},
		{"a", "x", false},
	}
	for _, tt := range tests {
		t.Run(tt.left+" vs "+tt.right, func(t *testing.T) {
			d1, d2 := minDFA(t, tt.left), minDFA(t, tt.right)
			assert.Equal(t, tt.want, Equivalent(d1, d2))
			assert.Equal(t, tt.want, Equivalent(d2, d1))
		})
	}
}

func TestEquivalentReflexive(t *testing.T) {
	for _, regex := range samplePatterns {
		n := nfaOf(t, regex)
		assert.True(t, Equivalent(Minimize(Determinize(n)), Minimize(Determinize(n))), regex)
	}
}

func TestEquivalentAlphabetMismatch(t *testing.T) {
	d1, d2 := minDFA(t, "a"), minDFA(t, "x")
	require.NotEqual(t, d1.Alphabet(), d2.Alphabet())
	assert.False(t, Equivalent(d1, d2))
}

func TestEquivalentNeedsMinimalInput(t *testing.T) {
	// same language, but the raw DFA has three states for one minimal state
	raw := Determinize(nfaOf(t, "(a|b)*"))
	assert.False(t, Equivalent(raw, Minimize(raw)))
	_, differ := Distinguish(raw, Minimize(raw))
	assert.False(t, differ)
}

func TestEquivalentMatchesSampling(t *testing.T) {
	for _, p1 := range samplePatterns {
		for _, p2 := range samplePatterns {
			d1, d2 := minDFA(t, p1), minDFA(t, p2)
			if !Equivalent(d1, d2) {
				continue
			}
			for _, w := range words("abc", 5) {
				require.Equal(t, d1.Accepts(w), d2.Accepts(w), "%q vs %q on %q", p1, p2, w)
			}
		}
	}
}

func TestDistinguish(t *testing.T) {
	tests := []struct {
		left, right string
		witness     string
		ok          bool
	}{
		{"a*b", "ab*", "a", true},
		{"a", "x", "a", true},
		{"a*", "", "a", true},
		{"(a|b)c", "a|bc", "a", true},
		{"a(b|c)*", "(ab|ac)*", "", true},
		{"a|b", "b|a", "", false},
		{"(a*b*)*", "(a|b)*", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.left+" vs "+tt.right, func(t *testing.T) {
			d1, d2 := minDFA(t, tt.left), minDFA(t, tt.right)
			w, ok := Distinguish(d1, d2)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.witness, w)
			if ok {
				assert.NotEqual(t, d1.Accepts(w), d2.Accepts(w))
			}
		})
	}
}
