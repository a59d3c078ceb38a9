package regexlib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var samplePatterns = []string{
	"",
	"a",
	"ab",
	"a|b",
	"a*",
	"a**",
	"a|ab",
	"(a|b)*",
	"(a*b*)*",
	"a(b|c)*",
	"(ab|ac)*",
	"(a|b)*abb",
	"a*b|b*a",
	"((a|b)(a|b))*",
}

func nfaOf(t *testing.T, regex string) *NFA {
	t.Helper()
	n, err := CompileNFA(regex)
	require.NoError(t, err, regex)
	return n
}

func minDFA(t *testing.T, regex string) *DFA {
	t.Helper()
	return Minimize(Determinize(nfaOf(t, regex)))
}

// words lists every word over alpha of length at most maxLen, "" first.
func words(alpha string, maxLen int) []string {
	out := []string{""}
	level := []string{""}
	for i := 0; i < maxLen; i++ {
		var next []string
		for _, w := range level {
			for _, r := range alpha {
				next = append(next, w+string(r))
			}
		}
		out = append(out, next...)
		level = next
	}
	return out
}

// reachable counts the states reachable from d's initial state.
func reachable(d *DFA) int {
	seen := map[int]bool{d.initial: true}
	queue := []int{d.initial}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, c := range d.alphabet {
			if t, ok := d.trans[s][c]; ok && !seen[t] {
				seen[t] = true
				queue = append(queue, t)
			}
		}
	}
	return len(seen)
}

// startingAt returns a copy of d whose initial state is s.
func startingAt(d *DFA, s int) *DFA {
	cp := *d
	cp.initial = s
	return &cp
}
