package regexlib

import (
	"slices"
	"strings"
)

// Distinguish returns a shortest word accepted by exactly one of a and b. ok is
// false when no such word exists, i.e. the languages are equal.
//
// Unlike Equivalent it works on any pair of DFAs: the product automaton is
// explored breadth-first over the union of both alphabets, with a missing
// transition standing for a dead state (-1).
func Distinguish(a, b *DFA) (witness string, ok bool) {
	type pair struct{ i, j int }
	type step struct {
		from pair
		sym  Symbol
	}
	accepts := func(d *DFA, s int) bool { return s >= 0 && d.final[s] }
	next := func(d *DFA, s int, c Symbol) int {
		if s < 0 {
			return -1
		}
		if t, ok := d.trans[s][c]; ok {
			return t
		}
		return -1
	}

	alpha := unionSymbols(a.alphabet, b.alphabet)
	start := pair{a.initial, b.initial}
	parent := map[pair]step{}
	seen := map[pair]bool{start: true}
	queue := []pair{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if accepts(a, p.i) != accepts(b, p.j) {
			var word []Symbol
			for cur := p; cur != start; cur = parent[cur].from {
				word = append(word, parent[cur].sym)
			}
			slices.Reverse(word)
			var sb strings.Builder
			for _, c := range word {
				sb.WriteRune(rune(c))
			}
			return sb.String(), true
		}
		for _, c := range alpha {
			np := pair{next(a, p.i, c), next(b, p.j, c)}
			if np.i < 0 && np.j < 0 || seen[np] {
				continue
			}
			seen[np] = true
			parent[np] = step{from: p, sym: c}
			queue = append(queue, np)
		}
	}
	return "", false
}

// unionSymbols merges two sorted alphabets, leaving out Sentinel.
func unionSymbols(a, b []Symbol) []Symbol {
	out := make([]Symbol, 0, len(a)+len(b))
	for _, s := range append(slices.Clone(a), b...) {
		if s != Sentinel {
			out = append(out, s)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
