package regexlib

import "slices"

// Equivalent reports whether d1 and d2 accept the same language.
//
// The automata are walked in lockstep from their initial states while a
// partial bijection between their states is maintained; any finality mismatch,
// one-sided transition or inconsistent pairing means the languages differ.
// DFAs over different alphabets are never equivalent.
//
// The walk decides language equality for minimal automata such as the ones
// Minimize returns. Unminimized inputs with equal languages but different
// shapes can be reported as different.
func Equivalent(d1, d2 *DFA) bool {
	if !slices.Equal(d1.alphabet, d2.alphabet) {
		return false
	}
	type pair struct{ s1, s2 int }

	forward := map[int]int{d1.initial: d2.initial}
	backward := map[int]int{d2.initial: d1.initial}
	visited := map[pair]bool{}
	work := []pair{{d1.initial, d2.initial}}

	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]
		if visited[p] {
			continue
		}
		visited[p] = true

		if d1.final[p.s1] != d2.final[p.s2] {
			return false
		}
		for _, c := range d1.alphabet {
			t1, ok1 := d1.trans[p.s1][c]
			t2, ok2 := d2.trans[p.s2][c]
			if !ok1 && !ok2 {
				continue
			}
			if ok1 != ok2 {
				return false
			}
			if img, ok := forward[t1]; ok {
				if img != t2 {
					return false
				}
			} else if pre, ok := backward[t2]; ok {
				if pre != t1 {
					return false
				}
			} else {
				forward[t1] = t2
				backward[t2] = t1
			}
			if next := (pair{t1, t2}); !visited[next] {
				work = append(work, next)
			}
		}
	}
	return true
}
