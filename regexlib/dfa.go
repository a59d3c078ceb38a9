package regexlib

import (
	"slices"
	"strconv"
	"strings"
)

// DFA is a deterministic automaton with states 0..NumStates()-1 and a partial
// transition function. A missing transition rejects.
type DFA struct {
	initial  int
	final    []bool
	trans    []map[Symbol]int
	alphabet []Symbol // sorted
}

func newDFA(states int, alphabet []Symbol) *DFA {
	d := &DFA{
		final:    make([]bool, states),
		trans:    make([]map[Symbol]int, states),
		alphabet: alphabet,
	}
	for i := range d.trans {
		d.trans[i] = map[Symbol]int{}
	}
	return d
}

func (d *DFA) NumStates() int { return len(d.final) }

func (d *DFA) Initial() int { return d.initial }

func (d *DFA) IsFinal(s int) bool { return d.final[s] }

// Finals returns the accepting states in ascending order.
func (d *DFA) Finals() []int {
	var out []int
	for s, f := range d.final {
		if f {
			out = append(out, s)
		}
	}
	return out
}

// Alphabet returns the sorted alphabet. It is [Sentinel] when the source
// automaton had no literal symbols.
func (d *DFA) Alphabet() []Symbol { return slices.Clone(d.alphabet) }

// Transition returns the destination of s on sym, if any.
func (d *DFA) Transition(s int, sym Symbol) (int, bool) {
	t, ok := d.trans[s][sym]
	return t, ok
}

// Accepts runs d on input.
func (d *DFA) Accepts(input string) bool {
	s := d.initial
	for _, r := range input {
		t, ok := d.trans[s][Symbol(r)]
		if !ok {
			return false
		}
		s = t
	}
	return d.final[s]
}

// Determinize converts n into an equivalent DFA by subset construction. Only
// subsets reachable from the closure of the initial state become states, and
// state 0 is always the initial state.
//
// The empty automaton yields a single accepting state over [Sentinel].
func Determinize(n *NFA) *DFA {
	alpha := n.Symbols()
	if len(alpha) == 0 {
		alpha = []Symbol{Sentinel}
	}
	if n.Empty() {
		d := newDFA(1, alpha)
		d.final[0] = true
		return d
	}

	initSet := epsilonClosure(n, []int{n.initial})
	ids := map[string]int{subsetKey(initSet): 0}
	subsets := [][]int{initSet}
	var (
		final []bool
		trans []map[Symbol]int
	)
	// subsets doubles as the FIFO worklist: index i is processed once all
	// earlier ids are done.
	for i := 0; i < len(subsets); i++ {
		cur := subsets[i]
		final = append(final, containsState(cur, n.final))
		row := map[Symbol]int{}
		for _, sym := range alpha {
			next := epsilonClosure(n, move(n, cur, sym))
			if len(next) == 0 {
				continue
			}
			k := subsetKey(next)
			id, seen := ids[k]
			if !seen {
				id = len(subsets)
				ids[k] = id
				subsets = append(subsets, next)
			}
			row[sym] = id
		}
		trans = append(trans, row)
	}
	return &DFA{initial: 0, final: final, trans: trans, alphabet: alpha}
}

// epsilonClosure returns the sorted set of states reachable from set through
// zero or more epsilon transitions.
func epsilonClosure(n *NFA, set []int) []int {
	in := make([]bool, n.states)
	stack := make([]int, 0, len(set))
	for _, s := range set {
		if !in[s] {
			in[s] = true
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range n.trans[edge{s, Epsilon}] {
			if !in[t] {
				in[t] = true
				stack = append(stack, t)
			}
		}
	}
	out := make([]int, 0, len(set))
	for s, ok := range in {
		if ok {
			out = append(out, s)
		}
	}
	return out
}

// move returns the direct destinations of set on sym.
func move(n *NFA, set []int, sym Symbol) []int {
	var out []int
	for _, s := range set {
		out = append(out, n.trans[edge{s, sym}]...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func containsState(set []int, s int) bool {
	_, ok := slices.BinarySearch(set, s)
	return ok
}

// subsetKey is the canonical map key of a sorted state set.
func subsetKey(set []int) string {
	var b strings.Builder
	for i, s := range set {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(s))
	}
	return b.String()
}
