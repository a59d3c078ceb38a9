package regexlib

import (
	"slices"
)

type edge struct {
	from int
	sym  Symbol
}

// NFA is a Thompson automaton with exactly one initial and one final state.
// State ids are 0..NumStates()-1 and are only meaningful within one NFA.
//
// An NFA with no states is the empty automaton: it is what an empty regex
// builds to, and it behaves as the identity for Concat and Union.
//
// NFA values are never modified after construction; the combinators below
// always allocate a new transition table.
type NFA struct {
	states  int
	initial int
	final   int
	trans   map[edge][]int // destinations sorted, no duplicates
}

// NewNFA returns the empty automaton.
func NewNFA() *NFA {
	return &NFA{initial: -1, final: -1, trans: map[edge][]int{}}
}

// Literal returns the two-state automaton 0 -sym-> 1.
func Literal(sym Symbol) *NFA {
	return &NFA{
		states:  2,
		initial: 0,
		final:   1,
		trans:   map[edge][]int{{0, sym}: {1}},
	}
}

// Concat accepts a word of a followed by a word of b.
func Concat(a, b *NFA) *NFA {
	if a.Empty() {
		return b
	}
	if b.Empty() {
		return a
	}
	off := a.states
	t := make(map[edge][]int, len(a.trans)+len(b.trans)+1)
	a.copyInto(t, 0)
	b.copyInto(t, off)
	addEdge(t, a.final, Epsilon, b.initial+off)
	return &NFA{
		states:  a.states + b.states,
		initial: a.initial,
		final:   b.final + off,
		trans:   t,
	}
}

// Union accepts the words of a and the words of b.
func Union(a, b *NFA) *NFA {
	if a.Empty() {
		return b
	}
	if b.Empty() {
		return a
	}
	offA, offB := 1, 1+a.states
	final := offB + b.states
	t := make(map[edge][]int, len(a.trans)+len(b.trans)+3)
	a.copyInto(t, offA)
	b.copyInto(t, offB)
	addEdge(t, 0, Epsilon, a.initial+offA)
	addEdge(t, 0, Epsilon, b.initial+offB)
	addEdge(t, a.final+offA, Epsilon, final)
	addEdge(t, b.final+offB, Epsilon, final)
	return &NFA{
		states:  final + 1,
		initial: 0,
		final:   final,
		trans:   t,
	}
}

// Star accepts zero or more repetitions of a. The star of the empty automaton
// is the empty automaton.
func Star(a *NFA) *NFA {
	if a.Empty() {
		return NewNFA()
	}
	final := a.states + 1
	t := make(map[edge][]int, len(a.trans)+2)
	a.copyInto(t, 1)
	addEdge(t, 0, Epsilon, a.initial+1)
	addEdge(t, 0, Epsilon, final)
	addEdge(t, a.final+1, Epsilon, a.initial+1)
	addEdge(t, a.final+1, Epsilon, final)
	return &NFA{
		states:  final + 1,
		initial: 0,
		final:   final,
		trans:   t,
	}
}

// Build evaluates a postfix token sequence on a stack of fragments.
func Build(postfix []Token) (*NFA, error) {
	var stack []*NFA
	pop := func() *NFA {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return top
	}
	for _, tok := range postfix {
		switch tok.Kind {
		case TokLiteral:
			stack = append(stack, Literal(tok.Sym))
		case TokStar:
			if len(stack) < 1 {
				return nil, invalidExpr(tok.Pos, "* has no operand")
			}
			stack = append(stack, Star(pop()))
		case TokConcat, TokUnion:
			if len(stack) < 2 {
				return nil, invalidExpr(tok.Pos, tok.String()+" needs two operands")
			}
			b := pop()
			a := pop()
			if tok.Kind == TokConcat {
				stack = append(stack, Concat(a, b))
			} else {
				stack = append(stack, Union(a, b))
			}
		default:
			return nil, invalidExpr(tok.Pos, "unexpected "+tok.String()+" in postfix input")
		}
	}
	switch len(stack) {
	case 0:
		return NewNFA(), nil
	case 1:
		return stack[0], nil
	default:
		return nil, invalidExpr(-1, "operands left without an operator")
	}
}

// Empty reports whether n has no states.
func (n *NFA) Empty() bool { return n.states == 0 }

func (n *NFA) NumStates() int { return n.states }

// Initial returns the initial state, or -1 for the empty automaton.
func (n *NFA) Initial() int { return n.initial }

// Final returns the final state, or -1 for the empty automaton.
func (n *NFA) Final() int { return n.final }

// Transitions returns the destinations of from on sym (Epsilon included) in
// ascending order.
func (n *NFA) Transitions(from int, sym Symbol) []int {
	return slices.Clone(n.trans[edge{from, sym}])
}

// Symbols returns the distinct non-epsilon symbols on n's transitions, sorted.
func (n *NFA) Symbols() []Symbol {
	seen := map[Symbol]struct{}{}
	for e := range n.trans {
		if e.sym != Epsilon {
			seen[e.sym] = struct{}{}
		}
	}
	out := make([]Symbol, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

// Accepts simulates n on input. The empty automaton accepts only "".
func (n *NFA) Accepts(input string) bool {
	if n.Empty() {
		return input == ""
	}
	cur := epsilonClosure(n, []int{n.initial})
	for _, r := range input {
		cur = epsilonClosure(n, move(n, cur, Symbol(r)))
		if len(cur) == 0 {
			return false
		}
	}
	_, ok := slices.BinarySearch(cur, n.final)
	return ok
}

// edges returns the transition keys ordered by source state, then symbol.
func (n *NFA) edges() []edge {
	out := make([]edge, 0, len(n.trans))
	for e := range n.trans {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b edge) int {
		if a.from != b.from {
			return a.from - b.from
		}
		return int(a.sym) - int(b.sym)
	})
	return out
}

func (n *NFA) copyInto(dst map[edge][]int, offset int) {
	for e, to := range n.trans {
		shifted := make([]int, len(to))
		for i, s := range to {
			shifted[i] = s + offset
		}
		dst[edge{e.from + offset, e.sym}] = shifted
	}
}

func addEdge(t map[edge][]int, from int, sym Symbol, to int) {
	k := edge{from, sym}
	dests := t[k]
	i, found := slices.BinarySearch(dests, to)
	if found {
		return
	}
	t[k] = slices.Insert(dests, i, to)
}
