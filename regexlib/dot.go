package regexlib

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ExportDOT writes a Graphviz description of an *NFA or *DFA to w. NFA nodes
// are named nN, DFA nodes qN; accepting states are drawn as double circles.
// Output order is deterministic.
func ExportDOT(w io.Writer, g any) error {
	var b strings.Builder
	b.WriteString("digraph G {\n")
	b.WriteString("    rankdir=LR;\n")

	switch t := g.(type) {
	case *DFA:
		for s, n := 0, t.NumStates(); s < n; s++ {
			fmt.Fprintf(&b, "    q%d [shape=%s];\n", s, shape(t.final[s]))
			for _, c := range t.alphabet {
				if to, ok := t.trans[s][c]; ok {
					fmt.Fprintf(&b, "    q%d -> q%d [label=%s];\n", s, to, strconv.Quote(c.String()))
				}
			}
		}
		fmt.Fprintf(&b, "    _start [shape=point]; _start -> q%d;\n", t.initial)

	case *NFA:
		byState := make([][]edge, t.states)
		for _, e := range t.edges() {
			byState[e.from] = append(byState[e.from], e)
		}
		for s := 0; s < t.states; s++ {
			fmt.Fprintf(&b, "    n%d [shape=%s];\n", s, shape(s == t.final))
			for _, e := range byState[s] {
				for _, to := range t.trans[e] {
					fmt.Fprintf(&b, "    n%d -> n%d [label=%s];\n", s, to, strconv.Quote(e.sym.String()))
				}
			}
		}
		if !t.Empty() {
			fmt.Fprintf(&b, "    _start [shape=point]; _start -> n%d;\n", t.initial)
		}

	default:
		return fmt.Errorf("export dot: unsupported graph type %T", g)
	}

	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func shape(accept bool) string {
	if accept {
		return "doublecircle"
	}
	return "circle"
}
