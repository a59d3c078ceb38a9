package regexlib

import "slices"

// Minimize returns the minimal DFA for d's language using partition
// refinement with Hopcroft's worklist.
//
// A partial d is refined as if missing transitions led to an extra dead state.
// States that end up equivalent to it cannot reach acceptance and are dropped
// from the result, so the result is partial as well and has no more states
// than d. Result state 0 is the initial state and the remaining ids follow
// breadth-first order over the alphabet; callers comparing automata should use
// Equivalent rather than ids.
func Minimize(d *DFA) *DFA {
	n := d.NumStates()
	alpha := d.alphabet

	sink := -1
	total := n
	for s := 0; s < n && sink < 0; s++ {
		for _, c := range alpha {
			if _, ok := d.trans[s][c]; !ok {
				sink, total = n, n+1
				break
			}
		}
	}
	target := func(s int, c Symbol) int {
		if s == sink {
			return sink
		}
		if t, ok := d.trans[s][c]; ok {
			return t
		}
		return sink
	}

	// pre[ci][t] lists the states entering t on alpha[ci].
	pre := make([][][]int, len(alpha))
	for ci, c := range alpha {
		pre[ci] = make([][]int, total)
		for s := 0; s < total; s++ {
			t := target(s, c)
			pre[ci][t] = append(pre[ci][t], s)
		}
	}

	var (
		blocks  [][]int
		blockOf = make([]int, total)
		inWork  []bool
		work    []int
	)
	addBlock := func(members []int) int {
		id := len(blocks)
		blocks = append(blocks, members)
		inWork = append(inWork, false)
		for _, s := range members {
			blockOf[s] = id
		}
		return id
	}
	push := func(b int) {
		if !inWork[b] {
			inWork[b] = true
			work = append(work, b)
		}
	}

	var accepting, rejecting []int
	for s := 0; s < total; s++ {
		if s < n && d.final[s] {
			accepting = append(accepting, s)
		} else {
			rejecting = append(rejecting, s)
		}
	}
	for _, part := range [][]int{accepting, rejecting} {
		if len(part) > 0 {
			push(addBlock(part))
		}
	}

	marked := make([]bool, total)
	for len(work) > 0 {
		a := work[0]
		work = work[1:]
		inWork[a] = false
		splitter := slices.Clone(blocks[a])

		for ci := range alpha {
			var xs, touched []int
			hits := map[int]int{}
			for _, t := range splitter {
				for _, s := range pre[ci][t] {
					if marked[s] {
						continue
					}
					marked[s] = true
					xs = append(xs, s)
					b := blockOf[s]
					if hits[b] == 0 {
						touched = append(touched, b)
					}
					hits[b]++
				}
			}
			for _, y := range touched {
				if hits[y] == len(blocks[y]) {
					continue
				}
				var inter, diff []int
				for _, s := range blocks[y] {
					if marked[s] {
						inter = append(inter, s)
					} else {
						diff = append(diff, s)
					}
				}
				blocks[y] = inter
				z := addBlock(diff)
				switch {
				case inWork[y]:
					push(z)
				case len(inter) <= len(diff):
					push(y)
				default:
					push(z)
				}
			}
			for _, s := range xs {
				marked[s] = false
			}
		}
	}

	return quotient(d, blocks, blockOf, sink)
}

// quotient builds one state per live block, numbered breadth-first from the
// initial block.
func quotient(d *DFA, blocks [][]int, blockOf []int, sink int) *DFA {
	alpha := slices.Clone(d.alphabet)
	dead := -1
	if sink >= 0 {
		dead = blockOf[sink]
	}
	start := blockOf[d.initial]
	if start == dead {
		// empty language
		return newDFA(1, alpha)
	}

	newID := make([]int, len(blocks))
	for i := range newID {
		newID[i] = -1
	}
	newID[start] = 0
	order := []int{start}
	for i := 0; i < len(order); i++ {
		rep := blocks[order[i]][0]
		for _, c := range alpha {
			t, ok := d.trans[rep][c]
			if !ok || blockOf[t] == dead || newID[blockOf[t]] >= 0 {
				continue
			}
			newID[blockOf[t]] = len(order)
			order = append(order, blockOf[t])
		}
	}

	out := newDFA(len(order), alpha)
	for i, b := range order {
		rep := blocks[b][0]
		out.final[i] = d.final[rep]
		for _, c := range alpha {
			if t, ok := d.trans[rep][c]; ok && blockOf[t] != dead {
				out.trans[i][c] = newID[blockOf[t]]
			}
		}
	}
	return out
}
