package lex

import (
	"github.com/dekarrin/lexgen/automaton"
	"github.com/dekarrin/lexgen/unionfind"
)

// pair is an (i, j) state index pair with i < j, used as a dependency-list
// entry: "if i and j turn out to be distinguishable, so are the pair that
// depends on them."
type pair struct{ i, j int }

// minimizer carries the pairwise tables used by Moore's table-filling
// algorithm.
type minimizer struct {
	dfa        *automaton.Automaton
	rules      Partition
	combinable [][]bool
	affect     [][][]pair
}

// minimizeDFA collapses dfa's states into equivalence classes and returns
// the resulting DFA together with the partition relabeled onto its states.
// State 0 of the input always lands in the new state 0, so renumbering is
// deterministic across a run; the remaining blocks are numbered in
// first-discovery order.
//
// Equivalence classes are collected with unionfind.UnionFind rather than a
// second hand-rolled scan that unions pairs by repeated linear "is j
// already processed" checks — union-find is the data structure this exact
// problem (merge pairs, then read off blocks) calls for.
func minimizeDFA(dfa *automaton.Automaton, rules Partition) (*automaton.Automaton, Partition) {
	n := len(dfa.States)
	m := &minimizer{
		dfa:        dfa,
		rules:      rules,
		combinable: make([][]bool, n),
		affect:     make([][][]pair, n),
	}
	for i := range m.combinable {
		m.combinable[i] = make([]bool, n)
		for j := range m.combinable[i] {
			m.combinable[i][j] = true
		}
		m.affect[i] = make([][]pair, n)
	}

	m.markUncombinable()
	m.calculateDependency()

	uf := unionfind.New(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.combinable[i][j] {
				uf.Union(i, j)
			}
		}
	}

	return m.build(uf)
}

// mark records that i and j are distinguishable and transitively marks
// every pair whose combinability depended on (i, j).
func (m *minimizer) mark(i, j int) {
	if i > j {
		i, j = j, i
	}
	if !m.combinable[i][j] {
		return
	}
	m.combinable[i][j] = false
	for _, p := range m.affect[i][j] {
		m.mark(p.i, p.j)
	}
}

// markUncombinable marks every pair that starts out distinguishable because
// the two states belong to different rules (including "no rule" as its own
// class) before any transition walking happens.
func (m *minimizer) markUncombinable() {
	n := len(m.dfa.States)

	classes := make([]automaton.StateSet, 0, len(m.rules)+1)
	covered := automaton.NewStateSet()
	for _, fi := range m.rules {
		classes = append(classes, fi)
		covered.AddAll(fi)
	}
	nonfinal := automaton.NewStateSet()
	for s := 0; s < n; s++ {
		if !covered.Has(s) {
			nonfinal.Add(s)
		}
	}
	classes = append(classes, nonfinal)

	for x := 0; x < len(classes); x++ {
		for y := x + 1; y < len(classes); y++ {
			for xe := range classes[x] {
				for ye := range classes[y] {
					i, j := xe, ye
					if i > j {
						i, j = j, i
					}
					m.combinable[i][j] = false
				}
			}
		}
	}
}

// calculateDependency walks every remaining candidate pair once, marking it
// distinguishable immediately if its transitions disagree outright, or
// recording a dependency on the pairs its transitions land on otherwise.
func (m *minimizer) calculateDependency() {
	n := len(m.dfa.States)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m.processPair(i, j)
		}
	}
}

func (m *minimizer) processPair(x, y int) {
	xEdges := edgeMap(m.dfa, x)
	yEdges := edgeMap(m.dfa, y)
	if len(xEdges) != len(yEdges) {
		m.mark(x, y)
		return
	}

	var dependsOn []pair
	for sym, xDst := range xEdges {
		yDst, ok := yEdges[sym]
		if !ok {
			m.mark(x, y)
			return
		}
		if xDst == yDst {
			continue
		}
		i, j := xDst, yDst
		if i > j {
			i, j = j, i
		}
		if !m.combinable[i][j] {
			m.mark(x, y)
			return
		}
		dependsOn = append(dependsOn, pair{i, j})
	}

	for _, d := range dependsOn {
		m.affect[d.i][d.j] = append(m.affect[d.i][d.j], pair{x, y})
	}
}

func edgeMap(a *automaton.Automaton, state int) map[automaton.Symbol]int {
	edges := make(map[automaton.Symbol]int, len(a.States[state].Transitions))
	for _, t := range a.States[state].Transitions {
		edges[t.Symbol] = t.Dest
	}
	return edges
}

// build reads the equivalence classes off uf and materializes the
// minimized automaton and its relabeled partition.
func (m *minimizer) build(uf *unionfind.UnionFind) (*automaton.Automaton, Partition) {
	n := len(m.dfa.States)

	newIndex := make(map[int]int) // union-find root -> new state index
	blockOf := make([]int, n)
	representative := make([]int, 0, n) // new state index -> one old member

	for i := 0; i < n; i++ {
		root := uf.Find(i)
		idx, ok := newIndex[root]
		if !ok {
			idx = len(representative)
			newIndex[root] = idx
			representative = append(representative, i)
		}
		blockOf[i] = idx
	}

	out := automaton.New()
	for len(out.States) < len(representative) {
		out.AddState()
	}
	out.Start = blockOf[m.dfa.Start]

	for newState, old := range representative {
		for _, t := range m.dfa.States[old].Transitions {
			out.AddTransition(newState, blockOf[t.Dest], t.Symbol)
		}
	}

	newRules := make(Partition, len(m.rules))
	for i := range newRules {
		newRules[i] = automaton.NewStateSet()
	}
	for oldState, newState := range blockOf {
		if rule, ok := m.rules.RuleFor(automaton.NewStateSet(oldState)); ok {
			newRules[rule].Add(newState)
		}
	}
	for _, fi := range newRules {
		for s := range fi {
			out.AddAccepting(s)
		}
	}

	return out, newRules
}
