// Package automaton implements the mutable labeled directed graph shared by
// every stage of the lexer compilation pipeline: the regex parser builds
// NFAs with it, subset construction builds DFAs with it, and minimization
// builds the reduced DFA with it.
package automaton

import (
	"fmt"
)

// Symbol is a scalar matched against one input character.
type Symbol = rune

// Epsilon is the distinguished symbol meaning "no input consumed." It is
// reserved and cannot appear in a transition built from user pattern text.
const Epsilon Symbol = -1

// Transition is an edge to Dest on Symbol. Epsilon transitions are only
// meaningful on an NFA; a DFA must never contain one and must have at most
// one outgoing transition per (state, non-epsilon symbol).
type Transition struct {
	Dest   int
	Symbol Symbol
}

// State is a single automaton state, identified by its index in
// Automaton.States. It carries its outgoing transitions in the order they
// were added; no deduplication is performed.
type State struct {
	Transitions []Transition
}

// Automaton is a mutable, cyclic, directed labeled graph: the triple
// (states, start=0, accepting). Accepting is a multiset — not a set — so
// it can preserve insertion order across splicing during parsing and
// across relabeling during minimization.
type Automaton struct {
	States    []State
	Start     int
	Accepting []int
}

// New returns an automaton with a single state (index 0, the start state)
// and no accepting states.
func New() *Automaton {
	return &Automaton{
		States: []State{{}},
		Start:  0,
	}
}

// AddState appends a fresh state and returns its index.
func (a *Automaton) AddState() int {
	a.States = append(a.States, State{})
	return len(a.States) - 1
}

// AddAccepting records idx as accepting. Duplicates are allowed and order is
// preserved; both matter to the parser and to minimization.
func (a *Automaton) AddAccepting(idx int) {
	a.mustHaveState(idx)
	a.Accepting = append(a.Accepting, idx)
}

// AddAcceptingState adds a fresh state and immediately marks it accepting.
func (a *Automaton) AddAcceptingState() int {
	idx := a.AddState()
	a.AddAccepting(idx)
	return idx
}

// AddTransition appends a transition from src to dst on sym. No
// deduplication is performed; duplicate transitions (e.g. from `a|a`) are
// harmless since subset construction collapses them.
func (a *Automaton) AddTransition(src, dst int, sym Symbol) {
	a.mustHaveState(src)
	a.mustHaveState(dst)
	a.States[src].Transitions = append(a.States[src].Transitions, Transition{Dest: dst, Symbol: sym})
}

// AddEpsilon is AddTransition with sym set to Epsilon.
func (a *Automaton) AddEpsilon(src, dst int) {
	a.AddTransition(src, dst, Epsilon)
}

// Combine deep-copies other, shifts every transition destination and every
// accepting-list entry in the copy by a.State count prior to the call,
// appends the shifted states and accepting entries onto a, and returns that
// prior count — the new index of other's old state 0.
func (a *Automaton) Combine(other *Automaton) int {
	offset := len(a.States)

	copied := other.Duplicate()
	for i := range copied.States {
		for j := range copied.States[i].Transitions {
			copied.States[i].Transitions[j].Dest += offset
		}
	}
	for i := range copied.Accepting {
		copied.Accepting[i] += offset
	}

	a.States = append(a.States, copied.States...)
	a.Accepting = append(a.Accepting, copied.Accepting...)

	return offset
}

// Duplicate returns an independent deep copy of a.
func (a *Automaton) Duplicate() *Automaton {
	dup := &Automaton{
		States:    make([]State, len(a.States)),
		Start:     a.Start,
		Accepting: append([]int(nil), a.Accepting...),
	}
	for i := range a.States {
		dup.States[i] = State{Transitions: append([]Transition(nil), a.States[i].Transitions...)}
	}
	return dup
}

func (a *Automaton) mustHaveState(idx int) {
	if idx < 0 || idx >= len(a.States) {
		panic(fmt.Sprintf("automaton: state %d does not exist (have %d states)", idx, len(a.States)))
	}
}

// AcceptingSet returns the accepting multiset collapsed into a StateSet —
// the single implicit partition block an unlabeled automaton exposes
// before any rule priority has been attached to its states.
func (a *Automaton) AcceptingSet() StateSet {
	s := NewStateSet()
	for _, idx := range a.Accepting {
		s.Add(idx)
	}
	return s
}
