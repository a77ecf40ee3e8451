package automaton

import (
	"sort"
	"strconv"
	"strings"
)

// StateSet is a set of state indices. It is the int-keyed analogue of the
// teacher toolkit's util.StringSet, used everywhere a group of states needs
// to be tested for membership or turned into a single comparable key (subset
// construction's worklist dedup, a rule's labeled acceptance set, a
// minimizer block).
type StateSet map[int]struct{}

// NewStateSet returns a StateSet containing the given states.
func NewStateSet(states ...int) StateSet {
	s := make(StateSet, len(states))
	for _, st := range states {
		s.Add(st)
	}
	return s
}

// Add adds state to the set. No effect if already present.
func (s StateSet) Add(state int) {
	s[state] = struct{}{}
}

// AddAll adds every state in o to s.
func (s StateSet) AddAll(o StateSet) {
	for st := range o {
		s.Add(st)
	}
}

// Has returns whether state is in the set.
func (s StateSet) Has(state int) bool {
	_, ok := s[state]
	return ok
}

// Len returns the number of states in the set.
func (s StateSet) Len() int {
	return len(s)
}

// Copy returns an independent copy of s.
func (s StateSet) Copy() StateSet {
	cp := make(StateSet, len(s))
	cp.AddAll(s)
	return cp
}

// Intersects returns whether s and o share at least one state.
func (s StateSet) Intersects(o StateSet) bool {
	small, big := s, o
	if len(big) < len(small) {
		small, big = big, small
	}
	for st := range small {
		if big.Has(st) {
			return true
		}
	}
	return false
}

// Elements returns the set's members in ascending order.
func (s StateSet) Elements() []int {
	elems := make([]int, 0, len(s))
	for st := range s {
		elems = append(elems, st)
	}
	sort.Ints(elems)
	return elems
}

// Key returns a canonical, hashable string representation of the set, used
// to dedupe subsets during NFA→DFA conversion by their member states
// rather than by identity. Two StateSets with the same members always
// produce the same Key, regardless of insertion order.
func (s StateSet) Key() string {
	elems := s.Elements()
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = strconv.Itoa(e)
	}
	return strings.Join(parts, ",")
}
