// Package lex implements the regex-to-NFA parser, the NFA→DFA and DFA
// minimization stages that thread per-rule acceptance through both
// rewrites, and the compiled lexer factory and scanner built on top of
// them.
package lex

import "github.com/dekarrin/lexgen/automaton"

// Rule is one (pattern, category) entry in the ordered rule list passed to
// Compile. Earlier entries have higher priority: at equal match length, the
// earliest rule wins.
type Rule[C any] struct {
	Pattern  string
	Category C
}

// Partition is the ordered list F = [F0, F1, ..., Fk-1]: the set of states
// accepting for rule i is Partition[i]. A state appears in at most one
// set. Index order is rule priority order — lower index wins ties.
type Partition []automaton.StateSet

// RuleFor returns the lowest-index rule whose set in p intersects states,
// and true if one exists: the smallest i such that states and Fi overlap.
// This is used both to label a DFA subset during NFA→DFA conversion and to
// label a minimized block during minimization.
func (p Partition) RuleFor(states automaton.StateSet) (rule int, ok bool) {
	for i, fi := range p {
		if states.Intersects(fi) {
			return i, true
		}
	}
	return 0, false
}
