package lex

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dekarrin/lexgen/automaton"
)

// Factory is a compiled table-driven lexer. Compile builds the master NFA
// from an ordered rule list, runs subset construction and minimization
// against it, and materializes the result into the dense per-state
// transition and category lookups a Scanner walks. A Factory is immutable
// once built and safe to share across any number of Scanners; a Scanner is
// the cheap, stateful session spawned from it to walk one input string.
type Factory[C any] struct {
	id          uuid.UUID
	transitions []map[automaton.Symbol]int
	categories  []C
	accepting   []bool
}

// ID returns the factory's identity, stamped once at Compile time.
func (f *Factory[C]) ID() uuid.UUID {
	return f.id
}

// Compile builds a Factory from an ordered rule list. Earlier rules have
// higher priority: when two rules match the same longest prefix, the
// earlier one's category wins. If any pattern fails to parse, Compile returns
// an error that names the first failing rule and wraps its *SyntaxError.
func Compile[C any](rules []Rule[C]) (*Factory[C], error) {
	master := automaton.New()
	categories := make([]C, len(rules))
	nfaPartition := make(Partition, len(rules))

	for i, r := range rules {
		sub, err := Parse(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %d (%q): %w", i, r.Pattern, err)
		}

		offset := master.Combine(sub)
		master.AddEpsilon(master.Start, offset)

		finals := automaton.NewStateSet()
		for _, idx := range sub.Accepting {
			finals.Add(idx + offset)
		}
		nfaPartition[i] = finals
		categories[i] = r.Category
	}

	dfa, dfaPartition := toDFA(master, nfaPartition)
	minDFA, minPartition := minimizeDFA(dfa, dfaPartition)

	f := &Factory[C]{
		id:          uuid.New(),
		transitions: make([]map[automaton.Symbol]int, len(minDFA.States)),
		categories:  make([]C, len(minDFA.States)),
		accepting:   make([]bool, len(minDFA.States)),
	}
	for i, st := range minDFA.States {
		m := make(map[automaton.Symbol]int, len(st.Transitions))
		for _, t := range st.Transitions {
			m[t.Symbol] = t.Dest
		}
		f.transitions[i] = m
	}
	for ruleIdx, fi := range minPartition {
		for s := range fi {
			f.categories[s] = categories[ruleIdx]
			f.accepting[s] = true
		}
	}

	return f, nil
}

// Scanner returns a fresh Scanner positioned at the start of input, sharing
// this Factory's compiled tables.
func (f *Factory[C]) Scanner(input string) *Scanner[C] {
	s := &Scanner[C]{
		id: uuid.New(),
		f:  f,
	}
	s.Reset(input)
	return s
}
