package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/lexgen/automaton"
)

func Test_toDFA_isDeterministic(t *testing.T) {
	assert := assert.New(t)

	nfa, err := Parse("ab|ac")
	if !assert.NoError(err) {
		return
	}
	rules := Partition{nfa.AcceptingSet()}

	dfa, partition := toDFA(nfa, rules)

	seen := make(map[automaton.Symbol]bool)
	for _, st := range dfa.States {
		for k := range seen {
			delete(seen, k)
		}
		for _, tr := range st.Transitions {
			if seen[tr.Symbol] {
				t.Fatalf("state has two transitions on symbol %q: not a valid DFA", tr.Symbol)
			}
			seen[tr.Symbol] = true
		}
	}

	assert.Equal(0, dfa.Start)
	assert.Len(partition, 1)
	assert.NotZero(partition[0].Len())
}

func Test_toDFA_labelsByPriority(t *testing.T) {
	assert := assert.New(t)

	// Two rules whose languages overlap: "a" and "a|b". Every DFA state
	// reachable by "a" belongs to rule 0 since it is listed first.
	aNFA, err := Parse("a")
	if !assert.NoError(err) {
		return
	}
	bNFA, err := Parse("a|b")
	if !assert.NoError(err) {
		return
	}

	master := automaton.New()
	offsetA := master.Combine(aNFA)
	master.AddEpsilon(master.Start, offsetA)
	offsetB := master.Combine(bNFA)
	master.AddEpsilon(master.Start, offsetB)

	ruleA := automaton.NewStateSet()
	for _, idx := range aNFA.Accepting {
		ruleA.Add(idx + offsetA)
	}
	ruleB := automaton.NewStateSet()
	for _, idx := range bNFA.Accepting {
		ruleB.Add(idx + offsetB)
	}

	dfa, partition := toDFA(master, Partition{ruleA, ruleB})

	// the DFA state reached by "a" must be in rule 0's block, not rule 1's,
	// even though the NFA subset that produced it also contains rule 1's
	// final state.
	state := dfa.Start
	for _, r := range "a" {
		var dest int
		var ok bool
		for _, tr := range dfa.States[state].Transitions {
			if tr.Symbol == r {
				dest, ok = tr.Dest, true
			}
		}
		if !assert.True(ok) {
			return
		}
		state = dest
	}

	assert.True(partition[0].Has(state))
	assert.False(partition[1].Has(state))
}
