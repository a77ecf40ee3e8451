package lex

import "github.com/dekarrin/lexgen/automaton"

// epsilonClosure returns the set of states reachable from any state in
// states using only ε-transitions, states themselves included.
func epsilonClosure(nfa *automaton.Automaton, states automaton.StateSet) automaton.StateSet {
	closure := states.Copy()
	stack := closure.Elements()

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, t := range nfa.States[cur].Transitions {
			if t.Symbol == automaton.Epsilon && !closure.Has(t.Dest) {
				closure.Add(t.Dest)
				stack = append(stack, t.Dest)
			}
		}
	}

	return closure
}

// move returns the set of states reachable from states on a single
// transition labeled sym (sym must not be Epsilon).
func move(nfa *automaton.Automaton, states automaton.StateSet, sym automaton.Symbol) automaton.StateSet {
	result := automaton.NewStateSet()
	for s := range states {
		for _, t := range nfa.States[s].Transitions {
			if t.Symbol == sym {
				result.Add(t.Dest)
			}
		}
	}
	return result
}

// alphabetOf collects every non-epsilon symbol appearing in nfa.
func alphabetOf(nfa *automaton.Automaton) []automaton.Symbol {
	seen := make(map[automaton.Symbol]struct{})
	var symbols []automaton.Symbol
	for _, st := range nfa.States {
		for _, t := range st.Transitions {
			if t.Symbol == automaton.Epsilon {
				continue
			}
			if _, ok := seen[t.Symbol]; !ok {
				seen[t.Symbol] = struct{}{}
				symbols = append(symbols, t.Symbol)
			}
		}
	}
	return symbols
}

// toDFA runs subset construction over nfa, labeling each resulting DFA
// state against rules using rules.RuleFor on the ε-closed NFA subset it was
// built from. It returns the DFA together with the labeled partition over
// its own states.
//
// The start subset always becomes DFA state 0, so that state numbering is
// deterministic and reproducible across a run; states discovered later are
// numbered in discovery order. Labeling against rules happens in a separate
// pass once the worklist is empty.
func toDFA(nfa *automaton.Automaton, rules Partition) (*automaton.Automaton, Partition) {
	alphabet := alphabetOf(nfa)

	startSet := epsilonClosure(nfa, automaton.NewStateSet(nfa.Start))

	dfa := automaton.New()
	dfa.Start = 0

	indexOf := map[string]int{startSet.Key(): 0}
	subsets := []automaton.StateSet{startSet}
	worklist := []int{0}

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]
		curSet := subsets[cur]

		for _, sym := range alphabet {
			target := epsilonClosure(nfa, move(nfa, curSet, sym))
			if target.Len() == 0 {
				continue
			}

			key := target.Key()
			idx, ok := indexOf[key]
			if !ok {
				idx = dfa.AddState()
				indexOf[key] = idx
				subsets = append(subsets, target)
				worklist = append(worklist, idx)
			}

			dfa.AddTransition(cur, idx, sym)
		}
	}

	out := make(Partition, len(rules))
	for i := range out {
		out[i] = automaton.NewStateSet()
	}
	for dfaState, subset := range subsets {
		if rule, ok := rules.RuleFor(subset); ok {
			out[rule].Add(dfaState)
			dfa.AddAccepting(dfaState)
		}
	}

	return dfa, out
}
