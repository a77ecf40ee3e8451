package lex

import "github.com/google/uuid"

// Scanner walks a Factory's compiled DFA over one input string, producing
// one longest-match token per call to Next. Its state is the current
// position in the input plus nothing else — a Scanner is cheap to create
// and is not safe for concurrent use by more than one goroutine.
type Scanner[C any] struct {
	id    uuid.UUID
	f     *Factory[C]
	input []rune
	pos   int
}

// ID returns the scanner's identity, stamped at creation.
func (s *Scanner[C]) ID() uuid.UUID {
	return s.id
}

// Reset rewinds the scanner to the start of a new input, reusing the same
// compiled Factory.
func (s *Scanner[C]) Reset(input string) {
	s.input = []rune(input)
	s.pos = 0
}

// Next walks the DFA from its start state over the remaining input,
// tracking the position and category of the most recent accepting state
// seen. It returns the category and lexeme of the longest prefix matched by
// any rule, with ties broken in favor of the earliest (highest-priority)
// rule — a DFA state can only belong to one rule's partition block, the
// earlier rule's block, so the tie is already resolved in the tables built
// by Compile.
//
// ok is false once nothing more can be matched, either because the input is
// exhausted or because the next character cannot extend any live rule. A
// false result never advances pos, so calling Next again without an
// intervening Reset returns the same false result.
func (s *Scanner[C]) Next() (category C, lexeme string, ok bool) {
	state := 0
	successPos := s.pos
	var successCategory C
	matched := false

	for pos := s.pos; pos < len(s.input); pos++ {
		dest, known := s.f.transitions[state][s.input[pos]]
		if !known {
			break
		}
		state = dest
		if s.f.accepting[state] {
			successPos = pos + 1
			successCategory = s.f.categories[state]
			matched = true
		}
	}

	if !matched {
		var zero C
		return zero, "", false
	}

	lexeme = string(s.input[s.pos:successPos])
	s.pos = successPos
	return successCategory, lexeme, true
}
