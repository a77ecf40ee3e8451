package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// exampleRules is a small rule list exercising priority-breaks-ties
// behavior: keywords beat identifiers at equal length because they're
// listed first, identifiers absorb anything keywords don't reach, and runs
// of spaces are their own token.
func exampleRules() []Rule[string] {
	return []Rule[string]{
		{Pattern: "ab|ac", Category: "KEYWORD"},
		{Pattern: "[a-c]+", Category: "IDENT"},
		{Pattern: " +", Category: "SPACE"},
	}
}

type token struct {
	category string
	lexeme   string
}

func scanAll(t *testing.T, f *Factory[string], input string) []token {
	t.Helper()
	s := f.Scanner(input)
	var out []token
	for {
		cat, lexeme, ok := s.Next()
		if !ok {
			break
		}
		out = append(out, token{category: cat, lexeme: lexeme})
	}
	return out
}

func Test_Compile_and_Scan(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect []token
	}{
		{
			name:  "keyword wins over identifier at equal length",
			input: "ab",
			expect: []token{
				{"KEYWORD", "ab"},
			},
		},
		{
			name:  "other keyword alternative",
			input: "ac",
			expect: []token{
				{"KEYWORD", "ac"},
			},
		},
		{
			name:  "identifier wins when it matches more input than the keyword",
			input: "abc",
			expect: []token{
				{"IDENT", "abc"},
			},
		},
		{
			name:  "identifier absorbs a run the keyword cannot extend into",
			input: "cba",
			expect: []token{
				{"IDENT", "cba"},
			},
		},
		{
			name:  "space and identifiers interleave",
			input: "a bc",
			expect: []token{
				{"IDENT", "a"},
				{"SPACE", " "},
				{"IDENT", "bc"},
			},
		},
		{
			name:  "run of spaces is one token, not one per space",
			input: "a   b",
			expect: []token{
				{"IDENT", "a"},
				{"SPACE", "   "},
				{"IDENT", "b"},
			},
		},
	}

	factory, err := Compile(exampleRules())
	if !assert.New(t).NoError(err) {
		return
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(tc.expect, scanAll(t, factory, tc.input))
		})
	}
}

func Test_Scanner_stopsOnUnmatchedInput(t *testing.T) {
	assert := assert.New(t)

	factory, err := Compile(exampleRules())
	if !assert.NoError(err) {
		return
	}

	s := factory.Scanner("xyz")
	_, _, ok := s.Next()
	assert.False(ok, "no rule starts with 'x', scanner should report no match")
}

func Test_Scanner_Reset(t *testing.T) {
	assert := assert.New(t)

	factory, err := Compile(exampleRules())
	if !assert.NoError(err) {
		return
	}

	s := factory.Scanner("ab")
	cat, lexeme, ok := s.Next()
	assert.True(ok)
	assert.Equal("KEYWORD", cat)
	assert.Equal("ab", lexeme)

	s.Reset("  ")
	cat, lexeme, ok = s.Next()
	assert.True(ok)
	assert.Equal("SPACE", cat)
	assert.Equal("  ", lexeme)
}

func Test_Compile_reportsSyntaxErrorWithRuleContext(t *testing.T) {
	assert := assert.New(t)

	_, err := Compile([]Rule[string]{
		{Pattern: "a", Category: "A"},
		{Pattern: "(b", Category: "B"},
	})

	if !assert.Error(err) {
		return
	}
	var syntaxErr *SyntaxError
	assert.ErrorAs(err, &syntaxErr)
	assert.Contains(err.Error(), "rule 1")
}

func Test_Factory_and_Scanner_IDs_areUnique(t *testing.T) {
	assert := assert.New(t)

	f1, err := Compile(exampleRules())
	if !assert.NoError(err) {
		return
	}
	f2, err := Compile(exampleRules())
	if !assert.NoError(err) {
		return
	}
	assert.NotEqual(f1.ID(), f2.ID())

	s1 := f1.Scanner("ab")
	s2 := f1.Scanner("ac")
	assert.NotEqual(s1.ID(), s2.ID())
}
