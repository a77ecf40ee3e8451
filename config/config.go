// Package config loads a rule list for lex.Compile from a file on disk.
// Compile itself never touches a filesystem; this package is the thin,
// replaceable loader that turns TOML or YAML rule files into
// []lex.Rule[string].
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/dekarrin/lexgen/lex"
)

// RuleSet is the on-disk shape of a rule file, usable directly as either
// TOML or YAML: an ordered list of rules, each a pattern plus the category
// name emitted when it matches. List order is priority order, matching
// lex.Rule's contract.
type RuleSet struct {
	Rules []RuleEntry `toml:"rules" yaml:"rules"`
}

// RuleEntry is one rule in a RuleSet.
type RuleEntry struct {
	Pattern  string `toml:"pattern" yaml:"pattern"`
	Category string `toml:"category" yaml:"category"`
}

// LoadTOML reads a TOML rule file from path and converts it to the ordered
// rule list lex.Compile expects.
func LoadTOML(path string) ([]lex.Rule[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var rs RuleSet
	if err := toml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("parsing %s as TOML: %w", path, err)
	}

	return rs.toRules(path), nil
}

// LoadYAML reads a YAML rule file from path and converts it to the ordered
// rule list lex.Compile expects.
func LoadYAML(path string) ([]lex.Rule[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("parsing %s as YAML: %w", path, err)
	}

	return rs.toRules(path), nil
}

// toRules converts the parsed RuleSet to lex.Rule entries, warning (but not
// failing) on rules with an empty pattern, which can never match anything
// and are almost always a typo in the rule file rather than an intentional
// no-op rule.
func (rs RuleSet) toRules(path string) []lex.Rule[string] {
	rules := make([]lex.Rule[string], 0, len(rs.Rules))
	for i, entry := range rs.Rules {
		if entry.Pattern == "" {
			log.Printf("config: %s: rule %d (%q) has an empty pattern, skipping", path, i, entry.Category)
			continue
		}
		rules = append(rules, lex.Rule[string]{
			Pattern:  entry.Pattern,
			Category: entry.Category,
		})
	}
	return rules
}
