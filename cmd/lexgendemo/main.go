/*
Lexgendemo compiles a rule file into a lex.Factory and scans lines of text
against it.

Usage:

	lexgendemo [flags]

The flags are:

	-r, --rules FILE
		The TOML or YAML rule file to compile. Required.

	-i, --input TEXT
		Scan TEXT immediately and exit instead of starting an interactive
		session.

Once a session has started without -i, lines are read from stdin through an
interactive line editor (github.com/chzyer/readline). Each line is scanned to exhaustion
and every matched token is printed as "CATEGORY lexeme". A line with
trailing input no rule can extend is reported and the remainder discarded.
To exit, send EOF (Ctrl-D).
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/pflag"

	"github.com/dekarrin/lexgen/config"
	"github.com/dekarrin/lexgen/lex"
)

const (
	ExitSuccess = iota
	ExitInitError
	ExitRuntimeError
)

var (
	returnCode int = ExitSuccess

	rulesFile *string = pflag.StringP("rules", "r", "", "The TOML or YAML rule file to compile")
	inputText *string = pflag.StringP("input", "i", "", "Scan this text and exit instead of starting a session")
)

func main() {
	defer func() {
		os.Exit(returnCode)
	}()

	pflag.Parse()

	if *rulesFile == "" {
		fmt.Fprintln(os.Stderr, "ERROR: --rules is required")
		returnCode = ExitInitError
		return
	}

	factory, err := compileRules(*rulesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	if *inputText != "" {
		scanLine(factory, *inputText)
		return
	}

	if err := runSession(factory); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitRuntimeError
	}
}

func compileRules(path string) (*lex.Factory[string], error) {
	var rules []lex.Rule[string]
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		rules, err = config.LoadYAML(path)
	} else {
		rules, err = config.LoadTOML(path)
	}
	if err != nil {
		return nil, err
	}

	return lex.Compile(rules)
}

func runSession(factory *lex.Factory[string]) error {
	rl, err := readline.NewEx(&readline.Config{Prompt: "lex> "})
	if err != nil {
		return fmt.Errorf("create readline session: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			return nil
		}
		if err != nil {
			return err
		}
		scanLine(factory, line)
	}
}

func scanLine(factory *lex.Factory[string], line string) {
	scanner := factory.Scanner(line)
	consumed := 0
	for {
		category, lexeme, ok := scanner.Next()
		if !ok {
			break
		}
		consumed += len(lexeme)
		fmt.Printf("%s %q\n", category, lexeme)
	}
	if consumed < len(line) {
		fmt.Fprintf(os.Stderr, "no rule matches at %q; rest of line discarded\n", line[consumed:])
	}
}
