package automaton

import (
	"fmt"
	"io"

	"github.com/dekarrin/rosed"
	"github.com/dustin/go-humanize"
)

// Dump writes a Graphviz-ish description of a to w: a header, one
// shape-annotated entry per accepting state, one labeled edge per
// transition (ε rendered as the literal token "(eps)"), and a footer. This
// is a diagnostic, not a compilation step — it exists purely for a human or
// a graph visualizer to read, and nothing in the compilation pipeline calls
// it.
func (a *Automaton) Dump(w io.Writer, title string) {
	legend := fmt.Sprintf(
		"%s: %s states, %s transitions, start=%d",
		title, humanize.Comma(int64(len(a.States))), humanize.Comma(int64(a.transitionCount())), a.Start,
	)
	legend = rosed.Edit(legend).Wrap(72).String()

	fmt.Fprintf(w, "digraph {\n\t// %s\n", legend)
	fmt.Fprintf(w, "\t%d [shape=box];\n", a.Start)

	for _, idx := range a.AcceptingSet().Elements() {
		fmt.Fprintf(w, "\t%d [shape=doublecircle];\n", idx)
	}

	for src, st := range a.States {
		for _, t := range st.Transitions {
			label := string(t.Symbol)
			if t.Symbol == Epsilon {
				label = "(eps)"
			}
			fmt.Fprintf(w, "\t%d -> %d [label=%q];\n", src, t.Dest, label)
		}
	}

	fmt.Fprint(w, "}\n")
}

func (a *Automaton) transitionCount() int {
	n := 0
	for _, st := range a.States {
		n += len(st.Transitions)
	}
	return n
}
