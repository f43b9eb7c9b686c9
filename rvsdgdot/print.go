package rvsdgdot

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/feroldi/vsdg/rvsdg"
)

// Fprint writes ctx's DOT rendering to w, in the exact grammar spec.md §6
// fixes: one record-shaped node per operation node, in creation order,
// each node line followed by that node's incoming edges: one blue edge per
// value connection, then one dashed red edge per state connection. Structured (Apply/Gamma/Omega) kinds are not
// printed, since this core never populates their child regions.
func Fprint[S rvsdg.Operation](w io.Writer, ctx *rvsdg.Context[S]) error {
	bw := bufWriter{w: w}

	fmt.Fprintln(&bw, "digraph rvsdg {")
	fmt.Fprintln(&bw, "    node [shape=record]")
	fmt.Fprintln(&bw, "    edge [arrowhead=none]")

	n := ctx.NumNodes()
	for i := 0; i < n; i++ {
		node := ctx.NodeRef(rvsdg.NodeId(i))
		op, ok := node.Kind().Op()
		if !ok {
			continue
		}
		sig := node.Sig()
		fmt.Fprintf(&bw, "    n%d [label=\"%s\"]\n", i, nodeLabel(op, sig))

		for j := 0; j < sig.ValIns; j++ {
			in := node.ValIn(j)
			if !in.IsConnected() {
				continue
			}
			origin := in.Origin()
			producer := origin.Producer()
			fmt.Fprintf(&bw, "    n%d:o%d -> n%d:i%d [color=blue]\n", producer.Id(), origin.Id().Index(), node.Id(), j)
		}
		for j := 0; j < sig.StIns; j++ {
			in := node.StIn(j)
			if !in.IsConnected() {
				continue
			}
			origin := in.Origin()
			producer := origin.Producer()
			fmt.Fprintf(&bw, "    n%d:o%d -> n%d:i%d [style=dashed, color=red]\n", producer.Id(), origin.Id().Index(), node.Id(), sig.ValIns+j)
		}
	}

	fmt.Fprintln(&bw, "}")
	return bw.err
}

// Sprint renders ctx to a string, for tests and tools that want the text
// directly rather than an io.Writer.
func Sprint[S rvsdg.Operation](ctx *rvsdg.Context[S]) string {
	var buf bytes.Buffer
	_ = Fprint(&buf, ctx)
	return buf.String()
}

// nodeLabel assembles a node's three record fields — input-port list,
// operation label, output-port list — dropping any that are empty, and
// wraps the joined fields in one more pair of braces, per spec.md §6.
func nodeLabel[S rvsdg.Operation](op S, sig rvsdg.Signature) string {
	var fields []string
	if ports := portList("i", sig.NumInputPorts()); ports != "" {
		fields = append(fields, ports)
	}
	fields = append(fields, escapeLabel(debugString(op)))
	if ports := portList("o", sig.NumOutputPorts()); ports != "" {
		fields = append(fields, ports)
	}
	return "{{" + strings.Join(fields, "}|{") + "}}"
}

// portList renders "<PREFIX0>0|<PREFIX1>1|..." for indices 0..n-1, or the
// empty string when n is 0 (the caller drops empty fields entirely).
func portList(prefix string, n int) string {
	if n == 0 {
		return ""
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf("<%s%d>%d", prefix, i, i)
	}
	return strings.Join(parts, "|")
}

// debugString renders op the way the DOT label wants it: via fmt.Stringer
// if op implements it, falling back to Go's default %v rendering
// otherwise.
func debugString[S any](op S) string {
	if s, ok := any(op).(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", op)
}

// escapeLabel backslash-escapes the record-label metacharacters { and }.
func escapeLabel(s string) string {
	s = strings.ReplaceAll(s, "{", "\\{")
	s = strings.ReplaceAll(s, "}", "\\}")
	return s
}

// bufWriter tracks the first write error instead of ignoring it, so Fprint
// can return one I/O error instead of silently dropping output mid-graph.
type bufWriter struct {
	w   io.Writer
	err error
}

func (b *bufWriter) Write(p []byte) (int, error) {
	if b.err != nil {
		return 0, b.err
	}
	n, err := b.w.Write(p)
	if err != nil {
		b.err = err
	}
	return n, err
}
