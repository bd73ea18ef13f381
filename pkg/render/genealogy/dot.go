package genealogy

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

const (
	graphName  = "Genealogy"
	graphAttrs = "overlap=prism,rankdir=LR,splines=line,outputorder=edgesfirst"
	nodeAttrs  = `label="",shape=box,style=filled`
)

// ToDOT returns the DOT source for d.
func ToDOT(d *Diagram, opts Options) string {
	var buf bytes.Buffer
	_ = WriteDOT(&buf, d, opts) // bytes.Buffer writes do not fail
	return buf.String()
}

// WriteDOT streams the DOT source for d to w in emission order: graph
// settings, person nodes, relationship edges with their helpers, couple
// nodes and descent edges.
func WriteDOT(w io.Writer, d *Diagram, opts Options) error {
	bw := bufio.NewWriter(w)
	q := quoter(opts.Escape)

	fmt.Fprintf(bw, "digraph %s {\n", graphName)
	fmt.Fprintf(bw, "\tgraph [%s];\n", graphAttrs)
	fmt.Fprintf(bw, "\tnode [%s];\n", nodeAttrs)

	for _, n := range d.Persons {
		fmt.Fprintf(bw, "\t%s [label=%s,fillcolor=%s];\n", n.ID, q(n.Label), q(n.FillColor))
	}

	for _, r := range d.Relations {
		fmt.Fprintf(bw, "\t%s -> %s [xlabel=%s,constraint=false,dir=both,style=%s,color=%s,tooltip=%s,labeltooltip=%s];\n",
			r.From, r.To, q(r.Type), r.Style, q(r.Color), q(r.Tooltip), q(r.Tooltip))
		fmt.Fprintf(bw, "\t%s [style=invis];\n", r.Helper)
		fmt.Fprintf(bw, "\t%s -> %s [style=invis];\n", r.Helper, r.From)
		fmt.Fprintf(bw, "\t%s -> %s [style=invis];\n", r.Helper, r.To)
	}

	for _, c := range d.Couples {
		fmt.Fprintf(bw, "\t%s [label=\"\",shape=point];\n", c.ID)
		for _, parent := range c.Parents {
			fmt.Fprintf(bw, "\t%s -> %s [arrowhead=none];\n", parent, c.ID)
		}
	}

	for _, e := range d.Descents {
		fmt.Fprintf(bw, "\t%s -> %s;\n", e.Couple, e.Child)
	}

	bw.WriteString("}\n")
	return bw.Flush()
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func quoter(escape bool) func(string) string {
	if escape {
		return func(s string) string { return `"` + dotEscaper.Replace(s) + `"` }
	}
	return func(s string) string { return `"` + s + `"` }
}
