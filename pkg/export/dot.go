package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/procview/procview/pkg/taxonomy"
)

// fill colors per level for the DOT rendering.
var levelFill = map[taxonomy.Level]string{
	"":               "lightgoldenrod1",
	taxonomy.LevelL1: "lightblue",
	taxonomy.LevelL2: "lightcyan",
	taxonomy.LevelL3: "white",
}

// ToDOT converts the hierarchy tree to Graphviz DOT format. Node names
// are not unique across the tree (the same L2 or L3 name can appear
// under different parents), so nodes get sequential synthetic ids and
// the taxonomy name becomes the label.
func ToDOT(root *taxonomy.Node) string {
	var buf bytes.Buffer
	buf.WriteString("digraph hierarchy {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	next := 0
	var walk func(n *taxonomy.Node) string
	walk = func(n *taxonomy.Node) string {
		id := fmt.Sprintf("n%d", next)
		next++
		fmt.Fprintf(&buf, "  %s [label=%q, fillcolor=%q];\n", id, n.Name, levelFill[n.Level])
		for _, c := range n.Children {
			childID := walk(c)
			fmt.Fprintf(&buf, "  %s -> %s;\n", id, childID)
		}
		return id
	}
	walk(root)

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return render(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
