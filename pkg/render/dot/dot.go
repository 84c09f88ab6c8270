// Package dot renders a document as a Graphviz graph description.
//
// ToDOT emits one node statement per tree node and one edge statement per
// parent-child link, in display order. Node labels are built from the inline
// markup renderer's Graphviz target, so b/i/u/sup/sub become HTML-like label
// elements and the null/bar glyphs are substituted; malformed markup degrades
// to escaped plain text and the export always succeeds. The resulting text
// can be saved as a .gv file or rasterized to PNG with [RenderPNG].
package dot

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/treemendous/treemendous/pkg/markup"
	"github.com/treemendous/treemendous/pkg/tree"
)

// DefaultDPI is the raster resolution written into the graph attributes
// when Options.DPI is zero.
const DefaultDPI = 400

// Options configures graph emission.
type Options struct {
	// Name is the graph name, usually derived from the document's file
	// name. Empty means "G".
	Name string
	// DPI sets the raster resolution attribute. Zero means [DefaultDPI].
	DPI int
}

// ToDOT converts a document to Graphviz DOT text.
//
// The graph is undirected: tree edges carry no direction worth drawing, and
// plain lines read better for constituent trees. Node identifiers are
// derived from the markup-stripped label (with a numeric suffix to keep them
// unique) and are stable within one export only. An empty document produces
// a header-only graph that is still valid DOT.
func ToDOT(t *tree.Tree, opts Options) string {
	name := opts.Name
	if name == "" {
		name = "G"
	}
	dpi := opts.DPI
	if dpi <= 0 {
		dpi = DefaultDPI
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "graph %q {\n", name)
	fmt.Fprintf(&buf, "  dpi=%d;\n", dpi)
	buf.WriteString("  nodesep=0.25;\n")
	// ranksep is the edge height in inches; 0.02 is the Graphviz minimum.
	buf.WriteString("  ranksep=0.02;\n")
	buf.WriteString("  node [shape=plain];\n")

	if root := t.Root(); root != nil {
		buf.WriteString("\n")
		names := make(map[string]bool)
		var edges bytes.Buffer
		writeNode(&buf, &edges, root, "", names)
		if edges.Len() > 0 {
			buf.WriteString("\n")
			buf.Write(edges.Bytes())
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// writeNode emits the node statement for n and records the edge to its
// parent, then recurses over the children in display order.
func writeNode(nodes, edges *bytes.Buffer, n *tree.Node, parentID string, names map[string]bool) {
	id := freshName(markup.PlainText(n.Label), names)
	fmt.Fprintf(nodes, "  %q [label=%s];\n", id, nodeLabel(n))
	if parentID != "" {
		fmt.Fprintf(edges, "  %q -- %q;\n", parentID, id)
	}
	for _, c := range n.Children() {
		writeNode(nodes, edges, c, id, names)
	}
}

// nodeLabel renders a node's display label: the label alone, or label and
// value stacked when a value is present. The markup renderer guarantees the
// inner text is safe HTML-like content whatever the source contains.
func nodeLabel(n *tree.Node) string {
	lbl := markup.Render(n.Label, markup.TargetDOT)
	if n.Value != "" {
		return "<" + lbl + "<br/>" + markup.Render(n.Value, markup.TargetDOT) + ">"
	}
	if lbl == "" {
		return `""`
	}
	return "<" + lbl + ">"
}

// freshName derives a unique node identifier from base. Nodes whose label
// strips down to nothing are called "node"; collisions get a numeric suffix
// (VP, VP2, VP3, ...), matching how repeated constituents usually read.
func freshName(base string, names map[string]bool) string {
	if base == "" {
		base = "node"
	}
	name := base
	for num := 2; names[name]; num++ {
		name = base + strconv.Itoa(num)
	}
	names[name] = true
	return name
}

// RenderPNG rasterizes DOT text to a PNG image using the embedded Graphviz
// engine. The image resolution follows the dpi attribute [ToDOT] wrote.
// Producing the image file is a shell convenience; the core's own output is
// the DOT text.
func RenderPNG(dotSrc string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dotSrc))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// GraphName derives a graph name from a document file path, mirroring how
// saved exports are titled after the document. An empty path yields "".
func GraphName(path string) string {
	if path == "" {
		return ""
	}
	base := path
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	return base
}
