// Package qtree renders a document as a LaTeX fragment in the bracket
// notation of the qtree package.
//
// Each node becomes a bracketed group "[.label ... ]" with its children
// nested inside in display order; leaves below the root render bare. Labels
// and values pass through the inline markup renderer's TeX target, so tags
// become LaTeX commands and TeX-significant characters are escaped. The
// fragment expects \usepackage{qtree} in the consuming document's preamble;
// no typesetting engine is ever invoked here.
package qtree

import (
	"strings"

	"github.com/treemendous/treemendous/pkg/markup"
	"github.com/treemendous/treemendous/pkg/tree"
)

// preambleNote reminds the user what the consuming document needs.
const preambleNote = `% Add \usepackage{qtree} to the preamble of your document.`

// ToQtree converts a document to a qtree LaTeX fragment.
// An empty document produces an empty fragment.
func ToQtree(t *tree.Tree) string {
	root := t.Root()
	if root == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(preambleNote)
	b.WriteString("\n\n\\Tree ")
	writeNode(&b, root, 0)
	return b.String()
}

// writeNode emits one node at the given depth. Leaves below the root render
// without a bracket group; everything else opens "[." and closes with a "]"
// line at its own indentation.
func writeNode(b *strings.Builder, n *tree.Node, level int) {
	children := n.Children()
	leaf := len(children) == 0 && level > 0

	indent := strings.Repeat("  ", level)
	b.WriteString(indent)
	if !leaf {
		b.WriteString("[.")
	}
	b.WriteString(markup.Render(n.Label, markup.TargetTeX))
	if n.Value != "" {
		// Stack the value under the label inside the same node.
		b.WriteString(`\\`)
		b.WriteString(markup.Render(n.Value, markup.TargetTeX))
	}
	b.WriteString("\n")
	for _, c := range children {
		writeNode(b, c, level+1)
	}
	if !leaf {
		b.WriteString(indent)
		b.WriteString("]\n")
	}
}
