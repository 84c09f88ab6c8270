// Package render exposes the closed set of export formats for a document.
//
// # Overview
//
// A document exports to exactly four representations:
//
//   - The native .treemendous format (round-trippable, handled by [pkg/io])
//   - Graphviz DOT text (in the [dot] subpackage)
//   - A rendered PNG image of that graph (also [dot], via goccy/go-graphviz)
//   - A LaTeX qtree fragment (in the [qtree] subpackage)
//
// The set is deliberately closed: [Format] is a tagged enum and [ForFormat]
// maps each member to its exporter. There is no plugin registry; adding a
// format means adding a case here.
//
// # Usage
//
//	exp, err := render.ForFormat(render.FormatDOT)
//	if err != nil { ... }
//	out, err := exp.Export(doc)
//
// Text exporters never fail on document content: malformed inline markup
// degrades to escaped plain text inside the exporters, and an empty document
// produces a syntactically valid (node-free or empty) output.
//
// [dot]: github.com/treemendous/treemendous/pkg/render/dot
// [qtree]: github.com/treemendous/treemendous/pkg/render/qtree
// [pkg/io]: github.com/treemendous/treemendous/pkg/io
package render

import (
	"bytes"

	"github.com/treemendous/treemendous/pkg/errors"
	treeio "github.com/treemendous/treemendous/pkg/io"
	"github.com/treemendous/treemendous/pkg/render/dot"
	"github.com/treemendous/treemendous/pkg/render/qtree"
	"github.com/treemendous/treemendous/pkg/tree"
)

// Format names one export representation.
type Format string

const (
	// FormatNative is the round-trippable .treemendous document format.
	FormatNative Format = "treemendous"
	// FormatDOT is Graphviz DOT text (.gv).
	FormatDOT Format = "gv"
	// FormatPNG is the Graphviz graph rasterized to a PNG image.
	FormatPNG Format = "png"
	// FormatTeX is a LaTeX fragment in qtree bracket notation (.tex).
	FormatTeX Format = "tex"
)

// Formats lists every supported format in display order.
func Formats() []Format {
	return []Format{FormatNative, FormatDOT, FormatPNG, FormatTeX}
}

// Exporter turns a document into one output representation. Exporters are
// read-only traversals; they never mutate the document.
type Exporter interface {
	// Format identifies the representation this exporter produces.
	Format() Format
	// Export renders the document. Text formats return UTF-8 text bytes;
	// FormatPNG returns image bytes. Export fails only on resource-level
	// problems (e.g. the Graphviz engine), never on document content.
	Export(t *tree.Tree) ([]byte, error)
}

// ForFormat returns the exporter for f, or an INVALID_FORMAT error for a
// name outside the closed set.
func ForFormat(f Format) (Exporter, error) {
	switch f {
	case FormatNative:
		return nativeExporter{}, nil
	case FormatDOT:
		return dotExporter{}, nil
	case FormatPNG:
		return pngExporter{}, nil
	case FormatTeX:
		return texExporter{}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown export format: %s", f)
}

type nativeExporter struct{}

func (nativeExporter) Format() Format { return FormatNative }

func (nativeExporter) Export(t *tree.Tree) ([]byte, error) {
	var buf bytes.Buffer
	if err := treeio.Write(t, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type dotExporter struct{}

func (dotExporter) Format() Format { return FormatDOT }

func (dotExporter) Export(t *tree.Tree) ([]byte, error) {
	return []byte(dot.ToDOT(t, dot.Options{})), nil
}

type pngExporter struct{}

func (pngExporter) Format() Format { return FormatPNG }

func (pngExporter) Export(t *tree.Tree) ([]byte, error) {
	return dot.RenderPNG(dot.ToDOT(t, dot.Options{}))
}

type texExporter struct{}

func (texExporter) Format() Format { return FormatTeX }

func (texExporter) Export(t *tree.Tree) ([]byte, error) {
	return []byte(qtree.ToQtree(t)), nil
}
