package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/treemendous/treemendous/pkg/tree"
)

// FormatVersion is the native format version written into every manifest.
// Readers refuse files with a newer major version.
const FormatVersion = "1.0.0"

// Extension is the conventional file extension for native documents.
const Extension = ".treemendous"

type document struct {
	Manifest manifest `json:"manifest"`
	Tree     *node    `json:"tree"`
}

type manifest struct {
	Version string `json:"version"`
	Notes   string `json:"notes,omitempty"`
}

type node struct {
	Label    string  `json:"label"`
	Value    string  `json:"value,omitempty"`
	Children []*node `json:"children,omitempty"`
}

func toWire(n *tree.Node) *node {
	if n == nil {
		return nil
	}
	w := &node{Label: n.Label, Value: n.Value}
	for _, c := range n.Children() {
		w.Children = append(w.Children, toWire(c))
	}
	return w
}

// Write encodes a document as native-format JSON and writes it to w.
// Labels and values are emitted verbatim (markup tags preserved), child
// order is preserved, and an empty document encodes with a null tree.
// The output can be re-read with [Read] for round-trip processing.
func Write(t *tree.Tree, w io.Writer) error {
	out := document{
		Manifest: manifest{Version: FormatVersion, Notes: t.Notes()},
		Tree:     toWire(t.Root()),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Export writes a document to the file at path and clears its dirty flag on
// success. This is the save operation of the editing shell.
func Export(t *tree.Tree, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := Write(t, f); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	t.MarkClean()
	return nil
}
