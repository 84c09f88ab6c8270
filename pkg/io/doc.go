// Package io reads and writes the native .treemendous document format.
//
// The format is a single human-diffable JSON document holding a manifest
// (format version plus the document-level notes) and the tree itself:
//
//	{
//	  "manifest": {"version": "1.0.0", "notes": "the dog barks"},
//	  "tree": {"label": "S", "children": [{"label": "NP"}, {"label": "VP"}]}
//	}
//
// Labels and values are stored verbatim, raw inline markup included, and
// child order is the display order, so Read(Write(t)) reproduces t exactly.
// An empty document serializes with a null tree.
//
// The manifest version gates compatibility: a file whose major version is
// newer than this package's is refused rather than half-read. Read never
// mutates any existing in-memory document; it either returns a complete new
// tree or an error.
package io
