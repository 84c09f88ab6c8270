package io

import (
	"encoding/json"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/treemendous/treemendous/pkg/errors"
	"github.com/treemendous/treemendous/pkg/tree"
)

// Read decodes a native-format document from r.
//
// Structural problems (invalid JSON, a missing manifest, wrong shapes)
// return an error with code MALFORMED_FILE. A file written by a newer major
// format version returns INCOMPATIBLE_FORMAT so callers can tell "damaged"
// from "too new" apart. Read never produces a partial tree: it returns a
// complete document or an error, and it does not close r.
func Read(r io.Reader) (*tree.Tree, error) {
	// Unknown fields are tolerated: minor format revisions may add manifest
	// keys and old readers should still open those files.
	var doc document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedFile, err, "not a Treemendous document")
	}

	if doc.Manifest.Version == "" {
		return nil, errors.New(errors.ErrCodeMalformedFile, "manifest has no format version")
	}
	theirMajor, err := majorVersion(doc.Manifest.Version)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedFile, err, "manifest version %q", doc.Manifest.Version)
	}
	ourMajor, _ := majorVersion(FormatVersion)
	if theirMajor > ourMajor {
		return nil, errors.New(errors.ErrCodeIncompatibleFormat,
			"file needs format version %d.0.0 or later, this build reads %s",
			theirMajor, FormatVersion)
	}

	return tree.NewFromRoot(fromWire(doc.Tree), doc.Manifest.Notes), nil
}

// Import reads the file at path and returns the decoded document.
// A missing file maps to FILE_NOT_FOUND; decoding failures carry the same
// codes as [Read].
func Import(path string) (*tree.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	defer f.Close()
	return Read(f)
}

func fromWire(w *node) *tree.Node {
	if w == nil {
		return nil
	}
	children := make([]*tree.Node, 0, len(w.Children))
	for _, c := range w.Children {
		children = append(children, fromWire(c))
	}
	return tree.NewNode(w.Label, w.Value, children...)
}

// majorVersion extracts the leading integer of a semantic version string.
// Pre-release suffixes on the first segment (as in "1rc3") are tolerated.
func majorVersion(v string) (int, error) {
	seg, _, _ := strings.Cut(v, ".")
	i := 0
	for i < len(seg) && seg[i] >= '0' && seg[i] <= '9' {
		i++
	}
	return strconv.Atoi(seg[:i])
}
