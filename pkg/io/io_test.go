package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/treemendous/treemendous/pkg/errors"
	"github.com/treemendous/treemendous/pkg/tree"
)

// buildSample returns a small syntax tree with markup and notes.
func buildSample(t *testing.T) *tree.Tree {
	t.Helper()
	tr := tree.New()
	root, err := tr.InsertChild(nil, "TP", "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tr.InsertChild(root, "DP", ""); err != nil {
		t.Fatal(err)
	}
	tbar, err := tr.InsertChild(root, "T<bar/>", "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tr.InsertChild(tbar, "V", "<b>barks</b>"); err != nil {
		t.Fatal(err)
	}
	tr.SetNotes("the dog barks")
	return tr
}

// equalTrees compares structure, order, text and notes.
func equalTrees(a, b *tree.Tree) bool {
	if a.Notes() != b.Notes() {
		return false
	}
	var eq func(x, y *tree.Node) bool
	eq = func(x, y *tree.Node) bool {
		if x == nil || y == nil {
			return x == y
		}
		if x.Label != y.Label || x.Value != y.Value {
			return false
		}
		xc, yc := x.Children(), y.Children()
		if len(xc) != len(yc) {
			return false
		}
		for i := range xc {
			if !eq(xc[i], yc[i]) {
				return false
			}
		}
		return true
	}
	return eq(a.Root(), b.Root())
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		build func(t *testing.T) *tree.Tree
	}{
		{"Sample", buildSample},
		{
			"Empty",
			func(t *testing.T) *tree.Tree { return tree.New() },
		},
		{
			"EmptyWithNotes",
			func(t *testing.T) *tree.Tree {
				tr := tree.New()
				tr.SetNotes("just notes")
				return tr
			},
		},
		{
			"SingleNode",
			func(t *testing.T) *tree.Tree {
				tr := tree.New()
				if _, err := tr.InsertChild(nil, "", "only a value"); err != nil {
					t.Fatal(err)
				}
				return tr
			},
		},
		{
			"UnicodeAndRawMarkup",
			func(t *testing.T) *tree.Tree {
				tr := tree.New()
				root, err := tr.InsertChild(nil, "N<bar/>", "schön ☂")
				if err != nil {
					t.Fatal(err)
				}
				if _, err := tr.InsertChild(root, "<b>unclosed", "a\"b\\c"); err != nil {
					t.Fatal(err)
				}
				return tr
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := tt.build(t)
			var buf bytes.Buffer
			if err := Write(orig, &buf); err != nil {
				t.Fatalf("Write: %v", err)
			}
			got, err := Read(&buf)
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if !equalTrees(orig, got) {
				t.Error("round trip did not preserve the document")
			}
			if got.Dirty() {
				t.Error("freshly read document is dirty")
			}
		})
	}
}

func TestWritePreservesRawMarkup(t *testing.T) {
	tr := buildSample(t)
	var buf bytes.Buffer
	if err := Write(tr, &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `T<bar/>`) && !strings.Contains(out, "T<bar/>") {
		t.Errorf("output lost raw markup tags:\n%s", out)
	}
	if !strings.Contains(out, `"version": "1.0.0"`) {
		t.Errorf("output missing manifest version:\n%s", out)
	}
	if !strings.Contains(out, "the dog barks") {
		t.Errorf("output missing notes:\n%s", out)
	}
}

func TestReadMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code errors.Code
	}{
		{"NotJSON", "not json at all", errors.ErrCodeMalformedFile},
		{"WrongShape", `{"manifest": {"version": "1.0.0"}, "tree": [1,2,3]}`, errors.ErrCodeMalformedFile},
		{"NoManifest", `{"tree": null}`, errors.ErrCodeMalformedFile},
		{"BadVersion", `{"manifest": {"version": "banana"}, "tree": null}`, errors.ErrCodeMalformedFile},
		{"TooNew", `{"manifest": {"version": "2.0.0"}, "tree": null}`, errors.ErrCodeIncompatibleFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.in))
			if err == nil {
				t.Fatal("Read succeeded, want error")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %v, want %v", got, tt.code)
			}
		})
	}
}

func TestReadOlderMajorAndPrerelease(t *testing.T) {
	in := `{"manifest": {"version": "1rc3", "extra": true}, "tree": {"label": "S"}}`
	got, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.Root() == nil || got.Root().Label != "S" {
		t.Error("tree not decoded")
	}
}

func TestExportImportFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample"+Extension)

	orig := buildSample(t)
	if !orig.Dirty() {
		t.Fatal("sample should start dirty")
	}
	if err := Export(orig, path); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if orig.Dirty() {
		t.Error("Export did not clear the dirty flag")
	}

	got, err := Import(path)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if !equalTrees(orig, got) {
		t.Error("file round trip did not preserve the document")
	}
}

func TestImportMissingFile(t *testing.T) {
	_, err := Import(filepath.Join(t.TempDir(), "nope.treemendous"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Fatalf("code = %v, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}

func TestImportFailureLeavesFilesIntact(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.treemendous")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Import(path); err == nil {
		t.Fatal("Import of broken file succeeded")
	}
	// The failed import returns no tree and has no side effects to undo; the
	// broken file itself is untouched.
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "{" {
		t.Errorf("broken file was modified: %q, %v", data, err)
	}
}
