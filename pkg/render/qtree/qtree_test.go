package qtree

import (
	"strings"
	"testing"

	"github.com/treemendous/treemendous/pkg/tree"
)

func fromShape(t *testing.T, label string, children ...*tree.Node) *tree.Tree {
	t.Helper()
	return tree.NewFromRoot(tree.NewNode(label, "", children...), "")
}

func TestToQtreeEmpty(t *testing.T) {
	if got := ToQtree(tree.New()); got != "" {
		t.Errorf("empty tree = %q, want empty fragment", got)
	}
}

func TestToQtreeSimple(t *testing.T) {
	tr := fromShape(t, "TP",
		tree.NewNode("DP", ""),
		tree.NewNode("T<bar/>", ""),
	)
	want := "\\Tree [.TP\n" +
		"  DP\n" +
		"  T$^{\\prime}$\n" +
		"]\n"
	got := ToQtree(tr)
	if !strings.HasPrefix(got, "% Add \\usepackage{qtree}") {
		t.Errorf("missing preamble note:\n%s", got)
	}
	if !strings.HasSuffix(got, want) {
		t.Errorf("fragment = %q, want suffix %q", got, want)
	}
}

func TestToQtreeDegenerateRoot(t *testing.T) {
	got := ToQtree(fromShape(t, "root"))
	if !strings.HasSuffix(got, "\\Tree [.root\n]\n") {
		t.Errorf("single-node fragment = %q", got)
	}
}

func TestToQtreeMarkupAndValues(t *testing.T) {
	tests := []struct {
		name  string
		build func() *tree.Tree
		want  string
	}{
		{
			name:  "Bold",
			build: func() *tree.Tree { return fromShape(t, "<b>root</b>") },
			want:  "\\Tree [.\\textbf{root}\n]\n",
		},
		{
			name:  "UnclosedDegrades",
			build: func() *tree.Tree { return fromShape(t, "<b>root") },
			want:  "\\Tree [.root\n]\n",
		},
		{
			name: "Value",
			build: func() *tree.Tree {
				return fromShape(t, "N",
					tree.NewNode("D", "the"),
				)
			},
			want: "\\Tree [.N\n  D\\\\the\n]\n",
		},
		{
			name:  "NullGlyph",
			build: func() *tree.Tree { return fromShape(t, "<null/>") },
			want:  "\\Tree [.${\\O}$\n]\n",
		},
		{
			name:  "EscapesSpecials",
			build: func() *tree.Tree { return fromShape(t, "50% off") },
			want:  "\\Tree [.50\\% off\n]\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToQtree(tt.build())
			if !strings.HasSuffix(got, tt.want) {
				t.Errorf("fragment = %q, want suffix %q", got, tt.want)
			}
		})
	}
}

func TestToQtreeNesting(t *testing.T) {
	tr := fromShape(t, "S",
		tree.NewNode("NP", "",
			tree.NewNode("N", "dog"),
		),
		tree.NewNode("VP", ""),
	)
	want := "\\Tree [.S\n" +
		"  [.NP\n" +
		"    N\\\\dog\n" +
		"  ]\n" +
		"  VP\n" +
		"]\n"
	got := ToQtree(tr)
	if !strings.HasSuffix(got, want) {
		t.Errorf("fragment = %q, want suffix %q", got, want)
	}
}
