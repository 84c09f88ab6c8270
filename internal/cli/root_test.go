package cli

import (
	"bytes"
	"testing"
)

func TestRootCommand(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	root := c.RootCommand()
	if root.Use != "treemendous" {
		t.Errorf("root.Use = %q, want %q", root.Use, "treemendous")
	}

	want := []string{"new", "export", "check", "info", "view", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
