package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// viewCommand creates the view command for interactive editing.
func (c *CLI) viewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [file.treemendous]",
		Short: "Browse and edit a document interactively",
		Long: `Browse and edit a document interactively.

Opens a full-screen tree browser. The cursor moves over the tree in display
order; structure keys insert, reorder, copy, paste, and delete nodes, and an
inline editor changes labels and values. Press w to save and q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runView(args[0])
		},
	}

	return cmd
}

// runView loads the document and runs the tree browser until quit.
func (c *CLI) runView(path string) error {
	tr, err := c.loadDocument(path)
	if err != nil {
		return err
	}

	model := NewTreeModel(tr, path)
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run editor: %w", err)
	}

	if m, ok := final.(TreeModel); ok && m.Doc.Dirty() {
		printWarning("Unsaved changes discarded (press w to save before quitting)")
	}
	return nil
}
