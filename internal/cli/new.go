package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	treeio "github.com/treemendous/treemendous/pkg/io"
	"github.com/treemendous/treemendous/pkg/tree"
)

// newCommand creates the new command for starting a document.
func (c *CLI) newCommand() *cobra.Command {
	var (
		label string
		value string
		notes string
	)

	cmd := &cobra.Command{
		Use:   "new [file" + treeio.Extension + "]",
		Short: "Create a new tree document",
		Long: `Create a new tree document.

The document starts with a single root node. Use 'view' to grow the tree
interactively, or 'export' to convert it to other formats.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runNew(args[0], label, value, notes)
		},
	}

	cmd.Flags().StringVarP(&label, "label", "l", "S", "root node label")
	cmd.Flags().StringVar(&value, "value", "", "root node value")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "document notes")

	return cmd
}

// runNew builds a single-node document and writes it to path.
func (c *CLI) runNew(path, label, value, notes string) error {
	tr := tree.New()
	if _, err := tr.InsertChild(nil, label, value); err != nil {
		return err
	}
	tr.SetNotes(notes)

	if err := treeio.Export(tr, path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	printSuccess("Created %s", path)
	printNextStep("Edit it", fmt.Sprintf("%s view %s", appName, path))
	return nil
}
