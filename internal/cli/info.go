package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	treeio "github.com/treemendous/treemendous/pkg/io"
	"github.com/treemendous/treemendous/pkg/markup"
)

// infoCommand creates the info command for inspecting a document.
func (c *CLI) infoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info [file.treemendous]",
		Short: "Show document statistics and notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInfo(args[0])
		},
	}

	return cmd
}

// runInfo prints document metadata and shape statistics.
func (c *CLI) runInfo(path string) error {
	tr, err := c.loadDocument(path)
	if err != nil {
		return err
	}

	fmt.Println(StyleTitle.Render(path))
	printKeyValue("format", treeio.FormatVersion)
	printKeyValue("nodes", fmt.Sprintf("%d", tr.Size()))
	printKeyValue("depth", fmt.Sprintf("%d", tr.Depth()))
	if root := tr.Root(); root != nil {
		printKeyValue("root", markup.PlainText(root.Label))
	}
	if notes := tr.Notes(); notes != "" {
		printKeyValue("notes", notes)
	}
	return nil
}
