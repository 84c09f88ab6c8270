package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/treemendous/treemendous/pkg/markup"
	"github.com/treemendous/treemendous/pkg/tree"
)

// markupIssue locates one malformed markup text within a document.
type markupIssue struct {
	// index is the node's position in display (pre-order) traversal.
	index int
	// label is the node's markup-stripped label for display.
	label string
	// field names the offending text, "label" or "value".
	field string
	err   error
}

// checkCommand creates the check command for validating inline markup.
func (c *CLI) checkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [file.treemendous]",
		Short: "Report malformed inline markup",
		Long: `Report malformed inline markup.

Checks every node label and value against the markup vocabulary
(b, i, u, sup, sub, null, bar) and reports unknown tags, unclosed tags,
and mismatched closing tags.

Findings are advisory: exports still succeed by degrading affected text
to plain content, so check never fails the document.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(args[0])
		},
	}

	return cmd
}

// runCheck validates every text in the document and reports the findings.
func (c *CLI) runCheck(path string) error {
	tr, err := c.loadDocument(path)
	if err != nil {
		return err
	}

	issues := collectMarkupIssues(tr)
	if len(issues) == 0 {
		printSuccess("No markup problems in %s", path)
		printStats(tr.Size(), tr.Depth())
		return nil
	}

	for _, issue := range issues {
		printWarning("node %d (%s) %s: %v", issue.index, issue.label, issue.field, issue.err)
	}
	printDetail("%d problem(s) in %d nodes", len(issues), tr.Size())
	printNextStep("Fix them", fmt.Sprintf("%s view %s", appName, path))
	return nil
}

// collectMarkupIssues validates all labels and values in display order.
func collectMarkupIssues(tr *tree.Tree) []markupIssue {
	var issues []markupIssue
	index := 0
	tr.Walk(func(n *tree.Node) bool {
		display := markup.PlainText(n.Label)
		if err := markup.Validate(n.Label); err != nil {
			issues = append(issues, markupIssue{index: index, label: display, field: "label", err: err})
		}
		if err := markup.Validate(n.Value); err != nil {
			issues = append(issues, markupIssue{index: index, label: display, field: "value", err: err})
		}
		index++
		return true
	})
	return issues
}
