// Package cli implements the treemendous command-line interface.
//
// This package provides commands for creating tree documents, exporting them
// to Graphviz, PNG, and LaTeX qtree output, checking inline markup, and
// editing documents interactively. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - new: Create a new tree document
//   - export: Convert a document to gv, png, tex, or treemendous output
//   - check: Report malformed inline markup without failing the document
//   - info: Show document statistics and notes
//   - view: Browse and edit a document interactively
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/treemendous/treemendous/pkg/buildinfo"
	treeio "github.com/treemendous/treemendous/pkg/io"
	"github.com/treemendous/treemendous/pkg/render"
	"github.com/treemendous/treemendous/pkg/tree"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "treemendous"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "treemendous",
		Short:        "Treemendous builds and exports labeled trees",
		Long:         `Treemendous is a CLI tool for building labeled trees (syntax trees, org charts, outlines) and exporting them to Graphviz, PNG, and LaTeX qtree output.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.newCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Documents
// =============================================================================

// loadDocument reads a tree document from path.
func (c *CLI) loadDocument(path string) (*tree.Tree, error) {
	c.Logger.Debug("loading document", "path", path)
	return treeio.Import(path)
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the configuration directory using XDG standard
// (~/.config/treemendous/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// =============================================================================
// Output Paths
// =============================================================================

// extensionFor maps an export format to its file extension.
func extensionFor(f render.Format) string {
	switch f {
	case render.FormatNative:
		return treeio.Extension
	case render.FormatDOT:
		return ".gv"
	case render.FormatPNG:
		return ".png"
	case render.FormatTeX:
		return ".tex"
	}
	return ""
}

// outputPath picks the output file for an export: the explicit output if
// given, otherwise the input path with the format's extension.
func outputPath(input, output string, f render.Format) string {
	if output != "" {
		return output
	}
	base := input[:len(input)-len(filepath.Ext(input))]
	return base + extensionFor(f)
}
