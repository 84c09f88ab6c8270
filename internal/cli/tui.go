package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	treeio "github.com/treemendous/treemendous/pkg/io"
	"github.com/treemendous/treemendous/pkg/markup"
	"github.com/treemendous/treemendous/pkg/tree"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listEditStyle     = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// TreeModel - Interactive document editing
// =============================================================================

// editField names the text being edited in the inline editor.
type editField int

const (
	fieldNone editField = iota
	fieldLabel
	fieldValue
)

// treeRow pairs a node with its indentation depth for display.
type treeRow struct {
	node  *tree.Node
	depth int
}

// TreeModel is the bubbletea model for browsing and editing a document.
//
// Navigation moves a cursor over the pre-order listing of the tree. Structure
// keys insert, reorder, and delete nodes; c/v/V move subtrees through a
// single-slot clipboard; e and E open an inline editor over the selected
// node's label or value.
type TreeModel struct {
	Doc  *tree.Tree
	Path string

	clipboard *tree.Clipboard
	rows      []treeRow
	Cursor    int
	Height    int
	Offset    int

	editing editField
	buffer  string
	status  string
}

// NewTreeModel creates a model over doc. path is where 'w' saves to.
func NewTreeModel(doc *tree.Tree, path string) TreeModel {
	m := TreeModel{
		Doc:       doc,
		Path:      path,
		clipboard: tree.NewClipboard(),
		Height:    20,
	}
	m.refresh()
	return m
}

// refresh rebuilds the display rows after a structural change and clamps the
// cursor back into range.
func (m *TreeModel) refresh() {
	m.rows = m.rows[:0]
	depths := map[*tree.Node]int{}
	m.Doc.Walk(func(n *tree.Node) bool {
		d := 0
		if p := n.Parent(); p != nil {
			d = depths[p] + 1
		}
		depths[n] = d
		m.rows = append(m.rows, treeRow{node: n, depth: d})
		return true
	})
	if m.Cursor >= len(m.rows) {
		m.Cursor = len(m.rows) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

// selected returns the node under the cursor, or nil for an empty document.
func (m *TreeModel) selected() *tree.Node {
	if m.Cursor < 0 || m.Cursor >= len(m.rows) {
		return nil
	}
	return m.rows[m.Cursor].node
}

func (m TreeModel) Init() tea.Cmd {
	return nil
}

func (m TreeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing != fieldNone {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

// updateBrowsing handles keys in browse mode.
func (m TreeModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
			if m.Cursor < m.Offset {
				m.Offset = m.Cursor
			}
		}
	case "down", "j":
		if m.Cursor < len(m.rows)-1 {
			m.Cursor++
			if m.Cursor >= m.Offset+m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		}

	case "K":
		m.moveSelected(m.Doc.MoveUp)
	case "J":
		m.moveSelected(m.Doc.MoveDown)

	case "a":
		return m.insertAndEdit(func(target *tree.Node) (*tree.Node, error) {
			return m.Doc.InsertChild(target, "", "")
		})
	case "s":
		return m.insertAndEdit(func(target *tree.Node) (*tree.Node, error) {
			return m.Doc.InsertSibling(target, "", "")
		})
	case "n":
		return m.insertAndEdit(func(target *tree.Node) (*tree.Node, error) {
			return m.Doc.InsertParent(target, "", "")
		})

	case "d":
		if n := m.selected(); n != nil {
			if err := m.Doc.DeleteSubtree(n); err != nil {
				m.status = err.Error()
			} else {
				m.refresh()
				m.status = "deleted"
			}
		}

	case "c":
		if n := m.selected(); n != nil {
			if _, err := m.clipboard.Copy(n); err != nil {
				m.status = err.Error()
			} else {
				m.status = "copied subtree"
			}
		}
	case "v":
		m.pasteSelected(tree.PositionChild)
	case "V":
		m.pasteSelected(tree.PositionSibling)

	case "e":
		if n := m.selected(); n != nil {
			m.editing = fieldLabel
			m.buffer = n.Label
		}
	case "E":
		if n := m.selected(); n != nil {
			m.editing = fieldValue
			m.buffer = n.Value
		}

	case "w":
		if err := treeio.Export(m.Doc, m.Path); err != nil {
			m.status = err.Error()
		} else {
			m.status = "saved " + m.Path
		}
	}
	return m, nil
}

// insertAndEdit runs an insert operation against the cursor node and, on
// success, opens the label editor over the fresh node.
func (m TreeModel) insertAndEdit(insert func(*tree.Node) (*tree.Node, error)) (tea.Model, tea.Cmd) {
	target := m.selected()
	n, err := insert(target)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.refresh()
	for i, r := range m.rows {
		if r.node == n {
			m.Cursor = i
			break
		}
	}
	m.editing = fieldLabel
	m.buffer = ""
	return m, nil
}

// moveSelected reorders the cursor node among its siblings and keeps the
// cursor on it.
func (m *TreeModel) moveSelected(move func(*tree.Node) (bool, error)) {
	n := m.selected()
	if n == nil {
		return
	}
	moved, err := move(n)
	if err != nil {
		m.status = err.Error()
		return
	}
	if !moved {
		m.status = "already at the edge"
		return
	}
	m.refresh()
	for i, r := range m.rows {
		if r.node == n {
			m.Cursor = i
			break
		}
	}
}

// pasteSelected pastes the clipboard subtree relative to the cursor node.
func (m *TreeModel) pasteSelected(pos tree.Position) {
	n, err := m.clipboard.Paste(m.Doc, m.selected(), pos)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.refresh()
	for i, r := range m.rows {
		if r.node == n {
			m.Cursor = i
			break
		}
	}
	m.status = "pasted"
}

// updateEditing handles keys while the inline editor is open.
func (m TreeModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = fieldNone
		m.buffer = ""
		return m, nil
	case "enter":
		n := m.selected()
		if n != nil {
			label, value := n.Label, n.Value
			if m.editing == fieldLabel {
				label = m.buffer
			} else {
				value = m.buffer
			}
			if err := m.Doc.EditNode(n, label, value); err != nil {
				m.status = err.Error()
			} else if err := markup.Validate(m.buffer); err != nil {
				// Malformed markup is saved anyway; exports degrade it.
				m.status = "warning: " + err.Error()
			}
		}
		m.editing = fieldNone
		m.buffer = ""
		return m, nil
	case "backspace":
		if m.buffer != "" {
			r := []rune(m.buffer)
			m.buffer = string(r[:len(r)-1])
		}
		return m, nil
	}
	switch msg.Type {
	case tea.KeyRunes:
		m.buffer += string(msg.Runes)
	case tea.KeySpace:
		m.buffer += " "
	}
	return m, nil
}

func (m TreeModel) View() string {
	var b strings.Builder

	title := m.Path
	if m.Doc.Dirty() {
		title += " *"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ move  K/J reorder  e/E edit  a child  s sibling  n parent  d delete  c copy  v/V paste  w save  q quit"))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(listDimStyle.Render("  (empty document; press a to add a root)"))
		b.WriteString("\n")
	}

	end := m.Offset + m.Height
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for i := m.Offset; i < end; i++ {
		r := m.rows[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		text := markup.PlainText(r.node.Label)
		if text == "" {
			text = "·"
		}
		line := cursor + strings.Repeat("  ", r.depth) + text
		if v := r.node.Value; v != "" {
			line += "  " + listDimStyle.Render(markup.PlainText(v))
		}

		if i == m.Cursor {
			if m.editing != fieldNone {
				field := "label"
				if m.editing == fieldValue {
					field = "value"
				}
				line = cursor + strings.Repeat("  ", r.depth) +
					listEditStyle.Render(fmt.Sprintf("%s: %s▏", field, m.buffer))
			} else {
				line = listSelectedStyle.Render(line)
			}
		} else {
			line = listNormalStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(listDimStyle.Render("  " + m.status))
	} else {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.rows))))
	}
	b.WriteString("\n")

	return b.String()
}
