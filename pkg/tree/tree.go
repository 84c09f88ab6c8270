// Package tree implements the labeled-tree document model: ordered trees of
// labeled/valued nodes, the structural mutation operations an editing shell
// drives, and the single-slot clipboard used to move subtrees between open
// documents.
//
// A [Tree] owns its whole node graph. Parent back-references exist only for
// upward navigation and are maintained by every mutation; they never carry
// ownership. The structure is strictly a rooted tree: no cycles, no shared
// children, and a node belongs to exactly one tree at a time.
//
// Tree is not safe for concurrent use without external synchronization. The
// expected driver is a single-focus editing shell that completes one command
// before starting the next; exports and serialization are read-only
// traversals and are safe against a tree that is not being mutated.
package tree

import (
	"errors"
	"slices"
)

var (
	// ErrNotInTree is returned when an operation's target node is not part
	// of the tree it was invoked against. Membership is checked by identity,
	// not by equality.
	ErrNotInTree = errors.New("target node is not in this tree")

	// ErrNoParent is returned by operations that require the target to have
	// a parent (sibling insertion, moves) when the target is the root.
	ErrNoParent = errors.New("target node has no parent")

	// ErrEmptyClipboard is returned by [Clipboard.Paste] before anything has
	// been copied in the process lifetime.
	ErrEmptyClipboard = errors.New("clipboard is empty")
)

// Node is a single element of a tree: a label, a value, and an ordered list
// of children. Label and value may be empty and may contain raw inline
// markup; the model never interprets it. Nodes are created through the Tree
// mutation operations and through [Node.Clone].
type Node struct {
	Label string
	Value string

	children []*Node
	parent   *Node
}

// NewNode builds a detached node with the given children, wiring their
// parent back-references. The serializer and tests use it to assemble
// subtrees before handing them to a tree; the children must themselves be
// detached.
func NewNode(label, value string, children ...*Node) *Node {
	n := &Node{Label: label, Value: value}
	for _, c := range children {
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

// Parent returns the containing node, or nil for a root (or detached) node.
// The back-reference is navigational only; it never implies ownership.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's children in display order. The returned slice
// is a copy; the nodes it points to are the live ones.
func (n *Node) Children() []*Node { return slices.Clone(n.children) }

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int { return len(n.children) }

// Clone returns a deep copy of the subtree rooted at n. The copy shares no
// Node instances with the original and has a nil parent, ready to be
// attached to any tree.
func (n *Node) Clone() *Node {
	c := &Node{Label: n.Label, Value: n.Value}
	for _, child := range n.children {
		cc := child.Clone()
		cc.parent = c
		c.children = append(c.children, cc)
	}
	return c
}

// index returns the position of child in n's children, or -1.
func (n *Node) index(child *Node) int {
	return slices.Index(n.children, child)
}

// Tree is one open document: a root node (nil for a freshly created, empty
// document) plus free-form document-level notes. All structural mutations go
// through Tree methods so parent back-references and single-ownership stay
// consistent.
type Tree struct {
	root  *Node
	notes string
	dirty bool
}

// New creates an empty document.
func New() *Tree { return &Tree{} }

// Root returns the root node, or nil for an empty document.
func (t *Tree) Root() *Node { return t.root }

// Empty reports whether the document contains no nodes.
func (t *Tree) Empty() bool { return t.root == nil }

// Notes returns the document-level free-form notes.
func (t *Tree) Notes() string { return t.notes }

// SetNotes replaces the document notes and marks the document dirty.
func (t *Tree) SetNotes(notes string) {
	t.notes = notes
	t.dirty = true
}

// Dirty reports whether the document has unsaved changes.
func (t *Tree) Dirty() bool { return t.dirty }

// MarkClean clears the unsaved-changes flag. The serializer calls this after
// a successful save or load.
func (t *Tree) MarkClean() { t.dirty = false }

// Contains reports whether n is an element of this tree, checked by pointer
// identity via the parent chain. A nil node is never contained.
func (t *Tree) Contains(n *Node) bool {
	if n == nil || t.root == nil {
		return false
	}
	for cur := n; cur != nil; cur = cur.parent {
		if cur == t.root {
			return true
		}
	}
	return false
}

// Size returns the number of nodes in the document.
func (t *Tree) Size() int {
	count := 0
	t.Walk(func(*Node) bool {
		count++
		return true
	})
	return count
}

// Depth returns the length of the longest root-to-leaf path, counted in
// nodes. An empty document has depth 0.
func (t *Tree) Depth() int {
	var depth func(n *Node) int
	depth = func(n *Node) int {
		best := 0
		for _, c := range n.children {
			if d := depth(c); d > best {
				best = d
			}
		}
		return best + 1
	}
	if t.root == nil {
		return 0
	}
	return depth(t.root)
}

// Walk visits every node in pre-order, children in display order. The walk
// stops early when fn returns false. Walk is the read-only traversal all
// exporters build on; fn must not mutate the tree structurally.
func (t *Tree) Walk(fn func(*Node) bool) {
	var visit func(n *Node) bool
	visit = func(n *Node) bool {
		if !fn(n) {
			return false
		}
		for _, c := range n.children {
			if !visit(c) {
				return false
			}
		}
		return true
	}
	if t.root != nil {
		visit(t.root)
	}
}

// InsertChild creates a new node and appends it as the last child of target.
// A nil target is only meaningful on an empty document, where the new node
// becomes the root; on a non-empty document it is ErrNotInTree.
func (t *Tree) InsertChild(target *Node, label, value string) (*Node, error) {
	n := &Node{Label: label, Value: value}
	if target == nil {
		if t.root != nil {
			return nil, ErrNotInTree
		}
		t.root = n
		t.dirty = true
		return n, nil
	}
	if !t.Contains(target) {
		return nil, ErrNotInTree
	}
	t.attachChild(target, n)
	t.dirty = true
	return n, nil
}

// InsertParent creates a new node and splices it between target and its
// current parent, at the same child index, with target as its sole child.
// If target is the root, the new node becomes the root.
func (t *Tree) InsertParent(target *Node, label, value string) (*Node, error) {
	if !t.Contains(target) {
		return nil, ErrNotInTree
	}
	n := &Node{Label: label, Value: value}
	if target == t.root {
		t.root = n
	} else {
		p := target.parent
		i := p.index(target)
		p.children[i] = n
		n.parent = p
	}
	target.parent = n
	n.children = []*Node{target}
	t.dirty = true
	return n, nil
}

// InsertSibling creates a new node immediately after target among its
// parent's children. The root has no siblings; targeting it is ErrNoParent.
func (t *Tree) InsertSibling(target *Node, label, value string) (*Node, error) {
	if !t.Contains(target) {
		return nil, ErrNotInTree
	}
	if target.parent == nil {
		return nil, ErrNoParent
	}
	n := &Node{Label: label, Value: value}
	t.attachAfter(target, n)
	t.dirty = true
	return n, nil
}

// MoveUp swaps target with its immediately preceding sibling. It reports
// false without error when target is already first. Targeting the root is
// ErrNoParent.
func (t *Tree) MoveUp(target *Node) (bool, error) { return t.shift(target, -1) }

// MoveDown swaps target with its immediately following sibling. It reports
// false without error when target is already last. Targeting the root is
// ErrNoParent.
func (t *Tree) MoveDown(target *Node) (bool, error) { return t.shift(target, +1) }

func (t *Tree) shift(target *Node, dir int) (bool, error) {
	if !t.Contains(target) {
		return false, ErrNotInTree
	}
	p := target.parent
	if p == nil {
		return false, ErrNoParent
	}
	i := p.index(target)
	j := i + dir
	if j < 0 || j >= len(p.children) {
		return false, nil
	}
	p.children[i], p.children[j] = p.children[j], p.children[i]
	t.dirty = true
	return true, nil
}

// DeleteSubtree detaches target and all its descendants from the document.
// Deleting the root empties the document. The detached nodes keep their
// internal structure but are no longer reachable from the tree.
func (t *Tree) DeleteSubtree(target *Node) error {
	if !t.Contains(target) {
		return ErrNotInTree
	}
	if target == t.root {
		t.root = nil
	} else {
		p := target.parent
		p.children = slices.DeleteFunc(p.children, func(c *Node) bool { return c == target })
	}
	target.parent = nil
	t.dirty = true
	return nil
}

// EditNode replaces target's label and value in place. Structure, child
// order and parentage are unaffected.
func (t *Tree) EditNode(target *Node, label, value string) error {
	if !t.Contains(target) {
		return ErrNotInTree
	}
	target.Label = label
	target.Value = value
	t.dirty = true
	return nil
}

// attachChild appends an existing detached node as the last child of parent.
func (t *Tree) attachChild(parent, n *Node) {
	parent.children = append(parent.children, n)
	n.parent = parent
}

// attachAfter inserts an existing detached node immediately after sibling.
func (t *Tree) attachAfter(sibling, n *Node) {
	p := sibling.parent
	i := p.index(sibling) + 1
	p.children = slices.Insert(p.children, i, n)
	n.parent = p
}

// NewFromRoot builds a document around a detached subtree. The serializer
// uses it when loading a file; the subtree must not belong to another tree.
// A nil root produces an empty document.
func NewFromRoot(root *Node, notes string) *Tree {
	if root != nil {
		root.parent = nil
	}
	return &Tree{root: root, notes: notes}
}
