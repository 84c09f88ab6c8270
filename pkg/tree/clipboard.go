package tree

import "github.com/google/uuid"

// Position selects where a pasted subtree attaches relative to the target
// node. The set mirrors the insertion operations on [Tree].
type Position int

const (
	// PositionChild attaches the payload as the target's last child.
	PositionChild Position = iota
	// PositionSibling attaches the payload immediately after the target.
	PositionSibling
	// PositionParent splices the payload between the target and its parent.
	PositionParent
)

// Clipboard is the single-slot subtree pasteboard shared by every open
// document in the process. It is explicit state the shell owns and passes
// around, not a package global. A new copy overwrites the previous one;
// pasting never consumes the slot, so repeated pastes are allowed.
//
// The payload is an independent deep copy: it shares no Node instances with
// any live tree, which is what makes cross-document pastes safe. Like Tree,
// Clipboard assumes a single-focus driver and needs no internal locking.
type Clipboard struct {
	payload *Node
	handle  uuid.UUID
}

// NewClipboard creates an empty clipboard.
func NewClipboard() *Clipboard { return &Clipboard{} }

// Empty reports whether nothing has been copied yet.
func (c *Clipboard) Empty() bool { return c.payload == nil }

// Handle returns the opaque handle of the current payload, or uuid.Nil when
// the clipboard is empty. Handles identify one copy operation; they carry no
// meaning beyond equality.
func (c *Clipboard) Handle() uuid.UUID { return c.handle }

// Copy stores an independent deep copy of the subtree rooted at n and
// returns a fresh opaque handle for it. The source subtree is untouched and
// stays in its tree. A nil node is rejected as ErrNotInTree.
func (c *Clipboard) Copy(n *Node) (uuid.UUID, error) {
	if n == nil {
		return uuid.Nil, ErrNotInTree
	}
	c.payload = n.Clone()
	c.handle = uuid.New()
	return c.handle, nil
}

// Paste deep-copies the stored payload once more and attaches the copy to
// dst at the given position relative to target, returning the root of the
// new subtree. Each paste is independent: mutating one pasted copy never
// affects another, the slot, or the original.
//
// Pasting into an empty document ignores position and makes the copy the
// root (target must be nil). Returns ErrEmptyClipboard before any copy,
// ErrNotInTree when target is not part of dst, and ErrNoParent for a
// sibling paste against the root.
func (c *Clipboard) Paste(dst *Tree, target *Node, pos Position) (*Node, error) {
	if c.payload == nil {
		return nil, ErrEmptyClipboard
	}
	n := c.payload.Clone()

	if target == nil {
		if dst.root != nil {
			return nil, ErrNotInTree
		}
		dst.root = n
		dst.dirty = true
		return n, nil
	}
	if !dst.Contains(target) {
		return nil, ErrNotInTree
	}

	switch pos {
	case PositionSibling:
		if target.parent == nil {
			return nil, ErrNoParent
		}
		dst.attachAfter(target, n)
	case PositionParent:
		if target == dst.root {
			dst.root = n
		} else {
			p := target.parent
			p.children[p.index(target)] = n
			n.parent = p
		}
		target.parent = n
		n.children = append(n.children, target)
	default:
		dst.attachChild(target, n)
	}
	dst.dirty = true
	return n, nil
}
