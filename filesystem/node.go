package filesystem

import (
	"slices"

	"github.com/google/uuid"
)

// Kind tells files and folders apart
type Kind int

const (
	Folder Kind = iota
	File
)

func (k Kind) String() string {
	switch k {
	case Folder:
		return "Folder"
	case File:
		return "File"
	default:
		return "Unknown"
	}
}

type Node struct {
	name     string    // Name of the node; unique among siblings ignoring case
	kind     Kind      // Files never have children
	id       uuid.UUID // Stable identity for logging
	parent   *Node     // nil only for the root (or a destroyed node)
	children []*Node   // Sorted ascending by case-insensitive name
	isDel    bool
}

// NewNode allocates a node with no children.
//
// NOTE: name is not validated here and the node is not linked into parent's
// children; use [FileSystem.Insert] for that.
func NewNode(name string, kind Kind, parent *Node) *Node {
	return &Node{
		name:   name,
		kind:   kind,
		id:     uuid.New(),
		parent: parent,
	}
}

// Name returns the node's name (last path component)
func (n *Node) Name() string {
	return n.name
}

func (n *Node) Kind() Kind {
	return n.kind
}

func (n *Node) ID() uuid.UUID {
	return n.id
}

// Parent returns the owning folder; nil for the root
func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) IsDir() bool {
	return n.kind == Folder
}

func (n *Node) IsRoot() bool {
	return n.parent == nil && !n.isDel
}

// IsDel returns true once the node has been destroyed by a delete or teardown
func (n *Node) IsDel() bool {
	return n.isDel
}

// Len returns the number of direct children
func (n *Node) Len() int {
	return len(n.children)
}

func (n *Node) IsEmpty() bool {
	return len(n.children) == 0
}

// Children returns the direct children in sorted order in a new slice
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// GetChild returns the child matching name ignoring case
func (n *Node) GetChild(name string) (child *Node, ok bool) {
	if i := n.indexOf(name); i >= 0 {
		return n.children[i], true
	}
	return nil, false
}

// indexOf is a linear scan for name ignoring case; -1 if absent
func (n *Node) indexOf(name string) int {
	for i, ch := range n.children {
		if CompareFold(ch.name, name) == 0 {
			return i
		}
	}
	return -1
}

// insertPos returns where name belongs among the sorted children: the index of
// the first child that sorts after it, or Len() to append.
// exists reports a child with an equal name.
func (n *Node) insertPos(name string) (pos int, exists bool) {
	for i, ch := range n.children {
		switch c := CompareFold(name, ch.name); {
		case c == 0:
			return i, true
		case c < 0:
			return i, false
		}
	}
	return len(n.children), false
}

// del detaches the node from its tree links and marks it destroyed.
// Children must already have been destroyed.
func (n *Node) del() {
	n.children = nil
	n.parent = nil
	n.isDel = true
}
