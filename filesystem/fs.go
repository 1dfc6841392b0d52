package filesystem

import (
	"fmt"
	"slices"

	"github.com/brettbedarf/fssim/internal/util"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// Confirmer is asked before a non-empty folder is deleted. Returning false
// cancels the delete.
type Confirmer func() bool

// FileSystem owns a tree of nodes under a single root folder.
//
// NOTE: FileSystem is not thread-safe; it is driven by a single session.
type FileSystem struct {
	root  *Node // Root of node tree; nil after Destroy
	count int   // Live nodes including the root
}

func NewFS(rootName string) *FileSystem {
	return &FileSystem{
		root:  NewNode(rootName, Folder, nil),
		count: 1,
	}
}

func (fs *FileSystem) Root() *Node {
	return fs.root
}

// Count returns the number of live nodes, root included; 0 after Destroy
func (fs *FileSystem) Count() int {
	return fs.count
}

// Insert creates a new node called name under parent, keeping parent's
// children sorted. The tree is left untouched on error.
func (fs *FileSystem) Insert(parent *Node, name string, kind Kind) (*Node, error) {
	logger := util.GetLogger("FS.Insert")

	if !IsValidName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if parent == nil || parent.isDel {
		return nil, fmt.Errorf("%w: parent of %q", ErrNotFound, name)
	}
	if !parent.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotFolder, parent.name)
	}

	pos, exists := parent.insertPos(name)
	if exists {
		return nil, fmt.Errorf("%w: %q in %s", ErrDuplicateName, name, parent.name)
	}

	node := NewNode(name, kind, parent)
	parent.children = slices.Insert(parent.children, pos, node)
	fs.count++

	logger.Debug().
		Str("name", name).
		Stringer("kind", kind).
		Stringer("id", node.id).
		Str("parent", parent.name).
		Int("pos", pos).
		Msg("Added new node")
	return node, nil
}

// Delete removes the child of parent matching name and destroys its whole
// subtree. A folder with children is only removed if confirm returns true;
// a nil confirm counts as declined.
func (fs *FileSystem) Delete(parent *Node, name string, confirm Confirmer) error {
	logger := util.GetLogger("FS.Delete")

	if parent == nil || parent.isDel {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	i := parent.indexOf(name)
	if i < 0 {
		return fmt.Errorf("%w: %q in %s", ErrNotFound, name, parent.name)
	}
	node := parent.children[i]
	if node == fs.root {
		return ErrRootProtected
	}

	if node.IsDir() && len(node.children) > 0 {
		if confirm == nil || !confirm() {
			logger.Debug().Str("name", node.name).Msg("Delete of non-empty folder declined")
			return fmt.Errorf("%w: %q", ErrDeclined, node.name)
		}
	}

	parent.children = slices.Delete(parent.children, i, i+1)
	n := destroyTree(node)
	fs.count -= n

	logger.Debug().
		Str("name", node.name).
		Stringer("id", node.id).
		Str("parent", parent.name).
		Int("destroyed", n).
		Msg("Deleted node")
	return nil
}

// ChangeDir resolves name relative to current. ".." moves to the parent.
// On error current is returned unchanged.
func (fs *FileSystem) ChangeDir(current *Node, name string) (*Node, error) {
	if name == ".." {
		if current.parent == nil {
			return current, ErrAlreadyAtRoot
		}
		return current.parent, nil
	}

	for _, ch := range current.children {
		if ch.IsDir() && CompareFold(ch.name, name) == 0 {
			return ch, nil
		}
	}
	return current, fmt.Errorf("%w: folder %q in %s", ErrNotFound, name, current.name)
}

// Destroy tears down the whole tree and returns how many nodes were freed.
// Calling it again is a no-op.
func (fs *FileSystem) Destroy() int {
	if fs.root == nil {
		return 0
	}
	n := destroyTree(fs.root)
	fs.root = nil
	fs.count = 0

	logger := util.GetLogger("FS.Destroy")
	logger.Info().Int("destroyed", n).Msg("Tree destroyed")
	return n
}

// destroyTree frees root and all of its descendants post-order (children
// before their parent) and returns the number of nodes freed.
func destroyTree(root *Node) int {
	pending := arraystack.New()
	order := arraystack.New()

	pending.Push(root)
	for !pending.Empty() {
		v, _ := pending.Pop()
		n := v.(*Node)
		order.Push(n)
		for _, ch := range n.children {
			pending.Push(ch)
		}
	}

	freed := 0
	for !order.Empty() {
		v, _ := order.Pop()
		v.(*Node).del()
		freed++
	}
	return freed
}
