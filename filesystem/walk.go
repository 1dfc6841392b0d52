package filesystem

import "strings"

// Entry is one line of a listing or tree rendering
type Entry struct {
	Depth int
	Name  string
	Kind  Kind
}

func entryOf(n *Node, depth int) Entry {
	return Entry{Depth: depth, Name: n.name, Kind: n.kind}
}

// List returns folder's direct children in sorted order, all at depth 0.
// An empty result means the folder is empty.
func List(folder *Node) []Entry {
	entries := make([]Entry, 0, len(folder.children))
	for _, ch := range folder.children {
		entries = append(entries, entryOf(ch, 0))
	}
	return entries
}

// Render walks the descendants of root depth-first in pre-order. The root's
// direct children are at depth 0.
func Render(root *Node) []Entry {
	var entries []Entry
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		for _, ch := range n.children {
			entries = append(entries, entryOf(ch, depth))
			walk(ch, depth+1)
		}
	}
	walk(root, 0)
	return entries
}

// FullPath returns the "/"-separated path from the root down to node, with
// the root included, e.g. "/Root/a/b".
func FullPath(node *Node) string {
	var names []string
	for n := node; n != nil; n = n.parent {
		names = append(names, n.name)
	}
	if len(names) == 0 {
		return ""
	}
	var sb strings.Builder
	for i := len(names) - 1; i >= 0; i-- {
		sb.WriteByte('/')
		sb.WriteString(names[i])
	}
	return sb.String()
}
