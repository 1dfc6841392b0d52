package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/brettbedarf/fssim/config"
	"github.com/brettbedarf/fssim/filesystem"
	"github.com/ddddddO/gtree"
	"github.com/lithammer/dedent"
)

var banner = strings.TrimLeft(dedent.Dedent(`
	====================================
	     FILE SYSTEM SIMULATOR (Tree)
	====================================
`), "\n")

const (
	helpRule  = "------------------------------------"
	treeOpen  = "====== Directory Structure ======"
	treeClose = "================================="
)

func (s *Session) printBanner() {
	s.printf("%s\n", banner)
	s.printHelp()
}

func (s *Session) printHelp() {
	s.println("Available Commands:")
	s.println(helpRule)
	for _, cmd := range s.cmds.Commands() {
		s.printf("%-24s-> %s\n", cmd.String(), cmd.Help)
		for _, v := range cmd.Variants {
			s.printf("%-24s-> %s\n", cmd.Name+" "+v.Args, v.Help)
		}
	}
	s.println(helpRule)
}

func (s *Session) printTree() error {
	root := s.fs.Root()
	s.printf("\n%s\n", treeOpen)
	var err error
	switch s.cfg.TreeStyle {
	case config.TreeStyleGtree:
		err = writeGtree(s.out, root)
	default:
		writeIndented(s.out, root, s.cfg.IndentWidth)
	}
	s.println(treeClose)
	return err
}

// writeIndented prints the root followed by every descendant, indented by
// width spaces per level below the root
func writeIndented(w io.Writer, root *filesystem.Node, width int) {
	fmt.Fprintf(w, "%s: %s\n", root.Kind(), root.Name())
	for _, e := range filesystem.Render(root) {
		indent := strings.Repeat(" ", width*(e.Depth+1))
		fmt.Fprintf(w, "%s%s: %s\n", indent, e.Kind, e.Name)
	}
}

// writeGtree prints the tree with box-drawing branches. Folders get a
// trailing slash.
func writeGtree(w io.Writer, root *filesystem.Node) error {
	groot := gtree.NewRoot(gtreeLabel(root.Name(), root.Kind()))
	parents := []*gtree.Node{groot}
	for _, e := range filesystem.Render(root) {
		// pre-order: the parent of a depth d entry is always parents[d]
		parents = parents[:e.Depth+1]
		parents = append(parents, parents[e.Depth].Add(gtreeLabel(e.Name, e.Kind)))
	}
	return gtree.OutputFromRoot(w, groot)
}

func gtreeLabel(name string, kind filesystem.Kind) string {
	if kind == filesystem.Folder {
		return name + "/"
	}
	return name
}
