package shell

import (
	"errors"
	"fmt"

	"github.com/brettbedarf/fssim/filesystem"
)

// NewBuiltinRegistry returns a registry with every shell builtin registered
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	r.Register(&Command{Name: "mkdir", Args: "<folder_name>", Help: "Create a new folder", Run: runMkdir})
	r.Register(&Command{Name: "touch", Args: "<file_name>", Help: "Create a new file", Run: runTouch})
	r.Register(&Command{Name: "ls", Help: "List contents of current folder", Run: runLs})
	r.Register(&Command{
		Name: "cd", Args: "<folder_name>", Help: "Change directory", Run: runCd,
		Variants: []Usage{{Args: "..", Help: "Go back to parent folder"}},
	})
	r.Register(&Command{Name: "rm", Args: "<file/folder_name>", Help: "Delete a file or folder", Run: runRm})
	r.Register(&Command{Name: "tree", Help: "Display full directory structure", Run: runTree})
	r.Register(&Command{Name: "pwd", Help: "Print the current folder's full path", Run: runPwd})
	r.Register(&Command{Name: "help", Help: "Show this command list", Run: runHelp})
	r.Register(&Command{Name: "exit", Help: "Quit", Run: runExit})
	return r
}

func runMkdir(s *Session, name string) error {
	return s.insert(name, filesystem.Folder)
}

func runTouch(s *Session, name string) error {
	return s.insert(name, filesystem.File)
}

func (s *Session) insert(name string, kind filesystem.Kind) error {
	_, err := s.fs.Insert(s.cwd, name, kind)
	switch {
	case errors.Is(err, filesystem.ErrInvalidName):
		s.println(`Invalid name! Cannot contain '/' or '\'`)
	case errors.Is(err, filesystem.ErrDuplicateName):
		s.printf("Error: A file or folder named '%s' already exists in '%s'\n", name, s.cwd.Name())
	case err != nil:
		s.printf("Error: %v\n", err)
	}
	return err
}

func runLs(s *Session, _ string) error {
	entries := filesystem.List(s.cwd)
	if len(entries) == 0 {
		s.println("(empty)")
		return nil
	}
	for _, e := range entries {
		s.printf("[%s] %s\n", e.Kind, e.Name)
	}
	return nil
}

func runCd(s *Session, name string) error {
	next, err := s.fs.ChangeDir(s.cwd, name)
	switch {
	case errors.Is(err, filesystem.ErrAlreadyAtRoot):
		s.println("Already at root.")
	case errors.Is(err, filesystem.ErrNotFound):
		s.println("Folder not found!")
	}
	s.cwd = next
	return err
}

func runRm(s *Session, name string) error {
	err := s.fs.Delete(s.cwd, name, s.confirmer(name))
	switch {
	case err == nil:
		s.println("Deleted successfully.")
	case errors.Is(err, filesystem.ErrDeclined):
		s.println("Deletion cancelled.")
	case errors.Is(err, filesystem.ErrNotFound):
		s.println("File/Folder not found.")
	case errors.Is(err, filesystem.ErrRootProtected):
		s.printf("Cannot delete %s directory.\n", s.fs.Root().Name())
	default:
		s.printf("Error: %v\n", err)
	}
	return err
}

func runTree(s *Session, _ string) error {
	return s.printTree()
}

func runPwd(s *Session, _ string) error {
	s.println(filesystem.FullPath(s.cwd))
	return nil
}

func runHelp(s *Session, _ string) error {
	s.printHelp()
	return nil
}

func runExit(s *Session, _ string) error {
	s.running = false
	return nil
}

// confirmer prompts for a y/n answer on the session's input. Only an answer
// starting with y or Y confirms; end of input declines.
func (s *Session) confirmer(name string) filesystem.Confirmer {
	return func() bool {
		s.printf("'%s' is not empty. Delete anyway? (y/n): ", name)
		answer, ok := s.next()
		if !ok {
			s.running = false
			return false
		}
		return answer[0] == 'y' || answer[0] == 'Y'
	}
}

// String renders the usage column of the help text
func (c *Command) String() string {
	if c.TakesArg() {
		return fmt.Sprintf("%s %s", c.Name, c.Args)
	}
	return c.Name
}
