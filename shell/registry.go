package shell

import (
	"errors"
	"strings"
)

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
	ErrSessionClosed   = errors.New("session closed")
)

// Command is a single shell builtin
type Command struct {
	Name string // Command word, matched ignoring case
	Args string // Usage placeholder for the argument; empty if the command takes none
	Help string // One line description for the help text
	Run  func(s *Session, arg string) error

	// Variants are extra help rows for special arguments, e.g. "cd .."
	Variants []Usage
}

// Usage is a help row for one particular argument of a command
type Usage struct {
	Args string
	Help string
}

// TakesArg reports whether the command reads an argument token
func (c *Command) TakesArg() bool {
	return c.Args != ""
}

// Registry maps command words to commands and remembers registration order
// for the help text.
type Registry struct {
	cmds  map[string]*Command
	order []*Command
}

func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds cmd under its lowercased name. The first registration of a
// name wins.
func (r *Registry) Register(cmd *Command) {
	key := strings.ToLower(cmd.Name)
	if _, exists := r.cmds[key]; exists {
		return
	}
	r.cmds[key] = cmd
	r.order = append(r.order, cmd)
}

// Lookup finds the command for word ignoring case
func (r *Registry) Lookup(word string) (*Command, bool) {
	cmd, ok := r.cmds[strings.ToLower(word)]
	return cmd, ok
}

// Commands returns all commands in registration order
func (r *Registry) Commands() []*Command {
	out := make([]*Command, len(r.order))
	copy(out, r.order)
	return out
}
