package shell

import (
	"bufio"
	"fmt"
	"io"

	"github.com/brettbedarf/fssim/config"
	"github.com/brettbedarf/fssim/filesystem"
	"github.com/brettbedarf/fssim/internal/util"
)

// Session is one interactive run of the shell over a [filesystem.FileSystem].
// It holds the current directory and reads whitespace separated tokens from
// its input, so a command and its argument may span lines.
type Session struct {
	cfg     *config.Config
	fs      *filesystem.FileSystem
	cwd     *filesystem.Node // Current directory; nil once closed
	in      *bufio.Scanner
	out     io.Writer
	cmds    *Registry
	running bool
	closed  bool
}

// NewSession creates a session positioned at the root of fs
func NewSession(cfg *config.Config, fs *filesystem.FileSystem, in io.Reader, out io.Writer) *Session {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Session{
		cfg:     cfg,
		fs:      fs,
		cwd:     fs.Root(),
		in:      scanner,
		out:     out,
		cmds:    NewBuiltinRegistry(),
		running: true,
	}
}

func (s *Session) FS() *filesystem.FileSystem {
	return s.fs
}

// Cwd returns the current directory
func (s *Session) Cwd() *filesystem.Node {
	return s.cwd
}

// Running is false after exit, end of input or Close
func (s *Session) Running() bool {
	return s.running
}

// Prompt returns the full path of the current directory followed by the
// configured prompt suffix
func (s *Session) Prompt() string {
	return filesystem.FullPath(s.cwd) + s.cfg.Prompt
}

// Run prints the banner and then reads and executes commands until exit or
// end of input. Command failures are reported to the user and never stop the
// loop; only a read error is returned.
func (s *Session) Run() error {
	logger := util.GetLogger("Session.Run")

	if s.cfg.Banner {
		s.printBanner()
	}
	for s.running {
		s.printf("%s", s.Prompt())
		word, ok := s.next()
		if !ok {
			logger.Debug().Msg("End of input")
			s.println("")
			break
		}
		if err := s.Exec(word); err != nil {
			logger.Debug().Err(err).Str("command", word).Msg("Command failed")
		}
	}
	s.running = false

	if err := s.in.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// Exec runs a single command word, reading its argument from the input when
// the command takes one. User facing messages are written to the output; the
// returned error is for callers that want to inspect the outcome.
func (s *Session) Exec(word string) error {
	if s.closed {
		return ErrSessionClosed
	}
	cmd, ok := s.cmds.Lookup(word)
	if !ok {
		s.println("Invalid command!")
		return fmt.Errorf("%w: %q", ErrUnknownCommand, word)
	}

	var arg string
	if cmd.TakesArg() {
		if arg, ok = s.next(); !ok {
			s.running = false
			return fmt.Errorf("%w: %s", ErrMissingArgument, cmd.Name)
		}
	}
	return cmd.Run(s, arg)
}

// Close tears down the file system. It is safe to call more than once; only
// the first call destroys anything.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	logger := util.GetLogger("Session.Close")

	s.closed = true
	s.running = false
	s.cwd = nil
	n := s.fs.Destroy()
	logger.Debug().Int("destroyed", n).Msg("Session closed")

	_, err := fmt.Fprintln(s.out, "Memory cleared. Exiting...")
	return err
}

// next reads the next whitespace separated token
func (s *Session) next() (string, bool) {
	if s.in.Scan() {
		return s.in.Text(), true
	}
	return "", false
}

func (s *Session) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

func (s *Session) println(line string) {
	fmt.Fprintln(s.out, line)
}
