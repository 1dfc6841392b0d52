// Package fssim is an in-memory file system simulator driven by a small
// interactive shell
package fssim

import (
	"io"

	"github.com/brettbedarf/fssim/config"
	"github.com/brettbedarf/fssim/filesystem"
	"github.com/brettbedarf/fssim/shell"
)

// New creates a shell session over a fresh tree given your config.
func New(cfg *config.Config, in io.Reader, out io.Writer) *shell.Session {
	return shell.NewSession(cfg, filesystem.NewFS(cfg.RootName), in, out)
}
