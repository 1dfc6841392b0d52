package fssim

import (
	"bytes"
	"strings"
	"testing"

	"github.com/brettbedarf/fssim/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	cfg := config.NewDefaultConfig()
	cfg.Banner = false
	cfg.RootName = "Home"
	out := &bytes.Buffer{}

	s := New(cfg, strings.NewReader("mkdir a\nexit\n"), out)
	require.NoError(t, s.Run())
	require.NoError(t, s.Close())

	assert.Equal(t, "/Home$ /Home$ Memory cleared. Exiting...\n", out.String())
}
