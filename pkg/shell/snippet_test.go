// pkg/shell/snippet_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: In-memory filesystem
// PURPOSE: Test source snippets and startup file installation

package shell_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/alx/pkg/filesystem"
	"github.com/arthur-debert/alx/pkg/shell"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceSnippet(t *testing.T) {
	assert.Equal(t,
		`[ -f "/cfg/alx/shell/aliases.sh" ] && source "/cfg/alx/shell/aliases.sh"`,
		shell.SourceSnippet(shell.Bash, "/cfg/alx/shell/aliases.sh"))

	fish := shell.SourceSnippet(shell.Fish, "/cfg/alx/shell/aliases.fish")
	assert.Equal(t, "if test -f \"/cfg/alx/shell/aliases.fish\"\n    source \"/cfg/alx/shell/aliases.fish\"\nend", fish)
}

func TestRCFile(t *testing.T) {
	assert.Equal(t, "/home/u/.bashrc", shell.RCFile(shell.Bash, "/home/u"))
	assert.Equal(t, "/home/u/.zshrc", shell.RCFile(shell.Zsh, "/home/u"))
	assert.Equal(t, "/home/u/.config/fish/config.fish", shell.RCFile(shell.Fish, "/home/u"))
}

func TestInstallSnippet(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	rc := "/home/u/.zshrc"
	require.NoError(t, fsys.MkdirAll("/home/u", 0755))
	require.NoError(t, fsys.WriteFile(rc, []byte("export EDITOR=vim"), 0600))

	snippet := shell.SourceSnippet(shell.Zsh, "/cfg/alx/shell/aliases.sh")

	changed, err := shell.InstallSnippet(fsys, rc, snippet)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = shell.InstallSnippet(fsys, rc, snippet)
	require.NoError(t, err)
	assert.False(t, changed)

	data, err := fsys.ReadFile(rc)
	require.NoError(t, err)
	content := string(data)
	assert.True(t, strings.HasPrefix(content, "export EDITOR=vim\n\n"))
	assert.Equal(t, 1, strings.Count(content, snippet))
	assert.True(t, strings.HasSuffix(content, snippet+"\n"))

	info, err := fsys.Stat(rc)
	require.NoError(t, err)
	assert.Equal(t, "-rw-------", info.Mode().Perm().String())
}

func TestInstallSnippet_CreatesMissingFile(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	rc := "/home/u/.config/fish/config.fish"
	snippet := shell.SourceSnippet(shell.Fish, "/cfg/alx/shell/aliases.fish")

	changed, err := shell.InstallSnippet(fsys, rc, snippet)
	require.NoError(t, err)
	assert.True(t, changed)

	data, err := fsys.ReadFile(rc)
	require.NoError(t, err)
	assert.Contains(t, string(data), snippet)
}
