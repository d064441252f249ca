// cmd/alx/root_test.go
// TEST TYPE: Integration Tests
// DEPENDENCIES: Real filesystem (t.TempDir)
// PURPOSE: Test the command tree end to end against an on-disk root

package alx

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/alx/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cli struct {
	t    *testing.T
	root string
	home string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	tmp := t.TempDir()
	home := filepath.Join(tmp, "home")
	require.NoError(t, os.MkdirAll(home, 0755))

	t.Setenv("HOME", home)
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	t.Setenv("ALX_ROOT", "")
	t.Setenv("NO_COLOR", "1")

	return &cli{t: t, root: filepath.Join(tmp, "alx"), home: home}
}

// run executes alx with text output against the test root
func (c *cli) run(args ...string) (string, error) {
	c.t.Helper()
	return c.runFormat("text", args...)
}

func (c *cli) runFormat(format string, args ...string) (string, error) {
	c.t.Helper()
	var buf bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append([]string{"--root", c.root, "--shell", "bash", "--format", format}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func (c *cli) mustRun(args ...string) string {
	c.t.Helper()
	out, err := c.run(args...)
	require.NoError(c.t, err, out)
	return out
}

func (c *cli) script() string {
	c.t.Helper()
	data, err := os.ReadFile(filepath.Join(c.root, "shell", "aliases.sh"))
	require.NoError(c.t, err)
	return string(data)
}

func TestRootCmd_NoSubcommand(t *testing.T) {
	c := newCLI(t)
	_, err := c.run()
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestInitCmd(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("init")
	assert.Contains(t, out, "Initialized alx in "+c.root)
	assert.Contains(t, out, "Add this to "+filepath.Join(c.home, ".bashrc"))
	assert.FileExists(t, filepath.Join(c.root, "config.toml"))
	assert.FileExists(t, filepath.Join(c.root, "aliases.toml"))
	assert.Contains(t, c.script(), "# alx aliases for bash")

	out = c.mustRun("init", "--install-snippet")
	assert.Contains(t, out, "Added the loader to "+filepath.Join(c.home, ".bashrc"))
	rc, err := os.ReadFile(filepath.Join(c.home, ".bashrc"))
	require.NoError(t, err)
	assert.Contains(t, string(rc), filepath.Join(c.root, "shell", "aliases.sh"))
}

func TestAddListRemove(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("add", "gs", "git", "status", "-g", "git")
	assert.Equal(t, "Added gs\n", out)
	c.mustRun("add", "ll", "ls -la", "-d", "long listing")
	assert.Contains(t, c.script(), "alias gs='git status'")
	assert.Contains(t, c.script(), "alias ll='ls -la'")

	out = c.mustRun("list")
	assert.Equal(t, "gs\tgit\tenabled\tgit status\t\nll\tgeneral\tenabled\tls -la\tlong listing\n", out)

	out = c.mustRun("list", "-g", "git")
	assert.Equal(t, "gs\tgit\tenabled\tgit status\t\n", out)

	out, err := c.run("remove", "gs", "nope")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Contains(t, out, "Removed gs")
	assert.NotContains(t, c.script(), "alias gs=")
}

func TestAddCmd_Errors(t *testing.T) {
	c := newCLI(t)
	c.mustRun("add", "gs", "git status")

	_, err := c.run("add", "gs", "git stash")
	assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicateName))

	_, err = c.run("add", "bad name", "ls")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidName))

	_, err = c.run("add", "only-name")
	assert.Error(t, err)
}

func TestAddCmd_ReservedWarning(t *testing.T) {
	c := newCLI(t)
	out := c.mustRun("add", "cd", "cd ..")
	assert.Contains(t, out, "Warning: cd shadows a shell keyword or builtin")
	assert.Contains(t, out, "Added cd")
}

func TestEditEnableDisable(t *testing.T) {
	c := newCLI(t)
	c.mustRun("add", "gs", "git status")

	assert.Equal(t, "Updated gs\n", c.mustRun("edit", "gs", "-c", "git status -sb"))
	assert.Contains(t, c.script(), "alias gs='git status -sb'")

	assert.Equal(t, "Nothing to change for gs\n", c.mustRun("edit", "gs", "-c", "git status -sb"))

	_, err := c.run("edit", "gs")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	assert.Equal(t, "Disabled gs\n", c.mustRun("disable", "gs"))
	assert.NotContains(t, c.script(), "alias gs=")
	assert.Equal(t, "gs is already disabled\n", c.mustRun("disable", "gs"))

	c.mustRun("add", "ll", "ls -la")
	assert.Equal(t, "gs\tgeneral\tdisabled\tgit status -sb\t\nll\tgeneral\tenabled\tls -la\t\n", c.mustRun("list"))
	assert.Equal(t, "ll\tgeneral\tenabled\tls -la\t\n", c.mustRun("list", "--enabled-only"))
	assert.Equal(t, c.mustRun("list", "--enabled-only"), c.mustRun("list", "-e"))

	assert.Equal(t, "Enabled gs\n", c.mustRun("enable", "gs"))
	assert.Contains(t, c.script(), "alias gs=")

	_, err = c.run("enable", "missing")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestSearchAndGroups(t *testing.T) {
	c := newCLI(t)
	c.mustRun("add", "gs", "git status", "-g", "git")
	c.mustRun("add", "gd", "git diff", "-g", "git")
	c.mustRun("add", "ll", "ls -la")

	out := c.mustRun("search", "DIFF")
	assert.Equal(t, "gd\tgit\tenabled\tgit diff\t\n", out)

	out = c.mustRun("groups")
	assert.Equal(t, "git\t2\t0\ngeneral\t1\t0\n", out)
}

func TestExportImport(t *testing.T) {
	c := newCLI(t)
	c.mustRun("add", "gs", "git status", "-g", "git")

	out := c.mustRun("export")
	var doc struct {
		Aliases []struct {
			Name    string `json:"name"`
			Command string `json:"command"`
		} `json:"aliases"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Aliases, 1)
	assert.Equal(t, "gs", doc.Aliases[0].Name)

	path := filepath.Join(t.TempDir(), "aliases.yaml")
	out = c.mustRun("export", "-o", path)
	assert.Contains(t, out, "Exported 1 alias(es) as yaml to "+path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: gs")

	other := newCLI(t)
	out = other.mustRun("import", path)
	assert.Equal(t, "Imported 1 alias(es), overwrote 0, skipped 0\n", out)
	assert.Contains(t, other.script(), "alias gs='git status'")

	out = other.mustRun("import", path)
	assert.Equal(t, "Imported 0 alias(es), overwrote 0, skipped 1\n", out)
}

func TestImportCmd_Rejected(t *testing.T) {
	c := newCLI(t)
	path := filepath.Join(t.TempDir(), "in.json")
	payload := `{"aliases":[{"name":"ok","command":"true"},{"name":"bad name","command":"ls"}]}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))

	out, err := c.run("import", path)
	assert.True(t, errors.IsErrorCode(err, errors.ErrImportRejected))
	assert.Contains(t, out, "Warning: bad name:")
	assert.Contains(t, out, "Imported 1 alias(es)")
	assert.Contains(t, c.script(), "alias ok='true'")
}

func TestExportImport_OutputAndPayloadFormats(t *testing.T) {
	c := newCLI(t)
	c.mustRun("add", "gs", "git status", "-g", "git")

	path := filepath.Join(t.TempDir(), "aliases.txt")
	out, err := c.runFormat("json", "export", "--as", "toml", "-o", path)
	require.NoError(t, err, out)
	var exported map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &exported))
	assert.Equal(t, "toml", exported["format"])
	assert.Equal(t, path, exported["path"])
	assert.EqualValues(t, 1, exported["count"])

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[[aliases]]")

	other := newCLI(t)
	out, err = other.runFormat("json", "import", "-a", "toml", path)
	require.NoError(t, err, out)
	var imported map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &imported))
	assert.Equal(t, "toml", imported["format"])
	assert.Equal(t, []interface{}{"gs"}, imported["report"].(map[string]interface{})["added"])
	assert.Contains(t, other.script(), "alias gs='git status'")

	out = c.mustRun("export", "--as", "yaml")
	assert.Contains(t, out, "name: gs")
}

func TestMigrateCmd(t *testing.T) {
	c := newCLI(t)
	rc := filepath.Join(c.home, ".bashrc")
	content := strings.Join([]string{
		"export PATH=$PATH:~/bin",
		"alias ll='ls -la'",
		`alias gs="git status"`,
	}, "\n")
	require.NoError(t, os.WriteFile(rc, []byte(content), 0644))

	out := c.mustRun("migrate", "-g", "legacy")
	assert.Equal(t, "Found 2 alias(es) in "+rc+": added 2, skipped 0\n", out)

	out = c.mustRun("list", "-g", "legacy")
	assert.Contains(t, out, "ll\tlegacy\tenabled\tls -la")
	assert.Contains(t, out, "gs\tlegacy\tenabled\tgit status")
}

func TestSyncCmd_BacksUpPreviousScript(t *testing.T) {
	c := newCLI(t)
	c.mustRun("add", "gs", "git status")

	out := c.mustRun("sync")
	assert.Contains(t, out, "Wrote 1 alias(es) to "+filepath.Join(c.root, "shell", "aliases.sh"))
	assert.Contains(t, out, "Previous script saved to "+filepath.Join(c.root, "backups"))
}

func TestAutoSyncOff(t *testing.T) {
	c := newCLI(t)
	c.mustRun("init")
	t.Setenv("ALX_SETTINGS_AUTO_SYNC", "false")

	out := c.mustRun("add", "gs", "git status")
	assert.Contains(t, out, "Store saved. Run `alx sync` to update the shell script")
	assert.NotContains(t, c.script(), "alias gs=")

	c.mustRun("sync")
	assert.Contains(t, c.script(), "alias gs='git status'")
}

func TestJSONOutput(t *testing.T) {
	c := newCLI(t)

	out, err := c.runFormat("json", "add", "gs", "git status")
	require.NoError(t, err)
	var added map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &added))
	assert.Equal(t, "gs", added["alias"].(map[string]interface{})["name"])
	assert.Equal(t, "synced", added["sync"].(map[string]interface{})["state"])

	out, err = c.runFormat("json", "list")
	require.NoError(t, err)
	var list map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	assert.Len(t, list["aliases"], 1)

	_, err = c.runFormat("xml", "list")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestInfoCmd(t *testing.T) {
	c := newCLI(t)
	c.mustRun("init")
	c.mustRun("add", "gs", "git status")

	out := c.mustRun("info")
	assert.Contains(t, out, c.root)
	assert.Contains(t, out, "1 in 1 group(s), 0 disabled")
}

func TestCorruptStore(t *testing.T) {
	c := newCLI(t)
	c.mustRun("init")
	require.NoError(t, os.WriteFile(filepath.Join(c.root, "aliases.toml"), []byte("[[aliases]\nname ="), 0644))

	_, err := c.run("list")
	assert.True(t, errors.IsErrorCode(err, errors.ErrCorruptFile))
}

func TestVersionAndCompletion(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("version")
	assert.Contains(t, out, "alx version dev")

	out = c.mustRun("completion", "bash")
	assert.Contains(t, out, "alx")

	_, err := c.run("completion", "tcsh")
	assert.Error(t, err)
}

func TestManCmd(t *testing.T) {
	c := newCLI(t)
	dir := filepath.Join(t.TempDir(), "man")

	c.mustRun("man", "--dir", dir)
	assert.FileExists(t, filepath.Join(dir, "alx.1"))
	assert.FileExists(t, filepath.Join(dir, "alx-add.1"))
}

func TestHelpTopics(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("help", "topics")
	assert.Contains(t, out, "config")
	assert.Contains(t, out, "shells")
	assert.Contains(t, out, "--format")

	out = c.mustRun("help", "config")
	assert.Contains(t, out, "Configuration")
	assert.Contains(t, out, "Relative")

	out = c.mustRun("help", "add")
	assert.Contains(t, out, "alx add gs")
}
