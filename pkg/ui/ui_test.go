// pkg/ui/ui_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test renderer selection and the output of each renderer

package ui_test

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/alx/pkg/alias"
	"github.com/arthur-debert/alx/pkg/codec"
	"github.com/arthur-debert/alx/pkg/commands"
	"github.com/arthur-debert/alx/pkg/errors"
	"github.com/arthur-debert/alx/pkg/types"
	"github.com/arthur-debert/alx/pkg/ui"
	"github.com/arthur-debert/alx/pkg/ui/json"
	"github.com/arthur-debert/alx/pkg/ui/terminal"
	"github.com/arthur-debert/alx/pkg/ui/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stamp = time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

func sampleList() *commands.ListResult {
	return &commands.ListResult{Aliases: []types.Alias{
		{Name: "gs", Command: "git status", Group: "git", CreatedAt: stamp, UpdatedAt: stamp},
		{Name: "gd", Command: "git diff", Group: "git", Disabled: true, CreatedAt: stamp, UpdatedAt: stamp},
		{Name: "ll", Command: "ls -la", Description: "long listing", CreatedAt: stamp, UpdatedAt: stamp},
	}}
}

func TestNewRenderer(t *testing.T) {
	var buf bytes.Buffer

	r, err := ui.NewRenderer(ui.FormatTerminal, &buf)
	require.NoError(t, err)
	assert.IsType(t, &terminal.Renderer{}, r)

	r, err = ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)
	assert.IsType(t, &text.Renderer{}, r)

	r, err = ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)
	assert.IsType(t, &json.Renderer{}, r)

	// A buffer is not a terminal
	r, err = ui.NewRenderer(ui.FormatAuto, &buf)
	require.NoError(t, err)
	assert.IsType(t, &text.Renderer{}, r)

	_, err = ui.NewRenderer(ui.Format(42), &buf)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestTextRenderer_List(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, text.New(&buf).RenderResult(sampleList()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "gs\tgit\tenabled\tgit status\t", lines[0])
	assert.Equal(t, "gd\tgit\tdisabled\tgit diff\t", lines[1])
	assert.Equal(t, "ll\tgeneral\tenabled\tls -la\tlong listing", lines[2])
}

func TestTextRenderer_Groups(t *testing.T) {
	var buf bytes.Buffer
	groups := &commands.GroupsResult{Groups: []commands.GroupInfo{
		{Name: "git", Count: 2, Disabled: 1},
		{Name: "general", Count: 1},
	}}
	require.NoError(t, text.New(&buf).RenderResult(groups))
	assert.Equal(t, "git\t2\t1\ngeneral\t1\t0\n", buf.String())
}

func TestTextRenderer_Info(t *testing.T) {
	var buf bytes.Buffer
	info := &commands.InfoResult{
		Root:        "/cfg/alx",
		ScriptPath:  "/cfg/alx/shell/aliases.sh",
		Shell:       "bash",
		RCFile:      "/home/.bashrc",
		Snippet:     `[ -f "/cfg/alx/shell/aliases.sh" ] && source "/cfg/alx/shell/aliases.sh"`,
		Aliases:     3,
		Groups:      2,
		StoreExists: true,
	}
	require.NoError(t, text.New(&buf).RenderResult(info))

	out := buf.String()
	assert.Contains(t, out, "/cfg/alx")
	assert.Contains(t, out, "3 in 2 group(s), 0 disabled")
	assert.Contains(t, out, "(missing)")
	assert.Contains(t, out, "never")
	assert.Contains(t, out, "Add this to /home/.bashrc")
}

func TestTextRenderer_ExportAndMessages(t *testing.T) {
	var buf bytes.Buffer
	r := text.New(&buf)

	require.NoError(t, r.RenderResult(&commands.ExportResult{Format: codec.FormatTOML, Data: []byte("[[aliases]]\n")}))
	assert.Equal(t, "[[aliases]]\n", buf.String())

	buf.Reset()
	require.NoError(t, r.RenderResult(&commands.ExportResult{Format: codec.FormatYAML, Path: "/tmp/out.yaml", Count: 2}))
	assert.Equal(t, "Exported 2 alias(es) as yaml to /tmp/out.yaml\n", buf.String())

	buf.Reset()
	require.NoError(t, r.RenderWarning("shadows a builtin"))
	require.NoError(t, r.RenderError(errors.New(errors.ErrNotFound, "alias not found: gs")))
	assert.Equal(t, "Warning: shadows a builtin\nError: [NOT_FOUND] alias not found: gs\n", buf.String())
}

func TestJSONRenderer(t *testing.T) {
	t.Run("result", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, json.New(&buf).RenderResult(sampleList()))

		var decoded struct {
			Aliases []types.Alias `json:"aliases"`
		}
		require.NoError(t, decodeJSON(buf.Bytes(), &decoded))
		require.Len(t, decoded.Aliases, 3)
		assert.Equal(t, "gd", decoded.Aliases[1].Name)
		assert.True(t, decoded.Aliases[1].Disabled)
		assert.NotContains(t, buf.String(), `"group": ""`)
	})

	t.Run("json export passes through", func(t *testing.T) {
		var buf bytes.Buffer
		data := []byte("{\n  \"aliases\": []\n}\n")
		require.NoError(t, json.New(&buf).RenderResult(&commands.ExportResult{Format: codec.FormatJSON, Data: data}))
		assert.Equal(t, string(data), buf.String())
	})

	t.Run("error carries code and details", func(t *testing.T) {
		var buf bytes.Buffer
		err := errors.New(errors.ErrNotFound, "alias not found").WithDetail("names", []string{"gs"})
		require.NoError(t, json.New(&buf).RenderError(err))

		var decoded map[string]interface{}
		require.NoError(t, decodeJSON(buf.Bytes(), &decoded))
		assert.Equal(t, "NOT_FOUND", decoded["code"])
		assert.Equal(t, []interface{}{"gs"}, decoded["details"].(map[string]interface{})["names"])
	})

	t.Run("import rejections encode as text", func(t *testing.T) {
		var buf bytes.Buffer
		result := &commands.ImportResult{
			Format: codec.FormatJSON,
			Report: alias.ImportReport{Rejected: []alias.Rejection{{Name: "1x", Reason: fmt.Errorf("bad name")}}},
		}
		require.NoError(t, json.New(&buf).RenderResult(result))
		assert.Contains(t, buf.String(), `"1x: bad name"`)
	})
}

func TestTerminalRenderer(t *testing.T) {
	t.Run("list groups sections", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, terminal.New(&buf).RenderResult(sampleList()))

		out := buf.String()
		assert.Contains(t, out, "git")
		assert.Contains(t, out, "general")
		assert.Contains(t, out, "git status")
		assert.Contains(t, out, "(disabled)")
		assert.Less(t, strings.Index(out, "git status"), strings.Index(out, "ls -la"))
	})

	t.Run("empty search", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, terminal.New(&buf).RenderResult(&commands.ListResult{Keyword: "docker"}))
		assert.Contains(t, buf.String(), `No aliases match "docker".`)
	})

	t.Run("empty enabled-only list", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, terminal.New(&buf).RenderResult(&commands.ListResult{EnabledOnly: true}))
		assert.Contains(t, buf.String(), "No enabled aliases.")
	})

	t.Run("groups table", func(t *testing.T) {
		var buf bytes.Buffer
		groups := &commands.GroupsResult{Groups: []commands.GroupInfo{{Name: "git", Count: 2}}}
		require.NoError(t, terminal.New(&buf).RenderResult(groups))
		assert.Contains(t, buf.String(), "ALIASES")
		assert.Contains(t, buf.String(), "git")
	})

	t.Run("info renders markdown", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, terminal.New(&buf).RenderResult(&commands.InfoResult{Root: "/cfg/alx", Shell: "zsh"}))
		assert.Contains(t, buf.String(), "/cfg/alx")
		assert.Contains(t, buf.String(), "zsh")
	})

	t.Run("messages", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, terminal.New(&buf).RenderMessage("Added gs"))
		assert.Contains(t, buf.String(), "Added gs")
	})
}

func decodeJSON(data []byte, v interface{}) error {
	return stdjson.Unmarshal(data, v)
}
