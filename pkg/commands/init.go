package commands

import (
	"strings"

	"github.com/arthur-debert/alx/pkg/config"
	"github.com/arthur-debert/alx/pkg/logging"
	"github.com/arthur-debert/alx/pkg/shell"
	alxsync "github.com/arthur-debert/alx/pkg/sync"
)

// InitOptions holds options for the init command
type InitOptions struct {
	// InstallSnippet appends the source line to the shell startup file
	InstallSnippet bool
	// RCFile overrides the startup file; empty uses the shell default
	RCFile string
}

// InitResult reports the scaffolded layout
type InitResult struct {
	Layout *config.InitResult `json:"layout"`
	Sync   *alxsync.Result    `json:"sync,omitempty"`
	// Snippet is the line that loads the generated script
	Snippet string `json:"snippet"`
	RCFile  string `json:"rc_file"`
	// SnippetInstalled is true when RCFile was changed
	SnippetInstalled bool `json:"snippet_installed"`
}

// Init scaffolds the root, generates the initial script and optionally
// hooks it into the shell startup file
func Init(env Env, opts InitOptions) (*InitResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Init").Str("root", env.Config.Root).Msg("Executing command")

	layout, err := config.Init(env.FS, env.Config)
	if err != nil {
		return nil, err
	}

	sync, err := env.syncer().Sync(nil)
	if err != nil {
		return nil, err
	}

	result := &InitResult{
		Layout:  layout,
		Sync:    sync,
		Snippet: shell.SourceSnippet(env.Config.Dialect, env.Config.ScriptPath()),
		RCFile:  opts.RCFile,
	}
	if result.RCFile == "" {
		result.RCFile = shell.RCFile(env.Config.Dialect, env.Home)
	}

	if opts.InstallSnippet {
		result.SnippetInstalled, err = shell.InstallSnippet(env.FS, result.RCFile, result.Snippet)
		if err != nil {
			return nil, err
		}
	}

	log.Info().
		Str("command", "Init").
		Bool("config_written", layout.ConfigWritten).
		Bool("snippet_installed", result.SnippetInstalled).
		Msg("Command finished")
	return result, nil
}

// snippetInstalled reports whether rc already sources the script
func snippetInstalled(env Env, rc, snippet string) bool {
	data, err := env.FS.ReadFile(rc)
	if err != nil {
		return false
	}
	return strings.Contains(string(data), snippet)
}
