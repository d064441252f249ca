package commands

import (
	"path/filepath"
	"time"

	"github.com/arthur-debert/alx/pkg/backup"
	"github.com/arthur-debert/alx/pkg/config"
	"github.com/arthur-debert/alx/pkg/filesystem"
	"github.com/arthur-debert/alx/pkg/logging"
	"github.com/arthur-debert/alx/pkg/shell"
)

// InfoResult describes the installation
type InfoResult struct {
	Root        string          `json:"root"`
	ConfigPath  string          `json:"config_path"`
	AliasesPath string          `json:"aliases_path"`
	ScriptPath  string          `json:"script_path"`
	BackupDir   string          `json:"backup_dir"`
	Shell       string          `json:"shell"`
	Settings    config.Settings `json:"settings"`

	ConfigExists bool `json:"config_exists"`
	StoreExists  bool `json:"store_exists"`
	ScriptExists bool `json:"script_exists"`

	Aliases  int `json:"aliases"`
	Disabled int `json:"disabled"`
	Groups   int `json:"groups"`

	Backups    int       `json:"backups"`
	LastBackup time.Time `json:"last_backup,omitempty"`

	RCFile           string `json:"rc_file"`
	Snippet          string `json:"snippet"`
	SnippetInstalled bool   `json:"snippet_installed"`
}

// Info gathers paths, settings and counts for display
func Info(env Env) (*InfoResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Info").Msg("Executing command")

	cfg := env.Config
	result := &InfoResult{
		Root:        cfg.Root,
		ConfigPath:  cfg.ConfigPath(),
		AliasesPath: cfg.AliasesPath(),
		ScriptPath:  cfg.ScriptPath(),
		BackupDir:   cfg.BackupDir(),
		Shell:       cfg.Dialect.String(),
		Settings:    cfg.Settings,
		RCFile:      shell.RCFile(cfg.Dialect, env.Home),
		Snippet:     shell.SourceSnippet(cfg.Dialect, cfg.ScriptPath()),
	}

	var err error
	if result.ConfigExists, err = filesystem.Exists(env.FS, result.ConfigPath); err != nil {
		return nil, err
	}
	if result.StoreExists, err = filesystem.Exists(env.FS, result.AliasesPath); err != nil {
		return nil, err
	}
	if result.ScriptExists, err = filesystem.Exists(env.FS, result.ScriptPath); err != nil {
		return nil, err
	}
	result.SnippetInstalled = snippetInstalled(env, result.RCFile, result.Snippet)

	store, err := env.load()
	if err != nil {
		return nil, err
	}
	result.Aliases, result.Disabled = countStore(store)
	result.Groups = len(store.Groups())

	snapshots, err := backup.List(env.FS, cfg.BackupDir(), filepath.Base(cfg.ScriptPath()))
	if err != nil {
		return nil, err
	}
	result.Backups = len(snapshots)
	if len(snapshots) > 0 {
		result.LastBackup = snapshots[len(snapshots)-1].Time
	}

	return result, nil
}
