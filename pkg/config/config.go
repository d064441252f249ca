package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/alx/pkg/shell"
)

const (
	// DirName is the directory created under the XDG config home
	DirName = "alx"
	// FileName is the config file inside the root
	FileName = "config.toml"
	// EnvPrefix prefixes every environment override
	EnvPrefix = "ALX_"
	// EnvRoot overrides the root directory
	EnvRoot = "ALX_ROOT"
)

// Config is the effective configuration. After Load every path is absolute.
type Config struct {
	Shell    string   `koanf:"shell" toml:"shell"`
	Paths    Paths    `koanf:"paths" toml:"paths"`
	Settings Settings `koanf:"settings" toml:"settings"`

	// Root is the directory holding config, store, script and backups
	Root string `koanf:"-" toml:"-"`
	// Dialect is the resolved target shell
	Dialect shell.Dialect `koanf:"-" toml:"-"`
}

// Paths locates the managed files
type Paths struct {
	Aliases string `koanf:"aliases" toml:"aliases"`
	Script  string `koanf:"script" toml:"script"`
	Backups string `koanf:"backups" toml:"backups"`
}

// Settings holds behavior toggles
type Settings struct {
	AutoSync      bool `koanf:"auto_sync" toml:"auto_sync" json:"auto_sync"`
	BackupEnabled bool `koanf:"backup_enabled" toml:"backup_enabled" json:"backup_enabled"`
	BackupKeep    int  `koanf:"backup_keep" toml:"backup_keep" json:"backup_keep"`
}

// DefaultRoot returns $XDG_CONFIG_HOME/alx
func DefaultRoot() string {
	return filepath.Join(xdg.ConfigHome, DirName)
}

// ConfigPath returns the path of the root config file
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Root, FileName)
}

// AliasesPath returns the store file path
func (c *Config) AliasesPath() string {
	return c.Paths.Aliases
}

// ScriptPath returns the generated script path
func (c *Config) ScriptPath() string {
	return c.Paths.Script
}

// BackupDir returns the snapshot directory
func (c *Config) BackupDir() string {
	return c.Paths.Backups
}

// New returns the built-in configuration rooted at root for dialect,
// with every path resolved. It does not read files or the environment.
func New(root string, dialect shell.Dialect) *Config {
	cfg := &Config{
		Shell: dialect.String(),
		Paths: Paths{
			Aliases: "aliases.toml",
			Backups: "backups",
		},
		Settings: Settings{
			AutoSync:      true,
			BackupEnabled: true,
			BackupKeep:    10,
		},
		Root:    root,
		Dialect: dialect,
	}
	cfg.resolvePaths()
	return cfg
}

// resolvePaths anchors relative paths at Root and fills in the default
// script name for the dialect
func (c *Config) resolvePaths() {
	if c.Paths.Script == "" {
		c.Paths.Script = filepath.Join("shell", "aliases"+c.Dialect.ScriptExtension())
	}
	c.Paths.Aliases = c.anchor(c.Paths.Aliases)
	c.Paths.Script = c.anchor(c.Paths.Script)
	c.Paths.Backups = c.anchor(c.Paths.Backups)
}

func (c *Config) anchor(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(c.Root, path)
}
