package config

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/alx/pkg/alias"
	"github.com/arthur-debert/alx/pkg/codec"
	"github.com/arthur-debert/alx/pkg/errors"
	"github.com/arthur-debert/alx/pkg/filesystem"
	"github.com/arthur-debert/alx/pkg/logging"
	"github.com/arthur-debert/alx/pkg/types"
	gotoml "github.com/pelletier/go-toml/v2"
)

const configHeader = `# alx configuration. Generated by alx init.
# Relative paths resolve against the directory holding this file.

`

// InitResult lists what Init created. Existing files are left alone.
type InitResult struct {
	Root          string   `json:"root"`
	CreatedDirs   []string `json:"created_dirs"`
	ConfigWritten bool     `json:"config_written"`
	StoreCreated  bool     `json:"store_created"`
}

// Init scaffolds the root layout: directories, config.toml and an empty
// alias store. It is safe to run repeatedly.
func Init(fsys types.FS, cfg *Config) (*InitResult, error) {
	log := logging.GetLogger("config.init")
	result := &InitResult{Root: cfg.Root}

	for _, dir := range []string{cfg.Root, filepath.Dir(cfg.ScriptPath()), cfg.BackupDir(), filepath.Dir(cfg.AliasesPath())} {
		exists, err := filesystem.Exists(fsys, dir)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrIOFailure, "failed to inspect %s", dir)
		}
		if exists {
			continue
		}
		if err := fsys.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrIOFailure, "failed to create %s", dir).
				WithDetail("path", dir)
		}
		result.CreatedDirs = append(result.CreatedDirs, dir)
	}

	configExists, err := filesystem.Exists(fsys, cfg.ConfigPath())
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIOFailure, "failed to inspect %s", cfg.ConfigPath())
	}
	if !configExists {
		content, err := RenderFile(cfg)
		if err != nil {
			return nil, err
		}
		if err := filesystem.WriteFileAtomic(fsys, cfg.ConfigPath(), content, 0644); err != nil {
			return nil, errors.Wrapf(err, errors.ErrIOFailure, "failed to write %s", cfg.ConfigPath()).
				WithDetail("path", cfg.ConfigPath())
		}
		result.ConfigWritten = true
	}

	storeExists, err := filesystem.Exists(fsys, cfg.AliasesPath())
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIOFailure, "failed to inspect %s", cfg.AliasesPath())
	}
	if !storeExists {
		if err := codec.Save(fsys, alias.New(), cfg.AliasesPath()); err != nil {
			return nil, err
		}
		result.StoreCreated = true
	}

	log.Info().
		Str("root", cfg.Root).
		Int("dirs", len(result.CreatedDirs)).
		Bool("config", result.ConfigWritten).
		Bool("store", result.StoreCreated).
		Msg("Root initialized")
	return result, nil
}

// RenderFile serializes cfg as a config.toml, with paths under the root
// written relative to it
func RenderFile(cfg *Config) ([]byte, error) {
	doc := struct {
		Shell    string   `toml:"shell"`
		Paths    Paths    `toml:"paths"`
		Settings Settings `toml:"settings"`
	}{
		Shell: cfg.Dialect.String(),
		Paths: Paths{
			Aliases: cfg.relative(cfg.AliasesPath()),
			Script:  cfg.relative(cfg.ScriptPath()),
			Backups: cfg.relative(cfg.BackupDir()),
		},
		Settings: cfg.Settings,
	}

	data, err := gotoml.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render config")
	}
	return append([]byte(configHeader), data...), nil
}

func (c *Config) relative(path string) string {
	rel, err := filepath.Rel(c.Root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.ToSlash(rel)
}
