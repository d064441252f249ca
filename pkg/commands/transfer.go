package commands

import (
	stderrors "errors"
	"io/fs"

	"github.com/arthur-debert/alx/pkg/alias"
	"github.com/arthur-debert/alx/pkg/codec"
	"github.com/arthur-debert/alx/pkg/errors"
	"github.com/arthur-debert/alx/pkg/filesystem"
	"github.com/arthur-debert/alx/pkg/logging"
	"github.com/arthur-debert/alx/pkg/shell"
	alxsync "github.com/arthur-debert/alx/pkg/sync"
	"github.com/arthur-debert/alx/pkg/types"
)

// ExportOptions holds options for the export command
type ExportOptions struct {
	// Output is the destination file; empty returns the payload only
	Output string
	// Format is json, toml or yaml. Empty infers it from Output and
	// falls back to json.
	Format string
	Group  string
}

// ExportResult carries the payload and where it went
type ExportResult struct {
	Format codec.Format `json:"format"`
	Path   string       `json:"path,omitempty"`
	Data   []byte       `json:"-"`
	Count  int          `json:"count"`
}

// Export serializes the store, or one group of it
func Export(env Env, opts ExportOptions) (*ExportResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Export").Str("output", opts.Output).Msg("Executing command")

	format, err := resolveFormat(opts.Format, opts.Output, codec.FormatJSON)
	if err != nil {
		return nil, err
	}

	store, err := env.load()
	if err != nil {
		return nil, err
	}

	records := store.Export(opts.Group)
	data, err := codec.Encode(records, format)
	if err != nil {
		return nil, err
	}

	result := &ExportResult{Format: format, Path: opts.Output, Data: data, Count: len(records)}
	if opts.Output != "" {
		if err := filesystem.WriteFileAtomic(env.FS, opts.Output, data, 0644); err != nil {
			return nil, errors.Wrapf(err, errors.ErrIOFailure, "failed to write export %s", opts.Output).
				WithDetail("path", opts.Output)
		}
	}

	log.Info().Str("command", "Export").Str("format", string(format)).Int("aliases", result.Count).Msg("Command finished")
	return result, nil
}

// ImportOptions holds options for the import command
type ImportOptions struct {
	Path string
	// Format is json, toml or yaml. Empty infers it from Path.
	Format    string
	Overwrite bool
}

// ImportResult reports the merge outcome
type ImportResult struct {
	Format codec.Format       `json:"format"`
	Report alias.ImportReport `json:"report"`
	Sync   *alxsync.Result    `json:"sync,omitempty"`
}

// Import merges a payload into the store. Valid records are committed
// even when others are rejected; the rejections are then returned as an
// ImportRejected error alongside the result.
func Import(env Env, opts ImportOptions) (*ImportResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Import").Str("path", opts.Path).Msg("Executing command")

	format, err := resolveFormat(opts.Format, opts.Path, "")
	if err != nil {
		return nil, err
	}

	data, err := readInput(env.FS, opts.Path)
	if err != nil {
		return nil, err
	}
	records, err := codec.Decode(data, format)
	if err != nil {
		var alxErr *errors.AlxError
		if stderrors.As(err, &alxErr) {
			alxErr.WithDetail("path", opts.Path)
		}
		return nil, err
	}

	policy := alias.SkipExisting
	if opts.Overwrite {
		policy = alias.Overwrite
	}

	result, err := merge(env, records, policy)
	if result == nil {
		return nil, err
	}
	result.Format = format

	log.Info().
		Str("command", "Import").
		Int("added", len(result.Report.Added)).
		Int("overwritten", len(result.Report.Overwritten)).
		Int("skipped", len(result.Report.Skipped)).
		Int("rejected", len(result.Report.Rejected)).
		Msg("Command finished")
	return result, err
}

// MigrateOptions holds options for the migrate command
type MigrateOptions struct {
	// Source is the startup file to scan; empty uses the default rc
	// file of the configured shell
	Source string
	// Group tags every migrated alias
	Group string
}

// MigrateResult reports what was found and merged
type MigrateResult struct {
	Source     string             `json:"source"`
	Dialect    shell.Dialect      `json:"dialect"`
	Candidates []shell.Candidate  `json:"candidates"`
	Report     alias.ImportReport `json:"report"`
	Sync       *alxsync.Result    `json:"sync,omitempty"`
}

// Migrate scans a shell startup file for alias definitions and imports
// them without overwriting existing aliases. When a name is defined more
// than once the last definition wins, as it does in the shell.
func Migrate(env Env, opts MigrateOptions) (*MigrateResult, error) {
	log := logging.GetLogger("core.commands")

	source := opts.Source
	if source == "" {
		source = shell.RCFile(env.Config.Dialect, env.Home)
	}
	log.Debug().Str("command", "Migrate").Str("source", source).Msg("Executing command")

	dialect, err := shell.DialectFromPath(source)
	if err != nil {
		dialect = env.Config.Dialect
	}

	data, err := readInput(env.FS, source)
	if err != nil {
		return nil, err
	}

	candidates := shell.ScrapeAliases(string(data), dialect)
	records := lastDefinitions(candidates, opts.Group)

	merged, err := merge(env, records, alias.SkipExisting)
	if merged == nil {
		return nil, err
	}

	result := &MigrateResult{
		Source:     source,
		Dialect:    dialect,
		Candidates: candidates,
		Report:     merged.Report,
		Sync:       merged.Sync,
	}
	log.Info().
		Str("command", "Migrate").
		Int("found", len(candidates)).
		Int("added", len(result.Report.Added)).
		Int("skipped", len(result.Report.Skipped)).
		Msg("Command finished")
	return result, err
}

func merge(env Env, records []types.Alias, policy alias.ImportPolicy) (*ImportResult, error) {
	result := &ImportResult{}
	sync, err := env.syncer().Apply(func(s *alias.Store) error {
		result.Report = s.Import(records, policy)
		return nil
	})
	result.Sync = sync
	if err != nil {
		return nil, err
	}
	return result, result.Report.Err()
}

func lastDefinitions(candidates []shell.Candidate, group string) []types.Alias {
	index := make(map[string]int, len(candidates))
	var records []types.Alias
	for _, c := range candidates {
		rec := types.Alias{Name: c.Name, Command: c.Command, Group: group}
		if i, ok := index[c.Name]; ok {
			records[i] = rec
			continue
		}
		index[c.Name] = len(records)
		records = append(records, rec)
	}
	return records
}

func resolveFormat(explicit, path string, fallback codec.Format) (codec.Format, error) {
	if explicit != "" {
		return codec.ParseFormat(explicit)
	}
	if path != "" {
		format, err := codec.FormatFromPath(path)
		if err == nil || fallback == "" {
			return format, err
		}
	}
	if fallback == "" {
		return "", errors.New(errors.ErrUnsupportedFormat, "no input format given")
	}
	return fallback, nil
}

func readInput(fsys types.FS, path string) ([]byte, error) {
	data, err := fsys.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(err, errors.ErrNotFound, "%s does not exist", path).
			WithDetail("path", path)
	}
	return nil, errors.Wrapf(err, errors.ErrIOFailure, "failed to read %s", path).
		WithDetail("path", path)
}
