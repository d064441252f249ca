// Package sync keeps the store file and the generated shell script in
// step. Every mutation runs through Apply, which moves a Result through
// Loaded, Mutated, Persisted, BackedUp and Synced and stops at the first
// stage that has nothing to do or fails.
//
// The script is rendered before the store is written, so a record that
// cannot be expressed in the target shell never reaches disk. A store
// write failure leaves the previous script untouched.
package sync

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"slices"
	"time"

	"github.com/arthur-debert/alx/pkg/alias"
	"github.com/arthur-debert/alx/pkg/backup"
	"github.com/arthur-debert/alx/pkg/codec"
	"github.com/arthur-debert/alx/pkg/config"
	"github.com/arthur-debert/alx/pkg/errors"
	"github.com/arthur-debert/alx/pkg/filesystem"
	"github.com/arthur-debert/alx/pkg/logging"
	"github.com/arthur-debert/alx/pkg/shell"
	"github.com/arthur-debert/alx/pkg/types"
)

// State is the last stage a run completed
type State int

const (
	StateIdle State = iota
	StateLoaded
	StateMutated
	StatePersisted
	StateBackedUp
	StateSynced
)

func (s State) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	case StateMutated:
		return "mutated"
	case StatePersisted:
		return "persisted"
	case StateBackedUp:
		return "backed-up"
	case StateSynced:
		return "synced"
	default:
		return "idle"
	}
}

// MarshalText encodes the state by name
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// MutateFunc changes the loaded store. Returning an error aborts the run
// with nothing written.
type MutateFunc func(*alias.Store) error

// Result reports how far a run got
type Result struct {
	State State        `json:"state"`
	Store *alias.Store `json:"-"`

	StorePath  string `json:"store_path"`
	ScriptPath string `json:"script_path"`
	// BackupPath is empty when no snapshot was taken
	BackupPath string   `json:"backup_path,omitempty"`
	Rotated    []string `json:"rotated,omitempty"`
	// Rendered counts the aliases written to the script
	Rendered int `json:"rendered"`
}

// Changed reports whether the store was written
func (r *Result) Changed() bool {
	return r.State >= StatePersisted
}

// Synced reports whether the script was regenerated
func (r *Result) Synced() bool {
	return r.State == StateSynced
}

// Option configures a Syncer
type Option func(*Syncer)

// WithClock sets the time source for timestamps, headers and backups
func WithClock(now func() time.Time) Option {
	return func(s *Syncer) {
		s.now = now
	}
}

// Syncer drives store mutations through persistence and script generation
type Syncer struct {
	fs  types.FS
	cfg *config.Config
	now func() time.Time
}

// New creates a Syncer over the layout described by cfg
func New(fsys types.FS, cfg *config.Config, opts ...Option) *Syncer {
	s := &Syncer{fs: fsys, cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the store. A missing store file is a first run and yields
// an empty store.
func (s *Syncer) Load() (*alias.Store, error) {
	store, err := codec.Load(s.fs, s.cfg.AliasesPath(), alias.WithClock(s.now))
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrNotFound) {
			log := logging.GetLogger("sync")
			log.Debug().Str("path", s.cfg.AliasesPath()).Msg("No store yet, starting empty")
			return alias.New(alias.WithClock(s.now)), nil
		}
		return nil, err
	}
	return store, nil
}

// Apply loads the store, runs mutate and, if the store changed, persists
// it and regenerates the script
func (s *Syncer) Apply(mutate MutateFunc) (*Result, error) {
	log := logging.GetLogger("sync")
	defer logging.LogOperationStart(log, "apply")()
	result := s.newResult()

	store, err := s.Load()
	if err != nil {
		return result, err
	}
	result.Store = store
	result.State = StateLoaded

	if mutate != nil {
		if err := mutate(store); err != nil {
			log.Debug().Err(err).Msg("Mutation rejected, nothing written")
			return result, err
		}
	}
	result.State = StateMutated

	if !store.Dirty() {
		log.Debug().Msg("Store unchanged, nothing to write")
		return result, nil
	}

	var script string
	if s.cfg.Settings.AutoSync {
		script, result.Rendered, err = s.render(store)
		if err != nil {
			return result, err
		}
	}

	if err := codec.Save(s.fs, store, s.cfg.AliasesPath()); err != nil {
		return result, err
	}
	result.State = StatePersisted
	log.Info().Str("path", result.StorePath).Int("aliases", store.Len()).Msg("Store saved")

	if !s.cfg.Settings.AutoSync {
		log.Info().Msg("Auto sync disabled, script left as is")
		return result, nil
	}

	return result, s.install(result, script)
}

// Sync regenerates the script from store without changing it. A nil
// store is loaded first.
func (s *Syncer) Sync(store *alias.Store) (*Result, error) {
	result := s.newResult()

	if store == nil {
		var err error
		store, err = s.Load()
		if err != nil {
			return result, err
		}
	}
	result.Store = store
	result.State = StatePersisted

	script, rendered, err := s.render(store)
	if err != nil {
		return result, err
	}
	result.Rendered = rendered

	return result, s.install(result, script)
}

// Render returns the script for store without writing anything
func (s *Syncer) Render(store *alias.Store) (string, error) {
	script, _, err := s.render(store)
	return script, err
}

func (s *Syncer) newResult() *Result {
	return &Result{
		State:      StateIdle,
		StorePath:  s.cfg.AliasesPath(),
		ScriptPath: s.cfg.ScriptPath(),
	}
}

func (s *Syncer) render(store *alias.Store) (string, int, error) {
	records := slices.Collect(store.List(""))
	script, err := shell.Generate(records, s.cfg.Dialect, shell.GenerateOptions{Now: s.now()})
	if err != nil {
		return "", 0, err
	}

	rendered := 0
	for _, rec := range records {
		if !rec.Disabled {
			rendered++
		}
	}
	return script, rendered, nil
}

// install snapshots the current script and replaces it
func (s *Syncer) install(result *Result, script string) error {
	log := logging.GetLogger("sync")
	scriptPath := s.cfg.ScriptPath()

	if s.cfg.Settings.BackupEnabled {
		path, rotated, err := s.backup(scriptPath)
		if err != nil {
			return err
		}
		result.BackupPath = path
		result.Rotated = rotated
	}
	result.State = StateBackedUp

	if err := filesystem.WriteFileAtomic(s.fs, scriptPath, []byte(script), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrIOFailure, "failed to write shell script %s", scriptPath).
			WithDetail("path", scriptPath)
	}
	result.State = StateSynced

	log.Info().
		Str("script", scriptPath).
		Str("shell", s.cfg.Dialect.String()).
		Int("aliases", result.Rendered).
		Str("backup", result.BackupPath).
		Msg("Shell script synced")
	return nil
}

func (s *Syncer) backup(scriptPath string) (string, []string, error) {
	if _, err := s.fs.Stat(scriptPath); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return "", nil, nil
		}
		return "", nil, errors.Wrapf(err, errors.ErrIOFailure, "failed to inspect %s", scriptPath)
	}

	path, err := backup.Snapshot(s.fs, scriptPath, s.cfg.BackupDir(), s.now())
	if err != nil {
		return "", nil, err
	}
	rotated, err := backup.Rotate(s.fs, s.cfg.BackupDir(), filepath.Base(scriptPath), s.cfg.Settings.BackupKeep)
	if err != nil {
		return path, rotated, err
	}
	return path, rotated, nil
}
