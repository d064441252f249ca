package commands

import (
	"github.com/arthur-debert/alx/pkg/alias"
	"github.com/arthur-debert/alx/pkg/errors"
	"github.com/arthur-debert/alx/pkg/logging"
	alxsync "github.com/arthur-debert/alx/pkg/sync"
	"github.com/arthur-debert/alx/pkg/types"
)

// AddOptions holds options for the add command
type AddOptions struct {
	Name        string
	Command     string
	Description string
	Group       string
}

// AddResult reports the stored alias
type AddResult struct {
	Alias types.Alias `json:"alias"`
	// Reserved is set when the name shadows a shell keyword or builtin
	Reserved bool            `json:"reserved"`
	Sync     *alxsync.Result `json:"sync,omitempty"`
}

// Add creates a new alias
func Add(env Env, opts AddOptions) (*AddResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Add").Str("name", opts.Name).Msg("Executing command")

	result := &AddResult{Reserved: alias.IsReservedKeyword(opts.Name)}
	if result.Reserved {
		log.Warn().Str("name", opts.Name).Msg("Alias name shadows a shell keyword or builtin")
	}

	sync, err := env.syncer().Apply(func(s *alias.Store) error {
		a, err := s.Add(opts.Name, opts.Command, alias.AddOptions{
			Description: opts.Description,
			Group:       opts.Group,
		})
		result.Alias = a
		return err
	})
	result.Sync = sync
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "Add").Str("name", opts.Name).Str("state", sync.State.String()).Msg("Command finished")
	return result, nil
}

// EditOptions holds options for the edit command. Nil fields are kept.
type EditOptions struct {
	Name        string
	Command     *string
	Description *string
	Group       *string
}

// EditResult reports the alias after the edit
type EditResult struct {
	Alias   types.Alias     `json:"alias"`
	Changed bool            `json:"changed"`
	Sync    *alxsync.Result `json:"sync,omitempty"`
}

// Edit changes fields of an existing alias
func Edit(env Env, opts EditOptions) (*EditResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Edit").Str("name", opts.Name).Msg("Executing command")

	edit := alias.EditOptions{
		Command:     opts.Command,
		Description: opts.Description,
		Group:       opts.Group,
	}
	if edit.IsEmpty() {
		return nil, errors.New(errors.ErrInvalidInput, "nothing to edit: pass --command, --description or --group")
	}

	result := &EditResult{}
	sync, err := env.syncer().Apply(func(s *alias.Store) error {
		a, changed, err := s.Edit(opts.Name, edit)
		result.Alias = a
		result.Changed = changed
		return err
	})
	result.Sync = sync
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "Edit").Str("name", opts.Name).Bool("changed", result.Changed).Msg("Command finished")
	return result, nil
}

// RemoveOptions holds options for the remove command
type RemoveOptions struct {
	Names []string
}

// RemoveResult lists the removed aliases
type RemoveResult struct {
	Removed []string        `json:"removed"`
	Sync    *alxsync.Result `json:"sync,omitempty"`
}

// Remove deletes aliases by name. Names that exist are removed and
// persisted even when others are missing; the missing ones are then
// reported as a single NotFound error alongside the result.
func Remove(env Env, opts RemoveOptions) (*RemoveResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Remove").Strs("names", opts.Names).Msg("Executing command")

	if len(opts.Names) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no alias names given")
	}

	result := &RemoveResult{}
	var missing error
	sync, err := env.syncer().Apply(func(s *alias.Store) error {
		result.Removed, missing = s.Remove(opts.Names...)
		return nil
	})
	result.Sync = sync
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "Remove").Int("removed", len(result.Removed)).Msg("Command finished")
	return result, missing
}

// ToggleOptions names the alias to enable or disable
type ToggleOptions struct {
	Name string
}

// ToggleResult reports the alias after the toggle
type ToggleResult struct {
	Alias   types.Alias     `json:"alias"`
	Changed bool            `json:"changed"`
	Sync    *alxsync.Result `json:"sync,omitempty"`
}

// Enable puts a disabled alias back into the generated script
func Enable(env Env, opts ToggleOptions) (*ToggleResult, error) {
	return toggle(env, opts, false)
}

// Disable keeps an alias in the store but leaves it out of the script
func Disable(env Env, opts ToggleOptions) (*ToggleResult, error) {
	return toggle(env, opts, true)
}

func toggle(env Env, opts ToggleOptions, disabled bool) (*ToggleResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Toggle").Str("name", opts.Name).Bool("disabled", disabled).Msg("Executing command")

	result := &ToggleResult{}
	sync, err := env.syncer().Apply(func(s *alias.Store) error {
		changed, err := s.SetDisabled(opts.Name, disabled)
		if err != nil {
			return err
		}
		result.Changed = changed
		result.Alias, _ = s.Get(opts.Name)
		return nil
	})
	result.Sync = sync
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Sync regenerates the shell script from the store
func Sync(env Env) (*alxsync.Result, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Sync").Msg("Executing command")

	result, err := env.syncer().Sync(nil)
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "Sync").Int("aliases", result.Rendered).Msg("Command finished")
	return result, nil
}
