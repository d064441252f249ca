package commands

import (
	"slices"
	"strings"

	"github.com/arthur-debert/alx/pkg/alias"
	"github.com/arthur-debert/alx/pkg/errors"
	"github.com/arthur-debert/alx/pkg/logging"
	"github.com/arthur-debert/alx/pkg/types"
)

// ListOptions holds options for the list command
type ListOptions struct {
	// Group filters by group; empty lists everything
	Group string
	// EnabledOnly drops disabled aliases
	EnabledOnly bool
}

// ListResult holds aliases in display order
type ListResult struct {
	Aliases []types.Alias `json:"aliases"`
	Group   string        `json:"group,omitempty"`
	Keyword string        `json:"keyword,omitempty"`
	// EnabledOnly is set when disabled aliases were left out
	EnabledOnly bool `json:"enabled_only,omitempty"`
}

// List returns aliases ordered by group, then name, with the default
// group last
func List(env Env, opts ListOptions) (*ListResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "List").Str("group", opts.Group).Bool("enabledOnly", opts.EnabledOnly).Msg("Executing command")

	store, err := env.load()
	if err != nil {
		return nil, err
	}

	aliases := slices.Collect(store.List(opts.Group))
	if opts.EnabledOnly {
		aliases = slices.DeleteFunc(aliases, func(a types.Alias) bool { return a.Disabled })
	}
	result := &ListResult{
		Aliases:     aliases,
		Group:       opts.Group,
		EnabledOnly: opts.EnabledOnly,
	}
	log.Info().Str("command", "List").Int("aliases", len(result.Aliases)).Msg("Command finished")
	return result, nil
}

// SearchOptions holds options for the search command
type SearchOptions struct {
	Keyword string
}

// Search returns aliases whose name, command or description contains the
// keyword, case-insensitively, ordered by name
func Search(env Env, opts SearchOptions) (*ListResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Search").Str("keyword", opts.Keyword).Msg("Executing command")

	if strings.TrimSpace(opts.Keyword) == "" {
		return nil, errors.New(errors.ErrInvalidInput, "search keyword must not be empty")
	}

	store, err := env.load()
	if err != nil {
		return nil, err
	}

	result := &ListResult{
		Aliases: store.Search(opts.Keyword),
		Keyword: opts.Keyword,
	}
	log.Info().Str("command", "Search").Int("matches", len(result.Aliases)).Msg("Command finished")
	return result, nil
}

// GroupInfo summarizes one group
type GroupInfo struct {
	Name     string `json:"name"`
	Count    int    `json:"count"`
	Disabled int    `json:"disabled"`
}

// GroupsResult lists groups in display order
type GroupsResult struct {
	Groups []GroupInfo `json:"groups"`
}

// Groups lists every group with its alias counts
func Groups(env Env) (*GroupsResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Groups").Msg("Executing command")

	store, err := env.load()
	if err != nil {
		return nil, err
	}

	result := &GroupsResult{}
	for _, name := range store.Groups() {
		info := GroupInfo{Name: name}
		for a := range store.List(name) {
			info.Count++
			if a.Disabled {
				info.Disabled++
			}
		}
		result.Groups = append(result.Groups, info)
	}
	return result, nil
}

// countStore tallies aliases for info output
func countStore(store *alias.Store) (total, disabled int) {
	for a := range store.List("") {
		total++
		if a.Disabled {
			disabled++
		}
	}
	return total, disabled
}
