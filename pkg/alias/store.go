package alias

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/arthur-debert/alx/pkg/errors"
	"github.com/arthur-debert/alx/pkg/logging"
	"github.com/arthur-debert/alx/pkg/types"
)

// Store holds aliases keyed by name
type Store struct {
	aliases map[string]types.Alias
	now     func() time.Time
	dirty   bool
}

// Option configures a Store
type Option func(*Store)

// WithClock sets the clock used to stamp created_at and updated_at
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// AddOptions carries the optional fields of a new alias
type AddOptions struct {
	Description string
	Group       string
}

// EditOptions carries the fields to change. Nil fields are left unchanged.
type EditOptions struct {
	Command     *string
	Description *string
	Group       *string
}

// IsEmpty reports whether no field was provided
func (o EditOptions) IsEmpty() bool {
	return o.Command == nil && o.Description == nil && o.Group == nil
}

// New creates an empty store
func New(opts ...Option) *Store {
	s := &Store{
		aliases: make(map[string]types.Alias),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FromRecords builds a clean store from persisted records. Every record
// must be valid and names must be unique.
func FromRecords(records []types.Alias, opts ...Option) (*Store, error) {
	s := New(opts...)
	for i, rec := range records {
		if err := validateRecord(rec); err != nil {
			return nil, errors.Wrapf(err, errors.GetErrorCode(err), "record %d", i).
				WithDetail("index", i)
		}
		if _, exists := s.aliases[rec.Name]; exists {
			return nil, errors.Newf(errors.ErrDuplicateName, "record %d: alias '%s' is defined more than once", i, rec.Name).
				WithDetail("index", i).
				WithDetail("name", rec.Name)
		}
		rec.Group = normalizeGroup(rec.Group)
		s.aliases[rec.Name] = s.stamp(rec.Normalize())
	}
	return s, nil
}

// Len returns the number of aliases in the store
func (s *Store) Len() int {
	return len(s.aliases)
}

// Dirty reports whether the store changed since it was loaded or last marked clean
func (s *Store) Dirty() bool {
	return s.dirty
}

// MarkClean resets the dirty flag, typically after a successful save
func (s *Store) MarkClean() {
	s.dirty = false
}

// Get returns the alias with the given name
func (s *Store) Get(name string) (types.Alias, bool) {
	a, ok := s.aliases[name]
	return a, ok
}

// Add inserts a new alias
func (s *Store) Add(name, command string, opts AddOptions) (types.Alias, error) {
	if err := ValidateName(name); err != nil {
		return types.Alias{}, err
	}
	if err := ValidateCommand(command); err != nil {
		return types.Alias{}, err
	}
	if _, exists := s.aliases[name]; exists {
		return types.Alias{}, errors.Newf(errors.ErrDuplicateName, "alias '%s' already exists", name).
			WithDetail("name", name)
	}

	now := s.timestamp()
	a := types.Alias{
		Name:        name,
		Command:     command,
		Description: strings.TrimSpace(opts.Description),
		Group:       normalizeGroup(opts.Group),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.aliases[name] = a
	s.dirty = true

	log := logging.GetLogger("alias.store")
	log.Debug().
		Str("name", name).
		Str("group", a.EffectiveGroup()).
		Msg("Alias added")
	return a, nil
}

// Edit changes the provided fields of an existing alias. The returned
// bool is false when nothing changed.
func (s *Store) Edit(name string, opts EditOptions) (types.Alias, bool, error) {
	a, ok := s.aliases[name]
	if !ok {
		return types.Alias{}, false, notFound(name)
	}

	changed := false
	if opts.Command != nil && *opts.Command != a.Command {
		if err := ValidateCommand(*opts.Command); err != nil {
			return types.Alias{}, false, err
		}
		a.Command = *opts.Command
		changed = true
	}
	if opts.Description != nil {
		if d := strings.TrimSpace(*opts.Description); d != a.Description {
			a.Description = d
			changed = true
		}
	}
	if opts.Group != nil {
		if g := normalizeGroup(*opts.Group); g != a.Group {
			a.Group = g
			changed = true
		}
	}

	if !changed {
		return a, false, nil
	}

	a.UpdatedAt = s.timestamp()
	s.aliases[name] = a
	s.dirty = true
	return a, true, nil
}

// SetDisabled enables or disables an alias. Disabled aliases stay in the
// store but are left out of the generated script.
func (s *Store) SetDisabled(name string, disabled bool) (bool, error) {
	a, ok := s.aliases[name]
	if !ok {
		return false, notFound(name)
	}
	if a.Disabled == disabled {
		return false, nil
	}
	a.Disabled = disabled
	a.UpdatedAt = s.timestamp()
	s.aliases[name] = a
	s.dirty = true
	return true, nil
}

// Remove deletes every named alias that exists. If some names are absent
// the others are still removed and a single NotFound error lists all the
// missing names.
func (s *Store) Remove(names ...string) ([]string, error) {
	var removed, missing []string
	seen := make(map[string]struct{}, len(names))

	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		if _, ok := s.aliases[name]; !ok {
			missing = append(missing, name)
			continue
		}
		delete(s.aliases, name)
		removed = append(removed, name)
	}

	if len(removed) > 0 {
		s.dirty = true
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return removed, notFound(missing...)
	}
	return removed, nil
}

// List returns the aliases ordered by group then name, the default group
// last. A non-empty group restricts the sequence to that group. The
// sequence reads the store when iterated, so it can be ranged over again
// after the store changes.
func (s *Store) List(group string) iter.Seq[types.Alias] {
	return func(yield func(types.Alias) bool) {
		for _, a := range s.sorted(CompareListing) {
			if group != "" && a.EffectiveGroup() != group {
				continue
			}
			if !yield(a) {
				return
			}
		}
	}
}

// Search returns aliases whose name, command or description contain
// keyword, ignoring case, sorted by name.
func (s *Store) Search(keyword string) []types.Alias {
	needle := strings.ToLower(keyword)
	var matches []types.Alias
	for _, a := range s.sorted(compareName) {
		if strings.Contains(strings.ToLower(a.Name), needle) ||
			strings.Contains(strings.ToLower(a.Command), needle) ||
			strings.Contains(strings.ToLower(a.Description), needle) {
			matches = append(matches, a)
		}
	}
	return matches
}

// Groups returns the distinct groups in use, sorted, the default group last
func (s *Store) Groups() []string {
	set := make(map[string]struct{})
	for _, a := range s.aliases {
		set[a.EffectiveGroup()] = struct{}{}
	}
	groups := make([]string, 0, len(set))
	for g := range set {
		groups = append(groups, g)
	}
	slices.SortFunc(groups, compareGroup)
	return groups
}

// Export returns a copy of the records ordered by name, optionally
// restricted to one group.
func (s *Store) Export(group string) []types.Alias {
	all := s.sorted(compareName)
	if group == "" {
		return all
	}
	out := make([]types.Alias, 0, len(all))
	for _, a := range all {
		if a.EffectiveGroup() == group {
			out = append(out, a)
		}
	}
	return out
}

// CompareListing orders aliases by group then name, with the default
// group after every named group.
func CompareListing(a, b types.Alias) int {
	if c := compareGroup(a.EffectiveGroup(), b.EffectiveGroup()); c != 0 {
		return c
	}
	return cmp.Compare(a.Name, b.Name)
}

func compareGroup(a, b string) int {
	aDefault, bDefault := a == types.DefaultGroup, b == types.DefaultGroup
	switch {
	case aDefault && !bDefault:
		return 1
	case !aDefault && bDefault:
		return -1
	}
	return cmp.Compare(a, b)
}

func compareName(a, b types.Alias) int {
	return cmp.Compare(a.Name, b.Name)
}

func (s *Store) sorted(less func(a, b types.Alias) int) []types.Alias {
	out := make([]types.Alias, 0, len(s.aliases))
	for _, a := range s.aliases {
		out = append(out, a)
	}
	slices.SortFunc(out, less)
	return out
}

func (s *Store) timestamp() time.Time {
	return types.NormalizeTime(s.now())
}

// stamp fills in missing timestamps
func (s *Store) stamp(a types.Alias) types.Alias {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = s.timestamp()
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = a.CreatedAt
	}
	return a
}

func validateRecord(a types.Alias) error {
	if err := ValidateName(a.Name); err != nil {
		return err
	}
	return ValidateCommand(a.Command)
}

func normalizeGroup(group string) string {
	g := strings.TrimSpace(group)
	if g == types.DefaultGroup {
		return ""
	}
	return g
}

func notFound(names ...string) error {
	msg := fmt.Sprintf("alias '%s' not found", names[0])
	if len(names) > 1 {
		msg = fmt.Sprintf("aliases not found: %s", strings.Join(names, ", "))
	}
	return errors.New(errors.ErrNotFound, msg).WithDetail("names", names)
}
