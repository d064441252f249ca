package types

import "time"

// DefaultGroup is the implicit group of aliases that carry no group tag
const DefaultGroup = "general"

// Alias is a single named shell alias.
//
// Field order is the serialization order for every format alx writes.
type Alias struct {
	Name        string    `json:"name" toml:"name" yaml:"name"`
	Command     string    `json:"command" toml:"command" yaml:"command"`
	Description string    `json:"description,omitempty" toml:"description,omitempty" yaml:"description,omitempty"`
	Group       string    `json:"group,omitempty" toml:"group,omitempty" yaml:"group,omitempty"`
	Disabled    bool      `json:"disabled,omitempty" toml:"disabled,omitempty" yaml:"disabled,omitempty"`
	CreatedAt   time.Time `json:"created_at" toml:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" toml:"updated_at" yaml:"updated_at"`
}

// EffectiveGroup returns the group used for listing, filtering and
// grouping. Untagged aliases belong to DefaultGroup.
func (a Alias) EffectiveGroup() string {
	if a.Group == "" {
		return DefaultGroup
	}
	return a.Group
}

// IsDefaultGroup reports whether the alias belongs to the implicit default group
func (a Alias) IsDefaultGroup() bool {
	return a.EffectiveGroup() == DefaultGroup
}

// Normalize returns a copy with timestamps converted to UTC and truncated
// to whole seconds, the precision every supported format preserves.
func (a Alias) Normalize() Alias {
	a.CreatedAt = NormalizeTime(a.CreatedAt)
	a.UpdatedAt = NormalizeTime(a.UpdatedAt)
	return a
}

// NormalizeTime converts t to UTC and drops sub-second precision
func NormalizeTime(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return t.UTC().Truncate(time.Second)
}
