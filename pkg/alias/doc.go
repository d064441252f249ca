// Package alias implements the in-memory alias store.
//
// A Store maps alias names to records and enforces the invariants every
// other package relies on: names are unique and valid, commands are
// non-empty and free of control characters, and every record's name
// equals its key. Listing is deterministic: aliases are ordered by group
// then name, with the implicit default group sorted last.
package alias
