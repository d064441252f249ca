// Package codec maps alias stores to bytes and back.
//
// The canonical store file is TOML, an array of [[aliases]] tables with
// records ordered by name. The same document shape ({"aliases": [...]})
// is used for the JSON, TOML and YAML export formats, so an export can be
// fed straight back into import.
package codec
