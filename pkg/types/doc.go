// Package types defines the core types and interfaces used throughout alx.
// This includes the Alias record shared by the store, the codecs and the
// shell generator, and the FS interface every file-touching package goes
// through so tests can swap in an in-memory filesystem.
package types
