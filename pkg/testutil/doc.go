// Package testutil provides utilities for testing alx components.
//
// Key components:
//   - TestEnvironment: a root layout, filesystem, config and clock wired together
//   - NewMemoryFS: afero-backed in-memory filesystem
//   - FailingFS: filesystem wrapper that injects errors per operation and path
//   - Clock: controllable time source
//
// Most tests should use EnvMemoryOnly. EnvIsolated runs against the real
// filesystem inside t.TempDir().
package testutil
