// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Orchestrate test environments with proper dependencies

package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/alx/pkg/config"
	"github.com/arthur-debert/alx/pkg/filesystem"
	"github.com/arthur-debert/alx/pkg/shell"
	"github.com/arthur-debert/alx/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// BaseTime is the initial clock reading of every environment
var BaseTime = time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

// Clock is a manually advanced time source
type Clock struct {
	now time.Time
}

// NewClock returns a clock reading t
func NewClock(t time.Time) *Clock {
	return &Clock{now: t}
}

// Now returns the current reading
func (c *Clock) Now() time.Time { return c.now }

// Advance moves the clock forward by d
func (c *Clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// TestEnvironment provides a root layout with its dependencies
type TestEnvironment struct {
	Root    string
	HomeDir string

	FS     types.FS
	Config *config.Config
	Clock  *Clock

	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates an environment for dialect with the built-in
// settings. Nothing under Root exists until the test creates it.
func NewTestEnvironment(t *testing.T, envType EnvType, dialect shell.Dialect) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		Type:  envType,
		Clock: NewClock(BaseTime),
		t:     t,
	}

	switch envType {
	case EnvIsolated:
		base := t.TempDir()
		env.Root = filepath.Join(base, "config", "alx")
		env.HomeDir = filepath.Join(base, "home")
		env.FS = filesystem.NewOS()
	default:
		env.Root = "/virtual/config/alx"
		env.HomeDir = "/virtual/home"
		env.FS = NewMemoryFS()
	}

	if err := env.FS.MkdirAll(env.HomeDir, 0755); err != nil {
		t.Fatalf("Failed to create home directory: %v", err)
	}
	env.Config = config.New(env.Root, dialect)
	return env
}

// WriteFile creates a file and its parent directories
func (env *TestEnvironment) WriteFile(path, content string) {
	env.t.Helper()
	if err := env.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		env.t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := env.FS.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write %s: %v", path, err)
	}
}

// ReadFile returns a file's content, failing the test if it is missing
func (env *TestEnvironment) ReadFile(path string) string {
	env.t.Helper()
	data, err := env.FS.ReadFile(path)
	if err != nil {
		env.t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

// Exists reports whether path exists
func (env *TestEnvironment) Exists(path string) bool {
	env.t.Helper()
	ok, err := filesystem.Exists(env.FS, path)
	if err != nil {
		env.t.Fatalf("Failed to stat %s: %v", path, err)
	}
	return ok
}

// Entries lists the names in dir, empty when it does not exist
func (env *TestEnvironment) Entries(dir string) []string {
	env.t.Helper()
	entries, err := env.FS.ReadDir(dir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
