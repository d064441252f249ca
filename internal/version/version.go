// Package version holds build information injected at link time
package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/alx/internal/version.Version=...
	Commit  = "unknown" // -X github.com/arthur-debert/alx/internal/version.Commit=...
	Date    = "unknown" // -X github.com/arthur-debert/alx/internal/version.Date=...
)
