package shell

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/alx/pkg/errors"
)

// Dialect is a supported target shell
type Dialect string

const (
	Bash Dialect = "bash"
	Zsh  Dialect = "zsh"
	Fish Dialect = "fish"
)

// Dialects lists every supported dialect
var Dialects = []Dialect{Bash, Zsh, Fish}

// String returns the dialect name
func (d Dialect) String() string {
	return string(d)
}

// ScriptExtension is the file extension used for generated scripts
func (d Dialect) ScriptExtension() string {
	if d == Fish {
		return ".fish"
	}
	return ".sh"
}

// ParseDialect parses a shell name such as "zsh" or "/usr/bin/fish"
func ParseDialect(name string) (Dialect, error) {
	base := strings.ToLower(filepath.Base(strings.TrimSpace(name)))
	switch base {
	case "bash":
		return Bash, nil
	case "zsh":
		return Zsh, nil
	case "fish":
		return Fish, nil
	}
	return "", errors.Newf(errors.ErrUnsupportedShell, "unsupported shell: %s (expected bash, zsh or fish)", name).
		WithDetail("shell", name)
}

// DetectDialect derives the dialect from the value of $SHELL
func DetectDialect(shellEnv string) (Dialect, error) {
	if strings.TrimSpace(shellEnv) == "" {
		return "", errors.New(errors.ErrUnsupportedShell, "cannot detect shell: $SHELL is not set, pass --shell")
	}
	return ParseDialect(shellEnv)
}

// DialectFromPath derives the dialect from a startup file path such as
// ~/.zshrc or ~/.config/fish/config.fish
func DialectFromPath(path string) (Dialect, error) {
	base := filepath.Base(path)
	switch {
	case strings.HasSuffix(base, ".fish"):
		return Fish, nil
	case strings.HasPrefix(base, ".zsh"), strings.HasPrefix(base, ".zprofile"), strings.HasPrefix(base, ".zlogin"):
		return Zsh, nil
	case strings.HasPrefix(base, ".bash"), base == ".profile", strings.HasSuffix(base, ".sh"):
		return Bash, nil
	}
	return "", errors.Newf(errors.ErrUnsupportedShell, "cannot tell which shell %s belongs to", path).
		WithDetail("path", path)
}
