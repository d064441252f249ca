package shell

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/alx/pkg/errors"
	"github.com/arthur-debert/alx/pkg/filesystem"
	"github.com/arthur-debert/alx/pkg/logging"
	"github.com/arthur-debert/alx/pkg/types"
)

const snippetMarker = "# Added by alx: load managed aliases"

// SourceSnippet returns the startup file lines that load scriptPath
func SourceSnippet(dialect Dialect, scriptPath string) string {
	if dialect == Fish {
		return fmt.Sprintf(`if test -f "%s"
    source "%s"
end`, scriptPath, scriptPath)
	}
	return fmt.Sprintf(`[ -f "%s" ] && source "%s"`, scriptPath, scriptPath)
}

// RCFile returns the default startup file of dialect under home
func RCFile(dialect Dialect, home string) string {
	switch dialect {
	case Zsh:
		return filepath.Join(home, ".zshrc")
	case Fish:
		return filepath.Join(home, ".config", "fish", "config.fish")
	default:
		return filepath.Join(home, ".bashrc")
	}
}

// InstallSnippet appends snippet to the startup file at rc unless it is
// already there. It reports whether the file was changed.
func InstallSnippet(fsys types.FS, rc, snippet string) (bool, error) {
	log := logging.GetLogger("shell.snippet")

	perm := fs.FileMode(0644)
	var content string
	data, err := fsys.ReadFile(rc)
	switch {
	case err == nil:
		content = string(data)
		if info, statErr := fsys.Stat(rc); statErr == nil {
			perm = info.Mode().Perm()
		}
	case stderrors.Is(err, fs.ErrNotExist):
	default:
		return false, errors.Wrapf(err, errors.ErrIOFailure, "failed to read %s", rc).
			WithDetail("path", rc)
	}

	if strings.Contains(content, snippet) {
		log.Debug().Str("rc", rc).Msg("Source snippet already installed")
		return false, nil
	}

	var b strings.Builder
	b.WriteString(content)
	if content != "" {
		if !strings.HasSuffix(content, "\n") {
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	b.WriteString(snippetMarker)
	b.WriteByte('\n')
	b.WriteString(snippet)
	b.WriteByte('\n')

	if err := filesystem.WriteFileAtomic(fsys, rc, []byte(b.String()), perm); err != nil {
		return false, errors.Wrapf(err, errors.ErrIOFailure, "failed to update %s", rc).
			WithDetail("path", rc)
	}

	log.Info().Str("rc", rc).Msg("Source snippet installed")
	return true, nil
}
