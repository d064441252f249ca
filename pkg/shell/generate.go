package shell

import (
	"fmt"
	"strings"
	"time"

	"github.com/arthur-debert/alx/pkg/errors"
	"github.com/arthur-debert/alx/pkg/logging"
	"github.com/arthur-debert/alx/pkg/types"
)

// DefaultTool is the tool name written to script headers
const DefaultTool = "alx"

// GenerateOptions controls the script header
type GenerateOptions struct {
	// Now is the generation time. Zero omits the timestamp line.
	Now time.Time
	// Tool names the generator. Defaults to DefaultTool.
	Tool string
}

// Generate renders records as a script for dialect. Records are written
// in the given order; disabled records are skipped.
func Generate(records []types.Alias, dialect Dialect, opts GenerateOptions) (string, error) {
	log := logging.GetLogger("shell.generate")

	render, err := rendererFor(dialect)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	writeHeader(&b, dialect, opts)

	written := 0
	for _, rec := range records {
		if rec.Disabled {
			continue
		}
		line, err := render(rec)
		if err != nil {
			return "", err
		}
		b.WriteString(line)
		b.WriteByte('\n')
		written++
	}

	log.Debug().
		Str("dialect", dialect.String()).
		Int("aliases", written).
		Int("skipped", len(records)-written).
		Msg("Script rendered")
	return b.String(), nil
}

// AliasLine renders a single alias definition without a trailing newline
func AliasLine(rec types.Alias, dialect Dialect) (string, error) {
	render, err := rendererFor(dialect)
	if err != nil {
		return "", err
	}
	return render(rec)
}

type renderFunc func(types.Alias) (string, error)

func rendererFor(dialect Dialect) (renderFunc, error) {
	switch dialect {
	case Bash, Zsh:
		return renderPOSIX, nil
	case Fish:
		return renderFish, nil
	}
	return nil, errors.Newf(errors.ErrUnsupportedShell, "unsupported shell: %s", dialect).
		WithDetail("shell", string(dialect))
}

func renderPOSIX(rec types.Alias) (string, error) {
	if err := checkRenderable(rec); err != nil {
		return "", err
	}
	return fmt.Sprintf("alias %s=%s", rec.Name, QuotePOSIX(rec.Command)), nil
}

func renderFish(rec types.Alias) (string, error) {
	if err := checkRenderable(rec); err != nil {
		return "", err
	}
	return fmt.Sprintf("alias %s %s", rec.Name, QuoteFish(rec.Command)), nil
}

// QuotePOSIX wraps s in single quotes for bash and zsh
func QuotePOSIX(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

var fishEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// QuoteFish wraps s in single quotes for fish
func QuoteFish(s string) string {
	return "'" + fishEscaper.Replace(s) + "'"
}

func checkRenderable(rec types.Alias) error {
	for i, r := range rec.Command {
		if r == '\t' {
			continue
		}
		if r < 0x20 || r == 0x7f {
			return errors.Newf(errors.ErrUnsupportedCommand,
				"alias '%s' cannot be written: command holds control character %U at offset %d", rec.Name, r, i).
				WithDetail("name", rec.Name).
				WithDetail("offset", i)
		}
	}
	return nil
}

func writeHeader(b *strings.Builder, dialect Dialect, opts GenerateOptions) {
	tool := opts.Tool
	if tool == "" {
		tool = DefaultTool
	}
	fmt.Fprintf(b, "# %s aliases for %s. Generated by %s, do not edit.\n", tool, dialect, tool)
	fmt.Fprintf(b, "# Changes made here are overwritten by the next `%s sync`.\n", tool)
	if !opts.Now.IsZero() {
		fmt.Fprintf(b, "# Generated at %s\n", opts.Now.UTC().Format(time.RFC3339))
	}
	b.WriteByte('\n')
}
