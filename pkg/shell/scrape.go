package shell

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/arthur-debert/alx/pkg/logging"
	"github.com/kballard/go-shellquote"
)

// Candidate is an alias definition found in a startup file
type Candidate struct {
	Name    string `json:"name"`
	Command string `json:"command"`
	// Line is the 1-based line number of the definition
	Line int `json:"line"`
}

var (
	posixAliasPattern = regexp.MustCompile(`^\s*alias\s+(?:--\s+)?([A-Za-z_][A-Za-z0-9_-]*)=(.*)$`)
	fishAliasPattern  = regexp.MustCompile(`^\s*alias\s+([A-Za-z_][A-Za-z0-9_-]*)(?:=|\s+)(.*)$`)
)

// ScrapeAliases extracts single-line alias definitions from content.
// Definitions whose value cannot be unquoted are skipped.
func ScrapeAliases(content string, dialect Dialect) []Candidate {
	log := logging.GetLogger("shell.scrape")

	pattern := posixAliasPattern
	unquote := unquotePOSIX
	if dialect == Fish {
		pattern = fishAliasPattern
		unquote = unquoteFish
	}

	var found []Candidate
	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		m := pattern.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		command, ok := unquote(strings.TrimSpace(m[2]))
		if !ok || strings.TrimSpace(command) == "" {
			log.Debug().Int("line", lineNo).Str("name", m[1]).Msg("Skipping alias with unparseable value")
			continue
		}
		found = append(found, Candidate{Name: m[1], Command: command, Line: lineNo})
	}
	return found
}

// unquotePOSIX reads one shell word, allowing a trailing comment
func unquotePOSIX(value string) (string, bool) {
	words, err := shellquote.Split(value)
	if err != nil {
		return "", false
	}
	return singleWord(words)
}

// unquoteFish handles fish single-quote escapes, which differ from POSIX
// ones, and defers everything else to the POSIX reader
func unquoteFish(value string) (string, bool) {
	if !strings.HasPrefix(value, "'") {
		return unquotePOSIX(value)
	}

	var b strings.Builder
	for i := 1; i < len(value); i++ {
		c := value[i]
		switch {
		case c == '\\' && i+1 < len(value) && (value[i+1] == '\\' || value[i+1] == '\''):
			b.WriteByte(value[i+1])
			i++
		case c == '\'':
			rest := strings.TrimSpace(value[i+1:])
			if rest != "" && !strings.HasPrefix(rest, "#") {
				return "", false
			}
			return b.String(), true
		default:
			b.WriteByte(c)
		}
	}
	return "", false
}

func singleWord(words []string) (string, bool) {
	switch {
	case len(words) == 1:
		return words[0], true
	case len(words) > 1 && strings.HasPrefix(words[1], "#"):
		return words[0], true
	}
	return "", false
}
