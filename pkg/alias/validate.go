package alias

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/arthur-debert/alx/pkg/errors"
)

var namePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// reservedKeywords are shell words an alias may shadow. They are accepted
// with a warning.
var reservedKeywords = map[string]struct{}{
	"if": {}, "then": {}, "else": {}, "elif": {}, "fi": {}, "case": {}, "esac": {},
	"for": {}, "select": {}, "while": {}, "until": {}, "do": {}, "done": {}, "in": {},
	"function": {}, "time": {}, "coproc": {}, "cd": {}, "exit": {}, "export": {},
	"alias": {}, "unalias": {}, "source": {}, "exec": {}, "end": {}, "set": {},
}

// ValidateName checks that name can be used as an alias name in every
// supported shell.
func ValidateName(name string) error {
	if name == "" {
		return errors.New(errors.ErrInvalidName, "alias name cannot be empty")
	}
	if strings.ContainsFunc(name, unicode.IsSpace) {
		return errors.Newf(errors.ErrInvalidName, "alias name %q cannot contain whitespace", name).
			WithDetail("name", name)
	}
	first := name[0]
	if !(first == '_' || (first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z')) {
		return errors.Newf(errors.ErrInvalidName, "alias name %q must start with a letter or underscore", name).
			WithDetail("name", name)
	}
	if !namePattern.MatchString(name) {
		return errors.Newf(errors.ErrInvalidName, "alias name %q may only contain letters, digits, '_' and '-'", name).
			WithDetail("name", name)
	}
	return nil
}

// ValidateCommand checks that command is non-empty and free of control
// characters other than tab.
func ValidateCommand(command string) error {
	if strings.TrimSpace(command) == "" {
		return errors.New(errors.ErrInvalidCommand, "command cannot be empty")
	}
	if i := strings.IndexFunc(command, isForbiddenControl); i >= 0 {
		return errors.Newf(errors.ErrInvalidCommand, "command contains control character %q at offset %d", command[i], i).
			WithDetail("offset", i)
	}
	return nil
}

// IsReservedKeyword reports whether name is a shell keyword or builtin that
// an alias would shadow.
func IsReservedKeyword(name string) bool {
	_, ok := reservedKeywords[name]
	return ok
}

func isForbiddenControl(r rune) bool {
	return r != '\t' && unicode.IsControl(r)
}
