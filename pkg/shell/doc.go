// Package shell renders alias records into shell scripts and wires the
// generated script into the user's startup files.
//
// Three dialects are supported. Bash and zsh share POSIX single-quote
// rules: inside '...' nothing is special, so a literal quote is written
// as '\'' (close, escaped quote, reopen). Fish single-quoted strings
// honor two escapes, \\ and \', and nothing else.
//
// Commands holding control characters other than tab cannot be written
// safely by either rule and are rejected with UnsupportedCommand.
package shell
