package entities

import (
	"regexp"
	"strings"
)

// ShellOptions configures a single shell command invocation.
type ShellOptions struct {
	Dir string   // Working directory; empty inherits the current one
	Env []string // Extra KEY=VALUE pairs appended to the process environment
}

// ShellResult holds what a finished child process produced.
type ShellResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// shellSafePattern matches words a POSIX shell passes through unchanged.
var shellSafePattern = regexp.MustCompile(`^[A-Za-z0-9_@%+=:,./-]+$`)

// ShellQuote returns arg as a single POSIX shell word. Words made only of safe
// characters come back as-is; anything else is single-quoted, with embedded
// single quotes written as '\''.
func ShellQuote(arg string) string {
	if shellSafePattern.MatchString(arg) {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}

// ShellJoin quotes every argument and joins them with spaces, so the shell
// splits the result back into exactly the same arguments.
func ShellJoin(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = ShellQuote(arg)
	}
	return strings.Join(quoted, " ")
}
