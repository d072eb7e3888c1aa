package entities

import "errors"

var (
	// ErrEmptyCommand is returned when a shell command string is blank.
	ErrEmptyCommand = errors.New("empty command")

	// ErrVersionNotFound is returned when no version source applies to a directory.
	ErrVersionNotFound = errors.New("no package version found")

	// ErrUnknownVersionSource is returned when a forced version source is not registered.
	ErrUnknownVersionSource = errors.New("unknown version source")

	// ErrNoLockfiles is returned when the map command has nothing to read.
	ErrNoLockfiles = errors.New("no lockfiles given")

	// ErrCompileCommandMissing is returned when --compile is set without a compile_command.
	ErrCompileCommandMissing = errors.New("compile_command is not configured")

	// ErrInvalidOutputFormat is returned for an output format other than yaml or json.
	ErrInvalidOutputFormat = errors.New("invalid output format")
)
