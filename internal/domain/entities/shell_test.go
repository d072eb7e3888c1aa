//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/releasekit/internal/domain/entities"
)

func TestShellQuote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		arg      string
		expected string
	}{
		{name: "should keep a plain word", arg: "make", expected: "make"},
		{name: "should keep paths and flags", arg: "--file=./a/b.txt", expected: "--file=./a/b.txt"},
		{name: "should quote a word with a space", arg: "a b", expected: "'a b'"},
		{name: "should quote shell metacharacters", arg: "%s|", expected: "'%s|'"},
		{name: "should quote an empty argument", arg: "", expected: "''"},
		{name: "should escape embedded single quotes", arg: "it's", expected: `'it'\''s'`},
		{name: "should not expand variables", arg: "$HOME", expected: "'$HOME'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			arg := tt.arg

			// when
			result := entities.ShellQuote(arg)

			// then
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestShellJoin(t *testing.T) {
	t.Parallel()

	t.Run("should quote each argument separately", func(t *testing.T) {
		t.Parallel()

		// given
		args := []string{"printf", "%s|", "a b"}

		// when
		result := entities.ShellJoin(args)

		// then
		assert.Equal(t, "printf '%s|' 'a b'", result)
	})
}
