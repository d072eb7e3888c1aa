//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/releasekit/internal/domain/entities"
)

func TestProvenanceConsumer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		expected string
	}{
		{name: "should strip the via marker", line: "# via pkg-b", expected: "pkg-b"},
		{name: "should strip a bare comment mark", line: "#pkg-c", expected: "pkg-c"},
		{name: "should strip the via marker followed by a tab", line: "# via\tpkg-d", expected: "pkg-d"},
		{name: "should keep a consumer that starts with via", line: "# viable-pkg", expected: "viable-pkg"},
		{name: "should return empty for the multi-line header", line: "# via", expected: ""},
		{name: "should return empty for a lone comment mark", line: "###", expected: ""},
		{name: "should keep requirement file references", line: "#   -r requirements.in", expected: "-r requirements.in"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			line := tt.line

			// when
			result := entities.ProvenanceConsumer(line)

			// then
			assert.Equal(t, tt.expected, result)
		})
	}
}
