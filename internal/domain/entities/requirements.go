package entities

import "strings"

const (
	pinSeparator = "=="
	viaMarker    = "# via"
	commentMark  = "#"
)

// parserState is the state of the requirements parser between lines.
type parserState int

const (
	// noCurrentDependency is the initial state: no "name==version" line seen yet.
	noCurrentDependency parserState = iota
	// haveDependency means provenance lines attribute to requirementsParser.dependency.
	haveDependency
)

// requirementsParser walks a pinned-requirements listing one line at a time.
type requirementsParser struct {
	state      parserState
	dependency string
	result     DependencyMap
}

// ParseRequirements builds a DependencyMap from the text of a pinned-requirements
// listing (the output of pip-compile, uv pip compile and similar tools).
//
// Each "name==version" line makes name the current dependency. Every following
// provenance comment ("# via consumer" or "#consumer") records that consumer as a
// reason for the current dependency, until the next "name==version" line.
// Matching is case-insensitive. Lines that fit neither shape, and provenance seen
// before any dependency, are ignored. Empty input yields an empty map.
func ParseRequirements(text string) DependencyMap {
	parser := &requirementsParser{
		state:  noCurrentDependency,
		result: make(DependencyMap),
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.ToLower(strings.TrimSpace(raw))
		if line == "" {
			continue
		}
		parser.feed(line)
	}

	return parser.result
}

// feed applies one trimmed, lowercased, non-empty line.
func (it *requirementsParser) feed(line string) {
	if name, _, found := strings.Cut(line, pinSeparator); found {
		// "==1.0" names nothing, so provenance after it has no dependency to attribute
		it.dependency = strings.TrimSpace(name)
		it.state = haveDependency
		if it.dependency == "" {
			it.state = noCurrentDependency
		}
		return
	}

	consumer := provenanceConsumer(line)
	if consumer == "" {
		return
	}

	switch it.state {
	case noCurrentDependency:
		return
	case haveDependency:
		it.result[consumer] = append(it.result[consumer], it.dependency)
	}
}

// provenanceConsumer strips the "# via" marker and any remaining '#' characters
// from a provenance line and returns what is left. A bare "# via" (the header of
// pip-compile's multi-line form) returns "".
func provenanceConsumer(line string) string {
	if rest, ok := strings.CutPrefix(line, viaMarker); ok {
		// "# viable-pkg" is a consumer named "viable-pkg", not "ble-pkg"
		if rest == "" || rest[0] == ' ' || rest[0] == '\t' {
			line = rest
		}
	}
	return strings.TrimSpace(strings.ReplaceAll(line, commentMark, ""))
}
