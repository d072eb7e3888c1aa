package entities

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	OutputYAML = "yaml"
	OutputJSON = "json"
)

// ValidateOutputFormat returns ErrInvalidOutputFormat unless format is yaml or json.
func ValidateOutputFormat(format string) error {
	switch format {
	case OutputYAML, OutputJSON:
		return nil
	default:
		return fmt.Errorf("%w: %q (expected %q or %q)", ErrInvalidOutputFormat, format, OutputYAML, OutputJSON)
	}
}

// EncodeDependencyMap writes m to w in the given format. Keys come out sorted.
func EncodeDependencyMap(w io.Writer, m DependencyMap, format string) error {
	if err := ValidateOutputFormat(format); err != nil {
		return err
	}

	if m == nil {
		m = DependencyMap{}
	}

	if format == OutputJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(m); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2) //nolint:mnd // two-space YAML
	if err := encoder.Encode(m); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}
