package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Settings is the top-level configuration for releasekit.
type Settings struct {
	Lockfiles      []string      `yaml:"lockfiles"`       // Pinned-requirements files read by "map"
	CompileCommand string        `yaml:"compile_command"` // Shell command whose stdout is a lockfile
	Output         string        `yaml:"output"`          // "yaml" or "json"
	VersionSource  string        `yaml:"version_source"`  // Forces one version source when set
	Shell          ShellSettings `yaml:"shell"`
}

// ShellSettings holds defaults for every spawned shell command.
type ShellSettings struct {
	Dir string   `yaml:"dir"`
	Env []string `yaml:"env"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewDefaultSettings returns the settings used when no config file exists.
func NewDefaultSettings() *Settings {
	return &Settings{
		Output: OutputYAML,
	}
}

// NewSettings reads and parses a configuration file, expanding environment
// variable placeholders and filling defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := NewDefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	if settings.Output == "" {
		settings.Output = OutputYAML
	}
	settings.CompileCommand = expandEnv(settings.CompileCommand)
	for i := range settings.Shell.Env {
		settings.Shell.Env[i] = expandEnv(settings.Shell.Env[i])
	}

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".releasekit.yaml",
		".releasekit.yml",
		"releasekit.yaml",
		"releasekit.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// Validate checks the settings for values the commands cannot work with.
func (it *Settings) Validate() error {
	if err := ValidateOutputFormat(it.Output); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	for i, pair := range it.Shell.Env {
		if !envPairPattern.MatchString(pair) {
			return fmt.Errorf("shell.env[%d] must be KEY=VALUE, got %q", i, pair)
		}
	}
	return nil
}

var envPairPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*=`)

// expandEnv replaces ${VAR} references with values from the environment.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
