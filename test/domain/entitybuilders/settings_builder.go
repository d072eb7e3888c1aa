//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/releasekit/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	lockfiles      []string
	compileCommand string
	output         string
	versionSource  string
	shellDir       string
	shellEnv       []string
}

// NewSettingsBuilder creates a new settings builder with sensible defaults.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		lockfiles:   []string{"requirements.txt"},
		output:      entities.OutputYAML,
	}
}

// WithLockfiles sets the lockfile paths.
func (b *SettingsBuilder) WithLockfiles(paths ...string) *SettingsBuilder {
	b.lockfiles = paths
	return b
}

// WithCompileCommand sets the compile command.
func (b *SettingsBuilder) WithCompileCommand(command string) *SettingsBuilder {
	b.compileCommand = command
	return b
}

// WithOutput sets the output format.
func (b *SettingsBuilder) WithOutput(output string) *SettingsBuilder {
	b.output = output
	return b
}

// WithVersionSource sets the forced version source.
func (b *SettingsBuilder) WithVersionSource(source string) *SettingsBuilder {
	b.versionSource = source
	return b
}

// WithShellDir sets the shell working directory.
func (b *SettingsBuilder) WithShellDir(dir string) *SettingsBuilder {
	b.shellDir = dir
	return b
}

// WithShellEnv sets the extra shell environment.
func (b *SettingsBuilder) WithShellEnv(env ...string) *SettingsBuilder {
	b.shellEnv = env
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	return &entities.Settings{
		Lockfiles:      append([]string(nil), b.lockfiles...),
		CompileCommand: b.compileCommand,
		Output:         b.output,
		VersionSource:  b.versionSource,
		Shell: entities.ShellSettings{
			Dir: b.shellDir,
			Env: append([]string(nil), b.shellEnv...),
		},
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.lockfiles = []string{"requirements.txt"}
	b.compileCommand = ""
	b.output = entities.OutputYAML
	b.versionSource = ""
	b.shellDir = ""
	b.shellEnv = nil
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder:    b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		lockfiles:      append([]string(nil), b.lockfiles...),
		compileCommand: b.compileCommand,
		output:         b.output,
		versionSource:  b.versionSource,
		shellDir:       b.shellDir,
		shellEnv:       append([]string(nil), b.shellEnv...),
	}
}
