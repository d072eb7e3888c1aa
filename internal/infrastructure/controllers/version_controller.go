package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/releasekit/internal/domain/commands"
	"github.com/rios0rios0/releasekit/internal/domain/entities"
)

// VersionController handles the "version" subcommand.
type VersionController struct {
	command  commands.Version
	defaults *entities.Settings
}

// NewVersionController creates a new VersionController.
func NewVersionController(command commands.Version, defaults *entities.Settings) *VersionController {
	return &VersionController{command: command, defaults: defaults}
}

// GetBind returns the Cobra command metadata for the version controller.
func (it *VersionController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "version [dir]",
		Short: "Print the current package version of a project",
		Long: `Print the version a project currently declares. Sources are tried in order:
package.json, pyproject.toml, a VERSION file, and finally the highest
semver tag of the Git repository.`,
	}
}

// AddFlags adds the version-specific flags to the given Cobra command.
func (it *VersionController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("source", "", "Only use this source (javascript, python, plain, git)")
}

// Execute prints the version found in the given directory (default ".").
func (it *VersionController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	source, _ := cmd.Flags().GetString("source")
	if source == "" {
		settings, err := loadSettings(cmd, it.defaults)
		if err != nil {
			return err
		}
		source = settings.VersionSource
	}

	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	result, err := it.command.Execute(ctx, commands.VersionOptions{Dir: dir, Source: source})
	if err != nil {
		return err
	}

	logger.Debugf("[version] Source: %s", result.Source)
	fmt.Fprintln(cmd.OutOrStdout(), result.Version)
	return nil
}
