package controllers

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/releasekit/internal/domain/commands"
	"github.com/rios0rios0/releasekit/internal/domain/entities"
)

// MapController handles the "map" subcommand.
type MapController struct {
	command  commands.Map
	defaults *entities.Settings
}

// NewMapController creates a new MapController.
func NewMapController(command commands.Map, defaults *entities.Settings) *MapController {
	return &MapController{command: command, defaults: defaults}
}

// GetBind returns the Cobra command metadata for the map controller.
func (it *MapController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "map [lockfile...]",
		Short: "Map pinned requirements to the packages that pull them in",
		Long: `Parse pinned-requirements listings (pip-compile / uv style "name==version"
lines followed by "# via consumer" comments) and print, for every consumer,
the dependencies it pulled in. Several lockfiles are merged into one map.

Use "-" to read a lockfile from standard input, or --compile to run the
configured compile_command and parse its output.`,
	}
}

// AddFlags adds the map-specific flags to the given Cobra command.
func (it *MapController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("compile", false, "Also parse the output of the configured compile_command")
	cmd.Flags().String("why", "", "Only print the consumers that pull in this dependency")
	cmd.Flags().StringP("output", "o", "", "Output format: yaml or json (default from config, else yaml)")
}

// Execute runs the map command and prints its result.
func (it *MapController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	compile, _ := cmd.Flags().GetBool("compile")
	why, _ := cmd.Flags().GetString("why")
	output, _ := cmd.Flags().GetString("output")

	settings, err := loadSettings(cmd, it.defaults)
	if err != nil {
		return err
	}
	if output == "" {
		output = settings.Output
	}
	if formatErr := entities.ValidateOutputFormat(output); formatErr != nil {
		return formatErr
	}

	dependencyMap, err := it.command.Execute(ctx, settings, commands.MapOptions{
		Lockfiles: args,
		Compile:   compile,
	})
	if err != nil {
		return fmt.Errorf("map failed: %w", err)
	}

	if why != "" {
		consumers := dependencyMap.ConsumersOf(strings.ToLower(strings.TrimSpace(why)))
		if len(consumers) == 0 {
			return fmt.Errorf("no consumer pulls in %q", why)
		}
		for _, consumer := range consumers {
			fmt.Fprintln(cmd.OutOrStdout(), consumer)
		}
		return nil
	}

	return entities.EncodeDependencyMap(cmd.OutOrStdout(), dependencyMap, output)
}
