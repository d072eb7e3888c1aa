package controllers

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/releasekit/internal/domain/commands"
	"github.com/rios0rios0/releasekit/internal/domain/entities"
)

// ShuffleController handles the "shuffle" subcommand.
type ShuffleController struct {
	command commands.Shuffle
}

// NewShuffleController creates a new ShuffleController.
func NewShuffleController(command commands.Shuffle) *ShuffleController {
	return &ShuffleController{command: command}
}

// GetBind returns the Cobra command metadata for the shuffle controller.
func (it *ShuffleController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "shuffle [item...]",
		Short: "Print items in random order",
		Long: `Print the given items, or the non-blank lines of standard input when no
items are given, in random order. Pass --seed to get a reproducible order.`,
	}
}

// AddFlags adds the shuffle-specific flags to the given Cobra command.
func (it *ShuffleController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64("seed", 0, "Seed for a reproducible order")
}

// Execute prints the shuffled items, one per line.
func (it *ShuffleController) Execute(cmd *cobra.Command, args []string) error {
	seed, _ := cmd.Flags().GetUint64("seed")

	items := args
	if len(items) == 0 {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				items = append(items, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	shuffled := it.command.Execute(commands.ShuffleOptions{
		Items:   items,
		Seed:    seed,
		HasSeed: cmd.Flags().Changed("seed"),
	})
	for _, item := range shuffled {
		fmt.Fprintln(cmd.OutOrStdout(), item)
	}
	return nil
}
