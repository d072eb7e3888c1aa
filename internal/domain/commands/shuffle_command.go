package commands

import (
	"math/rand/v2"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/releasekit/internal/domain/entities"
)

// Shuffle is the interface for the shuffle command.
type Shuffle interface {
	Execute(opts ShuffleOptions) []string
}

// ShuffleOptions holds runtime options for the shuffle command.
type ShuffleOptions struct {
	Items   []string
	Seed    uint64
	HasSeed bool // Seed is only honoured when set, so zero stays a valid seed
}

// ShuffleCommand returns items in random order.
type ShuffleCommand struct{}

// NewShuffleCommand creates a new ShuffleCommand.
func NewShuffleCommand() *ShuffleCommand {
	return &ShuffleCommand{}
}

// Execute returns a shuffled copy of opts.Items, reproducible when a seed is set.
func (it *ShuffleCommand) Execute(opts ShuffleOptions) []string {
	var rng *rand.Rand
	if opts.HasSeed {
		logger.Debugf("[shuffle] Using seed %d", opts.Seed)
		rng = entities.NewSeededRand(opts.Seed)
	}
	return entities.Shuffle(opts.Items, rng)
}
