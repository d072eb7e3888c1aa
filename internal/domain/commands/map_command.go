package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/releasekit/internal/domain/entities"
	"github.com/rios0rios0/releasekit/internal/domain/repositories"
)

// compiledLabel names the compile_command output in logs.
const compiledLabel = "<compile_command>"

// Map is the interface for the map command.
type Map interface {
	Execute(ctx context.Context, settings *entities.Settings, opts MapOptions) (entities.DependencyMap, error)
}

// MapOptions holds runtime options for a single map invocation.
type MapOptions struct {
	Lockfiles []string // Overrides settings.Lockfiles when non-empty
	Compile   bool     // Also parse the stdout of settings.CompileCommand
}

// MapCommand reads pinned-requirements listings, parses each one into a
// DependencyMap and merges them all.
type MapCommand struct {
	lockfileRepository repositories.LockfileRepository
	shellRepository    repositories.ShellRepository
}

// NewMapCommand creates a new MapCommand.
func NewMapCommand(
	lockfileRepository repositories.LockfileRepository,
	shellRepository repositories.ShellRepository,
) *MapCommand {
	return &MapCommand{
		lockfileRepository: lockfileRepository,
		shellRepository:    shellRepository,
	}
}

// Execute loads every source concurrently, then parses and merges them in
// the order they were given.
func (it *MapCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts MapOptions,
) (entities.DependencyMap, error) {
	paths := opts.Lockfiles
	if len(paths) == 0 {
		paths = settings.Lockfiles
	}

	if opts.Compile && settings.CompileCommand == "" {
		return nil, entities.ErrCompileCommandMissing
	}
	if len(paths) == 0 && !opts.Compile {
		return nil, entities.ErrNoLockfiles
	}

	labels := make([]string, 0, len(paths)+1)
	labels = append(labels, paths...)
	if opts.Compile {
		labels = append(labels, compiledLabel)
	}
	texts := make([]string, len(labels))

	// Read each distinct path once so "-" given twice consumes stdin a single time.
	sources := make([]string, 0, len(paths))
	sourceIndex := make(map[string]int, len(paths))
	for _, path := range paths {
		if _, seen := sourceIndex[path]; !seen {
			sourceIndex[path] = len(sources)
			sources = append(sources, path)
		}
	}
	sourceTexts := make([]string, len(sources))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, path := range sources {
		group.Go(func() error {
			text, err := it.lockfileRepository.Read(groupCtx, path)
			if err != nil {
				return err
			}
			sourceTexts[i] = text
			return nil
		})
	}
	if opts.Compile {
		group.Go(func() error {
			result, err := it.shellRepository.Run(groupCtx, settings.CompileCommand, entities.ShellOptions{
				Dir: settings.Shell.Dir,
				Env: settings.Shell.Env,
			})
			if err != nil {
				return fmt.Errorf("compile command failed: %w", err)
			}
			texts[len(texts)-1] = result.Stdout
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	for i, path := range paths {
		texts[i] = sourceTexts[sourceIndex[path]]
	}

	merged := entities.DependencyMap{}
	for i, text := range texts {
		parsed := entities.ParseRequirements(text)
		logger.Infof("[map] %s: %d consumers", labels[i], parsed.Len())
		merged = entities.MergeDependencyMaps(merged, parsed)
	}

	logger.Infof("[map] Merged %d sources into %d consumers", len(texts), merged.Len())
	return merged, nil
}
