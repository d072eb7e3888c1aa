package repositories

import (
	"fmt"

	"github.com/rios0rios0/releasekit/internal/domain/entities"
	domainRepos "github.com/rios0rios0/releasekit/internal/domain/repositories"
)

// VersionRegistry manages the version sources in priority order.
type VersionRegistry struct {
	sources map[string]domainRepos.VersionRepository
	order   []string
}

// NewVersionRegistry creates an empty version registry.
func NewVersionRegistry() *VersionRegistry {
	return &VersionRegistry{
		sources: make(map[string]domainRepos.VersionRepository),
	}
}

// Register adds a source under its name. Sources registered first win.
// Registering a name twice replaces the source but keeps its position.
func (r *VersionRegistry) Register(source domainRepos.VersionRepository) {
	if _, exists := r.sources[source.Name()]; !exists {
		r.order = append(r.order, source.Name())
	}
	r.sources[source.Name()] = source
}

// Get returns the source with the given name.
func (r *VersionRegistry) Get(name string) (domainRepos.VersionRepository, error) {
	source, ok := r.sources[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", entities.ErrUnknownVersionSource, name, r.order)
	}
	return source, nil
}

// All returns every registered source in priority order.
func (r *VersionRegistry) All() []domainRepos.VersionRepository {
	result := make([]domainRepos.VersionRepository, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.sources[name])
	}
	return result
}

// Names returns the registered source names in priority order.
func (r *VersionRegistry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
