package repositories

import (
	"fmt"
	"sort"

	"github.com/rios0rios0/readmegen/internal/domain/entities"
	domainRepos "github.com/rios0rios0/readmegen/internal/domain/repositories"
)

// GeneratorFactory builds a GeneratorRepository from resolved credentials and options.
type GeneratorFactory func(cfg entities.GeneratorConfig) (domainRepos.GeneratorRepository, error)

// GeneratorRegistry manages all registered text generator implementations.
type GeneratorRegistry struct {
	generators map[string]GeneratorFactory
}

// NewGeneratorRegistry creates an empty generator registry.
func NewGeneratorRegistry() *GeneratorRegistry {
	return &GeneratorRegistry{
		generators: make(map[string]GeneratorFactory),
	}
}

// Register adds a generator factory under the given name (e.g. "deepseek").
func (r *GeneratorRegistry) Register(name string, factory GeneratorFactory) {
	r.generators[name] = factory
}

// Get returns a configured generator for the given name.
func (r *GeneratorRegistry) Get(
	name string,
	cfg entities.GeneratorConfig,
) (domainRepos.GeneratorRepository, error) {
	factory, ok := r.generators[name]
	if !ok {
		return nil, fmt.Errorf("unknown generator provider: %q", name)
	}
	return factory(cfg)
}

// Names returns the registered generator names in lexical order.
func (r *GeneratorRegistry) Names() []string {
	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
