//go:build unit

package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"github.com/rios0rios0/readmegen/internal/domain/entities"
	domainRepos "github.com/rios0rios0/readmegen/internal/domain/repositories"
	"github.com/rios0rios0/readmegen/internal/infrastructure/repositories"
	"github.com/rios0rios0/readmegen/test/infrastructure/repositorydoubles"
)

func TestGeneratorRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should build a registered generator with the given config", func(t *testing.T) {
		t.Parallel()

		// given
		var received entities.GeneratorConfig
		registry := repositories.NewGeneratorRegistry()
		registry.Register("spy", func(cfg entities.GeneratorConfig) (domainRepos.GeneratorRepository, error) {
			received = cfg
			return &repositorydoubles.SpyGeneratorRepository{}, nil
		})

		// when
		generator, err := registry.Get("spy", entities.GeneratorConfig{APIKey: "k", Model: "m"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "spy", generator.Name())
		assert.Equal(t, "k", received.APIKey)
		assert.Equal(t, "m", received.Model)
	})

	t.Run("should fail for an unknown provider", func(t *testing.T) {
		t.Parallel()

		// given
		registry := repositories.NewGeneratorRegistry()

		// when
		_, err := registry.Get("missing", entities.GeneratorConfig{})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing")
	})
}

func TestRegisterProviders(t *testing.T) {
	t.Parallel()

	t.Run("should register every generator provider", func(t *testing.T) {
		t.Parallel()

		// given
		container := dig.New()
		require.NoError(t, repositories.RegisterProviders(container))

		// when
		var names []string
		err := container.Invoke(func(registry *repositories.GeneratorRegistry) {
			names = registry.Names()
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"deepseek", "gemini", "noop", "openai", "openrouter"}, names)
	})

	t.Run("should resolve every repository", func(t *testing.T) {
		t.Parallel()

		// given
		container := dig.New()
		require.NoError(t, repositories.RegisterProviders(container))

		// when
		err := container.Invoke(func(
			_ domainRepos.FetcherRepository,
			_ domainRepos.AnalyzerRepository,
			_ domainRepos.TemplateRepository,
			_ domainRepos.DocumentRepository,
		) {
		})

		// then
		require.NoError(t, err)
	})
}
