package repositories

import (
	"github.com/spf13/afero"
	"go.uber.org/dig"

	"github.com/rios0rios0/readmegen/internal/infrastructure/repositories/fetcher"
	"github.com/rios0rios0/readmegen/internal/infrastructure/repositories/filesystem"
	"github.com/rios0rios0/readmegen/internal/infrastructure/repositories/generators/gemini"
	"github.com/rios0rios0/readmegen/internal/infrastructure/repositories/generators/noop"
	"github.com/rios0rios0/readmegen/internal/infrastructure/repositories/generators/openai"
	"github.com/rios0rios0/readmegen/internal/infrastructure/repositories/templates"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Every repository shares the operating system filesystem
	if err := container.Provide(afero.NewOsFs); err != nil {
		return err
	}

	// Register generator registry with all generator factories
	if err := container.Provide(func() *GeneratorRegistry {
		reg := NewGeneratorRegistry()
		reg.Register("noop", noop.NewGeneratorRepository)
		reg.Register("openai", openai.NewOpenAIGeneratorRepository)
		reg.Register("deepseek", openai.NewDeepSeekGeneratorRepository)
		reg.Register("openrouter", openai.NewOpenRouterGeneratorRepository)
		reg.Register("gemini", gemini.NewGeneratorRepository)
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(fetcher.NewFetcherRepository); err != nil {
		return err
	}
	if err := container.Provide(filesystem.NewAnalyzerRepository); err != nil {
		return err
	}
	if err := container.Provide(filesystem.NewDocumentRepository); err != nil {
		return err
	}
	if err := container.Provide(templates.NewTemplateRepository); err != nil {
		return err
	}

	return nil
}
