package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/readmegen/internal/domain/entities"
	"github.com/rios0rios0/readmegen/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/readmegen/internal/infrastructure/repositories"
)

// Generate is the interface for the generate command.
type Generate interface {
	Execute(ctx context.Context, cfg entities.RunConfiguration, settings *entities.Settings) (*GenerateResult, error)
}

// GenerateResult describes the document written by a generate run.
type GenerateResult struct {
	OutputPath string
	Content    string
	Metadata   entities.RepoMetadata
}

// GenerateCommand runs the whole pipeline:
// fetch -> analyze -> (generate or template) -> write.
type GenerateCommand struct {
	fetcher           repositories.FetcherRepository
	analyzer          repositories.AnalyzerRepository
	builder           *ReadmeBuilder
	generatorRegistry *infraRepos.GeneratorRegistry
}

// NewGenerateCommand creates a new GenerateCommand.
func NewGenerateCommand(
	fetcher repositories.FetcherRepository,
	analyzer repositories.AnalyzerRepository,
	builder *ReadmeBuilder,
	generatorRegistry *infraRepos.GeneratorRegistry,
) *GenerateCommand {
	return &GenerateCommand{
		fetcher:           fetcher,
		analyzer:          analyzer,
		builder:           builder,
		generatorRegistry: generatorRegistry,
	}
}

// Execute produces the README for cfg.RepoAddress at cfg.OutputPath.
func (it *GenerateCommand) Execute(
	ctx context.Context,
	cfg entities.RunConfiguration,
	settings *entities.Settings,
) (*GenerateResult, error) {
	// credentials are resolved before the repository is fetched
	var generator repositories.GeneratorRepository
	if cfg.UseGenerator {
		provider, genCfg, err := generatorConfig(cfg, settings)
		if err != nil {
			return nil, err
		}
		generator, err = it.generatorRegistry.Get(provider, genCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create generator: %w", err)
		}
		logger.Infof("Using generator: %s", generator.Name())
	}

	metadata, err := inspect(ctx, it.fetcher, it.analyzer, cfg)
	if err != nil {
		return nil, err
	}

	content, err := it.builder.Render(ctx, metadata, cfg, generator)
	if err != nil {
		return nil, err
	}

	logger.Infof("Wrote README to %s", cfg.OutputPath)
	return &GenerateResult{
		OutputPath: cfg.OutputPath,
		Content:    content,
		Metadata:   metadata,
	}, nil
}
