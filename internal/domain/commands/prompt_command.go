package commands

import (
	"context"

	"github.com/rios0rios0/readmegen/internal/domain/entities"
	"github.com/rios0rios0/readmegen/internal/domain/repositories"
)

// Prompt is the interface for the prompt command.
type Prompt interface {
	Execute(ctx context.Context, cfg entities.RunConfiguration, mode entities.PromptMode) (string, error)
}

// PromptCommand composes the generator prompt for a repository without
// sending it anywhere.
type PromptCommand struct {
	fetcher  repositories.FetcherRepository
	analyzer repositories.AnalyzerRepository
}

// NewPromptCommand creates a new PromptCommand.
func NewPromptCommand(
	fetcher repositories.FetcherRepository,
	analyzer repositories.AnalyzerRepository,
) *PromptCommand {
	return &PromptCommand{fetcher: fetcher, analyzer: analyzer}
}

// Execute returns the prompt for cfg.RepoAddress in the given mode.
func (it *PromptCommand) Execute(
	ctx context.Context,
	cfg entities.RunConfiguration,
	mode entities.PromptMode,
) (string, error) {
	metadata, err := inspect(ctx, it.fetcher, it.analyzer, cfg)
	if err != nil {
		return "", err
	}
	return entities.ComposePrompt(metadata, cfg, mode), nil
}
