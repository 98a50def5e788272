package commands

import (
	"context"

	"github.com/rios0rios0/readmegen/internal/domain/entities"
	"github.com/rios0rios0/readmegen/internal/domain/repositories"
)

// Analyze is the interface for the analyze command.
type Analyze interface {
	Execute(ctx context.Context, cfg entities.RunConfiguration) (entities.RepoMetadata, error)
}

// AnalyzeCommand fetches a repository and returns its metadata without
// rendering anything.
type AnalyzeCommand struct {
	fetcher  repositories.FetcherRepository
	analyzer repositories.AnalyzerRepository
}

// NewAnalyzeCommand creates a new AnalyzeCommand.
func NewAnalyzeCommand(
	fetcher repositories.FetcherRepository,
	analyzer repositories.AnalyzerRepository,
) *AnalyzeCommand {
	return &AnalyzeCommand{fetcher: fetcher, analyzer: analyzer}
}

// Execute returns the metadata of cfg.RepoAddress.
func (it *AnalyzeCommand) Execute(
	ctx context.Context,
	cfg entities.RunConfiguration,
) (entities.RepoMetadata, error) {
	return inspect(ctx, it.fetcher, it.analyzer, cfg)
}
