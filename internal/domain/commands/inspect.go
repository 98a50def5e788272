package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/readmegen/internal/domain/entities"
	"github.com/rios0rios0/readmegen/internal/domain/repositories"
)

// inspect fetches the repository and extracts its metadata.
func inspect(
	ctx context.Context,
	fetcher repositories.FetcherRepository,
	analyzer repositories.AnalyzerRepository,
	cfg entities.RunConfiguration,
) (entities.RepoMetadata, error) {
	root, err := fetcher.Fetch(ctx, cfg)
	if err != nil {
		return entities.RepoMetadata{}, fmt.Errorf("failed to fetch %s: %w", cfg.RepoAddress, err)
	}
	logger.Infof("Repository materialized at %s", root)

	metadata, err := analyzer.Analyze(root, repositories.AnalyzerOptions{
		TopFiles:         cfg.TopFiles,
		RespectGitignore: cfg.RespectGitignore,
	})
	if err != nil {
		return entities.RepoMetadata{}, fmt.Errorf("failed to analyze %s: %w", root, err)
	}

	logger.Infof(
		"Analyzed %s: %d languages, %d top files, tests=%t, license=%q",
		metadata.Name, len(metadata.Languages), len(metadata.TopFiles), metadata.HasTests, metadata.License,
	)
	return metadata, nil
}
