//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/readmegen/internal/domain/entities"
	"github.com/rios0rios0/readmegen/internal/domain/repositories"
)

// StubAnalyzerRepository returns fixed metadata and records the roots it was given.
type StubAnalyzerRepository struct {
	Metadata     entities.RepoMetadata
	AnalyzeErr   error
	AnalyzedRoot []string
	LastOpts     repositories.AnalyzerOptions
}

var _ repositories.AnalyzerRepository = (*StubAnalyzerRepository)(nil)

func (a *StubAnalyzerRepository) Analyze(
	root string,
	opts repositories.AnalyzerOptions,
) (entities.RepoMetadata, error) {
	a.AnalyzedRoot = append(a.AnalyzedRoot, root)
	a.LastOpts = opts
	if a.AnalyzeErr != nil {
		return entities.RepoMetadata{}, a.AnalyzeErr
	}
	return a.Metadata, nil
}
