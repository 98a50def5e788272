package repositories

import "github.com/rios0rios0/readmegen/internal/domain/entities"

// AnalyzerOptions tunes a single analysis run.
type AnalyzerOptions struct {
	TopFiles         int
	RespectGitignore bool
}

// AnalyzerRepository extracts RepoMetadata from a materialized repository root.
type AnalyzerRepository interface {
	// Analyze walks root once. It returns entities.ErrNotFound when root is
	// missing or not a directory; unreadable entries are skipped.
	Analyze(root string, opts AnalyzerOptions) (entities.RepoMetadata, error)
}
