//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/readmegen/internal/domain/commands"
	"github.com/rios0rios0/readmegen/internal/domain/entities"
)

// StubAnalyzeCommand is a stub implementation of commands.Analyze.
type StubAnalyzeCommand struct {
	Metadata   entities.RepoMetadata
	ExecuteErr error
	LastConfig entities.RunConfiguration
}

var _ commands.Analyze = (*StubAnalyzeCommand)(nil)

func (s *StubAnalyzeCommand) Execute(
	_ context.Context,
	cfg entities.RunConfiguration,
) (entities.RepoMetadata, error) {
	s.LastConfig = cfg
	return s.Metadata, s.ExecuteErr
}
