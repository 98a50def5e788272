//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/readmegen/internal/domain/commands"
	"github.com/rios0rios0/readmegen/internal/domain/entities"
)

// StubGenerateCommand is a stub implementation of commands.Generate.
type StubGenerateCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           *commands.GenerateResult
	LastConfig       entities.RunConfiguration
	LastSettings     *entities.Settings
}

var _ commands.Generate = (*StubGenerateCommand)(nil)

func (s *StubGenerateCommand) Execute(
	_ context.Context,
	cfg entities.RunConfiguration,
	settings *entities.Settings,
) (*commands.GenerateResult, error) {
	s.ExecuteCallCount++
	s.LastConfig = cfg
	s.LastSettings = settings
	return s.Result, s.ExecuteErr
}
