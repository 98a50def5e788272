//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/readmegen/internal/domain/commands"
	"github.com/rios0rios0/readmegen/internal/domain/entities"
)

// StubPromptCommand is a stub implementation of commands.Prompt.
type StubPromptCommand struct {
	Prompt     string
	ExecuteErr error
	LastConfig entities.RunConfiguration
	LastMode   entities.PromptMode
}

var _ commands.Prompt = (*StubPromptCommand)(nil)

func (s *StubPromptCommand) Execute(
	_ context.Context,
	cfg entities.RunConfiguration,
	mode entities.PromptMode,
) (string, error) {
	s.LastConfig = cfg
	s.LastMode = mode
	return s.Prompt, s.ExecuteErr
}
