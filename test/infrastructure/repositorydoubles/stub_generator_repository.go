//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/readmegen/internal/domain/entities"
	"github.com/rios0rios0/readmegen/internal/domain/repositories"
)

// SpyGeneratorRepository implements repositories.GeneratorRepository as a configurable spy.
type SpyGeneratorRepository struct {
	// --- identity ---
	GeneratorName string

	// --- Generate ---
	Content       string
	GenerateErr   error
	GenerateCalls []GenerateCall
}

// GenerateCall records a single invocation of Generate.
type GenerateCall struct {
	Prompt string
	Opts   entities.GenerateOptions
}

var _ repositories.GeneratorRepository = (*SpyGeneratorRepository)(nil)

func (g *SpyGeneratorRepository) Name() string {
	if g.GeneratorName == "" {
		return "spy"
	}
	return g.GeneratorName
}

func (g *SpyGeneratorRepository) Generate(
	_ context.Context,
	prompt string,
	opts entities.GenerateOptions,
) (string, error) {
	g.GenerateCalls = append(g.GenerateCalls, GenerateCall{Prompt: prompt, Opts: opts})
	if g.GenerateErr != nil {
		return "", g.GenerateErr
	}
	return g.Content, nil
}
