package noop

import (
	"context"
	"strings"

	"github.com/rios0rios0/readmegen/internal/domain/entities"
	"github.com/rios0rios0/readmegen/internal/domain/repositories"
)

const (
	generatorName = "noop"
	maxEchoLength = 1000 // characters
)

// GeneratorRepository echoes the prompt back as a single line. It never
// fails and needs no credentials, which makes it usable offline.
type GeneratorRepository struct{}

// NewGeneratorRepository creates a noop generator. The configuration is ignored.
func NewGeneratorRepository(_ entities.GeneratorConfig) (repositories.GeneratorRepository, error) {
	return &GeneratorRepository{}, nil
}

func (g *GeneratorRepository) Name() string { return generatorName }

// Generate joins the prompt lines with spaces and truncates the result.
func (g *GeneratorRepository) Generate(
	_ context.Context,
	prompt string,
	_ entities.GenerateOptions,
) (string, error) {
	echo := []rune(strings.Join(splitLines(prompt), " "))
	if len(echo) > maxEchoLength {
		echo = echo[:maxEchoLength]
	}
	return string(echo), nil
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
