package repositories

import (
	"context"

	"github.com/rios0rios0/readmegen/internal/domain/entities"
)

// GeneratorRepository abstracts a text-generation backend. Implementations
// wrap transport and payload errors in entities.ErrGeneratorFailure or
// entities.ErrUnsupportedResponseFormat.
type GeneratorRepository interface {
	// Name returns the generator identifier (e.g. "noop", "deepseek").
	Name() string

	// Generate sends prompt to the backend and returns the produced text.
	Generate(ctx context.Context, prompt string, opts entities.GenerateOptions) (string, error)
}
