package repositories

import (
	"context"

	"github.com/rios0rios0/readmegen/internal/domain/entities"
)

// FetcherRepository materializes the repository named by the configuration
// into its working directory and returns the repository root.
type FetcherRepository interface {
	Fetch(ctx context.Context, cfg entities.RunConfiguration) (string, error)
}
