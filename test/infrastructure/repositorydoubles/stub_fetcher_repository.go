//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/readmegen/internal/domain/entities"
	"github.com/rios0rios0/readmegen/internal/domain/repositories"
)

// StubFetcherRepository returns a fixed root without touching any filesystem.
type StubFetcherRepository struct {
	Root       string
	FetchErr   error
	FetchCalls []entities.RunConfiguration
}

var _ repositories.FetcherRepository = (*StubFetcherRepository)(nil)

func (f *StubFetcherRepository) Fetch(_ context.Context, cfg entities.RunConfiguration) (string, error) {
	f.FetchCalls = append(f.FetchCalls, cfg)
	if f.FetchErr != nil {
		return "", f.FetchErr
	}
	return f.Root, nil
}
