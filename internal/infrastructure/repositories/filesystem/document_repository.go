package filesystem

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/rios0rios0/readmegen/internal/domain/repositories"
)

const (
	documentFileMode = 0o644
	documentDirMode  = 0o755
)

// DocumentRepository writes rendered documents to fs.
type DocumentRepository struct {
	fs afero.Fs
}

// NewDocumentRepository creates a document repository backed by fs.
func NewDocumentRepository(fs afero.Fs) repositories.DocumentRepository {
	return &DocumentRepository{fs: fs}
}

// Save writes content to path, creating parent directories and replacing
// any existing file.
func (it *DocumentRepository) Save(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := it.fs.MkdirAll(dir, documentDirMode); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return afero.WriteFile(it.fs, path, []byte(content), documentFileMode)
}
