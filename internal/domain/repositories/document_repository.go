package repositories

// DocumentRepository persists rendered documents.
type DocumentRepository interface {
	// Save writes content to path as UTF-8, replacing any existing file.
	Save(path, content string) error
}
