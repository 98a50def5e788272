//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/readmegen/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// RepoMetadataBuilder helps create test metadata with a fluent interface.
type RepoMetadataBuilder struct {
	*testkit.BaseBuilder
	name         string
	description  string
	languages    []entities.LanguageCount
	topFiles     []string
	hasTests     bool
	dependencies []entities.ManifestGroup
	license      string
	readmeExists bool
	goModule     string
}

// NewRepoMetadataBuilder creates a new metadata builder with sensible defaults:
// a small Python project with a requirements file and an MIT license.
func NewRepoMetadataBuilder() *RepoMetadataBuilder {
	b := &RepoMetadataBuilder{BaseBuilder: testkit.NewBaseBuilder()}
	b.defaults()
	return b
}

func (b *RepoMetadataBuilder) defaults() {
	b.name = "sample"
	b.description = "A sample project."
	b.languages = []entities.LanguageCount{{Name: "Python", Count: 2}}
	b.topFiles = []string{"main.py", "util.py", "requirements.txt"}
	b.hasTests = false
	b.dependencies = []entities.ManifestGroup{{Ecosystem: "python", Files: []string{"requirements.txt"}}}
	b.license = "MIT"
	b.readmeExists = true
	b.goModule = ""
}

// WithName sets the repository name.
func (b *RepoMetadataBuilder) WithName(name string) *RepoMetadataBuilder {
	b.name = name
	return b
}

// WithDescription sets the description ("" means absent).
func (b *RepoMetadataBuilder) WithDescription(description string) *RepoMetadataBuilder {
	b.description = description
	return b
}

// WithLanguages replaces the language counts.
func (b *RepoMetadataBuilder) WithLanguages(languages ...entities.LanguageCount) *RepoMetadataBuilder {
	b.languages = languages
	return b
}

// WithTopFiles replaces the top files.
func (b *RepoMetadataBuilder) WithTopFiles(files ...string) *RepoMetadataBuilder {
	b.topFiles = files
	return b
}

// WithTests sets the test-presence flag.
func (b *RepoMetadataBuilder) WithTests(hasTests bool) *RepoMetadataBuilder {
	b.hasTests = hasTests
	return b
}

// WithDependencies replaces the manifest groups.
func (b *RepoMetadataBuilder) WithDependencies(groups ...entities.ManifestGroup) *RepoMetadataBuilder {
	b.dependencies = groups
	return b
}

// WithLicense sets the license ("" means absent).
func (b *RepoMetadataBuilder) WithLicense(license string) *RepoMetadataBuilder {
	b.license = license
	return b
}

// WithGoModule sets the go.mod module path.
func (b *RepoMetadataBuilder) WithGoModule(module string) *RepoMetadataBuilder {
	b.goModule = module
	return b
}

// Build creates the metadata (satisfies testkit.Builder interface).
func (b *RepoMetadataBuilder) Build() interface{} {
	return b.BuildRepoMetadata()
}

// BuildRepoMetadata creates the metadata with a concrete return type.
func (b *RepoMetadataBuilder) BuildRepoMetadata() entities.RepoMetadata {
	return entities.RepoMetadata{
		Name:         b.name,
		Description:  b.description,
		Languages:    b.languages,
		TopFiles:     b.topFiles,
		HasTests:     b.hasTests,
		Dependencies: b.dependencies,
		License:      b.license,
		ReadmeExists: b.readmeExists,
		GoModule:     b.goModule,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *RepoMetadataBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.defaults()
	return b
}

// Clone creates a deep copy of the RepoMetadataBuilder.
func (b *RepoMetadataBuilder) Clone() testkit.Builder {
	return &RepoMetadataBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:         b.name,
		description:  b.description,
		languages:    append([]entities.LanguageCount(nil), b.languages...),
		topFiles:     append([]string(nil), b.topFiles...),
		hasTests:     b.hasTests,
		dependencies: append([]entities.ManifestGroup(nil), b.dependencies...),
		license:      b.license,
		readmeExists: b.readmeExists,
		goModule:     b.goModule,
	}
}
