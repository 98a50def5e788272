package entities

import "strings"

// LanguageCount is the number of files classified under a single language.
type LanguageCount struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// ManifestGroup lists the root-level manifest files found for one ecosystem.
type ManifestGroup struct {
	Ecosystem string   `yaml:"ecosystem"`
	Files     []string `yaml:"files"`
}

// RepoMetadata is the immutable snapshot produced by a single analysis run.
// Empty Description and License mean "not found".
type RepoMetadata struct {
	Name         string          `yaml:"name"`
	Description  string          `yaml:"description,omitempty"`
	Languages    []LanguageCount `yaml:"languages"`
	TopFiles     []string        `yaml:"top_files"`
	HasTests     bool            `yaml:"has_tests"`
	Dependencies []ManifestGroup `yaml:"dependencies"`
	License      string          `yaml:"license,omitempty"`
	ReadmeExists bool            `yaml:"readme_exists"`
	GoModule     string          `yaml:"go_module,omitempty"` // module path declared in go.mod
}

// LanguageNames returns the language labels in descending count order.
func (m RepoMetadata) LanguageNames() []string {
	names := make([]string, 0, len(m.Languages))
	for _, lang := range m.Languages {
		names = append(names, lang.Name)
	}
	return names
}

// HasLanguage reports whether at least one file was classified as name.
func (m RepoMetadata) HasLanguage(name string) bool {
	for _, lang := range m.Languages {
		if lang.Name == name {
			return true
		}
	}
	return false
}

// Manifests returns the manifest files detected for the given ecosystem.
func (m RepoMetadata) Manifests(ecosystem string) []string {
	for _, group := range m.Dependencies {
		if group.Ecosystem == ecosystem {
			return group.Files
		}
	}
	return nil
}

// HasManifest reports whether file was detected under ecosystem.
func (m RepoMetadata) HasManifest(ecosystem, file string) bool {
	for _, f := range m.Manifests(ecosystem) {
		if f == file {
			return true
		}
	}
	return false
}

// FormatDependencies renders the dependency groups as "eco: a, b; eco2: c".
// An empty string is returned when nothing was detected.
func (m RepoMetadata) FormatDependencies() string {
	parts := make([]string, 0, len(m.Dependencies))
	for _, group := range m.Dependencies {
		parts = append(parts, group.Ecosystem+": "+strings.Join(group.Files, ", "))
	}
	return strings.Join(parts, "; ")
}
