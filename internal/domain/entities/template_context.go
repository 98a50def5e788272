package entities

const unspecifiedLicense = "Unspecified"

// TemplateContext is the data handed to the README template.
type TemplateContext struct {
	Name         string
	Description  string
	Languages    []LanguageCount
	TopFiles     []string
	HasTests     bool
	Dependencies []ManifestGroup
	License      string
	RepoURL      string // empty for local repositories
	Usage        string
}

// NewTemplateContext derives the template context from metadata. The
// description is taken verbatim from the metadata.
func NewTemplateContext(metadata RepoMetadata, cfg RunConfiguration) TemplateContext {
	license := metadata.License
	if license == "" {
		license = unspecifiedLicense
	}

	return TemplateContext{
		Name:         metadata.Name,
		Description:  metadata.Description,
		Languages:    metadata.Languages,
		TopFiles:     metadata.TopFiles,
		HasTests:     metadata.HasTests,
		Dependencies: metadata.Dependencies,
		License:      license,
		RepoURL:      cfg.RepoURL(),
		Usage:        UsageHint(metadata),
	}
}

// UsageHint picks a getting-started snippet from the detected languages and manifests.
func UsageHint(metadata RepoMetadata) string {
	switch {
	case metadata.HasLanguage("Python"):
		if metadata.HasManifest("python", "requirements.txt") {
			return "pip install -r requirements.txt\npython -m <package>"
		}
		return "python -m <package> or python main.py"
	case metadata.HasLanguage("JavaScript") || metadata.HasLanguage("TypeScript"):
		return "npm install\nnpm start"
	case metadata.HasLanguage("Go") && metadata.HasManifest("go", "go.mod"):
		if metadata.GoModule != "" {
			return "go build ./...\ngo install " + metadata.GoModule + "@latest"
		}
		return "go build ./..."
	default:
		return "See project files for usage instructions."
	}
}
