package templates

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/spf13/afero"

	"github.com/rios0rios0/readmegen/internal/domain/entities"
	"github.com/rios0rios0/readmegen/internal/domain/repositories"
)

const defaultTemplateName = "readme.md.tmpl"

//go:embed readme.md.tmpl
var defaultTemplate string

//nolint:gochecknoglobals // read-only helper table shared by every template
var funcs = template.FuncMap{
	"join":  strings.Join,
	"lower": strings.ToLower,
	"upper": strings.ToUpper,
}

// TemplateRepository renders README documents with text/template. User
// templates are read from fs; the built-in template is embedded.
type TemplateRepository struct {
	fs afero.Fs
}

// NewTemplateRepository creates a template repository reading user templates from fs.
func NewTemplateRepository(fs afero.Fs) repositories.TemplateRepository {
	return &TemplateRepository{fs: fs}
}

// Render executes the template at templatePath, or the built-in template
// when templatePath is empty.
func (it *TemplateRepository) Render(templatePath string, data entities.TemplateContext) (string, error) {
	name := defaultTemplateName
	text := defaultTemplate

	if templatePath != "" {
		raw, err := afero.ReadFile(it.fs, templatePath)
		if err != nil {
			return "", fmt.Errorf("failed to read template %s: %w", templatePath, err)
		}
		name = templatePath
		text = string(raw)
	}

	tpl, err := template.New(name).Funcs(funcs).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var out strings.Builder
	if execErr := tpl.Execute(&out, data); execErr != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, execErr)
	}
	return out.String(), nil
}
