package repositories

import "github.com/rios0rios0/readmegen/internal/domain/entities"

// TemplateRepository renders a template context into a README document.
type TemplateRepository interface {
	// Render uses the template at templatePath, or the built-in one when it is empty.
	Render(templatePath string, data entities.TemplateContext) (string, error)
}
