package commands

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/readmegen/internal/domain/entities"
	"github.com/rios0rios0/readmegen/internal/domain/repositories"
)

// ReadmeBuilder turns metadata into a README document and persists it.
//
// When generation is enabled the generator gets exactly one attempt. Any
// failure degrades to the template path, so a generator error never reaches
// the caller of Render.
type ReadmeBuilder struct {
	templates repositories.TemplateRepository
	documents repositories.DocumentRepository
}

// NewReadmeBuilder creates a ReadmeBuilder.
func NewReadmeBuilder(
	templates repositories.TemplateRepository,
	documents repositories.DocumentRepository,
) *ReadmeBuilder {
	return &ReadmeBuilder{
		templates: templates,
		documents: documents,
	}
}

// Render builds the document for metadata and writes it to cfg.OutputPath.
// The generator is only consulted when cfg.UseGenerator is set.
func (it *ReadmeBuilder) Render(
	ctx context.Context,
	metadata entities.RepoMetadata,
	cfg entities.RunConfiguration,
	generator repositories.GeneratorRepository,
) (string, error) {
	content, generated := it.generate(ctx, metadata, cfg, generator)
	if !generated {
		var err error
		content, err = it.templates.Render(cfg.TemplatePath, entities.NewTemplateContext(metadata, cfg))
		if err != nil {
			return "", fmt.Errorf("failed to render template: %w", err)
		}
	}

	if err := it.documents.Save(cfg.OutputPath, content); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", cfg.OutputPath, err)
	}
	return content, nil
}

// generate makes the single generation attempt. The boolean is false when
// the template path must be used instead.
func (it *ReadmeBuilder) generate(
	ctx context.Context,
	metadata entities.RepoMetadata,
	cfg entities.RunConfiguration,
	generator repositories.GeneratorRepository,
) (string, bool) {
	if !cfg.UseGenerator {
		return "", false
	}
	if generator == nil {
		logger.Warn("Generation enabled but no generator supplied, using template")
		return "", false
	}

	prompt := entities.ComposePrompt(metadata, cfg, entities.ModeFullReadme)
	logger.Debugf("[%s] Sending prompt (%d bytes)", generator.Name(), len(prompt))

	content, err := generator.Generate(ctx, prompt, cfg.GenerateOptions())
	if err != nil {
		logger.Warnf("[%s] Generation failed, falling back to template: %v", generator.Name(), err)
		return "", false
	}
	if strings.TrimSpace(content) == "" {
		logger.Warnf("[%s] Generator returned an empty document, falling back to template", generator.Name())
		return "", false
	}

	logger.Infof("[%s] Generated README (%d bytes)", generator.Name(), len(content))
	return content, true
}
