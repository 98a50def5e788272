package controllers

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/readmegen/internal/domain/commands"
	"github.com/rios0rios0/readmegen/internal/domain/entities"
)

const previewLength = 1000 // characters

// GenerateController handles the root command: generate a README for a repository.
type GenerateController struct {
	command commands.Generate
}

// NewGenerateController creates a new GenerateController.
func NewGenerateController(command commands.Generate) *GenerateController {
	return &GenerateController{command: command}
}

// GetBind returns the Cobra command metadata for the generate controller.
func (it *GenerateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "readmegen [repo]",
		Short: "Generate a README from repository metadata",
		Long: `Inspect a local directory or a remote Git repository, extract its metadata
(languages, largest files, dependency manifests, license, tests) and write a README.

By default the README is rendered from a template. With --use-llm the metadata is
turned into a prompt for a text generator; if the generator fails the template is
used instead.

Usage modes:
  readmegen .                                  Template README for the current directory
  readmegen https://github.com/org/repo.git    Clone and document a remote repository
  readmegen . --use-llm --provider deepseek    Let DeepSeek write the README`,
	}
}

// AddFlags adds the generate-specific flags to the given Cobra command.
func (it *GenerateController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("out", "o", entities.DefaultOutputPath, "Output README path")
	cmd.Flags().String("template", "", "Custom text/template file (default: built-in template)")
	addGeneratorFlags(cmd)
}

// Execute generates the README and prints a short preview.
func (it *GenerateController) Execute(cmd *cobra.Command, args []string) error {
	cfg, settings, err := buildRunConfiguration(cmd, args)
	if err != nil {
		return err
	}

	result, err := it.command.Execute(context.Background(), cfg, settings)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("10")).
		Render(fmt.Sprintf("Wrote README to %s", result.OutputPath)))
	_, _ = fmt.Fprintln(out, lipgloss.NewStyle().
		Faint(true).
		Render("---\nPreview:"))
	_, _ = fmt.Fprintln(out, Preview(result.Content))
	return nil
}

// Preview returns the first characters of a rendered document.
func Preview(content string) string {
	runes := []rune(content)
	if len(runes) > previewLength {
		return string(runes[:previewLength])
	}
	return content
}
