package controllers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/readmegen/internal/domain/commands"
	"github.com/rios0rios0/readmegen/internal/domain/entities"
)

// AnalyzeController handles the "analyze" subcommand.
type AnalyzeController struct {
	command commands.Analyze
}

// NewAnalyzeController creates a new AnalyzeController.
func NewAnalyzeController(command commands.Analyze) *AnalyzeController {
	return &AnalyzeController{command: command}
}

// GetBind returns the Cobra command metadata for the analyze controller.
func (it *AnalyzeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "analyze [repo]",
		Short: "Print the metadata extracted from a repository",
		Long: `Fetch the repository and print the extracted metadata as YAML
without rendering a README.`,
	}
}

// AddFlags has nothing to add: analyze only uses the global flags.
func (it *AnalyzeController) AddFlags(_ *cobra.Command) {}

// Execute prints the repository metadata.
func (it *AnalyzeController) Execute(cmd *cobra.Command, args []string) error {
	cfg, _, err := buildRunConfiguration(cmd, args)
	if err != nil {
		return err
	}

	metadata, err := it.command.Execute(context.Background(), cfg)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
