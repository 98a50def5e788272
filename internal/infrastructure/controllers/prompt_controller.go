package controllers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/readmegen/internal/domain/commands"
	"github.com/rios0rios0/readmegen/internal/domain/entities"
)

// PromptController handles the "prompt" subcommand.
type PromptController struct {
	command commands.Prompt
}

// NewPromptController creates a new PromptController.
func NewPromptController(command commands.Prompt) *PromptController {
	return &PromptController{command: command}
}

// GetBind returns the Cobra command metadata for the prompt controller.
func (it *PromptController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "prompt [repo]",
		Short: "Print the generator prompt for a repository",
		Long: `Fetch and analyze the repository, then print the prompt that would be sent
to the text generator. Nothing is sent anywhere.

Modes:
  full   structured README instructions (default, used by --use-llm)
  short  2-4 sentence project summary`,
	}
}

// AddFlags adds the prompt-specific flags to the given Cobra command.
func (it *PromptController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("mode", string(entities.ModeFullReadme), "Prompt mode (full, short)")
}

// Execute prints the composed prompt.
func (it *PromptController) Execute(cmd *cobra.Command, args []string) error {
	rawMode, _ := cmd.Flags().GetString("mode")
	mode, err := entities.ParsePromptMode(rawMode)
	if err != nil {
		return err
	}

	cfg, _, err := buildRunConfiguration(cmd, args)
	if err != nil {
		return err
	}

	prompt, err := it.command.Execute(context.Background(), cfg, mode)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), prompt)
	return err
}
