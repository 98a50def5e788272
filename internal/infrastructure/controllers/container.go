package controllers

import (
	"github.com/rios0rios0/readmegen/internal/domain/entities"
	"go.uber.org/dig"
)

var (
	_ entities.Controller = (*GenerateController)(nil)
	_ entities.Controller = (*AnalyzeController)(nil)
	_ entities.Controller = (*PromptController)(nil)
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewGenerateController); err != nil {
		return err
	}
	if err := container.Provide(NewAnalyzeController); err != nil {
		return err
	}
	if err := container.Provide(NewPromptController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates the subcommand controllers into a slice for the AppInternal.
func NewControllers(
	analyzeController *AnalyzeController,
	promptController *PromptController,
) *[]entities.Controller {
	return &[]entities.Controller{
		analyzeController,
		promptController,
	}
}
