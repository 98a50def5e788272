package internal

import (
	"github.com/rios0rios0/readmegen/internal/domain/entities"
	"github.com/rios0rios0/readmegen/internal/infrastructure/controllers"
)

// AppInternal holds the root controller and the subcommand controllers.
type AppInternal struct {
	root        *controllers.GenerateController
	controllers []entities.Controller
}

// NewAppInternal creates the application context.
func NewAppInternal(
	root *controllers.GenerateController,
	subControllers *[]entities.Controller,
) *AppInternal {
	return &AppInternal{root: root, controllers: *subControllers}
}

// GetRootController returns the controller bound to the root command.
func (it *AppInternal) GetRootController() *controllers.GenerateController {
	return it.root
}

// GetControllers returns the subcommand controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
