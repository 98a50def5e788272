package controllers

import (
	"errors"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/readmegen/internal/domain/entities"
)

// AddGlobalFlags adds the flags shared by every command to cmd.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")
	cmd.PersistentFlags().String("work-dir", entities.DefaultWorkDir,
		"Working directory the repository is cloned or copied into (wiped on every run)")
	cmd.PersistentFlags().Int("top-files", entities.DefaultTopFiles,
		"Number of largest files to report")
	cmd.PersistentFlags().Bool("respect-gitignore", false,
		"Skip files matched by the repository .gitignore")
}

// addGeneratorFlags adds the flags selecting and tuning the text generator.
func addGeneratorFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("use-llm", false, "Use the configured text generator to write the README")
	cmd.Flags().String("provider", "",
		"Generator provider (noop, openai, deepseek, openrouter, gemini)")
	cmd.Flags().String("model", "", "Model to use (provider default when empty)")
	cmd.Flags().String("base-url", "", "Override the generator endpoint")
	cmd.Flags().Int("max-tokens", entities.DefaultMaxOutputTokens, "Maximum output length of the generator")
	cmd.Flags().Float64("temperature", entities.DefaultTemperature, "Generator sampling temperature")
	cmd.Flags().Duration("timeout", entities.DefaultGeneratorLimit, "Timeout of the generator call")
}

// loadSettings reads the config file named by --config, or the first one
// found in the default locations. A missing default file is not an error.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			logger.Debugf("No config file: %v", err)
			return nil, nil //nolint:nilnil // running without a config file is the default
		}
		configPath = found
	}

	if _, statErr := os.Stat(configPath); errors.Is(statErr, os.ErrNotExist) {
		return nil, fmt.Errorf("config file %s: %w", configPath, entities.ErrNotFound)
	}

	logger.Infof("Using config file: %s", configPath)
	return entities.NewSettings(configPath)
}

// buildRunConfiguration assembles the run configuration from flags and the
// config file. Explicit flags win over the file.
func buildRunConfiguration(cmd *cobra.Command, args []string) (entities.RunConfiguration, *entities.Settings, error) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	repoAddress := "."
	if len(args) > 0 {
		repoAddress = args[0]
	}
	cfg := entities.NewRunConfiguration(repoAddress)

	settings, err := loadSettings(cmd)
	if err != nil {
		return cfg, nil, err
	}

	flags := cmd.Flags()
	if v, getErr := flags.GetString("out"); getErr == nil {
		cfg.OutputPath = v
	}
	if v, getErr := flags.GetString("work-dir"); getErr == nil {
		cfg.WorkDir = v
	}
	if v, getErr := flags.GetInt("top-files"); getErr == nil {
		cfg.TopFiles = v
	}
	if v, getErr := flags.GetBool("respect-gitignore"); getErr == nil {
		cfg.RespectGitignore = v
	}
	if v, getErr := flags.GetString("template"); getErr == nil {
		cfg.TemplatePath = v
	}
	if v, getErr := flags.GetBool("use-llm"); getErr == nil {
		cfg.UseGenerator = v
	}
	if v, getErr := flags.GetString("provider"); getErr == nil {
		cfg.Provider = v
	}
	if v, getErr := flags.GetString("model"); getErr == nil {
		cfg.Model = v
	}
	if v, getErr := flags.GetString("base-url"); getErr == nil {
		cfg.BaseURL = v
	}
	if v, getErr := flags.GetInt("max-tokens"); getErr == nil {
		cfg.MaxOutputTokens = v
	}
	if v, getErr := flags.GetFloat64("temperature"); getErr == nil {
		cfg.Temperature = v
	}
	if v, getErr := flags.GetDuration("timeout"); getErr == nil {
		cfg.Timeout = v
	}

	settings.Apply(&cfg, flags.Changed)
	if cfg.TopFiles <= 0 {
		return cfg, settings, fmt.Errorf("--top-files must be positive, got %d", cfg.TopFiles)
	}
	return cfg, settings, nil
}
