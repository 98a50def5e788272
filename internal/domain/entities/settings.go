package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Settings is the optional readmegen configuration file. Every field is a
// default that command-line flags can override.
type Settings struct {
	Output           string            `yaml:"output"`
	WorkDir          string            `yaml:"work_dir"`
	TopFiles         int               `yaml:"top_files"`
	RespectGitignore bool              `yaml:"respect_gitignore"`
	Template         string            `yaml:"template"`
	Generator        GeneratorSettings `yaml:"generator"`
	Credentials      map[string]string `yaml:"credentials"` // provider -> API key, inline or ${ENV_VAR}
}

// GeneratorSettings holds the defaults for the text generator.
type GeneratorSettings struct {
	Enabled     bool          `yaml:"enabled"`
	Provider    string        `yaml:"provider"`
	Model       string        `yaml:"model"`
	BaseURL     string        `yaml:"base_url"`
	MaxTokens   int           `yaml:"max_tokens"`
	Temperature *float64      `yaml:"temperature"`
	Timeout     time.Duration `yaml:"timeout"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewSettings reads and parses the settings file at path.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	for provider, raw := range settings.Credentials {
		settings.Credentials[provider] = expandEnv(raw)
	}

	if validateErr := settings.validate(); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// FindConfigFile searches for a settings file in the standard locations and
// returns the first one found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".readmegen.yaml",
		".readmegen.yml",
		"readmegen.yaml",
		"readmegen.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// Credential returns the configured API key for provider, or "".
func (s *Settings) Credential(provider string) string {
	if s == nil {
		return ""
	}
	return s.Credentials[provider]
}

// Apply copies the non-zero settings onto cfg. Values already changed from
// their defaults by the caller are not touched.
func (s *Settings) Apply(cfg *RunConfiguration, changed func(flag string) bool) {
	if s == nil {
		return
	}
	if s.Output != "" && !changed("out") {
		cfg.OutputPath = s.Output
	}
	if s.WorkDir != "" && !changed("work-dir") {
		cfg.WorkDir = s.WorkDir
	}
	if s.TopFiles > 0 && !changed("top-files") {
		cfg.TopFiles = s.TopFiles
	}
	if s.RespectGitignore && !changed("respect-gitignore") {
		cfg.RespectGitignore = true
	}
	if s.Template != "" && !changed("template") {
		cfg.TemplatePath = s.Template
	}

	gen := s.Generator
	if gen.Enabled && !changed("use-llm") {
		cfg.UseGenerator = true
	}
	if gen.Provider != "" && !changed("provider") {
		cfg.Provider = gen.Provider
	}
	if gen.Model != "" && !changed("model") {
		cfg.Model = gen.Model
	}
	if gen.BaseURL != "" && !changed("base-url") {
		cfg.BaseURL = gen.BaseURL
	}
	if gen.MaxTokens > 0 && !changed("max-tokens") {
		cfg.MaxOutputTokens = gen.MaxTokens
	}
	if gen.Temperature != nil && !changed("temperature") {
		cfg.Temperature = *gen.Temperature
	}
	if gen.Timeout > 0 && !changed("timeout") {
		cfg.Timeout = gen.Timeout
	}
}

func (s *Settings) validate() error {
	if s.TopFiles < 0 {
		return fmt.Errorf("top_files must not be negative, got %d", s.TopFiles)
	}
	if s.Generator.MaxTokens < 0 {
		return fmt.Errorf("generator.max_tokens must not be negative, got %d", s.Generator.MaxTokens)
	}
	if s.Generator.Timeout < 0 {
		return fmt.Errorf("generator.timeout must not be negative, got %s", s.Generator.Timeout)
	}
	return nil
}

// expandEnv replaces ${ENV_VAR} references with their values.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return strings.TrimSpace(envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	}))
}
