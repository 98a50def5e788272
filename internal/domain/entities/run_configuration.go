package entities

import (
	"strings"
	"time"
)

const (
	DefaultOutputPath     = "GENERATED_README.md"
	DefaultWorkDir        = ".cache_repo"
	DefaultTopFiles       = 10
	DefaultGeneratorLimit = 60 * time.Second
)

// RunConfiguration is built once from the command line and the settings file
// and is read-only afterwards.
type RunConfiguration struct {
	RepoAddress      string
	OutputPath       string
	WorkDir          string
	UseGenerator     bool
	Provider         string // "" selects the noop generator
	Model            string
	BaseURL          string
	TopFiles         int
	RespectGitignore bool
	TemplatePath     string // "" uses the embedded template
	MaxOutputTokens  int
	Temperature      float64
	Timeout          time.Duration
}

// NewRunConfiguration returns a configuration for repoAddress with every
// optional field set to its default.
func NewRunConfiguration(repoAddress string) RunConfiguration {
	return RunConfiguration{
		RepoAddress:     repoAddress,
		OutputPath:      DefaultOutputPath,
		WorkDir:         DefaultWorkDir,
		TopFiles:        DefaultTopFiles,
		MaxOutputTokens: DefaultMaxOutputTokens,
		Temperature:     DefaultTemperature,
		Timeout:         DefaultGeneratorLimit,
	}
}

// IsRemote reports whether the repository address is a network locator.
func (c RunConfiguration) IsRemote() bool {
	return IsRemoteAddress(c.RepoAddress)
}

// RepoURL returns the repository address when it points to a remote, or "".
func (c RunConfiguration) RepoURL() string {
	if c.IsRemote() {
		return c.RepoAddress
	}
	return ""
}

// GenerateOptions returns the options for the single generation attempt of a render.
func (c RunConfiguration) GenerateOptions() GenerateOptions {
	maxTokens := c.MaxOutputTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxOutputTokens
	}
	temperature := c.Temperature
	return GenerateOptions{
		MaxOutputTokens: maxTokens,
		Temperature:     &temperature,
	}
}

// IsRemoteAddress reports whether address is an http(s) or scp-style git URL.
func IsRemoteAddress(address string) bool {
	return strings.HasPrefix(address, "http://") ||
		strings.HasPrefix(address, "https://") ||
		strings.HasPrefix(address, "git@")
}
