package entities

import "time"

const (
	// DefaultMaxOutputTokens bounds the generator response for a full README.
	DefaultMaxOutputTokens = 1500
	// DefaultTemperature keeps generated documents close to the supplied facts.
	DefaultTemperature = 0.2
)

// GenerateOptions holds per-call options passed to a text generator.
type GenerateOptions struct {
	MaxOutputTokens int
	Temperature     *float64 // nil lets the backend use its own default
}

// GeneratorConfig is what a generator factory needs to build a client.
type GeneratorConfig struct {
	APIKey  string
	Model   string // "" selects the provider default
	BaseURL string // "" selects the provider default
	Timeout time.Duration
}
