package commands

import (
	"fmt"
	"os"

	"github.com/rios0rios0/readmegen/internal/domain/entities"
)

const (
	providerNoop       = "noop"
	providerOpenAI     = "openai"
	providerDeepSeek   = "deepseek"
	providerOpenRouter = "openrouter"
	providerGemini     = "gemini"
)

// providerName normalizes the configured provider; "" selects the noop generator.
func providerName(cfg entities.RunConfiguration) string {
	if cfg.Provider == "" {
		return providerNoop
	}
	return cfg.Provider
}

// resolveAPIKey returns the API key for provider, preferring the settings
// file over the environment.
func resolveAPIKey(provider string, settings *entities.Settings) string {
	if key := settings.Credential(provider); key != "" {
		return key
	}
	return resolveAPIKeyFromEnv(provider)
}

func resolveAPIKeyFromEnv(provider string) string {
	switch provider {
	case providerOpenAI:
		return os.Getenv("OPENAI_API_KEY")
	case providerDeepSeek:
		return os.Getenv("DEEPSEEK_API_KEY")
	case providerOpenRouter:
		return os.Getenv("OPENROUTER_API_KEY")
	case providerGemini:
		if k := os.Getenv("GEMINI_API_KEY"); k != "" {
			return k
		}
		return os.Getenv("GOOGLE_API_KEY")
	default:
		return ""
	}
}

func apiKeyEnvHint(provider string) string {
	switch provider {
	case providerOpenAI:
		return "OPENAI_API_KEY"
	case providerDeepSeek:
		return "DEEPSEEK_API_KEY"
	case providerOpenRouter:
		return "OPENROUTER_API_KEY"
	case providerGemini:
		return "GEMINI_API_KEY or GOOGLE_API_KEY"
	default:
		return "<unknown provider>"
	}
}

// generatorConfig resolves credentials for the selected provider. It fails
// with entities.ErrMissingCredential before any generator call is made.
func generatorConfig(
	cfg entities.RunConfiguration,
	settings *entities.Settings,
) (string, entities.GeneratorConfig, error) {
	provider := providerName(cfg)
	genCfg := entities.GeneratorConfig{
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
	}
	if provider == providerNoop {
		return provider, genCfg, nil
	}

	genCfg.APIKey = resolveAPIKey(provider, settings)
	if genCfg.APIKey == "" {
		return "", genCfg, fmt.Errorf(
			"%w: no API key for %s; set %s or credentials.%s in the config file",
			entities.ErrMissingCredential, provider, apiKeyEnvHint(provider), provider,
		)
	}
	return provider, genCfg, nil
}
