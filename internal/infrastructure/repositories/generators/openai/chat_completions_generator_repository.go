package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/readmegen/internal/domain/entities"
	"github.com/rios0rios0/readmegen/internal/domain/repositories"
)

const (
	chatCompletionsPath = "/chat/completions"
	systemPrompt        = "You are a helpful assistant."
	maxErrorBody        = 2048
)

// preset holds the defaults of one OpenAI-compatible provider.
type preset struct {
	name    string
	baseURL string
	model   string
}

//nolint:gochecknoglobals // provider defaults
var (
	presetOpenAI     = preset{name: "openai", baseURL: "https://api.openai.com/v1", model: "gpt-4o-mini"}
	presetDeepSeek   = preset{name: "deepseek", baseURL: "https://api.deepseek.com", model: "deepseek-chat"}
	presetOpenRouter = preset{name: "openrouter", baseURL: "https://openrouter.ai/api/v1", model: "openrouter/auto"}
)

// ChatCompletionsGeneratorRepository calls an OpenAI-compatible
// Chat Completions endpoint and returns the first choice.
type ChatCompletionsGeneratorRepository struct {
	http     *http.Client
	name     string
	apiKey   string
	model    string
	endpoint string
}

// NewOpenAIGeneratorRepository creates a generator for the OpenAI API.
func NewOpenAIGeneratorRepository(cfg entities.GeneratorConfig) (repositories.GeneratorRepository, error) {
	return newChatCompletions(presetOpenAI, cfg), nil
}

// NewDeepSeekGeneratorRepository creates a generator for the DeepSeek API.
func NewDeepSeekGeneratorRepository(cfg entities.GeneratorConfig) (repositories.GeneratorRepository, error) {
	return newChatCompletions(presetDeepSeek, cfg), nil
}

// NewOpenRouterGeneratorRepository creates a generator for the OpenRouter API.
func NewOpenRouterGeneratorRepository(cfg entities.GeneratorConfig) (repositories.GeneratorRepository, error) {
	return newChatCompletions(presetOpenRouter, cfg), nil
}

func newChatCompletions(p preset, cfg entities.GeneratorConfig) *ChatCompletionsGeneratorRepository {
	model := cfg.Model
	if model == "" {
		model = p.model
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = p.baseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = entities.DefaultGeneratorLimit
	}

	return &ChatCompletionsGeneratorRepository{
		http:     &http.Client{Timeout: timeout},
		name:     p.name,
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: strings.TrimRight(baseURL, "/") + chatCompletionsPath,
	}
}

func (g *ChatCompletionsGeneratorRepository) Name() string { return g.name }

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature *float64      `json:"temperature,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message *struct {
			Content string `json:"content"`
		} `json:"message"`
		Text *string `json:"text"`
	} `json:"choices"`
}

// Generate sends prompt as the user message and returns the first choice.
func (g *ChatCompletionsGeneratorRepository) Generate(
	ctx context.Context,
	prompt string,
	opts entities.GenerateOptions,
) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   opts.MaxOutputTokens,
		Temperature: opts.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s: encoding request: %w", entities.ErrGeneratorFailure, g.name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", entities.ErrGeneratorFailure, g.name, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	logger.Debugf("[%s] POST %s (model %s)", g.name, g.endpoint, g.model)
	resp, err := g.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", entities.ErrGeneratorFailure, g.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", fmt.Errorf(
			"%w: %s API error: %s %s",
			entities.ErrGeneratorFailure, g.name, resp.Status, strings.TrimSpace(string(snippet)),
		)
	}

	var out chatResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&out); decodeErr != nil {
		return "", fmt.Errorf("%w: %s: %w", entities.ErrUnsupportedResponseFormat, g.name, decodeErr)
	}
	return firstChoice(g.name, out)
}

// firstChoice accepts both the chat shape (message.content) and the legacy
// completion shape (text).
func firstChoice(name string, out chatResponse) (string, error) {
	if len(out.Choices) > 0 {
		first := out.Choices[0]
		if first.Message != nil && first.Message.Content != "" {
			return strings.TrimSpace(first.Message.Content), nil
		}
		if first.Text != nil && *first.Text != "" {
			return strings.TrimSpace(*first.Text), nil
		}
	}
	return "", fmt.Errorf("%w: %s returned no choices with content", entities.ErrUnsupportedResponseFormat, name)
}
