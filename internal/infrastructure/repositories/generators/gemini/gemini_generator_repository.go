package gemini

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
	genai "google.golang.org/genai"

	"github.com/rios0rios0/readmegen/internal/domain/entities"
	"github.com/rios0rios0/readmegen/internal/domain/repositories"
)

const (
	generatorName = "gemini"
	defaultModel  = "gemini-2.0-flash"
)

// GeneratorRepository is a thin wrapper around the official genai client.
// The client is created per call, so nothing is shared between runs.
type GeneratorRepository struct {
	apiKey  string
	model   string
	baseURL string
	timeout time.Duration
}

// NewGeneratorRepository creates a Gemini generator.
func NewGeneratorRepository(cfg entities.GeneratorConfig) (repositories.GeneratorRepository, error) {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &GeneratorRepository{
		apiKey:  cfg.APIKey,
		model:   model,
		baseURL: cfg.BaseURL,
		timeout: cfg.Timeout,
	}, nil
}

func (g *GeneratorRepository) Name() string { return generatorName + ":" + g.model }

// Generate sends prompt as a single text part and concatenates the parts of
// the first candidate.
func (g *GeneratorRepository) Generate(
	ctx context.Context,
	prompt string,
	opts entities.GenerateOptions,
) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	//nolint:exhaustruct // Minimal ClientConfig initialization with required fields only
	clientCfg := &genai.ClientConfig{APIKey: g.apiKey, Backend: genai.BackendGeminiAPI}
	if g.baseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: g.baseURL}
	}
	cli, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", entities.ErrGeneratorFailure, generatorName, err)
	}

	//nolint:exhaustruct // only the bounded fields are set
	genCfg := &genai.GenerateContentConfig{}
	if opts.MaxOutputTokens > 0 && opts.MaxOutputTokens <= math.MaxInt32 {
		genCfg.MaxOutputTokens = int32(opts.MaxOutputTokens)
	}
	if opts.Temperature != nil {
		genCfg.Temperature = genai.Ptr(float32(*opts.Temperature))
	}

	logger.Debugf("[%s] GenerateContent (model %s, %d bytes)", generatorName, g.model, len(prompt))
	resp, err := cli.Models.GenerateContent(ctx, g.model, genai.Text(prompt), genCfg)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", entities.ErrGeneratorFailure, generatorName, err)
	}
	return candidateText(resp)
}

func candidateText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: %s returned no candidates", entities.ErrUnsupportedResponseFormat, generatorName)
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			text.WriteString(part.Text)
		}
	}
	if strings.TrimSpace(text.String()) == "" {
		return "", fmt.Errorf("%w: %s returned an empty candidate", entities.ErrUnsupportedResponseFormat, generatorName)
	}
	return strings.TrimSpace(text.String()), nil
}
