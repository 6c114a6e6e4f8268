package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	"quiz-crew/internal/config"
	"quiz-crew/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	lcopenai "github.com/tmc/langchaingo/llms/openai"
)

// LangchainBackend adapts any langchaingo chat model to domain.ModelBackend.
type LangchainBackend struct {
	model       llms.Model
	modelID     string
	temperature float64
}

func NewLangchainBackend(model llms.Model, modelID string, temperature float64) *LangchainBackend {
	return &LangchainBackend{model: model, modelID: modelID, temperature: temperature}
}

// NewLangchainOpenAIBackend creates a backend on langchaingo's OpenAI client.
func NewLangchainOpenAIBackend(cfg config.LLMConfig) (*LangchainBackend, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("openai model name cannot be empty")
	}

	opts := []lcopenai.Option{
		lcopenai.WithToken(cfg.APIKey),
		lcopenai.WithModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, lcopenai.WithBaseURL(cfg.BaseURL))
	}
	model, err := lcopenai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create LangchainGo OpenAI client: %w", err)
	}
	return NewLangchainBackend(model, cfg.Model, cfg.Temperature), nil
}

// NewOllamaBackend creates a backend on a local Ollama server.
func NewOllamaBackend(cfg config.LLMConfig) (*LangchainBackend, error) {
	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("ollama server URL cannot be empty")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("ollama model name cannot be empty")
	}

	model, err := ollama.New(
		ollama.WithModel(cfg.Model),
		ollama.WithServerURL(cfg.ServerURL),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LangchainGo Ollama client: %w", err)
	}
	return NewLangchainBackend(model, cfg.Model, cfg.Temperature), nil
}

func (b *LangchainBackend) Generate(ctx context.Context, prompt domain.Prompt) (string, error) {
	messages := make([]llms.MessageContent, 0, 2)
	if prompt.System != "" {
		messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, prompt.System))
	}
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, prompt.User))

	resp, err := b.model.GenerateContent(ctx, messages, llms.WithTemperature(b.temperature))
	if err != nil {
		return "", mapLangchainError(err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", domain.NewBackendError(errors.New("no choices in model response"), true)
	}
	return resp.Choices[0].Content, nil
}

// langchaingo clients report HTTP failures only in the message text, e.g.
// "API returned unexpected status code: 401: bad key".
var statusCodePattern = regexp.MustCompile(`status code:? (\d{3})`)

// mapLangchainError classifies like mapOpenAIError: 429 and 5xx are transient,
// other statuses are permanent, errors without a status are transport failures.
func mapLangchainError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.NewBackendError(err, true)
	}

	m := statusCodePattern.FindStringSubmatch(err.Error())
	if m == nil {
		return domain.NewBackendError(err, true)
	}
	status, _ := strconv.Atoi(m[1])

	switch {
	case status == http.StatusTooManyRequests, status >= http.StatusInternalServerError:
		return domain.NewBackendError(err, true).WithContext("status", status)
	default:
		return domain.NewBackendError(err, false).WithContext("status", status)
	}
}

func (b *LangchainBackend) ModelID() string {
	return b.modelID
}

var _ domain.ModelBackend = (*LangchainBackend)(nil)
