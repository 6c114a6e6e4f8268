package llm

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"

	"quiz-crew/internal/config"
	"quiz-crew/internal/domain"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIBackend implements domain.ModelBackend with chat completions. It also
// serves OpenAI-compatible APIs through BaseURL.
type OpenAIBackend struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewOpenAIBackend creates a chat completion backend.
func NewOpenAIBackend(cfg config.LLMConfig) (*OpenAIBackend, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("openai model name cannot be empty")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	temperature := float32(cfg.Temperature)
	if temperature == 0 {
		// Temperature is omitempty in go-openai; a zero would fall back to the API default.
		temperature = math.SmallestNonzeroFloat32
	}

	return &OpenAIBackend{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       cfg.Model,
		temperature: temperature,
	}, nil
}

func (b *OpenAIBackend) Generate(ctx context.Context, prompt domain.Prompt) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if prompt.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: prompt.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt.User,
	})

	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       b.model,
		Messages:    messages,
		Temperature: b.temperature,
	})
	if err != nil {
		return "", mapOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", domain.NewBackendError(errors.New("no choices in chat completion response"), true)
	}
	return resp.Choices[0].Message.Content, nil
}

func (b *OpenAIBackend) ModelID() string {
	return b.model
}

// mapOpenAIError classifies API failures: rate limits and server errors are
// transient, other HTTP statuses are permanent, transport errors are transient.
func mapOpenAIError(err error) error {
	status := 0
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	switch {
	case status == 0:
		return domain.NewBackendError(err, true)
	case status == http.StatusTooManyRequests, status >= http.StatusInternalServerError:
		return domain.NewBackendError(err, true).WithContext("status", status)
	default:
		return domain.NewBackendError(err, false).WithContext("status", status)
	}
}

var _ domain.ModelBackend = (*OpenAIBackend)(nil)
