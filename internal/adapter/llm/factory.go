// Package llm provides the model backends a generation run talks to.
package llm

import (
	"fmt"

	"quiz-crew/internal/config"
	"quiz-crew/internal/domain"
)

// NewBackend creates the backend selected by cfg.Provider.
func NewBackend(cfg config.LLMConfig) (domain.ModelBackend, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI, "":
		b, err := NewOpenAIBackend(cfg)
		if err != nil {
			return nil, err
		}
		return b, nil
	case config.ProviderLangchainOpenAI:
		b, err := NewLangchainOpenAIBackend(cfg)
		if err != nil {
			return nil, err
		}
		return b, nil
	case config.ProviderOllama:
		b, err := NewOllamaBackend(cfg)
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}
