// Package ai is the boundary adapter between domain operations and the
// external large-language-model provider. It owns prompt construction
// and response parsing; nothing else in the repo talks to a provider.
package ai

import (
	"context"
	"fmt"

	einoollama "github.com/cloudwego/eino-ext/components/model/ollama"
	einoopenai "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"

	"github.com/clariohq/clario-backend/config"
)

// NewChatModel builds the configured provider's chat model.
func NewChatModel(ctx context.Context, cfg *config.Config) (model.ToolCallingChatModel, error) {
	switch cfg.AIProvider {
	case "openai":
		m, err := einoopenai.NewChatModel(ctx, &einoopenai.ChatModelConfig{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.OpenAIModel,
		})
		if err != nil {
			return nil, fmt.Errorf("create openai chat model: %w", err)
		}
		return m, nil
	case "ollama":
		m, err := einoollama.NewChatModel(ctx, &einoollama.ChatModelConfig{
			BaseURL: cfg.OllamaBaseURL,
			Model:   cfg.OllamaModel,
		})
		if err != nil {
			return nil, fmt.Errorf("create ollama chat model: %w", err)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.AIProvider)
	}
}
