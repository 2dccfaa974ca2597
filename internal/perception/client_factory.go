package perception

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"messdigest/internal/config"
)

// NewClientFromConfig builds the LLMClient selected by cfg.LLM.Provider,
// wrapped in a TracingClient that logs every call. With cfg.Logging.Trace
// set, full prompts and responses are logged as well.
func NewClientFromConfig(ctx context.Context, cfg *config.Config, logger *zap.Logger) (LLMClient, error) {
	client, err := newProviderClient(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	var sink TraceSink
	if cfg.Logging.Trace {
		sink = NewLogTraceSink(logger)
	}
	return NewTracingClient(client, Provider(cfg.LLM.Provider), cfg.LLM.Model, logger, sink), nil
}

func newProviderClient(ctx context.Context, cfg *config.Config, logger *zap.Logger) (LLMClient, error) {
	switch Provider(cfg.LLM.Provider) {
	case ProviderOpenAI:
		return NewOpenAIClientWithConfig(OpenAIConfig{
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			Timeout:     cfg.GetLLMTimeout(),
			Temperature: DefaultOpenAIConfig("").Temperature,
			Logger:      logger,
		}), nil
	case ProviderGemini:
		return NewGeminiClient(ctx, GeminiConfig{
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			Timeout:     cfg.GetLLMTimeout(),
			Temperature: DefaultGeminiConfig("").Temperature,
			Logger:      logger,
		})
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %q", cfg.LLM.Provider)
	}
}
