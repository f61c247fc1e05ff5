package quizgen

import (
	"elearn-api/internal/adapter/llm"
	"elearn-api/internal/config"
	"elearn-api/internal/domain"

	"go.uber.org/zap"
)

// NewFromConfig builds the generator for the configured provider. The
// credentials are read from aiCfg on every call.
func NewFromConfig(aiCfg *config.AIConfig, logger *zap.Logger) *QuizGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}

	if aiCfg.Provider == config.ProviderOllama {
		logger.Info("Using Ollama chat model",
			zap.String("server_url", aiCfg.OllamaServerURL),
			zap.String("model", aiCfg.OllamaModel))
		return NewQuizGenerator(
			llm.NewOllamaChatModel(aiCfg.Timeout),
			func() domain.ModelCredentials {
				return domain.ModelCredentials{BaseURL: aiCfg.OllamaServerURL}
			},
			aiCfg.OllamaModel,
			logger,
		)
	}

	logger.Info("Using Mistral chat model",
		zap.String("base_url", aiCfg.BaseURL),
		zap.String("model", aiCfg.DefaultModel))
	if aiCfg.APIKey == "" {
		logger.Warn("MISTRAL_API_KEY is not set; quiz generation will fail with a configuration error")
	}
	return NewQuizGenerator(
		llm.NewOpenAIChatModel(aiCfg.Timeout),
		func() domain.ModelCredentials {
			return domain.ModelCredentials{APIKey: aiCfg.APIKey, BaseURL: aiCfg.BaseURL}
		},
		aiCfg.DefaultModel,
		logger,
	)
}
