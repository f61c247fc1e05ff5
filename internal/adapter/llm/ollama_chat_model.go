package llm

import (
	"context"
	"net/http"
	"strings"
	"time"

	"elearn-api/internal/domain"
	"elearn-api/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/schema"
	"go.uber.org/zap"
)

// OllamaChatModel serves the same port from a local Ollama server.
// Credentials.BaseURL is the Ollama server URL; no API key is needed.
type OllamaChatModel struct {
	httpClient *http.Client
}

func NewOllamaChatModel(timeout time.Duration) *OllamaChatModel {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &OllamaChatModel{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     10 * time.Second,
			},
		},
	}
}

// Complete implements domain.ChatModel.
func (m *OllamaChatModel) Complete(ctx context.Context, creds domain.ModelCredentials, req domain.ChatRequest) (string, error) {
	l := logger.Get()

	serverURL := strings.TrimRight(strings.TrimSpace(creds.BaseURL), "/")
	if serverURL == "" {
		return "", domain.NewAIConfigurationError("Ollama server URL is not configured")
	}

	client, err := ollama.New(
		ollama.WithServerURL(serverURL),
		ollama.WithModel(req.Model),
		ollama.WithHTTPClient(m.httpClient),
	)
	if err != nil {
		l.Error("Failed to create Ollama client", zap.Error(err))
		return "", domain.NewAIConfigurationError("Ollama client could not be created")
	}

	messages := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, req.SystemPrompt),
		llms.TextParts(schema.ChatMessageTypeHuman, req.UserPrompt),
	}
	resp, err := client.GenerateContent(ctx, messages,
		llms.WithTemperature(req.Temperature),
		llms.WithMaxTokens(req.MaxTokens),
	)
	if err != nil {
		l.Error("Ollama request failed", zap.String("model", req.Model), zap.Error(err))
		return "", domain.NewAIUpstreamError(0, err)
	}

	if resp == nil || len(resp.Choices) == 0 {
		return "", nil
	}
	return stripThinkBlock(resp.Choices[0].Content), nil
}

// stripThinkBlock removes the <think>...</think> preamble some local models emit.
func stripThinkBlock(content string) string {
	start := strings.Index(content, "<think>")
	if start == -1 {
		return content
	}
	end := strings.Index(content, "</think>")
	if end == -1 || end < start {
		return content
	}
	return strings.TrimSpace(content[:start] + content[end+len("</think>"):])
}
