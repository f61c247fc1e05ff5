package llm

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strings"
	"time"

	"elearn-api/internal/domain"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultTimeout bounds a single chat completion call.
const DefaultTimeout = 30 * time.Second

// OpenAIChatModel calls any OpenAI-compatible chat completion endpoint
// (Mistral by default). Exactly one HTTP request is made per call, no retry.
type OpenAIChatModel struct {
	httpClient *http.Client
}

// NewOpenAIChatModel creates a chat model whose calls are bounded by timeout.
func NewOpenAIChatModel(timeout time.Duration) *OpenAIChatModel {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &OpenAIChatModel{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Complete implements domain.ChatModel.
func (m *OpenAIChatModel) Complete(ctx context.Context, creds domain.ModelCredentials, req domain.ChatRequest) (string, error) {
	if strings.TrimSpace(creds.APIKey) == "" {
		return "", domain.NewAIConfigurationError("Mistral API key is not configured")
	}
	baseURL := strings.TrimRight(strings.TrimSpace(creds.BaseURL), "/")
	if baseURL == "" {
		return "", domain.NewAIConfigurationError("Mistral API URL is not configured")
	}

	config := openai.DefaultConfig(creds.APIKey)
	config.BaseURL = baseURL
	config.HTTPClient = m.httpClient
	client := openai.NewClientWithConfig(config)

	// go-openai omits a zero Temperature; an explicit 0 goes out as the
	// smallest positive float32.
	temperature := float32(req.Temperature)
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.UserPrompt},
		},
		Temperature: temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", mapOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func mapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return domain.NewAIUpstreamError(apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return domain.NewAIUpstreamError(reqErr.HTTPStatusCode, err)
	}
	return domain.NewAIUpstreamError(0, err)
}
