package quizgen

import (
	"context"
	"strings"
	"time"

	"elearn-api/internal/domain"
	"elearn-api/internal/metrics"

	"go.uber.org/zap"
)

// CredentialsFunc resolves provider credentials at call time.
type CredentialsFunc func() domain.ModelCredentials

// QuizGenerator runs the prompt -> model -> extraction pipeline.
// It holds no per-request state and never caches model responses.
type QuizGenerator struct {
	model        domain.ChatModel
	credentials  CredentialsFunc
	defaultModel string
	logger       *zap.Logger
}

// NewQuizGenerator creates a new instance of QuizGenerator.
func NewQuizGenerator(model domain.ChatModel, credentials CredentialsFunc, defaultModel string, logger *zap.Logger) *QuizGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuizGenerator{
		model:        model,
		credentials:  credentials,
		defaultModel: defaultModel,
		logger:       logger,
	}
}

// Generate implements domain.QuizGenerationService.
func (g *QuizGenerator) Generate(ctx context.Context, req domain.QuizGenerationRequest) (*domain.GeneratedQuiz, error) {
	req.SourceText = strings.TrimSpace(req.SourceText)
	if req.SourceText == "" {
		metrics.ObserveGeneration("input_error")
		return nil, domain.NewInvalidInputError("Content is required")
	}

	req = ApplyDefaults(req, g.defaultModel)
	systemPrompt, userPrompt := BuildPrompts(req)

	var creds domain.ModelCredentials
	if g.credentials != nil {
		creds = g.credentials()
	}

	g.logger.Info("Requesting quiz generation",
		zap.String("model", req.Model),
		zap.Int("question_count", req.QuestionCount),
		zap.Int("max_tokens", req.MaxTokens),
		zap.Int("source_length", len(req.SourceText)))

	start := time.Now()
	raw, err := g.model.Complete(ctx, creds, domain.ChatRequest{
		Model:        req.Model,
		Temperature:  *req.Temperature,
		MaxTokens:    req.MaxTokens,
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
	})
	metrics.ObserveModelCall(req.Model, time.Since(start))
	if err != nil {
		metrics.ObserveGeneration(outcomeFor(err))
		g.logger.Error("Chat model call failed", zap.String("model", req.Model), zap.Error(err))
		return nil, err
	}

	quiz, err := ExtractQuiz(raw)
	if err != nil {
		metrics.ObserveGeneration("extraction_error")
		g.logger.Warn("Failed to extract quiz from model output", zap.Error(err))
		return nil, err
	}

	metrics.ObserveGeneration("success")
	g.logger.Info("Quiz generated", zap.String("name", quiz.Name()), zap.Int("questions", len(quiz.Questions())))
	return quiz, nil
}

func outcomeFor(err error) string {
	switch {
	case domain.HasCode(err, domain.CodeAIConfiguration):
		return "config_error"
	case domain.HasCode(err, domain.CodeAIUpstream):
		return "upstream_error"
	default:
		return "error"
	}
}
