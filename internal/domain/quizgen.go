package domain

import (
	"context"
)

// Generation defaults applied when a request leaves a parameter unset.
const (
	DefaultQuestionCount = 5
	DefaultAnswerCount   = 4
	DefaultTemperature   = 0.2
	DefaultQuizTitle     = "Quiz"

	// MinMaxTokens is the floor of the computed completion budget.
	MinMaxTokens = 700

	// Requested values above these bounds fall back to the defaults.
	MaxQuestionCount = 1000
	MaxAnswerCount   = 20
	MaxMaxTokens     = 128000
)

// QuizGenerationRequest carries the source material and tuning parameters of a
// single quiz generation.
type QuizGenerationRequest struct {
	SourceText    string
	Title         string
	Model         string
	Temperature   *float64
	QuestionCount int
	AnswerCount   int
	MaxTokens     int
}

// GeneratedQuiz wraps the decoded model JSON as returned by the provider.
// Data always holds at least "name" and a "questions" array.
type GeneratedQuiz struct {
	Data map[string]interface{} `json:"data"`
}

// Name returns the quiz name reported by the model, if it is a string.
func (q *GeneratedQuiz) Name() string {
	if q == nil || q.Data == nil {
		return ""
	}
	name, _ := q.Data["name"].(string)
	return name
}

// Questions returns the raw question entries produced by the model.
func (q *GeneratedQuiz) Questions() []interface{} {
	if q == nil || q.Data == nil {
		return nil
	}
	questions, _ := q.Data["questions"].([]interface{})
	return questions
}

// ChatRequest is a provider-neutral chat completion call.
type ChatRequest struct {
	Model        string
	Temperature  float64
	MaxTokens    int
	SystemPrompt string
	UserPrompt   string
}

// ModelCredentials are resolved from configuration at call time.
type ModelCredentials struct {
	APIKey  string
	BaseURL string
}

// ChatModel sends one system+user exchange to a chat completion provider and
// returns the assistant text.
type ChatModel interface {
	Complete(ctx context.Context, creds ModelCredentials, req ChatRequest) (string, error)
}

// QuizGenerationService turns source text into a validated quiz.
type QuizGenerationService interface {
	Generate(ctx context.Context, req QuizGenerationRequest) (*GeneratedQuiz, error)
}

// DocumentTextExtractor reads the plain text of a stored document file.
type DocumentTextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}
