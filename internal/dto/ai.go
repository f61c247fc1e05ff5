package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"elearn-api/internal/domain"
)

// FlexibleInt accepts a JSON number or a numeric string. Anything else,
// including values outside the int32 range, decodes to 0, which the
// generator treats as "use the default".
type FlexibleInt int

func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	*f = 0
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = truncateInt(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*f = truncateInt(v)
		}
	}
	return nil
}

func truncateInt(v float64) FlexibleInt {
	if math.IsNaN(v) || v > math.MaxInt32 || v < math.MinInt32 {
		return 0
	}
	return FlexibleInt(math.Trunc(v))
}

// FlexibleFloat accepts a JSON number or a numeric string.
type FlexibleFloat float64

func (f *FlexibleFloat) UnmarshalJSON(data []byte) error {
	*f = 0
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexibleFloat(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*f = FlexibleFloat(v)
		}
	}
	return nil
}

// AIQuizRequest is the body of both AI endpoints. Content is ignored by the
// document endpoint.
// @Description Quiz generation parameters
type AIQuizRequest struct {
	Content            string         `json:"content"`
	Title              string         `json:"title"`
	Model              string         `json:"model"`
	Temperature        *FlexibleFloat `json:"temperature" swaggertype:"number"`
	QuestionCount      FlexibleInt    `json:"question_count" swaggertype:"integer"`
	AnswersPerQuestion FlexibleInt    `json:"answers_per_question" swaggertype:"integer"`
	MaxTokens          FlexibleInt    `json:"max_tokens" swaggertype:"integer"`
}

// DecodeAIQuizRequest never fails: a malformed body yields the zero request
// and mistyped fields are skipped.
func DecodeAIQuizRequest(body []byte) AIQuizRequest {
	var req AIQuizRequest
	if len(bytes.TrimSpace(body)) == 0 {
		return req
	}
	_ = json.Unmarshal(body, &req)
	return req
}

// ToGenerationRequest converts the body into a pipeline request over sourceText.
func (r AIQuizRequest) ToGenerationRequest(sourceText string) domain.QuizGenerationRequest {
	req := domain.QuizGenerationRequest{
		SourceText:    sourceText,
		Title:         r.Title,
		Model:         r.Model,
		QuestionCount: int(r.QuestionCount),
		AnswerCount:   int(r.AnswersPerQuestion),
		MaxTokens:     int(r.MaxTokens),
	}
	if r.Temperature != nil {
		temperature := float64(*r.Temperature)
		req.Temperature = &temperature
	}
	return req
}

// GeneratedQuizResponse
// @Description The quiz JSON produced by the model, untouched
type GeneratedQuizResponse struct {
	Data map[string]interface{} `json:"data"`
}

// AIErrorResponse
// @Description Error of an AI endpoint with its underlying message
type AIErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}
