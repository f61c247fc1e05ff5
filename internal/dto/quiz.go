package dto

import (
	"encoding/json"
	"fmt"
	"strings"

	"elearn-api/internal/domain"
)

// BinaryAnswer decodes true/false, 1/0 and "1"/"0" into a bool.
type BinaryAnswer bool

func (b *BinaryAnswer) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		raw = strings.TrimSpace(s)
	}
	switch strings.ToLower(raw) {
	case "true", "1":
		*b = true
	case "false", "0":
		*b = false
	default:
		return fmt.Errorf("invalid binary answer %s", string(data))
	}
	return nil
}

// CreateQuestionRequest
// @Description A question of a quiz to create
type CreateQuestionRequest struct {
	Title         string       `json:"title"`
	CorrectAnswer BinaryAnswer `json:"correctAnswer" swaggertype:"integer"`
}

// CreateQuizRequest
// @Description Request body for persisting a generated quiz
type CreateQuizRequest struct {
	Name      string                  `json:"name"`
	CourseID  string                  `json:"courseId"`
	Questions []CreateQuestionRequest `json:"questions"`
}

// SubmitAttemptRequest maps question IDs to the chosen answer.
// @Description Request body for submitting a quiz attempt
type SubmitAttemptRequest struct {
	QuizID  string                  `json:"quizzId"`
	Answers map[string]BinaryAnswer `json:"answers" swaggertype:"object"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// NewCreateQuizRequest converts a generated quiz into a request saving it
// under courseID.
func NewCreateQuizRequest(courseID string, quiz *domain.GeneratedQuiz) (CreateQuizRequest, error) {
	raw, err := json.Marshal(quiz.Data)
	if err != nil {
		return CreateQuizRequest{}, fmt.Errorf("failed to encode generated quiz: %w", err)
	}
	var req CreateQuizRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return CreateQuizRequest{}, fmt.Errorf("generated quiz has an unexpected shape: %w", err)
	}
	req.CourseID = courseID
	return req, nil
}
