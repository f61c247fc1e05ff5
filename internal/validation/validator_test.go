package validation

import (
	"strings"
	"testing"

	"elearn-api/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateID(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateID("id", "01ARZ3NDEKTSV4RRFFQ69G5FAV"))

	errs := v.ValidateID("id", "")
	require.Len(t, errs, 1)
	assert.Equal(t, "id is required", errs[0].Message)

	errs = v.ValidateID("id", "not-a-ulid")
	require.Len(t, errs, 1)
	assert.Equal(t, "id", errs[0].Field)
}

func TestValidateCreateQuizRequest(t *testing.T) {
	v := NewValidator()

	ok := dto.CreateQuizRequest{
		Name:      "Quiz",
		CourseID:  "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		Questions: []dto.CreateQuestionRequest{{Title: "A?", CorrectAnswer: true}},
	}
	assert.Empty(t, v.ValidateCreateQuizRequest(ok))

	bad := dto.CreateQuizRequest{
		Name:      strings.Repeat("n", 256),
		CourseID:  "course-1",
		Questions: []dto.CreateQuestionRequest{{Title: strings.Repeat("t", 1001)}},
	}
	errs := v.ValidateCreateQuizRequest(bad)
	require.Len(t, errs, 3)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "courseId", errs[1].Field)
	assert.Equal(t, "questions.title", errs[2].Field)
}

func TestValidateSubmitAttemptRequest(t *testing.T) {
	v := NewValidator()

	errs := v.ValidateSubmitAttemptRequest(dto.SubmitAttemptRequest{QuizID: "nope"})
	require.Len(t, errs, 2)
	assert.Equal(t, "quizzId", errs[0].Field)
	assert.Equal(t, "answers", errs[1].Field)
}

func TestValidateCredentials(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateCredentials("ada@example.com", "secret"))
	assert.Empty(t, v.ValidateCredentials("", ""))
	assert.Len(t, v.ValidateCredentials("ada.example.com", "secret"), 1)
	assert.Len(t, v.ValidateCredentials("ada@example.com", strings.Repeat("p", 73)), 1)
}
