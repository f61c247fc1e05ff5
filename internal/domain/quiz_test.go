package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreOutOfTwenty(t *testing.T) {
	tests := []struct {
		name    string
		correct int
		total   int
		want    int
	}{
		{"all correct", 5, 5, 20},
		{"none correct", 0, 5, 0},
		{"rounds half up", 1, 8, 3},
		{"two of three", 2, 3, 13},
		{"no questions", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreOutOfTwenty(tt.correct, tt.total))
		})
	}
}

func TestQuiz_AddQuestion_KeepsOrder(t *testing.T) {
	quiz := NewQuiz("  Go basics ", &Course{ID: "c1"})
	quiz.AddQuestion("Go has generics?", true)
	quiz.AddQuestion(" Go has classes? ", false)

	assert.Equal(t, "Go basics", quiz.Name)
	require.Len(t, quiz.Questions, 2)
	assert.Equal(t, 0, quiz.Questions[0].Position)
	assert.Equal(t, 1, quiz.Questions[1].Position)
	assert.Equal(t, "Go has classes?", quiz.Questions[1].Title)
	assert.False(t, quiz.Questions[1].CorrectAnswer)
}

func TestQuiz_Validate(t *testing.T) {
	valid := NewQuiz("Quiz", &Course{ID: "c1"})
	valid.AddQuestion("A?", true)
	assert.NoError(t, valid.Validate())

	empty := NewQuiz("", nil)
	err := empty.Validate()
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 3)
	assert.Equal(t, CodeMissingField, verrs[0].Code)
}

func TestNewAIExtractionError_TruncatesRaw(t *testing.T) {
	raw := strings.Repeat("é", 600)
	err := NewAIExtractionError(errors.New("unexpected end of JSON input"), raw)

	assert.Equal(t, CodeAIExtraction, err.Code)
	assert.True(t, strings.HasPrefix(err.Message, "Failed to parse quiz data from AI response: unexpected end of JSON input | Raw: "))
	preview := strings.TrimPrefix(err.Message, "Failed to parse quiz data from AI response: unexpected end of JSON input | Raw: ")
	assert.Equal(t, 500, len([]rune(preview)))
}

func TestNewAIUpstreamError(t *testing.T) {
	err := NewAIUpstreamError(429, errors.New("rate limited"))
	assert.True(t, HasCode(err, CodeAIUpstream))
	assert.Equal(t, 429, err.Context["upstream_status"])
	assert.Contains(t, err.Error(), "status 429")

	transport := NewAIUpstreamError(0, errors.New("dial tcp: refused"))
	assert.Equal(t, "AI request failed: dial tcp: refused", transport.Error())
}
