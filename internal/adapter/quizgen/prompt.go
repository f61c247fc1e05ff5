package quizgen

import (
	"fmt"
	"strings"

	"elearn-api/internal/domain"
)

// tokensPerQuestion and tokenOverhead size the completion budget when the
// caller does not supply one.
const (
	tokensPerQuestion = 100
	tokenOverhead     = 200
)

// ApplyDefaults fills every unset generation parameter. It never fails.
func ApplyDefaults(req domain.QuizGenerationRequest, defaultModel string) domain.QuizGenerationRequest {
	if req.QuestionCount <= 0 || req.QuestionCount > domain.MaxQuestionCount {
		req.QuestionCount = domain.DefaultQuestionCount
	}
	if req.AnswerCount <= 1 || req.AnswerCount > domain.MaxAnswerCount {
		req.AnswerCount = domain.DefaultAnswerCount
	}
	if req.MaxTokens <= 0 || req.MaxTokens > domain.MaxMaxTokens {
		req.MaxTokens = DefaultMaxTokens(req.QuestionCount)
	}
	if strings.TrimSpace(req.Model) == "" {
		req.Model = defaultModel
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		req.Title = domain.DefaultQuizTitle
	}
	if req.Temperature == nil {
		temperature := domain.DefaultTemperature
		req.Temperature = &temperature
	}
	return req
}

// DefaultMaxTokens returns max(700, questionCount*100+200).
func DefaultMaxTokens(questionCount int) int {
	return max(domain.MinMaxTokens, questionCount*tokensPerQuestion+tokenOverhead)
}

const systemPromptTemplate = `You generate true/false quizzes as JSON.
Answer ONLY with valid JSON, without any prose and without markdown code fences.
Expected format:
{
  "name": "Quiz title",
  "questions": [
    {"title": "A statement or question?", "correctAnswer": 1},
    {"title": "Another statement or question?", "correctAnswer": 0}
  ]
}
Rules:
- Generate exactly %[1]d questions, no more and no less.
- Every question has two possible answers: true (1) or false (0).
- correctAnswer is 1 when the statement is true and 0 when it is false.
- Questions must be based only on the provided content.
- Answer ONLY with the JSON object.

Authoring quality (advanced level):
1. Difficulty: ask questions that need a careful reading of the content. Avoid obvious or superficial questions. Probe nuances, implications and subtle details.
2. Traps: write each false statement as the most plausible of %[2]d competing options. Use partially true information, swap similar concepts, invert cause and consequence, over-generalise a particular case, omit a key element, shift dates or figures slightly, or add a subtle negation.
3. Balance: spread the questions across the whole content and mix true and false answers.
4. Output: valid JSON only, no comments, no explanations, no backticks.`

const userPromptTemplate = `Quiz title: %s
Content:
%s`

// BuildPrompts renders the system and user instructions for a request that
// already went through ApplyDefaults.
func BuildPrompts(req domain.QuizGenerationRequest) (system string, user string) {
	system = fmt.Sprintf(systemPromptTemplate, req.QuestionCount, req.AnswerCount)
	user = fmt.Sprintf(userPromptTemplate, req.Title, req.SourceText)
	return system, user
}
