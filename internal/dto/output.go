package dto

import (
	"time"

	"elearn-api/internal/domain"
)

// ListOutput wraps a collection with its size.
type ListOutput[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

// NewListOutput maps every element of src with fn. A nil src yields an empty list.
func NewListOutput[S any, T any](src []S, fn func(S) T) ListOutput[T] {
	items := make([]T, 0, len(src))
	for _, s := range src {
		items = append(items, fn(s))
	}
	return ListOutput[T]{Items: items, Count: len(items)}
}

// CourseOutput
// @Description Course summary
type CourseOutput struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserOutput
// @Description Public user information
type UserOutput struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	Firstname *string  `json:"firstname"`
	Lastname  *string  `json:"lastname"`
	Roles     []string `json:"roles"`
}

// QuizOutput
// @Description Quiz summary with its course
type QuizOutput struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Course CourseOutput `json:"course"`
}

// QuestionOutput
// @Description A true/false question
type QuestionOutput struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	CorrectAnswer bool   `json:"correctAnswer"`
}

// DetailedQuizOutput
// @Description Quiz with its questions
type DetailedQuizOutput struct {
	QuizOutput
	Questions ListOutput[QuestionOutput] `json:"questions"`
}

// QuizAttemptOutput
// @Description A graded quiz attempt; note is out of 20
type QuizAttemptOutput struct {
	ID    string     `json:"id"`
	Quizz QuizOutput `json:"quizz"`
	User  UserOutput `json:"user"`
	Note  int        `json:"note"`
	Date  time.Time  `json:"date"`
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func NewCourseOutput(c *domain.Course) CourseOutput {
	if c == nil {
		return CourseOutput{}
	}
	return CourseOutput{ID: c.ID, Name: c.Name}
}

func NewUserOutput(u *domain.User) UserOutput {
	if u == nil {
		return UserOutput{Roles: []string{}}
	}
	roles := u.Roles
	if roles == nil {
		roles = []string{}
	}
	return UserOutput{
		ID:        u.ID,
		Email:     u.Email,
		Firstname: optionalString(u.Firstname),
		Lastname:  optionalString(u.Lastname),
		Roles:     roles,
	}
}

func NewQuizOutput(q *domain.Quiz) QuizOutput {
	return QuizOutput{ID: q.ID, Name: q.Name, Course: NewCourseOutput(q.Course)}
}

func NewQuestionOutput(q *domain.Question) QuestionOutput {
	return QuestionOutput{ID: q.ID, Title: q.Title, CorrectAnswer: q.CorrectAnswer}
}

func NewDetailedQuizOutput(q *domain.Quiz) DetailedQuizOutput {
	return DetailedQuizOutput{
		QuizOutput: NewQuizOutput(q),
		Questions:  NewListOutput(q.Questions, NewQuestionOutput),
	}
}

func NewQuizAttemptOutput(a *domain.QuizAttempt) QuizAttemptOutput {
	return QuizAttemptOutput{
		ID:    a.ID,
		Quizz: NewQuizOutput(a.Quiz),
		User:  NewUserOutput(a.User),
		Note:  a.Note,
		Date:  a.Date,
	}
}
