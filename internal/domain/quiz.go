package domain

import (
	"context"
	"math"
	"strings"
	"time"
)

// MaxNote is the upper bound of an attempt note.
const MaxNote = 20

// Quiz is a persisted true/false questionnaire attached to a course
type Quiz struct {
	ID        string
	Name      string
	Course    *Course
	Questions []*Question
	CreatedAt time.Time
}

// Question is a binary statement. CorrectAnswer is true when the statement holds.
type Question struct {
	ID            string
	QuizID        string
	Title         string
	CorrectAnswer bool
	Position      int
}

// NewQuiz creates a new Quiz instance
func NewQuiz(name string, course *Course) *Quiz {
	return &Quiz{
		Name:      strings.TrimSpace(name),
		Course:    course,
		CreatedAt: time.Now(),
	}
}

// AddQuestion appends a question keeping the insertion order as position
func (q *Quiz) AddQuestion(title string, correctAnswer bool) *Question {
	question := &Question{
		QuizID:        q.ID,
		Title:         strings.TrimSpace(title),
		CorrectAnswer: correctAnswer,
		Position:      len(q.Questions),
	}
	q.Questions = append(q.Questions, question)
	return question
}

// Validate validates the quiz before persistence
func (q *Quiz) Validate() error {
	var errs ValidationErrors
	if q.Name == "" {
		errs = append(errs, NewMissingFieldError("name"))
	}
	if q.Course == nil || q.Course.ID == "" {
		errs = append(errs, NewMissingFieldError("courseId"))
	}
	if len(q.Questions) == 0 {
		errs = append(errs, NewMissingFieldError("questions"))
	}
	for _, question := range q.Questions {
		if question.Title == "" {
			errs = append(errs, NewMissingFieldError("questions.title"))
			break
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// QuizAttempt records a user's graded submission of a quiz
type QuizAttempt struct {
	ID   string
	Quiz *Quiz
	User *User
	Note int
	Date time.Time
}

// ScoreOutOfTwenty converts a number of correct answers into a note on MaxNote.
func ScoreOutOfTwenty(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * MaxNote))
}

// QuizRepository defines the interface for quiz persistence.
// Lookups return (nil, nil) when nothing matches.
type QuizRepository interface {
	CreateQuiz(ctx context.Context, quiz *Quiz) error
	GetQuizByID(ctx context.Context, quizID string) (*Quiz, error)
	ListQuizzesByCourse(ctx context.Context, courseID string) ([]*Quiz, error)
}

// QuizAttemptRepository defines the interface for attempt persistence
type QuizAttemptRepository interface {
	CreateAttempt(ctx context.Context, attempt *QuizAttempt) error
	// ListAttempts returns every attempt, newest first.
	ListAttempts(ctx context.Context) ([]*QuizAttempt, error)
}

// TransactionManager runs fn inside a database transaction carried by ctx.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
