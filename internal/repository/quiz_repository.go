package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"elearn-api/internal/domain"
	"elearn-api/internal/repository/models"
	"elearn-api/internal/util"

	"github.com/jmoiron/sqlx"
)

const quizWithCourseQuery = `SELECT q.id "ID", q.name "NAME", q.course_id "COURSE_ID",
	c.name "COURSE_NAME", q.created_at "CREATED_AT"
	FROM quizzes q JOIN courses c ON c.id = q.course_id`

// QuizDatabaseAdapter implements domain.QuizRepository using sqlx.
type QuizDatabaseAdapter struct {
	db *sqlx.DB
}

func NewQuizDatabaseAdapter(db *sqlx.DB) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db}
}

func boolToNumber(b bool) int {
	if b {
		return 1
	}
	return 0
}

func toDomainQuiz(m *models.QuizWithCourse) *domain.Quiz {
	return &domain.Quiz{
		ID:        m.ID,
		Name:      m.Name,
		Course:    &domain.Course{ID: m.CourseID, Name: m.CourseName},
		CreatedAt: m.CreatedAt,
	}
}

// CreateQuiz inserts the quiz and its questions. Run it inside
// TransactionManager.WithTransaction to make the inserts atomic.
func (a *QuizDatabaseAdapter) CreateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	if quiz == nil || quiz.Course == nil {
		return fmt.Errorf("cannot save quiz without course")
	}
	exec := GetExecutor(ctx, a.db)

	quiz.ID = util.NewULID()
	if quiz.CreatedAt.IsZero() {
		quiz.CreatedAt = time.Now()
	}

	_, err := exec.ExecContext(ctx,
		`INSERT INTO quizzes (id, name, course_id, created_at) VALUES (:1, :2, :3, :4)`,
		quiz.ID, quiz.Name, quiz.Course.ID, quiz.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save quiz: %w", err)
	}

	for i, question := range quiz.Questions {
		question.ID = util.NewULID()
		question.QuizID = quiz.ID
		question.Position = i
		_, err := exec.ExecContext(ctx,
			`INSERT INTO questions (id, quiz_id, title, correct_answer, position) VALUES (:1, :2, :3, :4, :5)`,
			question.ID, question.QuizID, question.Title, boolToNumber(question.CorrectAnswer), question.Position)
		if err != nil {
			return fmt.Errorf("failed to save question %d of quiz %s: %w", i, quiz.ID, err)
		}
	}
	return nil
}

// GetQuizByID loads the quiz with its course and ordered questions.
func (a *QuizDatabaseAdapter) GetQuizByID(ctx context.Context, quizID string) (*domain.Quiz, error) {
	exec := GetExecutor(ctx, a.db)

	var m models.QuizWithCourse
	if err := exec.GetContext(ctx, &m, quizWithCourseQuery+` WHERE q.id = :1`, quizID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by ID %s: %w", quizID, err)
	}

	var rows []models.Question
	query := `SELECT id "ID", quiz_id "QUIZ_ID", title "TITLE", correct_answer "CORRECT_ANSWER", position "POSITION"
		FROM questions WHERE quiz_id = :1 ORDER BY position`
	if err := exec.SelectContext(ctx, &rows, query, quizID); err != nil {
		return nil, fmt.Errorf("failed to get questions of quiz %s: %w", quizID, err)
	}

	quiz := toDomainQuiz(&m)
	quiz.Questions = make([]*domain.Question, 0, len(rows))
	for _, row := range rows {
		quiz.Questions = append(quiz.Questions, &domain.Question{
			ID:            row.ID,
			QuizID:        row.QuizID,
			Title:         row.Title,
			CorrectAnswer: row.CorrectAnswer != 0,
			Position:      row.Position,
		})
	}
	return quiz, nil
}

func (a *QuizDatabaseAdapter) ListQuizzesByCourse(ctx context.Context, courseID string) ([]*domain.Quiz, error) {
	var rows []models.QuizWithCourse
	query := quizWithCourseQuery + ` WHERE q.course_id = :1 ORDER BY q.created_at`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, courseID); err != nil {
		return nil, fmt.Errorf("failed to list quizzes of course %s: %w", courseID, err)
	}

	quizzes := make([]*domain.Quiz, 0, len(rows))
	for i := range rows {
		quizzes = append(quizzes, toDomainQuiz(&rows[i]))
	}
	return quizzes, nil
}
