package repository

import (
	"context"
	"fmt"
	"time"

	"elearn-api/internal/domain"
	"elearn-api/internal/repository/models"
	"elearn-api/internal/util"

	"github.com/jmoiron/sqlx"
)

// QuizAttemptDatabaseAdapter implements domain.QuizAttemptRepository using sqlx.
type QuizAttemptDatabaseAdapter struct {
	db *sqlx.DB
}

func NewQuizAttemptDatabaseAdapter(db *sqlx.DB) domain.QuizAttemptRepository {
	return &QuizAttemptDatabaseAdapter{db: db}
}

func (a *QuizAttemptDatabaseAdapter) CreateAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	if attempt == nil || attempt.Quiz == nil || attempt.User == nil {
		return fmt.Errorf("attempt requires a quiz and a user")
	}
	attempt.ID = util.NewULID()
	if attempt.Date.IsZero() {
		attempt.Date = time.Now()
	}

	query := `INSERT INTO quiz_attempts (id, quiz_id, user_id, note, attempted_at) VALUES (:1, :2, :3, :4, :5)`
	_, err := GetExecutor(ctx, a.db).ExecContext(ctx, query,
		attempt.ID, attempt.Quiz.ID, attempt.User.ID, attempt.Note, attempt.Date)
	if err != nil {
		return fmt.Errorf("failed to save quiz attempt: %w", err)
	}
	return nil
}

func (a *QuizAttemptDatabaseAdapter) ListAttempts(ctx context.Context) ([]*domain.QuizAttempt, error) {
	query := `SELECT a.id "ID", a.note "NOTE", a.attempted_at "ATTEMPTED_AT",
		q.id "QUIZ_ID", q.name "QUIZ_NAME", c.id "COURSE_ID", c.name "COURSE_NAME",
		u.id "USER_ID", u.email "USER_EMAIL", u.firstname "USER_FIRSTNAME",
		u.lastname "USER_LASTNAME", u.roles "USER_ROLES"
		FROM quiz_attempts a
		JOIN quizzes q ON q.id = a.quiz_id
		JOIN courses c ON c.id = q.course_id
		JOIN users u ON u.id = a.user_id
		ORDER BY a.attempted_at DESC`

	var rows []models.QuizAttemptRow
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list quiz attempts: %w", err)
	}

	attempts := make([]*domain.QuizAttempt, 0, len(rows))
	for _, row := range rows {
		attempts = append(attempts, &domain.QuizAttempt{
			ID:   row.ID,
			Note: row.Note,
			Date: row.AttemptedAt,
			Quiz: &domain.Quiz{
				ID:     row.QuizID,
				Name:   row.QuizName,
				Course: &domain.Course{ID: row.CourseID, Name: row.CourseName},
			},
			User: &domain.User{
				ID:        row.UserID,
				Email:     row.UserEmail,
				Firstname: row.UserFirstname.String,
				Lastname:  row.UserLastname.String,
				Roles:     []string(row.UserRoles),
			},
		})
	}
	return attempts, nil
}
