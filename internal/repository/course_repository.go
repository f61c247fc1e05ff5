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

// CourseDatabaseAdapter implements domain.CourseRepository and
// domain.DocumentRepository. The write methods are only used by the seeder.
type CourseDatabaseAdapter struct {
	db *sqlx.DB
}

func NewCourseDatabaseAdapter(db *sqlx.DB) *CourseDatabaseAdapter {
	return &CourseDatabaseAdapter{db: db}
}

func (a *CourseDatabaseAdapter) GetCourseByID(ctx context.Context, courseID string) (*domain.Course, error) {
	var m models.Course
	query := `SELECT id "ID", name "NAME", user_id "USER_ID", created_at "CREATED_AT"
		FROM courses WHERE id = :1`

	if err := GetExecutor(ctx, a.db).GetContext(ctx, &m, query, courseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get course by ID %s: %w", courseID, err)
	}
	return &domain.Course{
		ID:        m.ID,
		Name:      m.Name,
		UserID:    m.UserID.String,
		CreatedAt: m.CreatedAt,
	}, nil
}

func (a *CourseDatabaseAdapter) GetDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	var m models.Document
	query := `SELECT id "ID", name "NAME", path "PATH", number_of_pages "NUMBER_OF_PAGES",
		course_id "COURSE_ID", user_id "USER_ID", created_at "CREATED_AT"
		FROM documents WHERE id = :1`

	if err := GetExecutor(ctx, a.db).GetContext(ctx, &m, query, documentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document by ID %s: %w", documentID, err)
	}
	return &domain.Document{
		ID:            m.ID,
		Name:          m.Name,
		Path:          m.Path,
		NumberOfPages: m.NumberOfPages,
		CourseID:      m.CourseID.String,
		UserID:        m.UserID.String,
		CreatedAt:     m.CreatedAt,
	}, nil
}

// GetCourseByName returns (nil, nil) when no course has that name.
func (a *CourseDatabaseAdapter) GetCourseByName(ctx context.Context, name string) (*domain.Course, error) {
	var m models.Course
	query := `SELECT id "ID", name "NAME", user_id "USER_ID", created_at "CREATED_AT"
		FROM courses WHERE name = :1 FETCH FIRST 1 ROWS ONLY`

	if err := GetExecutor(ctx, a.db).GetContext(ctx, &m, query, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get course by name %s: %w", name, err)
	}
	return &domain.Course{
		ID:        m.ID,
		Name:      m.Name,
		UserID:    m.UserID.String,
		CreatedAt: m.CreatedAt,
	}, nil
}

func (a *CourseDatabaseAdapter) SaveCourse(ctx context.Context, course *domain.Course) error {
	course.ID = util.NewULID()
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now()
	}

	_, err := GetExecutor(ctx, a.db).ExecContext(ctx,
		`INSERT INTO courses (id, name, user_id, created_at) VALUES (:1, :2, :3, :4)`,
		course.ID, course.Name, util.StringToNullString(course.UserID), course.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save course %s: %w", course.Name, err)
	}
	return nil
}

// DocumentExists reports whether courseID already has a document at path.
func (a *CourseDatabaseAdapter) DocumentExists(ctx context.Context, courseID, path string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM documents WHERE course_id = :1 AND path = :2`
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &count, query, courseID, path); err != nil {
		return false, fmt.Errorf("failed to look up document %s: %w", path, err)
	}
	return count > 0, nil
}

func (a *CourseDatabaseAdapter) SaveDocument(ctx context.Context, doc *domain.Document) error {
	doc.ID = util.NewULID()
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now()
	}

	_, err := GetExecutor(ctx, a.db).ExecContext(ctx,
		`INSERT INTO documents (id, name, path, number_of_pages, course_id, user_id, created_at)
		VALUES (:1, :2, :3, :4, :5, :6, :7)`,
		doc.ID, doc.Name, doc.Path, doc.NumberOfPages,
		util.StringToNullString(doc.CourseID), util.StringToNullString(doc.UserID), doc.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save document %s: %w", doc.Path, err)
	}
	return nil
}
