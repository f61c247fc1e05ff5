package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"elearn-api/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseDatabaseAdapter_GetCourseByID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCourseDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM courses WHERE id = :1")).
		WithArgs("01HCOURSE").
		WillReturnRows(sqlmock.NewRows([]string{"ID", "NAME", "USER_ID", "CREATED_AT"}).
			AddRow("01HCOURSE", "Distributed Systems", "01HUSER", time.Now()))

	course, err := repo.GetCourseByID(context.Background(), "01HCOURSE")
	require.NoError(t, err)
	assert.Equal(t, "Distributed Systems", course.Name)
	assert.Equal(t, "01HUSER", course.UserID)

	mock.ExpectQuery(regexp.QuoteMeta("FROM courses WHERE id = :1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"ID", "NAME", "USER_ID", "CREATED_AT"}))

	course, err = repo.GetCourseByID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, course)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseDatabaseAdapter_GetDocumentByID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCourseDatabaseAdapter(db)
	columns := []string{"ID", "NAME", "PATH", "NUMBER_OF_PAGES", "COURSE_ID", "USER_ID", "CREATED_AT"}

	mock.ExpectQuery(regexp.QuoteMeta("FROM documents WHERE id = :1")).
		WithArgs("01HDOC").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("01HDOC", "Raft paper", "raft.pdf", 18, "01HCOURSE", nil, time.Now()))

	doc, err := repo.GetDocumentByID(context.Background(), "01HDOC")
	require.NoError(t, err)
	assert.Equal(t, "raft.pdf", doc.Path)
	assert.Equal(t, 18, doc.NumberOfPages)
	assert.True(t, doc.HasCourse())

	mock.ExpectQuery(regexp.QuoteMeta("FROM documents WHERE id = :1")).
		WithArgs("orphan").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("orphan", "Loose", "loose.pdf", 1, nil, nil, time.Now()))

	doc, err = repo.GetDocumentByID(context.Background(), "orphan")
	require.NoError(t, err)
	assert.False(t, doc.HasCourse())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseDatabaseAdapter_GetCourseByName(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCourseDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM courses WHERE name = :1")).
		WithArgs("Go basics").
		WillReturnRows(sqlmock.NewRows([]string{"ID", "NAME", "USER_ID", "CREATED_AT"}))

	course, err := repo.GetCourseByName(context.Background(), "Go basics")
	assert.NoError(t, err)
	assert.Nil(t, course)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseDatabaseAdapter_SaveCourseAndDocument(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCourseDatabaseAdapter(db)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO courses")).
		WithArgs(sqlmock.AnyArg(), "Go basics", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM documents")).
		WithArgs(sqlmock.AnyArg(), "intro.pdf").
		WillReturnRows(sqlmock.NewRows([]string{"COUNT"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO documents")).
		WithArgs(sqlmock.AnyArg(), "Intro", "intro.pdf", 4, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	course := domain.NewCourse("Go basics")
	require.NoError(t, repo.SaveCourse(ctx, course))
	assert.Len(t, course.ID, 26)

	exists, err := repo.DocumentExists(ctx, course.ID, "intro.pdf")
	require.NoError(t, err)
	assert.False(t, exists)

	doc := domain.NewDocument("Intro", "intro.pdf", 4, course.ID)
	require.NoError(t, repo.SaveDocument(ctx, doc))
	assert.NotEmpty(t, doc.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
