package domain

import (
	"context"
	"time"
)

// Course groups documents and quizzes
type Course struct {
	ID        string
	Name      string
	UserID    string
	CreatedAt time.Time
}

// Document is an uploaded PDF attached to a course.
// Path is relative to the course directory under the upload root.
type Document struct {
	ID            string
	Name          string
	Path          string
	NumberOfPages int
	CourseID      string
	UserID        string
	CreatedAt     time.Time
}

// NewCourse creates a course owned by nobody.
func NewCourse(name string) *Course {
	return &Course{Name: name, CreatedAt: time.Now()}
}

// NewDocument creates a document attached to courseID.
func NewDocument(name, path string, numberOfPages int, courseID string) *Document {
	return &Document{
		Name:          name,
		Path:          path,
		NumberOfPages: numberOfPages,
		CourseID:      courseID,
		CreatedAt:     time.Now(),
	}
}

// HasCourse reports whether the document is attached to a course.
func (d *Document) HasCourse() bool {
	return d != nil && d.CourseID != ""
}

type CourseRepository interface {
	GetCourseByID(ctx context.Context, courseID string) (*Course, error)
}

type DocumentRepository interface {
	GetDocumentByID(ctx context.Context, documentID string) (*Document, error)
}
