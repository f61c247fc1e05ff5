package models

import (
	"database/sql"
	"time"
)

// User is a row of the users table.
type User struct {
	ID           string         `db:"ID"`
	Email        string         `db:"EMAIL"`
	PasswordHash string         `db:"PASSWORD_HASH"`
	Firstname    sql.NullString `db:"FIRSTNAME"`
	Lastname     sql.NullString `db:"LASTNAME"`
	Roles        StringSlice    `db:"ROLES"`
	CreatedAt    time.Time      `db:"CREATED_AT"`
	UpdatedAt    time.Time      `db:"UPDATED_AT"`
}

// Course is a row of the courses table.
type Course struct {
	ID        string         `db:"ID"`
	Name      string         `db:"NAME"`
	UserID    sql.NullString `db:"USER_ID"`
	CreatedAt time.Time      `db:"CREATED_AT"`
}

// Document is a row of the documents table.
type Document struct {
	ID            string         `db:"ID"`
	Name          string         `db:"NAME"`
	Path          string         `db:"PATH"`
	NumberOfPages int            `db:"NUMBER_OF_PAGES"`
	CourseID      sql.NullString `db:"COURSE_ID"`
	UserID        sql.NullString `db:"USER_ID"`
	CreatedAt     time.Time      `db:"CREATED_AT"`
}

// QuizWithCourse is a quizzes row joined with its course name.
type QuizWithCourse struct {
	ID         string    `db:"ID"`
	Name       string    `db:"NAME"`
	CourseID   string    `db:"COURSE_ID"`
	CourseName string    `db:"COURSE_NAME"`
	CreatedAt  time.Time `db:"CREATED_AT"`
}

// Question is a row of the questions table. CorrectAnswer is stored as NUMBER(1).
type Question struct {
	ID            string `db:"ID"`
	QuizID        string `db:"QUIZ_ID"`
	Title         string `db:"TITLE"`
	CorrectAnswer int    `db:"CORRECT_ANSWER"`
	Position      int    `db:"POSITION"`
}

// QuizAttemptRow is a quiz_attempts row joined with its quiz, course and user.
type QuizAttemptRow struct {
	ID            string         `db:"ID"`
	Note          int            `db:"NOTE"`
	AttemptedAt   time.Time      `db:"ATTEMPTED_AT"`
	QuizID        string         `db:"QUIZ_ID"`
	QuizName      string         `db:"QUIZ_NAME"`
	CourseID      string         `db:"COURSE_ID"`
	CourseName    string         `db:"COURSE_NAME"`
	UserID        string         `db:"USER_ID"`
	UserEmail     string         `db:"USER_EMAIL"`
	UserFirstname sql.NullString `db:"USER_FIRSTNAME"`
	UserLastname  sql.NullString `db:"USER_LASTNAME"`
	UserRoles     StringSlice    `db:"USER_ROLES"`
}
