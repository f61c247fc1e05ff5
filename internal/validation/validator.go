package validation

import (
	"strings"
	"unicode/utf8"

	"elearn-api/internal/domain"
	"elearn-api/internal/dto"
	"elearn-api/internal/util"
)

// Column limits of the schema.
const (
	maxNameLength      = 255
	maxTitleLength     = 1000
	maxQuestions       = 500
	maxEmailLength     = 180
	maxPasswordBytes   = 72 // bcrypt rejects longer passwords
	minQuestionsPerSet = 1
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateID checks that value is a ULID.
func (v *Validator) ValidateID(field, value string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(value) == "" {
		errors = append(errors, domain.NewMissingFieldError(field))
	} else if !util.IsULID(value) {
		errors = append(errors, domain.NewInvalidFormatError(field, value))
	}
	return errors
}

// ValidateCreateQuizRequest checks formats and lengths. Presence of the
// fields is enforced by domain.Quiz.Validate.
func (v *Validator) ValidateCreateQuizRequest(req dto.CreateQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if n := utf8.RuneCountInString(strings.TrimSpace(req.Name)); n > maxNameLength {
		errors = append(errors, domain.NewOutOfRangeError("name", n, 1, maxNameLength))
	}
	if id := strings.TrimSpace(req.CourseID); id != "" && !util.IsULID(id) {
		errors = append(errors, domain.NewInvalidFormatError("courseId", req.CourseID))
	}
	if len(req.Questions) > maxQuestions {
		errors = append(errors, domain.NewOutOfRangeError("questions", len(req.Questions), minQuestionsPerSet, maxQuestions))
	}
	for _, q := range req.Questions {
		if n := utf8.RuneCountInString(strings.TrimSpace(q.Title)); n > maxTitleLength {
			errors = append(errors, domain.NewOutOfRangeError("questions.title", n, 1, maxTitleLength))
			break
		}
	}
	return errors
}

func (v *Validator) ValidateSubmitAttemptRequest(req dto.SubmitAttemptRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if id := strings.TrimSpace(req.QuizID); id != "" && !util.IsULID(id) {
		errors = append(errors, domain.NewInvalidFormatError("quizzId", req.QuizID))
	}
	if len(req.Answers) == 0 {
		errors = append(errors, domain.NewMissingFieldError("answers"))
	}
	return errors
}

// ValidateCredentials bounds email and password sizes before hashing.
func (v *Validator) ValidateCredentials(email, password string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	email = strings.TrimSpace(email)
	if n := utf8.RuneCountInString(email); n > maxEmailLength {
		errors = append(errors, domain.NewOutOfRangeError("email", n, 1, maxEmailLength))
	} else if email != "" && !strings.Contains(email, "@") {
		errors = append(errors, domain.NewInvalidFormatError("email", email))
	}
	if len(password) > maxPasswordBytes {
		errors = append(errors, domain.NewOutOfRangeError("password", len(password), 1, maxPasswordBytes))
	}
	return errors
}
