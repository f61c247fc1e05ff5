package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"elearn-api/internal/domain"
	"elearn-api/internal/dto"
	"elearn-api/internal/logger"

	"go.uber.org/zap"
)

// QuizAttemptService grades and lists quiz attempts.
type QuizAttemptService interface {
	ListAttempts(ctx context.Context) (*dto.ListOutput[dto.QuizAttemptOutput], error)
	SubmitAttempt(ctx context.Context, userID string, req dto.SubmitAttemptRequest) (*dto.QuizAttemptOutput, error)
}

type quizAttemptService struct {
	attempts domain.QuizAttemptRepository
	quizzes  domain.QuizRepository
	users    domain.UserRepository
	now      func() time.Time
}

func NewQuizAttemptService(attempts domain.QuizAttemptRepository, quizzes domain.QuizRepository, users domain.UserRepository) QuizAttemptService {
	return &quizAttemptService{
		attempts: attempts,
		quizzes:  quizzes,
		users:    users,
		now:      time.Now,
	}
}

func (s *quizAttemptService) ListAttempts(ctx context.Context) (*dto.ListOutput[dto.QuizAttemptOutput], error) {
	attempts, err := s.attempts.ListAttempts(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list quiz attempts", err)
	}
	out := dto.NewListOutput(attempts, dto.NewQuizAttemptOutput)
	return &out, nil
}

// SubmitAttempt grades the answers server side. Every question of the quiz
// must be answered and no unknown question may be referenced.
func (s *quizAttemptService) SubmitAttempt(ctx context.Context, userID string, req dto.SubmitAttemptRequest) (*dto.QuizAttemptOutput, error) {
	quizID := strings.TrimSpace(req.QuizID)
	if quizID == "" {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("quizzId")}
	}

	quiz, err := s.quizzes.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get user", err)
	}
	if user == nil {
		return nil, domain.NewUnauthorizedError("User not found")
	}

	correct, errs := grade(quiz, req.Answers)
	if len(errs) > 0 {
		return nil, errs
	}

	attempt := &domain.QuizAttempt{
		Quiz: quiz,
		User: user,
		Note: domain.ScoreOutOfTwenty(correct, len(quiz.Questions)),
		Date: s.now(),
	}
	if err := s.attempts.CreateAttempt(ctx, attempt); err != nil {
		return nil, domain.NewInternalError("Failed to save quiz attempt", err)
	}

	logger.Get().Info("Quiz attempt recorded",
		zap.String("attemptID", attempt.ID),
		zap.String("quizID", quiz.ID),
		zap.String("userID", user.ID),
		zap.Int("note", attempt.Note))

	out := dto.NewQuizAttemptOutput(attempt)
	return &out, nil
}

func grade(quiz *domain.Quiz, answers map[string]dto.BinaryAnswer) (int, domain.ValidationErrors) {
	var errs domain.ValidationErrors
	known := make(map[string]struct{}, len(quiz.Questions))
	correct := 0

	for _, q := range quiz.Questions {
		known[q.ID] = struct{}{}
		answer, ok := answers[q.ID]
		if !ok {
			errs = append(errs, domain.NewMissingFieldError("answers."+q.ID))
			continue
		}
		if bool(answer) == q.CorrectAnswer {
			correct++
		}
	}

	var unknown []string
	for id := range answers {
		if _, ok := known[id]; !ok {
			unknown = append(unknown, id)
		}
	}
	sort.Strings(unknown)
	for _, id := range unknown {
		errs = append(errs, domain.NewInvalidFormatError("answers", id))
	}
	return correct, errs
}
