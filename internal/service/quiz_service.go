package service

import (
	"context"
	"strings"

	"elearn-api/internal/domain"
	"elearn-api/internal/dto"
	"elearn-api/internal/logger"

	"go.uber.org/zap"
)

// QuizService defines the interface for quiz-related operations
type QuizService interface {
	CreateQuiz(ctx context.Context, req dto.CreateQuizRequest) (*dto.DetailedQuizOutput, error)
	GetQuizDetails(ctx context.Context, quizID string) (*dto.DetailedQuizOutput, error)
	ListQuizzesByCourse(ctx context.Context, courseID string) (*dto.ListOutput[dto.QuizOutput], error)
}

type quizService struct {
	quizzes   domain.QuizRepository
	courses   domain.CourseRepository
	txManager domain.TransactionManager
}

// NewQuizService creates a new instance of quizService
func NewQuizService(quizzes domain.QuizRepository, courses domain.CourseRepository, txManager domain.TransactionManager) QuizService {
	return &quizService{
		quizzes:   quizzes,
		courses:   courses,
		txManager: txManager,
	}
}

// CreateQuiz persists a quiz and its questions atomically.
func (s *quizService) CreateQuiz(ctx context.Context, req dto.CreateQuizRequest) (*dto.DetailedQuizOutput, error) {
	courseID := strings.TrimSpace(req.CourseID)
	quiz := domain.NewQuiz(req.Name, &domain.Course{ID: courseID})
	for _, q := range req.Questions {
		quiz.AddQuestion(q.Title, bool(q.CorrectAnswer))
	}
	if courseID == "" {
		return nil, quiz.Validate()
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		course, err := s.courses.GetCourseByID(txCtx, courseID)
		if err != nil {
			return domain.NewInternalError("Failed to load course", err)
		}
		if course == nil {
			return domain.NewCourseNotFoundError(courseID)
		}
		quiz.Course = course

		if err := quiz.Validate(); err != nil {
			return err
		}
		if err := s.quizzes.CreateQuiz(txCtx, quiz); err != nil {
			return domain.NewInternalError("Failed to save quiz", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Get().Info("Quiz created",
		zap.String("quizID", quiz.ID),
		zap.String("courseID", courseID),
		zap.Int("questions", len(quiz.Questions)))

	out := dto.NewDetailedQuizOutput(quiz)
	return &out, nil
}

func (s *quizService) GetQuizDetails(ctx context.Context, quizID string) (*dto.DetailedQuizOutput, error) {
	quiz, err := s.quizzes.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}
	out := dto.NewDetailedQuizOutput(quiz)
	return &out, nil
}

func (s *quizService) ListQuizzesByCourse(ctx context.Context, courseID string) (*dto.ListOutput[dto.QuizOutput], error) {
	course, err := s.courses.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load course", err)
	}
	if course == nil {
		return nil, domain.NewCourseNotFoundError(courseID)
	}

	quizzes, err := s.quizzes.ListQuizzesByCourse(ctx, courseID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list quizzes", err)
	}
	out := dto.NewListOutput(quizzes, dto.NewQuizOutput)
	return &out, nil
}
