package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"elearn-api/internal/domain"
	"elearn-api/internal/dto"
	"elearn-api/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// --- Manual Mocks ---

type MockAIService struct {
	GenerateFromContentFunc  func(ctx context.Context, req dto.AIQuizRequest) (*domain.GeneratedQuiz, error)
	GenerateFromDocumentFunc func(ctx context.Context, documentID string, req dto.AIQuizRequest) (*domain.GeneratedQuiz, error)
}

func (m *MockAIService) GenerateFromContent(ctx context.Context, req dto.AIQuizRequest) (*domain.GeneratedQuiz, error) {
	if m.GenerateFromContentFunc != nil {
		return m.GenerateFromContentFunc(ctx, req)
	}
	panic("MockAIService.GenerateFromContentFunc not implemented")
}

func (m *MockAIService) GenerateFromDocument(ctx context.Context, documentID string, req dto.AIQuizRequest) (*domain.GeneratedQuiz, error) {
	if m.GenerateFromDocumentFunc != nil {
		return m.GenerateFromDocumentFunc(ctx, documentID, req)
	}
	panic("MockAIService.GenerateFromDocumentFunc not implemented")
}

type MockQuizService struct {
	CreateQuizFunc          func(ctx context.Context, req dto.CreateQuizRequest) (*dto.DetailedQuizOutput, error)
	GetQuizDetailsFunc      func(ctx context.Context, quizID string) (*dto.DetailedQuizOutput, error)
	ListQuizzesByCourseFunc func(ctx context.Context, courseID string) (*dto.ListOutput[dto.QuizOutput], error)
}

func (m *MockQuizService) CreateQuiz(ctx context.Context, req dto.CreateQuizRequest) (*dto.DetailedQuizOutput, error) {
	if m.CreateQuizFunc != nil {
		return m.CreateQuizFunc(ctx, req)
	}
	panic("MockQuizService.CreateQuizFunc not implemented")
}

func (m *MockQuizService) GetQuizDetails(ctx context.Context, quizID string) (*dto.DetailedQuizOutput, error) {
	if m.GetQuizDetailsFunc != nil {
		return m.GetQuizDetailsFunc(ctx, quizID)
	}
	panic("MockQuizService.GetQuizDetailsFunc not implemented")
}

func (m *MockQuizService) ListQuizzesByCourse(ctx context.Context, courseID string) (*dto.ListOutput[dto.QuizOutput], error) {
	if m.ListQuizzesByCourseFunc != nil {
		return m.ListQuizzesByCourseFunc(ctx, courseID)
	}
	panic("MockQuizService.ListQuizzesByCourseFunc not implemented")
}

type MockQuizAttemptService struct {
	ListAttemptsFunc  func(ctx context.Context) (*dto.ListOutput[dto.QuizAttemptOutput], error)
	SubmitAttemptFunc func(ctx context.Context, userID string, req dto.SubmitAttemptRequest) (*dto.QuizAttemptOutput, error)
}

func (m *MockQuizAttemptService) ListAttempts(ctx context.Context) (*dto.ListOutput[dto.QuizAttemptOutput], error) {
	if m.ListAttemptsFunc != nil {
		return m.ListAttemptsFunc(ctx)
	}
	panic("MockQuizAttemptService.ListAttemptsFunc not implemented")
}

func (m *MockQuizAttemptService) SubmitAttempt(ctx context.Context, userID string, req dto.SubmitAttemptRequest) (*dto.QuizAttemptOutput, error) {
	if m.SubmitAttemptFunc != nil {
		return m.SubmitAttemptFunc(ctx, userID, req)
	}
	panic("MockQuizAttemptService.SubmitAttemptFunc not implemented")
}

type MockAuthService struct {
	RegisterFunc    func(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
	LoginFunc       func(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	ValidateJWTFunc func(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	panic("MockAuthService.RegisterFunc not implemented")
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	panic("MockAuthService.LoginFunc not implemented")
}

func (m *MockAuthService) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	if m.ValidateJWTFunc != nil {
		return m.ValidateJWTFunc(ctx, tokenString)
	}
	panic("MockAuthService.ValidateJWTFunc not implemented")
}

func (m *MockAuthService) CreateJWT(ctx context.Context, user *domain.User, ttl time.Duration, tokenType string) (string, error) {
	panic("not implemented in mock")
}

// --- Helpers ---

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out), string(body))
}
