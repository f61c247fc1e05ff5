package handler

import (
	"elearn-api/internal/domain"
	"elearn-api/internal/dto"
	"elearn-api/internal/service"
	"elearn-api/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// CreateQuiz godoc
// @Summary Save a quiz
// @Description Persists a reviewed quiz and its true/false questions for a course
// @Tags quizz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateQuizRequest true "Quiz to create"
// @Success 201 {object} dto.DetailedQuizOutput
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizz/create [post]
func (h *QuizHandler) CreateQuiz(c *fiber.Ctx) error {
	var req dto.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateCreateQuizRequest(req); len(errs) > 0 {
		return errs
	}

	quiz, err := h.service.CreateQuiz(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(quiz)
}

// GetQuiz godoc
// @Summary Get a quiz
// @Description Returns the quiz with its course and questions
// @Tags quizz
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.DetailedQuizOutput
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizz/{id} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	quiz, err := h.service.GetQuizDetails(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}

// ListByCourse godoc
// @Summary List the quizzes of a course
// @Tags quizz
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.ListOutput[dto.QuizOutput]
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizz/course/{courseId} [get]
func (h *QuizHandler) ListByCourse(c *fiber.Ctx) error {
	quizzes, err := h.service.ListQuizzesByCourse(c.UserContext(), c.Params("courseId"))
	if err != nil {
		return err
	}
	return c.JSON(quizzes)
}
