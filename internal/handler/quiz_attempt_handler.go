package handler

import (
	"elearn-api/internal/domain"
	"elearn-api/internal/dto"
	"elearn-api/internal/middleware"
	"elearn-api/internal/service"
	"elearn-api/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type QuizAttemptHandler struct {
	service   service.QuizAttemptService
	validator *validation.Validator
}

func NewQuizAttemptHandler(service service.QuizAttemptService) *QuizAttemptHandler {
	return &QuizAttemptHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// ListAttempts godoc
// @Summary List quiz attempts
// @Description Returns every attempt, newest first
// @Tags quizz-attempt
// @Produce json
// @Success 200 {object} dto.ListOutput[dto.QuizAttemptOutput]
// @Router /quizz-attempt [get]
func (h *QuizAttemptHandler) ListAttempts(c *fiber.Ctx) error {
	attempts, err := h.service.ListAttempts(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(attempts)
}

// SubmitAttempt godoc
// @Summary Submit quiz answers
// @Description Grades the answers of the authenticated user; the note is out of 20
// @Tags quizz-attempt
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.SubmitAttemptRequest true "Answers by question ID"
// @Success 201 {object} dto.QuizAttemptOutput
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizz-attempt [post]
func (h *QuizAttemptHandler) SubmitAttempt(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return domain.NewUnauthorizedError("Authentication required")
	}

	var req dto.SubmitAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateSubmitAttemptRequest(req); len(errs) > 0 {
		return errs
	}

	attempt, err := h.service.SubmitAttempt(c.UserContext(), userID, req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(attempt)
}
