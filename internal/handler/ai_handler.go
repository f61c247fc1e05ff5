package handler

import (
	"elearn-api/internal/domain"
	"elearn-api/internal/dto"
	"elearn-api/internal/logger"
	"elearn-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AIHandler serves the quiz generation endpoints.
type AIHandler struct {
	service service.AIService
}

// NewAIHandler creates a new AIHandler instance
func NewAIHandler(service service.AIService) *AIHandler {
	return &AIHandler{service: service}
}

// GenerateFromPrompt godoc
// @Summary Generate a quiz from text
// @Description Sends the content to the chat model and returns the quiz JSON it produced
// @Tags ai
// @Accept json
// @Produce json
// @Param request body dto.AIQuizRequest true "Generation parameters"
// @Success 200 {object} dto.GeneratedQuizResponse
// @Failure 400 {object} dto.AIErrorResponse
// @Router /ai/prompt [post]
func (h *AIHandler) GenerateFromPrompt(c *fiber.Ctx) error {
	req := dto.DecodeAIQuizRequest(c.Body())

	quiz, err := h.service.GenerateFromContent(c.UserContext(), req)
	if err != nil {
		if domain.HasCode(err, domain.CodeInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Content is required"})
		}
		logger.Get().Warn("Quiz generation from prompt failed", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(dto.AIErrorResponse{
			Error:   "AI request error",
			Details: err.Error(),
		})
	}

	return c.JSON(dto.GeneratedQuizResponse{Data: quiz.Data})
}

// GenerateFromDocument godoc
// @Summary Generate a quiz from a course document
// @Description Extracts the PDF text of the document and generates a quiz from it. The title defaults to the document name.
// @Tags ai
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param request body dto.AIQuizRequest false "Generation parameters, content is ignored"
// @Success 200 {object} dto.GeneratedQuizResponse
// @Failure 400 {object} dto.AIErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /ai/document-quiz/{id} [post]
func (h *AIHandler) GenerateFromDocument(c *fiber.Ctx) error {
	documentID := c.Params("id")
	req := dto.DecodeAIQuizRequest(c.Body())

	quiz, err := h.service.GenerateFromDocument(c.UserContext(), documentID, req)
	if err != nil {
		l := logger.Get()
		switch {
		case domain.HasCode(err, domain.CodeDocumentNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: errorMessage(err)})
		case domain.HasCode(err, domain.CodePDFExtraction):
			l.Warn("Document has no extractable text", zap.String("documentID", documentID))
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: errorMessage(err)})
		default:
			l.Warn("Quiz generation from document failed", zap.String("documentID", documentID), zap.Error(err))
			return c.Status(fiber.StatusBadRequest).JSON(dto.AIErrorResponse{
				Error:   "PDF processing error",
				Details: err.Error(),
			})
		}
	}

	return c.JSON(dto.GeneratedQuizResponse{Data: quiz.Data})
}
