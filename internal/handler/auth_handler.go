package handler

import (
	"elearn-api/internal/domain"
	"elearn-api/internal/dto"
	"elearn-api/internal/service"
	"elearn-api/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	authService service.AuthService
	validator   *validation.Validator
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validation.NewValidator(),
	}
}

// Register godoc
// @Summary Create an account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Account"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateCredentials(req.Email, req.Password); len(errs) > 0 {
		return errs
	}

	resp, err := h.authService.Register(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Login godoc
// @Summary Log in
// @Description Returns the user and a bearer access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.authService.Login(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
